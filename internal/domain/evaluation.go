package domain

// MatchType names the comparison strategy that produced an evaluation score.
type MatchType string

// Possible match types
const (
	MatchExact     MatchType = "exact"
	MatchSynonym   MatchType = "synonym"
	MatchWordOrder MatchType = "word_order"
	MatchFuzzy     MatchType = "fuzzy"
	MatchAI        MatchType = "ai"
	MatchNone      MatchType = "none"
)

// CorrectThreshold is the minimum score classified as a correct answer.
const CorrectThreshold = 0.9

// AnswerAttempt is a single submission for one card.
type AnswerAttempt struct {
	Response        string   `json:"response"`
	ExpectedAnswers []string `json:"expected_answers"`
}

// EvaluationResult is the immutable outcome of scoring a response.
type EvaluationResult struct {
	Score     float64   `json:"score"` // 0..1
	MatchType MatchType `json:"match_type"`
	IsCorrect bool      `json:"is_correct"`
	Feedback  string    `json:"feedback"`
	AIUsed    bool      `json:"ai_used"`
	Reason    string    `json:"reason,omitempty"` // set when a semantic judge explained its verdict
}

// Clamp01 limits v to the closed interval [0, 1]. NaN becomes 0.
func Clamp01(v float64) float64 {
	if v != v || v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// ScorePercent converts an engine score to the 0..100 scale some storage
// layers use. Conversion happens only at that boundary.
func ScorePercent(score float64) float64 {
	return Clamp01(score) * 100
}
