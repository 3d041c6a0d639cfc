package evaluation

import (
	"fmt"
	"log/slog"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/agext/levenshtein"

	"github.com/phrazzld/scry-engine/internal/domain"
	"github.com/phrazzld/scry-engine/internal/synonym"
)

// Strategy scores.
const (
	ExactScore   = 1.0
	SynonymScore = synonym.PhraseMatchScore
	TypoScore    = 0.9

	substringBase  = 0.6
	substringRange = 0.2

	// MinSimilarityScore is the least word-level synonym similarity that is
	// accepted as a synonym match.
	MinSimilarityScore = 0.7

	// MinFuzzyScore is the least edit-distance score still classified fuzzy.
	MinFuzzyScore = 0.5

	// CloseThreshold is the least score given "Close!" feedback.
	CloseThreshold = 0.6

	// maxTypoWords bounds the answers that get typo tolerance.
	maxTypoWords = 4
)

// Feedback strings.
const (
	FeedbackCorrect   = "Correct!"
	FeedbackNoAnswer  = "No answer provided"
	feedbackClose     = "Close! Expected: %s"
	feedbackIncorrect = "Incorrect. Expected: %s"
	feedbackWrong     = "Incorrect."
)

var matchLabels = map[domain.MatchType]string{
	domain.MatchSynonym:   "synonym",
	domain.MatchWordOrder: "word order",
	domain.MatchFuzzy:     "close spelling",
	domain.MatchAI:        "AI review",
}

// Evaluator scores free-text answers against a card's accepted answers.
// The zero value is not usable; construct with New. An Evaluator holds no
// mutable state and is safe for concurrent use.
type Evaluator struct {
	synonyms     *synonym.Resolver
	judge        SemanticJudge
	judgeTimeout time.Duration
	logger       *slog.Logger
}

// Option configures an Evaluator.
type Option func(*Evaluator)

// WithSynonyms replaces the built-in synonym table.
func WithSynonyms(r *synonym.Resolver) Option {
	return func(e *Evaluator) {
		if r != nil {
			e.synonyms = r
		}
	}
}

// WithJudge installs the semantic judge consulted by EvaluateAsync.
func WithJudge(j SemanticJudge) Option {
	return func(e *Evaluator) { e.judge = j }
}

// WithJudgeTimeout bounds judge calls whose context has no deadline.
// Zero disables the bound.
func WithJudgeTimeout(d time.Duration) Option {
	return func(e *Evaluator) { e.judgeTimeout = d }
}

// WithLogger sets the logger used when the context carries none.
func WithLogger(l *slog.Logger) Option {
	return func(e *Evaluator) {
		if l != nil {
			e.logger = l
		}
	}
}

// New creates an Evaluator over the default synonym table.
func New(opts ...Option) *Evaluator {
	e := &Evaluator{
		synonyms: synonym.Default(),
		logger:   slog.Default(),
	}
	for _, opt := range opts {
		opt(e)
	}
	e.logger = e.logger.With(slog.String("component", "evaluation"))
	return e
}

// Evaluate scores response against every expected answer and keeps the best
// result. Each candidate is tried against the strategies in order (exact,
// phrase synonym, typo, substring, synonym similarity, edit distance) and
// the first that applies sets its score. Phrase synonyms include the same
// words in any order once stop words are dropped. Ties keep the earlier
// candidate. Evaluate never fails: empty input scores 0.
func (e *Evaluator) Evaluate(response string, expected []string) domain.EvaluationResult {
	result, _ := e.evaluate(response, expected)
	return result
}

// evaluate also returns the winning expected answer as given, or "" when
// no candidate was usable.
func (e *Evaluator) evaluate(response string, expected []string) (domain.EvaluationResult, string) {
	resp := newAnswerForms(response)
	if resp.text == "" {
		return domain.EvaluationResult{
			Score:     0,
			MatchType: domain.MatchNone,
			Feedback:  FeedbackNoAnswer,
		}, ""
	}

	best := -1
	bestScore, bestType := 0.0, domain.MatchNone
	for i, candidate := range expected {
		exp := newAnswerForms(candidate)
		if exp.text == "" {
			continue
		}
		score, matchType := e.scoreCandidate(resp, exp)
		if best < 0 || score > bestScore {
			best, bestScore, bestType = i, score, matchType
		}
	}

	var bestAnswer string
	if best >= 0 {
		bestAnswer = strings.TrimSpace(expected[best])
	}
	return newResult(bestScore, bestType, bestAnswer), bestAnswer
}

// answerForms holds the two renderings of an answer. text is fully
// normalized for string comparison. terms is only diacritic-folded and is
// handed to the synonym resolver, whose own normalization keeps periods
// ("0.5", "n.", "bc.").
type answerForms struct {
	text  string
	terms string
}

func newAnswerForms(s string) answerForms {
	return answerForms{text: Normalize(s), terms: foldDiacritics(s)}
}

// scoreCandidate runs the strategy cascade for one response/answer pair.
func (e *Evaluator) scoreCandidate(resp, exp answerForms) (float64, domain.MatchType) {
	if resp.text == exp.text {
		return ExactScore, domain.MatchExact
	}
	if e.synonyms.ArePhraseSynonyms(resp.terms, exp.terms) {
		return SynonymScore, domain.MatchSynonym
	}
	if withinTypoAllowance(resp.text, exp.text) {
		return TypoScore, domain.MatchFuzzy
	}
	if score, ok := substringScore(resp.text, exp.text); ok {
		return score, domain.MatchFuzzy
	}
	if sim := e.synonyms.Similarity(resp.terms, exp.terms); sim >= MinSimilarityScore {
		return sim, domain.MatchSynonym
	}

	score := EditScore(resp.text, exp.text)
	if score >= MinFuzzyScore {
		return score, domain.MatchFuzzy
	}
	return score, domain.MatchNone
}

// withinTypoAllowance reports whether two short answers with the same word
// count differ only by small misspellings in each word.
func withinTypoAllowance(resp, exp string) bool {
	rw, ew := strings.Fields(resp), strings.Fields(exp)
	if len(rw) != len(ew) || len(ew) > maxTypoWords {
		return false
	}
	for i := range ew {
		if levenshtein.Distance(rw[i], ew[i], nil) > TypoAllowance(ew[i]) {
			return false
		}
	}
	return true
}

// TypoAllowance is the edit distance tolerated for a word of the expected
// answer: none under 4 runes, 1 under 6, otherwise 2.
func TypoAllowance(word string) int {
	switch n := utf8.RuneCountInString(word); {
	case n < 4:
		return 0
	case n < 6:
		return 1
	default:
		return 2
	}
}

// substringScore scores containment by how much of the longer string the
// shorter one covers, in [0.6, 0.8].
func substringScore(resp, exp string) (float64, bool) {
	if !strings.Contains(resp, exp) && !strings.Contains(exp, resp) {
		return 0, false
	}
	rl, el := utf8.RuneCountInString(resp), utf8.RuneCountInString(exp)
	overlap, longest := min(rl, el), max(rl, el)
	return substringBase + float64(overlap)/float64(longest)*substringRange, true
}

// EditScore is 1 - distance/maxLength over runes, floored at 0.
func EditScore(a, b string) float64 {
	longest := max(utf8.RuneCountInString(a), utf8.RuneCountInString(b))
	if longest == 0 {
		return 1
	}
	d := levenshtein.Distance(a, b, nil)
	return max(0, 1-float64(d)/float64(longest))
}

// newResult clamps score and attaches classification feedback.
func newResult(score float64, matchType domain.MatchType, expected string) domain.EvaluationResult {
	score = domain.Clamp01(score)
	return domain.EvaluationResult{
		Score:     score,
		MatchType: matchType,
		IsCorrect: score >= domain.CorrectThreshold,
		Feedback:  Feedback(score, matchType, expected),
	}
}

// Feedback returns the learner-facing message for a score.
func Feedback(score float64, matchType domain.MatchType, expected string) string {
	switch {
	case score >= domain.CorrectThreshold:
		if label, ok := matchLabels[matchType]; ok {
			return fmt.Sprintf("%s (accepted via %s)", FeedbackCorrect, label)
		}
		return FeedbackCorrect
	case expected == "":
		return feedbackWrong
	case score >= CloseThreshold:
		return fmt.Sprintf(feedbackClose, expected)
	default:
		return fmt.Sprintf(feedbackIncorrect, expected)
	}
}

var defaultEvaluator = New()

// Evaluate scores response with the default evaluator.
func Evaluate(response string, expected []string) domain.EvaluationResult {
	return defaultEvaluator.Evaluate(response, expected)
}
