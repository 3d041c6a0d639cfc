package evaluation

import (
	"context"
	"strings"

	"github.com/phrazzld/scry-engine/internal/domain"
	"github.com/phrazzld/scry-engine/internal/platform/logger"
	"github.com/phrazzld/scry-engine/internal/redact"
)

// The uncertain band: sync scores in [AIBandLow, AIBandHigh) are sent to the
// semantic judge.
const (
	AIBandLow  = 0.4
	AIBandHigh = domain.CorrectThreshold
)

// VerdictResult is the judge's classification of a response.
type VerdictResult string

// Possible verdicts
const (
	VerdictYes     VerdictResult = "YES"
	VerdictPartial VerdictResult = "PARTIAL"
	VerdictNo      VerdictResult = "NO"
)

var verdictScores = map[VerdictResult]float64{
	VerdictYes:     0.95,
	VerdictPartial: 0.7,
	VerdictNo:      0.3,
}

// Score returns the evaluation score for v and whether v is a known verdict.
// Matching is case-insensitive.
func (v VerdictResult) Score() (float64, bool) {
	score, ok := verdictScores[VerdictResult(strings.ToUpper(strings.TrimSpace(string(v))))]
	return score, ok
}

// Verdict is a semantic judge's structured answer.
type Verdict struct {
	Result VerdictResult `json:"result"`
	Reason string        `json:"reason"`
}

// JudgeRequest is what a semantic judge sees.
type JudgeRequest struct {
	ExpectedAnswers []string `json:"expected_answers"`
	Response        string   `json:"response"`
	CardContext     string   `json:"card_context,omitempty"`
}

// SemanticJudge decides whether a response means the same as the expected
// answers when string matching is inconclusive.
type SemanticJudge interface {
	// Available reports whether the judge can currently be called.
	Available() bool

	// Judge returns a verdict or an error. Implementations must honor ctx.
	Judge(ctx context.Context, req JudgeRequest) (*Verdict, error)
}

// Options controls EvaluateAsync.
type Options struct {
	UseAI       bool
	CardContext string
}

// EvaluateAsync runs Evaluate and, when opts.UseAI is set and the score is
// uncertain, asks the semantic judge for a verdict. Every judge failure
// (unavailable, error, unknown verdict, cancelled context) yields the
// synchronous result unchanged; no error is ever returned.
func (e *Evaluator) EvaluateAsync(ctx context.Context, response string, expected []string, opts Options) domain.EvaluationResult {
	result, bestAnswer := e.evaluate(response, expected)
	if !opts.UseAI || e.judge == nil {
		return result
	}
	if result.Score < AIBandLow || result.Score >= AIBandHigh {
		return result
	}

	log := e.logger
	if l := logger.FromContextOrDefault(ctx, nil); l != nil {
		log = l.With("component", "evaluation")
	}
	if !e.judge.Available() {
		log.DebugContext(ctx, "semantic judge unavailable, keeping string match result",
			"score", result.Score)
		return result
	}

	if e.judgeTimeout > 0 {
		if _, ok := ctx.Deadline(); !ok {
			var cancel context.CancelFunc
			ctx, cancel = context.WithTimeout(ctx, e.judgeTimeout)
			defer cancel()
		}
	}

	verdict, err := e.judge.Judge(ctx, JudgeRequest{
		ExpectedAnswers: expected,
		Response:        response,
		CardContext:     opts.CardContext,
	})
	if err != nil {
		log.WarnContext(ctx, "semantic judge failed, keeping string match result",
			"error", redact.Error(err),
			"score", result.Score)
		return result
	}
	if verdict == nil {
		log.WarnContext(ctx, "semantic judge returned no verdict")
		return result
	}

	score, ok := verdict.Result.Score()
	if !ok {
		log.WarnContext(ctx, "semantic judge returned unknown verdict",
			"verdict", redact.Preview(string(verdict.Result), 32))
		return result
	}

	log.DebugContext(ctx, "semantic judge verdict applied",
		"verdict", string(verdict.Result),
		"sync_score", result.Score,
		"score", score)

	ai := newResult(score, domain.MatchAI, bestAnswer)
	ai.AIUsed = true
	ai.Reason = verdict.Reason
	return ai
}
