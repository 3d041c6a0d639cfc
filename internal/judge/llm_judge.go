package judge

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"text/template"

	"github.com/phrazzld/scry-engine/internal/evaluation"
	"github.com/phrazzld/scry-engine/internal/platform/llm"
)

// Config holds generation settings for judge requests.
type Config struct {
	MaxTokens   int
	Temperature float64
}

// DefaultConfig returns short, low-temperature generations.
func DefaultConfig() Config {
	return Config{
		MaxTokens:   200,
		Temperature: 0.1,
	}
}

// VerdictSchema is the structured output every judge response must match.
var VerdictSchema = &llm.Schema{
	Name:        "answer-verdict",
	Description: "Whether a learner's response means the same as the expected answer",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"result": map[string]any{
				"type":        "string",
				"enum":        []string{"YES", "PARTIAL", "NO"},
				"description": "YES if equivalent, PARTIAL if partly right, NO otherwise",
			},
			"reason": map[string]any{
				"type":        "string",
				"description": "One sentence explaining the verdict",
			},
		},
		"required":             []string{"result", "reason"},
		"additionalProperties": false,
	},
}

const judgeSystemPrompt = `You grade flashcard answers. Decide whether the learner's response expresses the same answer as any of the expected answers.

Instructions:
- Answer YES if the response is equivalent in meaning, even with different wording, spelling variants or abbreviations.
- Answer PARTIAL if the response is on the right track but incomplete or imprecise.
- Answer NO if the response is wrong or unrelated.
- Judge meaning, not style. Ignore capitalization and punctuation.
- Keep the reason to one sentence.`

var judgeUserTemplate = template.Must(template.New("judge").Parse(`{{if .CardContext}}Card: {{.CardContext}}
{{end}}Expected answers:
{{range .ExpectedAnswers}}- {{.}}
{{end}}Learner's response: {{.Response}}`))

func buildJudgeMessage(req evaluation.JudgeRequest) (string, error) {
	var buf bytes.Buffer
	if err := judgeUserTemplate.Execute(&buf, req); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// LLMJudge asks a language model for a verdict.
type LLMJudge struct {
	provider llm.Provider
	cfg      Config
	logger   *slog.Logger
}

// NewLLMJudge creates a judge over provider. A nil provider yields a judge
// that reports itself unavailable.
func NewLLMJudge(provider llm.Provider, cfg Config, logger *slog.Logger) *LLMJudge {
	if logger == nil {
		logger = slog.Default()
	}
	return &LLMJudge{
		provider: provider,
		cfg:      cfg,
		logger:   logger.With("component", "judge"),
	}
}

// Available reports whether a provider is configured.
func (j *LLMJudge) Available() bool {
	return j != nil && j.provider != nil
}

// Judge sends the request to the model and decodes its verdict.
func (j *LLMJudge) Judge(ctx context.Context, req evaluation.JudgeRequest) (*evaluation.Verdict, error) {
	if !j.Available() {
		return nil, ErrUnavailable
	}

	userMsg, err := buildJudgeMessage(req)
	if err != nil {
		return nil, fmt.Errorf("build judge prompt: %w", err)
	}

	resp, err := j.provider.Generate(ctx, llm.Request{
		System:      judgeSystemPrompt,
		Prompt:      userMsg,
		Schema:      VerdictSchema,
		MaxTokens:   j.cfg.MaxTokens,
		Temperature: j.cfg.Temperature,
	})
	if err != nil {
		return nil, fmt.Errorf("LLM judge failed: %w", err)
	}

	var verdict evaluation.Verdict
	if err := json.Unmarshal(resp.Content, &verdict); err != nil {
		return nil, fmt.Errorf("failed to parse verdict: %w", err)
	}

	j.logger.DebugContext(ctx, "verdict received",
		"model", resp.Model,
		"result", string(verdict.Result))
	return &verdict, nil
}
