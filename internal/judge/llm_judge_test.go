package judge

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/phrazzld/scry-engine/internal/evaluation"
	"github.com/phrazzld/scry-engine/internal/platform/llm"
)

var batRequest = evaluation.JudgeRequest{
	ExpectedAnswers: []string{"bat", "flying fox"},
	Response:        "cat",
	CardContext:     "Which mammal can truly fly?",
}

func TestLLMJudge_Judge(t *testing.T) {
	t.Parallel()

	mock := llm.NewMockProvider(llm.MockResponse{
		Content: json.RawMessage(`{"result":"NO","reason":"A cat is not a flying mammal."}`),
	})
	j := NewLLMJudge(mock, DefaultConfig(), nil)
	require.True(t, j.Available())

	verdict, err := j.Judge(context.Background(), batRequest)
	require.NoError(t, err)
	assert.Equal(t, evaluation.VerdictNo, verdict.Result)
	assert.Equal(t, "A cat is not a flying mammal.", verdict.Reason)

	calls := mock.Calls()
	require.Len(t, calls, 1)
	assert.Same(t, VerdictSchema, calls[0].Schema)
	assert.Equal(t, judgeSystemPrompt, calls[0].System)
	assert.Equal(t, 200, calls[0].MaxTokens)
	assert.Equal(t, "Card: Which mammal can truly fly?\nExpected answers:\n- bat\n- flying fox\nLearner's response: cat",
		calls[0].Prompt)
}

func TestLLMJudge_Errors(t *testing.T) {
	t.Parallel()

	t.Run("provider error", func(t *testing.T) {
		t.Parallel()

		j := NewLLMJudge(llm.NewMockProvider(), DefaultConfig(), nil)
		_, err := j.Judge(context.Background(), batRequest)
		var unavail *llm.ErrProviderUnavailable
		assert.ErrorAs(t, err, &unavail)
	})

	t.Run("schema violation", func(t *testing.T) {
		t.Parallel()

		mock := llm.NewMockProvider(llm.MockResponse{Content: json.RawMessage(`{"result":"MAYBE","reason":"?"}`)})
		_, err := NewLLMJudge(mock, DefaultConfig(), nil).Judge(context.Background(), batRequest)
		var inv *llm.ErrInvalidResponse
		assert.ErrorAs(t, err, &inv)
	})

	t.Run("no provider", func(t *testing.T) {
		t.Parallel()

		j := NewLLMJudge(nil, DefaultConfig(), nil)
		assert.False(t, j.Available())
		_, err := j.Judge(context.Background(), batRequest)
		assert.ErrorIs(t, err, ErrUnavailable)
	})
}

func TestBuildJudgeMessage_WithoutContext(t *testing.T) {
	t.Parallel()

	msg, err := buildJudgeMessage(evaluation.JudgeRequest{
		ExpectedAnswers: []string{"Paris"},
		Response:        "paree",
	})
	require.NoError(t, err)
	assert.Equal(t, "Expected answers:\n- Paris\nLearner's response: paree", msg)
}

// The judge plugs into the evaluator end to end.
func TestLLMJudge_WithEvaluator(t *testing.T) {
	t.Parallel()

	mock := llm.NewMockProvider(llm.MockResponse{
		Content: json.RawMessage(`{"result":"YES","reason":"Same animal."}`),
	})
	e := evaluation.New(evaluation.WithJudge(NewLLMJudge(mock, DefaultConfig(), nil)))

	got := e.EvaluateAsync(context.Background(), "cat", []string{"bat"}, evaluation.Options{UseAI: true})
	assert.True(t, got.AIUsed)
	assert.True(t, got.IsCorrect)
	assert.Equal(t, "Same animal.", got.Reason)
}
