package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/phrazzld/scry-engine/internal/domain"
)

// runCLI executes scryctl with a test config and returns stdout and stderr.
// These tests do not run in parallel: logger setup replaces slog's default.
func runCLI(t *testing.T, args ...string) (string, string, error) {
	t.Helper()

	path := filepath.Join(t.TempDir(), "scry.yaml")
	content := "server:\n  log_level: debug\nllm:\n  provider: mock\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	root, c := newRootCmd()
	var stdout, stderr bytes.Buffer
	root.SetOut(&stdout)
	root.SetErr(&stderr)
	root.SetArgs(append([]string{"--config", path}, args...))

	err := root.Execute()
	c.cleanup()
	return stdout.String(), stderr.String(), err
}

func TestEvaluateCmd(t *testing.T) {
	out, _, err := runCLI(t, "evaluate", "USA", "-e", "United States")
	require.NoError(t, err)

	var got domain.EvaluationResult
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	assert.Equal(t, domain.MatchSynonym, got.MatchType)
	assert.True(t, got.IsCorrect)
}

func TestEvaluateCmd_AIFallsBack(t *testing.T) {
	// The mock provider has no canned verdicts, so the judge fails and the
	// string-match result stands.
	out, logs, err := runCLI(t, "evaluate", "cat", "-e", "bat", "--ai")
	require.NoError(t, err)

	var got domain.EvaluationResult
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	assert.False(t, got.AIUsed)
	assert.Equal(t, domain.MatchFuzzy, got.MatchType)
	assert.Contains(t, logs, "semantic judge failed")
}

func TestInferCmd(t *testing.T) {
	out, _, err := runCLI(t, "infer", "--time-ms", "3000", "--score", "0.95")
	require.NoError(t, err)

	var got domain.InferenceResult
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	assert.Equal(t, domain.QualityEasy, got.Quality)
	assert.Equal(t, "Quick, accurate recall (95% in 3.0s)", got.Reasoning)
}

func TestScheduleCmd(t *testing.T) {
	out, _, err := runCLI(t, "schedule", "-q", "again", "--ease", "1.3", "--interval", "10",
		"--lapses", "2", "--now", "2026-01-01T00:00:00Z")
	require.NoError(t, err)

	var got domain.ScheduleState
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	assert.InDelta(t, 1.3, got.Ease, 1e-9)
	assert.InDelta(t, 1.0, got.IntervalDays, 1e-9)
	assert.Equal(t, 3, got.Lapses)
	require.NotNil(t, got.DueAt)
	assert.Equal(t, "2026-01-02T00:00:00Z", got.DueAt.UTC().Format("2006-01-02T15:04:05Z07:00"))
}

func TestScheduleCmd_Postpone(t *testing.T) {
	out, _, err := runCLI(t, "schedule", "--postpone", "3", "--due", "2026-01-10T08:00:00Z")
	require.NoError(t, err)

	var got domain.ScheduleState
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	require.NotNil(t, got.DueAt)
	assert.Equal(t, 13, got.DueAt.Day())
}

func TestScheduleCmd_Errors(t *testing.T) {
	testCases := [][]string{
		{"schedule", "-q", "perfect"},
		{"schedule"},
		{"schedule", "-q", "good", "--postpone", "2"},
		{"schedule", "-q", "good", "--due", "yesterday"},
		{"schedule", "-q", "good", "--ease", "-1"},
	}
	for _, args := range testCases {
		_, _, err := runCLI(t, args...)
		assert.Error(t, err, "%v", args)
	}
}

func TestReviewCmd(t *testing.T) {
	out, logs, err := runCLI(t, "review", "Paris", "-e", "Paris", "--time-ms", "3000",
		"--card", "3f1c4a8e-2b7d-4c1e-9a6f-0d5b8e7c2a91", "--now", "2026-01-01T00:00:00Z")
	require.NoError(t, err)

	var got struct {
		Suggestion domain.InferenceResult `json:"suggestion"`
		State      domain.ScheduleState   `json:"state"`
		Event      domain.SessionEvent    `json:"event"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	assert.Equal(t, domain.QualityEasy, got.Suggestion.Quality)
	assert.Equal(t, domain.QualityEasy, got.Event.Quality)
	assert.False(t, got.Event.UserOverrode)
	assert.Equal(t, "3f1c4a8e-2b7d-4c1e-9a6f-0d5b8e7c2a91", got.Event.CardID.String())
	assert.NotNil(t, got.State.DueAt)

	assert.Contains(t, logs, "review.completed")
}

func TestReviewCmd_Override(t *testing.T) {
	out, _, err := runCLI(t, "review", "Paris", "-e", "Paris", "-q", "hard")
	require.NoError(t, err)

	var got struct {
		Event domain.SessionEvent `json:"event"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	assert.Equal(t, domain.QualityHard, got.Event.Quality)
	assert.True(t, got.Event.UserOverrode)
}

func TestReviewCmd_InvalidSubmission(t *testing.T) {
	_, _, err := runCLI(t, "review", "Paris", "-e", "", "--time-ms", "10")
	assert.Error(t, err)

	_, _, err = runCLI(t, "review", "Paris", "-e", "Paris", "--card", "not-a-uuid")
	assert.ErrorContains(t, err, "invalid --card")
}

func TestMissingConfigFile(t *testing.T) {
	root, c := newRootCmd()
	root.SetOut(&bytes.Buffer{})
	root.SetErr(&bytes.Buffer{})
	root.SetArgs([]string{"--config", filepath.Join(t.TempDir(), "missing.yaml"), "infer"})

	err := root.Execute()
	c.cleanup()
	assert.ErrorContains(t, err, "failed to load configuration")
}
