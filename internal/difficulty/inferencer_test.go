package difficulty

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/phrazzld/scry-engine/internal/domain"
)

const epsilon = 1e-9

func TestInfer_Rules(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name       string
		signals    Signals
		quality    domain.Quality
		confidence float64
		reasoning  string
	}{
		{
			name:       "incorrect answer",
			signals:    Signals{ResponseTimeMs: 2000, AnswerScore: 0.3},
			quality:    domain.QualityAgain,
			confidence: 0.9,
			reasoning:  "Answer was mostly incorrect (30% match)",
		},
		{
			name:       "incorrect even with hint",
			signals:    Signals{ResponseTimeMs: 2000, AnswerScore: 0.49, HintUsed: true},
			quality:    domain.QualityAgain,
			confidence: 0.9,
		},
		{
			name:       "partially correct",
			signals:    Signals{ResponseTimeMs: 2000, AnswerScore: 0.6},
			quality:    domain.QualityHard,
			confidence: 0.8,
			reasoning:  "Answer was only partially correct (60% match)",
		},
		{
			name:       "quick and accurate",
			signals:    Signals{ResponseTimeMs: 3000, AnswerScore: 0.95},
			quality:    domain.QualityEasy,
			confidence: 0.85,
			reasoning:  "Quick, accurate recall (95% in 3.0s)",
		},
		{
			name:       "hint overrides easy",
			signals:    Signals{ResponseTimeMs: 5000, AnswerScore: 0.95, HintUsed: true},
			quality:    domain.QualityHard,
			confidence: 0.8,
			reasoning:  "Hint was used (95% match)",
		},
		{
			name:       "partial answer with hint names both",
			signals:    Signals{ResponseTimeMs: 4000, AnswerScore: 0.6, HintUsed: true},
			quality:    domain.QualityHard,
			confidence: 0.8,
			reasoning:  "Answer was only partially correct and hint was used (60% match)",
		},
		{
			name:       "quick cutoff is exclusive",
			signals:    Signals{ResponseTimeMs: 5000, AnswerScore: 0.95},
			quality:    domain.QualityGood,
			confidence: 0.8,
		},
		{
			name:       "mostly correct at normal pace",
			signals:    Signals{ResponseTimeMs: 8000, AnswerScore: 0.8},
			quality:    domain.QualityGood,
			confidence: 0.8,
			reasoning:  "Correct recall at normal pace (80% in 8.0s)",
		},
		{
			name:       "accurate but slow",
			signals:    Signals{ResponseTimeMs: 45000, AnswerScore: 0.95},
			quality:    domain.QualityGood,
			confidence: 0.65,
			reasoning:  "Accurate but slow recall (45.0s); may have been difficult",
		},
		{
			name:       "slow cutoff is exclusive",
			signals:    Signals{ResponseTimeMs: 30000, AnswerScore: 0.95},
			quality:    domain.QualityGood,
			confidence: 0.7,
		},
		{
			name:       "accurate with hesitation",
			signals:    Signals{ResponseTimeMs: 20000, AnswerScore: 1},
			quality:    domain.QualityGood,
			confidence: 0.7,
			reasoning:  "Accurate recall with some hesitation (20.0s)",
		},
		{
			name:       "fallback",
			signals:    Signals{ResponseTimeMs: 20000, AnswerScore: 0.75},
			quality:    domain.QualityGood,
			confidence: 0.6,
			reasoning:  "Mostly correct recall (75% match in 20.0s)",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			got := Infer(tc.signals)
			assert.Equal(t, tc.quality, got.Quality)
			assert.InDelta(t, tc.confidence, got.Confidence, epsilon)
			if tc.reasoning != "" {
				assert.Equal(t, tc.reasoning, got.Reasoning)
			}
			assert.NotEmpty(t, got.Reasoning)
		})
	}
}

func TestInfer_HintedFastAnswerMentionsHint(t *testing.T) {
	t.Parallel()

	got := Infer(Signals{ResponseTimeMs: 5000, AnswerScore: 0.95, HintUsed: true})
	assert.Equal(t, domain.QualityHard, got.Quality)
	assert.Contains(t, got.Reasoning, "Hint")
}

func TestInfer_MatureCardsTightenCutoffs(t *testing.T) {
	t.Parallel()

	// 4.8s is quick for a young card but not for one scheduled > 7 days out
	young := Infer(Signals{ResponseTimeMs: 4800, AnswerScore: 0.95, CardIntervalDays: 3})
	mature := Infer(Signals{ResponseTimeMs: 4800, AnswerScore: 0.95, CardIntervalDays: 10})
	assert.Equal(t, domain.QualityEasy, young.Quality)
	assert.Equal(t, domain.QualityGood, mature.Quality)
	assert.InDelta(t, 0.8, mature.Confidence, epsilon)

	// 14s is normal pace at 15s but not at 13.5s
	young = Infer(Signals{ResponseTimeMs: 14000, AnswerScore: 0.8, CardIntervalDays: 7})
	mature = Infer(Signals{ResponseTimeMs: 14000, AnswerScore: 0.8, CardIntervalDays: 7.5})
	assert.InDelta(t, 0.8, young.Confidence, epsilon)
	assert.InDelta(t, 0.6, mature.Confidence, epsilon)
}

func TestInfer_ClampsInputs(t *testing.T) {
	t.Parallel()

	got := Infer(Signals{ResponseTimeMs: -50, AnswerScore: 1.7})
	assert.Equal(t, domain.QualityEasy, got.Quality)
	assert.Equal(t, "Quick, accurate recall (100% in 0.0s)", got.Reasoning)

	got = Infer(Signals{ResponseTimeMs: 1000, AnswerScore: -0.2})
	assert.Equal(t, domain.QualityAgain, got.Quality)
}

func TestInfer_ConfidenceInRange(t *testing.T) {
	t.Parallel()

	for _, score := range []float64{0, 0.25, 0.5, 0.69, 0.7, 0.89, 0.9, 1} {
		for _, rt := range []int64{0, 1000, 5000, 15000, 31000} {
			for _, hint := range []bool{false, true} {
				got := Infer(Signals{ResponseTimeMs: rt, AnswerScore: score, HintUsed: hint})
				assert.True(t, got.Quality.Valid())
				assert.GreaterOrEqual(t, got.Confidence, 0.0)
				assert.LessOrEqual(t, got.Confidence, 1.0)
			}
		}
	}
}

func TestNew_CustomThresholds(t *testing.T) {
	t.Parallel()

	inf := New(Thresholds{QuickMs: 2000})
	assert.Equal(t, int64(2000), inf.Thresholds().QuickMs)
	assert.Equal(t, DefaultThresholds().NormalMs, inf.Thresholds().NormalMs)
	assert.InDelta(t, DefaultThresholds().MatureScale, inf.Thresholds().MatureScale, epsilon)

	got := inf.Infer(Signals{ResponseTimeMs: 3000, AnswerScore: 0.95})
	assert.Equal(t, domain.QualityGood, got.Quality)
}
