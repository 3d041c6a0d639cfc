// Package difficulty suggests a recall quality from behavioral signals:
// how correct the answer was, how long it took, whether a hint was used and
// how mature the card is. The suggestion is advisory; the learner confirms
// or overrides it before the scheduler runs.
package difficulty

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/phrazzld/scry-engine/internal/domain"
)

// Signals are the observations one review provides.
type Signals struct {
	ResponseTimeMs   int64
	AnswerScore      float64 // 0..1
	HintUsed         bool
	CardIntervalDays float64 // 0 for a new card
}

// Thresholds holds the response-time cutoffs. Cards whose interval exceeds
// MatureIntervalDays have their quick and normal cutoffs scaled by
// MatureScale, since a well-known card should come back faster.
type Thresholds struct {
	QuickMs            int64
	NormalMs           int64
	SlowMs             int64
	MatureIntervalDays float64
	MatureScale        float64
}

// DefaultThresholds returns the standard cutoffs.
func DefaultThresholds() Thresholds {
	return Thresholds{
		QuickMs:            5000,
		NormalMs:           15000,
		SlowMs:             30000,
		MatureIntervalDays: 7,
		MatureScale:        0.9,
	}
}

// Score cutoffs.
const (
	failScore    = 0.5
	partialScore = 0.7
	strongScore  = 0.9
)

// Inferencer maps Signals to a suggested quality.
type Inferencer struct {
	thresholds Thresholds
}

// New creates an Inferencer. Non-positive cutoffs fall back to the defaults.
func New(t Thresholds) *Inferencer {
	d := DefaultThresholds()
	if t.QuickMs <= 0 {
		t.QuickMs = d.QuickMs
	}
	if t.NormalMs <= 0 {
		t.NormalMs = d.NormalMs
	}
	if t.SlowMs <= 0 {
		t.SlowMs = d.SlowMs
	}
	if t.MatureIntervalDays <= 0 {
		t.MatureIntervalDays = d.MatureIntervalDays
	}
	if t.MatureScale <= 0 || t.MatureScale > 1 {
		t.MatureScale = d.MatureScale
	}
	return &Inferencer{thresholds: t}
}

// Thresholds returns the cutoffs in use.
func (i *Inferencer) Thresholds() Thresholds {
	return i.thresholds
}

// Infer applies the rules in order; the first that matches decides.
//
//	score < 0.5                          → again (0.9)
//	score < 0.7 or hint used             → hard  (0.8)
//	score ≥ 0.9, quick, no hint          → easy  (0.85)
//	score ≥ 0.7, under normal time       → good  (0.8)
//	score ≥ 0.9, over slow time          → good  (0.65)
//	score ≥ 0.9                          → good  (0.7)
//	otherwise                            → good  (0.6)
func (i *Inferencer) Infer(s Signals) domain.InferenceResult {
	score := domain.Clamp01(s.AnswerScore)
	rt := max(s.ResponseTimeMs, 0)

	quick, normal := i.thresholds.QuickMs, i.thresholds.NormalMs
	if s.CardIntervalDays > i.thresholds.MatureIntervalDays {
		quick = scaleMs(quick, i.thresholds.MatureScale)
		normal = scaleMs(normal, i.thresholds.MatureScale)
	}

	switch {
	case score < failScore:
		return result(domain.QualityAgain, 0.9,
			fmt.Sprintf("Answer was mostly incorrect (%s match)", percent(score)))
	case score < partialScore || s.HintUsed:
		return result(domain.QualityHard, 0.8, hardReasoning(score, s.HintUsed))
	case score >= strongScore && rt < quick:
		return result(domain.QualityEasy, 0.85,
			fmt.Sprintf("Quick, accurate recall (%s in %s)", percent(score), seconds(rt)))
	case rt < normal:
		return result(domain.QualityGood, 0.8,
			fmt.Sprintf("Correct recall at normal pace (%s in %s)", percent(score), seconds(rt)))
	case score >= strongScore && rt > i.thresholds.SlowMs:
		return result(domain.QualityGood, 0.65,
			fmt.Sprintf("Accurate but slow recall (%s); may have been difficult", seconds(rt)))
	case score >= strongScore:
		return result(domain.QualityGood, 0.7,
			fmt.Sprintf("Accurate recall with some hesitation (%s)", seconds(rt)))
	default:
		return result(domain.QualityGood, 0.6,
			fmt.Sprintf("Mostly correct recall (%s match in %s)", percent(score), seconds(rt)))
	}
}

// hardReasoning names every condition that made the recall hard.
func hardReasoning(score float64, hintUsed bool) string {
	var reasons []string
	if score < partialScore {
		reasons = append(reasons, "Answer was only partially correct")
	}
	if hintUsed {
		reasons = append(reasons, "Hint was used")
	}
	if len(reasons) == 2 {
		reasons[1] = strings.ToLower(reasons[1][:1]) + reasons[1][1:]
	}
	return fmt.Sprintf("%s (%s match)", strings.Join(reasons, " and "), percent(score))
}

func result(q domain.Quality, confidence float64, reasoning string) domain.InferenceResult {
	return domain.InferenceResult{
		Quality:    q,
		Confidence: domain.Clamp01(confidence),
		Reasoning:  reasoning,
	}
}

func scaleMs(ms int64, factor float64) int64 {
	return int64(math.Round(float64(ms) * factor))
}

func percent(score float64) string {
	return fmt.Sprintf("%.0f%%", score*100)
}

func seconds(ms int64) string {
	return fmt.Sprintf("%.1fs", (time.Duration(ms) * time.Millisecond).Seconds())
}

var defaultInferencer = New(DefaultThresholds())

// Infer applies the default thresholds.
func Infer(s Signals) domain.InferenceResult {
	return defaultInferencer.Infer(s)
}
