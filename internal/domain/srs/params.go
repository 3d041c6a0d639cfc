package srs

import (
	"github.com/phrazzld/scry-engine/internal/domain"
)

// DefaultMaxIntervalDays caps interval growth at 100 years.
const DefaultMaxIntervalDays = 36500

// Params defines all configurable parameters for the SM-2 scheduler
type Params struct {
	// Core limits
	MinEaseFactor   float64
	MaxIntervalDays float64

	// Values for a never-reviewed card
	InitialEaseFactor float64
	InitialInterval   float64

	// Lapse handling: grades below LapseGradeThreshold reset the interval
	// to LapseInterval days and count as a lapse.
	LapseGradeThreshold int
	LapseInterval       float64
}

// ParamsConfig allows overriding the default parameters when creating a new Params instance
type ParamsConfig struct {
	MinEaseFactor       float64
	MaxIntervalDays     float64
	InitialEaseFactor   float64
	InitialInterval     float64
	LapseGradeThreshold int
	LapseInterval       float64
}

// NewDefaultParams creates a new Params instance with the classic SM-2 values
func NewDefaultParams() *Params {
	return &Params{
		MinEaseFactor:       domain.MinEase,
		MaxIntervalDays:     DefaultMaxIntervalDays,
		InitialEaseFactor:   domain.DefaultEase,
		InitialInterval:     domain.DefaultIntervalDays,
		LapseGradeThreshold: 3,
		LapseInterval:       1,
	}
}

// NewParams creates a new Params instance with custom configuration.
// Zero values in config keep the defaults.
func NewParams(config ParamsConfig) *Params {
	params := NewDefaultParams()

	if config.MinEaseFactor > 0 {
		params.MinEaseFactor = config.MinEaseFactor
	}
	if config.MaxIntervalDays > 0 {
		params.MaxIntervalDays = config.MaxIntervalDays
	}
	if config.InitialEaseFactor > 0 {
		params.InitialEaseFactor = config.InitialEaseFactor
	}
	if config.InitialInterval > 0 {
		params.InitialInterval = config.InitialInterval
	}
	if config.LapseGradeThreshold > 0 {
		params.LapseGradeThreshold = config.LapseGradeThreshold
	}
	if config.LapseInterval > 0 {
		params.LapseInterval = config.LapseInterval
	}

	// The initial ease can never start below the floor
	if params.InitialEaseFactor < params.MinEaseFactor {
		params.InitialEaseFactor = params.MinEaseFactor
	}

	return params
}
