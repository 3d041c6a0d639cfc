package review

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/phrazzld/scry-engine/internal/domain"
)

// Submission is one answer to a card, as captured by the client.
type Submission struct {
	CardID          uuid.UUID            `json:"card_id"          validate:"required"`
	Response        string               `json:"response"         validate:"max=2000"`
	ExpectedAnswers []string             `json:"expected_answers" validate:"required,min=1,max=20,dive,required,max=500"`
	ResponseTimeMs  int64                `json:"response_time_ms" validate:"gte=0"`
	HintUsed        bool                 `json:"hint_used"`
	UseAI           bool                 `json:"use_ai"`
	CardContext     string               `json:"card_context"     validate:"max=2000"`
	State           domain.ScheduleState `json:"state"`
}

// Assessment is the engine's view of a submission before the learner
// confirms a rating.
type Assessment struct {
	Submission Submission              `json:"submission"`
	Evaluation domain.EvaluationResult `json:"evaluation"`
	Suggestion domain.InferenceResult  `json:"suggestion"`
}

// Outcome is the result of a confirmed review.
type Outcome struct {
	State domain.ScheduleState `json:"state"`
	Event domain.SessionEvent  `json:"event"`
}

// Service runs the review flow for a single answer.
type Service interface {
	// Assess validates the submission, evaluates the response and suggests a
	// quality.
	//
	// Returns:
	//   - (*Assessment, nil) on success; AI failures degrade to string matching
	//   - (nil, *ServiceError wrapping ErrInvalidSubmission) on validation failure
	Assess(ctx context.Context, sub Submission) (*Assessment, error)

	// Confirm schedules the card with the learner's final quality and emits a
	// review.completed event carrying the SessionEvent.
	//
	// Returns:
	//   - (*Outcome, nil) on success
	//   - (nil, *ServiceError) wrapping ErrNilAssessment,
	//     domain.ErrInvalidQuality or domain.ErrInvalidState
	//   - (*Outcome, *ServiceError wrapping ErrEventDelivery) when the card was
	//     scheduled but a handler failed; the outcome is still valid
	Confirm(ctx context.Context, a *Assessment, final domain.Quality, now time.Time) (*Outcome, error)
}
