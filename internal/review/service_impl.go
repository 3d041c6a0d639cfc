package review

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/phrazzld/scry-engine/internal/difficulty"
	"github.com/phrazzld/scry-engine/internal/domain"
	"github.com/phrazzld/scry-engine/internal/domain/srs"
	"github.com/phrazzld/scry-engine/internal/evaluation"
	"github.com/phrazzld/scry-engine/internal/events"
	"github.com/phrazzld/scry-engine/internal/platform/logger"
	"github.com/phrazzld/scry-engine/internal/redact"
)

// Verify interface compliance at compile time
var _ Service = (*serviceImpl)(nil)

type serviceImpl struct {
	evaluator  *evaluation.Evaluator
	inferencer *difficulty.Inferencer
	scheduler  srs.Service
	emitter    events.Emitter
	validate   *validator.Validate
	logger     *slog.Logger
}

// NewService creates a review Service. A nil emitter disables event
// emission.
func NewService(
	evaluator *evaluation.Evaluator,
	inferencer *difficulty.Inferencer,
	scheduler srs.Service,
	emitter events.Emitter,
	logger *slog.Logger,
) Service {
	if evaluator == nil {
		panic("evaluator cannot be nil")
	}
	if inferencer == nil {
		panic("inferencer cannot be nil")
	}
	if scheduler == nil {
		panic("scheduler cannot be nil")
	}

	if logger == nil {
		logger = slog.Default()
	}

	return &serviceImpl{
		evaluator:  evaluator,
		inferencer: inferencer,
		scheduler:  scheduler,
		emitter:    emitter,
		validate:   validator.New(),
		logger:     logger.With(slog.String("component", "review_service")),
	}
}

// Assess implements Service.Assess.
func (s *serviceImpl) Assess(ctx context.Context, sub Submission) (*Assessment, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := s.validate.Struct(sub); err != nil {
		log.Warn("invalid submission",
			slog.String("card_id", sub.CardID.String()),
			slog.String("error", err.Error()))
		return nil, NewAssessError("validation failed", fmt.Errorf("%w: %w", ErrInvalidSubmission, err))
	}
	if err := sub.State.Validate(); err != nil {
		return nil, NewAssessError("validation failed", fmt.Errorf("%w: %w", ErrInvalidSubmission, err))
	}

	result := s.evaluator.EvaluateAsync(ctx, sub.Response, sub.ExpectedAnswers, evaluation.Options{
		UseAI:       sub.UseAI,
		CardContext: sub.CardContext,
	})

	var interval float64
	if !sub.State.IsNew() {
		interval = sub.State.IntervalDays
	}
	suggestion := s.inferencer.Infer(difficulty.Signals{
		ResponseTimeMs:   sub.ResponseTimeMs,
		AnswerScore:      result.Score,
		HintUsed:         sub.HintUsed,
		CardIntervalDays: interval,
	})

	log.Debug("assessed submission",
		slog.String("card_id", sub.CardID.String()),
		slog.Float64("score", result.Score),
		slog.String("match_type", string(result.MatchType)),
		slog.Bool("ai_used", result.AIUsed),
		slog.String("suggested_quality", string(suggestion.Quality)),
		slog.Float64("confidence", suggestion.Confidence))

	return &Assessment{
		Submission: sub,
		Evaluation: result,
		Suggestion: suggestion,
	}, nil
}

// Confirm implements Service.Confirm.
func (s *serviceImpl) Confirm(
	ctx context.Context,
	a *Assessment,
	final domain.Quality,
	now time.Time,
) (*Outcome, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if a == nil {
		return nil, NewConfirmError("no assessment", ErrNilAssessment)
	}
	cardID := a.Submission.CardID.String()

	next, err := s.scheduler.UpdateSchedule(a.Submission.State, final, now)
	if err != nil {
		log.Warn("failed to update schedule",
			slog.String("card_id", cardID),
			slog.String("quality", string(final)),
			slog.String("error", err.Error()))
		return nil, NewConfirmError("failed to update schedule", err)
	}

	outcome := &Outcome{
		State: next,
		Event: domain.SessionEvent{
			ID:                  uuid.New(),
			CardID:              a.Submission.CardID,
			Response:            a.Submission.Response,
			Quality:             final,
			Score:               a.Evaluation.Score,
			MatchType:           a.Evaluation.MatchType,
			ResponseTimeMs:      a.Submission.ResponseTimeMs,
			HintUsed:            a.Submission.HintUsed,
			InferredQuality:     a.Suggestion.Quality,
			InferenceConfidence: a.Suggestion.Confidence,
			UserOverrode:        final != a.Suggestion.Quality,
			NextDue:             *next.DueAt,
			ReviewedAt:          now.UTC(),
		},
	}

	log.Info("review completed",
		slog.String("card_id", cardID),
		slog.String("quality", string(final)),
		slog.Bool("user_overrode", outcome.Event.UserOverrode),
		slog.Float64("interval_days", next.IntervalDays),
		slog.Time("next_due", outcome.Event.NextDue))

	if err := s.emit(ctx, outcome.Event, now); err != nil {
		log.Error("failed to deliver session event",
			slog.String("card_id", cardID),
			slog.String("event_id", outcome.Event.ID.String()),
			slog.String("error", redact.Error(err)))
		return outcome, NewConfirmError("card scheduled but event not recorded", errors.Join(ErrEventDelivery, err))
	}

	return outcome, nil
}

func (s *serviceImpl) emit(ctx context.Context, se domain.SessionEvent, now time.Time) error {
	if s.emitter == nil {
		return nil
	}
	event, err := events.NewEvent(events.TypeReviewCompleted, se, now)
	if err != nil {
		return err
	}
	return s.emitter.Emit(ctx, event)
}
