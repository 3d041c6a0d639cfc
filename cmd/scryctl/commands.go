package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/phrazzld/scry-engine/internal/difficulty"
	"github.com/phrazzld/scry-engine/internal/domain"
	"github.com/phrazzld/scry-engine/internal/evaluation"
	"github.com/phrazzld/scry-engine/internal/review"
)

func newEvaluateCmd(c *cli) *cobra.Command {
	var (
		expected    []string
		useAI       bool
		cardContext string
	)

	cmd := &cobra.Command{
		Use:   "evaluate <response>",
		Short: "Score a response against the expected answers",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			result := c.app.evaluator.EvaluateAsync(cmd.Context(), args[0], expected, evaluation.Options{
				UseAI:       useAI,
				CardContext: cardContext,
			})
			return writeJSON(cmd.OutOrStdout(), result)
		},
	}

	cmd.Flags().StringArrayVarP(&expected, "expected", "e", nil, "Expected answer (repeatable)")
	cmd.Flags().BoolVar(&useAI, "ai", false, "Ask the semantic judge when string matching is inconclusive")
	cmd.Flags().StringVar(&cardContext, "context", "", "Card question, passed to the semantic judge")
	_ = cmd.MarkFlagRequired("expected")
	return cmd
}

func newInferCmd(c *cli) *cobra.Command {
	var signals difficulty.Signals

	cmd := &cobra.Command{
		Use:   "infer",
		Short: "Suggest a quality rating from review signals",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return writeJSON(cmd.OutOrStdout(), c.app.inferencer.Infer(signals))
		},
	}

	cmd.Flags().Int64Var(&signals.ResponseTimeMs, "time-ms", 0, "Response time in milliseconds")
	cmd.Flags().Float64Var(&signals.AnswerScore, "score", 0, "Answer score in [0, 1]")
	cmd.Flags().BoolVar(&signals.HintUsed, "hint", false, "A hint was used")
	cmd.Flags().Float64Var(&signals.CardIntervalDays, "card-interval", 0, "Current card interval in days")
	return cmd
}

func newScheduleCmd(c *cli) *cobra.Command {
	var (
		state    stateFlags
		quality  string
		now      string
		postpone int
	)

	cmd := &cobra.Command{
		Use:   "schedule",
		Short: "Compute a card's next schedule for a confirmed quality",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			prior, err := state.state()
			if err != nil {
				return err
			}
			at, err := parseNow(now)
			if err != nil {
				return err
			}

			if postpone > 0 {
				next, err := c.app.scheduler.PostponeReview(prior, postpone, at)
				if err != nil {
					return err
				}
				return writeJSON(cmd.OutOrStdout(), next)
			}

			q, err := domain.ParseQuality(quality)
			if err != nil {
				return err
			}
			next, err := c.app.scheduler.UpdateSchedule(prior, q, at)
			if err != nil {
				return err
			}
			return writeJSON(cmd.OutOrStdout(), next)
		},
	}

	state.register(cmd)
	cmd.Flags().StringVarP(&quality, "quality", "q", "", "Confirmed quality: "+qualityList())
	cmd.Flags().StringVar(&now, "now", "", "Review time (RFC 3339); defaults to the current time")
	cmd.Flags().IntVar(&postpone, "postpone", 0, "Postpone the review by this many days instead of grading")
	cmd.MarkFlagsOneRequired("quality", "postpone")
	cmd.MarkFlagsMutuallyExclusive("quality", "postpone")
	return cmd
}

func newReviewCmd(c *cli) *cobra.Command {
	var (
		sub     review.Submission
		state   stateFlags
		cardID  string
		quality string
		now     string
	)

	cmd := &cobra.Command{
		Use:   "review <response>",
		Short: "Evaluate, suggest and schedule one answer",
		Long: `Runs the full review flow for one answer. Without --quality the suggested
rating is accepted. The session event is logged to stderr.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var err error
			sub.Response = args[0]
			if sub.State, err = state.state(); err != nil {
				return err
			}
			if sub.CardID, err = parseCardID(cardID); err != nil {
				return err
			}
			at, err := parseNow(now)
			if err != nil {
				return err
			}

			assessment, err := c.app.reviewService.Assess(cmd.Context(), sub)
			if err != nil {
				return err
			}

			final := assessment.Suggestion.Quality
			if quality != "" {
				if final, err = domain.ParseQuality(quality); err != nil {
					return err
				}
			}

			outcome, err := c.app.reviewService.Confirm(cmd.Context(), assessment, final, at)
			if err != nil && !errors.Is(err, review.ErrEventDelivery) {
				return err
			}

			return writeJSON(cmd.OutOrStdout(), struct {
				Evaluation domain.EvaluationResult `json:"evaluation"`
				Suggestion domain.InferenceResult  `json:"suggestion"`
				*review.Outcome
			}{assessment.Evaluation, assessment.Suggestion, outcome})
		},
	}

	state.register(cmd)
	cmd.Flags().StringArrayVarP(&sub.ExpectedAnswers, "expected", "e", nil, "Expected answer (repeatable)")
	cmd.Flags().Int64Var(&sub.ResponseTimeMs, "time-ms", 0, "Response time in milliseconds")
	cmd.Flags().BoolVar(&sub.HintUsed, "hint", false, "A hint was used")
	cmd.Flags().BoolVar(&sub.UseAI, "ai", false, "Ask the semantic judge when string matching is inconclusive")
	cmd.Flags().StringVar(&sub.CardContext, "context", "", "Card question, passed to the semantic judge")
	cmd.Flags().StringVar(&cardID, "card", "", "Card ID (UUID); a random one is used when empty")
	cmd.Flags().StringVarP(&quality, "quality", "q", "", "Override the suggested quality: "+qualityList())
	cmd.Flags().StringVar(&now, "now", "", "Review time (RFC 3339); defaults to the current time")
	_ = cmd.MarkFlagRequired("expected")
	return cmd
}

func parseCardID(s string) (uuid.UUID, error) {
	if s == "" {
		return uuid.New(), nil
	}
	id, err := uuid.Parse(s)
	if err != nil {
		return uuid.Nil, fmt.Errorf("invalid --card: %w", err)
	}
	return id, nil
}

func qualityList() string {
	names := make([]string, 0, len(domain.Qualities()))
	for _, q := range domain.Qualities() {
		names = append(names, string(q))
	}
	return strings.Join(names, ", ")
}
