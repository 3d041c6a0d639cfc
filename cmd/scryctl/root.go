package main

import (
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"

	"github.com/phrazzld/scry-engine/internal/domain"
)

// cli carries state shared by all subcommands.
type cli struct {
	configPath string
	app        *application
}

// cleanup releases whatever the last command opened.
func (c *cli) cleanup() {
	if c.app != nil {
		c.app.cleanup()
	}
}

func newRootCmd() (*cobra.Command, *cli) {
	c := &cli{}

	root := &cobra.Command{
		Use:          "scryctl",
		Short:        "Run the scry review engine from the command line",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadAppConfig(c.configPath)
			if err != nil {
				return err
			}
			c.app, err = newApplication(cmd.Context(), cfg, cmd.ErrOrStderr())
			return err
		},
	}

	root.PersistentFlags().StringVar(&c.configPath, "config", "", "Path to a YAML config file (default: ./config.yaml if present)")

	root.AddCommand(
		newEvaluateCmd(c),
		newInferCmd(c),
		newScheduleCmd(c),
		newReviewCmd(c),
	)
	return root, c
}

// stateFlags binds the scheduling columns of a card to flags.
type stateFlags struct {
	ease     float64
	interval float64
	lapses   int
	due      string
}

func (f *stateFlags) register(cmd *cobra.Command) {
	cmd.Flags().Float64Var(&f.ease, "ease", domain.DefaultEase, "Current ease factor")
	cmd.Flags().Float64Var(&f.interval, "interval", domain.DefaultIntervalDays, "Current interval in days")
	cmd.Flags().IntVar(&f.lapses, "lapses", 0, "Lapse count")
	cmd.Flags().StringVar(&f.due, "due", "", "Current due time (RFC 3339); empty for a new card")
}

func (f *stateFlags) state() (domain.ScheduleState, error) {
	s := domain.ScheduleState{
		Ease:         f.ease,
		IntervalDays: f.interval,
		Lapses:       f.lapses,
	}
	if f.due != "" {
		due, err := time.Parse(time.RFC3339, f.due)
		if err != nil {
			return domain.ScheduleState{}, fmt.Errorf("invalid --due: %w", err)
		}
		s.DueAt = &due
	}
	return s, s.Validate()
}

// parseNow returns the --now flag value, or the current time when empty.
func parseNow(value string) (time.Time, error) {
	if value == "" {
		return time.Now().UTC(), nil
	}
	now, err := time.Parse(time.RFC3339, value)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid --now: %w", err)
	}
	return now, nil
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
