package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/osse101/Cultivation_Go/internal/temporal"
)

const defaultTimezone = "Asia/Shanghai"

func newAlmanacCmd() *cobra.Command {
	var at, tz string

	cmd := &cobra.Command{
		Use:   "almanac",
		Short: "Print the calendar bonuses for an instant",
		Long: `Print the annual cycle, seasonal qi, meridian and lunar phase for an instant.

Weather is not looked up; the output is deterministic for a given --at and --tz.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			loc, err := time.LoadLocation(tz)
			if err != nil {
				return fmt.Errorf("invalid --tz %q: %w", tz, err)
			}

			instant := time.Now()
			if at != "" {
				instant, err = time.Parse(time.RFC3339, at)
				if err != nil {
					return fmt.Errorf("invalid --at %q: %w", at, err)
				}
			}

			engine := temporal.NewEngine(nil, temporal.Config{Location: loc})
			tc, err := engine.Calendar(instant)
			if err != nil {
				return err
			}
			return writeJSON(cmd.OutOrStdout(), tc)
		},
	}

	cmd.Flags().StringVar(&at, "at", "", "RFC3339 instant (default now)")
	cmd.Flags().StringVar(&tz, "tz", defaultTimezone, "IANA time zone for calendar fields")
	return cmd
}
