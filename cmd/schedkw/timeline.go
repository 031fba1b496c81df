package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/golangsched/schedkw/sched"
)

const dayFormat = "2006-01-02"

func newTimelineCmd() *cobra.Command {
	var start string
	cmd := &cobra.Command{
		Use:   "timeline FILE",
		Short: "Walk the deck's DATES/TSTEP keywords and print each time boundary",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			current, err := time.Parse(dayFormat, start)
			if err != nil {
				return fmt.Errorf("invalid --start: %w", err)
			}

			keywords, err := parseDeckFile(args[0])
			if err != nil {
				return err
			}

			step := 0
			for _, kw := range keywords {
				kind, ok := kw.TimeKind()
				if !ok {
					continue
				}
				switch kind {
				case sched.TimeDates:
					// Each date is its own scheduling boundary.
					singles, err := kw.SplitDates()
					if err != nil {
						return err
					}
					for _, single := range singles {
						current, err = single.AdvanceTime(current)
						if err != nil {
							return err
						}
						step++
						fmt.Printf("%4d  %s  DATES\n", step, current.Format(dayFormat))
					}
				case sched.TimeTstep:
					current, err = kw.AdvanceTime(current)
					if err != nil {
						return err
					}
					step++
					fmt.Printf("%4d  %s  TSTEP\n", step, current.Format(dayFormat))
				}
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&start, "start", "2000-01-01", "simulation start date (YYYY-MM-DD)")
	return cmd
}
