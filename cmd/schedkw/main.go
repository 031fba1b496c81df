// Command schedkw inspects the SCHEDULE section of simulation decks:
// it dumps parsed keyword blocks, lists wells, prints the group tree, and
// walks the simulated timeline.
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/golangsched/schedkw"
	"github.com/golangsched/schedkw/sched"
)

var (
	widthsPath string
	verbosity  int
)

func main() {
	root := &cobra.Command{
		Use:           "schedkw",
		Short:         "Parse and query simulation SCHEDULE sections",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&widthsPath, "widths", "", "YAML fixed-width column table")
	root.PersistentFlags().CountVarP(&verbosity, "verbose", "v", "debug logging (-vv for trace)")

	root.AddCommand(newDumpCmd(), newWellsCmd(), newTreeCmd(), newTimelineCmd())

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "schedkw:", err)
		os.Exit(1)
	}
}

// parseOptions builds the shared parse options from the global flags.
func parseOptions() []schedkw.Option {
	if verbosity == 0 {
		return nil
	}
	level := slog.LevelDebug
	if verbosity > 1 {
		level = schedkw.LevelTrace
	}
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})
	return []schedkw.Option{schedkw.WithLogger(slog.New(handler))}
}

func loadWidthTable() (sched.WidthTable, error) {
	if widthsPath == "" {
		return nil, nil
	}
	f, err := os.Open(widthsPath)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return sched.LoadWidths(f)
}

// parseDeckFile parses the deck at path with the global flags applied.
func parseDeckFile(path string) ([]*sched.Keyword, error) {
	widths, err := loadWidthTable()
	if err != nil {
		return nil, err
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return schedkw.ParseDeck(f, widths, parseOptions()...)
}
