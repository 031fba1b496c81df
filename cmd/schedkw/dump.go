package main

import (
	"os"

	"github.com/spf13/cobra"
)

func newDumpCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "dump FILE",
		Short: "Parse a deck and print every keyword record",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			keywords, err := parseDeckFile(args[0])
			if err != nil {
				return err
			}
			for _, kw := range keywords {
				kw.Fprintf(os.Stdout)
			}
			return nil
		},
	}
}
