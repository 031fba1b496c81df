package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

func newWellsCmd() *cobra.Command {
	var all bool
	cmd := &cobra.Command{
		Use:   "wells FILE",
		Short: "List wells named by the deck's keyword blocks",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			keywords, err := parseDeckFile(args[0])
			if err != nil {
				return err
			}

			var order []string
			seen := make(map[string]bool)
			for _, kw := range keywords {
				wells := kw.WellNames()
				if len(wells) == 0 {
					continue
				}
				if all {
					fmt.Printf("%-10s %s\n", kw.Name(), strings.Join(wells, " "))
				}
				for _, w := range wells {
					if !seen[w] {
						seen[w] = true
						order = append(order, w)
					}
				}
			}
			if all && len(order) > 0 {
				fmt.Println()
			}
			for _, w := range order {
				fmt.Println(w)
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&all, "per-keyword", false, "also list wells per keyword block")
	return cmd
}
