package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/golangsched/schedkw/sched"
)

func newTreeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "tree FILE",
		Short: "Print the group hierarchy declared by GRUPTREE keywords",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			keywords, err := parseDeckFile(args[0])
			if err != nil {
				return err
			}

			found := false
			for _, kw := range keywords {
				if kw.Type() != sched.KwGruptree {
					continue
				}
				children, parents, err := kw.GroupTreeEdges()
				if err != nil {
					return err
				}
				for i := range children {
					fmt.Printf("%s -> %s\n", children[i], parents[i])
					found = true
				}
			}
			if !found {
				fmt.Println("no GRUPTREE keywords in deck")
			}
			return nil
		},
	}
}
