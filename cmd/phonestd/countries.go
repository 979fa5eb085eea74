package main

import (
	"fmt"

	"phonestd/internal/phone"

	"github.com/spf13/cobra"
)

func newCountriesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "countries",
		Short: "List selectable countries and whether a rule exists for them",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			for _, c := range phone.DefaultRegistry().Catalog() {
				status := "not yet supported"
				if c.Supported {
					status = "supported"
				}

				fmt.Fprintf(cmd.OutOrStdout(), "%-22s %-3s %s\n", c.String(), c.Region, status)
			}
		},
	}
}
