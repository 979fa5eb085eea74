package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

var errSomeInvalid = errors.New("one or more numbers could not be normalized")

func newNormalizeCmd(root *rootFlags) *cobra.Command {
	var country string

	cmd := &cobra.Command{
		Use:   "normalize <number>...",
		Short: "Print the canonical form of each number",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := root.loadConfig()
			if err != nil {
				return err
			}

			if country != "" {
				cfg.Country.CallingCode = country
			}

			n, err := normalizerFor(cfg)
			if err != nil {
				return err
			}

			failed := false

			for _, raw := range args {
				canonical, err := n.Normalize(raw)
				if err != nil {
					failed = true

					fmt.Fprintf(cmd.OutOrStdout(), "%s\terror: %v\n", raw, err)

					continue
				}

				fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\n", raw, canonical)
			}

			if failed {
				return errSomeInvalid
			}

			return nil
		},
	}

	cmd.Flags().StringVar(&country, "country", "", "Calling code of the country rule (default from config)")

	return cmd
}
