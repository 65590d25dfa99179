package main

import (
	"fmt"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

func newPoliciesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "policies",
		Short: "Show the jury size k each policy selects for each n",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}

			if ns, _ := cmd.Flags().GetIntSlice("n"); len(ns) > 0 {
				cfg.NValues = ns
			}

			if err := cfg.Validate(); err != nil {
				return err
			}

			showIdeal, _ := cmd.Flags().GetBool("ideal")
			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			header := []string{"policy"}
			for _, n := range cfg.NValues {
				header = append(header, "n="+strconv.Itoa(n))
			}
			fmt.Fprintln(tw, strings.Join(header, "\t"))

			for _, p := range cfg.Policies {
				cells := []string{p.Name}
				for _, n := range cfg.NValues {
					cell := strconv.Itoa(p.K(n))
					if showIdeal {
						cell = fmt.Sprintf("%s (%.3f)", cell, p.Ideal(n))
					}
					cells = append(cells, cell)
				}
				fmt.Fprintln(tw, strings.Join(cells, "\t"))
			}

			return tw.Flush()
		},
	}

	cmd.Flags().IntSlice("n", nil, "Pool sizes to show (default: the sweep's n values)")
	cmd.Flags().Bool("ideal", false, "Also show the continuous jury size before rounding")
	return cmd
}
