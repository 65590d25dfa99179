package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/timpalpant/go-jury"
)

func newCondorcetCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "condorcet",
		Short: "Exact majority probability of a homogeneous jury",
		Long: `Print the probability that a strict majority of k independent experts,
each correct with probability p, is correct. This is the reference value
for simulations with a constant competence distribution.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			p, _ := cmd.Flags().GetFloat64("p")
			if p < 0 || p > 1 {
				return errors.Errorf("competence p=%v must be in [0, 1]", p)
			}

			ks, _ := cmd.Flags().GetIntSlice("k")
			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "k\tP(majority correct)")
			for _, k := range ks {
				if k < 1 {
					return errors.Errorf("jury size k=%d must be positive", k)
				}
				fmt.Fprintf(tw, "%d\t%.6f\n", k, jury.MajorityProbability(k, p))
			}

			return tw.Flush()
		},
	}

	cmd.Flags().Float64("p", 0.6, "Competence of every expert")
	cmd.Flags().IntSlice("k", []int{1, 3, 5, 7, 9, 11}, "Jury sizes")
	return cmd
}
