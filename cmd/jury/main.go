// Command jury estimates how often a majority vote among the k most
// competent of n experts is correct, by Monte Carlo simulation.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/golang/glog"
	"github.com/spf13/cobra"

	"github.com/timpalpant/go-jury/sweep"
)

var version = "0.1.0-dev"

func main() {
	rootCmd := newRootCmd()
	err := rootCmd.Execute()
	glog.Flush()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "jury",
		Short: "Top-k majority vote simulations",
		Long: `jury simulates pools of n binary-judgment experts with random
competencies and measures how often a majority vote among the k most
competent experts is correct, for several distributions and choices of k.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			// Mark the glog flags as parsed; their values were set through cobra.
			flag.CommandLine.Parse(nil)
		},
	}

	// glog registers its flags (-v, -logtostderr, ...) on the standard flag set.
	flag.Set("logtostderr", "true")
	rootCmd.PersistentFlags().AddGoFlagSet(flag.CommandLine)
	rootCmd.PersistentFlags().String("config", "", "YAML sweep definition (default: built-in sweep)")

	rootCmd.AddCommand(
		newVersionCmd(),
		newRunCmd(),
		newPoliciesCmd(),
		newCondorcetCmd(),
	)

	return rootCmd
}

// loadConfig returns the sweep named by --config, or the default sweep.
func loadConfig(cmd *cobra.Command) (*sweep.Config, error) {
	path, _ := cmd.Flags().GetString("config")
	if path == "" {
		return sweep.Default(), nil
	}

	return sweep.Load(path)
}
