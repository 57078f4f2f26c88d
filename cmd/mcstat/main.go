package main

import (
	"os"

	"github.com/spf13/cobra"
)

var (
	cfgFile string
	verbose bool
	version = "dev"
)

var rootCmd = &cobra.Command{
	Use:     "mcstat",
	Short:   "Probabilistic model checker for DTMC/CTMC/DMRM/CMRM chains",
	Long:    `mcstat evaluates a PCTL/CSL/PRCTL/CSRL formula against a chain described by a .tra/.lab file pair, either numerically or by Monte Carlo simulation.`,
	Version: version,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "run configuration YAML file (required)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose (debug-level) logging")
	rootCmd.AddCommand(evalCmd)
}

// Commands are defined in separate files:
// - evalCmd in eval.go

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
