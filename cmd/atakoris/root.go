package main

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	verbose bool
	logger  *zap.SugaredLogger
)

var rootCmd = &cobra.Command{
	Use:   "atakoris",
	Short: "Steady-state hydraulic network analysis",
	Long: `atakoris solves demand-driven steady-state flow in a water
distribution network described by an EPANET .inp file, using the
multilinear method.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var cfg zap.Config
		if verbose {
			cfg = zap.NewDevelopmentConfig()
		} else {
			cfg = zap.NewProductionConfig()
		}
		z, err := cfg.Build()
		if err != nil {
			return err
		}
		logger = z.Sugar()

		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable development-mode logging")
	rootCmd.AddCommand(runCmd, batchCmd)
}
