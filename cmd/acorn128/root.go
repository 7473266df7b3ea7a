package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"go.uber.org/zap"
)

var (
	verboseFlag bool
	logger      *zap.Logger
)

var rootCmd = &cobra.Command{
	Use:   "acorn128",
	Short: "Seal and open messages with the Acorn-128 v3 AEAD cipher",
	Long: `acorn128 is a command-line wrapper around the Acorn-128 v3
lightweight authenticated cipher. It is a thin convenience layer: all of
the cryptographic work happens in the acorn128 Go package, not here.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		cfg := zap.NewDevelopmentConfig()
		if !verboseFlag {
			cfg.Level.SetLevel(zap.InfoLevel)
		}
		l, err := cfg.Build()
		if err != nil {
			return fmt.Errorf("building logger: %w", err)
		}
		logger = l
		return nil
	},
	PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
		if logger != nil {
			return logger.Sync()
		}
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verboseFlag, "verbose", "v", false, "enable debug logging")
	// Normalize flag names by mapping underscores to dashes, so an
	// underscore spelling matches the dash-separated name of a flag.
	rootCmd.SetGlobalNormalizationFunc(func(f *pflag.FlagSet, name string) pflag.NormalizedName {
		return pflag.NormalizedName(strings.ReplaceAll(name, "_", "-"))
	})
}

// Execute runs the root command, exiting the process with status 1 on
// error per section 6.4: there is no wire format or persisted state, so
// the only boundary event a CLI invocation can report is its exit code.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
