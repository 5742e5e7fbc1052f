package main

import (
	"context"
	"os"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// Execute is the entry point to running the CLI.
func Execute(ctx context.Context, version string) error {
	input := new(Input)
	rootCmd := newRootCommand(ctx, input, version)
	if err := rootCmd.Execute(); err != nil {
		log.Error(err)
		return err
	}

	return nil
}

// newRootCommand assembles the command tree around input.
func newRootCommand(ctx context.Context, input *Input, version string) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "postman",
		Short:         "Find the cheapest closed walk that covers every edge of a weighted graph",
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return configureLogging(input, cmd.ErrOrStderr())
		},
	}
	rootCmd.PersistentFlags().BoolVarP(&input.verbose, "verbose", "v", false, "verbose output (phase traces)")
	rootCmd.PersistentFlags().StringVar(&input.logFormat, "log-format", "text", "log format: text or json")
	rootCmd.SetErr(os.Stderr)

	rootCmd.AddCommand(
		newSolveCommand(ctx, input),
		newDemoCommand(ctx, input),
		newGenerateCommand(input),
	)

	return rootCmd
}

// addSolveFlags registers the flags shared by solve and demo.
func addSolveFlags(fs *pflag.FlagSet, input *Input) {
	fs.IntVarP(&input.start, "start", "s", 0, "start vertex (default: the document's start)")
	fs.IntVarP(&input.workers, "workers", "w", 0, "goroutines for shortest paths (0 = GOMAXPROCS)")
	fs.IntVar(&input.maxOdd, "max-odd", 0, "refuse graphs with more odd-degree vertices (0 = no limit)")
	fs.StringVarP(&input.algorithm, "algorithm", "a", "fleury", "circuit algorithm: fleury or hierholzer")
	fs.BoolVarP(&input.matrix, "matrix", "m", false, "print the weight matrix before solving")
	fs.BoolVar(&input.jsonOut, "json", false, "print the result as JSON")
}
