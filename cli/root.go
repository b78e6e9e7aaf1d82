package cli

import (
	"context"
	"os"

	"github.com/spf13/cobra"
)

// Execute is the entry point to running the CLI
func Execute(ctx context.Context, version string) {
	input := new(Input)
	rootCmd := createRootCommand(ctx, input, version)
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}

func createRootCommand(ctx context.Context, input *Input, version string) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:          "metro",
		Short:        "Plan routes and analyse a metro network from station and connection files.",
		Version:      version,
		SilenceUsage: true,
	}
	input.addPersistentFlags(rootCmd.PersistentFlags())

	rootCmd.AddCommand(
		newRouteCommand(input),
		newFareCommand(input),
		newSearchCommand(input),
		newLinesCommand(input),
		newTraverseCommand(input),
		newPathsCommand(input),
		newAnalyzeCommand(input),
		newGenerateCommand(input),
	)
	rootCmd.SetContext(ctx)

	return rootCmd
}

// withApp adapts a handler that needs a loaded network into a cobra RunE.
func withApp(input *Input, fn func(cmd *cobra.Command, a *app, args []string) error) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		a, err := input.newApp(cmd)
		if err != nil {
			return err
		}
		if err := fn(cmd, a, args); err != nil {
			return a.report(err)
		}

		return a.out.Err()
	}
}
