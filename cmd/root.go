package cmd

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func (c *CommandLine) newRootCmd() *baseCmd {
	cmd := &cobra.Command{
		Use:   "graphql",
		Short: "A command line tool for GraphQL projects",
		Long: `graphql reads the project configuration from a .graphqlconfig file
and drives tooling for each configured project.

Configuration is discovered by walking from the working directory toward
the filesystem root, or taken from the GRAPHQL_CONFIG_PATH environment
variable when set.`,
		SilenceUsage:      true,
		PersistentPreRunE: initLogger,
	}

	cmd.PersistentFlags().BoolP("verbose", "v", false, "Output logging")

	return &baseCmd{cmd}
}

// initLogger swaps the global no-op logger for a development logger
// when --verbose is given.
func initLogger(cmd *cobra.Command, _ []string) error {
	verbose, err := cmd.Flags().GetBool("verbose")
	if err != nil || !verbose {
		return err
	}

	log, err := zap.NewDevelopment()
	if err != nil {
		return err
	}

	zap.ReplaceGlobals(log)
	return nil
}
