package cmd

import (
	"github.com/spf13/cobra"

	"github.com/FredyC/graphql-cli/codegen"
)

func (c *CommandLine) newCodegenCmd() *baseCmd {
	cmd := &cobra.Command{
		Use:   "codegen",
		Short: "Generate schema bindings with the configured generator",
		Long: `codegen reads each project's codegen extension block and runs the
declared generator executable with derived arguments:

	<generator> --input <schema> --generator <language> [--outputBinding <path>] [--outputTypedefs <path>]

A project may declare a single codegen block or an ordered list of
them; each one is run to completion before the next begins.`,
		Example: "graphql codegen --project app --project admin",
		RunE:    c.runCodegen,
	}

	cmd.Flags().StringSliceP("project", "p", nil, `Only generate the named project(s). May be
specified multiple times. Unknown names are
skipped.`)
	cmd.Flags().StringP("config", "c", "", "Path to the config file, bypassing discovery")

	return &baseCmd{cmd}
}

func (c *CommandLine) runCodegen(cmd *cobra.Command, _ []string) error {
	selection, err := cmd.Flags().GetStringSlice("project")
	if err != nil {
		return err
	}

	cfgPath, err := cmd.Flags().GetString("config")
	if err != nil {
		return err
	}

	verbose, err := cmd.Flags().GetBool("verbose")
	if err != nil {
		return err
	}

	o := codegen.New(
		codegen.WithFS(c.fs),
		codegen.WithConsole(c.ui),
		codegen.WithRunner(c.runner),
		codegen.WithConfigPath(cfgPath),
		codegen.WithVerbose(verbose),
	)

	return o.Run(cmd.Context(), selection)
}
