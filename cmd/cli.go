// Package cmd implements the command line interface for graphql-cli.
package cmd

import (
	"fmt"
	"os"
	"runtime/debug"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/FredyC/graphql-cli/codegen"
	"github.com/FredyC/graphql-cli/console"
)

type option func(*CommandLine)

// WithFS configures the underlying afero.Fs used to read config files.
func WithFS(fs afero.Fs) option {
	return func(c *CommandLine) {
		c.fs = fs
	}
}

// WithConsole configures the status sink commands report through.
func WithConsole(ui console.Console) option {
	return func(c *CommandLine) {
		c.ui = ui
	}
}

// WithRunner configures the process runner used to invoke generators.
func WithRunner(r codegen.Runner) option {
	return func(c *CommandLine) {
		c.runner = r
	}
}

// CommandLine assembles the graphql command tree.
type CommandLine struct {
	fs     afero.Fs
	ui     console.Console
	runner codegen.Runner

	cmds []cmder
}

type cmder interface {
	getCommand() *cobra.Command
}

type baseCmd struct {
	*cobra.Command
}

func (cmd *baseCmd) getCommand() *cobra.Command { return cmd.Command }

func (c *CommandLine) addCommand(cmds ...cmder) *CommandLine {
	c.cmds = append(c.cmds, cmds...)
	return c
}

func (c *CommandLine) build() *cobra.Command {
	cmd := c.newRootCmd()
	for _, cmdr := range c.cmds {
		cmd.AddCommand(cmdr.getCommand())
	}

	return cmd.Command
}

// NewCLI returns a CommandLine implementation.
func NewCLI(opts ...option) (c *CommandLine) {
	c = new(CommandLine)

	for _, opt := range opts {
		opt(c)
	}

	if c.fs == nil {
		c.fs = afero.NewOsFs()
	}
	if c.ui == nil {
		c.ui = console.New(os.Stdout)
	}
	if c.runner == nil {
		c.runner = codegen.NewRunner()
	}

	return
}

func wrapPanic(err error, stack []byte) error {
	return fmt.Errorf("graphql: recovered from unexpected panic: %w\n\n%s", err, stack)
}

// Run executes the command line.
func (c *CommandLine) Run(args []string) (err error) {
	defer func() {
		if r := recover(); r != nil {
			stack := debug.Stack()

			rerr, ok := r.(error)
			if ok {
				err = wrapPanic(rerr, stack)
				return
			}

			err = wrapPanic(fmt.Errorf("%#v", r), stack)
		}
	}()

	cmd := c.addCommand(c.newCodegenCmd(), c.newVersionCmd()).build()

	cmd.SetArgs(args[1:])
	return cmd.Execute()
}
