package codegen

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/afero"
	"go.uber.org/zap"

	"github.com/FredyC/graphql-cli/config"
	"github.com/FredyC/graphql-cli/console"
)

// extensionKey is the project extension block the orchestrator reads.
const extensionKey = "codegen"

// Orchestrator drives the configured generators for a set of projects,
// one project and one task at a time.
type Orchestrator struct {
	fs      afero.Fs
	ui      console.Console
	runner  Runner
	cfgPath string
	verbose bool
}

// Option configures an Orchestrator.
type Option func(*Orchestrator)

// WithFS sets the filesystem configuration is read from.
func WithFS(fs afero.Fs) Option {
	return func(o *Orchestrator) { o.fs = fs }
}

// WithConsole sets the status sink.
func WithConsole(ui console.Console) Option {
	return func(o *Orchestrator) { o.ui = ui }
}

// WithRunner sets the process runner used to invoke generators.
func WithRunner(r Runner) Option {
	return func(o *Orchestrator) { o.runner = r }
}

// WithConfigPath pins the configuration file, bypassing discovery.
func WithConfigPath(path string) Option {
	return func(o *Orchestrator) { o.cfgPath = path }
}

// WithVerbose enables skipped-project notices.
func WithVerbose(verbose bool) Option {
	return func(o *Orchestrator) { o.verbose = verbose }
}

// New returns an Orchestrator ready to run.
func New(opts ...Option) *Orchestrator {
	o := new(Orchestrator)

	for _, opt := range opts {
		opt(o)
	}

	if o.fs == nil {
		o.fs = afero.NewOsFs()
	}
	if o.ui == nil {
		o.ui = console.New(os.Stdout)
	}
	if o.runner == nil {
		o.runner = NewRunner()
	}

	return o
}

// Run loads the configuration, resolves the working set of projects
// and generates bindings for each of them in turn. An empty selection
// means every configured project; otherwise only the named ones, in
// selection order. The first validation or generator failure aborts
// the remaining run.
func (o *Orchestrator) Run(ctx context.Context, selection []string) error {
	cfg, err := o.loadConfig()
	if err != nil {
		return err
	}

	for _, p := range workingSet(cfg, selection) {
		if err = o.generateProject(ctx, cfg, p); err != nil {
			return err
		}
	}
	return nil
}

func (o *Orchestrator) loadConfig() (*config.Config, error) {
	path := o.cfgPath
	if path == "" {
		var err error
		path, err = config.FindConfig(o.fs, ".")
		if err != nil {
			return nil, err
		}
	}

	return config.LoadConfig(o.fs, path)
}

// workingSet resolves the selection against the configuration. Names
// repeat without effect, and a requested name missing from the
// configuration is skipped rather than failing the run.
func workingSet(cfg *config.Config, selection []string) []*config.Project {
	if len(selection) == 0 {
		return cfg.Projects()
	}

	seen := make(map[string]bool, len(selection))
	projects := make([]*config.Project, 0, len(selection))
	for _, name := range selection {
		if seen[name] {
			continue
		}
		seen[name] = true

		p, ok := cfg.Project(name)
		if !ok {
			zap.S().Warnw("requested project not found in configuration, skipping", "project", name)
			continue
		}
		projects = append(projects, p)
	}
	return projects
}

func (o *Orchestrator) generateProject(ctx context.Context, cfg *config.Config, p *config.Project) error {
	node, ok := p.Extensions[extensionKey]
	if !ok || node.Kind == 0 || node.Tag == "!!null" {
		if o.verbose {
			o.ui.Info(fmt.Sprintf("Codegen is not configured for project %s, skipping", p.Name))
		}
		return nil
	}

	var entries Entries
	if err := node.Decode(&entries); err != nil {
		return fmt.Errorf("graphql: invalid codegen extension for project %q: %w", p.Name, err)
	}

	for _, entry := range entries {
		if err := o.generate(ctx, cfg, p, entry); err != nil {
			return err
		}
	}
	return nil
}

// generate runs a single codegen task to completion, blocking until
// the generator process exits.
func (o *Orchestrator) generate(ctx context.Context, cfg *config.Config, p *config.Project, entry Config) error {
	o.ui.Start(fmt.Sprintf("Generating schema bindings for project %s", p.Name))

	task, err := entry.task(p)
	if err != nil {
		return err
	}

	name, args, err := task.command()
	if err != nil {
		return err
	}

	stderr, err := o.runner.Run(ctx, cfg.Dir(), name, args)
	if msg := strings.TrimSpace(string(stderr)); msg != "" {
		o.ui.Warn(msg)
	}
	if err != nil {
		return &GeneratorError{Project: p.Name, Generator: name, Err: err}
	}

	o.ui.Succeed(fmt.Sprintf("Bindings for project %s generated to %s", p.Name, task.Output.Binding))
	return nil
}
