// Package codegen orchestrates external schema binding generators.
//
// Each project in the configuration may carry a codegen extension block
// declaring one or more generation tasks. For every task the named
// generator executable is run with derived --input/--generator/--output*
// flags; all schema parsing and code emission happens inside that
// process.
package codegen

import (
	"fmt"
	"os"

	"github.com/kballard/go-shellquote"
	"gopkg.in/yaml.v3"

	"github.com/FredyC/graphql-cli/config"
)

// Input names the schema files handed to the generator. A bare string
// in the config is shorthand for the schema field.
type Input struct {
	Schema   string `yaml:"schema"`
	TypeDefs string `yaml:"typeDefs"`
}

// UnmarshalYAML decides the string-vs-object shape once at decode time.
func (in *Input) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind == yaml.ScalarNode {
		return node.Decode(&in.Schema)
	}

	type plain Input
	return node.Decode((*plain)(in))
}

// Output names the files the generator is asked to write.
type Output struct {
	Binding  string `yaml:"binding"`
	TypeDefs string `yaml:"typeDefs"`
}

// Config is one generation task from a project's codegen extension.
type Config struct {
	Input     *Input  `yaml:"input"`
	Output    *Output `yaml:"output"`
	Language  string  `yaml:"language"`
	Generator string  `yaml:"generator"`
}

// Entries is the decoded value of a codegen extension block. A bare
// mapping decodes as a one-element sequence.
type Entries []Config

// UnmarshalYAML decides the single-vs-list shape once at decode time.
func (e *Entries) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind == yaml.SequenceNode {
		type plain []Config
		return node.Decode((*plain)(e))
	}

	var c Config
	if err := node.Decode(&c); err != nil {
		return err
	}

	*e = Entries{c}
	return nil
}

// Task is a fully resolved generator invocation for one codegen entry.
type Task struct {
	Project   string
	Input     string
	Output    Output
	Language  string
	Generator string
}

// task resolves and validates a codegen entry against its project.
// The input schema path falls back to the project's own schema path.
// Required fields are checked in a fixed order and the first missing
// one fails the whole run.
func (c Config) task(p *config.Project) (*Task, error) {
	t := &Task{
		Project:   p.Name,
		Language:  os.ExpandEnv(c.Language),
		Generator: os.ExpandEnv(c.Generator),
	}

	if c.Input != nil {
		t.Input = os.ExpandEnv(c.Input.Schema)
	}
	if t.Input == "" {
		t.Input = p.SchemaPath
	}

	if c.Output != nil {
		t.Output = Output{
			Binding:  os.ExpandEnv(c.Output.Binding),
			TypeDefs: os.ExpandEnv(c.Output.TypeDefs),
		}
	}

	switch {
	case t.Input == "":
		return nil, &ValidationError{Project: p.Name, Field: "input"}
	case t.Output == (Output{}):
		return nil, &ValidationError{Project: p.Name, Field: "output"}
	case t.Generator == "":
		return nil, &ValidationError{Project: p.Name, Field: "generator"}
	case t.Language == "":
		return nil, &ValidationError{Project: p.Name, Field: "language"}
	}

	return t, nil
}

// command splits the generator value shell-style and appends the
// derived flags. The --generator flag carries the language identifier,
// not the executable name; the quirk is part of the generator contract.
func (t *Task) command() (name string, args []string, err error) {
	words, err := shellquote.Split(t.Generator)
	if err != nil {
		return "", nil, fmt.Errorf("graphql: malformed generator for project %q: %w", t.Project, err)
	}
	if len(words) == 0 {
		return "", nil, &ValidationError{Project: t.Project, Field: "generator"}
	}

	args = append(words[1:], "--input", t.Input, "--generator", t.Language)
	if t.Output.Binding != "" {
		args = append(args, "--outputBinding", t.Output.Binding)
	}
	if t.Output.TypeDefs != "" {
		args = append(args, "--outputTypedefs", t.Output.TypeDefs)
	}

	return words[0], args, nil
}
