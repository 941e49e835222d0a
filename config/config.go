// Package config loads GraphQL project configuration files.
//
// A configuration file declares either a single anonymous project or a
// named set of projects, each with a schema path and arbitrary extension
// blocks. The file is YAML, which also covers the JSON flavor of
// .graphqlconfig files.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/afero"
	"gopkg.in/yaml.v3"
)

// DefaultProjectName names the project synthesized from a single-project
// configuration file.
const DefaultProjectName = "default"

// ErrNoProjects is returned by LoadConfig when the configuration file
// defines no projects at all.
var ErrNoProjects = errors.New("graphql: no projects defined in configuration")

// Project is one named schema configuration unit. Extension blocks are
// kept as raw YAML nodes so that each consumer decides their shape.
type Project struct {
	Name       string
	SchemaPath string
	Extensions map[string]yaml.Node
}

// Config is a fully loaded configuration file. Projects keep the order
// they were declared in.
type Config struct {
	path     string
	projects []*Project
	index    map[string]*Project
}

type rawProject struct {
	SchemaPath string               `yaml:"schemaPath"`
	Extensions map[string]yaml.Node `yaml:"extensions"`
}

type rawConfig struct {
	rawProject `yaml:",inline"`

	Projects yaml.Node `yaml:"projects"`
}

// LoadConfig reads and parses the configuration file at path. A file
// with no project definitions fails with ErrNoProjects.
func LoadConfig(fs afero.Fs, path string) (*Config, error) {
	b, err := afero.ReadFile(fs, path)
	if err != nil {
		return nil, fmt.Errorf("graphql: unable to read config file: %w", err)
	}

	var raw rawConfig
	if err = yaml.Unmarshal(b, &raw); err != nil {
		return nil, fmt.Errorf("graphql: malformed config file %s: %w", path, err)
	}

	c := &Config{
		path:  path,
		index: make(map[string]*Project),
	}

	err = c.addProjects(&raw)
	if err != nil {
		return nil, fmt.Errorf("graphql: malformed config file %s: %w", path, err)
	}

	if len(c.projects) == 0 {
		return nil, ErrNoProjects
	}
	return c, nil
}

// addProjects walks the projects mapping in declaration order. A config
// without a projects key but with top-level schemaPath/extensions is a
// single-project file.
func (c *Config) addProjects(raw *rawConfig) error {
	if raw.Projects.Kind == 0 || raw.Projects.Tag == "!!null" {
		if raw.SchemaPath == "" && len(raw.Extensions) == 0 {
			return nil
		}

		c.add(DefaultProjectName, &raw.rawProject)
		return nil
	}

	if raw.Projects.Kind != yaml.MappingNode {
		return errors.New("projects must be a mapping of name to project")
	}

	for i := 0; i < len(raw.Projects.Content); i += 2 {
		var name string
		if err := raw.Projects.Content[i].Decode(&name); err != nil {
			return err
		}

		var rp rawProject
		if err := raw.Projects.Content[i+1].Decode(&rp); err != nil {
			return fmt.Errorf("project %q: %w", name, err)
		}

		c.add(name, &rp)
	}
	return nil
}

func (c *Config) add(name string, rp *rawProject) {
	if _, exists := c.index[name]; exists {
		return
	}

	p := &Project{
		Name:       name,
		SchemaPath: os.ExpandEnv(rp.SchemaPath),
		Extensions: rp.Extensions,
	}

	c.projects = append(c.projects, p)
	c.index[name] = p
}

// Projects returns all projects in declaration order.
func (c *Config) Projects() []*Project { return c.projects }

// Project looks up a project by name.
func (c *Config) Project(name string) (*Project, bool) {
	p, ok := c.index[name]
	return p, ok
}

// Path returns the file the configuration was loaded from.
func (c *Config) Path() string { return c.path }

// Dir returns the directory containing the configuration file. Relative
// paths in the file are interpreted against it.
func (c *Config) Dir() string { return filepath.Dir(c.path) }
