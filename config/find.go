package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/afero"
)

// EnvConfigPath overrides config file discovery when set.
const EnvConfigPath = "GRAPHQL_CONFIG_PATH"

var configNames = []string{".graphqlconfig", ".graphqlconfig.yaml", ".graphqlconfig.yml"}

// FindConfig locates the configuration file governing dir by walking
// toward the filesystem root, the way graphql-config discovers its
// file. The GRAPHQL_CONFIG_PATH environment variable short-circuits
// the walk.
func FindConfig(fs afero.Fs, dir string) (string, error) {
	// A relative start dir would stall the walk: filepath.Dir(".")
	// is "." again.
	dir, err := filepath.Abs(dir)
	if err != nil {
		return "", err
	}

	if path := os.Getenv(EnvConfigPath); path != "" {
		exists, err := afero.Exists(fs, path)
		if err != nil {
			return "", err
		}
		if !exists {
			return "", fmt.Errorf("graphql: %s points at %s, which does not exist", EnvConfigPath, path)
		}
		return path, nil
	}

	for {
		for _, name := range configNames {
			path := filepath.Join(dir, name)
			exists, err := afero.Exists(fs, path)
			if err != nil {
				return "", err
			}
			if exists {
				return path, nil
			}
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}

	return "", fmt.Errorf("graphql: no %s found", strings.Join(configNames, ", "))
}
