package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFindConfig_WalksUpward(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, fs.MkdirAll("/home/dev/project/src/deep", 0755))
	require.NoError(t, afero.WriteFile(fs, "/home/dev/project/.graphqlconfig.yml", []byte("{}"), 0644))

	path, err := FindConfig(fs, "/home/dev/project/src/deep")
	require.NoError(t, err)
	assert.Equal(t, "/home/dev/project/.graphqlconfig.yml", path)
}

func TestFindConfig_PrefersBareName(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "/ws/.graphqlconfig", []byte("{}"), 0644))
	require.NoError(t, afero.WriteFile(fs, "/ws/.graphqlconfig.yaml", []byte("{}"), 0644))

	path, err := FindConfig(fs, "/ws")
	require.NoError(t, err)
	assert.Equal(t, "/ws/.graphqlconfig", path)
}

func TestFindConfig_RelativeStartDir(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(root, "src", "deep"), 0755))
	require.NoError(t, os.WriteFile(filepath.Join(root, ".graphqlconfig"), []byte("{}"), 0644))

	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(filepath.Join(root, "src", "deep")))
	defer os.Chdir(wd)

	path, err := FindConfig(afero.NewOsFs(), ".")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(root, ".graphqlconfig"), path)
}

func TestFindConfig_NotFound(t *testing.T) {
	_, err := FindConfig(afero.NewMemMapFs(), "/nowhere")
	require.Error(t, err)
	assert.Contains(t, err.Error(), ".graphqlconfig")
}

func TestFindConfig_EnvOverride(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "/etc/graphql/config.yml", []byte("{}"), 0644))

	t.Setenv(EnvConfigPath, "/etc/graphql/config.yml")

	path, err := FindConfig(fs, "/somewhere/else")
	require.NoError(t, err)
	assert.Equal(t, "/etc/graphql/config.yml", path)
}

func TestFindConfig_EnvOverrideMissing(t *testing.T) {
	t.Setenv(EnvConfigPath, "/etc/graphql/nope.yml")

	_, err := FindConfig(afero.NewMemMapFs(), "/ws")
	require.Error(t, err)
	assert.Contains(t, err.Error(), EnvConfigPath)
}
