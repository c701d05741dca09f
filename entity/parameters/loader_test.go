package parameters_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AnkushinDaniil/lisa/entity/parameters"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoadConfigFile(t *testing.T) {
	t.Parallel()

	path := writeFile(t, t.TempDir(), "lisa.yaml", `
durations: [6mo, 4yr]
mode: c
format: svg
output: out.svg
width: 12
height: 7.5
verbose: true
`)

	f, err := parameters.LoadConfigFile(path)
	require.NoError(t, err)
	assert.Equal(t, &parameters.File{
		Durations: []string{"6mo", "4yr"},
		Mode:      "c",
		Format:    "svg",
		Output:    "out.svg",
		Width:     12,
		Height:    7.5,
		Verbose:   true,
	}, f)
}

func TestLoadConfigFileNotFound(t *testing.T) {
	t.Parallel()

	_, err := parameters.LoadConfigFile(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorIs(t, err, parameters.ErrConfigNotFound)
}

func TestLoadConfigFileInvalidYAML(t *testing.T) {
	t.Parallel()

	path := writeFile(t, t.TempDir(), "bad.yaml", "durations: [6mo\n")
	_, err := parameters.LoadConfigFile(path)
	require.Error(t, err)
	assert.NotErrorIs(t, err, parameters.ErrConfigNotFound)
}

func TestFindConfigFileExplicit(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := writeFile(t, dir, "custom.yaml", "mode: t\n")
	assert.Equal(t, path, parameters.FindConfigFile(path))
	assert.Equal(t, "", parameters.FindConfigFile(filepath.Join(dir, "nope.yaml")))
}
