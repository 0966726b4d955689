package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadProjectMissingFileIsZeroProject(t *testing.T) {
	project, err := LoadProject(filepath.Join(t.TempDir(), "turin.yml"))
	require.NoError(t, err)
	assert.Equal(t, &Project{}, project)
}

func TestLoadProjectReadsSettings(t *testing.T) {
	path := filepath.Join(t.TempDir(), "turin.yml")
	content := "classpath:\n  - lib/deps.jar\n  - lib/*.jar\ndestination: out\nno_color: true\nverbose: true\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	project, err := LoadProject(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"lib/deps.jar", "lib/*.jar"}, project.Classpath)
	assert.Equal(t, "out", project.Destination)
	assert.True(t, project.NoColor)
	assert.True(t, project.Verbose)
}

func TestLoadProjectRejectsBadYaml(t *testing.T) {
	path := filepath.Join(t.TempDir(), "turin.yml")
	require.NoError(t, os.WriteFile(path, []byte("classpath: [unclosed"), 0o644))

	_, err := LoadProject(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), path)
}

func TestExpandClasspath(t *testing.T) {
	dir := t.TempDir()
	lib := filepath.Join(dir, "lib")
	require.NoError(t, os.MkdirAll(lib, 0o755))
	for _, name := range []string{"a.jar", "b.jar", "notes.txt"} {
		require.NoError(t, os.WriteFile(filepath.Join(lib, name), nil, 0o644))
	}

	t.Run("plain entries pass through", func(t *testing.T) {
		expanded, err := ExpandClasspath([]string{"deps.jar", "missing.jar"})
		require.NoError(t, err)
		assert.Equal(t, []string{"deps.jar", "missing.jar"}, expanded)
	})

	t.Run("patterns expand sorted", func(t *testing.T) {
		expanded, err := ExpandClasspath([]string{filepath.Join(lib, "*.jar")})
		require.NoError(t, err)
		assert.Equal(t, []string{filepath.Join(lib, "a.jar"), filepath.Join(lib, "b.jar")}, expanded)
	})

	t.Run("pattern matching nothing contributes nothing", func(t *testing.T) {
		expanded, err := ExpandClasspath([]string{filepath.Join(lib, "*.zip"), "deps.jar"})
		require.NoError(t, err)
		assert.Equal(t, []string{"deps.jar"}, expanded)
	})

	t.Run("order is preserved across entries", func(t *testing.T) {
		expanded, err := ExpandClasspath([]string{"first.jar", filepath.Join(lib, "*.jar")})
		require.NoError(t, err)
		assert.Equal(t, []string{"first.jar", filepath.Join(lib, "a.jar"), filepath.Join(lib, "b.jar")}, expanded)
	})
}
