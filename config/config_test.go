package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/CanPacis/abi/bf_errors"
	"github.com/CanPacis/abi/debugger"
)

func write(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), FileName)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoad(t *testing.T) {
	path := write(t, `
memory_size = 512
trace = true
dump = "yaml"
verbosity = 2
`)

	c, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 512, c.MemorySize)
	assert.Equal(t, 1024, c.MaxLine)
	assert.Equal(t, ">>>", c.Prompt)
	assert.True(t, c.Trace)
	assert.Equal(t, debugger.YAML, c.DumpFormat())
	assert.Equal(t, 2, c.Verbosity)
	assert.True(t, filepath.IsAbs(c.Path))
}

func TestLoadDefaultWithoutFile(t *testing.T) {
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(t.TempDir()))
	defer os.Chdir(wd)

	c, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Default(), c)
}

func TestLoadMissingExplicitFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
	require.Error(t, err)

	var fileError *bf_errors.FileError
	require.ErrorAs(t, err, &fileError)
	assert.Equal(t, bf_errors.InvalidConfig, fileError.Type)
}

func TestLoadInvalid(t *testing.T) {
	for _, content := range []string{
		"memory_size = 0",
		"max_line = 1",
		`dump = "xml"`,
		"memory_size = ",
	} {
		_, err := Load(write(t, content))
		assert.Error(t, err, content)
	}
}
