package bf_errors

import (
	"bytes"
	"fmt"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMissingScript(t *testing.T) {
	reason := &os.PathError{Op: "open", Path: "scripts/missing.bf", Err: os.ErrNotExist}
	err := CreateUnreadableFileError(reason, "scripts/missing.bf")

	assert.Equal(t, "missing.bf", err.FileName)
	assert.ErrorIs(t, err, os.ErrNotExist)

	out := bytes.Buffer{}
	err.Write(&out)
	assert.Equal(t, "Err:unexist file scripts/missing.bf!\n", out.String())
}

func TestConfigError(t *testing.T) {
	err := CreateConfigError(fmt.Errorf("memory_size must be positive"), "conf/abi.toml")

	assert.Equal(t, InvalidConfig, err.Type)
	assert.Contains(t, err.Error(), "memory_size must be positive")

	out := bytes.Buffer{}
	err.Write(&out)
	assert.Contains(t, out.String(), "There is an invalid config:")
	assert.Contains(t, out.String(), "abi.toml")
}
