package bf_io

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadByteFlushesOutput(t *testing.T) {
	stdout := bytes.Buffer{}
	rio := NewRuntimeIO(&stdout, nil, strings.NewReader("a"))

	require.NoError(t, rio.WriteByte('?'))
	assert.Equal(t, 0, stdout.Len())

	c, err := rio.ReadByte()
	require.NoError(t, err)
	assert.Equal(t, byte('a'), c)
	assert.Equal(t, "?", stdout.String())
}

func TestWriteByteFlushesLines(t *testing.T) {
	stdout := bytes.Buffer{}
	rio := NewRuntimeIO(&stdout, nil, nil)

	for _, c := range []byte("hi\nthere") {
		require.NoError(t, rio.WriteByte(c))
	}
	assert.Equal(t, "hi\n", stdout.String())

	rio.Flush()
	assert.Equal(t, "hi\nthere", stdout.String())
}

func TestReadByteAtEOF(t *testing.T) {
	rio := NewRuntimeIO(&bytes.Buffer{}, nil, strings.NewReader(""))

	c, err := rio.ReadByte()
	require.NoError(t, err)
	assert.Equal(t, EOF, c)
}

func TestInitDefaults(t *testing.T) {
	rio := NewRuntimeIO(nil, nil, nil)

	assert.Equal(t, os.Stdout, rio.Out)
	assert.Equal(t, os.Stderr, rio.Err)
	assert.Equal(t, os.Stdin, rio.In)
}

func TestReadLine(t *testing.T) {
	rio := NewRuntimeIO(nil, nil, strings.NewReader("++.\n,."))

	line, err := rio.ReadLine(DefaultMaxLine)
	require.NoError(t, err)
	assert.Equal(t, "++.\n", line)

	// the rest of the input is left for the program
	c, err := rio.ReadByte()
	require.NoError(t, err)
	assert.Equal(t, byte(','), c)
}

func TestReadLineTruncates(t *testing.T) {
	rio := NewRuntimeIO(nil, nil, strings.NewReader("+++++\n"))

	line, err := rio.ReadLine(4)
	require.NoError(t, err)
	assert.Equal(t, "+++", line)

	line, err = rio.ReadLine(4)
	require.NoError(t, err)
	assert.Equal(t, "++\n", line)

	line, err = rio.ReadLine(4)
	require.NoError(t, err)
	assert.Equal(t, "", line)
}

func TestOpenScript(t *testing.T) {
	path := filepath.Join(t.TempDir(), "add.bf")
	require.NoError(t, os.WriteFile(path, []byte("++."), 0644))

	reader, closeScript, err := OpenScript(path)
	require.NoError(t, err)
	defer closeScript()

	content := bytes.Buffer{}
	_, err = content.ReadFrom(reader)
	require.NoError(t, err)
	assert.Equal(t, "++.", content.String())

	_, _, err = OpenScript(filepath.Join(t.TempDir(), "missing.bf"))
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}
