package bf_io

import (
	"bufio"
	"io"
	"os"

	"github.com/pkg/errors"
	"github.com/tliron/commonlog"
)

// EOF is the byte stored by an input instruction when no byte can be read.
const EOF byte = 0xFF

// DefaultMaxLine bounds the line read in interactive mode, newline included.
const DefaultMaxLine = 1024

func log() commonlog.Logger {
	return commonlog.GetLogger("abi.io")
}

type RuntimeIO struct {
	Out    io.Writer
	Err    io.Writer
	In     io.Reader
	Reader *bufio.Reader
	Writer *bufio.Writer
}

// Init fills rio from value, using the process streams for anything value
// leaves nil.
func (rio *RuntimeIO) Init(value RuntimeIO) *RuntimeIO {
	if value.Out == nil {
		rio.Out = os.Stdout
	} else {
		rio.Out = value.Out
	}
	if value.Err == nil {
		rio.Err = os.Stderr
	} else {
		rio.Err = value.Err
	}
	if value.In == nil {
		rio.In = os.Stdin
	} else {
		rio.In = value.In
	}
	rio.Reader = bufio.NewReader(rio.In)
	rio.Writer = bufio.NewWriter(rio.Out)

	return rio
}

func NewRuntimeIO(out io.Writer, err io.Writer, in io.Reader) *RuntimeIO {
	runtimeIO := &RuntimeIO{}
	return runtimeIO.Init(RuntimeIO{Out: out, Err: err, In: in})
}

// WriteByte queues c on the output, flushing at the end of a line. Write
// failures are logged and dropped.
func (rio *RuntimeIO) WriteByte(c byte) error {
	if err := rio.Writer.WriteByte(c); err != nil {
		log().Debugf("output dropped: %s", err)
	}
	if c == '\n' {
		rio.Flush()
	}

	return nil
}

// ReadByte flushes pending output and reads one byte of input. At end of
// input, or on a read failure, it returns EOF.
func (rio *RuntimeIO) ReadByte() (byte, error) {
	rio.Flush()

	c, err := rio.Reader.ReadByte()
	if err != nil {
		if err != io.EOF {
			log().Debugf("input failed: %s", err)
		}
		return EOF, nil
	}

	return c, nil
}

func (rio *RuntimeIO) Flush() {
	if err := rio.Writer.Flush(); err != nil {
		log().Debugf("flush failed: %s", err)
	}
}

// ReadLine reads one line of at most max-1 bytes, keeping the newline when it
// fits. Whatever is left of a longer line stays buffered as program input.
func (rio *RuntimeIO) ReadLine(max int) (string, error) {
	if max < 2 {
		max = DefaultMaxLine
	}

	line := make([]byte, 0, max-1)
	for len(line) < max-1 {
		c, err := rio.Reader.ReadByte()
		if err != nil {
			if err == io.EOF {
				break
			}
			return string(line), errors.Wrap(err, "cannot read line")
		}

		line = append(line, c)
		if c == '\n' {
			break
		}
	}

	return string(line), nil
}

// OpenScript opens a program file for parsing. The returned function closes
// it.
func OpenScript(fileName string) (io.Reader, func() error, error) {
	file, err := os.Open(fileName)
	if err != nil {
		return nil, nil, errors.Wrapf(err, "cannot open script %s", fileName)
	}

	return file, file.Close, nil
}
