package lexer

import (
	"bufio"
	"io"
)

type Position struct {
	Line   uint `json:"line" yaml:"line" cbor:"line"`
	Column uint `json:"column" yaml:"column" cbor:"column"`
}

// Lexer reads a program one byte at a time with a single byte of push back.
// It keeps track of the position of the byte most recently returned by Next.
type Lexer struct {
	CurrentPosition Position
	reader          io.ByteScanner
	last            Position
	previous        Position
	err             error
}

func NewLexer(r io.Reader) *Lexer {
	scanner, ok := r.(io.ByteScanner)
	if !ok {
		scanner = bufio.NewReader(r)
	}

	return &Lexer{
		CurrentPosition: Position{
			Line:   1,
			Column: 1,
		},
		reader: scanner,
	}
}

// Next returns the next byte of the stream. The second result is false at
// end of stream; a read error also ends the stream and is kept in Err.
func (l *Lexer) Next() (byte, bool) {
	char, err := l.reader.ReadByte()
	if err != nil {
		if err != io.EOF {
			l.err = err
		}
		return 0, false
	}

	l.previous = l.last
	l.last = l.CurrentPosition

	if char == '\n' {
		l.CurrentPosition.Line++
		l.CurrentPosition.Column = 1
	} else {
		l.CurrentPosition.Column++
	}

	return char, true
}

// Unread pushes the byte most recently returned by Next back onto the stream.
func (l *Lexer) Unread() {
	if err := l.reader.UnreadByte(); err != nil {
		return
	}

	l.CurrentPosition = l.last
	l.last = l.previous
}

// Position of the byte most recently returned by Next.
func (l *Lexer) Position() Position {
	return l.last
}

func (l *Lexer) Err() error {
	return l.err
}
