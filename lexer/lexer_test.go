package lexer

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLookup(t *testing.T) {
	for _, char := range []byte("+-<>.,[]") {
		token, ok := Lookup(char)
		assert.True(t, ok, "expected %q to be a token", char)
		assert.Equal(t, Token(char), token)
	}

	for _, char := range []byte{0, ' ', '\n', 'a', '#', '*'} {
		_, ok := Lookup(char)
		assert.False(t, ok, "expected %q to be ignored", char)
	}
}

func TestCompressible(t *testing.T) {
	for _, token := range []Token{Plus, Minus, MoveRight, MoveLeft, Dot, Comma} {
		assert.True(t, token.Compressible(), token.Name())
	}

	for _, token := range []Token{LoopOpen, LoopClose, Empty} {
		assert.False(t, token.Compressible(), token.Name())
	}
}

func TestPositions(t *testing.T) {
	l := NewLexer(strings.NewReader("+\n-x"))

	char, ok := l.Next()
	require.True(t, ok)
	assert.Equal(t, byte('+'), char)
	assert.Equal(t, Position{Line: 1, Column: 1}, l.Position())

	_, ok = l.Next()
	require.True(t, ok)

	char, ok = l.Next()
	require.True(t, ok)
	assert.Equal(t, byte('-'), char)
	assert.Equal(t, Position{Line: 2, Column: 1}, l.Position())

	char, ok = l.Next()
	require.True(t, ok)
	assert.Equal(t, byte('x'), char)

	l.Unread()
	assert.Equal(t, Position{Line: 2, Column: 1}, l.Position())
	assert.Equal(t, Position{Line: 2, Column: 2}, l.CurrentPosition)

	char, ok = l.Next()
	require.True(t, ok)
	assert.Equal(t, byte('x'), char)
	assert.Equal(t, Position{Line: 2, Column: 2}, l.Position())

	_, ok = l.Next()
	assert.False(t, ok)
	assert.NoError(t, l.Err())
}

func TestTokenText(t *testing.T) {
	text, err := LoopOpen.MarshalText()
	require.NoError(t, err)
	assert.Equal(t, "[", string(text))

	var token Token
	require.NoError(t, token.UnmarshalText([]byte(">")))
	assert.Equal(t, MoveRight, token)

	require.NoError(t, token.UnmarshalText(nil))
	assert.Equal(t, Empty, token)

	assert.Error(t, token.UnmarshalText([]byte("x")))
	assert.Error(t, token.UnmarshalText([]byte("++")))
}
