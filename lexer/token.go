package lexer

import "fmt"

// Token is one operator character of the language. Empty marks a placeholder
// node that has not been given an operator.
type Token byte

const (
	Empty     Token = 0
	Plus      Token = '+'
	Minus     Token = '-'
	MoveRight Token = '>'
	MoveLeft  Token = '<'
	Dot       Token = '.'
	Comma     Token = ','
	LoopOpen  Token = '['
	LoopClose Token = ']'
)

var names = map[Token]string{
	Empty:     "empty",
	Plus:      "plus",
	Minus:     "minus",
	MoveRight: "move_right",
	MoveLeft:  "move_left",
	Dot:       "dot",
	Comma:     "comma",
	LoopOpen:  "loop_open",
	LoopClose: "loop_close",
}

// Lookup reports the token for char, or false when char is not an operator.
func Lookup(char byte) (Token, bool) {
	token := Token(char)
	if token == Empty {
		return Empty, false
	}

	_, ok := names[token]
	return token, ok
}

// Compressible reports whether consecutive occurrences of the token collapse
// into a single counted instruction.
func (t Token) Compressible() bool {
	switch t {
	case Plus, Minus, MoveRight, MoveLeft, Dot, Comma:
		return true
	}

	return false
}

func (t Token) Name() string {
	if name, ok := names[t]; ok {
		return name
	}

	return "unknown"
}

func (t Token) String() string {
	if t == Empty {
		return ""
	}

	return string(rune(t))
}

func (t Token) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

func (t *Token) UnmarshalText(text []byte) error {
	if len(text) == 0 {
		*t = Empty
		return nil
	}

	token, ok := Lookup(text[0])
	if len(text) != 1 || !ok {
		return fmt.Errorf("unknown token %q", text)
	}

	*t = token
	return nil
}
