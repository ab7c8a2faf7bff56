package engine

import (
	"github.com/CanPacis/abi/lexer"
	"github.com/CanPacis/abi/parser"
)

// Interpreter applies a single instruction to the engine's context.
type Interpreter func(e *Engine, instruction parser.Instruction)

type resolver func(e *Engine, count int)

// Loop openers and placeholders have no entry: loops are driven by the tree.
var resolvers = map[lexer.Token]resolver{
	lexer.Plus:      (*Engine).r_increment,
	lexer.Minus:     (*Engine).r_decrement,
	lexer.MoveRight: (*Engine).r_move_right,
	lexer.MoveLeft:  (*Engine).r_move_left,
	lexer.Dot:       (*Engine).r_stdout,
	lexer.Comma:     (*Engine).r_stdin,
}

// Interpret is the default Interpreter.
func Interpret(e *Engine, instruction parser.Instruction) {
	if resolve, ok := resolvers[instruction.Token]; ok {
		resolve(e, instruction.Count)
	}
}

func (e *Engine) onTape() bool {
	return e.Context.Pointer >= 0 && e.Context.Pointer < len(e.Context.Tape)
}

func (e *Engine) r_increment(count int) {
	if e.onTape() {
		e.Context.Tape[e.Context.Pointer] += byte(count)
	} else {
		log().Debugf("increment off the tape at %d ignored", e.Context.Pointer)
	}
}

func (e *Engine) r_decrement(count int) {
	if e.onTape() {
		e.Context.Tape[e.Context.Pointer] -= byte(count)
	} else {
		log().Debugf("decrement off the tape at %d ignored", e.Context.Pointer)
	}
}

// The pointer never reaches the last cell and, once it has left, never comes
// back to the first one. Moves that would cross either limit are dropped
// whole, as are moves by a count below 1.
func (e *Engine) r_move_right(count int) {
	if count > 0 && count < len(e.Context.Tape)-1-e.Context.Pointer {
		e.Context.Pointer += count
	} else {
		log().Debugf("move right by %d from %d ignored", count, e.Context.Pointer)
	}
}

func (e *Engine) r_move_left(count int) {
	if count > 0 && e.Context.Pointer-count > 0 {
		e.Context.Pointer -= count
	} else {
		log().Debugf("move left by %d from %d ignored", count, e.Context.Pointer)
	}
}

func (e *Engine) r_stdout(count int) {
	if !e.onTape() {
		return
	}

	for i := 0; i < count; i++ {
		e.IO.WriteByte(e.Context.Tape[e.Context.Pointer])
	}
}

func (e *Engine) r_stdin(count int) {
	if !e.onTape() {
		return
	}

	for i := 0; i < count; i++ {
		c, _ := e.IO.ReadByte()
		e.Context.Tape[e.Context.Pointer] = c
	}
}
