package engine

import (
	"io"
	"os"

	"github.com/tliron/commonlog"

	"github.com/CanPacis/abi/bf_errors"
	"github.com/CanPacis/abi/bf_io"
	"github.com/CanPacis/abi/debugger"
	"github.com/CanPacis/abi/parser"
	"github.com/CanPacis/abi/runtime"
)

func log() commonlog.Logger {
	return commonlog.GetLogger("abi.engine")
}

type Engine struct {
	Context     *runtime.Context
	IO          *bf_io.RuntimeIO
	Interpreter Interpreter
	Debugger    *debugger.Debugger
}

type EngineOptions struct {
	MemorySize int
	Stdout     io.Writer
	Stderr     io.Writer
	Stdin      io.Reader
	// IO takes precedence over Stdout, Stderr and Stdin when set.
	IO          *bf_io.RuntimeIO
	Interpreter Interpreter
	// Debugger, when set, receives every dispatched instruction.
	Debugger *debugger.Debugger
}

func NewEngine(options EngineOptions) *Engine {
	e := &Engine{
		Context:     runtime.New(options.MemorySize),
		IO:          options.IO,
		Interpreter: options.Interpreter,
		Debugger:    options.Debugger,
	}

	if e.IO == nil {
		e.IO = bf_io.NewRuntimeIO(options.Stdout, options.Stderr, options.Stdin)
	}

	if e.Interpreter == nil {
		e.Interpreter = Interpret
	}

	return e
}

// Run executes tree against context using the process standard streams.
func Run(context *runtime.Context, tree *parser.Tree) {
	e := &Engine{
		Context:     context,
		IO:          bf_io.NewRuntimeIO(os.Stdout, os.Stderr, os.Stdin),
		Interpreter: Interpret,
	}

	e.Execute(tree)
}

func run(e *Engine, node *parser.Node) {
	for ; node != nil; node = node.Next {
		e.Interpreter(e, node.Instruction)
		e.Debugger.Trace(node.Instruction)

		if node.Loop != nil {
			for e.Context.Cell() != 0 {
				run(e, node.Loop)
			}
		}
	}
}

// Execute walks tree from its root and flushes the output once it is done.
// Output is also flushed at every newline and before every input read.
// A loop body runs from its first instruction every time the current cell is
// found non zero before an iteration.
func (e *Engine) Execute(tree *parser.Tree) {
	if e == nil || e.Context == nil || !tree.Executable() {
		return
	}

	run(e, tree.Root)
	e.IO.Flush()
}

// RunString parses and executes source.
func (e *Engine) RunString(source string) {
	e.Execute(parser.BuildString(source))
}

// RunFile parses and executes the script at filePath. Only a script that
// cannot be opened is an error, a *bf_errors.FileError.
func (e *Engine) RunFile(filePath string) error {
	source, closeScript, err := bf_io.OpenScript(filePath)
	if err != nil {
		return bf_errors.CreateUnreadableFileError(err, filePath)
	}
	defer closeScript()

	tree := parser.NewParser(filePath).Parse(source)
	defer tree.Release()

	log().Debugf("%s: %d nodes", filePath, tree.Len())
	e.Execute(tree)

	return nil
}

func (e *Engine) Release() {
	if e == nil {
		return
	}

	e.Context.Release()
}
