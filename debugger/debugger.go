package debugger

import (
	"io"

	"github.com/CanPacis/abi/lexer"
	"github.com/CanPacis/abi/parser"
	"github.com/CanPacis/abi/runtime"
)

// Debugger receives the instructions an engine dispatches and the state it
// leaves behind.
type Debugger struct {
	Writer io.Writer
	Format Format
	// Cells is how much of the tape a state dump shows.
	Cells int
}

// MetaData identifies the program a dump belongs to.
type MetaData struct {
	Type     string `json:"type" yaml:"type" cbor:"type"`
	FileName string `json:"file_name,omitempty" yaml:"file_name,omitempty" cbor:"file_name,omitempty"`
	FilePath string `json:"file_path,omitempty" yaml:"file_path,omitempty" cbor:"file_path,omitempty"`
}

type TreeDump struct {
	MetaData `yaml:",inline"`
	Nodes    int          `json:"nodes" yaml:"nodes" cbor:"nodes"`
	Root     *parser.Node `json:"root" yaml:"root" cbor:"root"`
}

type State struct {
	MetaData      `yaml:",inline"`
	runtime.State `yaml:",inline"`
}

const (
	TreeType  = "tree"
	StateType = "state"
)

func NewDebugger(w io.Writer, format Format) *Debugger {
	return &Debugger{
		Writer: w,
		Format: format,
		Cells:  100,
	}
}

// Trace writes the token of a dispatched instruction. Placeholders are not
// written.
func (d *Debugger) Trace(instruction parser.Instruction) {
	if d == nil || d.Writer == nil || instruction.Token == lexer.Empty {
		return
	}

	d.Writer.Write([]byte{byte(instruction.Token)})
}

func (d *Debugger) Tree(tree *parser.Tree) error {
	return DumpTree(d.Writer, tree, d.Format)
}

func (d *Debugger) State(context *runtime.Context) error {
	return DumpState(d.Writer, d.CreateState(context), d.Format)
}

func (d *Debugger) CreateState(context *runtime.Context) State {
	return State{
		MetaData: MetaData{Type: StateType},
		State:    context.Snapshot(d.Cells),
	}
}
