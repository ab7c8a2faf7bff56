package debugger

import (
	"fmt"
	"io"
	"path"
	"strings"

	"github.com/fxamacker/cbor/v2"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/CanPacis/abi/lexer"
	"github.com/CanPacis/abi/parser"
)

type Format string

const (
	None Format = ""
	Text Format = "text"
	YAML Format = "yaml"
	CBOR Format = "cbor"
)

func ParseFormat(name string) (Format, error) {
	switch format := Format(strings.ToLower(name)); format {
	case None, Text, YAML, CBOR:
		return format, nil
	}

	return None, errors.Errorf("unknown dump format %q", name)
}

var cborEncMode cbor.EncMode

func init() {
	em, err := cbor.CanonicalEncOptions().EncMode()
	if err != nil {
		panic(fmt.Sprintf("debugger: failed to create CBOR enc mode: %v", err))
	}
	cborEncMode = em
}

func metaData(kind string, filePath string) MetaData {
	data := MetaData{Type: kind, FilePath: filePath}
	if len(filePath) != 0 {
		data.FileName = path.Base(filePath)
	}

	return data
}

// DumpTree writes tree to w. Text lists one instruction per line, indented by
// loop depth; YAML and CBOR write a TreeDump document.
func DumpTree(w io.Writer, tree *parser.Tree, format Format) error {
	if tree == nil {
		tree = &parser.Tree{}
	}

	switch format {
	case None:
		return nil
	case Text:
		ew := &errWriter{w: w}
		tree.Walk(func(node *parser.Node, depth int) {
			instruction := node.Instruction
			fmt.Fprintf(ew, "%s%s", strings.Repeat("  ", depth), instruction)
			if instruction.Token != lexer.Empty {
				fmt.Fprintf(ew, " %d:%d", instruction.Position.Line, instruction.Position.Column)
			}
			ew.Write([]byte{'\n'})
		})
		return errors.Wrap(ew.err, "tree dump failed")
	}

	return encode(w, TreeDump{
		MetaData: metaData(TreeType, tree.FilePath),
		Nodes:    tree.Len(),
		Root:     tree.Root,
	}, format)
}

// DumpState writes the tape state to w. Text shows the cursor followed by the
// cells, sixteen per line.
func DumpState(w io.Writer, state State, format Format) error {
	switch format {
	case None:
		return nil
	case Text:
		ew := &errWriter{w: w}
		fmt.Fprintf(ew, "cursor %d of %d\n", state.Cursor, state.Size)
		for offset := 0; offset < len(state.Tape); offset += 16 {
			end := offset + 16
			if end > len(state.Tape) {
				end = len(state.Tape)
			}
			fmt.Fprintf(ew, "%05d: % x\n", offset, state.Tape[offset:end])
		}
		return errors.Wrap(ew.err, "state dump failed")
	}

	return encode(w, state, format)
}

func encode(w io.Writer, value interface{}, format Format) error {
	switch format {
	case YAML:
		encoder := yaml.NewEncoder(w)
		encoder.SetIndent(2)
		if err := encoder.Encode(value); err != nil {
			return errors.Wrap(err, "yaml dump failed")
		}
		return errors.Wrap(encoder.Close(), "yaml dump failed")
	case CBOR:
		data, err := cborEncMode.Marshal(value)
		if err != nil {
			return errors.Wrap(err, "cbor dump failed")
		}
		_, err = w.Write(data)
		return errors.Wrap(err, "cbor dump failed")
	}

	return errors.Errorf("unknown dump format %q", format)
}

// LoadTree reads a tree written by DumpTree in YAML or CBOR.
func LoadTree(r io.Reader, format Format) (*parser.Tree, error) {
	dump := TreeDump{}

	switch format {
	case YAML:
		if err := yaml.NewDecoder(r).Decode(&dump); err != nil {
			return nil, errors.Wrap(err, "cannot decode yaml tree")
		}
	case CBOR:
		if err := cbor.NewDecoder(r).Decode(&dump); err != nil {
			return nil, errors.Wrap(err, "cannot decode cbor tree")
		}
	default:
		return nil, errors.Errorf("trees cannot be loaded from %q dumps", format)
	}

	if dump.Type != TreeType {
		return nil, errors.Errorf("expected a %s dump, found %q", TreeType, dump.Type)
	}

	if err := checkNodes(dump.Root); err != nil {
		return nil, errors.Wrap(err, "invalid tree")
	}

	return &parser.Tree{FilePath: dump.FilePath, Root: dump.Root}, nil
}

// checkNodes rejects instructions the parser never produces: runs need a
// positive count, loop openers a count of 1, placeholders a count of 0, and
// only loop openers may own a body.
func checkNodes(node *parser.Node) error {
	for ; node != nil; node = node.Next {
		instruction := node.Instruction
		position := instruction.Position

		switch token := instruction.Token; {
		case token.Compressible():
			if instruction.Count < 1 {
				return errors.Errorf("%s at %d:%d needs a positive count, found %d", token.Name(), position.Line, position.Column, instruction.Count)
			}
		case token == lexer.LoopOpen:
			if instruction.Count != 1 {
				return errors.Errorf("loop_open at %d:%d needs a count of 1, found %d", position.Line, position.Column, instruction.Count)
			}
		case token == lexer.Empty:
			if instruction.Count != 0 {
				return errors.Errorf("placeholder at %d:%d needs a count of 0, found %d", position.Line, position.Column, instruction.Count)
			}
		default:
			return errors.Errorf("%s at %d:%d cannot appear in a tree", token.Name(), position.Line, position.Column)
		}

		if node.Loop != nil {
			if instruction.Token != lexer.LoopOpen {
				return errors.Errorf("%s at %d:%d cannot own a loop body", instruction.Token.Name(), position.Line, position.Column)
			}
			if err := checkNodes(node.Loop); err != nil {
				return err
			}
		}
	}

	return nil
}

type errWriter struct {
	w   io.Writer
	err error
}

func (w *errWriter) Write(p []byte) (n int, err error) {
	if w.err != nil {
		return 0, w.err
	}
	n, err = w.w.Write(p)
	if err != nil {
		w.err = err
	}
	return n, err
}
