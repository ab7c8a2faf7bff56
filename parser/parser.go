package parser

import (
	"io"
	"strings"

	"github.com/tliron/commonlog"

	"github.com/CanPacis/abi/lexer"
)

func log() commonlog.Logger {
	return commonlog.GetLogger("abi.parser")
}

// Parser builds instruction trees. It never fails: unmatched brackets are
// closed or cut off where the stream dictates and anything that is not an
// operator is skipped.
type Parser struct {
	FilePath string
	Lexer    *lexer.Lexer
	depth    int
}

func NewParser(filePath string) *Parser {
	return &Parser{FilePath: filePath}
}

// Parse consumes source up to its end, or up to a loop end with no opener,
// and returns the resulting tree.
func (p *Parser) Parse(source io.Reader) *Tree {
	p.Lexer = lexer.NewLexer(source)
	p.depth = 0

	tree := &Tree{FilePath: p.FilePath, Root: p.parse()}

	if err := p.Lexer.Err(); err != nil {
		log().Warningf("%s: source read stopped early: %s", p.name(), err)
	}

	return tree
}

func (p *Parser) parse() *Node {
	root := &Node{}
	node := root

	for {
		char, ok := p.Lexer.Next()
		if !ok {
			if p.depth > 0 {
				log().Debugf("%s: loop left open at end of input", p.name())
			}
			return root
		}

		token, known := lexer.Lookup(char)
		position := p.Lexer.Position()

		switch {
		case !known:
		case token.Compressible():
			count := 1
			for {
				next, ok := p.Lexer.Next()
				if !ok {
					break
				}
				if next != char {
					p.Lexer.Unread()
					break
				}
				count++
			}
			node.Instruction = Instruction{Token: token, Count: count, Position: position}
		case token == lexer.LoopOpen:
			node.Instruction = Instruction{Token: token, Count: 1, Position: position}
			p.depth++
			node.Loop = p.parse()
			p.depth--
		case token == lexer.LoopClose:
			if p.depth == 0 {
				log().Debugf("%s: unmatched loop end at %d:%d stops the program", p.name(), position.Line, position.Column)
			}
			return root
		}

		node.Next = &Node{}
		node = node.Next
	}
}

func (p *Parser) name() string {
	if len(p.FilePath) == 0 {
		return "<input>"
	}

	return p.FilePath
}

func Build(source io.Reader) *Tree {
	return NewParser("").Parse(source)
}

func BuildString(source string) *Tree {
	return Build(strings.NewReader(source))
}
