package parser

import (
	"fmt"
	"strings"

	"github.com/CanPacis/abi/lexer"
)

// Instruction is a run of identical tokens collapsed into one operation.
// Loop openers always carry a count of 1 and placeholders a count of 0.
type Instruction struct {
	Token    lexer.Token    `json:"token" yaml:"token" cbor:"token"`
	Count    int            `json:"count" yaml:"count" cbor:"count"`
	Position lexer.Position `json:"position" yaml:"position" cbor:"position"`
}

func (i Instruction) String() string {
	if i.Token == lexer.Empty {
		return "<empty>"
	}

	return fmt.Sprintf("%s%d", i.Token, i.Count)
}

// Node owns one instruction, the body of the loop it opens (if any) and the
// instruction that follows it.
type Node struct {
	Instruction Instruction `json:"instruction" yaml:"instruction" cbor:"instruction"`
	Loop        *Node       `json:"loop,omitempty" yaml:"loop,omitempty" cbor:"loop,omitempty"`
	Next        *Node       `json:"next,omitempty" yaml:"next,omitempty" cbor:"next,omitempty"`
}

type Tree struct {
	FilePath string `json:"file_path,omitempty" yaml:"file_path,omitempty" cbor:"file_path,omitempty"`
	Root     *Node  `json:"root" yaml:"root" cbor:"root"`
}

// Executable reports whether the tree has anything to run.
func (t *Tree) Executable() bool {
	return t != nil && t.Root != nil
}

// Release unlinks every node of the tree. Releasing a nil tree, a tree with
// no root or an already released tree does nothing.
func (t *Tree) Release() {
	if t == nil {
		return
	}

	release(t.Root)
	t.Root = nil
}

func release(node *Node) {
	for node != nil {
		release(node.Loop)
		next := node.Next
		node.Loop = nil
		node.Next = nil
		node = next
	}
}

// Walk visits the nodes in pre-order: a node, then its loop body, then the
// rest of its sequence. Depth is the loop nesting level of the node.
func (t *Tree) Walk(fn func(node *Node, depth int)) {
	if t == nil {
		return
	}

	walk(t.Root, 0, fn)
}

func walk(node *Node, depth int, fn func(node *Node, depth int)) {
	for ; node != nil; node = node.Next {
		fn(node, depth)
		walk(node.Loop, depth+1, fn)
	}
}

// Len returns the number of nodes in the tree, placeholders included.
func (t *Tree) Len() int {
	count := 0
	t.Walk(func(*Node, int) { count++ })
	return count
}

// Source reconstructs the program from the tree: every instruction written
// out count times, loop bodies before the instruction that follows them.
// Loop ends are not written since they have no node of their own.
func (t *Tree) Source() string {
	builder := strings.Builder{}
	t.Walk(func(node *Node, _ int) {
		if node.Instruction.Token == lexer.Empty {
			return
		}
		builder.WriteString(strings.Repeat(node.Instruction.Token.String(), node.Instruction.Count))
	})

	return builder.String()
}
