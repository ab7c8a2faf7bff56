package runtime

// DefaultMemorySize is the tape length used when no size is configured.
const DefaultMemorySize = 30000

// Context is the memory a program runs against: a fixed tape of byte cells
// and the pointer to the current cell.
type Context struct {
	Tape    []byte
	Pointer int
}

// New allocates a zeroed tape of capacity cells with the pointer on the first
// one. A capacity below 1 falls back to DefaultMemorySize.
func New(capacity int) *Context {
	if capacity < 1 {
		capacity = DefaultMemorySize
	}

	return &Context{
		Tape:    make([]byte, capacity),
		Pointer: 0,
	}
}

func (c *Context) Capacity() int {
	if c == nil {
		return 0
	}

	return len(c.Tape)
}

// Cell returns the byte under the pointer, or 0 when the pointer is off the
// tape.
func (c *Context) Cell() byte {
	if c.Pointer < 0 || c.Pointer >= len(c.Tape) {
		return 0
	}

	return c.Tape[c.Pointer]
}

// Release drops the tape. It is safe to call on a nil or released context.
func (c *Context) Release() {
	if c == nil {
		return
	}

	c.Tape = nil
	c.Pointer = 0
}

type State struct {
	Cursor int    `json:"cursor" yaml:"cursor" cbor:"cursor"`
	Size   int    `json:"size" yaml:"size" cbor:"size"`
	Tape   []byte `json:"tape" yaml:"tape,flow" cbor:"tape"`
}

// Snapshot copies the pointer and the first cells of the tape.
func (c *Context) Snapshot(cells int) State {
	if c == nil {
		return State{}
	}

	if cells < 0 || cells > len(c.Tape) {
		cells = len(c.Tape)
	}

	tape := make([]byte, cells)
	copy(tape, c.Tape)

	return State{
		Cursor: c.Pointer,
		Size:   len(c.Tape),
		Tape:   tape,
	}
}
