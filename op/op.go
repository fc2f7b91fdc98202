// Package op defines the opcodes shared by the bfgo compiler and virtual machine.
package op

// Code is an integer opcode that indicates an operation to execute.
type Code uint8

const (
	Invalid Code = iota

	// Pointer movement
	IncrementPointer // >
	DecrementPointer // <

	// Cell arithmetic
	IncrementValue // +
	DecrementValue // -

	// I/O
	PutChar // .
	GetChar // ,

	// Looping
	LoopHead // [
	LoopEnd  // ]
)

// FromChar maps a source character to its opcode. Characters with no mapping
// return (Invalid, false); the compiler treats them as comments.
func FromChar(c byte) (Code, bool) {
	switch c {
	case '>':
		return IncrementPointer, true
	case '<':
		return DecrementPointer, true
	case '+':
		return IncrementValue, true
	case '-':
		return DecrementValue, true
	case '.':
		return PutChar, true
	case ',':
		return GetChar, true
	case '[':
		return LoopHead, true
	case ']':
		return LoopEnd, true
	default:
		return Invalid, false
	}
}

// Repeatable reports whether a run of consecutive occurrences of this opcode
// may be collapsed into a single counted instruction. Loop brackets must each
// remain their own structural unit and I/O side effects are not batchable, so
// only the pointer and value mutations qualify.
func (c Code) Repeatable() bool {
	switch c {
	case IncrementPointer, DecrementPointer, IncrementValue, DecrementValue:
		return true
	default:
		return false
	}
}

// String returns the source character for the opcode.
func (c Code) String() string {
	switch c {
	case IncrementPointer:
		return ">"
	case DecrementPointer:
		return "<"
	case IncrementValue:
		return "+"
	case DecrementValue:
		return "-"
	case PutChar:
		return "."
	case GetChar:
		return ","
	case LoopHead:
		return "["
	case LoopEnd:
		return "]"
	default:
		return ""
	}
}

// Info contains information about an opcode.
type Info struct {
	Code         Code
	Name         string
	OperandCount int
}

var infos = make([]Info, 16)

func init() {
	type opInfo struct {
		op    Code
		name  string
		count int
	}
	ops := []opInfo{
		{IncrementPointer, "INCREMENT_POINTER", 1},
		{DecrementPointer, "DECREMENT_POINTER", 1},
		{IncrementValue, "INCREMENT_VALUE", 1},
		{DecrementValue, "DECREMENT_VALUE", 1},
		{PutChar, "PUT_CHAR", 0},
		{GetChar, "GET_CHAR", 0},
		{LoopHead, "LOOP_HEAD", 1},
		{LoopEnd, "LOOP_END", 1},
	}
	for _, o := range ops {
		infos[o.op] = Info{
			Name:         o.name,
			Code:         o.op,
			OperandCount: o.count,
		}
	}
}

// GetInfo returns information about the given opcode.
func GetInfo(op Code) Info {
	return infos[op]
}
