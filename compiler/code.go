package compiler

import (
	"github.com/deepnoodle-ai/bfgo/op"
)

// Placeholder is a temporary jump target written during lowering, which is
// always replaced before compilation is complete.
const Placeholder = -1

// Instruction is one executable unit of a compiled program. For the four
// repeatable opcodes, Arg is the repetition count (always >= 1). For LoopHead
// and LoopEnd, Arg is the instruction index of the matching bracket. PutChar
// and GetChar carry no operand and their Arg is zero.
type Instruction struct {
	Op  op.Code
	Arg int
}

// Code is the compiled representation of a program: an ordered, immutable
// sequence of instructions. It is safe for concurrent use; multiple virtual
// machines may execute the same Code simultaneously against separate tapes.
type Code struct {
	instructions []Instruction
	source       string
}

// InstructionCount returns the number of instructions.
func (c *Code) InstructionCount() int {
	return len(c.instructions)
}

// Instruction returns the instruction at the given index.
func (c *Code) Instruction(index int) Instruction {
	return c.instructions[index]
}

// Source returns the original source text that was compiled.
func (c *Code) Source() string {
	return c.source
}
