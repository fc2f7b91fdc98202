// Package compiler lowers Brainfuck source text into the flat instruction
// stream executed by the vm package.
//
// # Three-Pass Compilation Strategy
//
// Pass 1: scan
//
// Maps each recognized source character to its opcode. Any other character is
// a comment and produces nothing, so scanning cannot fail.
//
// Pass 2: validate
//
// Checks that loop brackets are balanced: walking the opcode sequence, the
// running count of unclosed '[' must never go negative and must end at zero.
// This is the only structural check in the language. If it fails, no program
// is produced; there is no partial compilation.
//
// Pass 3: lower
//
// First collapses each maximal run of identical pointer/value opcodes into a
// single counted instruction (run-length compression — an optimization only,
// with no observable behavior change). Loop brackets and I/O opcodes are
// never collapsed: each bracket stays its own structural unit and I/O side
// effects are not batchable. Then binds each bracket pair using an explicit
// stack of pending LoopHead indices, so the vm can jump in O(1): a LoopHead's
// operand is the index of its LoopEnd and vice versa.
package compiler

import (
	"github.com/deepnoodle-ai/bfgo/errz"
	"github.com/deepnoodle-ai/bfgo/op"
)

// Compile lowers source text into executable Code. It returns an error of
// kind errz.ErrSyntax if the loop brackets are unbalanced, in which case no
// Code is produced.
func Compile(source string) (*Code, error) {
	opcodes, offsets := scan(source)
	if err := validate(opcodes, offsets); err != nil {
		return nil, err
	}
	instructions := compress(opcodes)
	bind(instructions)
	return &Code{instructions: instructions, source: source}, nil
}

// scan maps source characters to opcodes, dropping everything unrecognized.
// It also records the byte offset of each opcode for error reporting.
func scan(source string) ([]op.Code, []int) {
	opcodes := make([]op.Code, 0, len(source))
	offsets := make([]int, 0, len(source))
	for i := 0; i < len(source); i++ {
		if code, ok := op.FromChar(source[i]); ok {
			opcodes = append(opcodes, code)
			offsets = append(offsets, i)
		}
	}
	return opcodes, offsets
}

// validate checks bracket balance over the opcode sequence.
func validate(opcodes []op.Code, offsets []int) error {
	var unclosed int
	for i, code := range opcodes {
		switch code {
		case op.LoopHead:
			unclosed++
		case op.LoopEnd:
			unclosed--
			if unclosed < 0 {
				return errz.NewAt(errz.ErrSyntax, offsets[i],
					"unexpected ']' with no matching '['")
			}
		}
	}
	if unclosed != 0 {
		return errz.New(errz.ErrSyntax, "%d unclosed '['", unclosed)
	}
	return nil
}

// compress run-length encodes the opcode sequence. A run of n repeatable
// opcodes becomes one instruction with Arg n; any other opcode is emitted
// once per occurrence.
func compress(opcodes []op.Code) []Instruction {
	var instructions []Instruction
	for i := 0; i < len(opcodes); {
		code := opcodes[i]
		n := 1
		for i+n < len(opcodes) && opcodes[i+n] == code {
			n++
		}
		if code.Repeatable() {
			instructions = append(instructions, Instruction{Op: code, Arg: n})
		} else {
			arg := 0
			if code == op.LoopHead || code == op.LoopEnd {
				arg = Placeholder
			}
			for j := 0; j < n; j++ {
				instructions = append(instructions, Instruction{Op: code, Arg: arg})
			}
		}
		i += n
	}
	return instructions
}

// bind resolves each bracket pair to the index of its partner, using an
// explicit stack of pending LoopHead indices. It assumes the sequence passed
// validation: every LoopEnd has a pending LoopHead and the stack drains to
// empty.
func bind(instructions []Instruction) {
	var pending []int
	for i, instr := range instructions {
		switch instr.Op {
		case op.LoopHead:
			pending = append(pending, i)
		case op.LoopEnd:
			head := pending[len(pending)-1]
			pending = pending[:len(pending)-1]
			instructions[i].Arg = head
			instructions[head].Arg = i
		}
	}
}
