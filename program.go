package bfgo

import (
	"context"

	"github.com/deepnoodle-ai/bfgo/compiler"
	"github.com/deepnoodle-ai/bfgo/vm"
)

// Program is the compiled representation of Brainfuck source code. It is
// immutable after creation and safe for concurrent use: multiple goroutines
// may call Run on the same Program simultaneously, each run getting its own
// tape and execution state.
type Program struct {
	code   *compiler.Code
	source string
}

// Source returns the original source code that was compiled.
func (p *Program) Source() string {
	return p.source
}

// Code returns the internal compiler.Code for use by the VM and the
// disassembler.
func (p *Program) Code() *compiler.Code {
	return p.code
}

// Run executes the program to completion or to a fault. See vm.Run for the
// fault and input-exhaustion semantics.
func (p *Program) Run(ctx context.Context, opts ...Option) error {
	machine := vm.New(p.code, collectOptions(opts...).vmOpts()...)
	return machine.Run(ctx)
}
