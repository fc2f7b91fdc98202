// Package bfgo is a compiling interpreter for the Brainfuck language: eight
// single-character operations over a movable data pointer into a fixed-size
// byte tape, with bracket-delimited looping on the current cell.
//
// Source text is lowered by the compiler package into a flat, jump-resolved
// instruction stream, which the vm package then executes:
//
//	program, err := bfgo.Compile("++>+<[->+<]")
//	if err != nil {
//		// unbalanced brackets; there is nothing to run
//	}
//	err = program.Run(ctx, bfgo.WithTapeSize(30000))
package bfgo

import (
	"context"
	"io"

	"github.com/deepnoodle-ai/bfgo/compiler"
	"github.com/deepnoodle-ai/bfgo/vm"
)

// Option configures a bfgo program execution.
type Option func(*options)

type options struct {
	tape     []byte
	tapeSize int
	stdin    io.Reader
	stdout   io.Writer
}

func collectOptions(opts ...Option) *options {
	o := &options{}
	for _, opt := range opts {
		if opt != nil {
			opt(o)
		}
	}
	return o
}

func (o *options) vmOpts() []vm.Option {
	var opts []vm.Option
	if o.tape != nil {
		opts = append(opts, vm.WithTape(o.tape))
	}
	if o.tapeSize > 0 {
		opts = append(opts, vm.WithTapeSize(o.tapeSize))
	}
	if o.stdin != nil {
		opts = append(opts, vm.WithStdin(o.stdin))
	}
	if o.stdout != nil {
		opts = append(opts, vm.WithStdout(o.stdout))
	}
	return opts
}

// WithTape supplies a caller-allocated tape, which the interpreter mutates
// exclusively for the duration of the run. Takes precedence over WithTapeSize.
func WithTape(tape []byte) Option {
	return func(o *options) {
		o.tape = tape
	}
}

// WithTapeSize sets the capacity of the tape allocated for the run. The
// default is vm.DefaultTapeSize (1,048,576 cells).
func WithTapeSize(size int) Option {
	return func(o *options) {
		o.tapeSize = size
	}
}

// WithStdin sets the byte source read by the input instruction.
func WithStdin(r io.Reader) Option {
	return func(o *options) {
		o.stdin = r
	}
}

// WithStdout sets the byte sink written by the output instruction.
func WithStdout(w io.Writer) Option {
	return func(o *options) {
		o.stdout = w
	}
}

// Compile validates and lowers source text into an immutable Program.
// Unbalanced loop brackets yield a nil Program and an error of kind
// errz.ErrSyntax.
func Compile(source string) (*Program, error) {
	code, err := compiler.Compile(source)
	if err != nil {
		return nil, err
	}
	return &Program{code: code, source: source}, nil
}

// Run compiles and executes source text in one step.
func Run(ctx context.Context, source string, opts ...Option) error {
	program, err := Compile(source)
	if err != nil {
		return err
	}
	return program.Run(ctx, opts...)
}
