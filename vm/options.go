package vm

import "io"

// Option is a configuration function for a VirtualMachine.
type Option func(*VirtualMachine)

// WithTape supplies a caller-allocated tape. The machine takes exclusive
// ownership of the slice for the duration of each Run. This takes precedence
// over WithTapeSize.
func WithTape(tape []byte) Option {
	return func(vm *VirtualMachine) {
		vm.tape = tape
	}
}

// WithTapeSize sets the capacity of the tape allocated by New. Values less
// than one fall back to DefaultTapeSize.
func WithTapeSize(size int) Option {
	return func(vm *VirtualMachine) {
		vm.tapeSize = size
	}
}

// WithStdin sets the reader used by the input instruction. Defaults to the
// process's standard input.
func WithStdin(r io.Reader) Option {
	return func(vm *VirtualMachine) {
		vm.stdin = r
	}
}

// WithStdout sets the writer used by the output instruction. Defaults to the
// process's standard output.
func WithStdout(w io.Writer) Option {
	return func(vm *VirtualMachine) {
		vm.stdout = w
	}
}
