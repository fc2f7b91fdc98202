// Package vm provides a VirtualMachine that executes compiled bfgo code.
package vm

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/deepnoodle-ai/bfgo/compiler"
	"github.com/deepnoodle-ai/bfgo/errz"
	"github.com/deepnoodle-ai/bfgo/op"
)

// DefaultTapeSize is the tape capacity allocated when the caller supplies
// neither a tape nor a size: one MiB of zero-initialized cells.
const DefaultTapeSize = 1024 * 1024

// VirtualMachine executes a compiled program against a fixed-capacity byte
// tape. Create one with New; each Run starts from a fresh execution state
// (instruction pointer and data pointer at zero) but reuses the same tape.
type VirtualMachine struct {
	ip       int // instruction pointer
	dp       int // data pointer
	code     *compiler.Code
	tape     []byte
	tapeSize int
	stdin    io.Reader
	stdout   io.Writer
	inbuf    [1]byte
}

// New creates a VirtualMachine for the given compiled code. By default it
// allocates a zeroed tape of DefaultTapeSize cells and performs I/O on the
// process's standard input and output.
func New(code *compiler.Code, options ...Option) *VirtualMachine {
	vm := &VirtualMachine{
		code:   code,
		stdin:  os.Stdin,
		stdout: os.Stdout,
	}
	for _, opt := range options {
		opt(vm)
	}
	if vm.tape == nil {
		size := vm.tapeSize
		if size <= 0 {
			size = DefaultTapeSize
		}
		vm.tape = make([]byte, size)
	}
	return vm
}

// Tape returns the tape the machine mutates. The caller must not read or
// write it while Run is in progress.
func (vm *VirtualMachine) Tape() []byte {
	return vm.tape
}

// Run executes the program until the instruction pointer leaves the valid
// range or a fault occurs. Pointer moves outside the tape return an error of
// kind errz.ErrOverflow or errz.ErrUnderflow; cell arithmetic wraps modulo
// 256 and never faults.
//
// An exhausted input source does not terminate the program: the read is
// retried on every cycle with the current cell left unchanged. The context is
// consulted only on that stall path, so a cancellation or deadline can bound
// an otherwise infinite retry loop.
func (vm *VirtualMachine) Run(ctx context.Context) error {
	vm.ip = 0
	vm.dp = 0
	count := vm.code.InstructionCount()

	for 0 <= vm.ip && vm.ip < count {
		instr := vm.code.Instruction(vm.ip)
		switch instr.Op {
		case op.IncrementPointer:
			vm.dp += instr.Arg
			if vm.dp >= len(vm.tape) {
				return errz.New(errz.ErrOverflow,
					"data pointer %d outside tape of length %d", vm.dp, len(vm.tape))
			}
			vm.ip++
		case op.DecrementPointer:
			vm.dp -= instr.Arg
			if vm.dp < 0 {
				return errz.New(errz.ErrUnderflow,
					"data pointer moved before the start of the tape")
			}
			vm.ip++
		case op.IncrementValue:
			vm.tape[vm.dp] += byte(instr.Arg) // wraps mod 256
			vm.ip++
		case op.DecrementValue:
			vm.tape[vm.dp] -= byte(instr.Arg) // wraps mod 256
			vm.ip++
		case op.PutChar:
			if _, err := vm.stdout.Write(vm.tape[vm.dp : vm.dp+1]); err != nil {
				return err
			}
			vm.ip++
		case op.GetChar:
			n, err := vm.stdin.Read(vm.inbuf[:])
			if n > 0 {
				vm.tape[vm.dp] = vm.inbuf[0]
				vm.ip++
				continue
			}
			if err != nil && !errors.Is(err, io.EOF) {
				return err
			}
			// Input exhausted: the cell stays unchanged and this same
			// instruction is retried on the next cycle.
			if err := ctx.Err(); err != nil {
				return err
			}
		case op.LoopHead:
			if vm.tape[vm.dp] == 0 {
				vm.ip = instr.Arg + 1 // skip the body and its closing bracket
			} else {
				vm.ip++
			}
		case op.LoopEnd:
			if vm.tape[vm.dp] == 0 {
				vm.ip++
			} else {
				vm.ip = instr.Arg // re-test the loop condition
			}
		default:
			return fmt.Errorf("unknown opcode: %d", instr.Op)
		}
	}
	return nil
}
