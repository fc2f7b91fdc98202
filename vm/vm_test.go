package vm

import (
	"bytes"
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/deepnoodle-ai/bfgo/compiler"
	"github.com/deepnoodle-ai/bfgo/errz"
)

func mustCompile(t *testing.T, source string) *compiler.Code {
	t.Helper()
	code, err := compiler.Compile(source)
	require.Nil(t, err)
	return code
}

func TestTransferLoop(t *testing.T) {
	// Classic pattern: cell 0 starts at 2, cell 1 at 1; the loop moves
	// cell 0's value into cell 1.
	code := mustCompile(t, "++>+<[->+<]")
	vm := New(code, WithTapeSize(3))
	require.Nil(t, vm.Run(context.Background()))
	require.Equal(t, []byte{0, 3, 0}, vm.Tape())
}

func TestClearLoopTerminates(t *testing.T) {
	code := mustCompile(t, "+[-]")
	vm := New(code, WithTapeSize(1))
	require.Nil(t, vm.Run(context.Background()))
	require.Equal(t, byte(0), vm.Tape()[0])
}

func TestSkippedLoopBody(t *testing.T) {
	// Cell 0 is zero at the loop head, so the body never executes.
	code := mustCompile(t, "[>+++<].")
	var out bytes.Buffer
	vm := New(code, WithTapeSize(2), WithStdout(&out))
	require.Nil(t, vm.Run(context.Background()))
	require.Equal(t, []byte{0, 0}, vm.Tape())
	require.Equal(t, []byte{0}, out.Bytes())
}

func TestValueWraparound(t *testing.T) {
	// Decrementing zero wraps to 255.
	code := mustCompile(t, "-")
	vm := New(code, WithTapeSize(1))
	require.Nil(t, vm.Run(context.Background()))
	require.Equal(t, byte(255), vm.Tape()[0])

	// Incrementing 255 wraps to zero.
	code = mustCompile(t, "+")
	vm = New(code, WithTape([]byte{255}))
	require.Nil(t, vm.Run(context.Background()))
	require.Equal(t, byte(0), vm.Tape()[0])

	// A compressed run of 256 increments is a full wrap.
	code = mustCompile(t, strings.Repeat("+", 256))
	require.Equal(t, 1, code.InstructionCount())
	vm = New(code, WithTapeSize(1))
	require.Nil(t, vm.Run(context.Background()))
	require.Equal(t, byte(0), vm.Tape()[0])
}

func TestPointerOverflow(t *testing.T) {
	// Moving to the index equal to the tape length faults.
	code := mustCompile(t, ">")
	vm := New(code, WithTapeSize(1))
	err := vm.Run(context.Background())
	require.NotNil(t, err)
	require.True(t, errz.IsKind(err, errz.ErrOverflow))

	// Moving to the last valid index does not.
	vm = New(code, WithTapeSize(2))
	require.Nil(t, vm.Run(context.Background()))
}

func TestPointerUnderflow(t *testing.T) {
	code := mustCompile(t, "<")
	vm := New(code, WithTapeSize(8))
	err := vm.Run(context.Background())
	require.NotNil(t, err)
	require.True(t, errz.IsKind(err, errz.ErrUnderflow))
}

func TestOutput(t *testing.T) {
	// 8 * 8 + 1 == 65 == 'A'
	code := mustCompile(t, "++++++++[>++++++++<-]>+.")
	var out bytes.Buffer
	vm := New(code, WithTapeSize(2), WithStdout(&out))
	require.Nil(t, vm.Run(context.Background()))
	require.Equal(t, "A", out.String())
}

func TestInput(t *testing.T) {
	code := mustCompile(t, ",>,")
	vm := New(code,
		WithTapeSize(2),
		WithStdin(strings.NewReader("hi")))
	require.Nil(t, vm.Run(context.Background()))
	require.Equal(t, []byte{'h', 'i'}, vm.Tape())
}

func TestInputExhaustionStalls(t *testing.T) {
	// An exhausted input source stalls the input instruction rather than
	// terminating the program. The cell is left unchanged and the stall can
	// only be interrupted through the context.
	code := mustCompile(t, "+,")
	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()
	vm := New(code,
		WithTapeSize(1),
		WithStdin(strings.NewReader("")))
	err := vm.Run(ctx)
	require.NotNil(t, err)
	require.ErrorIs(t, err, context.DeadlineExceeded)
	require.Equal(t, byte(1), vm.Tape()[0])
}

func TestCompressionPreservesBehavior(t *testing.T) {
	// The two sources are semantically identical, but the second interleaves
	// pointer bounces so that no run is longer than one and nothing gets
	// compressed.
	compressed := mustCompile(t, "++++")
	require.Equal(t, 1, compressed.InstructionCount())
	naive := mustCompile(t, "+><+><+><+")
	require.Equal(t, 10, naive.InstructionCount())

	a := New(compressed, WithTapeSize(2))
	require.Nil(t, a.Run(context.Background()))
	b := New(naive, WithTapeSize(2))
	require.Nil(t, b.Run(context.Background()))
	require.Equal(t, a.Tape(), b.Tape())
}

func TestCallerAllocatedTape(t *testing.T) {
	tape := make([]byte, 4)
	code := mustCompile(t, "+>++>+++")
	vm := New(code, WithTape(tape))
	require.Nil(t, vm.Run(context.Background()))
	require.Equal(t, []byte{1, 2, 3, 0}, tape)
}

func TestDefaultTapeSize(t *testing.T) {
	code := mustCompile(t, "")
	vm := New(code)
	require.Equal(t, DefaultTapeSize, len(vm.Tape()))
}

func TestFreshStatePerRun(t *testing.T) {
	// Each Run restarts from instruction 0 and data pointer 0 but keeps the
	// same tape, so a second run sees the first run's cells.
	code := mustCompile(t, "+")
	vm := New(code, WithTapeSize(1))
	require.Nil(t, vm.Run(context.Background()))
	require.Nil(t, vm.Run(context.Background()))
	require.Equal(t, byte(2), vm.Tape()[0])
}
