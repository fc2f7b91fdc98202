// Package dis supports analysis of compiled bfgo programs by disassembling
// them. This works with the opcodes defined in the `op` package and the
// instruction stream held by a `compiler.Code`.
package dis

import (
	"fmt"
	"io"

	"github.com/fatih/color"

	"github.com/deepnoodle-ai/bfgo/compiler"
	"github.com/deepnoodle-ai/bfgo/internal/table"
	"github.com/deepnoodle-ai/bfgo/op"
)

// Instruction represents a single instruction and its operand, annotated for
// display.
type Instruction struct {
	Offset     int
	Name       string
	Opcode     op.Code
	Operand    int
	HasOperand bool
	Annotation string
}

// Disassemble returns a parsed representation of the given compiled program.
func Disassemble(code *compiler.Code) []Instruction {
	count := code.InstructionCount()
	instructions := make([]Instruction, 0, count)
	for i := 0; i < count; i++ {
		instr := code.Instruction(i)
		info := op.GetInfo(instr.Op)
		var annotation string
		switch instr.Op {
		case op.LoopHead:
			annotation = fmt.Sprintf("end at %d", instr.Arg)
		case op.LoopEnd:
			annotation = fmt.Sprintf("head at %d", instr.Arg)
		default:
			if info.OperandCount > 0 && instr.Arg > 1 {
				annotation = fmt.Sprintf("%s x%d", instr.Op.String(), instr.Arg)
			} else {
				annotation = instr.Op.String()
			}
		}
		instructions = append(instructions, Instruction{
			Offset:     i,
			Name:       info.Name,
			Opcode:     instr.Op,
			Operand:    instr.Arg,
			HasOperand: info.OperandCount > 0,
			Annotation: annotation,
		})
	}
	return instructions
}

// Print writes a string representation of the given instructions to the
// given writer.
func Print(instructions []Instruction, writer io.Writer) {
	bold := color.New(color.Bold)
	cyan := color.New(color.FgCyan)
	var lines [][]string
	for _, instr := range instructions {
		operand := ""
		if instr.HasOperand {
			operand = fmt.Sprintf("%d", instr.Operand)
		}
		lines = append(lines, []string{
			fmt.Sprintf("%d", instr.Offset),
			bold.Sprint(instr.Name),
			operand,
			cyan.Sprint(instr.Annotation),
		})
	}
	tbl := table.NewTable(writer)
	tbl.WithHeader([]string{"OFFSET", "OPCODE", "OPERAND", "INFO"})
	tbl.WithHeaderAlignment([]table.Alignment{
		table.AlignCenter, table.AlignCenter, table.AlignCenter, table.AlignCenter,
	})
	tbl.WithColumnAlignment([]table.Alignment{
		table.AlignRight, table.AlignLeft, table.AlignRight, table.AlignLeft,
	})
	for _, line := range lines {
		tbl.Append(line)
	}
	tbl.Render()
}
