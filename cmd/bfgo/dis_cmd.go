package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/deepnoodle-ai/bfgo"
	"github.com/deepnoodle-ai/bfgo/dis"
)

func newDisCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "dis <program.bf>",
		Short: "Disassemble a compiled program",
		Long: "Disassemble shows the lowered instruction stream for a program:\n" +
			"run-length compressed pointer/value operations and resolved loop\n" +
			"bracket targets.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			source, err := os.ReadFile(args[0])
			if err != nil {
				return err
			}
			program, err := bfgo.Compile(string(source))
			if err != nil {
				return err
			}
			dis.Print(dis.Disassemble(program.Code()), os.Stdout)
			return nil
		},
	}
}
