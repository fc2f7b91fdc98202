package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/deepnoodle-ai/bfgo"
)

func runHandler(cmd *cobra.Command, args []string) error {
	// From here on errors are compile or runtime failures, not usage mistakes.
	cmd.SilenceUsage = true

	source, err := os.ReadFile(args[0])
	if err != nil {
		return err
	}

	logger := newLogger()

	start := time.Now()
	program, err := bfgo.Compile(string(source))
	if err != nil {
		return err
	}
	logger.Debug().
		Str("file", args[0]).
		Int("source_bytes", len(source)).
		Int("instructions", program.Code().InstructionCount()).
		Msg("compiled program")

	tapeSize := viper.GetInt("tape-size")
	logger.Debug().Int("tape_size", tapeSize).Msg("starting vm")

	if err := program.Run(cmd.Context(), bfgo.WithTapeSize(tapeSize)); err != nil {
		return err
	}

	elapsed := time.Since(start)
	logger.Debug().Dur("elapsed", elapsed).Msg("execution finished")
	if viper.GetBool("timing") {
		fmt.Fprintf(os.Stderr, "%v\n", elapsed)
	}
	return nil
}
