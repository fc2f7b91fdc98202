package main

import (
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/deepnoodle-ai/bfgo/vm"
)

var version = "dev"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fatal(err)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:     "bfgo <program.bf>",
		Short:   "A compiling interpreter for the Brainfuck language",
		Version: version,
		Args:    cobra.ExactArgs(1),
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			setupColor()
		},
		RunE:          runHandler,
		SilenceErrors: true,
	}

	root.PersistentFlags().Bool("verbose", false, "Enable debug logging")
	root.PersistentFlags().Bool("no-color", false, "Disable colored output")
	root.Flags().Int("tape-size", vm.DefaultTapeSize, "Tape capacity in cells")
	root.Flags().Bool("timing", false, "Print execution time to stderr")

	viper.BindPFlags(root.PersistentFlags())
	viper.BindPFlags(root.Flags())
	viper.SetEnvPrefix("bfgo")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()

	root.AddCommand(newDisCmd())
	return root
}
