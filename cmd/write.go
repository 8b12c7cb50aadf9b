package cmd

import (
	"github.com/spf13/cobra"

	"github.com/chrisreddington/debugex/internal/debugex"
)

// NewWriteCmd creates the write subcommand
func NewWriteCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "write <message>",
		Short: "Write a message to the debug channel",
		Long: `Write a message to the debug channel on stderr.

The debug channel only exists in builds made with -tags debug; otherwise nothing is written.`,
		Args: cobra.ExactArgs(1),
		RunE: runWriteCmd,
	}
	addCallerInfoFlag(cmd)
	return cmd
}

func runWriteCmd(cmd *cobra.Command, args []string) error {
	logger := newLogger(cmd)

	cfg, err := loadConfiguration(cmd, logger)
	if err != nil {
		return err
	}

	info, err := callerInfo(cmd, cfg.CallerInfo)
	if err != nil {
		return err
	}

	if !debugex.Enabled {
		logger.Debug("Debug channel is compiled out; rebuild with -tags debug")
		return nil
	}

	debugex.SetOutput(cmd.ErrOrStderr())
	debugex.SetDefaultCallerInfo(cfg.CallerInfo)
	if cmd.Flags().Changed("caller-info") {
		debugex.WriteLineWith(args[0], info)
		return nil
	}
	debugex.WriteLine(args[0])
	return nil
}
