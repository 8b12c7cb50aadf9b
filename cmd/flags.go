package cmd

import (
	"github.com/spf13/cobra"
)

// NewFlagsCmd creates the flags subcommand
func NewFlagsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "flags",
		Short: "Show the default caller info",
		Args:  cobra.NoArgs,
		RunE:  runFlagsCmd,
	}
}

func runFlagsCmd(cmd *cobra.Command, args []string) error {
	logger := newLogger(cmd)

	cfg, err := loadConfiguration(cmd, logger)
	if err != nil {
		return err
	}

	if cfg.Path != "" {
		logger.Info("caller_info: %s (source: %s, file: %s)", cfg.CallerInfo, cfg.Source, cfg.Path)
		return nil
	}
	logger.Info("caller_info: %s (source: %s)", cfg.CallerInfo, cfg.Source)
	return nil
}
