package cmd

import (
	"context"

	"github.com/cli/go-gh/v2/pkg/term"
	"github.com/spf13/cobra"

	"github.com/chrisreddington/debugex/internal/common"
	"github.com/chrisreddington/debugex/internal/config"
	"github.com/chrisreddington/debugex/internal/types"
)

var rootCmd = &cobra.Command{
	Use:           "debugex",
	Short:         "Debug channel message formatter",
	Long:          "Format debug messages with caller details and write them to the debug channel.\nThe debug channel is only compiled in when built with -tags debug.",
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the root command with output routed through the terminal.
func Execute() error {
	t := term.FromEnv()
	rootCmd.SetOut(t.Out())
	rootCmd.SetErr(t.ErrOut())
	return rootCmd.Execute()
}

func init() {
	addPersistentFlags(rootCmd)
	rootCmd.AddCommand(NewFormatCmd(), NewWriteCmd(), NewFlagsCmd())
}

func addPersistentFlags(cmd *cobra.Command) {
	cmd.PersistentFlags().Bool("debug", false, "Print diagnostic messages to stderr")
	cmd.PersistentFlags().String("config", "", "Configuration file (yaml, toml or json)")
}

// newLogger creates a logger writing to the command's output streams.
func newLogger(cmd *cobra.Command) *common.StandardLogger {
	debug, _ := cmd.Flags().GetBool("debug")
	return common.NewLoggerWithWriters(debug, cmd.OutOrStdout(), cmd.ErrOrStderr())
}

// loadConfiguration reads the configuration named by --config.
func loadConfiguration(cmd *cobra.Command, logger common.Logger) (*config.Configuration, error) {
	path, _ := cmd.Flags().GetString("config")

	parent := cmd.Context()
	if parent == nil {
		parent = context.Background()
	}
	ctx, cancel := context.WithTimeout(parent, config.FileOperationTimeout)
	defer cancel()

	cfg, err := config.Load(ctx, path)
	if err != nil {
		return nil, err
	}
	logger.Debug("Default caller info %s (source: %s)", cfg.CallerInfo, cfg.Source)
	return cfg, nil
}

// addCallerInfoFlag registers --caller-info on cmd.
func addCallerInfoFlag(cmd *cobra.Command) {
	cmd.Flags().String("caller-info", "", "Caller details to include: none, all, or a list of time,member,file,line (default from configuration)")
}

// callerInfo returns the --caller-info value, or fallback when the flag was not given.
func callerInfo(cmd *cobra.Command, fallback types.CallerInfo) (types.CallerInfo, error) {
	if !cmd.Flags().Changed("caller-info") {
		return fallback, nil
	}
	raw, _ := cmd.Flags().GetString("caller-info")
	return types.ParseCallerInfo(raw)
}
