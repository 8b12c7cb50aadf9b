package cmd

import (
	"fmt"
	"strings"

	"github.com/cli/go-gh/v2/pkg/term"
	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/chrisreddington/debugex/internal/debugex"
	"github.com/chrisreddington/debugex/internal/errors"
	"github.com/chrisreddington/debugex/internal/types"
)

// Color modes accepted by --color
const (
	colorAuto   = "auto"
	colorAlways = "always"
	colorNever  = "never"
)

// NewFormatCmd creates the format subcommand
func NewFormatCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "format <message>",
		Short: "Print a formatted debug block",
		Long: `Print the debug block for a message to stdout.

Caller details are taken from --member, --file and --line, since a shell has no call site.
This works in every build; it does not use the debug channel.`,
		Example: "  debugex format hello --caller-info member,line --member Foo --line 42",
		Args:    cobra.ExactArgs(1),
		RunE:    runFormatCmd,
	}
	addCallerInfoFlag(cmd)
	cmd.Flags().String("member", "", "Member name to report")
	cmd.Flags().String("file", "", "File path to report")
	cmd.Flags().Int("line", 0, "Line number to report")
	cmd.Flags().String("color", colorAuto, "Highlight the block delimiters: auto, always or never")
	return cmd
}

func runFormatCmd(cmd *cobra.Command, args []string) error {
	logger := newLogger(cmd)

	cfg, err := loadConfiguration(cmd, logger)
	if err != nil {
		return err
	}

	info, err := callerInfo(cmd, cfg.CallerInfo)
	if err != nil {
		return err
	}

	mode, _ := cmd.Flags().GetString("color")
	useColor, err := colorEnabled(mode, term.FromEnv())
	if err != nil {
		return err
	}

	member, _ := cmd.Flags().GetString("member")
	file, _ := cmd.Flags().GetString("file")
	line, _ := cmd.Flags().GetInt("line")
	caller := types.CallerContext{Member: member, FilePath: file, Line: line}

	formatter := debugex.NewFormatter(debugex.NewConfigWithCallerInfo(cfg.CallerInfo), nil)
	block := formatter.FormatWith(args[0], info, caller)
	logger.Debug("Formatted %d bytes with caller info %s", len(block), info)

	fmt.Fprintln(cmd.OutOrStdout(), highlight(block, useColor))
	return nil
}

// colorTerm is the part of the go-gh terminal used to decide on colour.
type colorTerm interface {
	IsColorEnabled() bool
}

func colorEnabled(mode string, t colorTerm) (bool, error) {
	switch mode {
	case colorAlways:
		return true, nil
	case colorNever:
		return false, nil
	case colorAuto, "":
		return t.IsColorEnabled(), nil
	}
	return false, errors.ValidationError("parse_color", "color must be auto, always or never").
		WithContext("value", mode)
}

// highlight colours the header and footer of a debug block.
func highlight(block string, enabled bool) string {
	if !enabled {
		return block
	}
	c := color.New(color.FgCyan, color.Bold)
	c.EnableColor()
	block = strings.Replace(block, debugex.Header, c.Sprint(debugex.Header), 1)
	return strings.Replace(block, debugex.Footer, c.Sprint(debugex.Footer), 1)
}
