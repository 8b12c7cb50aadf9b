// Package debugex writes decorated debug messages, optionally tagged with the
// time and call site, to a debug channel that only exists in debug builds.
//
// A message is rendered as a block:
//
//	---DEBUG------------------->>
//	 Message               :hello
//	 Member name           :Foo
//	 Line number           :42
//	<<---------------------------
//
// The caller lines are selected with types.CallerInfo. The debug channel is
// compiled in with -tags debug; see Enabled.
package debugex

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/chrisreddington/debugex/internal/types"
)

const (
	// Header and Footer delimit every debug block.
	Header = "---DEBUG------------------->>"
	Footer = "<<---------------------------"

	// TimeLayout renders local time as hh:mm:ss.ffff. The hour is on a
	// 12-hour clock with no AM/PM marker.
	TimeLayout = "03:04:05.0000"
)

const (
	labelMessage    = "Message"
	labelTime       = "Time"
	labelMemberName = "Member name"
	labelFilePath   = "File path"
	labelLineNumber = "Line number"
)

// Formatter renders debug blocks. The zero value is not usable; use NewFormatter.
type Formatter struct {
	config *Config
	now    func() time.Time
}

// NewFormatter creates a Formatter that falls back to config's default caller info.
// A nil now uses time.Now.
func NewFormatter(config *Config, now func() time.Time) *Formatter {
	if config == nil {
		config = NewConfig()
	}
	if now == nil {
		now = time.Now
	}
	return &Formatter{config: config, now: now}
}

// Config returns the configuration the formatter reads its default from.
func (f *Formatter) Config() *Config {
	return f.config
}

// Format renders message using the configured default caller info.
func (f *Formatter) Format(message string, caller types.CallerContext) string {
	return f.FormatWith(message, f.config.DefaultCallerInfo(), caller)
}

// FormatWith renders message with the given caller info. It never fails.
func (f *Formatter) FormatWith(message string, info types.CallerInfo, caller types.CallerContext) string {
	lines := make([]string, 0, 7)
	lines = append(lines, Header, labelLine(labelMessage, message))

	if info != types.CallerInfoNone {
		if info.Has(types.CallerInfoTime) {
			lines = append(lines, labelLine(labelTime, f.now().Format(TimeLayout)))
		}
		if info.Has(types.CallerInfoMemberName) {
			lines = append(lines, labelLine(labelMemberName, caller.Member))
		}
		if info.Has(types.CallerInfoFilePath) {
			lines = append(lines, labelLine(labelFilePath, caller.FilePath))
		}
		if info.Has(types.CallerInfoLineNumber) {
			lines = append(lines, labelLine(labelLineNumber, strconv.Itoa(caller.Line)))
		}
	}

	lines = append(lines, Footer)
	return strings.Join(lines, lineTerminator)
}

func labelLine(label, value string) string {
	return fmt.Sprintf(" %-22s:%s", label, value)
}
