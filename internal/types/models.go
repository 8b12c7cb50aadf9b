// Package types contains common type definitions used across the application.
// This package centralizes the caller information types shared by the debug channel,
// the configuration loader and the CLI.
package types

import (
	"strings"

	"github.com/chrisreddington/debugex/internal/errors"
)

// CallerInfo selects which caller details are written with a debug message.
// Any combination of bits is valid.
type CallerInfo uint8

const (
	// CallerInfoNone writes no caller details
	CallerInfoNone CallerInfo = 0x00
	// CallerInfoMemberName writes the calling function name
	CallerInfoMemberName CallerInfo = 0x01
	// CallerInfoFilePath writes the calling source file path
	CallerInfoFilePath CallerInfo = 0x02
	// CallerInfoLineNumber writes the calling source line number
	CallerInfoLineNumber CallerInfo = 0x04
	// CallerInfoTime writes the local time of the call
	CallerInfoTime CallerInfo = 0x08

	// CallerInfoAll writes every caller detail
	CallerInfoAll = CallerInfoMemberName | CallerInfoFilePath | CallerInfoLineNumber | CallerInfoTime
)

// callerInfoNames lists the flag names in output order.
var callerInfoNames = []struct {
	flag CallerInfo
	name string
}{
	{CallerInfoTime, "time"},
	{CallerInfoMemberName, "member"},
	{CallerInfoFilePath, "file"},
	{CallerInfoLineNumber, "line"},
}

// Has reports whether every bit of flag is set.
func (c CallerInfo) Has(flag CallerInfo) bool {
	return c&flag == flag
}

// String returns "none", "all", or the set flag names joined with "|".
func (c CallerInfo) String() string {
	switch c & CallerInfoAll {
	case CallerInfoNone:
		return "none"
	case CallerInfoAll:
		return "all"
	}

	var names []string
	for _, n := range callerInfoNames {
		if c.Has(n.flag) {
			names = append(names, n.name)
		}
	}
	return strings.Join(names, "|")
}

// ParseCallerInfo parses "none", "all", or a list of time, member, file and line
// separated by commas or pipes. Names are case-insensitive.
func ParseCallerInfo(s string) (CallerInfo, error) {
	s = strings.TrimSpace(strings.ToLower(s))
	switch s {
	case "", "none":
		return CallerInfoNone, nil
	case "all":
		return CallerInfoAll, nil
	}

	var result CallerInfo
	fields := strings.FieldsFunc(s, func(r rune) bool { return r == ',' || r == '|' })
	for _, field := range fields {
		field = strings.TrimSpace(field)
		if field == "" {
			continue
		}
		flag, ok := lookupCallerInfo(field)
		if !ok {
			return CallerInfoNone, errors.ValidationError("parse_caller_info", "unknown caller info name").
				WithContext("name", field)
		}
		result |= flag
	}
	return result, nil
}

func lookupCallerInfo(name string) (CallerInfo, bool) {
	for _, n := range callerInfoNames {
		if n.name == name {
			return n.flag, true
		}
	}
	return CallerInfoNone, false
}

// CallerContext identifies the call site of a debug message.
// The zero value is valid and formats as empty names and line 0.
type CallerContext struct {
	Member   string `json:"member,omitempty"`    // Function or method name
	FilePath string `json:"file_path,omitempty"` // Source file path
	Line     int    `json:"line,omitempty"`      // Source line number
}
