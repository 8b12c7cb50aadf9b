package debugex

import (
	"fmt"
	"io"
	"os"
	"reflect"
	"sync/atomic"
	"time"

	"github.com/chrisreddington/debugex/internal/errors"
	"github.com/chrisreddington/debugex/internal/types"
)

// Debugger formats debug messages and writes them to a Sink.
// When Enabled is false every write method returns immediately.
type Debugger struct {
	formatter *Formatter
	sink      Sink
}

// Option configures a Debugger.
type Option func(*options)

type options struct {
	now func() time.Time
}

// WithClock sets the clock used for the time line.
func WithClock(now func() time.Time) Option {
	return func(o *options) {
		o.now = now
	}
}

// New creates a Debugger. A nil config gets NewConfig() and a nil sink writes to stderr.
func New(config *Config, sink Sink, opts ...Option) *Debugger {
	o := &options{}
	for _, opt := range opts {
		opt(o)
	}
	if sink == nil {
		sink = NewWriterSink(os.Stderr)
	}
	return &Debugger{
		formatter: NewFormatter(config, o.now),
		sink:      sink,
	}
}

// Config returns the configuration holding the default caller info.
func (d *Debugger) Config() *Config {
	return d.formatter.Config()
}

// Formatter returns the formatter used for writes.
func (d *Debugger) Formatter() *Formatter {
	return d.formatter
}

// WriteLine writes message with the default caller info.
func (d *Debugger) WriteLine(message string) {
	if !Enabled {
		return
	}
	d.sink.WriteLine(d.formatter.Format(message, Caller(1)))
}

// WriteLineWith writes message with the given caller info.
func (d *Debugger) WriteLineWith(message string, info types.CallerInfo) {
	if !Enabled {
		return
	}
	d.sink.WriteLine(d.formatter.FormatWith(message, info, Caller(1)))
}

// WriteLineContext writes message for a call site captured elsewhere.
func (d *Debugger) WriteLineContext(message string, info types.CallerInfo, caller types.CallerContext) {
	if !Enabled {
		return
	}
	d.sink.WriteLine(d.formatter.FormatWith(message, info, caller))
}

// WriteValue writes the string form of value with the default caller info.
// It returns a validation error, and writes nothing, when value is nil.
func (d *Debugger) WriteValue(value any) error {
	if !Enabled {
		return nil
	}
	return d.writeValue(value, d.Config().DefaultCallerInfo(), Caller(1))
}

// WriteValueWith writes the string form of value with the given caller info.
func (d *Debugger) WriteValueWith(value any, info types.CallerInfo) error {
	if !Enabled {
		return nil
	}
	return d.writeValue(value, info, Caller(1))
}

func (d *Debugger) writeValue(value any, info types.CallerInfo, caller types.CallerContext) error {
	message, err := stringify(value)
	if err != nil {
		return err
	}
	d.sink.WriteLine(d.formatter.FormatWith(message, info, caller))
	return nil
}

// stringify converts value with its String method when it has one, else fmt.Sprint.
func stringify(value any) (string, error) {
	if isNil(value) {
		return "", errors.ValidationError("write_value", "value cannot be nil").
			WithContext("type", fmt.Sprintf("%T", value))
	}
	if s, ok := value.(fmt.Stringer); ok {
		return s.String(), nil
	}
	return fmt.Sprint(value), nil
}

func isNil(value any) bool {
	if value == nil {
		return true
	}
	rv := reflect.ValueOf(value)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Interface, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan:
		return rv.IsNil()
	}
	return false
}

var (
	defaultConfig   = NewConfig()
	defaultDebugger atomic.Pointer[Debugger]
)

func init() {
	defaultDebugger.Store(New(defaultConfig, nil))
}

// Default returns the package-level Debugger used by the package functions.
func Default() *Debugger {
	return defaultDebugger.Load()
}

// SetOutput redirects the package-level Debugger to w. The default caller info is kept.
func SetOutput(w io.Writer) {
	defaultDebugger.Store(New(defaultConfig, NewWriterSink(w)))
}

// SetDefaultCallerInfo replaces the package-level default caller info.
func SetDefaultCallerInfo(info types.CallerInfo) {
	defaultConfig.SetDefaultCallerInfo(info)
}

// DefaultCallerInfo returns the package-level default caller info.
func DefaultCallerInfo() types.CallerInfo {
	return defaultConfig.DefaultCallerInfo()
}

// WriteLine writes message through the package-level Debugger.
func WriteLine(message string) {
	if !Enabled {
		return
	}
	d := Default()
	d.sink.WriteLine(d.formatter.Format(message, Caller(1)))
}

// WriteLineWith writes message through the package-level Debugger with the given caller info.
func WriteLineWith(message string, info types.CallerInfo) {
	if !Enabled {
		return
	}
	Default().WriteLineContext(message, info, Caller(1))
}

// WriteValue writes the string form of value through the package-level Debugger.
func WriteValue(value any) error {
	if !Enabled {
		return nil
	}
	d := Default()
	return d.writeValue(value, d.Config().DefaultCallerInfo(), Caller(1))
}

// WriteValueWith writes the string form of value through the package-level Debugger
// with the given caller info.
func WriteValueWith(value any, info types.CallerInfo) error {
	if !Enabled {
		return nil
	}
	return Default().writeValue(value, info, Caller(1))
}
