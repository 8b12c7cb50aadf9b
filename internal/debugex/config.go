package debugex

import (
	"sync/atomic"

	"github.com/chrisreddington/debugex/internal/types"
)

// Config holds the caller info used when a write does not name its own.
// It is safe for concurrent use; the last write wins.
type Config struct {
	callerInfo atomic.Uint32
}

// NewConfig creates a Config whose default caller info is types.CallerInfoAll.
func NewConfig() *Config {
	return NewConfigWithCallerInfo(types.CallerInfoAll)
}

// NewConfigWithCallerInfo creates a Config with the given default caller info.
func NewConfigWithCallerInfo(info types.CallerInfo) *Config {
	c := &Config{}
	c.SetDefaultCallerInfo(info)
	return c
}

// SetDefaultCallerInfo replaces the default caller info.
func (c *Config) SetDefaultCallerInfo(info types.CallerInfo) {
	c.callerInfo.Store(uint32(info))
}

// DefaultCallerInfo returns the current default caller info.
func (c *Config) DefaultCallerInfo() types.CallerInfo {
	return types.CallerInfo(c.callerInfo.Load())
}
