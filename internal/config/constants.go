// Package config provides application configuration constants and default values.
// It loads the default caller info for the debug channel from the environment and
// an optional configuration file.
package config

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"

	"github.com/chrisreddington/debugex/internal/errors"
	"github.com/chrisreddington/debugex/internal/types"
)

const (
	// EnvPrefix is the prefix for environment variables read by the application
	EnvPrefix = "DEBUGEX"

	// KeyCallerInfo is the configuration key holding the default caller info
	KeyCallerInfo = "caller_info"

	// EnvCallerInfo is the environment variable overriding KeyCallerInfo
	EnvCallerInfo = EnvPrefix + "_CALLER_INFO"

	// DefaultCallerInfo is used when neither the environment nor a file sets one
	DefaultCallerInfo = "all"

	// FileOperationTimeout is the timeout for reading configuration files
	FileOperationTimeout = 10 * time.Second

	// Sources reported in Configuration.Source
	SourceDefault = "default"
	SourceEnv     = "env"
	SourceFile    = "file"
)

// Configuration holds the resolved settings and where they came from.
type Configuration struct {
	// CallerInfo is the default caller info for the debug channel
	CallerInfo types.CallerInfo

	// Source is SourceDefault, SourceEnv or SourceFile
	Source string

	// Path is the configuration file that was read, if any
	Path string
}

// Load resolves the configuration. Environment variables take precedence over the
// file at path; an empty path reads no file. The file format follows its extension
// (yaml, toml, json, ...).
func Load(ctx context.Context, path string) (*Configuration, error) {
	// Check if context is cancelled before performing file operations
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	v := viper.New()
	v.SetDefault(KeyCallerInfo, DefaultCallerInfo)
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))
	v.AllowEmptyEnv(true)
	v.AutomaticEnv()

	if path != "" {
		if _, err := os.Stat(path); err != nil {
			return nil, errors.FileError("stat_config", "configuration file not found", err).
				WithContext("path", path)
		}

		// Check context again before reading file
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, errors.ConfigError("read_config", "failed to read configuration file", err).
				WithContext("path", path)
		}
	}

	raw, err := callerInfoString(v.Get(KeyCallerInfo))
	if err != nil {
		return nil, err
	}

	info, err := types.ParseCallerInfo(raw)
	if err != nil {
		return nil, errors.ConfigError("parse_caller_info", "invalid caller info", err).
			WithContext("value", raw)
	}

	cfg := &Configuration{
		CallerInfo: info,
		Source:     SourceDefault,
		Path:       path,
	}
	switch {
	case envSet(EnvCallerInfo):
		cfg.Source = SourceEnv
	case path != "" && v.InConfig(KeyCallerInfo):
		cfg.Source = SourceFile
	}
	return cfg, nil
}

// callerInfoString accepts a scalar ("member,line") or a list ([member, line]).
func callerInfoString(value interface{}) (string, error) {
	switch v := value.(type) {
	case nil:
		return "", nil
	case string:
		return v, nil
	case []string:
		return strings.Join(v, ","), nil
	case []interface{}:
		parts := make([]string, 0, len(v))
		for _, item := range v {
			parts = append(parts, fmt.Sprint(item))
		}
		return strings.Join(parts, ","), nil
	default:
		return "", errors.ConfigError("parse_caller_info", "caller info must be a string or a list", nil).
			WithContext("type", fmt.Sprintf("%T", value))
	}
}

func envSet(name string) bool {
	_, ok := os.LookupEnv(name)
	return ok
}
