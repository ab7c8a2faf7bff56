// Package config handles the abi.toml interpreter configuration.
package config

import (
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/pkg/errors"

	"github.com/CanPacis/abi/bf_errors"
	"github.com/CanPacis/abi/bf_io"
	"github.com/CanPacis/abi/debugger"
	"github.com/CanPacis/abi/runtime"
)

// FileName is the configuration looked up in the working directory when no
// path is given.
const FileName = "abi.toml"

type Config struct {
	MemorySize int    `toml:"memory_size"`
	MaxLine    int    `toml:"max_line"`
	Prompt     string `toml:"prompt"`
	Trace      bool   `toml:"trace"`
	Dump       string `toml:"dump"`
	Verbosity  int    `toml:"verbosity"`

	// Path is the file the configuration was read from, if any.
	Path string `toml:"-"`
}

func Default() *Config {
	return &Config{
		MemorySize: runtime.DefaultMemorySize,
		MaxLine:    bf_io.DefaultMaxLine,
		Prompt:     ">>>",
	}
}

// Load reads the configuration at path over the defaults. An empty path reads
// abi.toml from the working directory when it exists.
func Load(path string) (*Config, error) {
	c := Default()

	explicit := len(path) != 0
	if !explicit {
		path = FileName
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if !explicit && errors.Is(err, os.ErrNotExist) {
			return c, nil
		}
		return nil, bf_errors.CreateConfigError(err, path)
	}

	if err := toml.Unmarshal(data, c); err != nil {
		return nil, bf_errors.CreateConfigError(errors.Wrapf(err, "parse error in %s", path), path)
	}

	if abs, err := filepath.Abs(path); err == nil {
		c.Path = abs
	} else {
		c.Path = path
	}

	if err := c.Validate(); err != nil {
		return nil, bf_errors.CreateConfigError(err, path)
	}

	return c, nil
}

func (c *Config) Validate() error {
	if c.MemorySize < 1 {
		return errors.Errorf("memory_size must be positive, found %d", c.MemorySize)
	}
	if c.MaxLine < 2 {
		return errors.Errorf("max_line must be at least 2, found %d", c.MaxLine)
	}
	if _, err := debugger.ParseFormat(c.Dump); err != nil {
		return err
	}

	return nil
}

func (c *Config) DumpFormat() debugger.Format {
	format, _ := debugger.ParseFormat(c.Dump)
	return format
}
