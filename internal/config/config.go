package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

const (
	DefaultGlob     = "**/*"
	DefaultTabWidth = 4
)

// Config stores runtime options for one scan run.
type Config struct {
	In       string
	Glob     string
	TabWidth int

	ReportJSON string
	ReportCSV  string

	Color   bool
	Verbose bool
}

// Default returns baseline configuration values used by CLI flags.
func Default() Config {
	return Config{
		Glob:     DefaultGlob,
		TabWidth: DefaultTabWidth,
	}
}

// Validate normalizes and checks the configuration before execution.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.In) == "" {
		return fmt.Errorf("--in is required")
	}

	if strings.TrimSpace(c.Glob) == "" {
		c.Glob = DefaultGlob
	}
	if c.TabWidth < 1 {
		return fmt.Errorf("--tab-width must be at least 1, got %d", c.TabWidth)
	}

	c.In = filepath.Clean(c.In)

	info, err := os.Stat(c.In)
	if err != nil {
		return fmt.Errorf("input path %q is not accessible: %w", c.In, err)
	}
	if !info.IsDir() {
		return fmt.Errorf("input path %q must be a directory", c.In)
	}

	return nil
}
