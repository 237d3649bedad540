package config

import (
	"fmt"
	"os"
	"strings"
)

func (c *Config) normalize() error {
	if err := c.normalizeLibrary(); err != nil {
		return err
	}
	if err := c.normalizeLogging(); err != nil {
		return err
	}
	c.normalizeSession()
	return nil
}

func (c *Config) normalizeLibrary() error {
	if env := strings.TrimSpace(os.Getenv(EnvLibraryPath)); env != "" {
		c.Library.Path = env
	}
	if strings.TrimSpace(c.Library.Path) == "" {
		c.Library.Path = defaultLibraryPath
	}
	expanded, err := ExpandPath(c.Library.Path)
	if err != nil {
		return fmt.Errorf("library.path: %w", err)
	}
	c.Library.Path = expanded
	return nil
}

func (c *Config) normalizeLogging() error {
	c.Logging.Format = strings.ToLower(strings.TrimSpace(c.Logging.Format))
	if c.Logging.Format == "" {
		c.Logging.Format = defaultLogFormat
	}
	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))
	if c.Logging.Level == "" {
		c.Logging.Level = defaultLogLevel
	}
	if strings.TrimSpace(c.Logging.Dir) == "" {
		c.Logging.Dir = ""
		return nil
	}
	expanded, err := ExpandPath(c.Logging.Dir)
	if err != nil {
		return fmt.Errorf("logging.dir: %w", err)
	}
	c.Logging.Dir = expanded
	return nil
}

func (c *Config) normalizeSession() {
	c.Session.Color = strings.ToLower(strings.TrimSpace(c.Session.Color))
	if c.Session.Color == "" {
		c.Session.Color = defaultColor
	}
}
