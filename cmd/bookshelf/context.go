package main

import (
	"fmt"
	"strings"
	"sync"

	"github.com/spf13/cobra"

	"bookshelf/internal/config"
	"bookshelf/internal/library"
	"bookshelf/internal/logging"
	"bookshelf/internal/store"
)

type commandContext struct {
	configFlag  *string
	libraryFlag *string

	configOnce sync.Once
	config     *config.Config
	configErr  error
}

func newCommandContext(configFlag, libraryFlag *string) *commandContext {
	return &commandContext{
		configFlag:  configFlag,
		libraryFlag: libraryFlag,
	}
}

func (c *commandContext) ensureConfig() (*config.Config, error) {
	c.configOnce.Do(func() {
		var path string
		if c.configFlag != nil {
			path = strings.TrimSpace(*c.configFlag)
		}
		cfg, _, _, err := config.Load(path)
		if err != nil {
			c.configErr = err
			return
		}
		if c.libraryFlag != nil && strings.TrimSpace(*c.libraryFlag) != "" {
			expanded, err := config.ExpandPath(*c.libraryFlag)
			if err != nil {
				c.configErr = fmt.Errorf("resolve library path: %w", err)
				return
			}
			cfg.Library.Path = expanded
		}
		if err := cfg.EnsureDirectories(); err != nil {
			c.configErr = err
			return
		}
		c.config = cfg
	})
	return c.config, c.configErr
}

func (c *commandContext) openStore() (*store.Store, error) {
	cfg, err := c.ensureConfig()
	if err != nil {
		return nil, err
	}
	return store.New(cfg.Library.Path, logging.NewNop()), nil
}

// loadCatalog reads the library document strictly: unlike session startup,
// non-interactive commands fail on a corrupt document instead of silently
// operating on an empty catalog.
func (c *commandContext) loadCatalog() (*library.Catalog, *store.Store, error) {
	st, err := c.openStore()
	if err != nil {
		return nil, nil, err
	}
	books, err := st.Load()
	if err != nil {
		return nil, nil, fmt.Errorf("load library: %w", err)
	}
	return library.New(books), st, nil
}

func shouldSkipConfig(cmd *cobra.Command) bool {
	for c := cmd; c != nil; c = c.Parent() {
		if c.Annotations != nil && c.Annotations["skipConfigLoad"] == "true" {
			return true
		}
	}
	return false
}
