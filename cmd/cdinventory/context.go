package main

import (
	"fmt"
	"log/slog"
	"strings"
	"sync"

	"github.com/spf13/cobra"

	"cdinventory/internal/config"
	"cdinventory/internal/inventory"
	"cdinventory/internal/logging"
	"cdinventory/internal/snapshot"
)

type rootFlags struct {
	config   string
	dataFile string
	json     bool
	logLevel string
}

type commandContext struct {
	flags *rootFlags

	configOnce sync.Once
	config     *config.Config
	configErr  error

	loggerOnce sync.Once
	logger     *slog.Logger
	loggerErr  error
}

func newCommandContext(flags *rootFlags) *commandContext {
	return &commandContext{flags: flags}
}

func (c *commandContext) ensureConfig() (*config.Config, error) {
	c.configOnce.Do(func() {
		cfg, _, _, err := config.Load(strings.TrimSpace(c.flags.config))
		if err != nil {
			c.configErr = err
			return
		}
		if err := cfg.SetDataFile(c.flags.dataFile); err != nil {
			c.configErr = err
			return
		}
		c.config = cfg
	})
	return c.config, c.configErr
}

func (c *commandContext) ensureLogger() (*slog.Logger, error) {
	c.loggerOnce.Do(func() {
		cfg, err := c.ensureConfig()
		if err != nil {
			c.loggerErr = err
			return
		}
		logger, err := logging.NewFromConfig(cfg, c.flags.logLevel)
		if err != nil {
			c.loggerErr = fmt.Errorf("init logger: %w", err)
			return
		}
		c.logger = logger
	})
	return c.logger, c.loggerErr
}

func (c *commandContext) JSONMode() bool {
	return c.flags.json
}

// inventorySession bundles what a one-shot command needs to load, change,
// and save the inventory.
type inventorySession struct {
	cfg     *config.Config
	logger  *slog.Logger
	gateway *snapshot.Gateway
	store   *inventory.Store
	loaded  snapshot.LoadResult
}

func (c *commandContext) openInventory() (*inventorySession, error) {
	cfg, err := c.ensureConfig()
	if err != nil {
		return nil, err
	}
	logger, err := c.ensureLogger()
	if err != nil {
		return nil, err
	}

	session := &inventorySession{
		cfg:     cfg,
		logger:  logger,
		gateway: snapshot.NewGateway(logger),
		store:   inventory.NewStore(),
	}
	session.loaded = session.gateway.Load(cfg.Inventory.DataFile, session.store)
	return session, nil
}

// requireWritable refuses to continue when the load found a corrupt file,
// because saving the now-empty store would overwrite it.
func (s *inventorySession) requireWritable() error {
	if s.loaded.Status == snapshot.LoadCorrupt {
		return fmt.Errorf("refusing to modify %s: %w", s.cfg.Inventory.DataFile, s.loaded.Err)
	}
	return nil
}

func (s *inventorySession) save() error {
	result := s.gateway.Save(s.cfg.Inventory.DataFile, s.store)
	if !result.OK() {
		return result.Err
	}
	return nil
}

func shouldSkipConfig(cmd *cobra.Command) bool {
	for c := cmd; c != nil; c = c.Parent() {
		if c.Annotations != nil && c.Annotations["skipConfigLoad"] == "true" {
			return true
		}
	}
	return false
}
