package config

import (
	"fmt"
	"strings"
)

// TableStyles lists the accepted display.table_style values.
var TableStyles = []string{"rounded", "light", "ascii"}

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if err := c.validateInventory(); err != nil {
		return err
	}
	if err := c.validateDisplay(); err != nil {
		return err
	}
	return c.validateLogging()
}

func (c *Config) validateInventory() error {
	if strings.TrimSpace(c.Inventory.DataFile) == "" {
		return fmt.Errorf("inventory.data_file must be set")
	}
	return nil
}

func (c *Config) validateDisplay() error {
	for _, style := range TableStyles {
		if c.Display.TableStyle == style {
			return nil
		}
	}
	return fmt.Errorf("display.table_style: unsupported value %q (expected one of %s)",
		c.Display.TableStyle, strings.Join(TableStyles, ", "))
}

func (c *Config) validateLogging() error {
	switch c.Logging.Format {
	case "console", "json":
	default:
		return fmt.Errorf("logging.format: unsupported value %q (expected console or json)", c.Logging.Format)
	}
	switch c.Logging.Level {
	case "debug", "info", "warn", "warning", "error":
	default:
		return fmt.Errorf("logging.level: unsupported value %q", c.Logging.Level)
	}
	return nil
}
