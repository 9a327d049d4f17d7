package config

import (
	"fmt"
	"os"
	"strings"
)

// DataFileEnv names the environment variable consulted when inventory.data_file is empty.
const DataFileEnv = "CDINVENTORY_DATA_FILE"

func (c *Config) normalize() error {
	if err := c.normalizeInventory(); err != nil {
		return err
	}
	c.normalizeDisplay()
	return c.normalizeLogging()
}

func (c *Config) normalizeInventory() error {
	c.Inventory.DataFile = strings.TrimSpace(c.Inventory.DataFile)
	if c.Inventory.DataFile == "" {
		if value, ok := os.LookupEnv(DataFileEnv); ok && strings.TrimSpace(value) != "" {
			c.Inventory.DataFile = strings.TrimSpace(value)
		} else {
			c.Inventory.DataFile = defaultDataFile
		}
	}
	var err error
	if c.Inventory.DataFile, err = expandPath(c.Inventory.DataFile); err != nil {
		return fmt.Errorf("inventory.data_file: %w", err)
	}
	return nil
}

func (c *Config) normalizeDisplay() {
	c.Display.TableStyle = strings.ToLower(strings.TrimSpace(c.Display.TableStyle))
	if c.Display.TableStyle == "" {
		c.Display.TableStyle = defaultTableStyle
	}
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
	var err error
	if c.Logging.Dir, err = expandPath(strings.TrimSpace(c.Logging.Dir)); err != nil {
		return fmt.Errorf("logging.dir: %w", err)
	}
	return nil
}

// SetDataFile overrides inventory.data_file with an expanded path, as the
// --file flag does.
func (c *Config) SetDataFile(path string) error {
	expanded, err := expandPath(strings.TrimSpace(path))
	if err != nil {
		return fmt.Errorf("data file: %w", err)
	}
	if expanded == "" {
		return nil
	}
	c.Inventory.DataFile = expanded
	return nil
}
