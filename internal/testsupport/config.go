package testsupport

import (
	"path/filepath"
	"testing"

	"cdinventory/internal/config"
)

// ConfigOption allows callers to customize the generated test configuration.
type ConfigOption func(*configBuilder)

type configBuilder struct {
	t       testing.TB
	baseDir string
	cfg     *config.Config
}

// NewConfig produces a config seeded with a unique temp data file per test.
// It defaults common fields and applies any provided options.
func NewConfig(t testing.TB, opts ...ConfigOption) *config.Config {
	t.Helper()

	base := t.TempDir()
	cfgVal := config.Default()
	cfgVal.Inventory.DataFile = filepath.Join(base, "CDInventory.dat")
	cfgVal.Logging.Level = "error"

	builder := &configBuilder{
		t:       t,
		baseDir: base,
		cfg:     &cfgVal,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(builder)
		}
	}
	return builder.cfg
}

// WithLogDir routes file logging into a temp directory.
func WithLogDir() ConfigOption {
	return func(b *configBuilder) {
		b.cfg.Logging.Dir = filepath.Join(b.baseDir, "logs")
	}
}

// WithTableStyle sets display.table_style.
func WithTableStyle(style string) ConfigOption {
	return func(b *configBuilder) {
		b.cfg.Display.TableStyle = style
	}
}
