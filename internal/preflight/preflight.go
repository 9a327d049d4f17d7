package preflight

import (
	"path/filepath"

	"cdinventory/internal/config"
)

// Result reports the outcome of a single preflight check.
type Result struct {
	Name   string `json:"name"`
	Passed bool   `json:"passed"`
	Detail string `json:"detail"`
}

// RunAll executes all applicable preflight checks for the given config.
func RunAll(cfg *config.Config) []Result {
	if cfg == nil {
		return nil
	}

	results := []Result{
		CheckWritableParent("Data directory", filepath.Dir(cfg.Inventory.DataFile)),
		CheckSnapshotFile("Data file", cfg.Inventory.DataFile),
	}
	if cfg.Logging.Dir != "" {
		results = append(results, CheckWritableParent("Log directory", cfg.Logging.Dir))
	}
	return results
}

// AllPassed reports whether every result passed.
func AllPassed(results []Result) bool {
	for _, r := range results {
		if !r.Passed {
			return false
		}
	}
	return true
}
