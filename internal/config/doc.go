// Package config loads, normalizes, and validates cdinventory configuration.
//
// It supplies defaults, expands user paths (including tilde shortcuts),
// reads TOML files, and honours the CDINVENTORY_DATA_FILE environment
// fallback. Always obtain settings through this package so downstream code
// receives absolute paths, canonical log formats, and clear validation errors.
package config
