// Package config loads, normalizes, and validates bookshelf configuration.
//
// It supplies repository defaults, expands user paths (including tilde
// shortcuts), reads TOML files, and honours the BOOKSHELF_LIBRARY environment
// fallback for the library file location. The Config type centralizes every
// knob the CLI needs: where the library document lives, how logging behaves,
// and how the interactive session presents itself.
//
// Always obtain settings through this package so downstream code receives
// sanitized paths, canonical log formats, and clear validation errors.
package config
