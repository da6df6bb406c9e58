// Package config handles configuration management for ricer.
// It layers embedded defaults, a repository config file (TOML or YAML),
// RICER_* environment variables and command-line overrides with koanf.
package config
