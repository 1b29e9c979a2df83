// Package config loads the TOML configuration of the md5 HTTP service.
// Missing keys keep their defaults, unknown keys are rejected, and the
// result is checked with struct tag validation before use.
package config
