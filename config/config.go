package config

import (
	"bytes"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/pelletier/go-toml/v2"
)

// Config is the complete service configuration.
type Config struct {
	Server  Server  `toml:"server"`
	Explain Explain `toml:"explain"`
}

// Server holds the HTTP listener settings.
type Server struct {
	// Listen is the host:port the API binds to.
	Listen string `toml:"listen" validate:"required,hostname_port"`

	// ReadTimeout bounds reading a whole request.
	ReadTimeout Duration `toml:"read_timeout" validate:"gt=0"`

	// WriteTimeout bounds writing a response.
	WriteTimeout Duration `toml:"write_timeout" validate:"gt=0"`

	// MaxBodyBytes caps request bodies, including the raw
	// streaming endpoint.
	MaxBodyBytes int64 `toml:"max_body_bytes" validate:"gt=0"`
}

// Explain limits the step-by-step endpoint, whose output grows
// with every block of input.
type Explain struct {
	MaxInputBytes int `toml:"max_input_bytes" validate:"gt=0,lte=1048576"`
}

// Duration is a time.Duration written as a string such as
// "15s" in TOML.
type Duration time.Duration

// UnmarshalText implements encoding.TextUnmarshaler.
func (du *Duration) UnmarshalText(text []byte) error {
	v, err := time.ParseDuration(string(text))
	if err != nil {
		return fmt.Errorf("parsing duration: %w", err)
	}

	*du = Duration(v)

	return nil
}

// MarshalText implements encoding.TextMarshaler.
func (du Duration) MarshalText() ([]byte, error) {
	return []byte(time.Duration(du).String()), nil
}

// Std returns the value as a time.Duration.
func (du Duration) Std() time.Duration {
	return time.Duration(du)
}

// Default returns the configuration used when no file is
// given.
func Default() *Config {
	return &Config{
		Server: Server{
			Listen:       "127.0.0.1:8080",
			ReadTimeout:  Duration(15 * time.Second),
			WriteTimeout: Duration(15 * time.Second),
			MaxBodyBytes: 1 << 20,
		},
		Explain: Explain{
			MaxInputBytes: 4096,
		},
	}
}

// Load reads the TOML file at path over the defaults and
// validates the result.
func Load(path string) (*Config, error) {
	const errCtx = "loading config"

	abs, err := filepath.Abs(filepath.Clean(path))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", errCtx, err)
	}

	content, err := os.ReadFile(abs) //nolint:gosec // path from CLI flag
	if err != nil {
		return nil, fmt.Errorf("%s: %w", errCtx, err)
	}

	cfg, err := Parse(content)
	if err != nil {
		return nil, fmt.Errorf("%s: %s: %w", errCtx, abs, err)
	}

	slog.Debug("configuration loaded", "path", abs)

	return cfg, nil
}

// Parse decodes TOML content over the defaults and validates
// the result.
func Parse(content []byte) (*Config, error) {
	const errCtx = "parsing config"

	cfg := Default()

	dec := toml.NewDecoder(bytes.NewReader(content))
	dec.DisallowUnknownFields()

	if err := dec.Decode(cfg); err != nil {
		var derr *toml.DecodeError
		if errors.As(err, &derr) {
			row, col := derr.Position()

			return nil, fmt.Errorf(
				"%s: line %d, column %d: %w",
				errCtx, row, col, err,
			)
		}

		return nil, fmt.Errorf("%s: %w", errCtx, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", errCtx, err)
	}

	return cfg, nil
}

// Encode serialises cfg back to TOML.
func (cfg *Config) Encode() ([]byte, error) {
	const errCtx = "encoding config"

	var buf bytes.Buffer

	enc := toml.NewEncoder(&buf)
	enc.SetIndentTables(true)

	if err := enc.Encode(cfg); err != nil {
		return nil, fmt.Errorf("%s: %w", errCtx, err)
	}

	return buf.Bytes(), nil
}
