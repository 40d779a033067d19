package config

import (
	"fmt"
	"log/slog"

	"github.com/go-playground/validator/v10"

	"github.com/tendant/simple-blobstore/pkg/blobstore"
	"github.com/tendant/simple-blobstore/pkg/blobstore/memory"
)

// Option applies configuration to a StoreConfig instance.
type Option func(*StoreConfig) error

// Load constructs a StoreConfig by applying the supplied options on top of
// library defaults.
func Load(opts ...Option) (*StoreConfig, error) {
	cfg := defaults()

	for _, opt := range opts {
		if opt == nil {
			continue
		}
		if err := opt(&cfg); err != nil {
			return nil, err
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func defaults() StoreConfig {
	return StoreConfig{
		DefaultLocation: memory.DefaultLocation,
		URIScheme:       blobstore.DefaultURIScheme,
		ListMaxResults:  blobstore.DefaultMaxResults,
		LogLevel:        "info",
	}
}

// StoreConfig represents construction settings for an in-memory blob store.
type StoreConfig struct {
	// DefaultLocation is the placement tag recorded on containers created
	// without an explicit location.
	DefaultLocation string `env:"BLOBSTORE_DEFAULT_LOCATION" validate:"required"`

	// URIScheme prefixes the synthetic URIs stamped onto stored blobs.
	URIScheme string `env:"BLOBSTORE_URI_SCHEME" validate:"required"`

	// ListMaxResults caps listing pages when callers do not pass a limit.
	ListMaxResults int `env:"BLOBSTORE_LIST_MAX_RESULTS" validate:"min=1"`

	// LogLevel selects store log verbosity: debug, info, warn or error.
	LogLevel string `env:"BLOBSTORE_LOG_LEVEL" validate:"required,oneof=debug info warn error"`
}

// Validate validates the configuration.
func (c *StoreConfig) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return fmt.Errorf("validate config: %w", err)
	}
	return nil
}

// Level returns the slog level named by LogLevel.
func (c *StoreConfig) Level() slog.Level {
	switch c.LogLevel {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// BuildStore creates a blob store instance from the configuration. Extra
// options are applied after the configuration-derived ones.
func (c *StoreConfig) BuildStore(extra ...memory.Option) blobstore.BlobStore {
	opts := []memory.Option{
		memory.WithDefaultLocation(c.DefaultLocation),
		memory.WithLocatorBuilder(blobstore.SchemeLocator(c.URIScheme)),
		memory.WithDefaultMaxResults(c.ListMaxResults),
	}
	return memory.New(append(opts, extra...)...)
}
