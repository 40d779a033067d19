package config

import "fmt"

// WithDefaultLocation sets the placement tag recorded on new containers.
func WithDefaultLocation(location string) Option {
	return func(c *StoreConfig) error {
		if location == "" {
			return fmt.Errorf("default location cannot be empty")
		}
		c.DefaultLocation = location
		return nil
	}
}

// WithURIScheme sets the scheme used for synthetic blob URIs.
func WithURIScheme(scheme string) Option {
	return func(c *StoreConfig) error {
		if scheme == "" {
			return fmt.Errorf("URI scheme cannot be empty")
		}
		c.URIScheme = scheme
		return nil
	}
}

// WithListMaxResults sets the default listing page cap.
func WithListMaxResults(n int) Option {
	return func(c *StoreConfig) error {
		if n < 1 {
			return fmt.Errorf("list max results must be positive, got: %d", n)
		}
		c.ListMaxResults = n
		return nil
	}
}

// WithLogLevel sets the log verbosity (debug, info, warn, error).
func WithLogLevel(level string) Option {
	return func(c *StoreConfig) error {
		switch level {
		case "debug", "info", "warn", "error":
			c.LogLevel = level
			return nil
		default:
			return fmt.Errorf("log level must be one of debug, info, warn, error, got: %s", level)
		}
	}
}
