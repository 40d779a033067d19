package config

import (
	"fmt"

	"github.com/ilyakaznacheev/cleanenv"
)

// WithEnv applies environment variable overrides:
//
//	BLOBSTORE_DEFAULT_LOCATION - placement tag for new containers (default: "transient")
//	BLOBSTORE_URI_SCHEME       - scheme for synthetic blob URIs (default: "mem")
//	BLOBSTORE_LIST_MAX_RESULTS - default listing page cap (default: 1000)
//	BLOBSTORE_LOG_LEVEL        - log verbosity (default: "info")
//
// Unset variables keep their current values, so WithEnv composes with
// programmatic options in either order.
func WithEnv() Option {
	return func(c *StoreConfig) error {
		if err := cleanenv.ReadEnv(c); err != nil {
			return fmt.Errorf("read environment: %w", err)
		}
		return nil
	}
}
