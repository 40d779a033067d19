package blobstore

import "fmt"

// DefaultURIScheme is the scheme used for synthetic blob locators.
const DefaultURIScheme = "mem"

// LocatorBuilder derives the synthetic URI recorded on blob metadata. The
// URI is a stable identifier, not a dereferenceable address.
type LocatorBuilder interface {
	// BlobURI returns the locator for a blob key within a container.
	BlobURI(container, key string) string
}

// SchemeLocator returns a LocatorBuilder producing scheme://container/key.
// An empty scheme falls back to DefaultURIScheme.
func SchemeLocator(scheme string) LocatorBuilder {
	if scheme == "" {
		scheme = DefaultURIScheme
	}
	return schemeLocator{scheme: scheme}
}

type schemeLocator struct {
	scheme string
}

func (l schemeLocator) BlobURI(container, key string) string {
	return fmt.Sprintf("%s://%s/%s", l.scheme, container, key)
}
