package blobstore

import (
	"time"

	"github.com/google/uuid"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

// StorageType is the domain type for listed entry kinds.
type StorageType string

// Storage type constants (typed).
const (
	StorageTypeContainer    StorageType = "container"
	StorageTypeBlob         StorageType = "blob"
	StorageTypeRelativePath StorageType = "relative-path"
)

// DefaultMaxResults caps a listing page when no explicit limit is set.
const DefaultMaxResults = 1000

// StorageMetadata represents one listed entry: a container, a blob, or a
// synthetic relative-path entry produced by hierarchy folding.
//
// Relative-path entries carry only Name and Type; they are derived during
// listing and never stored. Container entries carry Location, the opaque
// placement tag recorded at creation.
type StorageMetadata struct {
	ID           uuid.UUID         `json:"id,omitempty"`
	Name         string            `json:"name"`
	Type         StorageType       `json:"type"`
	Location     string            `json:"location,omitempty"`
	ETag         string            `json:"etag,omitempty"`
	Size         int64             `json:"size,omitempty"`
	LastModified time.Time         `json:"last_modified"`
	UserMetadata map[string]string `json:"user_metadata,omitempty"`
}

// Clone returns an independent copy with its own user-metadata map.
func (m StorageMetadata) Clone() StorageMetadata {
	c := m
	c.UserMetadata = maps.Clone(m.UserMetadata)
	return c
}

// BlobMetadata represents the full metadata of a stored blob.
//
// ETag holds the lowercase hex digest of the payload as of the last
// successful write; LastModified is refreshed on every successful write.
// URI is the synthetic locator derived from container and key.
type BlobMetadata struct {
	StorageMetadata
	Container   string `json:"container"`
	URI         string `json:"uri,omitempty"`
	ContentType string `json:"content_type,omitempty"`
}

// Clone returns an independent copy with its own user-metadata map.
func (m BlobMetadata) Clone() BlobMetadata {
	c := m
	c.StorageMetadata = m.StorageMetadata.Clone()
	return c
}

// Blob pairs blob metadata with its payload bytes.
type Blob struct {
	Metadata BlobMetadata `json:"metadata"`
	Payload  []byte       `json:"-"`
}

// Clone returns an independent copy with its own payload buffer.
func (b *Blob) Clone() *Blob {
	if b == nil {
		return nil
	}
	return &Blob{
		Metadata: b.Metadata.Clone(),
		Payload:  slices.Clone(b.Payload),
	}
}

// Page is one page of listing results, ordered by name and deduplicated.
// NextMarker names the last returned entry when the page was truncated; it
// is empty on the final page.
type Page struct {
	Entries    []StorageMetadata `json:"entries"`
	NextMarker string            `json:"next_marker,omitempty"`
}

// IsTruncated reports whether a further page follows.
func (p *Page) IsTruncated() bool {
	return p.NextMarker != ""
}
