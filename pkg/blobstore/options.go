package blobstore

import (
	"fmt"
	"time"
)

// ListOptions controls blob listing: marker resumption, prefix filtering,
// page size, hierarchy folding, and metadata visibility.
type ListOptions struct {
	// Prefix keeps only names starting with it; the name equal to the
	// prefix itself is excluded.
	Prefix string

	// Marker resumes listing strictly after the named entry.
	Marker string

	// MaxResults caps the page size. Values <= 0 yield an empty page with
	// no continuation marker.
	MaxResults int

	// Recursive disables hierarchy folding and lists the flat keyspace.
	Recursive bool

	// Detailed retains user metadata on listed entries.
	Detailed bool
}

// ListOption represents a functional option for listing blobs
type ListOption func(*ListOptions)

// NewListOptions builds ListOptions from library defaults (MaxResults =
// DefaultMaxResults) plus the supplied options.
func NewListOptions(opts ...ListOption) ListOptions {
	o := ListOptions{MaxResults: DefaultMaxResults}
	o.Apply(opts...)
	return o
}

// Apply mutates o with the supplied options, skipping nil entries.
func (o *ListOptions) Apply(opts ...ListOption) {
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		opt(o)
	}
}

// WithPrefix keeps only blob names starting with prefix.
func WithPrefix(prefix string) ListOption {
	return func(o *ListOptions) {
		o.Prefix = prefix
	}
}

// AfterMarker resumes listing strictly after marker.
func AfterMarker(marker string) ListOption {
	return func(o *ListOptions) {
		o.Marker = marker
	}
}

// WithMaxResults caps the number of returned entries.
func WithMaxResults(n int) ListOption {
	return func(o *ListOptions) {
		o.MaxResults = n
	}
}

// Recursive lists the flat keyspace without hierarchy folding.
func Recursive() ListOption {
	return func(o *ListOptions) {
		o.Recursive = true
	}
}

// Detailed retains user metadata on listed entries.
func Detailed() ListOption {
	return func(o *ListOptions) {
		o.Detailed = true
	}
}

// GetOptions carries read preconditions and byte ranges. Preconditions are
// evaluated in field order (IfMatch, IfNoneMatch, IfModifiedSince,
// IfUnmodifiedSince) and the first failure wins; zero values are not
// evaluated.
type GetOptions struct {
	IfMatch           string
	IfNoneMatch       string
	IfModifiedSince   time.Time
	IfUnmodifiedSince time.Time

	// Ranges holds byte-range specs ("first-last", "first-", "-suffix")
	// applied in order; the selected segments are concatenated.
	Ranges []string
}

// GetOption represents a functional option for conditional reads
type GetOption func(*GetOptions)

// NewGetOptions builds GetOptions from the supplied options.
func NewGetOptions(opts ...GetOption) GetOptions {
	var o GetOptions
	o.Apply(opts...)
	return o
}

// Apply mutates o with the supplied options, skipping nil entries.
func (o *GetOptions) Apply(opts ...GetOption) {
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		opt(o)
	}
}

// IfMatch fails the read with ErrPreconditionFailed unless the stored ETag
// equals etag.
func IfMatch(etag string) GetOption {
	return func(o *GetOptions) {
		o.IfMatch = etag
	}
}

// IfNoneMatch fails the read with ErrNotModified when the stored ETag
// equals etag.
func IfNoneMatch(etag string) GetOption {
	return func(o *GetOptions) {
		o.IfNoneMatch = etag
	}
}

// IfModifiedSince fails the read with ErrNotModified when the blob was
// last modified before t.
func IfModifiedSince(t time.Time) GetOption {
	return func(o *GetOptions) {
		o.IfModifiedSince = t
	}
}

// IfUnmodifiedSince fails the read with ErrPreconditionFailed when the
// blob was last modified after t.
func IfUnmodifiedSince(t time.Time) GetOption {
	return func(o *GetOptions) {
		o.IfUnmodifiedSince = t
	}
}

// WithRange selects the inclusive byte range [first, last].
func WithRange(first, last int64) GetOption {
	return RangeSpec(fmt.Sprintf("%d-%d", first, last))
}

// StartAt selects the bytes from offset through the end of the payload.
func StartAt(offset int64) GetOption {
	return RangeSpec(fmt.Sprintf("%d-", offset))
}

// Tail selects the last n bytes of the payload.
func Tail(n int64) GetOption {
	return RangeSpec(fmt.Sprintf("-%d", n))
}

// RangeSpec appends a raw byte-range spec. Specs that match none of the
// three range shapes fail the read with ErrInvalidArgument.
func RangeSpec(spec string) GetOption {
	return func(o *GetOptions) {
		o.Ranges = append(o.Ranges, spec)
	}
}

// CreateContainerOptions carries container creation parameters.
type CreateContainerOptions struct {
	// Location is the opaque placement tag recorded on the container;
	// empty means the store default.
	Location string

	// PublicRead requests anonymous-read semantics, which this library
	// rejects with ErrInvalidArgument.
	PublicRead bool
}

// CreateContainerOption represents a functional option for container creation
type CreateContainerOption func(*CreateContainerOptions)

// NewCreateContainerOptions builds CreateContainerOptions from the
// supplied options.
func NewCreateContainerOptions(opts ...CreateContainerOption) CreateContainerOptions {
	var o CreateContainerOptions
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		opt(&o)
	}
	return o
}

// InLocation records location as the container placement tag.
func InLocation(location string) CreateContainerOption {
	return func(o *CreateContainerOptions) {
		o.Location = location
	}
}

// PublicRead requests anonymous-read container semantics.
func PublicRead() CreateContainerOption {
	return func(o *CreateContainerOptions) {
		o.PublicRead = true
	}
}
