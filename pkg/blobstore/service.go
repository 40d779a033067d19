package blobstore

import "context"

// BlobStore defines the main interface for the simple-blobstore library.
//
// All operations are synchronous and safe for concurrent use. The context
// is accepted for interface symmetry with remote implementations; the
// in-memory store never blocks, retries, or times out internally.
type BlobStore interface {
	// Container operations

	// CreateContainer atomically creates the named container, returning
	// true when it was created and false when the name already existed.
	// Concurrent creations of one name yield exactly one true.
	CreateContainer(ctx context.Context, name string, opts ...CreateContainerOption) (bool, error)

	// ContainerExists reports whether the named container exists.
	ContainerExists(ctx context.Context, name string) (bool, error)

	// ListContainers returns metadata for every container, ordered by name.
	ListContainers(ctx context.Context) (*Page, error)

	// DeleteContainer removes the container and all its blobs. Deleting a
	// missing container is a no-op.
	DeleteContainer(ctx context.Context, name string) error

	// DeleteContainerIfEmpty removes the container only when it holds no
	// blobs, returning true when it was removed or already absent.
	DeleteContainerIfEmpty(ctx context.Context, name string) (bool, error)

	// ClearContainer removes every blob while keeping the container. It
	// fails with ErrContainerNotFound when the container is missing.
	ClearContainer(ctx context.Context, name string) error

	// CountBlobs returns the number of blobs in the container.
	CountBlobs(ctx context.Context, container string) (int, error)

	// Blob operations

	// PutBlob writes a blob and returns its ETag, the lowercase hex
	// digest of the payload. It fails with ErrContainerNotFound when the
	// container is missing.
	PutBlob(ctx context.Context, container string, req PutBlobRequest) (string, error)

	// GetBlob returns an independent copy of the blob after evaluating
	// any preconditions and byte ranges. A missing key is absent, not an
	// error: GetBlob returns (nil, nil). A missing container fails with
	// ErrContainerNotFound.
	GetBlob(ctx context.Context, container, key string, opts ...GetOption) (*Blob, error)

	// GetBlobMetadata returns an independent copy of the blob metadata,
	// or (nil, nil) when the key is absent.
	GetBlobMetadata(ctx context.Context, container, key string) (*BlobMetadata, error)

	// BlobExists reports whether the key holds a blob. A missing
	// container reports false, not an error.
	BlobExists(ctx context.Context, container, key string) (bool, error)

	// RemoveBlob deletes the blob. Removing a missing key, or a key in a
	// missing container, is a no-op.
	RemoveBlob(ctx context.Context, container, key string) error

	// ListBlobs returns one page of the container keyspace. Directory
	// markers list under their directory name as relative-path entries;
	// unless the listing is recursive, names nested below the prefix fold
	// into relative-path pseudo-entries.
	ListBlobs(ctx context.Context, container string, opts ...ListOption) (*Page, error)

	// Directory operations

	// CreateDirectory writes a zero-byte directory marker for dir.
	CreateDirectory(ctx context.Context, container, dir string) error

	// DirectoryExists reports whether a directory marker exists for dir.
	DirectoryExists(ctx context.Context, container, dir string) (bool, error)

	// DeleteDirectory removes the directory markers for dir.
	DeleteDirectory(ctx context.Context, container, dir string) error
}
