// Package blobstore provides an embeddable, in-memory object-storage
// emulator: named containers holding keyed blobs, with hierarchical
// listing over a flat keyspace, digest-derived ETags, and conditional and
// ranged reads.
//
// It exposes a single BlobStore interface covering container lifecycle,
// blob reads and writes, paginated listing, and directory-marker helpers.
// The in-memory implementation is provided under the memory subpackage;
// the config subpackage assembles a store from environment-driven
// configuration.
//
// Collaborators
//
// Time, digests, locator formation, and directory-marker detection sit
// behind small interfaces (Clock, ContentHasher, LocatorBuilder,
// DirectoryMarkerDetector) with package defaults, so tests can pin
// last-modified times or swap the digest without touching store logic.
//
// Ownership
//
// Stored blobs are never aliased: writes materialize payloads into owned
// buffers, and reads and listings return independent copies, so callers
// cannot mutate store state through returned values.
package blobstore
