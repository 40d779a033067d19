package blobstore

// PutBlobRequest contains parameters for writing one blob. A write fully
// replaces any existing blob under the same key.
type PutBlobRequest struct {
	// Key names the blob within its container. Required.
	Key string

	// Payload supplies the blob bytes. Required; an empty payload is
	// valid and stores a zero-length blob.
	Payload Payload

	// ContentType is recorded on the blob metadata. Empty defaults to
	// "application/octet-stream".
	ContentType string

	// UserMetadata is copied onto the blob with keys lowercased. Keys
	// colliding after lowercasing resolve to the lexicographically last
	// input key.
	UserMetadata map[string]string
}
