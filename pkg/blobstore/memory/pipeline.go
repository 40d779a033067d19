package memory

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"

	"github.com/tendant/simple-blobstore/pkg/blobstore"
)

// buildBlob materializes the request payload and stamps content metadata:
// length, hex digest ETag, last-modified from the store clock, synthetic
// URI, a fresh write identity, and lowercased user metadata. The returned
// blob owns its payload buffer.
func (s *Store) buildBlob(container string, req blobstore.PutBlobRequest) (*blobstore.Blob, error) {
	if req.Key == "" {
		return nil, &blobstore.BlobError{Container: container, Key: req.Key, Op: "put", Err: fmt.Errorf("%w: blob key is required", blobstore.ErrInvalidArgument)}
	}
	if req.Payload == nil {
		return nil, &blobstore.BlobError{Container: container, Key: req.Key, Op: "put", Err: fmt.Errorf("%w: payload is required", blobstore.ErrInvalidArgument)}
	}

	data, err := req.Payload.Bytes()
	if err != nil {
		return nil, &blobstore.BlobError{Container: container, Key: req.Key, Op: "put", Err: err}
	}

	contentType := req.ContentType
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	return &blobstore.Blob{
		Metadata: blobstore.BlobMetadata{
			StorageMetadata: blobstore.StorageMetadata{
				ID:           uuid.New(),
				Name:         req.Key,
				Type:         blobstore.StorageTypeBlob,
				ETag:         blobstore.ETagFor(s.hasher.Sum(data)),
				Size:         int64(len(data)),
				LastModified: s.clock.Now(),
				UserMetadata: lowercaseKeys(req.UserMetadata),
			},
			Container:   container,
			URI:         s.locator.BlobURI(container, req.Key),
			ContentType: contentType,
		},
		Payload: data,
	}, nil
}

// lowercaseKeys copies metadata with lowercased keys. Input keys are
// visited in sorted order so a collision resolves deterministically to the
// lexicographically last input key.
func lowercaseKeys(metadata map[string]string) map[string]string {
	if len(metadata) == 0 {
		return nil
	}

	keys := maps.Keys(metadata)
	slices.Sort(keys)

	out := make(map[string]string, len(keys))
	for _, k := range keys {
		out[strings.ToLower(k)] = metadata[k]
	}
	return out
}
