package blobstore

import (
	"fmt"
	"io"

	"golang.org/x/exp/slices"
)

// Payload is a readable content source for blob writes. The write pipeline
// always normalizes a payload to an owned buffer before hashing, so every
// implementation must be able to materialize its full contents.
type Payload interface {
	// Bytes materializes the payload into a buffer owned by the caller.
	Bytes() ([]byte, error)

	// Len returns the payload length in bytes, or -1 when it is unknown
	// before materialization.
	Len() int64
}

// BytesPayload returns a Payload over b. Materializing copies the bytes,
// so later mutation of b does not leak into stored blobs. A nil or empty
// slice yields an empty blob.
func BytesPayload(b []byte) Payload {
	return bytesPayload(b)
}

// StringPayload returns a Payload over the contents of s.
func StringPayload(s string) Payload {
	return bytesPayload(s)
}

type bytesPayload []byte

func (p bytesPayload) Bytes() ([]byte, error) {
	return slices.Clone([]byte(p)), nil
}

func (p bytesPayload) Len() int64 {
	return int64(len(p))
}

// ReaderPayload returns a Payload that materializes by draining r. Reader
// payloads are single use and report an unknown length.
func ReaderPayload(r io.Reader) Payload {
	return &readerPayload{r: r}
}

type readerPayload struct {
	r io.Reader
}

func (p *readerPayload) Bytes() ([]byte, error) {
	if p.r == nil {
		return nil, fmt.Errorf("%w: nil reader payload", ErrInvalidArgument)
	}
	return io.ReadAll(p.r)
}

func (p *readerPayload) Len() int64 {
	return -1
}
