package blobstore

import (
	"crypto/md5"
	"encoding/hex"
)

// ContentHasher digests blob payloads. The store derives each blob's ETag
// from the digest of its full payload, so equal payloads always carry
// equal ETags.
type ContentHasher interface {
	// Sum returns the digest of data.
	Sum(data []byte) []byte
}

// MD5Hasher returns the default ContentHasher. MD5 is the digest object
// stores conventionally surface through ETags.
func MD5Hasher() ContentHasher {
	return md5Hasher{}
}

type md5Hasher struct{}

func (md5Hasher) Sum(data []byte) []byte {
	sum := md5.Sum(data)
	return sum[:]
}

// ETagFor renders a digest as the lowercase hex ETag token recorded on
// blob metadata.
func ETagFor(digest []byte) string {
	return hex.EncodeToString(digest)
}
