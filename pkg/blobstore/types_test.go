package blobstore

import (
	"testing"
	"time"

	"github.com/google/uuid"
)

// TestStorageMetadataClone verifies that clones own their user-metadata map.
func TestStorageMetadataClone(t *testing.T) {
	orig := StorageMetadata{
		ID:           uuid.New(),
		Name:         "report.pdf",
		Type:         StorageTypeBlob,
		ETag:         "abc",
		Size:         3,
		LastModified: time.Now(),
		UserMetadata: map[string]string{"owner": "ops"},
	}

	clone := orig.Clone()
	clone.UserMetadata["owner"] = "intruder"

	if got := orig.UserMetadata["owner"]; got != "ops" {
		t.Errorf("original user metadata changed to %q after mutating the clone", got)
	}
	if clone.Name != orig.Name || clone.ETag != orig.ETag || clone.ID != orig.ID {
		t.Errorf("clone lost scalar fields: %+v", clone)
	}
}

// TestBlobClone verifies that clones own their payload buffer and that a
// nil blob clones to nil.
func TestBlobClone(t *testing.T) {
	blob := &Blob{
		Metadata: BlobMetadata{
			StorageMetadata: StorageMetadata{
				Name:         "a",
				UserMetadata: map[string]string{"k": "v"},
			},
			Container: "docs",
		},
		Payload: []byte("payload"),
	}

	clone := blob.Clone()
	clone.Payload[0] = 'X'
	clone.Metadata.UserMetadata["k"] = "changed"

	if string(blob.Payload) != "payload" {
		t.Errorf("payload mutated through clone: %q", blob.Payload)
	}
	if blob.Metadata.UserMetadata["k"] != "v" {
		t.Error("user metadata mutated through clone")
	}

	var none *Blob
	if none.Clone() != nil {
		t.Error("cloning a nil blob should yield nil")
	}
}

func TestPageIsTruncated(t *testing.T) {
	tests := []struct {
		name   string
		marker string
		want   bool
	}{
		{"no marker", "", false},
		{"marker set", "0999", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := &Page{NextMarker: tt.marker}
			if got := p.IsTruncated(); got != tt.want {
				t.Errorf("IsTruncated() = %v, want %v", got, tt.want)
			}
		})
	}
}
