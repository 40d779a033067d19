package blobstore

import "testing"

// TestSuffixMarkerDetector tests directory-marker detection across the
// marker spellings.
func TestSuffixMarkerDetector(t *testing.T) {
	detector := SuffixMarkerDetector()

	tests := []struct {
		name        string
		key         string
		contentType string
		wantName    string
		wantMarker  bool
	}{
		{"trailing slash", "photos/", "", "photos", true},
		{"nested trailing slash", "a/b/", "", "a/b", true},
		{"folder suffix", "logs_$folder$", "", "logs", true},
		{"directory content type", "inbox", DirectoryContentType, "inbox", true},
		{"suffix beats content type", "inbox/", DirectoryContentType, "inbox", true},
		{"plain blob", "notes.txt", "text/plain", "", false},
		{"empty name", "", "", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			md := BlobMetadata{
				StorageMetadata: StorageMetadata{Name: tt.key},
				ContentType:     tt.contentType,
			}
			gotName, gotMarker := detector.DirectoryName(md)
			if gotName != tt.wantName || gotMarker != tt.wantMarker {
				t.Errorf("DirectoryName(%q, %q) = (%q, %v), want (%q, %v)",
					tt.key, tt.contentType, gotName, gotMarker, tt.wantName, tt.wantMarker)
			}
		})
	}
}
