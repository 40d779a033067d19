package blobstore

import "testing"

func TestSchemeLocator(t *testing.T) {
	tests := []struct {
		name      string
		scheme    string
		container string
		key       string
		want      string
	}{
		{"default scheme", DefaultURIScheme, "docs", "greeting.txt", "mem://docs/greeting.txt"},
		{"nested key", DefaultURIScheme, "docs", "a/b.txt", "mem://docs/a/b.txt"},
		{"custom scheme", "test", "docs", "k", "test://docs/k"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := SchemeLocator(tt.scheme).BlobURI(tt.container, tt.key); got != tt.want {
				t.Errorf("BlobURI() = %q, want %q", got, tt.want)
			}
		})
	}
}
