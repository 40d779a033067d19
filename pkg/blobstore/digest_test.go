package blobstore

import "testing"

func TestMD5HasherETag(t *testing.T) {
	tests := []struct {
		name string
		data []byte
		want string
	}{
		{"known digest", []byte("Hello, World!"), "65a8e27d8879283831b664bd8b7f0ad4"},
		{"empty payload", nil, "d41d8cd98f00b204e9800998ecf8427e"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ETagFor(MD5Hasher().Sum(tt.data)); got != tt.want {
				t.Errorf("ETagFor(Sum(%q)) = %q, want %q", tt.data, got, tt.want)
			}
		})
	}
}
