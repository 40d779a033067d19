package blobstore

import "strings"

// Directory marker constants. A blob whose key carries one of the marker
// suffixes, or whose content type is DirectoryContentType, stands in for a
// directory within the flat keyspace.
const (
	// DirectorySuffixRoot marks a directory with a trailing path separator.
	DirectorySuffixRoot = "/"

	// DirectorySuffixFolder marks a directory the way legacy S3 tooling does.
	DirectorySuffixFolder = "_$folder$"

	// DirectoryContentType marks a directory through its content type.
	DirectoryContentType = "application/directory"
)

// DirectoryMarkerDetector decides whether blob metadata denotes a directory
// placeholder and, if so, under which name listings should present it.
type DirectoryMarkerDetector interface {
	// DirectoryName returns the directory name for md and true when md is
	// a directory marker, or "" and false otherwise.
	DirectoryName(md BlobMetadata) (string, bool)
}

// SuffixMarkerDetector returns the default DirectoryMarkerDetector: keys
// ending in DirectorySuffixRoot or DirectorySuffixFolder map to the key
// with the suffix stripped; otherwise a DirectoryContentType content type
// maps to the key unchanged.
func SuffixMarkerDetector() DirectoryMarkerDetector {
	return suffixMarkerDetector{}
}

type suffixMarkerDetector struct{}

func (suffixMarkerDetector) DirectoryName(md BlobMetadata) (string, bool) {
	for _, suffix := range []string{DirectorySuffixRoot, DirectorySuffixFolder} {
		if strings.HasSuffix(md.Name, suffix) {
			return strings.TrimSuffix(md.Name, suffix), true
		}
	}
	if md.ContentType == DirectoryContentType {
		return md.Name, true
	}
	return "", false
}
