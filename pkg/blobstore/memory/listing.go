package memory

import (
	"strings"

	"golang.org/x/exp/slices"

	"github.com/tendant/simple-blobstore/pkg/blobstore"
)

// listPage runs the listing pipeline over a snapshot of stored blobs:
// project listing metadata with directory markers rewritten, resume after
// the marker, filter by prefix, truncate to the page size, then fold the
// hierarchy unless the listing is recursive. The snapshot itself is never
// mutated; every returned entry is an independent copy.
func listPage(snapshot []*blobstore.Blob, detector blobstore.DirectoryMarkerDetector, o blobstore.ListOptions) *blobstore.Page {
	entries := project(snapshot, detector)

	entries = afterMarker(entries, o.Marker)
	entries = filterPrefix(entries, o.Prefix)

	entries, nextMarker := truncate(entries, o.MaxResults)

	if !o.Recursive {
		entries = foldHierarchy(entries, o.Prefix)
	}
	if !o.Detailed {
		for i := range entries {
			entries[i].UserMetadata = nil
		}
	}

	return &blobstore.Page{Entries: entries, NextMarker: nextMarker}
}

// project clones each blob's listing metadata, rewriting directory markers
// to relative-path entries under their directory name. The result is
// sorted by name and deduplicated; a relative-path entry wins a name
// collision with a blob.
func project(snapshot []*blobstore.Blob, detector blobstore.DirectoryMarkerDetector) []blobstore.StorageMetadata {
	entries := make([]blobstore.StorageMetadata, 0, len(snapshot))
	for _, blob := range snapshot {
		md := blob.Metadata.StorageMetadata.Clone()
		if dir, ok := detector.DirectoryName(blob.Metadata); ok {
			md.Name = dir
			md.Type = blobstore.StorageTypeRelativePath
		}
		entries = append(entries, md)
	}

	return sortDedupe(entries)
}

// afterMarker keeps the entries whose names sort strictly after marker.
// Entries must already be sorted by name.
func afterMarker(entries []blobstore.StorageMetadata, marker string) []blobstore.StorageMetadata {
	if marker == "" {
		return entries
	}

	i := 0
	for i < len(entries) && entries[i].Name <= marker {
		i++
	}
	return entries[i:]
}

// filterPrefix keeps the entries under prefix, excluding the name equal to
// the prefix itself.
func filterPrefix(entries []blobstore.StorageMetadata, prefix string) []blobstore.StorageMetadata {
	if prefix == "" {
		return entries
	}

	var kept []blobstore.StorageMetadata
	for _, e := range entries {
		if strings.HasPrefix(e.Name, prefix) && e.Name != prefix {
			kept = append(kept, e)
		}
	}
	return kept
}

// truncate caps entries at max and returns the continuation marker, the
// name of the last kept entry, only when entries were cut off. A max <= 0
// yields an empty page with no marker.
func truncate(entries []blobstore.StorageMetadata, max int) ([]blobstore.StorageMetadata, string) {
	if max <= 0 {
		return nil, ""
	}
	if len(entries) <= max {
		return entries, ""
	}

	kept := entries[:max]
	return kept, kept[len(kept)-1].Name
}

// foldHierarchy replaces entries nested below the prefix with relative-path
// pseudo-entries named through the first path separator, so one pseudo-entry
// stands for every key sharing that segment. Entries whose remainder holds
// no separator stay flat. For a prefix p the effective strip-prefix is p
// when p already ends in "/", else p + "/".
func foldHierarchy(entries []blobstore.StorageMetadata, prefix string) []blobstore.StorageMetadata {
	strip := prefix
	if !strings.HasSuffix(strip, "/") {
		strip += "/"
	}

	folded := make([]blobstore.StorageMetadata, 0, len(entries))
	for _, e := range entries {
		name, ok := commonPrefix(e.Name, strip)
		if !ok {
			folded = append(folded, e)
			continue
		}
		folded = append(folded, blobstore.StorageMetadata{
			Name: name,
			Type: blobstore.StorageTypeRelativePath,
		})
	}

	return sortDedupe(folded)
}

// commonPrefix folds name to its common-prefix form under strip: the name
// cut just past the first "/" of the remainder left after stripping. ok is
// false when the remainder holds no separator and the entry stays flat.
func commonPrefix(name, strip string) (string, bool) {
	base := ""
	rest := name
	if strings.HasPrefix(name, strip) {
		base = strip
		rest = name[len(strip):]
	}

	i := strings.Index(rest, "/")
	if i < 0 {
		return "", false
	}
	return base + rest[:i+1], true
}

// sortDedupe orders entries by name and collapses duplicate names. Ties
// sort relative-path entries first so dedup keeps the directory entry.
func sortDedupe(entries []blobstore.StorageMetadata) []blobstore.StorageMetadata {
	slices.SortFunc(entries, func(a, b blobstore.StorageMetadata) int {
		if c := strings.Compare(a.Name, b.Name); c != 0 {
			return c
		}
		return typeRank(a.Type) - typeRank(b.Type)
	})
	return slices.CompactFunc(entries, func(a, b blobstore.StorageMetadata) bool {
		return a.Name == b.Name
	})
}

func typeRank(t blobstore.StorageType) int {
	if t == blobstore.StorageTypeRelativePath {
		return 0
	}
	return 1
}
