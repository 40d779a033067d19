package memory

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/tendant/simple-blobstore/pkg/blobstore"
)

// applyGetOptions evaluates read preconditions against the stored blob,
// then materializes the response as an independent copy, slicing it to the
// requested byte ranges when present.
//
// Precondition order is fixed: IfMatch, IfNoneMatch, IfModifiedSince,
// IfUnmodifiedSince. The first failure wins and the payload is never
// touched.
func applyGetOptions(stored *blobstore.Blob, o blobstore.GetOptions) (*blobstore.Blob, error) {
	md := stored.Metadata

	if o.IfMatch != "" && md.ETag != o.IfMatch {
		return nil, fmt.Errorf("%w: etag %q does not match %q", blobstore.ErrPreconditionFailed, md.ETag, o.IfMatch)
	}
	if o.IfNoneMatch != "" && md.ETag == o.IfNoneMatch {
		return nil, fmt.Errorf("%w: etag %q matches %q", blobstore.ErrNotModified, md.ETag, o.IfNoneMatch)
	}
	if !o.IfModifiedSince.IsZero() && md.LastModified.Before(o.IfModifiedSince) {
		return nil, fmt.Errorf("%w: last modified %v is before %v", blobstore.ErrNotModified, md.LastModified, o.IfModifiedSince)
	}
	if !o.IfUnmodifiedSince.IsZero() && md.LastModified.After(o.IfUnmodifiedSince) {
		return nil, fmt.Errorf("%w: last modified %v is after %v", blobstore.ErrPreconditionFailed, md.LastModified, o.IfUnmodifiedSince)
	}

	blob := stored.Clone()
	if len(o.Ranges) == 0 {
		return blob, nil
	}

	sliced, err := applyRanges(blob.Payload, o.Ranges)
	if err != nil {
		return nil, err
	}
	blob.Payload = sliced
	blob.Metadata.Size = int64(len(sliced))
	return blob, nil
}

// applyRanges concatenates the requested byte ranges of data in request
// order; a range may repeat bytes already selected. Bounds beyond the
// payload clamp rather than fail:
//
//	"-N"  the last N bytes, or all of data when N >= len
//	"N-"  the bytes from offset N, empty when N >= len
//	"N-M" bytes N through M inclusive; M clamps to len-1, empty when N >= len
//
// Specs matching none of the three shapes, and inverted "N-M" bounds, are
// rejected with ErrInvalidArgument.
func applyRanges(data []byte, ranges []string) ([]byte, error) {
	out := make([]byte, 0, len(data))
	for _, spec := range ranges {
		segment, err := rangeSegment(data, spec)
		if err != nil {
			return nil, err
		}
		out = append(out, segment...)
	}
	return out, nil
}

func rangeSegment(data []byte, spec string) ([]byte, error) {
	malformed := fmt.Errorf("%w: malformed range %q", blobstore.ErrInvalidArgument, spec)

	switch {
	case spec == "":
		return nil, malformed

	case strings.HasPrefix(spec, "-"):
		n, err := parseBound(spec[1:])
		if err != nil {
			return nil, malformed
		}
		if n > len(data) {
			n = len(data)
		}
		return data[len(data)-n:], nil

	case strings.HasSuffix(spec, "-"):
		first, err := parseBound(strings.TrimSuffix(spec, "-"))
		if err != nil {
			return nil, malformed
		}
		if first >= len(data) {
			return nil, nil
		}
		return data[first:], nil

	default:
		lo, hi, ok := strings.Cut(spec, "-")
		if !ok {
			return nil, malformed
		}
		first, err := parseBound(lo)
		if err != nil {
			return nil, malformed
		}
		last, err := parseBound(hi)
		if err != nil {
			return nil, malformed
		}
		if first > last {
			return nil, malformed
		}
		if first >= len(data) {
			return nil, nil
		}
		if last >= len(data) {
			last = len(data) - 1
		}
		return data[first : last+1], nil
	}
}

// parseBound parses a non-negative decimal range bound.
func parseBound(s string) (int, error) {
	if s == "" {
		return 0, fmt.Errorf("empty range bound")
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, err
	}
	if n < 0 {
		return 0, fmt.Errorf("negative range bound %d", n)
	}
	return n, nil
}
