package memory

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"sync"

	"github.com/google/uuid"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"

	"github.com/tendant/simple-blobstore/pkg/blobstore"
)

// DefaultLocation is the placement tag recorded when neither the caller
// nor the store configuration names one.
const DefaultLocation = "transient"

// Store implements blobstore.BlobStore entirely in memory.
//
// One store-wide RWMutex guards the container map and every blob map.
// Stored *Blob values are immutable: writes build a fresh blob and swap
// the pointer under the write lock, and reads copy after releasing the
// lock, so no torn blob is ever observable.
type Store struct {
	mu         sync.RWMutex
	containers map[string]*container

	clock           blobstore.Clock
	hasher          blobstore.ContentHasher
	locator         blobstore.LocatorBuilder
	detector        blobstore.DirectoryMarkerDetector
	defaultLocation string
	maxResults      int
	logger          *slog.Logger
}

// container owns one container's placement tag and keyed blobs.
type container struct {
	id       uuid.UUID
	location string
	blobs    map[string]*blobstore.Blob
}

// Option represents a functional option for configuring the store
type Option func(*Store)

// WithClock sets the clock used to stamp last-modified times.
func WithClock(clock blobstore.Clock) Option {
	return func(s *Store) {
		s.clock = clock
	}
}

// WithHasher sets the content hasher used to derive ETags.
func WithHasher(h blobstore.ContentHasher) Option {
	return func(s *Store) {
		s.hasher = h
	}
}

// WithLocatorBuilder sets the builder for synthetic blob URIs.
func WithLocatorBuilder(l blobstore.LocatorBuilder) Option {
	return func(s *Store) {
		s.locator = l
	}
}

// WithMarkerDetector sets the directory-marker detector used by listings.
func WithMarkerDetector(d blobstore.DirectoryMarkerDetector) Option {
	return func(s *Store) {
		s.detector = d
	}
}

// WithDefaultLocation sets the placement tag for containers created
// without an explicit location.
func WithDefaultLocation(location string) Option {
	return func(s *Store) {
		s.defaultLocation = location
	}
}

// WithDefaultMaxResults sets the listing page cap used when a caller does
// not pass one.
func WithDefaultMaxResults(n int) Option {
	return func(s *Store) {
		s.maxResults = n
	}
}

// WithLogger sets the logger for store operations.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Store) {
		s.logger = logger
	}
}

// New creates a new in-memory blob store with the given options.
func New(opts ...Option) blobstore.BlobStore {
	s := &Store{
		containers:      make(map[string]*container),
		clock:           blobstore.SystemClock(),
		hasher:          blobstore.MD5Hasher(),
		locator:         blobstore.SchemeLocator(blobstore.DefaultURIScheme),
		detector:        blobstore.SuffixMarkerDetector(),
		defaultLocation: DefaultLocation,
		maxResults:      blobstore.DefaultMaxResults,
		logger:          slog.New(slog.DiscardHandler),
	}

	for _, opt := range opts {
		if opt == nil {
			continue
		}
		opt(s)
	}

	return s
}

// Container operations

func (s *Store) CreateContainer(ctx context.Context, name string, opts ...blobstore.CreateContainerOption) (bool, error) {
	o := blobstore.NewCreateContainerOptions(opts...)

	if name == "" {
		return false, &blobstore.ContainerError{Container: name, Op: "create", Err: fmt.Errorf("%w: container name is required", blobstore.ErrInvalidArgument)}
	}
	if o.PublicRead {
		return false, &blobstore.ContainerError{Container: name, Op: "create", Err: fmt.Errorf("%w: public-read containers are not supported", blobstore.ErrInvalidArgument)}
	}

	location := o.Location
	if location == "" {
		location = s.defaultLocation
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.containers[name]; exists {
		return false, nil
	}
	s.containers[name] = &container{
		id:       uuid.New(),
		location: location,
		blobs:    make(map[string]*blobstore.Blob),
	}

	s.logger.Debug("created container", "container", name, "location", location)
	return true, nil
}

func (s *Store) ContainerExists(ctx context.Context, name string) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	_, exists := s.containers[name]
	return exists, nil
}

func (s *Store) ListContainers(ctx context.Context) (*blobstore.Page, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	entries := make([]blobstore.StorageMetadata, 0, len(s.containers))
	for name, c := range s.containers {
		entries = append(entries, blobstore.StorageMetadata{
			ID:       c.id,
			Name:     name,
			Type:     blobstore.StorageTypeContainer,
			Location: c.location,
		})
	}
	slices.SortFunc(entries, func(a, b blobstore.StorageMetadata) int {
		return strings.Compare(a.Name, b.Name)
	})

	return &blobstore.Page{Entries: entries}, nil
}

func (s *Store) DeleteContainer(ctx context.Context, name string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.containers, name)
	s.logger.Debug("deleted container", "container", name)
	return nil
}

func (s *Store) DeleteContainerIfEmpty(ctx context.Context, name string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	c, exists := s.containers[name]
	if !exists {
		return true, nil
	}
	if len(c.blobs) > 0 {
		return false, nil
	}

	delete(s.containers, name)
	s.logger.Debug("deleted empty container", "container", name)
	return true, nil
}

func (s *Store) ClearContainer(ctx context.Context, name string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	c, exists := s.containers[name]
	if !exists {
		return &blobstore.ContainerError{Container: name, Op: "clear", Err: blobstore.ErrContainerNotFound}
	}

	c.blobs = make(map[string]*blobstore.Blob)
	s.logger.Debug("cleared container", "container", name)
	return nil
}

func (s *Store) CountBlobs(ctx context.Context, name string) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	c, exists := s.containers[name]
	if !exists {
		return 0, &blobstore.ContainerError{Container: name, Op: "count", Err: blobstore.ErrContainerNotFound}
	}
	return len(c.blobs), nil
}

// Blob operations

func (s *Store) PutBlob(ctx context.Context, name string, req blobstore.PutBlobRequest) (string, error) {
	// Fail fast on a missing container before materializing the payload.
	if exists, _ := s.ContainerExists(ctx, name); !exists {
		return "", &blobstore.BlobError{Container: name, Key: req.Key, Op: "put", Err: blobstore.ErrContainerNotFound}
	}

	blob, err := s.buildBlob(name, req)
	if err != nil {
		return "", err
	}

	s.mu.Lock()
	c, exists := s.containers[name]
	if !exists {
		s.mu.Unlock()
		return "", &blobstore.BlobError{Container: name, Key: req.Key, Op: "put", Err: blobstore.ErrContainerNotFound}
	}
	c.blobs[req.Key] = blob
	s.mu.Unlock()

	s.logger.Debug("put blob", "container", name, "key", req.Key, "etag", blob.Metadata.ETag, "size", blob.Metadata.Size)
	return blob.Metadata.ETag, nil
}

func (s *Store) GetBlob(ctx context.Context, name, key string, opts ...blobstore.GetOption) (*blobstore.Blob, error) {
	o := blobstore.NewGetOptions(opts...)

	s.mu.RLock()
	c, exists := s.containers[name]
	if !exists {
		s.mu.RUnlock()
		return nil, &blobstore.BlobError{Container: name, Key: key, Op: "get", Err: blobstore.ErrContainerNotFound}
	}
	stored := c.blobs[key]
	s.mu.RUnlock()

	if stored == nil {
		return nil, nil
	}

	blob, err := applyGetOptions(stored, o)
	if err != nil {
		return nil, &blobstore.BlobError{Container: name, Key: key, Op: "get", Err: err}
	}

	s.logger.Debug("got blob", "container", name, "key", key, "size", blob.Metadata.Size)
	return blob, nil
}

func (s *Store) GetBlobMetadata(ctx context.Context, name, key string) (*blobstore.BlobMetadata, error) {
	s.mu.RLock()
	c, exists := s.containers[name]
	if !exists {
		s.mu.RUnlock()
		return nil, &blobstore.BlobError{Container: name, Key: key, Op: "metadata", Err: blobstore.ErrContainerNotFound}
	}
	stored := c.blobs[key]
	s.mu.RUnlock()

	if stored == nil {
		return nil, nil
	}

	md := stored.Metadata.Clone()
	return &md, nil
}

func (s *Store) BlobExists(ctx context.Context, name, key string) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	c, exists := s.containers[name]
	if !exists {
		return false, nil
	}
	_, ok := c.blobs[key]
	return ok, nil
}

func (s *Store) RemoveBlob(ctx context.Context, name, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	c, exists := s.containers[name]
	if !exists {
		return nil
	}

	delete(c.blobs, key)
	s.logger.Debug("removed blob", "container", name, "key", key)
	return nil
}

func (s *Store) ListBlobs(ctx context.Context, name string, opts ...blobstore.ListOption) (*blobstore.Page, error) {
	o := blobstore.ListOptions{MaxResults: s.maxResults}
	o.Apply(opts...)

	s.mu.RLock()
	c, exists := s.containers[name]
	if !exists {
		s.mu.RUnlock()
		return nil, &blobstore.ContainerError{Container: name, Op: "list", Err: blobstore.ErrContainerNotFound}
	}
	// Snapshot the immutable blob pointers so folding and pagination run
	// outside the lock.
	snapshot := maps.Values(c.blobs)
	s.mu.RUnlock()

	return listPage(snapshot, s.detector, o), nil
}

// Directory operations

func (s *Store) CreateDirectory(ctx context.Context, name, dir string) error {
	if dir == "" {
		return &blobstore.BlobError{Container: name, Key: dir, Op: "mkdir", Err: fmt.Errorf("%w: directory name is required", blobstore.ErrInvalidArgument)}
	}

	_, err := s.PutBlob(ctx, name, blobstore.PutBlobRequest{
		Key:         dir + blobstore.DirectorySuffixRoot,
		Payload:     blobstore.BytesPayload(nil),
		ContentType: blobstore.DirectoryContentType,
	})
	return err
}

func (s *Store) DirectoryExists(ctx context.Context, name, dir string) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	c, exists := s.containers[name]
	if !exists {
		return false, nil
	}
	for _, key := range markerKeys(dir) {
		if _, ok := c.blobs[key]; ok {
			return true, nil
		}
	}
	return false, nil
}

func (s *Store) DeleteDirectory(ctx context.Context, name, dir string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	c, exists := s.containers[name]
	if !exists {
		return nil
	}
	for _, key := range markerKeys(dir) {
		delete(c.blobs, key)
	}
	return nil
}

// markerKeys returns both marker spellings for a directory name.
func markerKeys(dir string) []string {
	return []string{
		dir + blobstore.DirectorySuffixRoot,
		dir + blobstore.DirectorySuffixFolder,
	}
}
