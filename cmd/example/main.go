package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/lmittmann/tint"
	"github.com/tendant/simple-blobstore/pkg/blobstore"
	"github.com/tendant/simple-blobstore/pkg/blobstore/config"
	"github.com/tendant/simple-blobstore/pkg/blobstore/memory"
)

type AppConfig struct {
	Environment string `env:"BLOBSTORE_ENVIRONMENT" env-default:"development"`
}

func main() {

	// 1. Read application environment and store configuration
	var app AppConfig
	cleanenv.ReadEnv(&app)

	cfg, err := config.Load(config.WithEnv())
	if err != nil {
		slog.Error("Failed to load configuration", "err", err)
		os.Exit(-1)
	}

	// 2. Set up logging for the selected environment
	setupLogging(app.Environment, cfg.Level())

	// 3. Build the in-memory blob store
	store := cfg.BuildStore(memory.WithLogger(slog.Default()))

	// 4. Execute the complete container and blob flow
	if err := executeBlobFlow(context.Background(), store); err != nil {
		log.Fatalf("Blob flow failed: %v", err)
	}

	log.Println("Blob flow completed successfully!")
}

// setupLogging installs a tinted handler for development and a JSON
// handler for production, then routes the standard logger through it.
func setupLogging(environment string, level slog.Level) {
	isProd := environment == "prod" || environment == "production"

	var h slog.Handler
	if isProd {
		h = slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
			Level: level,
			ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
				if a.Key == slog.TimeKey {
					return slog.String("ts", a.Value.Time().UTC().Format(time.RFC3339Nano))
				}
				return a
			},
		})
	} else {
		h = tint.NewHandler(os.Stdout, &tint.Options{
			Level:      level,
			TimeFormat: "15:04:05.000",
		})
	}

	slog.SetDefault(slog.New(h))

	log.SetFlags(0)
	log.SetOutput(
		slog.NewLogLogger(
			slog.Default().Handler(),
			slog.LevelInfo,
		).Writer(),
	)
}

func executeBlobFlow(ctx context.Context, store blobstore.BlobStore) error {
	// 1. Create a container for this session
	log.Println("Creating container 'media'...")
	created, err := store.CreateContainer(ctx, "media", blobstore.InLocation("us-east-1"))
	if err != nil {
		return fmt.Errorf("failed to create container: %w", err)
	}
	log.Printf("Container created: %v", created)

	// 2. Store a few blobs under nested keys
	blobs := []struct {
		key         string
		contentType string
		body        string
	}{
		{"manifest.json", "application/json", `{"album":"summer"}`},
		{"photos/readme.txt", "text/plain", "Scans of the 2024 photo albums."},
		{"photos/2024/beach.jpg", "image/jpeg", "beach-bytes"},
		{"photos/2024/city.jpg", "image/jpeg", "city-bytes"},
	}

	var manifestETag string
	for _, b := range blobs {
		etag, err := store.PutBlob(ctx, "media", blobstore.PutBlobRequest{
			Key:          b.key,
			Payload:      blobstore.StringPayload(b.body),
			ContentType:  b.contentType,
			UserMetadata: map[string]string{"Uploaded-By": "example"},
		})
		if err != nil {
			return fmt.Errorf("failed to store %s: %w", b.key, err)
		}
		if b.key == "manifest.json" {
			manifestETag = etag
		}
		log.Printf("Stored %s (etag %s)", b.key, etag)
	}

	// 3. Read one blob back with its metadata
	blob, err := store.GetBlob(ctx, "media", "manifest.json")
	if err != nil {
		return fmt.Errorf("failed to read manifest: %w", err)
	}
	if blob == nil {
		return fmt.Errorf("manifest.json is missing after upload")
	}
	log.Printf("Read %s: %d bytes of %s at %s",
		blob.Metadata.Name, blob.Metadata.Size, blob.Metadata.ContentType, blob.Metadata.URI)

	// 4. List the top level of the container
	log.Println("Top-level listing:")
	page, err := store.ListBlobs(ctx, "media")
	if err != nil {
		return fmt.Errorf("failed to list container: %w", err)
	}
	for _, e := range page.Entries {
		log.Printf("  %s (%s)", e.Name, e.Type)
	}

	// 5. Drill into one folded directory
	log.Println("Listing under photos/2024/:")
	page, err = store.ListBlobs(ctx, "media", blobstore.WithPrefix("photos/2024/"))
	if err != nil {
		return fmt.Errorf("failed to list prefix: %w", err)
	}
	for _, e := range page.Entries {
		log.Printf("  %s (%s)", e.Name, e.Type)
	}

	// 6. Page through the flat keyspace two entries at a time
	log.Println("Paging through all keys:")
	marker := ""
	for {
		opts := []blobstore.ListOption{blobstore.Recursive(), blobstore.WithMaxResults(2)}
		if marker != "" {
			opts = append(opts, blobstore.AfterMarker(marker))
		}
		page, err := store.ListBlobs(ctx, "media", opts...)
		if err != nil {
			return fmt.Errorf("failed to page listing: %w", err)
		}
		for _, e := range page.Entries {
			log.Printf("  %s", e.Name)
		}
		if !page.IsTruncated() {
			break
		}
		marker = page.NextMarker
	}

	// 7. Conditional read against the stored ETag
	_, err = store.GetBlob(ctx, "media", "manifest.json", blobstore.IfNoneMatch(manifestETag))
	if errors.Is(err, blobstore.ErrNotModified) {
		log.Println("Manifest unchanged; skipping download")
	} else if err != nil {
		return fmt.Errorf("conditional read failed: %w", err)
	}

	// 8. Range read of the first bytes of a blob
	head, err := store.GetBlob(ctx, "media", "photos/readme.txt", blobstore.WithRange(0, 4))
	if err != nil {
		return fmt.Errorf("range read failed: %w", err)
	}
	log.Printf("First bytes of readme: %q", head.Payload)

	// 9. Directory round trip
	if err := store.CreateDirectory(ctx, "media", "archive"); err != nil {
		return fmt.Errorf("failed to create directory: %w", err)
	}
	exists, err := store.DirectoryExists(ctx, "media", "archive")
	if err != nil {
		return fmt.Errorf("failed to check directory: %w", err)
	}
	log.Printf("Directory archive exists: %v", exists)
	if err := store.DeleteDirectory(ctx, "media", "archive"); err != nil {
		return fmt.Errorf("failed to delete directory: %w", err)
	}

	// 10. Clean up the container
	if err := store.ClearContainer(ctx, "media"); err != nil {
		return fmt.Errorf("failed to clear container: %w", err)
	}
	deleted, err := store.DeleteContainerIfEmpty(ctx, "media")
	if err != nil {
		return fmt.Errorf("failed to delete container: %w", err)
	}
	log.Printf("Container deleted: %v", deleted)

	return nil
}
