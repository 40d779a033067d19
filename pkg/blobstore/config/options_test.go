package config

import (
	"context"
	"log/slog"
	"testing"

	"github.com/tendant/simple-blobstore/pkg/blobstore"
	"github.com/tendant/simple-blobstore/pkg/blobstore/memory"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.DefaultLocation != memory.DefaultLocation {
		t.Errorf("expected default location %q, got %q", memory.DefaultLocation, cfg.DefaultLocation)
	}
	if cfg.URIScheme != blobstore.DefaultURIScheme {
		t.Errorf("expected URI scheme %q, got %q", blobstore.DefaultURIScheme, cfg.URIScheme)
	}
	if cfg.ListMaxResults != blobstore.DefaultMaxResults {
		t.Errorf("expected list max results %d, got %d", blobstore.DefaultMaxResults, cfg.ListMaxResults)
	}
	if cfg.LogLevel != "info" {
		t.Errorf("expected log level 'info', got %q", cfg.LogLevel)
	}
}

func TestProgrammaticOptions(t *testing.T) {
	cfg, err := Load(
		WithDefaultLocation("ephemeral"),
		WithURIScheme("test"),
		WithListMaxResults(10),
		WithLogLevel("warn"),
	)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.DefaultLocation != "ephemeral" {
		t.Errorf("expected default location 'ephemeral', got %q", cfg.DefaultLocation)
	}
	if cfg.URIScheme != "test" {
		t.Errorf("expected URI scheme 'test', got %q", cfg.URIScheme)
	}
	if cfg.ListMaxResults != 10 {
		t.Errorf("expected list max results 10, got %d", cfg.ListMaxResults)
	}
	if cfg.LogLevel != "warn" {
		t.Errorf("expected log level 'warn', got %q", cfg.LogLevel)
	}
}

func TestOptionValidation(t *testing.T) {
	tests := []struct {
		name string
		opt  Option
	}{
		{"empty default location", WithDefaultLocation("")},
		{"empty URI scheme", WithURIScheme("")},
		{"zero list max results", WithListMaxResults(0)},
		{"negative list max results", WithListMaxResults(-5)},
		{"unknown log level", WithLogLevel("loud")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Load(tt.opt); err == nil {
				t.Error("expected error, got nil")
			}
		})
	}
}

func TestLevel(t *testing.T) {
	tests := []struct {
		level string
		want  slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"info", slog.LevelInfo},
		{"warn", slog.LevelWarn},
		{"error", slog.LevelError},
	}

	for _, tt := range tests {
		t.Run(tt.level, func(t *testing.T) {
			cfg, err := Load(WithLogLevel(tt.level))
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got := cfg.Level(); got != tt.want {
				t.Errorf("Level() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestBuildStore(t *testing.T) {
	ctx := context.Background()

	cfg, err := Load(
		WithDefaultLocation("staging"),
		WithURIScheme("test"),
		WithListMaxResults(2),
	)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	store := cfg.BuildStore(memory.WithLogger(slog.New(slog.DiscardHandler)))
	if store == nil {
		t.Fatal("BuildStore returned nil")
	}

	if _, err := store.CreateContainer(ctx, "docs"); err != nil {
		t.Fatalf("CreateContainer failed: %v", err)
	}
	for _, key := range []string{"a", "b", "c"} {
		_, err := store.PutBlob(ctx, "docs", blobstore.PutBlobRequest{
			Key:     key,
			Payload: blobstore.StringPayload(key),
		})
		if err != nil {
			t.Fatalf("PutBlob(%q) failed: %v", key, err)
		}
	}

	// The configured scheme shows up in blob URIs.
	md, err := store.GetBlobMetadata(ctx, "docs", "a")
	if err != nil {
		t.Fatalf("GetBlobMetadata failed: %v", err)
	}
	if md.URI != "test://docs/a" {
		t.Errorf("expected URI 'test://docs/a', got %q", md.URI)
	}

	// The configured page cap drives listing defaults.
	page, err := store.ListBlobs(ctx, "docs")
	if err != nil {
		t.Fatalf("ListBlobs failed: %v", err)
	}
	if len(page.Entries) != 2 || page.NextMarker != "b" {
		t.Errorf("expected 2 entries with marker 'b', got %d entries with marker %q",
			len(page.Entries), page.NextMarker)
	}

	// The configured location lands on new containers.
	containers, err := store.ListContainers(ctx)
	if err != nil {
		t.Fatalf("ListContainers failed: %v", err)
	}
	if len(containers.Entries) != 1 || containers.Entries[0].Location != "staging" {
		t.Errorf("expected one container in 'staging', got %+v", containers.Entries)
	}
}
