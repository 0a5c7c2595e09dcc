// Package uploads implements listing photo storage: concurrent multi-file
// upload to blob storage and bulk removal by public URL.
package uploads

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"net/http"
	"path/filepath"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	"becsus/pkg/storage"
)

// uploadConcurrency bounds parallel blob uploads per request.
const uploadConcurrency = 4

var allowedTypes = map[string]bool{
	"image/jpeg": true,
	"image/jpg":  true,
	"image/png":  true,
	"image/webp": true,
	"image/gif":  true,
}

// File is a single photo received from a multipart form.
type File struct {
	Name        string
	ContentType string
	Data        []byte
}

// RemoveResult reports the outcome of one URL in a bulk removal.
type RemoveResult struct {
	URL     string `json:"url"`
	Success bool   `json:"success"`
	Error   string `json:"error,omitempty"`
}

// RemoveSummary aggregates a bulk removal. URLs outside managed storage are
// counted as skipped rather than failed.
type RemoveSummary struct {
	Deleted int            `json:"deleted"`
	Failed  int            `json:"failed"`
	Skipped int            `json:"skipped"`
	Results []RemoveResult `json:"results"`
}

// System defines the public contract for photo upload operations.
type System interface {
	Handler(guard func(http.HandlerFunc) http.HandlerFunc, maxUploadSize int64) *Handler

	Upload(ctx context.Context, files []File) ([]string, error)
	Remove(ctx context.Context, urls []string) *RemoveSummary
}

type system struct {
	storage     storage.System
	logger      *slog.Logger
	maxFileSize int64
}

// New creates an upload system backed by the given blob storage.
func New(store storage.System, logger *slog.Logger, maxFileSize int64) System {
	return &system{
		storage:     store,
		logger:      logger.With("system", "uploads"),
		maxFileSize: maxFileSize,
	}
}

func (s *system) Handler(guard func(http.HandlerFunc) http.HandlerFunc, maxUploadSize int64) *Handler {
	return NewHandler(s, s.logger, guard, maxUploadSize)
}

// Upload validates every file before storing any, then uploads concurrently.
// Returned URLs preserve input order.
func (s *system) Upload(ctx context.Context, files []File) ([]string, error) {
	if len(files) == 0 {
		return nil, ErrNoFiles
	}

	for _, f := range files {
		if int64(len(f.Data)) > s.maxFileSize {
			return nil, fmt.Errorf("%w: %s", ErrFileTooLarge, f.Name)
		}
		if !allowedTypes[f.ContentType] {
			return nil, fmt.Errorf("%w: %s (%s)", ErrUnsupportedType, f.Name, f.ContentType)
		}
	}

	urls := make([]string, len(files))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(uploadConcurrency)

	for i, f := range files {
		g.Go(func() error {
			key := buildKey(f.Name)
			if err := s.storage.Upload(gctx, key, bytes.NewReader(f.Data), f.ContentType); err != nil {
				return fmt.Errorf("upload %s: %w", f.Name, err)
			}
			urls[i] = s.storage.URL(key)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	s.logger.Info("photos uploaded", "count", len(urls))
	return urls, nil
}

// Remove deletes blobs referenced by the given URLs. Foreign URLs are
// skipped; individual delete failures do not abort the batch.
func (s *system) Remove(ctx context.Context, urls []string) *RemoveSummary {
	summary := &RemoveSummary{
		Results: make([]RemoveResult, 0, len(urls)),
	}

	for _, url := range urls {
		key, err := s.storage.KeyFromURL(url)
		if err != nil {
			summary.Skipped++
			continue
		}

		if err := s.storage.Delete(ctx, key); err != nil {
			s.logger.Warn("photo delete failed", "key", key, "error", err)
			summary.Failed++
			summary.Results = append(summary.Results, RemoveResult{
				URL:   url,
				Error: err.Error(),
			})
			continue
		}

		summary.Deleted++
		summary.Results = append(summary.Results, RemoveResult{
			URL:     url,
			Success: true,
		})
	}

	s.logger.Info("photos removed",
		"deleted", summary.Deleted,
		"failed", summary.Failed,
		"skipped", summary.Skipped,
	)
	return summary
}

const keyAlphabet = "abcdefghijklmnopqrstuvwxyz0123456789"

// buildKey generates a unique storage key preserving the original extension.
func buildKey(filename string) string {
	suffix := make([]byte, 13)
	for i := range suffix {
		suffix[i] = keyAlphabet[rand.IntN(len(keyAlphabet))]
	}

	ext := strings.ToLower(filepath.Ext(filename))
	if ext == "" {
		ext = ".jpg"
	}

	return fmt.Sprintf("listings/%d-%s%s", time.Now().UnixMilli(), suffix, ext)
}
