// Package catalogtest provides an in-memory catalog.Backend for tests.
package catalogtest

import (
	"context"
	"io"
	"sync"

	"excelsearch/internal/domain"
)

// Upload is a recorded upload call
type Upload struct {
	FileName string
	Content  []byte
}

// Backend is a scriptable catalog.Backend. Zero value answers every search
// with no results and every count with zero.
type Backend struct {
	mu sync.Mutex

	SearchFunc func(query string) (*domain.SearchResponse, error)
	UploadFunc func(fileName string, content []byte) (*domain.UploadResponse, error)
	CountFunc  func() (int, error)
	ClearFunc  func() (*domain.ClearResponse, error)

	searches []string
	uploads  []Upload
	counts   int
	clears   int
}

func (b *Backend) Search(ctx context.Context, query string) (*domain.SearchResponse, error) {
	b.mu.Lock()
	b.searches = append(b.searches, query)
	fn := b.SearchFunc
	b.mu.Unlock()

	if fn == nil {
		return &domain.SearchResponse{Results: []domain.SearchResult{}, Query: query}, nil
	}
	return fn(query)
}

func (b *Backend) Upload(ctx context.Context, fileName string, content io.Reader) (*domain.UploadResponse, error) {
	data, err := io.ReadAll(content)
	if err != nil {
		return nil, err
	}

	b.mu.Lock()
	b.uploads = append(b.uploads, Upload{FileName: fileName, Content: data})
	fn := b.UploadFunc
	b.mu.Unlock()

	if fn == nil {
		return &domain.UploadResponse{Message: "ok"}, nil
	}
	return fn(fileName, data)
}

func (b *Backend) Count(ctx context.Context) (int, error) {
	b.mu.Lock()
	b.counts++
	fn := b.CountFunc
	b.mu.Unlock()

	if fn == nil {
		return 0, nil
	}
	return fn()
}

func (b *Backend) Clear(ctx context.Context) (*domain.ClearResponse, error) {
	b.mu.Lock()
	b.clears++
	fn := b.ClearFunc
	b.mu.Unlock()

	if fn == nil {
		return &domain.ClearResponse{Message: "cleared"}, nil
	}
	return fn()
}

// Searches returns the queries received so far
func (b *Backend) Searches() []string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return append([]string(nil), b.searches...)
}

// Uploads returns the uploads received so far
func (b *Backend) Uploads() []Upload {
	b.mu.Lock()
	defer b.mu.Unlock()
	return append([]Upload(nil), b.uploads...)
}

// Counts returns the number of count requests
func (b *Backend) Counts() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.counts
}

// Clears returns the number of wipe requests
func (b *Backend) Clears() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.clears
}

// Calls returns the total number of requests of any kind
func (b *Backend) Calls() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.searches) + len(b.uploads) + b.counts + b.clears
}
