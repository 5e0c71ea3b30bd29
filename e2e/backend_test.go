//go:build e2e && unix

package main

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
)

type product struct {
	ID       string `json:"id"`
	Marka    string `json:"marka"`
	Kod      string `json:"kod,omitempty"`
	Aciklama string `json:"aciklama"`
	Fiyat    string `json:"fiyat"`
}

type searchResult struct {
	Product        product `json:"product"`
	RelevanceScore float64 `json:"relevance_score"`
}

// fakeBackend is an in-process catalog service
type fakeBackend struct {
	*httptest.Server

	mu       sync.Mutex
	count    int
	results  map[string][]searchResult
	uploads  []string
	searches []string
	clears   int
}

func newFakeBackend(t *testing.T, count int) *fakeBackend {
	t.Helper()
	b := &fakeBackend{count: count, results: map[string][]searchResult{}}

	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/search", b.search)
	mux.HandleFunc("POST /api/upload", b.upload)
	mux.HandleFunc("GET /api/products/count", b.countHandler)
	mux.HandleFunc("DELETE /api/products", b.clear)

	b.Server = httptest.NewServer(mux)
	t.Cleanup(b.Close)
	return b
}

func (b *fakeBackend) setResults(query string, results ...searchResult) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.results[query] = results
}

func (b *fakeBackend) search(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query().Get("q")

	b.mu.Lock()
	b.searches = append(b.searches, q)
	results := b.results[q]
	b.mu.Unlock()

	if results == nil {
		results = []searchResult{}
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"results":     results,
		"total_count": len(results),
		"query":       q,
	})
}

func (b *fakeBackend) upload(w http.ResponseWriter, r *http.Request) {
	file, header, err := r.FormFile("file")
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"detail": "missing file"})
		return
	}
	defer file.Close()
	data, _ := io.ReadAll(file)

	if strings.Contains(string(data), "broken") {
		writeJSON(w, http.StatusBadRequest, map[string]string{"detail": "Excel file could not be read"})
		return
	}

	b.mu.Lock()
	b.uploads = append(b.uploads, header.Filename)
	b.count = 1500
	b.mu.Unlock()

	writeJSON(w, http.StatusOK, map[string]any{
		"message":        "1500 products uploaded",
		"products_count": 1500,
	})
}

func (b *fakeBackend) countHandler(w http.ResponseWriter, r *http.Request) {
	b.mu.Lock()
	n := b.count
	b.mu.Unlock()
	writeJSON(w, http.StatusOK, map[string]int{"count": n})
}

func (b *fakeBackend) clear(w http.ResponseWriter, r *http.Request) {
	b.mu.Lock()
	b.count = 0
	b.clears++
	b.mu.Unlock()
	writeJSON(w, http.StatusOK, map[string]string{"message": "All products deleted"})
}

func (b *fakeBackend) Uploads() []string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return append([]string(nil), b.uploads...)
}

func (b *fakeBackend) Searches() []string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return append([]string(nil), b.searches...)
}

func (b *fakeBackend) Clears() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.clears
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
