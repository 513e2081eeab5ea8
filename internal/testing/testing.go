// package testing contains shared testing utilities
package testing

import (
	"context"
	"errors"
	"io"
	"net/http"
	"os"
	"testing"

	"github.com/desertthunder/spotdl/internal/models"
	"github.com/desertthunder/spotdl/internal/services"
)

// MockSearcher is a test double for [services.SearchClient].
//
// When Func is set it decides the response per query; otherwise Doc/Err are
// returned for every call. Queries records every query issued.
type MockSearcher struct {
	Func    func(query string) (*services.SearchResult, error)
	Doc     *services.SearchResult
	Err     error
	Queries []string
}

func (m *MockSearcher) Search(ctx context.Context, query string) (*services.SearchResult, error) {
	m.Queries = append(m.Queries, query)
	if m.Func != nil {
		return m.Func(query)
	}
	return m.Doc, m.Err
}

// MockPlaylistService is a test double for [services.PlaylistService].
type MockPlaylistService struct {
	Tracks []models.Track
	Err    error
}

func (m *MockPlaylistService) FetchPlaylist(ctx context.Context, idOrURL string) ([]models.Track, error) {
	return m.Tracks, m.Err
}

func (m *MockPlaylistService) Name() string { return "mock" }

// MockDispatcher records download dispatch calls.
type MockDispatcher struct {
	Calls [][]string
	Dirs  []string
	Err   error
}

func (m *MockDispatcher) Dispatch(ctx context.Context, urls []string, dir string) error {
	m.Calls = append(m.Calls, urls)
	m.Dirs = append(m.Dirs, dir)
	return m.Err
}

// FWriter always returns an error on Write
type FWriter struct{}

func (f *FWriter) Write(p []byte) (n int, err error) {
	return 0, errors.New("write failed")
}

// LimitedWriter fails after a certain number of writes
type LimitedWriter struct {
	maxWrites int
	written   int
	target    io.Writer
}

func (l *LimitedWriter) Write(p []byte) (n int, err error) {
	if l.written >= l.maxWrites {
		return 0, errors.New("write limit exceeded")
	}
	l.written++
	return l.target.Write(p)
}

func NewLimitedWriter(maxWrites, written int, target io.Writer) LimitedWriter {
	return LimitedWriter{maxWrites: maxWrites, written: written, target: target}
}

// MockRoundTripper allows custom HTTP responses for testing
type MockRoundTripper struct {
	response *http.Response
	err      error
}

func NewMockRoundTripper(r *http.Response, e error) *MockRoundTripper {
	return &MockRoundTripper{response: r, err: e}
}

func (m *MockRoundTripper) RoundTrip(*http.Request) (*http.Response, error) {
	return m.response, m.err
}

func AssertFileExists(t *testing.T, path string) {
	t.Helper()
	if _, err := os.Stat(path); os.IsNotExist(err) {
		t.Errorf("File does not exist: %s", path)
	}
}

func AssertDirExists(t *testing.T, path string) {
	t.Helper()
	info, err := os.Stat(path)
	if os.IsNotExist(err) {
		t.Errorf("Directory does not exist: %s", path)
		return
	}
	if !info.IsDir() {
		t.Errorf("Path is not a directory: %s", path)
	}
}

func MustReadFile(t *testing.T, path string) string {
	t.Helper()
	content, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Failed to read file %s: %v", path, err)
	}
	return string(content)
}
