// package testing contains shared testing utilities
package testing

import (
	"context"
	"errors"
	"io"
	"net/http"
	"os"
	"sync"
	"testing"

	"github.com/desertthunder/listmerge/internal/models"
)

// MockSource is a test double for [services.Source].
//
// Each call to FetchLists consumes the next entry of Results; the last entry repeats.
type MockSource struct {
	Results []MockResult

	mu    sync.Mutex
	calls int
}

// MockResult is one canned FetchLists outcome.
type MockResult struct {
	Records []models.Record
	Err     error
}

// NewMockSource returns a source that always yields records.
func NewMockSource(records ...models.Record) *MockSource {
	return &MockSource{Results: []MockResult{{Records: records}}}
}

func (m *MockSource) FetchLists(ctx context.Context) ([]models.Record, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if len(m.Results) == 0 {
		return nil, nil
	}
	idx := min(m.calls, len(m.Results)-1)
	m.calls++
	return m.Results[idx].Records, m.Results[idx].Err
}

func (m *MockSource) Name() string { return "mock" }

// Calls returns how many times FetchLists ran.
func (m *MockSource) Calls() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.calls
}

// Record builds a [models.Record] in list n.
func Record(id, name string, n int) models.Record {
	return models.NewRecord(models.Item{ID: models.ItemID(id), Name: name, Description: name + " description"}, n)
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
	LastReq  *http.Request
}

func NewMockRoundTripper(r *http.Response, e error) *MockRoundTripper {
	return &MockRoundTripper{response: r, err: e}
}

func (m *MockRoundTripper) RoundTrip(req *http.Request) (*http.Response, error) {
	m.LastReq = req
	return m.response, m.err
}

// FCloser simulates a failure when reading response body
type FCloser struct{}

func (f *FCloser) Read(p []byte) (n int, err error) {
	return 0, errors.New("read failed")
}

func (f *FCloser) Close() error {
	return nil
}

func AssertFileExists(t *testing.T, path string) {
	t.Helper()
	if _, err := os.Stat(path); os.IsNotExist(err) {
		t.Errorf("File does not exist: %s", path)
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
