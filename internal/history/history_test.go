package history

import (
	"path/filepath"
	"testing"

	"github.com/bstn-hfmn/rustman/internal/types"
)

func newTestManager(t *testing.T) *Manager {
	t.Helper()
	m, err := NewManager(filepath.Join(t.TempDir(), "nested", "history.db"))
	if err != nil {
		t.Fatalf("NewManager: %v", err)
	}
	t.Cleanup(func() { m.Close() })
	return m
}

func saveEntry(t *testing.T, m *Manager, url string, status int) {
	t.Helper()
	req := types.NewRequest()
	req.URL = url
	resp := &types.Response{
		Status:     status,
		StatusText: "200 OK",
		Body:       `{"ok":true}`,
		Headers:    map[string]string{"Content-Type": "application/json"},
		Time:       12,
		Size:       11,
	}
	if err := m.Save(req, resp); err != nil {
		t.Fatalf("Save: %v", err)
	}
}

func TestManager_SaveAndLoad(t *testing.T) {
	m := newTestManager(t)
	saveEntry(t, m, "http://one.test", 200)
	saveEntry(t, m, "http://two.test", 404)

	entries, err := m.Load(0)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(entries))
	}

	newest := entries[0]
	if newest.URL != "http://two.test" {
		t.Errorf("newest URL = %s, want http://two.test", newest.URL)
	}
	if newest.ResponseStatus != 404 {
		t.Errorf("status = %d", newest.ResponseStatus)
	}
	if newest.Headers["User-Agent"] != types.DefaultUserAgent {
		t.Errorf("headers not round-tripped: %v", newest.Headers)
	}
	if newest.ResponseHeaders["Content-Type"] != "application/json" {
		t.Errorf("response headers not round-tripped: %v", newest.ResponseHeaders)
	}
	if newest.Duration != 12 || newest.ResponseSize != 11 {
		t.Errorf("duration/size = %d/%d", newest.Duration, newest.ResponseSize)
	}
	if newest.Timestamp.IsZero() {
		t.Error("timestamp not parsed")
	}
}

func TestManager_LoadLimit(t *testing.T) {
	m := newTestManager(t)
	for _, u := range []string{"http://a.test", "http://b.test", "http://c.test"} {
		saveEntry(t, m, u, 200)
	}

	entries, err := m.Load(2)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(entries) != 2 {
		t.Errorf("expected 2 entries, got %d", len(entries))
	}
}

func TestManager_ClearDeleteCount(t *testing.T) {
	m := newTestManager(t)
	saveEntry(t, m, "http://a.test", 200)
	saveEntry(t, m, "http://b.test", 200)

	entries, _ := m.Load(0)
	if err := m.Delete(entries[0].ID); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if n, _ := m.Count(); n != 1 {
		t.Errorf("count after delete = %d, want 1", n)
	}

	if err := m.Clear(); err != nil {
		t.Fatalf("Clear: %v", err)
	}
	if n, _ := m.Count(); n != 0 {
		t.Errorf("count after clear = %d, want 0", n)
	}
}

func TestManager_ReopenKeepsEntries(t *testing.T) {
	path := filepath.Join(t.TempDir(), "history.db")
	m, err := NewManager(path)
	if err != nil {
		t.Fatal(err)
	}
	saveEntry(t, m, "http://persist.test", 200)
	m.Close()

	m2, err := NewManager(path)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	defer m2.Close()

	if n, _ := m2.Count(); n != 1 {
		t.Errorf("count after reopen = %d, want 1", n)
	}
}

func TestFilter(t *testing.T) {
	entries := []types.HistoryEntry{
		{Method: "GET", URL: "http://api.test/users"},
		{Method: "POST", URL: "http://api.test/orders"},
		{Method: "GET", URL: "http://other.test/health"},
	}

	if got := Filter(entries, ""); len(got) != 3 {
		t.Errorf("empty query returned %d entries", len(got))
	}

	got := Filter(entries, "orders")
	if len(got) != 1 || got[0].Method != "POST" {
		t.Errorf("Filter(orders) = %+v", got)
	}

	if got := Filter(entries, "zzzz"); len(got) != 0 {
		t.Errorf("expected no matches, got %d", len(got))
	}
}
