package tui

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/bstn-hfmn/rustman/internal/focus"
	"github.com/bstn-hfmn/rustman/internal/types"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// collectMsgs runs cmd and any batched commands, returning their messages
func collectMsgs(cmd tea.Cmd) []tea.Msg {
	if cmd == nil {
		return nil
	}
	msg := cmd()
	if batch, ok := msg.(tea.BatchMsg); ok {
		var msgs []tea.Msg
		for _, c := range batch {
			msgs = append(msgs, collectMsgs(c)...)
		}
		return msgs
	}
	return []tea.Msg{msg}
}

func findMsg[T tea.Msg](t *testing.T, msgs []tea.Msg) T {
	t.Helper()
	for _, msg := range msgs {
		if typed, ok := msg.(T); ok {
			return typed
		}
	}
	var zero T
	t.Fatalf("no %T among %d messages", zero, len(msgs))
	return zero
}

func TestNew_InitializesDefaultState(t *testing.T) {
	m := CreateTestModel(t)

	AssertModelField(t, "mode", m.mode, ModeNavigate)
	AssertModelField(t, "selected", m.grid.Selected(), focus.History)
	AssertModelField(t, "url text", m.urlField.Text(), "")
	AssertModelField(t, "request text", m.requestField.Text(), "")
	AssertModelField(t, "url focused", m.urlField.Focused(), false)
	AssertModelField(t, "loading", m.loading, false)

	if m.currentResponse != nil {
		t.Error("currentResponse should be nil")
	}
	if m.keybinds == nil {
		t.Error("keybinds should not be nil")
	}
}

func TestModel_ViewBeforeResize(t *testing.T) {
	m := New(nil, nil, nil)
	if got := m.View(); got != "Initializing..." {
		t.Errorf("View() = %q", got)
	}
}

func TestModel_ViewShowsPanes(t *testing.T) {
	m := CreateTestModel(t)

	out := stripANSI(m.View())
	for _, want := range []string{"URL", "Request", "Response", "History", "NAVIGATE", "No response yet"} {
		if !strings.Contains(out, want) {
			t.Errorf("View() missing %q", want)
		}
	}

	lines := strings.Split(out, "\n")
	if len(lines) != 40 {
		t.Errorf("View() has %d lines, want 40", len(lines))
	}
}

func TestModel_InitLoadsHistory(t *testing.T) {
	m := CreateTestModel(t)

	msgs := collectMsgs(m.Init())
	loaded := findMsg[historyLoadedMsg](t, msgs)
	if len(loaded.entries) != 0 {
		t.Errorf("expected no entries without a history manager, got %d", len(loaded.entries))
	}
}

func TestModel_SendRequest(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Errorf("method = %s, want POST", r.Method)
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"ok":true}`))
	}))
	defer server.Close()

	m, _ := CreateTestModelWithHistory(t)

	m.grid.Move(focus.Right)
	pressKey(m, "e")
	typeString(m, `{"a":1}`)
	m.urlField.SetText(server.URL)

	cmd := pressKey(m, "enter")
	AssertModelField(t, "loading", m.loading, true)

	executed := findMsg[requestExecutedMsg](t, collectMsgs(cmd))
	if !executed.saved {
		t.Error("expected the request to be saved to history")
	}

	_, cmd = m.Update(executed)
	AssertModelField(t, "loading", m.loading, false)
	if m.currentResponse == nil || m.currentResponse.Status != http.StatusOK {
		t.Fatalf("unexpected response: %+v", m.currentResponse)
	}
	if m.errorMsg != "" {
		t.Errorf("unexpected error: %s", m.errorMsg)
	}
	if !strings.Contains(stripANSI(m.responseView.View()), `"ok"`) {
		t.Error("response body not rendered in viewport")
	}

	loaded := findMsg[historyLoadedMsg](t, collectMsgs(cmd))
	m.Update(loaded)
	AssertModelField(t, "history entries", m.historyState.Len(), 1)
	AssertModelField(t, "history method", m.historyState.GetCurrentEntry().Method, "POST")
}

func TestModel_SendRequestEmptyURL(t *testing.T) {
	m := CreateTestModel(t)
	m.grid.Move(focus.Right)
	m.grid.Move(focus.Up)
	pressKey(m, "e")

	cmd := pressKey(m, "enter")
	if cmd != nil {
		t.Error("expected no command for an empty URL")
	}
	AssertModelField(t, "errorMsg", m.errorMsg, "URL is empty")
	AssertModelField(t, "loading", m.loading, false)
}

func TestModel_StaleResponseDropped(t *testing.T) {
	m := CreateTestModel(t)
	m.requestSeq = 2
	m.loading = true

	m.Update(requestExecutedMsg{seq: 1, response: &types.Response{Status: 500}})

	if m.currentResponse != nil {
		t.Error("stale response should be ignored")
	}
	AssertModelField(t, "loading", m.loading, true)
}

func TestModel_TransportErrorShownInFooter(t *testing.T) {
	m := CreateTestModel(t)
	m.requestSeq = 1
	m.loading = true

	m.Update(requestExecutedMsg{seq: 1, response: &types.Response{
		Error:   "dial tcp 127.0.0.1:1: connect: connection refused",
		Headers: map[string]string{},
	}})

	AssertModelField(t, "errorMsg", m.errorMsg, "Connection refused - is the server running on that port?")
	if !strings.Contains(stripANSI(m.View()), "Connection refused") {
		t.Error("error not rendered in status bar")
	}
}

func TestModel_ErrorMsgTruncated(t *testing.T) {
	m := CreateTestModel(t)
	m.Update(errorMsg(strings.Repeat("x", 150)))

	if len(m.errorMsg) != 100 || !strings.HasSuffix(m.errorMsg, "...") {
		t.Errorf("errorMsg not truncated: %d chars", len(m.errorMsg))
	}
}

func TestModel_ErrorMsgTruncatedOnRuneBoundary(t *testing.T) {
	m := CreateTestModel(t)
	m.Update(errorMsg("DNS lookup failed for " + strings.Repeat("例え.jp ", 30)))

	if !utf8.ValidString(m.errorMsg) {
		t.Errorf("errorMsg split a rune: %q", m.errorMsg)
	}
	if w := lipgloss.Width(m.errorMsg); w > MaxErrorWidth {
		t.Errorf("errorMsg width = %d, want <= %d", w, MaxErrorWidth)
	}
	if !strings.HasSuffix(m.errorMsg, "...") {
		t.Errorf("errorMsg missing ellipsis: %q", m.errorMsg)
	}
}

func TestModel_HistoryCleared(t *testing.T) {
	m := CreateTestModel(t)
	m.Update(historyLoadedMsg{entries: sampleEntries()})
	AssertModelField(t, "entries", m.historyState.Len(), 3)

	m.Update(historyClearedMsg{})
	AssertModelField(t, "entries", m.historyState.Len(), 0)
	AssertModelField(t, "statusMsg", m.statusMsg, "History cleared")
}

func TestParseRequestLine(t *testing.T) {
	tests := []struct {
		text       string
		wantMethod string
		wantTarget string
	}{
		{"example.com", "", "example.com"},
		{"  example.com  ", "", "example.com"},
		{"POST example.com/users", "POST", "example.com/users"},
		{"delete   http://x.test/1", "DELETE", "http://x.test/1"},
		{"GET", "", "GET"},
		{"FETCH example.com", "", "FETCH example.com"},
		{"", "", ""},
	}

	for _, tt := range tests {
		method, target := parseRequestLine(tt.text)
		if method != tt.wantMethod || target != tt.wantTarget {
			t.Errorf("parseRequestLine(%q) = (%q, %q), want (%q, %q)",
				tt.text, method, target, tt.wantMethod, tt.wantTarget)
		}
	}
}

func TestFormatRequestLine(t *testing.T) {
	if got := formatRequestLine("GET", "a.test"); got != "a.test" {
		t.Errorf("GET should stay implicit, got %q", got)
	}
	if got := formatRequestLine("PUT", "a.test"); got != "PUT a.test" {
		t.Errorf("got %q", got)
	}
}

func TestBuildRequest_MethodInference(t *testing.T) {
	tests := []struct {
		name       string
		url        string
		body       string
		wantMethod string
	}{
		{"bare URL is GET", "a.test", "", "GET"},
		{"body implies POST", "a.test", "{}", "POST"},
		{"explicit method wins", "PATCH a.test", "{}", "PATCH"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := CreateTestModel(t)
			m.urlField.SetText(tt.url)
			m.requestField.SetText(tt.body)

			req, err := m.buildRequest()
			AssertNoError(t, err)
			AssertModelField(t, "method", req.Method, tt.wantMethod)
			AssertModelField(t, "url", req.URL, "a.test")
			AssertModelField(t, "user agent", req.Headers["User-Agent"], types.DefaultUserAgent)
		})
	}
}

func TestBuildRequest_ConfiguredUserAgentReplacesDefault(t *testing.T) {
	m := CreateTestModel(t)
	m.settings.Request.UserAgent = "Custom/2"
	m.urlField.SetText("a.test")
	m.requestField.SetText(`{"a":1}`)

	req, err := m.buildRequest()
	AssertNoError(t, err)
	AssertModelField(t, "user agent", req.Headers["User-Agent"], "Custom/2")
	AssertModelField(t, "content type", req.Headers["Content-Type"], "application/json")

	count := 0
	for key := range req.Headers {
		if strings.EqualFold(key, "User-Agent") {
			count++
		}
	}
	AssertModelField(t, "user agent keys", count, 1)
}
