package tui

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"strings"

	"github.com/bstn-hfmn/rustman/internal/executor"
	"github.com/bstn-hfmn/rustman/internal/types"
	tea "github.com/charmbracelet/bubbletea"
)

var knownMethods = map[string]bool{
	http.MethodGet:     true,
	http.MethodPost:    true,
	http.MethodPut:     true,
	http.MethodPatch:   true,
	http.MethodDelete:  true,
	http.MethodHead:    true,
	http.MethodOptions: true,
}

// parseRequestLine splits an optional leading method off the URL bar text.
// "post example.com" yields ("POST", "example.com"); a bare URL yields ("", url).
func parseRequestLine(text string) (method, target string) {
	text = strings.TrimSpace(text)
	fields := strings.Fields(text)
	if len(fields) >= 2 && knownMethods[strings.ToUpper(fields[0])] {
		return strings.ToUpper(fields[0]), strings.TrimSpace(text[len(fields[0]):])
	}
	return "", text
}

// formatRequestLine is the inverse of parseRequestLine; GET is left implicit
func formatRequestLine(method, target string) string {
	if method == "" || method == http.MethodGet {
		return target
	}
	return method + " " + target
}

// buildRequest assembles a request from the URL bar and the request pane
func (m *Model) buildRequest() (*types.Request, error) {
	method, target := parseRequestLine(m.urlField.Text())
	if target == "" {
		return nil, fmt.Errorf("URL is empty")
	}

	req := types.NewRequest()
	req.URL = target
	req.Body = m.requestField.Text()

	switch {
	case method != "":
		req.Method = method
	case req.Body != "":
		req.Method = http.MethodPost
	default:
		req.Method = http.MethodGet
	}

	if req.Body != "" {
		req.SetHeader("Content-Type", "application/json")
	}
	if ua := m.settings.Request.UserAgent; ua != "" {
		req.SetHeader("User-Agent", ua)
	}

	return req, nil
}

// sendRequest executes the request in the background. A request still in
// flight is cancelled and its result dropped.
func (m *Model) sendRequest() tea.Cmd {
	req, err := m.buildRequest()
	if err != nil {
		m.setError(err.Error())
		return nil
	}

	if m.requestCancelFunc != nil {
		m.requestCancelFunc()
	}
	ctx, cancel := context.WithCancel(context.Background())
	m.requestCancelFunc = cancel
	m.requestSeq++
	seq := m.requestSeq

	m.currentRequest = req
	m.loading = true
	m.errorMsg = ""
	m.statusMsg = fmt.Sprintf("Sending %s %s", req.Method, req.URL)

	timeout := m.settings.Request.Timeout
	manager := m.historyManager

	execute := func() tea.Msg {
		log.Printf("request: %s %s", req.Method, req.URL)
		resp, err := executor.Execute(ctx, req, timeout)
		if err != nil {
			return requestFailedMsg{seq: seq, err: err}
		}
		if ctx.Err() != nil {
			return requestExecutedMsg{seq: seq, response: resp}
		}

		saved := false
		if manager != nil {
			if err := manager.Save(req, resp); err != nil {
				log.Printf("history: %v", err)
			} else {
				saved = true
			}
		}
		return requestExecutedMsg{seq: seq, response: resp, saved: saved}
	}

	return tea.Batch(execute, m.spinner.Tick)
}

// loadHistory reads stored entries in the background
func (m *Model) loadHistory() tea.Cmd {
	manager := m.historyManager
	limit := m.settings.History.Limit

	return func() tea.Msg {
		if manager == nil {
			return historyLoadedMsg{entries: []types.HistoryEntry{}}
		}
		entries, err := manager.Load(limit)
		if err != nil {
			return errorMsg(fmt.Sprintf("Failed to load history: %v", err))
		}
		return historyLoadedMsg{entries: entries}
	}
}

func (m *Model) clearHistory() tea.Cmd {
	manager := m.historyManager

	return func() tea.Msg {
		if manager != nil {
			if err := manager.Clear(); err != nil {
				return errorMsg(fmt.Sprintf("Failed to clear history: %v", err))
			}
		}
		return historyClearedMsg{}
	}
}

// deleteHistoryEntry removes the selected entry from the store
func (m *Model) deleteHistoryEntry() tea.Cmd {
	entry := m.historyState.GetCurrentEntry()
	if entry == nil {
		return nil
	}
	id := entry.ID
	index := m.historyState.GetIndex()
	manager := m.historyManager

	return func() tea.Msg {
		if manager != nil {
			if err := manager.Delete(id); err != nil {
				return errorMsg(fmt.Sprintf("Failed to delete history entry: %v", err))
			}
		}
		return historyDeletedMsg{id: id, index: index}
	}
}

// recallHistoryEntry copies the selected entry into the URL bar, the request
// pane and the response pane
func (m *Model) recallHistoryEntry() {
	entry := m.historyState.GetCurrentEntry()
	if entry == nil {
		return
	}

	m.urlField.SetText(formatRequestLine(entry.Method, entry.URL))
	m.requestField.SetText(entry.Body)

	m.currentRequest = &types.Request{
		Method:  entry.Method,
		URL:     entry.URL,
		Headers: entry.Headers,
		Body:    entry.Body,
	}
	m.currentResponse = &types.Response{
		Time:       entry.Duration,
		Status:     entry.ResponseStatus,
		StatusText: entry.ResponseStatusText,
		Size:       entry.ResponseSize,
		Body:       entry.ResponseBody,
		Headers:    entry.ResponseHeaders,
		Error:      entry.Error,
	}
	m.updateResponseView()

	m.errorMsg = ""
	m.statusMsg = fmt.Sprintf("Loaded history entry from %s", entry.Timestamp.Local().Format("2006-01-02 15:04:05"))
}
