package tui

import (
	"fmt"
	"sort"
	"strings"

	"github.com/bstn-hfmn/rustman/internal/executor"
	"github.com/bstn-hfmn/rustman/internal/focus"
	"github.com/bstn-hfmn/rustman/internal/keybinds"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// Adaptive color definitions for light/dark terminal support
var (
	colorGreen  = lipgloss.AdaptiveColor{Light: "#006400", Dark: "#00ff00"}
	colorRed    = lipgloss.AdaptiveColor{Light: "#8b0000", Dark: "#ff0000"}
	colorYellow = lipgloss.AdaptiveColor{Light: "#b8860b", Dark: "#ffff00"}
	colorGray   = lipgloss.AdaptiveColor{Light: "#555555", Dark: "#888888"}
	colorCyan   = lipgloss.AdaptiveColor{Light: "#008b8b", Dark: "#00ffff"}
)

// Style definitions
var (
	styleTitle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorCyan)

	styleSelected = lipgloss.NewStyle().
			Background(lipgloss.AdaptiveColor{Light: "#d3d3d3", Dark: "#3a3a3a"}).
			Foreground(lipgloss.AdaptiveColor{Light: "#000000", Dark: "#ffffff"})

	styleSuccess = lipgloss.NewStyle().
			Foreground(colorGreen)

	styleError = lipgloss.NewStyle().
			Foreground(colorRed)

	styleWarning = lipgloss.NewStyle().
			Foreground(colorYellow)

	styleSubtle = lipgloss.NewStyle().
			Foreground(colorGray)

	styleMode = lipgloss.NewStyle().
			Bold(true).
			Padding(0, 1)
)

// layout holds the pane sizes derived from the terminal size.
// All widths and heights include borders.
type layout struct {
	sidebarWidth  int
	requestWidth  int
	responseWidth int
	bodyHeight    int // everything above the status bar
	paneHeight    int // request and response, below the URL bar
}

func (m *Model) computeLayout() layout {
	l := layout{}

	l.sidebarWidth = max(SidebarMinWidth, m.width*SidebarWidthPercent/100)
	if l.sidebarWidth > m.width/2 {
		l.sidebarWidth = m.width / 2
	}
	rest := m.width - l.sidebarWidth
	l.requestWidth = rest * RequestWidthPercent / 100
	l.responseWidth = rest - l.requestWidth

	l.bodyHeight = max(m.height-StatusBarHeight, URLBarHeight+MinPaneHeight)
	l.paneHeight = l.bodyHeight - URLBarHeight

	return l
}

// borderColor highlights the selected region, yellow while editing it
func (m *Model) borderColor(region focus.Region) lipgloss.TerminalColor {
	if m.grid.Selected() != region {
		return colorGray
	}
	if m.mode == ModeEdit {
		return colorYellow
	}
	return colorGreen
}

// renderMain lays out the History sidebar on the left, the URL bar on top of
// the Request and Response panes, and the status bar
func (m *Model) renderMain() string {
	l := m.computeLayout()

	m.urlField.SetStyle(lipgloss.NewStyle().BorderForeground(m.borderColor(focus.URL)))
	m.requestField.SetStyle(lipgloss.NewStyle().BorderForeground(m.borderColor(focus.Request)))

	sidebar := m.renderHistory(l.sidebarWidth, l.bodyHeight)

	urlBar := m.urlField.View(l.requestWidth+l.responseWidth, URLBarHeight, m.caret)
	request := m.requestField.View(l.requestWidth, l.paneHeight, m.caret)
	response := m.renderResponse(l.responseWidth, l.paneHeight)

	right := lipgloss.JoinVertical(
		lipgloss.Left,
		urlBar,
		lipgloss.JoinHorizontal(lipgloss.Top, request, response),
	)

	mainView := lipgloss.JoinHorizontal(lipgloss.Top, sidebar, right)

	return lipgloss.JoinVertical(
		lipgloss.Left,
		mainView,
		m.renderStatusBar(),
	)
}

// renderHistory renders the sidebar, newest entry first
func (m *Model) renderHistory(width, height int) string {
	inner := width - ViewportBorderWidth
	rows := height - ViewportBorderWidth

	var lines []string
	title := "History"
	if n := m.historyState.Len(); n > 0 {
		title = fmt.Sprintf("History (%d)", n)
	}
	lines = append(lines, styleTitle.Render(title))

	query := m.historyState.GetSearchQuery()
	if m.historyState.GetSearchActive() {
		lines = append(lines, styleWarning.Render("/"+query+"█"))
	} else if query != "" {
		lines = append(lines, styleSubtle.Render("/"+query))
	}

	entries := m.historyState.GetEntries()
	if m.historyManager == nil && len(entries) == 0 {
		lines = append(lines, styleSubtle.Render("History disabled"))
	} else if len(entries) == 0 {
		lines = append(lines, styleSubtle.Render("No requests yet"))
	}

	available := rows - len(lines)
	selected := m.historyState.GetIndex()
	offset := 0
	if selected >= available && available > 0 {
		offset = selected - available + 1
	}

	showSelection := m.mode == ModeEdit && m.grid.Selected() == focus.History
	for i := offset; i < len(entries) && i-offset < available; i++ {
		entry := entries[i]
		line := ansi.Truncate(fmt.Sprintf("%-6s %s", entry.Method, entry.URL), inner, "…")
		switch {
		case showSelection && i == selected:
			line = styleSelected.Render(line)
		case entry.Error != "" || entry.ResponseStatus >= 400:
			line = styleError.Render(line)
		}
		lines = append(lines, line)
	}

	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(m.borderColor(focus.History)).
		Width(inner).
		Height(rows).
		MaxHeight(height).
		Render(strings.Join(lines, "\n"))
}

// renderResponse renders the title row and the scrollable response viewport
func (m *Model) renderResponse(width, height int) string {
	inner := width - ViewportBorderWidth
	rows := height - ViewportBorderWidth

	title := styleTitle.Render("Response")
	if m.loading {
		title += " " + m.spinner.View()
	} else if m.currentResponse != nil && m.currentResponse.Error == "" {
		title += " " + statusStyle(m.currentResponse.Status).Render(fmt.Sprintf("%d", m.currentResponse.Status)) +
			styleSubtle.Render(fmt.Sprintf(" %s %s",
				executor.FormatDuration(m.currentResponse.Time),
				executor.FormatSize(m.currentResponse.Size)))
	}

	var body string
	if m.currentResponse == nil {
		body = styleSubtle.Render("No response yet")
	} else {
		body = m.responseView.View()
	}

	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(m.borderColor(focus.Response)).
		Width(inner).
		Height(rows).
		MaxHeight(height).
		Render(ansi.Truncate(title, inner, "") + "\n" + body)
}

func statusStyle(status int) lipgloss.Style {
	switch {
	case executor.IsSuccessStatus(status):
		return styleSuccess
	case executor.IsClientErrorStatus(status), executor.IsServerErrorStatus(status):
		return styleError
	default:
		return styleWarning
	}
}

// renderStatusBar shows the mode and selected region on the left and the
// status, error or key hint on the right
func (m *Model) renderStatusBar() string {
	modeStyle := styleMode.Foreground(colorGreen)
	if m.mode == ModeEdit {
		modeStyle = styleMode.Foreground(colorYellow)
	}
	left := modeStyle.Render(m.mode.String()) + m.grid.Selected().String()

	var right string
	switch {
	case m.errorMsg != "":
		right = styleError.Render(m.errorMsg)
	case m.statusMsg != "":
		right = m.statusMsg
	default:
		right = styleSubtle.Render(m.keyHint())
	}

	spacing := m.width - lipgloss.Width(left) - lipgloss.Width(right)
	if spacing < 1 {
		spacing = 1
	}

	return ansi.Truncate(left+strings.Repeat(" ", spacing)+right, m.width, "…")
}

// keyHint describes the keys that matter in the current mode and region
func (m *Model) keyHint() string {
	region := m.grid.Selected()
	if m.mode == ModeNavigate {
		return focus.Hint(region) + " | " + m.keybinds.GetBindingString(keybinds.ContextNavigate, keybinds.ActionQuit) + ": quit"
	}

	ctx := editContext(region)
	var hints []string
	for _, action := range hintActions[ctx] {
		hints = append(hints, m.keybinds.GetBindingString(ctx, action)+": "+actionLabels[action])
	}
	return strings.Join(hints, " | ")
}

var hintActions = map[keybinds.Context][]keybinds.Action{
	keybinds.ContextEdit: {
		keybinds.ActionSendRequest,
		keybinds.ActionTextWordLeft,
		keybinds.ActionTextReset,
		keybinds.ActionExitEdit,
	},
	keybinds.ContextHistory: {
		keybinds.ActionHistoryRecall,
		keybinds.ActionHistorySearch,
		keybinds.ActionHistoryDelete,
		keybinds.ActionHistoryClear,
		keybinds.ActionExitEdit,
	},
	keybinds.ContextResponse: {
		keybinds.ActionScrollDown,
		keybinds.ActionScrollUp,
		keybinds.ActionExitEdit,
	},
}

var actionLabels = map[keybinds.Action]string{
	keybinds.ActionSendRequest:   "send",
	keybinds.ActionTextWordLeft:  "word left",
	keybinds.ActionTextReset:     "clear",
	keybinds.ActionExitEdit:      "back",
	keybinds.ActionHistoryRecall: "recall",
	keybinds.ActionHistorySearch: "search",
	keybinds.ActionHistoryDelete: "delete",
	keybinds.ActionHistoryClear:  "clear all",
	keybinds.ActionScrollDown:    "down",
	keybinds.ActionScrollUp:      "up",
}

// editContext maps a region to the keybind context used while editing it
func editContext(region focus.Region) keybinds.Context {
	switch region {
	case focus.History:
		return keybinds.ContextHistory
	case focus.Response:
		return keybinds.ContextResponse
	default:
		return keybinds.ContextEdit
	}
}

// updateViewport resizes the response viewport to fit renderResponse
func (m *Model) updateViewport() {
	l := m.computeLayout()
	m.responseView.Width = max(l.responseWidth-ViewportBorderWidth, 1)
	m.responseView.Height = max(l.paneHeight-ViewportBorderWidth-ResponseTitleLines, 1)
	m.updateResponseView()
}

// updateResponseView rebuilds the response viewport content
func (m *Model) updateResponseView() {
	if m.currentResponse == nil {
		m.responseView.SetContent("")
		return
	}

	resp := m.currentResponse
	var content strings.Builder

	if m.currentRequest != nil {
		content.WriteString(styleSubtle.Render(fmt.Sprintf("%s %s", m.currentRequest.Method, m.currentRequest.URL)))
		content.WriteString("\n")
	}

	if resp.Error != "" {
		content.WriteString(styleError.Render(wrapText("Error: "+resp.Error, m.responseView.Width)))
		m.responseView.SetContent(content.String())
		m.responseView.GotoTop()
		return
	}

	content.WriteString(statusStyle(resp.Status).Render(resp.StatusText))
	content.WriteString("\n")

	keys := make([]string, 0, len(resp.Headers))
	for key := range resp.Headers {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	for _, key := range keys {
		content.WriteString(styleSubtle.Render(wrapText(key+": "+resp.Headers[key], m.responseView.Width)))
		content.WriteString("\n")
	}

	if resp.Body != "" {
		content.WriteString("\n")
		body := wrapText(prettyBody(resp.Body), m.responseView.Width)
		content.WriteString(highlightBody(resp.Headers["Content-Type"], body))
	}

	m.responseView.SetContent(content.String())
	m.responseView.GotoTop()
}

// wrapText hard-wraps each line to width display cells
func wrapText(text string, width int) string {
	if width <= 0 {
		return text
	}
	return ansi.Hardwrap(text, width, true)
}

func stripANSI(s string) string {
	return ansi.Strip(s)
}
