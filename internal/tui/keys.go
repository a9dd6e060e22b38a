package tui

import (
	"unicode"

	"github.com/bstn-hfmn/rustman/internal/editor"
	"github.com/bstn-hfmn/rustman/internal/focus"
	"github.com/bstn-hfmn/rustman/internal/keybinds"
	tea "github.com/charmbracelet/bubbletea"
)

// handleKeyPress routes key presses based on current mode
func (m *Model) handleKeyPress(msg tea.KeyMsg) tea.Cmd {
	switch m.mode {
	case ModeEdit:
		return m.handleEditKeys(msg)
	default:
		return m.handleNavigateKeys(msg)
	}
}

func (m *Model) handleNavigateKeys(msg tea.KeyMsg) tea.Cmd {
	action, ok := m.keybinds.Match(keybinds.ContextNavigate, msg.String())
	if !ok {
		return nil
	}

	switch action {
	case keybinds.ActionQuit, keybinds.ActionQuitForce:
		return m.quit()
	case keybinds.ActionEnterEdit:
		return m.enterEdit()
	case keybinds.ActionNavigateUp:
		m.grid.Move(focus.Up)
	case keybinds.ActionNavigateDown:
		m.grid.Move(focus.Down)
	case keybinds.ActionNavigateLeft:
		m.grid.Move(focus.Left)
	case keybinds.ActionNavigateRight:
		m.grid.Move(focus.Right)
	}

	return nil
}

// handleEditKeys dispatches on the pane selected when edit mode started
func (m *Model) handleEditKeys(msg tea.KeyMsg) tea.Cmd {
	switch region := m.grid.Selected(); region {
	case focus.URL, focus.Request:
		return m.handleFieldKeys(msg, m.fieldFor(region))
	case focus.History:
		return m.handleHistoryKeys(msg)
	case focus.Response:
		return m.handleResponseKeys(msg)
	}
	return nil
}

func (m *Model) handleFieldKeys(msg tea.KeyMsg, field *editor.TextField) tea.Cmd {
	action, ok := m.keybinds.Match(keybinds.ContextEdit, msg.String())
	if !ok {
		insertKey(field, msg)
		return nil
	}

	switch action {
	case keybinds.ActionQuit, keybinds.ActionQuitForce:
		return m.quit()
	case keybinds.ActionExitEdit:
		return m.exitEdit()
	case keybinds.ActionSendRequest:
		return m.sendRequest()
	case keybinds.ActionTextBackspace:
		field.DeleteBack()
	case keybinds.ActionTextReset:
		field.Reset()
	case keybinds.ActionTextMoveLeft:
		field.MoveCursor(editor.Left, false)
	case keybinds.ActionTextMoveRight:
		field.MoveCursor(editor.Right, false)
	case keybinds.ActionTextWordLeft:
		field.MoveCursor(editor.Left, true)
	case keybinds.ActionTextWordRight:
		field.MoveCursor(editor.Right, true)
	}

	return nil
}

// insertKey types unbound printable keys into field
func insertKey(field *editor.TextField, msg tea.KeyMsg) {
	switch msg.Type {
	case tea.KeySpace:
		field.Insert(' ')
	case tea.KeyRunes:
		if msg.Alt {
			return
		}
		for _, r := range msg.Runes {
			// pasted newlines and tabs have no place in a single line
			if unicode.IsControl(r) {
				continue
			}
			field.Insert(r)
		}
	}
}

func (m *Model) handleHistoryKeys(msg tea.KeyMsg) tea.Cmd {
	if m.historyState.GetSearchActive() {
		return m.handleHistorySearchKeys(msg)
	}

	action, ok := m.keybinds.Match(keybinds.ContextHistory, msg.String())
	if !ok {
		return nil
	}

	switch action {
	case keybinds.ActionQuit, keybinds.ActionQuitForce:
		return m.quit()
	case keybinds.ActionExitEdit:
		return m.exitEdit()
	case keybinds.ActionHistoryUp:
		m.historyState.Navigate(-1)
	case keybinds.ActionHistoryDown:
		m.historyState.Navigate(1)
	case keybinds.ActionHistoryRecall:
		m.recallHistoryEntry()
	case keybinds.ActionHistoryDelete:
		return m.deleteHistoryEntry()
	case keybinds.ActionHistoryClear:
		return m.clearHistory()
	case keybinds.ActionHistorySearch:
		m.historyState.ActivateSearch()
	}

	return nil
}

// handleHistorySearchKeys edits the search query. Enter keeps the filter,
// esc drops it.
func (m *Model) handleHistorySearchKeys(msg tea.KeyMsg) tea.Cmd {
	if action, ok := m.keybinds.Match(keybinds.ContextGlobal, msg.String()); ok && action == keybinds.ActionQuitForce {
		return m.quit()
	}

	switch msg.Type {
	case tea.KeyEsc:
		m.historyState.ClearSearch()
	case tea.KeyEnter:
		m.historyState.DeactivateSearch()
	case tea.KeyBackspace:
		m.historyState.BackspaceSearch()
	case tea.KeySpace:
		m.historyState.AppendSearch(' ')
	case tea.KeyRunes:
		for _, r := range msg.Runes {
			if !unicode.IsControl(r) {
				m.historyState.AppendSearch(r)
			}
		}
	}

	return nil
}

func (m *Model) handleResponseKeys(msg tea.KeyMsg) tea.Cmd {
	action, ok := m.keybinds.Match(keybinds.ContextResponse, msg.String())
	if !ok {
		// pgup, pgdown and friends come from the viewport keymap
		var cmd tea.Cmd
		m.responseView, cmd = m.responseView.Update(msg)
		return cmd
	}

	switch action {
	case keybinds.ActionQuit, keybinds.ActionQuitForce:
		return m.quit()
	case keybinds.ActionExitEdit:
		return m.exitEdit()
	case keybinds.ActionScrollUp:
		m.responseView.ScrollUp(1)
	case keybinds.ActionScrollDown:
		m.responseView.ScrollDown(1)
	}

	return nil
}

// enterEdit switches to edit mode on the selected pane. The caret is only
// shown for text fields.
func (m *Model) enterEdit() tea.Cmd {
	m.mode = ModeEdit

	field := m.fieldFor(m.grid.Selected())
	if field == nil {
		return nil
	}
	field.Focus()
	return m.caret.Focus()
}

func (m *Model) exitEdit() tea.Cmd {
	m.mode = ModeNavigate
	m.urlField.Unfocus()
	m.requestField.Unfocus()
	m.historyState.DeactivateSearch()
	m.caret.Blur()
	return nil
}

func (m *Model) quit() tea.Cmd {
	m.Cleanup()
	return tea.Quit
}

// fieldFor returns the text field shown in region, or nil
func (m *Model) fieldFor(region focus.Region) *editor.TextField {
	switch region {
	case focus.URL:
		return m.urlField
	case focus.Request:
		return m.requestField
	}
	return nil
}
