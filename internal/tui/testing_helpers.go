package tui

import (
	"path/filepath"
	"testing"

	"github.com/bstn-hfmn/rustman/internal/config"
	"github.com/bstn-hfmn/rustman/internal/history"
	"github.com/bstn-hfmn/rustman/internal/keybinds"
	tea "github.com/charmbracelet/bubbletea"
)

// CreateTestModel creates a Model without history persistence, sized 120x40
func CreateTestModel(t *testing.T) *Model {
	t.Helper()

	m := New(config.Default(), keybinds.NewDefaultRegistry(), nil)
	m.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	return &m
}

// CreateTestModelWithHistory creates a Model backed by a temporary database
func CreateTestModelWithHistory(t *testing.T) (*Model, *history.Manager) {
	t.Helper()

	mgr, err := history.NewManager(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Failed to create history manager: %v", err)
	}

	m := New(config.Default(), keybinds.NewDefaultRegistry(), mgr)
	m.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	t.Cleanup(m.Cleanup)
	return &m, mgr
}

// pressKey sends a named key such as "esc" or "ctrl+left" through Update
func pressKey(m *Model, key string) tea.Cmd {
	_, cmd := m.Update(keyMsg(key))
	return cmd
}

// typeString sends each rune of s as its own key press
func typeString(m *Model, s string) {
	for _, r := range s {
		if r == ' ' {
			m.Update(tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}})
			continue
		}
		m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
}

var namedKeys = map[string]tea.KeyType{
	"esc":        tea.KeyEsc,
	"enter":      tea.KeyEnter,
	"backspace":  tea.KeyBackspace,
	"delete":     tea.KeyDelete,
	"up":         tea.KeyUp,
	"down":       tea.KeyDown,
	"left":       tea.KeyLeft,
	"right":      tea.KeyRight,
	"ctrl+left":  tea.KeyCtrlLeft,
	"ctrl+right": tea.KeyCtrlRight,
	"ctrl+c":     tea.KeyCtrlC,
}

func keyMsg(key string) tea.KeyMsg {
	if t, ok := namedKeys[key]; ok {
		return tea.KeyMsg{Type: t}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(key)}
}

// AssertModelField is a generic helper for checking model field values
func AssertModelField[T comparable](t *testing.T, fieldName string, got, want T) {
	t.Helper()
	if got != want {
		t.Errorf("%s = %v, want %v", fieldName, got, want)
	}
}

// AssertNoError verifies that an error is nil
func AssertNoError(t *testing.T, err error) {
	t.Helper()
	if err != nil {
		t.Errorf("Unexpected error: %v", err)
	}
}

// AssertError verifies that an error occurred
func AssertError(t *testing.T, err error) {
	t.Helper()
	if err == nil {
		t.Error("Expected error but got nil")
	}
}
