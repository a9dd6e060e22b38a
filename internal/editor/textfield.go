package editor

import (
	"unicode"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
)

// Direction is a horizontal cursor movement direction
type Direction int

const (
	Left Direction = iota
	Right
)

// TextField is a single-line editable text buffer with a rune-indexed cursor
type TextField struct {
	title   string
	text    []rune
	cursor  int
	focused bool
	style   lipgloss.Style
}

// Snapshot is a read-only copy of everything a renderer needs to draw a field
type Snapshot struct {
	Title   string
	Text    string
	Cursor  int
	Focused bool
	Style   lipgloss.Style
}

// New creates an empty text field with a fixed title
func New(title string) *TextField {
	return &TextField{
		title: title,
		text:  []rune{},
		style: lipgloss.NewStyle(),
	}
}

// Insert inserts r at the cursor and advances the cursor by one
func (f *TextField) Insert(r rune) {
	f.text = append(f.text, 0)
	copy(f.text[f.cursor+1:], f.text[f.cursor:])
	f.text[f.cursor] = r

	f.MoveCursor(Right, false)
}

// DeleteBack removes the rune before the cursor. No-op at position 0.
func (f *TextField) DeleteBack() {
	if f.cursor == 0 {
		return
	}

	f.text = append(f.text[:f.cursor-1], f.text[f.cursor:]...)
	f.MoveCursor(Left, false)
}

// Reset clears the text and moves the cursor to the start
func (f *TextField) Reset() {
	f.text = f.text[:0]
	f.cursor = 0
}

// SetText replaces the content and places the cursor at the end
func (f *TextField) SetText(s string) {
	f.text = []rune(s)
	f.cursor = len(f.text)
}

// MoveCursor moves the cursor one rune, or to the next word boundary when skip is set
func (f *TextField) MoveCursor(dir Direction, skip bool) {
	next := f.cursor

	switch {
	case skip:
		next = f.wordBoundary(dir)
	case dir == Left:
		next = f.cursor - 1
	case dir == Right:
		next = f.cursor + 1
	}

	f.cursor = clamp(next, 0, len(f.text))
}

// wordBoundary finds the nearest alphanumeric/other boundary in dir.
// Moving left lands just after the nearest separator before the cursor; a
// separator directly before the cursor is stepped over first so repeated calls
// keep moving. Moving right lands on the next separator after the rune under
// the cursor.
func (f *TextField) wordBoundary(dir Direction) int {
	switch dir {
	case Left:
		i := f.cursor - 1
		if i >= 0 && !isWordRune(f.text[i]) {
			i--
		}
		for ; i >= 0; i-- {
			if !isWordRune(f.text[i]) {
				return i + 1
			}
		}
		return 0
	case Right:
		for i := f.cursor + 1; i < len(f.text); i++ {
			if !isWordRune(f.text[i]) {
				return i
			}
		}
		return len(f.text)
	}
	return f.cursor
}

// ByteOffset translates the cursor into a byte offset into Text().
// Computed on every call since any edit shifts subsequent offsets.
func (f *TextField) ByteOffset() int {
	return len(string(f.text[:f.cursor]))
}

// CursorColumn returns the terminal cell column of the cursor
func (f *TextField) CursorColumn() int {
	return runewidth.StringWidth(string(f.text[:f.cursor]))
}

func (f *TextField) Focus()        { f.focused = true }
func (f *TextField) Unfocus()      { f.focused = false }
func (f *TextField) Focused() bool { return f.focused }

func (f *TextField) Text() string          { return string(f.text) }
func (f *TextField) Len() int              { return len(f.text) }
func (f *TextField) Cursor() int           { return f.cursor }
func (f *TextField) Title() string         { return f.title }
func (f *TextField) Style() lipgloss.Style { return f.style }

// SetStyle sets the border style used when rendering
func (f *TextField) SetStyle(s lipgloss.Style) {
	f.style = s
}

// Snapshot returns the current render state
func (f *TextField) Snapshot() Snapshot {
	return Snapshot{
		Title:   f.title,
		Text:    f.Text(),
		Cursor:  f.cursor,
		Focused: f.focused,
		Style:   f.style,
	}
}

func isWordRune(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r)
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
