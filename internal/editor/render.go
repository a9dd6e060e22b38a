package editor

import (
	"strings"

	"github.com/charmbracelet/bubbles/cursor"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
)

var (
	focusedTextStyle = lipgloss.NewStyle().
				Foreground(lipgloss.AdaptiveColor{Light: "#b8860b", Dark: "#ffff00"})

	defaultBorderStyle = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder())
)

// View renders the field inside a titled border of width by height cells
// (at least three rows). When the field is focused the caret is drawn with c
// at the cursor position.
func (f *TextField) View(width, height int, c cursor.Model) string {
	inner := width - 2
	if inner < 1 {
		inner = 1
	}
	rows := height - 2
	if rows < 1 {
		rows = 1
	}

	start := f.scrollStart(inner)
	before := string(f.text[start:f.cursor])

	var content string
	if f.focused {
		under := " "
		after := ""
		if f.cursor < len(f.text) {
			under = string(f.text[f.cursor])
			after = string(f.text[f.cursor+1:])
		}
		c.SetChar(under)
		remaining := inner - runewidth.StringWidth(before) - runewidth.StringWidth(under)
		if remaining < 0 {
			remaining = 0
		}
		content = focusedTextStyle.Render(before) + c.View() +
			focusedTextStyle.Render(runewidth.Truncate(after, remaining, ""))
	} else {
		content = runewidth.Truncate(string(f.text[start:]), inner, "…")
	}

	border := f.borderStyle()
	body := border.
		BorderTop(false).
		Width(inner).
		Height(rows).
		Render(content)

	return titledTop(f.title, width, border) + "\n" + body
}

// scrollStart returns the first visible rune so the cursor stays on screen
func (f *TextField) scrollStart(inner int) int {
	// room for the rune under the caret
	reserve := 1
	if f.cursor < len(f.text) {
		if w := runewidth.RuneWidth(f.text[f.cursor]); w > reserve {
			reserve = w
		}
	}

	col := f.CursorColumn()
	start, skipped := 0, 0
	for start < f.cursor && col-skipped+reserve > inner {
		skipped += runewidth.RuneWidth(f.text[start])
		start++
	}
	return start
}

func (f *TextField) borderStyle() lipgloss.Style {
	if f.style.GetBorderStyle() == (lipgloss.Border{}) {
		return defaultBorderStyle.BorderForeground(f.style.GetBorderTopForeground())
	}
	return f.style
}

// titledTop draws the top border edge with the title embedded after the corner
func titledTop(title string, width int, style lipgloss.Style) string {
	b := style.GetBorderStyle()
	paint := lipgloss.NewStyle().Foreground(style.GetBorderTopForeground())

	fill := width - 2
	label := ""
	if title != "" && fill > 2 {
		label = runewidth.Truncate(title, fill-2, "")
		label = " " + label + " "
	}
	fill -= runewidth.StringWidth(label)
	if fill < 0 {
		fill = 0
	}

	return paint.Render(b.TopLeft) + paint.Render(label) +
		paint.Render(strings.Repeat(b.Top, fill)) + paint.Render(b.TopRight)
}
