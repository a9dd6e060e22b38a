package editor

import (
	"math/rand"
	"strings"
	"testing"

	"github.com/charmbracelet/bubbles/cursor"
	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func typeText(f *TextField, s string) {
	for _, r := range s {
		f.Insert(r)
	}
}

func TestNew_Empty(t *testing.T) {
	f := New("URL")

	assert.Equal(t, "URL", f.Title())
	assert.Equal(t, "", f.Text())
	assert.Equal(t, 0, f.Cursor())
	assert.False(t, f.Focused())
}

func TestInsert_AdvancesCursor(t *testing.T) {
	f := New("URL")
	typeText(f, "héllo")

	assert.Equal(t, "héllo", f.Text())
	assert.Equal(t, 5, f.Cursor())
	assert.Equal(t, 5, f.Len())
}

func TestInsert_AtCursorMiddle(t *testing.T) {
	f := New("URL")
	typeText(f, "ac")
	f.MoveCursor(Left, false)
	f.Insert('b')

	assert.Equal(t, "abc", f.Text())
	assert.Equal(t, 2, f.Cursor())
}

func TestInsert_MultiByte(t *testing.T) {
	f := New("URL")
	typeText(f, "日本")
	f.MoveCursor(Left, false)
	f.Insert('語')

	assert.Equal(t, "日語本", f.Text())
	assert.Equal(t, 2, f.Cursor())
	assert.Equal(t, len("日語"), f.ByteOffset())
}

func TestDeleteBack(t *testing.T) {
	tests := []struct {
		name       string
		text       string
		moveLeft   int
		wantText   string
		wantCursor int
	}{
		{"empty buffer is a no-op", "", 0, "", 0},
		{"end of buffer", "abc", 0, "ab", 2},
		{"middle of buffer", "abc", 1, "ac", 1},
		{"start of buffer is a no-op", "abc", 3, "abc", 0},
		{"multi-byte rune", "aé日", 0, "aé", 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := New("URL")
			typeText(f, tt.text)
			for i := 0; i < tt.moveLeft; i++ {
				f.MoveCursor(Left, false)
			}

			f.DeleteBack()

			assert.Equal(t, tt.wantText, f.Text())
			assert.Equal(t, tt.wantCursor, f.Cursor())
		})
	}
}

func TestReset_Idempotent(t *testing.T) {
	f := New("URL")
	typeText(f, "http://example.com")

	f.Reset()
	assert.Equal(t, "", f.Text())
	assert.Equal(t, 0, f.Cursor())

	f.Reset()
	assert.Equal(t, "", f.Text())
	assert.Equal(t, 0, f.Cursor())
}

func TestMoveCursor_SingleStep(t *testing.T) {
	f := New("URL")
	typeText(f, "ab")
	f.MoveCursor(Left, false)
	f.MoveCursor(Left, false)
	require.Equal(t, 0, f.Cursor())

	f.MoveCursor(Right, false)
	assert.Equal(t, 1, f.Cursor())

	f.MoveCursor(Right, false)
	f.MoveCursor(Right, false)
	assert.Equal(t, 2, f.Cursor(), "moving right at the end saturates")

	f.Reset()
	f.MoveCursor(Left, false)
	assert.Equal(t, 0, f.Cursor(), "moving left at 0 saturates")
}

func TestMoveCursor_WordLeft(t *testing.T) {
	f := New("URL")
	typeText(f, "hello world")
	require.Equal(t, 11, f.Cursor())

	f.MoveCursor(Left, true)
	assert.Equal(t, 6, f.Cursor())

	f.MoveCursor(Left, true)
	assert.Equal(t, 0, f.Cursor())

	f.MoveCursor(Left, true)
	assert.Equal(t, 0, f.Cursor())
}

func TestMoveCursor_WordRight(t *testing.T) {
	f := New("URL")
	typeText(f, "hello world")
	f.MoveCursor(Left, true)
	f.MoveCursor(Left, true)
	require.Equal(t, 0, f.Cursor())

	f.MoveCursor(Right, true)
	assert.Equal(t, 5, f.Cursor())

	f.MoveCursor(Right, true)
	assert.Equal(t, 11, f.Cursor())

	f.MoveCursor(Right, true)
	assert.Equal(t, 11, f.Cursor())
}

func TestMoveCursor_WordSkipURL(t *testing.T) {
	f := New("URL")
	typeText(f, "http://api.test/v1")

	var stops []int
	for i := 0; i < 8; i++ {
		f.MoveCursor(Left, true)
		stops = append(stops, f.Cursor())
	}

	assert.Equal(t, []int{16, 11, 7, 6, 5, 0, 0, 0}, stops)
}

func TestMoveCursor_WordSkipMultiByte(t *testing.T) {
	f := New("URL")
	typeText(f, "größe über")

	f.MoveCursor(Left, true)
	assert.Equal(t, 6, f.Cursor())
	assert.Equal(t, len("größe "), f.ByteOffset())

	f.MoveCursor(Left, true)
	assert.Equal(t, 0, f.Cursor())

	f.MoveCursor(Right, true)
	assert.Equal(t, 5, f.Cursor())
}

func TestRoundTrip_InsertThenDelete(t *testing.T) {
	f := New("URL")
	typeText(f, "base/path")
	f.MoveCursor(Left, true)
	text, cur := f.Text(), f.Cursor()

	typeText(f, "añadido")
	for range []rune("añadido") {
		f.DeleteBack()
	}

	assert.Equal(t, text, f.Text())
	assert.Equal(t, cur, f.Cursor())
}

func TestSetText_CursorAtEnd(t *testing.T) {
	f := New("URL")
	f.SetText("https://例え.jp")

	assert.Equal(t, 13, f.Cursor())
	assert.Equal(t, len("https://例え.jp"), f.ByteOffset())
}

func TestCursorColumn_WideRunes(t *testing.T) {
	f := New("URL")
	typeText(f, "a日b")

	assert.Equal(t, 4, f.CursorColumn())
	f.MoveCursor(Left, false)
	assert.Equal(t, 3, f.CursorColumn())
}

func TestFocus(t *testing.T) {
	f := New("URL")
	f.Focus()
	assert.True(t, f.Focused())
	assert.True(t, f.Snapshot().Focused)

	f.Unfocus()
	assert.False(t, f.Focused())
}

func TestInvariants_RandomOperations(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	alphabet := []rune("ab /.:?=&-_1é日🙂")

	for run := 0; run < 200; run++ {
		f := New("fuzz")
		for step := 0; step < 100; step++ {
			switch rng.Intn(6) {
			case 0, 1:
				f.Insert(alphabet[rng.Intn(len(alphabet))])
			case 2:
				f.DeleteBack()
			case 3:
				f.MoveCursor(Direction(rng.Intn(2)), false)
			case 4:
				f.MoveCursor(Direction(rng.Intn(2)), true)
			case 5:
				if rng.Intn(10) == 0 {
					f.Reset()
				}
			}

			require.GreaterOrEqual(t, f.Cursor(), 0)
			require.LessOrEqual(t, f.Cursor(), f.Len())
			require.Equal(t, f.Len(), len([]rune(f.Text())))
			require.LessOrEqual(t, f.ByteOffset(), len(f.Text()))
		}
	}
}

func TestView_ContainsTitleAndText(t *testing.T) {
	f := New("URL")
	typeText(f, "example.com")

	out := f.View(40, 3, cursor.New())
	assert.Contains(t, out, "URL")
	assert.Contains(t, out, "example.com")
	assert.Equal(t, 3, len(strings.Split(out, "\n")))
}

func TestView_FillsHeight(t *testing.T) {
	f := New("Request")
	typeText(f, "{}")

	out := f.View(30, 8, cursor.New())
	assert.Equal(t, 8, len(strings.Split(out, "\n")))
	assert.Equal(t, 8, lipgloss.Height(out))
	assert.Equal(t, 30, lipgloss.Width(out))
}

func TestView_ScrollsToKeepCursorVisible(t *testing.T) {
	f := New("URL")
	typeText(f, strings.Repeat("x", 50)+"END")

	out := f.View(20, 3, cursor.New())
	assert.Contains(t, out, "END")
}

func TestView_ScrollsWideRunes(t *testing.T) {
	f := New("URL")
	typeText(f, strings.Repeat("日", 30)+"末")
	f.Focus()

	out := f.View(12, 3, cursor.New())
	assert.Contains(t, out, "末")
	for _, line := range strings.Split(out, "\n") {
		assert.LessOrEqual(t, lipgloss.Width(line), 12)
	}
}
