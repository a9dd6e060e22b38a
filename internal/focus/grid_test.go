package focus

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGrid_StartsOnHistory(t *testing.T) {
	g := NewGrid()

	x, y := g.Position()
	assert.Equal(t, 0, x)
	assert.Equal(t, 0, y)
	assert.Equal(t, History, g.Selected())
}

func TestRegionAt_Table(t *testing.T) {
	tests := []struct {
		x, y int
		want Region
	}{
		{0, 0, History},
		{0, 1, History},
		{1, 0, Request},
		{2, 0, Response},
		{1, 1, URL},
		{2, 1, URL},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, RegionAt(tt.x, tt.y), "cell (%d, %d)", tt.x, tt.y)
	}
}

func TestMove_Horizontal(t *testing.T) {
	g := NewGrid()

	g.Move(Right)
	assert.Equal(t, Request, g.Selected())

	g.Move(Right)
	assert.Equal(t, Response, g.Selected())

	g.Move(Right)
	x, _ := g.Position()
	assert.Equal(t, 2, x, "x saturates at the right edge")
	assert.Equal(t, Response, g.Selected())

	g.Move(Left)
	g.Move(Left)
	g.Move(Left)
	x, _ = g.Position()
	assert.Equal(t, 0, x, "x saturates at the left edge")
	assert.Equal(t, History, g.Selected())
}

func TestMove_VerticalIsInverted(t *testing.T) {
	g := NewGrid()
	g.Move(Right)
	g.Move(Right)
	require.Equal(t, Response, g.Selected())

	g.Move(Down)
	_, y := g.Position()
	assert.Equal(t, 0, y, "down at row 0 saturates")
	assert.Equal(t, Response, g.Selected())

	g.Move(Up)
	_, y = g.Position()
	assert.Equal(t, 1, y)
	assert.Equal(t, URL, g.Selected())

	g.Move(Up)
	_, y = g.Position()
	assert.Equal(t, 1, y, "up at row 1 saturates")

	g.Move(Down)
	assert.Equal(t, Response, g.Selected())
}

// Down decreases y and saturates at row 0, so Right, Right, Down stays on
// Response. The URL bar is reached with Up.
func TestMove_RightRightDownStaysOnResponse(t *testing.T) {
	g := NewGrid()
	g.Move(Right)
	g.Move(Right)
	require.Equal(t, Response, g.Selected())

	g.Move(Down)
	assert.Equal(t, Response, g.Selected())

	g.Move(Up)
	assert.Equal(t, URL, g.Selected())
}

func TestMove_URLSpansTwoColumns(t *testing.T) {
	g := NewGrid()
	g.Move(Up)
	assert.Equal(t, History, g.Selected(), "sidebar spans both rows")

	g.Move(Right)
	assert.Equal(t, URL, g.Selected())

	g.Move(Right)
	assert.Equal(t, URL, g.Selected())

	g.Move(Down)
	assert.Equal(t, Response, g.Selected())

	g.Move(Left)
	assert.Equal(t, Request, g.Selected())
}

func TestMove_InvariantsHoldForRandomSequences(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	g := NewGrid()

	for i := 0; i < 10000; i++ {
		g.Move(Direction(rng.Intn(4)))

		x, y := g.Position()
		require.True(t, x >= 0 && x <= 2, "x out of range: %d", x)
		require.True(t, y >= 0 && y <= 1, "y out of range: %d", y)
		require.Equal(t, RegionAt(x, y), g.Selected())
	}
}

func TestRegion_String(t *testing.T) {
	assert.Equal(t, "History", History.String())
	assert.Equal(t, "URL", URL.String())
	assert.Equal(t, "Request", Request.String())
	assert.Equal(t, "Response", Response.String())
	assert.Equal(t, "Unknown", Region(42).String())
}

func TestHint_EveryRegion(t *testing.T) {
	for _, r := range []Region{History, URL, Request, Response} {
		assert.NotEmpty(t, Hint(r), r.String())
	}
}
