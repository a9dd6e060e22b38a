package focus

// Region is a named pane of the main layout
type Region int

const (
	History Region = iota
	URL
	Request
	Response
)

func (r Region) String() string {
	switch r {
	case History:
		return "History"
	case URL:
		return "URL"
	case Request:
		return "Request"
	case Response:
		return "Response"
	default:
		return "Unknown"
	}
}

// Direction is a navigation key direction
type Direction int

const (
	Up Direction = iota
	Down
	Left
	Right
)

const (
	maxX = 2
	maxY = 1
)

// regions maps grid cells to panes, indexed [y][x]. Column 0 is the full
// height sidebar, row 1 of columns 1-2 is the URL bar spanning both columns.
var regions = [maxY + 1][maxX + 1]Region{
	{History, Request, Response},
	{History, URL, URL},
}

var hints = map[Region]string{
	History:  "e: browse history",
	URL:      "e: edit url, enter: send",
	Request:  "e: edit body, enter: send",
	Response: "e: scroll response",
}

// Grid tracks the selected cell of the navigation grid.
// The selected region is always derived from the cell, never stored.
type Grid struct {
	x, y int
}

// NewGrid returns a grid positioned on History
func NewGrid() *Grid {
	return &Grid{}
}

// Move shifts the selection one cell. Up increases y and Down decreases it,
// which matches the on-screen order of the rows.
func (g *Grid) Move(dir Direction) {
	switch dir {
	case Right:
		g.x++
	case Left:
		g.x--
	case Up:
		g.y++
	case Down:
		g.y--
	}

	g.x = clamp(g.x, 0, maxX)
	g.y = clamp(g.y, 0, maxY)
}

// Selected returns the region under the current cell
func (g *Grid) Selected() Region {
	return RegionAt(g.x, g.y)
}

// Position returns the current cell
func (g *Grid) Position() (x, y int) {
	return g.x, g.y
}

// RegionAt looks up the region for a cell, clamping out-of-range coordinates
func RegionAt(x, y int) Region {
	return regions[clamp(y, 0, maxY)][clamp(x, 0, maxX)]
}

// Hint returns the footer hint for a region
func Hint(r Region) string {
	return hints[r]
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
