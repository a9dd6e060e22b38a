package tui

// UI Layout Constants

const (
	URLBarHeight        = 3 // Single line field plus borders
	StatusBarHeight     = 1
	MinPaneHeight       = 3
	ViewportBorderWidth = 2 // Width or height consumed by borders
	ResponseTitleLines  = 1

	SidebarMinWidth     = 20
	SidebarWidthPercent = 25 // of the terminal width
	RequestWidthPercent = 40 // of the width right of the sidebar

	MaxErrorWidth = 100 // Footer error text, in cells
)
