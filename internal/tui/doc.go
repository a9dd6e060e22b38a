/*
Package tui implements the terminal user interface for Rustman.

# Architecture

The TUI follows the Bubble Tea framework's Model-Update-View pattern:
  - Model: Maintains all application state
  - Update: Processes messages and returns commands
  - View: Renders the current state to the terminal

# Key Components

  - model.go: Core state, messages and the Update loop
  - keys.go: Keyboard input handling and keybind routing
  - render.go: Layout and pane rendering
  - actions.go: Side effects (HTTP requests, history storage)
  - highlight.go: Response body syntax highlighting

# Layout

	+----------+---------------------------+
	|          | URL                       |
	| History  +----------+----------------+
	|          | Request  | Response       |
	|          |          |                |
	+----------+----------+----------------+
	 status bar

Pane selection is a focus.Grid. Column 0 is History, row 1 of columns 1 and 2
is the URL bar.

# Modes

Navigate mode moves the selection between panes. Edit mode sends keys to the
selected pane: the URL and Request panes are editor.TextField values, History
selects, searches and recalls stored requests, Response scrolls.

The caret is drawn inside the focused field and only blinks while a text
field is being edited.

# Keybind System

Keybinds are managed through the keybinds.Registry. The context is chosen
from the mode and, in edit mode, the selected region. Keys without a binding
are typed into the focused text field.

# Threading Model

Update runs on Bubble Tea's event loop and owns all state. Requests and
history reads/writes run inside tea.Cmd functions and report back with
messages.
*/
package tui
