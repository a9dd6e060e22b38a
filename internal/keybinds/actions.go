package keybinds

// Action represents a user action that can be triggered by a keybinding
type Action string

// Context represents the context in which keybindings are active
type Context string

const (
	ContextGlobal   Context = "global"   // Available everywhere
	ContextNavigate Context = "navigate" // Moving between panes
	ContextEdit     Context = "edit"     // Typing into the URL or request field
	ContextHistory  Context = "history"  // Browsing the history sidebar
	ContextResponse Context = "response" // Scrolling the response pane
)

const (
	// Global actions
	ActionQuit      Action = "quit"       // Quit application
	ActionQuitForce Action = "quit_force" // Force quit (ctrl+c)

	// Mode switching
	ActionEnterEdit Action = "enter_edit" // Start interacting with the selected pane
	ActionExitEdit  Action = "exit_edit"  // Return to pane navigation

	// Pane navigation
	ActionNavigateUp    Action = "navigate_up"
	ActionNavigateDown  Action = "navigate_down"
	ActionNavigateLeft  Action = "navigate_left"
	ActionNavigateRight Action = "navigate_right"

	// Text field actions
	ActionTextBackspace Action = "text_backspace"  // Delete char before cursor
	ActionTextReset     Action = "text_reset"      // Clear the whole field
	ActionTextMoveLeft  Action = "text_move_left"  // Move cursor left
	ActionTextMoveRight Action = "text_move_right" // Move cursor right
	ActionTextWordLeft  Action = "text_word_left"  // Jump to previous word boundary
	ActionTextWordRight Action = "text_word_right" // Jump to next word boundary
	ActionSendRequest   Action = "send_request"    // Execute the request

	// History sidebar
	ActionHistoryUp     Action = "history_up"
	ActionHistoryDown   Action = "history_down"
	ActionHistoryRecall Action = "history_recall" // Load entry into the URL bar
	ActionHistoryDelete Action = "history_delete" // Remove the selected entry
	ActionHistoryClear  Action = "history_clear"
	ActionHistorySearch Action = "history_search" // Filter entries by URL

	// Response pane
	ActionScrollUp   Action = "scroll_up"
	ActionScrollDown Action = "scroll_down"
)

// AllContexts lists every context the application dispatches on
var AllContexts = []Context{
	ContextGlobal,
	ContextNavigate,
	ContextEdit,
	ContextHistory,
	ContextResponse,
}

var knownActions = map[Action]bool{
	ActionQuit:          true,
	ActionQuitForce:     true,
	ActionEnterEdit:     true,
	ActionExitEdit:      true,
	ActionNavigateUp:    true,
	ActionNavigateDown:  true,
	ActionNavigateLeft:  true,
	ActionNavigateRight: true,
	ActionTextBackspace: true,
	ActionTextReset:     true,
	ActionTextMoveLeft:  true,
	ActionTextMoveRight: true,
	ActionTextWordLeft:  true,
	ActionTextWordRight: true,
	ActionSendRequest:   true,
	ActionHistoryUp:     true,
	ActionHistoryDown:   true,
	ActionHistoryRecall: true,
	ActionHistoryDelete: true,
	ActionHistoryClear:  true,
	ActionHistorySearch: true,
	ActionScrollUp:      true,
	ActionScrollDown:    true,
}

// IsKnown reports whether the action is handled by the application
func (a Action) IsKnown() bool {
	return knownActions[a]
}
