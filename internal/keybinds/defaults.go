package keybinds

// NewDefaultRegistry creates a registry with all default keybindings
func NewDefaultRegistry() *Registry {
	r := NewRegistry()

	registerGlobalBindings(r)
	registerNavigateBindings(r)
	registerEditBindings(r)
	registerHistoryBindings(r)
	registerResponseBindings(r)

	return r
}

func registerGlobalBindings(r *Registry) {
	r.Register(ContextGlobal, "ctrl+c", ActionQuitForce)
}

func registerNavigateBindings(r *Registry) {
	r.RegisterMultiple(ContextNavigate, []string{"q", "esc"}, ActionQuit)
	r.RegisterMultiple(ContextNavigate, []string{"e", "enter"}, ActionEnterEdit)

	r.RegisterMultiple(ContextNavigate, []string{"up", "k"}, ActionNavigateUp)
	r.RegisterMultiple(ContextNavigate, []string{"down", "j"}, ActionNavigateDown)
	r.RegisterMultiple(ContextNavigate, []string{"left", "h"}, ActionNavigateLeft)
	r.RegisterMultiple(ContextNavigate, []string{"right", "l"}, ActionNavigateRight)
}

// Printable keys are not bound here; unbound runes are inserted as text.
func registerEditBindings(r *Registry) {
	r.Register(ContextEdit, "esc", ActionExitEdit)
	r.Register(ContextEdit, "enter", ActionSendRequest)
	r.Register(ContextEdit, "backspace", ActionTextBackspace)
	r.Register(ContextEdit, "delete", ActionTextReset)
	r.Register(ContextEdit, "left", ActionTextMoveLeft)
	r.Register(ContextEdit, "right", ActionTextMoveRight)
	r.RegisterMultiple(ContextEdit, []string{"ctrl+left", "alt+left", "alt+b"}, ActionTextWordLeft)
	r.RegisterMultiple(ContextEdit, []string{"ctrl+right", "alt+right", "alt+f"}, ActionTextWordRight)
}

func registerHistoryBindings(r *Registry) {
	r.RegisterMultiple(ContextHistory, []string{"esc", "q"}, ActionExitEdit)
	r.RegisterMultiple(ContextHistory, []string{"up", "k"}, ActionHistoryUp)
	r.RegisterMultiple(ContextHistory, []string{"down", "j"}, ActionHistoryDown)
	r.Register(ContextHistory, "enter", ActionHistoryRecall)
	r.Register(ContextHistory, "d", ActionHistoryDelete)
	r.Register(ContextHistory, "C", ActionHistoryClear)
	r.Register(ContextHistory, "/", ActionHistorySearch)
}

func registerResponseBindings(r *Registry) {
	r.RegisterMultiple(ContextResponse, []string{"esc", "q"}, ActionExitEdit)
	r.RegisterMultiple(ContextResponse, []string{"up", "k"}, ActionScrollUp)
	r.RegisterMultiple(ContextResponse, []string{"down", "j"}, ActionScrollDown)
}
