/*
Package keybinds maps key strings to application actions per input context.

# Contexts

  - global: available everywhere (ctrl+c)
  - navigate: moving the pane selection
  - edit: typing into the URL or request field
  - history: browsing the history sidebar
  - response: scrolling the response pane

A context-specific binding shadows a global one. Printable keys with no
binding in the edit context are inserted into the focused field by the TUI.

# Configuration

Overrides live under the keybinds section of config.yaml:

	keybinds:
	  navigate:
	    x: quit
	  edit:
	    ctrl+w: text_word_left
	    delete: none

Mapping a key to "none" removes its default binding. Unknown actions are
rejected when the config is applied.
*/
package keybinds
