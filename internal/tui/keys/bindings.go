package keys

import (
	"sort"
	"strings"

	"github.com/gdamore/tcell/v2"
)

// Action represents a keybinding action.
type Action struct {
	Key         tcell.Key
	Rune        rune
	Description string
	Handler     func()
	Visible     bool
}

// Matches returns true if the event matches this action.
func (a *Action) Matches(ev *tcell.EventKey) bool {
	if a.Key != tcell.KeyRune {
		return ev.Key() == a.Key
	}
	return ev.Key() == tcell.KeyRune && ev.Rune() == a.Rune
}

// Registry holds the application keybindings.
type Registry struct {
	actions map[string]*Action
}

// NewRegistry creates an empty keybinding registry.
func NewRegistry() *Registry {
	return &Registry{actions: make(map[string]*Action)}
}

// Add registers a keybinding under a name.
func (r *Registry) Add(name string, action *Action) {
	r.actions[name] = action
}

// Hints returns visible keybinding descriptions joined for the status
// bar, in stable order.
func (r *Registry) Hints() string {
	var hints []string
	for _, a := range r.actions {
		if a.Visible {
			hints = append(hints, a.Description)
		}
	}
	sort.Strings(hints)
	return strings.Join(hints, " ")
}

// HandleEvent dispatches a key event to the matching action. Returns
// true if a handler matched.
func (r *Registry) HandleEvent(ev *tcell.EventKey) bool {
	for _, a := range r.actions {
		if a.Matches(ev) {
			a.Handler()
			return true
		}
	}
	return false
}
