package views

import (
	"fmt"
	"strings"

	"github.com/rivo/tview"
)

// TypingBar is the one-line presence indicator under the message view.
type TypingBar struct {
	*tview.TextView
}

// NewTypingBar creates a new typing indicator line.
func NewTypingBar() *TypingBar {
	tv := tview.NewTextView().
		SetDynamicColors(true)
	return &TypingBar{TextView: tv}
}

// Update rewrites the indicator from the active composer set.
func (tb *TypingBar) Update(users []string) {
	tb.Clear()
	if len(users) == 0 {
		return
	}

	verb := "is"
	if len(users) > 1 {
		verb = "are"
	}
	_, _ = fmt.Fprintf(tb, " [::d]%s %s typing...[-:-:-]", strings.Join(users, ", "), verb)
}
