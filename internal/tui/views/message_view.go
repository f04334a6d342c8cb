package views

import (
	"fmt"

	"github.com/lgrossi/banter/internal/chat"
	"github.com/rivo/tview"
)

// MessageView displays the room's message sequence.
type MessageView struct {
	*tview.TextView
	localUser string
}

// NewMessageView creates a new message view.
func NewMessageView(localUser string) *MessageView {
	tv := tview.NewTextView().
		SetDynamicColors(true).
		SetScrollable(true).
		SetWordWrap(true)
	tv.SetBorder(true).SetTitle(" Messages ")

	return &MessageView{TextView: tv, localUser: localUser}
}

// Update refreshes the view with the current message sequence.
func (mv *MessageView) Update(msgs []chat.Message) {
	mv.Clear()

	for _, m := range msgs {
		sender := m.Sender
		if sender == "" {
			sender = "anonymous"
		}
		if sender == mv.localUser {
			sender = "You"
		}

		line := fmt.Sprintf("[::d]#%d[-:-:-] [::b]%s[-:-:-] %s", m.ID, sender, sanitizeForTerminal(m.Text))
		if m.Likes > 0 {
			line += fmt.Sprintf(" [aqua]+%d[-]", m.Likes)
		}
		if m.Retries > 0 {
			line += fmt.Sprintf(" [orange]~%d[-]", m.Retries)
		}
		_, _ = fmt.Fprint(mv, line+"\n")
	}

	mv.ScrollToEnd()
}
