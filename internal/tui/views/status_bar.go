package views

import (
	"fmt"
	"time"

	"github.com/rivo/tview"
)

// StatusBar displays the local user, connection state and transient
// notices.
type StatusBar struct {
	*tview.TextView
	username  string
	connected bool
	hints     string
	flash     string
}

// NewStatusBar creates a new status bar.
func NewStatusBar(username string) *StatusBar {
	tv := tview.NewTextView().
		SetDynamicColors(true)
	tv.SetBackgroundColor(tview.Styles.MoreContrastBackgroundColor)

	return &StatusBar{TextView: tv, username: username}
}

// SetConnected updates the connection indicator.
func (sb *StatusBar) SetConnected(connected bool) {
	sb.connected = connected
	sb.render()
}

// SetHints sets the keybinding hint text.
func (sb *StatusBar) SetHints(hints string) {
	sb.hints = hints
	sb.render()
}

// SetFlash sets a temporary message.
func (sb *StatusBar) SetFlash(msg string) {
	sb.flash = msg
	sb.render()
}

func (sb *StatusBar) render() {
	sb.Clear()

	conn := "[red]offline[-]"
	if sb.connected {
		conn = "[green]online[-]"
	}

	clock := time.Now().Format("15:04")

	line := fmt.Sprintf(" [::b]%s[-:-:-] | %s | %s", sb.username, conn, clock)
	if sb.hints != "" {
		line += " | " + sb.hints
	}
	if sb.flash != "" {
		line += fmt.Sprintf(" | [yellow]%s[-]", sb.flash)
	}

	_, _ = fmt.Fprint(sb, line)
}
