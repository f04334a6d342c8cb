package views

import (
	"github.com/gdamore/tcell/v2"
	"github.com/lgrossi/banter/internal/tui/ui"
	"github.com/rivo/tview"
)

// EditBar is the retry-prompted edit input. It is shown pre-filled with
// the message's current text when a retry arrives for one of the local
// user's messages.
type EditBar struct {
	*tview.InputField
	id       int
	onSubmit func(id int, text string)
	onCancel func()
}

// NewEditBar creates the edit input bar.
func NewEditBar(theme *ui.Theme) *EditBar {
	input := tview.NewInputField().
		SetFieldWidth(0)
	input.SetBorder(true)
	input.SetTitle(" Edit requested ")
	input.SetBorderColor(theme.EditBorderColor)
	input.SetBackgroundColor(theme.BgColor)
	input.SetFieldBackgroundColor(theme.BgColor)
	input.SetFieldTextColor(theme.FgColor)

	e := &EditBar{InputField: input}

	input.SetDoneFunc(func(key tcell.Key) {
		switch key {
		case tcell.KeyEnter:
			text := e.GetText()
			if e.onSubmit != nil && text != "" {
				e.onSubmit(e.id, text)
			}
			e.SetText("")
		case tcell.KeyEscape:
			e.SetText("")
			if e.onCancel != nil {
				e.onCancel()
			}
		}
	})

	return e
}

// SetOnSubmit sets the callback when the edit is submitted.
func (e *EditBar) SetOnSubmit(fn func(id int, text string)) {
	e.onSubmit = fn
}

// SetOnCancel sets the callback when the edit is dismissed.
func (e *EditBar) SetOnCancel(fn func()) {
	e.onCancel = fn
}

// Activate pre-fills the bar for the given message.
func (e *EditBar) Activate(id int, text string) {
	e.id = id
	e.SetText(text)
	e.SetLabel(" edit: ")
}
