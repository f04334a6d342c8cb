// Package tui renders the chat room: the message sequence, the typing
// indicator, the composer and the retry-prompted edit bar.
package tui

import (
	"context"
	"strconv"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"

	"github.com/lgrossi/banter/internal/chat"
	"github.com/lgrossi/banter/internal/client"
	"github.com/lgrossi/banter/internal/tui/keys"
	"github.com/lgrossi/banter/internal/tui/ui"
	"github.com/lgrossi/banter/internal/tui/views"
)

// App is the main TUI application shell.
type App struct {
	app      *tview.Application
	session  *client.Session
	registry *keys.Registry
	theme    *ui.Theme
	username string

	msgView   *views.MessageView
	typingBar *views.TypingBar
	editBar   *views.EditBar
	composer  *views.Composer
	statusBar *views.StatusBar
	root      *tview.Flex

	editActive bool
	connected  bool
	dark       bool

	ctx    context.Context
	cancel context.CancelFunc
}

// NewApp creates the TUI application for an established session.
func NewApp(s *client.Session, username string) *App {
	ctx, cancel := context.WithCancel(context.Background())
	theme := ui.DefaultTheme()

	a := &App{
		app:       tview.NewApplication(),
		session:   s,
		registry:  keys.NewRegistry(),
		theme:     theme,
		username:  username,
		msgView:   views.NewMessageView(username),
		typingBar: views.NewTypingBar(),
		editBar:   views.NewEditBar(theme),
		composer:  views.NewComposer(),
		statusBar: views.NewStatusBar(username),
		connected: true,
		dark:      true,
		ctx:       ctx,
		cancel:    cancel,
	}

	a.setupBindings()
	a.setupCallbacks()
	a.setupLayout()
	a.applyTheme()

	return a
}

func (a *App) setupBindings() {
	a.registry.Add("quit", &keys.Action{
		Key:         tcell.KeyCtrlQ,
		Description: "^q:quit", Visible: true,
		Handler: func() { a.Stop() },
	})
	a.registry.Add("clear", &keys.Action{
		Key:         tcell.KeyCtrlL,
		Description: "^l:clear", Visible: true,
		Handler: func() { a.session.Mirror.Clear() },
	})

	a.statusBar.SetHints(a.registry.Hints() + " /like N /retry N")
}

func (a *App) setupCallbacks() {
	a.composer.SetOnSend(func(text string) {
		if text[0] == '/' {
			a.runCommand(ParseCommand(text[1:]))
			return
		}
		go func() {
			if err := a.session.Client.Send(text); err != nil {
				a.session.Flash.Set("Send failed: "+err.Error(), 5*time.Second)
			}
		}()
	})

	// Every keystroke announces presence; the server rebroadcasts and
	// each client's tracker handles expiry on its own.
	a.composer.SetOnChange(func(text string) {
		if text == "" || text[0] == '/' {
			return
		}
		go func() { _ = a.session.Client.Typing(a.username) }()
	})

	a.editBar.SetOnSubmit(func(_ int, text string) {
		id, ok := a.session.Mirror.SubmitEdit()
		if !ok {
			return
		}
		go func() {
			if err := a.session.Client.Feedback(id, chat.FeedbackEdit, &text); err != nil {
				a.session.Flash.Set("Edit failed: "+err.Error(), 5*time.Second)
				return
			}
			a.session.Flash.Set("Edit submitted.", 3*time.Second)
		}()
		a.hideEditBar()
	})

	a.editBar.SetOnCancel(func() {
		a.session.Mirror.DismissPrompt()
		a.hideEditBar()
	})
}

func (a *App) setupLayout() {
	a.root = tview.NewFlex().
		SetDirection(tview.FlexRow).
		AddItem(a.msgView, 0, 1, false).
		AddItem(a.typingBar, 1, 0, false).
		AddItem(a.editBar, 0, 0, false).
		AddItem(a.composer, 1, 0, true).
		AddItem(a.statusBar, 1, 0, false)

	a.app.SetRoot(a.root, true)

	a.app.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
		if a.registry.HandleEvent(event) {
			return nil
		}
		return event
	})
}

func (a *App) runCommand(cmd Command) {
	switch cmd.Name {
	case "like", "retry":
		id, err := strconv.Atoi(cmd.Args)
		if err != nil {
			a.session.Flash.Set("Usage: /"+cmd.Name+" <message id>", 5*time.Second)
			return
		}
		kind := chat.FeedbackLike
		if cmd.Name == "retry" {
			kind = chat.FeedbackRetry
		}
		go func() { _ = a.session.Client.Feedback(id, kind, nil) }()
	case "clear":
		a.session.Mirror.Clear()
	case "theme":
		a.dark = !a.dark
		if a.dark {
			a.theme = ui.DefaultTheme()
		} else {
			a.theme = ui.LightTheme()
		}
		a.applyTheme()
	case "quit":
		a.Stop()
	default:
		a.session.Flash.Set("Unknown command: /"+cmd.Name, 5*time.Second)
	}
}

func (a *App) applyTheme() {
	t := a.theme
	a.msgView.SetBackgroundColor(t.BgColor)
	a.msgView.SetTextColor(t.FgColor)
	a.msgView.SetBorderColor(t.BorderColor)
	a.msgView.SetTitleColor(t.TitleColor)
	a.typingBar.SetBackgroundColor(t.BgColor)
	a.typingBar.SetTextColor(t.TypingColor)
	a.composer.SetBackgroundColor(t.BgColor)
	a.composer.SetFieldBackgroundColor(t.BgColor)
	a.composer.SetFieldTextColor(t.FgColor)
	a.composer.SetLabelColor(t.SenderColor)
	a.editBar.SetBackgroundColor(t.BgColor)
	a.editBar.SetFieldBackgroundColor(t.BgColor)
	a.editBar.SetFieldTextColor(t.FgColor)
	a.editBar.SetBorderColor(t.EditBorderColor)
}

func (a *App) showEditBar(prompt client.EditPrompt) {
	a.editActive = true
	a.editBar.Activate(prompt.ID, prompt.Text)
	a.root.ResizeItem(a.editBar, 3, 0)
	a.app.SetFocus(a.editBar)
}

func (a *App) hideEditBar() {
	a.editActive = false
	a.root.ResizeItem(a.editBar, 0, 0)
	a.app.SetFocus(a.composer.InputField)
}

func (a *App) redraw() {
	a.msgView.Update(a.session.Mirror.Messages())

	// Hide the local user's own presence.
	active := a.session.Typing.Active()
	others := active[:0]
	for _, u := range active {
		if u != a.username {
			others = append(others, u)
		}
	}
	a.typingBar.Update(others)

	if prompt := a.session.Mirror.Prompt(); prompt.Open && !a.editActive {
		a.showEditBar(prompt)
	}

	a.statusBar.SetConnected(a.connected)
	a.statusBar.SetFlash(a.session.Flash.Get())
}

// Run starts the TUI application and blocks until it stops.
func (a *App) Run() error {
	go a.refreshLoop()
	go func() {
		<-a.session.Client.Done()
		a.session.Flash.Set("Connection lost.", time.Hour)
		a.app.QueueUpdateDraw(func() {
			a.connected = false
			a.redraw()
		})
	}()

	return a.app.Run()
}

func (a *App) refreshLoop() {
	ticker := time.NewTicker(time.Second)
	defer ticker.Stop()
	for {
		select {
		case <-a.session.Mirror.RefreshCh():
		case <-ticker.C:
		case <-a.ctx.Done():
			return
		}
		a.app.QueueUpdateDraw(a.redraw)
	}
}

// Stop gracefully shuts down the TUI.
func (a *App) Stop() {
	a.cancel()
	a.app.Stop()
}
