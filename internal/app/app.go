// Package app wires the screens together and runs the Bubble Tea
// program.
package app

import (
	"fmt"
	"os"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/linxi/wordchamp/internal/explain"
	"github.com/linxi/wordchamp/internal/profile"
	"github.com/linxi/wordchamp/internal/quiz"
	"github.com/linxi/wordchamp/internal/router"
	"github.com/linxi/wordchamp/internal/screen"
	"github.com/linxi/wordchamp/internal/screens/home"
	"github.com/linxi/wordchamp/internal/screens/login"
	"github.com/linxi/wordchamp/internal/screens/shared"
	"github.com/linxi/wordchamp/internal/store"
	"github.com/linxi/wordchamp/internal/ui/layout"
)

// Options holds the services the TUI runs on.
type Options struct {
	Store     *store.Store
	Profiles  *profile.Service
	Explainer *explain.Service
}

// AppModel is the root Bubble Tea model.
type AppModel struct {
	state  *shared.State
	router *router.Router
	width  int
	height int
}

// newAppModel creates an AppModel starting at the sign-in screen.
func newAppModel(opts Options) AppModel {
	state := &shared.State{
		Store:     opts.Store,
		Profiles:  opts.Profiles,
		Explainer: opts.Explainer,
		Builder:   quiz.NewBuilder(),
	}

	var newLogin func() screen.Screen
	newHome := func(st *shared.State) screen.Screen {
		return home.New(st, newLogin)
	}
	newLogin = func() screen.Screen {
		return login.New(state, newHome)
	}

	return AppModel{
		state:  state,
		router: router.New(newLogin()),
	}
}

func (m AppModel) Init() tea.Cmd {
	active := m.router.Active()
	if active == nil {
		return nil
	}
	return active.Init()
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit
		case "esc":
			if m.router.Depth() > 1 {
				return m, func() tea.Msg { return router.PopScreenMsg{} }
			}
			return m, nil
		}
	}

	cmd := m.router.Update(msg)
	return m, cmd
}

func (m AppModel) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true

	if m.width == 0 || m.height == 0 {
		return v
	}

	if layout.IsTooSmall(m.width, m.height) {
		v.SetContent(layout.RenderMinSizeMessage(m.width, m.height))
		return v
	}

	active := m.router.Active()
	title := ""
	if active != nil {
		title = active.Title()
	}

	header := layout.RenderHeader(title, m.state.MasteredCount(), m.state.WrongCount(), m.width)

	var footerHints []layout.KeyHint
	if hinter, ok := active.(screen.KeyHintProvider); ok {
		footerHints = hinter.KeyHints()
	} else if m.router.Depth() > 1 {
		footerHints = []layout.KeyHint{
			{Key: "Esc", Description: "返回"},
			{Key: "Ctrl+C", Description: "退出"},
		}
	} else {
		footerHints = []layout.KeyHint{
			{Key: "↑↓", Description: "选择"},
			{Key: "Enter", Description: "确认"},
			{Key: "Ctrl+C", Description: "退出"},
		}
	}

	footer := layout.RenderFooter(footerHints, m.width)

	headerHeight := lipgloss.Height(header)
	footerHeight := lipgloss.Height(footer)
	contentHeight := m.height - headerHeight - footerHeight
	if contentHeight < 0 {
		contentHeight = 0
	}

	content := m.router.View(m.width, contentHeight)
	frame := layout.RenderFrame(header, content, footer, m.width, m.height)

	v.SetContent(frame)
	return v
}

// Run starts the Bubble Tea program.
func Run(opts Options) error {
	p := tea.NewProgram(newAppModel(opts))
	if _, err := p.Run(); err != nil {
		fmt.Fprintln(os.Stderr, "Error running program:", err)
		return err
	}
	return nil
}
