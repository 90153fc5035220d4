// Package home implements the main menu screen.
package home

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/linxi/wordchamp/internal/router"
	"github.com/linxi/wordchamp/internal/screen"
	"github.com/linxi/wordchamp/internal/screens/history"
	"github.com/linxi/wordchamp/internal/screens/setup"
	"github.com/linxi/wordchamp/internal/screens/shared"
	"github.com/linxi/wordchamp/internal/screens/wrongbook"
	"github.com/linxi/wordchamp/internal/ui/components"
	"github.com/linxi/wordchamp/internal/ui/theme"
)

// HomeScreen is the main menu.
type HomeScreen struct {
	state        *shared.State
	loginFactory func() screen.Screen
	menu         components.Menu
}

var _ screen.Screen = (*HomeScreen)(nil)

// New creates a HomeScreen. loginFactory builds the sign-in screen for
// the switch-account action.
func New(state *shared.State, loginFactory func() screen.Screen) *HomeScreen {
	s := &HomeScreen{state: state, loginFactory: loginFactory}

	s.menu = components.NewMenu([]components.MenuItem{
		{Label: "开始闯关", Action: func() tea.Cmd {
			return push(setup.New(state))
		}},
		{Label: "错题本", Action: func() tea.Cmd {
			return push(wrongbook.New(state))
		}},
		{Label: "学习记录", Action: func() tea.Cmd {
			return push(history.New(state))
		}},
		{Label: "切换账户", Action: func() tea.Cmd {
			state.SignOut()
			next := loginFactory()
			return func() tea.Msg { return router.ResetScreenMsg{Screen: next} }
		}},
		{Label: "退出", Action: func() tea.Cmd {
			return tea.Quit
		}},
	})

	return s
}

func push(next screen.Screen) tea.Cmd {
	return func() tea.Msg { return router.PushScreenMsg{Screen: next} }
}

func (s *HomeScreen) Title() string {
	return "主页"
}

func (s *HomeScreen) Init() tea.Cmd {
	return nil
}

func (s *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	var cmd tea.Cmd
	s.menu, cmd = s.menu.Update(msg)
	return s, cmd
}

func (s *HomeScreen) View(width, height int) string {
	var b strings.Builder

	name := ""
	if s.state.Active != nil {
		name = s.state.Active.Username
	}
	b.WriteString(theme.Title.Render(fmt.Sprintf("你好，%s！", name)))
	b.WriteString("\n")
	b.WriteString(theme.Subtitle.Render(fmt.Sprintf(
		"已掌握 %d 个单词 · 错题本里还有 %d 个",
		s.state.MasteredCount(), s.state.WrongCount())))
	b.WriteString("\n\n")
	b.WriteString(s.menu.View())

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, b.String())
}
