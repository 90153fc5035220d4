// Package login implements the sign-in and registration screen.
package login

import (
	"context"
	"errors"
	"strings"

	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/linxi/wordchamp/internal/profile"
	"github.com/linxi/wordchamp/internal/router"
	"github.com/linxi/wordchamp/internal/screen"
	"github.com/linxi/wordchamp/internal/screens/shared"
	"github.com/linxi/wordchamp/internal/store"
	"github.com/linxi/wordchamp/internal/ui/components"
	"github.com/linxi/wordchamp/internal/ui/layout"
	"github.com/linxi/wordchamp/internal/ui/theme"
)

type mode int

const (
	modeLogin mode = iota
	modeRegister
)

// LoginScreen authenticates or registers a learner. When the database
// holds no accounts yet it starts in registration and the new account
// becomes the admin.
type LoginScreen struct {
	state       *shared.State
	homeFactory func(*shared.State) screen.Screen

	mode     mode
	firstRun bool
	focus    int // 0 = username, 1 = password
	username components.TextInput
	password components.TextInput
	errMsg   string
}

var _ screen.Screen = (*LoginScreen)(nil)
var _ screen.KeyHintProvider = (*LoginScreen)(nil)

// New creates a LoginScreen. homeFactory builds the screen shown after
// a successful sign-in.
func New(state *shared.State, homeFactory func(*shared.State) screen.Screen) *LoginScreen {
	username := components.NewTextInput("用户名", false, 24)
	password := components.NewTextInput("密码", false, 64)
	password.Model.EchoMode = textinput.EchoPassword
	password.Model.Blur()

	s := &LoginScreen{
		state:       state,
		homeFactory: homeFactory,
		username:    username,
		password:    password,
	}

	if any, err := state.Profiles.HasAny(context.Background()); err == nil && !any {
		s.mode = modeRegister
		s.firstRun = true
	}

	return s
}

func (s *LoginScreen) Title() string {
	if s.mode == modeRegister {
		return "新账户"
	}
	return "登录"
}

func (s *LoginScreen) Init() tea.Cmd {
	return s.username.Init()
}

func (s *LoginScreen) KeyHints() []layout.KeyHint {
	hints := []layout.KeyHint{
		{Key: "Tab", Description: "切换输入框"},
		{Key: "Enter", Description: "确认"},
	}
	if !s.firstRun {
		hints = append(hints, layout.KeyHint{Key: "Ctrl+R", Description: "登录/注册"})
	}
	return append(hints, layout.KeyHint{Key: "Ctrl+C", Description: "退出"})
}

func (s *LoginScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyMsg); ok {
		switch kmsg.String() {
		case "tab", "shift+tab":
			s.toggleFocus()
			return s, nil
		case "ctrl+r":
			if !s.firstRun {
				if s.mode == modeLogin {
					s.mode = modeRegister
				} else {
					s.mode = modeLogin
				}
				s.errMsg = ""
			}
			return s, nil
		case "enter":
			if s.focus == 0 {
				s.toggleFocus()
				return s, nil
			}
			return s, s.submit()
		}
	}

	var cmd tea.Cmd
	if s.focus == 0 {
		s.username, cmd = s.username.Update(msg)
	} else {
		s.password, cmd = s.password.Update(msg)
	}
	return s, cmd
}

func (s *LoginScreen) toggleFocus() {
	if s.focus == 0 {
		s.focus = 1
		s.username.Model.Blur()
		s.password.Model.Focus()
	} else {
		s.focus = 0
		s.password.Model.Blur()
		s.username.Model.Focus()
	}
}

func (s *LoginScreen) submit() tea.Cmd {
	ctx := context.Background()
	username := strings.TrimSpace(s.username.Value())
	password := s.password.Value()

	var p *profile.Profile
	var err error
	if s.mode == modeRegister {
		role := profile.RoleLearner
		if s.firstRun {
			role = profile.RoleAdmin
		}
		p, err = s.state.Profiles.Register(ctx, username, password, role)
	} else {
		p, err = s.state.Profiles.Login(ctx, username, password)
	}

	switch {
	case errors.Is(err, profile.ErrInvalidCredential):
		s.errMsg = "用户名或密码不对，再试一次吧"
		return nil
	case errors.Is(err, store.ErrProfileExists):
		s.errMsg = "这个名字已经被用了，换一个吧"
		return nil
	case err != nil:
		s.errMsg = err.Error()
		return nil
	}

	if err := s.state.SignIn(ctx, p); err != nil {
		s.errMsg = err.Error()
		return nil
	}

	home := s.homeFactory(s.state)
	return func() tea.Msg {
		return router.ReplaceScreenMsg{Screen: home}
	}
}

func (s *LoginScreen) View(width, height int) string {
	var b strings.Builder

	heading := "欢迎回来！"
	if s.mode == modeRegister {
		heading = "创建你的账户"
		if s.firstRun {
			heading = "第一次见面，创建一个账户吧！"
		}
	}
	b.WriteString(theme.Title.Render(heading))
	b.WriteString("\n\n")

	label := lipgloss.NewStyle().Foreground(theme.TextDim)
	b.WriteString(label.Render("用户名") + "\n")
	b.WriteString(s.username.View() + "\n\n")
	b.WriteString(label.Render("密码") + "\n")
	b.WriteString(s.password.View() + "\n")

	if s.errMsg != "" {
		b.WriteString("\n" + theme.Incorrect.Render(s.errMsg) + "\n")
	}

	card := theme.Card.Render(b.String())
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, card)
}
