// Package setup implements the practice configuration screen: grade,
// unit, quiz mode, and session length are picked step by step.
package setup

import (
	"errors"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/linxi/wordchamp/internal/catalog"
	"github.com/linxi/wordchamp/internal/quiz"
	"github.com/linxi/wordchamp/internal/router"
	"github.com/linxi/wordchamp/internal/screen"
	"github.com/linxi/wordchamp/internal/screens/drill"
	"github.com/linxi/wordchamp/internal/screens/shared"
	"github.com/linxi/wordchamp/internal/ui/components"
	"github.com/linxi/wordchamp/internal/ui/layout"
	"github.com/linxi/wordchamp/internal/ui/theme"
)

type step int

const (
	stepGrade step = iota
	stepUnit
	stepMode
	stepLength
)

// SetupScreen walks the learner through session configuration.
type SetupScreen struct {
	state *shared.State

	step   step
	grade  int
	filter quiz.Filter
	mode   quiz.Mode

	menu   components.Menu
	errMsg string
}

var _ screen.Screen = (*SetupScreen)(nil)
var _ screen.KeyHintProvider = (*SetupScreen)(nil)

// New creates a SetupScreen starting at grade selection.
func New(state *shared.State) *SetupScreen {
	s := &SetupScreen{state: state}
	s.menu = s.gradeMenu()
	return s
}

func (s *SetupScreen) Title() string {
	return "选择关卡"
}

func (s *SetupScreen) Init() tea.Cmd {
	return nil
}

func (s *SetupScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "选择"},
		{Key: "Enter", Description: "确认"},
		{Key: "Esc", Description: "返回"},
	}
}

func (s *SetupScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	var cmd tea.Cmd
	s.menu, cmd = s.menu.Update(msg)
	return s, cmd
}

func (s *SetupScreen) gradeMenu() components.Menu {
	items := make([]components.MenuItem, 0, len(catalog.Grades()))
	for _, g := range catalog.Grades() {
		grade := g
		items = append(items, components.MenuItem{
			Label: fmt.Sprintf("%d 年级", grade),
			Action: func() tea.Cmd {
				s.grade = grade
				s.step = stepUnit
				s.menu = s.unitMenu()
				return nil
			},
		})
	}
	return components.NewMenu(items)
}

func (s *SetupScreen) unitMenu() components.Menu {
	items := []components.MenuItem{{
		Label: "全部单元",
		Action: func() tea.Cmd {
			s.filter = quiz.Filter{Grade: s.grade, AllUnits: true}
			s.step = stepMode
			s.menu = s.modeMenu()
			return nil
		},
	}}
	for _, u := range catalog.Units(s.grade) {
		unit := u
		label := fmt.Sprintf("第 %d 单元", unit)
		if unit == 0 {
			label = "预备单元 W"
		}
		items = append(items, components.MenuItem{
			Label: label,
			Action: func() tea.Cmd {
				s.filter = quiz.Filter{Grade: s.grade, Unit: unit}
				s.step = stepMode
				s.menu = s.modeMenu()
				return nil
			},
		})
	}
	return components.NewMenu(items)
}

func (s *SetupScreen) modeMenu() components.Menu {
	modes := []struct {
		label string
		mode  quiz.Mode
	}{
		{"看单词选意思", quiz.ModeRecognize},
		{"看意思拼单词", quiz.ModeSpellFromTranslation},
		{"看图标拼单词", quiz.ModeSpellFromVisual},
	}

	items := make([]components.MenuItem, 0, len(modes))
	for _, m := range modes {
		mode := m.mode
		items = append(items, components.MenuItem{
			Label: m.label,
			Action: func() tea.Cmd {
				s.mode = mode
				s.step = stepLength
				s.menu = s.lengthMenu()
				return nil
			},
		})
	}
	return components.NewMenu(items)
}

func (s *SetupScreen) lengthMenu() components.Menu {
	lengths := []struct {
		label  string
		length quiz.Length
	}{
		{"5 个单词", quiz.Finite(5)},
		{"10 个单词", quiz.Finite(10)},
		{"20 个单词", quiz.Finite(20)},
		{"全部单词", quiz.WholePool()},
	}

	items := make([]components.MenuItem, 0, len(lengths))
	for _, l := range lengths {
		length := l.length
		items = append(items, components.MenuItem{
			Label:  l.label,
			Action: func() tea.Cmd { return s.start(length) },
		})
	}
	return components.NewMenu(items)
}

func (s *SetupScreen) start(length quiz.Length) tea.Cmd {
	session, err := s.state.Builder.Build(catalog.All(), s.state.Progress, s.filter, s.mode, length)
	if errors.Is(err, quiz.ErrEmptyPool) {
		s.errMsg = "这个单元还没有单词，换一个试试吧"
		return nil
	}
	if err != nil {
		s.errMsg = err.Error()
		return nil
	}

	next := drill.New(s.state, session)
	return func() tea.Msg { return router.PushScreenMsg{Screen: next} }
}

func (s *SetupScreen) View(width, height int) string {
	var b strings.Builder

	prompts := map[step]string{
		stepGrade:  "选择年级",
		stepUnit:   "选择单元",
		stepMode:   "选择玩法",
		stepLength: "练多少个？",
	}
	b.WriteString(theme.Title.Render(prompts[s.step]))
	b.WriteString("\n\n")
	b.WriteString(s.menu.View())

	if s.errMsg != "" {
		b.WriteString("\n" + theme.Incorrect.Render(s.errMsg) + "\n")
	}

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, b.String())
}
