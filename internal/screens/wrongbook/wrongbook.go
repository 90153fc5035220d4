// Package wrongbook implements the wrong-word book screen: a review
// list plus entry points to drill the collected words.
package wrongbook

import (
	"errors"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/linxi/wordchamp/internal/catalog"
	"github.com/linxi/wordchamp/internal/progress"
	"github.com/linxi/wordchamp/internal/quiz"
	"github.com/linxi/wordchamp/internal/router"
	"github.com/linxi/wordchamp/internal/screen"
	"github.com/linxi/wordchamp/internal/screens/drill"
	"github.com/linxi/wordchamp/internal/screens/shared"
	"github.com/linxi/wordchamp/internal/ui/layout"
	"github.com/linxi/wordchamp/internal/ui/theme"
)

// WrongBookScreen lists the learner's wrong words and their progress
// toward retirement.
type WrongBookScreen struct {
	state  *shared.State
	errMsg string
}

var _ screen.Screen = (*WrongBookScreen)(nil)
var _ screen.KeyHintProvider = (*WrongBookScreen)(nil)

// New creates a WrongBookScreen.
func New(state *shared.State) *WrongBookScreen {
	return &WrongBookScreen{state: state}
}

func (s *WrongBookScreen) Title() string {
	return "错题本"
}

func (s *WrongBookScreen) Init() tea.Cmd {
	return nil
}

func (s *WrongBookScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Enter", Description: "选择题复习"},
		{Key: "S", Description: "拼写复习"},
		{Key: "Esc", Description: "返回"},
	}
}

func (s *WrongBookScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return s, nil
	}

	switch kmsg.String() {
	case "enter":
		return s, s.startDrill(quiz.ModeRecognize)
	case "s":
		return s, s.startDrill(quiz.ModeSpellFromTranslation)
	}
	return s, nil
}

func (s *WrongBookScreen) startDrill(mode quiz.Mode) tea.Cmd {
	session, err := s.state.Builder.BuildWrongBook(s.state.Progress, mode)
	if errors.Is(err, quiz.ErrEmptyPool) {
		s.errMsg = "错题本是空的，太厉害了！"
		return nil
	}
	if err != nil {
		s.errMsg = err.Error()
		return nil
	}

	next := drill.New(s.state, session)
	return func() tea.Msg { return router.PushScreenMsg{Screen: next} }
}

func (s *WrongBookScreen) View(width, height int) string {
	var b strings.Builder

	wrong := s.state.Progress.WrongWords()
	if len(wrong) == 0 {
		b.WriteString(theme.Title.Render("错题本是空的"))
		b.WriteString("\n\n")
		b.WriteString(theme.Subtitle.Render("答错的单词会自动收进来，连对 3 次就能毕业"))
		return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, b.String())
	}

	b.WriteString(theme.Title.Render(fmt.Sprintf("还有 %d 个单词等着你", len(wrong))))
	b.WriteString("\n\n")

	for _, w := range wrong {
		b.WriteString(s.renderEntry(w, min(width-8, 64)))
	}

	if s.errMsg != "" {
		b.WriteString("\n" + theme.Incorrect.Render(s.errMsg) + "\n")
	}

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, b.String())
}

func (s *WrongBookScreen) renderEntry(w progress.WrongWordRecord, width int) string {
	word, err := catalog.Lookup(w.WordID)
	if err != nil {
		return ""
	}

	stars := strings.Repeat("●", w.ConsecutiveCorrect) +
		strings.Repeat("○", progress.MasteryThreshold-w.ConsecutiveCorrect)

	left := fmt.Sprintf("  %s %s  %s", word.VisualCue, word.English, word.Translation)
	right := lipgloss.NewStyle().Foreground(theme.Accent).Render(stars)

	gap := width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 1 {
		gap = 1
	}

	return theme.Body.Render(left) + strings.Repeat(" ", gap) + right + "\n"
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
