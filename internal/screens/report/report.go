// Package report implements the end-of-session summary screen.
package report

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/linxi/wordchamp/internal/quiz"
	"github.com/linxi/wordchamp/internal/router"
	"github.com/linxi/wordchamp/internal/screen"
	"github.com/linxi/wordchamp/internal/ui/layout"
	"github.com/linxi/wordchamp/internal/ui/theme"
)

// ReportScreen displays the session result.
type ReportScreen struct {
	summary quiz.Summary
	saveErr error
}

var _ screen.Screen = (*ReportScreen)(nil)
var _ screen.KeyHintProvider = (*ReportScreen)(nil)

// New creates a ReportScreen. saveErr is surfaced when persisting the
// session failed, the result itself is still shown.
func New(summary quiz.Summary, saveErr error) *ReportScreen {
	return &ReportScreen{summary: summary, saveErr: saveErr}
}

func (s *ReportScreen) Title() string {
	return "战报"
}

func (s *ReportScreen) Init() tea.Cmd {
	return nil
}

func (s *ReportScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Enter", Description: "回到主页"},
	}
}

func (s *ReportScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyMsg); ok {
		switch kmsg.String() {
		case "enter", "esc":
			// Pop the report and the setup screen underneath it.
			return s, tea.Sequence(
				func() tea.Msg { return router.PopScreenMsg{} },
				func() tea.Msg { return router.PopScreenMsg{} },
			)
		}
	}
	return s, nil
}

func (s *ReportScreen) View(width, height int) string {
	var b strings.Builder

	heading := "太棒了！"
	switch {
	case s.summary.AccuracyPercent == 100:
		heading = "完美通关！🏆"
	case s.summary.AccuracyPercent < 60:
		heading = "继续加油！💪"
	}
	b.WriteString(theme.Title.Render(heading))
	b.WriteString("\n\n")

	stats := fmt.Sprintf("单词: %d    答对: %d    答错: %d    正确率: %d%%",
		s.summary.Words, s.summary.Correct, s.summary.Wrong, s.summary.AccuracyPercent)
	b.WriteString(theme.Body.Render(stats))
	b.WriteString("\n")

	if s.summary.Wrong > 0 {
		b.WriteString("\n" + theme.Hint.Render(
			fmt.Sprintf("答错的 %d 个单词已收进错题本，别忘了复习哦", s.summary.Wrong)) + "\n")
	}

	if s.saveErr != nil {
		b.WriteString("\n" + theme.Incorrect.Render(
			fmt.Sprintf("进度保存失败: %v", s.saveErr)) + "\n")
	}

	card := theme.Card.Render(b.String())
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, card)
}
