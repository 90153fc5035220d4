// Package history implements the session history screen.
package history

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/linxi/wordchamp/internal/quiz"
	"github.com/linxi/wordchamp/internal/screen"
	"github.com/linxi/wordchamp/internal/screens/shared"
	"github.com/linxi/wordchamp/internal/ui/layout"
	"github.com/linxi/wordchamp/internal/ui/theme"
)

// maxRows caps how many sessions are shown, newest first.
const maxRows = 15

// HistoryScreen shows past session records.
type HistoryScreen struct {
	state *shared.State
}

var _ screen.Screen = (*HistoryScreen)(nil)
var _ screen.KeyHintProvider = (*HistoryScreen)(nil)

// New creates a HistoryScreen.
func New(state *shared.State) *HistoryScreen {
	return &HistoryScreen{state: state}
}

func (s *HistoryScreen) Title() string {
	return "学习记录"
}

func (s *HistoryScreen) Init() tea.Cmd {
	return nil
}

func (s *HistoryScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{{Key: "Esc", Description: "返回"}}
}

func (s *HistoryScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	return s, nil
}

func (s *HistoryScreen) View(width, height int) string {
	var b strings.Builder

	records := s.state.Progress.History()
	if len(records) == 0 {
		b.WriteString(theme.Title.Render("还没有学习记录"))
		b.WriteString("\n\n")
		b.WriteString(theme.Subtitle.Render("完成一次闯关后，记录会出现在这里"))
		return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, b.String())
	}

	b.WriteString(theme.Title.Render("学习记录"))
	b.WriteString("\n\n")

	header := fmt.Sprintf("  %-18s%-10s%-10s%s", "时间", "单词数", "错误数", "正确率")
	b.WriteString(lipgloss.NewStyle().Foreground(theme.TextDim).Render(header) + "\n")

	shown := 0
	for i := len(records) - 1; i >= 0 && shown < maxRows; i-- {
		rec := records[i]
		correct := rec.WordsStudied - rec.WrongCount
		acc := quiz.AccuracyPercent(correct, rec.WrongCount)
		line := fmt.Sprintf("  %-18s%-10d%-10d%d%%",
			rec.Timestamp.Format("2006-01-02 15:04"),
			rec.WordsStudied, rec.WrongCount, acc)
		b.WriteString(theme.Body.Render(line) + "\n")
		shown++
	}

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, b.String())
}
