// Package drill implements the quiz screen where words are answered
// one at a time.
package drill

import (
	"context"
	"fmt"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/linxi/wordchamp/internal/catalog"
	"github.com/linxi/wordchamp/internal/quiz"
	"github.com/linxi/wordchamp/internal/router"
	"github.com/linxi/wordchamp/internal/screen"
	"github.com/linxi/wordchamp/internal/screens/report"
	"github.com/linxi/wordchamp/internal/screens/shared"
	"github.com/linxi/wordchamp/internal/ui/components"
	"github.com/linxi/wordchamp/internal/ui/layout"
	"github.com/linxi/wordchamp/internal/ui/theme"

	"github.com/linxi/wordchamp/internal/explain"
)

type phase int

const (
	phaseAnswer phase = iota
	phaseCorrect
	phaseWrong
)

const (
	correctPause = 700 * time.Millisecond
	pollInterval = 100 * time.Millisecond
)

type advanceMsg struct{}
type pollMsg struct{}

// DrillScreen runs one quiz session.
type DrillScreen struct {
	state   *shared.State
	session *quiz.Session

	phase       phase
	choice      components.MultiChoice
	input       components.TextInput
	explanation *explain.Explanation
	saveErr     error
}

var _ screen.Screen = (*DrillScreen)(nil)
var _ screen.KeyHintProvider = (*DrillScreen)(nil)

// New creates a DrillScreen for a built session.
func New(state *shared.State, session *quiz.Session) *DrillScreen {
	s := &DrillScreen{state: state, session: session}
	s.loadWord()
	return s
}

func (s *DrillScreen) Title() string {
	return "闯关中"
}

func (s *DrillScreen) Init() tea.Cmd {
	if s.session.Mode().IsSpelling() {
		return s.input.Init()
	}
	return nil
}

func (s *DrillScreen) KeyHints() []layout.KeyHint {
	switch s.phase {
	case phaseWrong:
		return []layout.KeyHint{{Key: "Enter", Description: "记住了，继续"}}
	default:
		if s.session.Mode().IsSpelling() {
			return []layout.KeyHint{{Key: "Enter", Description: "提交"}}
		}
		return []layout.KeyHint{
			{Key: "↑↓/1-4", Description: "选择"},
			{Key: "Enter", Description: "提交"},
		}
	}
}

// loadWord prepares the input component for the current word.
func (s *DrillScreen) loadWord() {
	s.phase = phaseAnswer
	s.explanation = nil

	word, ok := s.session.Current()
	if !ok {
		return
	}
	if s.session.Mode() == quiz.ModeRecognize {
		options := s.state.Builder.Options(catalog.All(), word)
		correct := 0
		for i, opt := range options {
			if opt == word.Translation {
				correct = i
				break
			}
		}
		question := fmt.Sprintf("%s  %s", word.English, word.Phonetic)
		s.choice = components.NewMultiChoice(question, options, correct)
	} else {
		s.input = components.NewTextInput("拼出这个单词", true, 32)
	}
}

func (s *DrillScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg.(type) {
	case advanceMsg:
		if s.phase == phaseCorrect {
			return s, s.advance()
		}
		return s, nil
	case pollMsg:
		if s.phase != phaseWrong {
			return s, nil
		}
		if exp, ok := s.state.Explainer.Consume(); ok {
			s.explanation = exp
			return s, nil
		}
		return s, poll()
	}

	switch s.phase {
	case phaseWrong:
		if kmsg, ok := msg.(tea.KeyMsg); ok && kmsg.String() == "enter" {
			return s, s.advance()
		}
		return s, nil

	case phaseCorrect:
		return s, nil
	}

	// phaseAnswer
	if s.session.Mode() == quiz.ModeRecognize {
		var cmd tea.Cmd
		s.choice, cmd = s.choice.Update(msg)
		if s.choice.Submitted {
			return s, s.submit(s.choice.Chosen())
		}
		return s, cmd
	}

	if kmsg, ok := msg.(tea.KeyMsg); ok && kmsg.String() == "enter" {
		if strings.TrimSpace(s.input.Value()) == "" {
			return s, nil
		}
		return s, s.submit(s.input.Value())
	}

	var cmd tea.Cmd
	s.input, cmd = s.input.Update(msg)
	return s, cmd
}

func (s *DrillScreen) submit(answer string) tea.Cmd {
	word, ok := s.session.Current()
	if !ok {
		return nil
	}
	feedback := s.session.Submit(answer)

	if s.session.Mode().IsSpelling() {
		s.input.Submit(feedback == quiz.FeedbackCorrect)
	}

	if feedback == quiz.FeedbackCorrect {
		s.phase = phaseCorrect
		return tea.Tick(correctPause, func(time.Time) tea.Msg { return advanceMsg{} })
	}

	// Wrong answer: ask for a memory aid and wait for acknowledgment.
	s.phase = phaseWrong
	s.state.Explainer.Request(context.Background(), word)
	return poll()
}

func poll() tea.Cmd {
	return tea.Tick(pollInterval, func(time.Time) tea.Msg { return pollMsg{} })
}

func (s *DrillScreen) advance() tea.Cmd {
	s.session.Advance()

	if !s.session.Finished() {
		s.loadWord()
		if s.session.Mode().IsSpelling() {
			return s.input.Init()
		}
		return nil
	}

	ctx := context.Background()
	s.saveErr = s.state.SaveProgress(ctx)
	if hist := s.state.Progress.History(); s.saveErr == nil && len(hist) > 0 {
		s.saveErr = s.state.AppendHistory(ctx, hist[len(hist)-1])
	}

	next := report.New(s.session.Summary(), s.saveErr)
	return func() tea.Msg { return router.ReplaceScreenMsg{Screen: next} }
}

func (s *DrillScreen) View(width, height int) string {
	var b strings.Builder

	bar := components.NewProgressBar(
		fmt.Sprintf("第 %d / %d 题", s.session.Index()+1, s.session.Len()),
		float64(s.session.Index())/float64(s.session.Len()),
		false, min(width-8, 60))
	b.WriteString(bar.View())
	b.WriteString("\n\n")

	word, ok := s.session.Current()
	if !ok {
		return ""
	}

	switch s.session.Mode() {
	case quiz.ModeRecognize:
		b.WriteString(s.choice.View())
	case quiz.ModeSpellFromTranslation:
		b.WriteString(theme.Body.Bold(true).Render(word.Translation) + "\n\n")
		b.WriteString(s.input.View() + "\n")
	case quiz.ModeSpellFromVisual:
		cue := lipgloss.NewStyle().Foreground(theme.Accent).Render(word.VisualCue)
		b.WriteString(cue + "  " + theme.Hint.Render(word.Phonetic) + "\n\n")
		b.WriteString(s.input.View() + "\n")
	}

	switch s.phase {
	case phaseCorrect:
		b.WriteString("\n" + theme.Correct.Render("✓ 答对了！") + "\n")
	case phaseWrong:
		b.WriteString("\n" + theme.Incorrect.Render(
			fmt.Sprintf("✗ 正确答案：%s（%s）", word.English, word.Translation)) + "\n\n")
		b.WriteString(s.explanationView(min(width-12, 64)))
	}

	card := theme.Card.Width(min(width-4, 72)).Render(b.String())
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, card)
}

func (s *DrillScreen) explanationView(width int) string {
	if s.explanation == nil {
		return theme.Hint.Render("单词小老师正在想办法帮你记住它…")
	}

	exp := s.explanation
	label := lipgloss.NewStyle().Foreground(theme.Secondary).Bold(true)
	body := lipgloss.NewStyle().Foreground(theme.Text).Width(width)

	var b strings.Builder
	b.WriteString(label.Render("💡 意思") + "\n" + body.Render(exp.Meaning) + "\n\n")
	b.WriteString(label.Render("😂 搞笑例句") + "\n" + body.Render(exp.FunnySentence) + "\n\n")
	b.WriteString(label.Render("📖 小故事") + "\n" + body.Render(exp.Story) + "\n\n")
	b.WriteString(label.Render("🧠 记忆妙招") + "\n" + body.Render(exp.Mnemonic) + "\n")
	return b.String()
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
