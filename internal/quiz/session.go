package quiz

import (
	"strings"
	"time"

	"github.com/linxi/wordchamp/internal/catalog"
	"github.com/linxi/wordchamp/internal/progress"
)

// Feedback is the judged state of the current word.
type Feedback int

const (
	FeedbackNone Feedback = iota
	FeedbackCorrect
	FeedbackIncorrect
)

// Session drives one quiz run word by word. It is ephemeral: built by a
// Builder, discarded after the terminal history record is written.
type Session struct {
	words    []catalog.WordEntry
	mode     Mode
	prog     *progress.Progress
	index    int
	correct  int
	wrong    int
	feedback Feedback
	finished bool
}

func newSession(words []catalog.WordEntry, mode Mode, prog *progress.Progress) *Session {
	return &Session{words: words, mode: mode, prog: prog}
}

// Mode returns the active quiz mode.
func (s *Session) Mode() Mode { return s.mode }

// Len returns the number of words in the session.
func (s *Session) Len() int { return len(s.words) }

// Index returns the zero-based position of the current word.
func (s *Session) Index() int { return s.index }

// Words returns the session's ordered word list.
func (s *Session) Words() []catalog.WordEntry {
	out := make([]catalog.WordEntry, len(s.words))
	copy(out, s.words)
	return out
}

// Current returns the word being presented. ok is false once the session
// has finished.
func (s *Session) Current() (w catalog.WordEntry, ok bool) {
	if s.finished || s.index >= len(s.words) {
		return catalog.WordEntry{}, false
	}
	return s.words[s.index], true
}

// Prompt returns the text surface shown for the current word in the
// active mode.
func (s *Session) Prompt() string {
	w, ok := s.Current()
	if !ok {
		return ""
	}
	switch s.mode {
	case ModeSpellFromTranslation:
		return w.Translation
	case ModeSpellFromVisual:
		return w.VisualCue
	default:
		return w.English
	}
}

// Feedback returns the judged state of the current word.
func (s *Session) Feedback() Feedback { return s.feedback }

// CorrectCount returns the session's correct tally.
func (s *Session) CorrectCount() int { return s.correct }

// WrongCount returns the session's incorrect tally.
func (s *Session) WrongCount() int { return s.wrong }

// Finished reports whether the terminal state has been reached.
func (s *Session) Finished() bool { return s.finished }

// Submit judges a raw answer for the current word, updates the session
// tallies and the learner's progress, and moves to the feedback state.
// A submission while feedback is already showing is a no-op.
//
// Recognition mode compares the chosen option exactly against the
// translation; spelling modes compare the typed text case-insensitively
// with surrounding whitespace ignored.
func (s *Session) Submit(raw string) Feedback {
	if s.feedback != FeedbackNone || s.finished {
		return s.feedback
	}
	w, ok := s.Current()
	if !ok {
		return FeedbackNone
	}

	var correct bool
	if s.mode.IsSpelling() {
		correct = strings.EqualFold(strings.TrimSpace(raw), w.English)
	} else {
		correct = raw == w.Translation
	}

	if correct {
		s.correct++
		s.prog.RecordCorrect(w.ID)
		s.feedback = FeedbackCorrect
	} else {
		s.wrong++
		s.prog.RecordIncorrect(w.ID)
		s.feedback = FeedbackIncorrect
	}
	return s.feedback
}

// Advance leaves the feedback state and presents the next word. On the
// last word it finalizes instead: exactly one history record built from
// the tallies is appended to the learner's progress. Advance is a no-op
// before any submission.
func (s *Session) Advance() {
	if s.feedback == FeedbackNone || s.finished {
		return
	}
	s.feedback = FeedbackNone
	if s.index+1 < len(s.words) {
		s.index++
		return
	}
	s.finished = true
	s.prog.AppendHistory(progress.HistoryRecord{
		Timestamp:    time.Now(),
		WordsStudied: len(s.words),
		WrongCount:   s.wrong,
	})
}
