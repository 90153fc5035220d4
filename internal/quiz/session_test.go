package quiz

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/linxi/wordchamp/internal/catalog"
	"github.com/linxi/wordchamp/internal/progress"
)

func buildTestSession(t *testing.T, mode Mode, n int) (*Session, *progress.Progress) {
	t.Helper()
	b := NewSeededBuilder(42)
	prog := progress.New()
	sess, err := b.Build(testWords(n), prog, Filter{Grade: 1, AllUnits: true}, mode, WholePool())
	require.NoError(t, err)
	return sess, prog
}

func TestSubmit_RecognitionExactMatch(t *testing.T) {
	sess, prog := buildTestSession(t, ModeRecognize, 4)
	w, ok := sess.Current()
	require.True(t, ok)

	fb := sess.Submit(w.Translation)
	assert.Equal(t, FeedbackCorrect, fb)
	assert.Equal(t, 1, sess.CorrectCount())
	assert.True(t, prog.IsMastered(w.ID))
}

func TestSubmit_SpellingIsCaseAndSpaceInsensitive(t *testing.T) {
	sess, _ := buildTestSession(t, ModeSpellFromTranslation, 4)
	w, _ := sess.Current()

	fb := sess.Submit("  " + strings.ToUpper(w.English) + " ")
	assert.Equal(t, FeedbackCorrect, fb)
}

func TestSubmit_IncorrectTracksWrongBook(t *testing.T) {
	sess, prog := buildTestSession(t, ModeSpellFromTranslation, 4)
	w, _ := sess.Current()

	fb := sess.Submit("definitely wrong")
	assert.Equal(t, FeedbackIncorrect, fb)
	assert.Equal(t, 1, sess.WrongCount())
	require.Equal(t, 1, prog.WrongCount())
	assert.Equal(t, w.ID, prog.WrongWords()[0].WordID)
}

func TestSubmit_DoubleSubmitIsNoOp(t *testing.T) {
	sess, _ := buildTestSession(t, ModeSpellFromTranslation, 4)

	sess.Submit("wrong answer")
	require.Equal(t, FeedbackIncorrect, sess.Feedback())

	// A second submission while feedback shows must change nothing.
	w, _ := sess.Current()
	fb := sess.Submit(w.English)
	assert.Equal(t, FeedbackIncorrect, fb)
	assert.Equal(t, 0, sess.CorrectCount())
	assert.Equal(t, 1, sess.WrongCount())
}

func TestAdvance_RequiresFeedback(t *testing.T) {
	sess, _ := buildTestSession(t, ModeRecognize, 4)
	sess.Advance()
	assert.Equal(t, 0, sess.Index())
}

func TestSession_RunToTerminal(t *testing.T) {
	sess, prog := buildTestSession(t, ModeSpellFromTranslation, 3)

	for i := 0; i < 3; i++ {
		w, ok := sess.Current()
		require.True(t, ok)
		if i == 1 {
			sess.Submit("nope")
		} else {
			sess.Submit(w.English)
		}
		sess.Advance()
	}

	assert.True(t, sess.Finished())
	_, ok := sess.Current()
	assert.False(t, ok)
	assert.Equal(t, 2, sess.CorrectCount())
	assert.Equal(t, 1, sess.WrongCount())

	// Exactly one history record, built from the tallies.
	recs := prog.History()
	require.Len(t, recs, 1)
	assert.Equal(t, 3, recs[0].WordsStudied)
	assert.Equal(t, 1, recs[0].WrongCount)

	sum := sess.Summary()
	assert.Equal(t, 3, sum.Words)
	assert.Equal(t, 67, sum.AccuracyPercent)
}

func TestSession_WrongBookCounterAdvancesAcrossSessions(t *testing.T) {
	prog := progress.New()
	prog.RecordIncorrect("a")
	prog.RecordCorrect("a")
	prog.RecordCorrect("a") // counter now 2
	prog.ResetMastery([]string{"a"})

	b := NewSeededBuilder(9)
	words := []catalog.WordEntry{{ID: "a", English: "worda", Translation: "译a", Grade: 1, Unit: 1}}
	sess, err := b.Build(words, prog, Filter{Grade: 1, AllUnits: true}, ModeSpellFromTranslation, WholePool())
	require.NoError(t, err)

	sess.Submit("worda")
	assert.Equal(t, 0, prog.WrongCount(), "third correct answer retires the word")
	assert.True(t, prog.IsMastered("a"))
}

func TestSession_PromptPerMode(t *testing.T) {
	w := catalog.WordEntry{ID: "x", English: "cat", Translation: "猫", VisualCue: "🐱", Grade: 1, Unit: 1}
	prog := progress.New()

	for _, tt := range []struct {
		mode Mode
		want string
	}{
		{ModeRecognize, "cat"},
		{ModeSpellFromTranslation, "猫"},
		{ModeSpellFromVisual, "🐱"},
	} {
		sess := newSession([]catalog.WordEntry{w}, tt.mode, prog)
		if got := sess.Prompt(); got != tt.want {
			t.Errorf("Prompt() in %s = %q, want %q", tt.mode, got, tt.want)
		}
	}
}