package progress

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecordCorrect_AddsToMastered(t *testing.T) {
	p := New()
	p.RecordCorrect("1-1")

	assert.True(t, p.IsMastered("1-1"))
	assert.Equal(t, 1, p.MasteredCount())
}

func TestRecordCorrect_Idempotent(t *testing.T) {
	p := New()
	p.RecordCorrect("1-1")
	p.RecordCorrect("1-1")
	p.RecordCorrect("1-1")

	assert.Equal(t, 1, p.MasteredCount())
	assert.Equal(t, 0, p.WrongCount(), "no wrong-book side effect for untracked words")
}

func TestRecordIncorrect_InsertsOnce(t *testing.T) {
	p := New()
	p.RecordIncorrect("1-3")
	p.RecordIncorrect("1-3")

	require.Equal(t, 1, p.WrongCount())
	assert.Equal(t, 0, p.WrongWords()[0].ConsecutiveCorrect)
}

func TestWrongBook_RetiresAtThreshold(t *testing.T) {
	p := New()
	p.RecordIncorrect("1-3")

	p.RecordCorrect("1-3")
	p.RecordCorrect("1-3")
	require.Equal(t, 1, p.WrongCount())
	assert.Equal(t, 2, p.WrongWords()[0].ConsecutiveCorrect)

	// Third consecutive correct retires the record.
	p.RecordCorrect("1-3")
	assert.Equal(t, 0, p.WrongCount())
	assert.True(t, p.IsMastered("1-3"))
}

func TestWrongBook_IncorrectResetsCounter(t *testing.T) {
	p := New()
	p.RecordIncorrect("2-4")
	p.RecordCorrect("2-4")
	p.RecordCorrect("2-4")

	p.RecordIncorrect("2-4")

	require.Equal(t, 1, p.WrongCount())
	assert.Equal(t, 0, p.WrongWords()[0].ConsecutiveCorrect)

	// Two more corrects are not enough after the reset.
	p.RecordCorrect("2-4")
	p.RecordCorrect("2-4")
	assert.Equal(t, 1, p.WrongCount())
}

func TestResetMastery_OnlyGivenIDs(t *testing.T) {
	p := New()
	p.RecordCorrect("1-1")
	p.RecordCorrect("1-2")
	p.RecordCorrect("3-1")

	p.ResetMastery([]string{"1-1", "1-2"})

	assert.False(t, p.IsMastered("1-1"))
	assert.False(t, p.IsMastered("1-2"))
	assert.True(t, p.IsMastered("3-1"))
}

func TestAppendHistory(t *testing.T) {
	p := New()
	p.AppendHistory(HistoryRecord{Timestamp: time.Now(), WordsStudied: 10, WrongCount: 2})
	p.AppendHistory(HistoryRecord{Timestamp: time.Now(), WordsStudied: 5, WrongCount: 0})

	recs := p.History()
	require.Len(t, recs, 2)
	assert.Equal(t, 10, recs[0].WordsStudied)
	assert.Equal(t, 0, recs[1].WrongCount)
}

func TestRestore_RoundTrip(t *testing.T) {
	p := Restore(
		[]string{"1-1", "1-2"},
		[]WrongWordRecord{{WordID: "1-3", ConsecutiveCorrect: 2}},
		[]HistoryRecord{{WordsStudied: 8, WrongCount: 1}},
	)

	assert.Equal(t, 2, p.MasteredCount())
	require.Equal(t, 1, p.WrongCount())
	assert.Equal(t, 2, p.WrongWords()[0].ConsecutiveCorrect)
	assert.Len(t, p.History(), 1)

	// One correct answer from a restored counter of 2 retires the word.
	p.RecordCorrect("1-3")
	assert.Equal(t, 0, p.WrongCount())
	assert.True(t, p.IsMastered("1-3"))
}
