package quiz

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/linxi/wordchamp/internal/catalog"
	"github.com/linxi/wordchamp/internal/progress"
)

// testWords builds a small grade-1 pool plus one grade-3 word.
func testWords(n int) []catalog.WordEntry {
	words := make([]catalog.WordEntry, 0, n+1)
	for i := 0; i < n; i++ {
		words = append(words, catalog.WordEntry{
			ID:          string(rune('a' + i)),
			English:     "word" + string(rune('a'+i)),
			Translation: "译" + string(rune('a'+i)),
			Grade:       1,
			Unit:        i%3 + 1,
		})
	}
	words = append(words, catalog.WordEntry{ID: "g3", English: "school", Translation: "学校", Grade: 3, Unit: 1})
	return words
}

func TestBuild_FiltersGradeAndDedupes(t *testing.T) {
	b := NewSeededBuilder(1)
	words := testWords(12)
	prog := progress.New()

	sess, err := b.Build(words, prog, Filter{Grade: 1, AllUnits: true}, ModeRecognize, Finite(10))
	require.NoError(t, err)

	assert.Equal(t, 10, sess.Len())
	seen := make(map[string]bool)
	for _, w := range sess.Words() {
		assert.Equal(t, 1, w.Grade)
		assert.False(t, seen[w.ID], "duplicate word %s in session", w.ID)
		seen[w.ID] = true
	}
}

func TestBuild_UnitFilter(t *testing.T) {
	b := NewSeededBuilder(2)
	words := testWords(12)

	sess, err := b.Build(words, progress.New(), Filter{Grade: 1, Unit: 2}, ModeRecognize, WholePool())
	require.NoError(t, err)

	for _, w := range sess.Words() {
		assert.Equal(t, 2, w.Unit)
	}
}

func TestBuild_EmptyPool(t *testing.T) {
	b := NewSeededBuilder(3)
	prog := progress.New()

	_, err := b.Build(testWords(12), prog, Filter{Grade: 5, AllUnits: true}, ModeRecognize, Finite(10))
	assert.ErrorIs(t, err, ErrEmptyPool)
	assert.Equal(t, 0, prog.MasteredCount(), "failed build must not mutate progress")
}

func TestBuild_SkipsMasteredWords(t *testing.T) {
	b := NewSeededBuilder(4)
	words := testWords(6)
	prog := progress.New()
	prog.RecordCorrect("a")
	prog.RecordCorrect("b")

	sess, err := b.Build(words, prog, Filter{Grade: 1, AllUnits: true}, ModeRecognize, WholePool())
	require.NoError(t, err)

	assert.Equal(t, 4, sess.Len())
	for _, w := range sess.Words() {
		assert.NotContains(t, []string{"a", "b"}, w.ID)
	}
}

func TestBuild_ExhaustionResetsOnlyPoolIDs(t *testing.T) {
	b := NewSeededBuilder(5)
	words := testWords(5)
	prog := progress.New()
	for _, w := range words[:5] {
		prog.RecordCorrect(w.ID)
	}
	prog.RecordCorrect("g3") // different grade, must survive the reset

	sess, err := b.Build(words, prog, Filter{Grade: 1, AllUnits: true}, ModeRecognize, Finite(3))
	require.NoError(t, err)

	assert.Equal(t, 3, sess.Len())
	for _, w := range sess.Words() {
		assert.Equal(t, 1, w.Grade)
		assert.False(t, prog.IsMastered(w.ID))
	}
	assert.True(t, prog.IsMastered("g3"), "reset must touch only the filtered pool")
}

func TestBuild_LengthAllKeepsPool(t *testing.T) {
	b := NewSeededBuilder(6)
	sess, err := b.Build(testWords(12), progress.New(), Filter{Grade: 1, AllUnits: true}, ModeSpellFromTranslation, WholePool())
	require.NoError(t, err)
	assert.Equal(t, 12, sess.Len())
}

func TestBuildWrongBook(t *testing.T) {
	b := NewSeededBuilder(7)
	prog := progress.New()
	prog.RecordIncorrect("1-1")
	prog.RecordIncorrect("3-1")

	sess, err := b.BuildWrongBook(prog, ModeSpellFromTranslation)
	require.NoError(t, err)

	assert.Equal(t, 2, sess.Len())
	ids := []string{sess.Words()[0].ID, sess.Words()[1].ID}
	assert.ElementsMatch(t, []string{"1-1", "3-1"}, ids)
}

func TestBuildWrongBook_Empty(t *testing.T) {
	b := NewSeededBuilder(8)
	_, err := b.BuildWrongBook(progress.New(), ModeRecognize)
	assert.ErrorIs(t, err, ErrEmptyPool)
}
