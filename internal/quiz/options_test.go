package quiz

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/linxi/wordchamp/internal/catalog"
)

func TestOptions_FourUniqueWithCorrectOnce(t *testing.T) {
	b := NewSeededBuilder(11)
	words := testWords(12)
	current := words[0]

	for i := 0; i < 50; i++ {
		opts := b.Options(words, current)
		require.Len(t, opts, 4)

		correct := 0
		seen := make(map[string]bool)
		for _, o := range opts {
			assert.False(t, seen[o], "duplicate option %q", o)
			seen[o] = true
			if o == current.Translation {
				correct++
			}
		}
		assert.Equal(t, 1, correct, "correct translation must appear exactly once")
	}
}

func TestOptions_ExcludesSameTranslation(t *testing.T) {
	b := NewSeededBuilder(12)
	// Two words sharing a translation: the duplicate must never distract.
	words := []catalog.WordEntry{
		{ID: "w1", English: "big", Translation: "大", Grade: 1},
		{ID: "w2", English: "large", Translation: "大", Grade: 1},
		{ID: "w3", English: "cat", Translation: "猫", Grade: 1},
		{ID: "w4", English: "dog", Translation: "狗", Grade: 1},
		{ID: "w5", English: "fish", Translation: "鱼", Grade: 1},
	}

	for i := 0; i < 20; i++ {
		opts := b.Options(words, words[0])
		count := 0
		for _, o := range opts {
			if o == "大" {
				count++
			}
		}
		assert.Equal(t, 1, count)
	}
}
