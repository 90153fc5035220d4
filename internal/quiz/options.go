package quiz

import "github.com/linxi/wordchamp/internal/catalog"

// optionCount is the size of a recognition-mode option set.
const optionCount = 4

// Options builds the recognition-mode option set for word: three distinct
// distractor translations drawn uniformly from the rest of the catalog,
// plus the correct translation, shuffled. The correct answer appears
// exactly once and no option text repeats.
func (b *Builder) Options(all []catalog.WordEntry, word catalog.WordEntry) []string {
	var candidates []catalog.WordEntry
	for _, w := range all {
		if w.Translation != word.Translation {
			candidates = append(candidates, w)
		}
	}
	b.shuffle(candidates)

	options := []string{word.Translation}
	seen := map[string]bool{word.Translation: true}
	for _, c := range candidates {
		if len(options) == optionCount {
			break
		}
		if seen[c.Translation] {
			continue
		}
		seen[c.Translation] = true
		options = append(options, c.Translation)
	}

	b.rng.Shuffle(len(options), func(i, j int) {
		options[i], options[j] = options[j], options[i]
	})
	return options
}
