package quiz

import (
	"errors"
	"math/rand/v2"

	"github.com/linxi/wordchamp/internal/catalog"
	"github.com/linxi/wordchamp/internal/progress"
)

// ErrEmptyPool is returned when a filter matches no catalog words, or the
// wrong-word book is empty. No state is mutated in that case.
var ErrEmptyPool = errors.New("no words in the requested pool")

// Filter selects the curriculum slice a session draws from.
type Filter struct {
	Grade    int
	Unit     int
	AllUnits bool
}

// Builder computes the ordered word list for a new session.
type Builder struct {
	rng *rand.Rand
}

// NewBuilder returns a Builder with a randomly seeded source.
func NewBuilder() *Builder {
	return &Builder{rng: rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))}
}

// NewSeededBuilder returns a Builder with a deterministic source, for tests.
func NewSeededBuilder(seed uint64) *Builder {
	return &Builder{rng: rand.New(rand.NewPCG(seed, seed))}
}

// Build produces a session from the catalog and the learner's progress.
//
// The filtered pool minus the mastered set forms the working set. When the
// learner has mastered the whole pool, mastery is reset for exactly the
// pool's ids so the words recycle; an empty filter result is ErrEmptyPool.
// The working set is shuffled and truncated to the length target.
func (b *Builder) Build(words []catalog.WordEntry, prog *progress.Progress, f Filter, mode Mode, length Length) (*Session, error) {
	var pool []catalog.WordEntry
	for _, w := range words {
		if w.Grade != f.Grade {
			continue
		}
		if !f.AllUnits && w.Unit != f.Unit {
			continue
		}
		pool = append(pool, w)
	}
	if len(pool) == 0 {
		return nil, ErrEmptyPool
	}

	var available []catalog.WordEntry
	for _, w := range pool {
		if !prog.IsMastered(w.ID) {
			available = append(available, w)
		}
	}
	if len(available) == 0 {
		ids := make([]string, len(pool))
		for i, w := range pool {
			ids[i] = w.ID
		}
		prog.ResetMastery(ids)
		available = pool
	}

	b.shuffle(available)
	if !length.IsAll() && len(available) > length.N() {
		available = available[:length.N()]
	}

	return newSession(available, mode, prog), nil
}

// BuildWrongBook produces a session over the entire wrong-word book,
// shuffled, ignoring grade and unit. Book entries whose words have left
// the catalog are skipped.
func (b *Builder) BuildWrongBook(prog *progress.Progress, mode Mode) (*Session, error) {
	var pool []catalog.WordEntry
	for _, rec := range prog.WrongWords() {
		w, err := catalog.Lookup(rec.WordID)
		if err != nil {
			continue
		}
		pool = append(pool, w)
	}
	if len(pool) == 0 {
		return nil, ErrEmptyPool
	}

	b.shuffle(pool)
	return newSession(pool, mode, prog), nil
}

func (b *Builder) shuffle(words []catalog.WordEntry) {
	b.rng.Shuffle(len(words), func(i, j int) {
		words[i], words[j] = words[j], words[i]
	})
}
