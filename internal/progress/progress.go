// Package progress models a learner's durable mastery state: the set of
// mastered word ids, the wrong-word book with its decay counters, and the
// session history. All operations are pure in-memory transformations; the
// store package owns the durable load/save boundary.
package progress

import "time"

// MasteryThreshold is the number of consecutive correct answers that
// retires a word from the wrong-word book.
const MasteryThreshold = 3

// WrongWordRecord tracks one word in the wrong-word book.
type WrongWordRecord struct {
	WordID string
	// ConsecutiveCorrect counts correct answers since the last miss.
	// Reset to zero on any incorrect answer.
	ConsecutiveCorrect int
}

// HistoryRecord summarizes one completed session. Append-only.
type HistoryRecord struct {
	Timestamp    time.Time
	WordsStudied int
	WrongCount   int
}

// Progress is one learner's full state. The zero value is not usable;
// call New.
type Progress struct {
	mastered map[string]bool
	wrong    []WrongWordRecord
	history  []HistoryRecord
}

// New returns an empty Progress.
func New() *Progress {
	return &Progress{mastered: make(map[string]bool)}
}

// Restore rebuilds a Progress from persisted parts.
func Restore(masteredIDs []string, wrong []WrongWordRecord, history []HistoryRecord) *Progress {
	p := New()
	for _, id := range masteredIDs {
		p.mastered[id] = true
	}
	p.wrong = append(p.wrong, wrong...)
	p.history = append(p.history, history...)
	return p
}

// IsMastered reports whether the word id is in the mastered set.
func (p *Progress) IsMastered(wordID string) bool {
	return p.mastered[wordID]
}

// MasteredIDs returns the mastered word ids in insertion-independent order.
func (p *Progress) MasteredIDs() []string {
	out := make([]string, 0, len(p.mastered))
	for id := range p.mastered {
		out = append(out, id)
	}
	return out
}

// MasteredCount returns the size of the mastered set.
func (p *Progress) MasteredCount() int {
	return len(p.mastered)
}

// WrongWords returns a copy of the wrong-word book.
func (p *Progress) WrongWords() []WrongWordRecord {
	out := make([]WrongWordRecord, len(p.wrong))
	copy(out, p.wrong)
	return out
}

// WrongCount returns the number of words in the wrong-word book.
func (p *Progress) WrongCount() int {
	return len(p.wrong)
}

// History returns a copy of the session history, oldest first.
func (p *Progress) History() []HistoryRecord {
	out := make([]HistoryRecord, len(p.history))
	copy(out, p.history)
	return out
}

// RecordCorrect marks a correct answer for the word. The id joins the
// mastered set (re-adding is a no-op). If the word is in the wrong book,
// its counter advances; at MasteryThreshold the record is retired.
func (p *Progress) RecordCorrect(wordID string) {
	p.mastered[wordID] = true
	for i := range p.wrong {
		if p.wrong[i].WordID != wordID {
			continue
		}
		p.wrong[i].ConsecutiveCorrect++
		if p.wrong[i].ConsecutiveCorrect >= MasteryThreshold {
			p.wrong = append(p.wrong[:i], p.wrong[i+1:]...)
		}
		return
	}
}

// RecordIncorrect marks a missed answer. A new wrong-book record starts at
// zero; an existing one has its counter reset but is never removed here.
func (p *Progress) RecordIncorrect(wordID string) {
	for i := range p.wrong {
		if p.wrong[i].WordID == wordID {
			p.wrong[i].ConsecutiveCorrect = 0
			return
		}
	}
	p.wrong = append(p.wrong, WrongWordRecord{WordID: wordID})
}

// AppendHistory appends one completed-session record.
func (p *Progress) AppendHistory(rec HistoryRecord) {
	p.history = append(p.history, rec)
}

// ResetMastery removes exactly the given ids from the mastered set,
// leaving all others untouched. Used when a session pool is exhausted so
// mastered words recycle instead of blocking new sessions.
func (p *Progress) ResetMastery(wordIDs []string) {
	for _, id := range wordIDs {
		delete(p.mastered, id)
	}
}
