// Package catalog holds the static vocabulary curriculum, organized by
// grade and unit. Entries are compiled into the binary and never mutated.
package catalog

import (
	"fmt"
	"slices"
)

// WordEntry is a single curated vocabulary item.
type WordEntry struct {
	// ID is stable across sessions and releases ("<grade>-<n>").
	ID          string
	English     string
	Translation string
	Phonetic    string
	Grade       int    // 1-6
	Unit        int    // 0 is the orientation unit
	VisualCue   string // emoji, may be empty
}

// Grades lists the grades covered by the curriculum, ascending.
func Grades() []int {
	seen := make(map[int]bool)
	var grades []int
	for _, w := range words {
		if !seen[w.Grade] {
			seen[w.Grade] = true
			grades = append(grades, w.Grade)
		}
	}
	slices.Sort(grades)
	return grades
}

// All returns every catalog entry.
func All() []WordEntry {
	out := make([]WordEntry, len(words))
	copy(out, words)
	return out
}

// ByGrade returns the entries for a grade, in curriculum order.
func ByGrade(grade int) []WordEntry {
	var out []WordEntry
	for _, w := range words {
		if w.Grade == grade {
			out = append(out, w)
		}
	}
	return out
}

// ByGradeUnit returns the entries for a single unit of a grade.
func ByGradeUnit(grade, unit int) []WordEntry {
	var out []WordEntry
	for _, w := range words {
		if w.Grade == grade && w.Unit == unit {
			out = append(out, w)
		}
	}
	return out
}

// Units returns the distinct units present for a grade, ascending.
func Units(grade int) []int {
	seen := make(map[int]bool)
	var units []int
	for _, w := range words {
		if w.Grade == grade && !seen[w.Unit] {
			seen[w.Unit] = true
			units = append(units, w.Unit)
		}
	}
	slices.Sort(units)
	return units
}

// Lookup returns the entry with the given id.
func Lookup(id string) (WordEntry, error) {
	for _, w := range words {
		if w.ID == id {
			return w, nil
		}
	}
	return WordEntry{}, fmt.Errorf("word %q not in catalog", id)
}