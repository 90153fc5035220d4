package catalog

import "testing"

func TestCatalog_UniqueIDs(t *testing.T) {
	seen := make(map[string]bool)
	for _, w := range All() {
		if seen[w.ID] {
			t.Errorf("duplicate word id %q", w.ID)
		}
		seen[w.ID] = true
	}
}

func TestCatalog_FieldsPopulated(t *testing.T) {
	for _, w := range All() {
		if w.English == "" || w.Translation == "" || w.Phonetic == "" {
			t.Errorf("word %q has empty fields", w.ID)
		}
		if w.Grade < 1 || w.Grade > 6 {
			t.Errorf("word %q has grade %d out of range", w.ID, w.Grade)
		}
		if w.Unit < 0 {
			t.Errorf("word %q has negative unit", w.ID)
		}
	}
}

func TestByGradeUnit(t *testing.T) {
	for _, g := range Grades() {
		for _, u := range Units(g) {
			words := ByGradeUnit(g, u)
			if len(words) == 0 {
				t.Errorf("grade %d unit %d listed but empty", g, u)
			}
			for _, w := range words {
				if w.Grade != g || w.Unit != u {
					t.Errorf("word %q leaked into grade %d unit %d", w.ID, g, u)
				}
			}
		}
	}
}

func TestLookup(t *testing.T) {
	w, err := Lookup("1-1")
	if err != nil {
		t.Fatalf("Lookup(1-1): %v", err)
	}
	if w.English != "apple" {
		t.Errorf("Lookup(1-1).English = %q, want apple", w.English)
	}

	if _, err := Lookup("no-such-id"); err == nil {
		t.Error("Lookup of unknown id should fail")
	}
}
