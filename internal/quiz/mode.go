package quiz

// Mode selects how a word is prompted and judged.
type Mode int

const (
	// ModeRecognize shows the English word and offers four translation
	// options to choose from.
	ModeRecognize Mode = iota

	// ModeSpellFromTranslation shows the translation and expects the
	// English form to be typed.
	ModeSpellFromTranslation

	// ModeSpellFromVisual shows the visual cue and expects the English
	// form to be typed.
	ModeSpellFromVisual
)

func (m Mode) String() string {
	switch m {
	case ModeRecognize:
		return "recognize"
	case ModeSpellFromTranslation:
		return "spell-from-translation"
	case ModeSpellFromVisual:
		return "spell-from-visual"
	}
	return "unknown"
}

// IsSpelling reports whether answers are typed rather than chosen.
func (m Mode) IsSpelling() bool {
	return m == ModeSpellFromTranslation || m == ModeSpellFromVisual
}
