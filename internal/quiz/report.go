package quiz

import "math"

// Accuracy returns correct/(correct+incorrect), or 0 when nothing was
// answered, so an empty session never reports NaN.
func Accuracy(correct, incorrect int) float64 {
	total := correct + incorrect
	if total == 0 {
		return 0
	}
	return float64(correct) / float64(total)
}

// AccuracyPercent returns the accuracy rounded to the nearest whole
// percent, the display convention for reports and history.
func AccuracyPercent(correct, incorrect int) int {
	return int(math.Round(Accuracy(correct, incorrect) * 100))
}

// Summary aggregates a finished session for the report screen.
type Summary struct {
	Words           int
	Correct         int
	Wrong           int
	AccuracyPercent int
}

// Summary builds the display summary from the session tallies.
func (s *Session) Summary() Summary {
	return Summary{
		Words:           len(s.words),
		Correct:         s.correct,
		Wrong:           s.wrong,
		AccuracyPercent: AccuracyPercent(s.correct, s.wrong),
	}
}
