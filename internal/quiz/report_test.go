package quiz

import "testing"

func TestAccuracy(t *testing.T) {
	tests := []struct {
		name               string
		correct, incorrect int
		want               float64
		wantPercent        int
	}{
		{"empty session", 0, 0, 0, 0},
		{"all correct", 5, 0, 1.0, 100},
		{"three of four", 3, 1, 0.75, 75},
		{"one of three rounds up", 1, 2, 1.0 / 3.0, 33},
		{"two of three rounds to 67", 2, 1, 2.0 / 3.0, 67},
		{"all wrong", 0, 4, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Accuracy(tt.correct, tt.incorrect); got != tt.want {
				t.Errorf("Accuracy(%d, %d) = %v, want %v", tt.correct, tt.incorrect, got, tt.want)
			}
			if got := AccuracyPercent(tt.correct, tt.incorrect); got != tt.wantPercent {
				t.Errorf("AccuracyPercent(%d, %d) = %d, want %d", tt.correct, tt.incorrect, got, tt.wantPercent)
			}
		})
	}
}
