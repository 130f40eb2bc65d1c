// Package metrics derives WPM and accuracy from a completed attempt.
package metrics

import (
	"math"
	"strings"
	"time"
)

// Score computes words per minute and accuracy for a completed attempt.
// WPM is the reference word count divided by elapsed minutes; accuracy is the
// percentage of reference characters reproduced correctly. Extra characters
// past the reference each count as one error, as does every untyped reference
// character. Both results are rounded to two decimal places.
func Score(typed, reference string, startedAt, endedAt time.Time) (wpm, accuracy float64) {
	minutes := endedAt.Sub(startedAt).Minutes()
	wordCount := len(strings.Fields(reference))
	if minutes > 0 && wordCount > 0 {
		wpm = float64(wordCount) / minutes
	}

	typedRunes := []rune(typed)
	refRunes := []rune(reference)

	errors := 0
	for i := 0; i < len(typedRunes) && i < len(refRunes); i++ {
		if typedRunes[i] != refRunes[i] {
			errors++
		}
	}
	if len(typedRunes) > len(refRunes) {
		errors += len(typedRunes) - len(refRunes)
	}
	if len(typedRunes) < len(refRunes) {
		errors += len(refRunes) - len(typedRunes)
	}

	if len(refRunes) > 0 {
		correct := len(refRunes) - errors
		if correct < 0 {
			correct = 0
		}
		accuracy = float64(correct) / float64(len(refRunes)) * 100
	}
	return round2(wpm), round2(accuracy)
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
