// Package diff classifies typed text against reference text.
package diff

// Mark is the per-position verdict for one character.
type Mark uint8

// Per-position verdicts.
const (
	Match Mark = iota
	Mismatch
	Missing
	Extra
)

// Classify compares typed against reference position by position and returns
// one mark per rune up to max(len(typed), len(reference)). It is pure and
// stateless; callers invoke it with the full buffer on every text change.
func Classify(typed, reference string) []Mark {
	typedRunes := []rune(typed)
	refRunes := []rune(reference)

	size := len(typedRunes)
	if len(refRunes) > size {
		size = len(refRunes)
	}
	marks := make([]Mark, size)
	for i := range marks {
		switch {
		case i >= len(typedRunes):
			marks[i] = Missing
		case i >= len(refRunes):
			marks[i] = Extra
		case typedRunes[i] == refRunes[i]:
			marks[i] = Match
		default:
			marks[i] = Mismatch
		}
	}
	return marks
}
