// Package tui provides the Bubble Tea typing interface.
package tui

import (
	"strings"

	"github.com/mattn/go-runewidth"

	"github.com/avelichko/typedrill/internal/diff"
)

type styledRune struct {
	s       string
	width   int
	isSpace bool
}

// buildStyledRunes turns the diff marks for the current buffer into styled
// display cells. Reference positions show the reference rune; positions typed
// past the reference show the stray typed rune. The cursor sits on the first
// untyped reference position.
func buildStyledRunes(marks []diff.Mark, targetRunes, inputRunes []rune, cursorIndex int) []styledRune {
	out := make([]styledRune, 0, len(marks))
	for i, mark := range marks {
		var displayed rune
		var style = pendingStyle
		switch mark {
		case diff.Match:
			displayed = targetRunes[i]
			style = correctStyle
		case diff.Mismatch:
			displayed = targetRunes[i]
			style = incorrectStyle
			if targetRunes[i] == ' ' {
				displayed = '•'
			}
		case diff.Missing:
			displayed = targetRunes[i]
			style = pendingStyle
		case diff.Extra:
			displayed = inputRunes[i]
			style = incorrectStyle
			if displayed == ' ' {
				displayed = '•'
			}
		}
		if displayed == '\n' {
			displayed = ' '
		}
		if i == cursorIndex {
			style = style.Underline(true)
		}
		out = append(out, styledRune{
			s:       style.Render(string(displayed)),
			width:   runewidth.RuneWidth(displayed),
			isSpace: displayed == ' ',
		})
	}
	return out
}

func renderStyledRunes(runes []styledRune) string {
	var b strings.Builder
	for _, item := range runes {
		b.WriteString(item.s)
	}
	return b.String()
}

// wrapStyledRunes soft-wraps styled cells at the last space that fits.
func wrapStyledRunes(runes []styledRune, width int) string {
	if width <= 0 {
		return renderStyledRunes(runes)
	}
	var out strings.Builder
	line := make([]styledRune, 0, len(runes))
	lineWidth := 0
	lastSpaceIdx := -1

	for i := 0; i < len(runes); {
		item := runes[i]
		if lineWidth+item.width > width && len(line) > 0 {
			if lastSpaceIdx >= 0 {
				out.WriteString(renderStyledRunes(line[:lastSpaceIdx]))
				out.WriteRune('\n')
				line = append([]styledRune{}, line[lastSpaceIdx+1:]...)
				lineWidth = lineWidthOf(line)
				lastSpaceIdx = lastSpaceIndex(line)
			} else {
				out.WriteString(renderStyledRunes(line))
				out.WriteRune('\n')
				line = line[:0]
				lineWidth = 0
				lastSpaceIdx = -1
			}
			continue
		}
		line = append(line, item)
		lineWidth += item.width
		if item.isSpace {
			lastSpaceIdx = len(line) - 1
		}
		i++
	}
	out.WriteString(renderStyledRunes(line))
	return out.String()
}

func lineWidthOf(line []styledRune) int {
	total := 0
	for _, item := range line {
		total += item.width
	}
	return total
}

func lastSpaceIndex(line []styledRune) int {
	for i := len(line) - 1; i >= 0; i-- {
		if line[i].isSpace {
			return i
		}
	}
	return -1
}
