// Package stats aggregates and renders attempt history.
package stats

import (
	"fmt"
	"io"
	"math"
	"os"
	"strings"
	"unicode/utf8"

	"golang.org/x/term"
)

// Series represents a named data series for plotting.
type Series struct {
	Name   string
	Values []float64
}

const (
	defaultPlotHeight = 10
	minPlotWidth      = 10
	axisTop           = "100%"
	axisMid           = "50%"
	axisBottom        = "0%"
	axisSep           = " │ "
	fallbackTermWidth = 80
	colorReset        = "\x1b[0m"
)

var plotColors = []string{"\x1b[36m", "\x1b[35m", "\x1b[33m", "\x1b[32m", "\x1b[34m"}

// dashPatterns distinguish overlapping series in monochrome output.
var dashPatterns = []struct {
	name   string
	period int
	on     int
}{
	{name: "solid", period: 1, on: 1},
	{name: "dashed", period: 6, on: 3},
	{name: "dotted", period: 4, on: 1},
}

// PlotSeries renders a multi-line braille plot for the provided series.
func PlotSeries(w io.Writer, title string, series []Series, width, height int) error {
	return PlotSeriesWithColor(w, title, series, width, height, false)
}

// PlotSeriesWithColor renders a braille plot with optional forced color output.
// Each series is scaled to its own min/max; the ranges are printed above the plot.
func PlotSeriesWithColor(w io.Writer, title string, series []Series, width, height int, forceColor bool) error {
	kept := series[:0:0]
	for _, s := range series {
		if len(s.Values) > 0 {
			kept = append(kept, s)
		}
	}
	if len(kept) == 0 {
		return nil
	}
	if height <= 0 {
		height = defaultPlotHeight
	}
	if width <= 0 {
		width = PlotWidthFor(terminalWidth())
	}
	if width < minPlotWidth {
		width = minPlotWidth
	}

	type scaledSeries struct {
		name     string
		values   []float64
		min, max float64
		cells    [][]uint8
	}
	scaled := make([]scaledSeries, 0, len(kept))
	for _, s := range kept {
		values := resample(s.Values, width)
		minVal, maxVal := minMax(values)
		if math.Abs(maxVal-minVal) < 1e-9 {
			minVal--
			maxVal++
		}
		scaled = append(scaled, scaledSeries{
			name:   s.Name,
			values: values,
			min:    minVal,
			max:    maxVal,
			cells:  newCells(height, width),
		})
	}

	for si := range scaled {
		s := &scaled[si]
		pattern := dashPatterns[si%len(dashPatterns)]
		onPattern := func(x int) bool {
			if pattern.period <= 1 {
				return true
			}
			if x < 0 {
				x = -x
			}
			return x%pattern.period < pattern.on
		}
		prevX, prevY := -1, -1
		for x, v := range s.values {
			dotY := dotRow(v, s.min, s.max, height*4)
			dotX := x * 2
			if prevX >= 0 {
				tracePath(prevX, prevY, dotX, dotY, func(px, py int) {
					if onPattern(px) {
						setDot(s.cells, px, py)
					}
				})
			} else if onPattern(dotX) {
				setDot(s.cells, dotX, dotY)
			}
			prevX, prevY = dotX, dotY
		}
	}

	useColor := colorEnabled(w, forceColor)
	if title != "" {
		if _, err := fmt.Fprintln(w, title); err != nil {
			return err
		}
	}
	if _, err := fmt.Fprintln(w, "Scaled per series; see min/max below."); err != nil {
		return err
	}
	for _, s := range scaled {
		if _, err := fmt.Fprintf(w, "%s: min=%.2f max=%.2f\n", s.name, s.min, s.max); err != nil {
			return err
		}
	}

	labels := axisLabels(height)
	labelWidth := len(axisTop)
	for y := 0; y < height; y++ {
		var row strings.Builder
		fmt.Fprintf(&row, "%*s%s", labelWidth, labels[y], axisSep)
		for x := 0; x < width; x++ {
			var mask uint8
			colorIdx := -1
			for si := range scaled {
				cell := scaled[si].cells[y][x]
				if cell == 0 {
					continue
				}
				if colorIdx == -1 {
					colorIdx = si
				}
				mask |= cell
			}
			ch := rune(0x2800 + int(mask))
			if useColor && colorIdx >= 0 {
				row.WriteString(plotColors[colorIdx%len(plotColors)])
				row.WriteRune(ch)
				row.WriteString(colorReset)
			} else {
				row.WriteRune(ch)
			}
		}
		if _, err := fmt.Fprintln(w, row.String()); err != nil {
			return err
		}
	}

	legend := make([]string, 0, len(scaled))
	for si, s := range scaled {
		label := fmt.Sprintf("%c %s (%s)", rune(0x2801), s.name, dashPatterns[si%len(dashPatterns)].name)
		if useColor {
			label = plotColors[si%len(plotColors)] + label + colorReset
		}
		legend = append(legend, label)
	}
	if _, err := fmt.Fprintln(w, "Legend: "+strings.Join(legend, "  ")); err != nil {
		return err
	}
	_, err := fmt.Fprintln(w, "")
	return err
}

// PlotWidthFor computes a plot width that fits within the total available width.
func PlotWidthFor(totalWidth int) int {
	if totalWidth <= 0 {
		return minPlotWidth
	}
	plotWidth := totalWidth - utf8.RuneCountInString(axisTop) - utf8.RuneCountInString(axisSep)
	if plotWidth < minPlotWidth {
		plotWidth = minPlotWidth
	}
	return plotWidth
}

func terminalWidth() int {
	width, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || width <= 0 {
		return fallbackTermWidth
	}
	return width
}

func colorEnabled(w io.Writer, force bool) bool {
	if os.Getenv("NO_COLOR") != "" {
		return false
	}
	if force {
		return true
	}
	file, ok := w.(*os.File)
	if !ok {
		return false
	}
	return term.IsTerminal(int(file.Fd()))
}

func axisLabels(height int) []string {
	labels := make([]string, height)
	if height <= 0 {
		return labels
	}
	labels[0] = axisTop
	if height > 2 {
		labels[height/2] = axisMid
	}
	if height > 1 {
		labels[height-1] = axisBottom
	}
	return labels
}

func newCells(height, width int) [][]uint8 {
	cells := make([][]uint8, height)
	for y := range cells {
		cells[y] = make([]uint8, width)
	}
	return cells
}

func minMax(values []float64) (float64, float64) {
	minVal := math.Inf(1)
	maxVal := math.Inf(-1)
	for _, v := range values {
		if v < minVal {
			minVal = v
		}
		if v > maxVal {
			maxVal = v
		}
	}
	if math.IsInf(minVal, 1) {
		minVal = 0
	}
	if math.IsInf(maxVal, -1) {
		maxVal = 0
	}
	return minVal, maxVal
}

func dotRow(v, minVal, maxVal float64, dotHeight int) int {
	if dotHeight <= 1 {
		return 0
	}
	pos := (v - minVal) / (maxVal - minVal)
	row := int(math.Round((1 - pos) * float64(dotHeight-1)))
	if row < 0 {
		row = 0
	}
	if row >= dotHeight {
		row = dotHeight - 1
	}
	return row
}

// resample stretches or shrinks values to exactly width samples, averaging
// when shrinking and interpolating linearly when stretching.
func resample(values []float64, width int) []float64 {
	if len(values) == 0 || width <= 0 {
		return nil
	}
	if len(values) == width {
		out := make([]float64, len(values))
		copy(out, values)
		return out
	}
	out := make([]float64, width)
	if len(values) > width {
		for i := 0; i < width; i++ {
			start := i * len(values) / width
			end := (i + 1) * len(values) / width
			if end <= start {
				end = start + 1
			}
			if end > len(values) {
				end = len(values)
			}
			var sum float64
			for _, v := range values[start:end] {
				sum += v
			}
			out[i] = sum / float64(end-start)
		}
		return out
	}
	if width == 1 || len(values) == 1 {
		for i := range out {
			out[i] = values[0]
		}
		return out
	}
	for i := 0; i < width; i++ {
		pos := float64(i) * float64(len(values)-1) / float64(width-1)
		idx := int(math.Floor(pos))
		if idx >= len(values)-1 {
			out[i] = values[len(values)-1]
			continue
		}
		frac := pos - float64(idx)
		out[i] = values[idx]*(1-frac) + values[idx+1]*frac
	}
	return out
}

// tracePath walks the Bresenham line between two dot coordinates.
func tracePath(x0, y0, x1, y1 int, plot func(x, y int)) {
	dx := absInt(x1 - x0)
	dy := -absInt(y1 - y0)
	sx := 1
	if x0 > x1 {
		sx = -1
	}
	sy := 1
	if y0 > y1 {
		sy = -1
	}
	err := dx + dy
	for {
		plot(x0, y0)
		if x0 == x1 && y0 == y1 {
			return
		}
		e2 := 2 * err
		if e2 >= dy {
			if x0 == x1 {
				return
			}
			err += dy
			x0 += sx
		}
		if e2 <= dx {
			if y0 == y1 {
				return
			}
			err += dx
			y0 += sy
		}
	}
}

// Braille cells are 2 dots wide and 4 dots tall.
var brailleMasks = [4][2]uint8{
	{0x01, 0x08},
	{0x02, 0x10},
	{0x04, 0x20},
	{0x40, 0x80},
}

func setDot(cells [][]uint8, x, y int) {
	if x < 0 || y < 0 {
		return
	}
	cellY := y / 4
	cellX := x / 2
	if cellY >= len(cells) || cellX >= len(cells[cellY]) {
		return
	}
	cells[cellY][cellX] |= brailleMasks[y%4][x%2]
}

func absInt(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
