// Package stats aggregates and renders attempt history.
package stats

import (
	"fmt"
	"io"
	"math"
	"sort"
	"strings"

	"github.com/avelichko/typedrill/internal/model"
)

const sparkChars = " .:-=+*#%@"

// Summary aggregates a set of attempts.
type Summary struct {
	Count        int
	AvgWPM       float64
	BestWPM      float64
	AvgAccuracy  float64
	BestAccuracy float64
}

// Summarize computes the summary over the given attempts.
func Summarize(attempts []model.AttemptRecord) Summary {
	s := Summary{Count: len(attempts)}
	if len(attempts) == 0 {
		return s
	}
	var totalWPM, totalAcc float64
	for _, a := range attempts {
		totalWPM += a.WPM
		totalAcc += a.Accuracy
		if a.WPM > s.BestWPM {
			s.BestWPM = a.WPM
		}
		if a.Accuracy > s.BestAccuracy {
			s.BestAccuracy = a.Accuracy
		}
	}
	count := float64(len(attempts))
	s.AvgWPM = totalWPM / count
	s.AvgAccuracy = totalAcc / count
	return s
}

// FilterAttempts applies the filter, preserving append order.
func FilterAttempts(attempts []model.AttemptRecord, f model.Filter) []model.AttemptRecord {
	out := make([]model.AttemptRecord, 0, len(attempts))
	for _, a := range attempts {
		if f.User != "" && a.User != f.User {
			continue
		}
		if f.LessonID > 0 && a.LessonID != f.LessonID {
			continue
		}
		if f.Since != nil && a.Timestamp.Before(*f.Since) {
			continue
		}
		out = append(out, a)
	}
	if f.Last > 0 && len(out) > f.Last {
		out = out[len(out)-f.Last:]
	}
	return out
}

// MovingAverage computes a rolling mean over the provided window size.
func MovingAverage(values []float64, window int) []float64 {
	if window <= 1 || len(values) == 0 {
		out := make([]float64, len(values))
		copy(out, values)
		return out
	}
	out := make([]float64, len(values))
	var sum float64
	for i := 0; i < len(values); i++ {
		sum += values[i]
		if i >= window {
			sum -= values[i-window]
		}
		den := float64(i + 1)
		if i >= window {
			den = float64(window)
		}
		out[i] = sum / den
	}
	return out
}

// Sparkline renders a single-line ASCII sparkline for the values.
func Sparkline(values []float64) string {
	if len(values) == 0 {
		return ""
	}
	minVal := values[0]
	maxVal := values[0]
	for _, v := range values[1:] {
		if v < minVal {
			minVal = v
		}
		if v > maxVal {
			maxVal = v
		}
	}
	if math.Abs(maxVal-minVal) < 1e-9 {
		return strings.Repeat(string(sparkChars[len(sparkChars)/2]), len(values))
	}
	var b strings.Builder
	for _, v := range values {
		pos := (v - minVal) / (maxVal - minVal)
		idx := int(math.Round(pos * float64(len(sparkChars)-1)))
		if idx < 0 {
			idx = 0
		}
		if idx >= len(sparkChars) {
			idx = len(sparkChars) - 1
		}
		b.WriteByte(sparkChars[idx])
	}
	return b.String()
}

// RenderSummary prints a summary block for attempts.
func RenderSummary(w io.Writer, attempts []model.AttemptRecord) error {
	if len(attempts) == 0 {
		_, err := fmt.Fprintln(w, "No attempts recorded.")
		return err
	}
	s := Summarize(attempts)
	lines := []string{
		"Summary",
		fmt.Sprintf("Attempts: %d", s.Count),
		fmt.Sprintf("Avg WPM: %.2f", s.AvgWPM),
		fmt.Sprintf("Best WPM: %.2f", s.BestWPM),
		fmt.Sprintf("Avg Accuracy: %.2f%%", s.AvgAccuracy),
		fmt.Sprintf("Best Accuracy: %.2f%%", s.BestAccuracy),
		"",
	}
	for _, line := range lines {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}

// RenderCurves prints learning curves for WPM and accuracy.
func RenderCurves(w io.Writer, attempts []model.AttemptRecord, window int) error {
	return RenderCurvesWithSize(w, attempts, window, 0, 10, false)
}

// RenderCurvesWithSize prints learning curves sized to a given total width.
func RenderCurvesWithSize(w io.Writer, attempts []model.AttemptRecord, window, totalWidth, height int, useColor bool) error {
	if len(attempts) == 0 {
		return nil
	}
	wpms := make([]float64, len(attempts))
	accs := make([]float64, len(attempts))
	for i, a := range attempts {
		wpms[i] = a.WPM
		accs[i] = a.Accuracy
	}
	wpms = MovingAverage(wpms, window)
	accs = MovingAverage(accs, window)

	width := 0
	if totalWidth > 0 {
		width = PlotWidthFor(totalWidth)
	}
	return PlotSeriesWithColor(w, "Learning Curves", []Series{
		{Name: "WPM", Values: wpms},
		{Name: "Accuracy", Values: accs},
	}, width, height, useColor)
}

// LessonAggregate summarizes attempts of one lesson.
type LessonAggregate struct {
	LessonID    int
	LessonTitle string
	Attempts    int
	AvgWPM      float64
	BestWPM     float64
	AvgAccuracy float64
}

// AggregateByLesson groups attempts per lesson, ordered by lesson id.
func AggregateByLesson(attempts []model.AttemptRecord) []LessonAggregate {
	byID := map[int]*LessonAggregate{}
	for _, a := range attempts {
		agg, ok := byID[a.LessonID]
		if !ok {
			agg = &LessonAggregate{LessonID: a.LessonID, LessonTitle: a.LessonTitle}
			byID[a.LessonID] = agg
		}
		agg.Attempts++
		agg.AvgWPM += a.WPM
		agg.AvgAccuracy += a.Accuracy
		if a.WPM > agg.BestWPM {
			agg.BestWPM = a.WPM
		}
	}
	out := make([]LessonAggregate, 0, len(byID))
	for _, agg := range byID {
		agg.AvgWPM /= float64(agg.Attempts)
		agg.AvgAccuracy /= float64(agg.Attempts)
		out = append(out, *agg)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].LessonID < out[j].LessonID
	})
	return out
}

// RenderLessonTable prints per-lesson aggregates.
func RenderLessonTable(w io.Writer, attempts []model.AttemptRecord) error {
	aggs := AggregateByLesson(attempts)
	if len(aggs) == 0 {
		_, err := fmt.Fprintln(w, "No attempts recorded.")
		return err
	}
	if _, err := fmt.Fprintln(w, "Per-Lesson"); err != nil {
		return err
	}
	headers := []string{"Lesson", "Title", "Attempts", "Avg WPM", "Best WPM", "Avg Accuracy"}
	rows := make([][]string, 0, len(aggs))
	for _, agg := range aggs {
		rows = append(rows, []string{
			fmt.Sprintf("%d", agg.LessonID),
			agg.LessonTitle,
			fmt.Sprintf("%d", agg.Attempts),
			fmt.Sprintf("%.2f", agg.AvgWPM),
			fmt.Sprintf("%.2f", agg.BestWPM),
			fmt.Sprintf("%.2f%%", agg.AvgAccuracy),
		})
	}
	rightAlign := map[int]bool{0: true, 2: true, 3: true, 4: true, 5: true}
	for _, line := range formatTable(headers, rows, rightAlign) {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintln(w, "")
	return err
}
