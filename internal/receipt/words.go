package receipt

import (
	"math"
	"sort"
	"strings"
)

const (
	// DefaultLineTolerance is the vertical distance, in pixels, within which
	// word centers are considered to sit on the same printed line.
	DefaultLineTolerance = 10.0

	minLineTolerance = 8.0
	maxLineTolerance = 14.0
)

// Word is one recognized word with the center of its bounding box.
type Word struct {
	Text string
	X    float64
	Y    float64
}

// ClampTolerance keeps a line tolerance inside the range that works for
// receipt fonts. Zero or negative selects DefaultLineTolerance.
func ClampTolerance(tol float64) float64 {
	if tol <= 0 {
		return DefaultLineTolerance
	}
	return math.Min(math.Max(tol, minLineTolerance), maxLineTolerance)
}

// ReconstructLines rebuilds receipt text from positioned words. Words are
// grouped into lines by vertical proximity to the running line center, lines
// are ordered top to bottom and words left to right.
func ReconstructLines(words []Word, tolerance float64) string {
	tol := ClampTolerance(tolerance)

	sorted := make([]Word, 0, len(words))
	for _, w := range words {
		if strings.TrimSpace(w.Text) != "" {
			sorted = append(sorted, w)
		}
	}
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].Y < sorted[j].Y })

	type row struct {
		words []Word
		sumY  float64
	}
	var rows []*row
	for _, w := range sorted {
		if n := len(rows); n > 0 {
			last := rows[n-1]
			center := last.sumY / float64(len(last.words))
			if math.Abs(w.Y-center) <= tol {
				last.words = append(last.words, w)
				last.sumY += w.Y
				continue
			}
		}
		rows = append(rows, &row{words: []Word{w}, sumY: w.Y})
	}

	out := make([]string, 0, len(rows))
	for _, r := range rows {
		sort.SliceStable(r.words, func(i, j int) bool { return r.words[i].X < r.words[j].X })
		parts := make([]string, len(r.words))
		for i, w := range r.words {
			parts[i] = strings.TrimSpace(w.Text)
		}
		out = append(out, strings.Join(parts, " "))
	}
	return strings.Join(out, "\n")
}
