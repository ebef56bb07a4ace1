package receipt

import (
	"regexp"
	"strings"
)

// Class is the role of a receipt line.
type Class int

const (
	// ClassItem lines may carry an item description or price.
	ClassItem Class = iota
	// ClassSummary lines are subtotal/tax/total/tender/change headers.
	ClassSummary
	// ClassNoise lines are payment-processing metadata, or anything after
	// the item region has ended.
	ClassNoise
)

func (c Class) String() string {
	switch c {
	case ClassItem:
		return "item"
	case ClassSummary:
		return "summary"
	case ClassNoise:
		return "noise"
	default:
		return "unknown"
	}
}

var (
	defaultSummary = regexp.MustCompile(`(?i)^\**\s*(subtotal|sub total|tax|total|change|tend|tender|balance due|amount due)\b`)

	defaultNoise = regexp.MustCompile(`(?i)\b(approved|verified|pin|debit|credit|visa|mastercard|amex|discover|eft|account|network|ref|appr|resp|chip)\b|\btran\s*id\b|\baid\s*:|\bseq\s*#|\bapp\s*#|\btotal purchase\b|\bitems sold\b`)

	spaces = regexp.MustCompile(`\s+`)
)

// Classifier decides which lines belong to the item list. The vocabularies
// can be replaced without touching money parsing.
type Classifier struct {
	Summary *regexp.Regexp
	Noise   *regexp.Regexp
}

// DefaultClassifier matches common North American grocery receipts.
var DefaultClassifier = Classifier{
	Summary: defaultSummary,
	Noise:   defaultNoise,
}

// ClassifyLine classifies a single line with the default vocabulary.
func ClassifyLine(line string) Class {
	return DefaultClassifier.ClassifyLine(line)
}

// ClassifyLine classifies one line in isolation.
func (c Classifier) ClassifyLine(line string) Class {
	line = collapseSpaces(line)
	if c.Summary != nil && c.Summary.MatchString(line) {
		return ClassSummary
	}
	if c.Noise != nil && c.Noise.MatchString(line) {
		return ClassNoise
	}
	return ClassItem
}

// Regions classifies lines in order. The item region is contiguous: once a
// summary or noise line appears, every later line is summary or noise.
func (c Classifier) Regions(lines []string) []Class {
	classes := make([]Class, len(lines))
	ended := false
	for i, line := range lines {
		cls := c.ClassifyLine(line)
		if cls != ClassItem {
			ended = true
		} else if ended {
			cls = ClassNoise
		}
		classes[i] = cls
	}
	return classes
}

// SplitLines removes carriage returns, splits on newlines, trims each line
// and drops empty ones.
func SplitLines(text string) []string {
	raw := strings.Split(strings.ReplaceAll(text, "\r", ""), "\n")
	lines := make([]string, 0, len(raw))
	for _, l := range raw {
		if l = strings.TrimSpace(l); l != "" {
			lines = append(lines, l)
		}
	}
	return lines
}

func collapseSpaces(s string) string {
	return strings.TrimSpace(spaces.ReplaceAllString(s, " "))
}
