package receipt

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/shopspring/decimal"
)

// totalLookahead is how many lines after a "total" line are searched for
// its amount.
const totalLookahead = 12

var (
	sectionStart = regexp.MustCompile(`(?i)^-*\s*(items?|item\s+description|description|items?\s+purchased|qty\s+item)\s*:?\s*-*$`)
	anyTotal     = regexp.MustCompile(`(?i)\btotal\b`)

	leadingLetterCode = regexp.MustCompile(`^[A-Za-z]\s+`)
	leadingCode       = regexp.MustCompile(`^\d{4,}\s+`)
	discountCode      = regexp.MustCompile(`^(\d{6,})\s*/\s*(\d{3,})$`)
	numericOnly       = regexp.MustCompile(`^[\d\s.,/#*$()-]+$`)

	storeNoise = []*regexp.Regexp{
		regexp.MustCompile(`(?i)^(thank\s*you|welcome|store\s*#|st\s*#|cashier|register|reg\s*#|manager|mgr|phone|tel|receipt|survey)\b`),
		regexp.MustCompile(`\(?\d{3}\)?[-. ]\d{3}[-. ]\d{4}`),
		regexp.MustCompile(`(?i)www\.|\.com\b`),
		regexp.MustCompile(`(?i)\b[a-z]{2}\s+\d{5}(-\d{4})?$`),
		regexp.MustCompile(`\b\d{1,2}[/-]\d{1,2}[/-]\d{2,4}\b`),
		regexp.MustCompile(`\b\d{1,2}:\d{2}(:\d{2})?\b`),
	}
)

// Line is one extracted item: a cleaned description and its price.
type Line struct {
	Name  string
	Price decimal.Decimal
}

// ItemResult is the output of the description+price strategy.
type ItemResult struct {
	Items []Line
	Summary
}

// ExtractItemsWithNames pairs description lines with the price line that
// follows them. Only the itemized section is read: after an optional
// section header and before the subtotal line.
func ExtractItemsWithNames(text string) ItemResult {
	return DefaultClassifier.ExtractItemsWithNames(text)
}

// ExtractItemsWithNames is ExtractItemsWithNames with a custom classifier.
func (c Classifier) ExtractItemsWithNames(text string) ItemResult {
	lines := SplitLines(text)
	for i := range lines {
		lines[i] = collapseSpaces(lines[i])
	}

	res := ItemResult{
		Items: []Line{},
		Summary: Summary{
			Subtotal: amountAfter(lines, subtotalKeyword),
			Tax:      amountAfter(lines, taxKeyword),
			Total:    findTotal(lines),
		},
	}

	start, end := itemRegion(lines)
	var buf []string
	for _, line := range lines[start:end] {
		switch c.ClassifyLine(line) {
		case ClassNoise:
			return res
		case ClassSummary:
			buf = nil
			continue
		}

		if price, ok := MoneyFromLine(line); ok {
			name := CleanName(strings.Join(buf, " "))
			if ValidName(name) {
				res.Items = append(res.Items, Line{Name: name, Price: price})
			}
			buf = nil
			continue
		}

		if isLoneLetter(line) {
			continue
		}
		buf = append(buf, line)
	}
	return res
}

// CleanName tidies a joined description: collapses whitespace, drops a
// single-letter department code, drops a leading product code of four or
// more digits, and rewrites linked discount codes as "DISCOUNT <code>".
func CleanName(desc string) string {
	s := collapseSpaces(desc)
	s = strings.TrimSpace(leadingLetterCode.ReplaceAllString(s, ""))
	if loc := leadingCode.FindStringIndex(s); loc != nil && !strings.HasPrefix(s[loc[1]:], "/") {
		s = strings.TrimSpace(s[loc[1]:])
	}
	if m := discountCode.FindStringSubmatch(s); m != nil {
		s = "DISCOUNT " + m[2]
	}
	return s
}

// ValidName rejects empty, numeric-only and store boilerplate names.
func ValidName(name string) bool {
	if name == "" || numericOnly.MatchString(name) {
		return false
	}
	for _, re := range storeNoise {
		if re.MatchString(name) {
			return false
		}
	}
	return true
}

// itemRegion returns the half-open line range of the itemized section.
func itemRegion(lines []string) (int, int) {
	start := 0
	for i, line := range lines {
		if sectionStart.MatchString(line) {
			start = i + 1
			break
		}
	}
	end := len(lines)
	for i := start; i < len(lines); i++ {
		if subtotalKeyword.MatchString(lines[i]) {
			end = i
			break
		}
	}
	return start, end
}

// amountAfter reads the amount for the first line matching kw: the next
// line when it is a pure amount, else an amount on the same line.
func amountAfter(lines []string, kw *regexp.Regexp) *decimal.Decimal {
	for i, line := range lines {
		if !kw.MatchString(line) {
			continue
		}
		if i+1 < len(lines) {
			if d, ok := MoneyFromLine(lines[i+1]); ok {
				return &d
			}
		}
		if d, ok := LastMoney(line); ok {
			return &d
		}
		return nil
	}
	return nil
}

// findTotal reads the first "total" line that is not a subtotal: its own
// rightmost amount, else the first pure amount within totalLookahead lines,
// else the last pure amount on the receipt.
func findTotal(lines []string) *decimal.Decimal {
	at := -1
	for i, line := range lines {
		if anyTotal.MatchString(line) && !subtotalKeyword.MatchString(line) {
			at = i
			break
		}
	}
	if at < 0 {
		return nil
	}
	if d, ok := LastMoney(lines[at]); ok {
		return &d
	}

	for i := at + 1; i < len(lines) && i <= at+totalLookahead; i++ {
		if d, ok := MoneyFromLine(lines[i]); ok {
			return &d
		}
	}
	for i := len(lines) - 1; i >= 0; i-- {
		if d, ok := MoneyFromLine(lines[i]); ok {
			return &d
		}
	}
	return nil
}

func isLoneLetter(line string) bool {
	r, size := utf8.DecodeRuneInString(line)
	return size == len(line) && unicode.IsLetter(r)
}
