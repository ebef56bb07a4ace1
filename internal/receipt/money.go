package receipt

import (
	"regexp"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/mmynk/dutchie/internal/money"
)

var (
	// moneyToken finds amounts inside a line: "$3.49", "2,00", "1.50-",
	// "4.99*", "(3.50)". The decimal part is always two digits.
	moneyToken = regexp.MustCompile(`\(\$?\s*\d+[.,]\d{2}\)|\$?\s*\d+[.,]\d{2}(?:\s*[-−*.])?`)

	// validAmount is the only shape accepted after normalization.
	validAmount = regexp.MustCompile(`^\d+\.\d{2}$`)

	// pureMoneyLine is a line holding nothing but an amount, with an
	// optional trailing minus for discounts.
	pureMoneyLine = regexp.MustCompile(`^\$?\d+\.\d{2}-?$`)

	ocrDigits = strings.NewReplacer("O", "0", "o", "0", "I", "1", "l", "1")
)

// FindMoneyTokens returns the raw money substrings of line, left to right.
// A candidate glued to a longer number on either side ("12.899",
// "1,234.56") is skipped.
func FindMoneyTokens(line string) []string {
	var tokens []string
	for _, loc := range moneyToken.FindAllStringIndex(line, -1) {
		if loc[1] < len(line) && isDigit(line[loc[1]]) {
			continue
		}
		if gluedAfterNumber(line, loc[0]) {
			continue
		}
		tokens = append(tokens, strings.TrimSpace(line[loc[0]:loc[1]]))
	}
	return tokens
}

// NormalizeMoney applies the OCR clean-up rules to a raw token, in order:
// whitespace, leading "$", comma decimal separator, unicode minus, letter
// and digit confusions, and one trailing "." or "*".
func NormalizeMoney(raw string) string {
	t := strings.Join(strings.Fields(raw), "")
	t = strings.TrimPrefix(t, "$")
	t = strings.Replace(t, ",", ".", 1)
	t = strings.ReplaceAll(t, "−", "-")
	t = ocrDigits.Replace(t)
	if strings.HasSuffix(t, ".") || strings.HasSuffix(t, "*") {
		t = t[:len(t)-1]
	}
	return t
}

// ParseMoney converts a raw token to a signed amount. A trailing "-" or
// wrapping parentheses mean negative. Anything that is not exactly
// digits, a period and two digits after normalization is rejected.
func ParseMoney(raw string) (decimal.Decimal, bool) {
	t := NormalizeMoney(raw)

	neg := false
	if strings.HasSuffix(t, "-") {
		neg = true
		t = strings.TrimSuffix(t, "-")
	}
	if len(t) >= 2 && strings.HasPrefix(t, "(") && strings.HasSuffix(t, ")") {
		neg = true
		t = strings.TrimPrefix(t[1:len(t)-1], "$")
	}

	if !validAmount.MatchString(t) {
		return decimal.Decimal{}, false
	}
	d, err := decimal.NewFromString(t)
	if err != nil {
		return decimal.Decimal{}, false
	}
	if neg {
		d = d.Neg()
	}
	return money.Round2(d), true
}

// LastMoney returns the rightmost valid amount on a line.
func LastMoney(line string) (decimal.Decimal, bool) {
	tokens := FindMoneyTokens(line)
	for i := len(tokens) - 1; i >= 0; i-- {
		if d, ok := ParseMoney(tokens[i]); ok {
			return d, true
		}
	}
	return decimal.Decimal{}, false
}

// FirstMoney returns the leftmost valid amount on a line.
func FirstMoney(line string) (decimal.Decimal, bool) {
	for _, tok := range FindMoneyTokens(line) {
		if d, ok := ParseMoney(tok); ok {
			return d, true
		}
	}
	return decimal.Decimal{}, false
}

// IsMoneyLine reports whether the whole line is a single amount.
func IsMoneyLine(line string) bool {
	return pureMoneyLine.MatchString(strings.TrimSpace(line))
}

// MoneyFromLine parses a pure money line.
func MoneyFromLine(line string) (decimal.Decimal, bool) {
	if !IsMoneyLine(line) {
		return decimal.Decimal{}, false
	}
	return ParseMoney(line)
}

// gluedAfterNumber reports whether the token starting at start continues a
// number to its left: "<digit>" or "<digit>," or "<digit>." directly before
// it. Tokens that begin with whitespace are separate.
func gluedAfterNumber(line string, start int) bool {
	if start == 0 || line[start] == ' ' || line[start] == '\t' {
		return false
	}
	prev := line[start-1]
	if isDigit(prev) {
		return true
	}
	return (prev == ',' || prev == '.') && start >= 2 && isDigit(line[start-2])
}

func isDigit(b byte) bool {
	return b >= '0' && b <= '9'
}
