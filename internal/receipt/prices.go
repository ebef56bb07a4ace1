package receipt

import (
	"fmt"
	"regexp"

	"github.com/shopspring/decimal"

	"github.com/mmynk/dutchie/internal/money"
)

var (
	subtotalKeyword = regexp.MustCompile(`(?i)^(subtotal|sub total)\b`)
	taxKeyword      = regexp.MustCompile(`(?i)^tax\b`)
	totalKeyword    = regexp.MustCompile(`(?i)^\**\s*total\b|\btotal\b`)
)

// Summary holds the optional summary amounts printed on a receipt.
// They are informational and never reconciled against item prices.
type Summary struct {
	Subtotal *decimal.Decimal
	Tax      *decimal.Decimal
	Total    *decimal.Decimal
}

// PriceResult is the output of the price-only strategy.
type PriceResult struct {
	Prices []decimal.Decimal
	Summary
}

// ExtractPricesOnly reads one price per item line, ignoring descriptions.
// The rightmost valid amount on each item-region line is taken; lines with
// no amount or an amount below half a cent are skipped.
func ExtractPricesOnly(text string) PriceResult {
	return DefaultClassifier.ExtractPricesOnly(text)
}

// ExtractPricesOnly is ExtractPricesOnly with a custom classifier.
func (c Classifier) ExtractPricesOnly(text string) PriceResult {
	lines := SplitLines(text)
	for i := range lines {
		lines[i] = collapseSpaces(lines[i])
	}

	res := PriceResult{
		Prices: []decimal.Decimal{},
		Summary: Summary{
			Subtotal: findNear(lines, subtotalKeyword),
			Tax:      findNear(lines, taxKeyword),
			Total:    findNear(lines, totalKeyword, subtotalKeyword),
		},
	}

	for i, cls := range c.Regions(lines) {
		if cls != ClassItem {
			continue
		}
		price, ok := LastMoney(lines[i])
		if !ok || price.Abs().LessThan(money.NoiseFloor) {
			continue
		}
		res.Prices = append(res.Prices, money.Round2(price))
	}
	return res
}

// PositionalName names the index-th (0-based) price of a receipt group.
func PositionalName(groupID string, index int) string {
	return fmt.Sprintf("%s-%d", groupID, index+1)
}

// findNear reads the amount for the first line matching kw and none of
// skip: the last amount on that line, else the first amount on the
// following line.
func findNear(lines []string, kw *regexp.Regexp, skip ...*regexp.Regexp) *decimal.Decimal {
	for i, line := range lines {
		if !kw.MatchString(line) || matchesAny(line, skip) {
			continue
		}
		if d, ok := LastMoney(line); ok {
			return &d
		}
		if i+1 < len(lines) {
			if d, ok := FirstMoney(lines[i+1]); ok {
				return &d
			}
		}
		return nil
	}
	return nil
}

func matchesAny(line string, res []*regexp.Regexp) bool {
	for _, re := range res {
		if re.MatchString(line) {
			return true
		}
	}
	return false
}
