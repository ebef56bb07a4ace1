// Package receipt turns OCR text from a shop receipt into priced items.
//
// Parsing is split into small pure steps: money tokens (money.go), line
// classification (classify.go), and two extraction strategies. The
// price-only strategy (prices.go) reads one amount per line and names items
// by position; the described strategy (items.go) pairs description lines
// with the price line that ends them. Callers choose the strategy; nothing
// here guesses which one suits a receipt.
package receipt

import (
	"errors"
	"fmt"

	"github.com/mmynk/dutchie/internal/models"
)

// ErrNoItems is returned when a receipt yields no prices at all.
var ErrNoItems = errors.New("no prices parsed")

// Strategy selects how items are read from receipt text.
type Strategy string

const (
	// StrategyPricesOnly ignores descriptions and names items "<group>-<n>".
	StrategyPricesOnly Strategy = "prices_only"
	// StrategyDescribed keeps the description printed above each price.
	StrategyDescribed Strategy = "described"
)

// ParseStrategy validates a strategy name. An empty name selects
// StrategyPricesOnly.
func ParseStrategy(s string) (Strategy, error) {
	switch Strategy(s) {
	case "", StrategyPricesOnly:
		return StrategyPricesOnly, nil
	case StrategyDescribed:
		return StrategyDescribed, nil
	default:
		return "", fmt.Errorf("unknown extraction strategy %q", s)
	}
}

// Extraction is the result of reading one receipt into a receipt group.
type Extraction struct {
	GroupID  string
	Strategy Strategy
	Items    []*models.ReceiptItem
	Summary
}

// Extract runs the chosen strategy over text and builds unassigned receipt
// items for groupID. Item ids are left for the store to fill in.
func Extract(strategy Strategy, groupID, text string) (*Extraction, error) {
	return DefaultClassifier.Extract(strategy, groupID, text)
}

// Extract is Extract with a custom classifier.
func (c Classifier) Extract(strategy Strategy, groupID, text string) (*Extraction, error) {
	ex := &Extraction{GroupID: groupID, Strategy: strategy}

	switch strategy {
	case StrategyPricesOnly:
		res := c.ExtractPricesOnly(text)
		ex.Summary = res.Summary
		for i, price := range res.Prices {
			ex.Items = append(ex.Items, &models.ReceiptItem{
				Name:           PositionalName(groupID, i),
				Price:          price,
				ReceiptGroupID: groupID,
			})
		}
	case StrategyDescribed:
		res := c.ExtractItemsWithNames(text)
		ex.Summary = res.Summary
		for _, line := range res.Items {
			ex.Items = append(ex.Items, &models.ReceiptItem{
				Name:           line.Name,
				Price:          line.Price,
				ReceiptGroupID: groupID,
			})
		}
	default:
		return nil, fmt.Errorf("unknown extraction strategy %q", strategy)
	}

	if len(ex.Items) == 0 {
		return ex, ErrNoItems
	}
	return ex, nil
}
