package models

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// ReceiptGroupPrefix starts every receipt group id.
const ReceiptGroupPrefix = "r"

// ReceiptGroup is the set of items from one scanned receipt.
// A receipt is paid by a single person.
type ReceiptGroup struct {
	// ID is the group id ("r1", "r2", ...).
	ID string

	// Items are the receipt's items in extraction order.
	Items []*ReceiptItem

	// Total is the sum of item prices, rounded to cents.
	Total decimal.Decimal

	// PayerID is the person who paid the receipt. Empty until selected.
	PayerID string
}

// GroupReceipts collects receipt items into groups ordered by natural id
// order (r2 before r10). payers maps group id to payer id.
func GroupReceipts(items []*ReceiptItem, payers map[string]string) []ReceiptGroup {
	index := make(map[string]int)
	var groups []ReceiptGroup
	for _, it := range items {
		i, ok := index[it.ReceiptGroupID]
		if !ok {
			i = len(groups)
			index[it.ReceiptGroupID] = i
			groups = append(groups, ReceiptGroup{ID: it.ReceiptGroupID, PayerID: payers[it.ReceiptGroupID]})
		}
		groups[i].Items = append(groups[i].Items, it)
		groups[i].Total = groups[i].Total.Add(it.Price)
	}
	for i := range groups {
		groups[i].Total = groups[i].Total.Round(2)
	}
	sort.SliceStable(groups, func(a, b int) bool {
		return LessGroupID(groups[a].ID, groups[b].ID)
	})
	return groups
}

// NextReceiptGroupID returns "r<max+1>" over the existing group ids.
func NextReceiptGroupID(existing []string) string {
	highest := 0
	for _, id := range existing {
		if n, ok := groupNumber(id); ok && n > highest {
			highest = n
		}
	}
	return fmt.Sprintf("%s%d", ReceiptGroupPrefix, highest+1)
}

// LessGroupID orders ids numerically when both carry a number, and
// lexically otherwise.
func LessGroupID(a, b string) bool {
	na, okA := groupNumber(a)
	nb, okB := groupNumber(b)
	if okA && okB && na != nb {
		return na < nb
	}
	return a < b
}

func groupNumber(id string) (int, bool) {
	if !strings.HasPrefix(id, ReceiptGroupPrefix) {
		return 0, false
	}
	n, err := strconv.Atoi(strings.TrimPrefix(id, ReceiptGroupPrefix))
	if err != nil {
		return 0, false
	}
	return n, true
}
