package models

import "github.com/shopspring/decimal"

// Source tells where an item came from.
type Source string

const (
	// SourceManual items are typed in by hand and split equally across everyone.
	SourceManual Source = "manual"
	// SourceReceipt items are extracted from a scanned receipt and split
	// among the people assigned to them.
	SourceReceipt Source = "receipt"
)

// Item is either a *ManualItem or a *ReceiptItem.
type Item interface {
	ItemID() string
	ItemName() string
	ItemPrice() decimal.Decimal
	Source() Source

	item()
}

// ManualItem is an expense entered by hand.
// Its cost is shared equally by all people; one person paid for it.
type ManualItem struct {
	// ID is the unique identifier for the item (UUID format).
	ID string

	// Name is the description entered by the user (e.g., "Pizza").
	Name string

	// Price is the amount, rounded to cents.
	Price decimal.Decimal

	// PayerID is the person who paid for the item. Empty until selected.
	PayerID string
}

// ReceiptItem is a line extracted from a scanned receipt.
// Its cost is shared by the people assigned to it; the payer is chosen per
// receipt group, not per item.
type ReceiptItem struct {
	// ID is the unique identifier for the item (UUID format).
	ID string

	// Name is the cleaned description, or a positional name such as "r1-3"
	// when the receipt was parsed for prices only.
	Name string

	// Price is the amount, rounded to cents. Discounts are negative.
	Price decimal.Decimal

	// ReceiptGroupID links the item to its receipt ("r1", "r2", ...).
	ReceiptGroupID string

	// AssignedPersonIDs are the people who share this item, in the order
	// they were selected. Empty means nobody has been assigned yet.
	AssignedPersonIDs []string
}

func (m *ManualItem) ItemID() string             { return m.ID }
func (m *ManualItem) ItemName() string           { return m.Name }
func (m *ManualItem) ItemPrice() decimal.Decimal { return m.Price }
func (m *ManualItem) Source() Source             { return SourceManual }
func (m *ManualItem) item()                      {}

func (r *ReceiptItem) ItemID() string             { return r.ID }
func (r *ReceiptItem) ItemName() string           { return r.Name }
func (r *ReceiptItem) ItemPrice() decimal.Decimal { return r.Price }
func (r *ReceiptItem) Source() Source             { return SourceReceipt }
func (r *ReceiptItem) item()                      {}

// IsAssigned reports whether personID shares this item.
func (r *ReceiptItem) IsAssigned(personID string) bool {
	for _, id := range r.AssignedPersonIDs {
		if id == personID {
			return true
		}
	}
	return false
}

// Toggle adds personID to the assignees, or removes it if already present.
func (r *ReceiptItem) Toggle(personID string) {
	next := make([]string, 0, len(r.AssignedPersonIDs)+1)
	found := false
	for _, id := range r.AssignedPersonIDs {
		if id == personID {
			found = true
			continue
		}
		next = append(next, id)
	}
	if !found {
		next = append(next, personID)
	}
	r.AssignedPersonIDs = next
}

// SplitItems separates items by source, preserving order.
func SplitItems(items []Item) ([]*ManualItem, []*ReceiptItem) {
	var manual []*ManualItem
	var receipt []*ReceiptItem
	for _, it := range items {
		switch v := it.(type) {
		case *ManualItem:
			manual = append(manual, v)
		case *ReceiptItem:
			receipt = append(receipt, v)
		}
	}
	return manual, receipt
}
