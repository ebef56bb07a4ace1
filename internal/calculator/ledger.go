package calculator

import (
	"github.com/shopspring/decimal"

	"github.com/mmynk/dutchie/internal/models"
	"github.com/mmynk/dutchie/internal/money"
)

// Warnings counts ledger entries that could not be fully attributed.
type Warnings struct {
	UnassignedItems      int // receipt items nobody is assigned to
	MissingManualPayers  int // manual items without a payer
	MissingReceiptPayers int // receipt groups without a payer
}

// Empty reports whether nothing needs the user's attention.
func (w Warnings) Empty() bool {
	return w.UnassignedItems == 0 && w.MissingManualPayers == 0 && w.MissingReceiptPayers == 0
}

// Ledger is what each person owes, paid, and their net balance.
// Every person passed to ComputeBalances has an entry in all three maps.
type Ledger struct {
	People  []string
	Owed    map[string]decimal.Decimal
	Paid    map[string]decimal.Decimal
	Balance map[string]decimal.Decimal

	OwedTotal decimal.Decimal
	PaidTotal decimal.Decimal

	Warnings Warnings
}

// Imbalance is PaidTotal - OwedTotal. It is non-zero when some item has no
// payer or no assignee.
func (l *Ledger) Imbalance() decimal.Decimal {
	return l.PaidTotal.Sub(l.OwedTotal)
}

// Balances returns the net balances in people order, ready for Settle.
func (l *Ledger) Balances() []models.PersonBalance {
	out := make([]models.PersonBalance, len(l.People))
	for i, id := range l.People {
		out[i] = models.PersonBalance{PersonID: id, Amount: l.Balance[id]}
	}
	return out
}

// ComputeBalances aggregates items into owed, paid and balance per person.
//
// Owed:
//   - a manual item is split equally across all people
//   - a receipt item is split equally across its assignees
//
// Paid:
//   - a manual item is credited to its payer
//   - a receipt group's total is credited to the group's payer
//
// receiptPayers maps receipt group id to payer id. Payers and assignees
// that are not in people are ignored. Amounts are rounded to cents once,
// after accumulation.
func ComputeBalances(people []models.Person, items []models.Item, receiptPayers map[string]string) *Ledger {
	ids := models.PersonIDs(people)
	known := make(map[string]bool, len(ids))
	owed := make(map[string]decimal.Decimal, len(ids))
	paid := make(map[string]decimal.Decimal, len(ids))
	for _, id := range ids {
		known[id] = true
		owed[id] = decimal.Zero
		paid[id] = decimal.Zero
	}

	var warnings Warnings
	manual, receipt := models.SplitItems(items)

	for _, it := range manual {
		share := money.Share(it.Price, len(ids))
		for _, id := range ids {
			owed[id] = owed[id].Add(share)
		}
		switch {
		case it.PayerID == "":
			warnings.MissingManualPayers++
		case known[it.PayerID]:
			paid[it.PayerID] = paid[it.PayerID].Add(it.Price)
		}
	}

	for _, it := range receipt {
		if len(it.AssignedPersonIDs) == 0 {
			warnings.UnassignedItems++
			continue
		}
		share := money.Share(it.Price, len(it.AssignedPersonIDs))
		for _, id := range it.AssignedPersonIDs {
			if known[id] {
				owed[id] = owed[id].Add(share)
			}
		}
	}

	for _, g := range models.GroupReceipts(receipt, receiptPayers) {
		switch {
		case g.PayerID == "":
			warnings.MissingReceiptPayers++
		case known[g.PayerID]:
			paid[g.PayerID] = paid[g.PayerID].Add(g.Total)
		}
	}

	ledger := &Ledger{
		People:    ids,
		Owed:      make(map[string]decimal.Decimal, len(ids)),
		Paid:      make(map[string]decimal.Decimal, len(ids)),
		Balance:   make(map[string]decimal.Decimal, len(ids)),
		OwedTotal: decimal.Zero,
		PaidTotal: decimal.Zero,
		Warnings:  warnings,
	}
	for _, id := range ids {
		o := money.Round2(owed[id])
		p := money.Round2(paid[id])
		ledger.Owed[id] = o
		ledger.Paid[id] = p
		ledger.Balance[id] = money.Round2(p.Sub(o))
		ledger.OwedTotal = ledger.OwedTotal.Add(o)
		ledger.PaidTotal = ledger.PaidTotal.Add(p)
	}
	return ledger
}
