package calculator

import (
	"github.com/shopspring/decimal"

	"github.com/mmynk/dutchie/internal/models"
	"github.com/mmynk/dutchie/internal/money"
)

// Obligation is a direct debt from one person to the payer of something
// they shared.
type Obligation struct {
	From   string
	To     string
	Amount decimal.Decimal
}

// RawView is the unoptimized picture: everyone pays each payer back
// directly, one obligation per (debtor, payer) pair.
type RawView struct {
	People      []string
	Obligations []Obligation
	Matrix      Matrix
}

// Matrix[i][j] is what People[i] pays People[j].
type Matrix [][]decimal.Decimal

type paymentEvent struct {
	payer  string
	shares map[string]decimal.Decimal
}

// RawObligations lists who owes whom before any simplification.
// Each receipt group and each manual item is one payment event; events
// without a payer are skipped. Shares are rounded to cents per event.
func RawObligations(people []models.Person, items []models.Item, receiptPayers map[string]string) *RawView {
	ids := models.PersonIDs(people)
	index := make(map[string]int, len(ids))
	for i, id := range ids {
		index[id] = i
	}

	var events []paymentEvent
	manual, receipt := models.SplitItems(items)

	for _, g := range models.GroupReceipts(receipt, receiptPayers) {
		if g.PayerID == "" {
			continue
		}
		shares := make(map[string]decimal.Decimal)
		for _, it := range g.Items {
			if len(it.AssignedPersonIDs) == 0 {
				continue
			}
			share := money.Share(it.Price, len(it.AssignedPersonIDs))
			for _, id := range it.AssignedPersonIDs {
				shares[id] = shares[id].Add(share)
			}
		}
		events = append(events, paymentEvent{payer: g.PayerID, shares: shares})
	}

	for _, it := range manual {
		if it.PayerID == "" {
			continue
		}
		share := money.Share(it.Price, len(ids))
		shares := make(map[string]decimal.Decimal, len(ids))
		for _, id := range ids {
			shares[id] = share
		}
		events = append(events, paymentEvent{payer: it.PayerID, shares: shares})
	}

	matrix := newMatrix(len(ids))
	for _, ev := range events {
		to, ok := index[ev.payer]
		if !ok {
			continue
		}
		for id, share := range ev.shares {
			from, ok := index[id]
			if !ok || from == to {
				continue
			}
			matrix[from][to] = matrix[from][to].Add(money.Round2(share))
		}
	}

	view := &RawView{People: ids, Matrix: matrix}
	for i := range ids {
		for j := range ids {
			if amt := matrix[i][j]; amt.IsPositive() {
				view.Obligations = append(view.Obligations, Obligation{From: ids[i], To: ids[j], Amount: amt})
			}
		}
	}
	return view
}

// TransferMatrix lays out settlement transfers as a people × people matrix.
// Transfers involving unknown people are dropped.
func TransferMatrix(people []models.Person, transfers []models.Transfer) Matrix {
	ids := models.PersonIDs(people)
	index := make(map[string]int, len(ids))
	for i, id := range ids {
		index[id] = i
	}
	matrix := newMatrix(len(ids))
	for _, t := range transfers {
		from, okFrom := index[t.From]
		to, okTo := index[t.To]
		if !okFrom || !okTo {
			continue
		}
		matrix[from][to] = matrix[from][to].Add(t.Amount)
	}
	return matrix
}

func newMatrix(n int) Matrix {
	m := make(Matrix, n)
	for i := range m {
		m[i] = make([]decimal.Decimal, n)
		for j := range m[i] {
			m[i][j] = decimal.Zero
		}
	}
	return m
}
