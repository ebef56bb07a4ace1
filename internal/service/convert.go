package service

import (
	"github.com/shopspring/decimal"

	"github.com/mmynk/dutchie/internal/calculator"
	"github.com/mmynk/dutchie/internal/models"
	"github.com/mmynk/dutchie/internal/money"
	"github.com/mmynk/dutchie/internal/receipt"
	"github.com/mmynk/dutchie/pkg/api"
)

func toAPIPerson(p models.Person) api.Person {
	return api.Person{ID: p.ID, Name: p.Name, DisplayName: p.DisplayName()}
}

func toAPIPeople(people []models.Person) []api.Person {
	out := make([]api.Person, len(people))
	for i, p := range people {
		out[i] = toAPIPerson(p)
	}
	return out
}

func toAPIItem(it models.Item) api.Item {
	out := api.Item{
		ID:         it.ItemID(),
		Name:       it.ItemName(),
		PriceCents: money.Cents(it.ItemPrice()),
		Source:     string(it.Source()),
	}
	switch v := it.(type) {
	case *models.ManualItem:
		out.PayerID = v.PayerID
	case *models.ReceiptItem:
		out.ReceiptGroupID = v.ReceiptGroupID
		out.AssignedPersonIDs = append([]string{}, v.AssignedPersonIDs...)
	}
	return out
}

func toAPIItems(items []models.Item) []api.Item {
	out := make([]api.Item, len(items))
	for i, it := range items {
		out[i] = toAPIItem(it)
	}
	return out
}

func toAPIGroup(g models.ReceiptGroup) api.ReceiptGroup {
	ids := make([]string, len(g.Items))
	for i, it := range g.Items {
		ids[i] = it.ID
	}
	return api.ReceiptGroup{
		ID:         g.ID,
		ItemIDs:    ids,
		TotalCents: money.Cents(g.Total),
		PayerID:    g.PayerID,
	}
}

func toAPIGroups(groups []models.ReceiptGroup) []api.ReceiptGroup {
	out := make([]api.ReceiptGroup, len(groups))
	for i, g := range groups {
		out[i] = toAPIGroup(g)
	}
	return out
}

func centsPtr(d *decimal.Decimal) *int64 {
	if d == nil {
		return nil
	}
	c := money.Cents(*d)
	return &c
}

func toAPISummary(s receipt.Summary) api.ReceiptSummary {
	return api.ReceiptSummary{
		SubtotalCents: centsPtr(s.Subtotal),
		TaxCents:      centsPtr(s.Tax),
		TotalCents:    centsPtr(s.Total),
	}
}

func toAPIMatrix(ids []string, m calculator.Matrix) api.Matrix {
	rows := make([][]int64, len(m))
	for i, row := range m {
		rows[i] = make([]int64, len(row))
		for j, v := range row {
			rows[i][j] = money.Cents(v)
		}
	}
	return api.Matrix{PersonIDs: append([]string{}, ids...), Rows: rows}
}

func toAPITransfers(transfers []models.Transfer) []api.Transfer {
	out := make([]api.Transfer, len(transfers))
	for i, t := range transfers {
		out[i] = api.Transfer{FromPersonID: t.From, ToPersonID: t.To, AmountCents: money.Cents(t.Amount)}
	}
	return out
}

func receiptItemsOf(items []*models.ReceiptItem) []models.Item {
	out := make([]models.Item, len(items))
	for i, it := range items {
		out[i] = it
	}
	return out
}
