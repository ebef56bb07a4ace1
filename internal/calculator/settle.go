package calculator

import (
	"sort"

	"github.com/shopspring/decimal"

	"github.com/mmynk/dutchie/internal/models"
	"github.com/mmynk/dutchie/internal/money"
)

type party struct {
	id     string
	amount decimal.Decimal // remaining magnitude, unrounded
}

// Settle turns net balances into a short list of transfers.
//
// Algorithm (greedy matching):
//   - Creditors are people with balance > Epsilon, debtors < -Epsilon.
//   - Both lists are sorted by magnitude, largest first. Ties keep input order.
//   - Repeatedly pay min(debt, credit) from the current debtor to the current
//     creditor and advance whichever side is settled to within Epsilon.
//
// The result has at most len(creditors)+len(debtors)-1 transfers. Residual
// imbalance, if balances do not sum to zero, is left unsettled.
func Settle(balances []models.PersonBalance) []models.Transfer {
	var creditors, debtors []party
	for _, b := range balances {
		switch {
		case b.Amount.GreaterThan(money.Epsilon):
			creditors = append(creditors, party{id: b.PersonID, amount: b.Amount})
		case b.Amount.LessThan(money.Epsilon.Neg()):
			debtors = append(debtors, party{id: b.PersonID, amount: b.Amount.Neg()})
		}
	}
	sort.SliceStable(creditors, func(i, j int) bool { return creditors[i].amount.GreaterThan(creditors[j].amount) })
	sort.SliceStable(debtors, func(i, j int) bool { return debtors[i].amount.GreaterThan(debtors[j].amount) })

	transfers := []models.Transfer{}
	i, j := 0, 0
	for i < len(debtors) && j < len(creditors) {
		d, c := &debtors[i], &creditors[j]

		amount := decimal.Min(d.amount, c.amount)
		if rounded := money.Round2(amount); rounded.IsPositive() {
			transfers = append(transfers, models.Transfer{From: d.id, To: c.id, Amount: rounded})
		}

		d.amount = d.amount.Sub(amount)
		c.amount = c.amount.Sub(amount)

		if d.amount.LessThanOrEqual(money.Epsilon) {
			i++
		}
		if c.amount.LessThanOrEqual(money.Epsilon) {
			j++
		}
	}
	return transfers
}
