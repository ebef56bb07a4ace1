package models

import "github.com/shopspring/decimal"

// Transfer is a payment from one person to another that settles debts.
type Transfer struct {
	// From is the person who sends money (debtor).
	From string

	// To is the person who receives money (creditor).
	To string

	// Amount is always positive and at least one cent.
	Amount decimal.Decimal
}

// PersonBalance is one person's paid minus owed.
// Positive means the person is owed money, negative means they owe.
type PersonBalance struct {
	PersonID string
	Amount   decimal.Decimal
}
