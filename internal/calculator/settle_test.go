package calculator

import (
	"testing"

	"github.com/shopspring/decimal"

	"github.com/mmynk/dutchie/internal/models"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func balances(pairs ...string) []models.PersonBalance {
	out := make([]models.PersonBalance, 0, len(pairs)/2)
	for i := 0; i+1 < len(pairs); i += 2 {
		out = append(out, models.PersonBalance{PersonID: pairs[i], Amount: dec(pairs[i+1])})
	}
	return out
}

func assertTransfers(t *testing.T, got []models.Transfer, want []models.Transfer) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("got %d transfers %+v, want %d %+v", len(got), got, len(want), want)
	}
	for i := range want {
		if got[i].From != want[i].From || got[i].To != want[i].To || !got[i].Amount.Equal(want[i].Amount) {
			t.Errorf("transfer[%d] = %s->%s %s, want %s->%s %s",
				i, got[i].From, got[i].To, got[i].Amount, want[i].From, want[i].To, want[i].Amount)
		}
	}
}

func TestSettle(t *testing.T) {
	tests := []struct {
		name     string
		balances []models.PersonBalance
		want     []models.Transfer
	}{
		{
			name:     "one creditor two debtors",
			balances: balances("A", "30", "B", "-10", "C", "-20"),
			want: []models.Transfer{
				{From: "C", To: "A", Amount: dec("20")},
				{From: "B", To: "A", Amount: dec("10")},
			},
		},
		{
			name:     "two creditors one debtor",
			balances: balances("A", "5.50", "B", "4.50", "C", "-10"),
			want: []models.Transfer{
				{From: "C", To: "A", Amount: dec("5.50")},
				{From: "C", To: "B", Amount: dec("4.50")},
			},
		},
		{
			name:     "ties keep input order",
			balances: balances("A", "10", "B", "10", "C", "-10", "D", "-10"),
			want: []models.Transfer{
				{From: "C", To: "A", Amount: dec("10")},
				{From: "D", To: "B", Amount: dec("10")},
			},
		},
		{
			name:     "noise below a cent is ignored",
			balances: balances("A", "0.009", "B", "-0.009"),
			want:     []models.Transfer{},
		},
		{
			name:     "all balanced",
			balances: balances("A", "0", "B", "0"),
			want:     []models.Transfer{},
		},
		{
			name:     "no people",
			balances: nil,
			want:     []models.Transfer{},
		},
		{
			name:     "residual imbalance left unsettled",
			balances: balances("A", "10", "B", "-4"),
			want:     []models.Transfer{{From: "B", To: "A", Amount: dec("4")}},
		},
		{
			name:     "thirds round to cents",
			balances: balances("A", "6.6666666666666667", "B", "-3.3333333333333333", "C", "-3.3333333333333333"),
			want: []models.Transfer{
				{From: "B", To: "A", Amount: dec("3.33")},
				{From: "C", To: "A", Amount: dec("3.33")},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assertTransfers(t, Settle(tt.balances), tt.want)
		})
	}
}

func TestSettle_Invariants(t *testing.T) {
	input := balances("A", "42.10", "B", "-7.35", "C", "13.90", "D", "-30.00", "E", "-18.65")

	transfers := Settle(input)

	var creditors, debtors int
	for _, b := range input {
		if b.Amount.IsPositive() {
			creditors++
		} else if b.Amount.IsNegative() {
			debtors++
		}
	}
	if limit := creditors + debtors - 1; len(transfers) > limit {
		t.Errorf("got %d transfers, want at most %d", len(transfers), limit)
	}

	net := map[string]decimal.Decimal{}
	for _, tr := range transfers {
		if !tr.Amount.IsPositive() {
			t.Errorf("transfer %s->%s has non-positive amount %s", tr.From, tr.To, tr.Amount)
		}
		if tr.From == tr.To {
			t.Errorf("self transfer for %s", tr.From)
		}
		net[tr.From] = net[tr.From].Add(tr.Amount)
		net[tr.To] = net[tr.To].Sub(tr.Amount)
	}
	for _, b := range input {
		if got := net[b.PersonID].Add(b.Amount); got.Abs().GreaterThan(dec("0.01")) {
			t.Errorf("%s not settled: residual %s", b.PersonID, got)
		}
	}
}

func TestSettle_Deterministic(t *testing.T) {
	input := balances("A", "12.34", "B", "-6.17", "C", "-6.17")
	first := Settle(input)
	second := Settle(input)
	assertTransfers(t, second, first)

	if !input[1].Amount.Equal(dec("-6.17")) {
		t.Errorf("Settle mutated its input: %s", input[1].Amount)
	}
}
