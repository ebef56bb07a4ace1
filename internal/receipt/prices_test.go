package receipt

import (
	"strings"
	"testing"

	"github.com/shopspring/decimal"
)

func assertAmount(t *testing.T, label string, got *decimal.Decimal, want string) {
	t.Helper()
	if want == "" {
		if got != nil {
			t.Errorf("%s = %s, want absent", label, got)
		}
		return
	}
	if got == nil {
		t.Errorf("%s is absent, want %s", label, want)
		return
	}
	if !got.Equal(dec(want)) {
		t.Errorf("%s = %s, want %s", label, got, want)
	}
}

func assertPrices(t *testing.T, got []decimal.Decimal, want ...string) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("got %d prices %v, want %d %v", len(got), got, len(want), want)
	}
	for i := range want {
		if !got[i].Equal(dec(want[i])) {
			t.Errorf("price[%d] = %s, want %s", i, got[i], want[i])
		}
	}
}

func TestExtractPricesOnly_SummaryLinesExcluded(t *testing.T) {
	text := strings.Join([]string{"MILK 3.49", "SUBTOTAL", "7.00", "TAX", "0.56", "TOTAL", "7.56"}, "\n")

	res := ExtractPricesOnly(text)

	assertPrices(t, res.Prices, "3.49")
	assertAmount(t, "subtotal", res.Subtotal, "7.00")
	assertAmount(t, "tax", res.Tax, "0.56")
	assertAmount(t, "total", res.Total, "7.56")
}

func TestExtractPricesOnly(t *testing.T) {
	tests := []struct {
		name string
		text string
		want []string
	}{
		{
			name: "rightmost amount wins",
			text: "2 @ 1.50 3.00\nBREAD 3.99",
			want: []string{"3.00", "3.99"},
		},
		{
			name: "zero amounts are noise",
			text: "BAG FEE 0.00\nEGGS 2.50",
			want: []string{"2.50"},
		},
		{
			name: "discounts stay negative",
			text: "CHEESE 5.99\nMEMBER SAVINGS 1.00-\nCOUPON (0.50)",
			want: []string{"5.99", "-1.00", "-0.50"},
		},
		{
			name: "payment noise ends the item list",
			text: "A 1.00\nAPPROVED\nB 2.00\nC 3.00",
			want: []string{"1.00"},
		},
		{
			name: "lines without a valid amount are skipped",
			text: "WELCOME\nAPPLES 1.2\nPEARS 12.899\nPLUMS 4.00",
			want: []string{"4.00"},
		},
		{
			name: "thousands-grouped amounts are rejected whole",
			text: "TV 1,234.56\nMILK 3.49",
			want: []string{"3.49"},
		},
		{
			name: "carriage returns and padding",
			text: "\r\n   MILK    3.49  \r\n\r\n",
			want: []string{"3.49"},
		},
		{
			name: "empty text",
			text: "",
			want: []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := ExtractPricesOnly(tt.text)
			assertPrices(t, res.Prices, tt.want...)
		})
	}
}

func TestExtractPricesOnly_SummaryOnSameLine(t *testing.T) {
	res := ExtractPricesOnly("EGGS 2.50\nSUBTOTAL 2.50\nTAX 0.20\n**** TOTAL 2.70\nVISA 2.70")

	assertAmount(t, "subtotal", res.Subtotal, "2.50")
	assertAmount(t, "tax", res.Tax, "0.20")
	assertAmount(t, "total", res.Total, "2.70")
}

func TestExtractPricesOnly_SubtotalIsNotTotal(t *testing.T) {
	text := "MILK 3.49\nSUB TOTAL 3.49\nTAX 0.28\nTOTAL 3.77"

	res := ExtractPricesOnly(text)
	assertAmount(t, "subtotal", res.Subtotal, "3.49")
	assertAmount(t, "total", res.Total, "3.77")

	described := ExtractItemsWithNames(text)
	if !res.Total.Equal(*described.Total) {
		t.Errorf("strategies disagree on total: %s vs %s", res.Total, described.Total)
	}
}

func TestExtractPricesOnly_MissingSummary(t *testing.T) {
	res := ExtractPricesOnly("EGGS 2.50\nSUBTOTAL\nTHANK YOU")

	assertAmount(t, "subtotal", res.Subtotal, "")
	assertAmount(t, "tax", res.Tax, "")
	assertAmount(t, "total", res.Total, "")
}

func TestExtractPricesOnly_Idempotent(t *testing.T) {
	text := "MILK 3.49\nBREAD 2.99\nSUBTOTAL 6.48"
	a := ExtractPricesOnly(text)
	b := ExtractPricesOnly(text)
	if len(a.Prices) != len(b.Prices) {
		t.Fatalf("price counts differ: %d vs %d", len(a.Prices), len(b.Prices))
	}
	for i := range a.Prices {
		if a.Prices[i].String() != b.Prices[i].String() {
			t.Errorf("price[%d] differs: %s vs %s", i, a.Prices[i], b.Prices[i])
		}
	}
}

func TestPositionalName(t *testing.T) {
	if got := PositionalName("r2", 0); got != "r2-1" {
		t.Errorf("PositionalName() = %q, want r2-1", got)
	}
}
