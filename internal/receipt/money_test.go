package receipt

import (
	"reflect"
	"testing"

	"github.com/shopspring/decimal"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func TestParseMoney(t *testing.T) {
	tests := []struct {
		raw    string
		want   string
		wantOK bool
	}{
		{"12.89", "12.89", true},
		{"2.00-", "-2.00", true},
		{"(3.50)", "-3.50", true},
		{"$4.99", "4.99", true},
		{"$ 4.99", "4.99", true},
		{"3,49", "3.49", true},
		{"2.00−", "-2.00", true},
		{"1O.5O", "10.50", true},
		{"l2.00", "12.00", true},
		{"4.99*", "4.99", true},
		{"4.99.", "4.99", true},
		{"($3.50)", "-3.50", true},
		{"12.8", "", false},
		{"abc", "", false},
		{"12.899", "", false},
		{"", "", false},
		{"-3.49", "", false},
		{"12", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			got, ok := ParseMoney(tt.raw)
			if ok != tt.wantOK {
				t.Fatalf("ParseMoney(%q) ok = %v, want %v", tt.raw, ok, tt.wantOK)
			}
			if ok && !got.Equal(dec(tt.want)) {
				t.Errorf("ParseMoney(%q) = %s, want %s", tt.raw, got, tt.want)
			}
		})
	}
}

func TestFindMoneyTokens(t *testing.T) {
	tests := []struct {
		line string
		want []string
	}{
		{"MILK 3.49", []string{"3.49"}},
		{"2 @ 1.50 3.00", []string{"1.50", "3.00"}},
		{"COUPON (3.50)", []string{"(3.50)"}},
		{"DISC 2.00-", []string{"2.00-"}},
		{"BANANAS $0.59", []string{"$0.59"}},
		{"REF 12.899", nil},
		{"TV 1,234.56", nil},
		{"TV 1.234,56", nil},
		{"QTY 12 34.56", []string{"34.56"}},
		{"NO PRICE HERE", nil},
	}

	for _, tt := range tests {
		t.Run(tt.line, func(t *testing.T) {
			got := FindMoneyTokens(tt.line)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("FindMoneyTokens(%q) = %q, want %q", tt.line, got, tt.want)
			}
		})
	}
}

func TestLastMoney(t *testing.T) {
	got, ok := LastMoney("2 @ 1.50 3.00")
	if !ok || !got.Equal(dec("3.00")) {
		t.Errorf("LastMoney = %s, %v; want 3.00, true", got, ok)
	}

	if _, ok := LastMoney("QTY 2"); ok {
		t.Error("LastMoney on a line without amounts should report false")
	}
}

func TestIsMoneyLine(t *testing.T) {
	tests := map[string]bool{
		"3.99":       true,
		"2.00-":      true,
		" 4.29 ":     true,
		"$1.00":      true,
		"MILK 3.49":  false,
		"3.9":        false,
		"3.99 F":     false,
		"(3.50)":     false,
		"761486 ORG": false,
	}
	for line, want := range tests {
		if got := IsMoneyLine(line); got != want {
			t.Errorf("IsMoneyLine(%q) = %v, want %v", line, got, want)
		}
	}
}

func TestParseMoneyIsRepeatable(t *testing.T) {
	for _, raw := range []string{"12.89", "2.00-", "(3.50)"} {
		first, _ := ParseMoney(raw)
		second, _ := ParseMoney(raw)
		if !first.Equal(second) {
			t.Errorf("ParseMoney(%q) changed between calls: %s vs %s", raw, first, second)
		}
	}
}
