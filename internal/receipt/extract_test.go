package receipt

import (
	"errors"
	"testing"
)

func TestExtract_PricesOnly(t *testing.T) {
	ex, err := Extract(StrategyPricesOnly, "r2", "MILK 3.49\nBREAD 2.99\nTOTAL 6.48")
	if err != nil {
		t.Fatalf("Extract() error = %v", err)
	}

	if len(ex.Items) != 2 {
		t.Fatalf("got %d items, want 2", len(ex.Items))
	}
	for i, want := range []string{"r2-1", "r2-2"} {
		it := ex.Items[i]
		if it.Name != want {
			t.Errorf("item[%d] name = %q, want %q", i, it.Name, want)
		}
		if it.ReceiptGroupID != "r2" {
			t.Errorf("item[%d] group = %q, want r2", i, it.ReceiptGroupID)
		}
		if len(it.AssignedPersonIDs) != 0 {
			t.Errorf("item[%d] should start unassigned", i)
		}
	}
	assertAmount(t, "total", ex.Total, "6.48")
}

func TestExtract_Described(t *testing.T) {
	ex, err := Extract(StrategyDescribed, "r1", "ORGANIC\nWHOLE MILK\n5.49\nTOTAL\n5.49")
	if err != nil {
		t.Fatalf("Extract() error = %v", err)
	}
	if len(ex.Items) != 1 || ex.Items[0].Name != "ORGANIC WHOLE MILK" {
		t.Fatalf("unexpected items %+v", ex.Items)
	}
	if !ex.Items[0].Price.Equal(dec("5.49")) {
		t.Errorf("price = %s, want 5.49", ex.Items[0].Price)
	}
}

func TestExtract_NoItems(t *testing.T) {
	for _, s := range []Strategy{StrategyPricesOnly, StrategyDescribed} {
		t.Run(string(s), func(t *testing.T) {
			ex, err := Extract(s, "r1", "THANK YOU\nCOME AGAIN")
			if !errors.Is(err, ErrNoItems) {
				t.Fatalf("Extract() error = %v, want ErrNoItems", err)
			}
			if ex == nil || len(ex.Items) != 0 {
				t.Errorf("expected an empty extraction, got %+v", ex)
			}
		})
	}
}

func TestExtract_UnknownStrategy(t *testing.T) {
	if _, err := Extract(Strategy("guess"), "r1", "MILK 3.49"); err == nil {
		t.Fatal("expected an error for an unknown strategy")
	}
}

func TestParseStrategy(t *testing.T) {
	tests := []struct {
		in      string
		want    Strategy
		wantErr bool
	}{
		{"", StrategyPricesOnly, false},
		{"prices_only", StrategyPricesOnly, false},
		{"described", StrategyDescribed, false},
		{"auto", "", true},
	}
	for _, tt := range tests {
		got, err := ParseStrategy(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseStrategy(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseStrategy(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
