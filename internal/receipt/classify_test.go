package receipt

import (
	"reflect"
	"regexp"
	"testing"
)

func TestClassifyLine(t *testing.T) {
	tests := []struct {
		line string
		want Class
	}{
		{"MILK 3.49", ClassItem},
		{"SPINACH 2.99", ClassItem},
		{"SUBTOTAL 7.00", ClassSummary},
		{"Sub Total", ClassSummary},
		{"TAX", ClassSummary},
		{"**** TOTAL 7.56", ClassSummary},
		{"BALANCE DUE 7.56", ClassSummary},
		{"CHANGE DUE 0.00", ClassSummary},
		{"TENDER", ClassSummary},
		{"VISA ************1234", ClassNoise},
		{"APPROVED", ClassNoise},
		{"TRAN ID: 00551", ClassNoise},
		{"AID: A0000000031010", ClassNoise},
		{"SEQ# 1234", ClassNoise},
		{"US DEBIT", ClassNoise},
	}

	for _, tt := range tests {
		t.Run(tt.line, func(t *testing.T) {
			if got := ClassifyLine(tt.line); got != tt.want {
				t.Errorf("ClassifyLine(%q) = %s, want %s", tt.line, got, tt.want)
			}
		})
	}
}

func TestRegionsNeverReenterItems(t *testing.T) {
	lines := []string{"BREAD 3.99", "EGGS 2.50", "VISA 1234", "MILK 3.49", "TOTAL 9.98", "CANDY 1.00"}
	want := []Class{ClassItem, ClassItem, ClassNoise, ClassNoise, ClassSummary, ClassNoise}

	got := DefaultClassifier.Regions(lines)
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Regions() = %v, want %v", got, want)
	}
}

func TestCustomVocabulary(t *testing.T) {
	c := Classifier{
		Summary: DefaultClassifier.Summary,
		Noise:   regexp.MustCompile(`(?i)\bmerci\b`),
	}
	if got := c.ClassifyLine("MERCI"); got != ClassNoise {
		t.Errorf("custom noise line classified as %s", got)
	}
	if got := c.ClassifyLine("VISA 1234"); got != ClassItem {
		t.Errorf("default noise word should not apply, got %s", got)
	}

	res := c.ExtractPricesOnly("A 1.00\nMERCI\nB 2.00")
	if len(res.Prices) != 1 {
		t.Errorf("expected extraction to stop at custom noise, got %v", res.Prices)
	}
}

func TestSplitLines(t *testing.T) {
	got := SplitLines("  MILK 3.49 \r\n\r\n\tBREAD\n   \n3.99")
	want := []string{"MILK 3.49", "BREAD", "3.99"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("SplitLines() = %q, want %q", got, want)
	}
}
