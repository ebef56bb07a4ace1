package receipt

import "testing"

func TestReconstructLines(t *testing.T) {
	words := []Word{
		{Text: "3.99", X: 200, Y: 41},
		{Text: "MILK", X: 10, Y: 10},
		{Text: "BREAD", X: 12, Y: 38},
		{Text: "3.49", X: 201, Y: 13},
		{Text: "  ", X: 50, Y: 25},
		{Text: "TOTAL", X: 11, Y: 70},
	}

	got := ReconstructLines(words, 0)
	want := "MILK 3.49\nBREAD 3.99\nTOTAL"
	if got != want {
		t.Errorf("ReconstructLines() = %q, want %q", got, want)
	}
}

func TestReconstructLines_TightTolerance(t *testing.T) {
	words := []Word{
		{Text: "A", X: 0, Y: 0},
		{Text: "B", X: 10, Y: 9},
		{Text: "C", X: 20, Y: 30},
	}

	if got := ReconstructLines(words, 8); got != "A\nB\nC" {
		t.Errorf("tolerance 8: got %q", got)
	}
	if got := ReconstructLines(words, 14); got != "A B\nC" {
		t.Errorf("tolerance 14: got %q", got)
	}
}

func TestReconstructLines_Empty(t *testing.T) {
	if got := ReconstructLines(nil, 10); got != "" {
		t.Errorf("ReconstructLines(nil) = %q, want empty", got)
	}
}

func TestClampTolerance(t *testing.T) {
	tests := map[float64]float64{
		0:  DefaultLineTolerance,
		-3: DefaultLineTolerance,
		5:  8,
		11: 11,
		20: 14,
	}
	for in, want := range tests {
		if got := ClampTolerance(in); got != want {
			t.Errorf("ClampTolerance(%v) = %v, want %v", in, got, want)
		}
	}
}
