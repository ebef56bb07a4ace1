package calculator

import (
	"testing"

	"github.com/mmynk/dutchie/internal/models"
)

func TestRawObligations(t *testing.T) {
	people := []models.Person{alice, bob, carol}
	items := []models.Item{
		&models.ManualItem{Name: "Dinner", Price: dec("30"), PayerID: "a"},
		&models.ManualItem{Name: "Parking", Price: dec("6")},
		receiptItem("r1", "8.00", "a", "b"),
		receiptItem("r1", "3.00", "c"),
		receiptItem("r1", "2.00"),
	}

	view := RawObligations(people, items, map[string]string{"r1": "c"})

	want := []Obligation{
		{From: "a", To: "c", Amount: dec("4")},
		{From: "b", To: "a", Amount: dec("10")},
		{From: "b", To: "c", Amount: dec("4")},
		{From: "c", To: "a", Amount: dec("10")},
	}
	if len(view.Obligations) != len(want) {
		t.Fatalf("got %d obligations %+v, want %d", len(view.Obligations), view.Obligations, len(want))
	}
	for i, w := range want {
		got := view.Obligations[i]
		if got.From != w.From || got.To != w.To || !got.Amount.Equal(w.Amount) {
			t.Errorf("obligation[%d] = %+v, want %+v", i, got, w)
		}
	}

	for i := range view.People {
		if !view.Matrix[i][i].IsZero() {
			t.Errorf("diagonal [%d][%d] = %s, want 0", i, i, view.Matrix[i][i])
		}
	}
}

func TestRawObligations_NoPayers(t *testing.T) {
	people := []models.Person{alice, bob}
	items := []models.Item{receiptItem("r1", "5.00", "a", "b")}

	view := RawObligations(people, items, nil)

	if len(view.Obligations) != 0 {
		t.Errorf("expected no obligations, got %+v", view.Obligations)
	}
	if len(view.Matrix) != 2 || len(view.Matrix[0]) != 2 {
		t.Errorf("matrix shape = %dx?, want 2x2", len(view.Matrix))
	}
}

func TestTransferMatrix_UnknownPeopleDropped(t *testing.T) {
	people := []models.Person{alice, bob}
	transfers := []models.Transfer{
		{From: "b", To: "a", Amount: dec("5")},
		{From: "ghost", To: "a", Amount: dec("7")},
	}

	m := TransferMatrix(people, transfers)

	if !m[1][0].Equal(dec("5")) {
		t.Errorf("m[b][a] = %s, want 5", m[1][0])
	}
	if !m[0][0].IsZero() || !m[0][1].IsZero() || !m[1][1].IsZero() {
		t.Errorf("unexpected entries in %v", m)
	}
}
