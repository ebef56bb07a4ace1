package sqlite

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/mmynk/dutchie/internal/models"
	"github.com/mmynk/dutchie/internal/storage"
)

func newTestStore(t *testing.T) *SQLiteStore {
	t.Helper()
	store, err := New(":memory:")
	if err != nil {
		t.Fatalf("Failed to create store: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func newTestSession(t *testing.T, store *SQLiteStore) string {
	t.Helper()
	session := &models.Session{ExpiresAt: time.Now().Add(time.Hour)}
	if err := store.CreateSession(context.Background(), session); err != nil {
		t.Fatalf("CreateSession failed: %v", err)
	}
	return session.ID
}

func addPeople(t *testing.T, store *SQLiteStore, sessionID string, names ...string) []models.Person {
	t.Helper()
	var people []models.Person
	for _, name := range names {
		p := &models.Person{Name: name}
		if err := store.AddPerson(context.Background(), sessionID, p); err != nil {
			t.Fatalf("AddPerson(%s) failed: %v", name, err)
		}
		people = append(people, *p)
	}
	return people
}

func TestSQLiteStore(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	t.Run("CreateSession generates ID", func(t *testing.T) {
		session := &models.Session{ExpiresAt: time.Now().Add(time.Hour)}
		if err := store.CreateSession(ctx, session); err != nil {
			t.Fatalf("CreateSession failed: %v", err)
		}
		if session.ID == "" {
			t.Error("Expected session ID to be generated")
		}

		got, err := store.GetSession(ctx, session.ID)
		if err != nil {
			t.Fatalf("GetSession failed: %v", err)
		}
		if got.ExpiresAt.Unix() != session.ExpiresAt.Unix() {
			t.Errorf("ExpiresAt = %v, want %v", got.ExpiresAt, session.ExpiresAt)
		}
	})

	t.Run("GetSession returns ErrNotFound", func(t *testing.T) {
		_, err := store.GetSession(ctx, "missing")
		if !errors.Is(err, storage.ErrNotFound) {
			t.Errorf("Expected ErrNotFound, got %v", err)
		}
	})

	t.Run("people keep insertion order", func(t *testing.T) {
		sessionID := newTestSession(t, store)
		addPeople(t, store, sessionID, "Zoe", "Adam", "Mia")

		people, err := store.ListPeople(ctx, sessionID)
		if err != nil {
			t.Fatalf("ListPeople failed: %v", err)
		}
		var names []string
		for _, p := range people {
			names = append(names, p.Name)
		}
		if !reflect.DeepEqual(names, []string{"Zoe", "Adam", "Mia"}) {
			t.Errorf("names = %v", names)
		}
	})

	t.Run("RenamePerson is scoped to the session", func(t *testing.T) {
		s1 := newTestSession(t, store)
		s2 := newTestSession(t, store)
		p := addPeople(t, store, s1, "Alice")[0]

		if err := store.RenamePerson(ctx, s2, p.ID, "Mallory"); !errors.Is(err, storage.ErrNotFound) {
			t.Errorf("Expected ErrNotFound from another session, got %v", err)
		}
		if err := store.RenamePerson(ctx, s1, p.ID, "Alicia"); err != nil {
			t.Fatalf("RenamePerson failed: %v", err)
		}
		people, _ := store.ListPeople(ctx, s1)
		if people[0].Name != "Alicia" {
			t.Errorf("name = %q, want Alicia", people[0].Name)
		}
	})

	t.Run("items round-trip with exact prices", func(t *testing.T) {
		sessionID := newTestSession(t, store)
		people := addPeople(t, store, sessionID, "Alice", "Bob")

		items := []models.Item{
			&models.ManualItem{Name: "Pizza", Price: decimal.RequireFromString("20.10"), PayerID: people[0].ID},
			&models.ReceiptItem{Name: "MILK", Price: decimal.RequireFromString("3.49"), ReceiptGroupID: "r1",
				AssignedPersonIDs: []string{people[1].ID, people[0].ID}},
			&models.ReceiptItem{Name: "DISCOUNT", Price: decimal.RequireFromString("-1.00"), ReceiptGroupID: "r1"},
		}
		if err := store.AddItems(ctx, sessionID, items...); err != nil {
			t.Fatalf("AddItems failed: %v", err)
		}

		got, err := store.ListItems(ctx, sessionID)
		if err != nil {
			t.Fatalf("ListItems failed: %v", err)
		}
		if len(got) != 3 {
			t.Fatalf("Expected 3 items, got %d", len(got))
		}

		manual, ok := got[0].(*models.ManualItem)
		if !ok {
			t.Fatalf("item[0] is %T, want *ManualItem", got[0])
		}
		if manual.PayerID != people[0].ID || !manual.Price.Equal(decimal.RequireFromString("20.10")) {
			t.Errorf("manual item = %+v", manual)
		}

		milk := got[1].(*models.ReceiptItem)
		if !reflect.DeepEqual(milk.AssignedPersonIDs, []string{people[1].ID, people[0].ID}) {
			t.Errorf("assignees = %v, want selection order", milk.AssignedPersonIDs)
		}
		discount := got[2].(*models.ReceiptItem)
		if len(discount.AssignedPersonIDs) != 0 || !discount.Price.IsNegative() {
			t.Errorf("discount = %+v", discount)
		}
	})

	t.Run("SetAssignees rejects unknown people", func(t *testing.T) {
		sessionID := newTestSession(t, store)
		people := addPeople(t, store, sessionID, "Alice")
		item := &models.ReceiptItem{Name: "EGGS", Price: decimal.RequireFromString("2.50"), ReceiptGroupID: "r1"}
		if err := store.AddItems(ctx, sessionID, item); err != nil {
			t.Fatalf("AddItems failed: %v", err)
		}

		err := store.SetAssignees(ctx, sessionID, item.ID, []string{people[0].ID, "ghost"})
		if !errors.Is(err, storage.ErrNotFound) {
			t.Errorf("Expected ErrNotFound, got %v", err)
		}

		if err := store.SetAssignees(ctx, sessionID, item.ID, []string{people[0].ID, people[0].ID}); err != nil {
			t.Fatalf("SetAssignees failed: %v", err)
		}
		got, _ := store.GetItem(ctx, sessionID, item.ID)
		if ids := got.(*models.ReceiptItem).AssignedPersonIDs; len(ids) != 1 {
			t.Errorf("Expected duplicate ids collapsed, got %v", ids)
		}
	})

	t.Run("RemovePerson clears their references", func(t *testing.T) {
		sessionID := newTestSession(t, store)
		people := addPeople(t, store, sessionID, "Alice", "Bob")
		manual := &models.ManualItem{Name: "Cab", Price: decimal.NewFromInt(12), PayerID: people[0].ID}
		receipt := &models.ReceiptItem{Name: "r1-1", Price: decimal.NewFromInt(4), ReceiptGroupID: "r1",
			AssignedPersonIDs: []string{people[0].ID, people[1].ID}}
		if err := store.AddItems(ctx, sessionID, manual, receipt); err != nil {
			t.Fatalf("AddItems failed: %v", err)
		}
		if err := store.SetReceiptPayer(ctx, sessionID, "r1", people[0].ID); err != nil {
			t.Fatalf("SetReceiptPayer failed: %v", err)
		}

		if err := store.RemovePerson(ctx, sessionID, people[0].ID); err != nil {
			t.Fatalf("RemovePerson failed: %v", err)
		}

		items, _ := store.ListItems(ctx, sessionID)
		if p := items[0].(*models.ManualItem).PayerID; p != "" {
			t.Errorf("manual payer = %q, want cleared", p)
		}
		if ids := items[1].(*models.ReceiptItem).AssignedPersonIDs; !reflect.DeepEqual(ids, []string{people[1].ID}) {
			t.Errorf("assignees = %v, want only Bob", ids)
		}
		payers, _ := store.ReceiptPayers(ctx, sessionID)
		if len(payers) != 0 {
			t.Errorf("receipt payers = %v, want none", payers)
		}
	})

	t.Run("receipt groups can be removed and cleared", func(t *testing.T) {
		sessionID := newTestSession(t, store)
		people := addPeople(t, store, sessionID, "Alice")
		err := store.AddItems(ctx, sessionID,
			&models.ReceiptItem{Name: "r1-1", Price: decimal.NewFromInt(1), ReceiptGroupID: "r1"},
			&models.ReceiptItem{Name: "r2-1", Price: decimal.NewFromInt(2), ReceiptGroupID: "r2"},
			&models.ReceiptItem{Name: "r2-2", Price: decimal.NewFromInt(3), ReceiptGroupID: "r2"},
			&models.ManualItem{Name: "Tip", Price: decimal.NewFromInt(5)},
		)
		if err != nil {
			t.Fatalf("AddItems failed: %v", err)
		}
		if err := store.SetReceiptPayer(ctx, sessionID, "r2", people[0].ID); err != nil {
			t.Fatalf("SetReceiptPayer failed: %v", err)
		}

		n, err := store.RemoveReceiptGroup(ctx, sessionID, "r2")
		if err != nil || n != 2 {
			t.Fatalf("RemoveReceiptGroup = %d, %v; want 2, nil", n, err)
		}
		payers, _ := store.ReceiptPayers(ctx, sessionID)
		if _, ok := payers["r2"]; ok {
			t.Error("Expected r2 payer to be removed with its group")
		}
		if _, err := store.RemoveReceiptGroup(ctx, sessionID, "r2"); !errors.Is(err, storage.ErrNotFound) {
			t.Errorf("Expected ErrNotFound for a removed group, got %v", err)
		}

		n, err = store.ClearReceiptItems(ctx, sessionID)
		if err != nil || n != 1 {
			t.Fatalf("ClearReceiptItems = %d, %v; want 1, nil", n, err)
		}
		items, _ := store.ListItems(ctx, sessionID)
		if len(items) != 1 || items[0].Source() != models.SourceManual {
			t.Errorf("Expected only the manual item to remain, got %+v", items)
		}
	})

	t.Run("payers are validated and cleared", func(t *testing.T) {
		sessionID := newTestSession(t, store)
		people := addPeople(t, store, sessionID, "Alice")
		manual := &models.ManualItem{Name: "Wine", Price: decimal.NewFromInt(30)}
		receipt := &models.ReceiptItem{Name: "r1-1", Price: decimal.NewFromInt(9), ReceiptGroupID: "r1"}
		if err := store.AddItems(ctx, sessionID, manual, receipt); err != nil {
			t.Fatalf("AddItems failed: %v", err)
		}

		if err := store.SetManualPayer(ctx, sessionID, receipt.ID, people[0].ID); !errors.Is(err, storage.ErrNotFound) {
			t.Errorf("Expected ErrNotFound for manual payer on a receipt item, got %v", err)
		}
		if err := store.SetReceiptPayer(ctx, sessionID, "r9", people[0].ID); !errors.Is(err, storage.ErrNotFound) {
			t.Errorf("Expected ErrNotFound for an unknown group, got %v", err)
		}
		if err := store.SetManualPayer(ctx, sessionID, manual.ID, people[0].ID); err != nil {
			t.Fatalf("SetManualPayer failed: %v", err)
		}
		if err := store.SetReceiptPayer(ctx, sessionID, "r1", people[0].ID); err != nil {
			t.Fatalf("SetReceiptPayer failed: %v", err)
		}

		if err := store.ClearPayers(ctx, sessionID); err != nil {
			t.Fatalf("ClearPayers failed: %v", err)
		}
		got, _ := store.GetItem(ctx, sessionID, manual.ID)
		if got.(*models.ManualItem).PayerID != "" {
			t.Error("Expected manual payer cleared")
		}
		payers, _ := store.ReceiptPayers(ctx, sessionID)
		if len(payers) != 0 {
			t.Errorf("Expected receipt payers cleared, got %v", payers)
		}
	})

	t.Run("DeleteSession cascades", func(t *testing.T) {
		sessionID := newTestSession(t, store)
		addPeople(t, store, sessionID, "Alice")
		if err := store.DeleteSession(ctx, sessionID); err != nil {
			t.Fatalf("DeleteSession failed: %v", err)
		}
		if _, err := store.ListPeople(ctx, sessionID); !errors.Is(err, storage.ErrNotFound) {
			t.Errorf("Expected ErrNotFound after delete, got %v", err)
		}
		var count int
		if err := store.db.QueryRow("SELECT COUNT(*) FROM people WHERE session_id = ?", sessionID).Scan(&count); err != nil {
			t.Fatalf("count query failed: %v", err)
		}
		if count != 0 {
			t.Errorf("Expected people to cascade, %d remain", count)
		}
	})

	t.Run("DeleteExpiredSessions", func(t *testing.T) {
		expired := &models.Session{ExpiresAt: time.Now().Add(-time.Minute)}
		if err := store.CreateSession(ctx, expired); err != nil {
			t.Fatalf("CreateSession failed: %v", err)
		}
		live := newTestSession(t, store)

		ids, err := store.DeleteExpiredSessions(ctx, time.Now())
		if err != nil {
			t.Fatalf("DeleteExpiredSessions failed: %v", err)
		}
		found := false
		for _, id := range ids {
			if id == expired.ID {
				found = true
			}
			if id == live {
				t.Errorf("live session %s reported as expired", live)
			}
		}
		if !found {
			t.Errorf("Expected expired session %s in %v", expired.ID, ids)
		}
		if _, err := store.GetSession(ctx, expired.ID); !errors.Is(err, storage.ErrNotFound) {
			t.Errorf("Expected expired session gone, got %v", err)
		}
		if _, err := store.GetSession(ctx, live); err != nil {
			t.Errorf("live session removed: %v", err)
		}
	})
}

func TestSQLiteStoreOnDisk(t *testing.T) {
	tempDir, err := os.MkdirTemp("", "dutchie-test-*")
	if err != nil {
		t.Fatalf("Failed to create temp dir: %v", err)
	}
	defer os.RemoveAll(tempDir)

	dbPath := filepath.Join(tempDir, "nested", "test.db")
	store, err := New(dbPath)
	if err != nil {
		t.Fatalf("Failed to create store: %v", err)
	}
	defer store.Close()

	sessionID := newTestSession(t, store)
	addPeople(t, store, sessionID, "Alice")
	if _, err := os.Stat(dbPath); err != nil {
		t.Errorf("Expected database file at %s: %v", dbPath, err)
	}
}
