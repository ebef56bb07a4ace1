package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/mmynk/dutchie/internal/models"
	"github.com/mmynk/dutchie/internal/storage"
)

// itemRow is one row of the items table before it becomes a models.Item.
type itemRow struct {
	id      string
	source  models.Source
	name    string
	price   decimal.Decimal
	payerID sql.NullString
	groupID sql.NullString
}

func (r itemRow) toModel(assigned []string) models.Item {
	if r.source == models.SourceReceipt {
		return &models.ReceiptItem{
			ID:                r.id,
			Name:              r.name,
			Price:             r.price,
			ReceiptGroupID:    r.groupID.String,
			AssignedPersonIDs: assigned,
		}
	}
	return &models.ManualItem{
		ID:      r.id,
		Name:    r.name,
		Price:   r.price,
		PayerID: r.payerID.String,
	}
}

func nullable(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}

// AddItems appends items to the session in a single transaction.
func (s *SQLiteStore) AddItems(ctx context.Context, sessionID string, items ...models.Item) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if err := requireSession(ctx, tx, sessionID); err != nil {
		return err
	}

	for _, it := range items {
		switch v := it.(type) {
		case *models.ManualItem:
			if v.ID == "" {
				v.ID = uuid.New().String()
			}
			if v.PayerID != "" {
				if err := requirePerson(ctx, tx, sessionID, v.PayerID); err != nil {
					return err
				}
			}
			_, err = tx.ExecContext(ctx,
				"INSERT INTO items (id, session_id, source, name, price, payer_id) VALUES (?, ?, ?, ?, ?, ?)",
				v.ID, sessionID, models.SourceManual, v.Name, v.Price.String(), nullable(v.PayerID),
			)
			if err != nil {
				return fmt.Errorf("failed to insert item: %w", err)
			}

		case *models.ReceiptItem:
			if v.ID == "" {
				v.ID = uuid.New().String()
			}
			_, err = tx.ExecContext(ctx,
				"INSERT INTO items (id, session_id, source, name, price, receipt_group_id) VALUES (?, ?, ?, ?, ?, ?)",
				v.ID, sessionID, models.SourceReceipt, v.Name, v.Price.String(), v.ReceiptGroupID,
			)
			if err != nil {
				return fmt.Errorf("failed to insert item: %w", err)
			}
			if err := insertAssignments(ctx, tx, sessionID, v.ID, v.AssignedPersonIDs); err != nil {
				return err
			}

		default:
			return fmt.Errorf("unsupported item type %T", it)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

// GetItem retrieves one item with its assignees.
func (s *SQLiteStore) GetItem(ctx context.Context, sessionID, itemID string) (models.Item, error) {
	row, err := getItemRow(ctx, s.db, sessionID, itemID)
	if err != nil {
		return nil, err
	}

	assigned := []string{}
	if row.source == models.SourceReceipt {
		rows, err := s.db.QueryContext(ctx,
			"SELECT person_id FROM item_assignments WHERE item_id = ? ORDER BY rowid",
			itemID,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to get item assignments: %w", err)
		}
		defer rows.Close()
		for rows.Next() {
			var personID string
			if err := rows.Scan(&personID); err != nil {
				return nil, fmt.Errorf("failed to scan assignment: %w", err)
			}
			assigned = append(assigned, personID)
		}
		if err := rows.Err(); err != nil {
			return nil, fmt.Errorf("failed to iterate assignments: %w", err)
		}
	}
	return row.toModel(assigned), nil
}

func getItemRow(ctx context.Context, q querier, sessionID, itemID string) (*itemRow, error) {
	var r itemRow
	err := q.QueryRowContext(ctx,
		"SELECT id, source, name, price, payer_id, receipt_group_id FROM items WHERE id = ? AND session_id = ?",
		itemID, sessionID,
	).Scan(&r.id, &r.source, &r.name, &r.price, &r.payerID, &r.groupID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("item %s: %w", itemID, storage.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get item: %w", err)
	}
	return &r, nil
}

// RenameItem changes an item's name.
func (s *SQLiteStore) RenameItem(ctx context.Context, sessionID, itemID, name string) error {
	res, err := s.db.ExecContext(ctx,
		"UPDATE items SET name = ? WHERE id = ? AND session_id = ?",
		name, itemID, sessionID,
	)
	if err != nil {
		return fmt.Errorf("failed to rename item: %w", err)
	}
	return expectAffected(res, "item", itemID)
}

// RemoveItem deletes an item and its assignments.
func (s *SQLiteStore) RemoveItem(ctx context.Context, sessionID, itemID string) error {
	res, err := s.db.ExecContext(ctx,
		"DELETE FROM items WHERE id = ? AND session_id = ?",
		itemID, sessionID,
	)
	if err != nil {
		return fmt.Errorf("failed to remove item: %w", err)
	}
	return expectAffected(res, "item", itemID)
}

// ListItems returns every item in the session in insertion order.
func (s *SQLiteStore) ListItems(ctx context.Context, sessionID string) ([]models.Item, error) {
	if err := requireSession(ctx, s.db, sessionID); err != nil {
		return nil, err
	}

	// Assignments are read first: the pool has a single connection, so
	// result sets must not overlap.
	assigned := make(map[string][]string)
	assignRows, err := s.db.QueryContext(ctx,
		`SELECT a.item_id, a.person_id FROM item_assignments a
		 JOIN items i ON i.id = a.item_id
		 WHERE i.session_id = ? ORDER BY a.rowid`,
		sessionID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to get item assignments: %w", err)
	}
	for assignRows.Next() {
		var itemID, personID string
		if err := assignRows.Scan(&itemID, &personID); err != nil {
			assignRows.Close()
			return nil, fmt.Errorf("failed to scan assignment: %w", err)
		}
		assigned[itemID] = append(assigned[itemID], personID)
	}
	assignRows.Close()
	if err := assignRows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate assignments: %w", err)
	}

	rows, err := s.db.QueryContext(ctx,
		"SELECT id, source, name, price, payer_id, receipt_group_id FROM items WHERE session_id = ? ORDER BY rowid",
		sessionID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list items: %w", err)
	}
	defer rows.Close()

	items := []models.Item{}
	for rows.Next() {
		var r itemRow
		if err := rows.Scan(&r.id, &r.source, &r.name, &r.price, &r.payerID, &r.groupID); err != nil {
			return nil, fmt.Errorf("failed to scan item: %w", err)
		}
		ids := assigned[r.id]
		if ids == nil {
			ids = []string{}
		}
		items = append(items, r.toModel(ids))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate items: %w", err)
	}
	return items, nil
}

// ReceiptGroupIDs returns the distinct receipt group ids in the session.
func (s *SQLiteStore) ReceiptGroupIDs(ctx context.Context, sessionID string) ([]string, error) {
	rows, err := s.db.QueryContext(ctx,
		"SELECT DISTINCT receipt_group_id FROM items WHERE session_id = ? AND source = ?",
		sessionID, models.SourceReceipt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list receipt groups: %w", err)
	}
	defer rows.Close()

	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("failed to scan receipt group: %w", err)
		}
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate receipt groups: %w", err)
	}
	return ids, nil
}

// RemoveReceiptGroup deletes every item of a receipt group and its payer.
func (s *SQLiteStore) RemoveReceiptGroup(ctx context.Context, sessionID, groupID string) (int64, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	res, err := tx.ExecContext(ctx,
		"DELETE FROM items WHERE session_id = ? AND source = ? AND receipt_group_id = ?",
		sessionID, models.SourceReceipt, groupID,
	)
	if err != nil {
		return 0, fmt.Errorf("failed to remove receipt group: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to count removed items: %w", err)
	}
	if n == 0 {
		return 0, fmt.Errorf("receipt group %s: %w", groupID, storage.ErrNotFound)
	}

	if _, err := tx.ExecContext(ctx,
		"DELETE FROM receipt_payers WHERE session_id = ? AND group_id = ?",
		sessionID, groupID,
	); err != nil {
		return 0, fmt.Errorf("failed to remove receipt payer: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("failed to commit transaction: %w", err)
	}
	return n, nil
}

// ClearReceiptItems deletes every receipt item and receipt payer.
func (s *SQLiteStore) ClearReceiptItems(ctx context.Context, sessionID string) (int64, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if err := requireSession(ctx, tx, sessionID); err != nil {
		return 0, err
	}

	res, err := tx.ExecContext(ctx,
		"DELETE FROM items WHERE session_id = ? AND source = ?",
		sessionID, models.SourceReceipt,
	)
	if err != nil {
		return 0, fmt.Errorf("failed to clear receipt items: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to count removed items: %w", err)
	}

	if _, err := tx.ExecContext(ctx, "DELETE FROM receipt_payers WHERE session_id = ?", sessionID); err != nil {
		return 0, fmt.Errorf("failed to clear receipt payers: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("failed to commit transaction: %w", err)
	}
	return n, nil
}

// SetAssignees replaces the assignees of a receipt item. Duplicate ids are
// collapsed; order of first appearance is kept.
func (s *SQLiteStore) SetAssignees(ctx context.Context, sessionID, itemID string, personIDs []string) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	row, err := getItemRow(ctx, tx, sessionID, itemID)
	if err != nil {
		return err
	}
	if row.source != models.SourceReceipt {
		return fmt.Errorf("receipt item %s: %w", itemID, storage.ErrNotFound)
	}

	if _, err := tx.ExecContext(ctx, "DELETE FROM item_assignments WHERE item_id = ?", itemID); err != nil {
		return fmt.Errorf("failed to clear assignments: %w", err)
	}
	if err := insertAssignments(ctx, tx, sessionID, itemID, personIDs); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

func insertAssignments(ctx context.Context, tx *sql.Tx, sessionID, itemID string, personIDs []string) error {
	seen := make(map[string]bool, len(personIDs))
	for _, personID := range personIDs {
		if seen[personID] {
			continue
		}
		seen[personID] = true
		if err := requirePerson(ctx, tx, sessionID, personID); err != nil {
			return err
		}
		if _, err := tx.ExecContext(ctx,
			"INSERT INTO item_assignments (item_id, person_id) VALUES (?, ?)",
			itemID, personID,
		); err != nil {
			return fmt.Errorf("failed to insert item assignment: %w", err)
		}
	}
	return nil
}
