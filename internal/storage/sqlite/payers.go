package sqlite

import (
	"context"
	"fmt"

	"github.com/mmynk/dutchie/internal/models"
	"github.com/mmynk/dutchie/internal/storage"
)

// SetManualPayer sets or clears who paid for a manual item.
func (s *SQLiteStore) SetManualPayer(ctx context.Context, sessionID, itemID, personID string) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	row, err := getItemRow(ctx, tx, sessionID, itemID)
	if err != nil {
		return err
	}
	if row.source != models.SourceManual {
		return fmt.Errorf("manual item %s: %w", itemID, storage.ErrNotFound)
	}
	if personID != "" {
		if err := requirePerson(ctx, tx, sessionID, personID); err != nil {
			return err
		}
	}

	if _, err := tx.ExecContext(ctx,
		"UPDATE items SET payer_id = ? WHERE id = ?",
		nullable(personID), itemID,
	); err != nil {
		return fmt.Errorf("failed to set payer: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

// SetReceiptPayer sets or clears who paid for a receipt group.
func (s *SQLiteStore) SetReceiptPayer(ctx context.Context, sessionID, groupID, personID string) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	var count int
	if err := tx.QueryRowContext(ctx,
		"SELECT COUNT(*) FROM items WHERE session_id = ? AND source = ? AND receipt_group_id = ?",
		sessionID, models.SourceReceipt, groupID,
	).Scan(&count); err != nil {
		return fmt.Errorf("failed to look up receipt group: %w", err)
	}
	if count == 0 {
		return fmt.Errorf("receipt group %s: %w", groupID, storage.ErrNotFound)
	}

	if personID == "" {
		_, err = tx.ExecContext(ctx,
			"DELETE FROM receipt_payers WHERE session_id = ? AND group_id = ?",
			sessionID, groupID,
		)
	} else {
		if err := requirePerson(ctx, tx, sessionID, personID); err != nil {
			return err
		}
		_, err = tx.ExecContext(ctx,
			`INSERT INTO receipt_payers (session_id, group_id, person_id) VALUES (?, ?, ?)
			 ON CONFLICT (session_id, group_id) DO UPDATE SET person_id = excluded.person_id`,
			sessionID, groupID, personID,
		)
	}
	if err != nil {
		return fmt.Errorf("failed to set receipt payer: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

// ReceiptPayers returns the payer of every receipt group that has one.
func (s *SQLiteStore) ReceiptPayers(ctx context.Context, sessionID string) (map[string]string, error) {
	rows, err := s.db.QueryContext(ctx,
		"SELECT group_id, person_id FROM receipt_payers WHERE session_id = ?",
		sessionID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list receipt payers: %w", err)
	}
	defer rows.Close()

	payers := make(map[string]string)
	for rows.Next() {
		var groupID, personID string
		if err := rows.Scan(&groupID, &personID); err != nil {
			return nil, fmt.Errorf("failed to scan receipt payer: %w", err)
		}
		payers[groupID] = personID
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate receipt payers: %w", err)
	}
	return payers, nil
}

// ClearPayers removes every payer selection in the session.
func (s *SQLiteStore) ClearPayers(ctx context.Context, sessionID string) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if err := requireSession(ctx, tx, sessionID); err != nil {
		return err
	}
	if _, err := tx.ExecContext(ctx,
		"UPDATE items SET payer_id = NULL WHERE session_id = ? AND source = ?",
		sessionID, models.SourceManual,
	); err != nil {
		return fmt.Errorf("failed to clear manual payers: %w", err)
	}
	if _, err := tx.ExecContext(ctx, "DELETE FROM receipt_payers WHERE session_id = ?", sessionID); err != nil {
		return fmt.Errorf("failed to clear receipt payers: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}
