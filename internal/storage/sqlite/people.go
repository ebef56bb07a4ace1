package sqlite

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/mmynk/dutchie/internal/models"
)

// AddPerson appends a person to the session.
func (s *SQLiteStore) AddPerson(ctx context.Context, sessionID string, person *models.Person) error {
	if err := requireSession(ctx, s.db, sessionID); err != nil {
		return err
	}
	if person.ID == "" {
		person.ID = uuid.New().String()
	}

	_, err := s.db.ExecContext(ctx,
		"INSERT INTO people (id, session_id, name) VALUES (?, ?, ?)",
		person.ID, sessionID, person.Name,
	)
	if err != nil {
		return fmt.Errorf("failed to insert person: %w", err)
	}
	return nil
}

// RenamePerson changes a person's display name.
func (s *SQLiteStore) RenamePerson(ctx context.Context, sessionID, personID, name string) error {
	res, err := s.db.ExecContext(ctx,
		"UPDATE people SET name = ? WHERE id = ? AND session_id = ?",
		name, personID, sessionID,
	)
	if err != nil {
		return fmt.Errorf("failed to rename person: %w", err)
	}
	return expectAffected(res, "person", personID)
}

// RemovePerson deletes a person. Assignments and receipt payers cascade;
// manual items they paid for lose their payer.
func (s *SQLiteStore) RemovePerson(ctx context.Context, sessionID, personID string) error {
	res, err := s.db.ExecContext(ctx,
		"DELETE FROM people WHERE id = ? AND session_id = ?",
		personID, sessionID,
	)
	if err != nil {
		return fmt.Errorf("failed to remove person: %w", err)
	}
	return expectAffected(res, "person", personID)
}

// ListPeople returns the session's people in insertion order.
func (s *SQLiteStore) ListPeople(ctx context.Context, sessionID string) ([]models.Person, error) {
	if err := requireSession(ctx, s.db, sessionID); err != nil {
		return nil, err
	}

	rows, err := s.db.QueryContext(ctx,
		"SELECT id, name FROM people WHERE session_id = ? ORDER BY rowid",
		sessionID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list people: %w", err)
	}
	defer rows.Close()

	people := []models.Person{}
	for rows.Next() {
		var p models.Person
		if err := rows.Scan(&p.ID, &p.Name); err != nil {
			return nil, fmt.Errorf("failed to scan person: %w", err)
		}
		people = append(people, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate people: %w", err)
	}
	return people, nil
}
