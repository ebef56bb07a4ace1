// Package storage provides abstractions for session ledger storage.
package storage

import (
	"context"
	"errors"
	"time"

	"github.com/mmynk/dutchie/internal/models"
)

// ErrNotFound is returned when a session, person or item does not exist
// in the session it was looked up in.
var ErrNotFound = errors.New("not found")

// Store defines the interface for session ledger operations.
// Every call except the session lifecycle is scoped to a session id; ids
// from another session are treated as missing.
type Store interface {
	// CreateSession persists a new session. ID and CreatedAt are filled in
	// when empty.
	CreateSession(ctx context.Context, session *models.Session) error
	GetSession(ctx context.Context, sessionID string) (*models.Session, error)
	// DeleteSession removes the session and everything in it.
	DeleteSession(ctx context.Context, sessionID string) error
	// DeleteExpiredSessions removes sessions that expired before now and
	// returns their ids.
	DeleteExpiredSessions(ctx context.Context, now time.Time) ([]string, error)

	// AddPerson appends a person; person.ID is filled in when empty.
	AddPerson(ctx context.Context, sessionID string, person *models.Person) error
	RenamePerson(ctx context.Context, sessionID, personID, name string) error
	// RemovePerson deletes the person, their assignments and any payer
	// selection pointing at them.
	RemovePerson(ctx context.Context, sessionID, personID string) error
	// ListPeople returns people in the order they were added.
	ListPeople(ctx context.Context, sessionID string) ([]models.Person, error)

	// AddItems appends manual or receipt items in order; missing ids are
	// filled in.
	AddItems(ctx context.Context, sessionID string, items ...models.Item) error
	GetItem(ctx context.Context, sessionID, itemID string) (models.Item, error)
	RenameItem(ctx context.Context, sessionID, itemID, name string) error
	RemoveItem(ctx context.Context, sessionID, itemID string) error
	// ListItems returns all items in the order they were added.
	ListItems(ctx context.Context, sessionID string) ([]models.Item, error)

	// ReceiptGroupIDs returns the distinct receipt group ids in use.
	ReceiptGroupIDs(ctx context.Context, sessionID string) ([]string, error)
	// RemoveReceiptGroup deletes a group's items and payer. It returns the
	// number of items removed.
	RemoveReceiptGroup(ctx context.Context, sessionID, groupID string) (int64, error)
	// ClearReceiptItems deletes every receipt item and receipt payer.
	ClearReceiptItems(ctx context.Context, sessionID string) (int64, error)

	// SetAssignees replaces a receipt item's assignees, keeping the given
	// order.
	SetAssignees(ctx context.Context, sessionID, itemID string, personIDs []string) error

	// SetManualPayer sets the payer of a manual item. An empty personID
	// clears it.
	SetManualPayer(ctx context.Context, sessionID, itemID, personID string) error
	// SetReceiptPayer sets the payer of a receipt group. An empty personID
	// clears it.
	SetReceiptPayer(ctx context.Context, sessionID, groupID, personID string) error
	// ReceiptPayers maps receipt group id to payer id.
	ReceiptPayers(ctx context.Context, sessionID string) (map[string]string, error)
	// ClearPayers removes every manual and receipt payer selection.
	ClearPayers(ctx context.Context, sessionID string) error

	// Close releases any resources held by the store.
	Close() error
}
