// Package api defines the request and response messages of the dutchie.v1
// LedgerService. Messages travel as JSON; amounts are integer cents.
package api

// Person is a participant in the session.
type Person struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	// DisplayName is Name, or "Unnamed" when Name is blank.
	DisplayName string `json:"display_name"`
}

// Item is a manual or receipt item.
type Item struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	PriceCents int64  `json:"price_cents"`
	// Source is "manual" or "receipt".
	Source string `json:"source"`

	// Manual items only.
	PayerID string `json:"payer_id,omitempty"`

	// Receipt items only.
	ReceiptGroupID    string   `json:"receipt_group_id,omitempty"`
	AssignedPersonIDs []string `json:"assigned_person_ids,omitempty"`
}

// ReceiptGroup summarizes the items of one receipt.
type ReceiptGroup struct {
	ID         string   `json:"id"`
	ItemIDs    []string `json:"item_ids"`
	TotalCents int64    `json:"total_cents"`
	PayerID    string   `json:"payer_id,omitempty"`
}

// ReceiptSummary holds the printed summary amounts, when found.
type ReceiptSummary struct {
	SubtotalCents *int64 `json:"subtotal_cents,omitempty"`
	TaxCents      *int64 `json:"tax_cents,omitempty"`
	TotalCents    *int64 `json:"total_cents,omitempty"`
}

// Transfer is one settlement payment.
type Transfer struct {
	FromPersonID string `json:"from_person_id"`
	ToPersonID   string `json:"to_person_id"`
	AmountCents  int64  `json:"amount_cents"`
}

// Warnings counts what could not be attributed.
type Warnings struct {
	UnassignedItems      int `json:"unassigned_items"`
	MissingManualPayers  int `json:"missing_manual_payers"`
	MissingReceiptPayers int `json:"missing_receipt_payers"`
}

// Matrix is a people × people grid of cents; Rows[i][j] is what
// PersonIDs[i] pays PersonIDs[j].
type Matrix struct {
	PersonIDs []string  `json:"person_ids"`
	Rows      [][]int64 `json:"rows"`
}

// Session lifecycle.

type StartSessionRequest struct{}

type StartSessionResponse struct {
	SessionID string `json:"session_id"`
	Token     string `json:"token"`
	ExpiresAt int64  `json:"expires_at"`
}

type EndSessionRequest struct{}

type EndSessionResponse struct{}

// People.

type AddPersonRequest struct {
	Name string `json:"name"`
}

type AddPersonResponse struct {
	Person Person `json:"person"`
}

type RenamePersonRequest struct {
	PersonID string `json:"person_id"`
	Name     string `json:"name"`
}

type RenamePersonResponse struct {
	Person Person `json:"person"`
}

type RemovePersonRequest struct {
	PersonID string `json:"person_id"`
}

type RemovePersonResponse struct{}

type ListPeopleRequest struct{}

type ListPeopleResponse struct {
	People []Person `json:"people"`
}

// Items.

type AddManualItemRequest struct {
	Name       string `json:"name"`
	PriceCents int64  `json:"price_cents"`
}

type AddManualItemResponse struct {
	Item Item `json:"item"`
}

type RenameItemRequest struct {
	ItemID string `json:"item_id"`
	Name   string `json:"name"`
}

type RenameItemResponse struct {
	Item Item `json:"item"`
}

type RemoveItemRequest struct {
	ItemID string `json:"item_id"`
}

type RemoveItemResponse struct{}

type ListItemsRequest struct{}

type ListItemsResponse struct {
	Items         []Item         `json:"items"`
	ReceiptGroups []ReceiptGroup `json:"receipt_groups"`
}

// Receipts.

type ImportReceiptTextRequest struct {
	Text string `json:"text"`
	// Strategy is "prices_only" (default) or "described".
	Strategy string `json:"strategy,omitempty"`
}

type ImportReceiptTextResponse struct {
	Receipt ReceiptImport `json:"receipt"`
}

// ReceiptImport is one receipt turned into a receipt group.
type ReceiptImport struct {
	GroupID  string         `json:"group_id"`
	Strategy string         `json:"strategy"`
	Items    []Item         `json:"items"`
	Summary  ReceiptSummary `json:"summary"`
	// Text is the text that was parsed; for scans, the OCR output.
	Text string `json:"text,omitempty"`
}

type ScanReceiptRequest struct {
	// Images are encoded receipt photos, one receipt each.
	Images   [][]byte `json:"images"`
	Strategy string   `json:"strategy,omitempty"`
	// UseWordLayout rebuilds lines from word positions instead of trusting
	// the engine's line breaks.
	UseWordLayout bool `json:"use_word_layout,omitempty"`
}

type ScanReceiptResponse struct {
	// Receipts has one entry per image that produced items.
	Receipts []ReceiptImport `json:"receipts"`
	// SkippedImages are 1-based indexes of images with no prices.
	SkippedImages []int `json:"skipped_images,omitempty"`
}

type ClearReceiptItemsRequest struct{}

type ClearReceiptItemsResponse struct {
	Removed int64 `json:"removed"`
}

type RemoveReceiptGroupRequest struct {
	GroupID string `json:"group_id"`
}

type RemoveReceiptGroupResponse struct {
	Removed int64 `json:"removed"`
}

// Assignments.

type SetAssigneesRequest struct {
	ItemID    string   `json:"item_id"`
	PersonIDs []string `json:"person_ids"`
	// All assigns everyone in the session and ignores PersonIDs.
	All bool `json:"all,omitempty"`
}

type SetAssigneesResponse struct {
	Item Item `json:"item"`
}

type ToggleAssigneeRequest struct {
	ItemID   string `json:"item_id"`
	PersonID string `json:"person_id"`
}

type ToggleAssigneeResponse struct {
	Item Item `json:"item"`
}

// Payers.

type SetManualPayerRequest struct {
	ItemID string `json:"item_id"`
	// PersonID empty clears the payer.
	PersonID string `json:"person_id"`
}

type SetManualPayerResponse struct {
	Item Item `json:"item"`
}

type SetReceiptPayerRequest struct {
	GroupID  string `json:"group_id"`
	PersonID string `json:"person_id"`
}

type SetReceiptPayerResponse struct {
	Group ReceiptGroup `json:"group"`
}

type SetAllReceiptsPayerRequest struct {
	PersonID string `json:"person_id"`
}

type SetAllReceiptsPayerResponse struct {
	Groups []ReceiptGroup `json:"groups"`
}

type ClearPayerSelectionsRequest struct{}

type ClearPayerSelectionsResponse struct{}

// Results.

type GetOverviewRequest struct{}

// PersonOwed is one person's share of the items.
type PersonOwed struct {
	Person    Person `json:"person"`
	OwedCents int64  `json:"owed_cents"`
}

type GetOverviewResponse struct {
	People            []PersonOwed `json:"people"`
	ManualTotalCents  int64        `json:"manual_total_cents"`
	ReceiptTotalCents int64        `json:"receipt_total_cents"`
	TotalCents        int64        `json:"total_cents"`
	UnassignedItems   int          `json:"unassigned_items"`
	UnnamedPeople     int          `json:"unnamed_people"`
}

type GetSettlementRequest struct{}

// PersonBalance is one person's row of the ledger.
type PersonBalance struct {
	Person       Person `json:"person"`
	OwedCents    int64  `json:"owed_cents"`
	PaidCents    int64  `json:"paid_cents"`
	BalanceCents int64  `json:"balance_cents"`
}

type GetSettlementResponse struct {
	Balances       []PersonBalance `json:"balances"`
	OwedTotalCents int64           `json:"owed_total_cents"`
	PaidTotalCents int64           `json:"paid_total_cents"`
	Warnings       Warnings        `json:"warnings"`
	Transfers      []Transfer      `json:"transfers"`
	TransferMatrix Matrix          `json:"transfer_matrix"`
	// RawMatrix is who owes whom before simplification.
	RawMatrix Matrix `json:"raw_matrix"`
}
