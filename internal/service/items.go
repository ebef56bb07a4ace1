package service

import (
	"context"
	"log/slog"
	"strings"

	"connectrpc.com/connect"

	"github.com/mmynk/dutchie/internal/models"
	"github.com/mmynk/dutchie/internal/money"
	"github.com/mmynk/dutchie/pkg/api"
)

// AddManualItem adds an expense shared equally by everyone.
func (s *LedgerService) AddManualItem(ctx context.Context, req *connect.Request[api.AddManualItemRequest]) (*connect.Response[api.AddManualItemResponse], error) {
	sid, err := sessionID(ctx)
	if err != nil {
		return nil, err
	}

	name := strings.TrimSpace(req.Msg.Name)
	if name == "" {
		return nil, invalidArgument("name is required")
	}
	if req.Msg.PriceCents <= 0 {
		return nil, invalidArgument("price must be positive, got %d cents", req.Msg.PriceCents)
	}

	item := &models.ManualItem{Name: name, Price: money.FromCents(req.Msg.PriceCents)}
	if err := s.store.AddItems(ctx, sid, item); err != nil {
		return nil, toConnectError("AddManualItem", err)
	}
	slog.Debug("Manual item added", "session_id", sid, "item_id", item.ID, "price", item.Price)

	return connect.NewResponse(&api.AddManualItemResponse{Item: toAPIItem(item)}), nil
}

// RenameItem changes an item's name. Names cannot be blank.
func (s *LedgerService) RenameItem(ctx context.Context, req *connect.Request[api.RenameItemRequest]) (*connect.Response[api.RenameItemResponse], error) {
	sid, err := sessionID(ctx)
	if err != nil {
		return nil, err
	}

	name := strings.TrimSpace(req.Msg.Name)
	if req.Msg.ItemID == "" {
		return nil, invalidArgument("item_id is required")
	}
	if name == "" {
		return nil, invalidArgument("name is required")
	}

	if err := s.store.RenameItem(ctx, sid, req.Msg.ItemID, name); err != nil {
		return nil, toConnectError("RenameItem", err)
	}
	item, err := s.store.GetItem(ctx, sid, req.Msg.ItemID)
	if err != nil {
		return nil, toConnectError("RenameItem", err)
	}

	return connect.NewResponse(&api.RenameItemResponse{Item: toAPIItem(item)}), nil
}

// RemoveItem deletes one item.
func (s *LedgerService) RemoveItem(ctx context.Context, req *connect.Request[api.RemoveItemRequest]) (*connect.Response[api.RemoveItemResponse], error) {
	sid, err := sessionID(ctx)
	if err != nil {
		return nil, err
	}
	if req.Msg.ItemID == "" {
		return nil, invalidArgument("item_id is required")
	}

	if err := s.store.RemoveItem(ctx, sid, req.Msg.ItemID); err != nil {
		return nil, toConnectError("RemoveItem", err)
	}

	return connect.NewResponse(&api.RemoveItemResponse{}), nil
}

// ListItems returns every item plus the receipt groups derived from them.
func (s *LedgerService) ListItems(ctx context.Context, req *connect.Request[api.ListItemsRequest]) (*connect.Response[api.ListItemsResponse], error) {
	sid, err := sessionID(ctx)
	if err != nil {
		return nil, err
	}

	items, payers, err := s.loadItems(ctx, sid)
	if err != nil {
		return nil, toConnectError("ListItems", err)
	}
	_, receiptItems := models.SplitItems(items)

	return connect.NewResponse(&api.ListItemsResponse{
		Items:         toAPIItems(items),
		ReceiptGroups: toAPIGroups(models.GroupReceipts(receiptItems, payers)),
	}), nil
}

// loadItems reads the items and receipt payers of a session.
func (s *LedgerService) loadItems(ctx context.Context, sid string) ([]models.Item, map[string]string, error) {
	items, err := s.store.ListItems(ctx, sid)
	if err != nil {
		return nil, nil, err
	}
	payers, err := s.store.ReceiptPayers(ctx, sid)
	if err != nil {
		return nil, nil, err
	}
	return items, payers, nil
}
