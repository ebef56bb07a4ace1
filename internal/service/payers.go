package service

import (
	"context"
	"fmt"

	"connectrpc.com/connect"

	"github.com/mmynk/dutchie/internal/models"
	"github.com/mmynk/dutchie/internal/storage"
	"github.com/mmynk/dutchie/pkg/api"
)

// SetAssignees replaces who shares a receipt item. With All set, everyone
// in the session is assigned; an empty list clears the item.
func (s *LedgerService) SetAssignees(ctx context.Context, req *connect.Request[api.SetAssigneesRequest]) (*connect.Response[api.SetAssigneesResponse], error) {
	sid, err := sessionID(ctx)
	if err != nil {
		return nil, err
	}
	if req.Msg.ItemID == "" {
		return nil, invalidArgument("item_id is required")
	}

	unlock := s.lock(sid)
	defer unlock()

	ids := req.Msg.PersonIDs
	if req.Msg.All {
		people, err := s.store.ListPeople(ctx, sid)
		if err != nil {
			return nil, toConnectError("SetAssignees", err)
		}
		ids = models.PersonIDs(people)
	}

	item, err := s.receiptItem(ctx, sid, req.Msg.ItemID)
	if err != nil {
		return nil, err
	}
	if err := s.store.SetAssignees(ctx, sid, item.ID, ids); err != nil {
		return nil, toConnectError("SetAssignees", err)
	}
	updated, err := s.store.GetItem(ctx, sid, item.ID)
	if err != nil {
		return nil, toConnectError("SetAssignees", err)
	}

	return connect.NewResponse(&api.SetAssigneesResponse{Item: toAPIItem(updated)}), nil
}

// ToggleAssignee adds the person to a receipt item, or removes them if
// they were already assigned.
func (s *LedgerService) ToggleAssignee(ctx context.Context, req *connect.Request[api.ToggleAssigneeRequest]) (*connect.Response[api.ToggleAssigneeResponse], error) {
	sid, err := sessionID(ctx)
	if err != nil {
		return nil, err
	}
	if req.Msg.ItemID == "" || req.Msg.PersonID == "" {
		return nil, invalidArgument("item_id and person_id are required")
	}

	unlock := s.lock(sid)
	defer unlock()

	item, err := s.receiptItem(ctx, sid, req.Msg.ItemID)
	if err != nil {
		return nil, err
	}
	item.Toggle(req.Msg.PersonID)
	if err := s.store.SetAssignees(ctx, sid, item.ID, item.AssignedPersonIDs); err != nil {
		return nil, toConnectError("ToggleAssignee", err)
	}

	return connect.NewResponse(&api.ToggleAssigneeResponse{Item: toAPIItem(item)}), nil
}

func (s *LedgerService) receiptItem(ctx context.Context, sid, itemID string) (*models.ReceiptItem, error) {
	item, err := s.store.GetItem(ctx, sid, itemID)
	if err != nil {
		return nil, toConnectError("GetItem", err)
	}
	ri, ok := item.(*models.ReceiptItem)
	if !ok {
		return nil, invalidArgument("item %s is not a receipt item", itemID)
	}
	return ri, nil
}

// SetManualPayer records who paid for a manual item. An empty person_id
// clears it.
func (s *LedgerService) SetManualPayer(ctx context.Context, req *connect.Request[api.SetManualPayerRequest]) (*connect.Response[api.SetManualPayerResponse], error) {
	sid, err := sessionID(ctx)
	if err != nil {
		return nil, err
	}
	if req.Msg.ItemID == "" {
		return nil, invalidArgument("item_id is required")
	}

	item, err := s.store.GetItem(ctx, sid, req.Msg.ItemID)
	if err != nil {
		return nil, toConnectError("SetManualPayer", err)
	}
	manual, ok := item.(*models.ManualItem)
	if !ok {
		return nil, invalidArgument("item %s is not a manual item; receipt payers are set per receipt", req.Msg.ItemID)
	}

	if err := s.store.SetManualPayer(ctx, sid, manual.ID, req.Msg.PersonID); err != nil {
		return nil, toConnectError("SetManualPayer", err)
	}
	manual.PayerID = req.Msg.PersonID

	return connect.NewResponse(&api.SetManualPayerResponse{Item: toAPIItem(manual)}), nil
}

// SetReceiptPayer records who paid for a receipt group. An empty person_id
// clears it.
func (s *LedgerService) SetReceiptPayer(ctx context.Context, req *connect.Request[api.SetReceiptPayerRequest]) (*connect.Response[api.SetReceiptPayerResponse], error) {
	sid, err := sessionID(ctx)
	if err != nil {
		return nil, err
	}
	if req.Msg.GroupID == "" {
		return nil, invalidArgument("group_id is required")
	}

	if err := s.store.SetReceiptPayer(ctx, sid, req.Msg.GroupID, req.Msg.PersonID); err != nil {
		return nil, toConnectError("SetReceiptPayer", err)
	}

	groups, err := s.receiptGroups(ctx, sid)
	if err != nil {
		return nil, toConnectError("SetReceiptPayer", err)
	}
	for _, g := range groups {
		if g.ID == req.Msg.GroupID {
			return connect.NewResponse(&api.SetReceiptPayerResponse{Group: toAPIGroup(g)}), nil
		}
	}
	return nil, toConnectError("SetReceiptPayer", fmt.Errorf("receipt group %s: %w", req.Msg.GroupID, storage.ErrNotFound))
}

// SetAllReceiptsPayer makes one person the payer of every receipt group.
func (s *LedgerService) SetAllReceiptsPayer(ctx context.Context, req *connect.Request[api.SetAllReceiptsPayerRequest]) (*connect.Response[api.SetAllReceiptsPayerResponse], error) {
	sid, err := sessionID(ctx)
	if err != nil {
		return nil, err
	}
	if req.Msg.PersonID == "" {
		return nil, invalidArgument("person_id is required")
	}

	unlock := s.lock(sid)
	defer unlock()

	groupIDs, err := s.store.ReceiptGroupIDs(ctx, sid)
	if err != nil {
		return nil, toConnectError("SetAllReceiptsPayer", err)
	}
	for _, id := range groupIDs {
		if err := s.store.SetReceiptPayer(ctx, sid, id, req.Msg.PersonID); err != nil {
			return nil, toConnectError("SetAllReceiptsPayer", err)
		}
	}

	groups, err := s.receiptGroups(ctx, sid)
	if err != nil {
		return nil, toConnectError("SetAllReceiptsPayer", err)
	}
	return connect.NewResponse(&api.SetAllReceiptsPayerResponse{Groups: toAPIGroups(groups)}), nil
}

// ClearPayerSelections forgets every manual and receipt payer.
func (s *LedgerService) ClearPayerSelections(ctx context.Context, req *connect.Request[api.ClearPayerSelectionsRequest]) (*connect.Response[api.ClearPayerSelectionsResponse], error) {
	sid, err := sessionID(ctx)
	if err != nil {
		return nil, err
	}

	if err := s.store.ClearPayers(ctx, sid); err != nil {
		return nil, toConnectError("ClearPayerSelections", err)
	}

	return connect.NewResponse(&api.ClearPayerSelectionsResponse{}), nil
}

func (s *LedgerService) receiptGroups(ctx context.Context, sid string) ([]models.ReceiptGroup, error) {
	items, payers, err := s.loadItems(ctx, sid)
	if err != nil {
		return nil, err
	}
	_, receiptItems := models.SplitItems(items)
	return models.GroupReceipts(receiptItems, payers), nil
}
