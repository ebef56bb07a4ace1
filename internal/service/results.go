package service

import (
	"context"
	"log/slog"
	"strings"

	"connectrpc.com/connect"
	"github.com/shopspring/decimal"
	"go.opentelemetry.io/otel/attribute"

	"github.com/mmynk/dutchie/internal/calculator"
	"github.com/mmynk/dutchie/internal/models"
	"github.com/mmynk/dutchie/internal/money"
	"github.com/mmynk/dutchie/pkg/api"
)

// GetOverview reports totals and what each person owes so far.
func (s *LedgerService) GetOverview(ctx context.Context, req *connect.Request[api.GetOverviewRequest]) (*connect.Response[api.GetOverviewResponse], error) {
	sid, err := sessionID(ctx)
	if err != nil {
		return nil, err
	}

	people, items, payers, err := s.loadSession(ctx, sid)
	if err != nil {
		return nil, toConnectError("GetOverview", err)
	}
	ledger := calculator.ComputeBalances(people, items, payers)

	manualTotal, receiptTotal := decimal.Zero, decimal.Zero
	manual, receiptItems := models.SplitItems(items)
	for _, it := range manual {
		manualTotal = manualTotal.Add(it.Price)
	}
	for _, it := range receiptItems {
		receiptTotal = receiptTotal.Add(it.Price)
	}

	resp := &api.GetOverviewResponse{
		People:            make([]api.PersonOwed, len(people)),
		ManualTotalCents:  money.Cents(manualTotal),
		ReceiptTotalCents: money.Cents(receiptTotal),
		TotalCents:        money.Cents(manualTotal.Add(receiptTotal)),
		UnassignedItems:   ledger.Warnings.UnassignedItems,
	}
	for i, p := range people {
		resp.People[i] = api.PersonOwed{Person: toAPIPerson(p), OwedCents: money.Cents(ledger.Owed[p.ID])}
		if strings.TrimSpace(p.Name) == "" {
			resp.UnnamedPeople++
		}
	}

	return connect.NewResponse(resp), nil
}

// GetSettlement computes balances and the transfers that settle them.
func (s *LedgerService) GetSettlement(ctx context.Context, req *connect.Request[api.GetSettlementRequest]) (*connect.Response[api.GetSettlementResponse], error) {
	ctx, span := tracer.Start(ctx, "LedgerService.GetSettlement")
	defer span.End()

	sid, err := sessionID(ctx)
	if err != nil {
		return nil, err
	}

	people, items, payers, err := s.loadSession(ctx, sid)
	if err != nil {
		return nil, toConnectError("GetSettlement", err)
	}

	ledger := calculator.ComputeBalances(people, items, payers)
	transfers := calculator.Settle(ledger.Balances())
	raw := calculator.RawObligations(people, items, payers)
	ids := models.PersonIDs(people)

	s.recorder.RecordSettlement(len(transfers))
	span.SetAttributes(
		attribute.Int("settlement.people", len(people)),
		attribute.Int("settlement.items", len(items)),
		attribute.Int("settlement.transfers", len(transfers)),
	)
	if imbalance := ledger.Imbalance(); money.Significant(imbalance) {
		slog.Debug("Ledger does not balance",
			"session_id", sid,
			"imbalance", imbalance,
			"unassigned_items", ledger.Warnings.UnassignedItems,
			"missing_manual_payers", ledger.Warnings.MissingManualPayers,
			"missing_receipt_payers", ledger.Warnings.MissingReceiptPayers,
		)
	}

	resp := &api.GetSettlementResponse{
		Balances:       make([]api.PersonBalance, len(people)),
		OwedTotalCents: money.Cents(ledger.OwedTotal),
		PaidTotalCents: money.Cents(ledger.PaidTotal),
		Warnings: api.Warnings{
			UnassignedItems:      ledger.Warnings.UnassignedItems,
			MissingManualPayers:  ledger.Warnings.MissingManualPayers,
			MissingReceiptPayers: ledger.Warnings.MissingReceiptPayers,
		},
		Transfers:      toAPITransfers(transfers),
		TransferMatrix: toAPIMatrix(ids, calculator.TransferMatrix(people, transfers)),
		RawMatrix:      toAPIMatrix(raw.People, raw.Matrix),
	}
	for i, p := range people {
		resp.Balances[i] = api.PersonBalance{
			Person:       toAPIPerson(p),
			OwedCents:    money.Cents(ledger.Owed[p.ID]),
			PaidCents:    money.Cents(ledger.Paid[p.ID]),
			BalanceCents: money.Cents(ledger.Balance[p.ID]),
		}
	}

	return connect.NewResponse(resp), nil
}

// loadSession reads everything the calculator needs for one session.
func (s *LedgerService) loadSession(ctx context.Context, sid string) ([]models.Person, []models.Item, map[string]string, error) {
	people, err := s.store.ListPeople(ctx, sid)
	if err != nil {
		return nil, nil, nil, err
	}
	items, payers, err := s.loadItems(ctx, sid)
	if err != nil {
		return nil, nil, nil, err
	}
	return people, items, payers, nil
}
