package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"connectrpc.com/connect"
	"go.opentelemetry.io/otel/attribute"

	"github.com/mmynk/dutchie/internal/models"
	"github.com/mmynk/dutchie/internal/ocr"
	"github.com/mmynk/dutchie/internal/receipt"
	"github.com/mmynk/dutchie/pkg/api"
)

// ImportReceiptText parses receipt text into a new receipt group.
func (s *LedgerService) ImportReceiptText(ctx context.Context, req *connect.Request[api.ImportReceiptTextRequest]) (*connect.Response[api.ImportReceiptTextResponse], error) {
	ctx, span := tracer.Start(ctx, "LedgerService.ImportReceiptText")
	defer span.End()

	sid, err := sessionID(ctx)
	if err != nil {
		return nil, err
	}
	strategy, err := receipt.ParseStrategy(req.Msg.Strategy)
	if err != nil {
		return nil, invalidArgument("%v", err)
	}
	if strings.TrimSpace(req.Msg.Text) == "" {
		return nil, invalidArgument("text is required")
	}
	span.SetAttributes(attribute.String("receipt.strategy", string(strategy)))

	imported, _, err := s.importReceipts(ctx, sid, strategy, []string{req.Msg.Text})
	if err != nil {
		return nil, toConnectError("ImportReceiptText", err)
	}

	return connect.NewResponse(&api.ImportReceiptTextResponse{Receipt: imported[0]}), nil
}

// ScanReceipt recognizes receipt photos and imports each one as its own
// receipt group. Images that yield no prices are skipped; if none yield
// any, the call fails with FailedPrecondition.
func (s *LedgerService) ScanReceipt(ctx context.Context, req *connect.Request[api.ScanReceiptRequest]) (*connect.Response[api.ScanReceiptResponse], error) {
	ctx, span := tracer.Start(ctx, "LedgerService.ScanReceipt")
	defer span.End()

	sid, err := sessionID(ctx)
	if err != nil {
		return nil, err
	}
	strategy, err := receipt.ParseStrategy(req.Msg.Strategy)
	if err != nil {
		return nil, invalidArgument("%v", err)
	}
	if len(req.Msg.Images) == 0 {
		return nil, invalidArgument("at least one image is required")
	}
	for i, img := range req.Msg.Images {
		if len(img) == 0 {
			return nil, invalidArgument("image %d is empty", i+1)
		}
	}
	if s.recognizer == nil {
		return nil, connect.NewError(connect.CodeUnavailable, ocr.ErrUnavailable)
	}
	span.SetAttributes(
		attribute.String("receipt.strategy", string(strategy)),
		attribute.Int("receipt.images", len(req.Msg.Images)),
	)

	results, err := ocr.RecognizeAll(ctx, s.recognizer, req.Msg.Images, s.ocrConcurrency)
	if err != nil {
		slog.Warn("OCR failed", "session_id", sid, "images", len(req.Msg.Images), "error", err)
		return nil, toConnectError("ScanReceipt", err)
	}

	texts := make([]string, len(results))
	for i, res := range results {
		texts[i] = res.Layout(req.Msg.UseWordLayout, s.lineTolerance)
	}

	imported, skipped, err := s.importReceipts(ctx, sid, strategy, texts)
	if err != nil {
		return nil, toConnectError("ScanReceipt", err)
	}

	return connect.NewResponse(&api.ScanReceiptResponse{
		Receipts:      imported,
		SkippedImages: skipped,
	}), nil
}

// importReceipts extracts each text into its own receipt group, numbered
// after the groups already stored. Texts without prices are skipped and
// reported by 1-based position. All groups are written in one AddItems
// call, so either every receipt is stored or none is. If no text yields
// prices the error wraps receipt.ErrNoItems.
func (s *LedgerService) importReceipts(ctx context.Context, sid string, strategy receipt.Strategy, texts []string) ([]api.ReceiptImport, []int, error) {
	unlock := s.lock(sid)
	defer unlock()

	existing, err := s.store.ReceiptGroupIDs(ctx, sid)
	if err != nil {
		return nil, nil, err
	}

	var (
		extracted []*receipt.Extraction
		sources   []string
		skipped   []int
		items     []models.Item
	)
	for i, text := range texts {
		groupID := models.NextReceiptGroupID(existing)
		ex, err := s.classifier.Extract(strategy, groupID, text)
		if ex != nil {
			s.recorder.RecordExtraction(string(strategy), len(ex.Items))
		}
		if errors.Is(err, receipt.ErrNoItems) {
			slog.Info("Receipt had no prices", "session_id", sid, "position", i+1)
			skipped = append(skipped, i+1)
			continue
		}
		if err != nil {
			return nil, nil, err
		}
		existing = append(existing, groupID)
		extracted = append(extracted, ex)
		sources = append(sources, text)
		items = append(items, receiptItemsOf(ex.Items)...)
	}

	if len(extracted) == 0 {
		return nil, nil, fmt.Errorf("%d receipt(s): %w", len(texts), receipt.ErrNoItems)
	}
	if err := s.store.AddItems(ctx, sid, items...); err != nil {
		return nil, nil, err
	}

	imported := make([]api.ReceiptImport, len(extracted))
	for i, ex := range extracted {
		slog.Info("Receipt imported",
			"session_id", sid,
			"group_id", ex.GroupID,
			"strategy", strategy,
			"items", len(ex.Items),
		)
		imported[i] = api.ReceiptImport{
			GroupID:  ex.GroupID,
			Strategy: string(strategy),
			Items:    toAPIItems(receiptItemsOf(ex.Items)),
			Summary:  toAPISummary(ex.Summary),
			Text:     sources[i],
		}
	}
	return imported, skipped, nil
}

// ClearReceiptItems removes every receipt item and receipt payer.
func (s *LedgerService) ClearReceiptItems(ctx context.Context, req *connect.Request[api.ClearReceiptItemsRequest]) (*connect.Response[api.ClearReceiptItemsResponse], error) {
	sid, err := sessionID(ctx)
	if err != nil {
		return nil, err
	}

	n, err := s.store.ClearReceiptItems(ctx, sid)
	if err != nil {
		return nil, toConnectError("ClearReceiptItems", err)
	}
	slog.Info("Receipt items cleared", "session_id", sid, "removed", n)

	return connect.NewResponse(&api.ClearReceiptItemsResponse{Removed: n}), nil
}

// RemoveReceiptGroup removes one receipt and its payer.
func (s *LedgerService) RemoveReceiptGroup(ctx context.Context, req *connect.Request[api.RemoveReceiptGroupRequest]) (*connect.Response[api.RemoveReceiptGroupResponse], error) {
	sid, err := sessionID(ctx)
	if err != nil {
		return nil, err
	}
	if req.Msg.GroupID == "" {
		return nil, invalidArgument("group_id is required")
	}

	n, err := s.store.RemoveReceiptGroup(ctx, sid, req.Msg.GroupID)
	if err != nil {
		return nil, toConnectError("RemoveReceiptGroup", err)
	}

	return connect.NewResponse(&api.RemoveReceiptGroupResponse{Removed: n}), nil
}
