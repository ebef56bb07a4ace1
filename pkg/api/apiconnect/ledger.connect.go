// Package apiconnect wires the dutchie.v1.LedgerService messages in package
// api to Connect handlers and clients.
package apiconnect

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"connectrpc.com/connect"

	api "github.com/mmynk/dutchie/pkg/api"
)

const (
	// LedgerServiceName is the fully-qualified name of the LedgerService service.
	LedgerServiceName = "dutchie.v1.LedgerService"
)

// These constants are the fully-qualified names of the RPCs defined in this package. They're
// exposed at runtime as Spec.Procedure and as the final two segments of the HTTP route.
const (
	// LedgerServiceStartSessionProcedure is the fully-qualified name of the LedgerService's StartSession RPC.
	LedgerServiceStartSessionProcedure = "/dutchie.v1.LedgerService/StartSession"
	// LedgerServiceEndSessionProcedure is the fully-qualified name of the LedgerService's EndSession RPC.
	LedgerServiceEndSessionProcedure = "/dutchie.v1.LedgerService/EndSession"
	// LedgerServiceAddPersonProcedure is the fully-qualified name of the LedgerService's AddPerson RPC.
	LedgerServiceAddPersonProcedure = "/dutchie.v1.LedgerService/AddPerson"
	// LedgerServiceRenamePersonProcedure is the fully-qualified name of the LedgerService's RenamePerson RPC.
	LedgerServiceRenamePersonProcedure = "/dutchie.v1.LedgerService/RenamePerson"
	// LedgerServiceRemovePersonProcedure is the fully-qualified name of the LedgerService's RemovePerson RPC.
	LedgerServiceRemovePersonProcedure = "/dutchie.v1.LedgerService/RemovePerson"
	// LedgerServiceListPeopleProcedure is the fully-qualified name of the LedgerService's ListPeople RPC.
	LedgerServiceListPeopleProcedure = "/dutchie.v1.LedgerService/ListPeople"
	// LedgerServiceAddManualItemProcedure is the fully-qualified name of the LedgerService's AddManualItem RPC.
	LedgerServiceAddManualItemProcedure = "/dutchie.v1.LedgerService/AddManualItem"
	// LedgerServiceRenameItemProcedure is the fully-qualified name of the LedgerService's RenameItem RPC.
	LedgerServiceRenameItemProcedure = "/dutchie.v1.LedgerService/RenameItem"
	// LedgerServiceRemoveItemProcedure is the fully-qualified name of the LedgerService's RemoveItem RPC.
	LedgerServiceRemoveItemProcedure = "/dutchie.v1.LedgerService/RemoveItem"
	// LedgerServiceListItemsProcedure is the fully-qualified name of the LedgerService's ListItems RPC.
	LedgerServiceListItemsProcedure = "/dutchie.v1.LedgerService/ListItems"
	// LedgerServiceImportReceiptTextProcedure is the fully-qualified name of the LedgerService's ImportReceiptText RPC.
	LedgerServiceImportReceiptTextProcedure = "/dutchie.v1.LedgerService/ImportReceiptText"
	// LedgerServiceScanReceiptProcedure is the fully-qualified name of the LedgerService's ScanReceipt RPC.
	LedgerServiceScanReceiptProcedure = "/dutchie.v1.LedgerService/ScanReceipt"
	// LedgerServiceClearReceiptItemsProcedure is the fully-qualified name of the LedgerService's ClearReceiptItems RPC.
	LedgerServiceClearReceiptItemsProcedure = "/dutchie.v1.LedgerService/ClearReceiptItems"
	// LedgerServiceRemoveReceiptGroupProcedure is the fully-qualified name of the LedgerService's RemoveReceiptGroup RPC.
	LedgerServiceRemoveReceiptGroupProcedure = "/dutchie.v1.LedgerService/RemoveReceiptGroup"
	// LedgerServiceSetAssigneesProcedure is the fully-qualified name of the LedgerService's SetAssignees RPC.
	LedgerServiceSetAssigneesProcedure = "/dutchie.v1.LedgerService/SetAssignees"
	// LedgerServiceToggleAssigneeProcedure is the fully-qualified name of the LedgerService's ToggleAssignee RPC.
	LedgerServiceToggleAssigneeProcedure = "/dutchie.v1.LedgerService/ToggleAssignee"
	// LedgerServiceSetManualPayerProcedure is the fully-qualified name of the LedgerService's SetManualPayer RPC.
	LedgerServiceSetManualPayerProcedure = "/dutchie.v1.LedgerService/SetManualPayer"
	// LedgerServiceSetReceiptPayerProcedure is the fully-qualified name of the LedgerService's SetReceiptPayer RPC.
	LedgerServiceSetReceiptPayerProcedure = "/dutchie.v1.LedgerService/SetReceiptPayer"
	// LedgerServiceSetAllReceiptsPayerProcedure is the fully-qualified name of the LedgerService's SetAllReceiptsPayer RPC.
	LedgerServiceSetAllReceiptsPayerProcedure = "/dutchie.v1.LedgerService/SetAllReceiptsPayer"
	// LedgerServiceClearPayerSelectionsProcedure is the fully-qualified name of the LedgerService's ClearPayerSelections RPC.
	LedgerServiceClearPayerSelectionsProcedure = "/dutchie.v1.LedgerService/ClearPayerSelections"
	// LedgerServiceGetOverviewProcedure is the fully-qualified name of the LedgerService's GetOverview RPC.
	LedgerServiceGetOverviewProcedure = "/dutchie.v1.LedgerService/GetOverview"
	// LedgerServiceGetSettlementProcedure is the fully-qualified name of the LedgerService's GetSettlement RPC.
	LedgerServiceGetSettlementProcedure = "/dutchie.v1.LedgerService/GetSettlement"
)

// LedgerServiceClient is a client for the dutchie.v1.LedgerService service.
type LedgerServiceClient interface {
	StartSession(context.Context, *connect.Request[api.StartSessionRequest]) (*connect.Response[api.StartSessionResponse], error)
	EndSession(context.Context, *connect.Request[api.EndSessionRequest]) (*connect.Response[api.EndSessionResponse], error)
	AddPerson(context.Context, *connect.Request[api.AddPersonRequest]) (*connect.Response[api.AddPersonResponse], error)
	RenamePerson(context.Context, *connect.Request[api.RenamePersonRequest]) (*connect.Response[api.RenamePersonResponse], error)
	RemovePerson(context.Context, *connect.Request[api.RemovePersonRequest]) (*connect.Response[api.RemovePersonResponse], error)
	ListPeople(context.Context, *connect.Request[api.ListPeopleRequest]) (*connect.Response[api.ListPeopleResponse], error)
	AddManualItem(context.Context, *connect.Request[api.AddManualItemRequest]) (*connect.Response[api.AddManualItemResponse], error)
	RenameItem(context.Context, *connect.Request[api.RenameItemRequest]) (*connect.Response[api.RenameItemResponse], error)
	RemoveItem(context.Context, *connect.Request[api.RemoveItemRequest]) (*connect.Response[api.RemoveItemResponse], error)
	ListItems(context.Context, *connect.Request[api.ListItemsRequest]) (*connect.Response[api.ListItemsResponse], error)
	ImportReceiptText(context.Context, *connect.Request[api.ImportReceiptTextRequest]) (*connect.Response[api.ImportReceiptTextResponse], error)
	ScanReceipt(context.Context, *connect.Request[api.ScanReceiptRequest]) (*connect.Response[api.ScanReceiptResponse], error)
	ClearReceiptItems(context.Context, *connect.Request[api.ClearReceiptItemsRequest]) (*connect.Response[api.ClearReceiptItemsResponse], error)
	RemoveReceiptGroup(context.Context, *connect.Request[api.RemoveReceiptGroupRequest]) (*connect.Response[api.RemoveReceiptGroupResponse], error)
	SetAssignees(context.Context, *connect.Request[api.SetAssigneesRequest]) (*connect.Response[api.SetAssigneesResponse], error)
	ToggleAssignee(context.Context, *connect.Request[api.ToggleAssigneeRequest]) (*connect.Response[api.ToggleAssigneeResponse], error)
	SetManualPayer(context.Context, *connect.Request[api.SetManualPayerRequest]) (*connect.Response[api.SetManualPayerResponse], error)
	SetReceiptPayer(context.Context, *connect.Request[api.SetReceiptPayerRequest]) (*connect.Response[api.SetReceiptPayerResponse], error)
	SetAllReceiptsPayer(context.Context, *connect.Request[api.SetAllReceiptsPayerRequest]) (*connect.Response[api.SetAllReceiptsPayerResponse], error)
	ClearPayerSelections(context.Context, *connect.Request[api.ClearPayerSelectionsRequest]) (*connect.Response[api.ClearPayerSelectionsResponse], error)
	GetOverview(context.Context, *connect.Request[api.GetOverviewRequest]) (*connect.Response[api.GetOverviewResponse], error)
	GetSettlement(context.Context, *connect.Request[api.GetSettlementRequest]) (*connect.Response[api.GetSettlementResponse], error)
}

// NewLedgerServiceClient constructs a client for the dutchie.v1.LedgerService service. By
// default, it uses the Connect protocol with the JSON codec. It cannot be configured for
// binary Protobuf.
//
// The URL supplied here should be the base URL for the Connect or gRPC server (for example,
// http://api.acme.com or https://acme.com/grpc).
func NewLedgerServiceClient(httpClient connect.HTTPClient, baseURL string, opts ...connect.ClientOption) LedgerServiceClient {
	baseURL = strings.TrimRight(baseURL, "/")
	opts = append([]connect.ClientOption{WithJSON()}, opts...)
	return &ledgerServiceClient{
		startSession: connect.NewClient[api.StartSessionRequest, api.StartSessionResponse](
			httpClient,
			baseURL+LedgerServiceStartSessionProcedure,
			opts...,
		),
		endSession: connect.NewClient[api.EndSessionRequest, api.EndSessionResponse](
			httpClient,
			baseURL+LedgerServiceEndSessionProcedure,
			opts...,
		),
		addPerson: connect.NewClient[api.AddPersonRequest, api.AddPersonResponse](
			httpClient,
			baseURL+LedgerServiceAddPersonProcedure,
			opts...,
		),
		renamePerson: connect.NewClient[api.RenamePersonRequest, api.RenamePersonResponse](
			httpClient,
			baseURL+LedgerServiceRenamePersonProcedure,
			opts...,
		),
		removePerson: connect.NewClient[api.RemovePersonRequest, api.RemovePersonResponse](
			httpClient,
			baseURL+LedgerServiceRemovePersonProcedure,
			opts...,
		),
		listPeople: connect.NewClient[api.ListPeopleRequest, api.ListPeopleResponse](
			httpClient,
			baseURL+LedgerServiceListPeopleProcedure,
			opts...,
		),
		addManualItem: connect.NewClient[api.AddManualItemRequest, api.AddManualItemResponse](
			httpClient,
			baseURL+LedgerServiceAddManualItemProcedure,
			opts...,
		),
		renameItem: connect.NewClient[api.RenameItemRequest, api.RenameItemResponse](
			httpClient,
			baseURL+LedgerServiceRenameItemProcedure,
			opts...,
		),
		removeItem: connect.NewClient[api.RemoveItemRequest, api.RemoveItemResponse](
			httpClient,
			baseURL+LedgerServiceRemoveItemProcedure,
			opts...,
		),
		listItems: connect.NewClient[api.ListItemsRequest, api.ListItemsResponse](
			httpClient,
			baseURL+LedgerServiceListItemsProcedure,
			opts...,
		),
		importReceiptText: connect.NewClient[api.ImportReceiptTextRequest, api.ImportReceiptTextResponse](
			httpClient,
			baseURL+LedgerServiceImportReceiptTextProcedure,
			opts...,
		),
		scanReceipt: connect.NewClient[api.ScanReceiptRequest, api.ScanReceiptResponse](
			httpClient,
			baseURL+LedgerServiceScanReceiptProcedure,
			opts...,
		),
		clearReceiptItems: connect.NewClient[api.ClearReceiptItemsRequest, api.ClearReceiptItemsResponse](
			httpClient,
			baseURL+LedgerServiceClearReceiptItemsProcedure,
			opts...,
		),
		removeReceiptGroup: connect.NewClient[api.RemoveReceiptGroupRequest, api.RemoveReceiptGroupResponse](
			httpClient,
			baseURL+LedgerServiceRemoveReceiptGroupProcedure,
			opts...,
		),
		setAssignees: connect.NewClient[api.SetAssigneesRequest, api.SetAssigneesResponse](
			httpClient,
			baseURL+LedgerServiceSetAssigneesProcedure,
			opts...,
		),
		toggleAssignee: connect.NewClient[api.ToggleAssigneeRequest, api.ToggleAssigneeResponse](
			httpClient,
			baseURL+LedgerServiceToggleAssigneeProcedure,
			opts...,
		),
		setManualPayer: connect.NewClient[api.SetManualPayerRequest, api.SetManualPayerResponse](
			httpClient,
			baseURL+LedgerServiceSetManualPayerProcedure,
			opts...,
		),
		setReceiptPayer: connect.NewClient[api.SetReceiptPayerRequest, api.SetReceiptPayerResponse](
			httpClient,
			baseURL+LedgerServiceSetReceiptPayerProcedure,
			opts...,
		),
		setAllReceiptsPayer: connect.NewClient[api.SetAllReceiptsPayerRequest, api.SetAllReceiptsPayerResponse](
			httpClient,
			baseURL+LedgerServiceSetAllReceiptsPayerProcedure,
			opts...,
		),
		clearPayerSelections: connect.NewClient[api.ClearPayerSelectionsRequest, api.ClearPayerSelectionsResponse](
			httpClient,
			baseURL+LedgerServiceClearPayerSelectionsProcedure,
			opts...,
		),
		getOverview: connect.NewClient[api.GetOverviewRequest, api.GetOverviewResponse](
			httpClient,
			baseURL+LedgerServiceGetOverviewProcedure,
			opts...,
		),
		getSettlement: connect.NewClient[api.GetSettlementRequest, api.GetSettlementResponse](
			httpClient,
			baseURL+LedgerServiceGetSettlementProcedure,
			opts...,
		),
	}
}

// ledgerServiceClient implements LedgerServiceClient.
type ledgerServiceClient struct {
	startSession         *connect.Client[api.StartSessionRequest, api.StartSessionResponse]
	endSession           *connect.Client[api.EndSessionRequest, api.EndSessionResponse]
	addPerson            *connect.Client[api.AddPersonRequest, api.AddPersonResponse]
	renamePerson         *connect.Client[api.RenamePersonRequest, api.RenamePersonResponse]
	removePerson         *connect.Client[api.RemovePersonRequest, api.RemovePersonResponse]
	listPeople           *connect.Client[api.ListPeopleRequest, api.ListPeopleResponse]
	addManualItem        *connect.Client[api.AddManualItemRequest, api.AddManualItemResponse]
	renameItem           *connect.Client[api.RenameItemRequest, api.RenameItemResponse]
	removeItem           *connect.Client[api.RemoveItemRequest, api.RemoveItemResponse]
	listItems            *connect.Client[api.ListItemsRequest, api.ListItemsResponse]
	importReceiptText    *connect.Client[api.ImportReceiptTextRequest, api.ImportReceiptTextResponse]
	scanReceipt          *connect.Client[api.ScanReceiptRequest, api.ScanReceiptResponse]
	clearReceiptItems    *connect.Client[api.ClearReceiptItemsRequest, api.ClearReceiptItemsResponse]
	removeReceiptGroup   *connect.Client[api.RemoveReceiptGroupRequest, api.RemoveReceiptGroupResponse]
	setAssignees         *connect.Client[api.SetAssigneesRequest, api.SetAssigneesResponse]
	toggleAssignee       *connect.Client[api.ToggleAssigneeRequest, api.ToggleAssigneeResponse]
	setManualPayer       *connect.Client[api.SetManualPayerRequest, api.SetManualPayerResponse]
	setReceiptPayer      *connect.Client[api.SetReceiptPayerRequest, api.SetReceiptPayerResponse]
	setAllReceiptsPayer  *connect.Client[api.SetAllReceiptsPayerRequest, api.SetAllReceiptsPayerResponse]
	clearPayerSelections *connect.Client[api.ClearPayerSelectionsRequest, api.ClearPayerSelectionsResponse]
	getOverview          *connect.Client[api.GetOverviewRequest, api.GetOverviewResponse]
	getSettlement        *connect.Client[api.GetSettlementRequest, api.GetSettlementResponse]
}

// StartSession calls dutchie.v1.LedgerService.StartSession.
func (c *ledgerServiceClient) StartSession(ctx context.Context, req *connect.Request[api.StartSessionRequest]) (*connect.Response[api.StartSessionResponse], error) {
	return c.startSession.CallUnary(ctx, req)
}

// EndSession calls dutchie.v1.LedgerService.EndSession.
func (c *ledgerServiceClient) EndSession(ctx context.Context, req *connect.Request[api.EndSessionRequest]) (*connect.Response[api.EndSessionResponse], error) {
	return c.endSession.CallUnary(ctx, req)
}

// AddPerson calls dutchie.v1.LedgerService.AddPerson.
func (c *ledgerServiceClient) AddPerson(ctx context.Context, req *connect.Request[api.AddPersonRequest]) (*connect.Response[api.AddPersonResponse], error) {
	return c.addPerson.CallUnary(ctx, req)
}

// RenamePerson calls dutchie.v1.LedgerService.RenamePerson.
func (c *ledgerServiceClient) RenamePerson(ctx context.Context, req *connect.Request[api.RenamePersonRequest]) (*connect.Response[api.RenamePersonResponse], error) {
	return c.renamePerson.CallUnary(ctx, req)
}

// RemovePerson calls dutchie.v1.LedgerService.RemovePerson.
func (c *ledgerServiceClient) RemovePerson(ctx context.Context, req *connect.Request[api.RemovePersonRequest]) (*connect.Response[api.RemovePersonResponse], error) {
	return c.removePerson.CallUnary(ctx, req)
}

// ListPeople calls dutchie.v1.LedgerService.ListPeople.
func (c *ledgerServiceClient) ListPeople(ctx context.Context, req *connect.Request[api.ListPeopleRequest]) (*connect.Response[api.ListPeopleResponse], error) {
	return c.listPeople.CallUnary(ctx, req)
}

// AddManualItem calls dutchie.v1.LedgerService.AddManualItem.
func (c *ledgerServiceClient) AddManualItem(ctx context.Context, req *connect.Request[api.AddManualItemRequest]) (*connect.Response[api.AddManualItemResponse], error) {
	return c.addManualItem.CallUnary(ctx, req)
}

// RenameItem calls dutchie.v1.LedgerService.RenameItem.
func (c *ledgerServiceClient) RenameItem(ctx context.Context, req *connect.Request[api.RenameItemRequest]) (*connect.Response[api.RenameItemResponse], error) {
	return c.renameItem.CallUnary(ctx, req)
}

// RemoveItem calls dutchie.v1.LedgerService.RemoveItem.
func (c *ledgerServiceClient) RemoveItem(ctx context.Context, req *connect.Request[api.RemoveItemRequest]) (*connect.Response[api.RemoveItemResponse], error) {
	return c.removeItem.CallUnary(ctx, req)
}

// ListItems calls dutchie.v1.LedgerService.ListItems.
func (c *ledgerServiceClient) ListItems(ctx context.Context, req *connect.Request[api.ListItemsRequest]) (*connect.Response[api.ListItemsResponse], error) {
	return c.listItems.CallUnary(ctx, req)
}

// ImportReceiptText calls dutchie.v1.LedgerService.ImportReceiptText.
func (c *ledgerServiceClient) ImportReceiptText(ctx context.Context, req *connect.Request[api.ImportReceiptTextRequest]) (*connect.Response[api.ImportReceiptTextResponse], error) {
	return c.importReceiptText.CallUnary(ctx, req)
}

// ScanReceipt calls dutchie.v1.LedgerService.ScanReceipt.
func (c *ledgerServiceClient) ScanReceipt(ctx context.Context, req *connect.Request[api.ScanReceiptRequest]) (*connect.Response[api.ScanReceiptResponse], error) {
	return c.scanReceipt.CallUnary(ctx, req)
}

// ClearReceiptItems calls dutchie.v1.LedgerService.ClearReceiptItems.
func (c *ledgerServiceClient) ClearReceiptItems(ctx context.Context, req *connect.Request[api.ClearReceiptItemsRequest]) (*connect.Response[api.ClearReceiptItemsResponse], error) {
	return c.clearReceiptItems.CallUnary(ctx, req)
}

// RemoveReceiptGroup calls dutchie.v1.LedgerService.RemoveReceiptGroup.
func (c *ledgerServiceClient) RemoveReceiptGroup(ctx context.Context, req *connect.Request[api.RemoveReceiptGroupRequest]) (*connect.Response[api.RemoveReceiptGroupResponse], error) {
	return c.removeReceiptGroup.CallUnary(ctx, req)
}

// SetAssignees calls dutchie.v1.LedgerService.SetAssignees.
func (c *ledgerServiceClient) SetAssignees(ctx context.Context, req *connect.Request[api.SetAssigneesRequest]) (*connect.Response[api.SetAssigneesResponse], error) {
	return c.setAssignees.CallUnary(ctx, req)
}

// ToggleAssignee calls dutchie.v1.LedgerService.ToggleAssignee.
func (c *ledgerServiceClient) ToggleAssignee(ctx context.Context, req *connect.Request[api.ToggleAssigneeRequest]) (*connect.Response[api.ToggleAssigneeResponse], error) {
	return c.toggleAssignee.CallUnary(ctx, req)
}

// SetManualPayer calls dutchie.v1.LedgerService.SetManualPayer.
func (c *ledgerServiceClient) SetManualPayer(ctx context.Context, req *connect.Request[api.SetManualPayerRequest]) (*connect.Response[api.SetManualPayerResponse], error) {
	return c.setManualPayer.CallUnary(ctx, req)
}

// SetReceiptPayer calls dutchie.v1.LedgerService.SetReceiptPayer.
func (c *ledgerServiceClient) SetReceiptPayer(ctx context.Context, req *connect.Request[api.SetReceiptPayerRequest]) (*connect.Response[api.SetReceiptPayerResponse], error) {
	return c.setReceiptPayer.CallUnary(ctx, req)
}

// SetAllReceiptsPayer calls dutchie.v1.LedgerService.SetAllReceiptsPayer.
func (c *ledgerServiceClient) SetAllReceiptsPayer(ctx context.Context, req *connect.Request[api.SetAllReceiptsPayerRequest]) (*connect.Response[api.SetAllReceiptsPayerResponse], error) {
	return c.setAllReceiptsPayer.CallUnary(ctx, req)
}

// ClearPayerSelections calls dutchie.v1.LedgerService.ClearPayerSelections.
func (c *ledgerServiceClient) ClearPayerSelections(ctx context.Context, req *connect.Request[api.ClearPayerSelectionsRequest]) (*connect.Response[api.ClearPayerSelectionsResponse], error) {
	return c.clearPayerSelections.CallUnary(ctx, req)
}

// GetOverview calls dutchie.v1.LedgerService.GetOverview.
func (c *ledgerServiceClient) GetOverview(ctx context.Context, req *connect.Request[api.GetOverviewRequest]) (*connect.Response[api.GetOverviewResponse], error) {
	return c.getOverview.CallUnary(ctx, req)
}

// GetSettlement calls dutchie.v1.LedgerService.GetSettlement.
func (c *ledgerServiceClient) GetSettlement(ctx context.Context, req *connect.Request[api.GetSettlementRequest]) (*connect.Response[api.GetSettlementResponse], error) {
	return c.getSettlement.CallUnary(ctx, req)
}

// LedgerServiceHandler is an implementation of the dutchie.v1.LedgerService service.
type LedgerServiceHandler interface {
	StartSession(context.Context, *connect.Request[api.StartSessionRequest]) (*connect.Response[api.StartSessionResponse], error)
	EndSession(context.Context, *connect.Request[api.EndSessionRequest]) (*connect.Response[api.EndSessionResponse], error)
	AddPerson(context.Context, *connect.Request[api.AddPersonRequest]) (*connect.Response[api.AddPersonResponse], error)
	RenamePerson(context.Context, *connect.Request[api.RenamePersonRequest]) (*connect.Response[api.RenamePersonResponse], error)
	RemovePerson(context.Context, *connect.Request[api.RemovePersonRequest]) (*connect.Response[api.RemovePersonResponse], error)
	ListPeople(context.Context, *connect.Request[api.ListPeopleRequest]) (*connect.Response[api.ListPeopleResponse], error)
	AddManualItem(context.Context, *connect.Request[api.AddManualItemRequest]) (*connect.Response[api.AddManualItemResponse], error)
	RenameItem(context.Context, *connect.Request[api.RenameItemRequest]) (*connect.Response[api.RenameItemResponse], error)
	RemoveItem(context.Context, *connect.Request[api.RemoveItemRequest]) (*connect.Response[api.RemoveItemResponse], error)
	ListItems(context.Context, *connect.Request[api.ListItemsRequest]) (*connect.Response[api.ListItemsResponse], error)
	ImportReceiptText(context.Context, *connect.Request[api.ImportReceiptTextRequest]) (*connect.Response[api.ImportReceiptTextResponse], error)
	ScanReceipt(context.Context, *connect.Request[api.ScanReceiptRequest]) (*connect.Response[api.ScanReceiptResponse], error)
	ClearReceiptItems(context.Context, *connect.Request[api.ClearReceiptItemsRequest]) (*connect.Response[api.ClearReceiptItemsResponse], error)
	RemoveReceiptGroup(context.Context, *connect.Request[api.RemoveReceiptGroupRequest]) (*connect.Response[api.RemoveReceiptGroupResponse], error)
	SetAssignees(context.Context, *connect.Request[api.SetAssigneesRequest]) (*connect.Response[api.SetAssigneesResponse], error)
	ToggleAssignee(context.Context, *connect.Request[api.ToggleAssigneeRequest]) (*connect.Response[api.ToggleAssigneeResponse], error)
	SetManualPayer(context.Context, *connect.Request[api.SetManualPayerRequest]) (*connect.Response[api.SetManualPayerResponse], error)
	SetReceiptPayer(context.Context, *connect.Request[api.SetReceiptPayerRequest]) (*connect.Response[api.SetReceiptPayerResponse], error)
	SetAllReceiptsPayer(context.Context, *connect.Request[api.SetAllReceiptsPayerRequest]) (*connect.Response[api.SetAllReceiptsPayerResponse], error)
	ClearPayerSelections(context.Context, *connect.Request[api.ClearPayerSelectionsRequest]) (*connect.Response[api.ClearPayerSelectionsResponse], error)
	GetOverview(context.Context, *connect.Request[api.GetOverviewRequest]) (*connect.Response[api.GetOverviewResponse], error)
	GetSettlement(context.Context, *connect.Request[api.GetSettlementRequest]) (*connect.Response[api.GetSettlementResponse], error)
}

// NewLedgerServiceHandler builds an HTTP handler from the service implementation. It returns
// the path on which to mount the handler and the handler itself.
//
// By default, handlers support the Connect and gRPC-Web protocols with the JSON codec.
func NewLedgerServiceHandler(svc LedgerServiceHandler, opts ...connect.HandlerOption) (string, http.Handler) {
	opts = append([]connect.HandlerOption{WithJSON()}, opts...)
	ledgerServiceStartSessionHandler := connect.NewUnaryHandler(
		LedgerServiceStartSessionProcedure,
		svc.StartSession,
		opts...,
	)
	ledgerServiceEndSessionHandler := connect.NewUnaryHandler(
		LedgerServiceEndSessionProcedure,
		svc.EndSession,
		opts...,
	)
	ledgerServiceAddPersonHandler := connect.NewUnaryHandler(
		LedgerServiceAddPersonProcedure,
		svc.AddPerson,
		opts...,
	)
	ledgerServiceRenamePersonHandler := connect.NewUnaryHandler(
		LedgerServiceRenamePersonProcedure,
		svc.RenamePerson,
		opts...,
	)
	ledgerServiceRemovePersonHandler := connect.NewUnaryHandler(
		LedgerServiceRemovePersonProcedure,
		svc.RemovePerson,
		opts...,
	)
	ledgerServiceListPeopleHandler := connect.NewUnaryHandler(
		LedgerServiceListPeopleProcedure,
		svc.ListPeople,
		opts...,
	)
	ledgerServiceAddManualItemHandler := connect.NewUnaryHandler(
		LedgerServiceAddManualItemProcedure,
		svc.AddManualItem,
		opts...,
	)
	ledgerServiceRenameItemHandler := connect.NewUnaryHandler(
		LedgerServiceRenameItemProcedure,
		svc.RenameItem,
		opts...,
	)
	ledgerServiceRemoveItemHandler := connect.NewUnaryHandler(
		LedgerServiceRemoveItemProcedure,
		svc.RemoveItem,
		opts...,
	)
	ledgerServiceListItemsHandler := connect.NewUnaryHandler(
		LedgerServiceListItemsProcedure,
		svc.ListItems,
		opts...,
	)
	ledgerServiceImportReceiptTextHandler := connect.NewUnaryHandler(
		LedgerServiceImportReceiptTextProcedure,
		svc.ImportReceiptText,
		opts...,
	)
	ledgerServiceScanReceiptHandler := connect.NewUnaryHandler(
		LedgerServiceScanReceiptProcedure,
		svc.ScanReceipt,
		opts...,
	)
	ledgerServiceClearReceiptItemsHandler := connect.NewUnaryHandler(
		LedgerServiceClearReceiptItemsProcedure,
		svc.ClearReceiptItems,
		opts...,
	)
	ledgerServiceRemoveReceiptGroupHandler := connect.NewUnaryHandler(
		LedgerServiceRemoveReceiptGroupProcedure,
		svc.RemoveReceiptGroup,
		opts...,
	)
	ledgerServiceSetAssigneesHandler := connect.NewUnaryHandler(
		LedgerServiceSetAssigneesProcedure,
		svc.SetAssignees,
		opts...,
	)
	ledgerServiceToggleAssigneeHandler := connect.NewUnaryHandler(
		LedgerServiceToggleAssigneeProcedure,
		svc.ToggleAssignee,
		opts...,
	)
	ledgerServiceSetManualPayerHandler := connect.NewUnaryHandler(
		LedgerServiceSetManualPayerProcedure,
		svc.SetManualPayer,
		opts...,
	)
	ledgerServiceSetReceiptPayerHandler := connect.NewUnaryHandler(
		LedgerServiceSetReceiptPayerProcedure,
		svc.SetReceiptPayer,
		opts...,
	)
	ledgerServiceSetAllReceiptsPayerHandler := connect.NewUnaryHandler(
		LedgerServiceSetAllReceiptsPayerProcedure,
		svc.SetAllReceiptsPayer,
		opts...,
	)
	ledgerServiceClearPayerSelectionsHandler := connect.NewUnaryHandler(
		LedgerServiceClearPayerSelectionsProcedure,
		svc.ClearPayerSelections,
		opts...,
	)
	ledgerServiceGetOverviewHandler := connect.NewUnaryHandler(
		LedgerServiceGetOverviewProcedure,
		svc.GetOverview,
		opts...,
	)
	ledgerServiceGetSettlementHandler := connect.NewUnaryHandler(
		LedgerServiceGetSettlementProcedure,
		svc.GetSettlement,
		opts...,
	)
	return "/dutchie.v1.LedgerService/", http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case LedgerServiceStartSessionProcedure:
			ledgerServiceStartSessionHandler.ServeHTTP(w, r)
		case LedgerServiceEndSessionProcedure:
			ledgerServiceEndSessionHandler.ServeHTTP(w, r)
		case LedgerServiceAddPersonProcedure:
			ledgerServiceAddPersonHandler.ServeHTTP(w, r)
		case LedgerServiceRenamePersonProcedure:
			ledgerServiceRenamePersonHandler.ServeHTTP(w, r)
		case LedgerServiceRemovePersonProcedure:
			ledgerServiceRemovePersonHandler.ServeHTTP(w, r)
		case LedgerServiceListPeopleProcedure:
			ledgerServiceListPeopleHandler.ServeHTTP(w, r)
		case LedgerServiceAddManualItemProcedure:
			ledgerServiceAddManualItemHandler.ServeHTTP(w, r)
		case LedgerServiceRenameItemProcedure:
			ledgerServiceRenameItemHandler.ServeHTTP(w, r)
		case LedgerServiceRemoveItemProcedure:
			ledgerServiceRemoveItemHandler.ServeHTTP(w, r)
		case LedgerServiceListItemsProcedure:
			ledgerServiceListItemsHandler.ServeHTTP(w, r)
		case LedgerServiceImportReceiptTextProcedure:
			ledgerServiceImportReceiptTextHandler.ServeHTTP(w, r)
		case LedgerServiceScanReceiptProcedure:
			ledgerServiceScanReceiptHandler.ServeHTTP(w, r)
		case LedgerServiceClearReceiptItemsProcedure:
			ledgerServiceClearReceiptItemsHandler.ServeHTTP(w, r)
		case LedgerServiceRemoveReceiptGroupProcedure:
			ledgerServiceRemoveReceiptGroupHandler.ServeHTTP(w, r)
		case LedgerServiceSetAssigneesProcedure:
			ledgerServiceSetAssigneesHandler.ServeHTTP(w, r)
		case LedgerServiceToggleAssigneeProcedure:
			ledgerServiceToggleAssigneeHandler.ServeHTTP(w, r)
		case LedgerServiceSetManualPayerProcedure:
			ledgerServiceSetManualPayerHandler.ServeHTTP(w, r)
		case LedgerServiceSetReceiptPayerProcedure:
			ledgerServiceSetReceiptPayerHandler.ServeHTTP(w, r)
		case LedgerServiceSetAllReceiptsPayerProcedure:
			ledgerServiceSetAllReceiptsPayerHandler.ServeHTTP(w, r)
		case LedgerServiceClearPayerSelectionsProcedure:
			ledgerServiceClearPayerSelectionsHandler.ServeHTTP(w, r)
		case LedgerServiceGetOverviewProcedure:
			ledgerServiceGetOverviewHandler.ServeHTTP(w, r)
		case LedgerServiceGetSettlementProcedure:
			ledgerServiceGetSettlementHandler.ServeHTTP(w, r)
		default:
			http.NotFound(w, r)
		}
	})
}

// UnimplementedLedgerServiceHandler returns CodeUnimplemented from all methods.
type UnimplementedLedgerServiceHandler struct{}

func (UnimplementedLedgerServiceHandler) StartSession(context.Context, *connect.Request[api.StartSessionRequest]) (*connect.Response[api.StartSessionResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("dutchie.v1.LedgerService.StartSession is not implemented"))
}

func (UnimplementedLedgerServiceHandler) EndSession(context.Context, *connect.Request[api.EndSessionRequest]) (*connect.Response[api.EndSessionResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("dutchie.v1.LedgerService.EndSession is not implemented"))
}

func (UnimplementedLedgerServiceHandler) AddPerson(context.Context, *connect.Request[api.AddPersonRequest]) (*connect.Response[api.AddPersonResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("dutchie.v1.LedgerService.AddPerson is not implemented"))
}

func (UnimplementedLedgerServiceHandler) RenamePerson(context.Context, *connect.Request[api.RenamePersonRequest]) (*connect.Response[api.RenamePersonResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("dutchie.v1.LedgerService.RenamePerson is not implemented"))
}

func (UnimplementedLedgerServiceHandler) RemovePerson(context.Context, *connect.Request[api.RemovePersonRequest]) (*connect.Response[api.RemovePersonResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("dutchie.v1.LedgerService.RemovePerson is not implemented"))
}

func (UnimplementedLedgerServiceHandler) ListPeople(context.Context, *connect.Request[api.ListPeopleRequest]) (*connect.Response[api.ListPeopleResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("dutchie.v1.LedgerService.ListPeople is not implemented"))
}

func (UnimplementedLedgerServiceHandler) AddManualItem(context.Context, *connect.Request[api.AddManualItemRequest]) (*connect.Response[api.AddManualItemResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("dutchie.v1.LedgerService.AddManualItem is not implemented"))
}

func (UnimplementedLedgerServiceHandler) RenameItem(context.Context, *connect.Request[api.RenameItemRequest]) (*connect.Response[api.RenameItemResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("dutchie.v1.LedgerService.RenameItem is not implemented"))
}

func (UnimplementedLedgerServiceHandler) RemoveItem(context.Context, *connect.Request[api.RemoveItemRequest]) (*connect.Response[api.RemoveItemResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("dutchie.v1.LedgerService.RemoveItem is not implemented"))
}

func (UnimplementedLedgerServiceHandler) ListItems(context.Context, *connect.Request[api.ListItemsRequest]) (*connect.Response[api.ListItemsResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("dutchie.v1.LedgerService.ListItems is not implemented"))
}

func (UnimplementedLedgerServiceHandler) ImportReceiptText(context.Context, *connect.Request[api.ImportReceiptTextRequest]) (*connect.Response[api.ImportReceiptTextResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("dutchie.v1.LedgerService.ImportReceiptText is not implemented"))
}

func (UnimplementedLedgerServiceHandler) ScanReceipt(context.Context, *connect.Request[api.ScanReceiptRequest]) (*connect.Response[api.ScanReceiptResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("dutchie.v1.LedgerService.ScanReceipt is not implemented"))
}

func (UnimplementedLedgerServiceHandler) ClearReceiptItems(context.Context, *connect.Request[api.ClearReceiptItemsRequest]) (*connect.Response[api.ClearReceiptItemsResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("dutchie.v1.LedgerService.ClearReceiptItems is not implemented"))
}

func (UnimplementedLedgerServiceHandler) RemoveReceiptGroup(context.Context, *connect.Request[api.RemoveReceiptGroupRequest]) (*connect.Response[api.RemoveReceiptGroupResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("dutchie.v1.LedgerService.RemoveReceiptGroup is not implemented"))
}

func (UnimplementedLedgerServiceHandler) SetAssignees(context.Context, *connect.Request[api.SetAssigneesRequest]) (*connect.Response[api.SetAssigneesResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("dutchie.v1.LedgerService.SetAssignees is not implemented"))
}

func (UnimplementedLedgerServiceHandler) ToggleAssignee(context.Context, *connect.Request[api.ToggleAssigneeRequest]) (*connect.Response[api.ToggleAssigneeResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("dutchie.v1.LedgerService.ToggleAssignee is not implemented"))
}

func (UnimplementedLedgerServiceHandler) SetManualPayer(context.Context, *connect.Request[api.SetManualPayerRequest]) (*connect.Response[api.SetManualPayerResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("dutchie.v1.LedgerService.SetManualPayer is not implemented"))
}

func (UnimplementedLedgerServiceHandler) SetReceiptPayer(context.Context, *connect.Request[api.SetReceiptPayerRequest]) (*connect.Response[api.SetReceiptPayerResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("dutchie.v1.LedgerService.SetReceiptPayer is not implemented"))
}

func (UnimplementedLedgerServiceHandler) SetAllReceiptsPayer(context.Context, *connect.Request[api.SetAllReceiptsPayerRequest]) (*connect.Response[api.SetAllReceiptsPayerResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("dutchie.v1.LedgerService.SetAllReceiptsPayer is not implemented"))
}

func (UnimplementedLedgerServiceHandler) ClearPayerSelections(context.Context, *connect.Request[api.ClearPayerSelectionsRequest]) (*connect.Response[api.ClearPayerSelectionsResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("dutchie.v1.LedgerService.ClearPayerSelections is not implemented"))
}

func (UnimplementedLedgerServiceHandler) GetOverview(context.Context, *connect.Request[api.GetOverviewRequest]) (*connect.Response[api.GetOverviewResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("dutchie.v1.LedgerService.GetOverview is not implemented"))
}

func (UnimplementedLedgerServiceHandler) GetSettlement(context.Context, *connect.Request[api.GetSettlementRequest]) (*connect.Response[api.GetSettlementResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("dutchie.v1.LedgerService.GetSettlement is not implemented"))
}
