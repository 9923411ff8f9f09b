// Package http exposes the engine's trigger surface over REST: process one
// order, quote rates without purchasing, run a batch, look up a persisted
// result, validate an address, and edit an organization's schedule.
package http

import (
	"errors"
	"net/http"

	"shiplabel/internal/core/application/usecases/commands"
	"shiplabel/internal/core/application/usecases/queries"
	"shiplabel/internal/core/domain/model/kernel"
	"shiplabel/internal/core/domain/model/organization"
	"shiplabel/internal/core/domain/model/shipping"
	"shiplabel/internal/core/ports"
	"shiplabel/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	processHandler commands.ProcessOrderShippingCommandHandler
	batchHandler   commands.ProcessBatchShippingCommandHandler
	resultHandler  queries.GetShippingResultQueryHandler

	organizations ports.OrganizationStore
	orders        ports.OrderStore
	carrier       ports.CarrierService
	audit         ports.AuditLog
}

// NewServer creates a new HTTP server with the required handlers and ports.
func NewServer(
	processHandler commands.ProcessOrderShippingCommandHandler,
	batchHandler commands.ProcessBatchShippingCommandHandler,
	resultHandler queries.GetShippingResultQueryHandler,
	organizations ports.OrganizationStore,
	orders ports.OrderStore,
	carrier ports.CarrierService,
	audit ports.AuditLog,
) *Server {
	return &Server{
		processHandler: processHandler,
		batchHandler:   batchHandler,
		resultHandler:  resultHandler,
		organizations:  organizations,
		orders:         orders,
		carrier:        carrier,
		audit:          audit,
	}
}

// RegisterRoutes attaches all engine routes to the echo instance.
func RegisterRoutes(e *echo.Echo, s *Server) {
	api := e.Group("/api/v1")

	api.POST("/shipping/process", s.ProcessOrder)
	api.POST("/shipping/quote", s.QuoteOrder)
	api.POST("/shipping/batch", s.ProcessBatch)
	api.POST("/shipping/addresses/validate", s.ValidateAddress)
	api.GET("/orders/:id/shipping", s.GetShippingResult)
	api.PUT("/organizations/:id/schedule", s.UpdateSchedule)

	e.GET("/health", s.Health)
}

// Error is the JSON error body returned by every failed request.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// ProcessShippingRequest triggers the pipeline for one order. RateID requests
// a direct purchase of a previously quoted rate.
type ProcessShippingRequest struct {
	OrganizationID string `json:"organization_id"`
	OrderID        string `json:"order_id"`
	RateID         string `json:"rate_id,omitempty"`
	AutoPurchase   bool   `json:"auto_purchase"`
}

// BatchShippingRequest triggers the pipeline for several orders. An empty
// OrderIDs list means "everything currently eligible".
type BatchShippingRequest struct {
	OrganizationID string   `json:"organization_id"`
	OrderIDs       []string `json:"order_ids,omitempty"`
	AutoPurchase   bool     `json:"auto_purchase"`
}

// ValidateAddressRequest submits one address for carrier-side validation using
// the organization's credentials.
type ValidateAddressRequest struct {
	OrganizationID string           `json:"organization_id"`
	Address        shipping.Address `json:"address"`
}

// UpdateScheduleRequest replaces an organization's automatic-run schedule.
type UpdateScheduleRequest struct {
	Enabled     bool `json:"enabled"`
	CheckHour   int  `json:"check_hour"`
	CheckMinute int  `json:"check_minute"`
}

// BatchReportResponse mirrors the batch report with wire-friendly ids.
type BatchReportResponse struct {
	Requested int                    `json:"requested"`
	Succeeded []BatchSuccessResponse `json:"succeeded"`
	Failed    []BatchFailureResponse `json:"failed"`
}

type BatchSuccessResponse struct {
	OrderID        string  `json:"order_id"`
	Status         string  `json:"status"`
	Carrier        string  `json:"carrier,omitempty"`
	Amount         float64 `json:"amount,omitempty"`
	TrackingNumber string  `json:"tracking_number,omitempty"`
}

type BatchFailureResponse struct {
	OrderID string `json:"order_id"`
	Message string `json:"message"`
}

// ShippingResultResponse wraps a persisted result with its order identity.
type ShippingResultResponse struct {
	OrderID     string                   `json:"order_id"`
	OrderNumber string                   `json:"order_number"`
	OrderStatus string                   `json:"order_status"`
	Result      *shipping.ShippingResult `json:"result"`
}

// ProcessOrder handles POST /api/v1/shipping/process.
func (s *Server) ProcessOrder(ctx echo.Context) error {
	var req ProcessShippingRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := s.buildProcessCommand(req)
	if err != nil {
		return badRequest(ctx, "Invalid shipping request: "+err.Error())
	}

	result, err := s.processHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return processError(ctx, result, err)
	}

	s.recordProcessAudit(ctx, cmd, result)

	return ctx.JSON(http.StatusOK, result)
}

// QuoteOrder handles POST /api/v1/shipping/quote. Quotes never purchase,
// whatever the organization's auto-purchase setting says.
func (s *Server) QuoteOrder(ctx echo.Context) error {
	var req ProcessShippingRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	req.RateID = ""
	req.AutoPurchase = false
	cmd, err := s.buildProcessCommand(req)
	if err != nil {
		return badRequest(ctx, "Invalid shipping request: "+err.Error())
	}

	result, err := s.processHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return processError(ctx, result, err)
	}

	return ctx.JSON(http.StatusOK, result)
}

// ProcessBatch handles POST /api/v1/shipping/batch.
func (s *Server) ProcessBatch(ctx echo.Context) error {
	var req BatchShippingRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	organizationID, err := kernel.UUIDFromString(req.OrganizationID)
	if err != nil {
		return badRequest(ctx, "Invalid organization id")
	}

	orderIDs := make([]kernel.UUID, 0, len(req.OrderIDs))
	for _, raw := range req.OrderIDs {
		id, idErr := kernel.UUIDFromString(raw)
		if idErr != nil {
			return badRequest(ctx, "Invalid order id: "+raw)
		}
		orderIDs = append(orderIDs, id)
	}

	// No explicit ids: run over everything currently eligible.
	if len(orderIDs) == 0 {
		eligible, listErr := s.orders.ListEligibleForShipping(ctx.Request().Context(), organizationID)
		if listErr != nil {
			return internalError(ctx, "Failed to list eligible orders")
		}
		for _, ord := range eligible {
			orderIDs = append(orderIDs, ord.ID)
		}
	}

	cmd, err := commands.NewProcessBatchShippingCommand(organizationID, orderIDs, req.AutoPurchase)
	if err != nil {
		return badRequest(ctx, "Invalid batch request: "+err.Error())
	}

	report, err := s.batchHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return internalError(ctx, "Batch processing failed")
	}

	return ctx.JSON(http.StatusOK, toBatchResponse(report))
}

// GetShippingResult handles GET /api/v1/orders/:id/shipping.
func (s *Server) GetShippingResult(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid order id")
	}

	query, err := queries.NewGetShippingResultQuery(orderID)
	if err != nil {
		return badRequest(ctx, "Invalid order id")
	}

	response, err := s.resultHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		if errors.Is(err, errs.ErrObjectNotFound) {
			return notFound(ctx, "Order not found")
		}
		return internalError(ctx, "Failed to retrieve shipping result")
	}

	return ctx.JSON(http.StatusOK, ShippingResultResponse{
		OrderID:     response.OrderID.String(),
		OrderNumber: response.OrderNumber,
		OrderStatus: response.OrderStatus,
		Result:      response.Result,
	})
}

// ValidateAddress handles POST /api/v1/shipping/addresses/validate.
func (s *Server) ValidateAddress(ctx echo.Context) error {
	var req ValidateAddressRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	organizationID, err := kernel.UUIDFromString(req.OrganizationID)
	if err != nil {
		return badRequest(ctx, "Invalid organization id")
	}

	org, err := s.organizations.Get(ctx.Request().Context(), organizationID)
	if err != nil {
		if errors.Is(err, errs.ErrObjectNotFound) {
			return notFound(ctx, "Organization not found")
		}
		return internalError(ctx, "Failed to load organization")
	}
	if org.Shipping.APIKey == "" {
		return badRequest(ctx, "Organization has no carrier API key configured")
	}

	validated, err := s.carrier.ValidateAddress(ctx.Request().Context(), org.Shipping.APIKey, req.Address)
	if err != nil {
		return ctx.JSON(http.StatusBadGateway, Error{
			Code:    http.StatusBadGateway,
			Message: "Address validation failed: " + err.Error(),
		})
	}

	return ctx.JSON(http.StatusOK, validated)
}

// UpdateSchedule handles PUT /api/v1/organizations/:id/schedule.
func (s *Server) UpdateSchedule(ctx echo.Context) error {
	organizationID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid organization id")
	}

	var req UpdateScheduleRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}
	if req.CheckHour < 0 || req.CheckHour > 23 || req.CheckMinute < 0 || req.CheckMinute > 59 {
		return badRequest(ctx, "Invalid schedule time")
	}

	schedule := organization.Schedule{
		Enabled:     req.Enabled,
		CheckHour:   req.CheckHour,
		CheckMinute: req.CheckMinute,
	}

	if err = s.organizations.UpdateSchedule(ctx.Request().Context(), organizationID, schedule); err != nil {
		if errors.Is(err, errs.ErrObjectNotFound) {
			return notFound(ctx, "Organization not found")
		}
		return internalError(ctx, "Failed to update schedule")
	}

	return ctx.NoContent(http.StatusNoContent)
}

// Health handles GET /health.
func (s *Server) Health(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, map[string]string{"status": "healthy"})
}

// recordProcessAudit writes a per-action audit entry for a direct processing
// request. Best effort: a failed audit write never fails the request.
func (s *Server) recordProcessAudit(
	ctx echo.Context,
	cmd commands.ProcessOrderShippingCommand,
	result *shipping.ShippingResult,
) {
	entry := ports.AuditEntry{
		Action:         ports.AuditActionShippingProcess,
		OrganizationID: cmd.OrganizationID(),
		Details: map[string]any{
			"order_id": cmd.OrderID().String(),
			"status":   string(result.Status),
		},
	}

	if err := s.audit.Record(ctx.Request().Context(), entry); err != nil {
		ctx.Logger().Warnf("audit record failed: %v", err)
	}
}

func (s *Server) buildProcessCommand(req ProcessShippingRequest) (commands.ProcessOrderShippingCommand, error) {
	organizationID, err := kernel.UUIDFromString(req.OrganizationID)
	if err != nil {
		return commands.ProcessOrderShippingCommand{}, err
	}

	orderID, err := kernel.UUIDFromString(req.OrderID)
	if err != nil {
		return commands.ProcessOrderShippingCommand{}, err
	}

	return commands.NewProcessOrderShippingCommand(organizationID, orderID, req.RateID, req.AutoPurchase)
}

// processError maps a pipeline failure to a status code. Configuration and
// input problems are the caller's to fix; anything else is upstream. The
// persisted error-status result rides along in the body when one exists.
func processError(ctx echo.Context, result *shipping.ShippingResult, err error) error {
	status := http.StatusBadGateway
	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		status = http.StatusNotFound
	case errors.Is(err, commands.ErrAPIKeyIsNotConfigured),
		errors.Is(err, commands.ErrFromAddressIsNotConfigured),
		errors.Is(err, commands.ErrOrderHasNoDestination):
		status = http.StatusUnprocessableEntity
	}

	if result != nil {
		return ctx.JSON(status, result)
	}
	return ctx.JSON(status, Error{Code: status, Message: err.Error()})
}

func toBatchResponse(report commands.BatchReport) BatchReportResponse {
	response := BatchReportResponse{
		Requested: report.Requested,
		Succeeded: make([]BatchSuccessResponse, 0, len(report.Succeeded)),
		Failed:    make([]BatchFailureResponse, 0, len(report.Failed)),
	}

	for _, success := range report.Succeeded {
		response.Succeeded = append(response.Succeeded, BatchSuccessResponse{
			OrderID:        success.OrderID.String(),
			Status:         string(success.Status),
			Carrier:        success.Carrier,
			Amount:         success.Amount,
			TrackingNumber: success.TrackingNumber,
		})
	}
	for _, failure := range report.Failed {
		response.Failed = append(response.Failed, BatchFailureResponse{
			OrderID: failure.OrderID.String(),
			Message: failure.Message,
		})
	}

	return response
}

func badRequest(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusBadRequest, Error{Code: http.StatusBadRequest, Message: message})
}

func notFound(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusNotFound, Error{Code: http.StatusNotFound, Message: message})
}

func internalError(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusInternalServerError, Error{Code: http.StatusInternalServerError, Message: message})
}
