// Package http exposes the staff-facing REST API. Handlers translate JSON
// requests into commands and queries and map domain errors onto HTTP codes.
package http

import (
	"errors"
	"net/http"
	"time"

	"laundryops/internal/core/application/usecases/commands"
	"laundryops/internal/core/application/usecases/queries"
	"laundryops/internal/core/domain/model/kernel"
	"laundryops/internal/core/domain/model/order"
	"laundryops/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	createOrderHandler     commands.CreateOrderCommandHandler
	routeOrderHandler      commands.RouteOrderCommandHandler
	classifyOrderHandler   commands.ClassifyOrderCommandHandler
	updateStatusHandler    commands.UpdateOrderStatusCommandHandler
	recordPaymentHandler   commands.RecordPaymentCommandHandler
	createBatchHandler     commands.CreateProcessingBatchCommandHandler
	startBatchHandler      commands.StartProcessingBatchCommandHandler
	completeBatchHandler   commands.CompleteProcessingBatchCommandHandler
	arriveTransferHandler  commands.ArriveTransferCommandHandler

	// Query handlers
	getOrderSummaryHandler  queries.GetOrderSummaryQueryHandler
	getBranchMetricsHandler queries.GetBranchMetricsQueryHandler
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	createOrderHandler commands.CreateOrderCommandHandler,
	routeOrderHandler commands.RouteOrderCommandHandler,
	classifyOrderHandler commands.ClassifyOrderCommandHandler,
	updateStatusHandler commands.UpdateOrderStatusCommandHandler,
	recordPaymentHandler commands.RecordPaymentCommandHandler,
	createBatchHandler commands.CreateProcessingBatchCommandHandler,
	startBatchHandler commands.StartProcessingBatchCommandHandler,
	completeBatchHandler commands.CompleteProcessingBatchCommandHandler,
	arriveTransferHandler commands.ArriveTransferCommandHandler,
	getOrderSummaryHandler queries.GetOrderSummaryQueryHandler,
	getBranchMetricsHandler queries.GetBranchMetricsQueryHandler,
) *Server {
	return &Server{
		createOrderHandler:      createOrderHandler,
		routeOrderHandler:       routeOrderHandler,
		classifyOrderHandler:    classifyOrderHandler,
		updateStatusHandler:     updateStatusHandler,
		recordPaymentHandler:    recordPaymentHandler,
		createBatchHandler:      createBatchHandler,
		startBatchHandler:       startBatchHandler,
		completeBatchHandler:    completeBatchHandler,
		arriveTransferHandler:   arriveTransferHandler,
		getOrderSummaryHandler:  getOrderSummaryHandler,
		getBranchMetricsHandler: getBranchMetricsHandler,
	}
}

// RegisterRoutes binds every endpoint onto the echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	api := e.Group("/api/v1")

	api.POST("/orders", s.CreateOrder)
	api.GET("/orders/:orderId", s.GetOrderSummary)
	api.POST("/orders/:orderId/route", s.RouteOrder)
	api.POST("/orders/:orderId/classification", s.ClassifyOrder)
	api.POST("/orders/:orderId/status", s.UpdateOrderStatus)
	api.POST("/orders/:orderId/payments", s.RecordPayment)

	api.POST("/batches", s.CreateProcessingBatch)
	api.POST("/batches/:batchId/start", s.StartProcessingBatch)
	api.POST("/batches/:batchId/complete", s.CompleteProcessingBatch)

	api.POST("/transfers/:batchId/arrive", s.ArriveTransfer)

	api.GET("/branches/:branchId/metrics", s.GetBranchMetrics)

	e.GET("/health", s.Health)
}

// ErrorBody is the JSON error payload returned on every failed request.
type ErrorBody struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// writeError maps domain errors onto HTTP status codes: validation failures
// become 400, missing objects 404, illegal state transitions 409, everything
// else 500.
func writeError(ctx echo.Context, err error) error {
	code := http.StatusInternalServerError

	switch {
	case errors.Is(err, errs.ErrObjectNotFound),
		errors.Is(err, commands.ErrNoOrderFound),
		errors.Is(err, commands.ErrNoBranchFound),
		errors.Is(err, commands.ErrNoBatchFound),
		errors.Is(err, queries.ErrOrderSummaryNotFound):
		code = http.StatusNotFound
	case errors.Is(err, errs.ErrStateTransitionIsInvalid):
		code = http.StatusConflict
	case errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		code = http.StatusBadRequest
	}

	return ctx.JSON(code, ErrorBody{Code: code, Message: err.Error()})
}

func badRequest(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusBadRequest, ErrorBody{
		Code:    http.StatusBadRequest,
		Message: message,
	})
}

func pathUUID(ctx echo.Context, name string) (kernel.UUID, error) {
	return kernel.UUIDFromString(ctx.Param(name))
}

// CreateOrderRequest is the intake payload taken at the counter.
type CreateOrderRequest struct {
	BranchID      string  `json:"branch_id"`
	CustomerName  string  `json:"customer_name"`
	CustomerPhone *string `json:"customer_phone,omitempty"`
	ItemCount     int     `json:"item_count"`
	TotalAmount   string  `json:"total_amount"`
}

// CreateOrder handles POST /api/v1/orders - registers a new laundry order.
func (s *Server) CreateOrder(ctx echo.Context) error {
	var req CreateOrderRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	branchID, err := kernel.UUIDFromString(req.BranchID)
	if err != nil {
		return writeError(ctx, err)
	}

	var phone *kernel.Phone
	if req.CustomerPhone != nil {
		parsed, phoneErr := kernel.NewPhone(*req.CustomerPhone)
		if phoneErr != nil {
			return writeError(ctx, phoneErr)
		}
		phone = &parsed
	}

	amount, err := kernel.NewMoneyFromString(req.TotalAmount)
	if err != nil {
		return writeError(ctx, err)
	}

	orderID := kernel.NewUUID()
	cmd, err := commands.NewCreateOrderCommand(
		orderID, branchID, req.CustomerName, phone, req.ItemCount, amount,
	)
	if err != nil {
		return writeError(ctx, err)
	}

	if err = s.createOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, map[string]string{"id": orderID.String()})
}

// RouteOrderRequest selects one routing engine action for an order.
type RouteOrderRequest struct {
	Action  string  `json:"action"`
	Stage   *string `json:"stage,omitempty"`
	StaffID *string `json:"staff_id,omitempty"`
}

// RouteOrder handles POST /api/v1/orders/:orderId/route - applies a routing action.
func (s *Server) RouteOrder(ctx echo.Context) error {
	orderID, err := pathUUID(ctx, "orderId")
	if err != nil {
		return writeError(ctx, err)
	}

	var req RouteOrderRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	action, err := commands.RouteActionFromString(req.Action)
	if err != nil {
		return writeError(ctx, err)
	}

	var stage *order.Status
	if req.Stage != nil {
		parsed, stageErr := order.StatusFromString(*req.Stage)
		if stageErr != nil {
			return writeError(ctx, stageErr)
		}
		stage = &parsed
	}

	var staffID *kernel.UUID
	if req.StaffID != nil {
		parsed, staffErr := kernel.UUIDFromString(*req.StaffID)
		if staffErr != nil {
			return writeError(ctx, staffErr)
		}
		staffID = &parsed
	}

	cmd, err := commands.NewRouteOrderCommand(orderID, action, stage, staffID)
	if err != nil {
		return writeError(ctx, err)
	}

	if err = s.routeOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// ClassifyOrderRequest asks for a re-classification. Without an override the
// automatic rules run; with one, the override applies with its audit trail.
type ClassifyOrderRequest struct {
	Override *ClassificationOverrideBody `json:"override,omitempty"`
}

// ClassificationOverrideBody carries a manual classification decision.
type ClassificationOverrideBody struct {
	ActorID           string `json:"actor_id"`
	ActorRole         string `json:"actor_role"`
	NewClassification string `json:"new_classification"`
	Reason            string `json:"reason"`
}

// ClassifyOrder handles POST /api/v1/orders/:orderId/classification.
func (s *Server) ClassifyOrder(ctx echo.Context) error {
	orderID, err := pathUUID(ctx, "orderId")
	if err != nil {
		return writeError(ctx, err)
	}

	var req ClassifyOrderRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	var override *commands.ClassificationOverrideRequest
	if req.Override != nil {
		actorID, actorErr := kernel.UUIDFromString(req.Override.ActorID)
		if actorErr != nil {
			return writeError(ctx, actorErr)
		}

		role, roleErr := order.RoleFromString(req.Override.ActorRole)
		if roleErr != nil {
			return writeError(ctx, roleErr)
		}

		classification, classErr := order.ClassificationFromString(req.Override.NewClassification)
		if classErr != nil {
			return writeError(ctx, classErr)
		}

		override = &commands.ClassificationOverrideRequest{
			ActorID:           actorID,
			ActorRole:         role,
			NewClassification: classification,
			Reason:            req.Override.Reason,
		}
	}

	cmd, err := commands.NewClassifyOrderCommand(orderID, override)
	if err != nil {
		return writeError(ctx, err)
	}

	if err = s.classifyOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// UpdateOrderStatusRequest names the garment status to move the order to.
type UpdateOrderStatusRequest struct {
	Status string `json:"status"`
}

// UpdateOrderStatus handles POST /api/v1/orders/:orderId/status.
func (s *Server) UpdateOrderStatus(ctx echo.Context) error {
	orderID, err := pathUUID(ctx, "orderId")
	if err != nil {
		return writeError(ctx, err)
	}

	var req UpdateOrderStatusRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	next, err := order.StatusFromString(req.Status)
	if err != nil {
		return writeError(ctx, err)
	}

	cmd, err := commands.NewUpdateOrderStatusCommand(orderID, next)
	if err != nil {
		return writeError(ctx, err)
	}

	if err = s.updateStatusHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// RecordPaymentRequest is a payment taken against an order.
type RecordPaymentRequest struct {
	Amount string `json:"amount"`
	Method string `json:"method"`
}

// RecordPayment handles POST /api/v1/orders/:orderId/payments.
func (s *Server) RecordPayment(ctx echo.Context) error {
	orderID, err := pathUUID(ctx, "orderId")
	if err != nil {
		return writeError(ctx, err)
	}

	var req RecordPaymentRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	amount, err := kernel.NewMoneyFromString(req.Amount)
	if err != nil {
		return writeError(ctx, err)
	}

	method, err := order.PaymentMethodFromString(req.Method)
	if err != nil {
		return writeError(ctx, err)
	}

	cmd, err := commands.NewRecordPaymentCommand(orderID, amount, method)
	if err != nil {
		return writeError(ctx, err)
	}

	if err = s.recordPaymentHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusCreated)
}

// OrderSummaryResponse is the dashboard view of one order.
type OrderSummaryResponse struct {
	ID                  string     `json:"id"`
	TagNumber           string     `json:"tag_number"`
	OwningBranchID      string     `json:"owning_branch_id"`
	ProcessingBranchID  *string    `json:"processing_branch_id,omitempty"`
	Status              string     `json:"status"`
	RoutingStatus       string     `json:"routing_status"`
	AssignedStage       *string    `json:"assigned_stage,omitempty"`
	Classification      string     `json:"classification"`
	ClassificationBasis string     `json:"classification_basis"`
	CustomerName        string     `json:"customer_name"`
	CustomerPhone       *string    `json:"customer_phone,omitempty"`
	ItemCount           int        `json:"item_count"`
	TotalAmount         string     `json:"total_amount"`
	PaidAmount          string     `json:"paid_amount"`
	PaymentStatus       string     `json:"payment_status"`
	CreatedAt           time.Time  `json:"created_at"`
	ArrivedAt           *time.Time `json:"arrived_at,omitempty"`
	SortedAt            *time.Time `json:"sorted_at,omitempty"`
	EarliestDeliveryAt  *time.Time `json:"earliest_delivery_at,omitempty"`
	EstimatedReadyAt    *time.Time `json:"estimated_ready_at,omitempty"`
}

// GetOrderSummary handles GET /api/v1/orders/:orderId.
func (s *Server) GetOrderSummary(ctx echo.Context) error {
	orderID, err := pathUUID(ctx, "orderId")
	if err != nil {
		return writeError(ctx, err)
	}

	query, err := queries.NewGetOrderSummaryQuery(orderID)
	if err != nil {
		return writeError(ctx, err)
	}

	summary, err := s.getOrderSummaryHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	response := OrderSummaryResponse{
		ID:                  summary.ID.String(),
		TagNumber:           summary.TagNumber,
		OwningBranchID:      summary.OwningBranchID.String(),
		Status:              summary.Status,
		RoutingStatus:       summary.RoutingStatus,
		AssignedStage:       summary.AssignedStage,
		Classification:      summary.Classification,
		ClassificationBasis: summary.ClassificationBasis,
		CustomerName:        summary.CustomerName,
		CustomerPhone:       summary.CustomerPhone,
		ItemCount:           summary.ItemCount,
		TotalAmount:         summary.TotalAmount.String(),
		PaidAmount:          summary.PaidAmount.String(),
		PaymentStatus:       summary.PaymentStatus,
		CreatedAt:           summary.CreatedAt,
		ArrivedAt:           summary.ArrivedAt,
		SortedAt:            summary.SortedAt,
		EarliestDeliveryAt:  summary.EarliestDeliveryAt,
		EstimatedReadyAt:    summary.EstimatedReadyAt,
	}
	if summary.ProcessingBranchID != nil {
		processingBranchID := summary.ProcessingBranchID.String()
		response.ProcessingBranchID = &processingBranchID
	}

	return ctx.JSON(http.StatusOK, response)
}

// CreateProcessingBatchRequest groups orders into a workstation batch.
type CreateProcessingBatchRequest struct {
	BranchID string   `json:"branch_id"`
	Stage    string   `json:"stage"`
	OrderIDs []string `json:"order_ids"`
	StaffIDs []string `json:"staff_ids,omitempty"`
}

// CreateProcessingBatch handles POST /api/v1/batches.
func (s *Server) CreateProcessingBatch(ctx echo.Context) error {
	var req CreateProcessingBatchRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	branchID, err := kernel.UUIDFromString(req.BranchID)
	if err != nil {
		return writeError(ctx, err)
	}

	stage, err := order.StatusFromString(req.Stage)
	if err != nil {
		return writeError(ctx, err)
	}

	orderIDs, err := parseUUIDs(req.OrderIDs)
	if err != nil {
		return writeError(ctx, err)
	}

	staffIDs, err := parseUUIDs(req.StaffIDs)
	if err != nil {
		return writeError(ctx, err)
	}

	batchID := kernel.NewUUID()
	cmd, err := commands.NewCreateProcessingBatchCommand(batchID, branchID, stage, orderIDs, staffIDs)
	if err != nil {
		return writeError(ctx, err)
	}

	if err = s.createBatchHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, map[string]string{"id": batchID.String()})
}

// StartProcessingBatch handles POST /api/v1/batches/:batchId/start.
func (s *Server) StartProcessingBatch(ctx echo.Context) error {
	batchID, err := pathUUID(ctx, "batchId")
	if err != nil {
		return writeError(ctx, err)
	}

	cmd, err := commands.NewStartProcessingBatchCommand(batchID)
	if err != nil {
		return writeError(ctx, err)
	}

	if err = s.startBatchHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// CompleteProcessingBatchRequest finishes a batch. Failed order ids only
// matter for quality check batches, whose failures return to washing.
type CompleteProcessingBatchRequest struct {
	FailedOrderIDs []string `json:"failed_order_ids,omitempty"`
}

// CompleteProcessingBatch handles POST /api/v1/batches/:batchId/complete.
func (s *Server) CompleteProcessingBatch(ctx echo.Context) error {
	batchID, err := pathUUID(ctx, "batchId")
	if err != nil {
		return writeError(ctx, err)
	}

	var req CompleteProcessingBatchRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	failedOrderIDs, err := parseUUIDs(req.FailedOrderIDs)
	if err != nil {
		return writeError(ctx, err)
	}

	cmd, err := commands.NewCompleteProcessingBatchCommand(batchID, failedOrderIDs)
	if err != nil {
		return writeError(ctx, err)
	}

	if err = s.completeBatchHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// ArriveTransfer handles POST /api/v1/transfers/:batchId/arrive - records a
// transfer run reaching the main store.
func (s *Server) ArriveTransfer(ctx echo.Context) error {
	batchID, err := pathUUID(ctx, "batchId")
	if err != nil {
		return writeError(ctx, err)
	}

	cmd, err := commands.NewArriveTransferCommand(batchID)
	if err != nil {
		return writeError(ctx, err)
	}

	if err = s.arriveTransferHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// BranchMetricsResponse reports workstation depth and routing load for one branch.
type BranchMetricsResponse struct {
	BranchID       string         `json:"branch_id"`
	StageDepths    map[string]int `json:"stage_depths"`
	PendingRouting int            `json:"pending_routing"`
	InTransit      int            `json:"in_transit"`
	ReadyForReturn int            `json:"ready_for_return"`
}

// GetBranchMetrics handles GET /api/v1/branches/:branchId/metrics.
func (s *Server) GetBranchMetrics(ctx echo.Context) error {
	branchID, err := pathUUID(ctx, "branchId")
	if err != nil {
		return writeError(ctx, err)
	}

	query, err := queries.NewGetBranchMetricsQuery(branchID)
	if err != nil {
		return writeError(ctx, err)
	}

	metrics, err := s.getBranchMetricsHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, BranchMetricsResponse{
		BranchID:       metrics.BranchID.String(),
		StageDepths:    metrics.StageDepths,
		PendingRouting: metrics.PendingRouting,
		InTransit:      metrics.InTransit,
		ReadyForReturn: metrics.ReadyForReturn,
	})
}

// Health handles GET /health.
func (s *Server) Health(ctx echo.Context) error {
	return ctx.String(http.StatusOK, "Healthy")
}

func parseUUIDs(raw []string) ([]kernel.UUID, error) {
	ids := make([]kernel.UUID, 0, len(raw))
	for _, value := range raw {
		id, err := kernel.UUIDFromString(value)
		if err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, nil
}
