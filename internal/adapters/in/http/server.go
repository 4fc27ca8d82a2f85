// Package http exposes the ordering core over an echo HTTP server. Caller
// identity arrives in headers set by the upstream auth layer; handlers
// translate bodies into commands and queries and domain errors into status
// codes.
package http

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"foodbank/internal/core/application/usecases/commands"
	"foodbank/internal/core/application/usecases/queries"
	"foodbank/internal/core/domain/model/kernel"
)

const dateParamLayout = "2006-01-02"

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	createOrderHandler      commands.CreateOrderCommandHandler
	approveOrderHandler     commands.ApproveOrderCommandHandler
	modifyOrderHandler      commands.ModifyOrderCommandHandler
	adminModifyOrderHandler commands.ModifyAndApproveOrderCommandHandler
	rejectOrderHandler      commands.RejectOrderCommandHandler
	cancelOrderHandler      commands.CancelOrderCommandHandler

	// Query handlers
	getOrderHandler              queries.GetOrderQueryHandler
	getAllOrdersHandler          queries.GetAllOrdersQueryHandler
	getOrganizationOrdersHandler queries.GetOrganizationOrdersQueryHandler
	getAvailableSlotsHandler     queries.GetAvailableSlotsQueryHandler
	getPickSheetHandler          queries.GetPickSheetQueryHandler
}

// NewServer creates an HTTP server with the required command and query
// handlers.
func NewServer(
	createOrderHandler commands.CreateOrderCommandHandler,
	approveOrderHandler commands.ApproveOrderCommandHandler,
	modifyOrderHandler commands.ModifyOrderCommandHandler,
	adminModifyOrderHandler commands.ModifyAndApproveOrderCommandHandler,
	rejectOrderHandler commands.RejectOrderCommandHandler,
	cancelOrderHandler commands.CancelOrderCommandHandler,
	getOrderHandler queries.GetOrderQueryHandler,
	getAllOrdersHandler queries.GetAllOrdersQueryHandler,
	getOrganizationOrdersHandler queries.GetOrganizationOrdersQueryHandler,
	getAvailableSlotsHandler queries.GetAvailableSlotsQueryHandler,
	getPickSheetHandler queries.GetPickSheetQueryHandler,
) *Server {
	return &Server{
		createOrderHandler:           createOrderHandler,
		approveOrderHandler:          approveOrderHandler,
		modifyOrderHandler:           modifyOrderHandler,
		adminModifyOrderHandler:      adminModifyOrderHandler,
		rejectOrderHandler:           rejectOrderHandler,
		cancelOrderHandler:           cancelOrderHandler,
		getOrderHandler:              getOrderHandler,
		getAllOrdersHandler:          getAllOrdersHandler,
		getOrganizationOrdersHandler: getOrganizationOrdersHandler,
		getAvailableSlotsHandler:     getAvailableSlotsHandler,
		getPickSheetHandler:          getPickSheetHandler,
	}
}

// RegisterRoutes mounts all routes on the echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", s.Health)

	api := e.Group("/api")
	api.POST("/orders", s.CreateOrder)
	api.GET("/orders", s.GetOrders)
	api.GET("/orders/:id", s.GetOrder)
	api.GET("/organizations/:org/orders", s.GetOrganizationOrders)
	api.PUT("/orders/:id/approve", s.ApproveOrder)
	api.PUT("/orders/:id/modify", s.ModifyOrder)
	api.PUT("/orders/:id/admin/modify", s.AdminModifyOrder)
	api.PUT("/orders/:id/reject", s.RejectOrder)
	api.PUT("/orders/:id/cancel", s.CancelOrder)
	api.GET("/slots", s.GetAvailableSlots)
	api.GET("/picksheet", s.GetPickSheet)
}

// Health handles GET /health.
func (s *Server) Health(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, map[string]string{"status": "healthy"})
}

// CreateOrder handles POST /api/orders - submits a new order.
func (s *Server) CreateOrder(ctx echo.Context) error {
	actor, err := actorFromRequest(ctx)
	if err != nil {
		return respondError(ctx, err)
	}

	var request CreateOrderRequest
	if err = ctx.Bind(&request); err != nil {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	goods, err := request.goods()
	if err != nil {
		return respondError(ctx, err)
	}

	cmd, err := commands.NewCreateOrderCommand(
		actor,
		request.Organization,
		request.advanced(),
		goods,
		toLineItems(request.RetailRescue),
		request.Comment,
		request.Pickup,
	)
	if err != nil {
		return respondError(ctx, err)
	}

	orderID, err := s.createOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, CreatedResponse{ID: orderID.String()})
}

// GetOrders handles GET /api/orders - retrieves all orders for staff.
func (s *Server) GetOrders(ctx echo.Context) error {
	actor, err := actorFromRequest(ctx)
	if err != nil {
		return respondError(ctx, err)
	}

	orders, err := s.getAllOrdersHandler.Handle(ctx.Request().Context(), queries.NewGetAllOrdersQuery(actor))
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, orders)
}

// GetOrder handles GET /api/orders/:id - retrieves a single order.
func (s *Server) GetOrder(ctx echo.Context) error {
	actor, err := actorFromRequest(ctx)
	if err != nil {
		return respondError(ctx, err)
	}

	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return respondError(ctx, err)
	}

	query, err := queries.NewGetOrderQuery(actor, orderID)
	if err != nil {
		return respondError(ctx, err)
	}

	response, err := s.getOrderHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetOrganizationOrders handles GET /api/organizations/:org/orders -
// retrieves one partner's order history.
func (s *Server) GetOrganizationOrders(ctx echo.Context) error {
	actor, err := actorFromRequest(ctx)
	if err != nil {
		return respondError(ctx, err)
	}

	query, err := queries.NewGetOrganizationOrdersQuery(actor, ctx.Param("org"))
	if err != nil {
		return respondError(ctx, err)
	}

	orders, err := s.getOrganizationOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, orders)
}

// ApproveOrder handles PUT /api/orders/:id/approve - staff approval.
func (s *Server) ApproveOrder(ctx echo.Context) error {
	actor, err := actorFromRequest(ctx)
	if err != nil {
		return respondError(ctx, err)
	}

	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return respondError(ctx, err)
	}

	cmd, err := commands.NewApproveOrderCommand(actor, orderID)
	if err != nil {
		return respondError(ctx, err)
	}

	warning, err := s.approveOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, DecisionResponse{Warning: warning})
}

// ModifyOrder handles PUT /api/orders/:id/modify - partner edit of a
// pending order.
func (s *Server) ModifyOrder(ctx echo.Context) error {
	actor, err := actorFromRequest(ctx)
	if err != nil {
		return respondError(ctx, err)
	}

	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return respondError(ctx, err)
	}

	var request ModifyOrderRequest
	if err = ctx.Bind(&request); err != nil {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	changes, err := request.toChanges()
	if err != nil {
		return respondError(ctx, err)
	}

	cmd, err := commands.NewModifyOrderCommand(actor, orderID, changes)
	if err != nil {
		return respondError(ctx, err)
	}

	if err = s.modifyOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, DecisionResponse{})
}

// AdminModifyOrder handles PUT /api/orders/:id/admin/modify - staff edit
// plus approval in one step.
func (s *Server) AdminModifyOrder(ctx echo.Context) error {
	actor, err := actorFromRequest(ctx)
	if err != nil {
		return respondError(ctx, err)
	}

	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return respondError(ctx, err)
	}

	var request ModifyOrderRequest
	if err = ctx.Bind(&request); err != nil {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	changes, err := request.toChanges()
	if err != nil {
		return respondError(ctx, err)
	}

	cmd, err := commands.NewModifyAndApproveOrderCommand(actor, orderID, changes)
	if err != nil {
		return respondError(ctx, err)
	}

	warning, err := s.adminModifyOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, DecisionResponse{Warning: warning})
}

// RejectOrder handles PUT /api/orders/:id/reject - staff rejection.
func (s *Server) RejectOrder(ctx echo.Context) error {
	actor, err := actorFromRequest(ctx)
	if err != nil {
		return respondError(ctx, err)
	}

	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return respondError(ctx, err)
	}

	cmd, err := commands.NewRejectOrderCommand(actor, orderID)
	if err != nil {
		return respondError(ctx, err)
	}

	warning, err := s.rejectOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, DecisionResponse{Warning: warning})
}

// CancelOrder handles PUT /api/orders/:id/cancel - partner withdrawal.
func (s *Server) CancelOrder(ctx echo.Context) error {
	actor, err := actorFromRequest(ctx)
	if err != nil {
		return respondError(ctx, err)
	}

	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return respondError(ctx, err)
	}

	cmd, err := commands.NewCancelOrderCommand(actor, orderID)
	if err != nil {
		return respondError(ctx, err)
	}

	if err = s.cancelOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, DecisionResponse{})
}

// GetAvailableSlots handles GET /api/slots - the open pickup slots of the
// booking window. An optional "editing" parameter names an order being
// rescheduled so its own slot stays on offer.
func (s *Server) GetAvailableSlots(ctx echo.Context) error {
	actor, err := actorFromRequest(ctx)
	if err != nil {
		return respondError(ctx, err)
	}

	var editing *kernel.UUID
	if raw := ctx.QueryParam("editing"); raw != "" {
		editingID, idErr := kernel.UUIDFromString(raw)
		if idErr != nil {
			return respondError(ctx, idErr)
		}
		editing = &editingID
	}

	query, err := queries.NewGetAvailableSlotsQuery(actor, editing)
	if err != nil {
		return respondError(ctx, err)
	}

	slots, err := s.getAvailableSlotsHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, slots)
}

// GetPickSheet handles GET /api/picksheet?start=&end= - the warehouse pick
// sheet for an inclusive date range.
func (s *Server) GetPickSheet(ctx echo.Context) error {
	actor, err := actorFromRequest(ctx)
	if err != nil {
		return respondError(ctx, err)
	}

	start, err := time.ParseInLocation(dateParamLayout, ctx.QueryParam("start"), time.Local)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    http.StatusBadRequest,
			Message: "start must be a date formatted as " + dateParamLayout,
		})
	}

	end, err := time.ParseInLocation(dateParamLayout, ctx.QueryParam("end"), time.Local)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    http.StatusBadRequest,
			Message: "end must be a date formatted as " + dateParamLayout,
		})
	}

	query, err := queries.NewGetPickSheetQuery(actor, start, end)
	if err != nil {
		return respondError(ctx, err)
	}

	sheet, err := s.getPickSheetHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, sheet)
}
