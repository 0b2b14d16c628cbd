package http

import (
	"math"
	"net/http"
	"time"

	"dispatch/internal/core/application/usecases/commands"
	"dispatch/internal/core/application/usecases/queries"
	"dispatch/internal/core/ports"

	"github.com/labstack/echo/v4"
)

// maxDelaySeconds keeps delay*time.Second within time.Duration.
const maxDelaySeconds = math.MaxInt64 / int64(time.Second)

// Server handles the REST API. It coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	scheduleOrderHandler commands.ScheduleOrderCommandHandler

	// Query handlers
	getDeliveriesHandler    queries.GetDeliveriesQueryHandler
	getPendingOrdersHandler queries.GetPendingOrdersQueryHandler

	clock ports.Clock
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	scheduleOrderHandler commands.ScheduleOrderCommandHandler,
	getDeliveriesHandler queries.GetDeliveriesQueryHandler,
	getPendingOrdersHandler queries.GetPendingOrdersQueryHandler,
	clock ports.Clock,
) *Server {
	return &Server{
		scheduleOrderHandler:    scheduleOrderHandler,
		getDeliveriesHandler:    getDeliveriesHandler,
		getPendingOrdersHandler: getPendingOrdersHandler,
		clock:                   clock,
	}
}

// RegisterHandlers mounts the API, the health probe and, when metrics is non-nil,
// the Prometheus scrape endpoint.
func RegisterHandlers(e *echo.Echo, s *Server, metrics http.Handler) {
	e.GET("/health", s.Health)
	e.POST("/api/v1/orders", s.ScheduleOrder)
	e.GET("/api/v1/orders/pending", s.GetPendingOrders)
	e.GET("/api/v1/deliveries", s.GetDeliveries)
	if metrics != nil {
		e.GET("/metrics", echo.WrapHandler(metrics))
	}
}

// Health handles GET /health.
func (s *Server) Health(ctx echo.Context) error {
	return ctx.String(http.StatusOK, "Healthy")
}

// ScheduleOrder handles POST /api/v1/orders - queues an order for dispatch after its delay.
func (s *Server) ScheduleOrder(ctx echo.Context) error {
	var newOrder NewOrder
	if err := ctx.Bind(&newOrder); err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	if newOrder.Delay == nil || *newOrder.Delay < 0 || int64(*newOrder.Delay) > maxDelaySeconds {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid order data: delay must be a non-negative number of seconds",
		})
	}

	dueAt := s.clock.Now().Add(time.Duration(*newOrder.Delay) * time.Second)
	cmd, err := commands.NewScheduleOrderCommand(newOrder.Name, dueAt)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid order data: " + err.Error(),
		})
	}

	if handleErr := s.scheduleOrderHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return ctx.JSON(http.StatusServiceUnavailable, Error{
			Code:    http.StatusServiceUnavailable,
			Message: "Failed to schedule order",
		})
	}

	return ctx.JSON(http.StatusCreated, ScheduledOrder{Name: cmd.Name(), DueAt: cmd.DueAt()})
}

// GetPendingOrders handles GET /api/v1/orders/pending - reports orders not yet dispatched.
func (s *Server) GetPendingOrders(ctx echo.Context) error {
	pending, err := s.getPendingOrdersHandler.Handle(ctx.Request().Context(), queries.NewGetPendingOrdersQuery())
	if err != nil {
		return ctx.JSON(http.StatusInternalServerError, Error{
			Code:    http.StatusInternalServerError,
			Message: "Failed to count pending orders",
		})
	}

	return ctx.JSON(http.StatusOK, PendingOrders{Pending: pending})
}

// GetDeliveries handles GET /api/v1/deliveries - retrieves every tracked delivery.
func (s *Server) GetDeliveries(ctx echo.Context) error {
	deliveries, err := s.getDeliveriesHandler.Handle(ctx.Request().Context(), queries.NewGetDeliveriesQuery())
	if err != nil {
		return ctx.JSON(http.StatusInternalServerError, Error{
			Code:    http.StatusInternalServerError,
			Message: "Failed to retrieve deliveries",
		})
	}

	response := make([]Delivery, len(deliveries))
	for i, d := range deliveries {
		response[i] = Delivery{
			TrackingId: d.TrackingID.Bytes(),
			Provider:   d.Provider.String(),
			Status:     d.Status.String(),
			UpdatedAt:  d.UpdatedAt,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}
