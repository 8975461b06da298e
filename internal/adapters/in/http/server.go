// Package http exposes the delivery lifecycle over a REST surface. Handlers
// translate JSON requests into commands and queries and map the error
// taxonomy onto HTTP status codes in exactly one place.
package http

import (
	"errors"
	"net/http"

	"dispatch/internal/core/application/usecases/commands"
	"dispatch/internal/core/application/usecases/queries"
	"dispatch/internal/core/domain/model/delivery"
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	createDeliveryHandler commands.CreateDeliveryCommandHandler
	assignCourierHandler  commands.AssignCourierCommandHandler
	markPickedUpHandler   commands.MarkPickedUpCommandHandler
	markDeliveredHandler  commands.MarkDeliveredCommandHandler
	cancelDeliveryHandler commands.CancelDeliveryCommandHandler
	updateStatusHandler   commands.UpdateDeliveryStatusCommandHandler
	deleteDeliveryHandler commands.DeleteDeliveryCommandHandler

	getDeliveryHandler        queries.GetDeliveryQueryHandler
	getDeliveryByOrderHandler queries.GetDeliveryByOrderQueryHandler
	getByStatusHandler        queries.GetDeliveriesByStatusQueryHandler
	courierDeliveriesHandler  queries.GetCourierDeliveriesQueryHandler
	courierAvailableHandler   queries.IsCourierAvailableQueryHandler
	courierStatisticsHandler  queries.GetCourierStatisticsQueryHandler
}

// NewServer creates an HTTP server over the given command and query handlers.
func NewServer(
	createDeliveryHandler commands.CreateDeliveryCommandHandler,
	assignCourierHandler commands.AssignCourierCommandHandler,
	markPickedUpHandler commands.MarkPickedUpCommandHandler,
	markDeliveredHandler commands.MarkDeliveredCommandHandler,
	cancelDeliveryHandler commands.CancelDeliveryCommandHandler,
	updateStatusHandler commands.UpdateDeliveryStatusCommandHandler,
	deleteDeliveryHandler commands.DeleteDeliveryCommandHandler,
	getDeliveryHandler queries.GetDeliveryQueryHandler,
	getDeliveryByOrderHandler queries.GetDeliveryByOrderQueryHandler,
	getByStatusHandler queries.GetDeliveriesByStatusQueryHandler,
	courierDeliveriesHandler queries.GetCourierDeliveriesQueryHandler,
	courierAvailableHandler queries.IsCourierAvailableQueryHandler,
	courierStatisticsHandler queries.GetCourierStatisticsQueryHandler,
) *Server {
	return &Server{
		createDeliveryHandler:     createDeliveryHandler,
		assignCourierHandler:      assignCourierHandler,
		markPickedUpHandler:       markPickedUpHandler,
		markDeliveredHandler:      markDeliveredHandler,
		cancelDeliveryHandler:     cancelDeliveryHandler,
		updateStatusHandler:       updateStatusHandler,
		deleteDeliveryHandler:     deleteDeliveryHandler,
		getDeliveryHandler:        getDeliveryHandler,
		getDeliveryByOrderHandler: getDeliveryByOrderHandler,
		getByStatusHandler:        getByStatusHandler,
		courierDeliveriesHandler:  courierDeliveriesHandler,
		courierAvailableHandler:   courierAvailableHandler,
		courierStatisticsHandler:  courierStatisticsHandler,
	}
}

// RegisterRoutes mounts every delivery route under /api/v1 plus the health
// probe at the root.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", s.Health)

	v1 := e.Group("/api/v1")
	v1.POST("/deliveries", s.CreateDelivery)
	v1.GET("/deliveries/:id", s.GetDelivery)
	v1.GET("/deliveries/order/:orderId", s.GetDeliveryByOrder)
	v1.PUT("/deliveries/:id/assign", s.AssignCourier)
	v1.PUT("/deliveries/:id/pickup", s.MarkPickedUp)
	v1.PUT("/deliveries/:id/deliver", s.MarkDelivered)
	v1.PUT("/deliveries/:id/cancel", s.CancelDelivery)
	v1.PUT("/deliveries/:id/status", s.UpdateDeliveryStatus)
	v1.GET("/deliveries/status/:status", s.GetDeliveriesByStatus)
	v1.GET("/deliveries/courier/:id", s.GetCourierDeliveries)
	v1.GET("/deliveries/courier/:id/active", s.GetCourierActiveDeliveries)
	v1.GET("/deliveries/courier/:id/available", s.IsCourierAvailable)
	v1.GET("/deliveries/courier/:id/statistics", s.GetCourierStatistics)
	v1.DELETE("/deliveries/:id", s.DeleteDelivery)
}

// Health reports service liveness.
func (s *Server) Health(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

// CreateDelivery handles POST /api/v1/deliveries.
func (s *Server) CreateDelivery(ctx echo.Context) error {
	var req CreateDeliveryRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	orderID, err := kernel.UUIDFromString(req.OrderID)
	if err != nil {
		return respondError(ctx, err)
	}

	cmd, err := commands.NewCreateDeliveryCommand(orderID, req.EstimatedFee, req.DistanceKm, req.DeliveryNotes)
	if err != nil {
		return respondError(ctx, err)
	}

	created, err := s.createDeliveryHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, deliveryPayloadFromAggregate(created))
}

// GetDelivery handles GET /api/v1/deliveries/:id.
func (s *Server) GetDelivery(ctx echo.Context) error {
	id, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return respondError(ctx, err)
	}

	query, err := queries.NewGetDeliveryQuery(id)
	if err != nil {
		return respondError(ctx, err)
	}

	resp, err := s.getDeliveryHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, deliveryPayloadFromReadModel(resp))
}

// GetDeliveryByOrder handles GET /api/v1/deliveries/order/:orderId.
func (s *Server) GetDeliveryByOrder(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("orderId"))
	if err != nil {
		return respondError(ctx, err)
	}

	query, err := queries.NewGetDeliveryByOrderQuery(orderID)
	if err != nil {
		return respondError(ctx, err)
	}

	resp, err := s.getDeliveryByOrderHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, deliveryPayloadFromReadModel(resp))
}

// AssignCourier handles PUT /api/v1/deliveries/:id/assign.
func (s *Server) AssignCourier(ctx echo.Context) error {
	deliveryID, courierID, err := s.bindCourierAction(ctx)
	if err != nil {
		return respondError(ctx, err)
	}

	cmd, err := commands.NewAssignCourierCommand(deliveryID, courierID)
	if err != nil {
		return respondError(ctx, err)
	}

	assigned, err := s.assignCourierHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, deliveryPayloadFromAggregate(assigned))
}

// MarkPickedUp handles PUT /api/v1/deliveries/:id/pickup.
func (s *Server) MarkPickedUp(ctx echo.Context) error {
	deliveryID, courierID, err := s.bindCourierAction(ctx)
	if err != nil {
		return respondError(ctx, err)
	}

	cmd, err := commands.NewMarkPickedUpCommand(deliveryID, courierID)
	if err != nil {
		return respondError(ctx, err)
	}

	pickedUp, err := s.markPickedUpHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, deliveryPayloadFromAggregate(pickedUp))
}

// MarkDelivered handles PUT /api/v1/deliveries/:id/deliver.
func (s *Server) MarkDelivered(ctx echo.Context) error {
	deliveryID, courierID, err := s.bindCourierAction(ctx)
	if err != nil {
		return respondError(ctx, err)
	}

	cmd, err := commands.NewMarkDeliveredCommand(deliveryID, courierID)
	if err != nil {
		return respondError(ctx, err)
	}

	delivered, err := s.markDeliveredHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, deliveryPayloadFromAggregate(delivered))
}

// CancelDelivery handles PUT /api/v1/deliveries/:id/cancel.
func (s *Server) CancelDelivery(ctx echo.Context) error {
	deliveryID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return respondError(ctx, err)
	}

	var req CancelRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	cmd, err := commands.NewCancelDeliveryCommand(deliveryID, req.Reason)
	if err != nil {
		return respondError(ctx, err)
	}

	cancelled, err := s.cancelDeliveryHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, deliveryPayloadFromAggregate(cancelled))
}

// UpdateDeliveryStatus handles PUT /api/v1/deliveries/:id/status.
func (s *Server) UpdateDeliveryStatus(ctx echo.Context) error {
	deliveryID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return respondError(ctx, err)
	}

	var req StatusRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	target, err := delivery.StatusFromString(req.Status)
	if err != nil {
		return respondError(ctx, err)
	}

	cmd, err := commands.NewUpdateDeliveryStatusCommand(deliveryID, target)
	if err != nil {
		return respondError(ctx, err)
	}

	updated, err := s.updateStatusHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, deliveryPayloadFromAggregate(updated))
}

// GetDeliveriesByStatus handles GET /api/v1/deliveries/status/:status.
func (s *Server) GetDeliveriesByStatus(ctx echo.Context) error {
	status, err := delivery.StatusFromString(ctx.Param("status"))
	if err != nil {
		return respondError(ctx, err)
	}

	query, err := queries.NewGetDeliveriesByStatusQuery(status)
	if err != nil {
		return respondError(ctx, err)
	}

	result, err := s.getByStatusHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, deliveryPayloadsFromReadModels(result))
}

// GetCourierDeliveries handles GET /api/v1/deliveries/courier/:id.
func (s *Server) GetCourierDeliveries(ctx echo.Context) error {
	courierID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return respondError(ctx, err)
	}

	query, err := queries.NewGetCourierDeliveriesQuery(courierID)
	if err != nil {
		return respondError(ctx, err)
	}

	result, err := s.courierDeliveriesHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, deliveryPayloadsFromReadModels(result))
}

// GetCourierActiveDeliveries handles GET /api/v1/deliveries/courier/:id/active.
func (s *Server) GetCourierActiveDeliveries(ctx echo.Context) error {
	courierID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return respondError(ctx, err)
	}

	query, err := queries.NewGetCourierActiveDeliveriesQuery(courierID)
	if err != nil {
		return respondError(ctx, err)
	}

	result, err := s.courierDeliveriesHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, deliveryPayloadsFromReadModels(result))
}

// IsCourierAvailable handles GET /api/v1/deliveries/courier/:id/available.
func (s *Server) IsCourierAvailable(ctx echo.Context) error {
	courierID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return respondError(ctx, err)
	}

	query, err := queries.NewIsCourierAvailableQuery(courierID)
	if err != nil {
		return respondError(ctx, err)
	}

	available, err := s.courierAvailableHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, CourierAvailabilityPayload{
		CourierID: courierID.String(),
		Available: available,
	})
}

// GetCourierStatistics handles GET /api/v1/deliveries/courier/:id/statistics.
func (s *Server) GetCourierStatistics(ctx echo.Context) error {
	courierID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return respondError(ctx, err)
	}

	query, err := queries.NewGetCourierStatisticsQuery(courierID)
	if err != nil {
		return respondError(ctx, err)
	}

	stats, err := s.courierStatisticsHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, CourierStatisticsPayload{
		CourierID:                  stats.CourierID.String(),
		TotalDeliveries:            stats.TotalDeliveries,
		CompletedDeliveries:        stats.CompletedDeliveries,
		ActiveDeliveries:           stats.ActiveDeliveries,
		CancelledDeliveries:        stats.CancelledDeliveries,
		AverageDeliveryTimeMinutes: stats.AverageDeliveryTimeMinutes,
		TotalEarnings:              stats.TotalEarnings,
		SuccessRate:                stats.SuccessRate,
	})
}

// DeleteDelivery handles DELETE /api/v1/deliveries/:id.
func (s *Server) DeleteDelivery(ctx echo.Context) error {
	deliveryID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return respondError(ctx, err)
	}

	cmd, err := commands.NewDeleteDeliveryCommand(deliveryID)
	if err != nil {
		return respondError(ctx, err)
	}

	if err = s.deleteDeliveryHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusOK)
}

// bindCourierAction extracts the delivery ID path param and the courier ID
// body field shared by the assign, pickup, and deliver routes.
func (s *Server) bindCourierAction(ctx echo.Context) (kernel.UUID, kernel.UUID, error) {
	deliveryID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return kernel.UUID{}, kernel.UUID{}, err
	}

	var req CourierRequest
	if err = ctx.Bind(&req); err != nil {
		return kernel.UUID{}, kernel.UUID{}, errs.NewValueIsInvalidError("request body")
	}

	courierID, err := kernel.UUIDFromString(req.CourierID)
	if err != nil {
		return kernel.UUID{}, kernel.UUID{}, err
	}

	return deliveryID, courierID, nil
}

// respondError maps the error taxonomy onto HTTP status codes:
// not-found → 404, invalid or missing values → 400, state and exclusivity
// violations → 409, everything else → 500.
func respondError(ctx echo.Context, err error) error {
	code := http.StatusInternalServerError

	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		code = http.StatusNotFound
	case errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		code = http.StatusBadRequest
	case errors.Is(err, errs.ErrInvalidState):
		code = http.StatusConflict
	}

	return ctx.JSON(code, ErrorPayload{
		Code:    code,
		Message: err.Error(),
	})
}

func badRequest(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusBadRequest, ErrorPayload{
		Code:    http.StatusBadRequest,
		Message: message,
	})
}
