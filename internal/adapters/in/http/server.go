// Package http exposes the negotiation engine over a JSON API built on echo.
// Handlers translate payloads into guarded commands and queries, and map the
// core's error taxonomy onto HTTP status codes: validation failures are 400
// or 422, lost races are 409, missing objects are 404 and store trouble is
// 503.
package http

import (
	"errors"
	"net/http"

	"matching/internal/core/application/usecases/commands"
	"matching/internal/core/application/usecases/queries"
	"matching/internal/core/domain/model/kernel"
	"matching/internal/core/domain/services"
	"matching/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	createRequestHandler commands.CreateRequestCommandHandler
	submitOfferHandler   commands.SubmitOfferCommandHandler
	counterOfferHandler  commands.CounterOfferCommandHandler
	acceptOfferHandler   commands.AcceptOfferCommandHandler
	rejectOfferHandler   commands.RejectOfferCommandHandler
	withdrawOfferHandler commands.WithdrawOfferCommandHandler
	cancelRequestHandler commands.CancelRequestCommandHandler

	getRequestOffersHandler queries.GetRequestOffersQueryHandler
	getCourierStatsHandler  queries.GetCourierStatsQueryHandler
}

// NewServer creates an HTTP server with the required command and query handlers.
func NewServer(
	createRequestHandler commands.CreateRequestCommandHandler,
	submitOfferHandler commands.SubmitOfferCommandHandler,
	counterOfferHandler commands.CounterOfferCommandHandler,
	acceptOfferHandler commands.AcceptOfferCommandHandler,
	rejectOfferHandler commands.RejectOfferCommandHandler,
	withdrawOfferHandler commands.WithdrawOfferCommandHandler,
	cancelRequestHandler commands.CancelRequestCommandHandler,
	getRequestOffersHandler queries.GetRequestOffersQueryHandler,
	getCourierStatsHandler queries.GetCourierStatsQueryHandler,
) *Server {
	return &Server{
		createRequestHandler:    createRequestHandler,
		submitOfferHandler:      submitOfferHandler,
		counterOfferHandler:     counterOfferHandler,
		acceptOfferHandler:      acceptOfferHandler,
		rejectOfferHandler:      rejectOfferHandler,
		withdrawOfferHandler:    withdrawOfferHandler,
		cancelRequestHandler:    cancelRequestHandler,
		getRequestOffersHandler: getRequestOffersHandler,
		getCourierStatsHandler:  getCourierStatsHandler,
	}
}

// RegisterRoutes binds every endpoint on the given echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	api := e.Group("/api/v1")

	api.POST("/requests", s.CreateRequest)
	api.POST("/requests/:requestId/offers", s.SubmitOffer)
	api.POST("/requests/:requestId/offers/:offerId/accept", s.AcceptOffer)
	api.POST("/requests/:requestId/cancel", s.CancelRequest)
	api.GET("/requests/:requestId/offers", s.GetRequestOffers)

	api.POST("/offers/:offerId/counter", s.CounterOffer)
	api.POST("/offers/:offerId/reject", s.RejectOffer)
	api.POST("/offers/:offerId/withdraw", s.WithdrawOffer)

	api.GET("/couriers/:courierId/stats", s.GetCourierStats)

	e.GET("/health", s.Health)
}

// Health handles GET /health.
func (s *Server) Health(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

// CreateRequest handles POST /api/v1/requests.
func (s *Server) CreateRequest(ctx echo.Context) error {
	var body CreateRequest
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	customerID, err := kernel.UUIDFromString(body.CustomerID)
	if err != nil {
		return badRequest(ctx, "Invalid customer id: "+err.Error())
	}

	requestID := kernel.NewUUID()
	cmd, err := commands.NewCreateRequestCommand(
		requestID, customerID,
		body.PickupAddress, body.DropoffAddress, body.ItemDescription,
		body.ValidUntil,
	)
	if err != nil {
		return badRequest(ctx, "Invalid request data: "+err.Error())
	}

	if err = s.createRequestHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, Created{ID: requestID.String()})
}

// SubmitOffer handles POST /api/v1/requests/:requestId/offers.
func (s *Server) SubmitOffer(ctx echo.Context) error {
	requestID, err := kernel.UUIDFromString(ctx.Param("requestId"))
	if err != nil {
		return badRequest(ctx, "Invalid request id")
	}

	var body SubmitOffer
	if err = ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	courierID, err := kernel.UUIDFromString(body.CourierID)
	if err != nil {
		return badRequest(ctx, "Invalid courier id: "+err.Error())
	}

	terms, err := body.Terms.toDomain()
	if err != nil {
		return badRequest(ctx, "Invalid offer terms: "+err.Error())
	}

	offerID := kernel.NewUUID()
	cmd, err := commands.NewSubmitOfferCommand(offerID, requestID, courierID, terms, body.ValidUntil)
	if err != nil {
		return badRequest(ctx, "Invalid offer data: "+err.Error())
	}

	if err = s.submitOfferHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, Created{ID: offerID.String()})
}

// CounterOffer handles POST /api/v1/offers/:offerId/counter.
func (s *Server) CounterOffer(ctx echo.Context) error {
	originalOfferID, err := kernel.UUIDFromString(ctx.Param("offerId"))
	if err != nil {
		return badRequest(ctx, "Invalid offer id")
	}

	var body CounterOffer
	if err = ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	courierID, err := kernel.UUIDFromString(body.CourierID)
	if err != nil {
		return badRequest(ctx, "Invalid courier id: "+err.Error())
	}

	terms, err := body.Terms.toDomain()
	if err != nil {
		return badRequest(ctx, "Invalid offer terms: "+err.Error())
	}

	offerID := kernel.NewUUID()
	cmd, err := commands.NewCounterOfferCommand(
		offerID, originalOfferID, courierID, terms, body.ValidUntil)
	if err != nil {
		return badRequest(ctx, "Invalid counter-offer data: "+err.Error())
	}

	if err = s.counterOfferHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, Created{ID: offerID.String()})
}

// AcceptOffer handles POST /api/v1/requests/:requestId/offers/:offerId/accept.
func (s *Server) AcceptOffer(ctx echo.Context) error {
	requestID, err := kernel.UUIDFromString(ctx.Param("requestId"))
	if err != nil {
		return badRequest(ctx, "Invalid request id")
	}

	offerID, err := kernel.UUIDFromString(ctx.Param("offerId"))
	if err != nil {
		return badRequest(ctx, "Invalid offer id")
	}

	cmd, err := commands.NewAcceptOfferCommand(requestID, offerID)
	if err != nil {
		return badRequest(ctx, "Invalid accept data: "+err.Error())
	}

	if err = s.acceptOfferHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusOK)
}

// RejectOffer handles POST /api/v1/offers/:offerId/reject.
func (s *Server) RejectOffer(ctx echo.Context) error {
	offerID, err := kernel.UUIDFromString(ctx.Param("offerId"))
	if err != nil {
		return badRequest(ctx, "Invalid offer id")
	}

	var body WithReason
	if err = ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewRejectOfferCommand(offerID, body.Reason)
	if err != nil {
		return badRequest(ctx, "Invalid reject data: "+err.Error())
	}

	if err = s.rejectOfferHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusOK)
}

// WithdrawOffer handles POST /api/v1/offers/:offerId/withdraw.
func (s *Server) WithdrawOffer(ctx echo.Context) error {
	offerID, err := kernel.UUIDFromString(ctx.Param("offerId"))
	if err != nil {
		return badRequest(ctx, "Invalid offer id")
	}

	var body WithReason
	if err = ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewWithdrawOfferCommand(offerID, body.Reason)
	if err != nil {
		return badRequest(ctx, "Invalid withdraw data: "+err.Error())
	}

	if err = s.withdrawOfferHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusOK)
}

// CancelRequest handles POST /api/v1/requests/:requestId/cancel.
func (s *Server) CancelRequest(ctx echo.Context) error {
	requestID, err := kernel.UUIDFromString(ctx.Param("requestId"))
	if err != nil {
		return badRequest(ctx, "Invalid request id")
	}

	cmd, err := commands.NewCancelRequestCommand(requestID)
	if err != nil {
		return badRequest(ctx, "Invalid cancel data: "+err.Error())
	}

	if err = s.cancelRequestHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusOK)
}

// GetRequestOffers handles GET /api/v1/requests/:requestId/offers.
func (s *Server) GetRequestOffers(ctx echo.Context) error {
	requestID, err := kernel.UUIDFromString(ctx.Param("requestId"))
	if err != nil {
		return badRequest(ctx, "Invalid request id")
	}

	query, err := queries.NewGetRequestOffersQuery(requestID)
	if err != nil {
		return badRequest(ctx, "Invalid query: "+err.Error())
	}

	offers, err := s.getRequestOffersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	response := make([]Offer, len(offers))
	for i, o := range offers {
		response[i] = toOfferDTO(o)
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetCourierStats handles GET /api/v1/couriers/:courierId/stats.
func (s *Server) GetCourierStats(ctx echo.Context) error {
	courierID, err := kernel.UUIDFromString(ctx.Param("courierId"))
	if err != nil {
		return badRequest(ctx, "Invalid courier id")
	}

	query, err := queries.NewGetCourierStatsQuery(courierID)
	if err != nil {
		return badRequest(ctx, "Invalid query: "+err.Error())
	}

	stats, err := s.getCourierStatsHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, CourierStats{
		CourierID:         stats.CourierID.String(),
		AcceptedCount:     stats.AcceptedCount,
		TerminalCount:     stats.TerminalCount,
		AverageResponseMs: stats.AverageResponseMs,
	})
}

func badRequest(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusBadRequest, Error{
		Code:    http.StatusBadRequest,
		Message: message,
	})
}

// writeError maps a use-case error onto an HTTP response. Business
// validation rejections are 422 to distinguish them from malformed input.
func writeError(ctx echo.Context, err error) error {
	var code int
	switch {
	case errors.Is(err, services.ErrValidation):
		code = http.StatusUnprocessableEntity
	case errors.Is(err, commands.ErrConflict):
		code = http.StatusConflict
	case errors.Is(err, errs.ErrObjectNotFound):
		code = http.StatusNotFound
	case errors.Is(err, commands.ErrStoreUnavailable):
		code = http.StatusServiceUnavailable
	case errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		code = http.StatusBadRequest
	default:
		code = http.StatusInternalServerError
	}

	return ctx.JSON(code, Error{
		Code:    code,
		Message: err.Error(),
	})
}
