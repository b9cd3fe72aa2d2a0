package handler

import (
	"time"

	"cornerstore/internal/middleware"
	"cornerstore/internal/server"
	"cornerstore/internal/validation"

	"github.com/labstack/echo/v4"
)

// Handler is the base handler type that holds shared application
// dependencies. Concrete handlers embed it to access config, logger,
// and the database through *server.Server.
type Handler struct {
	server *server.Server
}

// NewHandler constructs a base Handler.
//
// It returns the struct by value; the struct only contains a pointer
// field, so copies are cheap and still point at the same Server.
func NewHandler(s *server.Server) Handler {
	return Handler{server: s}
}

// --- Generic typed handler plumbing -----------------------------------------

// HandlerFunc represents a typed endpoint function that receives a bound
// and validated request payload and returns a response or an error.
//
// Req is a pointer type in practice (e.g. *CreateOrderRequest), because
// echo's Bind needs a pointer to populate fields.
type HandlerFunc[Req validation.Validatable, Res any] func(c echo.Context, req Req) (Res, error)

// HandlerFuncNoContent is a typed endpoint function for routes that
// return no response body (e.g. 204 No Content).
type HandlerFuncNoContent[Req validation.Validatable] func(c echo.Context, req Req) error

// ResponseHandler defines how a successful handler result is written to
// the HTTP response.
type ResponseHandler interface {
	// Handle writes the HTTP response for the given result.
	Handle(c echo.Context, result interface{}) error

	// GetOperation returns an operation name used for structured logging.
	GetOperation() string
}

// JSONResponseHandler writes JSON responses with a given status code.
type JSONResponseHandler struct {
	status int
}

func (h JSONResponseHandler) Handle(c echo.Context, result interface{}) error {
	return c.JSON(h.status, result)
}

func (h JSONResponseHandler) GetOperation() string {
	return "handler"
}

// NoContentResponseHandler writes responses with no body (typically 204).
type NoContentResponseHandler struct {
	status int
}

func (h NoContentResponseHandler) Handle(c echo.Context, result interface{}) error {
	return c.NoContent(h.status)
}

func (h NoContentResponseHandler) GetOperation() string {
	return "handler_no_content"
}

// handleRequest is the shared execution pipeline for all handlers.
//
// It eliminates endpoint boilerplate by centralizing:
//   - request binding + validation
//   - structured logging with the request-scoped logger
//   - timing metrics (validation duration, handler duration, total)
//   - response writing (json / no-content)
func handleRequest[Req validation.Validatable](
	c echo.Context,
	req Req,
	handler func(c echo.Context, req Req) (interface{}, error),
	responseHandler ResponseHandler,
) error {
	start := time.Now()
	method := c.Request().Method
	path := c.Path()

	logger := middleware.GetLogger(c).With().
		Str("operation", responseHandler.GetOperation()).
		Str("method", method).
		Str("route", path).
		Logger()

	logger.Info().Msg("handling request")

	validationStart := time.Now()

	if err := validation.BindAndValidate(c, req); err != nil {
		logger.Error().
			Err(err).
			Dur("validation_duration", time.Since(validationStart)).
			Msg("request validation failed")

		// Return the error so the global error handler formats the response.
		return err
	}

	validationDuration := time.Since(validationStart)

	logger.Debug().
		Dur("validation_duration", validationDuration).
		Msg("request validation successful")

	handlerStart := time.Now()
	result, err := handler(c, req)
	handlerDuration := time.Since(handlerStart)

	if err != nil {
		logger.Error().
			Err(err).
			Dur("handler_duration", handlerDuration).
			Dur("total_duration", time.Since(start)).
			Msg("handler execution failed")
		return err
	}

	logger.Info().
		Dur("handler_duration", handlerDuration).
		Dur("validation_duration", validationDuration).
		Dur("total_duration", time.Since(start)).
		Msg("request completed successfully")

	return responseHandler.Handle(c, result)
}

// Handle wraps a typed handler with binding, validation, error handling,
// logging, and JSON response writing. A fresh request payload is
// allocated per request, so payload types need no reset logic.
//
// Usage pattern:
//
//	r.POST("/x", handler.Handle(h.Handler, h.CreateX, http.StatusCreated))
func Handle[Req any, PReq interface {
	validation.Validatable
	*Req
}, Res any](
	h Handler,
	handler HandlerFunc[PReq, Res],
	status int,
) echo.HandlerFunc {
	return func(c echo.Context) error {
		req := PReq(new(Req))
		return handleRequest(c, req, func(c echo.Context, req PReq) (interface{}, error) {
			return handler(c, req)
		}, JSONResponseHandler{status: status})
	}
}

// HandleNoContent is Handle for endpoints that return no body
// (e.g. DELETE success with 204).
func HandleNoContent[Req any, PReq interface {
	validation.Validatable
	*Req
}](
	h Handler,
	handler HandlerFuncNoContent[PReq],
	status int,
) echo.HandlerFunc {
	return func(c echo.Context) error {
		req := PReq(new(Req))
		return handleRequest(c, req, func(c echo.Context, req PReq) (interface{}, error) {
			err := handler(c, req)
			return nil, err
		}, NoContentResponseHandler{status: status})
	}
}
