package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/valyala/fasthttp"
	"go.uber.org/zap"

	"github.com/wellnest/backend/api/transport"
	"github.com/wellnest/backend/domain"
	"github.com/wellnest/backend/pkg/httpcontext"
)

type baseHandler struct {
	adapter *httpcontext.Adapter
	logger  *zap.Logger
}

func newBaseHandler(adapter *httpcontext.Adapter, logger *zap.Logger) baseHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return baseHandler{adapter: adapter, logger: logger}
}

func (h baseHandler) requestContext(ctx *fasthttp.RequestCtx) (context.Context, context.CancelFunc) {
	if h.adapter != nil {
		return h.adapter.Attach(ctx)
	}
	return context.WithCancel(context.Background())
}

func (h baseHandler) respondJSON(ctx *fasthttp.RequestCtx, status int, payload any) {
	ctx.Response.Header.SetContentType("application/json")
	ctx.SetStatusCode(status)
	body, _ := json.Marshal(payload)
	ctx.SetBody(body)
}

// respondError is the single place a domain error becomes a status code and a
// response body. source names the request segment reported for validation
// errors that escaped the middleware (defense in depth in the use cases).
func (h baseHandler) respondError(ctx *fasthttp.RequestCtx, source string, err error) {
	var dErr *domain.Error
	if errors.As(err, &dErr) {
		switch dErr.Code {
		case domain.ErrCodeValidation:
			var keys []string
			if dErr.Field != "" {
				keys = []string{dErr.Field}
			}
			h.respondJSON(ctx, http.StatusBadRequest, transport.NewValidationResponse(source, keys, dErr.Message))
			return
		case domain.ErrCodeModelValidation:
			h.respondJSON(ctx, http.StatusUnprocessableEntity, transport.MessageResponse{Message: dErr.Message})
			return
		case domain.ErrCodeInvalidCredentials, domain.ErrCodeUnauthorized:
			h.respondJSON(ctx, http.StatusUnauthorized, transport.MessageResponse{Message: dErr.Message})
			return
		}
	}

	// Unmapped errors (including unknown constraint conflicts) are logged with
	// full detail and never leaked to the caller.
	h.logger.Error("unhandled error", zap.String("path", string(ctx.Path())), zap.Error(err))
	h.respondJSON(ctx, http.StatusInternalServerError, transport.MessageResponse{Message: "Internal Server Error"})
}

func (h baseHandler) badRequestBody(ctx *fasthttp.RequestCtx) {
	h.respondJSON(ctx, http.StatusBadRequest, transport.NewValidationResponse("body", nil, "invalid JSON payload"))
}
