package handler

import (
	"encoding/json"
	"net/http"

	"github.com/valyala/fasthttp"
	"go.uber.org/zap"

	"github.com/wellnest/backend/api/transport"
	"github.com/wellnest/backend/domain"
	"github.com/wellnest/backend/pkg/httpcontext"
	uaUC "github.com/wellnest/backend/usecase/useractivity"
)

type UserActivityHandler struct {
	baseHandler
	uc *uaUC.UseCase
}

func NewUserActivityHandler(uc *uaUC.UseCase, adapter *httpcontext.Adapter, logger *zap.Logger) *UserActivityHandler {
	return &UserActivityHandler{
		baseHandler: newBaseHandler(adapter, logger),
		uc:          uc,
	}
}

// @Summary Track an activity
// @Tags user-activities
// @Router /api/v1/user-activities [post]
func (h *UserActivityHandler) Create(ctx *fasthttp.RequestCtx) {
	var req transport.CreateUserActivityRequest
	if err := json.Unmarshal(ctx.PostBody(), &req); err != nil {
		h.badRequestBody(ctx)
		return
	}

	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	created, err := h.uc.Track(stdCtx, req.UserID, req.ActivityID, req.Status)
	if err != nil {
		h.respondError(ctx, "body", err)
		return
	}
	h.respondJSON(ctx, http.StatusCreated, created)
}

// @Summary Update tracking status
// @Tags user-activities
// @Router /api/v1/user-activities/{id} [patch]
func (h *UserActivityHandler) UpdateStatus(ctx *fasthttp.RequestCtx) {
	id, _ := ctx.UserValue("id").(string)

	var req transport.UpdateUserActivityStatusRequest
	if err := json.Unmarshal(ctx.PostBody(), &req); err != nil {
		h.badRequestBody(ctx)
		return
	}

	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	updated, err := h.uc.UpdateStatus(stdCtx, id, req.Status)
	if err != nil {
		h.respondError(ctx, "body", err)
		return
	}
	h.respondJSON(ctx, http.StatusOK, updated)
}

// @Summary List tracked activities with catalog details
// @Tags user-activities
// @Router /api/v1/user-activities [get]
func (h *UserActivityHandler) List(ctx *fasthttp.RequestCtx) {
	userID := string(ctx.QueryArgs().Peek("user_id"))
	status := string(ctx.QueryArgs().Peek("status"))

	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	details, err := h.uc.ListDetails(stdCtx, userID, status)
	if err != nil {
		h.respondError(ctx, "query", err)
		return
	}
	if details == nil {
		details = []domain.UserActivityDetail{}
	}
	h.respondJSON(ctx, http.StatusOK, details)
}
