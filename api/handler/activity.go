package handler

import (
	"net/http"

	"github.com/valyala/fasthttp"
	"go.uber.org/zap"

	"github.com/wellnest/backend/domain"
	"github.com/wellnest/backend/pkg/httpcontext"
	activityUC "github.com/wellnest/backend/usecase/activity"
)

type ActivityHandler struct {
	baseHandler
	uc *activityUC.UseCase
}

func NewActivityHandler(uc *activityUC.UseCase, adapter *httpcontext.Adapter, logger *zap.Logger) *ActivityHandler {
	return &ActivityHandler{
		baseHandler: newBaseHandler(adapter, logger),
		uc:          uc,
	}
}

// @Summary List the active activity catalog
// @Tags activities
// @Router /api/v1/activities [get]
func (h *ActivityHandler) List(ctx *fasthttp.RequestCtx) {
	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	activities, err := h.uc.List(stdCtx)
	if err != nil {
		h.respondError(ctx, "query", err)
		return
	}
	if activities == nil {
		activities = []domain.Activity{}
	}
	h.respondJSON(ctx, http.StatusOK, activities)
}
