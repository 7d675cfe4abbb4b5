package runtick

import (
	"errors"
	"net/http"
	e "orderping/internal/core/domain/errors"
	"orderping/internal/core/domain/ratelimiter"
	"orderping/internal/core/services"
	service "orderping/internal/core/services/reconcile_reminders"
	"orderping/internal/http/handlers/response"
)

type Handler struct {
	service services.Service[service.Input, service.Result]
}

func New(
	service services.Service[service.Input, service.Result],
) *Handler {
	if service == nil {
		panic(e.NewNilArgumentError("service"))
	}
	return &Handler{service: service}
}

type Result struct {
	Success        bool `json:"success"`
	ProcessedCount int  `json:"processedCount"`
}

func (h *Handler) ServeHTTP(rw http.ResponseWriter, r *http.Request) {
	result, err := h.service.Run(r.Context(), service.Input{})
	if err != nil {
		switch {
		case errors.Is(err, ratelimiter.ErrRateLimitExceeded):
			response.RenderRateLimitExceeded(rw)
		default:
			response.RenderInternalError(rw)
		}
		return
	}

	response.Render(rw, Result{Success: true, ProcessedCount: result.ProcessedCount}, http.StatusOK)
}
