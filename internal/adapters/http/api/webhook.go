// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"encoding/json"
	"errors"
	"net/http"

	service "github.com/AsMaNick/RatingCalculator/internal/app"
	"github.com/AsMaNick/RatingCalculator/internal/domain/model"
	"github.com/AsMaNick/RatingCalculator/pkg/metrics"
)

// WebhookHandler handles contest payload deliveries.
type WebhookHandler struct {
	deps WebhookDependencies
}

// NewWebhookHandler creates a new webhook handler.
func NewWebhookHandler(deps WebhookDependencies) *WebhookHandler {
	return &WebhookHandler{deps: deps}
}

// HandlePostWebhook handles POST /webhook requests. Processing is
// synchronous: the response reports whether the payload was applied or
// recognized as a re-delivery.
func (h *WebhookHandler) HandlePostWebhook(w http.ResponseWriter, r *http.Request) {
	const op = "api.post_webhook"
	if r.Method != http.MethodPost {
		http.NotFound(w, r)
		return
	}
	var p model.Payload
	if err := json.NewDecoder(r.Body).Decode(&p); err != nil {
		metrics.RecordPayloadMalformed()
		writeError(w, http.StatusBadRequest, "bad_request", WrapKind(op, ErrBadRequest, err))
		return
	}
	if err := p.Validate(); err != nil {
		metrics.RecordPayloadMalformed()
		writeError(w, http.StatusBadRequest, "bad_request", WrapKind(op, ErrBadRequest, err))
		return
	}

	outcome, err := h.deps.Handle(r.Context(), p)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrLockTimeout):
			writeError(w, http.StatusServiceUnavailable, "busy", WrapKind(op, ErrBusy, err))
		case errors.Is(err, service.ErrUnknownAction):
			writeError(w, http.StatusBadRequest, "bad_request", WrapKind(op, ErrBadRequest, err))
		default:
			writeError(w, http.StatusInternalServerError, "internal_error", Wrap(op, err))
		}
		return
	}

	if outcome == service.OutcomeDuplicate {
		writeJSON(w, http.StatusOK, ackResponse{Status: "duplicate", Duplicate: true})
		return
	}
	writeJSON(w, http.StatusOK, ackResponse{Status: "processed", Duplicate: false})
}
