package admin

import (
	"log/slog"
	"net/http"

	"github.com/dukerupert/vanir/internal/handler"
	"github.com/dukerupert/vanir/internal/service"
	"github.com/dukerupert/vanir/internal/telemetry"
)

// ReviewHandler serves review moderation.
type ReviewHandler struct {
	reviews service.ReviewService
	metrics *telemetry.BusinessMetrics
	logger  *slog.Logger
}

func NewReviewHandler(reviews service.ReviewService, metrics *telemetry.BusinessMetrics, logger *slog.Logger) *ReviewHandler {
	return &ReviewHandler{
		reviews: reviews,
		metrics: metrics,
		logger:  logger,
	}
}

type approvalRequest struct {
	Approved bool `json:"approved"`
}

// SetApproval handles PUT /admin/reviews/{id}/approval
func (h *ReviewHandler) SetApproval(w http.ResponseWriter, r *http.Request) {
	reviewID, err := handler.PathUUID(r, "id")
	if err != nil {
		handler.RespondError(w, r, err)
		return
	}

	var req approvalRequest
	if err := handler.Decode(w, r, &req); err != nil {
		handler.RespondError(w, r, err)
		return
	}

	if err := h.reviews.SetApproval(r.Context(), reviewID, req.Approved); err != nil {
		handler.RespondError(w, r, err)
		return
	}

	if req.Approved {
		h.metrics.ReviewsApproved.Inc()
	}
	h.logger.Info("review moderated", "review_id", handler.UUIDString(reviewID), "approved", req.Approved)
	w.WriteHeader(http.StatusNoContent)
}

// Delete handles DELETE /admin/reviews/{id}
func (h *ReviewHandler) Delete(w http.ResponseWriter, r *http.Request) {
	reviewID, err := handler.PathUUID(r, "id")
	if err != nil {
		handler.RespondError(w, r, err)
		return
	}

	if err := h.reviews.DeleteReview(r.Context(), reviewID); err != nil {
		handler.RespondError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
