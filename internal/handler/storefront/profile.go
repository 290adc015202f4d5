package storefront

import (
	"log/slog"
	"net/http"

	"github.com/dukerupert/vanir/internal/handler"
	"github.com/dukerupert/vanir/internal/service"
)

// ProfileHandler serves the authenticated user's own account.
type ProfileHandler struct {
	users   service.UserService
	reviews service.ReviewService
	logger  *slog.Logger
}

func NewProfileHandler(users service.UserService, reviews service.ReviewService, logger *slog.Logger) *ProfileHandler {
	return &ProfileHandler{
		users:   users,
		reviews: reviews,
		logger:  logger,
	}
}

// Get handles GET /profile
func (h *ProfileHandler) Get(w http.ResponseWriter, r *http.Request) {
	identity, err := handler.Identity(r)
	if err != nil {
		handler.RespondError(w, r, err)
		return
	}

	user, err := h.users.GetUser(r.Context(), identity.UserID)
	if err != nil {
		handler.RespondError(w, r, err)
		return
	}

	handler.RespondJSON(w, http.StatusOK, handler.NewUserView(user))
}

// ListReviews handles GET /profile/reviews. Unlike the product listing it
// includes the caller's unapproved reviews.
func (h *ProfileHandler) ListReviews(w http.ResponseWriter, r *http.Request) {
	identity, err := handler.Identity(r)
	if err != nil {
		handler.RespondError(w, r, err)
		return
	}

	limit := handler.QueryInt32(r, "limit", 20)
	offset := handler.QueryInt32(r, "offset", 0)

	reviews, err := h.reviews.ListUserReviews(r.Context(), identity.UserID, limit, offset)
	if err != nil {
		handler.RespondError(w, r, err)
		return
	}

	handler.RespondJSON(w, http.StatusOK, handler.NewReviewViews(reviews))
}

type updateProfileRequest struct {
	Email     string `json:"email"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Phone     string `json:"phone"`
	Address   string `json:"address"`
}

// Update handles PUT /profile
func (h *ProfileHandler) Update(w http.ResponseWriter, r *http.Request) {
	identity, err := handler.Identity(r)
	if err != nil {
		handler.RespondError(w, r, err)
		return
	}

	var req updateProfileRequest
	if err := handler.Decode(w, r, &req); err != nil {
		handler.RespondError(w, r, err)
		return
	}

	user, err := h.users.UpdateProfile(r.Context(), identity.UserID, service.ProfileParams{
		Email:     req.Email,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Phone:     req.Phone,
		Address:   req.Address,
	})
	if err != nil {
		handler.RespondError(w, r, err)
		return
	}

	handler.RespondJSON(w, http.StatusOK, handler.NewUserView(user))
}

type changePasswordRequest struct {
	CurrentPassword string `json:"current_password"`
	NewPassword     string `json:"new_password"`
}

// ChangePassword handles PUT /profile/password
func (h *ProfileHandler) ChangePassword(w http.ResponseWriter, r *http.Request) {
	identity, err := handler.Identity(r)
	if err != nil {
		handler.RespondError(w, r, err)
		return
	}

	var req changePasswordRequest
	if err := handler.Decode(w, r, &req); err != nil {
		handler.RespondError(w, r, err)
		return
	}

	if err := h.users.ChangePassword(r.Context(), identity.UserID, req.CurrentPassword, req.NewPassword); err != nil {
		handler.RespondError(w, r, err)
		return
	}

	h.logger.Info("password changed", "user_id", handler.UUIDString(identity.UserID))
	w.WriteHeader(http.StatusNoContent)
}
