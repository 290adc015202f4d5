package storefront

import (
	"log/slog"
	"net/http"

	"github.com/dukerupert/vanir/internal/handler"
	"github.com/dukerupert/vanir/internal/service"
	"github.com/dukerupert/vanir/internal/telemetry"
)

// AuthHandler serves registration and login.
type AuthHandler struct {
	users   service.UserService
	metrics *telemetry.BusinessMetrics
	logger  *slog.Logger
}

func NewAuthHandler(users service.UserService, metrics *telemetry.BusinessMetrics, logger *slog.Logger) *AuthHandler {
	return &AuthHandler{
		users:   users,
		metrics: metrics,
		logger:  logger,
	}
}

type registerRequest struct {
	Username  string `json:"username"`
	Email     string `json:"email"`
	Password  string `json:"password"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Phone     string `json:"phone"`
}

// Register handles POST /auth/register
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req registerRequest
	if err := handler.Decode(w, r, &req); err != nil {
		handler.RespondError(w, r, err)
		return
	}

	user, err := h.users.Register(r.Context(), service.RegisterParams{
		Username:  req.Username,
		Email:     req.Email,
		Password:  req.Password,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Phone:     req.Phone,
	})
	if err != nil {
		handler.RespondError(w, r, err)
		return
	}

	h.metrics.Signups.Inc()
	h.logger.Info("user registered", "user_id", handler.UUIDString(user.ID), "username", user.Username)
	handler.RespondJSON(w, http.StatusCreated, handler.NewUserView(user))
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type loginResponse struct {
	Token string           `json:"token"`
	User  handler.UserView `json:"user"`
}

// Login handles POST /auth/login
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := handler.Decode(w, r, &req); err != nil {
		handler.RespondError(w, r, err)
		return
	}

	token, user, err := h.users.Login(r.Context(), req.Username, req.Password)
	if err != nil {
		h.metrics.LoginsFailed.Inc()
		handler.RespondError(w, r, err)
		return
	}

	h.metrics.Logins.Inc()
	handler.RespondJSON(w, http.StatusOK, loginResponse{
		Token: token,
		User:  handler.NewUserView(user),
	})
}
