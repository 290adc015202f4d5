package admin

import (
	"log/slog"
	"net/http"

	"github.com/dukerupert/vanir/internal/handler"
	"github.com/dukerupert/vanir/internal/service"
)

// UserHandler serves admin account management.
type UserHandler struct {
	users  service.UserService
	logger *slog.Logger
}

func NewUserHandler(users service.UserService, logger *slog.Logger) *UserHandler {
	return &UserHandler{
		users:  users,
		logger: logger,
	}
}

// List handles GET /admin/users
func (h *UserHandler) List(w http.ResponseWriter, r *http.Request) {
	filter := service.UserFilter{
		Search: r.URL.Query().Get("q"),
		Role:   r.URL.Query().Get("role"),
		Limit:  handler.QueryInt32(r, "limit", 50),
		Offset: handler.QueryInt32(r, "offset", 0),
	}

	users, err := h.users.ListUsers(r.Context(), filter)
	if err != nil {
		handler.RespondError(w, r, err)
		return
	}

	views := make([]handler.UserView, 0, len(users))
	for i := range users {
		views = append(views, handler.NewUserView(&users[i]))
	}
	handler.RespondJSON(w, http.StatusOK, views)
}

// Get handles GET /admin/users/{id}
func (h *UserHandler) Get(w http.ResponseWriter, r *http.Request) {
	userID, err := handler.PathUUID(r, "id")
	if err != nil {
		handler.RespondError(w, r, err)
		return
	}

	user, err := h.users.GetUser(r.Context(), userID)
	if err != nil {
		handler.RespondError(w, r, err)
		return
	}

	handler.RespondJSON(w, http.StatusOK, handler.NewUserView(user))
}

type setRoleRequest struct {
	Role string `json:"role"`
}

// SetRole handles PUT /admin/users/{id}/role
func (h *UserHandler) SetRole(w http.ResponseWriter, r *http.Request) {
	userID, err := handler.PathUUID(r, "id")
	if err != nil {
		handler.RespondError(w, r, err)
		return
	}

	var req setRoleRequest
	if err := handler.Decode(w, r, &req); err != nil {
		handler.RespondError(w, r, err)
		return
	}

	user, err := h.users.SetRole(r.Context(), userID, req.Role)
	if err != nil {
		handler.RespondError(w, r, err)
		return
	}

	h.logger.Info("user role changed", "user_id", handler.UUIDString(userID), "role", req.Role)
	handler.RespondJSON(w, http.StatusOK, handler.NewUserView(user))
}

// Deactivate handles DELETE /admin/users/{id}. Accounts are soft deleted;
// admins cannot deactivate themselves.
func (h *UserHandler) Deactivate(w http.ResponseWriter, r *http.Request) {
	identity, err := handler.Identity(r)
	if err != nil {
		handler.RespondError(w, r, err)
		return
	}

	userID, err := handler.PathUUID(r, "id")
	if err != nil {
		handler.RespondError(w, r, err)
		return
	}

	if err := h.users.Deactivate(r.Context(), identity.UserID, userID); err != nil {
		handler.RespondError(w, r, err)
		return
	}

	h.logger.Info("user deactivated", "user_id", handler.UUIDString(userID), "actor_id", handler.UUIDString(identity.UserID))
	w.WriteHeader(http.StatusNoContent)
}
