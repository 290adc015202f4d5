package storefront

import (
	"log/slog"
	"net/http"

	"github.com/dukerupert/vanir/internal/handler"
	"github.com/dukerupert/vanir/internal/service"
)

// AddressHandler serves the authenticated user's address book.
type AddressHandler struct {
	addresses service.AddressService
	logger    *slog.Logger
}

func NewAddressHandler(addresses service.AddressService, logger *slog.Logger) *AddressHandler {
	return &AddressHandler{
		addresses: addresses,
		logger:    logger,
	}
}

type addressRequest struct {
	FullName   string `json:"full_name"`
	Line1      string `json:"line1"`
	Line2      string `json:"line2"`
	City       string `json:"city"`
	State      string `json:"state"`
	PostalCode string `json:"postal_code"`
	Country    string `json:"country"`
	Phone      string `json:"phone"`
	IsDefault  bool   `json:"is_default"`
}

func (req addressRequest) params() service.AddressParams {
	return service.AddressParams{
		FullName:   req.FullName,
		Line1:      req.Line1,
		Line2:      req.Line2,
		City:       req.City,
		State:      req.State,
		PostalCode: req.PostalCode,
		Country:    req.Country,
		Phone:      req.Phone,
		IsDefault:  req.IsDefault,
	}
}

// List handles GET /addresses
func (h *AddressHandler) List(w http.ResponseWriter, r *http.Request) {
	identity, err := handler.Identity(r)
	if err != nil {
		handler.RespondError(w, r, err)
		return
	}

	addresses, err := h.addresses.ListAddresses(r.Context(), identity.UserID)
	if err != nil {
		handler.RespondError(w, r, err)
		return
	}

	handler.RespondJSON(w, http.StatusOK, handler.NewAddressViews(addresses))
}

// Get handles GET /addresses/{id}
func (h *AddressHandler) Get(w http.ResponseWriter, r *http.Request) {
	identity, err := handler.Identity(r)
	if err != nil {
		handler.RespondError(w, r, err)
		return
	}

	addressID, err := handler.PathUUID(r, "id")
	if err != nil {
		handler.RespondError(w, r, err)
		return
	}

	address, err := h.addresses.GetAddress(r.Context(), identity.UserID, addressID)
	if err != nil {
		handler.RespondError(w, r, err)
		return
	}

	handler.RespondJSON(w, http.StatusOK, handler.NewAddressView(*address))
}

// Create handles POST /addresses
func (h *AddressHandler) Create(w http.ResponseWriter, r *http.Request) {
	identity, err := handler.Identity(r)
	if err != nil {
		handler.RespondError(w, r, err)
		return
	}

	var req addressRequest
	if err := handler.Decode(w, r, &req); err != nil {
		handler.RespondError(w, r, err)
		return
	}

	address, err := h.addresses.CreateAddress(r.Context(), identity.UserID, req.params())
	if err != nil {
		handler.RespondError(w, r, err)
		return
	}

	handler.RespondJSON(w, http.StatusCreated, handler.NewAddressView(*address))
}

// Update handles PUT /addresses/{id}
func (h *AddressHandler) Update(w http.ResponseWriter, r *http.Request) {
	identity, err := handler.Identity(r)
	if err != nil {
		handler.RespondError(w, r, err)
		return
	}

	addressID, err := handler.PathUUID(r, "id")
	if err != nil {
		handler.RespondError(w, r, err)
		return
	}

	var req addressRequest
	if err := handler.Decode(w, r, &req); err != nil {
		handler.RespondError(w, r, err)
		return
	}

	address, err := h.addresses.UpdateAddress(r.Context(), identity.UserID, addressID, req.params())
	if err != nil {
		handler.RespondError(w, r, err)
		return
	}

	handler.RespondJSON(w, http.StatusOK, handler.NewAddressView(*address))
}

// Delete handles DELETE /addresses/{id}
func (h *AddressHandler) Delete(w http.ResponseWriter, r *http.Request) {
	identity, err := handler.Identity(r)
	if err != nil {
		handler.RespondError(w, r, err)
		return
	}

	addressID, err := handler.PathUUID(r, "id")
	if err != nil {
		handler.RespondError(w, r, err)
		return
	}

	if err := h.addresses.DeleteAddress(r.Context(), identity.UserID, addressID); err != nil {
		handler.RespondError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// SetDefault handles POST /addresses/{id}/default
func (h *AddressHandler) SetDefault(w http.ResponseWriter, r *http.Request) {
	identity, err := handler.Identity(r)
	if err != nil {
		handler.RespondError(w, r, err)
		return
	}

	addressID, err := handler.PathUUID(r, "id")
	if err != nil {
		handler.RespondError(w, r, err)
		return
	}

	if err := h.addresses.SetDefault(r.Context(), identity.UserID, addressID); err != nil {
		handler.RespondError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
