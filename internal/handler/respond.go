// Package handler holds the JSON request and response plumbing shared by
// the storefront and admin HTTP handlers.
package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/dukerupert/vanir/internal/domain"
	"github.com/dukerupert/vanir/internal/middleware"
	"github.com/jackc/pgx/v5/pgtype"
)

const maxBodyBytes = 1 << 20 // 1 MiB

// RespondJSON writes v as a JSON response with the given status code.
func RespondJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if v != nil {
		json.NewEncoder(w).Encode(v)
	}
}

// RespondError writes a structured JSON error response. Internal errors are
// logged with their full chain but reported to the client generically.
func RespondError(w http.ResponseWriter, r *http.Request, err error) {
	code := domain.ErrorCode(err)
	message := domain.ErrorMessage(err)
	status := errorCodeToHTTPStatus(code)

	logger := middleware.GetLogger(r.Context())

	attrs := []any{
		"error", err.Error(),
		"code", code,
		"status", status,
	}
	if reqID := middleware.GetRequestID(r.Context()); reqID != "" {
		attrs = append(attrs, "request_id", reqID)
	}

	if status >= 500 {
		logger.Error("request failed", attrs...)
	} else {
		logger.Info("request rejected", attrs...)
	}

	RespondJSON(w, status, map[string]interface{}{
		"error": map[string]string{
			"code":    code,
			"message": message,
		},
	})
}

// Decode reads a JSON request body into v, rejecting unknown fields and
// oversized bodies.
func Decode(w http.ResponseWriter, r *http.Request, v interface{}) error {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)

	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()

	if err := dec.Decode(v); err != nil {
		if errors.Is(err, io.EOF) {
			return domain.Invalid("handler.Decode", "Request body is required")
		}
		return domain.Errorf(domain.EINVALID, "handler.Decode", "Invalid request body: %s", err)
	}
	return nil
}

// PathUUID parses a UUID path segment into a database UUID.
func PathUUID(r *http.Request, name string) (pgtype.UUID, error) {
	var id pgtype.UUID
	raw := r.PathValue(name)
	if err := id.Scan(raw); err != nil {
		return pgtype.UUID{}, domain.Errorf(domain.EINVALID, "handler.PathUUID", "Invalid %s: %q is not a UUID", name, raw)
	}
	return id, nil
}

// Identity returns the authenticated caller or an unauthorized error.
// Handlers behind RequireAuth can rely on it succeeding; the error path
// guards routes that were wired without the middleware by mistake.
func Identity(r *http.Request) (*middleware.Identity, error) {
	identity := middleware.GetIdentity(r.Context())
	if identity == nil {
		return nil, domain.Unauthorized("handler.Identity", "Authentication required")
	}
	return identity, nil
}

// errorCodeToHTTPStatus maps domain error codes to HTTP status codes.
func errorCodeToHTTPStatus(code string) int {
	switch code {
	case domain.EINVALID:
		return http.StatusBadRequest // 400
	case domain.EUNAUTHORIZED:
		return http.StatusUnauthorized // 401
	case domain.EFORBIDDEN:
		return http.StatusForbidden // 403
	case domain.ENOTFOUND:
		return http.StatusNotFound // 404
	case domain.ECONFLICT:
		return http.StatusConflict // 409
	case domain.ERATELIMIT:
		return http.StatusTooManyRequests // 429
	case domain.EINTERNAL:
		return http.StatusInternalServerError // 500
	default:
		return http.StatusInternalServerError // 500
	}
}

// QueryInt32 parses an integer query parameter, falling back to def when
// absent or malformed.
func QueryInt32(r *http.Request, name string, def int32) int32 {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return def
	}
	var v int32
	if _, err := fmt.Sscanf(raw, "%d", &v); err != nil {
		return def
	}
	return v
}
