package controllers

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"dira-storefront/apperr"
	"dira-storefront/middleware"
	"dira-storefront/session"

	"go.uber.org/zap"
)

// ErrorResponse is the body of every error reply
type ErrorResponse struct {
	Error   string            `json:"error"`
	Code    string            `json:"code,omitempty"`
	Details string            `json:"details,omitempty"`
	Fields  map[string]string `json:"fields,omitempty"`
}

func respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		zap.L().Warn("failed to encode response", zap.Error(err))
	}
}

func respondError(w http.ResponseWriter, status int, code, message string) {
	respondJSON(w, status, ErrorResponse{
		Error: message,
		Code:  code,
	})
}

// handleError maps storefront errors to HTTP replies. t translates the
// shopper-facing message.
func handleError(w http.ResponseWriter, t func(string) string, err error) {
	var (
		ve *apperr.ValidationError
		ce *apperr.ConfigError
		nf *apperr.NotFoundError
	)
	switch {
	case errors.As(err, &ve):
		respondJSON(w, http.StatusUnprocessableEntity, ErrorResponse{
			Error:  ve.Error(),
			Code:   "validation_failed",
			Fields: ve.Fields,
		})
	case errors.Is(err, apperr.ErrWalletRequired):
		respondJSON(w, http.StatusUnprocessableEntity, ErrorResponse{
			Error:   t("selectWallet"),
			Code:    "wallet_required",
			Details: err.Error(),
		})
	case errors.Is(err, apperr.ErrInvalidPromo):
		respondError(w, http.StatusUnprocessableEntity, "invalid_code", t("invalidCode"))
	case errors.Is(err, apperr.ErrEmptyCart):
		respondError(w, http.StatusUnprocessableEntity, "empty_cart", t("emptyCart"))
	case errors.As(err, &ce):
		respondJSON(w, http.StatusServiceUnavailable, ErrorResponse{
			Error:   t("notConfigured"),
			Code:    "not_configured",
			Details: ce.Error(),
		})
	case errors.As(err, &nf):
		respondError(w, http.StatusNotFound, "not_found", nf.Error())
	case errors.Is(err, apperr.ErrOutOfStock):
		respondError(w, http.StatusConflict, "out_of_stock", t("outOfStock"))
	default:
		zap.L().Error("request failed", zap.Error(err))
		respondError(w, http.StatusInternalServerError, "internal_error", "internal server error")
	}
}

// decodeJSON reads an optional JSON body into v. An empty body is not an error.
func decodeJSON(r *http.Request, v interface{}) error {
	if r.Body == nil || r.ContentLength == 0 {
		return nil
	}
	err := json.NewDecoder(r.Body).Decode(v)
	if errors.Is(err, io.EOF) {
		return nil
	}
	return err
}

func currentSession(w http.ResponseWriter, r *http.Request) (*session.Session, bool) {
	s, ok := middleware.SessionFromContext(r.Context())
	if !ok {
		respondError(w, http.StatusInternalServerError, "no_session", "session missing")
	}
	return s, ok
}
