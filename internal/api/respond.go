package api

import (
	"encoding/json"
	"net/http"

	"belanja-be/internal/apperr"
	"belanja-be/internal/logger"

	"go.uber.org/zap"
)

type errorBody struct {
	Code    apperr.Code `json:"code"`
	Message string      `json:"message"`
}

type errorResponse struct {
	Error errorBody `json:"error"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if v != nil {
		_ = json.NewEncoder(w).Encode(v)
	}
}

// writeError maps an error to the stable code+message contract. Internal
// details never leak to the client; they go to the log instead.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	code := apperr.CodeOf(err)
	status := apperr.HTTPStatus(code)

	if code == apperr.CodeInternal {
		logger.FromCtx(r.Context()).Error("request failed", zap.Error(err))
	}

	writeJSON(w, status, errorResponse{Error: errorBody{
		Code:    code,
		Message: apperr.MessageOf(err),
	}})
}

var errAuthRequired = apperr.Forbidden("authentication required")
