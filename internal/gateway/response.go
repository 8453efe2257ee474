package gateway

import (
	"encoding/json"
	"errors"
	"net/http"

	"go.uber.org/zap"

	textwave "github.com/textwave/textwave-go"
)

// errorResponse is the gateway error body.
type errorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

func writeError(w http.ResponseWriter, status int, code, message string) {
	writeJSON(w, status, errorResponse{Code: code, Message: message})
}

// writeUpstreamError maps SDK errors to gateway status codes.
func (s *Server) writeUpstreamError(w http.ResponseWriter, err error) {
	var notFound *textwave.TaskNotFoundError
	if errors.As(err, &notFound) {
		writeError(w, http.StatusNotFound, "task_not_found", notFound.Error())
		return
	}

	var timeout *textwave.TimeoutError
	if errors.As(err, &timeout) {
		writeError(w, http.StatusGatewayTimeout, "task_timeout", timeout.Error())
		return
	}

	var apiErr *textwave.APIError
	if errors.As(err, &apiErr) {
		s.logger.Warn("upstream api error",
			zap.Int("status", apiErr.StatusCode),
			zap.String("message", apiErr.Message),
		)
		writeError(w, http.StatusBadGateway, "upstream_error", apiErr.Message)
		return
	}

	s.logger.Error("request failed", zap.Error(err))
	writeError(w, http.StatusInternalServerError, "internal_error", "internal error")
}
