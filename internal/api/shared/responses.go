package shared

import (
	"encoding/json"
	"log/slog"
	"net/http"
)

// ErrorResponse is the uniform error envelope returned by every
// failing endpoint and by the global 404/405/500 handlers.
type ErrorResponse struct {
	Status  int    `json:"status"`
	Message string `json:"message"`
	TraceID string `json:"trace_id,omitempty"`
}

// RespondWithJSON writes a JSON response with the given status code
// and body.
func RespondWithJSON(w http.ResponseWriter, r *http.Request, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		slog.Error("failed to encode JSON response", "error", err)
	}
}

// RespondWithError writes the error envelope with the given status and
// message, tagging it with the request's trace id when one is set.
func RespondWithError(w http.ResponseWriter, r *http.Request, status int, message string) {
	RespondWithJSON(w, r, status, ErrorResponse{
		Status:  status,
		Message: message,
		TraceID: GetTraceID(r.Context()),
	})
}

// RespondWithErrorAndLog writes the error envelope with a safe message
// and logs the underlying error. Internal error text never reaches the
// response body; 5xx errors log at ERROR, everything else at DEBUG.
func RespondWithErrorAndLog(
	w http.ResponseWriter,
	r *http.Request,
	status int,
	userMessage string,
	err error,
) {
	traceID := GetTraceID(r.Context())

	attrs := []any{
		"trace_id", traceID,
		"path", r.URL.Path,
		"method", r.Method,
		"status_code", status,
		"user_message", userMessage,
	}
	if err != nil {
		attrs = append(attrs, "error", err.Error())
	}

	if status >= http.StatusInternalServerError {
		slog.Error("API error response", attrs...)
	} else {
		slog.Debug("API error response", attrs...)
	}

	RespondWithJSON(w, r, status, ErrorResponse{
		Status:  status,
		Message: userMessage,
		TraceID: traceID,
	})
}
