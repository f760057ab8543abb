package errors

import (
	"encoding/json"
	"net/http"
)

// ErrorResponse is the envelope every failed request gets: a stable
// status field plus a human-readable message.
type ErrorResponse struct {
	Status  string         `json:"status"`
	Message string         `json:"message"`
	Details map[string]any `json:"details,omitempty"`
}

func WriteError(w http.ResponseWriter, err error) error {
	appErr := AsAppError(err)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(appErr.StatusCode())

	message := appErr.Message
	if appErr.Code == CodeInternal {
		// Never leak the wrapped fault to the client.
		message = "An unexpected error occurred"
		if appErr.Message != "" {
			message = appErr.Message
		}
	}

	return json.NewEncoder(w).Encode(ErrorResponse{
		Status:  "error",
		Message: message,
		Details: appErr.Details,
	})
}
