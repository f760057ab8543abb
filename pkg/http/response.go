package http

import (
	"encoding/json"
	"net/http"
)

// StatusSuccess is the status field value carried by every successful
// response envelope.
const StatusSuccess = "success"

func WriteJSON(w http.ResponseWriter, statusCode int, data any) error {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		// No recovery possible after WriteHeader; caller logs.
		return err
	}
	return nil
}

func WriteSuccess(w http.ResponseWriter, data any) error {
	return WriteJSON(w, http.StatusOK, data)
}

func WriteCreated(w http.ResponseWriter, data any) error {
	return WriteJSON(w, http.StatusCreated, data)
}
