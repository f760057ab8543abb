package errors

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestStatusCodes(t *testing.T) {
	tests := []struct {
		name string
		err  *AppError
		want int
	}{
		{"not found", NotFound("Class"), http.StatusNotFound},
		{"invalid input", InvalidInput("Missing required fields"), http.StatusBadRequest},
		{"validation", Validation("Invalid email address format", nil), http.StatusBadRequest},
		{"conflict", Conflict("No available slots for this class"), http.StatusConflict},
		{"internal", Internal("Failed to create booking", errors.New("boom")), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.StatusCode(); got != tt.want {
				t.Errorf("StatusCode() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestWriteError_Envelope(t *testing.T) {
	w := httptest.NewRecorder()
	if err := WriteError(w, Conflict("You have already booked this class")); err != nil {
		t.Fatalf("WriteError: %v", err)
	}

	if w.Code != http.StatusConflict {
		t.Fatalf("expected status 409, got %d", w.Code)
	}

	var resp ErrorResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid JSON response: %v", err)
	}
	if resp.Status != "error" {
		t.Errorf("expected status field \"error\", got %q", resp.Status)
	}
	if resp.Message != "You have already booked this class" {
		t.Errorf("unexpected message: %q", resp.Message)
	}
}

func TestWriteError_UnknownErrorIsNotLeaked(t *testing.T) {
	w := httptest.NewRecorder()
	if err := WriteError(w, fmt.Errorf("connection refused: 10.0.0.3:27017")); err != nil {
		t.Fatalf("WriteError: %v", err)
	}

	if w.Code != http.StatusInternalServerError {
		t.Fatalf("expected status 500, got %d", w.Code)
	}

	var resp ErrorResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid JSON response: %v", err)
	}
	if resp.Message != "An unexpected error occurred" {
		t.Errorf("internal fault leaked to client: %q", resp.Message)
	}
}

func TestUnwrap(t *testing.T) {
	cause := errors.New("duplicate key")
	appErr := Internal("Failed to create booking", cause)

	if !errors.Is(appErr, cause) {
		t.Error("expected errors.Is to find the wrapped cause")
	}
}

func TestAsAppError_PassThrough(t *testing.T) {
	orig := NotFound("Class")
	if got := AsAppError(orig); got != orig {
		t.Error("AsAppError should return the same *AppError instance")
	}
}
