package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	apperrors "fitstudio/pkg/errors"
	"fitstudio/pkg/logger"
	"fitstudio/pkg/model"

	"github.com/julienschmidt/httprouter"
)

type mockBookingService struct {
	bookFunc func(ctx context.Context, req *model.BookingRequest) (*model.BookingConfirmation, error)
	listFunc func(ctx context.Context, email string) ([]model.BookingView, error)
}

func (m *mockBookingService) BookClass(ctx context.Context, req *model.BookingRequest) (*model.BookingConfirmation, error) {
	return m.bookFunc(ctx, req)
}

func (m *mockBookingService) ListByEmail(ctx context.Context, email string) ([]model.BookingView, error) {
	return m.listFunc(ctx, email)
}

func testLogger() *logger.Logger {
	return logger.New(logger.Config{Level: logger.ERROR, Output: io.Discard})
}

func setupRouter(svc *mockBookingService) *httprouter.Router {
	router := httprouter.New()
	NewBookingHandler(svc, testLogger()).RegisterRoutes(router)
	return router
}

func TestBookSuccess(t *testing.T) {
	svc := &mockBookingService{
		bookFunc: func(ctx context.Context, req *model.BookingRequest) (*model.BookingConfirmation, error) {
			return &model.BookingConfirmation{
				BookingID:        "abc-123",
				ClassName:        "Yoga",
				ClassDatetimeIST: "2026-09-01T07:00:00+05:30",
				AvailableSlots:   4,
			}, nil
		},
	}
	router := setupRouter(svc)

	body := `{"class_id":1,"client_name":"Asha Rao","client_email":"asha@example.com"}`
	req := httptest.NewRequest(http.MethodPost, "/book", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}

	var resp BookingSuccessResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if resp.Status != "success" {
		t.Errorf("expected status success, got %q", resp.Status)
	}
	if resp.Message != "Booking successful" {
		t.Errorf("unexpected message %q", resp.Message)
	}
	if resp.BookingID != "abc-123" {
		t.Errorf("unexpected booking id %q", resp.BookingID)
	}
	if resp.AvailableSlots != 4 {
		t.Errorf("expected 4 slots, got %d", resp.AvailableSlots)
	}
}

func TestBookInvalidBody(t *testing.T) {
	svc := &mockBookingService{
		bookFunc: func(ctx context.Context, req *model.BookingRequest) (*model.BookingConfirmation, error) {
			t.Fatal("service must not be called for malformed JSON")
			return nil, nil
		},
	}
	router := setupRouter(svc)

	req := httptest.NewRequest(http.MethodPost, "/book", bytes.NewReader([]byte("{not json")))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
	assertErrorEnvelope(t, rec, "Invalid request body")
}

func TestBookServiceErrors(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantMsg    string
	}{
		{"class not found", apperrors.NotFound("Class"), http.StatusNotFound, "Class not found"},
		{"duplicate booking", apperrors.Conflict("You have already booked this class"), http.StatusConflict, "You have already booked this class"},
		{"no slots", apperrors.Conflict("No available slots for this class"), http.StatusConflict, "No available slots for this class"},
		{"already started", apperrors.Conflict("Cannot book a class that has already started"), http.StatusConflict, "Cannot book a class that has already started"},
		{"validation", apperrors.Validation("Missing required fields", nil), http.StatusBadRequest, "Missing required fields"},
		{"internal", apperrors.Internal("Failed to complete booking", io.ErrUnexpectedEOF), http.StatusInternalServerError, "Failed to complete booking"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &mockBookingService{
				bookFunc: func(ctx context.Context, req *model.BookingRequest) (*model.BookingConfirmation, error) {
					return nil, tt.err
				},
			}
			router := setupRouter(svc)

			body := `{"class_id":1,"client_name":"Asha Rao","client_email":"asha@example.com"}`
			req := httptest.NewRequest(http.MethodPost, "/book", strings.NewReader(body))
			req.Header.Set("Content-Type", "application/json")
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, req)

			if rec.Code != tt.wantStatus {
				t.Fatalf("expected %d, got %d", tt.wantStatus, rec.Code)
			}
			assertErrorEnvelope(t, rec, tt.wantMsg)
		})
	}
}

func TestListBookings(t *testing.T) {
	svc := &mockBookingService{
		listFunc: func(ctx context.Context, email string) ([]model.BookingView, error) {
			return []model.BookingView{
				{
					BookingID:        "abc-123",
					ClassID:          1,
					ClassName:        "Yoga",
					ClassDatetimeIST: "2026-09-01T07:00:00+05:30",
					ClientName:       "Asha Rao",
					ClientEmail:      "asha@example.com",
					BookingTime:      "2026-08-24T10:00:00Z",
				},
			}, nil
		},
	}
	router := setupRouter(svc)

	req := httptest.NewRequest(http.MethodGet, "/bookings?email=asha@example.com", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp ListBookingsResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if resp.Status != "success" {
		t.Errorf("expected status success, got %q", resp.Status)
	}
	if resp.Message != "" {
		t.Errorf("expected no message for non-empty result, got %q", resp.Message)
	}
	if len(resp.Bookings) != 1 || resp.Bookings[0].BookingID != "abc-123" {
		t.Errorf("unexpected bookings %+v", resp.Bookings)
	}
}

func TestListBookingsEmpty(t *testing.T) {
	svc := &mockBookingService{
		listFunc: func(ctx context.Context, email string) ([]model.BookingView, error) {
			return nil, nil
		},
	}
	router := setupRouter(svc)

	req := httptest.NewRequest(http.MethodGet, "/bookings?email=nobody@example.com", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp ListBookingsResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if resp.Message != "No bookings found for this email" {
		t.Errorf("unexpected message %q", resp.Message)
	}
	if resp.Bookings == nil || len(resp.Bookings) != 0 {
		t.Errorf("expected empty bookings array, got %+v", resp.Bookings)
	}
}

func TestListBookingsMissingEmail(t *testing.T) {
	svc := &mockBookingService{
		listFunc: func(ctx context.Context, email string) ([]model.BookingView, error) {
			return nil, apperrors.InvalidInput("Email query parameter is required")
		},
	}
	router := setupRouter(svc)

	req := httptest.NewRequest(http.MethodGet, "/bookings", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
	assertErrorEnvelope(t, rec, "Email query parameter is required")
}

func assertErrorEnvelope(t *testing.T, rec *httptest.ResponseRecorder, wantMessage string) {
	t.Helper()

	var resp apperrors.ErrorResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode error response: %v", err)
	}
	if resp.Status != "error" {
		t.Errorf("expected status error, got %q", resp.Status)
	}
	if resp.Message != wantMessage {
		t.Errorf("expected message %q, got %q", wantMessage, resp.Message)
	}
}
