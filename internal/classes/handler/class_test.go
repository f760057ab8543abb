package handler

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	apperrors "fitstudio/pkg/errors"
	"fitstudio/pkg/logger"
	"fitstudio/pkg/model"

	"github.com/julienschmidt/httprouter"
)

type mockClassService struct {
	views []model.ClassView
	err   error

	gotIncludePast bool
}

func (m *mockClassService) List(ctx context.Context, includePast bool) ([]model.ClassView, error) {
	m.gotIncludePast = includePast
	if m.err != nil {
		return nil, m.err
	}
	return m.views, nil
}

func testLogger() *logger.Logger {
	return logger.New(logger.Config{Level: logger.ERROR, Output: io.Discard})
}

func setupRouter(svc *mockClassService) *httprouter.Router {
	router := httprouter.New()
	NewClassHandler(svc, testLogger()).RegisterRoutes(router)
	return router
}

func TestListClasses(t *testing.T) {
	svc := &mockClassService{
		views: []model.ClassView{
			{ID: 1, Name: "Yoga", Instructor: "Priya Sharma", AvailableSlots: 15, TotalSlots: 15, IsAvailable: true},
		},
	}
	router := setupRouter(svc)

	req := httptest.NewRequest(http.MethodGet, "/classes", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp ListClassesResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if resp.Status != "success" {
		t.Errorf("expected status success, got %q", resp.Status)
	}
	if len(resp.Classes) != 1 || resp.Classes[0].Name != "Yoga" {
		t.Errorf("unexpected classes %+v", resp.Classes)
	}
	if svc.gotIncludePast {
		t.Error("include_past must default to false")
	}
}

func TestListClassesIncludePast(t *testing.T) {
	tests := []struct {
		query string
		want  bool
	}{
		{"include_past=true", true},
		{"include_past=TRUE", true},
		{"include_past=false", false},
		{"include_past=1", false},
		{"include_past=", false},
		{"", false},
	}

	for _, tt := range tests {
		t.Run(tt.query, func(t *testing.T) {
			svc := &mockClassService{}
			router := setupRouter(svc)

			target := "/classes"
			if tt.query != "" {
				target += "?" + tt.query
			}
			req := httptest.NewRequest(http.MethodGet, target, nil)
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, req)

			if rec.Code != http.StatusOK {
				t.Fatalf("expected 200, got %d", rec.Code)
			}
			if svc.gotIncludePast != tt.want {
				t.Errorf("query %q: expected includePast=%v, got %v", tt.query, tt.want, svc.gotIncludePast)
			}
		})
	}
}

func TestListClassesEmpty(t *testing.T) {
	svc := &mockClassService{}
	router := setupRouter(svc)

	req := httptest.NewRequest(http.MethodGet, "/classes", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	// The classes field must be an array, never null.
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(rec.Body.Bytes(), &raw); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if string(raw["classes"]) != "[]" {
		t.Errorf("expected empty array, got %s", raw["classes"])
	}
}

func TestListClassesServiceError(t *testing.T) {
	svc := &mockClassService{err: apperrors.Internal("Failed to retrieve classes", io.ErrUnexpectedEOF)}
	router := setupRouter(svc)

	req := httptest.NewRequest(http.MethodGet, "/classes", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", rec.Code)
	}

	var resp apperrors.ErrorResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode error response: %v", err)
	}
	if resp.Status != "error" {
		t.Errorf("expected status error, got %q", resp.Status)
	}
}
