package service

import (
	"context"
	"fmt"
	"io"
	"testing"
	"time"

	apperrors "fitstudio/pkg/errors"
	"fitstudio/pkg/logger"
	"fitstudio/pkg/model"
)

type mockClassRepo struct {
	classes []model.FitnessClass
	err     error

	gotIncludePast bool
}

func (m *mockClassRepo) FindUpcoming(ctx context.Context, includePast bool) ([]model.FitnessClass, error) {
	m.gotIncludePast = includePast
	if m.err != nil {
		return nil, m.err
	}
	return m.classes, nil
}

func (m *mockClassRepo) FindByID(ctx context.Context, id int) (*model.FitnessClass, error) {
	return nil, nil
}

func (m *mockClassRepo) FindByIDs(ctx context.Context, ids []int) (map[int]model.FitnessClass, error) {
	return nil, nil
}

func (m *mockClassRepo) DecrementAvailableSlots(ctx context.Context, id int) error {
	return nil
}

func (m *mockClassRepo) Insert(ctx context.Context, class *model.FitnessClass) error {
	return nil
}

func testLogger() *logger.Logger {
	return logger.New(logger.Config{Level: logger.ERROR, Output: io.Discard})
}

func istLocation(t *testing.T) *time.Location {
	t.Helper()
	loc, err := time.LoadLocation("Asia/Kolkata")
	if err != nil {
		t.Fatalf("failed to load IST location: %v", err)
	}
	return loc
}

func TestListMapsToViews(t *testing.T) {
	start := time.Date(2026, 9, 1, 1, 30, 0, 0, time.UTC)
	repo := &mockClassRepo{
		classes: []model.FitnessClass{
			{
				ID:              1,
				Name:            "Yoga",
				Instructor:      "Priya Sharma",
				StartTime:       start,
				DurationMinutes: 60,
				TotalSlots:      15,
				AvailableSlots:  15,
			},
			{
				ID:              2,
				Name:            "HIIT",
				Instructor:      "Amit Singh",
				StartTime:       start.Add(2 * time.Hour),
				DurationMinutes: 30,
				TotalSlots:      12,
				AvailableSlots:  0,
			},
		},
	}
	svc := NewClassService(repo, istLocation(t), testLogger())

	views, err := svc.List(context.Background(), false)
	if err != nil {
		t.Fatalf("expected success, got %v", err)
	}
	if len(views) != 2 {
		t.Fatalf("expected 2 views, got %d", len(views))
	}

	yoga := views[0]
	if yoga.DatetimeUTC != "2026-09-01T01:30:00Z" {
		t.Errorf("unexpected UTC datetime %q", yoga.DatetimeUTC)
	}
	// 01:30 UTC is 07:00 IST (+05:30).
	if yoga.DatetimeIST != "2026-09-01T07:00:00+05:30" {
		t.Errorf("unexpected IST datetime %q", yoga.DatetimeIST)
	}
	if !yoga.IsAvailable {
		t.Error("expected yoga to be available")
	}

	hiit := views[1]
	if hiit.IsAvailable {
		t.Error("expected full class to be unavailable")
	}
}

func TestListPassesIncludePast(t *testing.T) {
	repo := &mockClassRepo{}
	svc := NewClassService(repo, istLocation(t), testLogger())

	if _, err := svc.List(context.Background(), true); err != nil {
		t.Fatalf("expected success, got %v", err)
	}
	if !repo.gotIncludePast {
		t.Error("expected includePast to reach the repository")
	}
}

func TestListEmptyIsNotAnError(t *testing.T) {
	repo := &mockClassRepo{}
	svc := NewClassService(repo, istLocation(t), testLogger())

	views, err := svc.List(context.Background(), false)
	if err != nil {
		t.Fatalf("expected success, got %v", err)
	}
	if len(views) != 0 {
		t.Errorf("expected empty result, got %d", len(views))
	}
}

func TestListRepositoryError(t *testing.T) {
	repo := &mockClassRepo{err: fmt.Errorf("connection reset")}
	svc := NewClassService(repo, istLocation(t), testLogger())

	_, err := svc.List(context.Background(), false)
	if err == nil {
		t.Fatal("expected error")
	}
	appErr := apperrors.AsAppError(err)
	if appErr.StatusCode() != 500 {
		t.Errorf("expected 500, got %d", appErr.StatusCode())
	}
}
