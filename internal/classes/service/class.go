package service

import (
	"context"
	"time"

	"fitstudio/internal/classes/repository"
	apperrors "fitstudio/pkg/errors"
	"fitstudio/pkg/logger"
	"fitstudio/pkg/model"
)

type ClassService interface {
	List(ctx context.Context, includePast bool) ([]model.ClassView, error)
}

type classService struct {
	repo            repository.ClassRepository
	displayLocation *time.Location
	log             *logger.Logger
}

func NewClassService(repo repository.ClassRepository, displayLocation *time.Location, log *logger.Logger) ClassService {
	return &classService{
		repo:            repo,
		displayLocation: displayLocation,
		log:             log,
	}
}

// List returns the schedule as client-facing views, soonest first.
// Past classes are hidden unless includePast is set; they still appear
// with is_available=false when their slots are gone.
func (s *classService) List(ctx context.Context, includePast bool) ([]model.ClassView, error) {
	classes, err := s.repo.FindUpcoming(ctx, includePast)
	if err != nil {
		s.log.Error("Failed to list classes", "error", err)
		return nil, apperrors.Internal("Failed to retrieve classes", err)
	}

	views := make([]model.ClassView, 0, len(classes))
	for i := range classes {
		views = append(views, model.NewClassView(&classes[i], s.displayLocation))
	}

	return views, nil
}
