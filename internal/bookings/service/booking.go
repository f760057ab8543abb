package service

import (
	"context"
	"errors"
	"strconv"
	"time"

	bookingerrors "fitstudio/internal/bookings/errors"
	bookingrepo "fitstudio/internal/bookings/repository"
	"fitstudio/internal/bookings/validator"
	classerrors "fitstudio/internal/classes/errors"
	classrepo "fitstudio/internal/classes/repository"
	"fitstudio/internal/events"
	apperrors "fitstudio/pkg/errors"
	"fitstudio/pkg/kafka"
	"fitstudio/pkg/keylock"
	"fitstudio/pkg/logger"
	"fitstudio/pkg/model"
	"fitstudio/pkg/sanitizer"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/mongo"
)

// EventPublisher is the slice of the Kafka producer the service needs.
// A nil publisher disables events entirely.
type EventPublisher interface {
	Publish(ctx context.Context, msg kafka.Message) error
}

type BookingService interface {
	BookClass(ctx context.Context, req *model.BookingRequest) (*model.BookingConfirmation, error)
	ListByEmail(ctx context.Context, email string) ([]model.BookingView, error)
}

type bookingService struct {
	bookingRepo     bookingrepo.BookingRepository
	classRepo       classrepo.ClassRepository
	validator       *validator.BookingValidator
	classLocks      *keylock.KeyLock
	publisher       EventPublisher
	displayLocation *time.Location
	log             *logger.Logger
}

func NewBookingService(
	bookingRepo bookingrepo.BookingRepository,
	classRepo classrepo.ClassRepository,
	bookingValidator *validator.BookingValidator,
	publisher EventPublisher,
	displayLocation *time.Location,
	log *logger.Logger,
) BookingService {
	return &bookingService{
		bookingRepo:     bookingRepo,
		classRepo:       classRepo,
		validator:       bookingValidator,
		classLocks:      keylock.New(),
		publisher:       publisher,
		displayLocation: displayLocation,
		log:             log,
	}
}

// BookClass reserves one slot. The checks run in a fixed order so a
// request failing several ways always reports the same error: class
// existence, then start time, then duplicate booking, then capacity.
// All of it happens under the per-class lock and inside one transaction,
// so two requests for the last slot cannot both succeed.
func (s *bookingService) BookClass(ctx context.Context, req *model.BookingRequest) (*model.BookingConfirmation, error) {
	req.ClientName = sanitizer.NormalizeName(req.ClientName)
	req.ClientEmail = sanitizer.NormalizeEmail(req.ClientEmail)

	if err := s.validator.ValidateRequest(req); err != nil {
		return nil, err
	}

	s.classLocks.Lock(req.ClassID)
	defer s.classLocks.Unlock(req.ClassID)

	var booking model.Booking
	var confirmation model.BookingConfirmation

	err := s.bookingRepo.ExecuteTransaction(ctx, func(sessCtx mongo.SessionContext) error {
		class, err := s.classRepo.FindByID(sessCtx, req.ClassID)
		if err != nil {
			if errors.Is(err, classerrors.ErrNotFound) {
				return apperrors.NotFound("Class")
			}
			return apperrors.Internal("Failed to load class", err)
		}

		if class.HasStarted(time.Now().UTC()) {
			return apperrors.Conflict("Cannot book a class that has already started")
		}

		exists, err := s.bookingRepo.ExistsByClassAndEmail(sessCtx, req.ClassID, req.ClientEmail)
		if err != nil {
			return apperrors.Internal("Failed to check existing bookings", err)
		}
		if exists {
			return apperrors.Conflict("You have already booked this class")
		}

		if !class.IsAvailable() {
			return apperrors.Conflict("No available slots for this class")
		}

		booking = model.Booking{
			ID:          uuid.NewString(),
			ClassID:     req.ClassID,
			ClientName:  req.ClientName,
			ClientEmail: req.ClientEmail,
			BookingTime: time.Now().UTC(),
		}
		if err := s.bookingRepo.Create(sessCtx, &booking); err != nil {
			if errors.Is(err, bookingerrors.ErrDuplicate) {
				return apperrors.Conflict("You have already booked this class")
			}
			return apperrors.Internal("Failed to create booking", err)
		}

		if err := s.classRepo.DecrementAvailableSlots(sessCtx, req.ClassID); err != nil {
			if errors.Is(err, classerrors.ErrNoSlots) {
				return apperrors.Conflict("No available slots for this class")
			}
			return apperrors.Internal("Failed to update class slots", err)
		}

		confirmation = model.BookingConfirmation{
			BookingID:        booking.ID,
			ClassName:        class.Name,
			ClassDatetimeIST: class.StartTime.In(s.displayLocation).Format(time.RFC3339),
			AvailableSlots:   class.AvailableSlots - 1,
		}

		return nil
	})
	if err != nil {
		if apperrors.IsAppError(err) {
			return nil, err
		}
		s.log.Error("Booking transaction failed", "class_id", req.ClassID, "error", err)
		return nil, apperrors.Internal("Failed to complete booking", err)
	}

	s.publishBookingCreated(ctx, &booking, confirmation.ClassName)

	return &confirmation, nil
}

// publishBookingCreated is best-effort: the booking is already committed
// and a producer failure must not surface to the client.
func (s *bookingService) publishBookingCreated(ctx context.Context, booking *model.Booking, className string) {
	if s.publisher == nil {
		return
	}

	msg := kafka.NewMessage().
		WithKey(strconv.Itoa(booking.ClassID)).
		WithValue(events.BookingCreated{
			BookingID:   booking.ID,
			ClassID:     booking.ClassID,
			ClassName:   className,
			ClientName:  booking.ClientName,
			ClientEmail: booking.ClientEmail,
			BookingTime: booking.BookingTime,
		}).
		WithEventType(events.TypeBookingCreated).
		WithSource(events.Source).
		Build()

	if err := s.publisher.Publish(ctx, msg); err != nil {
		s.log.Error("Failed to publish booking event",
			"booking_id", booking.ID,
			"class_id", booking.ClassID,
			"error", err,
		)
	}
}

// ListByEmail returns the client's bookings joined with class details,
// oldest booking first. Email matching is case-insensitive via the same
// normalization applied on write.
func (s *bookingService) ListByEmail(ctx context.Context, email string) ([]model.BookingView, error) {
	email = sanitizer.NormalizeEmail(email)
	if email == "" {
		return nil, apperrors.InvalidInput("Email query parameter is required")
	}

	bookings, err := s.bookingRepo.FindByEmail(ctx, email)
	if err != nil {
		s.log.Error("Failed to list bookings", "error", err)
		return nil, apperrors.Internal("Failed to retrieve bookings", err)
	}

	classIDs := make([]int, 0, len(bookings))
	seen := make(map[int]bool, len(bookings))
	for _, b := range bookings {
		if !seen[b.ClassID] {
			seen[b.ClassID] = true
			classIDs = append(classIDs, b.ClassID)
		}
	}

	classes, err := s.classRepo.FindByIDs(ctx, classIDs)
	if err != nil {
		s.log.Error("Failed to load classes for bookings", "error", err)
		return nil, apperrors.Internal("Failed to retrieve bookings", err)
	}

	views := make([]model.BookingView, 0, len(bookings))
	for _, b := range bookings {
		view := model.BookingView{
			BookingID:   b.ID,
			ClassID:     b.ClassID,
			ClientName:  b.ClientName,
			ClientEmail: b.ClientEmail,
			BookingTime: b.BookingTime.UTC().Format(time.RFC3339),
		}
		if class, ok := classes[b.ClassID]; ok {
			view.ClassName = class.Name
			view.ClassDatetimeIST = class.StartTime.In(s.displayLocation).Format(time.RFC3339)
		}
		views = append(views, view)
	}

	return views, nil
}
