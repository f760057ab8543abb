package handler

import (
	"encoding/json"
	"net/http"

	"fitstudio/internal/bookings/service"
	apperrors "fitstudio/pkg/errors"
	apphttp "fitstudio/pkg/http"
	"fitstudio/pkg/logger"
	"fitstudio/pkg/model"

	"github.com/julienschmidt/httprouter"
)

type BookingHandler struct {
	service service.BookingService
	log     *logger.Logger
}

func NewBookingHandler(service service.BookingService, log *logger.Logger) *BookingHandler {
	return &BookingHandler{
		service: service,
		log:     log,
	}
}

func (h *BookingHandler) RegisterRoutes(router *httprouter.Router) {
	router.HandlerFunc(http.MethodPost, "/book", h.Book)
	router.HandlerFunc(http.MethodGet, "/bookings", h.ListByEmail)
}

type BookingSuccessResponse struct {
	Status           string `json:"status"`
	Message          string `json:"message"`
	BookingID        string `json:"booking_id"`
	ClassName        string `json:"class_name"`
	ClassDatetimeIST string `json:"class_datetime_ist"`
	AvailableSlots   int    `json:"available_slots"`
}

type ListBookingsResponse struct {
	Status   string              `json:"status"`
	Message  string              `json:"message,omitempty"`
	Bookings []model.BookingView `json:"bookings"`
}

func (h *BookingHandler) Book(w http.ResponseWriter, r *http.Request) {
	var req model.BookingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeError(w, apperrors.InvalidInput("Invalid request body"))
		return
	}

	confirmation, err := h.service.BookClass(r.Context(), &req)
	if err != nil {
		h.writeError(w, err)
		return
	}

	resp := BookingSuccessResponse{
		Status:           apphttp.StatusSuccess,
		Message:          "Booking successful",
		BookingID:        confirmation.BookingID,
		ClassName:        confirmation.ClassName,
		ClassDatetimeIST: confirmation.ClassDatetimeIST,
		AvailableSlots:   confirmation.AvailableSlots,
	}
	if err := apphttp.WriteCreated(w, resp); err != nil {
		h.log.Error("Failed to write response", "error", err)
	}
}

func (h *BookingHandler) ListByEmail(w http.ResponseWriter, r *http.Request) {
	email := r.URL.Query().Get("email")

	bookings, err := h.service.ListByEmail(r.Context(), email)
	if err != nil {
		h.writeError(w, err)
		return
	}

	resp := ListBookingsResponse{
		Status:   apphttp.StatusSuccess,
		Bookings: bookings,
	}
	if resp.Bookings == nil {
		resp.Bookings = []model.BookingView{}
	}
	if len(resp.Bookings) == 0 {
		resp.Message = "No bookings found for this email"
	}

	if err := apphttp.WriteSuccess(w, resp); err != nil {
		h.log.Error("Failed to write response", "error", err)
	}
}

func (h *BookingHandler) writeError(w http.ResponseWriter, err error) {
	if appErr := apperrors.AsAppError(err); appErr.StatusCode() >= 500 {
		h.log.Error("Request failed", "error", err)
	}
	if writeErr := apperrors.WriteError(w, err); writeErr != nil {
		h.log.Error("Failed to write error response", "error", writeErr)
	}
}
