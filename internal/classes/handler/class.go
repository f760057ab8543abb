package handler

import (
	"net/http"
	"strings"

	"fitstudio/internal/classes/service"
	apperrors "fitstudio/pkg/errors"
	apphttp "fitstudio/pkg/http"
	"fitstudio/pkg/logger"
	"fitstudio/pkg/model"

	"github.com/julienschmidt/httprouter"
)

type ClassHandler struct {
	service service.ClassService
	log     *logger.Logger
}

func NewClassHandler(service service.ClassService, log *logger.Logger) *ClassHandler {
	return &ClassHandler{
		service: service,
		log:     log,
	}
}

func (h *ClassHandler) RegisterRoutes(router *httprouter.Router) {
	router.HandlerFunc(http.MethodGet, "/classes", h.List)
}

type ListClassesResponse struct {
	Status  string            `json:"status"`
	Classes []model.ClassView `json:"classes"`
}

// List handles GET /classes. include_past=true widens the listing to
// classes that already started; any other value means upcoming only.
func (h *ClassHandler) List(w http.ResponseWriter, r *http.Request) {
	includePast := strings.EqualFold(r.URL.Query().Get("include_past"), "true")

	classes, err := h.service.List(r.Context(), includePast)
	if err != nil {
		if writeErr := apperrors.WriteError(w, err); writeErr != nil {
			h.log.Error("Failed to write error response", "error", writeErr)
		}
		return
	}

	if classes == nil {
		classes = []model.ClassView{}
	}

	resp := ListClassesResponse{
		Status:  apphttp.StatusSuccess,
		Classes: classes,
	}
	if err := apphttp.WriteSuccess(w, resp); err != nil {
		h.log.Error("Failed to write response", "error", err)
	}
}
