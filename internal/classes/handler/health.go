package handler

import (
	"context"
	"net/http"
	"time"

	apphttp "fitstudio/pkg/http"
	"fitstudio/pkg/logger"

	"github.com/julienschmidt/httprouter"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

// HealthHandler serves liveness and readiness probes. Liveness is
// unconditional; readiness pings Mongo so a broken connection takes the
// instance out of rotation.
type HealthHandler struct {
	mongoClient *mongo.Client
	log         *logger.Logger
}

func NewHealthHandler(mongoClient *mongo.Client, log *logger.Logger) *HealthHandler {
	return &HealthHandler{
		mongoClient: mongoClient,
		log:         log,
	}
}

func (h *HealthHandler) RegisterRoutes(router *httprouter.Router) {
	router.HandlerFunc(http.MethodGet, "/health", h.Health)
	router.HandlerFunc(http.MethodGet, "/ready", h.Ready)
}

type healthResponse struct {
	Status string `json:"status"`
}

func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	if err := apphttp.WriteSuccess(w, healthResponse{Status: "healthy"}); err != nil {
		h.log.Error("Failed to write health response", "error", err)
	}
}

func (h *HealthHandler) Ready(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
	defer cancel()

	if err := h.mongoClient.Ping(ctx, readpref.Primary()); err != nil {
		h.log.Error("Readiness check failed", "error", err)
		if writeErr := apphttp.WriteJSON(w, http.StatusServiceUnavailable, healthResponse{Status: "not ready"}); writeErr != nil {
			h.log.Error("Failed to write readiness response", "error", writeErr)
		}
		return
	}

	if err := apphttp.WriteSuccess(w, healthResponse{Status: "ready"}); err != nil {
		h.log.Error("Failed to write readiness response", "error", err)
	}
}
