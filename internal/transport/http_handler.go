// Package transport exposes the HTTP API.
package transport

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"go.uber.org/zap"

	"github.com/clearsourceworks/filtertrace-backend/internal/model"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

// Service is the lifecycle surface the HTTP handler fronts.
type Service interface {
	RegisterBatch(ctx context.Context, batchID string, unitIDs []string) (*model.RegisterResult, error)
	ShipBatch(ctx context.Context, batchID, destination string, unitIDs []string) (*model.ShipResult, error)
	Receive(ctx context.Context, unitID, warehouseID string) (*model.ReceiveResult, error)
	ReceiveBatch(ctx context.Context, unitIDs []string, warehouseID string) (*model.ReceiveBatchResult, error)
	Verify(ctx context.Context, unitID, siteID, verifierID string) (*model.VerifyResult, error)
	Replace(ctx context.Context, oldUnitID, newUnitID, siteID string) (*model.ReplaceResult, error)
	Flag(ctx context.Context, unitID string, reason model.FlagReason) (*model.FlagResult, error)
	Read(ctx context.Context, unitID string) (*model.Snapshot, error)
	RecentEvents(ctx context.Context, limit uint64) ([]model.CachedEvent, error)
	UnitEvents(ctx context.Context, unitID string) ([]model.CachedEvent, error)
	SearchUnits(ctx context.Context, term string, limit uint64) ([]model.CachedUnit, error)
	UnitsByBatch(ctx context.Context, batchID string) ([]model.CachedUnit, error)
	Stats(ctx context.Context) (*model.Stats, error)
}

// Handler serves the JSON API.
type Handler struct {
	service Service
	logger  *zap.Logger
}

// NewHandler returns a Handler instance.
func NewHandler(service Service, logger *zap.Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger.Named("http"),
	}
}

// Router builds the route table.
func (h *Handler) Router() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("POST /api/register", h.register)
	mux.HandleFunc("POST /api/ship", h.ship)
	mux.HandleFunc("POST /api/receive", h.receive)
	mux.HandleFunc("POST /api/verify", h.verify)
	mux.HandleFunc("POST /api/replace", h.replace)
	mux.HandleFunc("POST /api/flag", h.flag)
	mux.HandleFunc("GET /api/read/{unitId}", h.read)
	mux.HandleFunc("GET /api/recent", h.recentEvents)
	mux.HandleFunc("GET /api/unit-events/{unitId}", h.unitEvents)
	mux.HandleFunc("GET /api/search", h.search)
	mux.HandleFunc("GET /api/batch/{batchId}", h.unitsByBatch)
	mux.HandleFunc("GET /api/stats", h.stats)
	mux.HandleFunc("GET /health", h.health)

	return mux
}

type registerRequest struct {
	BatchID string   `json:"batchId"`
	UnitIDs []string `json:"unitIds"`
}

func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	var req registerRequest
	if !h.decode(w, r, &req) {
		return
	}

	result, err := h.service.RegisterBatch(r.Context(), req.BatchID, req.UnitIDs)
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusCreated, result)
}

type shipRequest struct {
	BatchID     string   `json:"batchId"`
	Destination string   `json:"destination"`
	UnitIDs     []string `json:"unitIds,omitempty"`
}

func (h *Handler) ship(w http.ResponseWriter, r *http.Request) {
	var req shipRequest
	if !h.decode(w, r, &req) {
		return
	}

	result, err := h.service.ShipBatch(r.Context(), req.BatchID, req.Destination, req.UnitIDs)
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, result)
}

type receiveRequest struct {
	UnitID      string   `json:"unitId,omitempty"`
	UnitIDs     []string `json:"unitIds,omitempty"`
	WarehouseID string   `json:"warehouseId"`
}

// receive accepts a single unit id or a batch of them. A batch fans out and
// reports per-unit failures instead of failing the whole request.
func (h *Handler) receive(w http.ResponseWriter, r *http.Request) {
	var req receiveRequest
	if !h.decode(w, r, &req) {
		return
	}

	if len(req.UnitIDs) > 0 {
		result, err := h.service.ReceiveBatch(r.Context(), req.UnitIDs, req.WarehouseID)
		if err != nil {
			h.writeError(w, err)
			return
		}
		status := http.StatusOK
		if len(result.Failed) > 0 {
			status = http.StatusMultiStatus
		}
		h.writeJSON(w, status, result)
		return
	}

	result, err := h.service.Receive(r.Context(), req.UnitID, req.WarehouseID)
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, result)
}

type verifyRequest struct {
	UnitID     string `json:"unitId"`
	SiteID     string `json:"siteId"`
	VerifierID string `json:"verifierId"`
}

func (h *Handler) verify(w http.ResponseWriter, r *http.Request) {
	var req verifyRequest
	if !h.decode(w, r, &req) {
		return
	}

	result, err := h.service.Verify(r.Context(), req.UnitID, req.SiteID, req.VerifierID)
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, result)
}

type replaceRequest struct {
	OldUnitID string `json:"oldUnitId"`
	NewUnitID string `json:"newUnitId"`
	SiteID    string `json:"siteId"`
}

func (h *Handler) replace(w http.ResponseWriter, r *http.Request) {
	var req replaceRequest
	if !h.decode(w, r, &req) {
		return
	}

	result, err := h.service.Replace(r.Context(), req.OldUnitID, req.NewUnitID, req.SiteID)
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, result)
}

type flagRequest struct {
	UnitID string `json:"unitId"`
	Reason string `json:"reason"`
}

func (h *Handler) flag(w http.ResponseWriter, r *http.Request) {
	var req flagRequest
	if !h.decode(w, r, &req) {
		return
	}

	result, err := h.service.Flag(r.Context(), req.UnitID, model.FlagReason(req.Reason))
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, result)
}

func (h *Handler) read(w http.ResponseWriter, r *http.Request) {
	snapshot, err := h.service.Read(r.Context(), r.PathValue("unitId"))
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, snapshot)
}

func (h *Handler) recentEvents(w http.ResponseWriter, r *http.Request) {
	limit, ok := h.limitParam(w, r)
	if !ok {
		return
	}

	events, err := h.service.RecentEvents(r.Context(), limit)
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, events)
}

func (h *Handler) unitEvents(w http.ResponseWriter, r *http.Request) {
	events, err := h.service.UnitEvents(r.Context(), r.PathValue("unitId"))
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, events)
}

func (h *Handler) search(w http.ResponseWriter, r *http.Request) {
	term := r.URL.Query().Get("q")
	if term == "" {
		h.writeError(w, model.NewValidationError("search term is required"))
		return
	}
	limit, ok := h.limitParam(w, r)
	if !ok {
		return
	}

	units, err := h.service.SearchUnits(r.Context(), term, limit)
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, units)
}

func (h *Handler) unitsByBatch(w http.ResponseWriter, r *http.Request) {
	units, err := h.service.UnitsByBatch(r.Context(), r.PathValue("batchId"))
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, units)
}

func (h *Handler) stats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.service.Stats(r.Context())
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, stats)
}

func (h *Handler) health(w http.ResponseWriter, _ *http.Request) {
	h.writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (h *Handler) decode(w http.ResponseWriter, r *http.Request, dst any) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		h.writeError(w, model.NewValidationError("invalid request body: %v", err))
		return false
	}
	return true
}

// limitParam parses the optional ?limit= parameter. Zero means the service
// default applies.
func (h *Handler) limitParam(w http.ResponseWriter, r *http.Request) (uint64, bool) {
	raw := r.URL.Query().Get("limit")
	if raw == "" {
		return 0, true
	}
	limit, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		h.writeError(w, model.NewValidationError("invalid limit %q", raw))
		return 0, false
	}
	return limit, true
}

type errorResponse struct {
	Error string `json:"error"`
}

func (h *Handler) writeError(w http.ResponseWriter, err error) {
	var (
		validation  *model.ValidationError
		notFound    *model.NotFoundError
		conflict    *model.ConflictError
		transition  *model.InvalidTransitionError
		unavailable *model.LedgerUnavailableError
	)

	status := http.StatusInternalServerError
	switch {
	case errors.As(err, &validation):
		status = http.StatusBadRequest
	case errors.As(err, &notFound):
		status = http.StatusNotFound
	case errors.As(err, &conflict), errors.As(err, &transition):
		status = http.StatusConflict
	case errors.As(err, &unavailable):
		status = http.StatusServiceUnavailable
	}

	if status == http.StatusInternalServerError || status == http.StatusServiceUnavailable {
		h.logger.Error("Request failed", zap.Error(err))
	}
	h.writeJSON(w, status, errorResponse{Error: err.Error()})
}

func (h *Handler) writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		h.logger.Error("Encode response", zap.Error(err))
	}
}
