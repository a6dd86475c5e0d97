// Package handler contains chi HTTP handlers that translate HTTP
// requests/responses to and from the service layer.
package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/Shivanand-hulikatti/hotel-reservation-ledger/internal/ledger"
	"github.com/Shivanand-hulikatti/hotel-reservation-ledger/internal/model"
	"github.com/Shivanand-hulikatti/hotel-reservation-ledger/internal/service"
	"github.com/go-chi/chi/v5"
)

// ReservationHandler holds all HTTP handlers for the reservation API.
type ReservationHandler struct {
	svc *service.ReservationService
}

// NewReservationHandler constructs a ReservationHandler.
func NewReservationHandler(svc *service.ReservationService) *ReservationHandler {
	return &ReservationHandler{svc: svc}
}

// Routes mounts the reservation endpoints on r.
func (h *ReservationHandler) Routes(r chi.Router) {
	r.Route("/reservations", func(r chi.Router) {
		r.Post("/", h.AddReservation)
		r.Get("/", h.ListReservations)
		r.Get("/{id}", h.GetReservation)
		r.Delete("/{id}", h.CancelReservation)
		r.Get("/{id}/price", h.Price)
	})
	r.Post("/quotes", h.Quote)
}

// ─── Helper utilities ─────────────────────────────────────────────────────────

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, model.ErrorResponse{Error: msg})
}

func decodeJSON(r *http.Request, dst any) error {
	r.Body = http.MaxBytesReader(nil, r.Body, 1<<20) // 1 MB limit
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	return dec.Decode(dst)
}

func reservationID(r *http.Request) (int, bool) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	return id, err == nil
}

// writeLedgerError maps ledger rejections to HTTP statuses.
func writeLedgerError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, ledger.ErrReservationNotFound):
		writeError(w, http.StatusNotFound, "reservation not found")
	case errors.Is(err, ledger.ErrDuplicateID), errors.Is(err, ledger.ErrDuplicateClient):
		writeError(w, http.StatusConflict, err.Error())
	default:
		writeError(w, http.StatusInternalServerError, "internal error")
	}
}

// ─── Handlers ─────────────────────────────────────────────────────────────────

// AddReservation handles POST /reservations
func (h *ReservationHandler) AddReservation(w http.ResponseWriter, r *http.Request) {
	var req model.CreateReservationRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}

	res, err := h.svc.AddReservation(r.Context(), req)
	if err != nil {
		writeLedgerError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, res)
}

// ListReservations handles GET /reservations
// Returns a JSON array of active reservations in booking order.
func (h *ReservationHandler) ListReservations(w http.ResponseWriter, r *http.Request) {
	list, err := h.svc.ListReservations(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to list reservations")
		return
	}

	// Return an empty array rather than null for better client compatibility.
	if list == nil {
		list = []model.Reservation{}
	}

	writeJSON(w, http.StatusOK, list)
}

// GetReservation handles GET /reservations/{id}
func (h *ReservationHandler) GetReservation(w http.ResponseWriter, r *http.Request) {
	id, ok := reservationID(r)
	if !ok {
		writeError(w, http.StatusBadRequest, "reservation id must be an integer")
		return
	}

	res, err := h.svc.GetReservation(r.Context(), id)
	if err != nil {
		writeLedgerError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, res)
}

// CancelReservation handles DELETE /reservations/{id}
func (h *ReservationHandler) CancelReservation(w http.ResponseWriter, r *http.Request) {
	id, ok := reservationID(r)
	if !ok {
		writeError(w, http.StatusBadRequest, "reservation id must be an integer")
		return
	}

	if err := h.svc.CancelReservation(r.Context(), id); err != nil {
		writeLedgerError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// Price handles GET /reservations/{id}/price
func (h *ReservationHandler) Price(w http.ResponseWriter, r *http.Request) {
	id, ok := reservationID(r)
	if !ok {
		writeError(w, http.StatusBadRequest, "reservation id must be an integer")
		return
	}

	price, err := h.svc.Price(r.Context(), id)
	if err != nil {
		writeLedgerError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, price)
}

// Quote handles POST /quotes
// Prices a reservation without booking it.
func (h *ReservationHandler) Quote(w http.ResponseWriter, r *http.Request) {
	var req model.PriceRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}

	price, err := h.svc.Quote(r.Context(), req)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to price reservation")
		return
	}

	writeJSON(w, http.StatusOK, price)
}

// ─── Health check ─────────────────────────────────────────────────────────────

// HealthCheck handles GET /health
func HealthCheck(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
