package http

import (
	"net/http"

	"agrimarket-backend/internal/domain"
	"agrimarket-backend/internal/service"
)

type ReservationHandler struct {
	reservations service.ReservationService
}

func NewReservationHandler(reservations service.ReservationService) *ReservationHandler {
	return &ReservationHandler{reservations: reservations}
}

type reservationRequest struct {
	EquipmentID int32  `json:"equipment_id"`
	StartDate   string `json:"start_date"`
	EndDate     string `json:"end_date"`
}

func (h *ReservationHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req reservationRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, err)
		return
	}

	res, err := h.reservations.Create(r.Context(), UserID(r), req.EquipmentID, req.StartDate, req.EndDate)
	if err != nil {
		respondError(w, err)
		return
	}
	respondData(w, http.StatusCreated, res)
}

func (h *ReservationHandler) Quote(w http.ResponseWriter, r *http.Request) {
	var req reservationRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, err)
		return
	}

	quote, err := h.reservations.Quote(r.Context(), req.EquipmentID, req.StartDate, req.EndDate)
	if err != nil {
		respondError(w, err)
		return
	}
	respondData(w, http.StatusOK, quote)
}

func (h *ReservationHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		respondError(w, err)
		return
	}

	res, err := h.reservations.Get(r.Context(), UserID(r), id)
	if err != nil {
		respondError(w, err)
		return
	}
	respondData(w, http.StatusOK, res)
}

type statusRequest struct {
	Status domain.ReservationStatus `json:"status"`
}

func (h *ReservationHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		respondError(w, err)
		return
	}

	var req statusRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, err)
		return
	}

	res, err := h.reservations.UpdateStatus(r.Context(), UserID(r), id, req.Status)
	if err != nil {
		respondError(w, err)
		return
	}
	respondData(w, http.StatusOK, res)
}

func (h *ReservationHandler) ListMine(w http.ResponseWriter, r *http.Request) {
	page, pageSize := pageParams(r)
	status := domain.ReservationStatus(r.URL.Query().Get("statut"))
	items, total, err := h.reservations.ListMine(r.Context(), UserID(r), status, page, pageSize)
	if err != nil {
		respondError(w, err)
		return
	}
	respondPage(w, items, total)
}

func (h *ReservationHandler) ListReceived(w http.ResponseWriter, r *http.Request) {
	page, pageSize := pageParams(r)
	status := domain.ReservationStatus(r.URL.Query().Get("statut"))
	items, total, err := h.reservations.ListReceived(r.Context(), UserID(r), status, page, pageSize)
	if err != nil {
		respondError(w, err)
		return
	}
	respondPage(w, items, total)
}
