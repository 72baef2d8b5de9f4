package http

import (
	"net/http"
	"strconv"

	"agrimarket-backend/internal/domain"
	"agrimarket-backend/internal/repository"
	"agrimarket-backend/internal/service"
)

type EquipmentHandler struct {
	equipment service.EquipmentService
}

func NewEquipmentHandler(equipment service.EquipmentService) *EquipmentHandler {
	return &EquipmentHandler{equipment: equipment}
}

func (h *EquipmentHandler) Create(w http.ResponseWriter, r *http.Request) {
	var e domain.Equipment
	if err := decodeJSON(r, &e); err != nil {
		respondError(w, err)
		return
	}

	created, err := h.equipment.Create(r.Context(), UserID(r), &e)
	if err != nil {
		respondError(w, err)
		return
	}
	respondData(w, http.StatusCreated, created)
}

func (h *EquipmentHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		respondError(w, err)
		return
	}

	e, err := h.equipment.Get(r.Context(), id, viewerFromQuery(r))
	if err != nil {
		respondError(w, err)
		return
	}
	respondData(w, http.StatusOK, e)
}

func (h *EquipmentHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		respondError(w, err)
		return
	}

	var e domain.Equipment
	if err := decodeJSON(r, &e); err != nil {
		respondError(w, err)
		return
	}
	e.ID = id

	updated, err := h.equipment.Update(r.Context(), UserID(r), &e)
	if err != nil {
		respondError(w, err)
		return
	}
	respondData(w, http.StatusOK, updated)
}

func (h *EquipmentHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		respondError(w, err)
		return
	}
	if err := h.equipment.Delete(r.Context(), UserID(r), id); err != nil {
		respondError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *EquipmentHandler) Search(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	f := repository.EquipmentFilter{
		Query:  q.Get("q"),
		Sort:   q.Get("tri"),
		Status: domain.EquipmentStatus(q.Get("statut")),
	}
	if v, err := strconv.Atoi(q.Get("categorie")); err == nil && v > 0 {
		f.CategoryID = int32(v)
	}

	page, pageSize := pageParams(r)
	items, total, err := h.equipment.Search(r.Context(), f, viewerFromQuery(r), page, pageSize)
	if err != nil {
		respondError(w, err)
		return
	}
	respondPage(w, items, total)
}

func (h *EquipmentHandler) ListMine(w http.ResponseWriter, r *http.Request) {
	page, pageSize := pageParams(r)
	items, total, err := h.equipment.ListMine(r.Context(), UserID(r), page, pageSize)
	if err != nil {
		respondError(w, err)
		return
	}
	respondPage(w, items, total)
}

type reviewRequest struct {
	ReservationID int32  `json:"reservation_id"`
	Rating        int32  `json:"rating"`
	Comment       string `json:"comment"`
}

func (h *EquipmentHandler) AddReview(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		respondError(w, err)
		return
	}

	var req reviewRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, err)
		return
	}

	review, err := h.equipment.AddReview(r.Context(), UserID(r), id, req.ReservationID, req.Rating, req.Comment)
	if err != nil {
		respondError(w, err)
		return
	}
	respondData(w, http.StatusCreated, review)
}

func (h *EquipmentHandler) ListReviews(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		respondError(w, err)
		return
	}

	reviews, err := h.equipment.ListReviews(r.Context(), id)
	if err != nil {
		respondError(w, err)
		return
	}
	respondData(w, http.StatusOK, reviews)
}
