package http

import (
	"net/http"

	"agrimarket-backend/internal/service"
)

type ReferenceHandler struct {
	refs service.ReferenceService
}

func NewReferenceHandler(refs service.ReferenceService) *ReferenceHandler {
	return &ReferenceHandler{refs: refs}
}

func (h *ReferenceHandler) ProductCategories(w http.ResponseWriter, r *http.Request) {
	items, err := h.refs.ProductCategories(r.Context())
	if err != nil {
		respondError(w, err)
		return
	}
	respondData(w, http.StatusOK, items)
}

func (h *ReferenceHandler) EquipmentCategories(w http.ResponseWriter, r *http.Request) {
	items, err := h.refs.EquipmentCategories(r.Context())
	if err != nil {
		respondError(w, err)
		return
	}
	respondData(w, http.StatusOK, items)
}

func (h *ReferenceHandler) States(w http.ResponseWriter, r *http.Request) {
	items, err := h.refs.States(r.Context())
	if err != nil {
		respondError(w, err)
		return
	}
	respondData(w, http.StatusOK, items)
}

func (h *ReferenceHandler) Crops(w http.ResponseWriter, r *http.Request) {
	items, err := h.refs.Crops(r.Context())
	if err != nil {
		respondError(w, err)
		return
	}
	respondData(w, http.StatusOK, items)
}
