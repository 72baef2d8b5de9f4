package http

import (
	"net/http"
	"strconv"

	"agrimarket-backend/internal/domain"
	"agrimarket-backend/internal/repository"
	"agrimarket-backend/internal/service"
)

type ListingHandler struct {
	listings service.ListingService
}

func NewListingHandler(listings service.ListingService) *ListingHandler {
	return &ListingHandler{listings: listings}
}

func (h *ListingHandler) Create(w http.ResponseWriter, r *http.Request) {
	var l domain.Listing
	if err := decodeJSON(r, &l); err != nil {
		respondError(w, err)
		return
	}

	created, err := h.listings.Create(r.Context(), UserID(r), &l)
	if err != nil {
		respondError(w, err)
		return
	}
	respondData(w, http.StatusCreated, created)
}

func (h *ListingHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		respondError(w, err)
		return
	}

	l, err := h.listings.Get(r.Context(), id, viewerFromQuery(r))
	if err != nil {
		respondError(w, err)
		return
	}
	respondData(w, http.StatusOK, l)
}

func (h *ListingHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		respondError(w, err)
		return
	}

	var l domain.Listing
	if err := decodeJSON(r, &l); err != nil {
		respondError(w, err)
		return
	}
	l.ID = id

	updated, err := h.listings.Update(r.Context(), UserID(r), &l)
	if err != nil {
		respondError(w, err)
		return
	}
	respondData(w, http.StatusOK, updated)
}

func (h *ListingHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		respondError(w, err)
		return
	}
	if err := h.listings.Delete(r.Context(), UserID(r), id); err != nil {
		respondError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *ListingHandler) Search(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	f := repository.ListingFilter{
		Query:  q.Get("q"),
		Sort:   q.Get("tri"),
		Status: domain.ListingStatus(q.Get("statut")),
	}
	if v, err := strconv.Atoi(q.Get("categorie")); err == nil && v > 0 {
		f.CategoryID = int32(v)
	}

	page, pageSize := pageParams(r)
	items, total, err := h.listings.Search(r.Context(), f, viewerFromQuery(r), page, pageSize)
	if err != nil {
		respondError(w, err)
		return
	}
	respondPage(w, items, total)
}

func (h *ListingHandler) ListMine(w http.ResponseWriter, r *http.Request) {
	page, pageSize := pageParams(r)
	items, total, err := h.listings.ListMine(r.Context(), UserID(r), page, pageSize)
	if err != nil {
		respondError(w, err)
		return
	}
	respondPage(w, items, total)
}
