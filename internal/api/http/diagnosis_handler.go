package http

import (
	"net/http"
	"strings"

	"agrimarket-backend/internal/service"
	"agrimarket-backend/internal/validation"

	"github.com/gorilla/mux"
)

type DiagnosisHandler struct {
	diagnoses service.DiagnosisService
}

func NewDiagnosisHandler(diagnoses service.DiagnosisService) *DiagnosisHandler {
	return &DiagnosisHandler{diagnoses: diagnoses}
}

type diagnoseRequest struct {
	ImageURI string `json:"image_uri"`
}

func (h *DiagnosisHandler) Diagnose(w http.ResponseWriter, r *http.Request) {
	var req diagnoseRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, err)
		return
	}
	if strings.TrimSpace(req.ImageURI) == "" {
		respondError(w, validation.FieldErrors{"image_uri": "an image reference is required"})
		return
	}

	result, err := h.diagnoses.Diagnose(r.Context(), UserID(r), req.ImageURI)
	if err != nil {
		respondError(w, err)
		return
	}
	respondData(w, http.StatusOK, result)
}

func (h *DiagnosisHandler) History(w http.ResponseWriter, r *http.Request) {
	entries, err := h.diagnoses.History(r.Context(), UserID(r))
	if err != nil {
		respondError(w, err)
		return
	}
	respondData(w, http.StatusOK, entries)
}

func (h *DiagnosisHandler) RemoveFromHistory(w http.ResponseWriter, r *http.Request) {
	entryID := mux.Vars(r)["id"]
	if entryID == "" {
		respondError(w, validation.FieldErrors{"id": "entry id is required"})
		return
	}
	if err := h.diagnoses.RemoveFromHistory(r.Context(), UserID(r), entryID); err != nil {
		respondError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *DiagnosisHandler) ClearHistory(w http.ResponseWriter, r *http.Request) {
	if err := h.diagnoses.ClearHistory(r.Context(), UserID(r)); err != nil {
		respondError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
