package http

import (
	"net/http"

	"agrimarket-backend/internal/domain"
	"agrimarket-backend/internal/service"
)

type ProfileHandler struct {
	profiles service.ProfileService
	stats    service.StatsService
}

func NewProfileHandler(profiles service.ProfileService, stats service.StatsService) *ProfileHandler {
	return &ProfileHandler{profiles: profiles, stats: stats}
}

type meResponse struct {
	User *domain.User `json:"user"`
	// Profile is null for an account that never completed onboarding.
	Profile *domain.Profile `json:"profile"`
}

func (h *ProfileHandler) GetMe(w http.ResponseWriter, r *http.Request) {
	user, profile, err := h.profiles.GetMe(r.Context(), UserID(r))
	if err != nil {
		respondError(w, err)
		return
	}
	respondData(w, http.StatusOK, meResponse{User: user, Profile: profile})
}

func (h *ProfileHandler) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	var p domain.Profile
	if err := decodeJSON(r, &p); err != nil {
		respondError(w, err)
		return
	}
	p.UserID = UserID(r)

	updated, err := h.profiles.UpdateProfile(r.Context(), &p)
	if err != nil {
		respondError(w, err)
		return
	}
	respondData(w, http.StatusOK, updated)
}

func (h *ProfileHandler) MyStats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.stats.UserStats(r.Context(), UserID(r))
	if err != nil {
		respondError(w, err)
		return
	}
	respondData(w, http.StatusOK, stats)
}
