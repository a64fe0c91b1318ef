package handlers

import (
	"net/http"

	"krishaBack/internal/models"
	"krishaBack/internal/services"
)

type AdFavoriteHandler struct {
	Service *services.AdFavoriteService
}

func (h *AdFavoriteHandler) AddAdToFavorites(w http.ResponseWriter, r *http.Request) {
	var fav models.AdFavorite
	if err := decodeJSON(r, &fav); err != nil {
		writeError(w, r, err)
		return
	}
	if err := h.Service.AddAdToFavorites(r.Context(), fav); err != nil {
		writeError(w, r, err)
		return
	}
	writeStatusOK(w)
}

func (h *AdFavoriteHandler) RemoveAdFromFavorites(w http.ResponseWriter, r *http.Request) {
	var fav models.AdFavorite
	if err := decodeJSON(r, &fav); err != nil {
		writeError(w, r, err)
		return
	}
	if err := h.Service.RemoveAdFromFavorites(r.Context(), fav); err != nil {
		writeError(w, r, err)
		return
	}
	writeStatusOK(w)
}

func (h *AdFavoriteHandler) GetFavoriteAdsByUser(w http.ResponseWriter, r *http.Request) {
	userID, err := intParam(r, "user_id")
	if err != nil {
		writeError(w, r, err)
		return
	}
	ads, err := h.Service.GetFavoriteAdsByUser(r.Context(), userID)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, resolveAdPhotos(r, ads))
}
