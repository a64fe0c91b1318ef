package handlers

import (
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/rs/zerolog"

	"krishaBack/internal/models"
	"krishaBack/internal/services"
)

type AdHandler struct {
	Service *services.AdService
}

// Malformed numeric filters are ignored, same as absent ones.
func queryInt(q url.Values, key string) *int {
	v, err := strconv.Atoi(strings.TrimSpace(q.Get(key)))
	if err != nil {
		return nil
	}
	return &v
}

func queryInt64(q url.Values, key string) *int64 {
	v, err := strconv.ParseInt(strings.TrimSpace(q.Get(key)), 10, 64)
	if err != nil {
		return nil
	}
	return &v
}

func queryFloat(q url.Values, key string) *float64 {
	v, err := strconv.ParseFloat(strings.TrimSpace(q.Get(key)), 64)
	if err != nil {
		return nil
	}
	return &v
}

func parseAdFilter(q url.Values) models.AdFilter {
	return models.AdFilter{
		Title:        q.Get("title"),
		City:         q.Get("city"),
		AdType:       q.Get("ad_type"),
		HouseType:    q.Get("house_type"),
		Complex:      q.Get("complex"),
		Rooms:        queryInt(q, "rooms"),
		PriceMin:     queryInt64(q, "price_min"),
		PriceMax:     queryInt64(q, "price_max"),
		FloorMin:     queryInt(q, "floor_min"),
		FloorMax:     queryInt(q, "floor_max"),
		YearBuiltMin: queryInt(q, "year_built_min"),
		YearBuiltMax: queryInt(q, "year_built_max"),
		AreaMin:      queryFloat(q, "area_min"),
		AreaMax:      queryFloat(q, "area_max"),
	}
}

func (h *AdHandler) ListAds(w http.ResponseWriter, r *http.Request) {
	ads, err := h.Service.ListAds(r.Context(), parseAdFilter(r.URL.Query()))
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, resolveAdPhotos(r, ads))
}

func (h *AdHandler) GetAdByID(w http.ResponseWriter, r *http.Request) {
	id, err := intParam(r, "id")
	if err != nil {
		writeError(w, r, err)
		return
	}
	ad, err := h.Service.GetAdByID(r.Context(), id)
	if err != nil {
		writeError(w, r, err)
		return
	}
	ad.Photos = resolvePhotoURLs(r, ad.Photos)
	writeJSON(w, http.StatusOK, ad)
}

func (h *AdHandler) CreateAd(w http.ResponseWriter, r *http.Request) {
	var req models.CreateAdRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, r, err)
		return
	}
	id, err := h.Service.CreateAd(r.Context(), req)
	if err != nil {
		writeError(w, r, err)
		return
	}
	zerolog.Ctx(r.Context()).Info().Int("ad_id", id).Int("user_id", req.UserID).Msg("ad created")
	writeJSON(w, http.StatusOK, map[string]any{"status": "ok", "id": id})
}

func (h *AdHandler) UpdateAd(w http.ResponseWriter, r *http.Request) {
	id, err := intParam(r, "id")
	if err != nil {
		writeError(w, r, err)
		return
	}
	var req models.UpdateAdRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, r, err)
		return
	}
	if err := h.Service.UpdateAd(r.Context(), id, req); err != nil {
		writeError(w, r, err)
		return
	}
	writeStatusOK(w)
}

func (h *AdHandler) DeleteAd(w http.ResponseWriter, r *http.Request) {
	id, err := intParam(r, "id")
	if err != nil {
		writeError(w, r, err)
		return
	}
	if err := h.Service.DeleteAd(r.Context(), id); err != nil {
		writeError(w, r, err)
		return
	}
	writeStatusOK(w)
}
