package handlers

import (
	"net/http"
	"strings"

	"krishaBack/internal/models"
	"krishaBack/internal/services"
)

// requestBaseURL returns scheme://host as seen by the client.
func requestBaseURL(r *http.Request) string {
	scheme := "http"
	if r.TLS != nil {
		scheme = "https"
	}
	if proto := r.Header.Get("X-Forwarded-Proto"); proto != "" {
		scheme = strings.TrimSpace(strings.SplitN(proto, ",", 2)[0])
	}
	return scheme + "://" + r.Host
}

func photoURL(r *http.Request, filename string) string {
	return requestBaseURL(r) + services.PhotoPathMarker + filename
}

// resolvePhotoURLs turns stored photo values into absolute URLs for this
// request. Legacy rows may already hold full URLs or quoted names.
func resolvePhotoURLs(r *http.Request, photos []string) []string {
	resolved := make([]string, 0, len(photos))
	for _, p := range photos {
		name := services.PhotoFilename(p)
		if name == "" {
			continue
		}
		resolved = append(resolved, photoURL(r, name))
	}
	return resolved
}

func resolveAdPhotos(r *http.Request, ads []models.Ad) []models.Ad {
	for i := range ads {
		ads[i].Photos = resolvePhotoURLs(r, ads[i].Photos)
	}
	return ads
}
