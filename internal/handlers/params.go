package handlers

import (
	"net/http"
	"strconv"

	"krishaBack/internal/models"
)

// getParam returns a path or query parameter value regardless of whether
// the router stores it with a leading colon or not.
func getParam(r *http.Request, name string) string {
	if r == nil {
		return ""
	}

	if val := r.URL.Query().Get(":" + name); val != "" {
		return val
	}

	if val := r.URL.Query().Get(name); val != "" {
		return val
	}

	return r.PathValue(name)
}

func intParam(r *http.Request, name string) (int, error) {
	raw := getParam(r, name)
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, models.Validationf("invalid %s %q", name, raw)
	}
	return v, nil
}
