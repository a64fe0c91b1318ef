package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"

	"krishaBack/internal/models"
	"krishaBack/internal/repositories"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeStatusOK(w http.ResponseWriter) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func writeErrorMessage(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}

// writeError maps domain errors to HTTP responses. Storage failures are
// reported as 400 with the driver message.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	logger := zerolog.Ctx(r.Context())
	switch {
	case errors.Is(err, models.ErrInvalidCredentials):
		writeErrorMessage(w, http.StatusUnauthorized, "Invalid credentials")
	case errors.Is(err, models.ErrUserNotFound):
		writeErrorMessage(w, http.StatusNotFound, "User not found")
	case errors.Is(err, models.ErrAdNotFound):
		writeErrorMessage(w, http.StatusNotFound, "Ad not found")
	case errors.Is(err, models.ErrPhotoNotFound):
		writeErrorMessage(w, http.StatusNotFound, "Photo not found")
	case errors.Is(err, models.ErrValidation):
		logger.Debug().Err(err).Msg("validation failed")
		writeErrorMessage(w, http.StatusBadRequest, err.Error())
	case repositories.IsConstraintViolation(err):
		logger.Warn().Err(err).Msg("constraint violation")
		writeErrorMessage(w, http.StatusBadRequest, err.Error())
	default:
		logger.Error().Err(err).Str("path", r.URL.Path).Msg("storage error")
		writeErrorMessage(w, http.StatusBadRequest, err.Error())
	}
}

// decodeJSON reads the request body into dst and runs struct validation.
// Unknown fields are ignored.
func decodeJSON(r *http.Request, dst any) error {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return models.Validationf("invalid JSON body: %v", err)
	}
	if err := validate.Struct(dst); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			fields := make([]string, 0, len(verrs))
			for _, fe := range verrs {
				fields = append(fields, fe.Field())
			}
			return models.Validationf("missing or invalid fields: %s", strings.Join(fields, ", "))
		}
		return fmt.Errorf("%w: %v", models.ErrValidation, err)
	}
	return nil
}
