package handlers

import (
	"errors"
	"io"
	"net/http"
	"strconv"

	"github.com/rs/zerolog"

	"krishaBack/internal/services"
)

const uploadField = "photo"

type PhotoHandler struct {
	Service        *services.PhotoService
	MaxUploadBytes int64
}

func (h *PhotoHandler) UploadPhoto(w http.ResponseWriter, r *http.Request) {
	if h.MaxUploadBytes > 0 {
		r.Body = http.MaxBytesReader(w, r.Body, h.MaxUploadBytes)
	}
	if err := r.ParseMultipartForm(32 << 20); err != nil {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			writeErrorMessage(w, http.StatusRequestEntityTooLarge, "File too large")
			return
		}
		writeErrorMessage(w, http.StatusBadRequest, "No photo part")
		return
	}
	defer r.MultipartForm.RemoveAll()

	// a part sent with filename="" is parsed as a plain form value
	if _, ok := r.MultipartForm.Value[uploadField]; ok {
		if len(r.MultipartForm.File[uploadField]) == 0 {
			writeErrorMessage(w, http.StatusBadRequest, "No selected file")
			return
		}
	}
	file, header, err := r.FormFile(uploadField)
	if err != nil {
		writeErrorMessage(w, http.StatusBadRequest, "No photo part")
		return
	}
	defer file.Close()
	if header.Filename == "" {
		writeErrorMessage(w, http.StatusBadRequest, "No selected file")
		return
	}

	name, err := h.Service.SavePhoto(r.Context(), header.Filename, file)
	if err != nil {
		writeError(w, r, err)
		return
	}
	url := photoURL(r, name)
	zerolog.Ctx(r.Context()).Info().Str("filename", name).Str("url", url).Msg("photo uploaded")
	writeJSON(w, http.StatusOK, map[string]string{"url": url})
}

func (h *PhotoHandler) ServePhoto(w http.ResponseWriter, r *http.Request) {
	name := getParam(r, "filename")
	photo, err := h.Service.OpenPhoto(r.Context(), name)
	if err != nil {
		writeError(w, r, err)
		return
	}
	defer photo.Body.Close()

	w.Header().Set("Content-Type", photo.ContentType)
	if rs, ok := photo.Body.(io.ReadSeeker); ok {
		http.ServeContent(w, r, name, photo.ModTime, rs)
		return
	}
	if photo.Size > 0 {
		w.Header().Set("Content-Length", strconv.FormatInt(photo.Size, 10))
	}
	w.WriteHeader(http.StatusOK)
	if _, err := io.Copy(w, photo.Body); err != nil {
		zerolog.Ctx(r.Context()).Warn().Err(err).Str("filename", name).Msg("photo stream interrupted")
	}
}
