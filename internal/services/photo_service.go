package services

import (
	"context"
	"io"

	"krishaBack/internal/models"
	"krishaBack/utils"
)

type PhotoService struct {
	Store utils.PhotoStore
}

// SavePhoto sanitizes the client filename and writes the content under it,
// replacing any previous photo with the same name.
func (s *PhotoService) SavePhoto(ctx context.Context, filename string, r io.Reader) (string, error) {
	name := utils.SecureFilename(filename)
	if name == "" {
		return "", models.Validationf("invalid filename %q", filename)
	}
	if err := s.Store.Save(ctx, name, r); err != nil {
		return "", err
	}
	return name, nil
}

func (s *PhotoService) OpenPhoto(ctx context.Context, name string) (utils.Photo, error) {
	return s.Store.Open(ctx, name)
}
