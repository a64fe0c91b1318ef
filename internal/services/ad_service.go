package services

import (
	"context"
	"path"
	"strings"

	"krishaBack/internal/models"
	"krishaBack/internal/repositories"
)

// PhotoPathMarker separates the host part of a photo URL from its filename.
const PhotoPathMarker = "/static/photos/"

type AdService struct {
	AdRepo *repositories.AdRepository
}

// PhotoFilename reduces a photo reference to the bare filename stored in the
// database. Full URLs produced by the API are accepted back as input.
func PhotoFilename(entry string) string {
	entry = strings.Trim(strings.TrimSpace(entry), `"`)
	if i := strings.LastIndex(entry, PhotoPathMarker); i >= 0 {
		return entry[i+len(PhotoPathMarker):]
	}
	if strings.HasPrefix(entry, "http://") || strings.HasPrefix(entry, "https://") {
		base := path.Base(entry)
		if base == "." || base == "/" {
			return ""
		}
		return base
	}
	return entry
}

func normalizePhotos(photos []string) []string {
	out := make([]string, 0, len(photos))
	for _, p := range photos {
		if name := PhotoFilename(p); name != "" {
			out = append(out, name)
		}
	}
	return out
}

func valueOr[T any](p *T, def T) T {
	if p == nil {
		return def
	}
	return *p
}

func adFromFields(f models.AdFields) models.Ad {
	return models.Ad{
		Title:         valueOr(f.Title, ""),
		Description:   f.Description.Value,
		Rooms:         valueOr(f.Rooms, 0),
		City:          valueOr(f.City, ""),
		Photos:        normalizePhotos(f.Photos),
		Price:         valueOr(f.Price, 0),
		AdType:        valueOr(f.AdType, ""),
		HouseType:     valueOr(f.HouseType, ""),
		Floor:         valueOr(f.Floor, 0),
		FloorsInHouse: valueOr(f.FloorsInHouse, 0),
		YearBuilt:     valueOr(f.YearBuilt, 0),
		Area:          valueOr(f.Area, 0),
		Complex:       f.Complex,
	}
}

func (s *AdService) ListAds(ctx context.Context, filter models.AdFilter) ([]models.Ad, error) {
	return s.AdRepo.ListAds(ctx, filter)
}

func (s *AdService) GetAdByID(ctx context.Context, id int) (models.Ad, error) {
	return s.AdRepo.GetAdByID(ctx, id)
}

func (s *AdService) CreateAd(ctx context.Context, req models.CreateAdRequest) (int, error) {
	ad := adFromFields(req.AdFields)
	ad.UserID = req.UserID
	return s.AdRepo.CreateAd(ctx, ad)
}

func (s *AdService) UpdateAd(ctx context.Context, id int, req models.UpdateAdRequest) error {
	ad := adFromFields(req.AdFields)
	ad.ID = id
	return s.AdRepo.UpdateAd(ctx, ad)
}

func (s *AdService) DeleteAd(ctx context.Context, id int) error {
	return s.AdRepo.DeleteAd(ctx, id)
}
