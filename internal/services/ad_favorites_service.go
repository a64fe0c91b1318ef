package services

import (
	"context"

	"krishaBack/internal/models"
	"krishaBack/internal/repositories"
)

type AdFavoriteService struct {
	AdFavoriteRepo *repositories.AdFavoriteRepository
}

func (s *AdFavoriteService) AddAdToFavorites(ctx context.Context, fav models.AdFavorite) error {
	return s.AdFavoriteRepo.AddAdToFavorites(ctx, fav)
}

func (s *AdFavoriteService) RemoveAdFromFavorites(ctx context.Context, fav models.AdFavorite) error {
	return s.AdFavoriteRepo.RemoveAdFromFavorites(ctx, fav)
}

func (s *AdFavoriteService) GetFavoriteAdsByUser(ctx context.Context, userID int) ([]models.Ad, error) {
	return s.AdFavoriteRepo.GetFavoriteAdsByUser(ctx, userID)
}
