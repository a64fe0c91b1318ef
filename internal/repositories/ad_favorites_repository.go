package repositories

import (
	"context"
	"database/sql"

	"krishaBack/internal/models"
)

type AdFavoriteRepository struct {
	DB      *sql.DB
	Dialect Dialect
}

// AddAdToFavorites is idempotent; an existing pair is left untouched.
func (r *AdFavoriteRepository) AddAdToFavorites(ctx context.Context, fav models.AdFavorite) error {
	query := r.Dialect.InsertSkipDuplicate("favorites", "user_id, ad_id", "?, ?")
	_, err := r.DB.ExecContext(ctx, r.Dialect.Rebind(query), fav.UserID, fav.AdID)
	return err
}

func (r *AdFavoriteRepository) RemoveAdFromFavorites(ctx context.Context, fav models.AdFavorite) error {
	query := `DELETE FROM favorites WHERE user_id = ? AND ad_id = ?`
	_, err := r.DB.ExecContext(ctx, r.Dialect.Rebind(query), fav.UserID, fav.AdID)
	return err
}

func (r *AdFavoriteRepository) GetFavoriteAdsByUser(ctx context.Context, userID int) ([]models.Ad, error) {
	query := adSelect(r.Dialect) + `
        WHERE a.id IN (SELECT ad_id FROM favorites WHERE user_id = ?)
        ORDER BY a.id DESC`
	rows, err := r.DB.QueryContext(ctx, r.Dialect.Rebind(query), userID)
	if err != nil {
		return nil, err
	}
	return scanAds(rows)
}
