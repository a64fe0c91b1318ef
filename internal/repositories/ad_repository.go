package repositories

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"krishaBack/internal/models"
)

type AdRepository struct {
	DB      *sql.DB
	Dialect Dialect
}

func adSelect(d Dialect) string {
	return `
        SELECT a.id, a.user_id, COALESCE(a.title, ''), a.description, COALESCE(a.rooms, 0),
               COALESCE(a.city, ''), a.photos, COALESCE(a.price, 0), COALESCE(a.ad_type, ''),
               COALESCE(a.house_type, ''), COALESCE(a.floor, 0), COALESCE(a.floors_in_house, 0),
               COALESCE(a.year_built, 0), COALESCE(a.area, 0), a.complex,
               COALESCE(u.fio, ''), COALESCE(u.phone, '')
        FROM ads a
        JOIN ` + d.UserTable() + ` u ON a.user_id = u.id`
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanAd(row rowScanner) (models.Ad, error) {
	var ad models.Ad
	var photos []byte
	err := row.Scan(
		&ad.ID, &ad.UserID, &ad.Title, &ad.Description, &ad.Rooms,
		&ad.City, &photos, &ad.Price, &ad.AdType,
		&ad.HouseType, &ad.Floor, &ad.FloorsInHouse,
		&ad.YearBuilt, &ad.Area, &ad.Complex,
		&ad.UserFio, &ad.UserPhone,
	)
	if err != nil {
		return models.Ad{}, err
	}
	ad.Photos = decodePhotos(photos)
	return ad, nil
}

func scanAds(rows *sql.Rows) ([]models.Ad, error) {
	defer rows.Close()
	ads := []models.Ad{}
	for rows.Next() {
		ad, err := scanAd(rows)
		if err != nil {
			return nil, err
		}
		ads = append(ads, ad)
	}
	return ads, rows.Err()
}

// decodePhotos accepts a JSON array, or a JSON string holding an array, and
// keeps only the string entries. Anything unreadable yields an empty list.
func decodePhotos(raw []byte) []string {
	photos := []string{}
	if len(raw) == 0 {
		return photos
	}
	var items []any
	if err := json.Unmarshal(raw, &items); err != nil {
		var inner string
		if err := json.Unmarshal(raw, &inner); err != nil {
			return photos
		}
		if err := json.Unmarshal([]byte(inner), &items); err != nil {
			return photos
		}
	}
	for _, item := range items {
		if s, ok := item.(string); ok {
			photos = append(photos, s)
		}
	}
	return photos
}

func encodePhotos(photos []string) (string, error) {
	if photos == nil {
		photos = []string{}
	}
	b, err := json.Marshal(photos)
	if err != nil {
		return "", fmt.Errorf("failed to marshal photos: %w", err)
	}
	return string(b), nil
}

func (r *AdRepository) ListAds(ctx context.Context, filter models.AdFilter) ([]models.Ad, error) {
	query := adSelect(r.Dialect)
	conditions, params := adFilterClauses(filter, r.Dialect)
	if len(conditions) > 0 {
		query += " WHERE " + strings.Join(conditions, " AND ")
	}
	query += " ORDER BY a.id DESC"

	rows, err := r.DB.QueryContext(ctx, r.Dialect.Rebind(query), params...)
	if err != nil {
		return nil, err
	}
	return scanAds(rows)
}

func (r *AdRepository) GetAdByID(ctx context.Context, id int) (models.Ad, error) {
	query := adSelect(r.Dialect) + " WHERE a.id = ?"
	ad, err := scanAd(r.DB.QueryRowContext(ctx, r.Dialect.Rebind(query), id))
	if errors.Is(err, sql.ErrNoRows) {
		return models.Ad{}, models.ErrAdNotFound
	}
	if err != nil {
		return models.Ad{}, err
	}
	return ad, nil
}

func (r *AdRepository) CreateAd(ctx context.Context, ad models.Ad) (int, error) {
	photos, err := encodePhotos(ad.Photos)
	if err != nil {
		return 0, err
	}
	query := `
        INSERT INTO ads (user_id, title, description, rooms, city, photos, price,
                         ad_type, house_type, floor, floors_in_house, year_built, area, complex)
        VALUES (?, ?, ?, ?, ?, ` + r.Dialect.JSONParam() + `, ?, ?, ?, ?, ?, ?, ?, ?)`
	return insertReturningID(ctx, r.DB, r.Dialect, query,
		ad.UserID, ad.Title, ad.Description, ad.Rooms, ad.City, photos, ad.Price,
		ad.AdType, ad.HouseType, ad.Floor, ad.FloorsInHouse, ad.YearBuilt, ad.Area, ad.Complex,
	)
}

// UpdateAd replaces every editable column. Unknown ids update nothing.
func (r *AdRepository) UpdateAd(ctx context.Context, ad models.Ad) error {
	photos, err := encodePhotos(ad.Photos)
	if err != nil {
		return err
	}
	query := `
        UPDATE ads
        SET title = ?, description = ?, rooms = ?, city = ?, photos = ` + r.Dialect.JSONParam() + `,
            price = ?, ad_type = ?, house_type = ?, floor = ?, floors_in_house = ?,
            year_built = ?, area = ?, complex = ?
        WHERE id = ?`
	_, err = r.DB.ExecContext(ctx, r.Dialect.Rebind(query),
		ad.Title, ad.Description, ad.Rooms, ad.City, photos,
		ad.Price, ad.AdType, ad.HouseType, ad.Floor, ad.FloorsInHouse,
		ad.YearBuilt, ad.Area, ad.Complex, ad.ID,
	)
	return err
}

func (r *AdRepository) DeleteAd(ctx context.Context, id int) error {
	_, err := r.DB.ExecContext(ctx, r.Dialect.Rebind(`DELETE FROM ads WHERE id = ?`), id)
	return err
}
