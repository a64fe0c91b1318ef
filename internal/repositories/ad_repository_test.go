package repositories

import (
	"context"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"krishaBack/internal/models"
)

var adColumns = []string{
	"id", "user_id", "title", "description", "rooms", "city", "photos", "price", "ad_type",
	"house_type", "floor", "floors_in_house", "year_built", "area", "complex", "fio", "phone",
}

func newAdRepo(t *testing.T, driver string) (*AdRepository, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return &AdRepository{DB: db, Dialect: Dialect{Driver: driver}}, mock
}

func TestListAdsAppliesFiltersAndOrder(t *testing.T) {
	repo, mock := newAdRepo(t, DriverPostgres)
	priceMax := int64(300)

	mock.ExpectQuery(`FROM ads a\s+JOIN "user" u ON a.user_id = u.id WHERE a.city ILIKE \$1 AND a.price <= \$2 ORDER BY a.id DESC`).
		WithArgs("%Астана%", int64(300)).
		WillReturnRows(sqlmock.NewRows(adColumns).
			AddRow(9, 1, "Flat", "nice", 2, "Астана", []byte(`["a.jpg", 5, "b.jpg"]`), 250, "sale", "panel", 3, 9, 2010, 54.5, nil, "Ivanov", "+7700").
			AddRow(4, 1, "Room", nil, 1, "Астана", nil, 100, "rent", "brick", 1, 5, 1990, 18.0, "Expo", "Ivanov", "+7700"))

	ads, err := repo.ListAds(context.Background(), models.AdFilter{City: "Астана", PriceMax: &priceMax})
	require.NoError(t, err)
	require.Len(t, ads, 2)

	assert.Equal(t, 9, ads[0].ID)
	assert.Equal(t, []string{"a.jpg", "b.jpg"}, ads[0].Photos)
	assert.Nil(t, ads[0].Complex)
	assert.Equal(t, "Ivanov", ads[0].UserFio)

	assert.Equal(t, []string{}, ads[1].Photos)
	assert.Nil(t, ads[1].Description)
	require.NotNil(t, ads[1].Complex)
	assert.Equal(t, "Expo", *ads[1].Complex)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestGetAdByIDNotFound(t *testing.T) {
	repo, mock := newAdRepo(t, DriverPostgres)
	mock.ExpectQuery(`WHERE a.id = \$1`).WithArgs(42).WillReturnRows(sqlmock.NewRows(adColumns))

	_, err := repo.GetAdByID(context.Background(), 42)
	require.ErrorIs(t, err, models.ErrAdNotFound)
}

func TestCreateAdPostgresReturnsID(t *testing.T) {
	repo, mock := newAdRepo(t, DriverPostgres)
	mock.ExpectQuery(regexp.QuoteMeta(`$6::jsonb`) + `.*RETURNING id`).
		WithArgs(1, "Flat", sqlmock.AnyArg(), 0, "Almaty", `["a.jpg","b.jpg"]`, int64(1000), "sale", "panel", 0, 0, 0, 0.0, sqlmock.AnyArg()).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(17))

	id, err := repo.CreateAd(context.Background(), models.Ad{
		UserID: 1, Title: "Flat", City: "Almaty", Price: 1000, AdType: "sale", HouseType: "panel",
		Photos: []string{"a.jpg", "b.jpg"},
	})
	require.NoError(t, err)
	assert.Equal(t, 17, id)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateAdMySQLUsesLastInsertID(t *testing.T) {
	repo, mock := newAdRepo(t, DriverMySQL)
	mock.ExpectExec(`INSERT INTO ads`).WillReturnResult(sqlmock.NewResult(23, 1))

	id, err := repo.CreateAd(context.Background(), models.Ad{UserID: 1})
	require.NoError(t, err)
	assert.Equal(t, 23, id)
}

func TestDeleteAdIsUnconditional(t *testing.T) {
	repo, mock := newAdRepo(t, DriverPostgres)
	mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM ads WHERE id = $1`)).WithArgs(5).WillReturnResult(sqlmock.NewResult(0, 0))

	require.NoError(t, repo.DeleteAd(context.Background(), 5))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestDecodePhotos(t *testing.T) {
	assert.Equal(t, []string{"a.jpg"}, decodePhotos([]byte(`["a.jpg"]`)))
	assert.Equal(t, []string{"a.jpg", "b.jpg"}, decodePhotos([]byte(`"[\"a.jpg\", \"b.jpg\"]"`)))
	assert.Equal(t, []string{"x.png"}, decodePhotos([]byte(`[null, {"a":1}, "x.png"]`)))
	assert.Equal(t, []string{}, decodePhotos([]byte(`not json`)))
	assert.Equal(t, []string{}, decodePhotos(nil))
}
