package repositories

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/go-sql-driver/mysql"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"krishaBack/internal/models"
)

func TestGetChatsByUserKeepsMissingPartnerName(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()
	repo := &ChatRepository{DB: db, Dialect: Dialect{Driver: DriverPostgres}}

	now := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	mock.ExpectQuery(`ROW_NUMBER\(\) OVER .*WHERE t.rn = 1\s+ORDER BY t.timestamp DESC, t.id DESC`).
		WithArgs(1, 1, 1, 1).
		WillReturnRows(sqlmock.NewRows([]string{"partner_id", "fio", "message", "timestamp"}).
			AddRow(3, "Petrov", "latest", now).
			AddRow(7, nil, "older", now.Add(-time.Hour)))

	chats, err := repo.GetChatsByUser(context.Background(), 1)
	require.NoError(t, err)
	require.Len(t, chats, 2)
	require.NotNil(t, chats[0].PartnerName)
	assert.Equal(t, "Petrov", *chats[0].PartnerName)
	assert.Nil(t, chats[1].PartnerName)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestGetConversationQueriesBothDirections(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()
	repo := &MessageRepository{DB: db, Dialect: Dialect{Driver: DriverMySQL}}

	t0 := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	mock.ExpectQuery(`ORDER BY timestamp ASC, id ASC`).
		WithArgs(1, 2, 2, 1).
		WillReturnRows(sqlmock.NewRows([]string{"id", "from_user_id", "to_user_id", "message", "timestamp"}).
			AddRow(1, 1, 2, "hi", t0).
			AddRow(2, 2, 1, "hello", t0))

	msgs, err := repo.GetConversation(context.Background(), 1, 2)
	require.NoError(t, err)
	assert.Equal(t, []models.Message{
		{ID: 1, FromUserID: 1, ToUserID: 2, Message: "hi", Timestamp: t0},
		{ID: 2, FromUserID: 2, ToUserID: 1, Message: "hello", Timestamp: t0},
	}, msgs)
}

func TestAddFavoritePostgresIgnoresConflicts(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()
	repo := &AdFavoriteRepository{DB: db, Dialect: Dialect{Driver: DriverPostgres}}

	mock.ExpectExec(`INSERT INTO favorites \(user_id, ad_id\) VALUES \(\$1, \$2\) ON CONFLICT DO NOTHING`).
		WithArgs(1, 9).WillReturnResult(sqlmock.NewResult(0, 0))

	require.NoError(t, repo.AddAdToFavorites(context.Background(), models.AdFavorite{UserID: 1, AdID: 9}))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestAddFavoriteMySQLReportsMissingAd(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()
	repo := &AdFavoriteRepository{DB: db, Dialect: Dialect{Driver: DriverMySQL}}

	mock.ExpectExec(`INSERT INTO favorites \(user_id, ad_id\) VALUES \(\?, \?\) ON DUPLICATE KEY UPDATE user_id = user_id`).
		WithArgs(1, 404).
		WillReturnError(&mysql.MySQLError{Number: 1452, Message: "Cannot add or update a child row: a foreign key constraint fails"})

	err = repo.AddAdToFavorites(context.Background(), models.AdFavorite{UserID: 1, AdID: 404})
	require.Error(t, err)
	assert.True(t, IsConstraintViolation(err))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdateUserWithoutPassword(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()
	repo := &UserRepository{DB: db, Dialect: Dialect{Driver: DriverPostgres}}

	mock.ExpectExec(`UPDATE "user" SET fio = \$1, phone = \$2, email = \$3 WHERE id = \$4`).
		WithArgs("A", "1", "a@x", 5).WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, repo.UpdateUser(context.Background(), models.User{ID: 5, Fio: "A", Phone: "1", Email: "a@x"}, nil))
	require.NoError(t, mock.ExpectationsWereMet())
}
