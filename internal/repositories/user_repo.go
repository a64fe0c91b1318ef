package repositories

import (
	"context"
	"database/sql"
	"errors"

	"krishaBack/internal/models"
)

type UserRepository struct {
	DB      *sql.DB
	Dialect Dialect
}

// CreateUser stores the user with an already hashed password and returns it
// with the generated id.
func (r *UserRepository) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	query := `INSERT INTO ` + r.Dialect.UserTable() + ` (fio, phone, email, password) VALUES (?, ?, ?, ?)`
	id, err := insertReturningID(ctx, r.DB, r.Dialect, query, user.Fio, user.Phone, user.Email, user.Password)
	if err != nil {
		return models.User{}, err
	}
	user.ID = id
	return user, nil
}

func (r *UserRepository) GetUserByID(ctx context.Context, id int) (models.User, error) {
	query := `SELECT id, COALESCE(fio, ''), COALESCE(phone, ''), COALESCE(email, '') FROM ` + r.Dialect.UserTable() + ` WHERE id = ?`
	var user models.User
	err := r.DB.QueryRowContext(ctx, r.Dialect.Rebind(query), id).Scan(&user.ID, &user.Fio, &user.Phone, &user.Email)
	if errors.Is(err, sql.ErrNoRows) {
		return models.User{}, models.ErrUserNotFound
	}
	if err != nil {
		return models.User{}, err
	}
	return user, nil
}

// GetUsersByEmail returns every account registered with the email, stored
// password included, oldest first.
func (r *UserRepository) GetUsersByEmail(ctx context.Context, email string) ([]models.User, error) {
	query := `SELECT id, COALESCE(fio, ''), COALESCE(phone, ''), COALESCE(email, ''), COALESCE(password, '')
        FROM ` + r.Dialect.UserTable() + ` WHERE email = ? ORDER BY id`
	rows, err := r.DB.QueryContext(ctx, r.Dialect.Rebind(query), email)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var users []models.User
	for rows.Next() {
		var u models.User
		if err := rows.Scan(&u.ID, &u.Fio, &u.Phone, &u.Email, &u.Password); err != nil {
			return nil, err
		}
		users = append(users, u)
	}
	return users, rows.Err()
}

// UpdateUser changes the profile fields and, when passwordHash is non-nil, the
// password. An unknown id updates nothing.
func (r *UserRepository) UpdateUser(ctx context.Context, user models.User, passwordHash *string) error {
	query := `UPDATE ` + r.Dialect.UserTable() + ` SET fio = ?, phone = ?, email = ?`
	args := []any{user.Fio, user.Phone, user.Email}
	if passwordHash != nil {
		query += `, password = ?`
		args = append(args, *passwordHash)
	}
	query += ` WHERE id = ?`
	args = append(args, user.ID)

	_, err := r.DB.ExecContext(ctx, r.Dialect.Rebind(query), args...)
	return err
}
