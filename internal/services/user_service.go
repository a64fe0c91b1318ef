package services

import (
	"context"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/base64"
	"fmt"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"krishaBack/internal/models"
	"krishaBack/internal/repositories"
)

type UserService struct {
	UserRepo *repositories.UserRepository
}

// bcrypt rejects input longer than 72 bytes, so passwords are digested to a
// fixed 44 byte string first.
func bcryptInput(password string) []byte {
	sum := sha256.Sum256([]byte(password))
	return []byte(base64.StdEncoding.EncodeToString(sum[:]))
}

func hashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword(bcryptInput(password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}
	return string(hash), nil
}

// passwordMatches accepts bcrypt hashes and, for accounts created before
// hashing was introduced, plaintext values.
func passwordMatches(stored, given string) bool {
	if strings.HasPrefix(stored, "$2a$") || strings.HasPrefix(stored, "$2b$") || strings.HasPrefix(stored, "$2y$") {
		return bcrypt.CompareHashAndPassword([]byte(stored), bcryptInput(given)) == nil
	}
	return subtle.ConstantTimeCompare([]byte(stored), []byte(given)) == 1
}

func (s *UserService) SignUp(ctx context.Context, req models.SignUpRequest) (models.User, error) {
	hash, err := hashPassword(*req.Password)
	if err != nil {
		return models.User{}, err
	}
	user, err := s.UserRepo.CreateUser(ctx, models.User{
		Fio:      *req.Fio,
		Phone:    *req.Phone,
		Email:    *req.Email,
		Password: hash,
	})
	if err != nil {
		return models.User{}, err
	}
	user.Password = ""
	return user, nil
}

func (s *UserService) SignIn(ctx context.Context, req models.SignInRequest) (models.User, error) {
	users, err := s.UserRepo.GetUsersByEmail(ctx, *req.Email)
	if err != nil {
		return models.User{}, err
	}
	for _, u := range users {
		if passwordMatches(u.Password, *req.Password) {
			u.Password = ""
			return u, nil
		}
	}
	return models.User{}, models.ErrInvalidCredentials
}

func (s *UserService) GetUserByID(ctx context.Context, id int) (models.User, error) {
	return s.UserRepo.GetUserByID(ctx, id)
}

func (s *UserService) UpdateUser(ctx context.Context, id int, req models.UpdateUserRequest) error {
	var passwordHash *string
	if req.Password != nil && *req.Password != "" {
		hash, err := hashPassword(*req.Password)
		if err != nil {
			return err
		}
		passwordHash = &hash
	}
	return s.UserRepo.UpdateUser(ctx, models.User{
		ID:    id,
		Fio:   *req.Fio,
		Phone: *req.Phone,
		Email: *req.Email,
	}, passwordHash)
}
