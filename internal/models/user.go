package models

type User struct {
	ID       int    `json:"id"`
	Fio      string `json:"fio"`
	Phone    string `json:"phone"`
	Email    string `json:"email"`
	Password string `json:"-"`
}

// Request strings are pointers so that validation checks presence only; an
// empty string is a valid value.
type SignUpRequest struct {
	Fio      *string `json:"fio" validate:"required"`
	Phone    *string `json:"phone" validate:"required"`
	Email    *string `json:"email" validate:"required"`
	Password *string `json:"password" validate:"required"`
}

type SignInRequest struct {
	Email    *string `json:"email" validate:"required"`
	Password *string `json:"password" validate:"required"`
}

// UpdateUserRequest replaces fio, phone and email. Password is changed only
// when it is present and non-empty.
type UpdateUserRequest struct {
	Fio      *string `json:"fio" validate:"required"`
	Phone    *string `json:"phone" validate:"required"`
	Email    *string `json:"email" validate:"required"`
	Password *string `json:"password,omitempty"`
}
