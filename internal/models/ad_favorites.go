package models

type AdFavorite struct {
	UserID int `json:"user_id" validate:"required"`
	AdID   int `json:"ad_id" validate:"required"`
}
