package models

import "time"

type Message struct {
	ID         int       `json:"id"`
	FromUserID int       `json:"from_user_id"`
	ToUserID   int       `json:"to_user_id"`
	Message    string    `json:"message"`
	Timestamp  time.Time `json:"timestamp"`
}

type SendMessageRequest struct {
	FromUserID int     `json:"from_user_id" validate:"required"`
	ToUserID   int     `json:"to_user_id" validate:"required"`
	Message    *string `json:"message" validate:"required"`
}
