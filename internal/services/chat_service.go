package services

import (
	"context"

	"krishaBack/internal/models"
	"krishaBack/internal/repositories"
)

type ChatService struct {
	ChatRepo *repositories.ChatRepository
}

func (s *ChatService) GetChatsByUser(ctx context.Context, userID int) ([]models.ChatSummary, error) {
	return s.ChatRepo.GetChatsByUser(ctx, userID)
}
