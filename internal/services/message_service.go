package services

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"krishaBack/internal/models"
	"krishaBack/internal/repositories"
)

// MessageNotifier delivers a stored message to its recipient's live
// connections.
type MessageNotifier interface {
	NotifyMessage(ctx context.Context, msg models.Message) error
}

type MessageService struct {
	MessageRepo *repositories.MessageRepository
	Notifier    MessageNotifier
}

// SendMessage stores the message and pushes it to the recipient. A failed push
// is logged and does not fail the send.
func (s *MessageService) SendMessage(ctx context.Context, req models.SendMessageRequest) (models.Message, error) {
	msg := models.Message{
		FromUserID: req.FromUserID,
		ToUserID:   req.ToUserID,
		Message:    *req.Message,
	}
	id, err := s.MessageRepo.CreateMessage(ctx, msg)
	if err != nil {
		return models.Message{}, err
	}
	msg.ID = id
	msg.Timestamp = time.Now().UTC()

	if s.Notifier != nil {
		if err := s.Notifier.NotifyMessage(ctx, msg); err != nil {
			zerolog.Ctx(ctx).Warn().Err(err).Int("message_id", id).Msg("message push failed")
		}
	}
	return msg, nil
}

func (s *MessageService) GetConversation(ctx context.Context, userA, userB int) ([]models.Message, error) {
	return s.MessageRepo.GetConversation(ctx, userA, userB)
}
