package repositories

import (
	"context"
	"database/sql"

	"krishaBack/internal/models"
)

type MessageRepository struct {
	DB      *sql.DB
	Dialect Dialect
}

// CreateMessage stores the message with the database clock and returns its id.
func (r *MessageRepository) CreateMessage(ctx context.Context, msg models.Message) (int, error) {
	query := `INSERT INTO messages (from_user_id, to_user_id, message, timestamp) VALUES (?, ?, ?, NOW())`
	return insertReturningID(ctx, r.DB, r.Dialect, query, msg.FromUserID, msg.ToUserID, msg.Message)
}

// GetConversation returns the messages exchanged between two users in both
// directions, oldest first.
func (r *MessageRepository) GetConversation(ctx context.Context, userA, userB int) ([]models.Message, error) {
	query := `
        SELECT id, from_user_id, to_user_id, COALESCE(message, ''), timestamp
        FROM messages
        WHERE (from_user_id = ? AND to_user_id = ?)
           OR (from_user_id = ? AND to_user_id = ?)
        ORDER BY timestamp ASC, id ASC`
	rows, err := r.DB.QueryContext(ctx, r.Dialect.Rebind(query), userA, userB, userB, userA)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	messages := []models.Message{}
	for rows.Next() {
		var m models.Message
		if err := rows.Scan(&m.ID, &m.FromUserID, &m.ToUserID, &m.Message, &m.Timestamp); err != nil {
			return nil, err
		}
		messages = append(messages, m)
	}
	return messages, rows.Err()
}
