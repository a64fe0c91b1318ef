package repositories

import (
	"context"
	"database/sql"

	"krishaBack/internal/models"
)

type ChatRepository struct {
	DB      *sql.DB
	Dialect Dialect
}

// GetChatsByUser returns one summary per conversation partner holding the
// latest message, newest conversation first. The partner name is read from the
// user table at query time and is null when the partner no longer exists.
func (r *ChatRepository) GetChatsByUser(ctx context.Context, userID int) ([]models.ChatSummary, error) {
	query := `
        SELECT t.partner_id, u.fio, t.message, t.timestamp
        FROM (
            SELECT CASE WHEN m.from_user_id = ? THEN m.to_user_id ELSE m.from_user_id END AS partner_id,
                   m.id, COALESCE(m.message, '') AS message, m.timestamp,
                   ROW_NUMBER() OVER (
                       PARTITION BY CASE WHEN m.from_user_id = ? THEN m.to_user_id ELSE m.from_user_id END
                       ORDER BY m.timestamp DESC, m.id DESC
                   ) AS rn
            FROM messages m
            WHERE m.from_user_id = ? OR m.to_user_id = ?
        ) t
        LEFT JOIN ` + r.Dialect.UserTable() + ` u ON u.id = t.partner_id
        WHERE t.rn = 1
        ORDER BY t.timestamp DESC, t.id DESC`
	rows, err := r.DB.QueryContext(ctx, r.Dialect.Rebind(query), userID, userID, userID, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	chats := []models.ChatSummary{}
	for rows.Next() {
		var c models.ChatSummary
		var name sql.NullString
		if err := rows.Scan(&c.PartnerID, &name, &c.Message, &c.Timestamp); err != nil {
			return nil, err
		}
		if name.Valid {
			c.PartnerName = &name.String
		}
		chats = append(chats, c)
	}
	return chats, rows.Err()
}
