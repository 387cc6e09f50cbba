package repositories

import (
	"database/sql"

	"saferide/internal/models"
)

type MessageRepository interface {
	Create(chatID, senderID int, text string) (*models.Message, error)
	ListByChat(chatID int) ([]*models.Message, error)
}

type messageRepository struct {
	DB *sql.DB
}

func NewMessageRepository(db *sql.DB) MessageRepository {
	return &messageRepository{DB: db}
}

func (r *messageRepository) Create(chatID, senderID int, text string) (*models.Message, error) {
	const q = `
                INSERT INTO messages (chat_id, sender_id, text)
                VALUES ($1, $2, $3)
                RETURNING id, created_at, updated_at
        `
	msg := &models.Message{
		ChatID:   chatID,
		SenderID: senderID,
		Text:     text,
	}
	if err := r.DB.QueryRow(q, chatID, senderID, text).Scan(&msg.ID, &msg.CreatedAt, &msg.UpdatedAt); err != nil {
		return nil, err
	}
	return msg, nil
}

// ListByChat returns messages oldest first; id breaks created_at ties so the
// order is stable for same-timestamp inserts.
func (r *messageRepository) ListByChat(chatID int) ([]*models.Message, error) {
	const q = `
                SELECT id, chat_id, sender_id, text, created_at, updated_at
                FROM messages
                WHERE chat_id = $1
                ORDER BY created_at ASC, id ASC
        `
	rows, err := r.DB.Query(q, chatID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var messages []*models.Message
	for rows.Next() {
		var msg models.Message
		if err := rows.Scan(&msg.ID, &msg.ChatID, &msg.SenderID, &msg.Text, &msg.CreatedAt, &msg.UpdatedAt); err != nil {
			return nil, err
		}
		messages = append(messages, &msg)
	}
	return messages, rows.Err()
}
