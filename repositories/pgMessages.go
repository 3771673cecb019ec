package repositories

import (
	"estate-server/db"
	"estate-server/entities"
)

type messagePgRepository struct {
	db db.Database
}

func NewMessagePgRepository(database db.Database) MessageRepository {
	return &messagePgRepository{db: database}
}

func (r *messagePgRepository) Create(message *entities.Message) error {
	return r.db.GetDB().Create(message).Error
}

// Conversation returns every message between the pair in either direction,
// oldest first.
func (r *messagePgRepository) Conversation(userID, withUserID string) ([]entities.Message, error) {
	messages := make([]entities.Message, 0)
	err := r.db.GetDB().
		Where("(from_user_id = ? AND to_user_id = ?) OR (from_user_id = ? AND to_user_id = ?)",
			userID, withUserID, withUserID, userID).
		Order("timestamp ASC").
		Find(&messages).Error
	return messages, err
}
