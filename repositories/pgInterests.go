package repositories

import (
	"estate-server/db"
	"estate-server/entities"

	"gorm.io/gorm/clause"
)

type interestPgRepository struct {
	db db.Database
}

func NewInterestPgRepository(database db.Database) InterestRepository {
	return &interestPgRepository{db: database}
}

// Upsert inserts the interest row, silently keeping the existing row when the
// same user has already expressed interest in the property.
func (r *interestPgRepository) Upsert(interest *entities.Interest) error {
	return r.db.GetDB().Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}, {Name: "property_id"}},
		DoNothing: true,
	}).Create(interest).Error
}

func (r *interestPgRepository) PropertiesByUserID(userID string) ([]entities.Property, error) {
	properties := make([]entities.Property, 0)
	err := r.db.GetDB().
		Joins("JOIN interests ON interests.property_id = properties.id").
		Where("interests.user_id = ?", userID).
		Find(&properties).Error
	return properties, err
}
