package repositories

import (
	"estate-server/db"
	"estate-server/entities"
)

type propertyPgRepository struct {
	db db.Database
}

func NewPropertyPgRepository(database db.Database) PropertyRepository {
	return &propertyPgRepository{db: database}
}

func (r *propertyPgRepository) Create(property *entities.Property) error {
	return r.db.GetDB().Create(property).Error
}

func (r *propertyPgRepository) GetByID(id string) (*entities.Property, error) {
	var property entities.Property
	err := r.db.GetDB().Where("id = ?", id).First(&property).Error
	if err != nil {
		return nil, err
	}
	return &property, nil
}

func (r *propertyPgRepository) ListApproved() ([]entities.Property, error) {
	properties := make([]entities.Property, 0)
	err := r.db.GetDB().Where("approved = ?", true).Order("created_at DESC").Find(&properties).Error
	return properties, err
}

// Search applies the filters conjunctively; absent filters add no clause.
func (r *propertyPgRepository) Search(filter entities.PropertyFilter) ([]entities.Property, error) {
	q := r.db.GetDB().Where("approved = ?", true)
	if filter.City != "" {
		q = q.Where("city ILIKE ?", "%"+filter.City+"%")
	}
	if filter.Type != "" {
		q = q.Where("type = ?", filter.Type)
	}
	if filter.MinPrice != nil {
		q = q.Where("price >= ?", *filter.MinPrice)
	}
	if filter.MaxPrice != nil {
		q = q.Where("price <= ?", *filter.MaxPrice)
	}

	properties := make([]entities.Property, 0)
	err := q.Order("created_at DESC").Find(&properties).Error
	return properties, err
}

func (r *propertyPgRepository) ListPending() ([]entities.Property, error) {
	properties := make([]entities.Property, 0)
	err := r.db.GetDB().Where("approved = ?", false).Order("created_at ASC").Find(&properties).Error
	return properties, err
}

func (r *propertyPgRepository) Approve(id string) error {
	return r.db.GetDB().Model(&entities.Property{}).Where("id = ?", id).Update("approved", true).Error
}
