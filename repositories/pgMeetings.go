package repositories

import (
	"estate-server/db"
	"estate-server/entities"
)

type meetingPgRepository struct {
	db db.Database
}

func NewMeetingPgRepository(database db.Database) MeetingRepository {
	return &meetingPgRepository{db: database}
}

func (r *meetingPgRepository) Create(meeting *entities.Meeting) error {
	return r.db.GetDB().Create(meeting).Error
}

func (r *meetingPgRepository) GetByUserID(userID string) ([]entities.MeetingDetail, error) {
	meetings := make([]entities.MeetingDetail, 0)
	err := r.db.GetDB().
		Table("meetings").
		Select("meetings.id, meetings.user_id, meetings.property_id, meetings.date, meetings.notes, properties.title AS property_title").
		Joins("LEFT JOIN properties ON properties.id = meetings.property_id").
		Where("meetings.user_id = ?", userID).
		Order("meetings.created_at ASC").
		Scan(&meetings).Error
	return meetings, err
}
