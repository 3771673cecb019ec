package usecases

import (
	"fmt"

	"estate-server/entities"
	"estate-server/repositories"
)

// MessagingUseCase covers direct messages and meeting scheduling.
type MessagingUseCase struct {
	Messages   repositories.MessageRepository
	Meetings   repositories.MeetingRepository
	Users      repositories.UserRepository
	Properties repositories.PropertyRepository
}

func NewMessagingUseCase(messages repositories.MessageRepository, meetings repositories.MeetingRepository, users repositories.UserRepository, properties repositories.PropertyRepository) *MessagingUseCase {
	return &MessagingUseCase{
		Messages:   messages,
		Meetings:   meetings,
		Users:      users,
		Properties: properties,
	}
}

// SendMessage inserts a timestamped message after checking the recipient
// exists. Returns the stored row so callers can push notifications.
func (uc *MessagingUseCase) SendMessage(fromUserID, toUserID, content string) (*entities.Message, error) {
	if toUserID == "" || content == "" {
		return nil, fmt.Errorf("%w: toUserId and content are required", ErrValidation)
	}
	if _, err := uc.Users.GetByID(toUserID); err != nil {
		return nil, ErrNotFound
	}

	message := &entities.Message{
		FromUserID: fromUserID,
		ToUserID:   toUserID,
		Content:    content,
	}
	if err := uc.Messages.Create(message); err != nil {
		return nil, err
	}
	return message, nil
}

// Conversation returns the full exchange between two users, oldest first.
func (uc *MessagingUseCase) Conversation(userID, withUserID string) ([]entities.Message, error) {
	if withUserID == "" {
		return nil, fmt.Errorf("%w: withUserId is required", ErrValidation)
	}
	return uc.Messages.Conversation(userID, withUserID)
}

// ScheduleMeeting inserts a meeting row. The date is free text from the
// client; no conflict detection, double-booking is allowed.
func (uc *MessagingUseCase) ScheduleMeeting(userID, propertyID, date, notes string) error {
	if date == "" {
		return fmt.Errorf("%w: date is required", ErrValidation)
	}
	if propertyID != "" {
		if _, err := uc.Properties.GetByID(propertyID); err != nil {
			return ErrNotFound
		}
	}

	meeting := &entities.Meeting{
		UserID:     userID,
		PropertyID: propertyID,
		Date:       date,
		Notes:      notes,
	}
	return uc.Meetings.Create(meeting)
}

// MeetingsOf returns the user's meetings joined with property titles.
func (uc *MessagingUseCase) MeetingsOf(userID string) ([]entities.MeetingDetail, error) {
	return uc.Meetings.GetByUserID(userID)
}
