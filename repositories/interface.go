package repositories

import "estate-server/entities"

type UserRepository interface {
	Create(user *entities.User) error
	GetByID(id string) (*entities.User, error)
	GetByEmail(email string) (*entities.User, error)
	Update(user *entities.User) error
	ListPublic() ([]entities.PublicUser, error)
}

type PropertyRepository interface {
	Create(property *entities.Property) error
	GetByID(id string) (*entities.Property, error)
	ListApproved() ([]entities.Property, error)
	Search(filter entities.PropertyFilter) ([]entities.Property, error)
	ListPending() ([]entities.Property, error)
	Approve(id string) error
}

type InterestRepository interface {
	Upsert(interest *entities.Interest) error
	PropertiesByUserID(userID string) ([]entities.Property, error)
}

type MessageRepository interface {
	Create(message *entities.Message) error
	Conversation(userID, withUserID string) ([]entities.Message, error)
}

type MeetingRepository interface {
	Create(meeting *entities.Meeting) error
	GetByUserID(userID string) ([]entities.MeetingDetail, error)
}

type OTPRepository interface {
	Upsert(otp *entities.EmailOTP) error
	GetByEmail(email string) (*entities.EmailOTP, error)
	Delete(email string) error
}
