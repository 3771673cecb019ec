package httpHandler

import (
	"context"
	"strings"
	"time"

	"estate-server/entities"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Minimal in-memory repositories backing the route tests.

type memUserRepo struct {
	users map[string]*entities.User
}

func (r *memUserRepo) Create(user *entities.User) error {
	if user.ID == "" {
		user.ID = uuid.New().String()
	}
	if user.Role == "" {
		user.Role = entities.RoleUser
	}
	r.users[user.ID] = user
	return nil
}

func (r *memUserRepo) GetByID(id string) (*entities.User, error) {
	if u, ok := r.users[id]; ok {
		return u, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *memUserRepo) GetByEmail(email string) (*entities.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *memUserRepo) Update(user *entities.User) error {
	r.users[user.ID] = user
	return nil
}

func (r *memUserRepo) ListPublic() ([]entities.PublicUser, error) {
	out := make([]entities.PublicUser, 0, len(r.users))
	for _, u := range r.users {
		out = append(out, entities.PublicUser{ID: u.ID, Email: u.Email})
	}
	return out, nil
}

type memOTPRepo struct {
	otps map[string]*entities.EmailOTP
}

func (r *memOTPRepo) Upsert(otp *entities.EmailOTP) error {
	r.otps[otp.Email] = otp
	return nil
}

func (r *memOTPRepo) GetByEmail(email string) (*entities.EmailOTP, error) {
	if o, ok := r.otps[email]; ok {
		return o, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *memOTPRepo) Delete(email string) error {
	delete(r.otps, email)
	return nil
}

type memPropertyRepo struct {
	properties []*entities.Property
}

func (r *memPropertyRepo) Create(property *entities.Property) error {
	if property.ID == "" {
		property.ID = uuid.New().String()
	}
	r.properties = append(r.properties, property)
	return nil
}

func (r *memPropertyRepo) GetByID(id string) (*entities.Property, error) {
	for _, p := range r.properties {
		if p.ID == id {
			return p, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *memPropertyRepo) ListApproved() ([]entities.Property, error) {
	out := make([]entities.Property, 0)
	for _, p := range r.properties {
		if p.Approved {
			out = append(out, *p)
		}
	}
	return out, nil
}

func (r *memPropertyRepo) Search(filter entities.PropertyFilter) ([]entities.Property, error) {
	out := make([]entities.Property, 0)
	for _, p := range r.properties {
		if !p.Approved {
			continue
		}
		if filter.City != "" && !strings.Contains(strings.ToLower(p.City), strings.ToLower(filter.City)) {
			continue
		}
		if filter.Type != "" && p.Type != filter.Type {
			continue
		}
		if filter.MinPrice != nil && p.Price < *filter.MinPrice {
			continue
		}
		if filter.MaxPrice != nil && p.Price > *filter.MaxPrice {
			continue
		}
		out = append(out, *p)
	}
	return out, nil
}

func (r *memPropertyRepo) ListPending() ([]entities.Property, error) {
	out := make([]entities.Property, 0)
	for _, p := range r.properties {
		if !p.Approved {
			out = append(out, *p)
		}
	}
	return out, nil
}

func (r *memPropertyRepo) Approve(id string) error {
	for _, p := range r.properties {
		if p.ID == id {
			p.Approved = true
			return nil
		}
	}
	return gorm.ErrRecordNotFound
}

type memInterestRepo struct {
	interests  []entities.Interest
	properties *memPropertyRepo
}

func (r *memInterestRepo) Upsert(interest *entities.Interest) error {
	for _, i := range r.interests {
		if i.UserID == interest.UserID && i.PropertyID == interest.PropertyID {
			return nil
		}
	}
	if interest.ID == "" {
		interest.ID = uuid.New().String()
	}
	r.interests = append(r.interests, *interest)
	return nil
}

func (r *memInterestRepo) PropertiesByUserID(userID string) ([]entities.Property, error) {
	out := make([]entities.Property, 0)
	for _, i := range r.interests {
		if i.UserID != userID {
			continue
		}
		if p, err := r.properties.GetByID(i.PropertyID); err == nil {
			out = append(out, *p)
		}
	}
	return out, nil
}

type memMessageRepo struct {
	messages []entities.Message
	clock    time.Time
}

func (r *memMessageRepo) Create(message *entities.Message) error {
	if message.ID == "" {
		message.ID = uuid.New().String()
	}
	if r.clock.IsZero() {
		r.clock = time.Now().UTC()
	}
	r.clock = r.clock.Add(time.Millisecond)
	message.Timestamp = r.clock
	r.messages = append(r.messages, *message)
	return nil
}

func (r *memMessageRepo) Conversation(userID, withUserID string) ([]entities.Message, error) {
	out := make([]entities.Message, 0)
	for _, m := range r.messages {
		if (m.FromUserID == userID && m.ToUserID == withUserID) ||
			(m.FromUserID == withUserID && m.ToUserID == userID) {
			out = append(out, m)
		}
	}
	return out, nil
}

type memMeetingRepo struct {
	meetings   []entities.Meeting
	properties *memPropertyRepo
}

func (r *memMeetingRepo) Create(meeting *entities.Meeting) error {
	if meeting.ID == "" {
		meeting.ID = uuid.New().String()
	}
	r.meetings = append(r.meetings, *meeting)
	return nil
}

func (r *memMeetingRepo) GetByUserID(userID string) ([]entities.MeetingDetail, error) {
	out := make([]entities.MeetingDetail, 0)
	for _, m := range r.meetings {
		if m.UserID != userID {
			continue
		}
		detail := entities.MeetingDetail{
			ID:         m.ID,
			UserID:     m.UserID,
			PropertyID: m.PropertyID,
			Date:       m.Date,
			Notes:      m.Notes,
		}
		if p, err := r.properties.GetByID(m.PropertyID); err == nil {
			detail.PropertyTitle = p.Title
		}
		out = append(out, detail)
	}
	return out, nil
}

type memMailer struct {
	sent []string // recipients
}

func (m *memMailer) Send(ctx context.Context, to, subject, body string) error {
	m.sent = append(m.sent, to)
	return nil
}
