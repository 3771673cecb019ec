package usecases

import (
	"context"
	"errors"
	"strings"
	"sync"
	"time"

	"estate-server/entities"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// In-memory repository fakes mirroring the Postgres implementations closely
// enough for use case tests.

type fakeUserRepo struct {
	mu    sync.Mutex
	users map[string]*entities.User // keyed by id
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[string]*entities.User)}
}

func (r *fakeUserRepo) Create(user *entities.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if user.ID == "" {
		user.ID = uuid.New().String()
	}
	if user.Role == "" {
		user.Role = entities.RoleUser
	}
	for _, u := range r.users {
		if u.Email == user.Email {
			return gorm.ErrDuplicatedKey
		}
	}
	cp := *user
	r.users[user.ID] = &cp
	return nil
}

func (r *fakeUserRepo) GetByID(id string) (*entities.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if u, ok := r.users[id]; ok {
		cp := *u
		return &cp, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeUserRepo) GetByEmail(email string) (*entities.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if u.Email == email {
			cp := *u
			return &cp, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeUserRepo) Update(user *entities.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.users[user.ID]; !ok {
		return gorm.ErrRecordNotFound
	}
	cp := *user
	r.users[user.ID] = &cp
	return nil
}

func (r *fakeUserRepo) ListPublic() ([]entities.PublicUser, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	users := make([]entities.PublicUser, 0, len(r.users))
	for _, u := range r.users {
		users = append(users, entities.PublicUser{ID: u.ID, Email: u.Email})
	}
	return users, nil
}

type fakeOTPRepo struct {
	mu   sync.Mutex
	otps map[string]*entities.EmailOTP
}

func newFakeOTPRepo() *fakeOTPRepo {
	return &fakeOTPRepo{otps: make(map[string]*entities.EmailOTP)}
}

func (r *fakeOTPRepo) Upsert(otp *entities.EmailOTP) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := *otp
	r.otps[otp.Email] = &cp
	return nil
}

func (r *fakeOTPRepo) GetByEmail(email string) (*entities.EmailOTP, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if o, ok := r.otps[email]; ok {
		cp := *o
		return &cp, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeOTPRepo) Delete(email string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.otps, email)
	return nil
}

type fakePropertyRepo struct {
	mu         sync.Mutex
	properties []*entities.Property
}

func newFakePropertyRepo() *fakePropertyRepo {
	return &fakePropertyRepo{}
}

func (r *fakePropertyRepo) Create(property *entities.Property) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if property.ID == "" {
		property.ID = uuid.New().String()
	}
	cp := *property
	r.properties = append(r.properties, &cp)
	return nil
}

func (r *fakePropertyRepo) GetByID(id string) (*entities.Property, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, p := range r.properties {
		if p.ID == id {
			cp := *p
			return &cp, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakePropertyRepo) ListApproved() ([]entities.Property, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []entities.Property
	for _, p := range r.properties {
		if p.Approved {
			out = append(out, *p)
		}
	}
	return out, nil
}

func (r *fakePropertyRepo) Search(filter entities.PropertyFilter) ([]entities.Property, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []entities.Property
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

func (r *fakePropertyRepo) ListPending() ([]entities.Property, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []entities.Property
	for _, p := range r.properties {
		if !p.Approved {
			out = append(out, *p)
		}
	}
	return out, nil
}

func (r *fakePropertyRepo) Approve(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, p := range r.properties {
		if p.ID == id {
			p.Approved = true
			return nil
		}
	}
	return gorm.ErrRecordNotFound
}

type fakeInterestRepo struct {
	mu         sync.Mutex
	interests  []entities.Interest
	properties *fakePropertyRepo
}

func newFakeInterestRepo(properties *fakePropertyRepo) *fakeInterestRepo {
	return &fakeInterestRepo{properties: properties}
}

func (r *fakeInterestRepo) Upsert(interest *entities.Interest) error {
	r.mu.Lock()
	defer r.mu.Unlock()
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

func (r *fakeInterestRepo) PropertiesByUserID(userID string) ([]entities.Property, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []entities.Property
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

type fakeMessageRepo struct {
	mu       sync.Mutex
	messages []entities.Message
	clock    time.Time
}

func newFakeMessageRepo() *fakeMessageRepo {
	return &fakeMessageRepo{clock: time.Now().UTC()}
}

func (r *fakeMessageRepo) Create(message *entities.Message) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if message.ID == "" {
		message.ID = uuid.New().String()
	}
	// Strictly increasing timestamps, like insertion order in the database.
	r.clock = r.clock.Add(time.Millisecond)
	message.Timestamp = r.clock
	r.messages = append(r.messages, *message)
	return nil
}

func (r *fakeMessageRepo) Conversation(userID, withUserID string) ([]entities.Message, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []entities.Message
	for _, m := range r.messages {
		if (m.FromUserID == userID && m.ToUserID == withUserID) ||
			(m.FromUserID == withUserID && m.ToUserID == userID) {
			out = append(out, m)
		}
	}
	return out, nil
}

type fakeMeetingRepo struct {
	mu         sync.Mutex
	meetings   []entities.Meeting
	properties *fakePropertyRepo
}

func newFakeMeetingRepo(properties *fakePropertyRepo) *fakeMeetingRepo {
	return &fakeMeetingRepo{properties: properties}
}

func (r *fakeMeetingRepo) Create(meeting *entities.Meeting) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if meeting.ID == "" {
		meeting.ID = uuid.New().String()
	}
	r.meetings = append(r.meetings, *meeting)
	return nil
}

func (r *fakeMeetingRepo) GetByUserID(userID string) ([]entities.MeetingDetail, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []entities.MeetingDetail
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

type sentMail struct {
	To      string
	Subject string
	Body    string
}

type fakeMailer struct {
	mu   sync.Mutex
	sent []sentMail
	fail bool
}

func (m *fakeMailer) Send(ctx context.Context, to, subject, body string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.fail {
		return errors.New("smtp unreachable")
	}
	m.sent = append(m.sent, sentMail{To: to, Subject: subject, Body: body})
	return nil
}
