package usecases

import (
	"context"
	"fmt"
	"log"

	"estate-server/entities"
	"estate-server/mailer"
	"estate-server/repositories"
)

// PropertyUseCase covers listings, moderation and interest.
type PropertyUseCase struct {
	Properties repositories.PropertyRepository
	Interests  repositories.InterestRepository
	Mail       mailer.Mailer
}

func NewPropertyUseCase(properties repositories.PropertyRepository, interests repositories.InterestRepository, mail mailer.Mailer) *PropertyUseCase {
	return &PropertyUseCase{
		Properties: properties,
		Interests:  interests,
		Mail:       mail,
	}
}

// CreateProperty validates and inserts a listing. New listings always start
// unapproved regardless of what the caller sent.
func (uc *PropertyUseCase) CreateProperty(property *entities.Property) error {
	if property.Title == "" {
		return fmt.Errorf("%w: title is required", ErrValidation)
	}
	if property.City == "" {
		return fmt.Errorf("%w: city is required", ErrValidation)
	}
	if property.Type != entities.PropertyTypeSale && property.Type != entities.PropertyTypeRent {
		return fmt.Errorf("%w: type must be sale or rent", ErrValidation)
	}
	if property.Price < 0 {
		return fmt.Errorf("%w: price must not be negative", ErrValidation)
	}
	if property.OwnerID == "" {
		return fmt.Errorf("%w: owner is required", ErrValidation)
	}

	property.Approved = false
	return uc.Properties.Create(property)
}

// ListProperties returns all approved listings.
func (uc *PropertyUseCase) ListProperties() ([]entities.Property, error) {
	return uc.Properties.ListApproved()
}

// SearchProperties returns approved listings matching the filter.
func (uc *PropertyUseCase) SearchProperties(filter entities.PropertyFilter) ([]entities.Property, error) {
	return uc.Properties.Search(filter)
}

// ListPendingProperties returns unapproved listings for moderation.
func (uc *PropertyUseCase) ListPendingProperties(role string) ([]entities.Property, error) {
	if role != entities.RoleModerator {
		return nil, ErrForbidden
	}
	return uc.Properties.ListPending()
}

// ApproveProperty flips a listing to approved. Moderator only.
func (uc *PropertyUseCase) ApproveProperty(id, role string) error {
	if role != entities.RoleModerator {
		return ErrForbidden
	}
	if _, err := uc.Properties.GetByID(id); err != nil {
		return ErrNotFound
	}
	return uc.Properties.Approve(id)
}

// ExpressInterest records intent on an existing property. Repeats are
// idempotent. The confirmation email is best-effort: a failed send never
// undoes the recorded interest.
func (uc *PropertyUseCase) ExpressInterest(ctx context.Context, userID, userEmail, propertyID string) error {
	if propertyID == "" {
		return fmt.Errorf("%w: propertyId is required", ErrValidation)
	}

	property, err := uc.Properties.GetByID(propertyID)
	if err != nil {
		return ErrNotFound
	}

	interest := &entities.Interest{UserID: userID, PropertyID: propertyID}
	if err := uc.Interests.Upsert(interest); err != nil {
		return err
	}

	body := fmt.Sprintf("You have expressed interest in property: %s", property.Title)
	if err := uc.Mail.Send(ctx, userEmail, "Interest Expressed in Property", body); err != nil {
		log.Printf("interest email to %s failed: %v", userEmail, err)
	}
	return nil
}

// InterestsOf returns the properties a user has expressed interest in.
func (uc *PropertyUseCase) InterestsOf(userID string) ([]entities.Property, error) {
	return uc.Interests.PropertiesByUserID(userID)
}
