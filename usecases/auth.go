package usecases

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"estate-server/entities"
	"estate-server/mailer"
	"estate-server/repositories"
	"estate-server/utils"
)

// AuthUseCase owns signup, verification, credentials and token issuance.
type AuthUseCase struct {
	Users     repositories.UserRepository
	OTPs      repositories.OTPRepository
	Mail      mailer.Mailer
	JWTSecret string
	OTPTTL    time.Duration
}

func NewAuthUseCase(users repositories.UserRepository, otps repositories.OTPRepository, mail mailer.Mailer, jwtSecret string, otpTTL time.Duration) *AuthUseCase {
	return &AuthUseCase{
		Users:     users,
		OTPs:      otps,
		Mail:      mail,
		JWTSecret: jwtSecret,
		OTPTTL:    otpTTL,
	}
}

// RequestSignupOTP issues a fresh 6-digit code for the address and emails it.
// The code is persisted before the send, so a failed delivery can be retried
// by requesting again.
func (uc *AuthUseCase) RequestSignupOTP(ctx context.Context, email string) error {
	email = strings.TrimSpace(email)
	if email == "" {
		return fmt.Errorf("%w: email is required", ErrValidation)
	}

	code, err := utils.GenerateOTP()
	if err != nil {
		return err
	}

	otp := &entities.EmailOTP{
		Email:     email,
		Code:      code,
		ExpiresAt: time.Now().Add(uc.OTPTTL),
	}
	if err := uc.OTPs.Upsert(otp); err != nil {
		return err
	}

	body := fmt.Sprintf("Your OTP is %s", code)
	if err := uc.Mail.Send(ctx, email, "Signup OTP", body); err != nil {
		log.Printf("otp email to %s failed: %v", email, err)
		return ErrEmailDelivery
	}
	return nil
}

// VerifyOTP checks the supplied code against the pending one. The code is
// single use: a match consumes it and marks the account verified, creating
// the user row when the address is new.
func (uc *AuthUseCase) VerifyOTP(email, code string) error {
	if email == "" || code == "" {
		return fmt.Errorf("%w: email and otp are required", ErrValidation)
	}

	pending, err := uc.OTPs.GetByEmail(email)
	if err != nil {
		return ErrInvalidOTP
	}
	if pending.Code != code || pending.Expired(time.Now()) {
		return ErrInvalidOTP
	}

	if err := uc.OTPs.Delete(email); err != nil {
		return err
	}

	user, err := uc.Users.GetByEmail(email)
	if err != nil {
		user = &entities.User{Email: email, Verified: true}
		return uc.Users.Create(user)
	}
	user.Verified = true
	return uc.Users.Update(user)
}

// SetPassword stores the bcrypt hash for a verified account.
func (uc *AuthUseCase) SetPassword(email, password string) error {
	if email == "" || password == "" {
		return fmt.Errorf("%w: email and password are required", ErrValidation)
	}

	user, err := uc.Users.GetByEmail(email)
	if err != nil || !user.Verified {
		return ErrNotVerified
	}

	hash, err := utils.HashPassword(password)
	if err != nil {
		return err
	}
	user.PasswordHash = hash
	return uc.Users.Update(user)
}

// Login authenticates a verified user and returns a signed bearer token.
// Unknown email, unverified account and wrong password all fail the same way.
func (uc *AuthUseCase) Login(email, password string) (string, error) {
	if email == "" || password == "" {
		return "", fmt.Errorf("%w: email and password are required", ErrValidation)
	}

	user, err := uc.Users.GetByEmail(email)
	if err != nil || !user.Verified || user.PasswordHash == "" {
		return "", ErrInvalidCredentials
	}
	if err := utils.CheckPassword(user.PasswordHash, password); err != nil {
		return "", ErrInvalidCredentials
	}

	return utils.GenerateJWT(uc.JWTSecret, user.ID, user.Email, user.Role)
}

// ForgotPassword starts the reset flow for an existing account by issuing a
// fresh OTP to the address.
func (uc *AuthUseCase) ForgotPassword(ctx context.Context, email string) error {
	if email == "" {
		return fmt.Errorf("%w: email is required", ErrValidation)
	}
	if _, err := uc.Users.GetByEmail(email); err != nil {
		return ErrNotFound
	}
	return uc.RequestSignupOTP(ctx, email)
}

// ResetPassword overwrites the credential after the OTP flow re-verified the
// address. Same gate as SetPassword.
func (uc *AuthUseCase) ResetPassword(email, password string) error {
	return uc.SetPassword(email, password)
}

// Profile returns the account behind an authenticated identity.
func (uc *AuthUseCase) Profile(userID string) (*entities.User, error) {
	user, err := uc.Users.GetByID(userID)
	if err != nil {
		return nil, ErrNotFound
	}
	return user, nil
}

// ListUsers returns the public id+email directory.
func (uc *AuthUseCase) ListUsers() ([]entities.PublicUser, error) {
	return uc.Users.ListPublic()
}
