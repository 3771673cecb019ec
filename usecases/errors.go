package usecases

import "errors"

// Sentinel errors the handlers map onto HTTP statuses. Credential failures are
// deliberately indistinguishable so callers cannot enumerate accounts.
var (
	ErrValidation         = errors.New("validation failed")
	ErrInvalidOTP         = errors.New("invalid otp")
	ErrNotVerified        = errors.New("user not verified")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrNotFound           = errors.New("not found")
	ErrForbidden          = errors.New("forbidden")
	ErrEmailDelivery      = errors.New("email delivery failed")
)
