package repositories

import (
	"estate-server/db"
	"estate-server/entities"

	"gorm.io/gorm/clause"
)

type otpPgRepository struct {
	db db.Database
}

func NewOTPPgRepository(database db.Database) OTPRepository {
	return &otpPgRepository{db: database}
}

// Upsert replaces any pending code for the address.
func (r *otpPgRepository) Upsert(otp *entities.EmailOTP) error {
	return r.db.GetDB().Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "email"}},
		UpdateAll: true,
	}).Create(otp).Error
}

func (r *otpPgRepository) GetByEmail(email string) (*entities.EmailOTP, error) {
	var otp entities.EmailOTP
	err := r.db.GetDB().Where("email = ?", email).First(&otp).Error
	if err != nil {
		return nil, err
	}
	return &otp, nil
}

func (r *otpPgRepository) Delete(email string) error {
	return r.db.GetDB().Where("email = ?", email).Delete(&entities.EmailOTP{}).Error
}
