package db

import (
	"fmt"
	"log"
	"math/rand"

	"estate-server/entities"
	"estate-server/utils"

	"gorm.io/gorm"
)

// seed inserts the default accounts and a batch of demo listings so a fresh
// install has something to browse. Runs only against empty tables.
func seed(db *gorm.DB) error {
	var userCount int64
	if err := db.Model(&entities.User{}).Count(&userCount).Error; err != nil {
		return err
	}

	var owner entities.User
	if userCount == 0 {
		hash, err := utils.HashPassword("test123")
		if err != nil {
			return err
		}
		owner = entities.User{
			Email:        "test@example.com",
			PasswordHash: hash,
			Verified:     true,
		}
		if err := db.Create(&owner).Error; err != nil {
			return err
		}

		modHash, err := utils.HashPassword("moderator123")
		if err != nil {
			return err
		}
		moderator := entities.User{
			Email:        "moderator@example.com",
			PasswordHash: modHash,
			Verified:     true,
			Role:         entities.RoleModerator,
		}
		if err := db.Create(&moderator).Error; err != nil {
			return err
		}
		log.Println("Default accounts created: test@example.com, moderator@example.com")
	} else {
		if err := db.Where("email = ?", "test@example.com").First(&owner).Error; err != nil {
			// No default owner to hang demo listings on; skip seeding.
			return nil
		}
	}

	var propertyCount int64
	if err := db.Model(&entities.Property{}).Count(&propertyCount).Error; err != nil {
		return err
	}
	if propertyCount > 0 {
		return nil
	}

	types := []string{entities.PropertyTypeRent, entities.PropertyTypeSale}
	for i := 1; i <= 10; i++ {
		property := entities.Property{
			Title:          fmt.Sprintf("Property %d", i),
			BuildingNumber: fmt.Sprintf("Num %d", i),
			City:           fmt.Sprintf("City %d", i),
			Country:        "USA",
			Type:           types[i%2],
			Price:          rand.Float64() * 1000000,
			Latitude:       40 + float64(i)/10,
			Longitude:      -74 + float64(i)/10,
			Image:          fmt.Sprintf("https://picsum.photos/seed/%d/1736/389", i),
			OwnerID:        owner.ID,
			Approved:       true,
		}
		if err := db.Create(&property).Error; err != nil {
			return err
		}
	}
	log.Println("Seeded 10 demo properties")
	return nil
}
