package migration

import (
	"fmt"
	"gracebites-backend/entities"
	"log"

	"gorm.io/gorm"
)

func Migrate(db *gorm.DB) error {
	db.Exec("CREATE EXTENSION IF NOT EXISTS \"uuid-ossp\";")

	if err := db.AutoMigrate(&entities.User{}); err != nil {
		log.Fatalf("Error migrating user database: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.LoginHistory{}); err != nil {
		log.Fatalf("Error migrating login history database: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.RestaurantProfile{}); err != nil {
		log.Fatalf("Error migrating restaurant profile database: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.NGOProfile{}); err != nil {
		log.Fatalf("Error migrating ngo profile database: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.EventPlannerProfile{}); err != nil {
		log.Fatalf("Error migrating event planner profile database: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.UserProfile{}); err != nil {
		log.Fatalf("Error migrating user profile database: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.FoodDonation{}); err != nil {
		log.Fatalf("Error migrating food donation database: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.FoodRequest{}); err != nil {
		log.Fatalf("Error migrating food request database: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.Collaboration{}); err != nil {
		log.Fatalf("Error migrating collaboration database: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.Analysis{}); err != nil {
		log.Fatalf("Error migrating analysis database: %v", err)
		return err
	}

	fmt.Println("Database migration complete")
	return nil
}
