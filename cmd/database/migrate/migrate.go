package migration

import (
	"fmt"

	"Maltio-Backend/entities"
	"Maltio-Backend/internal/logging"

	"gorm.io/gorm"
)

func Migrate(db *gorm.DB) error {
	// uuid_generate_v4() defaults on primary keys
	if err := db.Exec("CREATE EXTENSION IF NOT EXISTS \"uuid-ossp\";").Error; err != nil {
		return fmt.Errorf("create uuid-ossp extension: %w", err)
	}

	if err := db.AutoMigrate(&entities.Recipe{}); err != nil {
		return fmt.Errorf("migrate recipe table: %w", err)
	}
	if err := db.AutoMigrate(&entities.RecipeHistory{}); err != nil {
		return fmt.Errorf("migrate recipe history table: %w", err)
	}
	if err := db.AutoMigrate(&entities.Brew{}); err != nil {
		return fmt.Errorf("migrate brew table: %w", err)
	}

	logging.Info().Msg("database migration complete")
	return nil
}
