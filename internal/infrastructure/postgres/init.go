package postgres

import (
	"log"

	"github.com/hausly/hausly-marketplace-service/internal/config"
	"github.com/hausly/hausly-marketplace-service/internal/infrastructure/postgres/models"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func MustInitDB(cfg *config.MarketplaceConfig) *gorm.DB {
	dsn := cfg.MarketplaceDB.Dsn
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("failed to init db: %v\n", err.Error())
	}

	db.AutoMigrate(&models.PropertyModel{}, &models.ChecklistItemModel{}, &models.LeadModel{}, &models.ReferralModel{})

	return db
}
