package main

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/hausly/hausly-marketplace-service/internal/app/background"
	"github.com/hausly/hausly-marketplace-service/internal/config"
	"github.com/hausly/hausly-marketplace-service/internal/delivery/http/handlers"
	"github.com/hausly/hausly-marketplace-service/internal/domain"
	publisher "github.com/hausly/hausly-marketplace-service/internal/infrastructure/kafka"
	"github.com/hausly/hausly-marketplace-service/internal/infrastructure/metrics"
	"github.com/hausly/hausly-marketplace-service/internal/infrastructure/migrate"
	"github.com/hausly/hausly-marketplace-service/internal/infrastructure/postgres"
	"github.com/hausly/hausly-marketplace-service/internal/infrastructure/postgres/repository"
	"github.com/hausly/hausly-marketplace-service/internal/usecase"
	referralusecase "github.com/hausly/hausly-marketplace-service/internal/usecase/referral"
	"github.com/joho/godotenv"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("failed to load .env")
	}
	// Reading config
	cfg := config.MustLoad()
	// Init database
	db := postgres.MustInitDB(cfg)

	if cfg.MarketplaceDB.MigrationsPath != "" {
		if err := migrate.RunMigrations(db, cfg.MarketplaceDB.MigrationsPath); err != nil {
			log.Fatalf("failed to run migrations: %v", err)
		}
	}

	// Fee schedule and scoring weights are validated once here; engine calls
	// never see a malformed table.
	feeSchedule, err := domain.NewFeeSchedule(cfg.FeeTiers())
	if err != nil {
		log.Fatalf("invalid fee schedule: %v", err)
	}
	weights := cfg.ScoreWeights()
	if err := weights.Validate(); err != nil {
		log.Fatalf("invalid scoring weights: %v", err)
	}

	referralKafkaPublisher := publisher.NewKafkaPublisher(
		[]string{fmt.Sprintf("%s:%s", cfg.KafkaService.Host, cfg.KafkaService.Port)},
		cfg.KafkaService.ReferralTopic,
	)

	marketplaceMetrics := metrics.NewMarketplaceMetrics()

	// Init repositories
	referralRepo := repository.NewDefaultReferralRepository(db)
	propertyRepo := repository.NewDefaultPropertyRepository(db)
	leadRepo := repository.NewDefaultLeadRepository(db)
	checklistRepo := repository.NewDefaultChecklistRepository(db)

	// Init pricing usecase
	pricingUsecase := usecase.NewDefaultPricingUsecase(
		feeSchedule,
		cfg.Economics.TraditionalCommissionRate,
		cfg.Economics.AmbassadorCommissionRate,
	)
	// Init referral usecase
	referralUsecase := referralusecase.NewDefaultReferralUsecase(
		referralRepo,
		propertyRepo,
		pricingUsecase,
		referralKafkaPublisher,
		marketplaceMetrics,
		cfg.Notifications.CallbackURL,
		time.Duration(cfg.Economics.ReferralTTLHours)*time.Hour,
	)
	// Init scoring usecase
	scoringUsecase := usecase.NewDefaultLeadScoringUsecase(weights, leadRepo, marketplaceMetrics)
	// Init listing usecase
	listingUsecase := usecase.NewDefaultListingUsecase(
		propertyRepo,
		checklistRepo,
		referralUsecase,
		referralKafkaPublisher,
		marketplaceMetrics,
	)

	// Background sweeps
	tasks := background.NewBackgroundTasks(referralUsecase)
	tasks.StartAll(context.Background())

	// HTTP delivery
	referralHandler := handlers.NewReferralHandler(referralUsecase)
	pricingHandler := handlers.NewPricingHandler(pricingUsecase)
	scoringHandler := handlers.NewScoringHandler(scoringUsecase)
	listingHandler := handlers.NewListingHandler(listingUsecase)

	r := handlers.SetupRouter(referralHandler, pricingHandler, scoringHandler, listingHandler)

	addr := fmt.Sprintf("%s:%s", cfg.HTTPServer.Host, cfg.HTTPServer.Port)
	log.Printf("marketplace service started on %s\n", addr)
	if err := r.Run(addr); err != nil {
		log.Fatalf("failed to serve: %v\n", err)
	}
}
