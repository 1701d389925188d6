package config

import (
	"log"
	"os"

	"github.com/hausly/hausly-marketplace-service/internal/domain"
	"github.com/ilyakaznacheev/cleanenv"
)

type MarketplaceConfig struct {
	Env string 	   	  `yaml:"env"`
	HTTPServer 	   	  `yaml:"http_server"`
	MarketplaceDB  	  `yaml:"marketplace_db"`
	LogConfig 	   	  `yaml:"log_config"`
	KafkaService   	  `yaml:"kafka-service"`
	Economics 	   	  `yaml:"economics"`
	Scoring 	   	  `yaml:"scoring"`
	Notifications  	  `yaml:"notifications"`
}

type HTTPServer struct {
	Host string `yaml:"host"`
	Port string `yaml:"port"`
}

type MarketplaceDB struct {
	Dsn string `yaml:"dsn"`
	MigrationsPath string `yaml:"migrations_path"`
}

type LogConfig struct {
	LogLevel 	string 	`yaml:"log_level"`
	LogFormat 	string 	`yaml:"log_format"`
	LogOutput 	string 	`yaml:"log_output"`
}

type KafkaService struct {
	Host string `yaml:"host"`
	Port string `yaml:"port"`
	ReferralTopic string `yaml:"referral_topic" env-default:"referral-events"`
}

type Economics struct {
	// Reference rate a traditional agent would charge, in percent.
	TraditionalCommissionRate float64 `yaml:"traditional_commission_rate" env-default:"5"`
	// Share of the flat fee set aside as the ambassador commission pool, in percent.
	AmbassadorCommissionRate float64 `yaml:"ambassador_commission_rate" env-default:"10"`
	// How long a referral may sit in PENDING before the expiry sweep rejects it.
	ReferralTTLHours int `yaml:"referral_ttl_hours" env-default:"72"`
	PriceTiers []PriceTierConfig `yaml:"price_tiers"`
}

type PriceTierConfig struct {
	Name string   `yaml:"name"`
	Min  float64  `yaml:"min"`
	Max  *float64 `yaml:"max"`
	Fee  float64  `yaml:"fee"`
}

type Scoring struct {
	Budget 		float64 `yaml:"budget" env-default:"25"`
	Financing 	float64 `yaml:"financing" env-default:"30"`
	Documents 	float64 `yaml:"documents" env-default:"20"`
	DownPayment float64 `yaml:"down_payment" env-default:"25"`
}

type Notifications struct {
	CallbackURL string `yaml:"callback_url"`
}

func MustLoad() *MarketplaceConfig {

	// Processing env config variable and file
	configPath := os.Getenv("MARKETPLACE_CONFIG_PATH")

	if configPath == ""{
		log.Fatalf("MARKETPLACE_CONFIG_PATH was not found\n")
	}

	if _, err := os.Stat(configPath); err != nil{
		log.Fatalf("failed to find config file: %v\n", err)
	}

	// YAML to struct object
	var cfg MarketplaceConfig
	if err := cleanenv.ReadConfig(configPath, &cfg); err != nil{
		log.Fatalf("failed to read config file: %v", err)
	}

	return &cfg
}

// FeeTiers converts the configured bands into domain tiers, falling back to
// the platform defaults when the config omits the table.
func (c *MarketplaceConfig) FeeTiers() []domain.PriceTier {
	if len(c.Economics.PriceTiers) == 0 {
		return domain.DefaultPriceTiers()
	}
	tiers := make([]domain.PriceTier, len(c.Economics.PriceTiers))
	for i, tc := range c.Economics.PriceTiers {
		tiers[i] = domain.PriceTier{
			Name: tc.Name,
			MinPrice: tc.Min,
			MaxPrice: tc.Max,
			Fee: tc.Fee,
		}
	}
	return tiers
}

func (c *MarketplaceConfig) ScoreWeights() domain.ScoreWeights {
	return domain.ScoreWeights{
		Budget: c.Scoring.Budget,
		Financing: c.Scoring.Financing,
		Documents: c.Scoring.Documents,
		DownPayment: c.Scoring.DownPayment,
	}
}
