package environment

import (
	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
)

// Production defines the prod environment
const Production = "prod"

// Staging defines the staging environment
const Staging = "staging"

// Dev defines the dev environment
const Dev = "dev"

// Environment holds all configuration values read from the .env file
type Environment struct {
	Environment    string `mapstructure:"APP_ENV"`
	Cors           string `mapstructure:"CORS"`
	Port           string `mapstructure:"PORT"`
	Database       string `mapstructure:"DATABASE"`
	DatabaseUrl    string `mapstructure:"DATABASE_URL"`
	Redis          string `mapstructure:"REDIS"`
	RedisPassword  string `mapstructure:"REDIS_PASSWORD"`
	Sendinblue     string `mapstructure:"SENDINBLUE"`
	WebhookUrl     string `mapstructure:"WEBHOOK_URL"`
	WebhookAPIKey  string `mapstructure:"WEBHOOK_API_KEY"`
	CalendarDomain string `mapstructure:"CALENDAR_DOMAIN"`
}

// Global is the process wide Environment instance
var Global Environment

// Initialize reads the .env file into Global
func Initialize() {
	data, err := godotenv.Read(".env")
	if err != nil {
		panic(err)
	}

	err = mapstructure.Decode(data, &Global)
	if err != nil {
		panic(err)
	}
}
