package config

import (
	"log"

	"github.com/spf13/viper"
)

// Config holds all configuration values.
type Config struct {
	AppPort           string `mapstructure:"APP_PORT"`
	DatabaseURL       string `mapstructure:"DATABASE_URL"`
	DatabaseName      string `mapstructure:"DATABASE_NAME"`
	Env               string `mapstructure:"ENV"`
	JWTSecret         string `mapstructure:"JWT_SECRET"`
	AdminToken        string `mapstructure:"ADMIN_TOKEN"`
	LogLevel          string `mapstructure:"LOG_LEVEL"`
	MaxRequestsPerMin int    `mapstructure:"MAX_REQUESTS_PER_MIN"`

	// Redis configuration.
	RedisAddr      string `mapstructure:"REDIS_ADDR"`
	RedisPassword  string `mapstructure:"REDIS_PASSWORD"`
	RedisCacheDB   int    `mapstructure:"REDIS_CACHE_DB"`
	RedisLoyaltyDB int    `mapstructure:"REDIS_LOYALTY_DB"`
	RedisQueueDB   int    `mapstructure:"REDIS_QUEUE_DB"`

	// Salon schedule. Slot times are offered from SALON_OPEN through
	// SALON_CLOSE inclusive, every SLOT_INTERVAL_MIN minutes. The salon is
	// closed on CLOSED_WEEKDAY (time.Weekday numbering, 0 = Sunday).
	SalonOpen       string `mapstructure:"SALON_OPEN"`
	SalonClose      string `mapstructure:"SALON_CLOSE"`
	SlotIntervalMin int    `mapstructure:"SLOT_INTERVAL_MIN"`
	ClosedWeekday   int    `mapstructure:"CLOSED_WEEKDAY"`

	// Pricing.
	InHomeFee              float64 `mapstructure:"IN_HOME_FEE"`
	LoyaltyPointsPerDollar int     `mapstructure:"LOYALTY_POINTS_PER_DOLLAR"`
}

var AppConfig Config

func LoadConfig() {
	// Look for a config file named "config.yaml" in the current and "config" directory.
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("./config")
	// Automatically use environment variables where available.
	viper.AutomaticEnv()

	// Set default values.
	viper.SetDefault("APP_PORT", "8080")
	viper.SetDefault("ENV", "development")
	viper.SetDefault("LOG_LEVEL", "info")
	viper.SetDefault("MAX_REQUESTS_PER_MIN", 100)
	viper.SetDefault("REDIS_ADDR", "localhost:6379")
	viper.SetDefault("REDIS_PASSWORD", "")
	viper.SetDefault("REDIS_CACHE_DB", 0)
	viper.SetDefault("REDIS_LOYALTY_DB", 1)
	viper.SetDefault("REDIS_QUEUE_DB", 2)
	viper.SetDefault("DATABASE_URL", "mongodb://localhost:27017")
	viper.SetDefault("DATABASE_NAME", "beautyplaza")
	viper.SetDefault("JWT_SECRET", "")
	viper.SetDefault("ADMIN_TOKEN", "")
	viper.SetDefault("SALON_OPEN", "09:00")
	viper.SetDefault("SALON_CLOSE", "18:00")
	viper.SetDefault("SLOT_INTERVAL_MIN", 30)
	viper.SetDefault("CLOSED_WEEKDAY", 0)
	viper.SetDefault("IN_HOME_FEE", 25.0)
	viper.SetDefault("LOYALTY_POINTS_PER_DOLLAR", 100)

	if err := viper.ReadInConfig(); err != nil {
		log.Println("No config file found, using environment variables only")
	}

	if err := viper.Unmarshal(&AppConfig); err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
}

func GetEnv() string {
	return AppConfig.Env
}

func IsProduction() bool {
	return GetEnv() == "production"
}
