package config

// Config holds all application configuration.
// It organizes settings into logical groups for better maintainability.
type Config struct {
	Server   ServerConfig   `mapstructure:"server"   validate:"required"`
	Database DatabaseConfig `mapstructure:"database" validate:"required"`
	Auth     AuthConfig     `mapstructure:"auth"     validate:"required"`
	Study    StudyConfig    `mapstructure:"study"    validate:"required"`
}

// ServerConfig contains all HTTP server settings.
type ServerConfig struct {
	Port     int    `mapstructure:"port"      validate:"required,gt=0,lt=65536"`
	LogLevel string `mapstructure:"log_level" validate:"required,oneof=debug info warn error"`
}

// DatabaseConfig contains all database settings.
type DatabaseConfig struct {
	URL string `mapstructure:"url" validate:"required,url"`
}

// AuthConfig contains authentication settings.
type AuthConfig struct {
	JWTSecret            string `mapstructure:"jwt_secret"             validate:"required,min=32"`
	TokenLifetimeMinutes int    `mapstructure:"token_lifetime_minutes" validate:"required,gt=0"`
	BcryptCost           int    `mapstructure:"bcrypt_cost"            validate:"gte=0,lte=31"`
}

// StudyConfig tunes the progress engine. Defaults match the product rules;
// they are configurable so deployments can experiment without code changes.
type StudyConfig struct {
	// DailyStreakGoal is the number of answers a day needs to count toward
	// the study streak.
	DailyStreakGoal int `mapstructure:"daily_streak_goal" validate:"required,gt=0"`

	// MaxReviewIntervalDays caps the spaced-repetition backoff.
	MaxReviewIntervalDays int `mapstructure:"max_review_interval_days" validate:"required,gt=0"`
}
