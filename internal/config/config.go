package config

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"github.com/spf13/viper"
)

// Config holds all configuration for our application
type Config struct {
	Server     ServerConfig     `mapstructure:"server"`
	Database   DatabaseConfig   `mapstructure:"database"`
	Redis      RedisConfig      `mapstructure:"redis"`
	SMTP       SMTPConfig       `mapstructure:"smtp"`
	Storage    StorageConfig    `mapstructure:"storage"`
	Extractor  ExtractorConfig  `mapstructure:"extractor"`
	Comparator ComparatorConfig `mapstructure:"comparator"`
	Auth       AuthConfig       `mapstructure:"auth"`
	Scheduler  SchedulerConfig  `mapstructure:"scheduler"`
	Logging    LoggingConfig    `mapstructure:"logging"`
	Business   BusinessConfig   `mapstructure:"business"`
	Health     HealthConfig     `mapstructure:"health"`
}

type ServerConfig struct {
	Port string `mapstructure:"SERVER_PORT"`
	Host string `mapstructure:"SERVER_HOST"`
	Env  string `mapstructure:"ENV"`
}

type DatabaseConfig struct {
	URL             string        `mapstructure:"DATABASE_URL"`
	MaxOpenConns    int           `mapstructure:"DATABASE_MAX_OPEN_CONNS"`
	MaxIdleConns    int           `mapstructure:"DATABASE_MAX_IDLE_CONNS"`
	ConnMaxLifetime time.Duration `mapstructure:"DATABASE_CONN_MAX_LIFETIME"`
}

type RedisConfig struct {
	Host     string `mapstructure:"REDIS_HOST"`
	Port     string `mapstructure:"REDIS_PORT"`
	Password string `mapstructure:"REDIS_PASSWORD"`
	DB       int    `mapstructure:"REDIS_DB"`
}

type SMTPConfig struct {
	Host     string `mapstructure:"SMTP_HOST"`
	Port     string `mapstructure:"SMTP_PORT"`
	User     string `mapstructure:"SMTP_USER"`
	Password string `mapstructure:"SMTP_PASS"`
}

type StorageConfig struct {
	Bucket          string `mapstructure:"STORAGE_BUCKET"`
	CredentialsFile string `mapstructure:"STORAGE_CREDENTIALS_FILE"`
	PublicBaseURL   string `mapstructure:"STORAGE_PUBLIC_BASE_URL"`
}

type ExtractorConfig struct {
	Endpoint string        `mapstructure:"EXTRACTOR_ENDPOINT"`
	APIKey   string        `mapstructure:"EXTRACTOR_API_KEY"`
	Model    string        `mapstructure:"EXTRACTOR_MODEL"`
	Timeout  time.Duration `mapstructure:"EXTRACTOR_TIMEOUT"`
}

type ComparatorConfig struct {
	Endpoint string        `mapstructure:"COMPARATOR_ENDPOINT"`
	Timeout  time.Duration `mapstructure:"COMPARATOR_TIMEOUT"`
}

type AuthConfig struct {
	JWTSecret string `mapstructure:"AUTH_JWT_SECRET"`
}

type SchedulerConfig struct {
	Timezone           string `mapstructure:"SCHEDULER_TIMEZONE"`
	ReminderDaysBefore int    `mapstructure:"REMINDER_DAYS_BEFORE"`
}

type LoggingConfig struct {
	Level  string `mapstructure:"LOG_LEVEL"`
	Format string `mapstructure:"LOG_FORMAT"`
}

type BusinessConfig struct {
	LoanTermDays           int    `mapstructure:"LOAN_TERM_DAYS"`
	PenaltyDailyRate       string `mapstructure:"PENALTY_DAILY_RATE"`
	IdentityBypassPAN      string `mapstructure:"IDENTITY_BYPASS_PAN"`
	FinancialFallbackScore int    `mapstructure:"FINANCIAL_FALLBACK_SCORE"`
	OTPLength              int    `mapstructure:"OTP_LENGTH"`
	OTPTTL                 string `mapstructure:"OTP_TTL"`
	TrustScoreCacheTTL     string `mapstructure:"TRUST_SCORE_CACHE_TTL"`
}

type HealthConfig struct {
	Timeout string `mapstructure:"HEALTH_CHECK_TIMEOUT"`
}

// Load reads configuration from environment variables and files
func Load() (*Config, error) {
	// Set defaults
	viper.SetDefault("SERVER_PORT", "8080")
	viper.SetDefault("SERVER_HOST", "0.0.0.0")
	viper.SetDefault("ENV", "development")
	viper.SetDefault("LOG_LEVEL", "info")
	viper.SetDefault("LOG_FORMAT", "json")
	viper.SetDefault("DATABASE_MAX_OPEN_CONNS", 25)
	viper.SetDefault("DATABASE_MAX_IDLE_CONNS", 5)
	viper.SetDefault("DATABASE_CONN_MAX_LIFETIME", "30m")
	viper.SetDefault("REDIS_HOST", "localhost")
	viper.SetDefault("REDIS_PORT", "6379")
	viper.SetDefault("REDIS_DB", 0)
	viper.SetDefault("SMTP_HOST", "smtp.gmail.com")
	viper.SetDefault("SMTP_PORT", "587")
	viper.SetDefault("EXTRACTOR_MODEL", "gemini-2.0-flash")
	viper.SetDefault("EXTRACTOR_TIMEOUT", "30s")
	viper.SetDefault("COMPARATOR_TIMEOUT", "30s")
	viper.SetDefault("LOAN_TERM_DAYS", 30)
	viper.SetDefault("PENALTY_DAILY_RATE", "0.005")
	// Test/ops escape hatch for identity verification. Empty disables it.
	viper.SetDefault("IDENTITY_BYPASS_PAN", "")
	viper.SetDefault("FINANCIAL_FALLBACK_SCORE", 5)
	viper.SetDefault("OTP_LENGTH", 6)
	viper.SetDefault("OTP_TTL", "5m")
	viper.SetDefault("TRUST_SCORE_CACHE_TTL", "1m")
	viper.SetDefault("SCHEDULER_TIMEZONE", "UTC")
	viper.SetDefault("REMINDER_DAYS_BEFORE", 3)
	viper.SetDefault("HEALTH_CHECK_TIMEOUT", "5s")

	// Read from environment variables
	viper.AutomaticEnv()

	// Try to read from .env file (optional)
	viper.SetConfigName(".env")
	viper.SetConfigType("env")
	viper.AddConfigPath(".")
	viper.AddConfigPath("./deployments")

	// Don't fail if .env file doesn't exist
	_ = viper.ReadInConfig()

	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("unable to decode config: %w", err)
	}

	// Validate configuration
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &config, nil
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	if c.Server.Port == "" {
		return fmt.Errorf("SERVER_PORT is required")
	}

	if c.Database.URL == "" {
		return fmt.Errorf("DATABASE_URL is required")
	}

	if c.Business.LoanTermDays <= 0 {
		return fmt.Errorf("LOAN_TERM_DAYS must be greater than 0")
	}

	if c.Business.FinancialFallbackScore < 0 || c.Business.FinancialFallbackScore > 100 {
		return fmt.Errorf("FINANCIAL_FALLBACK_SCORE must be within [0,100]")
	}

	if c.Business.OTPLength < 4 {
		return fmt.Errorf("OTP_LENGTH must be at least 4")
	}

	// Validate penalty rate
	if _, err := decimal.NewFromString(c.Business.PenaltyDailyRate); err != nil {
		return fmt.Errorf("PENALTY_DAILY_RATE must be a valid decimal: %w", err)
	}

	// Validate OTP TTL
	if _, err := time.ParseDuration(c.Business.OTPTTL); err != nil {
		return fmt.Errorf("OTP_TTL must be a valid duration: %w", err)
	}

	// Validate trust score cache TTL
	if _, err := time.ParseDuration(c.Business.TrustScoreCacheTTL); err != nil {
		return fmt.Errorf("TRUST_SCORE_CACHE_TTL must be a valid duration: %w", err)
	}

	// Validate health check timeout
	if _, err := time.ParseDuration(c.Health.Timeout); err != nil {
		return fmt.Errorf("HEALTH_CHECK_TIMEOUT must be a valid duration: %w", err)
	}

	return nil
}

// IsDevelopment returns true if running in development environment
func (c *Config) IsDevelopment() bool {
	return c.Server.Env == "development" || c.Server.Env == "dev"
}

// IsProduction returns true if running in production environment
func (c *Config) IsProduction() bool {
	return c.Server.Env == "production" || c.Server.Env == "prod"
}

// GetPenaltyDailyRate returns the overdue penalty rate as decimal
func (c *Config) GetPenaltyDailyRate() decimal.Decimal {
	rate, _ := decimal.NewFromString(c.Business.PenaltyDailyRate)
	return rate
}

// GetOTPTTL returns the OTP time-to-live as duration
func (c *Config) GetOTPTTL() time.Duration {
	ttl, _ := time.ParseDuration(c.Business.OTPTTL)
	return ttl
}

// GetTrustScoreCacheTTL returns the trust score cache TTL as duration
func (c *Config) GetTrustScoreCacheTTL() time.Duration {
	ttl, _ := time.ParseDuration(c.Business.TrustScoreCacheTTL)
	return ttl
}

// GetHealthTimeout returns the health check timeout as duration
func (c *Config) GetHealthTimeout() time.Duration {
	timeout, _ := time.ParseDuration(c.Health.Timeout)
	return timeout
}
