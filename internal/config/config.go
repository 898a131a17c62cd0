package config

import (
	"os"
	"strconv"
	"time"
)

// Config holds all configuration values
type Config struct {
	Server    ServerConfig
	Database  DatabaseConfig
	Redis     RedisConfig
	JWT       JWTConfig
	OTP       OTPConfig
	SMTP      SMTPConfig
	Geocoding GeocodingConfig
	Seller    SellerConfig
}

// ServerConfig holds server configuration
type ServerConfig struct {
	Port string
	Env  string
}

// DatabaseConfig holds database configuration
type DatabaseConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	DBName   string
	SSLMode  string
}

// URL returns the database connection URL
func (c DatabaseConfig) URL() string {
	return "postgres://" + c.User + ":" + c.Password + "@" + c.Host + ":" + strconv.Itoa(c.Port) + "/" + c.DBName + "?sslmode=" + c.SSLMode
}

// RedisConfig holds Redis configuration
type RedisConfig struct {
	URL      string
	Password string
}

// JWTConfig holds the token secret and lifetime. The secret must be
// identical in every service instance: resource services verify tokens
// locally and never call back to the issuer.
type JWTConfig struct {
	Secret string
	Expiry time.Duration
}

// OTPConfig holds verification code settings
type OTPConfig struct {
	Expiry       time.Duration
	ResendLimit  int
	ResendWindow time.Duration
}

// SMTPConfig holds mail relay configuration
type SMTPConfig struct {
	Host     string
	Port     int
	Username string
	Password string
	From     string
}

// Enabled reports whether relay credentials are configured
func (c SMTPConfig) Enabled() bool {
	return c.Username != "" && c.Password != ""
}

// GeocodingConfig holds the Nominatim base URL
type GeocodingConfig struct {
	NominatimURL string
}

// SellerConfig holds the fallback meeting location used when a seller has
// not stored one yet
type SellerConfig struct {
	DefaultLatitude  float64
	DefaultLongitude float64
	DefaultAddress   string
}

// Load loads configuration from environment variables
func Load() *Config {
	return &Config{
		Server: ServerConfig{
			Port: getEnv("SERVER_PORT", "8080"),
			Env:  getEnv("SERVER_ENV", "development"),
		},
		Database: DatabaseConfig{
			Host:     getEnv("DB_HOST", "localhost"),
			Port:     getEnvAsInt("DB_PORT", 5432),
			User:     getEnv("DB_USER", "postgres"),
			Password: getEnv("DB_PASSWORD", "postgres"),
			DBName:   getEnv("DB_NAME", "handshake"),
			SSLMode:  getEnv("DB_SSLMODE", "disable"),
		},
		Redis: RedisConfig{
			URL:      getEnv("REDIS_URL", "redis://localhost:6379"),
			Password: getEnv("REDIS_PASSWORD", ""),
		},
		JWT: JWTConfig{
			Secret: getEnv("JWT_SECRET", "change-this-in-production"),
			Expiry: getEnvAsDuration("JWT_EXPIRY", 30*24*time.Hour),
		},
		OTP: OTPConfig{
			Expiry:       getEnvAsDuration("OTP_EXPIRY", 15*time.Minute),
			ResendLimit:  getEnvAsInt("OTP_RESEND_LIMIT", 3),
			ResendWindow: getEnvAsDuration("OTP_RESEND_WINDOW", 10*time.Minute),
		},
		SMTP: SMTPConfig{
			Host:     getEnv("SMTP_HOST", "smtp.gmail.com"),
			Port:     getEnvAsInt("SMTP_PORT", 587),
			Username: getEnv("SMTP_USERNAME", ""),
			Password: getEnv("SMTP_PASSWORD", ""),
			From:     getEnv("SMTP_FROM", "noreply@handshake.local"),
		},
		Geocoding: GeocodingConfig{
			NominatimURL: getEnv("NOMINATIM_URL", "https://nominatim.openstreetmap.org"),
		},
		Seller: SellerConfig{
			DefaultLatitude:  getEnvAsFloat("SELLER_DEFAULT_LAT", -6.2088),
			DefaultLongitude: getEnvAsFloat("SELLER_DEFAULT_LON", 106.8456),
			DefaultAddress:   getEnv("SELLER_DEFAULT_ADDRESS", "Jakarta, Indonesia (Default - seller should update)"),
		},
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getEnvAsFloat(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if floatVal, err := strconv.ParseFloat(value, 64); err == nil {
			return floatVal
		}
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}
