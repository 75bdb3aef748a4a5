package config

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/sunshine-dental/clinic-backend-go/internal/domain/verification"
)

type Config struct {
	Database     DatabaseConfig
	JWT          JWTConfig
	App          AppConfig
	Verification VerificationConfig
	Attendance   AttendanceConfig
	Schedule     ScheduleConfig
}

type DatabaseConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	Name     string
	SSLMode  string
}

// JWTConfig holds JWT configuration
type JWTConfig struct {
	Secret           string
	AccessExpiration string
}

// AppConfig holds application configuration
type AppConfig struct {
	Port     int
	Env      string
	LogLevel string
	Timezone string
}

// VerificationConfig holds the biometric and network gate configuration.
type VerificationConfig struct {
	SimilarityThreshold float64
	EmbeddingDimension  int
	// EnforceNetworkCheck blocks check-in/out on whitelist mismatch. When
	// false the mismatch is recorded and logged but does not block, for
	// non-production environments.
	EnforceNetworkCheck bool
	// GlobalWhitelist is used for clinics without their own whitelist.
	GlobalWhitelist []verification.Network
}

type AttendanceConfig struct {
	// DefaultStartTime ("15:04") applies to staff without a published
	// doctor schedule.
	DefaultStartTime string
	DefaultWorkHours float64
	RestDay          time.Weekday
}

type ScheduleConfig struct {
	// DutyMode is SINGLE_CLINIC or FULL_WEEK (see schedule.DutyMode).
	DutyMode string
	// RequiredDoctorsPerDay enforces a fixed distinct-doctor headcount per
	// working day; 0 disables the rule.
	RequiredDoctorsPerDay int
	// MinClinicCoverage is the advisory per-clinic per-day headcount floor.
	MinClinicCoverage int
}

func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		slog.Warn("No .env file found, using environment variables")
	}

	config := &Config{}

	// Database configuration
	dbPort, err := strconv.Atoi(getEnv("DB_PORT", "5432"))
	if err != nil {
		return nil, fmt.Errorf("invalid DB_PORT: %w", err)
	}

	config.Database = DatabaseConfig{
		Host:     getEnv("DB_HOST", "localhost"),
		Port:     dbPort,
		User:     getEnv("DB_USER", "postgres"),
		Password: getEnv("DB_PASSWORD", ""),
		Name:     getEnv("DB_NAME", "clinic_workforce"),
		SSLMode:  getEnv("DB_SSL_MODE", "disable"),
	}

	// Application configuration
	appPort, err := strconv.Atoi(getEnv("APP_PORT", "8080"))
	if err != nil {
		return nil, fmt.Errorf("invalid APP_PORT: %w", err)
	}

	config.App = AppConfig{
		Port:     appPort,
		Env:      getEnv("APP_ENV", "development"),
		LogLevel: getEnv("LOG_LEVEL", "info"),
		Timezone: getEnv("APP_TIMEZONE", "Asia/Ho_Chi_Minh"),
	}

	// JWT configuration
	config.JWT = JWTConfig{
		Secret:           getEnv("JWT_SECRET_KEY", ""),
		AccessExpiration: getEnv("JWT_ACCESS_EXPIRATION_TIME", "1h"),
	}

	// Verification configuration
	threshold, err := strconv.ParseFloat(getEnv("BIOMETRIC_SIMILARITY_THRESHOLD", "0.75"), 64)
	if err != nil {
		return nil, fmt.Errorf("invalid BIOMETRIC_SIMILARITY_THRESHOLD: %w", err)
	}
	dimension, err := strconv.Atoi(getEnv("BIOMETRIC_EMBEDDING_DIMENSION", "512"))
	if err != nil {
		return nil, fmt.Errorf("invalid BIOMETRIC_EMBEDDING_DIMENSION: %w", err)
	}
	globalWhitelist, err := parseNetworkList(getEnv("NETWORK_GLOBAL_WHITELIST", ""))
	if err != nil {
		return nil, fmt.Errorf("invalid NETWORK_GLOBAL_WHITELIST: %w", err)
	}

	config.Verification = VerificationConfig{
		SimilarityThreshold: threshold,
		EmbeddingDimension:  dimension,
		EnforceNetworkCheck: getEnv("NETWORK_ENFORCE", "true") == "true",
		GlobalWhitelist:     globalWhitelist,
	}

	// Attendance configuration
	defaultWorkHours, err := strconv.ParseFloat(getEnv("ATTENDANCE_DEFAULT_WORK_HOURS", "8"), 64)
	if err != nil {
		return nil, fmt.Errorf("invalid ATTENDANCE_DEFAULT_WORK_HOURS: %w", err)
	}
	restDay, err := parseWeekday(getEnv("ATTENDANCE_REST_DAY", "SUNDAY"))
	if err != nil {
		return nil, fmt.Errorf("invalid ATTENDANCE_REST_DAY: %w", err)
	}

	config.Attendance = AttendanceConfig{
		DefaultStartTime: getEnv("ATTENDANCE_DEFAULT_START_TIME", "08:00"),
		DefaultWorkHours: defaultWorkHours,
		RestDay:          restDay,
	}

	// Schedule configuration
	doctorsPerDay, err := strconv.Atoi(getEnv("SCHEDULE_DOCTORS_PER_DAY", "0"))
	if err != nil {
		return nil, fmt.Errorf("invalid SCHEDULE_DOCTORS_PER_DAY: %w", err)
	}
	minCoverage, err := strconv.Atoi(getEnv("SCHEDULE_MIN_CLINIC_COVERAGE", "1"))
	if err != nil {
		return nil, fmt.Errorf("invalid SCHEDULE_MIN_CLINIC_COVERAGE: %w", err)
	}

	config.Schedule = ScheduleConfig{
		DutyMode:              getEnv("SCHEDULE_DUTY_MODE", "SINGLE_CLINIC"),
		RequiredDoctorsPerDay: doctorsPerDay,
		MinClinicCoverage:     minCoverage,
	}

	// Validate required fields
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return config, nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.Database.Password == "" {
		return fmt.Errorf("DB_PASSWORD is required")
	}
	if c.JWT.Secret == "" {
		return fmt.Errorf("JWT_SECRET_KEY is required")
	}
	if c.Verification.SimilarityThreshold <= 0 || c.Verification.SimilarityThreshold > 1 {
		return fmt.Errorf("BIOMETRIC_SIMILARITY_THRESHOLD must be in (0, 1]")
	}
	if c.Verification.EmbeddingDimension <= 0 {
		return fmt.Errorf("BIOMETRIC_EMBEDDING_DIMENSION must be positive")
	}
	if _, err := time.Parse("15:04", c.Attendance.DefaultStartTime); err != nil {
		return fmt.Errorf("ATTENDANCE_DEFAULT_START_TIME must be HH:MM: %w", err)
	}
	if c.Schedule.DutyMode != "SINGLE_CLINIC" && c.Schedule.DutyMode != "FULL_WEEK" {
		return fmt.Errorf("SCHEDULE_DUTY_MODE must be SINGLE_CLINIC or FULL_WEEK")
	}
	return nil
}

// DatabaseURL returns the PostgreSQL connection string
func (c *Config) DatabaseURL() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=%s",
		c.Database.User,
		c.Database.Password,
		c.Database.Host,
		c.Database.Port,
		c.Database.Name,
		c.Database.SSLMode,
	)
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

// parseNetworkList parses "SSID|BSSID,SSID|BSSID" pairs.
func parseNetworkList(value string) ([]verification.Network, error) {
	if value == "" {
		return nil, nil
	}
	var networks []verification.Network
	for _, pair := range strings.Split(value, ",") {
		parts := strings.SplitN(pair, "|", 2)
		if len(parts) != 2 || strings.TrimSpace(parts[0]) == "" || strings.TrimSpace(parts[1]) == "" {
			return nil, fmt.Errorf("expected SSID|BSSID, got %q", pair)
		}
		networks = append(networks, verification.Network{
			SSID:  strings.TrimSpace(parts[0]),
			BSSID: strings.TrimSpace(parts[1]),
		})
	}
	return networks, nil
}

func parseWeekday(value string) (time.Weekday, error) {
	days := map[string]time.Weekday{
		"SUNDAY":    time.Sunday,
		"MONDAY":    time.Monday,
		"TUESDAY":   time.Tuesday,
		"WEDNESDAY": time.Wednesday,
		"THURSDAY":  time.Thursday,
		"FRIDAY":    time.Friday,
		"SATURDAY":  time.Saturday,
	}
	day, ok := days[strings.ToUpper(value)]
	if !ok {
		return 0, fmt.Errorf("unknown weekday %q", value)
	}
	return day, nil
}
