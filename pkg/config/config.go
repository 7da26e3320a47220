package config

import (
	"errors"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	EnvDevelopment = "development"
	EnvProduction  = "production"
)

type Config struct {
	Env       string
	Port      int
	APIPrefix string

	Database DatabaseConfig
	Redis    RedisConfig
	Auth     AuthConfig
	CORS     CORSConfig
	Log      LogConfig
	Scoring  ScoringConfig
	Calendar CalendarConfig
	Summary  SummaryConfig
}

type DatabaseConfig struct {
	Host         string
	Port         int
	User         string
	Password     string
	Name         string
	SSLMode      string
	MaxOpenConns int
	MaxIdleConns int
}

type RedisConfig struct {
	Host     string
	Port     int
	Password string
	DB       int
}

// AuthConfig holds the single admin account and token settings.
type AuthConfig struct {
	AdminUsername     string
	AdminPasswordHash string
	JWTSecret         string
	TokenExpiration   time.Duration
}

type CORSConfig struct {
	AllowedOrigins []string
}

type LogConfig struct {
	Level  string
	Format string
}

// ScoringConfig exposes every magnitude of the compatibility score as
// configuration. The defaults are the tuned production values; tests override
// individual fields.
type ScoringConfig struct {
	RejectScore           int
	UnmappedMatchBonus    int
	UnmappedPenalty       int
	RestrictedBonus       int
	ExactMatchBonus       int
	PartialMatchBonus     int
	ZoneExactBonus        int
	ZoneBlockBonus        int
	ZoneMissPenalty       int
	GroundFloorBonus      int
	UpperFloorPenalty     int
	VisionMismatchPenalty int
	InvasionPenalty       int
	AcceptThreshold       int

	MobilitySpecialties     []string
	VisionSpecialties       []string
	HighPrioritySpecialties []string
}

// CalendarConfig locates the facility clock used to derive the live slot.
type CalendarConfig struct {
	Timezone       string
	MorningStart   int
	AfternoonStart int
	NightStart     int
	NightEnd       int
}

// SummaryConfig tunes the cached summary endpoint.
type SummaryConfig struct {
	CacheTTL time.Duration
}

func Load() (*Config, error) {
	_ = godotenv.Load()

	v := viper.New()
	v.SetConfigFile(".env")
	v.SetConfigType("env")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, err
		}
	}

	cfg := &Config{}

	cfg.Env = v.GetString("ENV")
	cfg.Port = v.GetInt("PORT")
	cfg.APIPrefix = v.GetString("API_PREFIX")

	cfg.Database = DatabaseConfig{
		Host:         v.GetString("DB_HOST"),
		Port:         v.GetInt("DB_PORT"),
		User:         v.GetString("DB_USER"),
		Password:     v.GetString("DB_PASSWORD"),
		Name:         v.GetString("DB_NAME"),
		SSLMode:      v.GetString("DB_SSL_MODE"),
		MaxOpenConns: v.GetInt("DB_MAX_OPEN_CONNS"),
		MaxIdleConns: v.GetInt("DB_MAX_IDLE_CONNS"),
	}

	cfg.Redis = RedisConfig{
		Host:     v.GetString("REDIS_HOST"),
		Port:     v.GetInt("REDIS_PORT"),
		Password: v.GetString("REDIS_PASSWORD"),
		DB:       v.GetInt("REDIS_DB"),
	}

	cfg.Auth = AuthConfig{
		AdminUsername:     v.GetString("ADMIN_USERNAME"),
		AdminPasswordHash: v.GetString("ADMIN_PASSWORD_HASH"),
		JWTSecret:         v.GetString("JWT_SECRET"),
		TokenExpiration:   parseDuration(v.GetString("JWT_EXPIRATION"), time.Hour),
	}

	cfg.CORS = CORSConfig{AllowedOrigins: splitAndTrim(v.GetString("ALLOWED_ORIGINS"))}

	cfg.Log = LogConfig{
		Level:  v.GetString("LOG_LEVEL"),
		Format: v.GetString("LOG_FORMAT"),
	}

	cfg.Scoring = ScoringConfig{
		RejectScore:           v.GetInt("SCORE_REJECT"),
		UnmappedMatchBonus:    v.GetInt("SCORE_UNMAPPED_MATCH"),
		UnmappedPenalty:       v.GetInt("SCORE_UNMAPPED_PENALTY"),
		RestrictedBonus:       v.GetInt("SCORE_RESTRICTED_BONUS"),
		ExactMatchBonus:       v.GetInt("SCORE_EXACT_MATCH"),
		PartialMatchBonus:     v.GetInt("SCORE_PARTIAL_MATCH"),
		ZoneExactBonus:        v.GetInt("SCORE_ZONE_EXACT"),
		ZoneBlockBonus:        v.GetInt("SCORE_ZONE_BLOCK"),
		ZoneMissPenalty:       v.GetInt("SCORE_ZONE_MISS"),
		GroundFloorBonus:      v.GetInt("SCORE_GROUND_FLOOR"),
		UpperFloorPenalty:     v.GetInt("SCORE_UPPER_FLOOR"),
		VisionMismatchPenalty: v.GetInt("SCORE_VISION_MISMATCH"),
		InvasionPenalty:       v.GetInt("SCORE_INVASION"),
		AcceptThreshold:       v.GetInt("SCORE_ACCEPT_THRESHOLD"),

		MobilitySpecialties:     splitAndTrim(v.GetString("MOBILITY_SPECIALTIES")),
		VisionSpecialties:       splitAndTrim(v.GetString("VISION_SPECIALTIES")),
		HighPrioritySpecialties: splitAndTrim(v.GetString("HIGH_PRIORITY_SPECIALTIES")),
	}

	cfg.Calendar = CalendarConfig{
		Timezone:       v.GetString("FACILITY_TIMEZONE"),
		MorningStart:   v.GetInt("SHIFT_MORNING_START"),
		AfternoonStart: v.GetInt("SHIFT_AFTERNOON_START"),
		NightStart:     v.GetInt("SHIFT_NIGHT_START"),
		NightEnd:       v.GetInt("SHIFT_NIGHT_END"),
	}

	cfg.Summary = SummaryConfig{
		CacheTTL: parseDuration(v.GetString("SUMMARY_CACHE_TTL"), 5*time.Minute),
	}

	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("ENV", EnvDevelopment)
	v.SetDefault("PORT", 8080)
	v.SetDefault("API_PREFIX", "/api/v1")

	v.SetDefault("DB_HOST", "localhost")
	v.SetDefault("DB_PORT", 5432)
	v.SetDefault("DB_USER", "postgres")
	v.SetDefault("DB_PASSWORD", "postgres")
	v.SetDefault("DB_NAME", "gds")
	v.SetDefault("DB_SSL_MODE", "disable")
	v.SetDefault("DB_MAX_OPEN_CONNS", 10)
	v.SetDefault("DB_MAX_IDLE_CONNS", 5)

	v.SetDefault("REDIS_HOST", "localhost")
	v.SetDefault("REDIS_PORT", 6379)
	v.SetDefault("REDIS_PASSWORD", "")
	v.SetDefault("REDIS_DB", 0)

	v.SetDefault("ADMIN_USERNAME", "admin")
	v.SetDefault("ADMIN_PASSWORD_HASH", "")
	v.SetDefault("JWT_SECRET", "dev_secret")
	v.SetDefault("JWT_EXPIRATION", "1h")

	v.SetDefault("ALLOWED_ORIGINS", "")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("LOG_FORMAT", "json")

	v.SetDefault("SCORE_REJECT", -10000)
	v.SetDefault("SCORE_UNMAPPED_MATCH", 50)
	v.SetDefault("SCORE_UNMAPPED_PENALTY", -800)
	v.SetDefault("SCORE_RESTRICTED_BONUS", 10000)
	v.SetDefault("SCORE_EXACT_MATCH", 1000)
	v.SetDefault("SCORE_PARTIAL_MATCH", 800)
	v.SetDefault("SCORE_ZONE_EXACT", 300)
	v.SetDefault("SCORE_ZONE_BLOCK", 100)
	v.SetDefault("SCORE_ZONE_MISS", -100)
	v.SetDefault("SCORE_GROUND_FLOOR", 2000)
	v.SetDefault("SCORE_UPPER_FLOOR", -2000)
	v.SetDefault("SCORE_VISION_MISMATCH", -5000)
	v.SetDefault("SCORE_INVASION", -200)
	v.SetDefault("SCORE_ACCEPT_THRESHOLD", -500)

	v.SetDefault("MOBILITY_SPECIALTIES", "ortopedia,reumatologia")
	v.SetDefault("VISION_SPECIALTIES", "oftalmologia")
	v.SetDefault("HIGH_PRIORITY_SPECIALTIES", "oncologia")

	v.SetDefault("FACILITY_TIMEZONE", "America/Recife")
	v.SetDefault("SHIFT_MORNING_START", 6)
	v.SetDefault("SHIFT_AFTERNOON_START", 13)
	v.SetDefault("SHIFT_NIGHT_START", 18)
	v.SetDefault("SHIFT_NIGHT_END", 23)

	v.SetDefault("SUMMARY_CACHE_TTL", "5m")
}

func parseDuration(raw string, fallback time.Duration) time.Duration {
	if raw == "" {
		return fallback
	}

	d, err := time.ParseDuration(raw)
	if err != nil {
		return fallback
	}

	return d
}

func splitAndTrim(raw string) []string {
	if raw == "" {
		return nil
	}

	parts := strings.Split(raw, ",")
	result := make([]string, 0, len(parts))
	for _, part := range parts {
		trimmed := strings.TrimSpace(part)
		if trimmed != "" {
			result = append(result, trimmed)
		}
	}

	return result
}
