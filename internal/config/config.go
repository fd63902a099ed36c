package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"
)

type AppConfig struct {
	Port       int    `yaml:"port"`
	GinMode    string `yaml:"gin_mode"`
	CORSOrigin string `yaml:"cors_origin"`
}

type DatabaseConfig struct {
	DSN string `yaml:"dsn"`
}

type RedisConfig struct {
	Addr     string `yaml:"addr"`
	Password string `yaml:"password"`
	DB       int    `yaml:"db"`
}

type JWTConfig struct {
	Secret     string `yaml:"secret"`
	Issuer     string `yaml:"issuer"`
	SessionTTL string `yaml:"session_ttl"`
}

type OTPConfig struct {
	TTL string `yaml:"ttl"`
}

type TwilioConfig struct {
	AccountSID string `yaml:"account_sid"`
	AuthToken  string `yaml:"auth_token"`
	FromNumber string `yaml:"from_number"`
}

type ConfigFile struct {
	App      AppConfig      `yaml:"app"`
	Database DatabaseConfig `yaml:"database"`
	Redis    RedisConfig    `yaml:"redis"`
	JWT      JWTConfig      `yaml:"jwt"`
	OTP      OTPConfig      `yaml:"otp"`
	Twilio   TwilioConfig   `yaml:"twilio"`
}

// Config is the resolved process configuration, constructed once at
// startup and passed by injection into the services that need it.
type Config struct {
	Port          string
	GinMode       string
	CORSOrigin    string
	DSN           string
	RedisAddr     string
	RedisPassword string
	RedisDB       int
	JWTSecret     string
	JWTIssuer     string
	SessionTTL    time.Duration
	OTPTTL        time.Duration
	TwilioSID     string
	TwilioToken   string
	TwilioFrom    string
}

func env(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

// Load reads config/config.yml, falling back to environment variables
// when the file is not present.
func Load() (*Config, error) {
	configFile, err := loadConfigFile("config/config.yml")
	if err != nil {
		if !os.IsNotExist(err) {
			return nil, fmt.Errorf("failed to load config file: %w", err)
		}
		return loadFromEnv()
	}

	sessionTTL, err := time.ParseDuration(configFile.JWT.SessionTTL)
	if err != nil {
		return nil, fmt.Errorf("invalid session TTL: %w", err)
	}

	otpTTL, err := time.ParseDuration(configFile.OTP.TTL)
	if err != nil {
		return nil, fmt.Errorf("invalid OTP TTL: %w", err)
	}

	return &Config{
		Port:          fmt.Sprintf("%d", configFile.App.Port),
		GinMode:       configFile.App.GinMode,
		CORSOrigin:    configFile.App.CORSOrigin,
		DSN:           configFile.Database.DSN,
		RedisAddr:     configFile.Redis.Addr,
		RedisPassword: configFile.Redis.Password,
		RedisDB:       configFile.Redis.DB,
		JWTSecret:     configFile.JWT.Secret,
		JWTIssuer:     configFile.JWT.Issuer,
		SessionTTL:    sessionTTL,
		OTPTTL:        otpTTL,
		TwilioSID:     configFile.Twilio.AccountSID,
		TwilioToken:   configFile.Twilio.AuthToken,
		TwilioFrom:    configFile.Twilio.FromNumber,
	}, nil
}

func loadFromEnv() (*Config, error) {
	sessionTTL, err := time.ParseDuration(env("SESSION_TTL", "24h"))
	if err != nil {
		return nil, fmt.Errorf("invalid SESSION_TTL: %w", err)
	}

	otpTTL, err := time.ParseDuration(env("OTP_TTL", "300s"))
	if err != nil {
		return nil, fmt.Errorf("invalid OTP_TTL: %w", err)
	}

	redisDB, err := strconv.Atoi(env("REDIS_DB", "0"))
	if err != nil {
		return nil, fmt.Errorf("invalid REDIS_DB: %w", err)
	}

	jwtSecret := os.Getenv("JWT_KEY")
	if jwtSecret == "" {
		return nil, fmt.Errorf("JWT_KEY is required")
	}

	return &Config{
		Port:          env("PORT", "8080"),
		GinMode:       env("GIN_MODE", "release"),
		CORSOrigin:    env("ORIGIN", ""),
		DSN:           env("DATABASE_URL", ""),
		RedisAddr:     env("REDIS_ADDR", "localhost:6379"),
		RedisPassword: env("REDIS_PASSWORD", ""),
		RedisDB:       redisDB,
		JWTSecret:     jwtSecret,
		JWTIssuer:     env("JWT_ISSUER", "phoneauthsvc"),
		SessionTTL:    sessionTTL,
		OTPTTL:        otpTTL,
		TwilioSID:     os.Getenv("ACCOUNT_SID"),
		TwilioToken:   os.Getenv("AUTH_TOKEN"),
		TwilioFrom:    os.Getenv("TWILIO_PHONE_NUMBER"),
	}, nil
}

func loadConfigFile(path string) (*ConfigFile, error) {
	bytes, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var config ConfigFile
	if err := yaml.Unmarshal(bytes, &config); err != nil {
		return nil, fmt.Errorf("could not parse config yaml: %w", err)
	}

	return &config, nil
}
