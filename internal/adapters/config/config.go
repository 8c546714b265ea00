package config

import (
	"fmt"
	"time"

	"github.com/spf13/viper"
)

type ServerConfig struct {
	Host string `mapstructure:"SERVER_HOST"`
	Port string `mapstructure:"SERVER_PORT"`
}

func (c ServerConfig) Addr() string {
	return fmt.Sprintf("%s:%s", c.Host, c.Port)
}

type PGConfig struct {
	Host     string `mapstructure:"POSTGRES_HOST"`
	Port     string `mapstructure:"POSTGRES_PORT"`
	User     string `mapstructure:"POSTGRES_USER"`
	Password string `mapstructure:"POSTGRES_PASSWORD"`
	Database string `mapstructure:"POSTGRES_DB"`
	SSLMode  string `mapstructure:"POSTGRES_SSL_MODE"`
}

func (c PGConfig) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.Database, c.SSLMode,
	)
}

type RedisConfig struct {
	Host     string `mapstructure:"REDIS_HOST"`
	Port     string `mapstructure:"REDIS_PORT"`
	Password string `mapstructure:"REDIS_PASSWORD"`
}

func (c RedisConfig) Addr() string {
	return fmt.Sprintf("%s:%s", c.Host, c.Port)
}

type JWTConfig struct {
	Secret string        `mapstructure:"JWT_SECRET"`
	TTL    time.Duration `mapstructure:"JWT_TTL"`
}

type SMTPConfig struct {
	Host     string `mapstructure:"SMTP_HOST"`
	Port     int    `mapstructure:"SMTP_PORT"`
	Login    string `mapstructure:"SMTP_LOGIN"`
	Password string `mapstructure:"SMTP_PASSWORD"`
	From     string `mapstructure:"SMTP_FROM"`
	Enabled  bool   `mapstructure:"SMTP_ENABLED"`
}

type GitHubConfig struct {
	ClientID     string `mapstructure:"GITHUB_CLIENT_ID"`
	ClientSecret string `mapstructure:"GITHUB_CLIENT_SECRET"`
	RedirectURL  string `mapstructure:"GITHUB_REDIRECT_URL"`
}

type MinioConfig struct {
	Endpoint       string `mapstructure:"MINIO_ENDPOINT"`
	AccessKey      string `mapstructure:"MINIO_ACCESS_KEY"`
	SecretKey      string `mapstructure:"MINIO_SECRET_KEY"`
	Bucket         string `mapstructure:"MINIO_BUCKET"`
	UseSSL         bool   `mapstructure:"MINIO_USE_SSL"`
	PublicEndpoint string `mapstructure:"MINIO_PUBLIC_ENDPOINT"`
}

type AppConfig struct {
	FrontendURL      string        `mapstructure:"FRONTEND_URL"`
	AttendanceXP     int           `mapstructure:"ATTENDANCE_XP"`
	LeaderboardSize  int           `mapstructure:"LEADERBOARD_SIZE"`
	LeaderboardTTL   time.Duration `mapstructure:"LEADERBOARD_TTL"`
	OAuthStateTTL    time.Duration `mapstructure:"OAUTH_STATE_TTL"`
	ReminderInterval time.Duration `mapstructure:"REMINDER_INTERVAL"`
	ReminderWindow   time.Duration `mapstructure:"REMINDER_WINDOW"`
}

type LoggerConfig struct {
	Debug bool `mapstructure:"LOGGER_DEBUG"`
}

type Config struct {
	Server ServerConfig `mapstructure:",squash"`
	PG     PGConfig     `mapstructure:",squash"`
	Redis  RedisConfig  `mapstructure:",squash"`
	JWT    JWTConfig    `mapstructure:",squash"`
	SMTP   SMTPConfig   `mapstructure:",squash"`
	GitHub GitHubConfig `mapstructure:",squash"`
	Minio  MinioConfig  `mapstructure:",squash"`
	App    AppConfig    `mapstructure:",squash"`
	Logger LoggerConfig `mapstructure:",squash"`
}

// NewConfig reads configuration from the environment, with an optional .env
// file for local development.
func NewConfig() (*Config, error) {
	viper.SetDefault("SERVER_HOST", "0.0.0.0")
	viper.SetDefault("SERVER_PORT", "8080")
	viper.SetDefault("POSTGRES_HOST", "localhost")
	viper.SetDefault("POSTGRES_PORT", "5432")
	viper.SetDefault("POSTGRES_USER", "postgres")
	viper.SetDefault("POSTGRES_DB", "campushub")
	viper.SetDefault("POSTGRES_SSL_MODE", "disable")
	viper.SetDefault("REDIS_HOST", "localhost")
	viper.SetDefault("REDIS_PORT", "6379")
	viper.SetDefault("JWT_TTL", 7*24*time.Hour)
	viper.SetDefault("SMTP_PORT", 587)
	viper.SetDefault("SMTP_ENABLED", false)
	viper.SetDefault("GITHUB_REDIRECT_URL", "http://127.0.0.1:8080/auth/github/callback")
	viper.SetDefault("MINIO_BUCKET", "campushub")
	viper.SetDefault("FRONTEND_URL", "http://127.0.0.1:3000")
	viper.SetDefault("ATTENDANCE_XP", 50)
	viper.SetDefault("LEADERBOARD_SIZE", 10)
	viper.SetDefault("LEADERBOARD_TTL", time.Minute)
	viper.SetDefault("OAUTH_STATE_TTL", 10*time.Minute)
	viper.SetDefault("REMINDER_INTERVAL", 15*time.Minute)
	viper.SetDefault("REMINDER_WINDOW", 24*time.Hour)
	viper.SetDefault("LOGGER_DEBUG", false)

	viper.BindEnv("POSTGRES_PASSWORD")
	viper.BindEnv("REDIS_PASSWORD")
	viper.BindEnv("JWT_SECRET")
	viper.BindEnv("SMTP_HOST")
	viper.BindEnv("SMTP_LOGIN")
	viper.BindEnv("SMTP_PASSWORD")
	viper.BindEnv("SMTP_FROM")
	viper.BindEnv("GITHUB_CLIENT_ID")
	viper.BindEnv("GITHUB_CLIENT_SECRET")
	viper.BindEnv("MINIO_ENDPOINT")
	viper.BindEnv("MINIO_ACCESS_KEY")
	viper.BindEnv("MINIO_SECRET_KEY")
	viper.BindEnv("MINIO_USE_SSL")
	viper.BindEnv("MINIO_PUBLIC_ENDPOINT")

	viper.SetConfigFile(".env")
	viper.SetConfigType("env")
	_ = viper.ReadInConfig()

	viper.AutomaticEnv()

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	return &cfg, nil
}
