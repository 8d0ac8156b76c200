package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Storage and reminder drivers.
const (
	StorageBolt  = "bolt"
	StorageFile  = "file"
	StorageRedis = "redis"

	ReminderNone      = "none"
	ReminderTelegram  = "telegram"
	ReminderGCalendar = "gcalendar"
)

// Config holds all service configuration.
type Config struct {
	// Environment
	Environment EnvironmentConfig

	// Server
	HTTPServer HTTPServerConfig
	Logger     LoggerConfig
	RateLimit  RateLimitConfig

	// Task Hero specifics
	Engine         EngineConfig
	Storage        StorageConfig
	Redis          RedisConfig
	Reminder       ReminderConfig
	Telegram       TelegramConfig
	GoogleCalendar GoogleCalendarConfig
}

type EnvironmentConfig struct {
	Name string
}

type HTTPServerConfig struct {
	Port int
	Mode string
}

type LoggerConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool
}

type RateLimitConfig struct {
	PerMin int
}

// EngineConfig tunes the task engine.
type EngineConfig struct {
	Timezone       string
	TickInterval   time.Duration
	ReminderLead   time.Duration
	DefaultMinutes int
}

type StorageConfig struct {
	Driver string
	Path   string
	Key    string
}

type RedisConfig struct {
	URL      string
	Password string
	DB       int
}

type ReminderConfig struct {
	Driver string
}

type TelegramConfig struct {
	BotToken   string
	ChatID     int64
	WebhookURL string
	// NgrokAPI is polled for a public URL when WebhookURL is empty.
	NgrokAPI string
}

type GoogleCalendarConfig struct {
	CredentialsPath string
	TokenPath       string
	CalendarID      string
}

// Load loads configuration using Viper.
// A .env file is loaded into the environment first when present.
// Config file name: config.yaml, searched in ./config, ., /etc/task-hero/
func Load() (*Config, error) {
	// A missing .env is normal outside local development.
	_ = godotenv.Load()

	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("./config")
	v.AddConfigPath(".")
	v.AddConfigPath("/etc/task-hero/")

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg := fromViper(v)
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func fromViper(v *viper.Viper) *Config {
	cfg := &Config{}

	// Environment & Server
	cfg.Environment.Name = v.GetString("environment.name")
	cfg.HTTPServer.Port = v.GetInt("http_server.port")
	cfg.HTTPServer.Mode = v.GetString("http_server.mode")
	cfg.Logger.Level = v.GetString("logger.level")
	cfg.Logger.Mode = v.GetString("logger.mode")
	cfg.Logger.Encoding = v.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = v.GetBool("logger.color_enabled")
	cfg.RateLimit.PerMin = v.GetInt("rate_limit.per_min")

	// Engine
	cfg.Engine.Timezone = v.GetString("engine.timezone")
	cfg.Engine.TickInterval = v.GetDuration("engine.tick_interval")
	cfg.Engine.ReminderLead = v.GetDuration("engine.reminder_lead")
	cfg.Engine.DefaultMinutes = v.GetInt("engine.default_minutes")

	// Persistence
	cfg.Storage.Driver = strings.ToLower(v.GetString("storage.driver"))
	cfg.Storage.Path = v.GetString("storage.path")
	cfg.Storage.Key = v.GetString("storage.key")
	cfg.Redis.URL = v.GetString("redis.url")
	cfg.Redis.Password = v.GetString("redis.password")
	cfg.Redis.DB = v.GetInt("redis.db")

	// Reminders
	cfg.Reminder.Driver = strings.ToLower(v.GetString("reminder.driver"))
	cfg.Telegram.BotToken = v.GetString("telegram.bot_token")
	cfg.Telegram.ChatID = v.GetInt64("telegram.chat_id")
	cfg.Telegram.WebhookURL = v.GetString("telegram.webhook_url")
	cfg.Telegram.NgrokAPI = v.GetString("telegram.ngrok_api")
	cfg.GoogleCalendar.CredentialsPath = v.GetString("google_calendar.credentials_path")
	cfg.GoogleCalendar.TokenPath = v.GetString("google_calendar.token_path")
	cfg.GoogleCalendar.CalendarID = v.GetString("google_calendar.calendar_id")

	return cfg
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("environment.name", "development")
	v.SetDefault("http_server.port", 8080)
	v.SetDefault("http_server.mode", "debug")
	v.SetDefault("logger.level", "debug")
	v.SetDefault("logger.mode", "debug")
	v.SetDefault("logger.encoding", "console")
	v.SetDefault("logger.color_enabled", true)
	v.SetDefault("rate_limit.per_min", 120)

	v.SetDefault("engine.timezone", "Local")
	v.SetDefault("engine.tick_interval", "1m")
	v.SetDefault("engine.reminder_lead", "1m")
	v.SetDefault("engine.default_minutes", 30)

	v.SetDefault("storage.driver", StorageBolt)
	v.SetDefault("storage.path", "data/task-hero.db")
	v.SetDefault("storage.key", "@TaskHeroData")
	v.SetDefault("redis.url", "redis://localhost:6379/0")
	v.SetDefault("redis.db", 0)

	v.SetDefault("reminder.driver", ReminderNone)
	v.SetDefault("telegram.ngrok_api", "http://ngrok:4040")
	v.SetDefault("google_calendar.token_path", "token.json")
	v.SetDefault("google_calendar.calendar_id", "primary")
}

// Validate checks driver names, durations and the credentials each driver needs.
func (c *Config) Validate() error {
	switch c.Storage.Driver {
	case StorageBolt, StorageFile:
		if c.Storage.Path == "" {
			return fmt.Errorf("storage.path is required for the %s driver", c.Storage.Driver)
		}
	case StorageRedis:
		if c.Redis.URL == "" {
			return errors.New("redis.url is required for the redis driver")
		}
	default:
		return fmt.Errorf("unknown storage.driver %q", c.Storage.Driver)
	}

	switch c.Reminder.Driver {
	case ReminderNone:
	case ReminderTelegram:
		if c.Telegram.BotToken == "" || c.Telegram.ChatID == 0 {
			return errors.New("telegram.bot_token and telegram.chat_id are required for the telegram reminder driver")
		}
	case ReminderGCalendar:
		if c.GoogleCalendar.CredentialsPath == "" {
			return errors.New("google_calendar.credentials_path is required for the gcalendar reminder driver")
		}
	default:
		return fmt.Errorf("unknown reminder.driver %q", c.Reminder.Driver)
	}

	if c.Engine.TickInterval <= 0 {
		return errors.New("engine.tick_interval must be positive")
	}
	if c.Engine.ReminderLead <= 0 {
		return errors.New("engine.reminder_lead must be positive")
	}
	if c.Engine.DefaultMinutes <= 0 {
		return errors.New("engine.default_minutes must be positive")
	}
	if c.HTTPServer.Port <= 0 {
		return errors.New("http_server.port must be positive")
	}
	return nil
}
