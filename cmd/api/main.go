package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"task-hero/config"
	_ "task-hero/docs" // Swagger docs
	"task-hero/internal/httpserver"
	"task-hero/internal/notifier"
	gcalNotifier "task-hero/internal/notifier/gcalendar"
	tgNotifier "task-hero/internal/notifier/telegram"
	tgDelivery "task-hero/internal/task/delivery/telegram"
	"task-hero/internal/task/repository"
	boltRepo "task-hero/internal/task/repository/bolt"
	fileRepo "task-hero/internal/task/repository/file"
	redisRepo "task-hero/internal/task/repository/redis"
	"task-hero/internal/task/usecase"
	"task-hero/pkg/datemath"
	"task-hero/pkg/gcalendar"
	"task-hero/pkg/log"
	"task-hero/pkg/telegram"
)

// @title       Task Hero API
// @description Gamified task scheduling: XP, levels, streaks and start-time reminders.
// @version     1
// @host        localhost:8080
// @schemes     http
func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting Task Hero...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)

	// 3. Calendar
	cal, err := datemath.NewCalendar(cfg.Engine.Timezone)
	if err != nil {
		logger.Warnf(ctx, "Invalid timezone %q, falling back to local time: %v", cfg.Engine.Timezone, err)
		cal = datemath.Local()
	}

	// 4. Storage
	var stateRepo repository.StateRepository
	switch cfg.Storage.Driver {
	case config.StorageBolt:
		boltStore, boltErr := boltRepo.New(cfg.Storage.Path, cfg.Storage.Key)
		if boltErr != nil {
			logger.Errorf(ctx, "Failed to open bolt store at %s: %v", cfg.Storage.Path, boltErr)
			return
		}
		defer boltStore.Close()
		stateRepo = boltStore
	case config.StorageFile:
		stateRepo = fileRepo.New(cfg.Storage.Path)
	case config.StorageRedis:
		redisClient, redisErr := redisRepo.NewClient(ctx, cfg.Redis.URL, cfg.Redis.Password, cfg.Redis.DB)
		if redisErr != nil {
			logger.Errorf(ctx, "Failed to connect to redis: %v", redisErr)
			return
		}
		defer redisClient.Close()
		stateRepo = redisRepo.New(redisClient, cfg.Storage.Key)
	}
	logger.Infof(ctx, "Storage driver: %s", cfg.Storage.Driver)

	// 5. Telegram bot (optional, shared by chat delivery and reminders)
	var telegramBot *telegram.Bot
	if cfg.Telegram.BotToken != "" && cfg.Telegram.ChatID != 0 {
		telegramBot = telegram.NewBot(cfg.Telegram.BotToken)
	}

	// 6. Reminders
	var reminders notifier.Notifier
	switch cfg.Reminder.Driver {
	case config.ReminderTelegram:
		tgReminders := tgNotifier.New(logger, telegramBot, cfg.Telegram.ChatID)
		defer tgReminders.Stop()
		reminders = tgReminders
	case config.ReminderGCalendar:
		calendarClient, calErr := gcalendar.NewClientFromCredentialsFile(ctx, cfg.GoogleCalendar.CredentialsPath, cfg.GoogleCalendar.TokenPath)
		if calErr != nil {
			logger.Warnf(ctx, "Google Calendar not available, reminders disabled: %v", calErr)
			logger.Warn(ctx, "Run `go run ./scripts/gcal-auth` to generate the token file")
		} else {
			reminders = gcalNotifier.New(logger, calendarClient, cfg.GoogleCalendar.CalendarID, eventTimezone(cal))
			logger.Info(ctx, "Google Calendar reminders initialized")
		}
	}
	logger.Infof(ctx, "Reminder driver: %s", cfg.Reminder.Driver)

	// 7. Task UseCase
	taskUC := usecase.New(logger, stateRepo, reminders, cal,
		usecase.WithReminderLead(cfg.Engine.ReminderLead),
		usecase.WithDefaultMinutes(cfg.Engine.DefaultMinutes),
	)
	defer taskUC.Close()

	if err := taskUC.Load(ctx); err != nil {
		logger.Warnf(ctx, "Starting with empty state: %v", err)
	}
	go taskUC.RunClock(ctx, cfg.Engine.TickInterval)

	// 8. Telegram delivery
	var telegramHandler tgDelivery.Handler
	if telegramBot != nil {
		telegramHandler = tgDelivery.New(logger, taskUC, telegramBot, cfg.Telegram.ChatID, cal.Location())
		registerWebhook(ctx, logger, telegramBot, cfg.Telegram)
	} else {
		logger.Warn(ctx, "Telegram skipped: TELEGRAM_BOT_TOKEN or TELEGRAM_CHAT_ID is missing")
	}

	// 9. HTTP Server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Logger:          logger,
		Port:            cfg.HTTPServer.Port,
		Mode:            cfg.HTTPServer.Mode,
		Environment:     cfg.Environment.Name,
		RateLimitPerMin: cfg.RateLimit.PerMin,
		TaskUseCase:     taskUC,
		TelegramHandler: telegramHandler,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	// 10. Run
	if err := httpServer.Run(ctx); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}

// registerWebhook points Telegram at the configured URL, or at an ngrok tunnel when none is set.
func registerWebhook(ctx context.Context, logger log.Logger, bot *telegram.Bot, cfg config.TelegramConfig) {
	webhookURL := cfg.WebhookURL
	if webhookURL == "" {
		ngrokURL, err := detectNgrokURL(ctx, cfg.NgrokAPI)
		if err != nil {
			logger.Warnf(ctx, "Could not detect ngrok URL: %v", err)
			return
		}
		webhookURL = ngrokURL + "/webhook/telegram"
		logger.Infof(ctx, "Auto-detected ngrok URL: %s", webhookURL)
	}

	if err := bot.SetWebhook(ctx, webhookURL); err != nil {
		logger.Warnf(ctx, "Failed to set Telegram webhook: %v", err)
		return
	}
	logger.Infof(ctx, "Telegram webhook registered at %s", webhookURL)
}

// eventTimezone is the IANA name sent with calendar events. Event times carry
// their offset, so the machine's unnamed local zone is sent as empty.
func eventTimezone(cal datemath.Calendar) string {
	name := cal.Location().String()
	if name == "Local" {
		return ""
	}
	return name
}
