package main

import (
	"context"
	"log"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/mr-thop/recruit-edge-api/internal/api"
	"github.com/mr-thop/recruit-edge-api/internal/config"
	"github.com/mr-thop/recruit-edge-api/internal/logging"
	"github.com/mr-thop/recruit-edge-api/internal/notify"
	"github.com/mr-thop/recruit-edge-api/internal/ranking"
	"github.com/mr-thop/recruit-edge-api/internal/scheduling"
	"github.com/mr-thop/recruit-edge-api/internal/store"
	"github.com/mr-thop/recruit-edge-api/internal/teams"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logger, err := logging.New(cfg.IsProduction())
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer logger.Sync()

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	ctx := context.Background()

	var scheduleStore store.ScheduleStore
	if cfg.RedisAddr != "" {
		rs, err := store.NewRedisStore(ctx, cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
		if err != nil {
			logger.Fatal("Failed to connect to Redis", zap.String("addr", cfg.RedisAddr), zap.Error(err))
		}
		defer rs.Close()
		scheduleStore = rs
		logger.Info("Using Redis schedule store", zap.String("addr", cfg.RedisAddr))
	} else {
		scheduleStore = store.NewMemoryStore()
		logger.Info("Using in-memory schedule store")
	}

	var sender notify.Sender = notify.Disabled{}
	if cfg.GmailCredentials != "" {
		gs, err := notify.NewGmailSender(ctx, cfg.GmailCredentials, cfg.GmailToken, cfg.MailFrom)
		if err != nil {
			logger.Fatal("Failed to initialize Gmail sender", zap.Error(err))
		}
		sender = gs
		logger.Info("Email invitations enabled", zap.String("from", cfg.MailFrom))
	} else {
		logger.Warn("GMAIL_CREDENTIALS not set, email invitations disabled")
	}

	schedulingService := scheduling.NewService(
		scheduleStore,
		sender,
		logger,
		time.Duration(cfg.ScheduleTTLMin)*time.Minute,
	)

	server := api.NewServer(api.Deps{
		Scheduling: schedulingService,
		Ranking:    ranking.NewClient(cfg.RankingServiceURL, nil),
		Teams:      teams.NewClient(cfg.TeamServiceURL, nil),
		Logger:     logger,
		BaseURL:    cfg.PublicBaseURL,
		RatePerMin: cfg.MaxRequestsPerMin,
	})

	addr := ":" + cfg.AppPort
	logger.Info("Starting server", zap.String("addr", addr), zap.String("env", cfg.Env))
	if err := server.Router().Run(addr); err != nil {
		logger.Fatal("Server exited", zap.Error(err))
	}
}
