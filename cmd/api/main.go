package main

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/noursalon/salon-scheduler/internal/cache"
	"github.com/noursalon/salon-scheduler/internal/config"
	dbpkg "github.com/noursalon/salon-scheduler/internal/db"
	"github.com/noursalon/salon-scheduler/internal/logger"
	"github.com/noursalon/salon-scheduler/internal/media"
	"github.com/noursalon/salon-scheduler/internal/middleware"
	"github.com/noursalon/salon-scheduler/internal/notify"
	"github.com/noursalon/salon-scheduler/internal/reminder"
	"github.com/noursalon/salon-scheduler/internal/routes"
	"github.com/noursalon/salon-scheduler/internal/timezone"
)

func main() {

	cfg := config.Load()
	logger.Init(cfg.IsProduction())
	log := logger.Get()
	defer log.Sync()

	db := dbpkg.NewDB(cfg)
	redisCache := cache.New(cfg)
	sender := notify.NewSender(cfg)
	loc := timezone.Location(cfg.BusinessTimezone)

	uploader, err := media.New(cfg)
	if err != nil {
		log.Fatal("failed to initialize media storage", zap.Error(err))
	}

	ctx, stop := context.WithCancel(context.Background())
	defer stop()

	reminderWorker := reminder.NewWorker(
		db,
		sender,
		loc,
		time.Duration(cfg.ReminderTickSeconds)*time.Second,
	)
	go reminderWorker.Run(ctx)

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.Default()

	r.Use(middleware.CORSMiddleware())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	routes.RegisterRoutes(r, cfg, routes.Deps{
		DB:       db,
		Cache:    redisCache,
		Sender:   sender,
		Uploader: uploader,
		Loc:      loc,
	})

	log.Info("server starting", zap.String("addr", cfg.Addr()))
	if err := r.Run(cfg.Addr()); err != nil {
		log.Fatal("failed to start server", zap.Error(err))
	}
}
