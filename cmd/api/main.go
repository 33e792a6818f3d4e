package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/clinic-scheduler/internal/audit"
	"github.com/BruksfildServices01/clinic-scheduler/internal/config"
	dbpkg "github.com/BruksfildServices01/clinic-scheduler/internal/db"
	domain "github.com/BruksfildServices01/clinic-scheduler/internal/domain/appointment"
	"github.com/BruksfildServices01/clinic-scheduler/internal/infra/repository"
	"github.com/BruksfildServices01/clinic-scheduler/internal/infra/slotlock"
	"github.com/BruksfildServices01/clinic-scheduler/internal/infra/storage"
	"github.com/BruksfildServices01/clinic-scheduler/internal/logger"
	"github.com/BruksfildServices01/clinic-scheduler/internal/routes"
	"github.com/BruksfildServices01/clinic-scheduler/internal/timezone"
)

func main() {

	cfg := config.Load()
	log := logger.New(cfg.LogLevel)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// ======================================================
	// 🗄️ DATABASE
	// ======================================================
	db, err := dbpkg.NewDB(cfg)
	if err != nil {
		log.WithError(err).Fatal("database init failed")
	}

	if err := dbpkg.SeedWeekdays(ctx, db); err != nil {
		log.WithError(err).Fatal("weekday seed failed")
	}

	if _, err := dbpkg.EnsureDefaultService(ctx, db, cfg.DefaultServiceName, cfg.DefaultServiceDurationMin); err != nil {
		log.WithError(err).Fatal("default service seed failed")
	}

	policy, err := dbpkg.LoadWeekdayPolicy(ctx, db)
	if err != nil {
		log.WithError(err).Fatal("weekday policy load failed")
	}
	go dbpkg.WatchWeekdayPolicy(ctx, db, policy, cfg.WeekdayRefresh, log.WithComponent("weekdays"))

	// ======================================================
	// 🔒 SLOT LOCK
	// ======================================================
	var locker domain.SlotLocker = slotlock.Noop{}
	if cfg.RedisURL != "" {
		rdb, err := slotlock.NewClient(ctx, cfg.RedisURL)
		if err != nil {
			log.WithError(err).Fatal("redis init failed")
		}
		defer rdb.Close()
		locker = slotlock.NewRedisLocker(rdb, cfg.SlotLockTTL, log.WithComponent("slotlock"))
	}

	// ======================================================
	// ☁️ EXPORT STORAGE
	// ======================================================
	var uploader storage.Uploader
	if cfg.S3.Enabled() {
		uploader = storage.NewS3Uploader(storage.NewS3Client(cfg.S3), cfg.S3.Bucket)
	} else {
		log.Info("S3_BUCKET not set, calendar export disabled")
	}

	dispatcher := audit.NewDispatcher(audit.New(db), log.WithComponent("audit"))

	// ======================================================
	// 🌐 HTTP
	// ======================================================
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()
	r.Use(gin.Recovery())

	routes.RegisterRoutes(r, routes.Deps{
		DB:       db,
		Config:   cfg,
		Log:      log,
		Clock:    timezone.NewClock(cfg.ClinicTimezone),
		Repo:     repository.NewAppointmentGormRepository(db),
		Locker:   locker,
		Policy:   policy,
		Audit:    dispatcher,
		Uploader: uploader,
	})

	srv := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           r,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		log.WithField("addr", cfg.Addr()).Info("server running")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.WithError(err).Fatal("failed to start server")
		}
	}()

	<-ctx.Done()
	log.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.WithError(err).Error("graceful shutdown failed")
	}

	// Flush queued audit entries before the DB pool goes away.
	dispatcher.Close()

	if sqlDB, err := db.DB(); err == nil {
		_ = sqlDB.Close()
	}
}
