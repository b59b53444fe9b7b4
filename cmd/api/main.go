package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"

	"github.com/medhq/hms-api/internal/config"
	"github.com/medhq/hms-api/internal/email"
	"github.com/medhq/hms-api/internal/handler"
	appointmentHandler "github.com/medhq/hms-api/internal/handler/appointment"
	attendanceHandler "github.com/medhq/hms-api/internal/handler/attendance"
	auditHandler "github.com/medhq/hms-api/internal/handler/audit"
	authHandler "github.com/medhq/hms-api/internal/handler/auth"
	dashboardHandler "github.com/medhq/hms-api/internal/handler/dashboard"
	invoiceHandler "github.com/medhq/hms-api/internal/handler/invoice"
	labrequestHandler "github.com/medhq/hms-api/internal/handler/labrequest"
	notificationHandler "github.com/medhq/hms-api/internal/handler/notification"
	patientHandler "github.com/medhq/hms-api/internal/handler/patient"
	prescriptionHandler "github.com/medhq/hms-api/internal/handler/prescription"
	roleHandler "github.com/medhq/hms-api/internal/handler/role"
	settingsHandler "github.com/medhq/hms-api/internal/handler/settings"
	"github.com/medhq/hms-api/internal/middleware"
	"github.com/medhq/hms-api/internal/repository/memory"
	"github.com/medhq/hms-api/internal/router"
	appointmentService "github.com/medhq/hms-api/internal/service/appointment"
	attendanceService "github.com/medhq/hms-api/internal/service/attendance"
	auditService "github.com/medhq/hms-api/internal/service/audit"
	authService "github.com/medhq/hms-api/internal/service/auth"
	dashboardService "github.com/medhq/hms-api/internal/service/dashboard"
	invoiceService "github.com/medhq/hms-api/internal/service/invoice"
	labrequestService "github.com/medhq/hms-api/internal/service/labrequest"
	notificationService "github.com/medhq/hms-api/internal/service/notification"
	patientService "github.com/medhq/hms-api/internal/service/patient"
	prescriptionService "github.com/medhq/hms-api/internal/service/prescription"
	roleService "github.com/medhq/hms-api/internal/service/role"
	settingsService "github.com/medhq/hms-api/internal/service/settings"
	"github.com/medhq/hms-api/internal/session"
	"github.com/medhq/hms-api/internal/worker"
	"github.com/medhq/hms-api/pkg/circuitbreaker"
	"github.com/medhq/hms-api/pkg/logger"
	"github.com/medhq/hms-api/pkg/metrics"
	"github.com/medhq/hms-api/pkg/validator"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	level, err := zerolog.ParseLevel(cfg.Logging.Level)
	if err != nil {
		level = zerolog.InfoLevel
	}
	log := logger.New(&logger.Config{
		Level:      level,
		TimeFormat: time.RFC3339,
		Output:     os.Stdout,
		Pretty:     cfg.Logging.Pretty,
	})

	if err := validator.Register(); err != nil {
		log.Fatal(err, "failed to register validators")
	}

	// Session store backend
	var (
		store  session.Store
		checks = map[string]handler.Pinger{}
	)
	switch cfg.Session.Backend {
	case "redis":
		redisStore, err := session.NewRedisStore(cfg.Redis.URL)
		if err != nil {
			log.Fatal(err, "failed to connect to redis")
		}
		defer redisStore.Close()
		store = redisStore
		checks["redis"] = redisStore
	default:
		store = session.NewMemoryStore(cfg.Session.TTL, 10*time.Minute)
	}

	codec := session.NewTokenCodec(cfg.Session.Secret, cfg.Session.TTL)

	// Repositories over the seeded in-memory collections
	patientRepo := memory.NewPatientRepository()
	appointmentRepo := memory.NewAppointmentRepository()
	prescriptionRepo := memory.NewPrescriptionRepository()
	labRequestRepo := memory.NewLabRequestRepository()
	invoiceRepo := memory.NewInvoiceRepository()
	notificationRepo := memory.NewNotificationRepository()
	attendanceRepo := memory.NewAttendanceRepository()
	roleRepo := memory.NewRoleRepository()
	auditRepo := memory.NewAuditRepository()
	settingsRepo := memory.NewSettingsRepository()

	// Outbound mail
	var sender email.Sender = email.NoopSender{}
	if cfg.SMTP.Enabled {
		smtp := email.NewSMTPSender(email.SMTPConfig{
			Host:     cfg.SMTP.Host,
			Port:     cfg.SMTP.Port,
			Username: cfg.SMTP.Username,
			Password: cfg.SMTP.Password,
			From:     cfg.SMTP.From,
		})
		sender = email.NewBreakerSender(smtp, circuitbreaker.New(circuitbreaker.Settings{
			Name:        "smtp",
			MaxFailures: 5,
			Cooldown:    time.Minute,
		}))
	}

	// Services
	auditSvc := auditService.NewService(auditRepo)
	authMetrics := metrics.NewAuthMetrics("hms")
	authSvc, err := authService.NewService(store, auditSvc, authMetrics, cfg.Session.TTL, cfg.Auth.LoginDelay)
	if err != nil {
		log.Fatal(err, "failed to build auth service")
	}
	notificationSvc := notificationService.NewService(notificationRepo, settingsRepo, sender, log)
	patientSvc := patientService.NewService(patientRepo)
	appointmentSvc := appointmentService.NewService(appointmentRepo, patientRepo, notificationSvc)
	prescriptionSvc := prescriptionService.NewService(prescriptionRepo)
	labRequestSvc := labrequestService.NewService(labRequestRepo)
	invoiceSvc := invoiceService.NewService(invoiceRepo)
	attendanceSvc := attendanceService.NewService(attendanceRepo, cfg.Reports.GenerateDelay)
	roleSvc := roleService.NewService(roleRepo)
	settingsSvc := settingsService.NewService(settingsRepo)
	dashboardSvc := dashboardService.NewService(patientRepo, appointmentRepo, notificationRepo, invoiceRepo)

	// Router
	r := router.New(
		authSvc,
		codec,
		handler.NewHealthHandler(checks),
		log,
		router.Config{
			RateLimitRPS:   cfg.RateLimit.RPS,
			RateLimitBurst: cfg.RateLimit.Burst,
			CORS:           corsConfig(cfg),
			MetricsPrefix:  "hms",
		},
		authHandler.NewHandler(authSvc, codec),
		dashboardHandler.NewHandler(dashboardSvc),
		patientHandler.NewHandler(patientSvc),
		appointmentHandler.NewHandler(appointmentSvc),
		prescriptionHandler.NewHandler(prescriptionSvc),
		labrequestHandler.NewHandler(labRequestSvc),
		invoiceHandler.NewHandler(invoiceSvc),
		notificationHandler.NewHandler(notificationSvc),
		attendanceHandler.NewHandler(attendanceSvc),
		roleHandler.NewHandler(roleSvc),
		auditHandler.NewHandler(auditSvc),
		settingsHandler.NewHandler(settingsSvc),
	)
	r.Setup()
	defer r.Close()

	workerCtx, stopWorkers := context.WithCancel(context.Background())
	defer stopWorkers()
	cleanup := worker.NewAuditCleanupWorker(auditRepo, cfg.Audit.RetentionDays, cfg.Audit.CleanupInterval, log)
	go cleanup.Start(workerCtx)

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:      r.Engine(),
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	go func() {
		log.WithFields(map[string]interface{}{"port": cfg.Server.Port}).Info("server starting")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal(err, "failed to start server")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal(err, "server forced to shutdown")
	}

	log.Info("server exited properly")
}

func corsConfig(cfg *config.Config) middleware.CORSConfig {
	c := middleware.DefaultCORSConfig()
	if len(cfg.CORS.AllowOrigins) > 0 {
		c.AllowOrigins = cfg.CORS.AllowOrigins
	}
	return c
}
