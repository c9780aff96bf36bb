package main

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"autocare/internal/config"
	"autocare/internal/database"
	"autocare/internal/logging"
	"autocare/internal/metrics"
	"autocare/internal/middleware"
	"autocare/internal/modules/admin"
	"autocare/internal/modules/booking"
	"autocare/internal/modules/catalog"
	"autocare/internal/modules/chat"
	"autocare/internal/notifier"
	jwtsvc "autocare/internal/pkg/jwt"
	"autocare/internal/repository"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	log := logging.New(cfg)

	db, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Fatal().Err(err).Msg("database connection failed")
	}
	if err := repository.Migrate(db); err != nil {
		log.Fatal().Err(err).Msg("migration failed")
	}

	metrics.Register()

	appointmentRepo := repository.NewAppointmentRepository(db)
	adminRepo := repository.NewAdminRepository(db)

	j := jwtsvc.New(cfg.JWTSecret, cfg.SessionTTL)

	var emailSender notifier.EmailSender = notifier.NoopEmailSender{}
	if cfg.EmailJS.Configured() {
		emailSender = notifier.NewEmailJSSender(cfg.EmailJS, log)
	} else {
		log.Warn().Msg("emailjs not configured, email notifications disabled")
	}

	var smsSender notifier.SMSSender = notifier.NoopSMSSender{}
	if cfg.Twilio.Configured() {
		smsSender = notifier.NewTwilioSender(cfg.Twilio, log)
	} else {
		log.Warn().Msg("twilio not configured, sms notifications disabled")
	}

	notifs := notifier.New(emailSender, smsSender, cfg, log)

	catalogService := catalog.NewService()
	catalogHandler := catalog.NewHandler(catalogService)

	bookingService := booking.NewService(appointmentRepo, catalogService, notifs)
	bookingHandler := booking.NewHandler(bookingService)

	adminService := admin.NewService(appointmentRepo, adminRepo, j, notifs)
	adminHandler := admin.NewHandler(adminService)

	chatService := chat.NewService(catalogService, cfg.Operator)
	chatHandler := chat.NewHandler(chatService, log)

	if cfg.AppEnv == "prod" || cfg.AppEnv == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(middleware.Recovery(log))
	r.Use(middleware.RequestLogger(log))
	r.Use(middleware.CORS())

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	v1 := r.Group("/api/v1")
	{
		// public
		bookingHandler.RegisterRoutes(v1)
		catalogHandler.RegisterRoutes(v1)
		chatHandler.RegisterRoutes(v1)
		adminHandler.RegisterAuthRoutes(v1)

		// protected (dashboard endpoints)
		protected := v1.Group("/admin")
		protected.Use(middleware.AdminJWTAuth(j))
		{
			adminHandler.RegisterRoutes(protected)
		}
	}

	log.Info().Str("port", cfg.Port).Msg("starting server")
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatal().Err(err).Msg("server stopped")
	}
}
