package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/hibiken/asynq"
	"github.com/stripe/stripe-go/v76"

	"tutorbase/config"
	"tutorbase/cron"
	"tutorbase/database"
	bookingsRepo "tutorbase/database/repository/bookings"
	tutorsRepo "tutorbase/database/repository/tutors"
	"tutorbase/handlers"
	"tutorbase/middleware"
	"tutorbase/routes"
	"tutorbase/services/booking"
	"tutorbase/services/calendar"
	"tutorbase/services/notification"
	"tutorbase/services/tasks"
	"tutorbase/utils"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitLockClient()

	location, err := time.LoadLocation(config.AppConfig.AppTimezone)
	if err != nil {
		logger.Sugar().Fatalf("main: invalid APP_TIMEZONE %q: %v", config.AppConfig.AppTimezone, err)
	}

	calendarClient, err := calendar.NewClient(context.Background(), calendar.Config{
		ClientID:     config.AppConfig.GoogleClientID,
		ClientSecret: config.AppConfig.GoogleClientSecret,
		RedirectURI:  config.AppConfig.GoogleRedirectURI,
		RefreshToken: config.AppConfig.GoogleRefreshToken,
		Timezone:     config.AppConfig.AppTimezone,
	})
	if err != nil {
		logger.Sugar().Fatalf("main: failed to initialize calendar client: %v", err)
	}

	stripe.Key = config.AppConfig.StripeKey

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())

	// repositories.
	tutorRepo := tutorsRepo.NewMongoTutorRepo()
	recordsRepo := bookingsRepo.NewMongoBookingRecordRepo()

	// Confirmation mail: enqueue on commit, send from the async worker.
	mailEnqueuer := tasks.NewEnqueuer(asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisMailQueueDB,
	})
	defer mailEnqueuer.Close()

	mailer := notification.NewSMTPMailer(notification.SMTPConfig{
		Host:     config.AppConfig.SMTPHost,
		Port:     config.AppConfig.SMTPPort,
		Username: config.AppConfig.SMTPUsername,
		Password: config.AppConfig.SMTPPassword,
		From:     config.AppConfig.SMTPFrom,
	}, logger)
	cron.InitMailWorker(mailer)

	bookingService := &booking.DefaultBookingService{
		Calendar:    calendarClient,
		TutorRepo:   tutorRepo,
		RecordsRepo: recordsRepo,
		LockClient:  utils.GetLockClient(),
		Mail:        mailEnqueuer,
		Policy: booking.Policy{
			HorizonDays: config.AppConfig.BookingHorizonDays,
			MinLeadTime: time.Duration(config.AppConfig.MinLeadTimeHours) * time.Hour,
		},
		Location: location,
		Logger:   logger,
	}

	// Assemble the handler bundle.
	handlerBundle := &routes.HandlerBundle{
		Tutors:  handlers.NewTutorHandler(tutorRepo),
		Booking: handlers.NewBookingHandler(bookingService),
		Payment: handlers.NewPaymentHandler(bookingService),
		Admin:   handlers.NewAdminHandler(recordsRepo, tutorRepo),
	}

	routes.RegisterRoutes(router, handlerBundle)

	// Start the HTTP server.
	port := config.AppConfig.AppPort
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:    "0.0.0.0:" + port,
		Handler: router,
	}

	logger.Sugar().Infof("Starting server on %s...", srv.Addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server failed to start: %v", err)
		}
	}()

	// Wait for an OS signal to gracefully shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Sugar().Info("main: server is shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
