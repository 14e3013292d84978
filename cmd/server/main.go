// @title Event Planner API
// @version 1.0
// @description Events, attendance, favorites, comments, ratings and user moderation.
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and the JWT.
package main

import (
	"context"
	"database/sql"
	"errors"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/lib/pq"
	"golang.org/x/crypto/bcrypt"

	"eventplanner/config"
	_ "eventplanner/docs"
	"eventplanner/internal/adapters/auth"
	"eventplanner/internal/adapters/email"
	"eventplanner/internal/adapters/redis"
	"eventplanner/internal/adapters/storage"
	httpdelivery "eventplanner/internal/delivery/http"
	"eventplanner/internal/delivery/http/controllers"
	"eventplanner/internal/repository/postgres"
	"eventplanner/internal/services"
)

const (
	serviceTimeout  = 5 * time.Second
	shutdownTimeout = 5 * time.Second
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}
	logger := config.NewLogger(cfg)

	if err := run(cfg, logger); err != nil {
		logger.Error("server stopped", "err", err)
		os.Exit(1)
	}
}

func run(cfg *config.Config, logger *slog.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	db, err := sql.Open("postgres", cfg.DBUrl)
	if err != nil {
		return err
	}
	defer db.Close()
	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(30 * time.Minute)

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	err = db.PingContext(pingCtx)
	cancel()
	if err != nil {
		return err
	}

	redisClient, err := redis.NewClient(ctx, cfg.RedisURL, cfg.RedisPassword, cfg.RedisDB)
	if err != nil {
		return err
	}
	if redisClient == nil {
		logger.Info("REDIS_URL not set, ban list disabled")
	} else {
		defer redisClient.Close()
	}
	banList := redis.NewBanList(redisClient)

	mailer, err := email.NewMailer(email.MailerConfig{
		Provider:        cfg.EmailProvider,
		FromAddress:     cfg.EmailFromAddress,
		FromName:        cfg.EmailFromName,
		Region:          cfg.AWSRegion,
		AccessKeyID:     cfg.AWSAccessKeyID,
		SecretAccessKey: cfg.AWSSecretAccessKey,
	}, logger)
	if err != nil {
		return err
	}
	renderer, err := email.NewTemplateRenderer()
	if err != nil {
		return err
	}

	images, err := storage.NewLocalImageStore(cfg.UploadDir)
	if err != nil {
		return err
	}
	tokens := auth.NewJWTManager(cfg.JWTSecret, cfg.JWTExpiry)
	hasher := auth.NewBcryptHasher(bcrypt.DefaultCost)

	eventRepo := postgres.NewEventRepository(db)
	registrationRepo := postgres.NewRegistrationRepository(db)
	favoriteRepo := postgres.NewFavoriteRepository(db)
	commentRepo := postgres.NewCommentRepository(db)
	ratingRepo := postgres.NewRatingRepository(db)
	userRepo := postgres.NewUserRepository(db)

	emailService := services.NewEmailService(mailer, renderer, logger)
	eventService := services.NewEventService(eventRepo, ratingRepo, images, logger, serviceTimeout)
	attendanceService := services.NewAttendanceService(eventRepo, registrationRepo, favoriteRepo)
	commentService := services.NewCommentService(commentRepo, userRepo)
	userService := services.NewUserService(userRepo, ratingRepo, hasher, tokens, banList, emailService, logger)

	handler := httpdelivery.NewRouter(httpdelivery.Router{
		Logger:         logger,
		Verifier:       tokens,
		BanList:        banList,
		Events:         controllers.NewEventController(logger, eventService, images, cfg.MaxUploadBytes()),
		Attendance:     controllers.NewAttendanceController(logger, attendanceService),
		Comments:       controllers.NewCommentController(logger, commentService),
		Users:          controllers.NewUserController(logger, userService),
		UploadDir:      cfg.UploadDir,
		AllowedOrigins: cfg.Origins(),
	})

	server := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("server listening", "addr", server.Addr, "env", cfg.Environment)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	logger.Info("shutting down")
	shutdownCtx, cancelShutdown := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancelShutdown()
	return server.Shutdown(shutdownCtx)
}
