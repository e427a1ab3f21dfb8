package appserver

import (
	"context"
	"crypto/tls"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/voyago/api/config"
	repository "github.com/voyago/api/internal/database/postgres"
	rediscache "github.com/voyago/api/internal/database/redis"
	"github.com/voyago/api/internal/service"
	"github.com/voyago/api/internal/transport"
	"github.com/voyago/api/pkg/auth"
	"github.com/voyago/api/pkg/postgres"
	"github.com/voyago/api/pkg/redis"
	"github.com/voyago/api/pkg/telegram"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

type Server struct {
	httpServer *http.Server
}

func (s *Server) Run(cfg *config.Config, handler http.Handler) error {
	s.httpServer = &http.Server{
		Addr:              ":" + cfg.Server.Port,
		Handler:           handler,
		MaxHeaderBytes:    1 << 20,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      cfg.Server.Timeout,
		IdleTimeout:       cfg.Server.Idle_timeout,
		ReadHeaderTimeout: 3 * time.Second,
		TLSConfig:         &tls.Config{MinVersion: tls.VersionTLS12},
		ErrorLog:          log.New(os.Stderr, "SERVER ERROR: ", log.LstdFlags),
	}
	return s.httpServer.ListenAndServe()
}

func (s *Server) Shutdown(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}

func NewServer(cfg *config.Config) {

	logrus.SetFormatter(&logrus.JSONFormatter{})
	logrus.SetOutput(os.Stdout)
	logrus.SetLevel(logrus.InfoLevel)

	// Initialize database
	db, err := postgres.NewPostgresDB(&cfg.Database)
	if err != nil {
		logrus.Fatalf("Failed to initialize database: %v", err)
	}
	defer db.Close()

	// Run database migrations
	if err := postgres.RunMigrations(db); err != nil {
		logrus.Fatalf("Failed to run migrations: %v", err)
	}

	// Initialize repositories
	userRepo := repository.NewUserRepository(db)
	offerRepo := repository.NewOfferRepository(db)
	bookingRepo := repository.NewBookingRepository(db)

	// Token manager shared by the auth service and the identity middleware
	tokens := auth.NewTokenManager(cfg.JWT.Secret, cfg.JWT.Expiration)

	// Offer cache is optional; without redis every read hits the database
	var offerCache service.OfferCache
	if cfg.Redis.Addr != "" {
		redisClient := redis.NewRedisClient(&cfg.Redis)
		defer redisClient.Close()
		offerCache = rediscache.NewOfferCache(redisClient, cfg.App.OfferCacheTTL)
		logrus.Info("Offer cache initialized")
	} else {
		logrus.Warn("Redis address not provided, offer cache disabled")
	}

	// Telegram notifications are optional as well
	var notifier service.BookingNotifier
	if cfg.Telegram.Enabled && cfg.Telegram.BotToken != "" {
		notifier = telegram.NewNotifier(cfg.Telegram.BotToken, cfg.Telegram.ChatID)
		logrus.Info("Telegram notifier initialized")
	}

	// Initialize services
	authService := service.NewAuthService(userRepo, tokens)
	userService := service.NewUserService(userRepo)
	offerService := service.NewOfferService(offerRepo, offerCache)
	bookingService := service.NewBookingService(bookingRepo, offerRepo, notifier)

	// Initialize handlers
	authHandler := transport.NewAuthHandler(authService)
	userHandler := transport.NewUserHandler(userService)
	offerHandler := transport.NewOfferHandler(offerService)
	bookingHandler := transport.NewBookingHandler(bookingService)

	if cfg.Server.Mode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	srv := new(Server)
	go func() {
		if err := srv.Run(cfg, transport.InitRoutes(tokens, authHandler, userHandler, offerHandler, bookingHandler)); err != nil && err != http.ErrServerClosed {
			logrus.Fatalf("error occured while running http server: %s", err.Error())
		}
	}()

	logrus.Print("App Started")

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGTERM, syscall.SIGINT)
	<-quit

	logrus.Print("App Shutting Down")

	if err := srv.Shutdown(context.Background()); err != nil {
		logrus.Errorf("error occured on server shutting down: %s", err.Error())
	}
}
