// Package app assembles the catering service: storage, migrations, cache,
// broker, services, router and the HTTP server with graceful shutdown.
package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi"

	"github.com/seacatering/sea-catering-backend/internal/cache"
	"github.com/seacatering/sea-catering-backend/internal/config"
	"github.com/seacatering/sea-catering-backend/internal/lib/jwt"
	"github.com/seacatering/sea-catering-backend/internal/lib/oauth"
	"github.com/seacatering/sea-catering-backend/internal/lib/password"
	"github.com/seacatering/sea-catering-backend/internal/lib/rabbitmq"
	"github.com/seacatering/sea-catering-backend/internal/migrations"
	"github.com/seacatering/sea-catering-backend/internal/models"
	authservice "github.com/seacatering/sea-catering-backend/internal/services/auth"
	contactservice "github.com/seacatering/sea-catering-backend/internal/services/contact"
	metricsservice "github.com/seacatering/sea-catering-backend/internal/services/metrics"
	subservice "github.com/seacatering/sea-catering-backend/internal/services/subscription"
	testimonialservice "github.com/seacatering/sea-catering-backend/internal/services/testimonial"
	userservice "github.com/seacatering/sea-catering-backend/internal/services/user"
	"github.com/seacatering/sea-catering-backend/internal/storage/repository"
)

// App holds the assembled server and its long-lived resources.
type App struct {
	server *http.Server
	logger *slog.Logger
	db     *repository.Storage
	amqp   io.Closer
}

// New builds the application from configuration: it connects the storage,
// runs migrations, connects the cache and the broker, seeds the default
// admin and registers all routes.
func New(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*App, error) {
	db, err := repository.New(cfg.StorageConnectionString)
	if err != nil {
		return nil, err
	}
	if err = migrations.Run(db.DB, cfg.MigrationsPath); err != nil {
		return nil, err
	}

	cacheRedis, err := cache.InitServer(ctx, cfg.RedisConnection)
	if err != nil {
		return nil, err
	}

	jwtMaker := jwt.NewJWTMaker(cfg.JWTToken.JWTSecretKey, cfg.JWTToken.TokenTTL)

	var publisher contactservice.Publisher
	var amqpConn io.Closer
	if cfg.RabbitMQ.URL != "" {
		conn, err := rabbitmq.Connect(cfg.RabbitMQ.URL, cfg.RabbitMQ.Retries, cfg.RabbitMQ.RetryDelay)
		if err != nil {
			return nil, err
		}
		ch, err := rabbitmq.SetupChannel(conn, []rabbitmq.QueueConfig{
			{QueueName: cfg.RabbitMQ.ContactQueue, RoutingKey: "contact.created"},
		})
		if err != nil {
			return nil, err
		}
		publisher = rabbitmq.NewEventPublisher(ch, rabbitmq.NotificationsExchange)
		amqpConn = conn
	} else {
		logger.Warn("rabbitmq url is empty, contact notifications disabled")
	}

	if err := ensureAdmin(ctx, db, cfg.Admin, logger); err != nil {
		return nil, err
	}

	if cfg.OAuth.GoogleKey != "" {
		oauth.Setup(cfg.OAuth)
	} else {
		logger.Warn("oauth keys are empty, provider sign-in disabled")
	}

	subscriptionService := subservice.NewSubscriptionService(db, cacheRedis, logger)
	authService := authservice.NewAuthService(db, jwtMaker, cfg.Admin.Email)
	userService := userservice.NewUserService(db, cfg.Admin.Email)
	contactService := contactservice.NewContactService(db, publisher, logger)
	testimonialService := testimonialservice.NewTestimonialService(db)
	metricsService := metricsservice.NewMetricsService(db)

	router := chi.NewRouter()
	RegisterRoutes(router, logger, jwtMaker, cfg.JWTToken.TokenTTL,
		subscriptionService, authService, userService,
		contactService, testimonialService, metricsService)

	srv := &http.Server{
		Addr:         cfg.AddressHTTP,
		Handler:      router,
		ReadTimeout:  cfg.TimeoutHTTP,
		WriteTimeout: cfg.TimeoutHTTP,
		IdleTimeout:  cfg.IdleTimeout,
	}

	return &App{
		server: srv,
		logger: logger,
		db:     db,
		amqp:   amqpConn,
	}, nil
}

// Run serves HTTP until the context is cancelled, then shuts down
// gracefully.
func (a *App) Run(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		a.logger.Info("HTTP server starting on", slog.String("address", a.server.Addr))
		err := a.server.ListenAndServe()
		if errors.Is(err, http.ErrServerClosed) {
			errCh <- nil
		} else {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		timeoutCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancel()
		a.logger.Info("shutting down HTTP server gracefully")
		err := a.server.Shutdown(timeoutCtx)
		if a.amqp != nil {
			_ = a.amqp.Close()
		}
		a.db.DB.Close()
		return err
	}
}

// ensureAdmin creates the default admin account on first start. An existing
// row is left untouched.
func ensureAdmin(ctx context.Context, db *repository.Storage, adm config.Admin, logger *slog.Logger) error {
	if adm.Email == "" || adm.Password == "" {
		logger.Warn("admin credentials are empty, skipping admin seed")
		return nil
	}

	if _, err := db.GetUserByEmail(ctx, adm.Email); err == nil {
		return nil
	} else if !errors.Is(err, repository.ErrNotFound) {
		return err
	}

	hashed, err := password.GetHash(adm.Password)
	if err != nil {
		return fmt.Errorf("app.ensureAdmin: %w", err)
	}
	_, err = db.CreateUser(ctx, models.User{
		Name:         adm.Name,
		Email:        adm.Email,
		PasswordHash: &hashed,
		Role:         models.RoleAdmin,
	})
	if err != nil && !errors.Is(err, repository.ErrUniqueViolation) {
		return fmt.Errorf("app.ensureAdmin: %w", err)
	}

	logger.Info("default admin seeded", slog.String("email", adm.Email))
	return nil
}
