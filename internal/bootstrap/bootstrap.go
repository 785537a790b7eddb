package bootstrap

import (
	"context"
	"fmt"

	"countdown-server/internal/apierrors"
	authHandler "countdown-server/internal/auth/handler"
	authProcessor "countdown-server/internal/auth/processor"
	kafkaClient "countdown-server/internal/clients/kafka"
	redisClient "countdown-server/internal/clients/redis"
	"countdown-server/internal/config"
	countdownHandler "countdown-server/internal/countdown/handler"
	countdownProcessor "countdown-server/internal/countdown/processor"
	"countdown-server/internal/events"
	"countdown-server/internal/jobs"
	"countdown-server/internal/observability"
	"countdown-server/internal/qrtoken"
	"countdown-server/internal/ratelimit"
	receiverHandler "countdown-server/internal/receiver/handler"
	receiverProcessor "countdown-server/internal/receiver/processor"
	"countdown-server/internal/store"

	"github.com/hibiken/asynq"
)

// authAttemptsPerMinute bounds signup and login calls per client IP.
const authAttemptsPerMinute = 20

// Dependencies holds all initialized application dependencies
type Dependencies struct {
	// Core
	Store  store.Store
	Logger *observability.Logger

	// Handlers
	AuthHandler      authHandler.Handler
	CountdownHandler countdownHandler.Handler
	ReceiverHandler  receiverHandler.Handler

	AuthLimiter *ratelimit.Limiter

	// Clients (for cleanup). Each is nil when its service is disabled.
	Redis         *redisClient.Client
	JobClient     *jobs.Client
	KafkaProducer *kafkaClient.Producer
}

// Initialize sets up all application dependencies
func Initialize(ctx context.Context, cfg *config.Config, logger *observability.Logger) (*Dependencies, error) {
	deps := &Dependencies{
		Logger: logger,
	}
	apierrors.UseJSONFieldNames()

	var err error
	deps.Store, err = store.New(cfg.Database.ConnectionString(), logger)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	deps.Redis, err = redisClient.NewClient(cfg.Redis, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to redis: %w", err)
	}
	if deps.Redis.IsEnabled() {
		deps.JobClient = jobs.NewClient(asynq.RedisClientOpt{
			Addr:     cfg.Redis.Addr(),
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		}, logger)
	} else {
		logger.Warn(ctx, "job queue disabled, invitation emails will not be sent")
	}

	var eventWriter events.EventWriter
	if cfg.Kafka.Enabled {
		deps.KafkaProducer = kafkaClient.NewProducer(kafkaClient.ProducerConfig{
			Brokers: cfg.Kafka.Brokers,
			Topic:   cfg.Kafka.Topic,
		}, logger)
		eventWriter = deps.KafkaProducer
	}
	publisher := events.NewPublisher(eventWriter)

	tokens := qrtoken.NewHMACScheme(cfg.Auth.QRTokenSecret)
	unlockLimiter := ratelimit.NewLimiter(deps.Redis, cfg.Unlock.AttemptsPerMinute, logger)
	deps.AuthLimiter = ratelimit.NewLimiter(deps.Redis, authAttemptsPerMinute, logger)

	authProc := authProcessor.New(&deps.Store, cfg.Auth.JWTSecret, logger)
	deps.AuthHandler = authHandler.New(authProc, logger)

	countdownProc := countdownProcessor.New(&deps.Store, tokens, publisher, deps.JobClient, countdownProcessor.Config{
		WebAppURI: cfg.Services.WebAppURI,
	}, logger)
	deps.CountdownHandler = countdownHandler.New(countdownProc, logger)

	receiverProc := receiverProcessor.New(&deps.Store, tokens, unlockLimiter, publisher, logger)
	deps.ReceiverHandler = receiverHandler.New(receiverProc, logger)

	return deps, nil
}

// Cleanup closes all resources that need cleanup
func (d *Dependencies) Cleanup(ctx context.Context) {
	if d.KafkaProducer != nil {
		if err := d.KafkaProducer.Close(); err != nil {
			d.Logger.WarnWithError(ctx, "failed to close kafka producer", err)
		}
	}
	if err := d.JobClient.Close(); err != nil {
		d.Logger.WarnWithError(ctx, "failed to close job client", err)
	}
	if err := d.Redis.Close(); err != nil {
		d.Logger.WarnWithError(ctx, "failed to close redis", err)
	}
	if err := d.Store.Close(); err != nil {
		d.Logger.WarnWithError(ctx, "failed to close database", err)
	}
}
