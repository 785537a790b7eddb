package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"sync"
	"syscall"

	kafkaClient "countdown-server/internal/clients/kafka"
	"countdown-server/internal/clients/mail"
	"countdown-server/internal/config"
	"countdown-server/internal/email"
	"countdown-server/internal/events/consumers"
	"countdown-server/internal/jobs"
	"countdown-server/internal/jobs/scheduler"
	scheduledJobs "countdown-server/internal/jobs/scheduler/jobs"
	"countdown-server/internal/jobs/workers"
	"countdown-server/internal/observability"
	"countdown-server/internal/store"

	"github.com/hibiken/asynq"
	"github.com/joho/godotenv"
)

const notificationConsumerGroup = "countdown-notifications"

func main() {
	logger := observability.NewLogger()
	defer func() { _ = logger.Sync() }()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if os.Getenv("GO_ENV") != "production" {
		if err := godotenv.Load("env.local"); err != nil {
			logger.WarnWithError(ctx, "env.local not loaded, using process environment", err)
		}
	}
	cfg, err := config.FromEnv()
	if err != nil {
		logger.Fatal(ctx, "failed to load config", err)
	}
	if !cfg.Redis.Enabled {
		logger.Fatal(ctx, "worker requires redis", errors.New("REDIS_ENABLED is false"))
	}

	dataStore, err := store.New(cfg.Database.ConnectionString(), logger)
	if err != nil {
		logger.Fatal(ctx, "failed to initialize store", err)
	}
	defer dataStore.Close()

	mailClient, err := mail.NewResendClient(cfg.Services.ResendAPIKey, logger)
	if err != nil {
		logger.Fatal(ctx, "failed to create resend client", err)
	}
	emailService := email.New(mailClient, cfg.Services.DefaultEmailSender, logger)

	redisOpt := asynq.RedisClientOpt{
		Addr:     cfg.Redis.Addr(),
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	}
	jobClient := jobs.NewClient(redisOpt, logger)
	defer jobClient.Close()

	emailWorker := workers.NewEmailWorker(&dataStore, emailService, cfg.Services.WebAppURI, logger)
	mux := asynq.NewServeMux()
	emailWorker.Register(mux)

	srv := asynq.NewServer(redisOpt, asynq.Config{
		Concurrency: 10,
		Queues: map[string]int{
			jobs.QueueHigh: 6,
			jobs.QueueLow:  2,
		},
		Logger: &asynqLogger{logger: logger},
		ErrorHandler: asynq.ErrorHandlerFunc(func(ctx context.Context, task *asynq.Task, err error) {
			logger.Error(ctx, fmt.Sprintf("task %s failed", task.Type()), err)
		}),
	})
	if err := srv.Start(mux); err != nil {
		logger.Fatal(ctx, "failed to start job server", err)
	}

	var wg sync.WaitGroup

	sched := scheduler.New(logger)
	sched.Register(scheduledJobs.NewInvitationCleanupJob(&dataStore, logger))
	wg.Add(1)
	go func() {
		defer wg.Done()
		_ = sched.Start(ctx)
	}()

	if cfg.Kafka.Enabled {
		kafkaConsumer := kafkaClient.NewConsumer(kafkaClient.ConsumerConfig{
			Brokers: cfg.Kafka.Brokers,
			Topic:   cfg.Kafka.Topic,
			GroupID: notificationConsumerGroup,
		}, logger)
		defer kafkaConsumer.Close()

		notifications := consumers.NewNotificationConsumer(kafkaConsumer, jobClient, logger)
		wg.Add(1)
		go func() {
			defer wg.Done()
			if err := notifications.Start(ctx); err != nil && !errors.Is(err, context.Canceled) {
				logger.Error(ctx, "notification consumer stopped", err)
			}
		}()
	} else {
		logger.Info(ctx, "kafka disabled, day unlock notifications are off")
	}

	logger.Info(ctx, fmt.Sprintf("worker started on redis %s", cfg.Redis.Addr()))
	<-ctx.Done()

	logger.Info(context.Background(), "shutting down worker")
	srv.Shutdown()
	wg.Wait()
	logger.Info(context.Background(), "worker stopped")
}

// asynqLogger adapts observability.Logger to the asynq.Logger interface
type asynqLogger struct {
	logger *observability.Logger
}

func (l *asynqLogger) Debug(args ...interface{}) {
	l.logger.Debug(context.Background(), fmt.Sprint(args...))
}

func (l *asynqLogger) Info(args ...interface{}) {
	l.logger.Info(context.Background(), fmt.Sprint(args...))
}

func (l *asynqLogger) Warn(args ...interface{}) {
	l.logger.Warn(context.Background(), fmt.Sprint(args...))
}

func (l *asynqLogger) Error(args ...interface{}) {
	l.logger.Error(context.Background(), fmt.Sprint(args...), nil)
}

func (l *asynqLogger) Fatal(args ...interface{}) {
	l.logger.Fatal(context.Background(), fmt.Sprint(args...), nil)
}
