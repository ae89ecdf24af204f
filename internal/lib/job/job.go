// Package job provides background job processing using Asynq.
//
// Asynq is a Redis-backed job queue: the API enqueues tasks with
// asynq.Client and a worker server inside the same process runs
// the registered handlers.
package job

import (
	"context"

	"github.com/deppfellow/lightbnb/internal/config"
	"github.com/deppfellow/lightbnb/internal/lib/email"
	"github.com/hibiken/asynq"
	"github.com/rs/zerolog"
)

// Queue names and their share of worker concurrency.
const (
	QueueCritical = "critical"
	QueueDefault  = "default"
	QueueLow      = "low"
)

// mailer is what the email handlers need from email.Client.
type mailer interface {
	SendWelcomeEmail(ctx context.Context, to, name string) error
	SendPropertyListedEmail(ctx context.Context, to, name, title, price string) error
}

// JobService holds the Asynq client (enqueue) and server (worker execution).
type JobService struct {
	Client *asynq.Client

	server *asynq.Server
	mailer mailer
	logger *zerolog.Logger
}

// NewJobService creates a JobService backed by the Redis instance in cfg.
func NewJobService(logger *zerolog.Logger, cfg *config.Config) *JobService {
	redisOpt := asynq.RedisClientOpt{Addr: cfg.Redis.Address}

	server := asynq.NewServer(redisOpt, asynq.Config{
		Concurrency: 10,
		Queues: map[string]int{
			QueueCritical: 6,
			QueueDefault:  3,
			QueueLow:      1,
		},
		Logger: newAsynqLogger(logger),
	})

	return &JobService{
		Client: asynq.NewClient(redisOpt),
		server: server,
		mailer: email.NewClient(cfg, logger),
		logger: logger,
	}
}

// Mux routes task types to their handlers.
func (j *JobService) Mux() *asynq.ServeMux {
	mux := asynq.NewServeMux()
	mux.HandleFunc(TaskWelcome, j.handleWelcomeEmailTask)
	mux.HandleFunc(TaskPropertyListed, j.handlePropertyListedEmailTask)
	return mux
}

// Start runs the worker server in the background.
func (j *JobService) Start() error {
	j.logger.Info().Msg("starting background job server")
	return j.server.Start(j.Mux())
}

// Stop waits for in-flight tasks, then closes the enqueue client.
func (j *JobService) Stop() {
	j.logger.Info().Msg("stopping background job server")
	j.server.Shutdown()
	if err := j.Client.Close(); err != nil {
		j.logger.Error().Err(err).Msg("failed to close job client")
	}
}
