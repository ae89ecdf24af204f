package job

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/hibiken/asynq"
)

// handleWelcomeEmailTask sends the welcome email. A returned error makes
// asynq retry the task.
func (j *JobService) handleWelcomeEmailTask(ctx context.Context, t *asynq.Task) error {
	var p WelcomeEmailPayload
	if err := json.Unmarshal(t.Payload(), &p); err != nil {
		return fmt.Errorf("failed to unmarshal welcome email payload: %w: %w", err, asynq.SkipRetry)
	}

	log := j.logger.With().Str("type", TaskWelcome).Str("to", p.To).Logger()
	log.Info().Msg("processing welcome email task")

	if err := j.mailer.SendWelcomeEmail(ctx, p.To, p.Name); err != nil {
		log.Error().Err(err).Msg("failed to send welcome email")
		return err
	}

	log.Info().Msg("successfully sent welcome email")
	return nil
}

func (j *JobService) handlePropertyListedEmailTask(ctx context.Context, t *asynq.Task) error {
	var p PropertyListedEmailPayload
	if err := json.Unmarshal(t.Payload(), &p); err != nil {
		return fmt.Errorf("failed to unmarshal property listed payload: %w: %w", err, asynq.SkipRetry)
	}

	log := j.logger.With().Str("type", TaskPropertyListed).Str("to", p.To).Logger()
	log.Info().Msg("processing property listed email task")

	if err := j.mailer.SendPropertyListedEmail(ctx, p.To, p.Name, p.PropertyTitle, p.CostPerNight); err != nil {
		log.Error().Err(err).Msg("failed to send property listed email")
		return err
	}

	return nil
}
