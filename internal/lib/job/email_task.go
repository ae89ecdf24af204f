package job

import (
	"encoding/json"
	"time"

	"github.com/hibiken/asynq"
)

// Task types stored in Redis. Asynq routes on these strings.
const (
	TaskWelcome        = "email:welcome"
	TaskPropertyListed = "email:property_listed"
)

// WelcomeEmailPayload is the payload of a TaskWelcome task.
type WelcomeEmailPayload struct {
	To   string `json:"to"`
	Name string `json:"name"`
}

// PropertyListedEmailPayload is the payload of a TaskPropertyListed task.
type PropertyListedEmailPayload struct {
	To            string `json:"to"`
	Name          string `json:"name"`
	PropertyTitle string `json:"property_title"`
	CostPerNight  string `json:"cost_per_night"`
}

// NewWelcomeEmailTask builds the task sent after a user signs up.
func NewWelcomeEmailTask(to, name string) (*asynq.Task, error) {
	payload, err := json.Marshal(WelcomeEmailPayload{To: to, Name: name})
	if err != nil {
		return nil, err
	}

	return asynq.NewTask(
		TaskWelcome,
		payload,
		asynq.MaxRetry(3),
		asynq.Queue(QueueDefault),
		asynq.Timeout(30*time.Second),
	), nil
}

// NewPropertyListedEmailTask builds the task sent after an owner lists a property.
func NewPropertyListedEmailTask(p PropertyListedEmailPayload) (*asynq.Task, error) {
	payload, err := json.Marshal(p)
	if err != nil {
		return nil, err
	}

	return asynq.NewTask(
		TaskPropertyListed,
		payload,
		asynq.MaxRetry(3),
		asynq.Queue(QueueLow),
		asynq.Timeout(30*time.Second),
	), nil
}
