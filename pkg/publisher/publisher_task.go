package publisher

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/IsaacDSC/pokecache/pkg/ctxlogger"
	"github.com/hibiken/asynq"
)

// Enqueuer is the part of *asynq.Client used to schedule tasks.
type Enqueuer interface {
	EnqueueContext(ctx context.Context, task *asynq.Task, opts ...asynq.Option) (*asynq.TaskInfo, error)
}

type Task struct {
	client Enqueuer
}

var _ Publisher = (*Task)(nil)

func NewPublisher(client Enqueuer) *Task {
	return &Task{client: client}
}

// Publish encodes payload as JSON and enqueues it. opts are applied after NewDefaultOpt, so
// they win on conflicts.
func (t *Task) Publish(ctx context.Context, taskType string, payload any, opts ...asynq.Option) error {
	l := ctxlogger.GetLogger(ctx)

	definedOpts := make([]asynq.Option, 0, len(opts)+3)
	definedOpts = append(definedOpts, NewDefaultOpt()...)
	definedOpts = append(definedOpts, opts...)

	p, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("could not marshal payload: %w", err)
	}

	info, err := t.client.EnqueueContext(ctx, asynq.NewTask(taskType, p), definedOpts...)
	if err != nil {
		return fmt.Errorf("could not schedule task: %w", err)
	}

	l.Debug("enqueued task", "task_id", info.ID, "queue", info.Queue, "task_type", taskType)

	return nil
}

func WithQueue(queue string) asynq.Option {
	return asynq.Queue(queue)
}

func WithMaxRetry(maxRetry int) asynq.Option {
	return asynq.MaxRetry(maxRetry)
}

func WithUnique(ttl time.Duration) asynq.Option {
	return asynq.Unique(ttl)
}

func NewDefaultOpt() []asynq.Option {
	return []asynq.Option{
		asynq.Queue("default"),
		asynq.MaxRetry(3),
		asynq.Retention(time.Hour),
	}
}
