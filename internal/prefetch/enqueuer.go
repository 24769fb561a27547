package prefetch

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/IsaacDSC/pokecache/internal/domain"
	"github.com/IsaacDSC/pokecache/pkg/ctxlogger"
	"github.com/IsaacDSC/pokecache/pkg/publisher"
	"github.com/hibiken/asynq"
)

// Enqueuer schedules prefetch tasks. Requests for the same session and name within the unique
// window collapse into one task.
type Enqueuer struct {
	pub    publisher.Publisher
	unique time.Duration
}

func NewEnqueuer(pub publisher.Publisher, unique time.Duration) *Enqueuer {
	return &Enqueuer{pub: pub, unique: unique}
}

func (e *Enqueuer) Enqueue(ctx context.Context, sessionID, name string) error {
	payload := Payload{SessionID: sessionID, Name: domain.NormalizeName(name)}

	opts := []asynq.Option{publisher.WithMaxRetry(0)}
	if e.unique > 0 {
		opts = append(opts, publisher.WithUnique(e.unique))
	}

	err := e.pub.Publish(ctx, TypePrefetch, payload, opts...)
	if errors.Is(err, asynq.ErrDuplicateTask) {
		ctxlogger.GetLogger(ctx).Debug("prefetch already scheduled", "session_id", sessionID, "name", payload.Name)
		return nil
	}

	if err != nil {
		return fmt.Errorf("enqueue prefetch %q: %w", payload.Name, err)
	}

	return nil
}
