package prefetch

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/IsaacDSC/pokecache/internal/domain"
	"github.com/IsaacDSC/pokecache/internal/session"
	"github.com/IsaacDSC/pokecache/pkg/asynqsvc"
	"github.com/IsaacDSC/pokecache/pkg/ctxlogger"
	"github.com/IsaacDSC/pokecache/pkg/resource"
	"github.com/hibiken/asynq"
)

type Sessions interface {
	Get(id string) *session.PokemonCache
}

type Fetcher interface {
	Fetch(ctx context.Context, name string) resource.Operation[domain.Pokemon]
}

// GetPrefetchHandle starts (or joins) the session's fetch and waits for it to settle. A failed
// fetch is not retried: the failure stays cached for the reader to see and reset.
func GetPrefetchHandle(sessions Sessions, fetch Fetcher) asynqsvc.AsynqHandle {
	return asynqsvc.AsynqHandle{
		Event: TypePrefetch,
		Handler: func(ctx context.Context, task *asynq.Task) error {
			l := ctxlogger.GetLogger(ctx)

			var payload Payload
			if err := json.Unmarshal(task.Payload(), &payload); err != nil {
				return fmt.Errorf("unmarshal payload: %v: %w", err, asynq.SkipRetry)
			}

			res, err := sessions.Get(payload.SessionID).GetOrCreate(payload.Name, func(name string) resource.Operation[domain.Pokemon] {
				return fetch.Fetch(ctx, name)
			})
			if err != nil {
				return fmt.Errorf("prefetch %q: %v: %w", payload.Name, err, asynq.SkipRetry)
			}

			if _, err := resource.Await(ctx, res); err != nil {
				if ctx.Err() != nil {
					return fmt.Errorf("prefetch %q: %w", payload.Name, err)
				}

				l.Warn("prefetch failed", "session_id", payload.SessionID, "name", payload.Name, "error", err)
				return fmt.Errorf("prefetch %q: %v: %w", payload.Name, err, asynq.SkipRetry)
			}

			l.Info("prefetch ready", "session_id", payload.SessionID, "name", payload.Name)

			return nil
		},
	}
}
