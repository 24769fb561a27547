package asynqsvc

import (
	"context"
	"testing"

	"github.com/hibiken/asynq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegister(t *testing.T) {
	var got []string
	mux := asynq.NewServeMux()
	Register(mux,
		AsynqHandle{Event: "pokemon:prefetch", Handler: func(ctx context.Context, task *asynq.Task) error {
			got = append(got, string(task.Payload()))
			return nil
		}},
	)

	err := mux.ProcessTask(context.Background(), asynq.NewTask("pokemon:prefetch", []byte("pikachu")))
	require.NoError(t, err)
	assert.Equal(t, []string{"pikachu"}, got)

	err = mux.ProcessTask(context.Background(), asynq.NewTask("pokemon:unknown", nil))
	assert.Error(t, err)
}
