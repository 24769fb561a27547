package resource_test

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"testing/synctest"
	"time"

	"github.com/IsaacDSC/pokecache/pkg/resource"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type pokemon struct {
	Name string
}

var errNotFound = errors.New("not found")

func TestResource_PendingUntilSettled(t *testing.T) {
	f := resource.NewFuture[pokemon]()
	r := resource.New[pokemon](f)

	for range 3 {
		res := r.Poll()
		assert.Equal(t, resource.Pending, res.State)
		assert.Equal(t, pokemon{}, res.Value)
		assert.NoError(t, res.Err)
	}

	_, err := r.Read()
	assert.ErrorIs(t, err, resource.ErrPending)

	select {
	case <-r.Done():
		t.Fatal("done must not be closed before settlement")
	default:
	}
}

func TestResource_ReadyIsIdempotent(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		op := resource.Go(t.Context(), func(ctx context.Context) (pokemon, error) {
			time.Sleep(10 * time.Millisecond)
			return pokemon{Name: "bulbasaur"}, nil
		})
		r := resource.New[pokemon](op)

		assert.Equal(t, resource.Pending, r.Poll().State)

		time.Sleep(10 * time.Millisecond)
		synctest.Wait()

		for range 5 {
			res := r.Poll()
			require.Equal(t, resource.Ready, res.State)
			assert.Equal(t, pokemon{Name: "bulbasaur"}, res.Value)
		}

		v, err := r.Read()
		require.NoError(t, err)
		assert.Equal(t, "bulbasaur", v.Name)
	})
}

func TestResource_FailedIsIdempotent(t *testing.T) {
	f := resource.NewFuture[pokemon]()
	r := resource.New[pokemon](f)

	require.True(t, f.Reject(errNotFound))
	<-r.Done()

	for range 5 {
		res := r.Poll()
		require.Equal(t, resource.Failed, res.State)
		assert.Same(t, errNotFound, res.Err)
	}

	_, err := r.Read()
	assert.ErrorIs(t, err, errNotFound)
}

func TestFuture_SettlesOnce(t *testing.T) {
	f := resource.NewFuture[int]()

	assert.True(t, f.Resolve(1))
	assert.False(t, f.Resolve(2))
	assert.False(t, f.Reject(errNotFound))

	r := resource.New[int](f)
	v, err := r.Read()
	require.NoError(t, err)
	assert.Equal(t, 1, v)
}

func TestFuture_RejectNil(t *testing.T) {
	f := resource.NewFuture[int]()
	f.Reject(nil)

	_, err := resource.New[int](f).Read()
	assert.ErrorIs(t, err, resource.ErrNilRejection)
}

func TestFuture_LateSubscriberIsNotified(t *testing.T) {
	f := resource.NewFuture[string]()
	f.Resolve("pikachu")

	var got string
	f.Subscribe(func(v string) { got = v }, func(error) { t.Fatal("unexpected error continuation") })

	assert.Equal(t, "pikachu", got)
}

func TestGo_PanicRejects(t *testing.T) {
	op := resource.Go(context.Background(), func(ctx context.Context) (int, error) {
		panic("boom")
	})
	r := resource.New[int](op)
	<-r.Done()

	res := r.Poll()
	require.Equal(t, resource.Failed, res.State)
	assert.Contains(t, res.Err.Error(), "boom")
}

func TestResource_ManyWaitersOneOperation(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		var calls atomic.Int32
		op := resource.Go(t.Context(), func(ctx context.Context) (pokemon, error) {
			calls.Add(1)
			time.Sleep(50 * time.Millisecond)
			return pokemon{Name: "charmander"}, nil
		})
		r := resource.New[pokemon](op)

		const waiters = 20
		var wg sync.WaitGroup
		results := make([]pokemon, waiters)
		for i := range waiters {
			wg.Add(1)
			go func() {
				defer wg.Done()
				v, err := resource.Await(t.Context(), r)
				assert.NoError(t, err)
				results[i] = v
			}()
		}

		wg.Wait()

		assert.Equal(t, int32(1), calls.Load())
		for _, v := range results {
			assert.Equal(t, "charmander", v.Name)
		}
	})
}

func TestAwait_ContextCancelledLeavesOperationRunning(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		op := resource.Go(context.Background(), func(ctx context.Context) (pokemon, error) {
			time.Sleep(time.Second)
			return pokemon{Name: "squirtle"}, nil
		})
		r := resource.New[pokemon](op)

		ctx, cancel := context.WithTimeout(t.Context(), 100*time.Millisecond)
		defer cancel()

		_, err := resource.Await(ctx, r)
		assert.ErrorIs(t, err, context.DeadlineExceeded)
		assert.Equal(t, resource.Pending, r.Poll().State)

		time.Sleep(time.Second)
		synctest.Wait()

		v, err := resource.Await(t.Context(), r)
		require.NoError(t, err)
		assert.Equal(t, "squirtle", v.Name)
	})
}

func TestAwait_Failure(t *testing.T) {
	f := resource.NewFuture[pokemon]()
	r := resource.New[pokemon](f)

	go f.Reject(errNotFound)

	_, err := resource.Await(context.Background(), r)
	assert.ErrorIs(t, err, errNotFound)
}

func TestState_String(t *testing.T) {
	assert.Equal(t, "pending", resource.Pending.String())
	assert.Equal(t, "ready", resource.Ready.String())
	assert.Equal(t, "failed", resource.Failed.String())
	assert.Equal(t, "unknown", resource.State(9).String())
}
