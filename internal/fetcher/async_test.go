package fetcher

import (
	"context"
	"testing"
	"testing/synctest"
	"time"

	"github.com/IsaacDSC/pokecache/internal/domain"
	"github.com/IsaacDSC/pokecache/pkg/resource"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestAsync_Fetch(t *testing.T) {
	ctrl := gomock.NewController(t)
	source := NewMockSource(ctrl)

	pikachu := domain.Pokemon{Name: "Pikachu", Number: "025"}
	source.EXPECT().GetPokemon(gomock.Any(), "Pikachu").Return(pikachu, nil)

	r := resource.New(NewAsync(source).Fetch(context.Background(), "Pikachu"))

	got, err := resource.Await(context.Background(), r)
	require.NoError(t, err)
	assert.Equal(t, pikachu, got)
}

func TestAsync_FetchFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	source := NewMockSource(ctrl)

	notFound := domain.NotFoundError("missingno")
	source.EXPECT().GetPokemon(gomock.Any(), "missingno").Return(domain.Pokemon{}, notFound)

	r := resource.New(NewAsync(source).Fetch(context.Background(), "missingno"))

	_, err := resource.Await(context.Background(), r)
	assert.ErrorIs(t, err, domain.ErrPokemonNotFound)
	assert.Same(t, notFound, r.Poll().Err)
}

func TestAsync_OutlivesCallerContext(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		source := SourceFunc(func(ctx context.Context, name string) (domain.Pokemon, error) {
			time.Sleep(time.Second)
			if err := ctx.Err(); err != nil {
				return domain.Pokemon{}, err
			}
			return domain.Pokemon{Name: name}, nil
		})

		ctx, cancel := context.WithCancel(t.Context())
		r := resource.New(NewAsync(source).Fetch(ctx, "eevee"))
		cancel()

		v, err := resource.Await(t.Context(), r)
		require.NoError(t, err)
		assert.Equal(t, "eevee", v.Name)
	})
}

func TestAsync_Timeout(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		source := SourceFunc(func(ctx context.Context, name string) (domain.Pokemon, error) {
			<-ctx.Done()
			return domain.Pokemon{}, ctx.Err()
		})

		start := time.Now()
		r := resource.New(NewAsync(source, WithTimeout(3*time.Second)).Fetch(t.Context(), "snorlax"))

		_, err := resource.Await(t.Context(), r)
		assert.ErrorIs(t, err, context.DeadlineExceeded)
		assert.Equal(t, 3*time.Second, time.Since(start))
	})
}

func TestAsync_Delay(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		source := SourceFunc(func(ctx context.Context, name string) (domain.Pokemon, error) {
			return domain.Pokemon{Name: name}, nil
		})

		r := resource.New(NewAsync(source, WithDelay(2*time.Second)).Fetch(t.Context(), "mew"))

		time.Sleep(time.Second)
		synctest.Wait()
		assert.Equal(t, resource.Pending, r.Poll().State)

		time.Sleep(time.Second)
		synctest.Wait()
		assert.Equal(t, resource.Ready, r.Poll().State)
	})
}

func TestAsync_DelayBoundedByTimeout(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		source := SourceFunc(func(ctx context.Context, name string) (domain.Pokemon, error) {
			t.Error("source must not be reached")
			return domain.Pokemon{}, nil
		})

		r := resource.New(NewAsync(source, WithDelay(time.Minute), WithTimeout(time.Second)).Fetch(t.Context(), "mew"))

		_, err := resource.Await(t.Context(), r)
		assert.ErrorIs(t, err, context.DeadlineExceeded)
	})
}
