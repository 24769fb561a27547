package pokestore

import (
	"context"
	"testing"
	"time"

	"github.com/IsaacDSC/pokecache/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/mongodb"
	"github.com/testcontainers/testcontainers-go/wait"
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

func setupMongoContainer(t *testing.T) *mongo.Client {
	t.Helper()
	if testing.Short() {
		t.Skip("skipping mongo container test in short mode")
	}

	ctx := context.Background()
	mongoContainer, err := mongodb.Run(ctx, "mongo:6.0",
		testcontainers.WithWaitStrategy(
			wait.ForLog("Waiting for connections").WithStartupTimeout(60*time.Second),
		),
	)
	require.NoError(t, err, "failed to start mongo container")

	connectionString, err := mongoContainer.ConnectionString(ctx)
	require.NoError(t, err)

	client, err := mongo.Connect(options.Client().ApplyURI(connectionString))
	require.NoError(t, err)
	require.NoError(t, client.Ping(ctx, nil))

	t.Cleanup(func() {
		if err := client.Disconnect(ctx); err != nil {
			t.Logf("failed to disconnect mongo client: %v", err)
		}
		if err := mongoContainer.Terminate(ctx); err != nil {
			t.Logf("failed to terminate mongo container: %v", err)
		}
	})

	return client
}

func TestMongoStore(t *testing.T) {
	client := setupMongoContainer(t)
	ctx := context.Background()

	store := NewMongoStore(client)
	fixed := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	store.now = func() time.Time { return fixed }

	require.NoError(t, store.EnsureIndexes(ctx))

	pikachu := domain.Pokemon{
		ID:     "UG9rZW1vbjowMjU=",
		Number: "025",
		Name:   "Pikachu",
		Image:  "https://img.pokemondb.net/artwork/pikachu.jpg",
		Attacks: domain.Attacks{Special: []domain.Attack{
			{Name: "Thunder", Type: "Electric", Damage: 100},
		}},
		FetchedAt: fixed,
	}

	t.Run("missing", func(t *testing.T) {
		_, err := store.GetPokemon(ctx, "pikachu")
		assert.ErrorIs(t, err, domain.ErrPokemonNotFound)
	})

	t.Run("save and get by any casing", func(t *testing.T) {
		require.NoError(t, store.Save(ctx, pikachu))

		got, err := store.GetPokemon(ctx, " PIKACHU ")
		require.NoError(t, err)
		assert.Equal(t, pikachu, got)
	})

	t.Run("save replaces", func(t *testing.T) {
		updated := pikachu
		updated.Image = "https://example.com/pikachu.png"
		require.NoError(t, store.Save(ctx, updated))

		got, err := store.GetPokemon(ctx, "pikachu")
		require.NoError(t, err)
		assert.Equal(t, updated.Image, got.Image)

		count, err := store.collection.CountDocuments(ctx, bson.D{{Key: "key", Value: "pikachu"}})
		require.NoError(t, err)
		assert.Equal(t, int64(1), count)
	})

	t.Run("timestamps are snake_case and created_at is kept", func(t *testing.T) {
		later := fixed.Add(time.Hour)
		store.now = func() time.Time { return later }
		t.Cleanup(func() { store.now = func() time.Time { return fixed } })

		require.NoError(t, store.Save(ctx, pikachu))

		var raw bson.M
		require.NoError(t, store.collection.FindOne(ctx, bson.D{{Key: "key", Value: "pikachu"}}).Decode(&raw))
		assert.Contains(t, raw, "fetched_at")
		assert.NotContains(t, raw, "createdAt")
		assert.NotContains(t, raw, "updatedAt")

		var doc document
		require.NoError(t, store.collection.FindOne(ctx, bson.D{{Key: "key", Value: "pikachu"}}).Decode(&doc))
		assert.True(t, fixed.Equal(doc.CreatedAt))
		assert.True(t, later.Equal(doc.UpdatedAt))
	})

	t.Run("empty name", func(t *testing.T) {
		assert.ErrorIs(t, store.Save(ctx, domain.Pokemon{Name: "  "}), errEmptyName)
	})
}

func TestDocumentFieldNames(t *testing.T) {
	now := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

	b, err := bson.Marshal(document{Key: "pikachu", Pokemon: domain.Pokemon{Name: "Pikachu"}, CreatedAt: now, UpdatedAt: now})
	require.NoError(t, err)

	var raw bson.M
	require.NoError(t, bson.Unmarshal(b, &raw))
	for _, field := range []string{"key", "name", "fetched_at", "created_at", "updated_at"} {
		assert.Contains(t, raw, field)
	}

	update := saveUpdate(domain.Pokemon{Name: "Pikachu"}, now)
	require.Len(t, update, 2)

	set := update[0].Value.(bson.D)
	assert.Equal(t, "updated_at", set[len(set)-1].Key)
	assert.Equal(t, bson.D{{Key: "created_at", Value: now}}, update[1].Value)
}
