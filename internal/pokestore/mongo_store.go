package pokestore

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/IsaacDSC/pokecache/internal/domain"
	"github.com/IsaacDSC/pokecache/pkg/ctxlogger"
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

const (
	dbName            = "pokecache"
	collectionPokemon = "pokemon"

	fieldKey       = "key"
	fieldCreatedAt = "created_at"
	fieldUpdatedAt = "updated_at"
)

// document fields are snake_case, matching the bson tags of domain.Pokemon.
type document struct {
	Key            string `bson:"key"`
	domain.Pokemon `bson:",inline"`
	CreatedAt      time.Time `bson:"created_at"`
	UpdatedAt      time.Time `bson:"updated_at"`
}

// MongoStore is a local pokedex keyed by normalized pokemon name.
type MongoStore struct {
	collection *mongo.Collection
	now        func() time.Time
}

func NewMongoStore(client *mongo.Client) *MongoStore {
	return &MongoStore{
		collection: client.Database(dbName).Collection(collectionPokemon),
		now:        time.Now,
	}
}

// EnsureIndexes creates the unique index on the pokemon key.
func (s *MongoStore) EnsureIndexes(ctx context.Context) error {
	_, err := s.collection.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: fieldKey, Value: 1}},
		Options: options.Index().SetUnique(true).SetName("pokemon_key_unique"),
	})
	if err != nil {
		return fmt.Errorf("failed to create pokemon index: %w", err)
	}

	return nil
}

func (s *MongoStore) GetPokemon(ctx context.Context, name string) (domain.Pokemon, error) {
	l := ctxlogger.GetLogger(ctx)
	key := domain.NormalizeName(name)

	var result document
	if err := s.collection.FindOne(ctx, bson.D{{Key: fieldKey, Value: key}}).Decode(&result); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			l.Debug("pokemon not found in store", "name", key)
			return domain.Pokemon{}, domain.NotFoundError(name)
		}

		return domain.Pokemon{}, fmt.Errorf("failed to find pokemon %q: %w", key, err)
	}

	return result.Pokemon, nil
}

// Save inserts or replaces the stored pokemon with the same normalized name.
func (s *MongoStore) Save(ctx context.Context, pokemon domain.Pokemon) error {
	l := ctxlogger.GetLogger(ctx)
	key := domain.NormalizeName(pokemon.Name)
	if key == "" {
		return fmt.Errorf("failed to save pokemon: %w", errEmptyName)
	}

	filter := bson.D{{Key: fieldKey, Value: key}}
	update := saveUpdate(pokemon, s.now().UTC())

	if _, err := s.collection.UpdateOne(ctx, filter, update, options.UpdateOne().SetUpsert(true)); err != nil {
		l.Error("Error on save pokemon", "name", key, "error", err)
		return fmt.Errorf("failed to save pokemon %q: %w", key, err)
	}

	return nil
}

// saveUpdate refreshes every pokemon field and updated_at; created_at is only written on insert.
func saveUpdate(pokemon domain.Pokemon, now time.Time) bson.D {
	return bson.D{
		{Key: "$set", Value: bson.D{
			{Key: "id", Value: pokemon.ID},
			{Key: "number", Value: pokemon.Number},
			{Key: "name", Value: pokemon.Name},
			{Key: "image", Value: pokemon.Image},
			{Key: "attacks", Value: pokemon.Attacks},
			{Key: "fetched_at", Value: pokemon.FetchedAt},
			{Key: fieldUpdatedAt, Value: now},
		}},
		{Key: "$setOnInsert", Value: bson.D{{Key: fieldCreatedAt, Value: now}}},
	}
}
