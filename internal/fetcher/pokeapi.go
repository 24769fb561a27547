package fetcher

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/IsaacDSC/pokecache/internal/domain"
)

// DefaultPokeAPIURL is the public GraphQL pokemon endpoint.
const DefaultPokeAPIURL = "https://graphql-pokemon2.vercel.app/"

const pokemonQuery = `query PokemonInfo($name: String) {
  pokemon(name: $name) {
    id
    number
    name
    image
    attacks {
      special {
        name
        type
        damage
      }
    }
  }
}`

type graphQLRequest struct {
	Query     string         `json:"query"`
	Variables map[string]any `json:"variables"`
}

type graphQLError struct {
	Message string `json:"message"`
}

type pokemonResponse struct {
	Data struct {
		Pokemon *domain.Pokemon `json:"pokemon"`
	} `json:"data"`
	Errors []graphQLError `json:"errors"`
}

// PokeAPI is a Source backed by the GraphQL pokemon API.
type PokeAPI struct {
	url    string
	client *http.Client
	now    func() time.Time
}

var _ Source = (*PokeAPI)(nil)

func NewPokeAPI(url string, client *http.Client) *PokeAPI {
	if url == "" {
		url = DefaultPokeAPIURL
	}

	if client == nil {
		client = http.DefaultClient
	}

	return &PokeAPI{url: url, client: client, now: time.Now}
}

func (p *PokeAPI) GetPokemon(ctx context.Context, name string) (domain.Pokemon, error) {
	payload, err := json.Marshal(graphQLRequest{
		Query:     pokemonQuery,
		Variables: map[string]any{"name": name},
	})
	if err != nil {
		return domain.Pokemon{}, fmt.Errorf("failed to marshal query: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.url, bytes.NewReader(payload))
	if err != nil {
		return domain.Pokemon{}, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json;charset=UTF-8")
	req.Header.Set("Accept", "application/json")

	resp, err := p.client.Do(req)
	if err != nil {
		return domain.Pokemon{}, fmt.Errorf("failed to fetch pokemon %q: %w", name, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return domain.Pokemon{}, fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}

	var body pokemonResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return domain.Pokemon{}, fmt.Errorf("failed to decode response: %w", err)
	}

	if len(body.Errors) > 0 {
		errs := make([]error, 0, len(body.Errors))
		for _, e := range body.Errors {
			errs = append(errs, errors.New(e.Message))
		}
		return domain.Pokemon{}, errors.Join(errs...)
	}

	if body.Data.Pokemon == nil {
		return domain.Pokemon{}, domain.NotFoundError(name)
	}

	pokemon := *body.Data.Pokemon
	pokemon.FetchedAt = p.now().UTC()

	return pokemon, nil
}
