package fetcher

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/IsaacDSC/pokecache/internal/domain"
	"github.com/IsaacDSC/pokecache/pkg/httpclient"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const pikachuResponse = `{
  "data": {
    "pokemon": {
      "id": "UG9rZW1vbjowMjU=",
      "number": "025",
      "name": "Pikachu",
      "image": "https://img.pokemondb.net/artwork/pikachu.jpg",
      "attacks": {
        "special": [
          {"name": "Discharge", "type": "Electric", "damage": 35},
          {"name": "Thunder", "type": "Electric", "damage": 100}
        ]
      }
    }
  }
}`

func TestPokeAPI_GetPokemon(t *testing.T) {
	fixedNow := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name        string
		status      int
		body        string
		want        domain.Pokemon
		wantErrIs   error
		wantErrText string
	}{
		{
			name:   "found",
			status: http.StatusOK,
			body:   pikachuResponse,
			want: domain.Pokemon{
				ID:     "UG9rZW1vbjowMjU=",
				Number: "025",
				Name:   "Pikachu",
				Image:  "https://img.pokemondb.net/artwork/pikachu.jpg",
				Attacks: domain.Attacks{Special: []domain.Attack{
					{Name: "Discharge", Type: "Electric", Damage: 35},
					{Name: "Thunder", Type: "Electric", Damage: 100},
				}},
				FetchedAt: fixedNow,
			},
		},
		{
			name:        "not found",
			status:      http.StatusOK,
			body:        `{"data":{"pokemon":null}}`,
			wantErrIs:   domain.ErrPokemonNotFound,
			wantErrText: `no pokemon with the name "pikachu"`,
		},
		{
			name:        "graphql errors",
			status:      http.StatusOK,
			body:        `{"data":{"pokemon":null},"errors":[{"message":"rate limited"},{"message":"try later"}]}`,
			wantErrText: "rate limited\ntry later",
		},
		{
			name:        "server error",
			status:      http.StatusInternalServerError,
			body:        `oops`,
			wantErrText: "unexpected status code: 500",
		},
		{
			name:        "malformed body",
			status:      http.StatusOK,
			body:        `{"data":`,
			wantErrText: "failed to decode response",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, http.MethodPost, r.Method)
				assert.Contains(t, r.Header.Get("Content-Type"), "application/json")

				var req graphQLRequest
				require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
				assert.Contains(t, req.Query, "pokemon(name: $name)")
				assert.Equal(t, "pikachu", req.Variables["name"])

				w.WriteHeader(tt.status)
				w.Write([]byte(tt.body))
			}))
			defer server.Close()

			api := NewPokeAPI(server.URL, httpclient.New(time.Second))
			api.now = func() time.Time { return fixedNow }

			got, err := api.GetPokemon(context.Background(), "pikachu")

			if tt.wantErrText != "" || tt.wantErrIs != nil {
				require.Error(t, err)
				if tt.wantErrIs != nil {
					assert.ErrorIs(t, err, tt.wantErrIs)
				}
				assert.Contains(t, err.Error(), tt.wantErrText)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestPokeAPI_ContextCancelled(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-r.Context().Done()
	}))
	defer server.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewPokeAPI(server.URL, nil).GetPokemon(ctx, "mew")
	assert.ErrorIs(t, err, context.Canceled)
}

func TestNewPokeAPI_Defaults(t *testing.T) {
	api := NewPokeAPI("", nil)
	assert.Equal(t, DefaultPokeAPIURL, api.url)
	assert.Same(t, http.DefaultClient, api.client)
}
