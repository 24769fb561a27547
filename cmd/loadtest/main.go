package main

import (
	"flag"
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/google/uuid"
	vegeta "github.com/tsenart/vegeta/v12/lib"
)

var pokemonNames = []string{
	"bulbasaur", "charmander", "squirtle", "pikachu", "eevee",
	"snorlax", "mew", "mewtwo", "gengar", "dragonite",
}

func main() {
	baseURL := flag.String("url", "http://localhost:8080", "pokecache server address")
	freq := flag.Int("rate", 50, "requests per second")
	duration := flag.Duration("duration", 30*time.Second, "test duration")
	sessions := flag.Int("sessions", 20, "number of distinct sessions")
	flag.Parse()

	gofakeit.Seed(time.Now().UnixNano())

	sessionIDs := make([]string, *sessions)
	for i := range sessionIDs {
		sessionIDs[i] = uuid.New().String()
	}

	rate := vegeta.Rate{Freq: *freq, Per: time.Second}
	attacker := vegeta.NewAttacker()

	var metrics vegeta.Metrics
	for res := range attacker.Attack(newTargeter(*baseURL, sessionIDs), rate, *duration, "pokecache") {
		metrics.Add(res)
	}
	metrics.Close()

	fmt.Printf("99th percentile: %s\n", metrics.Latencies.P99)
	fmt.Printf("95th percentile: %s\n", metrics.Latencies.P95)
	fmt.Printf("Mean: %s\n", metrics.Latencies.Mean)
	fmt.Printf("Max: %s\n", metrics.Latencies.Max)
	fmt.Printf("Requests per second: %.2f\n", metrics.Rate)
	fmt.Printf("Success ratio: %.2f%%\n", metrics.Success*100)
	fmt.Printf("Status codes: %v\n", metrics.StatusCodes)
	fmt.Printf("Total requests: %d\n", metrics.Requests)

	fmt.Println("\n=== Report ===")
	vegeta.NewTextReporter(&metrics).Report(os.Stdout)
}

// newTargeter mixes polling reads, waiting reads and occasional resets across sessions, so the
// same names are asked for concurrently by many sessions.
func newTargeter(baseURL string, sessionIDs []string) vegeta.Targeter {
	return func(tgt *vegeta.Target) error {
		name := gofakeit.RandomString(pokemonNames)
		path := fmt.Sprintf("%s/api/v1/pokemon/%s", baseURL, name)

		switch n := gofakeit.Number(1, 100); {
		case n <= 5:
			tgt.Method = http.MethodDelete
		case n <= 10:
			tgt.Method = http.MethodPost
			path += "/prefetch"
		case n <= 40:
			tgt.Method = http.MethodGet
			path += "?wait=true"
		default:
			tgt.Method = http.MethodGet
		}

		tgt.URL = path
		tgt.Header = http.Header{
			"X-Session-ID": {gofakeit.RandomString(sessionIDs)},
		}

		return nil
	}
}
