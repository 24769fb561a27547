package domain

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// ErrPokemonNotFound is the failure a Source reports when the name matches nothing.
var ErrPokemonNotFound = errors.New("pokemon not found")

type Pokemon struct {
	ID        string    `json:"id" bson:"id"`
	Number    string    `json:"number" bson:"number"`
	Name      string    `json:"name" bson:"name"`
	Image     string    `json:"image" bson:"image"`
	Attacks   Attacks   `json:"attacks" bson:"attacks"`
	FetchedAt time.Time `json:"fetchedAt" bson:"fetched_at"`
}

type Attacks struct {
	Special []Attack `json:"special" bson:"special"`
}

type Attack struct {
	Name   string `json:"name" bson:"name"`
	Type   string `json:"type" bson:"type"`
	Damage int    `json:"damage" bson:"damage"`
}

// NormalizeName is the canonical cache identity of a pokemon name: trimmed and lower-cased.
func NormalizeName(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

// NotFoundError wraps ErrPokemonNotFound with the name that was asked for.
func NotFoundError(name string) error {
	return fmt.Errorf("%w: no pokemon with the name %q", ErrPokemonNotFound, name)
}
