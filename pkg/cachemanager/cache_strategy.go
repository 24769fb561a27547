package cachemanager

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	redis "github.com/redis/go-redis/v9"
)

// Fn produces the value to cache. Its result is stored as JSON.
type Fn func(ctx context.Context) (any, error)

type Key string

func (k Key) String() string {
	return string(k)
}

// Strategy caches JSON encoded values in Redis under an application prefix.
type Strategy struct {
	appPrefix  string
	defaultTTL time.Duration
	client     redis.UniversalClient
}

var _ Cache = (*Strategy)(nil)

func NewStrategy(appPrefix string, defaultTTL time.Duration, client redis.UniversalClient) *Strategy {
	return &Strategy{appPrefix: appPrefix, defaultTTL: defaultTTL, client: client}
}

// Key joins the prefix and params with ":".
func (s Strategy) Key(params ...string) Key {
	if s.appPrefix != "" {
		params = append([]string{s.appPrefix}, params...)
	}
	return Key(strings.Join(params, ":"))
}

func (s Strategy) GetDefaultTTL() time.Duration {
	return s.defaultTTL
}

func (s Strategy) ttlOrDefault(ttl time.Duration) time.Duration {
	if ttl <= 0 {
		return s.defaultTTL
	}
	return ttl
}

// Hydrate always runs fn, stores its result and decodes it into value.
func (s Strategy) Hydrate(ctx context.Context, key Key, value any, ttl time.Duration, fn Fn) error {
	v, err := fn(ctx)
	if err != nil {
		return fmt.Errorf("error executing function for key %s: %w", key.String(), err)
	}

	b, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("error marshalling value for key %s: %w", key.String(), err)
	}

	if err := s.client.Set(ctx, key.String(), b, s.ttlOrDefault(ttl)).Err(); err != nil {
		return fmt.Errorf("error setting value for key %s: %w", key.String(), err)
	}

	if err := json.Unmarshal(b, value); err != nil {
		return fmt.Errorf("error unmarshalling value for key %s: %w", key.String(), err)
	}

	return nil
}

// Once decodes the cached value into value when present, otherwise it behaves like Hydrate.
func (s Strategy) Once(ctx context.Context, key Key, value any, ttl time.Duration, fn Fn) error {
	cached, err := s.client.Get(ctx, key.String()).Bytes()
	switch {
	case err == nil:
		if err := json.Unmarshal(cached, value); err != nil {
			return fmt.Errorf("error unmarshalling value for key %s: %w", key.String(), err)
		}
		return nil
	case !errors.Is(err, redis.Nil):
		return fmt.Errorf("error getting value for key %s: %w", key.String(), err)
	}

	return s.Hydrate(ctx, key, value, ttl, fn)
}

func (s Strategy) Remove(ctx context.Context, key Key) error {
	if err := s.client.Del(ctx, key.String()).Err(); err != nil {
		return fmt.Errorf("error removing key %s: %w", key.String(), err)
	}
	return nil
}
