package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"time"

	"github.com/alecthomas/kong"

	"github.com/IsaacDSC/pokecache/internal/domain"
	"github.com/IsaacDSC/pokecache/internal/fetcher"
	"github.com/IsaacDSC/pokecache/internal/pokeapp"
	"github.com/IsaacDSC/pokecache/pkg/httpclient"
	"github.com/IsaacDSC/pokecache/pkg/logs"
	"github.com/IsaacDSC/pokecache/pkg/rescache"
	"github.com/IsaacDSC/pokecache/pkg/resource"
)

var version = "dev"

type CLI struct {
	Version  kong.VersionFlag `help:"Show version." short:"V"`
	Get      GetCmd           `cmd:"" help:"Fetch pokemon through an in-process resource cache."`
	Watch    WatchCmd         `cmd:"" help:"Poll a running pokecache server until a pokemon settles."`
	Prefetch PrefetchCmd      `cmd:"" help:"Ask a running pokecache server to warm a session."`
}

// GetCmd reads every name Repeat times through one cache, showing which reads were served
// from a live entry and which started a fetch.
type GetCmd struct {
	Names    []string      `arg:"" help:"Pokemon names."`
	URL      string        `help:"GraphQL endpoint." default:"https://graphql-pokemon2.vercel.app/"`
	TTL      time.Duration `help:"Cache staleness window." default:"5s"`
	Timeout  time.Duration `help:"Fetch timeout." default:"10s"`
	Delay    time.Duration `help:"Artificial delay before each fetch." default:"0s"`
	Repeat   int           `help:"Number of passes over the names." default:"1"`
	Interval time.Duration `help:"Pause between passes." default:"1s"`
}

func (c *GetCmd) Run(ctx context.Context, w io.Writer) error {
	cache := rescache.New[string, domain.Pokemon](rescache.Options[string]{
		Name:      "cli",
		TTL:       c.TTL,
		Normalize: domain.NormalizeName,
		Logger:    logs.Discard(),
	})
	async := fetcher.NewAsync(
		fetcher.NewPokeAPI(c.URL, httpclient.New(c.Timeout)),
		fetcher.WithTimeout(c.Timeout),
		fetcher.WithDelay(c.Delay),
	)

	seen := map[*resource.Resource[domain.Pokemon]]bool{}
	for pass := 0; pass < max(c.Repeat, 1); pass++ {
		if pass > 0 {
			select {
			case <-time.After(c.Interval):
			case <-ctx.Done():
				return ctx.Err()
			}
		}

		for _, name := range c.Names {
			res, err := cache.GetOrCreate(name, func(n string) resource.Operation[domain.Pokemon] {
				return async.Fetch(ctx, n)
			})
			if err != nil {
				fmt.Fprintf(w, "%q: %v\n", name, err)
				continue
			}

			origin := "fetch"
			if seen[res] {
				origin = "cache"
			}
			seen[res] = true

			start := time.Now()
			p, err := resource.Await(ctx, res)
			if err != nil {
				if ctx.Err() != nil {
					return ctx.Err()
				}
				fmt.Fprintf(w, "%s [%s] failed: %v\n", name, origin, err)
				continue
			}

			printPokemon(w, p, origin, time.Since(start))
		}
	}

	return nil
}

func printPokemon(w io.Writer, p domain.Pokemon, origin string, waited time.Duration) {
	fmt.Fprintf(w, "%s #%s [%s] waited %s\n", p.Name, p.Number, origin, waited.Round(time.Millisecond))
	for _, a := range p.Attacks.Special {
		fmt.Fprintf(w, "  %-20s %-10s %d\n", a.Name, a.Type, a.Damage)
	}
}

type RemoteFlags struct {
	Server  string        `help:"pokecache server address." default:"http://localhost:8080"`
	Session string        `help:"Session id." default:"cli"`
	Timeout time.Duration `help:"Per request timeout." default:"10s"`
}

func (f RemoteFlags) request(ctx context.Context, method, path string) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, method, strings.TrimRight(f.Server, "/")+path, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set(pokeapp.HeaderSessionID, f.Session)

	return httpclient.New(f.Timeout).Do(req)
}

func pokemonPath(name string) string {
	return "/api/v1/pokemon/" + url.PathEscape(name)
}

type WatchCmd struct {
	Remote RemoteFlags `embed:""`
	Name   string      `arg:"" help:"Pokemon name."`
	Reset  bool        `help:"On failure, invalidate the entry and watch once more."`
}

var errFailed = errors.New("pokemon failed to load")

func (c *WatchCmd) Run(ctx context.Context, w io.Writer) error {
	err := c.watch(ctx, w)
	if errors.Is(err, errFailed) && c.Reset {
		resp, derr := c.Remote.request(ctx, http.MethodDelete, pokemonPath(c.Name))
		if derr != nil {
			return derr
		}
		resp.Body.Close()

		fmt.Fprintln(w, "reset, retrying")
		return c.watch(ctx, w)
	}

	return err
}

func (c *WatchCmd) watch(ctx context.Context, w io.Writer) error {
	for {
		resp, err := c.Remote.request(ctx, http.MethodGet, pokemonPath(c.Name))
		if err != nil {
			return err
		}

		body, err := io.ReadAll(resp.Body)
		resp.Body.Close()
		if err != nil {
			return err
		}

		switch resp.StatusCode {
		case http.StatusOK:
			fmt.Fprintf(w, "ready: %s\n", body)
			return nil
		case http.StatusAccepted:
			wait := time.Second
			if s, err := strconv.Atoi(resp.Header.Get("Retry-After")); err == nil {
				wait = time.Duration(s) * time.Second
			}
			fmt.Fprintf(w, "pending, retry in %s\n", wait)

			select {
			case <-time.After(wait):
			case <-ctx.Done():
				return ctx.Err()
			}
		case http.StatusNotFound, http.StatusBadGateway:
			fmt.Fprintf(w, "failed: %s\n", body)
			return errFailed
		default:
			return fmt.Errorf("unexpected status code: %d", resp.StatusCode)
		}
	}
}

type PrefetchCmd struct {
	Remote RemoteFlags `embed:""`
	Names  []string    `arg:"" help:"Pokemon names."`
}

func (c *PrefetchCmd) Run(ctx context.Context, w io.Writer) error {
	for _, name := range c.Names {
		resp, err := c.Remote.request(ctx, http.MethodPost, pokemonPath(name)+"/prefetch")
		if err != nil {
			return err
		}
		resp.Body.Close()

		if resp.StatusCode != http.StatusAccepted {
			return fmt.Errorf("prefetch %q: unexpected status code: %d", name, resp.StatusCode)
		}
		fmt.Fprintf(w, "scheduled %s for session %s\n", name, c.Remote.Session)
	}

	return nil
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	var cli CLI
	k := kong.Parse(&cli,
		kong.Name("pokecli"),
		kong.Description("Read pokemon through a resource cache."),
		kong.Vars{"version": version},
		kong.BindTo(ctx, (*context.Context)(nil)),
		kong.BindTo(io.Writer(os.Stdout), (*io.Writer)(nil)),
	)

	if err := k.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %s\n", err)
		os.Exit(1)
	}
}
