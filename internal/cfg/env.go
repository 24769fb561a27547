package cfg

import (
	"sync"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

const (
	SourcePokeAPI = "pokeapi"
	SourceMongo   = "mongo"
)

type Cache struct {
	TTL       time.Duration `yaml:"ttl" env:"CACHE_TTL" env-default:"5s"`
	CacheAddr string        `yaml:"addr" env:"CACHE_ADDR" env-default:"localhost:6379"`
	L2Enabled bool          `yaml:"l2_enabled" env:"CACHE_L2_ENABLED" env-default:"true"`
	L2TTL     time.Duration `yaml:"l2_ttl" env:"CACHE_L2_TTL" env-default:"1h"`
}

type Fetcher struct {
	Source  string        `yaml:"source" env:"FETCHER_SOURCE" env-default:"pokeapi"`
	URL     string        `yaml:"url" env:"FETCHER_URL" env-default:"https://graphql-pokemon2.vercel.app/"`
	Timeout time.Duration `yaml:"timeout" env:"FETCHER_TIMEOUT" env-default:"10s"`
	Delay   time.Duration `yaml:"delay" env:"FETCH_DELAY" env-default:"0s"`
}

type ConfigDatabase struct {
	DbConn string `yaml:"connection_string" env:"DB_CONNECTION_STRING" env-default:"mongodb://localhost:27017"`
}

type Session struct {
	Max     int           `yaml:"max" env:"SESSION_MAX" env-default:"1024"`
	IdleTTL time.Duration `yaml:"idle_ttl" env:"SESSION_IDLE_TTL" env-default:"30m"`
}

type Worker struct {
	Concurrency int `yaml:"concurrency" env:"WQ_CONCURRENCY" env-default:"10"`
}

type Admin struct {
	User     string `yaml:"user" env:"ADMIN_USER"`
	Password string `yaml:"password" env:"ADMIN_PASSWORD"`
}

type Config struct {
	ApiPort        string         `yaml:"api_port" env:"API_PORT" env-default:":8080"`
	LogLevel       string         `yaml:"log_level" env:"LOG_LEVEL" env-default:"info"`
	Cache          Cache          `yaml:"cache"`
	Fetcher        Fetcher        `yaml:"fetcher"`
	ConfigDatabase ConfigDatabase `yaml:"database"`
	Session        Session        `yaml:"session"`
	Worker         Worker         `yaml:"worker"`
	Admin          Admin          `yaml:"admin"`
}

var (
	mu     sync.Mutex
	cfg    Config
	loaded bool
)

// Get reads the environment once and returns the resulting configuration.
// It panics on malformed values, configuration errors are fatal at boot.
func Get() Config {
	mu.Lock()
	defer mu.Unlock()

	if loaded {
		return cfg
	}

	if err := cleanenv.ReadEnv(&cfg); err != nil {
		panic(err)
	}

	loaded = true
	return cfg
}

// Load reads the configuration from a yaml/json/toml/env file, with environment variables
// taking precedence, and makes it the value returned by Get.
func Load(path string) (Config, error) {
	var c Config
	if err := cleanenv.ReadConfig(path, &c); err != nil {
		return Config{}, err
	}

	SetConfig(c)
	return c, nil
}

// SetConfig overrides the configuration, mostly for tests.
func SetConfig(c Config) {
	mu.Lock()
	defer mu.Unlock()
	cfg = c
	loaded = true
}
