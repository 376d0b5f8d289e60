package config

import (
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/joho/godotenv"
)

const (
	StorageMemory   = "memory"
	StoragePostgres = "postgres"
)

type Config struct {
	Env            string `yaml:"env" env:"BANNER_ENV" env-default:"local"`
	HTTPServer     `yaml:"http_server"`
	Backend        `yaml:"backend"`
	Storage        string `yaml:"storage" env:"BANNER_STORAGE" env-default:"memory"`
	PostgresServer `yaml:"postgres_server"`
}

type HTTPServer struct {
	Address                 string        `yaml:"address" env:"BANNER_HTTP_ADDRESS" env-default:"localhost:8085"`
	ReadTimeout             time.Duration `yaml:"read_timeout" env-default:"5s"`
	WriteTimeout            time.Duration `yaml:"write_timeout" env-default:"5s"`
	IdleTimeout             time.Duration `yaml:"idle_timeout" env-default:"60s"`
	GracefulShutdownTimeout time.Duration `yaml:"graceful_shutdown_timeout" env-default:"10s"`
}

// Backend is the remote banner API consumed by the web client.
type Backend struct {
	BaseURL string `yaml:"base_url" env:"BANNER_BACKEND_URL" env-default:"http://localhost:8086"`
	// RequestTimeout of zero leaves requests unbounded.
	RequestTimeout time.Duration `yaml:"request_timeout" env-default:"0s"`
	PollInterval   time.Duration `yaml:"poll_interval" env-default:"1s"`
}

type PostgresServer struct {
	Host         string        `yaml:"host" env-default:"localhost"`
	Port         int           `yaml:"port" env-default:"5432"`
	Username     string        `yaml:"username" env-default:"postgres"`
	DBname       string        `yaml:"db_name" env-default:"postgres"`
	SSLmode      string        `yaml:"ssl_mode" env-default:"disable"`
	MaxOpenConns int           `yaml:"max_open_conns" env-default:"100"`
	MaxIdleConns int           `yaml:"max_idle_conns" env-default:"2"`
	MaxLifetime  time.Duration `yaml:"max_lifetime" env-default:"1h"`
	DriverName   string        `yaml:"driver_name" env-default:"postgres"`
}

type Secret struct {
	PostgresPassword string `env:"DB_PASSWORD" env-required:"true"`
}

// MustLoad reads the YAML config named by -config or CONFIG_PATH. Without a
// path the configuration comes from the environment and defaults.
func MustLoad() *Config {
	cfg, err := Load(fetchConfigPath())
	if err != nil {
		log.Fatalf("cannot read config: %s", err)
	}
	return cfg
}

func Load(configPath string) (*Config, error) {
	const op = "config.Load"

	var cfg Config
	if configPath == "" {
		if err := cleanenv.ReadEnv(&cfg); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		return &cfg, nil
	}

	if _, err := os.Stat(configPath); err != nil {
		return nil, fmt.Errorf("%s: config file %s: %w", op, configPath, err)
	}

	if err := cleanenv.ReadConfig(configPath, &cfg); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return &cfg, nil
}

func MustLoadSecret() *Secret {
	scr := &Secret{}
	if err := cleanenv.ReadEnv(scr); err != nil {
		log.Fatalf("failed to get secret env: %s", err)
	}
	return scr
}

func fetchConfigPath() string {
	var configPath, envPath string

	flag.StringVar(&configPath, "config", "", "path to config file")
	flag.StringVar(&envPath, "env", "", "path to env file")
	flag.Parse()

	if envPath != "" {
		if err := godotenv.Load(envPath); err != nil {
			log.Fatalf("Env file %s does not exist", envPath)
		}
	}

	if configPath == "" {
		configPath = os.Getenv("CONFIG_PATH")
	}

	return configPath
}
