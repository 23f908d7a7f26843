// Package config loads settings from the environment, optionally seeded from
// a .env file (path given with -env, or ./.env when present).
package config

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"strings"
	"sync"

	"github.com/kelseyhightower/envconfig"
	"github.com/spf13/viper"
	"github.com/warp/payroll-engine/logging"
)

var (
	envFilePath string
	parseOnce   sync.Once
)

// Server is the configuration of cmd/server.
type Server struct {
	Port           int      `envconfig:"PORT" default:"8080"`
	Store          string   `envconfig:"STORE" default:"memory"`
	CurrencySymbol string   `envconfig:"CURRENCY_SYMBOL" default:"₸"`
	CurrencyCode   string   `envconfig:"CURRENCY_CODE" default:"KZT"`
	AllowedOrigins []string `envconfig:"ALLOWED_ORIGINS" default:"http://localhost:5173,http://localhost:8080"`

	Log logging.Config `envconfig:"LOG"`
}

// Store backends accepted in Server.Store.
const (
	StoreMemory = "memory"
	StoreSQLite = "sqlite"
)

func (s Server) Validate() error {
	switch s.Store {
	case StoreMemory, StoreSQLite:
		return nil
	}
	return fmt.Errorf("unsupported store %q (want %s or %s)", s.Store, StoreMemory, StoreSQLite)
}

func MustNew[T any](prefix string) *T {
	conf, err := New[T](prefix)
	if err != nil {
		panic(err)
	}
	return conf
}

func New[T any](prefix string) (*T, error) {
	filepath := resolveEnvPath()
	if filepath != "" {
		if err := exportEnvironment(filepath); err != nil {
			return nil, fmt.Errorf("failed to load env file: %w", err)
		}
	} else if err := exportEnvironmentIfExists(".env"); err != nil {
		return nil, fmt.Errorf("failed to load default env file: %w", err)
	}

	var conf T
	if err := envconfig.Process(prefix, &conf); err != nil {
		return nil, err
	}

	return &conf, nil
}

func resolveEnvPath() string {
	parseOnce.Do(func() {
		if flag.Lookup("env") == nil {
			flag.StringVar(&envFilePath, "env", "", "path to .env file")
		}
		if !flag.Parsed() {
			flag.Parse()
		}
	})
	return strings.TrimSpace(envFilePath)
}

func exportEnvironmentIfExists(filepath string) error {
	info, err := os.Stat(filepath)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return err
	}
	if info.IsDir() {
		return nil
	}
	return exportEnvironment(filepath)
}

// exportEnvironment copies every key of the file into the process
// environment. Variables already set are left alone.
func exportEnvironment(filepath string) error {
	v := viper.New()
	v.SetConfigFile(filepath)
	v.SetConfigType("env")
	if err := v.ReadInConfig(); err != nil {
		return err
	}

	for k, val := range v.AllSettings() {
		key := strings.ToUpper(k)
		if _, set := os.LookupEnv(key); set {
			continue
		}
		if err := os.Setenv(key, fmt.Sprint(val)); err != nil {
			return err
		}
	}

	return nil
}
