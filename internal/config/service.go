package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	kyaml "github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/structs"
	"github.com/knadh/koanf/v2"
)

// ServiceConfigPathEnvVar overrides where the layered service config file is
// searched for.
const ServiceConfigPathEnvVar = "PRODUCT_JUDGE_CONFIG"

// DefaultServiceConfigPaths lists the paths searched, in order, for an
// optional YAML config file.
var DefaultServiceConfigPaths = []string{
	"config.yaml",
	"config.yml",
	"/etc/product-judge/config.yaml",
}

// Service holds the small set of deployment knobs for the HTTP boundary.
// It is loaded once at startup and never mutated afterwards.
type Service struct {
	HTTPPort    int    `koanf:"http_port"`
	LogLevel    string `koanf:"log_level"`
	LogFormat   string `koanf:"log_format"`
	CatalogPath string `koanf:"catalog_path"`
}

func defaultService() Service {
	return Service{
		HTTPPort:  8080,
		LogLevel:  "info",
		LogFormat: "json",
	}
}

// LoadService layers defaults, an optional YAML file, then environment
// variables (PRODUCT_JUDGE_*), in increasing priority order, so deployment
// environments can override individual knobs without editing a checked-in
// file.
func LoadService() (Service, error) {
	k := koanf.New(".")

	defaults := defaultService()
	if err := k.Load(structs.Provider(defaults, "koanf"), nil); err != nil {
		return Service{}, fmt.Errorf("load config defaults: %w", err)
	}

	if path := findServiceConfigFile(); path != "" {
		if err := k.Load(file.Provider(path), kyaml.Parser()); err != nil {
			return Service{}, fmt.Errorf("load config file %q: %w", path, err)
		}
	}

	envProvider := env.Provider("PRODUCT_JUDGE_", ".", func(s string) string {
		s = strings.TrimPrefix(s, "PRODUCT_JUDGE_")
		return strings.ToLower(s)
	})
	if err := k.Load(envProvider, nil); err != nil {
		return Service{}, fmt.Errorf("load environment overrides: %w", err)
	}

	cfg := defaults
	cfg.LogLevel = k.String("log_level")
	cfg.LogFormat = k.String("log_format")
	cfg.CatalogPath = k.String("catalog_path")
	if raw := k.String("http_port"); raw != "" {
		port, err := strconv.Atoi(raw)
		if err != nil {
			return Service{}, fmt.Errorf("parse http_port %q: %w", raw, err)
		}
		cfg.HTTPPort = port
	}

	return cfg, nil
}

func findServiceConfigFile() string {
	if p := os.Getenv(ServiceConfigPathEnvVar); p != "" {
		return p
	}
	for _, p := range DefaultServiceConfigPaths {
		if _, err := os.Stat(p); err == nil {
			return p
		}
	}
	return ""
}
