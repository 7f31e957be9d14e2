package config

import (
	"os"
	"strings"
)

type Env struct {
	AppAddr string
	GinMode string

	// Dataset source: URL wins when both are set.
	DatasetURL  string
	DatasetPath string

	// Optional YAML app config (boarding overrides, feature tags).
	ConfigPath string

	// Persisted key-value store: "file" (default) or "mysql".
	StoreDriver string
	StorePath   string
	StoreDSN    string

	JWTSecret string

	// Base URL of the OSRM-compatible routing service for map geometry.
	RoutingURL string
}

func LoadEnv() Env {
	env := Env{
		AppAddr:     getenv("APP_ADDR", ":8080"),
		GinMode:     getenv("GIN_MODE", ""),
		DatasetURL:  getenv("DATASET_URL", ""),
		DatasetPath: getenv("DATASET_PATH", "data/jordan_bus_data.json"),
		ConfigPath:  getenv("CONFIG_PATH", ""),
		StoreDriver: getenv("STORE_DRIVER", "file"),
		StorePath:   getenv("STORE_PATH", "data/busjo_store.json"),
		StoreDSN:    getenv("STORE_DSN", ""),
		JWTSecret:   getenv("JWT_SECRET", "super-secret-key-change-me"),
		RoutingURL:  getenv("ROUTING_URL", "https://router.project-osrm.org"),
	}
	return env
}

func getenv(key, fallback string) string {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return fallback
	}
	return v
}
