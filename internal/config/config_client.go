package config

import (
	"fmt"
	"time"
)

// ClientApp holds client-side application settings derived from the shared
// structured config.
type ClientApp struct {
	// Token is the bearer credential supplied at startup, if any.
	Token string
}

// ClientAdapter holds network settings used by the client transport layer.
type ClientAdapter struct {
	// HTTPAddress is the processing service base URL.
	HTTPAddress string
	// RequestTimeout is the timeout for outbound requests; zero means none.
	RequestTimeout time.Duration
}

// ClientDB contains local database connection settings for the client.
type ClientDB struct {
	// DSN is the SQLite connection string used by the client.
	DSN string
}

// ClientStorage groups client storage backend settings.
type ClientStorage struct {
	// DB holds local database settings.
	DB ClientDB
}

// ClientWorkers contains client background worker settings.
type ClientWorkers struct {
	// RefreshInterval defines how often the document list is re-fetched.
	RefreshInterval time.Duration
}

// ClientConfig is the top-level client configuration assembled from
// [StructuredConfig].
type ClientConfig struct {
	App     ClientApp
	Adapter ClientAdapter
	Storage ClientStorage
	Workers ClientWorkers
}

// GetClientConfig builds and validates a client-specific config view from the
// merged structured configuration.
func GetClientConfig() (*ClientConfig, error) {
	cfg, err := GetStructuredConfig()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	clientCfg := newClientConfig(cfg)
	return clientCfg, clientCfg.validate()
}

func newClientConfig(cfg *StructuredConfig) *ClientConfig {
	return &ClientConfig{
		App: ClientApp{
			Token: cfg.App.Token,
		},
		Adapter: ClientAdapter{
			HTTPAddress:    cfg.Adapter.HTTPAddress,
			RequestTimeout: cfg.Adapter.RequestTimeout,
		},
		Storage: ClientStorage{
			DB: ClientDB{
				DSN: cfg.Storage.DB.DSN,
			},
		},
		Workers: ClientWorkers{RefreshInterval: cfg.Workers.RefreshInterval},
	}
}
