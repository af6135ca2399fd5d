package config

import (
	"errors"
	"flag"
	"net/url"
	"strings"
	"time"
)

// ServiceURL holds the processing service base URL given on the command line.
// It implements the flag.Value interface.
type ServiceURL struct {
	raw string
}

// ParseFlags parses all configuration flags.
//
// Flags:
//
//	-a processing service address (e.g. "https://api.example.com", "localhost:8000")
//	-t bearer credential used for every request
//	-d session database DSN
//	-c/-config json file path with configs
//	-request-timeout request timeout (e.g., "30s", "1m")
//	-refresh-interval dashboard refresh interval (e.g., "15s"); 0 disables it
func ParseFlags() *StructuredConfig {
	var serviceAddress ServiceURL
	var token string
	var databaseDSN string
	var jsonConfigPath string
	var requestTimeout time.Duration
	var refreshInterval time.Duration

	flag.Var(&serviceAddress, "a", "Processing service address")
	flag.StringVar(&token, "t", "", "Bearer token")
	flag.StringVar(&databaseDSN, "d", "", "Database DSN")
	flag.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	flag.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	flag.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	flag.DurationVar(&refreshInterval, "refresh-interval", 0, "Document list refresh interval (e.g., 15s)")

	flag.Parse()

	return &StructuredConfig{
		App: App{
			Token: token,
		},
		Storage: Storage{
			DB: DB{
				DSN: databaseDSN,
			},
		},
		Adapter: Adapter{
			HTTPAddress:    serviceAddress.String(),
			RequestTimeout: requestTimeout,
		},
		Workers: Workers{
			RefreshInterval: refreshInterval,
		},
		JSONFilePath: jsonConfigPath,
	}
}

// String returns the address as it was accepted by Set.
func (u *ServiceURL) String() string {
	return u.raw
}

// Set validates s and stores it. A bare "host:port" is accepted and is
// completed with a scheme later by the adapter. Any explicit scheme other
// than http or https is rejected.
func (u *ServiceURL) Set(s string) error {
	s = strings.TrimSpace(s)
	if s == "" {
		return errors.New("service address must not be empty")
	}

	if strings.Contains(s, "://") {
		parsed, err := url.Parse(s)
		if err != nil {
			return err
		}
		if parsed.Scheme != "http" && parsed.Scheme != "https" {
			return errors.New("service address scheme must be http or https")
		}
		if parsed.Host == "" {
			return errors.New("service address must contain a host")
		}
	}

	u.raw = s
	return nil
}
