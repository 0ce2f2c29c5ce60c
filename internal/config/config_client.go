package config

import (
	"fmt"
	"time"
)

// ClientApp holds client-side application settings derived from the shared
// structured config.
type ClientApp struct {
	// Identity is the identity artworks are submitted and judged under.
	Identity string
	// Codec selects the payload codec ("base64" or "sealed").
	Codec string
	// SealPassphrase is the key-derivation passphrase for the sealed codec.
	SealPassphrase string
}

// ClientLedger holds network settings used by the client's ledger adapter.
type ClientLedger struct {
	// HTTPAddress is the ledger gateway endpoint.
	HTTPAddress string
	// RequestTimeout is the default timeout for outbound ledger requests.
	RequestTimeout time.Duration
}

// ClientCache contains local snapshot database settings for the client.
type ClientCache struct {
	// Path is the SQLite file holding the last good refresh snapshot.
	Path string
}

// ClientStorage groups client storage backend settings.
type ClientStorage struct {
	// Cache holds local snapshot settings.
	Cache ClientCache
}

// ClientWorkers contains client background worker settings.
type ClientWorkers struct {
	// RefreshInterval defines how often the background refresh job runs.
	RefreshInterval time.Duration
}

// ClientConfig is the top-level client configuration assembled from
// [StructuredConfig].
type ClientConfig struct {
	// App contains application-level client settings.
	App ClientApp
	// Ledger contains the ledger endpoint and timeouts.
	Ledger ClientLedger
	// Storage contains client storage settings.
	Storage ClientStorage
	// Workers contains background job settings.
	Workers ClientWorkers
}

// GetClientConfig builds and validates a client-specific config view from the
// merged structured configuration.
//
// It loads the base config via [GetStructuredConfig], maps only the fields
// relevant to the client runtime, and validates the resulting [ClientConfig].
func GetClientConfig() (*ClientConfig, error) {
	cfg, err := GetStructuredConfig()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	clientCfg := &ClientConfig{
		App: ClientApp{
			Identity:       cfg.App.Identity,
			Codec:          cfg.App.Codec,
			SealPassphrase: cfg.App.SealPassphrase,
		},
		Ledger: ClientLedger{
			HTTPAddress:    cfg.Ledger.HTTPAddress,
			RequestTimeout: cfg.Ledger.RequestTimeout,
		},
		Storage: ClientStorage{
			Cache: ClientCache{
				Path: cfg.Storage.Cache.Path,
			},
		},
		Workers: ClientWorkers{RefreshInterval: cfg.Workers.RefreshInterval},
	}

	return clientCfg, clientCfg.validate()
}
