package app

import (
	"fmt"
	"net/http"

	"github.com/riskibarqy/fpl-advisor/external/fplapi"
	"github.com/riskibarqy/fpl-advisor/internal/config"
	"github.com/riskibarqy/fpl-advisor/internal/domain/dataset"
	"github.com/riskibarqy/fpl-advisor/internal/infrastructure/repository/memory"
	"github.com/riskibarqy/fpl-advisor/internal/infrastructure/snapshot"
	"github.com/riskibarqy/fpl-advisor/internal/interfaces/httpapi"
	"github.com/riskibarqy/fpl-advisor/internal/platform/logging"
	"github.com/riskibarqy/fpl-advisor/internal/platform/resilience"
	"github.com/riskibarqy/fpl-advisor/internal/usecase"
)

// NewHTTPServer wires the dataset provider, services and HTTP surface
// into a configured server. Seed mode serves the built-in snapshot; live
// mode fetches from the FPL API behind the snapshot cache.
func NewHTTPServer(cfg config.Config, logger *logging.Logger) (*http.Server, error) {
	provider, err := newDatasetProvider(cfg, logger)
	if err != nil {
		return nil, err
	}

	analysisSvc := usecase.NewAnalysisService(provider, logger)
	playerSvc := usecase.NewPlayerService(provider)

	handler := httpapi.NewHandler(analysisSvc, playerSvc, logger)
	router := httpapi.NewRouter(handler, logger, cfg.CORSAllowedOrigins)

	server := &http.Server{
		Addr:         cfg.HTTPAddr,
		Handler:      router,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}

	if server.Addr == "" {
		return nil, fmt.Errorf("http server addr cannot be empty")
	}

	return server, nil
}

func newDatasetProvider(cfg config.Config, logger *logging.Logger) (dataset.Provider, error) {
	switch cfg.DataMode {
	case config.DataModeSeed:
		logger.Info("dataset provider", "mode", config.DataModeSeed)
		return memory.NewSeededProvider(), nil
	case config.DataModeLive:
		client := fplapi.NewClient(fplapi.ClientConfig{
			BaseURL:    cfg.FPLBaseURL,
			Timeout:    cfg.FPLTimeout,
			MaxRetries: cfg.FPLMaxRetries,
			Logger:     logger,
			CircuitBreaker: resilience.CircuitBreakerConfig{
				Enabled:          cfg.FPLCircuitEnabled,
				FailureThreshold: cfg.FPLCircuitFailureCount,
				OpenTimeout:      cfg.FPLCircuitOpenTimeout,
				ProbeLimit:       cfg.FPLCircuitHalfOpenMaxReq,
			},
		})
		logger.Info("dataset provider",
			"mode", config.DataModeLive,
			"base_url", cfg.FPLBaseURL,
			"cache_ttl", cfg.CacheTTL.String(),
		)
		return snapshot.NewCachedProvider(client, cfg.CacheTTL, logger), nil
	default:
		return nil, fmt.Errorf("unknown data mode %q", cfg.DataMode)
	}
}
