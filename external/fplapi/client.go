package fplapi

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	sonic "github.com/bytedance/sonic"
	crerr "github.com/cockroachdb/errors"
	"golang.org/x/sync/singleflight"

	"github.com/riskibarqy/fpl-advisor/internal/domain/fixture"
	"github.com/riskibarqy/fpl-advisor/internal/domain/gameweek"
	"github.com/riskibarqy/fpl-advisor/internal/domain/player"
	"github.com/riskibarqy/fpl-advisor/internal/domain/team"
	"github.com/riskibarqy/fpl-advisor/internal/platform/logging"
	"github.com/riskibarqy/fpl-advisor/internal/platform/resilience"
	"github.com/riskibarqy/fpl-advisor/internal/usecase"
)

const (
	defaultBaseURL     = "https://fantasy.premierleague.com/api"
	bootstrapPath      = "/bootstrap-static/"
	fixturesPath       = "/fixtures/"
	maxResponseBytes   = 16 << 20
	defaultHTTPTimeout = 20 * time.Second
)

var errFPLTransient = crerr.New("fpl transient failure")

type ClientConfig struct {
	HTTPClient     *http.Client
	BaseURL        string
	Timeout        time.Duration
	MaxRetries     int
	Logger         *logging.Logger
	CircuitBreaker resilience.CircuitBreakerConfig
}

// Client talks to the public FPL API. Both endpoints are unauthenticated
// GETs; the client adds bounded retries for transient failures, a circuit
// breaker, and request collapsing for concurrent identical fetches.
type Client struct {
	httpClient     *http.Client
	baseURL        string
	maxRetries     int
	logger         *logging.Logger
	breaker        *resilience.CircuitBreaker
	circuitEnabled bool
	flight         singleflight.Group
}

// Bootstrap is the decoded bootstrap-static payload mapped into domain
// types.
type Bootstrap struct {
	Players   []player.Player
	Clubs     []team.Club
	Gameweeks []gameweek.Gameweek
}

func NewClient(cfg ClientConfig) *Client {
	logger := cfg.Logger
	if logger == nil {
		logger = logging.Default()
	}

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: cfg.Timeout}
	}
	if httpClient.Timeout <= 0 {
		httpClient.Timeout = defaultHTTPTimeout
	}

	baseURL := strings.TrimRight(strings.TrimSpace(cfg.BaseURL), "/")
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	breakerCfg := resilience.NormalizeCircuitBreakerConfig(cfg.CircuitBreaker)

	return &Client{
		httpClient:     httpClient,
		baseURL:        baseURL,
		maxRetries:     max(cfg.MaxRetries, 0),
		logger:         logger,
		breaker:        resilience.NewCircuitBreaker(breakerCfg.FailureThreshold, breakerCfg.OpenTimeout, breakerCfg.ProbeLimit),
		circuitEnabled: breakerCfg.Enabled,
	}
}

// FetchBootstrap loads the player pool, clubs and gameweek calendar.
func (c *Client) FetchBootstrap(ctx context.Context) (Bootstrap, error) {
	var envelope bootstrapEnvelope
	if err := c.doJSON(ctx, bootstrapPath, &envelope); err != nil {
		return Bootstrap{}, fmt.Errorf("fetch bootstrap: %w", err)
	}

	out := Bootstrap{
		Players:   make([]player.Player, 0, len(envelope.Elements)),
		Clubs:     make([]team.Club, 0, len(envelope.Teams)),
		Gameweeks: make([]gameweek.Gameweek, 0, len(envelope.Events)),
	}

	for _, item := range envelope.Elements {
		position, ok := player.FromElementType(item.ElementType)
		if !ok {
			c.logger.WarnContext(ctx, "skip element with unknown position", "element_id", item.ID, "element_type", item.ElementType)
			continue
		}
		out.Players = append(out.Players, player.Player{
			ID:            item.ID,
			Name:          strings.TrimSpace(item.WebName),
			ClubID:        item.Team,
			Position:      position,
			Price:         item.NowCost,
			Form:          float64(item.Form),
			PointsPerGame: float64(item.PointsPerGame),
			Status:        strings.TrimSpace(item.Status),
			TotalPoints:   item.TotalPoints,
			Photo:         strings.TrimSpace(item.Photo),
		})
	}

	for _, item := range envelope.Teams {
		out.Clubs = append(out.Clubs, team.Club{
			ID:    item.ID,
			Code:  item.Code,
			Name:  strings.TrimSpace(item.Name),
			Short: strings.TrimSpace(item.ShortName),
		})
	}

	for _, item := range envelope.Events {
		out.Gameweeks = append(out.Gameweeks, gameweek.Gameweek{
			ID:        item.ID,
			Name:      strings.TrimSpace(item.Name),
			IsCurrent: item.IsCurrent,
			IsNext:    item.IsNext,
			Finished:  item.Finished,
		})
	}

	return out, nil
}

// FetchFixtures loads the season fixture list. Fixtures without a scheduled
// gameweek decode with Gameweek 0 and never match a difficulty lookup.
func (c *Client) FetchFixtures(ctx context.Context) ([]fixture.Fixture, error) {
	var items []fixtureItem
	if err := c.doJSON(ctx, fixturesPath, &items); err != nil {
		return nil, fmt.Errorf("fetch fixtures: %w", err)
	}

	out := make([]fixture.Fixture, 0, len(items))
	for _, item := range items {
		gw := int64(0)
		if item.Event != nil {
			gw = *item.Event
		}
		out = append(out, fixture.Fixture{
			Gameweek:       gw,
			HomeClubID:     item.TeamH,
			AwayClubID:     item.TeamA,
			HomeDifficulty: item.TeamHDifficulty,
			AwayDifficulty: item.TeamADifficulty,
		})
	}

	return out, nil
}

func (c *Client) doJSON(ctx context.Context, path string, target any) error {
	if c.circuitEnabled {
		if err := c.breaker.Allow(); err != nil {
			c.logger.WarnContext(ctx, "fpl circuit breaker rejected request", "state", c.breaker.State())
			return fmt.Errorf("%w: fpl api is temporarily unavailable", usecase.ErrDependencyUnavailable)
		}
	}

	fullURL := c.baseURL + path
	out, err, _ := c.flight.Do(path, func() (any, error) {
		raw, reqErr := c.executeRequest(ctx, fullURL)
		if c.circuitEnabled {
			if reqErr != nil && crerr.Is(reqErr, errFPLTransient) {
				c.breaker.RecordFailure()
			} else {
				c.breaker.RecordSuccess()
			}
		}
		return raw, reqErr
	})
	if err != nil {
		return err
	}

	raw, ok := out.([]byte)
	if !ok {
		return fmt.Errorf("unexpected response payload type %T", out)
	}

	if err := sonic.Unmarshal(raw, target); err != nil {
		return fmt.Errorf("decode fpl payload: %w", err)
	}

	return nil
}

func (c *Client) executeRequest(ctx context.Context, fullURL string) ([]byte, error) {
	var lastErr error
	for attempt := 0; attempt <= c.maxRetries; attempt++ {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, fullURL, nil)
		if err != nil {
			return nil, fmt.Errorf("build request: %w", err)
		}
		req.Header.Set("accept", "application/json")

		resp, err := c.httpClient.Do(req)
		if err != nil {
			lastErr = fmt.Errorf("%w: send request: %v", errFPLTransient, err)
		} else {
			raw, readErr := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
			_ = resp.Body.Close()
			if readErr != nil {
				lastErr = fmt.Errorf("%w: read response body: %v", errFPLTransient, readErr)
			} else if resp.StatusCode >= 200 && resp.StatusCode < 300 {
				return raw, nil
			} else if isRetryableStatus(resp.StatusCode) {
				lastErr = fmt.Errorf("%w: fpl status=%d", errFPLTransient, resp.StatusCode)
			} else {
				return nil, fmt.Errorf("fpl status=%d body=%s", resp.StatusCode, abbreviateBody(raw))
			}
		}

		if attempt == c.maxRetries {
			break
		}
		backoff := time.Duration(attempt+1) * time.Second
		timer := time.NewTimer(backoff)
		select {
		case <-ctx.Done():
			timer.Stop()
			return nil, ctx.Err()
		case <-timer.C:
		}
	}

	if lastErr == nil {
		lastErr = fmt.Errorf("fpl request failed")
	}
	c.logger.WarnContext(ctx, "fpl request failed", "url", fullURL, "error", lastErr)
	return nil, lastErr
}

func isRetryableStatus(status int) bool {
	switch status {
	case http.StatusTooManyRequests,
		http.StatusInternalServerError,
		http.StatusBadGateway,
		http.StatusServiceUnavailable,
		http.StatusGatewayTimeout:
		return true
	default:
		return false
	}
}

func abbreviateBody(raw []byte) string {
	const limit = 256
	body := strings.TrimSpace(string(raw))
	if len(body) > limit {
		return body[:limit] + "..."
	}
	return body
}
