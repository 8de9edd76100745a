package stats

import (
	"context"
	"encoding/json"
	"fmt"
	"foldingbot/internal/core/domain"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/rs/zerolog/log"
)

const (
	nextDistroPath = "/v1/GetDistro/Next"
	membersPath    = "/v1/GetMembers"
)

// RequestObserver receives one observation per API request.
type RequestObserver interface {
	ObserveAPIRequest(endpoint string, status int, duration time.Duration)
}

// Folding is a client for the folding team stats API. Every call is a single GET with the
// transport's default timeout and no retries.
type Folding struct {
	baseURL  *url.URL
	client   *http.Client
	observer RequestObserver
}

func NewFolding(apiURI string, client *http.Client, observer RequestObserver) (*Folding, error) {
	base, err := url.Parse(apiURI)
	if err != nil {
		return nil, fmt.Errorf("invalid stats api uri: %w", err)
	}

	if !base.IsAbs() {
		return nil, fmt.Errorf("stats api uri must be absolute: %q", apiURI)
	}

	if client == nil {
		client = &http.Client{}
	}

	return &Folding{baseURL: base, client: client, observer: observer}, nil
}

func (f *Folding) NextDistro(ctx context.Context) (*domain.DistroResponse, error) {
	var result domain.DistroResponse
	if err := f.get(ctx, nextDistroPath, &result); err != nil {
		return nil, err
	}

	if !result.Success {
		return nil, fmt.Errorf("%w: distro response reported failure", domain.ErrAPIUnavailable)
	}

	return &result, nil
}

func (f *Folding) Members(ctx context.Context) (*domain.MembersResponse, error) {
	var result domain.MembersResponse
	if err := f.get(ctx, membersPath, &result); err != nil {
		return nil, err
	}

	if !result.Success {
		return nil, fmt.Errorf("%w: members response reported failure", domain.ErrAPIUnavailable)
	}

	return &result, nil
}

func (f *Folding) get(ctx context.Context, path string, result any) error {
	requestURI := f.baseURL.ResolveReference(&url.URL{Path: path}).String()

	l := log.With().Str("uri", requestURI).Logger()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, requestURI, nil)
	if err != nil {
		l.Error().Err(err).Msg("error creating GET request for stats api")
		return fmt.Errorf("%w: %w", domain.ErrAPIUnavailable, err)
	}

	l.Info().Msg("starting GET from stats api")
	start := time.Now()

	res, err := f.client.Do(req)
	if err != nil {
		f.observe(path, 0, start)
		l.Error().Err(err).Msg("error executing stats api request")
		return fmt.Errorf("%w: %w", domain.ErrAPIUnavailable, err)
	}
	defer res.Body.Close()

	body, err := io.ReadAll(res.Body)
	f.observe(path, res.StatusCode, start)
	if err != nil {
		l.Error().Err(err).Msg("error reading stats api response")
		return fmt.Errorf("%w: %w", domain.ErrAPIUnavailable, err)
	}

	l.Info().Int("status", res.StatusCode).Msg("finished GET from stats api")

	if res.StatusCode < 200 || res.StatusCode > 299 {
		l.Error().Int("status", res.StatusCode).Bytes("body", body).Msg("unexpected status code from stats api")
		return fmt.Errorf("%w: unexpected status code %d", domain.ErrAPIUnavailable, res.StatusCode)
	}

	l.Trace().Bytes("body", body).Msg("stats api response")

	if err := json.Unmarshal(body, result); err != nil {
		l.Error().Err(err).Msg("error unmarshalling stats api response")
		return fmt.Errorf("%w: %w", domain.ErrAPIUnavailable, err)
	}

	return nil
}

func (f *Folding) observe(endpoint string, status int, start time.Time) {
	if f.observer == nil {
		return
	}

	f.observer.ObserveAPIRequest(endpoint, status, time.Since(start))
}
