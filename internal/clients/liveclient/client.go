package liveclient

import (
	"context"
	"crypto/tls"
	"encoding/json"
	"net/http"
	"strings"
	"time"

	casterr "github.com/KirkDiggler/lol-cast-engine/internal/errors"
)

// DefaultURL is where the game serves its live data
const DefaultURL = "https://127.0.0.1:2999"

type client struct {
	url  string
	http *http.Client
}

type Config struct {
	URL        string
	HTTPClient *http.Client
	// InsecureTLS accepts the game's self-signed certificate; ignored with HTTPClient
	InsecureTLS bool
	Timeout     time.Duration
}

func New(cfg *Config) Client {
	if cfg == nil {
		cfg = &Config{}
	}

	url := strings.TrimRight(cfg.URL, "/")
	if url == "" {
		url = DefaultURL
	}

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		timeout := cfg.Timeout
		if timeout <= 0 {
			timeout = time.Second
		}
		transport := http.DefaultTransport.(*http.Transport).Clone()
		if cfg.InsecureTLS {
			transport.TLSClientConfig = &tls.Config{InsecureSkipVerify: true} //nolint:gosec // local self-signed endpoint
		}
		httpClient = &http.Client{Timeout: timeout, Transport: transport}
	}

	return &client{url: url, http: httpClient}
}

func (c *client) Snapshot(ctx context.Context) (*Snapshot, error) {
	endpoint := c.url + "/liveclientdata/allgamedata"
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, casterr.WrapWithCode(err, casterr.CodeInvalidArgument, "failed to build live client request")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, casterr.WrapWithCode(err, casterr.CodeUnavailable, "live client request failed")
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		// the game answers 404 while loading into a match
		return nil, casterr.Unavailablef("live client returned %s", resp.Status)
	}

	var data allGameData
	if err := json.NewDecoder(resp.Body).Decode(&data); err != nil {
		return nil, casterr.WrapWithCode(err, casterr.CodeValidation, "failed to decode live client data")
	}
	return data.snapshot(), nil
}
