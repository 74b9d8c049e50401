package ddragon

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"go.uber.org/zap"

	casterr "github.com/KirkDiggler/lol-cast-engine/internal/errors"
)

const (
	DefaultBaseURL = "https://ddragon.leagueoflegends.com"
	DefaultTimeout = 10 * time.Second
)

type client struct {
	baseURL string
	http    *http.Client
	logger  *zap.Logger
}

type Config struct {
	// BaseURL defaults to DefaultBaseURL
	BaseURL    string
	HTTPClient *http.Client
	// Timeout applies when HTTPClient is nil
	Timeout time.Duration
	Logger  *zap.Logger
}

func New(cfg *Config) (Client, error) {
	if cfg == nil {
		cfg = &Config{}
	}

	baseURL := strings.TrimRight(cfg.BaseURL, "/")
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if _, err := url.Parse(baseURL); err != nil {
		return nil, casterr.WrapWithCode(err, casterr.CodeInvalidArgument, "invalid data dragon base url")
	}

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		timeout := cfg.Timeout
		if timeout <= 0 {
			timeout = DefaultTimeout
		}
		httpClient = &http.Client{Timeout: timeout}
	}

	logger := cfg.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	return &client{
		baseURL: baseURL,
		http:    httpClient,
		logger:  logger,
	}, nil
}

func (c *client) LatestVersion(ctx context.Context) (string, error) {
	var versions []string
	if err := c.get(ctx, c.baseURL+"/api/versions.json", &versions); err != nil {
		return "", err
	}
	if len(versions) == 0 || versions[0] == "" {
		return "", casterr.Validation("data dragon returned no versions")
	}
	return versions[0], nil
}

func (c *client) GetChampion(ctx context.Context, version, id string) (*Champion, error) {
	if version == "" {
		return nil, casterr.InvalidArgument("version is required")
	}
	if id == "" {
		return nil, casterr.InvalidArgument("champion id is required")
	}

	endpoint := fmt.Sprintf("%s/cdn/%s/data/en_US/champion/%s.json",
		c.baseURL, url.PathEscape(version), url.PathEscape(id))

	var resp championResponse
	if err := c.get(ctx, endpoint, &resp); err != nil {
		return nil, err
	}

	data, ok := resp.find(id)
	if !ok {
		return nil, casterr.Validationf("champion %s missing from data dragon response", id).
			WithMeta("version", version)
	}

	costs, err := data.costTable()
	if err != nil {
		return nil, casterr.WrapWithCode(err, casterr.CodeValidation, "unexpected spell data for "+id).
			WithMeta("version", version)
	}

	c.logger.Debug("champion data fetched",
		zap.String("champion", data.ID),
		zap.String("version", version))

	return &Champion{
		ID:      data.ID,
		Name:    data.Name,
		Version: version,
		Costs:   costs,
	}, nil
}

func (c *client) get(ctx context.Context, endpoint string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return casterr.WrapWithCode(err, casterr.CodeInvalidArgument, "failed to build request")
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return casterr.WrapWithCode(err, casterr.CodeUnavailable, "data dragon request failed").
			WithMeta("url", endpoint)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return casterr.NotFoundf("data dragon has no %s", endpoint)
	case resp.StatusCode != http.StatusOK:
		return casterr.Unavailablef("data dragon returned %s", resp.Status).WithMeta("url", endpoint)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return casterr.WrapWithCode(err, casterr.CodeValidation, "failed to decode data dragon response").
			WithMeta("url", endpoint)
	}
	return nil
}
