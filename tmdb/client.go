// Package tmdb is a small client for The Movie Database API v3.
//
// Each call performs exactly one HTTP request. Nothing is retried or cached.
package tmdb

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"cinecatalog/config"
)

const (
	DefaultBaseURL      = "https://api.themoviedb.org/3"
	DefaultImageBaseURL = "https://image.tmdb.org/t/p"
	DefaultLanguage     = "en-EN"
)

var (
	ErrNotFound     = errors.New("tmdb: not found")
	ErrUnauthorized = errors.New("tmdb: invalid API key")
	ErrMissingKey   = errors.New("tmdb: API key not set")
)

// APIError is returned for non-200 responses other than 401 and 404.
type APIError struct {
	Status int
	Path   string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("tmdb: HTTP %d for %s", e.Status, e.Path)
}

type Client struct {
	baseURL      string
	imageBaseURL string
	apiKey       string
	accessToken  string
	language     string
	httpClient   *http.Client
}

type Option func(*Client)

func WithBaseURL(u string) Option {
	return func(c *Client) { c.baseURL = strings.TrimRight(u, "/") }
}

func WithImageBaseURL(u string) Option {
	return func(c *Client) { c.imageBaseURL = strings.TrimRight(u, "/") }
}

func WithLanguage(lang string) Option {
	return func(c *Client) { c.language = lang }
}

// WithAccessToken authenticates with a v4 read access token instead of the
// api_key query parameter.
func WithAccessToken(token string) Option {
	return func(c *Client) { c.accessToken = token }
}

func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.httpClient = hc }
}

func NewClient(apiKey string, opts ...Option) *Client {
	c := &Client{
		baseURL:      DefaultBaseURL,
		imageBaseURL: DefaultImageBaseURL,
		apiKey:       apiKey,
		language:     DefaultLanguage,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// API is the process wide client used by the HTTP handlers.
var API *Client

func InitClient() {
	API = NewClient(config.Config.TMDBAPIKey,
		WithAccessToken(config.Config.TMDBAccessToken),
		WithBaseURL(config.Config.TMDBBaseURL),
		WithImageBaseURL(config.Config.TMDBImageURL),
		WithLanguage(config.Config.TMDBLanguage),
		WithHTTPClient(&http.Client{Timeout: config.Config.TMDBTimeout}),
	)
}

func (c *Client) getJSON(ctx context.Context, path string, query url.Values, dest any) error {
	body, err := c.get(ctx, path, query)
	if err != nil {
		return err
	}

	if err := json.Unmarshal(body, dest); err != nil {
		return fmt.Errorf("tmdb decode %s: %w", path, err)
	}

	return nil
}

func (c *Client) get(ctx context.Context, path string, query url.Values) ([]byte, error) {
	if c.apiKey == "" && c.accessToken == "" {
		return nil, ErrMissingKey
	}

	if query == nil {
		query = url.Values{}
	}
	if c.accessToken == "" {
		query.Set("api_key", c.apiKey)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path+"?"+query.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("tmdb request build: %w", err)
	}

	req.Header.Set("Accept", "application/json")
	if c.accessToken != "" {
		req.Header.Set("Authorization", "Bearer "+c.accessToken)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("tmdb request %s: %w", path, err)
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
	case http.StatusNotFound:
		return nil, fmt.Errorf("%w: %s", ErrNotFound, path)
	case http.StatusUnauthorized:
		return nil, ErrUnauthorized
	default:
		return nil, &APIError{Status: resp.StatusCode, Path: path}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("tmdb read %s: %w", path, err)
	}

	return body, nil
}
