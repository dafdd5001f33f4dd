// Package client is the typed HTTP client for the inventory API. Every call
// takes a context so a torn-down view cancels its in-flight requests.
package client

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-resty/resty/v2"
)

// Options configures a Client.
type Options struct {
	BaseURL string
	APIKey  string
	Timeout time.Duration
	Debug   bool
	Logger  *log.Logger
}

// Client provides access to the API's resource services.
type Client struct {
	http *resty.Client
	log  *log.Logger

	users      *UsersService
	countries  *CountriesService
	categories *CategoriesService
	statistics *StatisticsService
}

// New validates the options and builds a client.
func New(opts Options) (*Client, error) {
	if err := validateBaseURL(opts.BaseURL); err != nil {
		return nil, err
	}
	if opts.Timeout <= 0 {
		opts.Timeout = 15 * time.Second
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.Default()
	}

	httpClient := resty.New().
		SetBaseURL(opts.BaseURL).
		SetTimeout(opts.Timeout).
		SetHeader("Content-Type", "application/json").
		SetHeader("Accept", "application/json").
		SetRetryCount(2).
		SetRetryWaitTime(100 * time.Millisecond).
		SetRetryMaxWaitTime(time.Second)

	if opts.APIKey != "" {
		httpClient.SetHeader("Authorization", "Bearer "+opts.APIKey)
	}
	if opts.Debug {
		httpClient.SetDebug(true)
	}

	// Mutations are never retried automatically; each failure is surfaced
	// to the operator who triggered it.
	httpClient.AddRetryCondition(func(r *resty.Response, err error) bool {
		if r != nil && r.Request != nil && r.Request.Method != http.MethodGet {
			return false
		}
		if err != nil {
			return true
		}
		if r == nil {
			return false
		}
		code := r.StatusCode()
		return code >= 500 || code == http.StatusTooManyRequests || code == http.StatusRequestTimeout
	})

	c := &Client{http: httpClient, log: logger}
	c.users = &UsersService{client: c}
	c.countries = &CountriesService{client: c}
	c.categories = &CategoriesService{client: c}
	c.statistics = &StatisticsService{client: c}
	return c, nil
}

func validateBaseURL(raw string) error {
	parsed, err := url.Parse(raw)
	if err != nil {
		return fmt.Errorf("invalid base URL: %w", err)
	}
	if !parsed.IsAbs() || parsed.Host == "" {
		return fmt.Errorf("base URL must be absolute with a host, got %q", raw)
	}
	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return fmt.Errorf("base URL scheme must be http or https, got %q", parsed.Scheme)
	}
	return nil
}

// Users returns the user administration service.
func (c *Client) Users() *UsersService { return c.users }

// Countries returns the country reference-data service.
func (c *Client) Countries() *CountriesService { return c.countries }

// Categories returns the category reference-data service.
func (c *Client) Categories() *CategoriesService { return c.categories }

// Statistics returns the dashboard and purge service.
func (c *Client) Statistics() *StatisticsService { return c.statistics }

// APIError is an error response from the API. Detail carries the wire
// `detail` field and is surfaced to the operator verbatim when present.
type APIError struct {
	StatusCode int    `json:"-"`
	Detail     string `json:"detail"`
}

func (e *APIError) Error() string {
	if e.Detail != "" {
		return e.Detail
	}
	return fmt.Sprintf("request failed with status %d", e.StatusCode)
}

// doRequest performs a request and decodes the result or the error body.
func (c *Client) doRequest(ctx context.Context, method, path string, body, result any) error {
	req := c.http.R().SetContext(ctx).SetError(&APIError{})
	if body != nil {
		req.SetBody(body)
	}
	if result != nil {
		req.SetResult(result)
	}

	resp, err := req.Execute(method, path)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}

	if resp.StatusCode() >= 400 {
		if apiErr, ok := resp.Error().(*APIError); ok && apiErr != nil {
			apiErr.StatusCode = resp.StatusCode()
			return apiErr
		}
		return &APIError{StatusCode: resp.StatusCode()}
	}

	c.log.Debug("request completed", "method", method, "path", path, "status", resp.StatusCode())
	return nil
}
