package canvas

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"
)

// ErrNotFound is matched by errors for compositions the API does not know.
var ErrNotFound = errors.New("composition not found")

// CompositionFetcher defines the read operations uniterm needs from the
// Canvas API. It is implemented by *Client and can be faked in tests.
type CompositionFetcher interface {
	CompositionBySlug(ctx context.Context, slug string, state State) (*ComponentInstance, error)
	CompositionByID(ctx context.Context, id string, state State) (*ComponentInstance, error)
	CompositionList(ctx context.Context, state State) ([]ListEntry, error)
}

// Ensure Client implements CompositionFetcher at compile time.
var _ CompositionFetcher = (*Client)(nil)

// Options configure a Client.
type Options struct {
	APIKey    string
	ProjectID string
	APIHost   string
}

// Client talks to the Uniform Canvas HTTP API.
type Client struct {
	baseURL   *url.URL
	http      *http.Client
	apiKey    string
	projectID string
	userAgent string
}

const (
	// DefaultAPIHost is used when Options.APIHost is empty.
	DefaultAPIHost   = "https://api.uniform.app"
	defaultUserAgent = "uniterm/0.1"
	requestTimeout   = 10 * time.Second
	canvasPath       = "/api/v1/canvas"
	maxErrorBody     = 512
)

// APIError describes a non-success response from the API.
type APIError struct {
	Endpoint   string
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("api %s returned status %d", e.Endpoint, e.StatusCode)
	}
	return fmt.Sprintf("api %s returned status %d: %s", e.Endpoint, e.StatusCode, e.Message)
}

// Is lets errors.Is(err, ErrNotFound) match 404 responses.
func (e *APIError) Is(target error) bool {
	return target == ErrNotFound && e.StatusCode == http.StatusNotFound
}

// NewClient builds a Client for the given project.
func NewClient(opts Options) (*Client, error) {
	base, err := parseBaseURL(opts.APIHost)
	if err != nil {
		return nil, err
	}
	return &Client{
		baseURL: base,
		http: &http.Client{
			Timeout: requestTimeout,
		},
		apiKey:    strings.TrimSpace(opts.APIKey),
		projectID: strings.TrimSpace(opts.ProjectID),
		userAgent: defaultUserAgent,
	}, nil
}

// BaseURL returns the API host the client talks to.
func (c *Client) BaseURL() string {
	if c == nil || c.baseURL == nil {
		return ""
	}
	return c.baseURL.String()
}

// CompositionBySlug fetches the composition published under slug. A
// successful response without a composition returns (nil, nil).
func (c *Client) CompositionBySlug(ctx context.Context, slug string, state State) (*ComponentInstance, error) {
	if c == nil {
		return nil, fmt.Errorf("client is nil")
	}
	values := c.query(state)
	values.Set("slug", slug)
	var payload CompositionResponse
	if err := c.get(ctx, values, &payload); err != nil {
		return nil, err
	}
	return payload.Composition, nil
}

// CompositionByID fetches a composition by its id.
func (c *Client) CompositionByID(ctx context.Context, id string, state State) (*ComponentInstance, error) {
	if c == nil {
		return nil, fmt.Errorf("client is nil")
	}
	id = strings.TrimSpace(id)
	if id == "" {
		return nil, fmt.Errorf("composition id required")
	}
	values := c.query(state)
	values.Set("compositionId", id)
	var payload CompositionResponse
	if err := c.get(ctx, values, &payload); err != nil {
		return nil, err
	}
	return payload.Composition, nil
}

// CompositionList fetches every composition in the project.
func (c *Client) CompositionList(ctx context.Context, state State) ([]ListEntry, error) {
	if c == nil {
		return nil, fmt.Errorf("client is nil")
	}
	var payload ListResponse
	if err := c.get(ctx, c.query(state), &payload); err != nil {
		return nil, err
	}
	return payload.Compositions, nil
}

func (c *Client) query(state State) url.Values {
	values := url.Values{}
	values.Set("projectId", c.projectID)
	values.Set("state", strconv.Itoa(int(state)))
	return values
}

func (c *Client) get(ctx context.Context, values url.Values, dest any) error {
	rel := &url.URL{Path: canvasPath, RawQuery: values.Encode()}
	reqURL := c.baseURL.ResolveReference(rel)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL.String(), nil)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", c.userAgent)
	if c.apiKey != "" {
		req.Header.Set("x-api-key", c.apiKey)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("execute request: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode >= 400 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return &APIError{
			Endpoint:   rel.Path,
			StatusCode: resp.StatusCode,
			Message:    errorMessage(body),
		}
	}
	if dest == nil {
		return nil
	}
	decoder := json.NewDecoder(resp.Body)
	if err := decoder.Decode(dest); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

// errorMessage extracts a readable message from an error body, preferring
// the API's JSON errorMessage field.
func errorMessage(body []byte) string {
	var payload struct {
		ErrorMessage string `json:"errorMessage"`
		Message      string `json:"message"`
	}
	if err := json.Unmarshal(body, &payload); err == nil {
		if msg := strings.TrimSpace(payload.ErrorMessage); msg != "" {
			return msg
		}
		if msg := strings.TrimSpace(payload.Message); msg != "" {
			return msg
		}
	}
	return strings.TrimSpace(string(body))
}

func parseBaseURL(apiHost string) (*url.URL, error) {
	trimmed := strings.TrimSpace(apiHost)
	if trimmed == "" {
		trimmed = DefaultAPIHost
	}
	if !strings.Contains(trimmed, "://") {
		trimmed = "https://" + trimmed
	}
	u, err := url.Parse(trimmed)
	if err != nil {
		return nil, fmt.Errorf("parse api host %q: %w", apiHost, err)
	}
	if u.Host == "" {
		return nil, fmt.Errorf("parse api host %q: missing host", apiHost)
	}
	u.Path = ""
	u.RawQuery = ""
	u.Fragment = ""
	return u, nil
}
