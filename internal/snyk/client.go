package snyk

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/nao1215/snykdup/internal/config"
	"github.com/nao1215/snykdup/internal/model"
)

const (
	// contentType is the JSON:API media type the Snyk REST API expects.
	contentType = "application/vnd.api+json"

	// defaultUserAgent identifies snykdup in HTTP requests.
	// A descriptive User-Agent lets API operators identify tool traffic.
	defaultUserAgent = "snykdup/1.0 (+https://github.com/nao1215/snykdup)"

	// defaultTimeout is the per-request timeout of the default HTTP client.
	defaultTimeout = 30 * time.Second

	// defaultMaxBodySize limits the response body size to read.
	// 20MB is far beyond any single projects page while preventing memory
	// exhaustion from unexpected responses.
	defaultMaxBodySize = 20 * 1024 * 1024
)

// Client talks to the Snyk REST API.
// It authenticates every request with the configured token and paginates the
// projects collection by following server-supplied next links.
//
// Design decision: We use a struct holding the http.Client rather than
// passing the client on each call because:
//  1. Client configuration (timeouts, headers) should be consistent
//  2. Connection pooling works better with a shared client
//  3. Easier to test with httptest servers
type Client struct {
	// httpClient performs the actual requests.
	httpClient *http.Client

	// baseURL is the REST API base, e.g. "https://api.eu.snyk.io/rest".
	baseURL string

	// domainRoot is the scheme+host of baseURL. Relative next links are
	// resolved against it.
	domainRoot string

	// apiVersion is the REST API version date sent with the first request.
	apiVersion string

	// token is the Snyk API token.
	token string

	// pageLimit is the page size requested from the projects collection.
	pageLimit int

	// userAgent is the User-Agent header to use for requests.
	userAgent string

	// maxBodySize limits the response body size to prevent memory exhaustion.
	maxBodySize int64

	// logger for structured diagnostics.
	logger *slog.Logger
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient sets a custom HTTP client.
// Useful for tests and for callers that need custom transports.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.httpClient = hc
	}
}

// WithBaseURL sets the REST API base URL.
// Default is config.DefaultEndpoint.
func WithBaseURL(baseURL string) Option {
	return func(c *Client) {
		c.baseURL = baseURL
	}
}

// WithAPIVersion sets the REST API version date.
func WithAPIVersion(version string) Option {
	return func(c *Client) {
		c.apiVersion = version
	}
}

// WithPageLimit sets the page size for the projects collection.
// The API requires a multiple of 10, at least 10.
func WithPageLimit(limit int) Option {
	return func(c *Client) {
		c.pageLimit = limit
	}
}

// WithUserAgent sets a custom User-Agent header.
func WithUserAgent(ua string) Option {
	return func(c *Client) {
		c.userAgent = ua
	}
}

// WithLogger sets a custom logger for fetch diagnostics.
func WithLogger(logger *slog.Logger) Option {
	return func(c *Client) {
		c.logger = logger
	}
}

// NewClient creates a Snyk REST API client authenticating with token.
//
// The constructor validates the token and base URL but performs no network
// I/O; the first request happens in FetchOrgProjects.
func NewClient(token string, opts ...Option) (*Client, error) {
	if token == "" {
		return nil, ErrNoToken
	}

	c := &Client{
		httpClient:  &http.Client{Timeout: defaultTimeout},
		baseURL:     config.DefaultEndpoint,
		apiVersion:  config.DefaultAPIVersion,
		token:       token,
		pageLimit:   config.DefaultPageLimit,
		userAgent:   defaultUserAgent,
		maxBodySize: defaultMaxBodySize,
		logger:      slog.Default(),
	}

	for _, opt := range opts {
		opt(c)
	}

	u, err := url.Parse(c.baseURL)
	if err != nil || u.Host == "" || (u.Scheme != "http" && u.Scheme != "https") {
		return nil, fmt.Errorf("%w: %q", ErrInvalidBaseURL, c.baseURL)
	}
	c.domainRoot = u.Scheme + "://" + u.Host

	return c, nil
}

// FetchOrgProjects retrieves every project of the organization along with a
// map from target ID to the target records embedded in the responses.
//
// Pagination follows the server's next link verbatim; only the first request
// carries query parameters, since followed links already encode them. A page
// whose body contains an errors array soft-stops the loop: the errors are
// logged and whatever was accumulated so far is returned without an error.
// Transport failures and non-2xx statuses abort with an error.
func (c *Client) FetchOrgProjects(ctx context.Context, orgID string) ([]model.Project, map[string]model.Target, error) {
	pageURL, err := c.firstPageURL(orgID)
	if err != nil {
		return nil, nil, err
	}

	var projects []model.Project
	targets := make(map[string]model.Target)
	pageCount := 0

	for pageURL != "" {
		page, err := c.fetchPage(ctx, pageURL)
		if err != nil {
			return nil, nil, err
		}
		pageCount++

		if len(page.Errors) > 0 {
			c.logger.Warn("API returned errors, stopping pagination",
				"page", pageCount,
				"errors", formatAPIErrors(page.Errors),
			)
			break
		}

		projects = append(projects, page.Data...)

		for _, included := range page.Included {
			if included.Type != model.TargetResourceType {
				continue
			}
			// Last write wins; duplicate target records across pages are
			// identical in practice.
			targets[included.ID] = included
		}

		c.logger.Info("fetched projects page",
			"page", pageCount,
			"projects", len(page.Data),
			"totalProjects", len(projects),
			"totalTargets", len(targets),
		)

		pageURL = c.resolveNextLink(page.Links.Next)
	}

	return projects, targets, nil
}

// firstPageURL builds the initial projects collection URL with the version,
// expansion, and limit query parameters.
func (c *Client) firstPageURL(orgID string) (string, error) {
	u, err := url.Parse(fmt.Sprintf("%s/orgs/%s/projects", strings.TrimSuffix(c.baseURL, "/"), url.PathEscape(orgID)))
	if err != nil {
		return "", fmt.Errorf("snyk: failed to build projects URL: %w", err)
	}

	q := u.Query()
	q.Set("version", c.apiVersion)
	q.Set("expand", "target")
	q.Set("limit", strconv.Itoa(c.pageLimit))
	u.RawQuery = q.Encode()

	return u.String(), nil
}

// resolveNextLink turns the server-supplied next link into a requestable URL.
// A relative link (leading "/") is resolved against the API's domain root;
// an absolute link is used as-is. An empty link means pagination is done.
func (c *Client) resolveNextLink(next string) string {
	if next == "" {
		return ""
	}
	if strings.HasPrefix(next, "/") {
		return c.domainRoot + next
	}
	return next
}

// fetchPage performs a single GET against pageURL and decodes the response.
func (c *Client) fetchPage(ctx context.Context, pageURL string) (*model.ProjectsPage, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, pageURL, nil)
	if err != nil {
		return nil, fmt.Errorf("snyk: failed to create request: %w", err)
	}

	req.Header.Set("Authorization", "token "+c.token)
	req.Header.Set("Content-Type", contentType)
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("snyk: request failed: %w", err)
	}
	defer resp.Body.Close() //nolint:errcheck // Read-only body

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, 512)) //nolint:errcheck // Best effort diagnostics
		return nil, fmt.Errorf("%w: %d %s: %s",
			ErrUnexpectedStatus, resp.StatusCode, http.StatusText(resp.StatusCode), strings.TrimSpace(string(snippet)))
	}

	var page model.ProjectsPage
	decoder := json.NewDecoder(io.LimitReader(resp.Body, c.maxBodySize))
	if err := decoder.Decode(&page); err != nil {
		return nil, fmt.Errorf("snyk: failed to decode response: %w", err)
	}

	return &page, nil
}

// formatAPIErrors renders API error objects for log output.
func formatAPIErrors(errs []model.APIError) string {
	parts := make([]string, 0, len(errs))
	for _, e := range errs {
		var sb strings.Builder
		if e.Status != "" {
			sb.WriteString(e.Status)
			sb.WriteString(" ")
		}
		if e.Title != "" {
			sb.WriteString(e.Title)
		}
		if e.Detail != "" {
			if sb.Len() > 0 {
				sb.WriteString(": ")
			}
			sb.WriteString(e.Detail)
		}
		if sb.Len() == 0 {
			sb.WriteString("unknown error")
		}
		parts = append(parts, sb.String())
	}
	return strings.Join(parts, "; ")
}
