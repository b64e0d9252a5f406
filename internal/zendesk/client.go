package zendesk

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"github.com/hcaudit/hcaudit/internal/model"
)

// DefaultLocale is used when no locale is configured.
const DefaultLocale = "en-us"

// DefaultTimeout bounds every API request.
const DefaultTimeout = 30 * time.Second

// defaultPerPage is the page size for article listing.
const defaultPerPage = 30

// Client talks to the Zendesk Help Center API.
type Client struct {
	// baseURL is the help center API root, normally derived from the
	// subdomain.
	baseURL string

	// email and token authenticate as "email/token" basic auth.
	email string
	token string

	// locale selects the content locale for every request.
	locale string

	// client is the underlying HTTP client.
	client *http.Client

	// logger for structured logging.
	logger *slog.Logger
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(client *http.Client) Option {
	return func(c *Client) {
		c.client = client
	}
}

// WithLogger sets a custom logger.
func WithLogger(logger *slog.Logger) Option {
	return func(c *Client) {
		c.logger = logger
	}
}

// WithBaseURL overrides the API root derived from the subdomain.
func WithBaseURL(baseURL string) Option {
	return func(c *Client) {
		c.baseURL = baseURL
	}
}

// WithLocale sets the content locale.
func WithLocale(locale string) Option {
	return func(c *Client) {
		c.locale = locale
	}
}

// New creates a Client for the given Zendesk subdomain.
func New(subdomain, email, token string, opts ...Option) *Client {
	c := &Client{
		baseURL: fmt.Sprintf("https://%s.zendesk.com/api/v2/help_center", subdomain),
		email:   email,
		token:   token,
		locale:  DefaultLocale,
		client:  &http.Client{Timeout: DefaultTimeout},
		logger:  slog.Default(),
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// articlePayload mirrors the API's article representation.
type articlePayload struct {
	ID        int64  `json:"id"`
	Title     string `json:"title"`
	Body      string `json:"body"`
	HTMLURL   string `json:"html_url"`
	SectionID int64  `json:"section_id"`
}

func (p articlePayload) toModel(locale string) model.Article {
	return model.Article{
		ID:        p.ID,
		Title:     p.Title,
		Body:      p.Body,
		URL:       p.HTMLURL,
		SectionID: p.SectionID,
		Locale:    locale,
	}
}

// GetArticle fetches one article by locator (bare id or URL). The
// section name lookup is best-effort: a failing section request leaves
// SectionName empty rather than failing the fetch.
func (c *Client) GetArticle(ctx context.Context, locator string) (*model.Article, error) {
	id, err := ExtractArticleID(locator)
	if err != nil {
		return nil, err
	}

	var payload struct {
		Article articlePayload `json:"article"`
	}
	endpoint := fmt.Sprintf("%s/%s/articles/%d", c.baseURL, c.locale, id)
	if err := c.getJSON(ctx, endpoint, &payload); err != nil {
		return nil, err
	}

	article := payload.Article.toModel(c.locale)
	article.Segment = ExtractSegment(locator)

	if article.SectionID != 0 {
		name, err := c.sectionName(ctx, article.SectionID)
		if err != nil {
			c.logger.Warn("section name lookup failed",
				"section_id", article.SectionID, "error", err)
		} else {
			article.SectionName = name
		}
	}

	return &article, nil
}

// sectionName fetches the display name of a section.
func (c *Client) sectionName(ctx context.Context, sectionID int64) (string, error) {
	var payload struct {
		Section struct {
			Name string `json:"name"`
		} `json:"section"`
	}
	endpoint := fmt.Sprintf("%s/%s/sections/%d", c.baseURL, c.locale, sectionID)
	if err := c.getJSON(ctx, endpoint, &payload); err != nil {
		return "", err
	}
	return payload.Section.Name, nil
}

// SearchArticles returns articles matching the query. Result bodies may
// be partial or empty; callers needing the full body should follow up
// with GetArticle.
func (c *Client) SearchArticles(ctx context.Context, query string) ([]model.Article, error) {
	endpoint := fmt.Sprintf("%s/articles/search?%s", c.baseURL, url.Values{
		"query":  {query},
		"locale": {c.locale},
	}.Encode())

	var payload struct {
		Results []articlePayload `json:"results"`
	}
	if err := c.getJSON(ctx, endpoint, &payload); err != nil {
		return nil, err
	}

	articles := make([]model.Article, 0, len(payload.Results))
	for _, result := range payload.Results {
		articles = append(articles, result.toModel(c.locale))
	}
	return articles, nil
}

// ListArticles returns every article in the help center, following the
// API's next_page cursor until exhausted.
func (c *Client) ListArticles(ctx context.Context) ([]model.Article, error) {
	endpoint := fmt.Sprintf("%s/%s/articles?per_page=%d", c.baseURL, c.locale, defaultPerPage)

	var articles []model.Article
	for endpoint != "" {
		var payload struct {
			Articles []articlePayload `json:"articles"`
			NextPage string           `json:"next_page"`
		}
		if err := c.getJSON(ctx, endpoint, &payload); err != nil {
			return nil, err
		}

		for _, entry := range payload.Articles {
			articles = append(articles, entry.toModel(c.locale))
		}
		endpoint = payload.NextPage
	}

	return articles, nil
}

// CheckConnection reports whether the configured credentials can read
// the help center. Any failure is reported as false, never an error.
func (c *Client) CheckConnection(ctx context.Context) bool {
	endpoint := fmt.Sprintf("%s/%s/articles?per_page=1", c.baseURL, c.locale)

	var payload struct{}
	if err := c.getJSON(ctx, endpoint, &payload); err != nil {
		c.logger.Debug("connectivity check failed", "error", err)
		return false
	}
	return true
}

// getJSON performs an authenticated GET and decodes the JSON body into
// out. Non-2xx statuses map onto the package sentinel errors.
func (c *Client) getJSON(ctx context.Context, endpoint string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrTransport, err)
	}
	req.SetBasicAuth(c.email+"/token", c.token)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrTransport, err)
	}
	defer func() { _ = resp.Body.Close() }()

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return fmt.Errorf("%w: %s", ErrNotFound, endpoint)
	case resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden:
		return fmt.Errorf("%w: status %d", ErrAuth, resp.StatusCode)
	case resp.StatusCode < 200 || resp.StatusCode >= 300:
		return fmt.Errorf("%w: status %d", ErrTransport, resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("%w: decode response: %v", ErrTransport, err)
	}
	return nil
}
