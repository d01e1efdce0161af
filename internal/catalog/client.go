package catalog

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/abgdnv/storefront/pkg/web"
)

// Client talks to the remote catalog API. All calls are bound to the caller's
// context; there is no retry or caching layer, a failed call is reported to
// the caller and can be re-issued on demand.
type Client struct {
	baseURL string
	client  *http.Client
	logger  *slog.Logger
}

// NewClient creates a catalog client for the given base URL, e.g.
// "https://fakestoreapi.com".
func NewClient(baseURL string, timeout time.Duration, logger *slog.Logger) *Client {
	return &Client{
		baseURL: baseURL,
		client:  &http.Client{Timeout: timeout},
		logger:  logger.With("component", "catalog"),
	}
}

// newRequest builds an upstream request, forwarding the request ID from the
// context so upstream calls can be correlated with the originating request.
func (c *Client) newRequest(ctx context.Context, method, url string, body io.Reader) (*http.Request, error) {
	req, err := http.NewRequestWithContext(ctx, method, url, body)
	if err != nil {
		return nil, err
	}
	if reqID, found := web.GetRequestID(ctx); found {
		req.Header.Set("X-Request-Id", reqID)
	}
	return req, nil
}

// List retrieves all products from the catalog.
func (c *Client) List(ctx context.Context) ([]Product, error) {
	req, err := c.newRequest(ctx, http.MethodGet, c.baseURL+"/products", nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrFetchFailed, err)
	}
	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrFetchFailed, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if !is2xx(resp.StatusCode) {
		return nil, fmt.Errorf("%w: unexpected status %d", ErrFetchFailed, resp.StatusCode)
	}
	var products []Product
	if err := json.NewDecoder(resp.Body).Decode(&products); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrFetchFailed, err)
	}
	c.logger.DebugContext(ctx, "Fetched product list", "count", len(products))
	return products, nil
}

// Get retrieves a single product by its ID.
// Returns ErrNotFound if the catalog does not answer with a 2xx status.
func (c *Client) Get(ctx context.Context, id int) (*Product, error) {
	req, err := c.newRequest(ctx, http.MethodGet, fmt.Sprintf("%s/products/%d", c.baseURL, id), nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrNotFound, err)
	}
	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrNotFound, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if !is2xx(resp.StatusCode) {
		return nil, fmt.Errorf("%w: unexpected status %d", ErrNotFound, resp.StatusCode)
	}
	var product Product
	if err := json.NewDecoder(resp.Body).Decode(&product); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrNotFound, err)
	}
	return &product, nil
}

// Create adds a new product to the catalog. The catalog assigns the ID; the
// remaining fields of the returned product are the submitted draft.
func (c *Client) Create(ctx context.Context, draft Draft) (*Product, error) {
	draft = draft.withDefaults()
	body, err := json.Marshal(draft)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrCreateFailed, err)
	}
	req, err := c.newRequest(ctx, http.MethodPost, c.baseURL+"/products", bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrCreateFailed, err)
	}
	req.Header.Set("Content-Type", "application/json")
	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrCreateFailed, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if !is2xx(resp.StatusCode) {
		return nil, fmt.Errorf("%w: unexpected status %d", ErrCreateFailed, resp.StatusCode)
	}
	var assigned struct {
		ID int `json:"id"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&assigned); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrCreateFailed, err)
	}
	c.logger.InfoContext(ctx, "Product created", "id", assigned.ID, "title", draft.Title)
	return draft.toProduct(assigned.ID), nil
}

// Update replaces the product with the given ID. The returned product carries
// the ID from the request path; the response body is not trusted for it.
func (c *Client) Update(ctx context.Context, id int, draft Draft) (*Product, error) {
	draft = draft.withDefaults()
	body, err := json.Marshal(draft)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrUpdateFailed, err)
	}
	req, err := c.newRequest(ctx, http.MethodPut, fmt.Sprintf("%s/products/%d", c.baseURL, id), bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrUpdateFailed, err)
	}
	req.Header.Set("Content-Type", "application/json")
	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrUpdateFailed, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if !is2xx(resp.StatusCode) {
		return nil, fmt.Errorf("%w: unexpected status %d", ErrUpdateFailed, resp.StatusCode)
	}
	c.logger.InfoContext(ctx, "Product updated", "id", id, "title", draft.Title)
	return draft.toProduct(id), nil
}

// Delete removes the product with the given ID. Any 2xx response succeeds;
// the response body is ignored.
func (c *Client) Delete(ctx context.Context, id int) error {
	req, err := c.newRequest(ctx, http.MethodDelete, fmt.Sprintf("%s/products/%d", c.baseURL, id), nil)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrDeleteFailed, err)
	}
	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrDeleteFailed, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if !is2xx(resp.StatusCode) {
		return fmt.Errorf("%w: unexpected status %d", ErrDeleteFailed, resp.StatusCode)
	}
	c.logger.InfoContext(ctx, "Product deleted", "id", id)
	return nil
}

func (d Draft) withDefaults() Draft {
	if d.Image == "" {
		d.Image = PlaceholderImage
	}
	return d
}

func (d Draft) toProduct(id int) *Product {
	return &Product{
		ID:          id,
		Title:       d.Title,
		Price:       d.Price,
		Description: d.Description,
		Category:    d.Category,
		Image:       d.Image,
	}
}

func is2xx(status int) bool {
	return status >= 200 && status < 300
}
