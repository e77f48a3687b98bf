package babel

import (
	"context"
	"fmt"
	"io"
	"net/http"

	"github.com/google/uuid"
	"github.com/hashicorp/go-hclog"
)

// Client talks to a Babel server. It is safe for concurrent use; nothing in it
// changes after NewClient returns.
type Client struct {
	baseURL     string
	enableDebug bool
	httpClient  HTTPClient
	hasher      Hasher
	logger      hclog.Logger
}

// NewClient validates cfg and returns a Client. The returned error is a
// *ConfigError wrapping ErrMissingHost, ErrMissingPort or ErrInvalidHost.
func NewClient(cfg Config) (*Client, error) {
	if err := validateConfig(cfg); err != nil {
		return nil, err
	}

	cfg = cfg.withDefaults()

	return &Client{
		baseURL:     cfg.baseURL(),
		enableDebug: cfg.EnableDebug,
		httpClient:  cfg.HTTPClient,
		hasher:      cfg.Hasher,
		logger:      cfg.Logger.Named("babel-client"),
	}, nil
}

// GetTargetFeed returns the annotations feed for a target. With
// opts.Hydrate the feed contains the annotations themselves.
func (c *Client) GetTargetFeed(
	ctx context.Context, target, token string, opts TargetFeedOptions,
) (*Response, error) {
	if err := validateTargetFeed(target, token); err != nil {
		return nil, err
	}

	req, err := c.newRequest(
		ctx, http.MethodGet, c.targetFeedURL(target, opts), token, nil)
	if err != nil {
		return nil, err
	}

	return c.do(req)
}

// GetFeeds returns a single hydrated feed merged from several feed ids.
func (c *Client) GetFeeds(
	ctx context.Context, feedIDs FeedIDs, token string,
) (*Response, error) {
	if err := validateFeeds(feedIDs, token); err != nil {
		return nil, err
	}

	req, err := c.newRequest(
		ctx, http.MethodGet, c.feedsURL(feedIDs), token, nil)
	if err != nil {
		return nil, err
	}

	return c.do(req)
}

// GetAnnotations queries annotations. A nil query lists without filters.
func (c *Client) GetAnnotations(
	ctx context.Context, token string, query Query,
) (*Response, error) {
	if err := validateAnnotations(token); err != nil {
		return nil, err
	}

	req, err := c.newRequest(
		ctx, http.MethodGet, c.annotationsURL(query), token, nil)
	if err != nil {
		return nil, err
	}

	return c.do(req)
}

// CreateAnnotation posts a new annotation. The draft is validated first and
// sent as is.
func (c *Client) CreateAnnotation(
	ctx context.Context, token string, draft *Annotation, opts CreateOptions,
) (*Response, error) {
	if err := validateDraft(token, draft); err != nil {
		return nil, err
	}

	req, err := c.newRequest(
		ctx, http.MethodPost, c.annotationsURL(nil), token, draft)
	if err != nil {
		return nil, err
	}

	// The header is left out unless forced; Babel treats absence as false.
	if opts.ForceSynchronousIngest {
		req.Header.Set(headerIngestSynchronously, "true")
	}

	return c.do(req)
}

// do sends req once and normalizes the outcome.
func (c *Client) do(req *http.Request) (*Response, error) {
	logger := c.logger
	if c.enableDebug {
		logger = logger.With("request_id", uuid.NewString())
		logger.Debug("sending request",
			"method", req.Method,
			"url", req.URL.String(),
			"headers", headerFields(req.Header),
		)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, c.logFailure(logger, &TransportError{Err: err})
	}

	var raw []byte
	if resp.Body != nil {
		defer resp.Body.Close()
		raw, err = io.ReadAll(resp.Body)
		if err != nil {
			return nil, c.logFailure(logger, &TransportError{
				Err: fmt.Errorf("error reading response body: %w", err),
			})
		}
	}

	result, err := normalize(resp.StatusCode, raw)
	if err != nil {
		return nil, c.logFailure(logger, err)
	}

	return result, nil
}

func (c *Client) logFailure(logger hclog.Logger, err error) error {
	if c.enableDebug {
		logger.Error("request failed", "error", err)
	}
	return err
}
