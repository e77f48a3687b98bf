package babel

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
)

const (
	headerAccept              = "Accept"
	headerAuthorization       = "Authorization"
	headerContentType         = "Content-Type"
	headerIngestSynchronously = "X-Ingest-Synchronously"

	mediaTypeJSON = "application/json"
)

// TargetFeedOptions control GetTargetFeed.
type TargetFeedOptions struct {
	// Hydrate returns the annotations themselves rather than their ids.
	Hydrate bool
}

// CreateOptions control CreateAnnotation.
type CreateOptions struct {
	// ForceSynchronousIngest asks Babel to finish ingesting the annotation
	// before responding.
	ForceSynchronousIngest bool
}

func (c *Client) targetFeedURL(target string, opts TargetFeedOptions) string {
	u := c.baseURL + "/feeds/targets/" + c.hasher(target) + "/activity/annotations"
	if opts.Hydrate {
		u += "/hydrate"
	}
	return u
}

func (c *Client) feedsURL(feedIDs FeedIDs) string {
	return c.baseURL + "/feeds/annotations/hydrate?feed_ids=" + url.QueryEscape(feedIDs.Join())
}

func (c *Client) annotationsURL(q Query) string {
	u := c.baseURL + "/annotations"
	if enc := q.Encode(); enc != "" {
		u += "?" + enc
	}
	return u
}

// newRequest builds a request carrying the headers every Babel call needs.
// A non-nil body is sent as JSON.
func (c *Client) newRequest(
	ctx context.Context, method, endpoint, token string, body any,
) (*http.Request, error) {
	var bodyReader io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("error encoding request body: %w", err)
		}
		bodyReader = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, bodyReader)
	if err != nil {
		return nil, fmt.Errorf("error creating request: %w", err)
	}

	req.Header.Set(headerAccept, mediaTypeJSON)
	req.Header.Set(headerAuthorization, "Bearer "+token)
	if body != nil {
		req.Header.Set(headerContentType, mediaTypeJSON)
	}

	return req, nil
}

// headerFields flattens h for logging. The authorization header is included
// as sent.
func headerFields(h http.Header) map[string]string {
	out := make(map[string]string, len(h))
	for k, v := range h {
		out[k] = strings.Join(v, ",")
	}
	return out
}
