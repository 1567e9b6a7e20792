package account

import (
	"context"
	"fmt"

	"github.com/ewassef/LinqToTwitter/internal/query"
)

// DefaultBaseURL is the v1.1 API root queries are built against when a
// Client is created without one.
const DefaultBaseURL = "https://api.twitter.com/1/"

// Transport executes one HTTP call against a built URL and returns the raw
// response body. It is the only collaborator that touches the network; the
// processor itself never performs I/O. An empty body with a nil error is a
// valid no-content response.
type Transport interface {
	Get(ctx context.Context, url string) (string, error)
	Post(ctx context.Context, url string) (string, error)
}

// Client wires the request-processor stages end to end: parameter
// extraction, query-type resolution, URL building, transport execution, and
// response mapping.
//
// A Client holds no per-call state; the resolved query type lives on the
// call stack, so one Client is safe to share across goroutines as long as
// its Transport is.
type Client struct {
	baseURL   string
	transport Transport
	extractor *ParamExtractor
}

// NewClient creates a Client over the given transport.
// An empty baseURL falls back to DefaultBaseURL.
func NewClient(baseURL string, transport Transport) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{
		baseURL:   baseURL,
		transport: transport,
		extractor: NewParamExtractor(),
	}
}

// Query runs an account query expressed as a predicate and returns the
// mapped Account.
//
// Stage order is fixed: extraction fails before any URL is built, and
// ParseQueryType is the only validation gate between the predicate and
// BuildURL.
func (c *Client) Query(ctx context.Context, p query.Predicate) (Account, error) {
	params, err := c.extractor.Extract(p)
	if err != nil {
		return Account{}, err
	}

	qt, err := ParseQueryType(params[TypeField])
	if err != nil {
		return Account{}, err
	}

	url, err := BuildURL(c.baseURL, qt)
	if err != nil {
		return Account{}, err
	}

	body, err := c.transport.Get(ctx, url)
	if err != nil {
		return Account{}, fmt.Errorf("execute %s query: %w", qt, err)
	}

	return ProcessResults(qt, body)
}

// EndSession invalidates the current session and returns the mapped action
// status.
func (c *Client) EndSession(ctx context.Context) (Account, error) {
	url, err := BuildActionURL(c.baseURL, ActionEndSession)
	if err != nil {
		return Account{}, err
	}

	body, err := c.transport.Post(ctx, url)
	if err != nil {
		return Account{}, fmt.Errorf("execute end session: %w", err)
	}

	return ProcessActionResult[Account](ActionEndSession, body)
}
