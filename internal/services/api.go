// HTTP list data source
package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/desertthunder/listmerge/internal/models"
	"github.com/desertthunder/listmerge/internal/shared"
	"golang.org/x/oauth2"
	"golang.org/x/time/rate"
)

const (
	DefaultListsURL = "https://apis.ccbp.in/list-creation/lists"

	// maxErrorBody bounds how much of a failed response is echoed into errors.
	maxErrorBody = 256
)

// ListsServiceOpts configures a [ListsService].
type ListsServiceOpts struct {
	URL           string
	Token         string        // optional bearer token
	Timeout       time.Duration // zero keeps the client's timeout
	RetryInterval time.Duration // minimum spacing between fetches; zero disables
	HTTPClient    *http.Client
}

// ListsService fetches list records from the lists endpoint.
type ListsService struct {
	url        string
	httpClient *http.Client
	limiter    *rate.Limiter
}

var _ Source = (*ListsService)(nil)

// NewListsService creates a new lists data source.
func NewListsService(opts ListsServiceOpts) *ListsService {
	if opts.URL == "" {
		opts.URL = DefaultListsURL
	}
	if opts.HTTPClient == nil {
		opts.HTTPClient = http.DefaultClient
	}

	client := opts.HTTPClient
	if opts.Token != "" || opts.Timeout > 0 {
		c := *opts.HTTPClient
		if opts.Token != "" {
			c.Transport = &oauth2.Transport{
				Source: oauth2.StaticTokenSource(&oauth2.Token{AccessToken: opts.Token, TokenType: "Bearer"}),
				Base:   opts.HTTPClient.Transport,
			}
		}
		if opts.Timeout > 0 {
			c.Timeout = opts.Timeout
		}
		client = &c
	}

	limiter := rate.NewLimiter(rate.Inf, 1)
	if opts.RetryInterval > 0 {
		limiter = rate.NewLimiter(rate.Every(opts.RetryInterval), 1)
	}

	return &ListsService{
		url:        opts.URL,
		httpClient: client,
		limiter:    limiter,
	}
}

// NewListsServiceFromConfig builds a [ListsService] from the [shared.SourceConfig] section.
func NewListsServiceFromConfig(cfg shared.SourceConfig, client *http.Client) *ListsService {
	return NewListsService(ListsServiceOpts{
		URL:           cfg.URL,
		Token:         cfg.Token,
		Timeout:       cfg.Timeout(),
		RetryInterval: cfg.RetryInterval(),
		HTTPClient:    client,
	})
}

// Name returns the endpoint URL.
func (s *ListsService) Name() string {
	return s.url
}

// FetchLists performs a GET against the lists endpoint and decodes its records.
func (s *ListsService) FetchLists(ctx context.Context) ([]models.Record, error) {
	if err := s.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("%w: %v", shared.ErrAPIRequest, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", shared.ErrAPIRequest, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to read response: %v", shared.ErrAPIRequest, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("%w: status %d, body: %s", shared.ErrAPIRequest, resp.StatusCode, truncate(body, maxErrorBody))
	}

	return DecodeLists(body)
}

// DecodeLists parses a lists payload.
//
// The body must be an object whose "lists" member is an array; each element must decode as a [models.Record].
// Field-level validation (missing list numbers or ids) is left to ingest.
func DecodeLists(body []byte) ([]models.Record, error) {
	var envelope map[string]json.RawMessage
	if err := json.Unmarshal(body, &envelope); err != nil {
		return nil, fmt.Errorf("%w: body is not a JSON object", shared.ErrUnexpectedFormat)
	}

	raw, ok := envelope["lists"]
	raw = bytes.TrimSpace(raw)
	if !ok || len(raw) == 0 || raw[0] != '[' {
		return nil, fmt.Errorf("%w: lists is not an array", shared.ErrUnexpectedFormat)
	}

	var elements []json.RawMessage
	if err := json.Unmarshal(raw, &elements); err != nil {
		return nil, fmt.Errorf("%w: %v", shared.ErrUnexpectedFormat, err)
	}

	records := make([]models.Record, 0, len(elements))
	for i, el := range elements {
		var r models.Record
		if err := json.Unmarshal(el, &r); err != nil {
			return nil, fmt.Errorf("%w: record %d: %v", shared.ErrMalformedData, i, err)
		}
		records = append(records, r)
	}

	return records, nil
}

// EncodeLists renders records in the lists endpoint shape.
func EncodeLists(records []models.Record, pretty bool) ([]byte, error) {
	if records == nil {
		records = []models.Record{}
	}
	return shared.MarshalJSON(ListsPayload{Lists: records}, pretty)
}

func truncate(b []byte, n int) string {
	if len(b) <= n {
		return string(b)
	}
	return string(b[:n]) + "..."
}
