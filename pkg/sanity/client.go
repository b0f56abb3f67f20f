package sanity

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/cuet-cad-club/clubsite-api/pkg/config"
	appErrors "github.com/cuet-cad-club/clubsite-api/pkg/errors"
)

const (
	apiHost = "api.sanity.io"
	cdnHost = "apicdn.sanity.io"
)

// Client issues read-only GROQ queries against a hosted Sanity dataset.
// It is constructed once at process start and passed to every caller;
// there is no package-level instance.
type Client struct {
	projectID  string
	dataset    string
	apiVersion string
	token      string
	baseURL    string
	httpClient *http.Client

	// Observe, when set, receives the duration of every completed query.
	Observe func(label string, duration time.Duration)
}

// NewClient builds a client for the configured project and dataset.
func NewClient(cfg config.ContentStoreConfig) *Client {
	host := apiHost
	if cfg.UseCDN {
		host = cdnHost
	}
	return &Client{
		projectID:  cfg.ProjectID,
		dataset:    cfg.Dataset,
		apiVersion: cfg.APIVersion,
		token:      cfg.Token,
		baseURL: fmt.Sprintf("https://%s.%s/v%s/data/query/%s",
			cfg.ProjectID, host, cfg.APIVersion, cfg.Dataset),
		httpClient: &http.Client{Timeout: cfg.Timeout},
	}
}

// ProjectID reports the configured project identifier.
func (c *Client) ProjectID() string { return c.projectID }

// Dataset reports the configured dataset name.
func (c *Client) Dataset() string { return c.dataset }

type queryResponse struct {
	Result json.RawMessage `json:"result"`
}

// Query runs a single GROQ query and unmarshals the result into dest.
// A missing singleton document leaves dest untouched (the result is null);
// transport and backend failures surface as upstream errors so callers can
// tell them apart from an empty-but-successful response.
func (c *Client) Query(ctx context.Context, label, groq string, dest interface{}) error {
	start := time.Now()
	err := c.query(ctx, groq, dest)
	if c.Observe != nil {
		c.Observe(label, time.Since(start))
	}
	return err
}

func (c *Client) query(ctx context.Context, groq string, dest interface{}) error {
	endpoint := c.baseURL + "?query=" + url.QueryEscape(groq)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "build content query")
	}
	req.Header.Set("Accept", "application/json")
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return appErrors.Wrap(err, appErrors.ErrUpstream.Code, appErrors.ErrUpstream.Status, appErrors.ErrUpstream.Message)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return appErrors.Wrap(err, appErrors.ErrUpstream.Code, appErrors.ErrUpstream.Status, "read content response")
	}

	if resp.StatusCode != http.StatusOK {
		return appErrors.Wrap(fmt.Errorf("status %d", resp.StatusCode),
			appErrors.ErrUpstream.Code, appErrors.ErrUpstream.Status, appErrors.ErrUpstream.Message)
	}

	var parsed queryResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return appErrors.Wrap(err, appErrors.ErrUpstream.Code, appErrors.ErrUpstream.Status, "decode content response")
	}

	if len(parsed.Result) == 0 || string(parsed.Result) == "null" {
		return nil
	}

	if err := json.Unmarshal(parsed.Result, dest); err != nil {
		return appErrors.Wrap(err, appErrors.ErrUpstream.Code, appErrors.ErrUpstream.Status, "decode content result")
	}

	return nil
}
