package backend

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/FkReMy/hospital-bed-system-sub001/config"

	"github.com/go-resty/resty/v2"
	"github.com/sirupsen/logrus"
)

var (
	ErrNotFound           = errors.New("document not found")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrUnavailable        = errors.New("backend unavailable")
)

// envelope is the JSON wrapper the data service puts around every payload
type envelope struct {
	Data json.RawMessage `json:"data"`
}

type listEnvelope struct {
	Data []json.RawMessage `json:"data"`
}

// Client talks to the external data service and authentication provider.
// All entities are owned by the backend; this client only reads and writes
// JSON documents.
type Client struct {
	http *resty.Client
	log  *logrus.Logger
}

func NewClient(cfg config.BackendConfig, log *logrus.Logger) *Client {
	client := resty.New().
		SetBaseURL(cfg.BaseURL).
		SetTimeout(cfg.Timeout).
		SetHeader("Content-Type", "application/json").
		SetHeader("Accept", "application/json")

	if cfg.APIKey != "" {
		client.SetHeader("X-Api-Key", cfg.APIKey)
	}

	// Transport-level retries apply to reads only. Mutations are never
	// retried; a failed mutation is reported and rolled back instead.
	client.
		SetRetryCount(2).
		AddRetryCondition(func(r *resty.Response, err error) bool {
			if r == nil || r.Request == nil {
				return false
			}
			return r.Request.Method == http.MethodGet && (err != nil || r.StatusCode() >= http.StatusInternalServerError)
		})

	return &Client{
		http: client,
		log:  log,
	}
}

// List fetches all documents in a collection, optionally filtered by
// equality query parameters.
func (c *Client) List(ctx context.Context, collection string, params map[string]string) ([]json.RawMessage, error) {
	var result listEnvelope

	req := c.http.R().SetContext(ctx).SetResult(&result)
	if len(params) > 0 {
		req.SetQueryParams(params)
	}

	resp, err := req.Get(fmt.Sprintf("/collections/%s", collection))
	if err != nil {
		c.log.Warnf("Failed to list %s: %+v", collection, err)
		return nil, ErrUnavailable
	}
	if resp.IsError() {
		c.log.Warnf("Backend returned %d listing %s", resp.StatusCode(), collection)
		return nil, ErrUnavailable
	}

	return result.Data, nil
}

// Get fetches a single document by ID
func (c *Client) Get(ctx context.Context, collection, id string) (json.RawMessage, error) {
	var result envelope

	resp, err := c.http.R().
		SetContext(ctx).
		SetResult(&result).
		Get(fmt.Sprintf("/collections/%s/%s", collection, id))
	if err != nil {
		c.log.Warnf("Failed to get %s/%s: %+v", collection, id, err)
		return nil, ErrUnavailable
	}
	if resp.StatusCode() == http.StatusNotFound {
		return nil, ErrNotFound
	}
	if resp.IsError() {
		c.log.Warnf("Backend returned %d getting %s/%s", resp.StatusCode(), collection, id)
		return nil, ErrUnavailable
	}

	return result.Data, nil
}

// Create inserts a new document and returns the stored representation
func (c *Client) Create(ctx context.Context, collection string, doc any) (json.RawMessage, error) {
	var result envelope

	resp, err := c.http.R().
		SetContext(ctx).
		SetBody(doc).
		SetResult(&result).
		Post(fmt.Sprintf("/collections/%s", collection))
	if err != nil {
		c.log.Warnf("Failed to create in %s: %+v", collection, err)
		return nil, ErrUnavailable
	}
	if resp.IsError() {
		c.log.Warnf("Backend returned %d creating in %s", resp.StatusCode(), collection)
		return nil, ErrUnavailable
	}

	return result.Data, nil
}

// Delete removes a document. Used only as a compensating action when the
// second half of a two-step mutation fails.
func (c *Client) Delete(ctx context.Context, collection, id string) error {
	resp, err := c.http.R().
		SetContext(ctx).
		Delete(fmt.Sprintf("/collections/%s/%s", collection, id))
	if err != nil {
		c.log.Warnf("Failed to delete %s/%s: %+v", collection, id, err)
		return ErrUnavailable
	}
	if resp.StatusCode() == http.StatusNotFound {
		return ErrNotFound
	}
	if resp.IsError() {
		c.log.Warnf("Backend returned %d deleting %s/%s", resp.StatusCode(), collection, id)
		return ErrUnavailable
	}

	return nil
}

// Patch applies a partial update to a document. Field names are sent in
// snake_case regardless of what the stored document uses; the backend
// accepts both.
func (c *Client) Patch(ctx context.Context, collection, id string, fields map[string]any) (json.RawMessage, error) {
	var result envelope

	resp, err := c.http.R().
		SetContext(ctx).
		SetBody(fields).
		SetResult(&result).
		Patch(fmt.Sprintf("/collections/%s/%s", collection, id))
	if err != nil {
		c.log.Warnf("Failed to patch %s/%s: %+v", collection, id, err)
		return nil, ErrUnavailable
	}
	if resp.StatusCode() == http.StatusNotFound {
		return nil, ErrNotFound
	}
	if resp.IsError() {
		c.log.Warnf("Backend returned %d patching %s/%s", resp.StatusCode(), collection, id)
		return nil, ErrUnavailable
	}

	return result.Data, nil
}
