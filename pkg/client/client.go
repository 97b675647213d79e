package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/cuemby/hutch/pkg/types"
)

// Client is a Go client for one version of the compute API. It speaks
// the structured JSON wire format; all methods are safe for concurrent
// use.
type Client struct {
	base    string
	version types.Version
	http    *http.Client
}

// NewClient creates a client for the API at base (scheme://host:port)
// speaking the given format version.
func NewClient(base string, version types.Version) *Client {
	return &Client{
		base:    base,
		version: version,
		http:    &http.Client{Timeout: 10 * time.Second},
	}
}

// APIError is a non-2xx response decoded from the error envelope.
type APIError struct {
	Code    int
	Message string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api error %d: %s", e.Code, e.Message)
}

// ServerSummary is one entry of the servers list.
type ServerSummary struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// ServerDetail is the full server view. Addresses is left raw because
// its shape differs per version: fixed public/private address lists in
// v1.0, label-keyed networks in v1.1. UUID is only present in v1.1.
type ServerDetail struct {
	ID        int               `json:"id"`
	UUID      string            `json:"uuid,omitempty"`
	Name      string            `json:"name"`
	Status    types.Status      `json:"status"`
	Addresses json.RawMessage   `json:"addresses"`
	Metadata  map[string]string `json:"metadata"`
}

// ListOptions are the pagination parameters of the servers list. Limit
// is sent when positive. Offset applies to the v1.0 format, Marker to
// v1.1; the zero value sends neither.
type ListOptions struct {
	Limit  int
	Offset int
	Marker int
}

func (o ListOptions) query() string {
	values := url.Values{}
	if o.Limit > 0 {
		values.Set("limit", strconv.Itoa(o.Limit))
	}
	if o.Offset > 0 {
		values.Set("offset", strconv.Itoa(o.Offset))
	}
	if o.Marker > 0 {
		values.Set("marker", strconv.Itoa(o.Marker))
	}
	if len(values) == 0 {
		return ""
	}
	return "?" + values.Encode()
}

func (c *Client) url(path string) string {
	return fmt.Sprintf("%s/v%s%s", c.base, c.version.String(), path)
}

// do performs a request and decodes the response into out when the
// status is 2xx, or into an APIError otherwise.
func (c *Client) do(ctx context.Context, method, target string, body, out any) error {
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to encode request body: %w", err)
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, target, reader)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		var envelope struct {
			Error struct {
				Code    int    `json:"code"`
				Message string `json:"message"`
			} `json:"error"`
		}
		if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil || envelope.Error.Code == 0 {
			return &APIError{Code: resp.StatusCode, Message: resp.Status}
		}
		return &APIError{Code: envelope.Error.Code, Message: envelope.Error.Message}
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}

// ListServers retrieves a page of the servers list.
func (c *Client) ListServers(ctx context.Context, opts ListOptions) ([]ServerSummary, error) {
	var envelope struct {
		Servers []ServerSummary `json:"servers"`
	}
	if err := c.do(ctx, http.MethodGet, c.url("/servers"+opts.query()), nil, &envelope); err != nil {
		return nil, err
	}
	return envelope.Servers, nil
}

// GetServer retrieves one server's detail view.
func (c *Client) GetServer(ctx context.Context, id int) (*ServerDetail, error) {
	var envelope struct {
		Server ServerDetail `json:"server"`
	}
	if err := c.do(ctx, http.MethodGet, c.url(fmt.Sprintf("/servers/%d", id)), nil, &envelope); err != nil {
		return nil, err
	}
	return &envelope.Server, nil
}

// Addresses retrieves the address index of an instance. Values are left
// raw for the same reason as ServerDetail.Addresses.
func (c *Client) Addresses(ctx context.Context, id int) (map[string]json.RawMessage, error) {
	var envelope struct {
		Addresses map[string]json.RawMessage `json:"addresses"`
	}
	if err := c.do(ctx, http.MethodGet, c.url(fmt.Sprintf("/servers/%d/ips", id)), nil, &envelope); err != nil {
		return nil, err
	}
	return envelope.Addresses, nil
}

// Network retrieves one network (v1.1) or part (v1.0) of an instance's
// address view.
func (c *Client) Network(ctx context.Context, id int, label string) (json.RawMessage, error) {
	var body map[string]json.RawMessage
	if err := c.do(ctx, http.MethodGet, c.url(fmt.Sprintf("/servers/%d/ips/%s", id, url.PathEscape(label))), nil, &body); err != nil {
		return nil, err
	}
	return body[label], nil
}

// Metadata retrieves the full metadata mapping of an instance.
func (c *Client) Metadata(ctx context.Context, id int) (map[string]string, error) {
	var envelope struct {
		Metadata map[string]string `json:"metadata"`
	}
	if err := c.do(ctx, http.MethodGet, c.url(fmt.Sprintf("/servers/%d/metadata", id)), nil, &envelope); err != nil {
		return nil, err
	}
	return envelope.Metadata, nil
}

// ReplaceMetadata swaps the full metadata mapping of an instance and
// returns the stored result.
func (c *Client) ReplaceMetadata(ctx context.Context, id int, metadata map[string]string) (map[string]string, error) {
	return c.writeMetadata(ctx, http.MethodPut, id, metadata)
}

// MergeMetadata adds or overwrites metadata entries on an instance and
// returns the merged result.
func (c *Client) MergeMetadata(ctx context.Context, id int, metadata map[string]string) (map[string]string, error) {
	return c.writeMetadata(ctx, http.MethodPost, id, metadata)
}

func (c *Client) writeMetadata(ctx context.Context, method string, id int, metadata map[string]string) (map[string]string, error) {
	body := map[string]map[string]string{"metadata": metadata}
	var envelope struct {
		Metadata map[string]string `json:"metadata"`
	}
	if err := c.do(ctx, method, c.url(fmt.Sprintf("/servers/%d/metadata", id)), body, &envelope); err != nil {
		return nil, err
	}
	return envelope.Metadata, nil
}

// MetadataItem retrieves one metadata entry of an instance.
func (c *Client) MetadataItem(ctx context.Context, id int, key string) (string, error) {
	var envelope struct {
		Meta map[string]string `json:"meta"`
	}
	if err := c.do(ctx, http.MethodGet, c.itemURL(id, key), nil, &envelope); err != nil {
		return "", err
	}
	return envelope.Meta[key], nil
}

// SetMetadataItem creates or overwrites one metadata entry.
func (c *Client) SetMetadataItem(ctx context.Context, id int, key, value string) error {
	body := map[string]map[string]string{"meta": {key: value}}
	return c.do(ctx, http.MethodPut, c.itemURL(id, key), body, nil)
}

// DeleteMetadataItem removes one metadata entry.
func (c *Client) DeleteMetadataItem(ctx context.Context, id int, key string) error {
	return c.do(ctx, http.MethodDelete, c.itemURL(id, key), nil, nil)
}

func (c *Client) itemURL(id int, key string) string {
	return c.url(fmt.Sprintf("/servers/%d/metadata/%s", id, url.PathEscape(key)))
}
