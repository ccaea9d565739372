package client

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"strings"

	interrors "github.com/hemoglobin-nil/hemoglobin-go/internal/errors"
)

const maxBodyBytes = 8 << 20 // generous ceiling for JSON responses

// Do issues a single call. body, when non-nil, is JSON-encoded; out, when
// non-nil, receives the decoded 2xx response body. A non-2xx status
// returns an *APIError. The context bounds and cancels the call together
// with the client timeout.
func (c *Client) Do(ctx context.Context, method, path string, query url.Values, body, out any) error {
	var reader io.Reader
	contentType := "application/json"
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return interrors.Wrapf(err, "encode request body")
		}
		reader = bytes.NewReader(encoded)
	}
	return c.send(ctx, method, path, query, reader, contentType, out)
}

func (c *Client) Get(ctx context.Context, path string, query url.Values, out any) error {
	return c.Do(ctx, http.MethodGet, path, query, nil, out)
}

func (c *Client) PostJSON(ctx context.Context, path string, body, out any) error {
	return c.Do(ctx, http.MethodPost, path, nil, body, out)
}

func (c *Client) PutJSON(ctx context.Context, path string, body, out any) error {
	return c.Do(ctx, http.MethodPut, path, nil, body, out)
}

func (c *Client) Delete(ctx context.Context, path string, out any) error {
	return c.Do(ctx, http.MethodDelete, path, nil, nil, out)
}

// DeleteJSON issues a DELETE with a JSON body; a couple of backend
// endpoints identify the target in the body rather than the path.
func (c *Client) DeleteJSON(ctx context.Context, path string, body, out any) error {
	return c.Do(ctx, http.MethodDelete, path, nil, body, out)
}

// PostMultipart sends a multipart/form-data POST for endpoints accepting
// binary attachments (profile images, campaign banners, notice PDFs).
func (c *Client) PostMultipart(ctx context.Context, path string, form *Form, out any) error {
	body, contentType, err := form.encode()
	if err != nil {
		return interrors.Wrapf(err, "encode multipart form")
	}
	return c.send(ctx, http.MethodPost, path, nil, body, contentType, out)
}

// PutMultipart is PostMultipart for update endpoints.
func (c *Client) PutMultipart(ctx context.Context, path string, form *Form, out any) error {
	body, contentType, err := form.encode()
	if err != nil {
		return interrors.Wrapf(err, "encode multipart form")
	}
	return c.send(ctx, http.MethodPut, path, nil, body, contentType, out)
}

func (c *Client) send(ctx context.Context, method, path string, query url.Values, body io.Reader, contentType string, out any) error {
	target := c.baseURL.String() + "/" + strings.TrimLeft(path, "/")
	if len(query) > 0 {
		target += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, method, target, body)
	if err != nil {
		return interrors.Wrapf(err, "build request %s %s", method, path)
	}
	if body != nil {
		req.Header.Set("Content-Type", contentType)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return interrors.Wrapf(err, "%s %s", method, path)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return interrors.Wrapf(err, "read response %s %s", method, path)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return newAPIError(resp.StatusCode, data)
	}

	if out == nil || len(bytes.TrimSpace(data)) == 0 {
		return nil
	}
	if err := json.Unmarshal(data, out); err != nil {
		return interrors.Wrapf(err, "decode response %s %s", method, path)
	}
	return nil
}
