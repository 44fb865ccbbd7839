package client

import (
	"bytes"
	"context"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
	"strings"

	"linkup_client/config"
	"linkup_client/errors"
	"linkup_client/global"
	"linkup_client/schemas"
	"linkup_client/storage"

	"github.com/aidarkhanov/nanoid/v2"
)

// Client is the single point of outbound request dispatch
type Client struct {
	base    string
	http    *http.Client
	storage *storage.Store
}

// New builds a Client against the configured base URL
func New(store *storage.Store) *Client {
	return &Client{
		base:    strings.TrimRight(config.Config.APIBaseURL, "/"),
		http:    &http.Client{Timeout: config.RequestTimeoutDuration()},
		storage: store,
	}
}

// NewWithBase builds a Client against an explicit base URL
func NewWithBase(base string, store *storage.Store) *Client {
	return &Client{
		base:    strings.TrimRight(base, "/"),
		http:    &http.Client{Timeout: config.RequestTimeoutDuration()},
		storage: store,
	}
}

// Get dispatches a GET request
func (c *Client) Get(ctx context.Context, path string, out interface{}) error {
	return c.Do(ctx, http.MethodGet, path, nil, out)
}

// Post dispatches a POST request with a JSON body
func (c *Client) Post(ctx context.Context, path string, body interface{}, out interface{}) error {
	return c.Do(ctx, http.MethodPost, path, body, out)
}

// Patch dispatches a PATCH request with a JSON body
func (c *Client) Patch(ctx context.Context, path string, body interface{}, out interface{}) error {
	return c.Do(ctx, http.MethodPatch, path, body, out)
}

// Delete dispatches a DELETE request
func (c *Client) Delete(ctx context.Context, path string, out interface{}) error {
	return c.Do(ctx, http.MethodDelete, path, nil, out)
}

// Do dispatches one request, attaching the bearer token when present and
// mapping the response through the status taxonomy
func (c *Client) Do(ctx context.Context, method string, path string, body interface{}, out interface{}) error {
	var reader io.Reader
	if body != nil {
		data, err := global.JSON.Marshal(body)
		if err != nil {
			return errors.HandleComplexError("marshal request", err.Error())
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.base+path, reader)
	if err != nil {
		return errors.HandleComplexError("build request", err.Error())
	}
	req.Header.Set("Content-Type", "application/json")
	c.prepare(req)

	return c.dispatch(req, out)
}

// Upload dispatches a multipart image upload (file + target folder)
func (c *Client) Upload(ctx context.Context, path string, filename string, file io.Reader, folder string) (*schemas.UploadResponse, error) {
	var buf bytes.Buffer
	form := multipart.NewWriter(&buf)

	part, err := form.CreateFormFile("image", filename)
	if err != nil {
		return nil, errors.HandleComplexError("multipart file", err.Error())
	}
	if _, err = io.Copy(part, file); err != nil {
		return nil, errors.HandleComplexError("multipart copy", err.Error())
	}
	if err = form.WriteField("folder", folder); err != nil {
		return nil, errors.HandleComplexError("multipart folder", err.Error())
	}
	if err = form.Close(); err != nil {
		return nil, errors.HandleComplexError("multipart close", err.Error())
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.base+path, &buf)
	if err != nil {
		return nil, errors.HandleComplexError("build request", err.Error())
	}
	req.Header.Set("Content-Type", form.FormDataContentType())
	c.prepare(req)

	var out schemas.UploadResponse
	if err = c.dispatch(req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// prepare attaches the cross-cutting request headers
func (c *Client) prepare(req *http.Request) {
	if token := c.storage.Token(); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	if id, err := nanoid.New(); err == nil {
		req.Header.Set("X-Request-ID", id)
	}
}

// dispatch sends the request and translates the outcome; the 401 path is
// the only one that mutates shared state
func (c *Client) dispatch(req *http.Request, out interface{}) error {
	res, err := c.http.Do(req)
	if err != nil {
		return errors.Network()
	}
	defer res.Body.Close()

	if res.StatusCode >= 200 && res.StatusCode < 300 {
		return c.decode(res.Body, out)
	}

	var body schemas.ErrorResponse
	raw, _ := io.ReadAll(res.Body)
	global.JSON.Unmarshal(raw, &body)

	switch {
	case res.StatusCode == http.StatusUnauthorized:
		errors.HandleBasicError(c.storage.RemoveToken())
		return errors.Auth(res.StatusCode)
	case res.StatusCode == http.StatusConflict:
		return errors.Conflict(res.StatusCode, body.Message)
	case res.StatusCode == http.StatusBadRequest:
		fields := make([]errors.FieldError, 0, len(body.Details))
		for _, d := range body.Details {
			fields = append(fields, errors.FieldError{Field: d.Field, Message: d.Message})
		}
		return errors.Validation(res.StatusCode, fields)
	case res.StatusCode >= 500:
		return errors.Server(res.StatusCode)
	default:
		if body.Message != "" {
			return errors.Request(errors.KindUnknown, res.StatusCode, body.Message)
		}
		return errors.Request(errors.KindUnknown, res.StatusCode, "Something went wrong")
	}
}

// decode unmarshals and validates a successful response body; malformed
// server payloads are rejected as server errors
func (c *Client) decode(body io.Reader, out interface{}) error {
	if out == nil {
		return nil
	}
	raw, err := io.ReadAll(body)
	if err != nil {
		return errors.Network()
	}
	if err = global.JSON.Unmarshal(raw, out); err != nil {
		errors.HandleComplexError("decode response", err.Error())
		return errors.Server(0)
	}
	if err = global.Validator.Struct(out); err != nil {
		errors.HandleComplexError("validate response", err.Error())
		return errors.Server(0)
	}
	return nil
}

// WithQuery appends encoded query parameters to a path
func WithQuery(path string, params url.Values) string {
	if len(params) == 0 {
		return path
	}
	return path + "?" + params.Encode()
}
