package apiclient

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"strings"

	"github.com/FrumiousOwl/Teses-front-sub000/providers"
	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

// Client is the one adapter every view talks through. All four verbs share the
// same base address, codec and error normalization; there is no retry and no
// backoff, a failed call is terminal until the user re-clicks.
type Client struct {
	baseURL string
	http    *http.Client
	creds   providers.CredentialStore
	logger  providers.ZapLoggerProvider
}

func NewClient(baseURL string, httpClient *http.Client, creds providers.CredentialStore, logger providers.ZapLoggerProvider) *Client {
	if httpClient == nil {
		httpClient = &http.Client{}
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    httpClient,
		creds:   creds,
		logger:  logger,
	}
}

func (c *Client) Read(ctx context.Context, path string, out interface{}) error {
	return c.do(ctx, http.MethodGet, path, nil, out)
}

func (c *Client) Create(ctx context.Context, path string, body, out interface{}) error {
	return c.do(ctx, http.MethodPost, path, body, out)
}

func (c *Client) Replace(ctx context.Context, path string, body, out interface{}) error {
	return c.do(ctx, http.MethodPut, path, body, out)
}

func (c *Client) Delete(ctx context.Context, path string) error {
	return c.do(ctx, http.MethodDelete, path, nil, nil)
}

func (c *Client) do(ctx context.Context, method, path string, body, out interface{}) error {
	var reader io.Reader
	if body != nil {
		payload, err := jsoniter.Marshal(body)
		if err != nil {
			return errors.Wrap(err, "failed to serialize request body")
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return errors.Wrap(err, "failed to build request")
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if cred := c.creds.Get(); cred != "" {
		req.Header.Set("Authorization", "Bearer "+cred)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		c.logger.GetLogger().Warn("api request failed",
			zap.String("method", method),
			zap.String("path", path),
			zap.Error(err))
		return &APIError{Message: err.Error()}
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return &APIError{StatusCode: resp.StatusCode, Message: err.Error()}
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		msg := serverMessage(data)
		if msg == "" {
			msg = resp.Status
		}
		c.logger.GetLogger().Warn("api responded with error",
			zap.String("method", method),
			zap.String("path", path),
			zap.Int("status", resp.StatusCode),
			zap.String("message", msg))
		return &APIError{StatusCode: resp.StatusCode, Message: msg}
	}

	if out != nil && len(data) > 0 {
		if err := jsoniter.Unmarshal(data, out); err != nil {
			c.logger.GetLogger().Warn("api response body did not decode",
				zap.String("method", method),
				zap.String("path", path),
				zap.Int("status", resp.StatusCode),
				zap.Error(err))
			return &APIError{StatusCode: resp.StatusCode, Message: "undecodable response body: " + err.Error()}
		}
	}
	return nil
}

// serverMessage pulls the human message out of an error body. The backend is
// not consistent about the field name, so a few known shapes are tried.
func serverMessage(data []byte) string {
	var body struct {
		Message string `json:"message"`
		Error   string `json:"error"`
		Title   string `json:"title"`
	}
	if err := jsoniter.Unmarshal(data, &body); err != nil {
		return ""
	}
	switch {
	case body.Message != "":
		return body.Message
	case body.Error != "":
		return body.Error
	default:
		return body.Title
	}
}
