/*
Copyright 2026 Dima Krasner

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

// Package api is a client of the Mastodon REST API.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"

	"github.com/dimkr/tootgraph/cfg"
	"golang.org/x/oauth2"
)

// Client sends HTTP requests.
type Client interface {
	Do(*http.Request) (*http.Response, error)
}

// ErrNotFound is matched by an [APIError] with status 404 or 410.
var ErrNotFound = errors.New("not found")

// APIError is returned when the instance responds with a status other than 200.
type APIError struct {
	Method     string
	URL        string
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("failed to %s %s: %d", e.Method, e.URL, e.StatusCode)
	}
	return fmt.Sprintf("failed to %s %s: %d, %s", e.Method, e.URL, e.StatusCode, e.Message)
}

func (e *APIError) Is(target error) bool {
	return target == ErrNotFound && (e.StatusCode == http.StatusNotFound || e.StatusCode == http.StatusGone)
}

// API sends authenticated requests to one instance.
type API struct {
	// BaseURL is the instance URL, without a trailing slash.
	BaseURL string

	Tokens oauth2.TokenSource
	Client Client
	Config *cfg.Config
}

// New returns an [API] for the instance at baseURL.
func New(baseURL string, tokens oauth2.TokenSource, client Client, cfg *cfg.Config) *API {
	return &API{
		BaseURL: baseURL,
		Tokens:  tokens,
		Client:  client,
		Config:  cfg,
	}
}

func (a *API) newRequest(ctx context.Context, method, path string, query url.Values, body io.Reader) (*http.Request, error) {
	u := a.BaseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, method, u, body)
	if err != nil {
		return nil, fmt.Errorf("failed to create %s request to %s: %w", method, u, err)
	}

	tok, err := a.Tokens.Token()
	if err != nil {
		return nil, fmt.Errorf("failed to get token for %s: %w", u, err)
	}
	tok.SetAuthHeader(req)

	return req, nil
}

func (a *API) send(req *http.Request, out any) error {
	slog.DebugContext(req.Context(), "Sending request", "method", req.Method, "url", req.URL.String())

	resp, err := a.Client.Do(req)
	if err != nil {
		return fmt.Errorf("failed to %s %s: %w", req.Method, req.URL.String(), err)
	}
	defer resp.Body.Close()

	body := io.LimitReader(resp.Body, a.Config.MaxResponseBodySize)

	if resp.StatusCode != http.StatusOK {
		apiErr := APIError{
			Method:     req.Method,
			URL:        req.URL.String(),
			StatusCode: resp.StatusCode,
		}

		if buf, err := io.ReadAll(body); err == nil {
			var msg struct {
				Error string `json:"error"`
			}
			if json.Unmarshal(buf, &msg) == nil && msg.Error != "" {
				apiErr.Message = msg.Error
			} else {
				apiErr.Message = string(bytes.TrimSpace(buf))
			}
		}

		return &apiErr
	}

	if out == nil {
		return nil
	}

	if err := json.NewDecoder(body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode response to %s %s: %w", req.Method, req.URL.String(), err)
	}

	return nil
}

func (a *API) get(ctx context.Context, path string, query url.Values, out any) error {
	req, err := a.newRequest(ctx, http.MethodGet, path, query, nil)
	if err != nil {
		return err
	}

	return a.send(req, out)
}

func (a *API) post(ctx context.Context, path string, in, out any) error {
	var body io.Reader
	if in != nil {
		j, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("failed to marshal request to %s: %w", path, err)
		}
		body = bytes.NewReader(j)
	}

	req, err := a.newRequest(ctx, http.MethodPost, path, nil, body)
	if err != nil {
		return err
	}

	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	return a.send(req, out)
}
