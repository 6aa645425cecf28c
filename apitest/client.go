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

// Package apitest contains a scripted HTTP client and Mastodon fixtures for tests.
package apitest

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"mime"
	"mime/multipart"
	"net/http"
	"sync"
)

type Response struct {
	StatusCode int
	Body       string
	Error      error
}

// Request is a request received by [Client].
type Request struct {
	Method        string
	URL           string
	Authorization string
	ContentType   string
	Body          []byte
}

// Client is an HTTP client that returns scripted responses.
//
// Responses are keyed by method and URL, and each one is returned once. Client panics if
// it receives a request it has no response for.
type Client struct {
	sync.Mutex
	Data     map[string][]Response
	Requests []Request
}

func key(method, url string) string {
	return method + " " + url
}

func NewClient() *Client {
	return &Client{Data: map[string][]Response{}}
}

// Expect adds a response to a request.
func (c *Client) Expect(method, url string, statusCode int, body string) *Client {
	c.Lock()
	defer c.Unlock()

	k := key(method, url)
	c.Data[k] = append(c.Data[k], Response{StatusCode: statusCode, Body: body})
	return c
}

// ExpectJSON adds a response with status 200 and v as its body.
func (c *Client) ExpectJSON(method, url string, v any) *Client {
	j, err := json.Marshal(v)
	if err != nil {
		panic(err)
	}

	return c.Expect(method, url, http.StatusOK, string(j))
}

// ExpectError adds a transport error.
func (c *Client) ExpectError(method, url string, err error) *Client {
	c.Lock()
	defer c.Unlock()

	k := key(method, url)
	c.Data[k] = append(c.Data[k], Response{Error: err})
	return c
}

func (c *Client) Do(r *http.Request) (*http.Response, error) {
	url := r.URL.String()
	k := key(r.Method, url)

	req := Request{
		Method:        r.Method,
		URL:           url,
		Authorization: r.Header.Get("Authorization"),
		ContentType:   r.Header.Get("Content-Type"),
	}

	if r.Body != nil {
		body, err := io.ReadAll(r.Body)
		if err != nil {
			return nil, err
		}
		req.Body = body
	}

	c.Lock()
	defer c.Unlock()

	c.Requests = append(c.Requests, req)

	l, ok := c.Data[k]
	if !ok {
		panic("No response for " + k)
	}

	resp := l[0]
	if len(l) == 1 {
		delete(c.Data, k)
	} else {
		c.Data[k] = l[1:]
	}

	if resp.Error != nil {
		return nil, resp.Error
	}

	buf := []byte(resp.Body)
	return &http.Response{
		StatusCode:    resp.StatusCode,
		Header:        http.Header{"Content-Type": {"application/json"}},
		ContentLength: int64(len(buf)),
		Body:          io.NopCloser(bytes.NewReader(buf)),
		Request:       r,
	}, nil
}

// Form parses a multipart request body and returns its fields, including files.
func (r *Request) Form() (map[string]string, error) {
	mediaType, params, err := mime.ParseMediaType(r.ContentType)
	if err != nil {
		return nil, err
	}

	if mediaType != "multipart/form-data" {
		return nil, fmt.Errorf("not a form: %s", mediaType)
	}

	form := map[string]string{}
	mr := multipart.NewReader(bytes.NewReader(r.Body), params["boundary"])
	for {
		part, err := mr.NextPart()
		if err == io.EOF {
			return form, nil
		}
		if err != nil {
			return nil, err
		}

		buf, err := io.ReadAll(part)
		if err != nil {
			return nil, err
		}

		form[part.FormName()] = string(buf)
	}
}
