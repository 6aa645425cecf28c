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

package api

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"path"

	"github.com/dimkr/tootgraph/mastodon"
)

// Download fetches a media file, without credentials.
func (a *API) Download(ctx context.Context, u string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request to %s: %w", u, err)
	}

	resp, err := a.Client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch %s: %w", u, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, &APIError{Method: http.MethodGet, URL: u, StatusCode: resp.StatusCode}
	}

	buf, err := io.ReadAll(io.LimitReader(resp.Body, a.Config.MaxMediaSize+1))
	if err != nil {
		return nil, fmt.Errorf("failed to fetch %s: %w", u, err)
	}

	if int64(len(buf)) > a.Config.MaxMediaSize {
		return nil, fmt.Errorf("%s is bigger than %d bytes", u, a.Config.MaxMediaSize)
	}

	return buf, nil
}

// UploadMedia uploads a media file and returns its ID.
func (a *API) UploadMedia(ctx context.Context, name string, content []byte, description string) (*mastodon.Attachment, error) {
	var body bytes.Buffer
	w := multipart.NewWriter(&body)

	part, err := w.CreateFormFile("file", path.Base(name))
	if err != nil {
		return nil, fmt.Errorf("failed to upload %s: %w", name, err)
	}

	if _, err := part.Write(content); err != nil {
		return nil, fmt.Errorf("failed to upload %s: %w", name, err)
	}

	if description != "" {
		if err := w.WriteField("description", description); err != nil {
			return nil, fmt.Errorf("failed to upload %s: %w", name, err)
		}
	}

	if err := w.Close(); err != nil {
		return nil, fmt.Errorf("failed to upload %s: %w", name, err)
	}

	req, err := a.newRequest(ctx, http.MethodPost, mastodon.PathMedia, nil, &body)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", w.FormDataContentType())

	var attachment mastodon.Attachment
	if err := a.send(req, &attachment); err != nil {
		return nil, err
	}

	if attachment.ID == "" {
		return nil, fmt.Errorf("no ID for uploaded %s", name)
	}

	return &attachment, nil
}
