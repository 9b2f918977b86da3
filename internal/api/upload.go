package api

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"

	"github.com/Hugo-git31/site-hugo-adopte-un-dev/internal/board"
)

// uploadResponse tolerates the key variants the upload endpoint has
// answered with over time.
type uploadResponse struct {
	URL      string `json:"url"`
	Path     string `json:"path"`
	Location string `json:"location"`
}

func (r uploadResponse) best() string {
	if r.URL != "" {
		return r.URL
	}
	if r.Path != "" {
		return r.Path
	}
	return r.Location
}

// UploadImage posts an image as multipart form data (field "file") and
// returns the asset URL as echoed by the API. Callers normalize it to a
// path before persisting.
func (c *Client) UploadImage(ctx context.Context, filename string, r io.Reader) (string, error) {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	part, err := w.CreateFormFile("file", filename)
	if err != nil {
		return "", fmt.Errorf("upload: form: %w", err)
	}
	limit := board.Cfg.UploadMaxBytes
	if limit <= 0 {
		limit = 8 << 20
	}
	n, err := io.Copy(part, io.LimitReader(r, limit+1))
	if err != nil {
		return "", fmt.Errorf("upload: read file: %w", err)
	}
	if n > limit {
		return "", fmt.Errorf("upload: file exceeds %d bytes", limit)
	}
	if err := w.Close(); err != nil {
		return "", fmt.Errorf("upload: form: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.base+"/upload/image", &buf)
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", w.FormDataContentType())
	c.setHeaders(req, false)

	board.IncrAPIRequests()
	board.IncrUploads()
	resp, err := c.http.Do(req)
	if err != nil {
		board.IncrAPIErrors()
		return "", fmt.Errorf("upload: %w", err)
	}
	var out uploadResponse
	if err := decode(resp, &out); err != nil {
		return "", fmt.Errorf("upload: %w", err)
	}
	if out.best() == "" {
		return "", fmt.Errorf("upload: API returned no asset URL")
	}
	return out.best(), nil
}
