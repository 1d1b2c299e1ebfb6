package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
	"strings"

	"github.com/SscSPs/bizdash/internal/apperrors"
	"github.com/SscSPs/bizdash/internal/core/domain"
	"github.com/SscSPs/bizdash/internal/dto"
)

// Client issues exactly one HTTP request per call against the backend.
// Success yields the raw 2xx body; every failure is a *apperrors.RemoteError.
type Client struct {
	baseURL string
	http    *http.Client
}

// NewClient creates a Client. Token attachment, logging and throttling are
// configured on hc's transport (see internal/middleware).
func NewClient(baseURL string, hc *http.Client) *Client {
	if hc == nil {
		hc = http.DefaultClient
	}
	return &Client{baseURL: strings.TrimRight(baseURL, "/"), http: hc}
}

// Do sends body as JSON (nil sends no body) and returns the response body.
func (c *Client) Do(ctx context.Context, method, path string, query url.Values, body any) ([]byte, error) {
	return c.do(ctx, method, path, query, body, "")
}

// doWithBearer is Do with an explicit access token, for clients built without
// the auth middleware.
func (c *Client) doWithBearer(ctx context.Context, method, path string, body any, access string) ([]byte, error) {
	return c.do(ctx, method, path, nil, body, access)
}

func (c *Client) do(ctx context.Context, method, path string, query url.Values, body any, access string) ([]byte, error) {
	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return nil, apperrors.NewTransportError(fmt.Errorf("encode request: %w", err))
		}
		reader = bytes.NewReader(raw)
	}
	req, err := http.NewRequestWithContext(ctx, method, c.url(path, query), reader)
	if err != nil {
		return nil, apperrors.NewTransportError(err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if access != "" {
		req.Header.Set("Authorization", "Bearer "+access)
	}
	return c.send(req)
}

// Part is one file part of a multipart request.
type Part struct {
	Field string
	File  domain.UploadFile
}

// DoMultipart sends fields and files as multipart/form-data.
func (c *Client) DoMultipart(ctx context.Context, method, path string, fields map[string]string, parts []Part) ([]byte, error) {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	for k, v := range fields {
		if err := w.WriteField(k, v); err != nil {
			return nil, apperrors.NewTransportError(fmt.Errorf("encode form field %s: %w", k, err))
		}
	}
	for _, p := range parts {
		fw, err := w.CreateFormFile(p.Field, p.File.Name)
		if err != nil {
			return nil, apperrors.NewTransportError(fmt.Errorf("encode file %s: %w", p.File.Name, err))
		}
		if _, err := fw.Write(p.File.Content); err != nil {
			return nil, apperrors.NewTransportError(fmt.Errorf("encode file %s: %w", p.File.Name, err))
		}
	}
	if err := w.Close(); err != nil {
		return nil, apperrors.NewTransportError(err)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.url(path, nil), &buf)
	if err != nil {
		return nil, apperrors.NewTransportError(err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Content-Type", w.FormDataContentType())
	return c.send(req)
}

func (c *Client) url(path string, query url.Values) string {
	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}
	return u
}

func (c *Client) send(req *http.Request) ([]byte, error) {
	resp, err := c.http.Do(req)
	if err != nil {
		return nil, apperrors.NewTransportError(err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, apperrors.NewTransportError(fmt.Errorf("read response: %w", err))
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, apperrors.NewRemoteError(resp.StatusCode, raw)
	}
	return raw, nil
}

// decode unmarshals a 2xx body. A body that does not match T is reported as
// a transport-level RemoteError.
func decode[T any](raw []byte) (T, error) {
	var out T
	if len(bytes.TrimSpace(raw)) == 0 {
		return out, nil
	}
	if err := json.Unmarshal(raw, &out); err != nil {
		return out, apperrors.NewTransportError(fmt.Errorf("decode response: %w", err))
	}
	return out, nil
}

// decodeLenient is decode for endpoints whose success body is not guaranteed
// to be the record; anything undecodable yields the zero value.
func decodeLenient[T any](raw []byte) T {
	out, err := decode[T](raw)
	if err != nil {
		var zero T
		return zero
	}
	return out
}

func decodeList[T any](raw []byte) ([]T, error) {
	items, err := dto.DecodeList[T](raw)
	if err != nil {
		return nil, apperrors.NewTransportError(err)
	}
	return items, nil
}

func idPath(prefix string, id domain.ID) string {
	return fmt.Sprintf("%s%d/", prefix, id)
}
