// Package remote is the client side of the bookmark REST API.
package remote

//go:generate go run go.uber.org/mock/mockgen@latest -destination=mocks/mock_api.go -package=mocks bookmarkhub/internal/remote API

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"

	"bookmarkhub/internal/model"
	"bookmarkhub/internal/session"
)

// Data is the payload of GET /data.
type Data struct {
	Categories   []model.Category     `json:"categories"`
	Items        []model.BookmarkItem `json:"items"`
	Settings     json.RawMessage      `json:"settings"`
	DefaultTheme *model.ThemeConfig   `json:"defaultTheme"`
}

// Upload describes a file stored by the server.
type Upload struct {
	FileID string `json:"fileId"`
	URL    string `json:"url"`
	Name   string `json:"name"`
	Type   string `json:"type"`
	Size   int64  `json:"size"`
}

// File is a downloaded file.
type File struct {
	Name string
	Type string
	Data []byte
}

// API is the set of server calls the client makes.
type API interface {
	Ping(ctx context.Context) error
	GetData(ctx context.Context) (Data, error)
	SaveCategories(ctx context.Context, categories []model.Category) error
	SaveItems(ctx context.Context, items []model.BookmarkItem) error
	Login(ctx context.Context, password string) (string, error)
	ChangePassword(ctx context.Context, newPassword string) error
	SaveDefaultTheme(ctx context.Context, theme model.ThemeConfig) error
	Upload(ctx context.Context, name, mimeType string, data []byte) (Upload, error)
	FetchFile(ctx context.Context, id string) (File, error)
}

// Client calls the API over HTTP. The session's token, when set, is sent as
// the Authorization header on every request.
type Client struct {
	http        *resty.Client
	baseURL     string
	pingTimeout time.Duration
}

// NewClient creates a client for the API rooted at baseURL, e.g.
// http://localhost:9000/api.
func NewClient(baseURL string, sess *session.Session, pingTimeout time.Duration) *Client {
	baseURL = strings.TrimRight(baseURL, "/")
	c := resty.New().
		SetBaseURL(baseURL).
		SetHeader("Accept", "application/json").
		SetTimeout(2 * time.Minute).
		OnBeforeRequest(func(_ *resty.Client, r *resty.Request) error {
			if token := sess.Token(); token != "" {
				r.SetHeader("Authorization", token)
			}
			return nil
		})

	return &Client{http: c, baseURL: baseURL, pingTimeout: pingTimeout}
}

// FileURL returns the public URL of a stored file.
func (c *Client) FileURL(id string) string {
	return c.baseURL + "/file/" + url.PathEscape(id)
}

type pingResponse struct {
	OK        bool  `json:"ok"`
	Timestamp int64 `json:"timestamp"`
}

// Ping checks that the server answers within the ping timeout.
func (c *Client) Ping(ctx context.Context) error {
	if c.pingTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.pingTimeout)
		defer cancel()
	}
	var pr pingResponse
	if err := c.do(ctx, http.MethodGet, "/ping", nil, &pr); err != nil {
		return err
	}
	if !pr.OK {
		return fmt.Errorf("ping: server not ok")
	}
	return nil
}

// GetData fetches every stored list.
func (c *Client) GetData(ctx context.Context) (Data, error) {
	var d Data
	if err := c.do(ctx, http.MethodGet, "/data", nil, &d); err != nil {
		return Data{}, err
	}
	return d, nil
}

// SaveCategories replaces the server's category list.
func (c *Client) SaveCategories(ctx context.Context, categories []model.Category) error {
	if categories == nil {
		categories = []model.Category{}
	}
	return c.do(ctx, http.MethodPost, "/categories", categories, nil)
}

// SaveItems replaces the server's item list.
func (c *Client) SaveItems(ctx context.Context, items []model.BookmarkItem) error {
	if items == nil {
		items = []model.BookmarkItem{}
	}
	return c.do(ctx, http.MethodPost, "/items", items, nil)
}

type loginRequest struct {
	Password string `json:"password"`
}

type loginResponse struct {
	Success bool   `json:"success"`
	Token   string `json:"token"`
}

// Login exchanges the password for a token.
func (c *Client) Login(ctx context.Context, password string) (string, error) {
	var lr loginResponse
	if err := c.do(ctx, http.MethodPost, "/auth/login", loginRequest{Password: password}, &lr); err != nil {
		return "", err
	}
	if !lr.Success {
		return "", &APIError{StatusCode: http.StatusUnauthorized, Message: "login rejected"}
	}
	return lr.Token, nil
}

type passwordRequest struct {
	NewPassword string `json:"newPassword"`
}

// ChangePassword sets a new shared password. The caller must be logged in.
func (c *Client) ChangePassword(ctx context.Context, newPassword string) error {
	return c.do(ctx, http.MethodPost, "/auth/password", passwordRequest{NewPassword: newPassword}, nil)
}

// SaveDefaultTheme stores the theme every viewer starts from.
func (c *Client) SaveDefaultTheme(ctx context.Context, theme model.ThemeConfig) error {
	return c.do(ctx, http.MethodPost, "/theme/default", theme, nil)
}

// Upload sends data as the multipart field "file".
func (c *Client) Upload(ctx context.Context, name, mimeType string, data []byte) (Upload, error) {
	if mimeType == "" {
		mimeType = model.DefaultMIMEType
	}
	resp, err := c.http.R().
		SetContext(ctx).
		SetMultipartField("file", name, mimeType, bytes.NewReader(data)).
		Post("/upload")
	if err != nil {
		return Upload{}, fmt.Errorf("upload request: %w", err)
	}
	if err := checkStatus(resp); err != nil {
		return Upload{}, err
	}
	var up Upload
	if err := json.Unmarshal(resp.Body(), &up); err != nil {
		return Upload{}, fmt.Errorf("decode upload response: %w", err)
	}
	if up.FileID == "" {
		return Upload{}, fmt.Errorf("upload response without file id")
	}
	return up, nil
}

// FetchFile downloads a stored file.
func (c *Client) FetchFile(ctx context.Context, id string) (File, error) {
	resp, err := c.http.R().
		SetContext(ctx).
		SetPathParam("id", id).
		Get("/file/{id}")
	if err != nil {
		return File{}, fmt.Errorf("file request: %w", err)
	}
	if err := checkStatus(resp); err != nil {
		return File{}, err
	}
	name := "file"
	if raw := resp.Header().Get("X-File-Name"); raw != "" {
		if n, err := url.PathUnescape(raw); err == nil {
			name = n
		} else {
			name = raw
		}
	}
	mimeType := resp.Header().Get("Content-Type")
	if mimeType == "" {
		mimeType = model.DefaultMIMEType
	}
	return File{Name: name, Type: mimeType, Data: resp.Body()}, nil
}

// do sends a JSON request and decodes a JSON response into out when non-nil.
func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	req := c.http.R().SetContext(ctx)
	if body != nil {
		req.SetBody(body)
	}
	resp, err := req.Execute(method, path)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	if err := checkStatus(resp); err != nil {
		return err
	}
	if out == nil {
		return nil
	}
	if err := json.Unmarshal(resp.Body(), out); err != nil {
		return fmt.Errorf("decode %s response: %w", path, err)
	}
	return nil
}
