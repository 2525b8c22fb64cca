package remote

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bookmarkhub/internal/model"
	"bookmarkhub/internal/session"
)

func newTestClient(t *testing.T, h http.Handler) (*Client, *session.Session) {
	t.Helper()
	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)
	sess := session.New()
	return NewClient(srv.URL+"/api/", sess, time.Second), sess
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func TestClient_Ping(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/ping", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]any{"ok": true, "timestamp": 1})
	})
	c, _ := newTestClient(t, mux)

	require.NoError(t, c.Ping(context.Background()))
}

func TestClient_PingTimeout(t *testing.T) {
	release := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-release:
		case <-r.Context().Done():
		}
	}))
	t.Cleanup(srv.Close)
	t.Cleanup(func() { close(release) })

	c := NewClient(srv.URL+"/api", session.New(), 50*time.Millisecond)
	start := time.Now()
	err := c.Ping(context.Background())
	assert.Error(t, err)
	assert.Less(t, time.Since(start), 5*time.Second)
}

func TestClient_GetData(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/data", func(w http.ResponseWriter, r *http.Request) {
		_, _ = io.WriteString(w, `{
			"categories":[{"id":"a","name":"A","parentId":null,"order":0}],
			"items":[{"id":"i","type":"note","title":"N","categoryId":"a","createdAt":1,"order":0,"content":"hi"}],
			"settings":{},
			"defaultTheme":null}`)
	})
	c, _ := newTestClient(t, mux)

	d, err := c.GetData(context.Background())
	require.NoError(t, err)
	require.Len(t, d.Categories, 1)
	assert.Nil(t, d.Categories[0].ParentID)
	require.Len(t, d.Items, 1)
	assert.Equal(t, model.Note{Content: "hi"}, d.Items[0].Payload)
	assert.Nil(t, d.DefaultTheme)
}

func TestClient_SendsToken(t *testing.T) {
	var gotAuth string
	var got []model.Category
	mux := http.NewServeMux()
	mux.HandleFunc("POST /api/categories", func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		_ = json.NewDecoder(r.Body).Decode(&got)
		writeJSON(w, http.StatusOK, map[string]bool{"success": true})
	})
	c, sess := newTestClient(t, mux)
	sess.SetToken("admin")

	err := c.SaveCategories(context.Background(), []model.Category{{ID: "a", Name: "A"}})
	require.NoError(t, err)
	assert.Equal(t, "admin", gotAuth)
	assert.Equal(t, []model.Category{{ID: "a", Name: "A"}}, got)

	require.NoError(t, c.SaveCategories(context.Background(), nil))
	assert.Empty(t, got)
}

func TestClient_Login(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("POST /api/auth/login", func(w http.ResponseWriter, r *http.Request) {
		var req loginRequest
		_ = json.NewDecoder(r.Body).Decode(&req)
		if req.Password != "admin" {
			writeJSON(w, http.StatusUnauthorized, map[string]string{"error": "Wrong password"})
			return
		}
		writeJSON(w, http.StatusOK, loginResponse{Success: true, Token: req.Password})
	})
	c, _ := newTestClient(t, mux)

	token, err := c.Login(context.Background(), "admin")
	require.NoError(t, err)
	assert.Equal(t, "admin", token)

	_, err = c.Login(context.Background(), "nope")
	require.Error(t, err)
	assert.True(t, IsUnauthorized(err))
	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, "Wrong password", apiErr.Message)
}

func TestClient_Upload(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("POST /api/upload", func(w http.ResponseWriter, r *http.Request) {
		f, h, err := r.FormFile("file")
		if err != nil {
			writeJSON(w, http.StatusBadRequest, map[string]string{"error": "No file"})
			return
		}
		defer f.Close()
		data, _ := io.ReadAll(f)
		writeJSON(w, http.StatusOK, map[string]any{
			"success": true,
			"fileId":  "file_1_abc",
			"url":     "/api/file/file_1_abc",
			"name":    h.Filename,
			"type":    h.Header.Get("Content-Type"),
			"size":    len(data),
		})
	})
	c, _ := newTestClient(t, mux)

	up, err := c.Upload(context.Background(), "a b.txt", "text/plain", []byte("hello"))
	require.NoError(t, err)
	assert.Equal(t, Upload{FileID: "file_1_abc", URL: "/api/file/file_1_abc", Name: "a b.txt", Type: "text/plain", Size: 5}, up)
}

func TestClient_FetchFile(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/file/{id}", func(w http.ResponseWriter, r *http.Request) {
		if r.PathValue("id") != "file_1" {
			writeJSON(w, http.StatusNotFound, map[string]string{"error": "File not found"})
			return
		}
		w.Header().Set("Content-Type", "text/plain")
		w.Header().Set("X-File-Name", "my%20notes.txt")
		_, _ = io.WriteString(w, "hello")
	})
	c, _ := newTestClient(t, mux)

	f, err := c.FetchFile(context.Background(), "file_1")
	require.NoError(t, err)
	assert.Equal(t, File{Name: "my notes.txt", Type: "text/plain", Data: []byte("hello")}, f)

	_, err = c.FetchFile(context.Background(), "file_2")
	assert.True(t, IsNotFound(err))
}

func TestClient_FileURL(t *testing.T) {
	c := NewClient("http://host/api/", session.New(), time.Second)
	assert.Equal(t, "http://host/api/file/file_1", c.FileURL("file_1"))
}

func TestAPIError(t *testing.T) {
	tests := []struct {
		name string
		err  *APIError
		want string
	}{
		{name: "with message", err: &APIError{StatusCode: 401, Message: "Unauthorized"}, want: "api: HTTP 401: Unauthorized"},
		{name: "without message", err: &APIError{StatusCode: 502}, want: "api: HTTP 502"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.err.Error())
		})
	}
}
