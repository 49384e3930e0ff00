package notify

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/rileyhilliard/upwatch/internal/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPushover_Notify(t *testing.T) {
	var got struct {
		method      string
		contentType string
		token       string
		user        string
		title       string
		message     string
	}

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseForm())
		got.method = r.Method
		got.contentType = r.Header.Get("Content-Type")
		got.token = r.PostForm.Get("token")
		got.user = r.PostForm.Get("user")
		got.title = r.PostForm.Get("title")
		got.message = r.PostForm.Get("message")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"status":1}`))
	}))
	defer srv.Close()

	p := NewPushover("app-token", "user-key")
	p.SetEndpoint(srv.URL)

	err := p.Notify(context.Background(), "upwatch", "Server https://example.com/ping is down!")
	require.NoError(t, err)

	assert.Equal(t, http.MethodPost, got.method)
	assert.Equal(t, "application/x-www-form-urlencoded", got.contentType)
	assert.Equal(t, "app-token", got.token)
	assert.Equal(t, "user-key", got.user)
	assert.Equal(t, "upwatch", got.title)
	assert.Equal(t, "Server https://example.com/ping is down!", got.message)
}

func TestPushover_OmitsEmptyTitle(t *testing.T) {
	hasTitle := true
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseForm())
		_, hasTitle = r.PostForm["title"]
	}))
	defer srv.Close()

	p := NewPushover("t", "u")
	p.SetEndpoint(srv.URL)

	require.NoError(t, p.Notify(context.Background(), "", "down"))
	assert.False(t, hasTitle)
}

func TestPushover_RejectedRequest(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"token":"invalid","status":0}`))
	}))
	defer srv.Close()

	p := NewPushover("bad", "u")
	p.SetEndpoint(srv.URL)

	err := p.Notify(context.Background(), "", "down")
	require.Error(t, err)
	assert.True(t, errors.IsCode(err, errors.ErrNotify))
	assert.Contains(t, err.Error(), "400")
	assert.Contains(t, err.Error(), "invalid")
}

func TestPushover_Unreachable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	endpoint := srv.URL
	srv.Close()

	p := NewPushover("t", "u")
	p.SetEndpoint(endpoint)

	err := p.Notify(context.Background(), "", "down")
	require.Error(t, err)
	assert.True(t, errors.IsCode(err, errors.ErrNotify))
}

func TestPushover_DefaultEndpoint(t *testing.T) {
	p := NewPushover("t", "u")
	assert.Equal(t, PushoverURL, p.endpoint)
}
