// Package notify sends push notifications through the Pushover messages API.
package notify

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/rileyhilliard/upwatch/internal/errors"
)

// PushoverURL is the Pushover messages endpoint.
const PushoverURL = "https://api.pushover.net/1/messages.json"

const defaultTimeout = 10 * time.Second

// Pushover posts messages to Pushover using an application token and a
// user key.
type Pushover struct {
	token    string
	user     string
	endpoint string
	client   *http.Client
}

// NewPushover creates a Pushover client for the given credentials.
func NewPushover(token, user string) *Pushover {
	return &Pushover{
		token:    token,
		user:     user,
		endpoint: PushoverURL,
		client:   &http.Client{Timeout: defaultTimeout},
	}
}

// SetEndpoint overrides the API URL. Used by tests.
func (p *Pushover) SetEndpoint(endpoint string) {
	p.endpoint = endpoint
}

// Notify sends title and message in a single request. Errors carry the
// ErrNotify code; callers treat them as best-effort and never retry.
func (p *Pushover) Notify(ctx context.Context, title, message string) error {
	form := url.Values{}
	form.Set("token", p.token)
	form.Set("user", p.user)
	form.Set("message", message)
	if title != "" {
		form.Set("title", title)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.endpoint, strings.NewReader(form.Encode()))
	if err != nil {
		return errors.WrapWithCode(err, errors.ErrNotify, "Failed to build Pushover request", "")
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := p.client.Do(req)
	if err != nil {
		return errors.WrapWithCode(err, errors.ErrNotify, "Failed to reach Pushover", "")
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return errors.New(errors.ErrNotify,
			fmt.Sprintf("Pushover returned %d: %s", resp.StatusCode, strings.TrimSpace(string(body))),
			"Check the token and user key in the environment")
	}
	_, _ = io.Copy(io.Discard, resp.Body)

	return nil
}
