// Package probe implements the liveness check against the monitored endpoint.
package probe

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/rileyhilliard/upwatch/internal/errors"
	"github.com/rileyhilliard/upwatch/internal/logger"
)

// HTTPChecker reports whether an HTTP endpoint is up. A check never returns
// an error: transport failures, timeouts and non-2xx statuses all read as down.
type HTTPChecker struct {
	url    string
	client *http.Client
	log    logger.Logger
}

// NewHTTPChecker creates a checker for url whose requests are bounded by timeout.
func NewHTTPChecker(url string, timeout time.Duration) *HTTPChecker {
	return &HTTPChecker{
		url:    url,
		client: &http.Client{Timeout: timeout},
		log:    logger.NewEnvLogger("[probe]"),
	}
}

// SetLogger replaces the checker's logger.
func (c *HTTPChecker) SetLogger(l logger.Logger) {
	c.log = l
}

// Check performs a single GET. No retries.
func (c *HTTPChecker) Check(ctx context.Context) bool {
	start := time.Now()
	err := c.get(ctx)
	elapsed := time.Since(start).Round(time.Millisecond)
	if err != nil {
		c.log.Debug("GET %s down after %s: %v", c.url, elapsed, err)
		return false
	}
	c.log.Debug("GET %s up in %s", c.url, elapsed)
	return true
}

// get returns nil when the endpoint answered 2xx, otherwise an ErrCheck error.
func (c *HTTPChecker) get(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.url, nil)
	if err != nil {
		return errors.Wrap(err, "Invalid endpoint "+c.url)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return errors.Wrap(err, "Request to "+c.url+" failed")
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, resp.Body)

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return errors.New(errors.ErrCheck,
			fmt.Sprintf("%s returned %d", c.url, resp.StatusCode), "")
	}
	return nil
}
