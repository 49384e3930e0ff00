// Package doctor implements the diagnostic checks behind `upwatch doctor`.
package doctor

import (
	"context"
	"fmt"
	"time"

	"github.com/rileyhilliard/upwatch/internal/config"
)

// CheckStatus represents the result status of a check.
type CheckStatus int

const (
	StatusPass CheckStatus = iota
	StatusWarn
	StatusFail
)

// String returns a human-readable status string.
func (s CheckStatus) String() string {
	switch s {
	case StatusPass:
		return "pass"
	case StatusWarn:
		return "warn"
	case StatusFail:
		return "fail"
	default:
		return "unknown"
	}
}

// CheckResult contains the outcome of running a check.
type CheckResult struct {
	Name       string
	Status     CheckStatus
	Message    string
	Suggestion string
}

// Check is a single diagnostic.
type Check interface {
	Name() string
	Run(ctx context.Context) CheckResult
}

// Prober is the liveness check the endpoint diagnostic drives.
type Prober interface {
	Check(ctx context.Context) bool
}

// RunAll executes checks in order.
func RunAll(ctx context.Context, checks []Check) []CheckResult {
	results := make([]CheckResult, len(checks))
	for i, check := range checks {
		results[i] = check.Run(ctx)
	}
	return results
}

// HasFailures returns true if any result has a fail status.
func HasFailures(results []CheckResult) bool {
	for _, r := range results {
		if r.Status == StatusFail {
			return true
		}
	}
	return false
}

// CredentialsCheck verifies the Pushover secrets are present.
type CredentialsCheck struct {
	Config *config.Config
}

func (c *CredentialsCheck) Name() string { return "pushover_credentials" }

func (c *CredentialsCheck) Run(ctx context.Context) CheckResult {
	var missing []string
	if c.Config.Pushover.Token == "" {
		missing = append(missing, config.EnvPushoverToken)
	}
	if c.Config.Pushover.User == "" {
		missing = append(missing, config.EnvPushoverUser)
	}

	switch len(missing) {
	case 0:
		return CheckResult{Name: c.Name(), Status: StatusPass, Message: "Pushover credentials set"}
	case 1:
		return CheckResult{
			Name:       c.Name(),
			Status:     StatusFail,
			Message:    missing[0] + " is not set",
			Suggestion: "export " + missing[0] + "=...",
		}
	default:
		return CheckResult{
			Name:       c.Name(),
			Status:     StatusFail,
			Message:    fmt.Sprintf("%s and %s are not set", missing[0], missing[1]),
			Suggestion: "Export both variables before starting upwatch",
		}
	}
}

// EndpointCheck runs one liveness check against the configured endpoint.
// A down endpoint is a warning, not a failure: the monitor still starts.
type EndpointCheck struct {
	Endpoint string
	Prober   Prober
}

func (c *EndpointCheck) Name() string { return "endpoint" }

func (c *EndpointCheck) Run(ctx context.Context) CheckResult {
	start := time.Now()
	if c.Prober.Check(ctx) {
		return CheckResult{
			Name:    c.Name(),
			Status:  StatusPass,
			Message: fmt.Sprintf("%s is up (%s)", c.Endpoint, time.Since(start).Round(time.Millisecond)),
		}
	}
	return CheckResult{
		Name:       c.Name(),
		Status:     StatusWarn,
		Message:    c.Endpoint + " is down",
		Suggestion: "upwatch will report DOWN until the endpoint answers with a 2xx",
	}
}
