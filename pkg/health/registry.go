package health

import (
	"context"
	"time"

	"golang.org/x/sync/errgroup"
)

// Registry holds the health checkers of one service.
type Registry struct {
	service  string
	checkers []Checker
}

// NewRegistry creates a new health check registry for the named service.
func NewRegistry(service string, checkers ...Checker) *Registry {
	return &Registry{service: service, checkers: checkers}
}

func (r *Registry) Service() string {
	return r.service
}

// CheckResult is the result of a single named check.
type CheckResult struct {
	Name      string `json:"name"`
	Status    Status `json:"status"`
	Message   string `json:"message,omitempty"`
	LatencyMs int64  `json:"latency_ms"`
}

// ReadinessResponse is the aggregated readiness check response.
type ReadinessResponse struct {
	Service string        `json:"service"`
	Status  Status        `json:"status"`
	Checks  []CheckResult `json:"checks,omitempty"`
}

// CheckAll runs all registered checkers in parallel. Overall status is down if
// any single check is down.
func (r *Registry) CheckAll(ctx context.Context) ReadinessResponse {
	if len(r.checkers) == 0 {
		return ReadinessResponse{Service: r.service, Status: StatusUp}
	}

	results := make([]CheckResult, len(r.checkers))
	var g errgroup.Group
	for i, checker := range r.checkers {
		i, checker := i, checker
		g.Go(func() error {
			start := time.Now()
			res := checker.Check(ctx)
			results[i] = CheckResult{
				Name:      checker.Name(),
				Status:    res.Status,
				Message:   res.Message,
				LatencyMs: time.Since(start).Milliseconds(),
			}
			return nil
		})
	}
	_ = g.Wait()

	overall := StatusUp
	for _, res := range results {
		if res.Status == StatusDown {
			overall = StatusDown
			break
		}
	}

	return ReadinessResponse{Service: r.service, Status: overall, Checks: results}
}
