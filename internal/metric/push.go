package metric

import (
	"context"
	"errors"
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/push"
)

// Push replaces the job's metric group on the Pushgateway with everything
// gathered by g.
func Push(ctx context.Context, url, job string, g prometheus.Gatherer) error {
	if url == "" {
		return errors.New("pushgateway url is not configured")
	}
	if err := push.New(url, job).Gatherer(g).PushContext(ctx); err != nil {
		return fmt.Errorf("failed to push metrics to %s: %w", url, err)
	}
	return nil
}

// Pusher flushes one gatherer to a fixed Pushgateway job.
type Pusher struct {
	url      string
	job      string
	gatherer prometheus.Gatherer
}

func NewPusher(url, job string, g prometheus.Gatherer) *Pusher {
	return &Pusher{url: url, job: job, gatherer: g}
}

func (p *Pusher) Flush(ctx context.Context) error {
	return Push(ctx, p.url, p.job, p.gatherer)
}
