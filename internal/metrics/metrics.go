// Package metrics publishes operation telemetry over statsd. When no
// address is configured every call is a no-op, so library consumers
// without a metrics sink pay nothing.
package metrics

import (
	"time"

	"github.com/DataDog/datadog-go/v5/statsd"
	"github.com/rs/zerolog/log"
)

// Metric names published by the command adapter.
const (
	BytesIn          = "compress.bytes_in"
	BytesOut         = "compress.bytes_out"
	Ratio            = "compress.ratio"
	OperationLatency = "compress.operation_latency"
	OperationErrors  = "compress.operation_errors"
)

// Client wraps a statsd client. The zero value is a disabled client.
type Client struct {
	statsd *statsd.Client
}

// New connects a statsd client to addr. An empty addr returns a
// disabled client; a connection failure is logged and also yields a
// disabled client rather than failing the caller.
func New(addr string, tags []string) *Client {
	if addr == "" {
		return &Client{}
	}
	c, err := statsd.New(addr, statsd.WithTags(tags))
	if err != nil {
		log.Warn().Err(err).Msgf("statsd client init failed for %s, metrics disabled", addr)
		return &Client{}
	}
	return &Client{statsd: c}
}

// Gauge records an instantaneous value.
func (c *Client) Gauge(name string, value float64, tags []string) {
	if c.statsd == nil {
		return
	}
	if err := c.statsd.Gauge(name, value, tags, 1); err != nil {
		log.Warn().Err(err).Msgf("statsd gauge %s failed", name)
	}
}

// Count increments a counter by value.
func (c *Client) Count(name string, value int64, tags []string) {
	if c.statsd == nil {
		return
	}
	if err := c.statsd.Count(name, value, tags, 1); err != nil {
		log.Warn().Err(err).Msgf("statsd count %s failed", name)
	}
}

// Timing records a duration.
func (c *Client) Timing(name string, value time.Duration, tags []string) {
	if c.statsd == nil {
		return
	}
	if err := c.statsd.Timing(name, value, tags, 1); err != nil {
		log.Warn().Err(err).Msgf("statsd timing %s failed", name)
	}
}

// Close flushes and closes the underlying client.
func (c *Client) Close() {
	if c.statsd != nil {
		_ = c.statsd.Close()
	}
}
