package parkingclient

import (
	"io"

	internalaudit "github.com/amitkrsingh19/parking-client/internal/audit"
	internalmetrics "github.com/amitkrsingh19/parking-client/internal/metrics"
)

// AuditEvent is a structured audit record emitted by the session controller.
type AuditEvent = internalaudit.Event

// AuditSink receives [AuditEvent] values from the client's audit dispatcher.
type AuditSink = internalaudit.Sink

// NoOpSink is an [AuditSink] that silently discards all events.
type NoOpSink = internalaudit.NoOpSink

// ChannelSink is a buffered channel-based [AuditSink].
type ChannelSink = internalaudit.ChannelSink

// JSONWriterSink is an [AuditSink] that writes JSON-encoded events to an
// [io.Writer].
type JSONWriterSink = internalaudit.JSONWriterSink

// NewChannelSink creates a [ChannelSink] with the given buffer capacity.
func NewChannelSink(buffer int) *ChannelSink {
	return internalaudit.NewChannelSink(buffer)
}

// NewJSONWriterSink creates a [JSONWriterSink] that writes to w.
func NewJSONWriterSink(w io.Writer) *JSONWriterSink {
	return internalaudit.NewJSONWriterSink(w)
}

// MetricID identifies a specific counter or histogram bucket in the
// in-process metrics system.
type MetricID = internalmetrics.MetricID

const (
	// MetricLoginSuccess is an exported constant or variable used by the session controller.
	MetricLoginSuccess = MetricID(internalmetrics.MetricLoginSuccess)
	// MetricLoginFailure is an exported constant or variable used by the session controller.
	MetricLoginFailure = MetricID(internalmetrics.MetricLoginFailure)
	// MetricLogout is an exported constant or variable used by the session controller.
	MetricLogout = MetricID(internalmetrics.MetricLogout)
	// MetricForcedLogout is an exported constant or variable used by the session controller.
	MetricForcedLogout = MetricID(internalmetrics.MetricForcedLogout)
	// MetricSessionRestored is an exported constant or variable used by the session controller.
	MetricSessionRestored = MetricID(internalmetrics.MetricSessionRestored)
	// MetricClaimsDecodeFailure is an exported constant or variable used by the session controller.
	MetricClaimsDecodeFailure = MetricID(internalmetrics.MetricClaimsDecodeFailure)
	// MetricRequestUnauthorized is an exported constant or variable used by the session controller.
	MetricRequestUnauthorized = MetricID(internalmetrics.MetricRequestUnauthorized)
	// MetricRequestLatency is an exported constant or variable used by the session controller.
	MetricRequestLatency = MetricID(internalmetrics.MetricRequestLatency)
)

// Metrics holds atomic counters and optional latency histograms.
type Metrics = internalmetrics.Metrics

// MetricsSnapshot is a point-in-time deep copy of all metrics.
type MetricsSnapshot = internalmetrics.Snapshot

// NewMetrics creates a new [Metrics] instance configured by the given
// [MetricsConfig]. When Enabled is false, all operations are no-ops.
func NewMetrics(cfg MetricsConfig) *Metrics {
	return internalmetrics.New(internalmetrics.Config{
		Enabled:       cfg.Enabled,
		EnableLatency: cfg.EnableLatencyHistograms,
	})
}
