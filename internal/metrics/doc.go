// Package metrics implements the in-process counter and latency-histogram
// state behind the root package's metrics API. Counters are lock-free and
// padded to avoid false sharing between hot paths.
package metrics
