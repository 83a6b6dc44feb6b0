// Package audit carries structured session-lifecycle events from the client
// to caller-supplied sinks. The client itself never logs; whether and how an
// event becomes a log line is entirely the sink's decision.
package audit
