package internaldefs

import (
	parkingclient "github.com/amitkrsingh19/parking-client"
)

// CounterDef defines a public type used by parking-client APIs.
//
// CounterDef instances are intended to be configured during initialization and then treated as immutable unless documented otherwise.
type CounterDef struct {
	ID   parkingclient.MetricID
	Name string
	Help string
}

// HistogramDef defines a public type used by parking-client APIs.
//
// HistogramDef instances are intended to be configured during initialization and then treated as immutable unless documented otherwise.
type HistogramDef struct {
	ID   parkingclient.MetricID
	Name string
	Help string
}

// CounterDefs is an exported constant or variable used by the session controller.
var CounterDefs = []CounterDef{
	{ID: parkingclient.MetricLoginSuccess, Name: "parking_client_login_success_total", Help: "Successful login adoptions."},
	{ID: parkingclient.MetricLoginFailure, Name: "parking_client_login_failure_total", Help: "Rejected or failed login attempts."},
	{ID: parkingclient.MetricLogout, Name: "parking_client_logout_total", Help: "Explicit logout operations."},
	{ID: parkingclient.MetricForcedLogout, Name: "parking_client_forced_logout_total", Help: "Logouts forced by 401 responses."},
	{ID: parkingclient.MetricSessionRestored, Name: "parking_client_session_restored_total", Help: "Sessions hydrated from the persisted store."},
	{ID: parkingclient.MetricClaimsDecodeFailure, Name: "parking_client_claims_decode_failure_total", Help: "Credentials whose claims payload could not be decoded."},
	{ID: parkingclient.MetricRequestUnauthorized, Name: "parking_client_request_unauthorized_total", Help: "Requests rejected with 401 by the gateway."},
}

// HistogramDefs is an exported constant or variable used by the session controller.
var HistogramDefs = []HistogramDef{
	{ID: parkingclient.MetricRequestLatency, Name: "parking_client_request_latency_seconds", Help: "Outbound request latency histogram."},
}

// HistogramBounds is an exported constant or variable used by the session controller.
var HistogramBounds = []string{
	"0.005",
	"0.01",
	"0.025",
	"0.05",
	"0.1",
	"0.25",
	"0.5",
	"+Inf",
}

// HistogramBoundSuffix is an exported constant or variable used by the session controller.
var HistogramBoundSuffix = []string{
	"0_005",
	"0_01",
	"0_025",
	"0_05",
	"0_1",
	"0_25",
	"0_5",
	"inf",
}

// NormalizeBuckets describes the normalizebuckets operation and its observable behavior.
//
// NormalizeBuckets may return an error when input validation, dependency calls, or security checks fail.
// NormalizeBuckets does not mutate shared global state and can be used concurrently when the receiver and dependencies are concurrently safe.
func NormalizeBuckets(raw []uint64) [8]uint64 {
	var out [8]uint64
	for i := 0; i < len(out) && i < len(raw); i++ {
		out[i] = raw[i]
	}
	return out
}

// CumulativeBuckets describes the cumulativebuckets operation and its observable behavior.
//
// CumulativeBuckets may return an error when input validation, dependency calls, or security checks fail.
// CumulativeBuckets does not mutate shared global state and can be used concurrently when the receiver and dependencies are concurrently safe.
func CumulativeBuckets(raw [8]uint64) [8]uint64 {
	var out [8]uint64
	var running uint64
	for i := 0; i < len(raw); i++ {
		running += raw[i]
		out[i] = running
	}
	return out
}
