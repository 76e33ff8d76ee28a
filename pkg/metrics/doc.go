// Package metrics exports Prometheus metrics for Vipps API calls.
//
// # Collector
//
// A Collector implements transport.Observer and plugs into token.Client as
// its refresh hook:
//
//	reg := prometheus.NewRegistry()
//	collector := metrics.NewCollectorWithRegistry(reg)
//	vipps, err := sdk.New(cfg, sdk.WithObserver(collector))
//
// # Metrics
//
//	vipps_requests_total{method,path,status}     counter
//	vipps_request_duration_seconds{method,path}  histogram
//	vipps_retries_total{method,path}             counter
//	vipps_token_refreshes_total{result}          counter
//
// The status label is "error" when no response was received.
//
// # Paths
//
// Payment and session references are replaced by "{reference}" (see
// NormalizePath) so label cardinality stays bounded.
package metrics
