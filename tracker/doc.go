// Package tracker maintains live per-bus progress along a route.
//
// This package handles:
// - Lazy creation of a progress record on the first ping for a bus
// - Matching noisy GPS samples against the route's stop sequence
// - Arrival, skip and drift detection with cyclic end-of-route rollover
// - Distance and ETA enrichment of every position report
//
// Records live for the process lifetime and are keyed by bus identifier.
// Updates for the same bus are serialized; different buses process in
// parallel.
package tracker
