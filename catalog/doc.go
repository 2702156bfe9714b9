// Package catalog holds the static route definitions and the bus roster.
//
// Routes are fixed at compile time: an ordered stop list per direction and
// an optional dense road polyline for finer-grained progress display.
// The catalog is read-only after startup; every lookup is total and
// concurrency-safe without synchronization.
package catalog
