// Package broadcast distributes enriched tracking messages to every
// connected subscriber.
//
// The hub implements a fan-out pattern over Go channels: a message
// published to the hub is offered to each subscriber's channel without
// blocking. A subscriber whose channel is full has that message dropped
// rather than queued, so a slow viewer falls behind on its own and never
// stalls the tracker or the other viewers. Per-subscriber channel FIFO
// preserves publish order for everyone who keeps up.
//
// All methods are safe for concurrent use; Subscribe and Unsubscribe may
// be called while publishes are in flight.
package broadcast
