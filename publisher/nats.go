// Package publisher mirrors enriched tracking updates onto NATS subjects
// so that backend consumers can tap the live stream without holding a
// websocket.
package publisher

import (
	"encoding/json"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/nats-io/nats.go"

	"github.com/theoremus-urban-solutions/bus-tracker/metrics"
	"github.com/theoremus-urban-solutions/bus-tracker/tracker"
)

// NATSPublisher publishes enriched updates to <prefix>.<routeKey>.<busId>.
type NATSPublisher struct {
	nc      *nats.Conn
	prefix  string
	metrics *metrics.Collector
}

// NewNATSPublisher connects to NATS. The metrics collector may be nil.
func NewNATSPublisher(url, subjectPrefix string, m *metrics.Collector) (*NATSPublisher, error) {
	nc, err := nats.Connect(url,
		nats.Name("bus-tracker"),
		nats.DisconnectHandler(func(_ *nats.Conn) {
			if m != nil {
				m.NATSConnected.Set(0)
			}
			log.Printf("nats disconnected")
		}),
		nats.ReconnectHandler(func(_ *nats.Conn) {
			if m != nil {
				m.NATSConnected.Set(1)
			}
			log.Printf("nats reconnected")
		}),
		nats.ClosedHandler(func(_ *nats.Conn) {
			if m != nil {
				m.NATSConnected.Set(0)
			}
			log.Printf("nats closed")
		}),
	)
	if err != nil {
		return nil, err
	}
	if m != nil {
		m.NATSConnected.Set(1)
	}
	return &NATSPublisher{nc: nc, prefix: subjectPrefix, metrics: m}, nil
}

func (p *NATSPublisher) Close() {
	if p.nc != nil {
		_ = p.nc.Drain()
		p.nc.Close()
	}
}

// PublishUpdate mirrors one enriched update. Errors are counted and
// logged by the caller; a NATS outage never affects websocket delivery.
func (p *NATSPublisher) PublishUpdate(routeKey string, u *tracker.Update) error {
	subject := fmt.Sprintf("%s.%s.%s", p.prefix, subjectToken(routeKey), subjectToken(u.BusID))
	b, err := json.Marshal(u)
	if err != nil {
		return err
	}
	start := time.Now()
	err = p.nc.Publish(subject, b)
	if p.metrics != nil {
		p.metrics.PublishDuration.Observe(time.Since(start).Seconds())
		if err != nil {
			p.metrics.NATSPublishErrs.Inc()
		} else {
			p.metrics.NATSPublished.Inc()
		}
	}
	return err
}

// subjectToken sanitizes a value for use as a NATS subject token.
func subjectToken(s string) string {
	s = strings.TrimSpace(s)
	repl := strings.NewReplacer(" ", "_", ".", "_", ">", "_", "*", "_", "/", "_", "(", "", ")", "", "\t", "_")
	s = repl.Replace(s)
	if s == "" {
		s = "_"
	}
	return s
}
