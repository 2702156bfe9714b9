package main

import (
	"log"

	bustracker "github.com/theoremus-urban-solutions/bus-tracker"
	"github.com/theoremus-urban-solutions/bus-tracker/config"
	"github.com/theoremus-urban-solutions/bus-tracker/metrics"
	"github.com/theoremus-urban-solutions/bus-tracker/publisher"
)

func main() {
	bustracker.InitLogging()
	if err := config.Load(); err != nil {
		log.Fatalf("config error: %v", err)
	}
	cfg := config.Config

	var mcol *metrics.Collector
	if cfg.Metrics.Addr != "" {
		mcol = metrics.NewCollector()
		mcol.Serve(cfg.Metrics.Addr)
	}

	var pub *publisher.NATSPublisher
	if cfg.NATS.URL != "" {
		var err error
		pub, err = publisher.NewNATSPublisher(cfg.NATS.URL, cfg.NATS.SubjectPrefix, mcol)
		if err != nil {
			log.Fatalf("nats error: %v", err)
		}
		log.Printf("mirroring updates to NATS at %s", cfg.NATS.URL)
	}

	srv := bustracker.NewServer(cfg, mcol, pub)
	srv.Start()
	srv.HandleGracefulShutdown()
}
