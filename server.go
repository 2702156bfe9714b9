// Package bustracker is the HTTP and websocket surface of the bus
// tracking server: it accepts driver position reports, serves the static
// schedule and roster, and streams enriched updates to passengers.
package bustracker

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"

	"github.com/theoremus-urban-solutions/bus-tracker/broadcast"
	"github.com/theoremus-urban-solutions/bus-tracker/config"
	"github.com/theoremus-urban-solutions/bus-tracker/metrics"
	"github.com/theoremus-urban-solutions/bus-tracker/publisher"
	"github.com/theoremus-urban-solutions/bus-tracker/tracker"
)

// Server wires the tracker, the broadcast hub and the optional NATS
// mirror behind the HTTP surface.
type Server struct {
	cfg     config.AppConfig
	tracker *tracker.Tracker
	hub     *broadcast.Hub
	nats    *publisher.NATSPublisher
	metrics *metrics.Collector

	httpSrv *http.Server
}

// NewServer assembles a server from configuration. The metrics collector
// and NATS publisher may be nil.
func NewServer(cfg config.AppConfig, m *metrics.Collector, nats *publisher.NATSPublisher) *Server {
	s := &Server{
		cfg: cfg,
		tracker: tracker.New(tracker.Options{
			ArrivalThresholdMeters:  cfg.Tracker.ArrivalThresholdMeters,
			DriftThresholdMeters:    cfg.Tracker.DriftThresholdMeters,
			DepartedThresholdMeters: cfg.Tracker.DepartedThresholdMeters,
			AverageSpeedKPH:         cfg.Tracker.AverageSpeedKPH,
		}, m),
		hub:     broadcast.NewHub(m),
		nats:    nats,
		metrics: m,
	}
	// Broadcast runs under the per-bus lock so every subscriber sees
	// same-bus updates in processing order.
	s.tracker.OnUpdate(s.broadcastUpdate)
	return s
}

// Router builds the HTTP route table.
func (s *Server) Router() http.Handler {
	r := mux.NewRouter()

	r.HandleFunc("/update", s.handleUpdate).Methods("POST")
	r.HandleFunc("/schedule", s.handleSchedule).Methods("GET")
	r.HandleFunc("/buses", s.handleBuses).Methods("GET")
	r.HandleFunc("/ws", s.handleWS).Methods("GET")
	r.HandleFunc("/api/health", s.handleHealth).Methods("GET")

	return s.corsMiddleware(r)
}

// corsMiddleware adds CORS headers to all responses. Driver and passenger
// apps call from webview and emulator origins.
func (s *Server) corsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "POST, GET, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")

		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusNoContent)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// Start begins listening in the background.
func (s *Server) Start() {
	addr := fmt.Sprintf(":%d", s.cfg.Server.Port)
	s.httpSrv = &http.Server{
		Addr:              addr,
		Handler:           s.Router(),
		ReadHeaderTimeout: 5 * time.Second,
		// No server-wide read/write timeouts: the websocket endpoint
		// holds its connection open for the whole tracking session.
		IdleTimeout: 60 * time.Second,
	}
	go func() {
		if err := s.httpSrv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("server error: %v", err)
		}
	}()
	log.Printf("server listening on %s", addr)
}

// HandleGracefulShutdown blocks until SIGINT/SIGTERM, then drains the
// HTTP server, the broadcast hub and the NATS mirror.
func (s *Server) HandleGracefulShutdown() {
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	<-sigs
	log.Printf("shutdown signal received")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if s.httpSrv != nil {
		if err := s.httpSrv.Shutdown(ctx); err != nil {
			log.Printf("server shutdown error: %v", err)
		} else {
			log.Printf("server shut down successfully")
		}
	}
	_ = s.hub.Close()
	if s.nats != nil {
		s.nats.Close()
	}
}
