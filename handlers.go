package bustracker

import (
	"encoding/json"
	"io"
	"log"
	"net/http"

	"github.com/go-playground/validator/v10"

	"github.com/theoremus-urban-solutions/bus-tracker/catalog"
	"github.com/theoremus-urban-solutions/bus-tracker/tracker"
)

var validate = validator.New()

// positionReport is the wire shape of a driver position report. Pointer
// fields distinguish absent from zero; anything else in the body is
// passthrough and echoed back enriched.
type positionReport struct {
	BusID      *string  `json:"busId" validate:"required"`
	Lat        *float64 `json:"lat" validate:"required,gte=-90,lte=90"`
	Lng        *float64 `json:"lng" validate:"required,gte=-180,lte=180"`
	SeatStatus string   `json:"seatStatus"`
}

type errorPayload struct {
	Error string `json:"error"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// parseReport validates the request body and splits it into the typed
// report plus the passthrough fields.
func parseReport(body []byte) (tracker.Report, error) {
	var pr positionReport
	if err := json.Unmarshal(body, &pr); err != nil {
		return tracker.Report{}, err
	}
	if err := validate.Struct(pr); err != nil {
		return tracker.Report{}, err
	}

	var raw map[string]json.RawMessage
	if err := json.Unmarshal(body, &raw); err != nil {
		return tracker.Report{}, err
	}
	for _, known := range []string{"busId", "lat", "lng", "seatStatus"} {
		delete(raw, known)
	}

	return tracker.Report{
		BusID:      *pr.BusID,
		Lat:        *pr.Lat,
		Lng:        *pr.Lng,
		SeatStatus: pr.SeatStatus,
		Extra:      raw,
	}, nil
}

// handleUpdate ingests one position report: validate, track, broadcast,
// acknowledge with the enriched payload.
func (s *Server) handleUpdate(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, 1<<20))
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorPayload{Error: "unreadable request body"})
		return
	}

	report, err := parseReport(body)
	if err != nil {
		if s.metrics != nil {
			s.metrics.ReportsRejected.Inc()
		}
		writeJSON(w, http.StatusBadRequest, errorPayload{Error: err.Error()})
		return
	}

	if s.metrics != nil {
		s.metrics.ReportsReceived.Inc()
	}
	update := s.tracker.Process(report)

	writeJSON(w, http.StatusOK, map[string]any{
		"status":   "success",
		"received": update,
	})
}

// broadcastUpdate fans one enriched update out to the websocket hub and,
// when configured, mirrors it to NATS.
func (s *Server) broadcastUpdate(u *tracker.Update) {
	msg, err := json.Marshal(map[string]any{
		"type":    "location_update",
		"payload": u,
	})
	if err != nil {
		log.Printf("marshal update for %s: %v", u.BusID, err)
		return
	}
	s.hub.Publish(msg)

	if s.nats != nil {
		if err := s.nats.PublishUpdate(string(catalog.RouteFor(u.BusID)), u); err != nil {
			log.Printf("nats mirror error for %s: %v", u.BusID, err)
		}
	}
}

// handleSchedule serves the full static schedule document. Pure read of
// immutable data; never fails.
func (s *Server) handleSchedule(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, catalog.Snapshot())
}

// handleBuses serves the fixed roster of known bus identifiers.
func (s *Server) handleBuses(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, catalog.Buses())
}
