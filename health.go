package bustracker

import "net/http"

type healthResponse struct {
	Status           string `json:"status"`
	ConnectedClients int    `json:"connected_clients"`
	TrackedBuses     int    `json:"tracked_buses"`
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, healthResponse{
		Status:           "ok",
		ConnectedClients: s.hub.Subscribers(),
		TrackedBuses:     s.tracker.TrackedBuses(),
	})
}
