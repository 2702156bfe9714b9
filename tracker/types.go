package tracker

import "encoding/json"

// Report is a validated position report from a driver device. Fields other
// than the identifying ones are opaque and carried through to the enriched
// output untouched.
type Report struct {
	BusID      string
	Lat        float64
	Lng        float64
	SeatStatus string
	Extra      map[string]json.RawMessage
}

// Update is the enriched result of processing one position report. It is
// produced once per report, handed to the broadcaster, and discarded.
type Update struct {
	BusID         string
	Lat           float64
	Lng           float64
	SeatStatus    string
	Route         string
	NextStop      string
	NextStopIndex int
	Distance      string
	ETA           int
	Extra         map[string]json.RawMessage
}

// MarshalJSON flattens the update into a single object: the original
// report fields (including passthrough ones) plus the enrichment fields.
// Enrichment wins on key collision.
func (u Update) MarshalJSON() ([]byte, error) {
	out := make(map[string]json.RawMessage, len(u.Extra)+9)
	for k, v := range u.Extra {
		out[k] = v
	}
	fields := []struct {
		key string
		val any
	}{
		{"busId", u.BusID},
		{"lat", u.Lat},
		{"lng", u.Lng},
		{"seatStatus", u.SeatStatus},
		{"route", u.Route},
		{"nextStop", u.NextStop},
		{"nextStopIndex", u.NextStopIndex},
		{"distance", u.Distance},
		{"eta", u.ETA},
	}
	for _, f := range fields {
		b, err := json.Marshal(f.val)
		if err != nil {
			return nil, err
		}
		out[f.key] = b
	}
	return json.Marshal(out)
}
