package catalog

import "strings"

// RouteKey identifies a route in the catalog.
type RouteKey string

const (
	Route1 RouteKey = "route1"
	Route2 RouteKey = "route2"
)

// Direction selects which stop sequence of a route a bus runs.
type Direction int

const (
	// Outbound is the morning direction (the "stops" sequence).
	Outbound Direction = iota
	// Return is the afternoon direction (the "stopsReturn" sequence).
	Return
)

func (d Direction) String() string {
	if d == Return {
		return "return"
	}
	return "outbound"
}

// Stop is a named point with fixed coordinates along a route.
type Stop struct {
	Name string  `json:"name"`
	Lat  float64 `json:"lat"`
	Lng  float64 `json:"lng"`
}

// Coordinate is a single point of a route's road polyline.
type Coordinate struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// Route is a named, directional sequence of stops with an optional
// dense road path.
type Route struct {
	Name        string       `json:"name"`
	Stops       []Stop       `json:"stops"`
	StopsReturn []Stop       `json:"stopsReturn"`
	Path        []Coordinate `json:"path,omitempty"`
}

// RouteFor resolves the route a bus is assigned to from its identifier.
// Resolution is a case-insensitive substring match and is total: any
// identifier that does not flag route 2 falls back to route 1.
func RouteFor(busID string) RouteKey {
	if strings.Contains(strings.ToLower(busID), "r2") {
		return Route2
	}
	return Route1
}

// Get returns the route for a key. Unknown keys fall back to route 1,
// matching the resolution rule for bus identifiers.
func Get(key RouteKey) Route {
	if r, ok := schedule[key]; ok {
		return r
	}
	return schedule[Route1]
}

// StopsFor returns the ordered stop sequence for a route and direction.
// The returned slice is shared catalog data and must not be mutated.
func StopsFor(key RouteKey, dir Direction) []Stop {
	r := Get(key)
	if dir == Return {
		return r.StopsReturn
	}
	return r.Stops
}

// Snapshot returns the full static schedule document keyed by route key,
// for read-only client consumption.
func Snapshot() map[RouteKey]Route {
	return schedule
}

// Buses returns the fixed roster of known bus identifiers.
func Buses() []string {
	return roster
}
