package tracker

import (
	"log"
	"math"
	"sync"
	"time"

	"github.com/theoremus-urban-solutions/bus-tracker/catalog"
	"github.com/theoremus-urban-solutions/bus-tracker/geo"
	"github.com/theoremus-urban-solutions/bus-tracker/metrics"
)

// DefaultSeatStatus is reported until a driver sends an occupancy label.
const DefaultSeatStatus = "Seats Available"

// Options are the tracking policy thresholds. The defaults are load-bearing
// for behavioral compatibility with deployed clients; override with care.
type Options struct {
	// ArrivalThresholdMeters is the radius within which the bus is judged
	// to have reached a stop.
	ArrivalThresholdMeters float64
	// DriftThresholdMeters is the distance to the current target beyond
	// which the next-stop pointer is recomputed from scratch.
	DriftThresholdMeters float64
	// DepartedThresholdMeters is the radius within which the nearest-stop
	// heuristic assumes the bus has already left that stop.
	DepartedThresholdMeters float64
	// AverageSpeedKPH is the assumed cruising speed for ETA estimates.
	AverageSpeedKPH float64
}

// DefaultOptions returns the standard tracking thresholds.
func DefaultOptions() Options {
	return Options{
		ArrivalThresholdMeters:  100,
		DriftThresholdMeters:    2000,
		DepartedThresholdMeters: 50,
		AverageSpeedKPH:         25,
	}
}

// progress is the mutable state of one tracked bus. Direction is fixed at
// first sighting and never re-evaluated, matching continuous shuttle
// operation where a unit stays on one leg for its shift.
type progress struct {
	mu            sync.Mutex
	routeKey      catalog.RouteKey
	routeName     string
	direction     catalog.Direction
	stops         []catalog.Stop
	nextStopIndex int
	seatStatus    string
}

// Tracker owns every per-bus progress record for the process lifetime.
type Tracker struct {
	opts    Options
	metrics *metrics.Collector

	// emit, when set, is invoked with each enriched update while the
	// per-bus lock is held, so subscribers observe same-bus updates in
	// processing order.
	emit func(*Update)

	// now is injectable for direction-selection tests.
	now func() time.Time

	mu    sync.Mutex
	buses map[string]*progress
}

// New creates a Tracker. The metrics collector may be nil.
func New(opts Options, m *metrics.Collector) *Tracker {
	return &Tracker{
		opts:    opts,
		metrics: m,
		now:     time.Now,
		buses:   make(map[string]*progress),
	}
}

// OnUpdate registers the emit hook called for every enriched update.
// Must be set before the first report is processed.
func (t *Tracker) OnUpdate(fn func(*Update)) { t.emit = fn }

// TrackedBuses returns the number of live progress records.
func (t *Tracker) TrackedBuses() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return len(t.buses)
}

// Process runs one position report through the tracking pipeline and
// returns the enriched update. All inputs are assumed well-formed; the
// ingress validates before calling.
func (t *Tracker) Process(r Report) *Update {
	start := time.Now()
	p := t.record(r)

	p.mu.Lock()
	defer p.mu.Unlock()

	if r.SeatStatus != "" {
		p.seatStatus = r.SeatStatus
	}

	target := p.stops[p.nextStopIndex]
	dist := geo.DistanceMeters(r.Lat, r.Lng, target.Lat, target.Lng)

	// Off-track: stale pointer, GPS jump or device restart. Re-anchor the
	// pointer against the actual position before any advance decision.
	if dist > t.opts.DriftThresholdMeters {
		p.nextStopIndex = findCorrectStopIndex(r.Lat, r.Lng, p.stops, t.opts.DepartedThresholdMeters)
		target = p.stops[p.nextStopIndex]
		dist = geo.DistanceMeters(r.Lat, r.Lng, target.Lat, target.Lng)
		log.Printf("bus %s drifted off-track, retargeting %s", r.BusID, target.Name)
		if t.metrics != nil {
			t.metrics.DriftCorrections.Inc()
		}
	}

	last := len(p.stops) - 1
	if p.nextStopIndex < last {
		next := p.stops[p.nextStopIndex+1]
		distNext := geo.DistanceMeters(r.Lat, r.Lng, next.Lat, next.Lng)
		switch {
		case dist < t.opts.ArrivalThresholdMeters:
			log.Printf("bus %s arrived at %s", r.BusID, target.Name)
			p.nextStopIndex++
			target, dist = next, distNext
			if t.metrics != nil {
				t.metrics.Arrivals.Inc()
			}
		case distNext < t.opts.ArrivalThresholdMeters:
			// Sparse updates can carry the bus past a stop without a fix
			// inside the arrival radius. Same advance, distinct event.
			log.Printf("bus %s skipped past %s, now near %s", r.BusID, target.Name, next.Name)
			p.nextStopIndex++
			target, dist = next, distNext
			if t.metrics != nil {
				t.metrics.Skips.Inc()
			}
		}
	} else if dist < t.opts.ArrivalThresholdMeters {
		// Route complete; cyclic restart against stop 0. Direction stays
		// as fixed at first sighting.
		log.Printf("bus %s completed %s, restarting route", r.BusID, p.routeName)
		p.nextStopIndex = 0
		target = p.stops[0]
		dist = geo.DistanceMeters(r.Lat, r.Lng, target.Lat, target.Lng)
		if t.metrics != nil {
			t.metrics.RouteCompletions.Inc()
		}
	}

	speedMPS := t.opts.AverageSpeedKPH * 1000 / 3600
	eta := int(math.Round(dist / speedMPS / 60))

	u := &Update{
		BusID:         r.BusID,
		Lat:           r.Lat,
		Lng:           r.Lng,
		SeatStatus:    p.seatStatus,
		Route:         p.routeName,
		NextStop:      target.Name,
		NextStopIndex: p.nextStopIndex,
		Distance:      geo.FormatDistance(dist),
		ETA:           eta,
		Extra:         r.Extra,
	}

	if t.metrics != nil {
		t.metrics.ProcessDuration.Observe(time.Since(start).Seconds())
	}
	if t.emit != nil {
		t.emit(u)
	}
	return u
}

// record returns the progress record for a bus, creating it on first
// sighting: route from the identifier, direction from the wall clock,
// and the initial next-stop pointer from the actual position rather
// than index 0, which corrects for buses that start tracking mid-route.
func (t *Tracker) record(r Report) *progress {
	t.mu.Lock()
	defer t.mu.Unlock()

	if p, ok := t.buses[r.BusID]; ok {
		return p
	}

	key := catalog.RouteFor(r.BusID)
	route := catalog.Get(key)
	dir := catalog.Outbound
	if t.now().Hour() >= 12 {
		dir = catalog.Return
	}
	stops := catalog.StopsFor(key, dir)

	p := &progress{
		routeKey:      key,
		routeName:     route.Name,
		direction:     dir,
		stops:         stops,
		nextStopIndex: findCorrectStopIndex(r.Lat, r.Lng, stops, t.opts.DepartedThresholdMeters),
		seatStatus:    DefaultSeatStatus,
	}
	t.buses[r.BusID] = p
	log.Printf("bus %s now tracked on %s (%s), next stop %s",
		r.BusID, route.Name, dir, stops[p.nextStopIndex].Name)
	if t.metrics != nil {
		t.metrics.TrackedBuses.Set(float64(len(t.buses)))
	}
	return p
}

// findCorrectStopIndex resolves which stop a bus at (lat, lng) should be
// heading toward. The nearest stop wins; if the bus is within the departed
// threshold of it and it is not the terminal stop, the bus is deemed to
// have already left it and the following stop is targeted instead.
func findCorrectStopIndex(lat, lng float64, stops []catalog.Stop, departedThreshold float64) int {
	closest := 0
	minDist := math.MaxFloat64
	for i, s := range stops {
		if d := geo.DistanceMeters(lat, lng, s.Lat, s.Lng); d < minDist {
			minDist = d
			closest = i
		}
	}
	if minDist < departedThreshold && closest < len(stops)-1 {
		return closest + 1
	}
	return closest
}
