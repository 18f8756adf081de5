package timetable

import (
	"sync"
	"time"
)

// Cached wraps a TimeTable and remembers the trips and connections of the
// most recently requested date, so that repeated queries for the same day do
// not resolve them again.
type Cached struct {
	underlying TimeTable

	mu          sync.Mutex
	cachedDate  time.Time
	hasDate     bool
	trips       Trips
	connections Connections
}

// Create a new caching decorator around the given timetable
func NewCached(underlying TimeTable) *Cached {
	return &Cached{underlying: underlying}
}

func (c *Cached) Stations() Stations             { return c.underlying.Stations() }
func (c *Cached) StationAliases() StationAliases { return c.underlying.StationAliases() }
func (c *Cached) Platforms() Platforms           { return c.underlying.Platforms() }
func (c *Cached) Routes() Routes                 { return c.underlying.Routes() }
func (c *Cached) Transfers() Transfers           { return c.underlying.Transfers() }

func (c *Cached) TripsFor(date time.Time) (Trips, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if err := c.update(date); err != nil {
		return nil, err
	}
	return c.trips, nil
}

func (c *Cached) ConnectionsFor(date time.Time) (Connections, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if err := c.update(date); err != nil {
		return nil, err
	}
	return c.connections, nil
}

// Resolves the day-dependent tables if date differs from the cached one.
// The cache is left untouched on error.
func (c *Cached) update(date time.Time) error {
	date = DateOf(date)
	if c.hasDate && c.cachedDate.Equal(date) {
		return nil
	}

	trips, err := c.underlying.TripsFor(date)
	if err != nil {
		return err
	}
	connections, err := c.underlying.ConnectionsFor(date)
	if err != nil {
		return err
	}

	c.cachedDate = date
	c.hasDate = true
	c.trips = trips
	c.connections = connections
	return nil
}
