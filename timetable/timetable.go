// Package timetable describes the read-only, index-addressed view of a
// public transport timetable consumed by the router.
package timetable

import (
	"errors"
	"fmt"
	"time"

	"github.com/aaroncutress/csa-go/internal"
	"github.com/aaroncutress/csa-go/models"
)

// ErrNoTransfer is reported when two stations are not linked by a transfer row.
var ErrNoTransfer = errors.New("no transfer between stations")

// A table whose elements are addressed by an index in [0, Len())
type Indexed interface {
	Len() int
}

type Stations interface {
	Indexed
	Name(id int) string
	Longitude(id int) float64
	Latitude(id int) float64
}

// Alternative names of stations, each mapped to a station's main name
type StationAliases interface {
	Indexed
	Alias(id int) string
	StationName(id int) string
}

type Platforms interface {
	Indexed
	Name(id int) string
	StationID(id int) int
}

type Routes interface {
	Indexed
	Vehicle(id int) models.Vehicle
	Name(id int) string
}

type Trips interface {
	Indexed
	RouteID(id int) int
	Destination(id int) string
}

// Connections of one day, ordered by decreasing departure time
type Connections interface {
	Indexed
	DepStopID(id int) int
	DepMins(id int) int
	ArrStopID(id int) int
	ArrMins(id int) int
	TripID(id int) int
	TripPos(id int) int
	NextConnectionID(id int) int
}

// Walking links between stations, grouped by arrival station
type Transfers interface {
	Indexed
	DepStationID(id int) int
	Minutes(id int) int
	// Range of transfer indexes whose arrival station is stationID
	ArrivingAt(stationID int) internal.PackedRange
	// Walking time between two stations, or false if no transfer row links them
	MinutesBetween(depStationID, arrStationID int) (int, bool)
}

// A full timetable. Day-independent tables are fixed for the timetable's
// lifetime; trips and connections are resolved per service date.
type TimeTable interface {
	Stations() Stations
	StationAliases() StationAliases
	Platforms() Platforms
	Routes() Routes
	Transfers() Transfers
	TripsFor(date time.Time) (Trips, error)
	ConnectionsFor(date time.Time) (Connections, error)
}

// Check if the stop index designates a station
func IsStationID(tt TimeTable, stopID int) bool {
	return stopID < tt.Stations().Len()
}

// Check if the stop index designates a platform
func IsPlatformID(tt TimeTable, stopID int) bool {
	return stopID >= tt.Stations().Len()
}

// Returns the station a stop belongs to
func StationID(tt TimeTable, stopID int) int {
	if IsStationID(tt, stopID) {
		return stopID
	}
	return tt.Platforms().StationID(stopID - tt.Stations().Len())
}

// Returns the platform name of a stop, or false if the stop is a station
func PlatformName(tt TimeTable, stopID int) (string, bool) {
	if IsStationID(tt, stopID) {
		return "", false
	}
	return tt.Platforms().Name(stopID - tt.Stations().Len()), true
}

// Returns the walking time between two stations, or ErrNoTransfer
func MinutesBetween(tt TimeTable, depStationID, arrStationID int) (int, error) {
	minutes, ok := tt.Transfers().MinutesBetween(depStationID, arrStationID)
	if !ok {
		return 0, fmt.Errorf("%w: %d -> %d", ErrNoTransfer, depStationID, arrStationID)
	}
	return minutes, nil
}

// Returns the location of a station
func StationLocation(stations Stations, id int) models.Coordinate {
	return models.NewCoordinate(stations.Latitude(id), stations.Longitude(id))
}

// Returns the station closest to the given location, or false if there are no stations
func NearestStation(stations Stations, location models.Coordinate) (int, bool) {
	best, bestKm := -1, 0.0
	for id := 0; id < stations.Len(); id++ {
		km := StationLocation(stations, id).DistanceTo(location)
		if best < 0 || km < bestKm {
			best, bestKm = id, km
		}
	}
	return best, best >= 0
}

// Returns the service date of t: midnight UTC of its calendar day
func DateOf(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// Returns the instant lying the given number of minutes after the start of date
func AtMinutes(date time.Time, minutes int) time.Time {
	return DateOf(date).Add(time.Duration(minutes) * time.Minute)
}
