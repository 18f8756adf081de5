package csa

import (
	"time"

	"github.com/aaroncutress/csa-go/timetable"
	"github.com/hashicorp/go-set/v3"
)

// Profile holds, for every station, the Pareto front of the journeys
// leaving it that reach one destination on one service date
type Profile struct {
	tt           timetable.TimeTable
	date         time.Time
	arrStationID int
	stationFront []*ParetoFront
}

func (p *Profile) TimeTable() timetable.TimeTable {
	return p.tt
}

func (p *Profile) Date() time.Time {
	return p.date
}

// Destination station of every journey of the profile
func (p *Profile) ArrStationID() int {
	return p.arrStationID
}

func (p *Profile) ForStation(stationID int) *ParetoFront {
	return p.stationFront[stationID]
}

func (p *Profile) Connections() (timetable.Connections, error) {
	return p.tt.ConnectionsFor(p.date)
}

func (p *Profile) Trips() (timetable.Trips, error) {
	return p.tt.TripsFor(p.date)
}

// Returns the stations from which the destination can be reached
func (p *Profile) ReachableStations() *set.Set[int] {
	reachable := set.New[int](len(p.stationFront))
	for id, front := range p.stationFront {
		if front.Len() > 0 {
			reachable.Insert(id)
		}
	}
	return reachable
}

// Builds a Profile from per-station and per-trip front builders
type ProfileBuilder struct {
	tt           timetable.TimeTable
	date         time.Time
	arrStationID int
	stationFront []*ParetoBuilder
	tripFront    []*ParetoBuilder
}

// Create a builder with no front for any station or trip. Fails if the trips
// of date cannot be resolved.
func NewProfileBuilder(tt timetable.TimeTable, date time.Time, arrStationID int) (*ProfileBuilder, error) {
	trips, err := tt.TripsFor(date)
	if err != nil {
		return nil, err
	}
	return newProfileBuilder(tt, date, arrStationID, trips.Len()), nil
}

func newProfileBuilder(tt timetable.TimeTable, date time.Time, arrStationID, tripCount int) *ProfileBuilder {
	return &ProfileBuilder{
		tt:           tt,
		date:         timetable.DateOf(date),
		arrStationID: arrStationID,
		stationFront: make([]*ParetoBuilder, tt.Stations().Len()),
		tripFront:    make([]*ParetoBuilder, tripCount),
	}
}

func (b *ProfileBuilder) ForStation(stationID int) *ParetoBuilder {
	return b.stationFront[stationID]
}

func (b *ProfileBuilder) SetForStation(stationID int, front *ParetoBuilder) {
	b.stationFront[stationID] = front
}

func (b *ProfileBuilder) ForTrip(tripID int) *ParetoBuilder {
	return b.tripFront[tripID]
}

func (b *ProfileBuilder) SetForTrip(tripID int, front *ParetoBuilder) {
	b.tripFront[tripID] = front
}

// Returns the profile; stations without a builder get the empty front
func (b *ProfileBuilder) Build() *Profile {
	fronts := make([]*ParetoFront, len(b.stationFront))
	for i, front := range b.stationFront {
		if front == nil {
			fronts[i] = EmptyParetoFront
			continue
		}
		fronts[i] = front.Build()
	}
	return &Profile{
		tt:           b.tt,
		date:         b.date,
		arrStationID: b.arrStationID,
		stationFront: fronts,
	}
}
