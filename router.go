package csa

import (
	"time"

	"github.com/aaroncutress/csa-go/internal"
	"github.com/aaroncutress/csa-go/timetable"
	"github.com/charmbracelet/log"
)

// Walking time of a station that has no transfer to the destination
const unwalkable = -1

// Router computes profiles with the connection scan algorithm
type Router struct {
	tt timetable.TimeTable
}

func NewRouter(tt timetable.TimeTable) *Router {
	return &Router{tt: tt}
}

// Computes the profile of every journey reaching dstStationID on date
func (r *Router) Profile(date time.Time, dstStationID int) (*Profile, error) {
	start := time.Now()

	connections, err := r.tt.ConnectionsFor(date)
	if err != nil {
		return nil, err
	}
	trips, err := r.tt.TripsFor(date)
	if err != nil {
		return nil, err
	}
	transfers := r.tt.Transfers()
	stationCount := r.tt.Stations().Len()

	builder := newProfileBuilder(r.tt, date, dstStationID, trips.Len())
	for i := 0; i < stationCount; i++ {
		builder.SetForStation(i, NewParetoBuilder())
	}
	for i := 0; i < trips.Len(); i++ {
		builder.SetForTrip(i, NewParetoBuilder())
	}

	walkToDest := make([]int, stationCount)
	for i := range walkToDest {
		minutes, ok := transfers.MinutesBetween(i, dstStationID)
		if !ok {
			minutes = unwalkable
		}
		walkToDest[i] = minutes
	}

	// Scratch front, cleared for every connection
	front := NewParetoBuilder()

	// Connections come by decreasing departure time
	for id := 0; id < connections.Len(); id++ {
		depStationID := timetable.StationID(r.tt, connections.DepStopID(id))
		arrStationID := timetable.StationID(r.tt, connections.ArrStopID(id))
		depMins := connections.DepMins(id)
		arrMins := connections.ArrMins(id)
		tripFront := builder.ForTrip(connections.TripID(id))

		front.Clear()

		// Get off and walk to the destination. Tuples outside the encodable
		// range of times are dropped.
		if walk := walkToDest[arrStationID]; walk != unwalkable && arrMins+walk < MaxMins {
			front.AddPacked(arrMins+walk, 0, internal.Pack24x8(id, 0))
		}

		// Stay on the vehicle
		front.AddAll(tripFront)

		// Get off and change to a later departure
		builder.ForStation(arrStationID).ForEach(func(c Criteria) {
			if c.DepMins() >= arrMins && c.Changes() < changesMask {
				front.AddPacked(c.ArrMins(), c.Changes()+1, internal.Pack24x8(id, 0))
			}
		})

		if front.IsEmpty() {
			continue
		}
		if builder.ForStation(depStationID).FullyDominates(front, depMins) {
			continue
		}

		tripFront.AddAll(front)

		// Stations with a transfer to the departure station can reach this connection
		posInTrip := connections.TripPos(id)
		arriving := transfers.ArrivingAt(depStationID)
		for j := internal.RangeStart(arriving); j < internal.RangeEnd(arriving); j++ {
			stationFront := builder.ForStation(transfers.DepStationID(j))
			walkDepMins := depMins - transfers.Minutes(j)
			if walkDepMins < OriginMins || walkDepMins >= MaxMins {
				continue
			}

			front.ForEach(func(c Criteria) {
				alightID := internal.Unpack24(c.Payload())
				payload := internal.Pack24x8(id, connections.TripPos(alightID)-posInTrip)
				stationFront.Add(c.WithPayload(payload).WithDepMins(walkDepMins))
			})
		}
	}

	profile := builder.Build()
	log.Debugf("Computed profile to station %d over %d connections in %s",
		dstStationID, connections.Len(), time.Since(start))
	return profile, nil
}
