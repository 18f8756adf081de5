package csa

import (
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/aaroncutress/csa-go/internal"
	"github.com/aaroncutress/csa-go/models"
	"github.com/aaroncutress/csa-go/timetable"
)

// ErrInconsistentProfile is returned when a profile tuple points at a
// continuation that is not in the next station's front
var ErrInconsistentProfile = errors.New("inconsistent profile")

// Holds what journey reconstruction reads from a profile
type extraction struct {
	profile     *Profile
	tt          timetable.TimeTable
	connections timetable.Connections
	trips       timetable.Trips
}

// Returns every optimal journey leaving depStationID, sorted by departure
// then arrival time
func Journeys(profile *Profile, depStationID int) ([]*models.Journey, error) {
	connections, err := profile.Connections()
	if err != nil {
		return nil, err
	}
	trips, err := profile.Trips()
	if err != nil {
		return nil, err
	}
	x := &extraction{
		profile:     profile,
		tt:          profile.TimeTable(),
		connections: connections,
		trips:       trips,
	}

	front := profile.ForStation(depStationID)
	journeys := make([]*models.Journey, 0, front.Len())
	var extractErr error
	front.ForEach(func(c Criteria) {
		if extractErr != nil {
			return
		}
		journey, err := x.journey(depStationID, c)
		if err != nil {
			extractErr = err
			return
		}
		journeys = append(journeys, journey)
	})
	if extractErr != nil {
		return nil, extractErr
	}

	sort.SliceStable(journeys, func(i, j int) bool {
		if !journeys[i].DepTime().Equal(journeys[j].DepTime()) {
			return journeys[i].DepTime().Before(journeys[j].DepTime())
		}
		return journeys[i].ArrTime().Before(journeys[j].ArrTime())
	})
	return journeys, nil
}

func (x *extraction) journey(depStationID int, c Criteria) (*models.Journey, error) {
	var legs []models.Leg

	// Walk to the first boarding station if needed
	firstID := internal.Unpack24(c.Payload())
	firstStationID := timetable.StationID(x.tt, x.connections.DepStopID(firstID))
	if firstStationID != depStationID {
		minutes, err := timetable.MinutesBetween(x.tt, depStationID, firstStationID)
		if err != nil {
			return nil, err
		}
		boarding := x.at(x.connections.DepMins(firstID))
		legs = append(legs, &models.FootLeg{
			From:      x.stop(depStationID),
			Departure: boarding.Add(-time.Duration(minutes) * time.Minute),
			To:        x.stop(x.connections.DepStopID(firstID)),
			Arrival:   boarding,
		})
	}

	lastStationID := -1
	for {
		ride, boardStationID, arrStationID := x.ride(c)

		if lastStationID >= 0 {
			change, err := x.change(legs[len(legs)-1], lastStationID, boardStationID, ride)
			if err != nil {
				return nil, err
			}
			legs = append(legs, change)
		}
		legs = append(legs, ride)
		lastStationID = arrStationID

		if c.Changes() == 0 {
			break
		}

		next, ok := x.profile.ForStation(arrStationID).Get(c.ArrMins(), c.Changes()-1)
		if !ok {
			return nil, fmt.Errorf("%w: no tuple arriving at %d with %d changes at station %d",
				ErrInconsistentProfile, c.ArrMins(), c.Changes()-1, arrStationID)
		}
		c = next
	}

	// Walk from the last alighting station to the destination if needed
	if dst := x.profile.ArrStationID(); lastStationID != dst {
		minutes, err := timetable.MinutesBetween(x.tt, lastStationID, dst)
		if err != nil {
			return nil, err
		}
		alighted := legs[len(legs)-1]
		legs = append(legs, &models.FootLeg{
			From:      alighted.ArrStop(),
			Departure: alighted.ArrTime(),
			To:        x.stop(dst),
			Arrival:   alighted.ArrTime().Add(time.Duration(minutes) * time.Minute),
		})
	}

	return models.NewJourney(legs)
}

// Builds the transport leg encoded by the payload of c, following the trip's
// successor chain. Returns the leg with the stations where it starts and ends.
func (x *extraction) ride(c Criteria) (*models.TransportLeg, int, int) {
	boardID := internal.Unpack24(c.Payload())
	stopsToSkip := internal.Unpack8(c.Payload())

	intermediate := make([]models.IntermediateStop, 0, stopsToSkip)
	alightID := boardID
	for i := 0; i < stopsToSkip; i++ {
		nextID := x.connections.NextConnectionID(alightID)
		intermediate = append(intermediate, models.IntermediateStop{
			Stop:    x.stop(x.connections.ArrStopID(alightID)),
			ArrTime: x.at(x.connections.ArrMins(alightID)),
			DepTime: x.at(x.connections.DepMins(nextID)),
		})
		alightID = nextID
	}

	tripID := x.connections.TripID(boardID)
	routeID := x.trips.RouteID(tripID)
	depStopID := x.connections.DepStopID(boardID)
	arrStopID := x.connections.ArrStopID(alightID)

	leg := &models.TransportLeg{
		From:         x.stop(depStopID),
		Departure:    x.at(x.connections.DepMins(boardID)),
		To:           x.stop(arrStopID),
		Arrival:      x.at(x.connections.ArrMins(alightID)),
		Intermediate: intermediate,
		Vehicle:      x.tt.Routes().Vehicle(routeID),
		Route:        x.tt.Routes().Name(routeID),
		Destination:  x.trips.Destination(tripID),
	}
	return leg, timetable.StationID(x.tt, depStopID), timetable.StationID(x.tt, arrStopID)
}

// Builds the walk between two rides, possibly within one station
func (x *extraction) change(previous models.Leg, fromStationID, toStationID int, next *models.TransportLeg) (*models.FootLeg, error) {
	minutes, err := timetable.MinutesBetween(x.tt, fromStationID, toStationID)
	if err != nil {
		return nil, err
	}
	return &models.FootLeg{
		From:      previous.ArrStop(),
		Departure: previous.ArrTime(),
		To:        next.From,
		Arrival:   previous.ArrTime().Add(time.Duration(minutes) * time.Minute),
	}, nil
}

// Time the given number of minutes after the start of the profile's date
func (x *extraction) at(mins int) time.Time {
	return timetable.AtMinutes(x.profile.Date(), mins)
}

// Builds the traveller-facing stop of a station or platform
func (x *extraction) stop(stopID int) models.Stop {
	stationID := timetable.StationID(x.tt, stopID)
	platform, _ := timetable.PlatformName(x.tt, stopID)
	return models.Stop{
		Name:         x.tt.Stations().Name(stationID),
		PlatformName: platform,
		Location:     timetable.StationLocation(x.tt.Stations(), stationID),
	}
}
