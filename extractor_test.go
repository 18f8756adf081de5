package csa

import (
	"testing"

	"github.com/aaroncutress/csa-go/internal"
	"github.com/aaroncutress/csa-go/models"
	"github.com/aaroncutress/csa-go/timetable"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJourneysSingleRide(t *testing.T) {
	tt := network

	profile, err := NewRouter(tt).Profile(directDay, morges)
	require.NoError(t, err)

	journeys, err := Journeys(profile, lausanne)
	require.NoError(t, err)
	require.Len(t, journeys, 1)

	journey := journeys[0]
	require.Len(t, journey.Legs, 1)
	assert.Equal(t, at(directDay, 10, 0), journey.DepTime())
	assert.Equal(t, at(directDay, 10, 20), journey.ArrTime())
	assert.Equal(t, "Lausanne", journey.DepStop().Name)
	assert.Equal(t, "Morges", journey.ArrStop().Name)
	assert.Equal(t, 0, journey.Changes())

	ride, ok := journey.Legs[0].(*models.TransportLeg)
	require.True(t, ok)
	assert.Equal(t, "S2", ride.Route)
	assert.Equal(t, "Morges", ride.Destination)
	assert.Equal(t, models.TrainVehicle, ride.Vehicle)

	require.Len(t, ride.Intermediate, 1)
	assert.Equal(t, "Renens VD", ride.Intermediate[0].Stop.Name)
	assert.Equal(t, at(directDay, 10, 10), ride.Intermediate[0].ArrTime)
	assert.Equal(t, at(directDay, 10, 12), ride.Intermediate[0].DepTime)
}

func TestJourneysWithChange(t *testing.T) {
	tt := network

	profile, err := NewRouter(tt).Profile(changeDay, morges)
	require.NoError(t, err)

	journeys, err := Journeys(profile, lausanne)
	require.NoError(t, err)
	require.Len(t, journeys, 2)

	// Sorted by departure time
	direct := journeys[0]
	assert.Equal(t, at(changeDay, 9, 50), direct.DepTime())
	assert.Equal(t, at(changeDay, 11, 0), direct.ArrTime())
	require.Len(t, direct.Legs, 1)
	assert.Equal(t, models.BusVehicle, direct.Legs[0].(*models.TransportLeg).Vehicle)

	change := journeys[1]
	assert.Equal(t, at(changeDay, 10, 0), change.DepTime())
	assert.Equal(t, at(changeDay, 10, 30), change.ArrTime())
	assert.Equal(t, 1, change.Changes())
	require.Len(t, change.Legs, 3)

	first, ok := change.Legs[0].(*models.TransportLeg)
	require.True(t, ok)
	assert.Equal(t, "S2", first.Route)
	assert.Equal(t, "Renens VD", first.To.Name)
	assert.Empty(t, first.To.PlatformName)

	walk, ok := change.Legs[1].(*models.FootLeg)
	require.True(t, ok)
	assert.True(t, walk.IsTransfer())
	assert.Equal(t, at(changeDay, 10, 10), walk.DepTime())
	assert.Equal(t, at(changeDay, 10, 10), walk.ArrTime())
	assert.Equal(t, "3", walk.To.PlatformName)

	second, ok := change.Legs[2].(*models.TransportLeg)
	require.True(t, ok)
	assert.Equal(t, "IR 15", second.Route)
	assert.Equal(t, "Genève", second.Destination)
	assert.Equal(t, "Renens VD (3)", second.From.String())
	assert.Equal(t, at(changeDay, 10, 15), second.DepTime())
}

func TestJourneysChangeAfterSeveralStops(t *testing.T) {
	tt := network

	profile, err := NewRouter(tt).Profile(rideDay, morges)
	require.NoError(t, err)

	// Boarded at the second stop of the trip, alighting two stops later
	c, ok := profile.ForStation(lausanne).Get(726, 1)
	require.True(t, ok)
	assert.Equal(t, 700, c.DepMins())
	assert.Equal(t, 2, internal.Unpack8(c.Payload()))

	journeys, err := Journeys(profile, lausanne)
	require.NoError(t, err)
	require.Len(t, journeys, 1)

	journey := journeys[0]
	assert.Equal(t, at(rideDay, 11, 40), journey.DepTime())
	assert.Equal(t, at(rideDay, 12, 6), journey.ArrTime())
	assert.Equal(t, 1, journey.Changes())
	require.Len(t, journey.Legs, 3)

	first, ok := journey.Legs[0].(*models.TransportLeg)
	require.True(t, ok)
	assert.Equal(t, "S2", first.Route)
	assert.Equal(t, "Bussigny", first.Destination)
	assert.Equal(t, "Lausanne", first.From.Name)
	assert.Equal(t, "Bussigny", first.To.Name)
	assert.Empty(t, first.To.PlatformName)
	assert.Equal(t, at(rideDay, 11, 40), first.DepTime())
	assert.Equal(t, at(rideDay, 11, 53), first.ArrTime())

	require.Len(t, first.Intermediate, 2)
	assert.Equal(t, "Prilly-Malley", first.Intermediate[0].Stop.Name)
	assert.Equal(t, at(rideDay, 11, 43), first.Intermediate[0].ArrTime)
	assert.Equal(t, at(rideDay, 11, 44), first.Intermediate[0].DepTime)
	assert.Equal(t, "Renens VD", first.Intermediate[1].Stop.Name)
	assert.Equal(t, at(rideDay, 11, 47), first.Intermediate[1].ArrTime)
	assert.Equal(t, at(rideDay, 11, 49), first.Intermediate[1].DepTime)

	walk, ok := journey.Legs[1].(*models.FootLeg)
	require.True(t, ok)
	assert.True(t, walk.IsTransfer())
	assert.Equal(t, "Bussigny", walk.From.String())
	assert.Equal(t, "Bussigny (1)", walk.To.String())
	assert.Equal(t, at(rideDay, 11, 53), walk.DepTime())
	assert.Equal(t, at(rideDay, 11, 53), walk.ArrTime())

	second, ok := journey.Legs[2].(*models.TransportLeg)
	require.True(t, ok)
	assert.Equal(t, "701", second.Route)
	assert.Equal(t, models.BusVehicle, second.Vehicle)
	assert.Equal(t, "Morges", second.Destination)
	assert.Equal(t, "Bussigny (1)", second.From.String())
	assert.Equal(t, "Morges", second.To.Name)
	assert.Equal(t, at(rideDay, 11, 58), second.DepTime())
	assert.Equal(t, at(rideDay, 12, 6), second.ArrTime())
	assert.Empty(t, second.Intermediate)
}

func TestJourneysWithInitialWalk(t *testing.T) {
	tt := network

	profile, err := NewRouter(tt).Profile(changeDay, morges)
	require.NoError(t, err)

	journeys, err := Journeys(profile, prilly)
	require.NoError(t, err)
	require.Len(t, journeys, 2)

	assert.Equal(t, at(changeDay, 9, 45), journeys[0].DepTime())
	assert.Equal(t, at(changeDay, 9, 55), journeys[1].DepTime())

	for _, journey := range journeys {
		walk, ok := journey.Legs[0].(*models.FootLeg)
		require.True(t, ok)
		assert.False(t, walk.IsTransfer())
		assert.Equal(t, "Prilly-Malley", walk.From.Name)
		assert.Equal(t, "Lausanne", walk.To.Name)
		assert.Equal(t, 5.0, walk.Duration().Minutes())
		assert.Greater(t, walk.Distance(), 1.0)
	}
	assert.Len(t, journeys[1].Legs, 4)
}

func TestJourneysFromDestination(t *testing.T) {
	tt := network

	profile, err := NewRouter(tt).Profile(changeDay, morges)
	require.NoError(t, err)

	journeys, err := Journeys(profile, morges)
	require.NoError(t, err)
	assert.Empty(t, journeys)
}

func findConnection(t *testing.T, connections timetable.Connections, depStopID, arrStopID int) int {
	t.Helper()
	for id := 0; id < connections.Len(); id++ {
		if connections.DepStopID(id) == depStopID && connections.ArrStopID(id) == arrStopID {
			return id
		}
	}
	t.Fatalf("no connection from stop %d to stop %d", depStopID, arrStopID)
	return -1
}

// Builds a profile whose only tuple is the given one, at station stationID
func handMadeProfile(t *testing.T, tt timetable.TimeTable, stationID int, c Criteria) *Profile {
	t.Helper()
	builder, err := NewProfileBuilder(tt, changeDay, morges)
	require.NoError(t, err)
	builder.SetForStation(stationID, NewParetoBuilder().Add(c))
	return builder.Build()
}

func TestJourneysInconsistentProfile(t *testing.T) {
	tt := network
	connections, err := tt.ConnectionsFor(changeDay)
	require.NoError(t, err)

	// The Lausanne to Renens VD connection, claiming a change that Renens VD cannot continue
	id := findConnection(t, connections, lausanne, renens)
	c := Pack(630, 1, internal.Pack24x8(id, 0)).WithDepMins(600)

	_, err = Journeys(handMadeProfile(t, tt, lausanne, c), lausanne)
	assert.ErrorIs(t, err, ErrInconsistentProfile)
}

func TestJourneysMissingTransfer(t *testing.T) {
	tt := network
	connections, err := tt.ConnectionsFor(changeDay)
	require.NoError(t, err)

	// Boarding at Renens VD from Prilly-Malley, which has no transfer there
	id := findConnection(t, connections, renensPlatform3, morges)
	c := Pack(630, 0, internal.Pack24x8(id, 0)).WithDepMins(600)

	_, err = Journeys(handMadeProfile(t, tt, prilly, c), prilly)
	assert.ErrorIs(t, err, timetable.ErrNoTransfer)
}
