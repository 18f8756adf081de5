package models

import (
	"errors"
	"fmt"
	"time"
)

var ErrInvalidJourney = errors.New("invalid journey")

// One step of a journey, either on foot or aboard a vehicle
type Leg interface {
	DepStop() Stop
	DepTime() time.Time
	ArrStop() Stop
	ArrTime() time.Time
	IntermediateStops() []IntermediateStop
	Duration() time.Duration
}

// A stop served by a transport leg between its departure and arrival stops
type IntermediateStop struct {
	Stop    Stop
	ArrTime time.Time
	DepTime time.Time
}

// Represents a walk between two stops, possibly a change within one station
type FootLeg struct {
	From      Stop
	Departure time.Time
	To        Stop
	Arrival   time.Time
}

// Represents a ride aboard one trip
type TransportLeg struct {
	From         Stop
	Departure    time.Time
	To           Stop
	Arrival      time.Time
	Intermediate []IntermediateStop
	Vehicle      Vehicle
	Route        string
	Destination  string
}

func (l *FootLeg) DepStop() Stop                         { return l.From }
func (l *FootLeg) DepTime() time.Time                    { return l.Departure }
func (l *FootLeg) ArrStop() Stop                         { return l.To }
func (l *FootLeg) ArrTime() time.Time                    { return l.Arrival }
func (l *FootLeg) IntermediateStops() []IntermediateStop { return nil }
func (l *FootLeg) Duration() time.Duration               { return l.Arrival.Sub(l.Departure) }

// Check if the walk is a change of vehicle inside the same station
func (l *FootLeg) IsTransfer() bool {
	return l.From.Name == l.To.Name
}

// Straight-line length of the walk in kilometres
func (l *FootLeg) Distance() float64 {
	return l.From.Location.DistanceTo(l.To.Location)
}

func (l *TransportLeg) DepStop() Stop                         { return l.From }
func (l *TransportLeg) DepTime() time.Time                    { return l.Departure }
func (l *TransportLeg) ArrStop() Stop                         { return l.To }
func (l *TransportLeg) ArrTime() time.Time                    { return l.Arrival }
func (l *TransportLeg) IntermediateStops() []IntermediateStop { return l.Intermediate }
func (l *TransportLeg) Duration() time.Duration               { return l.Arrival.Sub(l.Departure) }

// An ordered sequence of alternating foot and transport legs
type Journey struct {
	Legs []Leg
}

// Create a new Journey, checking that its legs chain up in time and space
// and alternate between walking and riding
func NewJourney(legs []Leg) (*Journey, error) {
	if len(legs) == 0 {
		return nil, fmt.Errorf("%w: no legs", ErrInvalidJourney)
	}

	for i, leg := range legs {
		if leg.ArrTime().Before(leg.DepTime()) {
			return nil, fmt.Errorf("%w: leg %d arrives before it departs", ErrInvalidJourney, i)
		}
		for _, stop := range leg.IntermediateStops() {
			if stop.DepTime.Before(stop.ArrTime) {
				return nil, fmt.Errorf("%w: leg %d leaves %s before reaching it", ErrInvalidJourney, i, stop.Stop)
			}
		}
		if i == 0 {
			continue
		}

		previous := legs[i-1]
		if leg.DepTime().Before(previous.ArrTime()) {
			return nil, fmt.Errorf("%w: leg %d departs before leg %d arrives", ErrInvalidJourney, i, i-1)
		}
		if leg.DepStop() != previous.ArrStop() {
			return nil, fmt.Errorf("%w: leg %d departs from %s, not %s", ErrInvalidJourney, i, leg.DepStop(), previous.ArrStop())
		}
		if isFoot(leg) == isFoot(previous) {
			return nil, fmt.Errorf("%w: legs %d and %d are of the same kind", ErrInvalidJourney, i-1, i)
		}
	}

	copied := make([]Leg, len(legs))
	copy(copied, legs)
	return &Journey{Legs: copied}, nil
}

func isFoot(leg Leg) bool {
	_, ok := leg.(*FootLeg)
	return ok
}

func (j *Journey) DepStop() Stop {
	return j.Legs[0].DepStop()
}

func (j *Journey) ArrStop() Stop {
	return j.Legs[len(j.Legs)-1].ArrStop()
}

func (j *Journey) DepTime() time.Time {
	return j.Legs[0].DepTime()
}

func (j *Journey) ArrTime() time.Time {
	return j.Legs[len(j.Legs)-1].ArrTime()
}

func (j *Journey) Duration() time.Duration {
	return j.ArrTime().Sub(j.DepTime())
}

// Number of vehicle changes along the journey
func (j *Journey) Changes() int {
	rides := 0
	for _, leg := range j.Legs {
		if !isFoot(leg) {
			rides++
		}
	}
	if rides == 0 {
		return 0
	}
	return rides - 1
}
