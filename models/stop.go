package models

import (
	"errors"
	"fmt"
)

var ErrInvalidStop = errors.New("invalid stop")

// Represents a stop as shown to a traveller: a station, optionally narrowed
// down to one of its platforms
type Stop struct {
	Name         string
	PlatformName string
	Location     Coordinate
}

// Create a new Stop, checking that it has a name and a valid location
func NewStop(name, platformName string, location Coordinate) (Stop, error) {
	if name == "" {
		return Stop{}, fmt.Errorf("%w: empty name", ErrInvalidStop)
	}
	if !location.IsValid() {
		return Stop{}, fmt.Errorf("%w: location %s out of range", ErrInvalidStop, location)
	}
	return Stop{
		Name:         name,
		PlatformName: platformName,
		Location:     location,
	}, nil
}

func (s Stop) String() string {
	if s.PlatformName == "" {
		return s.Name
	}
	return s.Name + " (" + s.PlatformName + ")"
}
