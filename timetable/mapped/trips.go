package mapped

import "fmt"

const (
	tripRouteID = iota
	tripDestinationID
)

var tripStructure = NewStructure(
	NewField(tripRouteID, U16),
	NewField(tripDestinationID, U16),
)

// Trips of one day backed by trips.bin
type Trips struct {
	strings []string
	buffer  *StructuredBuffer
}

func NewTrips(strings []string, data []byte) (*Trips, error) {
	buffer, err := NewStructuredBuffer(tripStructure, data)
	if err != nil {
		return nil, fmt.Errorf("trips: %w", err)
	}
	return &Trips{strings: strings, buffer: buffer}, nil
}

func (t *Trips) Len() int {
	return t.buffer.Len()
}

func (t *Trips) RouteID(id int) int {
	return t.buffer.U16(tripRouteID, id)
}

func (t *Trips) Destination(id int) string {
	return t.strings[t.buffer.U16(tripDestinationID, id)]
}
