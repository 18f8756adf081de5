package mapped

import (
	"fmt"
	"math"
)

const (
	stationNameID = iota
	stationLongitude
	stationLatitude
)

var stationStructure = NewStructure(
	NewField(stationNameID, U16),
	NewField(stationLongitude, S32),
	NewField(stationLatitude, S32),
)

// Degrees per unit of the fixed-point coordinates: 360 / 2^32
var coordinateScale = math.Ldexp(360, -32)

// Stations backed by stations.bin
type Stations struct {
	strings []string
	buffer  *StructuredBuffer
}

func NewStations(strings []string, data []byte) (*Stations, error) {
	buffer, err := NewStructuredBuffer(stationStructure, data)
	if err != nil {
		return nil, fmt.Errorf("stations: %w", err)
	}
	return &Stations{strings: strings, buffer: buffer}, nil
}

func (s *Stations) Len() int {
	return s.buffer.Len()
}

func (s *Stations) Name(id int) string {
	return s.strings[s.buffer.U16(stationNameID, id)]
}

func (s *Stations) Longitude(id int) float64 {
	return float64(s.buffer.S32(stationLongitude, id)) * coordinateScale
}

func (s *Stations) Latitude(id int) float64 {
	return float64(s.buffer.S32(stationLatitude, id)) * coordinateScale
}
