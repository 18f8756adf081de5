package mapped

import (
	"fmt"

	"github.com/aaroncutress/csa-go/internal"
)

const (
	transferDepStationID = iota
	transferArrStationID
	transferMinutes
)

var transferStructure = NewStructure(
	NewField(transferDepStationID, U16),
	NewField(transferArrStationID, U16),
	NewField(transferMinutes, U8),
)

// Transfers backed by transfers.bin. Rows must be grouped by arrival station.
type Transfers struct {
	buffer     *StructuredBuffer
	arrivingAt []internal.PackedRange
}

func NewTransfers(data []byte) (*Transfers, error) {
	buffer, err := NewStructuredBuffer(transferStructure, data)
	if err != nil {
		return nil, fmt.Errorf("transfers: %w", err)
	}

	maxStationID := -1
	for i := 0; i < buffer.Len(); i++ {
		maxStationID = max(maxStationID, buffer.U16(transferArrStationID, i))
	}

	// One pass over runs of rows sharing an arrival station
	arrivingAt := make([]internal.PackedRange, maxStationID+1)
	for i := 0; i < buffer.Len(); {
		start := i
		stationID := buffer.U16(transferArrStationID, i)
		for i < buffer.Len() && buffer.U16(transferArrStationID, i) == stationID {
			i++
		}
		arrivingAt[stationID] = internal.PackRange(start, i)
	}

	return &Transfers{buffer: buffer, arrivingAt: arrivingAt}, nil
}

func (t *Transfers) Len() int {
	return t.buffer.Len()
}

func (t *Transfers) DepStationID(id int) int {
	return t.buffer.U16(transferDepStationID, id)
}

func (t *Transfers) Minutes(id int) int {
	return t.buffer.U8(transferMinutes, id)
}

// Stations no transfer arrives at get an empty range
func (t *Transfers) ArrivingAt(stationID int) internal.PackedRange {
	if stationID >= len(t.arrivingAt) {
		return internal.PackRange(0, 0)
	}
	return t.arrivingAt[stationID]
}

func (t *Transfers) MinutesBetween(depStationID, arrStationID int) (int, bool) {
	r := t.ArrivingAt(arrStationID)
	for i := internal.RangeStart(r); i < internal.RangeEnd(r); i++ {
		if t.DepStationID(i) == depStationID {
			return t.Minutes(i), true
		}
	}
	return 0, false
}
