package mapped

import (
	"encoding/binary"
	"fmt"

	"github.com/aaroncutress/csa-go/internal"
)

const (
	connectionDepStopID = iota
	connectionDepMinutes
	connectionArrStopID
	connectionArrMinutes
	connectionTripPos
)

var connectionStructure = NewStructure(
	NewField(connectionDepStopID, U16),
	NewField(connectionDepMinutes, U16),
	NewField(connectionArrStopID, U16),
	NewField(connectionArrMinutes, U16),
	NewField(connectionTripPos, S32),
)

// Connections of one day backed by connections.bin, with the successor of
// each connection in its trip read from connections-succ.bin
type Connections struct {
	buffer     *StructuredBuffer
	successors []byte
}

func NewConnections(data, successors []byte) (*Connections, error) {
	buffer, err := NewStructuredBuffer(connectionStructure, data)
	if err != nil {
		return nil, fmt.Errorf("connections: %w", err)
	}
	if len(successors) != buffer.Len()*int32Bytes {
		return nil, fmt.Errorf("%w: %d successor bytes for %d connections",
			ErrCorruptTable, len(successors), buffer.Len())
	}
	return &Connections{buffer: buffer, successors: successors}, nil
}

func (c *Connections) Len() int {
	return c.buffer.Len()
}

func (c *Connections) DepStopID(id int) int {
	return c.buffer.U16(connectionDepStopID, id)
}

func (c *Connections) DepMins(id int) int {
	return c.buffer.U16(connectionDepMinutes, id)
}

func (c *Connections) ArrStopID(id int) int {
	return c.buffer.U16(connectionArrStopID, id)
}

func (c *Connections) ArrMins(id int) int {
	return c.buffer.U16(connectionArrMinutes, id)
}

func (c *Connections) TripID(id int) int {
	return internal.Unpack24(uint32(c.buffer.S32(connectionTripPos, id)))
}

func (c *Connections) TripPos(id int) int {
	return internal.Unpack8(uint32(c.buffer.S32(connectionTripPos, id)))
}

// Next connection of the same trip; the last connection wraps to the first
func (c *Connections) NextConnectionID(id int) int {
	offset := id * int32Bytes
	return int(int32(binary.BigEndian.Uint32(c.successors[offset : offset+int32Bytes])))
}
