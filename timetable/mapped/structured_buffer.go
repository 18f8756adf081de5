package mapped

import (
	"encoding/binary"
	"errors"
	"fmt"
)

// ErrCorruptTable is returned when a table's byte length does not match its record layout
var ErrCorruptTable = errors.New("corrupt timetable table")

// A read-only view of a byte slice as an array of records laid out by a Structure
type StructuredBuffer struct {
	structure *Structure
	data      []byte
}

// Create a new StructuredBuffer over data, which must hold a whole number of records
func NewStructuredBuffer(structure *Structure, data []byte) (*StructuredBuffer, error) {
	if structure.TotalSize() == 0 || len(data)%structure.TotalSize() != 0 {
		return nil, fmt.Errorf("%w: %d bytes is not a multiple of the %d-byte record size",
			ErrCorruptTable, len(data), structure.TotalSize())
	}
	return &StructuredBuffer{structure: structure, data: data}, nil
}

// Number of records in the buffer
func (b *StructuredBuffer) Len() int {
	return len(b.data) / b.structure.TotalSize()
}

// Reads an unsigned 8-bit field
func (b *StructuredBuffer) U8(fieldIndex, elementIndex int) int {
	return int(b.data[b.offset(fieldIndex, elementIndex)])
}

// Reads an unsigned 16-bit field
func (b *StructuredBuffer) U16(fieldIndex, elementIndex int) int {
	offset := b.offset(fieldIndex, elementIndex)
	return int(binary.BigEndian.Uint16(b.data[offset : offset+uint16Bytes]))
}

// Reads a signed 32-bit field
func (b *StructuredBuffer) S32(fieldIndex, elementIndex int) int32 {
	offset := b.offset(fieldIndex, elementIndex)
	return int32(binary.BigEndian.Uint32(b.data[offset : offset+int32Bytes]))
}

// Offset of a field, panicking on an element outside the buffer
func (b *StructuredBuffer) offset(fieldIndex, elementIndex int) int {
	if elementIndex < 0 || elementIndex >= b.Len() {
		panic(fmt.Sprintf("element index %d out of range [0, %d)", elementIndex, b.Len()))
	}
	return b.structure.Offset(fieldIndex, elementIndex)
}
