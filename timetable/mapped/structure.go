package mapped

import (
	"fmt"

	"github.com/aaroncutress/csa-go/internal"
)

type FieldType uint8

const (
	U8 FieldType = iota
	U16
	S32
)

// Width of the field type in bytes
func (t FieldType) Size() int {
	switch t {
	case U8:
		return uint8Bytes
	case U16:
		return uint16Bytes
	case S32:
		return int32Bytes
	default:
		panic(fmt.Errorf("%w: unknown field type %d", internal.ErrPrecondition, t))
	}
}

// One typed field of a Structure; Index is its position in the record
type Field struct {
	Index int
	Type  FieldType
}

// Shorthand for building a Field
func NewField(index int, fieldType FieldType) Field {
	return Field{Index: index, Type: fieldType}
}

// Describes the layout of a fixed-width record: an ordered list of fields
// stored back to back without padding
type Structure struct {
	offsets   []int
	totalSize int
}

// Create a new Structure. Fields must be given in index order, starting at 0.
func NewStructure(fields ...Field) *Structure {
	offsets := make([]int, len(fields))
	offset := 0
	for i, field := range fields {
		internal.CheckArgument(field.Index == i, "field %d declared at position %d", field.Index, i)
		offsets[i] = offset
		offset += field.Type.Size()
	}
	return &Structure{offsets: offsets, totalSize: offset}
}

// Size in bytes of one record
func (s *Structure) TotalSize() int {
	return s.totalSize
}

// Byte offset of the given field of the given element
func (s *Structure) Offset(fieldIndex, elementIndex int) int {
	return s.offsets[fieldIndex] + elementIndex*s.totalSize
}
