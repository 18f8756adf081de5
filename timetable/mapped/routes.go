package mapped

import (
	"fmt"

	"github.com/aaroncutress/csa-go/models"
)

const (
	routeNameID = iota
	routeKind
)

var routeStructure = NewStructure(
	NewField(routeNameID, U16),
	NewField(routeKind, U8),
)

// Routes backed by routes.bin
type Routes struct {
	strings []string
	buffer  *StructuredBuffer
}

func NewRoutes(strings []string, data []byte) (*Routes, error) {
	buffer, err := NewStructuredBuffer(routeStructure, data)
	if err != nil {
		return nil, fmt.Errorf("routes: %w", err)
	}
	return &Routes{strings: strings, buffer: buffer}, nil
}

func (r *Routes) Len() int {
	return r.buffer.Len()
}

func (r *Routes) Vehicle(id int) models.Vehicle {
	return models.Vehicle(r.buffer.U8(routeKind, id))
}

func (r *Routes) Name(id int) string {
	return r.strings[r.buffer.U16(routeNameID, id)]
}
