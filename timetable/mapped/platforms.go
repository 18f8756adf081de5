package mapped

import "fmt"

const (
	platformNameID = iota
	platformStationID
)

var platformStructure = NewStructure(
	NewField(platformNameID, U16),
	NewField(platformStationID, U16),
)

// Platforms backed by platforms.bin
type Platforms struct {
	strings []string
	buffer  *StructuredBuffer
}

func NewPlatforms(strings []string, data []byte) (*Platforms, error) {
	buffer, err := NewStructuredBuffer(platformStructure, data)
	if err != nil {
		return nil, fmt.Errorf("platforms: %w", err)
	}
	return &Platforms{strings: strings, buffer: buffer}, nil
}

func (p *Platforms) Len() int {
	return p.buffer.Len()
}

func (p *Platforms) Name(id int) string {
	return p.strings[p.buffer.U16(platformNameID, id)]
}

func (p *Platforms) StationID(id int) int {
	return p.buffer.U16(platformStationID, id)
}
