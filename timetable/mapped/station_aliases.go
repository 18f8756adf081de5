package mapped

import "fmt"

const (
	aliasNameID = iota
	aliasStationNameID
)

var stationAliasStructure = NewStructure(
	NewField(aliasNameID, U16),
	NewField(aliasStationNameID, U16),
)

// Station aliases backed by station-aliases.bin
type StationAliases struct {
	strings []string
	buffer  *StructuredBuffer
}

func NewStationAliases(strings []string, data []byte) (*StationAliases, error) {
	buffer, err := NewStructuredBuffer(stationAliasStructure, data)
	if err != nil {
		return nil, fmt.Errorf("station aliases: %w", err)
	}
	return &StationAliases{strings: strings, buffer: buffer}, nil
}

func (a *StationAliases) Len() int {
	return a.buffer.Len()
}

func (a *StationAliases) Alias(id int) string {
	return a.strings[a.buffer.U16(aliasNameID, id)]
}

func (a *StationAliases) StationName(id int) string {
	return a.strings[a.buffer.U16(aliasStationNameID, id)]
}
