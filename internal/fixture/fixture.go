// Package fixture writes small timetables in the on-disk binary format, for tests.
package fixture

import (
	"encoding/binary"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"sort"

	"github.com/aaroncutress/csa-go/internal"
	"github.com/aaroncutress/csa-go/models"
)

type Station struct {
	Name      string
	Latitude  float64
	Longitude float64
}

type Alias struct {
	Alias       string
	StationName string
}

type Platform struct {
	Name      string
	StationID int
}

type Route struct {
	Name    string
	Vehicle models.Vehicle
}

type Trip struct {
	RouteID     int
	Destination string
}

// A connection of a trip. Successors are derived from Trip and Pos.
type Connection struct {
	DepStopID int
	DepMins   int
	ArrStopID int
	ArrMins   int
	TripID    int
	Pos       int
}

type Transfer struct {
	DepStationID int
	ArrStationID int
	Minutes      int
}

type Day struct {
	Trips       []Trip
	Connections []Connection
}

// An in-memory timetable. Days are keyed by their YYYY-MM-DD directory name.
type Timetable struct {
	Stations  []Station
	Aliases   []Alias
	Platforms []Platform
	Routes    []Route
	Transfers []Transfer
	Days      map[string]Day
}

// Adds a zero-minute transfer from every station to itself
func (t *Timetable) WithSelfTransfers() *Timetable {
	for i := range t.Stations {
		t.Transfers = append(t.Transfers, Transfer{DepStationID: i, ArrStationID: i})
	}
	return t
}

// Writes the timetable into directory
func (t *Timetable) Write(directory string) error {
	st := &stringTable{index: make(map[string]int)}

	files := map[string][]byte{
		"stations.bin":        t.encodeStations(st),
		"station-aliases.bin": t.encodeAliases(st),
		"platforms.bin":       t.encodePlatforms(st),
		"routes.bin":          t.encodeRoutes(st),
		"transfers.bin":       t.encodeTransfers(),
	}
	for date, day := range t.Days {
		files[filepath.Join(date, "trips.bin")] = encodeTrips(st, day.Trips)
		connections, successors := encodeConnections(day.Connections)
		files[filepath.Join(date, "connections.bin")] = connections
		files[filepath.Join(date, "connections-succ.bin")] = successors
	}
	files["strings.txt"] = st.encode()

	for name, data := range files {
		path := filepath.Join(directory, name)
		if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
			return err
		}
		if err := os.WriteFile(path, data, 0644); err != nil {
			return err
		}
	}
	return nil
}

// Returns the order in which connections are stored: by decreasing departure
// time, ties keeping the given order
func SortedConnections(connections []Connection) []Connection {
	sorted := make([]Connection, len(connections))
	copy(sorted, connections)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].DepMins > sorted[j].DepMins
	})
	return sorted
}

type stringTable struct {
	values []string
	index  map[string]int
}

func (s *stringTable) id(value string) int {
	if id, ok := s.index[value]; ok {
		return id
	}
	s.index[value] = len(s.values)
	s.values = append(s.values, value)
	return len(s.values) - 1
}

// ISO-8859-1: every rune below 256 is a single byte
func (s *stringTable) encode() []byte {
	var out []byte
	for _, value := range s.values {
		for _, r := range value {
			if r > 0xFF {
				panic(fmt.Sprintf("%q is not representable in ISO-8859-1", value))
			}
			out = append(out, byte(r))
		}
		out = append(out, '\n')
	}
	return out
}

func putU16(out []byte, v int) []byte {
	return binary.BigEndian.AppendUint16(out, uint16(v))
}

func putS32(out []byte, v int32) []byte {
	return binary.BigEndian.AppendUint32(out, uint32(v))
}

func fixedPoint(degrees float64) int32 {
	return int32(math.Round(math.Ldexp(degrees/360, 32)))
}

func (t *Timetable) encodeStations(st *stringTable) []byte {
	var out []byte
	for _, s := range t.Stations {
		out = putU16(out, st.id(s.Name))
		out = putS32(out, fixedPoint(s.Longitude))
		out = putS32(out, fixedPoint(s.Latitude))
	}
	return out
}

func (t *Timetable) encodeAliases(st *stringTable) []byte {
	var out []byte
	for _, a := range t.Aliases {
		out = putU16(out, st.id(a.Alias))
		out = putU16(out, st.id(a.StationName))
	}
	return out
}

func (t *Timetable) encodePlatforms(st *stringTable) []byte {
	var out []byte
	for _, p := range t.Platforms {
		out = putU16(out, st.id(p.Name))
		out = putU16(out, p.StationID)
	}
	return out
}

func (t *Timetable) encodeRoutes(st *stringTable) []byte {
	var out []byte
	for _, r := range t.Routes {
		out = putU16(out, st.id(r.Name))
		out = append(out, byte(r.Vehicle))
	}
	return out
}

// Transfers are stored grouped by arrival station
func (t *Timetable) encodeTransfers() []byte {
	sorted := make([]Transfer, len(t.Transfers))
	copy(sorted, t.Transfers)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].ArrStationID < sorted[j].ArrStationID
	})

	var out []byte
	for _, tr := range sorted {
		out = putU16(out, tr.DepStationID)
		out = putU16(out, tr.ArrStationID)
		out = append(out, byte(tr.Minutes))
	}
	return out
}

func encodeTrips(st *stringTable, trips []Trip) []byte {
	var out []byte
	for _, trip := range trips {
		out = putU16(out, trip.RouteID)
		out = putU16(out, st.id(trip.Destination))
	}
	return out
}

func encodeConnections(connections []Connection) ([]byte, []byte) {
	sorted := SortedConnections(connections)

	// Position of each (trip, pos) in storage order
	type key struct{ trip, pos int }
	stored := make(map[key]int, len(sorted))
	tripLength := make(map[int]int)
	for i, c := range sorted {
		stored[key{c.TripID, c.Pos}] = i
		tripLength[c.TripID] = max(tripLength[c.TripID], c.Pos+1)
	}

	var out, succ []byte
	for _, c := range sorted {
		out = putU16(out, c.DepStopID)
		out = putU16(out, c.DepMins)
		out = putU16(out, c.ArrStopID)
		out = putU16(out, c.ArrMins)
		out = putS32(out, int32(internal.Pack24x8(c.TripID, c.Pos)))

		next := stored[key{c.TripID, (c.Pos + 1) % tripLength[c.TripID]}]
		succ = putS32(succ, int32(next))
	}
	return out, succ
}
