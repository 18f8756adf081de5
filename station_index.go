package csa

import (
	"errors"
	"fmt"
	"sort"

	"github.com/aaroncutress/csa-go/timetable"
	"github.com/charmbracelet/log"
	"github.com/hashicorp/go-set/v3"
	"github.com/kelindar/column"
)

// ErrUnknownStation is returned when a name matches no station or alias
var ErrUnknownStation = errors.New("unknown station")

// StationIndex resolves station names and their aliases to station ids
type StationIndex struct {
	stations *column.Collection
	names    []string
}

// Create a new index over the stations and aliases of tt. When several
// stations share a name the first one wins; aliases never shadow a main name.
func NewStationIndex(tt timetable.TimeTable) (*StationIndex, error) {
	stations := column.NewCollection()
	if err := stations.CreateColumn("name", column.ForKey()); err != nil {
		return nil, err
	}
	if err := stations.CreateColumn("station", column.ForUint()); err != nil {
		return nil, err
	}

	index := &StationIndex{stations: stations}
	seen := set.New[string](tt.Stations().Len())

	rows := make([]indexRow, tt.Stations().Len())
	for id := range rows {
		rows[id] = indexRow{name: tt.Stations().Name(id), station: id}
	}
	if err := index.insert(seen, rows); err != nil {
		return nil, err
	}

	// Aliases resolve through the main names indexed above
	aliases := tt.StationAliases()
	rows = rows[:0]
	for i := 0; i < aliases.Len(); i++ {
		id, ok := index.StationID(aliases.StationName(i))
		if !ok {
			log.Warnf("Alias %q refers to unknown station %q", aliases.Alias(i), aliases.StationName(i))
			continue
		}
		rows = append(rows, indexRow{name: aliases.Alias(i), station: id})
	}
	if err := index.insert(seen, rows); err != nil {
		return nil, err
	}

	index.names = seen.Slice()
	sort.Strings(index.names)
	return index, nil
}

type indexRow struct {
	name    string
	station int
}

// Inserts rows in one transaction. A name already indexed keeps its first
// station.
func (s *StationIndex) insert(seen *set.Set[string], rows []indexRow) error {
	err := s.stations.Query(func(txn *column.Txn) error {
		for _, r := range rows {
			if !seen.Insert(r.name) {
				continue
			}
			err := txn.InsertKey(r.name, func(row column.Row) error {
				row.SetUint("station", uint(r.station))
				return nil
			})
			if err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to index stations: %w", err)
	}
	return nil
}

// Returns the station named name, by main name or alias
func (s *StationIndex) StationID(name string) (int, bool) {
	id, found := 0, false
	s.stations.QueryKey(name, func(row column.Row) error {
		station, ok := row.Uint("station")
		id, found = int(station), ok
		return nil
	})
	return id, found
}

// Like StationID, but fails with ErrUnknownStation
func (s *StationIndex) Lookup(name string) (int, error) {
	id, ok := s.StationID(name)
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrUnknownStation, name)
	}
	return id, nil
}

// All indexed names and aliases, sorted
func (s *StationIndex) Names() []string {
	names := make([]string, len(s.names))
	copy(names, s.names)
	return names
}

func (s *StationIndex) Close() error {
	return s.stations.Close()
}
