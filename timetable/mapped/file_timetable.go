package mapped

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/aaroncutress/csa-go/timetable"
	"github.com/charmbracelet/log"
	"golang.org/x/text/encoding/charmap"
)

// A timetable read from a directory of binary tables, each file mapped into
// memory. Day-dependent tables live in one sub-directory per service date.
type FileTimeTable struct {
	directory string
	strings   []string

	stations       *Stations
	stationAliases *StationAliases
	platforms      *Platforms
	routes         *Routes
	transfers      *Transfers

	// Mappings by path; each file is mapped at most once
	mu       sync.Mutex
	mappings map[string][]byte
	closed   bool
}

var ErrClosed = errors.New("timetable closed")

// Open the timetable stored in directory
func Open(directory string) (*FileTimeTable, error) {
	log.Infof("Loading timetable from %s", directory)

	strings, err := readStrings(filepath.Join(directory, stringsFile))
	if err != nil {
		return nil, err
	}

	tt := &FileTimeTable{
		directory: directory,
		strings:   strings,
		mappings:  make(map[string][]byte),
	}

	// Close whatever got mapped if a later table fails
	ok := false
	defer func() {
		if !ok {
			tt.Close()
		}
	}()

	data, err := tt.mapFiles(directory, stationsFile, stationAliasesFile, platformsFile, routesFile, transfersFile)
	if err != nil {
		return nil, err
	}

	if tt.stations, err = NewStations(strings, data[0]); err != nil {
		return nil, err
	}
	if tt.stationAliases, err = NewStationAliases(strings, data[1]); err != nil {
		return nil, err
	}
	if tt.platforms, err = NewPlatforms(strings, data[2]); err != nil {
		return nil, err
	}
	if tt.routes, err = NewRoutes(strings, data[3]); err != nil {
		return nil, err
	}
	if tt.transfers, err = NewTransfers(data[4]); err != nil {
		return nil, err
	}

	log.Infof("Loaded %d stations, %d platforms, %d routes and %d transfers",
		tt.stations.Len(), tt.platforms.Len(), tt.routes.Len(), tt.transfers.Len())

	ok = true
	return tt, nil
}

func (t *FileTimeTable) Stations() timetable.Stations             { return t.stations }
func (t *FileTimeTable) StationAliases() timetable.StationAliases { return t.stationAliases }
func (t *FileTimeTable) Platforms() timetable.Platforms           { return t.platforms }
func (t *FileTimeTable) Routes() timetable.Routes                 { return t.routes }
func (t *FileTimeTable) Transfers() timetable.Transfers           { return t.transfers }

// Directory the timetable was opened from
func (t *FileTimeTable) Directory() string {
	return t.directory
}

// Returns the trips running on date
func (t *FileTimeTable) TripsFor(date time.Time) (timetable.Trips, error) {
	data, err := t.mapFiles(t.dayDirectory(date), tripsFile)
	if err != nil {
		return nil, err
	}
	return NewTrips(t.strings, data[0])
}

// Returns the connections of date, by decreasing departure time
func (t *FileTimeTable) ConnectionsFor(date time.Time) (timetable.Connections, error) {
	data, err := t.mapFiles(t.dayDirectory(date), connectionsFile, connectionsSuccFile)
	if err != nil {
		return nil, err
	}
	return NewConnections(data[0], data[1])
}

// Number of files currently mapped
func (t *FileTimeTable) MappingCount() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return len(t.mappings)
}

// Unmaps every file mapped so far. Tables obtained from the timetable must
// not be used afterwards.
func (t *FileTimeTable) Close() error {
	t.mu.Lock()
	defer t.mu.Unlock()

	var errs []error
	for _, data := range t.mappings {
		if err := unmapFile(data); err != nil {
			errs = append(errs, err)
		}
	}
	t.mappings = nil
	t.closed = true
	return errors.Join(errs...)
}

func (t *FileTimeTable) dayDirectory(date time.Time) string {
	return filepath.Join(t.directory, timetable.DateOf(date).Format(dayDirectoryDateFormat))
}

// Maps the named files of directory, reusing the mapping of a file mapped
// before. Mappings are kept until Close.
func (t *FileTimeTable) mapFiles(directory string, names ...string) ([][]byte, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.closed {
		return nil, ErrClosed
	}

	result := make([][]byte, 0, len(names))
	for _, name := range names {
		path := filepath.Join(directory, name)
		data, ok := t.mappings[path]
		if !ok {
			var err error
			if data, err = mapFile(path); err != nil {
				return nil, fmt.Errorf("failed to map %s: %w", path, err)
			}
			t.mappings[path] = data
		}
		result = append(result, data)
	}
	return result, nil
}

// Reads strings.txt: one ISO-8859-1 string per line
func readStrings(path string) ([]string, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	decoded, err := charmap.ISO8859_1.NewDecoder().Bytes(raw)
	if err != nil {
		return nil, fmt.Errorf("failed to decode %s: %w", path, err)
	}

	strings := make([]string, 0, bytes.Count(decoded, []byte{'\n'})+1)
	scanner := bufio.NewScanner(bytes.NewReader(decoded))
	scanner.Buffer(make([]byte, 0, 64*1024), len(decoded)+1)
	for scanner.Scan() {
		strings = append(strings, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to split %s: %w", path, err)
	}
	return strings, nil
}
