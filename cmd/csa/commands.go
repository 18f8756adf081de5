package main

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	csa "github.com/aaroncutress/csa-go"
	"github.com/aaroncutress/csa-go/config"
	"github.com/aaroncutress/csa-go/models"
	"github.com/aaroncutress/csa-go/timetable"
	"github.com/aaroncutress/csa-go/timetable/mapped"
	"github.com/charmbracelet/log"
	"github.com/urfave/cli/v2"
)

const dateLayout = "2006-01-02"

// Configuration of the running command, set up before any action
var cfg config.AppConfig

func setup(c *cli.Context) error {
	if path := c.String("config"); path != "" {
		loaded, err := config.Load(path)
		if err != nil {
			return err
		}
		cfg = loaded
	} else {
		cfg = config.Default(c.String("timetable"))
	}
	if c.IsSet("timetable") {
		cfg.Timetable.Directory = c.String("timetable")
	}

	level, err := log.ParseLevel(cfg.Log.Level)
	if err != nil {
		return err
	}
	log.SetLevel(level)
	return nil
}

// Opens the configured timetable, wrapped in a day cache if enabled
func openTimetable() (timetable.TimeTable, func() error, error) {
	tt, err := mapped.Open(cfg.Timetable.Directory)
	if err != nil {
		return nil, nil, err
	}
	if cfg.Timetable.Cache {
		return timetable.NewCached(tt), tt.Close, nil
	}
	return tt, tt.Close, nil
}

func routeCommand() *cli.Command {
	return &cli.Command{
		Name:  "route",
		Usage: "print the optimal journeys between two stations",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "from", Usage: "departure station name or alias"},
			&cli.StringFlag{Name: "near", Usage: "depart from the station nearest to LAT,LON"},
			&cli.StringFlag{Name: "to", Usage: "arrival station name or alias", Required: true},
			&cli.StringFlag{Name: "date", Usage: "service date, YYYY-MM-DD", Value: time.Now().Format(dateLayout)},
			&cli.IntFlag{Name: "limit", Usage: "maximum number of journeys, 0 for all", Value: -1},
		},
		Action: func(c *cli.Context) error {
			date, err := time.ParseInLocation(dateLayout, c.String("date"), time.UTC)
			if err != nil {
				return fmt.Errorf("invalid date: %w", err)
			}
			limit := cfg.Routing.Limit
			if c.Int("limit") >= 0 {
				limit = c.Int("limit")
			}

			tt, closeTimetable, err := openTimetable()
			if err != nil {
				return err
			}
			defer closeTimetable()

			index, err := csa.NewStationIndex(tt)
			if err != nil {
				return err
			}
			defer index.Close()

			depStationID, err := departureStation(c, tt, index)
			if err != nil {
				return err
			}
			arrStationID, err := index.Lookup(c.String("to"))
			if err != nil {
				return err
			}

			profile, err := csa.NewRouter(tt).Profile(date, arrStationID)
			if err != nil {
				return err
			}
			journeys, err := csa.Journeys(profile, depStationID)
			if err != nil {
				return err
			}

			if len(journeys) == 0 {
				fmt.Fprintf(c.App.Writer, "No journey from %s to %s on %s\n",
					tt.Stations().Name(depStationID), tt.Stations().Name(arrStationID), date.Format(dateLayout))
				return nil
			}
			if limit > 0 && len(journeys) > limit {
				journeys = journeys[:limit]
			}
			for i, journey := range journeys {
				if i > 0 {
					fmt.Fprintln(c.App.Writer)
				}
				fmt.Fprint(c.App.Writer, formatJourney(journey))
			}
			return nil
		},
	}
}

func departureStation(c *cli.Context, tt timetable.TimeTable, index *csa.StationIndex) (int, error) {
	switch {
	case c.String("from") != "":
		return index.Lookup(c.String("from"))
	case c.String("near") != "":
		location, err := parseCoordinate(c.String("near"))
		if err != nil {
			return 0, err
		}
		id, ok := timetable.NearestStation(tt.Stations(), location)
		if !ok {
			return 0, errors.New("timetable has no stations")
		}
		log.Infof("Departing from %s", tt.Stations().Name(id))
		return id, nil
	default:
		return 0, errors.New("either --from or --near is required")
	}
}

func stationsCommand() *cli.Command {
	return &cli.Command{
		Name:  "stations",
		Usage: "list station names and aliases",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "near", Usage: "only print the station nearest to LAT,LON"},
		},
		Action: func(c *cli.Context) error {
			tt, closeTimetable, err := openTimetable()
			if err != nil {
				return err
			}
			defer closeTimetable()

			if near := c.String("near"); near != "" {
				location, err := parseCoordinate(near)
				if err != nil {
					return err
				}
				id, ok := timetable.NearestStation(tt.Stations(), location)
				if !ok {
					return errors.New("timetable has no stations")
				}
				station := timetable.StationLocation(tt.Stations(), id)
				fmt.Fprintf(c.App.Writer, "%s (%.2f km)\n", tt.Stations().Name(id), station.DistanceTo(location))
				return nil
			}

			index, err := csa.NewStationIndex(tt)
			if err != nil {
				return err
			}
			defer index.Close()

			for _, name := range index.Names() {
				fmt.Fprintln(c.App.Writer, name)
			}
			return nil
		},
	}
}

func downloadCommand() *cli.Command {
	return &cli.Command{
		Name:  "download",
		Usage: "download a zipped timetable into the timetable directory",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "url", Usage: "archive URL, overriding the configuration"},
		},
		Action: func(c *cli.Context) error {
			url := cfg.Timetable.ArchiveURL
			if c.String("url") != "" {
				url = c.String("url")
			}
			if url == "" {
				return errors.New("no archive URL configured")
			}

			tt, err := mapped.Download(url, cfg.Timetable.Directory)
			if err != nil {
				return err
			}
			defer tt.Close()

			log.Infof("Timetable with %d stations ready in %s", tt.Stations().Len(), tt.Directory())
			return nil
		},
	}
}

// Parses "LAT,LON" in degrees
func parseCoordinate(value string) (models.Coordinate, error) {
	lat, lon, ok := strings.Cut(value, ",")
	if !ok {
		return models.Coordinate{}, fmt.Errorf("invalid coordinate %q, expected LAT,LON", value)
	}
	latitude, err := strconv.ParseFloat(strings.TrimSpace(lat), 64)
	if err != nil {
		return models.Coordinate{}, fmt.Errorf("invalid latitude: %w", err)
	}
	longitude, err := strconv.ParseFloat(strings.TrimSpace(lon), 64)
	if err != nil {
		return models.Coordinate{}, fmt.Errorf("invalid longitude: %w", err)
	}

	coordinate := models.NewCoordinate(latitude, longitude)
	if !coordinate.IsValid() {
		return models.Coordinate{}, fmt.Errorf("coordinate %s out of range", coordinate)
	}
	return coordinate, nil
}
