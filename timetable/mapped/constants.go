package mapped

// Byte sizes of the field types stored in the binary tables
const (
	uint8Bytes  = 1
	uint16Bytes = 2
	int32Bytes  = 4
)

// File names of a timetable directory
const (
	stringsFile            = "strings.txt"
	stationsFile           = "stations.bin"
	stationAliasesFile     = "station-aliases.bin"
	platformsFile          = "platforms.bin"
	routesFile             = "routes.bin"
	transfersFile          = "transfers.bin"
	tripsFile              = "trips.bin"
	connectionsFile        = "connections.bin"
	connectionsSuccFile    = "connections-succ.bin"
	dayDirectoryDateFormat = "2006-01-02"
)
