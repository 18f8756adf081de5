package models

type Vehicle uint8

// Order matches the kind byte stored in routes.bin
const (
	TramVehicle Vehicle = iota
	MetroVehicle
	TrainVehicle
	BusVehicle
	FerryVehicle
	AerialLiftVehicle
	FunicularVehicle
)

var vehicleNames = [...]string{
	TramVehicle:       "tram",
	MetroVehicle:      "metro",
	TrainVehicle:      "train",
	BusVehicle:        "bus",
	FerryVehicle:      "ferry",
	AerialLiftVehicle: "aerial lift",
	FunicularVehicle:  "funicular",
}

// All vehicle kinds, in storage order
var AllVehicles = []Vehicle{
	TramVehicle,
	MetroVehicle,
	TrainVehicle,
	BusVehicle,
	FerryVehicle,
	AerialLiftVehicle,
	FunicularVehicle,
}

// Check if the vehicle is one of the known kinds
func (v Vehicle) IsValid() bool {
	return int(v) < len(vehicleNames)
}

func (v Vehicle) String() string {
	if !v.IsValid() {
		return "unknown"
	}
	return vehicleNames[v]
}
