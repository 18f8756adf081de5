package config

// TimetableConfig locates the timetable to route over
type TimetableConfig struct {
	Directory  string `yaml:"directory" validate:"required"`
	ArchiveURL string `yaml:"archiveURL" validate:"omitempty,url"`
	// Keep the trips and connections of the last queried day
	Cache bool `yaml:"cache"`
}

// RoutingConfig holds defaults of route queries
type RoutingConfig struct {
	// Maximum number of journeys printed per query, 0 for all
	Limit int `yaml:"limit" validate:"gte=0"`
}

// LogConfig controls the logger
type LogConfig struct {
	Level string `yaml:"level" validate:"omitempty,oneof=debug info warn error fatal"`
}

// AppConfig is the root configuration structure
type AppConfig struct {
	Timetable TimetableConfig `yaml:"timetable" validate:"required"`
	Routing   RoutingConfig   `yaml:"routing"`
	Log       LogConfig       `yaml:"log"`
}
