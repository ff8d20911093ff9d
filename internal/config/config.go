package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"

	"taxi_stats/pkg/logger"
)

// Config holds settings shared by the commands.
type Config struct {
	DataFile  string
	ZoneFile  string
	EdgeScale float64
	Seed      uint64
	Addr      string
	Debug     bool
}

// Default values used when neither the environment nor flags set a field.
const (
	DefaultDataFile  = "nyc_dataset_small.txt"
	DefaultZoneFile  = "taxi+_zone_lookup.csv"
	DefaultEdgeScale = 500.0
	DefaultAddr      = ":8080"
)

// LoadEnv reads a .env file into the process environment if one exists.
func LoadEnv(filenames ...string) {
	if err := godotenv.Load(filenames...); err != nil {
		logger.Debug("No .env file found, using system environment variables")
	}
}

// FromEnv builds a Config from TAXI_* variables and DEBUG.
func FromEnv() Config {
	return Config{
		DataFile:  GetEnvString("TAXI_DATA_FILE", DefaultDataFile),
		ZoneFile:  GetEnvString("TAXI_ZONE_FILE", DefaultZoneFile),
		EdgeScale: GetEnvFloat("TAXI_EDGE_SCALE", DefaultEdgeScale),
		Seed:      GetEnvUint("TAXI_SEED", 0),
		Addr:      GetEnvString("TAXI_ADDR", DefaultAddr),
		Debug:     GetEnvBool("DEBUG", false),
	}
}

func GetEnvString(key, defaultValue string) string {
	value, ok := os.LookupEnv(key)
	if !ok {
		return defaultValue
	}
	return value
}

func GetEnvFloat(key string, defaultValue float64) float64 {
	value, ok := os.LookupEnv(key)
	if !ok {
		return defaultValue
	}
	f, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return defaultValue
	}
	return f
}

func GetEnvUint(key string, defaultValue uint64) uint64 {
	value, ok := os.LookupEnv(key)
	if !ok {
		return defaultValue
	}
	u, err := strconv.ParseUint(value, 10, 64)
	if err != nil {
		return defaultValue
	}
	return u
}

func GetEnvBool(key string, defaultValue bool) bool {
	value, ok := os.LookupEnv(key)
	if !ok {
		return defaultValue
	}
	if value == "true" || value == "false" {
		return value == "true"
	}
	return defaultValue
}
