package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"
)

// Config holds the dashboard and poster settings.
type Config struct {
	Listen       string   `json:"listen"`        // address the dashboard listens on
	DataDir      string   `json:"data_dir"`      // directory holding flights.csv
	FlightsFile  string   `json:"flights_file"`  // flights dataset file name
	AirlinesFile string   `json:"airlines_file"` // airline label file
	AirportsFile string   `json:"airports_file"` // airport label file
	RowLimit     int      `json:"row_limit"`     // max flight rows loaded per refresh
	LogName      string   `json:"log_name"`      // log file path
	LogMaxSize   int64    `json:"log_max_size"`  // rotation threshold in bytes
	PollInterval Duration `json:"poll_interval"` // fallback mtime poll for dataset changes
}

var (
	once     sync.Once
	instance *Config
)

// LoadConfig reads the JSON config file once per process. A missing file is
// not an error; defaults are returned so the dashboard runs out of the box.
func LoadConfig(jsonFolder, jsonFile string) (*Config, error) {
	var err error
	once.Do(func() {
		instance, err = loadConfig(filepath.Join(jsonFolder, jsonFile))
	})
	if instance == nil && err == nil {
		err = fmt.Errorf("config was not loaded")
	}
	return instance, err
}

func loadConfig(configFile string) (*Config, error) {
	cfg := defaults()

	data, err := os.ReadFile(configFile)
	if os.IsNotExist(err) {
		return cfg, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", configFile, err)
	}

	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file %s: %w", configFile, err)
	}
	return cfg, nil
}

func defaults() *Config {
	return &Config{
		Listen:       ":8080",
		DataDir:      "data",
		FlightsFile:  "flights.csv",
		AirlinesFile: "airlines.csv",
		AirportsFile: "airports.csv",
		RowLimit:     100000,
		LogName:      "app.log",
		LogMaxSize:   32 * 1024 * 1024,
		PollInterval: Duration(time.Minute),
	}
}

// FlightsPath returns the full path of the flights dataset.
func (c *Config) FlightsPath() string {
	return filepath.Join(c.DataDir, c.FlightsFile)
}

// AirlinesPath returns the full path of the airline label file.
func (c *Config) AirlinesPath() string {
	return filepath.Join(c.DataDir, c.AirlinesFile)
}

// AirportsPath returns the full path of the airport label file.
func (c *Config) AirportsPath() string {
	return filepath.Join(c.DataDir, c.AirportsFile)
}

// Duration wraps time.Duration so intervals can be written as "5m" in JSON.
type Duration time.Duration

// UnmarshalJSON parses a duration string like "1m30s".
func (d *Duration) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	dur, err := time.ParseDuration(s)
	if err != nil {
		return err
	}
	*d = Duration(dur)
	return nil
}

// MarshalJSON renders the duration back to its string form.
func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
