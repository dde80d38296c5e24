package avhrr

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// gacRecordBytes is the level-1b GAC record length used when no
// configuration overrides it.
const gacRecordBytes = 3220

// Config holds the process-wide reader settings. It is installed once at
// startup and read-only afterwards.
type Config struct {
	// RecordBytes is the fixed size of one scanline record.
	RecordBytes int `yaml:"record_bytes"`
	// Calibration maps channel names to the coefficients handed to the
	// downstream calibration chain.
	Calibration map[string]Coefficients `yaml:"calibration"`
}

type Coefficients struct {
	Slope     float64 `yaml:"slope"`
	Intercept float64 `yaml:"intercept"`
}

var current = Config{RecordBytes: gacRecordBytes}

// LoadConfig reads the YAML configuration at path and installs it for the
// whole process. It runs once at startup, before any item is processed;
// a failure is fatal to the run.
func LoadConfig(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("opening config %s: %w", path, err)
	}
	defer func() {
		_ = f.Close()
	}()

	var cfg Config
	dec := yaml.NewDecoder(f)
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil {
		return fmt.Errorf("parsing config %s: %w", path, err)
	}
	if cfg.RecordBytes < 0 {
		return fmt.Errorf("config %s: record_bytes must not be negative", path)
	}
	if cfg.RecordBytes == 0 {
		cfg.RecordBytes = gacRecordBytes
	}
	current = cfg
	return nil
}
