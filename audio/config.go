package audio

import (
	"os"
	"strconv"

	"github.com/lixenwraith/pulse-runner/core"
	"github.com/lixenwraith/pulse-runner/parameter"
)

// Config holds audio scheduler settings
type Config struct {
	Enabled      bool
	SampleRate   int
	MasterVolume float64

	// InstrumentVolumes scale each slot relative to master
	InstrumentVolumes map[core.InstrumentType]float64
}

// DefaultConfig returns the stock configuration
func DefaultConfig() *Config {
	return &Config{
		Enabled:      true,
		SampleRate:   parameter.AudioSampleRate,
		MasterVolume: 0.8,
		InstrumentVolumes: map[core.InstrumentType]float64{
			core.InstrKick:   1.0,
			core.InstrSnare:  0.9,
			core.InstrHat:    0.6,
			core.InstrBass:   0.8,
			core.InstrHorn:   0.7,
			core.InstrFiddle: 0.7,
			core.InstrLead:   0.5,
		},
	}
}

// LoadConfig builds a config from environment variable overrides
func LoadConfig() *Config {
	cfg := DefaultConfig()

	if enabled := os.Getenv("PULSE_RUNNER_AUDIO_ENABLED"); enabled != "" {
		if val, err := strconv.ParseBool(enabled); err == nil {
			cfg.Enabled = val
		}
	}

	// Master volume as 0-100
	if volume := os.Getenv("PULSE_RUNNER_MASTER_VOLUME"); volume != "" {
		if val, err := strconv.Atoi(volume); err == nil {
			cfg.MasterVolume = float64(val) / 100.0
			if cfg.MasterVolume < 0 {
				cfg.MasterVolume = 0
			}
			if cfg.MasterVolume > 1 {
				cfg.MasterVolume = 1
			}
		}
	}

	if sampleRate := os.Getenv("PULSE_RUNNER_SAMPLE_RATE"); sampleRate != "" {
		if val, err := strconv.Atoi(sampleRate); err == nil && val > 0 {
			cfg.SampleRate = val
		}
	}

	return cfg
}
