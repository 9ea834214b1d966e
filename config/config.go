package config

import (
	"os"

	"github.com/jsphweid/munotes/constants"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// EnvelopeConfig shapes rendered notes. The *_order keys bend the matching
// ramp (1 is linear, 2 quadratic); 0 means linear.
type EnvelopeConfig struct {
	Attack       float64 `yaml:"attack"`
	Decay        float64 `yaml:"decay"`
	Sustain      float64 `yaml:"sustain"`
	Release      float64 `yaml:"release"`
	Hold         float64 `yaml:"hold"`
	AttackOrder  float64 `yaml:"attack_order"`
	DecayOrder   float64 `yaml:"decay_order"`
	ReleaseOrder float64 `yaml:"release_order"`
}

type RenderConfig struct {
	SampleRate int            `yaml:"sample_rate"`
	Waveform   string         `yaml:"waveform"`
	Release    int            `yaml:"release"`
	Unit       string         `yaml:"unit"`
	BPM        float64        `yaml:"bpm"`
	Envelope   EnvelopeConfig `yaml:"envelope"`
}

type ExportConfig struct {
	Ticks    uint16  `yaml:"ticks"`
	BPM      float64 `yaml:"bpm"`
	Channel  uint8   `yaml:"channel"`
	Velocity uint8   `yaml:"velocity"`
}

type Config struct {
	OutDir     string       `yaml:"out_dir"`
	Addr       string       `yaml:"addr"`
	Octave     int          `yaml:"octave"`
	DebounceMs int          `yaml:"debounce_ms"`
	Render     RenderConfig `yaml:"render"`
	Export     ExportConfig `yaml:"export"`
}

func Default() Config {
	return Config{
		OutDir:     constants.DefaultOutDir,
		Addr:       constants.DefaultAddr,
		Octave:     constants.DefaultOctave,
		DebounceMs: constants.DefaultDebounceMs,
		Render: RenderConfig{
			SampleRate: constants.DefaultSampleRate,
			Waveform:   constants.DefaultWaveform,
			Release:    constants.DefaultRelease,
			Unit:       constants.DefaultUnit,
			BPM:        constants.DefaultBPM,
			Envelope: EnvelopeConfig{
				Attack:  0.01,
				Decay:   0.1,
				Sustain: 0.5,
				Release: 0.1,
			},
		},
		Export: ExportConfig{
			Ticks:    constants.DefaultTicks,
			BPM:      constants.DefaultBPM,
			Velocity: constants.DefaultVelocity,
		},
	}
}

// Load starts from Default, applies the YAML file at path (if path is not
// empty) and finally the environment.
func Load(path string) (Config, error) {
	cfg := Default()
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return cfg, errors.Wrap(err, "reading config")
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, errors.Wrapf(err, "parsing config %s", path)
		}
	}
	if os.Getenv("MUNOTES_OUT_DIR") != "" {
		cfg.OutDir = constants.GetOutDir()
	}
	if os.Getenv("MUNOTES_ADDR") != "" {
		cfg.Addr = constants.GetAddr()
	}
	return cfg, cfg.Validate()
}

func (c Config) Validate() error {
	if c.Render.SampleRate <= 0 {
		return errors.Errorf("render.sample_rate must be positive, got %d", c.Render.SampleRate)
	}
	if c.Render.BPM <= 0 || c.Export.BPM <= 0 {
		return errors.New("bpm must be positive")
	}
	if c.Export.Channel > 15 {
		return errors.Errorf("export.channel must be in [0, 15], got %d", c.Export.Channel)
	}
	if c.Export.Velocity > 127 {
		return errors.Errorf("export.velocity must be in [0, 127], got %d", c.Export.Velocity)
	}
	env := c.Render.Envelope
	if env.Sustain < 0 || env.Sustain > 1 {
		return errors.Errorf("render.envelope.sustain must be in [0, 1], got %v", env.Sustain)
	}
	for _, v := range []float64{env.Attack, env.Decay, env.Release, env.Hold, env.AttackOrder, env.DecayOrder, env.ReleaseOrder} {
		if v < 0 {
			return errors.New("render.envelope times and orders must not be negative")
		}
	}
	if c.Export.Ticks == 0 {
		return errors.New("export.ticks must be positive")
	}
	return nil
}
