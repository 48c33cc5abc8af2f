package signal

import (
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// Window is a half-open interval [From, To) during which a predicate
// holds.
type Window struct {
	From float64 `yaml:"from"`
	To   float64 `yaml:"to"`
}

// Behavior names a monitored predicate and the windows in which it is
// true. Outside every window the predicate is false.
type Behavior struct {
	Name    string   `yaml:"name"`
	Windows []Window `yaml:"windows"`
}

// Config describes a synthetic signal: the sampling grid and one
// behavior per monitored predicate. The generated trace's arity always
// equals len(Predicates).
type Config struct {
	Horizon    float64    `yaml:"horizon"`
	Step       float64    `yaml:"step"`
	Predicates []Behavior `yaml:"predicates"`
}

// Load decodes a signal config from YAML. A zero step falls back to
// DefaultStep.
func Load(r io.Reader) (*Config, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var cfg Config
	if err := dec.Decode(&cfg); err != nil {
		return nil, fmt.Errorf("error decoding signal config: %w", err)
	}
	if cfg.Step == 0 {
		cfg.Step = DefaultStep
	}
	if cfg.Step < 0 {
		return nil, fmt.Errorf("invalid step (%g): must be positive", cfg.Step)
	}
	if cfg.Horizon < 0 {
		return nil, fmt.Errorf("invalid horizon (%g): must be non-negative", cfg.Horizon)
	}
	return &cfg, nil
}

// LoadFile reads a signal config from a YAML file.
func LoadFile(path string) (*Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("error opening signal config (%s): %w", path, err)
	}
	defer f.Close()
	return Load(f)
}

// Default is the built-in demo signal: three predicates over a 30
// time-unit horizon, used when no config file is supplied.
func Default() *Config {
	return &Config{
		Horizon: 30,
		Step:    DefaultStep,
		Predicates: []Behavior{
			{Name: "y < 2", Windows: []Window{{From: 0, To: 10}}},
			{Name: "z > 1", Windows: []Window{{From: 5, To: 15}}},
			{Name: "x > 0.3", Windows: []Window{{From: 8, To: 20}}},
		},
	}
}

// StepFns compiles each behavior's windows into a step function.
func (c *Config) StepFns() []StepFn {
	fns := make([]StepFn, len(c.Predicates))
	for i := range c.Predicates {
		windows := c.Predicates[i].Windows
		fns[i] = func(t float64) bool {
			for _, w := range windows {
				if t >= w.From && t < w.To {
					return true
				}
			}
			return false
		}
	}
	return fns
}

// Trace generates the configured signal.
func (c *Config) Trace() Trace {
	return Generate(c.Horizon, c.Step, c.StepFns())
}
