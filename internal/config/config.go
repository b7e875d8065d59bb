package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

const (
	DefaultMass            = 0.5
	DefaultSpringConstant  = 4.0
	DefaultInitialPosition = 1.0
	DefaultInitialVelocity = 0.0
	DefaultNominalSamples  = 5000
	DefaultFilePattern     = "resultados_b%.2f.dat"
)

type Config struct {
	DataDir     string  `yaml:"data_dir"`
	FilePattern string  `yaml:"file_pattern"`
	Mass        float64 `yaml:"mass"`
	Spring      float64 `yaml:"spring_constant"`
	X0          float64 `yaml:"initial_position"`
	V0          float64 `yaml:"initial_velocity"`

	// TheoreticalEnergy is the declared E0 the dataset was generated
	// against (0.5*m*v0^2 + 0.5*k*x0^2 for the reference values).
	TheoreticalEnergy float64 `yaml:"theoretical_energy"`

	Coefficients []float64 `yaml:"coefficients"`
	NearCritical float64   `yaml:"near_critical"`

	Tolerances Tolerances `yaml:"tolerances"`
	Asymptotic Asymptotic `yaml:"asymptotic"`
	Regime     Regime     `yaml:"regime"`
	Samples    Samples    `yaml:"samples"`
}

// Tolerances groups the numeric thresholds used by the checks. They are
// calibrated to the reference dataset, not derived from theory.
type Tolerances struct {
	Constant    float64 `yaml:"constant"`    // theoretical-constant identities
	Initial     float64 `yaml:"initial"`     // initial-condition deltas
	NoiseFloor  float64 `yaml:"noise_floor"` // allowed energy increase per step
	Dissipation float64 `yaml:"dissipation"` // relative error of b*integral(v^2)
	Quadrature  float64 `yaml:"quadrature"`  // trapezoid vs simpson disagreement
	Rectangle   float64 `yaml:"rectangle"`   // trapezoid vs rectangle disagreement
}

type Asymptotic struct {
	EnergyFraction float64 `yaml:"energy_fraction"` // max tail energy as fraction of E0
	PositionBound  float64 `yaml:"position_bound"`
	VelocityBound  float64 `yaml:"velocity_bound"`
	TailFraction   float64 `yaml:"tail_fraction"` // portion of samples treated as the tail
}

type Regime struct {
	UnderdampedMin int `yaml:"underdamped_min"` // oscillation count above this is underdamped
}

type Samples struct {
	Nominal    int     `yaml:"nominal"`
	Band       float64 `yaml:"band"`        // allowed fractional deviation from nominal
	MinComment int     `yaml:"min_comment"` // minimum comment lines in the header
}

func Default() *Config {
	return &Config{
		DataDir:           ".",
		FilePattern:       DefaultFilePattern,
		Mass:              DefaultMass,
		Spring:            DefaultSpringConstant,
		X0:                DefaultInitialPosition,
		V0:                DefaultInitialVelocity,
		TheoreticalEnergy: 2.0,
		Coefficients:      []float64{0.5, 2.0, 3.0},
		NearCritical:      2.0,
		Tolerances: Tolerances{
			Constant:    1e-9,
			Initial:     1e-10,
			NoiseFloor:  1e-10,
			Dissipation: 0.01,
			Quadrature:  0.01,
			Rectangle:   0.05,
		},
		Asymptotic: Asymptotic{
			EnergyFraction: 0.05,
			PositionBound:  0.1,
			VelocityBound:  0.1,
			TailFraction:   0.25,
		},
		Regime: Regime{
			UnderdampedMin: 3,
		},
		Samples: Samples{
			Nominal:    DefaultNominalSamples,
			Band:       0.2,
			MinComment: 3,
		},
	}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

func (c *Config) Validate() error {
	if c.Mass <= 0 {
		return fmt.Errorf("mass must be positive, got %g", c.Mass)
	}
	if c.Spring <= 0 {
		return fmt.Errorf("spring constant must be positive, got %g", c.Spring)
	}
	if len(c.Coefficients) == 0 {
		return fmt.Errorf("no damping coefficients configured")
	}
	for _, b := range c.Coefficients {
		if b <= 0 {
			return fmt.Errorf("damping coefficient must be positive, got %g", b)
		}
	}
	if c.Asymptotic.TailFraction <= 0 || c.Asymptotic.TailFraction > 1 {
		return fmt.Errorf("tail fraction must be in (0, 1], got %g", c.Asymptotic.TailFraction)
	}
	return nil
}
