package config

import (
	"os"

	"gopkg.in/yaml.v3"

	"github.com/avparker/wdcool/internal/astro"
	"github.com/avparker/wdcool/internal/scenario"
)

const (
	DefaultMWD    = 1.0
	DefaultMdot   = 1e-9
	DefaultVacc   = 10.0
	DefaultTeff   = 100000.0
	DefaultRegime = "thin"
	DefaultSource = "blackbody"
)

type Config struct {
	Scenario   ScenarioConfig   `yaml:"scenario"`
	Constants  *ConstantsConfig `yaml:"constants,omitempty"`
	HeightNorm float64          `yaml:"height_norm,omitempty"`
}

type ScenarioConfig struct {
	Name         string  `yaml:"name"`
	MWD          float64 `yaml:"mwd"`
	Mdot         float64 `yaml:"mdot"`
	MdotThick    float64 `yaml:"mdot_thick,omitempty"`
	Vacc         float64 `yaml:"vacc"`
	Regime       string  `yaml:"regime"`
	Source       string  `yaml:"source"`
	Teff         float64 `yaml:"teff,omitempty"`
	Frad         float64 `yaml:"frad,omitempty"`
	DensityScale float64 `yaml:"density_scale,omitempty"`
}

// ConstantsConfig overrides individual physical constants. Zero fields
// keep the default value.
type ConstantsConfig struct {
	Msol         float64 `yaml:"msol,omitempty"`
	Mu           float64 `yaml:"mu,omitempty"`
	MH           float64 `yaml:"mh,omitempty"`
	G            float64 `yaml:"g,omitempty"`
	Kb           float64 `yaml:"kb,omitempty"`
	SpeedOfLight float64 `yaml:"speed_of_light,omitempty"`
	SigmaSB      float64 `yaml:"sigma_sb,omitempty"`
}

func DefaultConfig() *Config {
	return &Config{
		Scenario: ScenarioConfig{
			Name:   "default",
			MWD:    DefaultMWD,
			Mdot:   DefaultMdot,
			Vacc:   DefaultVacc,
			Regime: DefaultRegime,
			Source: DefaultSource,
			Teff:   DefaultTeff,
		},
	}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
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

// Calc builds the calculation backend with any constant overrides and
// the configured footprint normalization applied.
func (c *Config) Calc() *astro.Calc {
	calc := astro.New()
	if c.HeightNorm != 0 {
		calc.HeightNorm = c.HeightNorm
	}
	if o := c.Constants; o != nil {
		if o.Msol != 0 {
			calc.Const.Msol = o.Msol
		}
		if o.Mu != 0 {
			calc.Const.Mu = o.Mu
		}
		if o.MH != 0 {
			calc.Const.MH = o.MH
		}
		if o.G != 0 {
			calc.Const.G = o.G
		}
		if o.Kb != 0 {
			calc.Const.Kb = o.Kb
		}
		if o.SpeedOfLight != 0 {
			calc.Const.C = o.SpeedOfLight
		}
		if o.SigmaSB != 0 {
			calc.Const.SigmaSB = o.SigmaSB
		}
	}
	return calc
}

// BuildScenario parses the regime and source strings and returns the
// runnable scenario.
func (c *Config) BuildScenario() (scenario.Scenario, error) {
	regime, err := astro.ParseRegime(c.Scenario.Regime)
	if err != nil {
		return scenario.Scenario{}, err
	}
	source, err := scenario.ParseSource(c.Scenario.Source)
	if err != nil {
		return scenario.Scenario{}, err
	}
	return scenario.Scenario{
		Name:         c.Scenario.Name,
		MWD:          c.Scenario.MWD,
		Mdot:         c.Scenario.Mdot,
		MdotThick:    c.Scenario.MdotThick,
		Vacc:         c.Scenario.Vacc,
		Regime:       regime,
		Source:       source,
		Teff:         c.Scenario.Teff,
		Frad:         c.Scenario.Frad,
		DensityScale: c.Scenario.DensityScale,
	}, nil
}
