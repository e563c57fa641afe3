package config

import (
	"path/filepath"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Scenario.MWD <= 0 {
		t.Error("mwd should be positive")
	}
	if cfg.Scenario.Mdot <= 0 {
		t.Error("mdot should be positive")
	}
	if cfg.Scenario.Regime != "thin" {
		t.Errorf("expected regime thin, got %s", cfg.Scenario.Regime)
	}
}

func TestGetPreset(t *testing.T) {
	cfg := GetPreset("rs_oph")
	if cfg == nil {
		t.Fatal("expected preset, got nil")
	}
	if cfg.Scenario.MWD != 1.35 {
		t.Errorf("expected mwd 1.35, got %f", cfg.Scenario.MWD)
	}
}

func TestGetPreset_NotFound(t *testing.T) {
	if cfg := GetPreset("nonexistent"); cfg != nil {
		t.Error("expected nil for nonexistent preset")
	}
}

func TestListPresets(t *testing.T) {
	presets := ListPresets()
	if len(presets) == 0 {
		t.Error("expected presets")
	}
	for i := 1; i < len(presets); i++ {
		if presets[i] < presets[i-1] {
			t.Error("expected sorted preset names")
		}
	}
}

func TestPresetsBuild(t *testing.T) {
	for name, cfg := range Presets {
		if _, err := cfg.BuildScenario(); err != nil {
			t.Errorf("preset %s: %v", name, err)
		}
		if calc := cfg.Calc(); calc == nil {
			t.Errorf("preset %s: nil calc", name)
		}
	}
}

func TestLoadSaveRoundtrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scenario.yaml")

	orig := GetPreset("t_crb")
	if err := Save(path, orig); err != nil {
		t.Fatal(err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if loaded.Scenario.MWD != orig.Scenario.MWD {
		t.Errorf("expected mwd %f, got %f", orig.Scenario.MWD, loaded.Scenario.MWD)
	}
	if loaded.Scenario.Source != orig.Scenario.Source {
		t.Errorf("expected source %s, got %s", orig.Scenario.Source, loaded.Scenario.Source)
	}
}

func TestLoad_MissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestConstantsOverride(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Constants = &ConstantsConfig{SpeedOfLight: 2.998e10}
	cfg.HeightNorm = 4.0

	calc := cfg.Calc()
	if calc.Const.C != 2.998e10 {
		t.Errorf("expected overridden c, got %e", calc.Const.C)
	}
	if calc.HeightNorm != 4.0 {
		t.Errorf("expected height norm 4, got %f", calc.HeightNorm)
	}
	// untouched constants keep defaults
	if calc.Const.Mu != 0.63 {
		t.Errorf("expected default mu, got %f", calc.Const.Mu)
	}
}

func TestBuildScenario_BadStrings(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Scenario.Regime = "medium"
	if _, err := cfg.BuildScenario(); err == nil {
		t.Error("expected error for bad regime")
	}

	cfg = DefaultConfig()
	cfg.Scenario.Source = "corona"
	if _, err := cfg.BuildScenario(); err == nil {
		t.Error("expected error for bad source")
	}
}
