package export

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/avparker/wdcool/internal/astro"
	"github.com/avparker/wdcool/internal/scenario"
	"github.com/avparker/wdcool/internal/sweep"
)

func TestSweepCSV(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sweep.csv")
	pts := []sweep.Point{
		{MWD: 1.0, Mdot: 1e-9, Facc: 0.1, Nebl: 1e17, Urad: 1e7, Ratio: 2.5},
		{MWD: 1.0, Mdot: 1e-8, Facc: 0.03, Nebl: 1e18, Urad: 1e7, Ratio: 25},
	}

	if err := SweepCSV(path, pts); err != nil {
		t.Fatal(err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	if len(lines) != 3 {
		t.Fatalf("expected header + 2 rows, got %d lines", len(lines))
	}
	if !strings.Contains(lines[0], "ratio") {
		t.Errorf("expected ratio column in header, got %q", lines[0])
	}
}

func TestResultJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "result.json")
	sc := scenario.Scenario{
		Name:   "rs_oph",
		MWD:    1.35,
		Mdot:   2e-9,
		Vacc:   10,
		Regime: astro.Thin,
		Source: scenario.Blackbody,
		Teff:   395000,
		Frad:   1.0,
	}
	res, err := scenario.Evaluate(astro.New(), sc, nil)
	if err != nil {
		t.Fatal(err)
	}

	if err := ResultJSON(path, sc, res); err != nil {
		t.Fatal(err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	var decoded ResultData
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatal(err)
	}
	if decoded.Name != "rs_oph" {
		t.Errorf("expected name rs_oph, got %q", decoded.Name)
	}
	if decoded.Dominant != "compton" {
		t.Errorf("expected compton dominated, got %q", decoded.Dominant)
	}
	if decoded.Ratio <= 1 {
		t.Errorf("expected ratio above 1, got %e", decoded.Ratio)
	}
}
