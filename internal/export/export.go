// Package export writes scenario results and sweep tables to CSV and JSON.
package export

import (
	"encoding/json"
	"os"

	"github.com/gocarina/gocsv"

	"github.com/avparker/wdcool/internal/scenario"
	"github.com/avparker/wdcool/internal/sweep"
)

// ResultData is the JSON shape of one evaluated scenario.
type ResultData struct {
	Name        string  `json:"name"`
	MWD         float64 `json:"mwd"`
	Mdot        float64 `json:"mdot"`
	MdotThick   float64 `json:"mdot_thick,omitempty"`
	Vacc        float64 `json:"vacc"`
	Regime      string  `json:"regime"`
	Source      string  `json:"source"`
	RWD         float64 `json:"rwd_cm"`
	TShockK     float64 `json:"tshock_k"`
	TShockKeV   float64 `json:"tshock_kev"`
	VKep        float64 `json:"vkep_cms"`
	Facc        float64 `json:"facc"`
	ScaleHeight float64 `json:"scale_height_cm"`
	Lrad        float64 `json:"lrad_ergs"`
	Frad        float64 `json:"frad"`
	Urad        float64 `json:"urad_ergcm3"`
	Nebl        float64 `json:"nebl_cm3"`
	Ratio       float64 `json:"ratio"`
	Dominant    string  `json:"dominant"`
}

func newResultData(sc scenario.Scenario, res scenario.Result) ResultData {
	return ResultData{
		Name:        sc.Name,
		MWD:         sc.MWD,
		Mdot:        sc.Mdot,
		MdotThick:   sc.MdotThick,
		Vacc:        sc.Vacc,
		Regime:      string(sc.Regime),
		Source:      string(sc.Source),
		RWD:         res.RWD,
		TShockK:     res.TShockK,
		TShockKeV:   res.TShockKeV,
		VKep:        res.VKep,
		Facc:        res.Facc,
		ScaleHeight: res.ScaleHeight,
		Lrad:        res.Lrad,
		Frad:        res.Frad,
		Urad:        res.Urad,
		Nebl:        res.Nebl,
		Ratio:       res.Ratio,
		Dominant:    res.Dominant(),
	}
}

// ResultJSON writes one evaluated scenario to path as indented JSON.
func ResultJSON(path string, sc scenario.Scenario, res scenario.Result) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()

	encoder := json.NewEncoder(file)
	encoder.SetIndent("", "  ")
	return encoder.Encode(newResultData(sc, res))
}

// ResultJSONStdout writes one evaluated scenario to stdout as indented JSON.
func ResultJSONStdout(sc scenario.Scenario, res scenario.Result) error {
	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	return encoder.Encode(newResultData(sc, res))
}

// SweepCSV writes sweep points to path as CSV.
func SweepCSV(path string, pts []sweep.Point) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()
	return gocsv.Marshal(&pts, file)
}

// SweepJSON writes sweep points to path as indented JSON.
func SweepJSON(path string, pts []sweep.Point) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()

	encoder := json.NewEncoder(file)
	encoder.SetIndent("", "  ")
	return encoder.Encode(pts)
}
