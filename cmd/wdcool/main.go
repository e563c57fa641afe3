package main

import (
	"fmt"
	"log/slog"
	"math"
	"os"
	"strconv"
	"text/tabwriter"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"
	"github.com/lmittmann/tint"
	"github.com/spf13/cobra"

	"github.com/avparker/wdcool/internal/astro"
	"github.com/avparker/wdcool/internal/config"
	"github.com/avparker/wdcool/internal/export"
	"github.com/avparker/wdcool/internal/scenario"
	"github.com/avparker/wdcool/internal/sweep"
	"github.com/avparker/wdcool/internal/tui"
)

var (
	verbose    bool
	configFile string
	preset     string

	mwd          float64
	mdot         float64
	mdotThick    float64
	vacc         float64
	regime       string
	source       string
	teff         float64
	frad         float64
	densityScale float64
	heightNorm   float64

	jsonOut bool

	sweepAxis   string
	sweepFrom   float64
	sweepTo     float64
	sweepPoints int
	csvPath     string
	jsonPath    string
	svgPath     string
)

var (
	comptonStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("220"))
	bremsStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("82"))
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "wdcool",
		Short: "boundary layer cooling diagnostic for accreting white dwarfs",
		Long: "wdcool decides whether bremsstrahlung or inverse-Compton scattering\n" +
			"dominates electron cooling in the boundary layer of an accreting white\n" +
			"dwarf, from closed-form estimates of the post-shock temperature, the\n" +
			"boundary layer electron density and a candidate seed photon field.",
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := slog.LevelInfo
			if verbose {
				level = slog.LevelDebug
			}
			slog.SetDefault(slog.New(
				tint.NewHandler(os.Stderr, &tint.Options{
					Level:      level,
					TimeFormat: "15:04:05",
				}),
			))
		},
	}
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "debug diagnostics (scale height, densities)")

	evalCmd := &cobra.Command{
		Use:   "eval",
		Short: "evaluate one cooling scenario",
		RunE:  runEval,
	}
	addScenarioFlags(evalCmd)
	evalCmd.Flags().BoolVar(&jsonOut, "json", false, "emit result as json on stdout")

	sweepCmd := &cobra.Command{
		Use:   "sweep",
		Short: "sweep the cooling ratio across an accretion-rate or mass grid",
		RunE:  runSweep,
	}
	addScenarioFlags(sweepCmd)
	sweepCmd.Flags().StringVar(&sweepAxis, "axis", "mdot", "grid axis (mdot or mwd)")
	sweepCmd.Flags().Float64Var(&sweepFrom, "from", 1e-10, "grid lower bound")
	sweepCmd.Flags().Float64Var(&sweepTo, "to", 1e-7, "grid upper bound")
	sweepCmd.Flags().IntVar(&sweepPoints, "points", 60, "grid size")
	sweepCmd.Flags().StringVar(&csvPath, "csv", "", "write points to csv file")
	sweepCmd.Flags().StringVar(&jsonPath, "json-file", "", "write points to json file")
	sweepCmd.Flags().StringVar(&svgPath, "svg", "", "write log-log curve to svg file")

	radiusCmd := &cobra.Command{
		Use:   "radius [mass]",
		Short: "white dwarf radius and surface gravity (Webbink fit)",
		Args:  cobra.ExactArgs(1),
		RunE:  runRadius,
	}

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list scenario presets",
		Run: func(cmd *cobra.Command, args []string) {
			for _, name := range config.ListPresets() {
				fmt.Println(name)
			}
		},
	}

	exploreCmd := &cobra.Command{
		Use:   "explore",
		Short: "interactive parameter explorer",
		RunE:  runExplore,
	}
	addScenarioFlags(exploreCmd)

	rootCmd.AddCommand(evalCmd, sweepCmd, radiusCmd, presetsCmd, exploreCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func addScenarioFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&preset, "preset", "", "start from a named preset")
	cmd.Flags().StringVar(&configFile, "config", "", "scenario config file (yaml)")
	cmd.Flags().Float64Var(&mwd, "mwd", config.DefaultMWD, "white dwarf mass (solar units)")
	cmd.Flags().Float64Var(&mdot, "mdot", config.DefaultMdot, "boundary layer accretion rate (Msol/yr)")
	cmd.Flags().Float64Var(&mdotThick, "mdot-thick", 0, "rate feeding the optically thick layer (Msol/yr)")
	cmd.Flags().Float64Var(&vacc, "vacc", config.DefaultVacc, "radial infall speed (km/s)")
	cmd.Flags().StringVar(&regime, "regime", config.DefaultRegime, "boundary layer regime (thick or thin)")
	cmd.Flags().StringVar(&source, "source", config.DefaultSource, "seed photon source (blackbody or accretion)")
	cmd.Flags().Float64Var(&teff, "teff", config.DefaultTeff, "photosphere temperature (K)")
	cmd.Flags().Float64Var(&frad, "frad", 0, "source covering fraction (0 = source default)")
	cmd.Flags().Float64Var(&densityScale, "density-scale", 0, "electron density multiplier (0 = 1)")
	cmd.Flags().Float64Var(&heightNorm, "height-norm", 0, "scale height normalization divisor (0 = 1, 4 = z/4r)")
}

// loadConfig builds the effective config: preset, then file, then any
// flags the user actually set.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.DefaultConfig()

	if preset != "" {
		p := config.GetPreset(preset)
		if p == nil {
			return nil, fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets())
		}
		// copy so flag overrides never touch the shared preset
		c := *p
		cfg = &c
	}

	if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		cfg = loaded
	}

	if cmd.Flags().Changed("mwd") {
		cfg.Scenario.MWD = mwd
	}
	if cmd.Flags().Changed("mdot") {
		cfg.Scenario.Mdot = mdot
	}
	if cmd.Flags().Changed("mdot-thick") {
		cfg.Scenario.MdotThick = mdotThick
	}
	if cmd.Flags().Changed("vacc") {
		cfg.Scenario.Vacc = vacc
	}
	if cmd.Flags().Changed("regime") {
		cfg.Scenario.Regime = regime
	}
	if cmd.Flags().Changed("source") {
		cfg.Scenario.Source = source
	}
	if cmd.Flags().Changed("teff") {
		cfg.Scenario.Teff = teff
	}
	if cmd.Flags().Changed("frad") {
		cfg.Scenario.Frad = frad
	}
	if cmd.Flags().Changed("density-scale") {
		cfg.Scenario.DensityScale = densityScale
	}
	if cmd.Flags().Changed("height-norm") {
		cfg.HeightNorm = heightNorm
	}
	return cfg, nil
}

func runEval(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	sc, err := cfg.BuildScenario()
	if err != nil {
		return err
	}

	res, err := scenario.Evaluate(cfg.Calc(), sc, slog.Default())
	if err != nil {
		return err
	}

	if jsonOut {
		return export.ResultJSONStdout(sc, res)
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "scenario\t%s\n", sc.Name)
	fmt.Fprintf(w, "radius\t%.4e cm\n", res.RWD)
	fmt.Fprintf(w, "shock temperature\t%.4e K (%.2f keV)\n", res.TShockK, res.TShockKeV)
	fmt.Fprintf(w, "kepler velocity\t%.4e cm/s\n", res.VKep)
	fmt.Fprintf(w, "scale height\t%.4e cm\n", res.ScaleHeight)
	fmt.Fprintf(w, "accretion fraction\t%.4e\n", res.Facc)
	fmt.Fprintf(w, "electron density\t%.4e cm^-3\n", res.Nebl)
	fmt.Fprintf(w, "seed luminosity\t%.4e erg/s (frad=%.3g)\n", res.Lrad, res.Frad)
	fmt.Fprintf(w, "radiation density\t%.4e erg/cm^3\n", res.Urad)
	fmt.Fprintf(w, "cooling ratio\t%.4e\n", res.Ratio)
	if err := w.Flush(); err != nil {
		return err
	}

	verdict := bremsStyle.Render("bremsstrahlung cooling dominates")
	if res.Ratio > 1 {
		verdict = comptonStyle.Render("compton cooling dominates")
	}
	fmt.Println(verdict)
	return nil
}

func runSweep(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	sc, err := cfg.BuildScenario()
	if err != nil {
		return err
	}
	axis, err := sweep.ParseAxis(sweepAxis)
	if err != nil {
		return err
	}

	pts, err := sweep.Run(cfg.Calc(), sc, axis, sweepFrom, sweepTo, sweepPoints)
	if err != nil {
		return err
	}

	ratios := sweep.Ratios(pts)
	logs := make([]float64, len(ratios))
	for i, r := range ratios {
		logs[i] = math.Log10(r)
	}
	graph := asciigraph.Plot(logs,
		asciigraph.Height(15),
		asciigraph.Width(80),
		asciigraph.Caption(fmt.Sprintf("log10(cooling ratio) vs %s, %g..%g (log grid)", sweepAxis, sweepFrom, sweepTo)),
	)
	fmt.Println(graph)
	fmt.Printf("\nratio range: %.3e .. %.3e over %d points\n", ratios[0], ratios[len(ratios)-1], len(pts))

	if csvPath != "" {
		if err := export.SweepCSV(csvPath, pts); err != nil {
			return err
		}
		fmt.Printf("wrote %s\n", csvPath)
	}
	if jsonPath != "" {
		if err := export.SweepJSON(jsonPath, pts); err != nil {
			return err
		}
		fmt.Printf("wrote %s\n", jsonPath)
	}
	if svgPath != "" {
		if err := export.SweepSVG(svgPath, pts, axis, 640, 360); err != nil {
			return err
		}
		fmt.Printf("wrote %s\n", svgPath)
	}
	return nil
}

func runRadius(cmd *cobra.Command, args []string) error {
	mass, err := strconv.ParseFloat(args[0], 64)
	if err != nil {
		return fmt.Errorf("invalid mass %q: %w", args[0], err)
	}
	rwd, err := astro.Radius(mass)
	if err != nil {
		return err
	}
	logg, err := astro.LogG(mass)
	if err != nil {
		return err
	}

	const rsol = 6.96e10 // cm
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "mass\t%.3f Msol\n", mass)
	fmt.Fprintf(w, "radius\t%.4e cm (%.5f Rsol)\n", rwd, rwd/rsol)
	fmt.Fprintf(w, "log g\t%.4f\n", logg)
	return w.Flush()
}

func runExplore(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	sc, err := cfg.BuildScenario()
	if err != nil {
		return err
	}
	if sc.MdotThick == 0 {
		sc.MdotThick = sc.Mdot
	}

	p := tea.NewProgram(tui.New(cfg.Calc(), sc))
	if _, err := p.Run(); err != nil {
		return err
	}
	return nil
}
