// Package tui is an interactive terminal explorer for the cooling
// pipeline: adjust the scenario parameters and watch the regime verdict
// update live.
package tui

import (
	"fmt"
	"math"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"

	"github.com/avparker/wdcool/internal/astro"
	"github.com/avparker/wdcool/internal/scenario"
	"github.com/avparker/wdcool/internal/sweep"
)

var (
	cyan    = lipgloss.NewStyle().Foreground(lipgloss.Color("86"))
	white   = lipgloss.NewStyle().Foreground(lipgloss.Color("255"))
	dim     = lipgloss.NewStyle().Foreground(lipgloss.Color("242"))
	green   = lipgloss.NewStyle().Foreground(lipgloss.Color("82"))
	yellow  = lipgloss.NewStyle().Foreground(lipgloss.Color("220"))
	red     = lipgloss.NewStyle().Foreground(lipgloss.Color("203"))
	magenta = lipgloss.NewStyle().Foreground(lipgloss.Color("213"))

	panel = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("238")).
		Padding(0, 1)
)

type param struct {
	name string
	unit string
	// additive step when mul is false, factor when true
	step float64
	mul  bool
}

var params = []param{
	{"mwd", "Msol", 0.05, false},
	{"mdot", "Msol/yr", 1.25, true},
	{"mdot_thick", "Msol/yr", 1.25, true},
	{"vacc", "km/s", 1.25, true},
	{"teff", "K", 1.25, true},
}

// Model is the bubbletea model for the explorer.
type Model struct {
	calc    *astro.Calc
	sc      scenario.Scenario
	cursor  int
	editing bool
	editBuf string

	res    scenario.Result
	resErr error
	series []float64

	width, height int
}

// New builds the explorer around an initial scenario.
func New(calc *astro.Calc, sc scenario.Scenario) Model {
	m := Model{calc: calc, sc: sc, width: 80, height: 24}
	m.recompute()
	return m
}

func (m Model) Init() tea.Cmd { return nil }

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		return m, nil
	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.editing {
		switch msg.String() {
		case "enter":
			var val float64
			if _, err := fmt.Sscanf(m.editBuf, "%g", &val); err == nil {
				m.setParam(m.cursor, val)
				m.recompute()
			}
			m.editing, m.editBuf = false, ""
		case "esc":
			m.editing, m.editBuf = false, ""
		case "backspace":
			if len(m.editBuf) > 0 {
				m.editBuf = m.editBuf[:len(m.editBuf)-1]
			}
		default:
			s := msg.String()
			if len(s) == 1 && strings.ContainsAny(s, "0123456789.eE+-") {
				m.editBuf += s
			}
		}
		return m, nil
	}

	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < len(params)-1 {
			m.cursor++
		}
	case "left", "h":
		m.nudge(m.cursor, false)
		m.recompute()
	case "right", "l":
		m.nudge(m.cursor, true)
		m.recompute()
	case "e", "enter":
		m.editing, m.editBuf = true, ""
	case "r":
		if m.sc.Regime == astro.Thin {
			m.sc.Regime = astro.Thick
		} else {
			m.sc.Regime = astro.Thin
		}
		m.recompute()
	case "s":
		if m.sc.Source == scenario.Blackbody {
			m.sc.Source = scenario.Accretion
		} else {
			m.sc.Source = scenario.Blackbody
		}
		m.recompute()
	}
	return m, nil
}

func (m *Model) getParam(i int) float64 {
	switch params[i].name {
	case "mwd":
		return m.sc.MWD
	case "mdot":
		return m.sc.Mdot
	case "mdot_thick":
		return m.sc.MdotThick
	case "vacc":
		return m.sc.Vacc
	case "teff":
		return m.sc.Teff
	}
	return 0
}

func (m *Model) setParam(i int, v float64) {
	switch params[i].name {
	case "mwd":
		m.sc.MWD = v
	case "mdot":
		m.sc.Mdot = v
	case "mdot_thick":
		m.sc.MdotThick = v
	case "vacc":
		m.sc.Vacc = v
	case "teff":
		m.sc.Teff = v
	}
}

func (m *Model) nudge(i int, up bool) {
	p := params[i]
	v := m.getParam(i)
	if p.mul {
		if up {
			v *= p.step
		} else {
			v /= p.step
		}
	} else {
		if up {
			v += p.step
		} else {
			v -= p.step
		}
	}
	m.setParam(i, v)
}

func (m *Model) recompute() {
	m.res, m.resErr = scenario.Evaluate(m.calc, m.sc, nil)
	m.series = nil
	if m.sc.Mdot <= 0 {
		return
	}
	pts, err := sweep.Run(m.calc, m.sc, sweep.AxisMdot, m.sc.Mdot/10, m.sc.Mdot*10, 48)
	if err != nil {
		return
	}
	series := make([]float64, len(pts))
	for i, p := range pts {
		series[i] = math.Log10(p.Ratio)
	}
	m.series = series
}

func (m Model) View() string {
	var b strings.Builder

	b.WriteString(cyan.Render("wdcool explorer"))
	b.WriteString(dim.Render(fmt.Sprintf("  regime=%s source=%s", m.sc.Regime, m.sc.Source)))
	b.WriteString("\n\n")

	for i, p := range params {
		cursor := "  "
		style := white
		if i == m.cursor {
			cursor = magenta.Render("> ")
			style = yellow
		}
		val := fmt.Sprintf("%.4g", m.getParam(i))
		if m.editing && i == m.cursor {
			val = m.editBuf + "▏"
		}
		fmt.Fprintf(&b, "%s%s %s %s\n", cursor, style.Render(fmt.Sprintf("%-10s", p.name)), white.Render(val), dim.Render(p.unit))
	}
	b.WriteString("\n")

	if m.resErr != nil {
		b.WriteString(panel.Render(red.Render("error: " + m.resErr.Error())))
	} else {
		verdict := green.Render("bremsstrahlung")
		if m.res.Ratio > 1 {
			verdict = yellow.Render("compton")
		}
		body := fmt.Sprintf(
			"tshock  %.3e K  (%.2f keV)\nfacc    %.3e   (z=%.3e cm)\nnebl    %.3e cm^-3\nurad    %.3e erg/cm^3\nratio   %.3e  -> %s",
			m.res.TShockK, m.res.TShockKeV,
			m.res.Facc, m.res.ScaleHeight,
			m.res.Nebl, m.res.Urad,
			m.res.Ratio, verdict,
		)
		b.WriteString(panel.Render(body))
	}
	b.WriteString("\n\n")

	if len(m.series) > 0 {
		w := m.width - 10
		if w > 64 {
			w = 64
		}
		if w < 32 {
			w = 32
		}
		graph := asciigraph.Plot(m.series,
			asciigraph.Height(8),
			asciigraph.Width(w),
			asciigraph.Caption("log10(ratio) vs mdot, decade around current"),
		)
		b.WriteString(graph)
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(dim.Render("↑/↓ select · ←/→ adjust · e edit · r regime · s source · q quit"))
	b.WriteString("\n")
	return b.String()
}
