package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/hexlattice/graphbridge/bridge"
	"github.com/hexlattice/graphbridge/engine"
	"github.com/hexlattice/graphbridge/errors"
	"github.com/hexlattice/graphbridge/resource"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Padding(0, 1)

	genStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#98FB98"))

	paramStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#87CEEB"))

	selectedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4"))

	resultStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#90EE90"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#666666"))
)

type genParam struct {
	name   string
	kind   string // "long" or "double"
	defval string
}

type genEntry struct {
	name   string
	params []genParam
	run    func(th *bridge.Thread, g resource.Handle, args []float64) error
}

var generators = []genEntry{
	{
		name:   "empty",
		params: []genParam{{"n", "long", "10"}},
		run: func(th *bridge.Thread, g resource.Handle, a []float64) error {
			return statusErr(th, th.GenerateEmpty(g, int64(a[0])))
		},
	},
	{
		name:   "complete",
		params: []genParam{{"n", "long", "10"}},
		run: func(th *bridge.Thread, g resource.Handle, a []float64) error {
			return statusErr(th, th.GenerateComplete(g, int64(a[0])))
		},
	},
	{
		name:   "complete bipartite",
		params: []genParam{{"n1", "long", "5"}, {"n2", "long", "5"}},
		run: func(th *bridge.Thread, g resource.Handle, a []float64) error {
			return statusErr(th, th.GenerateCompleteBipartite(g, int64(a[0]), int64(a[1])))
		},
	},
	{
		name:   "ring",
		params: []genParam{{"n", "long", "10"}},
		run: func(th *bridge.Thread, g resource.Handle, a []float64) error {
			return statusErr(th, th.GenerateRing(g, int64(a[0])))
		},
	},
	{
		name:   "barabasi-albert",
		params: []genParam{{"m0", "long", "3"}, {"m", "long", "2"}, {"n", "long", "20"}, {"seed", "long", "1"}},
		run: func(th *bridge.Thread, g resource.Handle, a []float64) error {
			return statusErr(th, th.GenerateBarabasiAlbert(g, int64(a[0]), int64(a[1]), int64(a[2]), int64(a[3])))
		},
	},
	{
		name:   "watts-strogatz",
		params: []genParam{{"n", "long", "20"}, {"k", "long", "4"}, {"p", "double", "0.1"}, {"seed", "long", "1"}},
		run: func(th *bridge.Thread, g resource.Handle, a []float64) error {
			return statusErr(th, th.GenerateWattsStrogatz(g, int64(a[0]), int64(a[1]), a[2], int64(a[3])))
		},
	},
	{
		name:   "kleinberg",
		params: []genParam{{"n", "long", "5"}, {"q", "long", "2"}, {"r", "double", "2.0"}, {"seed", "long", "1"}},
		run: func(th *bridge.Thread, g resource.Handle, a []float64) error {
			return statusErr(th, th.GenerateKleinberg(g, int64(a[0]), int64(a[1]), a[2], int64(a[3])))
		},
	},
	{
		name:   "g(n,m)",
		params: []genParam{{"n", "long", "10"}, {"m", "long", "15"}, {"seed", "long", "1"}},
		run: func(th *bridge.Thread, g resource.Handle, a []float64) error {
			return statusErr(th, th.GenerateGnm(g, int64(a[0]), int64(a[1]), int64(a[2])))
		},
	},
	{
		name:   "g(n,p)",
		params: []genParam{{"n", "long", "10"}, {"p", "double", "0.3"}, {"seed", "long", "1"}},
		run: func(th *bridge.Thread, g resource.Handle, a []float64) error {
			return statusErr(th, th.GenerateGnp(g, int64(a[0]), a[1], int64(a[2])))
		},
	},
}

type modelState int

const (
	stateSelectGen modelState = iota
	stateInputArgs
	stateShowResult
)

type interactiveModel struct {
	err      error
	result   string
	inputs   []textinput.Model
	selected int
	focusIdx int
	state    modelState
}

type genResultMsg struct {
	err    error
	result string
}

func newInteractiveModel() *interactiveModel {
	return &interactiveModel{state: stateSelectGen}
}

func (m *interactiveModel) Init() tea.Cmd {
	return nil
}

func (m *interactiveModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q":
			if m.state != stateInputArgs || msg.String() == "ctrl+c" {
				return m, tea.Quit
			}

		case "up", "k":
			if m.state == stateSelectGen && m.selected > 0 {
				m.selected--
			}

		case "down", "j":
			if m.state == stateSelectGen && m.selected < len(generators)-1 {
				m.selected++
			}

		case "enter":
			switch m.state {
			case stateSelectGen:
				m.prepareInputs()
				m.state = stateInputArgs

			case stateInputArgs:
				return m, m.runGenerator

			case stateShowResult:
				m.state = stateSelectGen
				m.result = ""
				m.err = nil
			}

		case "tab":
			if m.state == stateInputArgs && len(m.inputs) > 1 {
				m.inputs[m.focusIdx].Blur()
				m.focusIdx = (m.focusIdx + 1) % len(m.inputs)
				m.inputs[m.focusIdx].Focus()
			}

		case "esc":
			switch m.state {
			case stateInputArgs:
				m.state = stateSelectGen
				m.inputs = nil
			case stateShowResult:
				m.state = stateSelectGen
				m.result = ""
				m.err = nil
			}
		}

	case genResultMsg:
		m.result = msg.result
		m.err = msg.err
		m.state = stateShowResult
	}

	if m.state == stateInputArgs {
		var cmds []tea.Cmd
		for i := range m.inputs {
			var cmd tea.Cmd
			m.inputs[i], cmd = m.inputs[i].Update(msg)
			cmds = append(cmds, cmd)
		}
		return m, tea.Batch(cmds...)
	}

	return m, nil
}

func (m *interactiveModel) prepareInputs() {
	g := generators[m.selected]
	m.inputs = make([]textinput.Model, len(g.params))
	for i, p := range g.params {
		ti := textinput.New()
		ti.Placeholder = p.defval
		ti.Prompt = p.name + ": "
		ti.Width = 20
		if i == 0 {
			ti.Focus()
		}
		m.inputs[i] = ti
	}
	m.focusIdx = 0
}

func (m *interactiveModel) runGenerator() tea.Msg {
	entry := generators[m.selected]

	args := make([]float64, len(m.inputs))
	for i, input := range m.inputs {
		raw := input.Value()
		if raw == "" {
			raw = entry.params[i].defval
		}
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return genResultMsg{err: fmt.Errorf("parameter %s: %w", entry.params[i].name, err)}
		}
		args[i] = v
	}

	stats, err := generateAndMeasure(entry, args)
	if err != nil {
		return genResultMsg{err: err}
	}
	return genResultMsg{result: stats}
}

// generateAndMeasure runs on bubbletea's command goroutine, so it attaches
// its own token rather than borrowing one pinned to another goroutine.
func generateAndMeasure(entry genEntry, args []float64) (string, error) {
	th, st := bridge.Attach()
	if !st.OK() {
		return "", fmt.Errorf("attach: %v", st)
	}
	defer th.Detach()

	var g resource.Handle
	if err := statusErr(th, th.CreateGraph(false, false, false, false, &g)); err != nil {
		return "", err
	}
	defer th.DestroyHandle(g)

	if err := entry.run(th, g, args); err != nil {
		return "", err
	}
	return collectStats(th, g)
}

func collectStats(th *bridge.Thread, g resource.Handle) (string, error) {
	var vertices, edges int64
	if err := statusErr(th, th.VertexCount(g, &vertices)); err != nil {
		return "", err
	}
	if err := statusErr(th, th.EdgeCount(g, &edges)); err != nil {
		return "", err
	}

	var connected bool
	var comps resource.Handle
	if err := statusErr(th, th.WeakComponents(g, &connected, &comps)); err != nil {
		return "", err
	}
	count, err := drainComponents(th, comps)
	if err != nil {
		return "", err
	}

	return fmt.Sprintf("vertices: %d\nedges: %d\nconnected: %v\ncomponents: %d",
		vertices, edges, connected, count), nil
}

func statusErr(th *bridge.Thread, st errors.Status) error {
	if st.OK() {
		return nil
	}
	return fmt.Errorf("%s", th.LastErrorMessage())
}

func (m *interactiveModel) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("graphbridge"))
	b.WriteString("\n\n")

	switch m.state {
	case stateSelectGen:
		b.WriteString("Select a generator:\n\n")
		for i, g := range generators {
			cursor := "  "
			if i == m.selected {
				cursor = "> "
				b.WriteString(selectedStyle.Render(cursor + m.formatGen(g)))
			} else {
				b.WriteString(cursor + m.formatGen(g))
			}
			b.WriteString("\n")
		}
		b.WriteString("\n")
		b.WriteString(helpStyle.Render("↑/↓ select • enter configure • q quit"))

	case stateInputArgs:
		g := generators[m.selected]
		b.WriteString(fmt.Sprintf("Configuring %s\n\n", genStyle.Render(g.name)))
		for i, input := range m.inputs {
			b.WriteString(input.View())
			b.WriteString(" ")
			b.WriteString(paramStyle.Render(g.params[i].kind))
			b.WriteString("\n")
		}
		b.WriteString("\n")
		b.WriteString(helpStyle.Render("tab next field • enter generate • esc back"))

	case stateShowResult:
		g := generators[m.selected]
		b.WriteString(fmt.Sprintf("Result of %s:\n\n", genStyle.Render(g.name)))
		if m.err != nil {
			b.WriteString(errorStyle.Render(fmt.Sprintf("Error: %v", m.err)))
		} else {
			b.WriteString(resultStyle.Render(m.result))
		}
		b.WriteString("\n\n")
		b.WriteString(helpStyle.Render("enter continue • q quit"))
	}

	return b.String()
}

func (m *interactiveModel) formatGen(g genEntry) string {
	var params []string
	for _, p := range g.params {
		params = append(params, p.name+": "+paramStyle.Render(p.kind))
	}
	return genStyle.Render(g.name) + "(" + strings.Join(params, ", ") + ")"
}

func runInteractive() error {
	if err := engine.Initialize(nil); err != nil {
		return err
	}
	defer engine.Shutdown()

	p := tea.NewProgram(newInteractiveModel(), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
