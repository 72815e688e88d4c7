// Package ui is the terminal front end of the simulator.
package ui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/rovshanmuradov/inbeef/internal/report"
	"github.com/rovshanmuradov/inbeef/internal/simulation"
	"github.com/rovshanmuradov/inbeef/internal/ui/component"
	"github.com/rovshanmuradov/inbeef/internal/ui/style"
	"go.uber.org/zap"
)

type screen int

const (
	screenForm screen = iota
	screenResults
)

func (sc screen) String() string {
	if sc == screenResults {
		return "results"
	}
	return "form"
}

// Options configures a Simulator.
type Options struct {
	Logger    *zap.Logger
	Engine    *simulation.Engine
	Exporter  *report.Exporter
	OutputDir string
	// Defaults pre-fills the form.
	Defaults simulation.Input
}

// Simulator collects the inputs, runs the engine once per submission and
// shows the results with a PDF export shortcut.
type Simulator struct {
	logger    *zap.Logger
	engine    *simulation.Engine
	exporter  *report.Exporter
	outputDir string

	keys    KeyMap
	form    *component.Form
	helpBar *component.HelpBar

	screen    screen
	record    simulation.Record
	status    string
	statusErr bool
	width     int
}

// NewSimulator creates the simulator model
func NewSimulator(opts Options) *Simulator {
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	engine := opts.Engine
	if engine == nil {
		engine = simulation.NewEngine(logger)
	}

	s := &Simulator{
		logger:    logger.Named("tui"),
		engine:    engine,
		exporter:  opts.Exporter,
		outputDir: opts.OutputDir,
		keys:      DefaultKeyMap(),
		form:      component.NewForm(),
		helpBar:   component.NewHelpBar(),
	}

	values := opts.Defaults.Values()
	for _, f := range simulation.Fields {
		f := f
		s.form.AddField(f.Key, f.Label, f.Help, "").
			SetFieldValue(f.Key, values[f.Key]).
			SetFieldValidation(f.Key, func(raw string) error {
				_, err := simulation.ParseField(f, raw)
				return err
			})
	}
	s.setScreen(screenForm)

	return s
}

// Init initializes the model
func (s *Simulator) Init() tea.Cmd {
	return s.form.Init()
}

// Record returns the last simulated record, nil before the first submission
func (s *Simulator) Record() simulation.Record {
	return s.record
}

// Update handles input for the current screen
func (s *Simulator) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		s.width = msg.Width
		s.form.SetWidth(msg.Width)
		s.helpBar.SetWidth(msg.Width)
		return s, nil

	case ExportedMsg:
		if msg.Err != nil {
			s.setStatus("Falha ao gerar o PDF: "+msg.Err.Error(), true)
		} else {
			s.setStatus("Relatório salvo em "+msg.Path, false)
		}
		return s, nil

	case tea.KeyMsg:
		if key.Matches(msg, s.keys.ForceQuit) {
			return s, tea.Quit
		}
		if s.screen == screenResults {
			return s.updateResults(msg)
		}
		if key.Matches(msg, s.keys.Submit) {
			s.submit()
			return s, nil
		}
	}

	if s.screen == screenForm {
		var cmd tea.Cmd
		s.form, cmd = s.form.Update(msg)
		return s, cmd
	}
	return s, nil
}

func (s *Simulator) updateResults(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, s.keys.Quit):
		return s, tea.Quit
	case key.Matches(msg, s.keys.Edit):
		s.setScreen(screenForm)
		s.status = ""
		return s, nil
	case key.Matches(msg, s.keys.Export):
		s.setStatus("Gerando relatório...", false)
		return s, s.exportCmd(s.record)
	}
	return s, nil
}

func (s *Simulator) submit() {
	if !s.form.Validate() {
		s.setStatus("Corrija os campos destacados.", true)
		return
	}

	in, err := simulation.ParseInput(s.form.GetValues())
	if err != nil {
		s.setStatus(err.Error(), true)
		return
	}

	_, s.record = s.engine.Simulate(in)
	s.setScreen(screenResults)
	s.status = ""

	s.logger.Info("Simulation submitted",
		zap.Int("days", in.Days),
		zap.Int("animal_count", in.AnimalCount))
}

func (s *Simulator) exportCmd(rec simulation.Record) tea.Cmd {
	exporter, dir := s.exporter, s.outputDir
	return func() tea.Msg {
		if exporter == nil {
			return ExportedMsg{Err: fmt.Errorf("export is not configured")}
		}
		path, err := exporter.Export(rec, report.ExportOptions{
			Format:    report.FormatPDF,
			OutputDir: dir,
		})
		return ExportedMsg{Path: path, Err: err}
	}
}

// setScreen switches screens and the help bar with them.
func (s *Simulator) setScreen(sc screen) {
	s.screen = sc
	if sc == screenResults {
		s.helpBar.SetKeyBindings(s.keys.ResultsHelp())
	} else {
		s.helpBar.SetKeyBindings(s.keys.FormHelp())
	}
}

// StateFields describes where the user is, for crash logs.
func (s *Simulator) StateFields() []zap.Field {
	fields := []zap.Field{
		zap.Stringer("screen", s.screen),
		zap.Bool("has_record", s.record != nil),
	}
	if s.screen == screenForm {
		fields = append(fields, zap.String("focused_field", s.form.Focused()))
	}
	if s.status != "" {
		fields = append(fields, zap.String("status", s.status))
	}
	return fields
}

func (s *Simulator) setStatus(text string, isErr bool) {
	s.status = text
	s.statusErr = isErr
}

// View renders the current screen
func (s *Simulator) View() string {
	var b strings.Builder

	b.WriteString(style.TitleStyle.Render(report.ReportTitle))
	b.WriteString("\n")
	b.WriteString(style.SubHeaderStyle.Render(report.ReportSubtitle))
	b.WriteString("\n")

	if s.screen == screenResults {
		b.WriteString(s.resultsView())
	} else {
		b.WriteString(s.form.View())
	}

	if s.status != "" {
		b.WriteString("\n")
		if s.statusErr {
			b.WriteString(style.ErrorStyle.Render(s.status))
		} else {
			b.WriteString(style.SuccessStyle.Render(s.status))
		}
	}

	b.WriteString("\n")
	b.WriteString(s.helpBar.View())
	return b.String()
}

func (s *Simulator) resultsView() string {
	left, right := report.SummaryColumns(s.record)

	columns := style.AdaptiveJoinHorizontal(s.width,
		style.StandardPanelStyle.Render(renderLines(left)),
		style.InbeefPanelStyle.Render(renderLines(right)),
	)

	interpretation := style.InterpretationStyle
	if s.width > 4 {
		interpretation = interpretation.Width(s.width - 4)
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		columns,
		interpretation.Render(report.Interpretation(s.record)),
		style.HelpStyle.Render(report.Disclaimer),
	)
}

func renderLines(lines []report.Line) string {
	rows := make([]string, 0, len(lines))
	for _, l := range lines {
		rows = append(rows,
			style.ResultLabelStyle.Render(l.Label)+"\n"+style.ResultValueStyle.Render(l.Value))
	}
	return strings.Join(rows, "\n\n")
}

// Run shows model full screen until the user quits or ctx is cancelled.
func Run(ctx context.Context, model tea.Model, logger *zap.Logger) error {
	program := tea.NewProgram(newGuardedModel(model, logger),
		tea.WithAltScreen(),
		tea.WithContext(ctx),
	)
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("UI error: %w", err)
	}
	return nil
}
