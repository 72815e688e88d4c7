package ui

import (
	"fmt"
	"runtime/debug"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rovshanmuradov/inbeef/internal/ui/style"
	"go.uber.org/zap"
)

const viewCrashText = "Erro na interface. Pressione Ctrl+C para sair."

// stateReporter is implemented by models that can describe their current
// screen in a crash log.
type stateReporter interface {
	StateFields() []zap.Field
}

// guardedModel keeps the program alive when the wrapped model panics. A
// panicking Update is dropped, the previous state stays on screen and a
// notice tells the user the last action was ignored.
type guardedModel struct {
	model  tea.Model
	logger *zap.Logger
	notice string
}

func newGuardedModel(model tea.Model, logger *zap.Logger) *guardedModel {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &guardedModel{
		model:  model,
		logger: logger.Named("ui"),
	}
}

func (g *guardedModel) Init() (cmd tea.Cmd) {
	defer g.recoverPanic("Init", &cmd)
	return g.model.Init()
}

func (g *guardedModel) Update(msg tea.Msg) (model tea.Model, cmd tea.Cmd) {
	model = g
	defer g.recoverPanic("Update", &cmd, zap.String("msg", fmt.Sprintf("%T", msg)))

	next, cmd := g.model.Update(msg)
	g.model = next
	if _, isKey := msg.(tea.KeyMsg); isKey {
		g.notice = ""
	}
	return g, cmd
}

func (g *guardedModel) View() (view string) {
	defer func() {
		if r := recover(); r != nil {
			g.logCrash("View", r)
			view = viewCrashText
		}
	}()

	view = g.model.View()
	if g.notice != "" {
		view += "\n" + style.ErrorStyle.Render(g.notice)
	}
	return view
}

func (g *guardedModel) recoverPanic(method string, cmd *tea.Cmd, extra ...zap.Field) {
	if r := recover(); r != nil {
		g.logCrash(method, r, extra...)
		g.notice = "Erro interno: a última ação foi ignorada."
		*cmd = nil
	}
}

// logCrash must not panic itself, so state collection is guarded too.
func (g *guardedModel) logCrash(method string, r interface{}, extra ...zap.Field) {
	fields := append([]zap.Field{
		zap.String("method", method),
		zap.Any("panic", r),
	}, extra...)

	if reporter, ok := g.model.(stateReporter); ok {
		func() {
			defer func() { _ = recover() }()
			fields = append(fields, reporter.StateFields()...)
		}()
	}
	fields = append(fields, zap.String("stack", string(debug.Stack())))

	g.logger.Error("UI panic recovered", fields...)
}
