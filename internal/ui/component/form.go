package component

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/rovshanmuradov/inbeef/internal/ui/style"
)

// FormField represents a single numeric form field
type FormField struct {
	Name        string
	Label       string
	Help        string
	Value       string
	Placeholder string
	Validation  func(string) error
	Error       string

	// Internal state
	textInput textinput.Model
}

// Form represents a form component with multiple fields
type Form struct {
	fields     []FormField
	focusIndex int
	width      int

	// Styling
	labelStyle   lipgloss.Style
	helpStyle    lipgloss.Style
	inputStyle   lipgloss.Style
	focusedStyle lipgloss.Style
	errorStyle   lipgloss.Style
}

// NewForm creates a new form component
func NewForm() *Form {
	palette := style.DefaultPalette()

	return &Form{
		fields: make([]FormField, 0),

		labelStyle: lipgloss.NewStyle().
			Foreground(palette.Text).
			Bold(true).
			MarginRight(1),

		helpStyle: lipgloss.NewStyle().
			Foreground(palette.TextMuted).
			Italic(true),

		inputStyle: lipgloss.NewStyle().
			Foreground(palette.Text).
			Padding(0, 1).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(palette.TextMuted),

		focusedStyle: lipgloss.NewStyle().
			Foreground(palette.Text).
			Padding(0, 1).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(palette.Primary),

		errorStyle: lipgloss.NewStyle().
			Foreground(palette.Error),
	}
}

// AddField adds a numeric field to the form
func (f *Form) AddField(name, label, help, placeholder string) *Form {
	ti := textinput.New()
	ti.Width = 20
	ti.CharLimit = 24
	ti.Placeholder = placeholder
	if placeholder == "" {
		ti.Placeholder = "0"
	}

	f.fields = append(f.fields, FormField{
		Name:        name,
		Label:       label,
		Help:        help,
		Placeholder: placeholder,
		textInput:   ti,
	})

	// Focus first field
	if len(f.fields) == 1 {
		f.fields[0].textInput.Focus()
	}

	return f
}

// SetFieldValue sets the value of a field
func (f *Form) SetFieldValue(name, value string) *Form {
	for i := range f.fields {
		if f.fields[i].Name == name {
			f.fields[i].Value = value
			f.fields[i].textInput.SetValue(value)
			break
		}
	}
	return f
}

// SetFieldValidation sets a validation function for a field
func (f *Form) SetFieldValidation(name string, validation func(string) error) *Form {
	for i := range f.fields {
		if f.fields[i].Name == name {
			f.fields[i].Validation = validation
			break
		}
	}
	return f
}

// SetWidth sets the form width
func (f *Form) SetWidth(width int) *Form {
	f.width = width
	inputWidth := width/2 - 4
	if inputWidth > 10 {
		for i := range f.fields {
			f.fields[i].textInput.Width = inputWidth
		}
	}
	return f
}

// Init initializes the form
func (f *Form) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles form input and updates
func (f *Form) Update(msg tea.Msg) (*Form, tea.Cmd) {
	if len(f.fields) == 0 {
		return f, nil
	}

	if msg, ok := msg.(tea.KeyMsg); ok {
		switch msg.String() {
		case "tab", "down", "enter":
			f.moveFocus(1)
			return f, nil
		case "shift+tab", "up":
			f.moveFocus(-1)
			return f, nil
		}
	}

	// Update the focused field
	field := &f.fields[f.focusIndex]
	var cmd tea.Cmd
	field.textInput, cmd = field.textInput.Update(msg)
	if field.textInput.Value() != field.Value {
		field.Value = field.textInput.Value()
		// Clear error when user types
		field.Error = ""
	}

	return f, cmd
}

// View renders the form
func (f *Form) View() string {
	if len(f.fields) == 0 {
		return "No fields defined"
	}

	var content strings.Builder

	for i, field := range f.fields {
		content.WriteString(f.labelStyle.Render(field.Label))
		content.WriteString("\n")

		fieldStyle := f.inputStyle
		if i == f.focusIndex {
			fieldStyle = f.focusedStyle
		}
		content.WriteString(fieldStyle.Render(field.textInput.View()))
		content.WriteString("\n")

		if i == f.focusIndex && field.Help != "" {
			content.WriteString(f.helpStyle.Render("ⓘ " + field.Help))
			content.WriteString("\n")
		}

		if field.Error != "" {
			content.WriteString(f.errorStyle.Render("⚠ " + field.Error))
			content.WriteString("\n")
		}
	}

	return content.String()
}

// moveFocus shifts focus by delta fields, wrapping around
func (f *Form) moveFocus(delta int) {
	f.fields[f.focusIndex].textInput.Blur()

	n := len(f.fields)
	f.focusIndex = ((f.focusIndex+delta)%n + n) % n

	f.fields[f.focusIndex].textInput.Focus()
}

// Validate validates all form fields
func (f *Form) Validate() bool {
	valid := true

	for i := range f.fields {
		field := &f.fields[i]
		field.Error = ""

		if strings.TrimSpace(field.Value) == "" {
			field.Error = "Campo obrigatório"
			valid = false
			continue
		}

		if field.Validation != nil {
			if err := field.Validation(field.Value); err != nil {
				field.Error = err.Error()
				valid = false
			}
		}
	}

	return valid
}

// GetValues returns all form field values as a map
func (f *Form) GetValues() map[string]string {
	values := make(map[string]string, len(f.fields))
	for _, field := range f.fields {
		values[field.Name] = field.Value
	}
	return values
}

// GetValue returns the value of a specific field
func (f *Form) GetValue(name string) string {
	for _, field := range f.fields {
		if field.Name == name {
			return field.Value
		}
	}
	return ""
}

// GetError returns the validation error shown for a field
func (f *Form) GetError(name string) string {
	for _, field := range f.fields {
		if field.Name == name {
			return field.Error
		}
	}
	return ""
}

// Focused returns the name of the focused field
func (f *Form) Focused() string {
	if len(f.fields) == 0 {
		return ""
	}
	return f.fields[f.focusIndex].Name
}
