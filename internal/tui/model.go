// Package tui implements an interactive terminal calculator around rpncalc.
package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/zephyrtronium/rpncalc"
	"github.com/zephyrtronium/rpncalc/internal/buffer"
)

const (
	clearButton  = "C"
	equalsButton = "="
	// buttonsPerRow is the keypad width.
	buttonsPerRow = 6
)

type focus int

const (
	focusInput focus = iota
	focusKeypad
)

// Config holds the calculator settings.
type Config struct {
	// Format is the fmt verb for results. Defaults to "%g".
	Format string
	// Options are passed to rpncalc.Evaluate.
	Options []rpncalc.Option
	// Buffer holds saved input. If nil, the model creates an unbounded one.
	Buffer *buffer.Stack
}

// Model is the bubbletea model of the calculator.
type Model struct {
	input  textinput.Model
	keypad []string
	sel    int
	focus  focus

	output string
	failed bool

	buf    *buffer.Stack
	format string
	opts   []rpncalc.Option
	width  int
}

// Keypad returns the calculator's button labels: digits, the decimal point,
// every operator rpncalc knows, then clear and equals.
func Keypad() []string {
	var labels []string
	for _, r := range "0123456789." + rpncalc.Operators {
		labels = append(labels, string(r))
	}
	return append(labels, clearButton, equalsButton)
}

// New creates a calculator model.
func New(cfg Config) Model {
	in := textinput.New()
	in.Placeholder = "expression, e.g. (2+3)*4"
	in.Prompt = "> "
	in.CharLimit = 256
	in.Width = 40
	in.Focus()

	if cfg.Format == "" {
		cfg.Format = "%g"
	}
	if cfg.Buffer == nil {
		cfg.Buffer = buffer.New(0)
	}
	return Model{
		input:  in,
		keypad: Keypad(),
		buf:    cfg.Buffer,
		format: cfg.Format,
		opts:   cfg.Options,
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			return m, tea.Quit
		case "tab":
			if m.focus == focusInput {
				m.focus = focusKeypad
				m.input.Blur()
				return m, nil
			}
			m.focus = focusInput
			return m, m.input.Focus()
		case "ctrl+s":
			m.buf.Push(m.input.Value())
			m.input.Reset()
			return m, nil
		case "ctrl+r":
			if text, ok := m.buf.Pop(); ok {
				m.input.SetValue(text)
				m.input.CursorEnd()
			}
			return m, nil
		case "ctrl+x":
			m.buf.Clear()
			return m, nil
		case "ctrl+l":
			m.input.Reset()
			return m, nil
		}
		if m.focus == focusKeypad {
			return m.updateKeypad(msg)
		}
		if msg.String() == "enter" {
			m.evaluate()
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		if msg.Width > 8 {
			m.input.Width = msg.Width - 8
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m Model) updateKeypad(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "left", "h":
		m.sel = (m.sel + len(m.keypad) - 1) % len(m.keypad)
	case "right", "l":
		m.sel = (m.sel + 1) % len(m.keypad)
	case "up", "k":
		if m.sel >= buttonsPerRow {
			m.sel -= buttonsPerRow
		}
	case "down", "j":
		if m.sel+buttonsPerRow < len(m.keypad) {
			m.sel += buttonsPerRow
		}
	case "enter", " ":
		m.press(m.keypad[m.sel])
	}
	return m, nil
}

// press applies a keypad button.
func (m *Model) press(label string) {
	switch label {
	case clearButton:
		m.input.Reset()
	case equalsButton:
		m.evaluate()
	default:
		m.input.SetValue(m.input.Value() + label)
		m.input.CursorEnd()
	}
}

func (m *Model) evaluate() {
	r, err := rpncalc.Evaluate(m.input.Value(), m.opts...)
	if err != nil {
		m.output = err.Error()
		m.failed = true
		return
	}
	m.output = fmt.Sprintf(m.format, r)
	m.failed = false
}

// View implements tea.Model.
func (m Model) View() string {
	var b strings.Builder
	b.WriteString(TitleStyle.Render("rpncalc"))
	b.WriteString("\n\n")
	b.WriteString(m.input.View())
	b.WriteString("\n")
	switch {
	case m.output == "":
		b.WriteString(HelpStyle.Render("= "))
	case m.failed:
		b.WriteString(ErrorStyle.Render("! " + m.output))
	default:
		b.WriteString(ResultStyle.Render("= " + m.output))
	}
	b.WriteString("\n\n")
	b.WriteString(m.viewKeypad())
	b.WriteString("\n")
	b.WriteString(HelpStyle.Render(m.status()))
	b.WriteString("\n")
	b.WriteString(HelpStyle.Render("enter eval • tab keypad • ctrl+s save • ctrl+r restore • ctrl+x drop saved • ctrl+l clear • esc quit"))
	return PanelStyle.Render(b.String())
}

func (m Model) viewKeypad() string {
	var rows []string
	for i := 0; i < len(m.keypad); i += buttonsPerRow {
		var row []string
		for j := i; j < i+buttonsPerRow && j < len(m.keypad); j++ {
			style := ButtonStyle
			if m.focus == focusKeypad && j == m.sel {
				style = SelectedButtonStyle
			}
			row = append(row, style.Render(m.keypad[j]))
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, row...))
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

func (m Model) status() string {
	s := "saved: " + strconv.Itoa(m.buf.Len())
	if d := m.buf.Depth(); d > 0 {
		s += "/" + strconv.Itoa(d)
	}
	return s
}

// Input returns the current expression text.
func (m Model) Input() string {
	return m.input.Value()
}

// Output returns the last result or error message, and whether it is an
// error.
func (m Model) Output() (string, bool) {
	return m.output, m.failed
}
