package main

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/fbkclanna/autocommit/internal/config"
	"github.com/fbkclanna/autocommit/internal/ui"
)

var selectedStyle = lipgloss.NewStyle().Bold(true).Underline(true)

// --- inputModel: bubbletea model for text input with validation ---

type inputModel struct {
	textInput textinput.Model
	title     string
	validate  func(string) error
	errMsg    string
	done      bool
	aborted   bool
}

func (m inputModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m inputModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch msg.String() {
		case "ctrl+c", "esc":
			m.aborted = true
			return m, tea.Quit
		case "enter":
			if m.validate != nil {
				if err := m.validate(m.textInput.Value()); err != nil {
					m.errMsg = err.Error()
					return m, nil
				}
			}
			m.done = true
			return m, tea.Quit
		}
	}
	m.errMsg = ""
	var cmd tea.Cmd
	m.textInput, cmd = m.textInput.Update(msg)
	return m, cmd
}

func (m inputModel) View() string {
	if m.done {
		return ""
	}
	var b strings.Builder
	b.WriteString(ui.TitleStyle.Render(m.title) + "\n")
	b.WriteString(m.textInput.View() + "\n")
	if m.errMsg != "" {
		b.WriteString(ui.ErrStyle.Render(m.errMsg) + "\n")
	}
	return b.String()
}

// --- confirmModel: bubbletea model for yes/no confirmation ---

type confirmModel struct {
	title   string
	value   bool
	done    bool
	aborted bool
}

func (m confirmModel) Init() tea.Cmd {
	return nil
}

func (m confirmModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch msg.String() {
		case "ctrl+c", "esc":
			m.aborted = true
			return m, tea.Quit
		case "enter":
			m.done = true
			return m, tea.Quit
		case "y", "Y":
			m.value = true
			m.done = true
			return m, tea.Quit
		case "n", "N":
			m.value = false
			m.done = true
			return m, tea.Quit
		case "left", "right", "tab", "h", "l":
			m.value = !m.value
		}
	}
	return m, nil
}

func (m confirmModel) View() string {
	if m.done {
		return ""
	}
	yes, no := " Yes ", " No "
	if m.value {
		yes = selectedStyle.Render(yes)
	} else {
		no = selectedStyle.Render(no)
	}
	return fmt.Sprintf("%s %s / %s\n", ui.TitleStyle.Render(m.title), yes, no)
}

// --- prompt helpers ---

func promptInput(title, placeholder string, validate func(string) error) (string, error) {
	ti := textinput.New()
	ti.Placeholder = placeholder
	ti.Focus()

	result, err := tea.NewProgram(inputModel{textInput: ti, title: title, validate: validate}).Run()
	if err != nil {
		return "", err
	}
	rm := result.(inputModel)
	if rm.aborted {
		return "", fmt.Errorf("user aborted")
	}
	return strings.TrimSpace(rm.textInput.Value()), nil
}

func promptConfirm(title string, initial bool) (bool, error) {
	result, err := tea.NewProgram(confirmModel{title: title, value: initial}).Run()
	if err != nil {
		return false, err
	}
	rm := result.(confirmModel)
	if rm.aborted {
		return false, fmt.Errorf("user aborted")
	}
	return rm.value, nil
}

// splitList parses a comma or whitespace separated list, dropping empties.
func splitList(s string) []string {
	fields := strings.FieldsFunc(s, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t'
	})
	out := make([]string, 0, len(fields))
	for _, f := range fields {
		out = append(out, filepath.ToSlash(f))
	}
	return out
}

// relPathsValidator accepts an empty answer or a list of relative paths
// that stay inside the repository.
func relPathsValidator(s string) error {
	for _, p := range splitList(s) {
		if filepath.IsAbs(p) || strings.HasPrefix(p, "/") {
			return fmt.Errorf("%q must be relative to the repository root", p)
		}
		if clean := filepath.ToSlash(filepath.Clean(p)); clean == ".." || strings.HasPrefix(clean, "../") {
			return fmt.Errorf("%q escapes the repository root", p)
		}
	}
	return nil
}

// interactiveConfig asks for the settings most projects change. An empty
// answer keeps the value already in cfg.
func interactiveConfig(cfg *config.Config) error {
	watch, err := promptInput("Watched paths (comma separated)", strings.Join(cfg.Watch, ", "), relPathsValidator)
	if err != nil {
		return err
	}
	if watch != "" {
		cfg.Watch = splitList(watch)
	}

	outDir, err := promptInput("Output directory", cfg.OutputDir, func(s string) error {
		if len(splitList(s)) > 1 {
			return fmt.Errorf("enter a single directory")
		}
		return relPathsValidator(s)
	})
	if err != nil {
		return err
	}
	if outDir != "" {
		cfg.OutputDir = filepath.ToSlash(outDir)
	}

	remote, err := promptInput("Remote to push to", cfg.Remote, nil)
	if err != nil {
		return err
	}
	if remote != "" {
		cfg.Remote = remote
	}

	push, err := promptConfirm("Push after each commit?", cfg.PushEnabled())
	if err != nil {
		return err
	}
	cfg.Push = &push
	return nil
}
