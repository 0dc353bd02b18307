package main

import (
	"reflect"
	"testing"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

func TestSplitList(t *testing.T) {
	tests := []struct {
		in   string
		want []string
	}{
		{"", []string{}},
		{"main.cpp", []string{"main.cpp"}},
		{"main.cpp, src,include", []string{"main.cpp", "src", "include"}},
		{"  a.c \t b.c  ", []string{"a.c", "b.c"}},
		{"a,,b", []string{"a", "b"}},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			if got := splitList(tt.in); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("splitList(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestRelPathsValidator(t *testing.T) {
	tests := []struct {
		in      string
		wantErr bool
	}{
		{"", false},
		{"main.cpp, src", false},
		{"src/../include", false},
		{"/etc/passwd", true},
		{"..", true},
		{"ok, ../up", true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			err := relPathsValidator(tt.in)
			if (err != nil) != tt.wantErr {
				t.Errorf("relPathsValidator(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			}
		})
	}
}

func TestConfirmModel_keys(t *testing.T) {
	m := confirmModel{title: "Push?", value: true}

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("n")})
	got := next.(confirmModel)
	if got.value || !got.done {
		t.Errorf("after n: value=%v done=%v", got.value, got.done)
	}

	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyTab})
	got = next.(confirmModel)
	if got.value || got.done {
		t.Errorf("after tab: value=%v done=%v", got.value, got.done)
	}

	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	if !next.(confirmModel).aborted {
		t.Error("esc should abort")
	}
}

func TestInputModel_validation(t *testing.T) {
	m := inputModel{textInput: newTestInput("/abs"), title: "Watched paths", validate: relPathsValidator}

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	got := next.(inputModel)
	if got.done {
		t.Error("invalid input must not complete the prompt")
	}
	if got.errMsg == "" {
		t.Error("expected a validation message")
	}
	if view := got.View(); view == "" {
		t.Error("expected the prompt to stay visible")
	}

	m.textInput.SetValue("src")
	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if !next.(inputModel).done {
		t.Error("valid input should complete the prompt")
	}
}

func newTestInput(value string) textinput.Model {
	ti := textinput.New()
	ti.SetValue(value)
	return ti
}
