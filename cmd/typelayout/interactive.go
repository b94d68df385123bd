package main

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/wippyai/typelayout"
	"github.com/wippyai/typelayout/layout"
	"github.com/wippyai/typelayout/render"
	"github.com/wippyai/typelayout/typedesc"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Padding(0, 1)

	modeOnStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#98FB98"))

	modeOffStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#666666"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#666666"))
)

type interactiveModel struct {
	src       typedesc.Resolver
	input     textinput.Model
	result    string
	err       error
	recursive bool
	offsets   bool
}

type layoutMsg struct {
	err error
	out string
}

func newInteractiveModel(src typedesc.Resolver) *interactiveModel {
	ti := textinput.New()
	ti.Placeholder = "type name"
	ti.Prompt = "> "
	ti.Width = 60
	ti.Focus()

	return &interactiveModel{src: src, input: ti}
}

func (m *interactiveModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m *interactiveModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit

		case "enter":
			name := strings.TrimSpace(m.input.Value())
			if name == "" {
				return m, nil
			}
			return m, m.inspect(name)

		case "ctrl+r":
			m.recursive = !m.recursive
			if name := strings.TrimSpace(m.input.Value()); name != "" {
				return m, m.inspect(name)
			}
			return m, nil

		case "ctrl+o":
			m.offsets = !m.offsets
			if name := strings.TrimSpace(m.input.Value()); name != "" {
				return m, m.inspect(name)
			}
			return m, nil

		case "esc":
			m.result = ""
			m.err = nil
			m.input.SetValue("")
			return m, nil
		}

	case layoutMsg:
		m.result = msg.out
		m.err = msg.err
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// inspect resolves and renders the named type off the UI loop.
func (m *interactiveModel) inspect(name string) tea.Cmd {
	src := m.src
	recursive := m.recursive
	offsets := m.offsets

	return func() tea.Msg {
		var buf bytes.Buffer
		r := render.New(&buf)

		if offsets {
			desc, err := src.Resolve(name)
			if err != nil {
				return layoutMsg{err: err}
			}
			offs, err := layout.Offsets(desc)
			if err != nil {
				return layoutMsg{err: err}
			}
			if err := r.RenderOffsets(name, desc.Name, offs); err != nil {
				return layoutMsg{err: err}
			}
			return layoutMsg{out: buf.String()}
		}

		opts := []typelayout.Option{}
		if recursive {
			opts = append(opts, typelayout.Recursive())
		}
		tree, err := typelayout.Inspect(src, name, opts...)
		if err != nil {
			return layoutMsg{err: err}
		}
		if err := r.RenderTree(tree, name, recursive); err != nil {
			return layoutMsg{err: err}
		}
		return layoutMsg{out: buf.String()}
	}
}

func (m *interactiveModel) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("typelayout"))
	b.WriteString("\n\n")
	b.WriteString(m.input.View())
	b.WriteString("\n\n")

	b.WriteString(mode("recursive", m.recursive))
	b.WriteString("  ")
	b.WriteString(mode("offsets", m.offsets))
	b.WriteString("\n\n")

	if m.err != nil {
		b.WriteString(errorStyle.Render(fmt.Sprintf("Error: %v", m.err)))
		b.WriteString("\n")
	} else if m.result != "" {
		b.WriteString(m.result)
	}

	b.WriteString("\n")
	b.WriteString(helpStyle.Render("enter: inspect • ctrl+r: toggle recursion • ctrl+o: toggle offsets • esc: clear • ctrl+c: quit"))
	b.WriteString("\n")

	return b.String()
}

func mode(name string, on bool) string {
	if on {
		return modeOnStyle.Render("[" + name + ": on]")
	}
	return modeOffStyle.Render("[" + name + ": off]")
}

func runInteractive(src typedesc.Resolver) error {
	p := tea.NewProgram(newInteractiveModel(src))
	_, err := p.Run()
	return err
}
