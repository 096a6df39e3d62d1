// Package picker implements the interactive widget picker behind the control
// CLI's pick subcommand. The model presents the fixed widget set with fuzzy
// filtering; a selection sends a show or hide command over the control socket
// and the picker exits once the daemon acknowledges it.
package picker

import (
	"fmt"
	"strings"

	"github.com/atomicstack/niri-panel/internal/format/table"
	"github.com/atomicstack/niri-panel/internal/ipc"
	"github.com/atomicstack/niri-panel/internal/logging/events"
	"github.com/atomicstack/niri-panel/internal/registry"
	"github.com/atomicstack/niri-panel/internal/theme"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/lithammer/fuzzysearch/fuzzy"
)

var styles = theme.Default()

// Entry pairs a widget with its aligned display label.
type Entry struct {
	Widget registry.Widget
	Label  string
}

// Outcome records the command the picker sent and the daemon's response.
type Outcome struct {
	Command  string
	Response string
}

type sendResultMsg struct {
	command  string
	response string
	err      error
}

// Model implements the Bubble Tea model for the widget picker.
type Model struct {
	entries []Entry
	items   []Entry
	cursor  int
	offset  int
	input   textinput.Model
	client  ipc.Client
	width   int
	height  int
	sending bool
	errMsg  string
	outcome *Outcome
}

// NewModel initialises the picker over the full widget set.
func NewModel(client ipc.Client) *Model {
	entries := Entries()
	ti := textinput.New()
	ti.Placeholder = "(type to search)"
	ti.Prompt = "» "
	ti.CharLimit = 64
	if styles.FilterPrompt != nil {
		ti.PromptStyle = *styles.FilterPrompt
	}
	if styles.Filter != nil {
		ti.TextStyle = *styles.Filter
	}
	if styles.FilterPlaceholder != nil {
		ti.PlaceholderStyle = *styles.FilterPlaceholder
	}
	if styles.Cursor != nil {
		ti.Cursor.Style = *styles.Cursor
	}
	ti.Focus()
	m := &Model{
		entries: entries,
		items:   append([]Entry(nil), entries...),
		input:   ti,
		client:  client,
	}
	events.Picker.Open(len(entries))
	return m
}

// Entries returns every pickable widget with its table-aligned label, in
// declaration order.
func Entries() []Entry {
	names := registry.WidgetNames()
	rows := make([][]string, 0, len(names))
	widgets := make([]registry.Widget, 0, len(names))
	for _, name := range names {
		w, ok := registry.ParseWidget(name)
		if !ok {
			continue
		}
		rows = append(rows, []string{name, describe(w)})
		widgets = append(widgets, w)
	}
	aligned := table.Format(rows)
	entries := make([]Entry, len(aligned))
	for i, label := range aligned {
		entries[i] = Entry{Widget: widgets[i], Label: label}
	}
	return entries
}

func describe(w registry.Widget) string {
	switch w {
	case registry.Launcher:
		return "application grid and search"
	case registry.Places:
		return "directory bookmarks"
	case registry.Servers:
		return "ssh server connections"
	case registry.Search:
		return "file search"
	case registry.Git:
		return "repository shortcuts"
	case registry.Secrets:
		return "password store and OTP codes"
	case registry.Sound:
		return "output devices and volume"
	case registry.Bluetooth:
		return "device pairing"
	case registry.Network:
		return "wi-fi and vpn status"
	case registry.Battery:
		return "charge status"
	case registry.Clock:
		return "time and calendar"
	case registry.Power:
		return "session and power actions"
	}
	return ""
}

// Init is part of the tea.Model interface.
func (m *Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update responds to Bubble Tea messages.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	case sendResultMsg:
		return m.handleSendResult(msg)
	}
	return m.updateInput(msg)
}

func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.sending {
		switch msg.String() {
		case "ctrl+c", "esc":
			return m, tea.Quit
		}
		return m, nil
	}
	switch msg.String() {
	case "ctrl+c", "esc":
		return m, tea.Quit
	case "enter":
		return m, m.sendSelected("show")
	case "alt+enter":
		return m, m.sendSelected("hide")
	case "up", "ctrl+p":
		m.moveCursor(-1)
		return m, nil
	case "down", "ctrl+n":
		m.moveCursor(1)
		return m, nil
	case "home":
		m.cursor = 0
		return m, nil
	case "end":
		if len(m.items) > 0 {
			m.cursor = len(m.items) - 1
		}
		return m, nil
	}
	return m.updateInput(msg)
}

func (m *Model) updateInput(msg tea.Msg) (tea.Model, tea.Cmd) {
	before := m.input.Value()
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	if m.input.Value() != before {
		m.refilter()
	}
	return m, cmd
}

func (m *Model) refilter() {
	query := strings.TrimSpace(m.input.Value())
	m.items = filterEntries(m.entries, query)
	m.cursor = 0
	m.offset = 0
	m.errMsg = ""
	events.Picker.Filter(query, len(m.items))
}

func (m *Model) moveCursor(delta int) {
	if len(m.items) == 0 {
		m.cursor = 0
		return
	}
	m.cursor += delta
	if m.cursor < 0 {
		m.cursor = 0
	}
	if m.cursor >= len(m.items) {
		m.cursor = len(m.items) - 1
	}
}

func (m *Model) sendSelected(verb string) tea.Cmd {
	if len(m.items) == 0 || m.cursor < 0 || m.cursor >= len(m.items) {
		return nil
	}
	command := fmt.Sprintf("%s %s", verb, m.items[m.cursor].Widget)
	m.sending = true
	m.errMsg = ""
	events.Picker.Send(command)
	client := m.client
	return func() tea.Msg {
		response, err := client.SendCommand(command)
		return sendResultMsg{command: command, response: response, err: err}
	}
}

func (m *Model) handleSendResult(msg sendResultMsg) (tea.Model, tea.Cmd) {
	m.sending = false
	if msg.err != nil {
		events.Picker.Error(msg.command, msg.err)
		m.errMsg = msg.err.Error()
		return m, nil
	}
	events.Picker.Result(msg.command, msg.response)
	m.outcome = &Outcome{Command: msg.command, Response: msg.response}
	return m, tea.Quit
}

// Outcome returns the command sent and the daemon's response once a selection
// has been acknowledged. ok is false when the picker was dismissed without
// sending anything.
func (m *Model) Outcome() (Outcome, bool) {
	if m.outcome == nil {
		return Outcome{}, false
	}
	return *m.outcome, true
}

func filterEntries(entries []Entry, query string) []Entry {
	if query == "" {
		return append([]Entry(nil), entries...)
	}
	labels := make([]string, len(entries))
	for i, e := range entries {
		labels[i] = e.Label
	}
	ranks := fuzzy.RankFindNormalizedFold(query, labels)
	if len(ranks) > 0 {
		matches := make(map[int]struct{}, len(ranks))
		for _, rank := range ranks {
			matches[rank.OriginalIndex] = struct{}{}
		}
		filtered := make([]Entry, 0, len(matches))
		for i, e := range entries {
			if _, ok := matches[i]; ok {
				filtered = append(filtered, e)
			}
		}
		return filtered
	}
	lower := strings.ToLower(query)
	filtered := make([]Entry, 0, len(entries))
	for _, e := range entries {
		if strings.Contains(strings.ToLower(e.Label), lower) {
			filtered = append(filtered, e)
		}
	}
	return filtered
}
