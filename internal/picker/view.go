package picker

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/truncate"
)

type styledLine struct {
	text          string
	style         *lipgloss.Style
	prefixStyle   *lipgloss.Style
	highlightFrom int
}

// View implements tea.Model.
func (m *Model) View() string {
	lines := make([]styledLine, 0, len(m.items)+5)
	lines = append(lines, styledLine{text: "niri-panel widgets", style: styles.Header})
	if len(m.items) == 0 {
		msg := "(no widgets)"
		if query := strings.TrimSpace(m.input.Value()); query != "" {
			msg = fmt.Sprintf("No matches for %q", query)
		}
		lines = append(lines, styledLine{text: msg, style: styles.Info})
	} else {
		start, visible := m.visibleItems()
		for i, item := range visible {
			lines = append(lines, m.buildItemLine(item.Label, start+i))
		}
	}
	lines = append(lines, styledLine{})
	lines = append(lines, styledLine{text: "↑/↓ move  enter show  alt+enter hide  esc cancel", style: styles.Footer})
	switch {
	case m.errMsg != "":
		lines = append(lines, styledLine{text: fmt.Sprintf("Error: %s", m.errMsg), style: styles.Error})
	case m.sending:
		lines = append(lines, styledLine{text: "Sending…", style: styles.Info})
	default:
		lines = append(lines, styledLine{})
	}
	lines = applyWidth(lines, m.width)
	return renderLines(lines) + "\n" + m.promptLine()
}

// promptLine renders the filter input, truncating with ANSI-aware measurement
// since the textinput view embeds escape sequences for the cursor.
func (m *Model) promptLine() string {
	prompt := m.input.View()
	if m.width > 0 && lipgloss.Width(prompt) > m.width {
		prompt = truncate.StringWithTail(prompt, uint(m.width-1), "…")
	}
	return prompt
}

// visibleItems returns the viewport slice of the filtered items, adjusting
// the offset so the cursor stays on screen.
func (m *Model) visibleItems() (int, []Entry) {
	max := m.maxVisibleItems()
	if max <= 0 || len(m.items) <= max {
		m.offset = 0
		return 0, m.items
	}
	if m.cursor < m.offset {
		m.offset = m.cursor
	}
	if m.cursor >= m.offset+max {
		m.offset = m.cursor - max + 1
	}
	if m.offset > len(m.items)-max {
		m.offset = len(m.items) - max
	}
	if m.offset < 0 {
		m.offset = 0
	}
	return m.offset, m.items[m.offset : m.offset+max]
}

func (m *Model) maxVisibleItems() int {
	if m.height <= 0 {
		return -1
	}
	// Header, blank, footer, status, and prompt rows are always present.
	remain := m.height - 5
	if remain < 1 {
		return 1
	}
	return remain
}

func (m *Model) buildItemLine(label string, idx int) styledLine {
	indicator := "▌"
	lineStyle := styles.Item
	indicatorStyle := styles.ItemIndicator
	if idx == m.cursor {
		indicatorStyle = styles.SelectedItemIndicator
		lineStyle = styles.SelectedItem
	}
	text := indicator + " " + label
	if m.width > 0 {
		if pad := m.width - len([]rune(text)); pad > 0 {
			text += strings.Repeat(" ", pad)
		}
	}
	return styledLine{
		text:          text,
		style:         lineStyle,
		prefixStyle:   indicatorStyle,
		highlightFrom: 1, // just the ▌ character
	}
}

func applyWidth(lines []styledLine, width int) []styledLine {
	if width <= 0 {
		return lines
	}
	result := make([]styledLine, len(lines))
	for i, line := range lines {
		result[i] = styledLine{
			text:          truncateText(line.text, width),
			style:         line.style,
			prefixStyle:   line.prefixStyle,
			highlightFrom: line.highlightFrom,
		}
	}
	return result
}

func renderLines(lines []styledLine) string {
	out := make([]string, len(lines))
	for i, line := range lines {
		text := line.text
		runes := []rune(text)
		if line.highlightFrom > 0 && line.highlightFrom < len(runes) {
			head := string(runes[:line.highlightFrom])
			tail := string(runes[line.highlightFrom:])
			if line.prefixStyle != nil {
				head = line.prefixStyle.Render(head)
			}
			if line.style != nil {
				tail = line.style.Render(tail)
			}
			text = head + tail
		} else if line.style != nil {
			text = line.style.Render(text)
		}
		out[i] = text
	}
	return strings.Join(out, "\n")
}

func truncateText(text string, width int) string {
	if width <= 0 {
		return text
	}
	runes := []rune(text)
	if len(runes) <= width {
		return text
	}
	if width == 1 {
		return string(runes[:1])
	}
	return string(runes[:width-1]) + "…"
}
