package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// maxComposeLines caps the wrapped output body. A runaway probe result
// (a scan over thousands of ports, say) must never stall the renderer.
const maxComposeLines = 2000

// View composes the whole frame from model state alone. It performs no
// I/O and reads no clocks, so two calls with no Update in between return
// byte-identical frames.
func (m Model) View() string {
	layout := ComputeLayout(m.width, m.height)

	body := lipgloss.JoinHorizontal(
		lipgloss.Top,
		m.renderSidebar(layout),
		" ",
		m.renderMain(layout),
	)

	return lipgloss.JoinVertical(
		lipgloss.Left,
		body,
		m.renderCommandLine(),
		m.renderStatusBar(),
	)
}

// renderSidebar draws the fixed menu column. Hints are dropped first when
// the terminal is too short to show two lines per entry.
func (m Model) renderSidebar(layout Layout) string {
	showHints := !layout.Narrow && layout.Rows >= len(menuItems)*2+3

	lines := []string{
		SidebarTitleStyle.Render(truncate(AppName, layout.Sidebar)),
		SidebarVersionStyle.Render(truncate("v"+AppVersion(), layout.Sidebar)),
		"",
	}

	for i, item := range menuItems {
		marker := "  "
		style := MenuItemStyle
		if i == m.active {
			marker = "▸ "
			style = SelectedMenuItemStyle
		}
		label := fmt.Sprintf("%s%d %s %s", marker, i+1, item.Icon, item.Label)
		lines = append(lines, style.Render(truncate(label, layout.Sidebar)))
		if showHints {
			lines = append(lines, MenuHintStyle.Render(truncate("      "+item.Hint, layout.Sidebar)))
		}
	}

	block := strings.Join(lines, "\n")
	return lipgloss.NewStyle().
		Width(layout.Sidebar).
		Height(layout.Rows).
		MaxHeight(layout.Rows).
		Render(block)
}

// renderMain draws the bordered output pane: an optional modal prompt
// block on top, then the pane title and the wrapped output body, clipped
// to the rows the layout allows.
func (m Model) renderMain(layout Layout) string {
	inner := layout.Main - 4 // border and padding
	if inner < 1 {
		inner = 1
	}
	avail := layout.Rows - 2 // border rows
	if avail < 1 {
		avail = 1
	}

	var lines []string

	if m.prompt != nil {
		step := m.prompt.step()
		lines = append(lines,
			PromptStyle.Render(truncate(step.Question, inner)),
			m.input.View(),
		)
		if step.Hint != "" {
			lines = append(lines, PromptHintStyle.Render(truncate(step.Hint, inner)))
		}
		lines = append(lines, "")
	}

	title := menuItems[m.active].Label
	if m.status == StatusRunning {
		title = m.spin.View() + " " + title
	}
	lines = append(lines, MainTitleStyle.Render(truncate(title, inner)), "")

	for _, line := range wrapLines(m.mainText, inner, maxComposeLines) {
		if len(lines) >= avail {
			break
		}
		lines = append(lines, OutputStyle.Render(line))
	}
	if len(lines) > avail {
		lines = lines[:avail]
	}

	return MainPaneStyle.
		Width(layout.Main - 2).
		Height(avail).
		MaxHeight(layout.Rows).
		Render(strings.Join(lines, "\n"))
}

// renderCommandLine draws the typed command buffer. While a modal is open
// the line is inert, and says so instead of showing a dead cursor.
func (m Model) renderCommandLine() string {
	if m.prompt != nil {
		return CommandMarkStyle.Render("❯ ") + PromptHintStyle.Render("(prompt open - esc to cancel)")
	}
	return CommandMarkStyle.Render("❯ ") + CommandLineStyle.Render(m.cmdline) + CommandLineStyle.Render("▌")
}

// renderStatusBar draws the bottom bar: app name, mode, status tag and
// the clock captured at the last event.
func (m Model) renderStatusBar() string {
	mode := "NAV MODE"
	if m.prompt != nil {
		mode = "INPUT MODE"
	}

	sep := StatusBarStyle.Render(" │ ")
	parts := []string{
		StatusBarStyle.Render("⚡ netprobe"),
		StatusBarStyle.Render(mode),
		statusStyle(m.status).Render(m.status.Label()),
		StatusBarStyle.Render(m.clock.Format("15:04:05")),
	}
	return strings.Join(parts, sep)
}

// truncate clips s to at most w runes.
func truncate(s string, w int) string {
	if w < 1 {
		return ""
	}
	r := []rune(s)
	if len(r) <= w {
		return s
	}
	return string(r[:w])
}

// wrapLines hard-breaks text at width and caps the total line count.
func wrapLines(text string, width, max int) []string {
	if width < 1 {
		width = 1
	}
	var out []string
	for _, line := range strings.Split(text, "\n") {
		r := []rune(line)
		for len(r) > width {
			out = append(out, string(r[:width]))
			r = r[width:]
			if len(out) >= max {
				return out
			}
		}
		out = append(out, string(r))
		if len(out) >= max {
			return out
		}
	}
	return out
}
