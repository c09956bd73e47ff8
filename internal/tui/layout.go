package tui

// Layout constants for responsive terminal width
const (
	sidebarNarrowMax = 25 // Sidebar cap when the terminal is under wideMin
	sidebarNominal   = 30 // Sidebar width between wideMin and extraWideMin
	sidebarWide      = 36 // Sidebar width at extraWideMin and beyond
	wideMin          = 80
	extraWideMin     = 120

	layoutGutter = 3 // Columns between sidebar and main pane plus frame slack
	chromeRows   = 3 // Rows reserved for the command line and status bar
)

// Layout is the computed geometry for one frame.
type Layout struct {
	Sidebar int  // Sidebar column width
	Main    int  // Main pane column width (including its border)
	Rows    int  // Content rows available above the chrome
	Narrow  bool // True when the terminal is under the nominal band
}

// ComputeLayout derives the frame geometry from the terminal size. The
// sidebar takes a fixed width per band; the main pane absorbs the rest.
// Widths never go below 1 so rendering stays sane on absurdly small
// terminals.
func ComputeLayout(cols, rows int) Layout {
	var sidebar int
	narrow := false
	switch {
	case cols >= extraWideMin:
		sidebar = sidebarWide
	case cols >= wideMin:
		sidebar = sidebarNominal
	default:
		narrow = true
		sidebar = cols - 10
		if sidebar > sidebarNarrowMax {
			sidebar = sidebarNarrowMax
		}
	}
	if sidebar < 1 {
		sidebar = 1
	}

	main := cols - sidebar - layoutGutter
	if main < 1 {
		main = 1
	}

	content := rows - chromeRows
	if content < 1 {
		content = 1
	}

	return Layout{Sidebar: sidebar, Main: main, Rows: content, Narrow: narrow}
}
