// Package tui contains the terminal file browser
package tui

import (
	"fmt"
	"os"
	"strings"

	"github.com/brettbedarf/fsnode"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

const upEntry = ".."

// Browser is a file-open dialog over the node contract. It starts in a
// directory, lets the user navigate and ends when a file is chosen or the
// dialog is cancelled.
type Browser struct {
	dir        fsnode.Node
	entries    []fsnode.Node
	hasUp      bool
	cursor     int
	offset     int
	height     int
	showHidden bool
	keyMap     KeyMap
	styles     browserStyles
	selected   fsnode.Node
	cancelled  bool
}

// NewBrowser opens a browser at start, or at its parent when start is a file.
func NewBrowser(start fsnode.Node, showHidden bool) Browser {
	if !start.IsDirectory() {
		start = start.Parent()
	}
	b := Browser{
		height:     20,
		showHidden: showHidden,
		keyMap:     DefaultKeyMap(),
		styles:     defaultBrowserStyles(),
	}
	b.enter(start, "")
	return b
}

// enter switches to dir and puts the cursor on the entry named focus
func (b *Browser) enter(dir fsnode.Node, focus string) {
	b.dir = dir
	b.entries = dir.Children(fsnode.ListAll, b.showHidden)
	fsnode.SortNodes(b.entries)

	parent := dir.Parent()
	b.hasUp = !dir.IsPseudoRoot() && (parent.IsPseudoRoot() || parent.Path() != dir.Path())

	b.cursor, b.offset = 0, 0
	for i, e := range b.entries {
		if e.Name() == focus {
			b.cursor = i + b.upRows()
			break
		}
	}
	b.scroll()
}

func (b Browser) upRows() int {
	if b.hasUp {
		return 1
	}
	return 0
}

func (b Browser) rows() int {
	return len(b.entries) + b.upRows()
}

// entryAt returns nil for the ".." row
func (b Browser) entryAt(row int) fsnode.Node {
	i := row - b.upRows()
	if i < 0 || i >= len(b.entries) {
		return nil
	}
	return b.entries[i]
}

func (b *Browser) scroll() {
	if b.cursor < b.offset {
		b.offset = b.cursor
	}
	if b.cursor >= b.offset+b.height {
		b.offset = b.cursor - b.height + 1
	}
}

func (b *Browser) goUp() {
	if !b.hasUp {
		return
	}
	b.enter(b.dir.Parent(), b.dir.Name())
}

// Init implements tea.Model.
func (b Browser) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (b Browser) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, b.keyMap.Up):
			if b.cursor > 0 {
				b.cursor--
			}
		case key.Matches(msg, b.keyMap.Down):
			if b.cursor < b.rows()-1 {
				b.cursor++
			}
		case key.Matches(msg, b.keyMap.Open):
			if b.rows() == 0 {
				break
			}
			entry := b.entryAt(b.cursor)
			switch {
			case entry == nil:
				b.goUp()
			case entry.IsDirectory():
				b.enter(entry, "")
			default:
				b.selected = entry
				return b, tea.Quit
			}
		case key.Matches(msg, b.keyMap.Back):
			b.goUp()
		case key.Matches(msg, b.keyMap.ToggleHidden):
			b.showHidden = !b.showHidden
			var focus string
			if e := b.entryAt(b.cursor); e != nil {
				focus = e.Name()
			}
			b.enter(b.dir, focus)
		case key.Matches(msg, b.keyMap.Quit):
			b.cancelled = true
			return b, tea.Quit
		}
		b.scroll()
	case tea.WindowSizeMsg:
		// title, blank line, help
		b.height = max(1, msg.Height-4)
		b.scroll()
	}
	return b, nil
}

// View implements tea.Model.
func (b Browser) View() string {
	var sb strings.Builder

	sb.WriteString(b.styles.Title.Render(fsnode.PrintablePath(b.dir)))
	sb.WriteString("\n\n")

	if b.rows() == 0 {
		sb.WriteString(b.styles.Empty.Render("  (empty)"))
		sb.WriteString("\n")
	}
	end := min(b.rows(), b.offset+b.height)
	for row := b.offset; row < end; row++ {
		label, style := upEntry+"/", b.styles.Directory
		if e := b.entryAt(row); e != nil {
			label, style = e.DisplayName(), b.styles.File
			if e.IsDirectory() {
				label, style = label+"/", b.styles.Directory
			}
		}
		if row == b.cursor {
			sb.WriteString(b.styles.Selected.Render("> " + label))
		} else {
			sb.WriteString("  " + style.Render(label))
		}
		sb.WriteString("\n")
	}

	sb.WriteString(b.styles.Help.Render(b.keyMap.HelpText()))
	return sb.String()
}

// Dir returns the directory currently shown
func (b Browser) Dir() fsnode.Node {
	return b.dir
}

// Selected returns the chosen file, or nil if none was chosen.
func (b Browser) Selected() fsnode.Node {
	return b.selected
}

// Cancelled returns true if the user cancelled the dialog.
func (b Browser) Cancelled() bool {
	return b.cancelled
}

// Run shows the browser on the terminal and returns the final state. The UI
// is drawn on stderr so a selected path can be printed on stdout.
func Run(b Browser) (Browser, error) {
	final, err := tea.NewProgram(b, tea.WithOutput(os.Stderr), tea.WithAltScreen()).Run()
	if err != nil {
		return b, fmt.Errorf("browser failed: %w", err)
	}
	return final.(Browser), nil
}
