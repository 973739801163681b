package cli

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"

	"github.com/tbruhn/dockhand/internal/history"
)

// gpuPlaceholder is shown in the history table when no GPU selector
// was configured at launch time.
const gpuPlaceholder = "-"

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39"))
	faintStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
)

// Presenter renders dispatcher outcomes on the terminal.
type Presenter struct {
	out io.Writer
	tty bool
}

// NewPresenter creates a presenter for the given writer. Spinners and
// colors are enabled only when the writer is a terminal.
func NewPresenter(out io.Writer) *Presenter {
	tty := false
	if f, ok := out.(*os.File); ok {
		tty = term.IsTerminal(int(f.Fd()))
	}
	return &Presenter{out: out, tty: tty}
}

// ShowOutput prints captured command output or a result line.
func (p *Presenter) ShowOutput(s string) {
	s = strings.TrimRight(s, "\n")
	if s == "" {
		return
	}
	fmt.Fprintln(p.out, s)
}

var historyColumns = []string{"TIMESTAMP", "CONTAINER", "DOCKERFILE", "GPUS", "VOLUMES", "IMAGE", "ARGS"}

// ShowHistory renders the launch log as a table, newest last. Volume
// bindings are one per line within their cell.
func (p *Presenter) ShowHistory(records []history.Record) {
	if len(records) == 0 {
		fmt.Fprintln(p.out, faintStyle.Render("No launches recorded yet."))
		return
	}

	rows := make([][]string, 0, len(records))
	for _, rec := range records {
		rows = append(rows, historyRow(rec))
	}

	widths := columnWidths(historyColumns, rows)
	p.printRow(historyColumns, widths, headerStyle)
	for _, row := range rows {
		p.printRow(row, widths, lipgloss.NewStyle())
	}
}

func historyRow(rec history.Record) []string {
	gpus := rec.Config.GPUs
	if gpus == "" {
		gpus = gpuPlaceholder
	}

	volumes := make([]string, len(rec.Config.Volumes))
	for i, v := range rec.Config.Volumes {
		volumes[i] = v.String()
	}

	return []string{
		time.Unix(rec.Timestamp, 0).Format(time.RFC3339),
		rec.ContainerID,
		rec.Config.Dockerfile,
		gpus,
		strings.Join(volumes, "\n"),
		rec.Config.ImageName,
		strings.Join(rec.Config.Arguments, " "),
	}
}

// columnWidths sizes each column to its widest cell line.
func columnWidths(header []string, rows [][]string) []int {
	widths := make([]int, len(header))
	for i, h := range header {
		widths[i] = len(h)
	}
	for _, row := range rows {
		for i, cell := range row {
			for _, line := range strings.Split(cell, "\n") {
				if len(line) > widths[i] {
					widths[i] = len(line)
				}
			}
		}
	}
	return widths
}

// printRow prints one logical row, spreading multi-line cells over as
// many physical lines as their tallest cell needs.
func (p *Presenter) printRow(row []string, widths []int, style lipgloss.Style) {
	cells := make([][]string, len(row))
	height := 1
	for i, cell := range row {
		cells[i] = strings.Split(cell, "\n")
		if len(cells[i]) > height {
			height = len(cells[i])
		}
	}

	for line := 0; line < height; line++ {
		var b strings.Builder
		for i := range row {
			text := ""
			if line < len(cells[i]) {
				text = cells[i][line]
			}
			b.WriteString(text)
			if i < len(row)-1 {
				b.WriteString(strings.Repeat(" ", widths[i]-len(text)+2))
			}
		}
		out := strings.TrimRight(b.String(), " ")
		if p.tty {
			out = style.Render(out)
		}
		fmt.Fprintln(p.out, out)
	}
}
