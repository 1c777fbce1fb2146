package output

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/briandowns/spinner"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/mattn/go-runewidth"
	"github.com/muesli/termenv"
	"golang.org/x/term"
)

// MaxCellWidth is the widest a table cell is rendered before truncation.
const MaxCellWidth = 60

type (
	// Color is a semantic console color.
	Color int

	// RowStyler picks the color of a table row. Index 0 is the header row
	// and data rows start at 1.
	RowStyler func(index int, row []string) Color

	// Output renders text and tables to the console.
	Output struct {
		w        io.Writer
		tty      *os.File
		renderer *lipgloss.Renderer
	}
)

const (
	Default Color = iota
	Green
	Red
	Yellow
	Cyan
	Gray
	Magenta
)

var ansiColors = map[Color]lipgloss.Color{
	Green:   lipgloss.Color("2"),
	Red:     lipgloss.Color("1"),
	Yellow:  lipgloss.Color("3"),
	Cyan:    lipgloss.Color("6"),
	Gray:    lipgloss.Color("8"),
	Magenta: lipgloss.Color("5"),
}

// HighlightHeader is a RowStyler that colors the header row yellow.
func HighlightHeader(index int, _ []string) Color {
	if index == 0 {
		return Yellow
	}
	return Default
}

// New creates an Output writing to w. colorMode is auto, always or never; in
// auto mode colors are used only when w is a terminal.
func New(w io.Writer, colorMode string) *Output {
	o := &Output{w: w}
	if f, ok := w.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		o.tty = f
	}

	o.SetColorMode(colorMode)
	return o
}

// SetColorMode changes the color mode after construction.
func (o *Output) SetColorMode(mode string) {
	o.renderer = lipgloss.NewRenderer(o.w)

	switch strings.ToLower(mode) {
	case "never":
		o.renderer.SetColorProfile(termenv.Ascii)
	case "always":
		o.renderer.SetColorProfile(termenv.ANSI256)
	default:
		if o.tty == nil {
			o.renderer.SetColorProfile(termenv.Ascii)
		}
	}
}

// Writer returns the underlying writer.
func (o *Output) Writer() io.Writer {
	return o.w
}

// Write prints text in the given color without a trailing newline.
func (o *Output) Write(text string, c Color) *Output {
	fmt.Fprint(o.w, o.style(c).Render(text))
	return o
}

// WriteLine prints text in the given color followed by a newline.
func (o *Output) WriteLine(text string, c Color) *Output {
	fmt.Fprintln(o.w, o.style(c).Render(text))
	return o
}

// Newline prints an empty line.
func (o *Output) Newline() *Output {
	fmt.Fprintln(o.w)
	return o
}

// WriteTable prints rows under the given column headers. Cells wider than
// MaxCellWidth are truncated. styler may be nil.
//
// Example:
//
//	out.WriteTable(
//		[]string{"Id", "Name"},
//		[][]string{{"1", "Sales"}, {"2", "Service"}},
//		func(i int, _ []string) output.Color {
//			if i == 0 {
//				return output.Yellow
//			}
//			return output.Default
//		},
//	)
func (o *Output) WriteTable(columns []string, rows [][]string, styler RowStyler) {
	if len(rows) == 0 {
		o.WriteLine("No records found.", Gray)
		return
	}

	data := make([][]string, len(rows))
	for i, row := range rows {
		data[i] = make([]string, len(row))
		for j, cell := range row {
			data[i][j] = runewidth.Truncate(cell, MaxCellWidth, "…")
		}
	}

	cell := o.renderer.NewStyle().PaddingRight(2)
	header := cell.Bold(true)

	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderTop(false).
		BorderBottom(false).
		BorderLeft(false).
		BorderRight(false).
		BorderColumn(false).
		BorderStyle(o.style(Gray)).
		Headers(columns...).
		Rows(data...).
		StyleFunc(func(row, _ int) lipgloss.Style {
			base, index, values := cell, row+1, []string(nil)
			switch {
			case row == table.HeaderRow:
				base, index, values = header, 0, columns
			case row >= 0 && row < len(rows):
				values = rows[row]
			}

			if styler != nil {
				if c, ok := ansiColors[styler(index, values)]; ok {
					return base.Foreground(c)
				}
			}
			return base
		})

	fmt.Fprintln(o.w, t.Render())
}

// Progress announces a long-running step. On a terminal a spinner runs until
// the returned function is called; elsewhere the message is printed as is.
// The returned function prints Done or Failed depending on err.
//
// Example:
//
//	done := out.Progress("Connecting to ClickHouse")
//	conn, err := repo.GetCurrentConnection(ctx)
//	done(err)
func (o *Output) Progress(msg string) func(err error) {
	var s *spinner.Spinner
	if o.tty != nil {
		s = spinner.New(
			spinner.CharSets[14],
			100*time.Millisecond,
			spinner.WithWriterFile(o.tty),
			spinner.WithSuffix(" "+msg),
		)
		s.Start()
	} else {
		o.Write(msg+"... ", Default)
	}

	return func(err error) {
		if s != nil {
			s.Stop()
			o.Write(msg+"... ", Default)
		}

		if err != nil {
			o.WriteLine("Failed", Red)
			return
		}
		o.WriteLine("Done", Green)
	}
}

func (o *Output) style(c Color) lipgloss.Style {
	s := o.renderer.NewStyle()
	if fg, ok := ansiColors[c]; ok {
		s = s.Foreground(fg)
	}
	return s
}
