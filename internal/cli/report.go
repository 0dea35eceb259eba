package cli

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/rodaine/table"

	"github.com/iandees/s3-index-maker/index"
)

var (
	boldStyle  = lipgloss.NewStyle().Bold(true)
	errorStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF0000"))
)

// printFailures writes a table of the levels that could not be indexed.
func printFailures(w io.Writer, failures []index.Failure) {
	if len(failures) == 0 {
		return
	}

	fmt.Fprintln(w, errorStyle.Render(fmt.Sprintf("%d level(s) could not be indexed:", len(failures))))

	tbl := table.New("PREFIX", "ERROR").WithWriter(w)
	tbl.WithFirstColumnFormatter(func(format string, vals ...interface{}) string {
		return boldStyle.Render(fmt.Sprintf(format, vals...))
	})
	tbl.WithPadding(2)
	tbl.WithWidthFunc(lipgloss.Width)

	for _, f := range failures {
		prefix := f.Prefix
		if prefix == "" {
			prefix = "(bucket root)"
		}
		tbl.AddRow(prefix, f.Err)
	}
	tbl.Print()
}
