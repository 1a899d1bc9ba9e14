package stats

import (
	"bytes"
	"fmt"
	"io"
	"strconv"

	"github.com/olekukonko/tablewriter"
)

// WriteText writes one line per measure: normalized value, raw value and
// judgment.
func WriteText(w io.Writer, s Summary) error {
	j := s.Judge()
	_, err := fmt.Fprintf(w,
		"min: %.2f (%d) [%s]\nmax: %.2f (%d) [%s]\navg: %.2f (%.2f) [%s]\nstd: %.2f (%.2f) [%s]\n",
		s.MinN(), s.Min, j.Min,
		s.MaxN(), s.Max, j.Max,
		s.AvgN(), s.Avg, j.Avg,
		s.StdN(), s.StdDev, j.Std,
	)
	return err
}

// WriteMarkdown writes the summary as a markdown table with centered
// columns.
func WriteMarkdown(w io.Writer, s Summary) error {
	j := s.Judge()
	var buf bytes.Buffer
	table := tablewriter.NewWriter(&buf)
	table.SetBorders(tablewriter.Border{Left: true, Top: false, Right: true, Bottom: false})
	table.SetCenterSeparator("|")
	table.SetHeaderLine(false)
	table.SetAutoFormatHeaders(false)
	table.SetAutoWrapText(false)
	table.SetAlignment(tablewriter.ALIGN_CENTER)
	table.SetHeader([]string{"Distance", "Value", "Normalized", "Comment"})
	table.AppendBulk([][]string{
		{":---:", ":---:", ":---:", ":---:"},
		{"min", strconv.FormatUint(s.Min, 10), f2(s.MinN()), string(j.Min)},
		{"max", strconv.FormatUint(s.Max, 10), f2(s.MaxN()), string(j.Max)},
		{"avg", f2(s.Avg), f2(s.AvgN()), string(j.Avg)},
		{"std", f2(s.StdDev), f2(s.StdN()), string(j.Std)},
	})
	table.Render()
	_, err := w.Write(buf.Bytes())
	return err
}

func f2(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64)
}
