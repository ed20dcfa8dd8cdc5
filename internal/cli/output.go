package cli

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	jsoniter "github.com/json-iterator/go"
	"github.com/muesli/termenv"
	"github.com/spf13/cobra"

	"github.com/ahaeu/mobilementor/engine"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// render writes result in the configured format to --out or the command's
// output stream.
func (a *app) render(cmd *cobra.Command, result *engine.Result) (err error) {
	w := cmd.OutOrStdout()
	if path := a.cfg.Output.Path; path != "" {
		f, createErr := os.Create(path)
		if createErr != nil {
			return fmt.Errorf("create output: %w", createErr)
		}
		defer closeOutput(f, &err)
		w = f
	}

	switch a.cfg.Output.Format {
	case "json", "pretty":
		return writeJSON(w, result, a.cfg.Output.Format)
	case "csv":
		return writeCSV(w, result)
	case "table":
		return writeTables(w, result, a.runtime.Colorless())
	default:
		return writeText(w, result)
	}
}

// closeOutput closes c and reports its error through err unless err is
// already set.
func closeOutput(c io.Closer, err *error) {
	if closeErr := c.Close(); closeErr != nil && *err == nil {
		*err = fmt.Errorf("close output: %w", closeErr)
	}
}

// ============================================================================
// JSON OUTPUT
// ============================================================================

func writeJSON(w io.Writer, v any, format string) error {
	var out []byte
	var err error

	if format == "pretty" {
		out, err = json.MarshalIndent(v, "", "  ")
	} else {
		out, err = json.Marshal(v)
	}
	if err != nil {
		return fmt.Errorf("marshal output: %w", err)
	}
	_, err = fmt.Fprintln(w, string(out))
	return err
}

// ============================================================================
// CSV OUTPUT
// ============================================================================

// writeCSV emits the most tabular part of a result: the point table for a
// comparison, then chart data, then table data, then the reply as a single
// row.
func writeCSV(w io.Writer, result *engine.Result) error {
	cw := csv.NewWriter(w)

	switch {
	case result == nil:
		_ = cw.Write([]string{"Result", "No data"})
	case result.PointsTable != nil && len(result.PointsTable.Rows) > 0:
		writeTableCSV(cw, result.PointsTable)
	case result.ChartConfig != nil && writeChartCSV(cw, result.ChartConfig):
	case result.TableData != nil && writeTableCSV(cw, result.TableData):
	default:
		reply := result.Reply
		if reply == "" {
			reply = "No data"
		}
		_ = cw.Write([]string{"Summary", "Value", "Unit"})
		value := ""
		if result.Data != nil {
			value = result.Data.Value
		}
		_ = cw.Write([]string{reply, value, result.DisplayUnit})
	}

	cw.Flush()
	return cw.Error()
}

func writeChartCSV(cw *csv.Writer, chart *engine.ChartConfig) bool {
	if len(chart.Series) == 0 {
		return false
	}

	xLabel := chart.XAxis
	yLabel := chart.YAxis
	if xLabel == "" {
		xLabel = "Label"
	}
	if yLabel == "" {
		yLabel = "Value"
	}

	// Single series → two columns
	if len(chart.Series) == 1 {
		_ = cw.Write([]string{xLabel, yLabel})
		for _, d := range chart.Series[0].Data {
			_ = cw.Write([]string{d.Label, engine.FormatNumber(d.Value)})
		}
		return true
	}

	// Multi-series → label + one column per series
	headers := []string{xLabel}
	for _, s := range chart.Series {
		headers = append(headers, s.Name)
	}
	_ = cw.Write(headers)

	for i, d := range chart.Series[0].Data {
		row := []string{d.Label}
		for _, s := range chart.Series {
			if i < len(s.Data) {
				row = append(row, engine.FormatNumber(s.Data[i].Value))
			} else {
				row = append(row, "")
			}
		}
		_ = cw.Write(row)
	}
	return true
}

func writeTableCSV(cw *csv.Writer, t *engine.TableData) bool {
	if len(t.Columns) == 0 {
		return false
	}
	_ = cw.Write(columnLabels(t))
	for _, row := range t.Rows {
		_ = cw.Write(row)
	}
	return true
}

// ============================================================================
// TERMINAL TABLE OUTPUT
// ============================================================================

var (
	colorAccent = lipgloss.Color("62")  // Purple
	colorMuted  = lipgloss.Color("240") // Gray
	colorBest   = lipgloss.Color("78")  // Green
)

// writeTables draws every table of a result with lipgloss, followed by the
// reply. Results without tables fall back to their chart data.
func writeTables(w io.Writer, result *engine.Result, colorless bool) error {
	r := lipgloss.NewRenderer(w)
	if colorless {
		r.SetColorProfile(termenv.Ascii)
	}

	tables := resultTables(result)
	for _, t := range tables {
		if _, err := fmt.Fprintln(w, renderTable(r, t, result.Best)); err != nil {
			return err
		}
	}
	if result != nil && result.Reply != "" {
		reply := r.NewStyle().Bold(true).Render(result.Reply)
		if _, err := fmt.Fprintln(w, reply); err != nil {
			return err
		}
	}
	return nil
}

// resultTables lists the tables to draw, in reading order.
func resultTables(result *engine.Result) []*engine.TableData {
	if result == nil {
		return nil
	}
	var tables []*engine.TableData
	for _, t := range []*engine.TableData{result.RankedTable, result.PointsTable, result.SelectionTable, result.TableData} {
		if t != nil && len(t.Columns) > 0 {
			tables = append(tables, t)
		}
	}
	if len(tables) == 0 && result.ChartConfig != nil {
		if t := chartTable(result.ChartConfig); t != nil {
			tables = append(tables, t)
		}
	}
	return tables
}

// chartTable flattens single-series chart data into a two-column table.
func chartTable(chart *engine.ChartConfig) *engine.TableData {
	if len(chart.Series) != 1 {
		return nil
	}
	x, y := chart.XAxis, chart.YAxis
	if x == "" {
		x = "Label"
	}
	if y == "" {
		y = "Value"
	}
	t := &engine.TableData{
		Title: chart.Title,
		Columns: []engine.Column{
			{Key: "label", Label: x, Type: "text", Align: "left"},
			{Key: "value", Label: y, Type: "number", Align: "right"},
		},
	}
	for _, d := range chart.Series[0].Data {
		t.Rows = append(t.Rows, []string{d.Label, engine.FormatNumber(d.Value)})
	}
	return t
}

func renderTable(r *lipgloss.Renderer, t *engine.TableData, best string) string {
	header := r.NewStyle().Bold(true).Foreground(colorAccent).Padding(0, 1)
	cell := r.NewStyle().Padding(0, 1)
	highlight := cell.Foreground(colorBest).Bold(true)

	bestRow := -1
	if best != "" {
		for i, row := range t.Rows {
			for _, v := range row {
				if v == best {
					bestRow = i
					break
				}
			}
			if bestRow >= 0 {
				break
			}
		}
	}

	tbl := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(r.NewStyle().Foreground(colorMuted)).
		Headers(columnLabels(t)...).
		Rows(t.Rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return header
			}
			style := cell
			if row == bestRow {
				style = highlight
			}
			if col < len(t.Columns) && t.Columns[col].Align == "right" {
				return style.Align(lipgloss.Right)
			}
			return style
		})

	var b strings.Builder
	if t.Title != "" {
		b.WriteString(r.NewStyle().Bold(true).Render(t.Title))
		b.WriteString("\n")
	}
	b.WriteString(tbl.Render())
	if t.Summary != nil && t.Summary.Label != "" {
		b.WriteString("\n")
		b.WriteString(r.NewStyle().Foreground(colorMuted).Render(summaryLine(t)))
	}
	return b.String()
}

// summaryLine prints a table summary as "Label: col=value, ..." in column order.
func summaryLine(t *engine.TableData) string {
	parts := []string{}
	for _, c := range t.Columns {
		if v, ok := t.Summary.Values[c.Key]; ok {
			parts = append(parts, fmt.Sprintf("%s %s", c.Label, v))
		}
	}
	if len(parts) == 0 {
		return t.Summary.Label
	}
	return fmt.Sprintf("%s: %s", t.Summary.Label, strings.Join(parts, ", "))
}

// ============================================================================
// TEXT OUTPUT
// ============================================================================

func writeText(w io.Writer, result *engine.Result) error {
	reply := "No data"
	if result != nil && result.Reply != "" {
		reply = result.Reply
	}
	_, err := fmt.Fprintln(w, reply)
	return err
}

func columnLabels(t *engine.TableData) []string {
	labels := make([]string, len(t.Columns))
	for i, c := range t.Columns {
		labels[i] = c.Label
	}
	return labels
}
