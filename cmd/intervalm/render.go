// SPDX-License-Identifier: MIT

package main

import (
	"encoding/csv"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/katalvlaran/intervalm/imatrix"
	"github.com/katalvlaran/intervalm/interval"
	"github.com/katalvlaran/intervalm/matrix"
)

var (
	titleStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("86")).Bold(true)
	boxStyle   = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("240")).Padding(0, 1)
	labelStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	valueStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
)

// renderGrid aligns cells column by column.
func renderGrid(cells [][]string) string {
	if len(cells) == 0 {
		return ""
	}
	widths := make([]int, len(cells[0]))
	for _, row := range cells {
		for j, c := range row {
			widths[j] = max(widths[j], lipgloss.Width(c))
		}
	}
	lines := make([]string, len(cells))
	for i, row := range cells {
		parts := make([]string, len(row))
		for j, c := range row {
			parts[j] = c + strings.Repeat(" ", widths[j]-lipgloss.Width(c))
		}
		lines[i] = strings.Join(parts, "  ")
	}

	return strings.Join(lines, "\n")
}

func formatInterval(x interval.Interval) string {
	if x.IsEmpty() {
		return "∅"
	}

	return fmt.Sprintf("[%.6g, %.6g]", x.Inf(), x.Sup())
}

// printMatrix writes a titled, boxed interval matrix.
func printMatrix(w io.Writer, title string, m *imatrix.IntervalMatrix) {
	cells := make([][]string, m.Rows())
	for i, row := range m.ToRows() {
		cells[i] = make([]string, len(row))
		for j, x := range row {
			cells[i][j] = formatInterval(x)
		}
	}
	fmt.Fprintln(w, titleStyle.Render(title))
	fmt.Fprintln(w, boxStyle.Render(renderGrid(cells)))
}

// printDense writes a titled, boxed real matrix.
func printDense(w io.Writer, title string, d *matrix.Dense) {
	cells := make([][]string, d.Rows())
	for i, row := range d.ToRows() {
		cells[i] = make([]string, len(row))
		for j, v := range row {
			cells[i][j] = strconv.FormatFloat(v, 'g', 6, 64)
		}
	}
	fmt.Fprintln(w, titleStyle.Render(title))
	fmt.Fprintln(w, boxStyle.Render(renderGrid(cells)))
}

// printStat writes one "label: value" line.
func printStat(w io.Writer, label string, value any) {
	fmt.Fprintf(w, "%s %s\n", labelStyle.Render(label+":"), valueStyle.Render(fmt.Sprint(value)))
}

// writeCSV exports m as row,col,inf,sup records; empty entries have empty
// bounds.
func writeCSV(path string, m *imatrix.IntervalMatrix) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	cw := csv.NewWriter(f)
	if err = cw.Write([]string{"row", "col", "inf", "sup"}); err != nil {
		return err
	}
	m.Do(func(i, j int, x interval.Interval) bool {
		rec := []string{strconv.Itoa(i), strconv.Itoa(j), "", ""}
		if !x.IsEmpty() {
			rec[2] = strconv.FormatFloat(x.Inf(), 'g', -1, 64)
			rec[3] = strconv.FormatFloat(x.Sup(), 'g', -1, 64)
		}
		err = cw.Write(rec)
		return err == nil
	})
	if err != nil {
		return err
	}
	cw.Flush()

	return cw.Error()
}

// width is the ∞-norm of the diameters of the nonempty entries; NaN when
// every entry is empty.
func width(m *imatrix.IntervalMatrix) float64 {
	rows := make([]float64, m.Rows())
	seen := false
	m.Do(func(i, _ int, x interval.Interval) bool {
		if !x.IsEmpty() {
			rows[i] = interval.UpperAdd(rows[i], x.Diam())
			seen = true
		}
		return true
	})
	if !seen {
		return math.NaN()
	}
	w := 0.0
	for _, r := range rows {
		w = math.Max(w, r)
	}

	return w
}

// countEmpty returns the number of empty entries.
func countEmpty(m *imatrix.IntervalMatrix) int {
	n := 0
	m.Do(func(_, _ int, x interval.Interval) bool {
		if x.IsEmpty() {
			n++
		}
		return true
	})

	return n
}
