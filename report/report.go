// Package report formats benchmark results into comparison tables.
package report

import (
	"encoding/json"
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"

	"github.com/weiihann/lockmark/harness"
)

var fixedColumns = []string{"Readers", "Writers", "Reads", "Updates"}

// Generate writes a column-aligned ASCII table for the given results.
// Timing columns are discovered from the first result; a result missing a
// discovered key renders "N/A" in that cell.
func Generate(w io.Writer, results []harness.Result) error {
	if len(results) == 0 {
		return fmt.Errorf("no results to report")
	}

	timingCols := timingColumns(results[0])
	widths := columnWidths(results, timingCols)
	sep := separator(widths)

	fmt.Fprintln(w, sep)
	printRow(w, headerCells(timingCols), widths)
	fmt.Fprintln(w, sep)

	for _, r := range results {
		printRow(w, rowCells(r, timingCols), widths)
		fmt.Fprintln(w, sep)
	}

	return nil
}

// GenerateJSON writes results as JSON to w.
func GenerateJSON(w io.Writer, results []harness.Result) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")

	return enc.Encode(results)
}

// timingColumns returns the first result's timing keys, known strategies
// first in measurement order, anything else sorted after them.
func timingColumns(first harness.Result) []string {
	cols := make([]string, 0, len(first.Timings))
	seen := make(map[string]bool, len(first.Timings))

	for _, name := range harness.Strategies() {
		if _, ok := first.Timings[name]; ok {
			cols = append(cols, name)
			seen[name] = true
		}
	}

	var extra []string
	for name := range first.Timings {
		if !seen[name] {
			extra = append(extra, name)
		}
	}

	sort.Strings(extra)

	return append(cols, extra...)
}

func headerCells(timingCols []string) []string {
	cells := make([]string, 0, len(fixedColumns)+len(timingCols))
	cells = append(cells, fixedColumns...)

	return append(cells, timingCols...)
}

func rowCells(r harness.Result, timingCols []string) []string {
	cells := []string{
		strconv.Itoa(r.Readers),
		strconv.Itoa(r.Writers),
		strconv.Itoa(r.ReadsPerReader),
		strconv.Itoa(r.UpdatesPerWriter),
	}

	for _, col := range timingCols {
		ms, ok := r.Timings[col]
		if !ok {
			cells = append(cells, "N/A")

			continue
		}

		cells = append(cells, fmt.Sprintf("%d ms", ms))
	}

	return cells
}

// columnWidths sizes each column to its longest cell, header included.
func columnWidths(results []harness.Result, timingCols []string) []int {
	widths := make([]int, len(fixedColumns)+len(timingCols))

	for i, cell := range headerCells(timingCols) {
		widths[i] = len(cell)
	}

	for _, r := range results {
		for i, cell := range rowCells(r, timingCols) {
			if len(cell) > widths[i] {
				widths[i] = len(cell)
			}
		}
	}

	return widths
}

func separator(widths []int) string {
	var b strings.Builder
	for _, w := range widths {
		b.WriteString("+")
		b.WriteString(strings.Repeat("-", w+2))
	}
	b.WriteString("+")

	return b.String()
}

func printRow(w io.Writer, cells []string, widths []int) {
	var b strings.Builder
	for i, cell := range cells {
		fmt.Fprintf(&b, "| %*s ", widths[i], cell)
	}
	b.WriteString("|")

	fmt.Fprintln(w, b.String())
}
