/*
 * report.go, part of oercorr.
 *
 * Copyright 2024 Raul Mera <rmera{at}chemDOThelsinkiDOTfi>
 *
 * This program is free software; you can redistribute it and/or modify
 * it under the terms of the GNU Lesser General Public License as
 * published by the Free Software Foundation; either version 2.1 of the
 * License, or (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU Lesser General
 * Public License along with this program.  If not, see
 * <http://www.gnu.org/licenses/>.
 *
 */

package corr

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/mattn/go-runewidth"
)

//fnum formats x with the shortest representation that
//reads back to the same float64.
func fnum(x float64) string {
	return strconv.FormatFloat(x, 'g', -1, 64)
}

//short formats x with 6 significant digits, for tables.
func short(x float64) string {
	return strconv.FormatFloat(x, 'g', 6, 64)
}

//String returns a three-line, human-readable report of the corrections
//in R.
func (R *Result) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "Specimen: %s\n", R.Name)
	fmt.Fprintf(&b, "ZPE: %s eV\t\tS_vib: %s eV/K\t\tT*S_vib: %s eV\t\tdeltaU 0->T: %s eV\n", fnum(R.ZPE), fnum(R.SVib), fnum(R.TS()), fnum(R.DeltaU))
	fmt.Fprintf(&b, "Total correction: %s eV\n", fnum(R.Total))
	return b.String()
}

//Report writes the report returned by R.String() to w.
func (R *Result) Report(w io.Writer) error {
	_, err := io.WriteString(w, R.String())
	return err
}

var tableHeaders = []string{"Species", "ZPE (eV)", "S_vib (eV/K)", "T*S_vib (eV)", "dU 0->T (eV)", "Total (eV)"}

//Table writes to w a table with one row per result in results, in the given order.
//Columns are aligned taking into account the display width of the names, so
//things like "O₂*" don't break the alignment.
func Table(w io.Writer, results []*Result) error {
	rows := make([][]string, 0, len(results))
	for _, v := range results {
		rows = append(rows, []string{v.Name, short(v.ZPE), short(v.SVib), short(v.TS()), short(v.DeltaU), short(v.Total)})
	}
	return writeTable(w, tableHeaders, rows)
}

var scanHeaders = []string{"T (K)", "ZPE (eV)", "S_vib (eV/K)", "T*S_vib (eV)", "dU 0->T (eV)", "Total (eV)"}

//ScanTable writes to w a table with the corrections at each temperature in S.
func ScanTable(w io.Writer, S *Scan) error {
	rows := make([][]string, 0, S.Len())
	for _, v := range S.Results {
		rows = append(rows, []string{short(v.Temperature), short(v.ZPE), short(v.SVib), short(v.TS()), short(v.DeltaU), short(v.Total)})
	}
	return writeTable(w, scanHeaders, rows)
}

var modeHeaders = []string{"Freq (cm-1)", "ZPE (eV)", "S_vib (eV/K)", "dU 0->T (eV)"}

//ModesTable writes to w a table with the contribution of each mode in modes.
func ModesTable(w io.Writer, modes []Mode) error {
	rows := make([][]string, 0, len(modes))
	for _, v := range modes {
		rows = append(rows, []string{short(v.Frequency), short(v.ZPE), short(v.SVib), short(v.DeltaU)})
	}
	return writeTable(w, modeHeaders, rows)
}

//writeTable left-aligns the first column and right-aligns the others.
func writeTable(w io.Writer, headers []string, rows [][]string) error {
	widths := make([]int, len(headers))
	for i, v := range headers {
		widths[i] = runewidth.StringWidth(v)
	}
	for _, row := range rows {
		for i, cell := range row {
			if cw := runewidth.StringWidth(cell); cw > widths[i] {
				widths[i] = cw
			}
		}
	}
	var b strings.Builder
	for _, row := range append([][]string{headers}, rows...) {
		for i, cell := range row {
			if i > 0 {
				b.WriteString("  ")
			}
			b.WriteString(padCell(cell, widths[i], i > 0))
		}
		b.WriteString("\n")
	}
	_, err := io.WriteString(w, b.String())
	return err
}

func padCell(value string, width int, right bool) string {
	pad := width - runewidth.StringWidth(value)
	if pad <= 0 {
		return value
	}
	if right {
		return strings.Repeat(" ", pad) + value
	}
	return value + strings.Repeat(" ", pad)
}
