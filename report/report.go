// Package report turns an optimized spanning tree into the street listing and
// execution summary handed to collection planners.
package report

import (
	"encoding/csv"
	"fmt"
	"io"
	"math"
	"sort"
	"strconv"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/katalvlaran/wasteroute/core"
	"github.com/katalvlaran/wasteroute/optimizer"
)

// CSVHeader is the first record written by WriteCSV.
var CSVHeader = []string{"Street", "Length (m)", "Length (km)", "Road Class", "Source ID"}

// StreetRow is one street segment of the spanning tree.
type StreetRow struct {
	Name      string
	Meters    int
	Km        float64
	RoadClass string
	SourceID  string
}

// Streets lists every tree edge, longest first; equal lengths sort by name.
// Unnamed segments are labeled "Street <from>-<to>".
func Streets(tree *core.Graph, weightKey string) []StreetRow {
	if tree == nil {
		return nil
	}
	title := cases.Title(language.Und)
	edges := tree.Edges()
	rows := make([]StreetRow, 0, len(edges))
	for _, e := range edges {
		w, _ := e.Weight(weightKey)
		name := e.Name
		if name == "" {
			name = fmt.Sprintf("Street %s-%s", e.From, e.To)
		}
		rows = append(rows, StreetRow{
			Name:      name,
			Meters:    int(w),
			Km:        math.Round(w/1000*100) / 100,
			RoadClass: title.String(strings.ReplaceAll(e.RoadClass, "_", " ")),
			SourceID:  e.SourceID,
		})
	}
	sort.SliceStable(rows, func(i, j int) bool {
		if rows[i].Meters != rows[j].Meters {
			return rows[i].Meters > rows[j].Meters
		}

		return rows[i].Name < rows[j].Name
	})

	return rows
}

// WriteCSV writes rows with CSVHeader.
func WriteCSV(w io.Writer, rows []StreetRow) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(CSVHeader); err != nil {
		return fmt.Errorf("report: write header: %w", err)
	}
	for _, r := range rows {
		rec := []string{
			r.Name,
			strconv.Itoa(r.Meters),
			strconv.FormatFloat(r.Km, 'f', 2, 64),
			r.RoadClass,
			r.SourceID,
		}
		if err := cw.Write(rec); err != nil {
			return fmt.Errorf("report: write row: %w", err)
		}
	}
	cw.Flush()

	return cw.Error()
}

// Totals sums the lengths of rows.
func Totals(rows []StreetRow) (meters int, km float64) {
	for _, r := range rows {
		meters += r.Meters
		km += r.Km
	}

	return meters, km
}

// StreetSummary prints the street listing digest: count, total extent, the
// longest street and the top entries.
func StreetSummary(w io.Writer, neighborhood string, rows []StreetRow, top int) error {
	meters, km := Totals(rows)
	var b strings.Builder
	fmt.Fprintf(&b, "STREETS - %s\n", neighborhood)
	fmt.Fprintf(&b, "Streets in route: %d\n", len(rows))
	fmt.Fprintf(&b, "Total extent: %dm (%.2fkm)\n", meters, km)
	if len(rows) > 0 {
		fmt.Fprintf(&b, "Longest street: %s (%dm)\n", rows[0].Name, rows[0].Meters)
	}
	if top > len(rows) {
		top = len(rows)
	}
	for i := 0; i < top; i++ {
		fmt.Fprintf(&b, "%2d. %-40s %6dm  %s\n", i+1, rows[i].Name, rows[i].Meters, rows[i].RoadClass)
	}
	_, err := io.WriteString(w, b.String())

	return err
}

// Summary prints the execution report of one optimization run.
func Summary(w io.Writer, neighborhood string, m optimizer.Metrics) error {
	rule := strings.Repeat("=", 50)
	var b strings.Builder
	fmt.Fprintln(&b, "FINAL EXECUTION REPORT")
	fmt.Fprintln(&b, rule)
	fmt.Fprintf(&b, "NEIGHBORHOOD: %s\n", neighborhood)
	fmt.Fprintf(&b, "ALGORITHM: %s\n", strings.ToUpper(m.Algorithm))
	fmt.Fprintf(&b, "RUN: %s\n", m.RunID)
	fmt.Fprintf(&b, "EXECUTION TIME: %.3fs\n", m.Elapsed.Seconds())
	fmt.Fprintf(&b, "TOTAL EXTENT: %.0fm\n", m.TotalOriginalWeight)
	fmt.Fprintf(&b, "OPTIMIZED EXTENT: %.0fm\n", m.TotalTreeWeight)
	fmt.Fprintf(&b, "SAVINGS: %.0fm (%.1f%%)\n", m.Savings, m.SavingsPercent)
	fmt.Fprintf(&b, "ROUTE REDUCTION: %d -> %d\n", m.OriginalEdges, m.TreeEdges)
	fmt.Fprintln(&b, rule)
	_, err := io.WriteString(w, b.String())

	return err
}
