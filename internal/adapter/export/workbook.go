package export

import (
	"fmt"
	"io"
	"strconv"

	"github.com/xuri/excelize/v2"

	"campdash/internal/core/domain"
	"campdash/internal/core/port"
)

// Sheet names in workbook order.
const (
	SheetKPIs      = "KPIs"
	SheetCategory1 = "Category1"
	SheetCategory2 = "Category2"
	SheetTimeline  = "Timeline"
	SheetHeatmap   = "Heatmap"
	SheetCampaigns = "Campaigns"
)

// WriteWorkbook writes the dashboard as an xlsx workbook to w.
func WriteWorkbook(w io.Writer, d *port.Dashboard) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", SheetKPIs); err != nil {
		return err
	}
	for _, name := range []string{SheetCategory1, SheetCategory2, SheetTimeline, SheetHeatmap, SheetCampaigns} {
		if _, err := f.NewSheet(name); err != nil {
			return err
		}
	}

	agg := d.Aggregation
	k := agg.KPIs
	if err := writeRows(f, SheetKPIs, [][]any{
		{"Metric", "Value"},
		{"Total Campaigns", k.TotalCampaigns},
		{"Avg Duration (Days)", k.AvgDuration},
		{"Longest Duration", k.LongestDuration},
		{"Shortest Duration", k.ShortestDuration},
		{"Source", d.Source},
		{"Load ID", d.LoadID.String()},
	}); err != nil {
		return err
	}

	if err := writeRows(f, SheetCategory1, countRows(domain.ColCategory1, domain.SortedEntries(agg.ByCategory1))); err != nil {
		return err
	}
	if err := writeRows(f, SheetCategory2, countRows(domain.ColCategory2, agg.ByCategory2)); err != nil {
		return err
	}
	if err := writeRows(f, SheetTimeline, countRows(domain.ColYearMonth, agg.ByYearMonth)); err != nil {
		return err
	}
	if err := writeRows(f, SheetHeatmap, heatmapRows(agg.Heatmap)); err != nil {
		return err
	}
	if err := writeRows(f, SheetCampaigns, tableRows(d)); err != nil {
		return err
	}

	f.SetActiveSheet(0)
	if err := f.Write(w); err != nil {
		return fmt.Errorf("write workbook: %w", err)
	}
	return nil
}

func countRows(keyName string, entries []domain.CountEntry) [][]any {
	rows := make([][]any, 0, len(entries)+1)
	rows = append(rows, []any{keyName, "Count"})
	for _, e := range entries {
		rows = append(rows, []any{e.Key, e.Count})
	}
	return rows
}

func heatmapRows(m domain.HeatmapMatrix) [][]any {
	header := make([]any, 0, len(m.Years)+1)
	header = append(header, domain.ColMonth)
	for _, y := range m.Years {
		header = append(header, y)
	}
	rows := [][]any{header}
	for i, month := range m.Months {
		row := make([]any, 0, len(m.Years)+1)
		row = append(row, month)
		for _, v := range m.Counts[i] {
			row = append(row, v)
		}
		rows = append(rows, row)
	}
	return rows
}

// tableRows writes integer derived columns as numbers so the sheet sorts
// them numerically.
func tableRows(d *port.Dashboard) [][]any {
	records := d.Table.Records()
	if len(records) == 0 {
		return nil
	}
	numeric := make(map[int]bool)
	for i, c := range records[0] {
		if c == domain.ColDurationDays || c == domain.ColYear {
			numeric[i] = true
		}
	}
	rows := make([][]any, 0, len(records))
	for r, rec := range records {
		row := make([]any, len(rec))
		for i, v := range rec {
			row[i] = v
			if r > 0 && numeric[i] {
				if n, err := strconv.Atoi(v); err == nil {
					row[i] = n
				}
			}
		}
		rows = append(rows, row)
	}
	return rows
}

func writeRows(f *excelize.File, sheet string, rows [][]any) error {
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return err
		}
		if err = f.SetSheetRow(sheet, cell, &row); err != nil {
			return fmt.Errorf("sheet %s row %d: %w", sheet, i+1, err)
		}
	}
	return nil
}
