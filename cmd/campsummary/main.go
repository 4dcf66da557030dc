// Command campsummary loads the configured campaign source and prints the
// dashboard figures as terminal tables.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"

	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"

	"campdash/internal/adapter/usecase"
	"campdash/internal/app"
	"campdash/internal/config"
	"campdash/internal/core/domain"
	"campdash/internal/core/port"
)

func main() {
	dataPath := flag.String("data", "", "campaign CSV file; overrides SOURCE_CSV_PATH")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", slog.Any("error", err))
		os.Exit(1)
	}
	if *dataPath != "" {
		cfg.Source.CSVPath = *dataPath
	}
	if err = cfg.Validate(); err != nil {
		slog.Error("invalid config", slog.Any("error", err))
		os.Exit(1)
	}
	logger := cfg.Log.NewLogger(os.Stderr)

	ctx := context.Background()
	src, closeSrc, err := app.NewSource(ctx, cfg, logger)
	if err != nil {
		logger.Error("source error", slog.Any("error", err))
		os.Exit(1)
	}
	defer closeSrc()

	dash, err := usecase.NewDashboardUseCase(src, logger).Load(ctx)
	if err != nil {
		logger.Error("load campaigns error", slog.String("source", src.Name()), slog.Any("error", err))
		closeSrc()
		os.Exit(1)
	}

	printSummary(os.Stdout, dash)
}

func printSummary(w io.Writer, d *port.Dashboard) {
	title := color.New(color.FgYellow, color.Bold)
	agg := d.Aggregation
	k := agg.KPIs

	title.Fprintf(w, "Campaigns from %s\n", d.Source)
	t := tablewriter.NewWriter(w)
	t.SetHeader([]string{"Metric", "Value"})
	t.Append([]string{"Total Campaigns", strconv.Itoa(k.TotalCampaigns)})
	t.Append([]string{"Avg Duration (Days)", strconv.FormatFloat(k.AvgDuration, 'f', 1, 64)})
	t.Append([]string{"Longest Duration", fmt.Sprintf("%d days", k.LongestDuration)})
	t.Append([]string{"Shortest Duration", fmt.Sprintf("%d days", k.ShortestDuration)})
	t.Render()

	printCounts(w, title, "Campaigns by Category1", domain.ColCategory1, domain.SortedEntries(agg.ByCategory1))
	printCounts(w, title, "Campaigns by Category2", domain.ColCategory2, agg.ByCategory2)
	printCounts(w, title, "Campaign Starts Over Time", domain.ColYearMonth, agg.ByYearMonth)

	title.Fprintln(w, "\nCampaign Seasonality (Month vs Year)")
	hm := agg.Heatmap
	header := []string{domain.ColMonth}
	for _, y := range hm.Years {
		header = append(header, strconv.Itoa(y))
	}
	t = tablewriter.NewWriter(w)
	t.SetHeader(header)
	for i, month := range hm.Months {
		row := []string{month}
		for _, c := range hm.Counts[i] {
			row = append(row, strconv.Itoa(c))
		}
		t.Append(row)
	}
	t.Render()
}

func printCounts(w io.Writer, title *color.Color, heading, key string, entries []domain.CountEntry) {
	title.Fprintln(w, "\n"+heading)
	t := tablewriter.NewWriter(w)
	t.SetHeader([]string{key, "Count"})
	for _, e := range entries {
		t.Append([]string{e.Key, strconv.Itoa(e.Count)})
	}
	t.Render()
}
