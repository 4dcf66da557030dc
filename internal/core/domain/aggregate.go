package domain

import (
	"math"
	"slices"
	"sort"
)

// KPISummary holds the scalar statistics of a campaign set. Durations are in
// days.
type KPISummary struct {
	TotalCampaigns   int     `json:"total_campaigns"`
	AvgDuration      float64 `json:"avg_duration"`
	LongestDuration  int     `json:"longest_duration"`
	ShortestDuration int     `json:"shortest_duration"`
}

// CountEntry is one group of an ordered count.
type CountEntry struct {
	Key   string `json:"key"`
	Count int    `json:"count"`
}

// HeatmapMatrix is a dense month by year grid of campaign counts.
// Counts[m][y] is the number of campaigns starting in Months[m] of Years[y].
type HeatmapMatrix struct {
	Months []string `json:"months"`
	Years  []int    `json:"years"`
	Counts [][]int  `json:"counts"`
}

// Cell returns the count for a month name and year, and whether both axes
// contain them.
func (h HeatmapMatrix) Cell(month string, year int) (int, bool) {
	m := slices.Index(h.Months, month)
	y := slices.Index(h.Years, year)
	if m < 0 || y < 0 {
		return 0, false
	}
	return h.Counts[m][y], true
}

// Total returns the sum of all cells.
func (h HeatmapMatrix) Total() int {
	var n int
	for _, row := range h.Counts {
		for _, v := range row {
			n += v
		}
	}
	return n
}

// Aggregation is the full batch result over one record set.
type Aggregation struct {
	KPIs        KPISummary     `json:"kpis"`
	ByCategory1 map[string]int `json:"by_category1"`
	ByCategory2 []CountEntry   `json:"by_category2"`
	ByYearMonth []CountEntry   `json:"by_year_month"`
	Heatmap     HeatmapMatrix  `json:"heatmap"`
}

// Aggregate computes every summary structure over records. It fails with
// ErrEmptyDataset when records is empty.
func Aggregate(records []CampaignRecord) (Aggregation, error) {
	kpis, err := ComputeKPIs(records)
	if err != nil {
		return Aggregation{}, err
	}
	return Aggregation{
		KPIs:        kpis,
		ByCategory1: CountByCategory1(records),
		ByCategory2: CountByCategory2(records),
		ByYearMonth: CountByYearMonth(records),
		Heatmap:     BuildHeatmapMatrix(records),
	}, nil
}

// ComputeKPIs returns the total count and the mean, max and min duration.
// The mean is rounded to one decimal, half to even.
func ComputeKPIs(records []CampaignRecord) (KPISummary, error) {
	if len(records) == 0 {
		return KPISummary{}, ErrEmptyDataset
	}
	var (
		sum      int
		longest  = math.MinInt
		shortest = math.MaxInt
	)
	for _, r := range records {
		d := r.DurationDays()
		sum += d
		longest = max(longest, d)
		shortest = min(shortest, d)
	}
	mean := float64(sum) / float64(len(records))
	return KPISummary{
		TotalCampaigns:   len(records),
		AvgDuration:      math.RoundToEven(mean*10) / 10,
		LongestDuration:  longest,
		ShortestDuration: shortest,
	}, nil
}

// CountByCategory1 counts records per Category1 label.
func CountByCategory1(records []CampaignRecord) map[string]int {
	counts := make(map[string]int)
	for _, r := range records {
		counts[r.Category1]++
	}
	return counts
}

// CountByCategory2 counts records per Category2 label, ordered by label.
func CountByCategory2(records []CampaignRecord) []CountEntry {
	return countSorted(records, func(r CampaignRecord) string { return r.Category2 })
}

// CountByYearMonth counts records per start YearMonth, ordered
// chronologically. "YYYY-MM" keys sort chronologically as strings.
func CountByYearMonth(records []CampaignRecord) []CountEntry {
	return countSorted(records, CampaignRecord.YearMonth)
}

// SortedEntries returns counts as entries ordered by key.
func SortedEntries(counts map[string]int) []CountEntry {
	entries := make([]CountEntry, 0, len(counts))
	for k, v := range counts {
		entries = append(entries, CountEntry{Key: k, Count: v})
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].Key < entries[j].Key })
	return entries
}

func countSorted(records []CampaignRecord, key func(CampaignRecord) string) []CountEntry {
	counts := make(map[string]int)
	for _, r := range records {
		counts[key(r)]++
	}
	return SortedEntries(counts)
}

// BuildHeatmapMatrix groups records by start (Year, Month) and reshapes the
// groups into a dense grid. Rows are always the twelve calendar months in
// calendar order; columns are the distinct years present, ascending. Absent
// combinations are zero.
func BuildHeatmapMatrix(records []CampaignRecord) HeatmapMatrix {
	type cell struct {
		year  int
		month int
	}
	groups := make(map[cell]int)
	yearSet := make(map[int]struct{})
	for _, r := range records {
		y := r.Year()
		groups[cell{year: y, month: int(r.StartDate.Month()) - 1}]++
		yearSet[y] = struct{}{}
	}

	years := make([]int, 0, len(yearSet))
	for y := range yearSet {
		years = append(years, y)
	}
	sort.Ints(years)
	col := make(map[int]int, len(years))
	for i, y := range years {
		col[y] = i
	}

	counts := make([][]int, len(MonthNames))
	for m := range counts {
		counts[m] = make([]int, len(years))
	}
	for c, n := range groups {
		counts[c.month][col[c.year]] = n
	}

	return HeatmapMatrix{
		Months: slices.Clone(MonthNames[:]),
		Years:  years,
		Counts: counts,
	}
}
