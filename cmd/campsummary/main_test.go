package main

import (
	"bytes"
	"testing"
	"time"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"campdash/internal/core/domain"
	"campdash/internal/core/port"
)

func TestPrintSummary(t *testing.T) {
	color.NoColor = true
	day := func(s string) time.Time {
		v, err := time.Parse(time.DateOnly, s)
		require.NoError(t, err)
		return v
	}
	records := []domain.CampaignRecord{
		{Category1: "First", Category2: "B", StartDate: day("2023-01-05"), EndDate: day("2023-01-10")},
		{Category1: "Second", Category2: "A", StartDate: day("2023-01-20"), EndDate: day("2023-02-01")},
		{Category1: "First", Category2: "B", StartDate: day("2024-01-15"), EndDate: day("2024-01-20")},
	}
	agg, err := domain.Aggregate(records)
	require.NoError(t, err)

	var buf bytes.Buffer
	printSummary(&buf, &port.Dashboard{Source: "csv:camps.csv", Records: records, Aggregation: agg})
	out := buf.String()

	assert.Contains(t, out, "Campaigns from csv:camps.csv")
	assert.Contains(t, out, "7.3")
	assert.Contains(t, out, "12 days")
	assert.Contains(t, out, "2023-01")
	assert.Contains(t, out, "December")
	assert.Contains(t, out, "Campaign Seasonality (Month vs Year)")
}
