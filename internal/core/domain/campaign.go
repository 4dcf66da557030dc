package domain

import (
	"fmt"
	"time"
)

// Column names of the campaign table. Additional columns are carried through
// untouched.
const (
	ColCategory1 = "Category1"
	ColCategory2 = "Category2"
	ColStartDate = "Camp_Start_Date"
	ColEndDate   = "Camp_End_Date"

	ColDurationDays = "Duration_Days"
	ColYear         = "Year"
	ColMonth        = "Month"
	ColYearMonth    = "YearMonth"
)

// RequiredColumns lists the columns every campaign table must provide.
var RequiredColumns = []string{ColCategory1, ColCategory2, ColStartDate, ColEndDate}

// DerivedColumns lists the columns appended to the campaign table after
// derivation, in display order.
var DerivedColumns = []string{ColDurationDays, ColYear, ColMonth, ColYearMonth}

// CampaignRecord represents a single health camp event. StartDate and
// EndDate are calendar dates (midnight UTC). Fields holds every raw column of
// the source row, including the ones parsed into typed fields.
type CampaignRecord struct {
	Category1 string
	Category2 string
	StartDate time.Time
	EndDate   time.Time
	Fields    map[string]string
}

// NewCampaignRecord builds a record from a raw row. columns and values are
// parallel; row is the 1-based data row number used in parse errors.
func NewCampaignRecord(row int, columns, values []string) (CampaignRecord, error) {
	if len(columns) != len(values) {
		return CampaignRecord{}, fmt.Errorf("row %d: %d values for %d columns", row, len(values), len(columns))
	}
	fields := make(map[string]string, len(columns))
	for i, c := range columns {
		fields[c] = values[i]
	}

	start, err := ParseDate(ColStartDate, fields[ColStartDate])
	if err != nil {
		return CampaignRecord{}, withRow(err, row)
	}
	end, err := ParseDate(ColEndDate, fields[ColEndDate])
	if err != nil {
		return CampaignRecord{}, withRow(err, row)
	}

	return CampaignRecord{
		Category1: fields[ColCategory1],
		Category2: fields[ColCategory2],
		StartDate: start,
		EndDate:   end,
		Fields:    fields,
	}, nil
}

// DurationDays returns the number of whole days between start and end.
// A record whose end precedes its start yields a negative value; it is not
// clamped.
func (c CampaignRecord) DurationDays() int {
	return int((c.EndDate.Unix() - c.StartDate.Unix()) / secondsPerDay)
}

// Year returns the calendar year of the start date.
func (c CampaignRecord) Year() int {
	return c.StartDate.Year()
}

// Month returns the full month name of the start date.
func (c CampaignRecord) Month() string {
	return c.StartDate.Month().String()
}

// YearMonth returns the "YYYY-MM" key of the start date.
func (c CampaignRecord) YearMonth() string {
	return c.StartDate.Format("2006-01")
}

// MonthNames is the canonical calendar order of months. It is the sort key
// wherever months are grouped or displayed.
var MonthNames = [12]string{
	"January", "February", "March", "April", "May", "June",
	"July", "August", "September", "October", "November", "December",
}

// MonthIndex returns the 0-based calendar position of a full month name, or
// -1 when name is not a month.
func MonthIndex(name string) int {
	for i, m := range MonthNames {
		if m == name {
			return i
		}
	}
	return -1
}
