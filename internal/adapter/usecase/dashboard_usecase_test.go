package usecase

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"campdash/internal/core/domain"
	"campdash/internal/core/port"
	"campdash/internal/core/port/mocks"
)

var testHeader = []string{"Health_Camp_ID", "Camp_Start_Date", "Camp_End_Date", "Category1", "Category2"}

func frame(rows ...[]string) dataframe.DataFrame {
	return dataframe.LoadRecords(append([][]string{testHeader}, rows...),
		dataframe.HasHeader(true),
		dataframe.DetectTypes(false),
		dataframe.DefaultType(series.String),
	)
}

func exampleFrame() dataframe.DataFrame {
	return frame(
		[]string{"A", "2023-01-05", "2023-01-10", "X", "Second"},
		[]string{"B", "2023-01-20", "2023-02-01", "Y", "First"},
		[]string{"C", "15-Jan-24", "20-Jan-24", "X", "Second"},
	)
}

func quietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newUseCase(t *testing.T, df dataframe.DataFrame, err error) *DashboardUseCase {
	src := mocks.NewMockCampaignSource(t)
	src.EXPECT().Name().Return("test")
	src.EXPECT().LoadCampaigns(mock.Anything).Return(df, err)
	return NewDashboardUseCase(src, quietLogger())
}

func TestLoad(t *testing.T) {
	u := newUseCase(t, exampleFrame(), nil)

	d, err := u.Load(context.Background())
	require.NoError(t, err)

	assert.NotEqual(t, uuid.Nil, d.LoadID)
	assert.Equal(t, "test", d.Source)
	assert.Len(t, d.Records, 3)

	kpis := d.Aggregation.KPIs
	assert.Equal(t, 3, kpis.TotalCampaigns)
	assert.Equal(t, 7.3, kpis.AvgDuration)
	assert.Equal(t, 12, kpis.LongestDuration)
	assert.Equal(t, 5, kpis.ShortestDuration)

	assert.Equal(t, map[string]int{"X": 2, "Y": 1}, d.Aggregation.ByCategory1)
	assert.Equal(t, []domain.CountEntry{{Key: "First", Count: 1}, {Key: "Second", Count: 2}}, d.Aggregation.ByCategory2)
	assert.Equal(t, []domain.CountEntry{{Key: "2023-01", Count: 2}, {Key: "2024-01", Count: 1}}, d.Aggregation.ByYearMonth)

	jan, ok := d.Aggregation.Heatmap.Cell("January", 2023)
	require.True(t, ok)
	assert.Equal(t, 2, jan)

	assert.Equal(t, append(testHeader, domain.DerivedColumns...), d.Columns())
	assert.Equal(t, []string{"2023-01-05", "2023-01-20", "2024-01-15"}, d.Table.Col(domain.ColStartDate).Records())
	assert.Equal(t, []string{"5", "12", "5"}, d.Table.Col(domain.ColDurationDays).Records())
	assert.Equal(t, []string{"January", "January", "January"}, d.Table.Col(domain.ColMonth).Records())
	assert.Equal(t, []string{"2023", "2023", "2024"}, d.Table.Col(domain.ColYear).Records())
}

func TestLoadSourceError(t *testing.T) {
	boom := errors.New("boom")
	u := newUseCase(t, dataframe.DataFrame{}, boom)

	_, err := u.Load(context.Background())
	assert.ErrorIs(t, err, boom)
}

func TestLoadEmptySource(t *testing.T) {
	u := newUseCase(t, dataframe.DataFrame{}, domain.ErrEmptyDataset)

	_, err := u.Load(context.Background())
	assert.ErrorIs(t, err, domain.ErrEmptyDataset)
}

func TestLoadSchemaError(t *testing.T) {
	df := dataframe.LoadRecords([][]string{
		{"Category1", "Camp_Start_Date"},
		{"X", "2023-01-01"},
	}, dataframe.DetectTypes(false))
	u := newUseCase(t, df, nil)

	_, err := u.Load(context.Background())
	var se *domain.SchemaError
	require.ErrorAs(t, err, &se)
	assert.Equal(t, []string{"Category2", "Camp_End_Date"}, se.Missing)
}

func TestLoadParseError(t *testing.T) {
	u := newUseCase(t, frame(
		[]string{"A", "2023-01-05", "2023-01-10", "X", "S"},
		[]string{"B", "2023-01-20", "soon", "Y", "F"},
	), nil)

	_, err := u.Load(context.Background())
	var pe *domain.ParseError
	require.ErrorAs(t, err, &pe)
	assert.Equal(t, 2, pe.Row)
	assert.Equal(t, domain.ColEndDate, pe.Field)
	assert.Equal(t, "soon", pe.Value)
}

func TestLoadKeepsNegativeDurations(t *testing.T) {
	u := newUseCase(t, frame(
		[]string{"A", "2023-03-10", "2023-03-01", "X", "S"},
		[]string{"B", "2023-03-10", "2023-03-12", "X", "S"},
	), nil)

	d, err := u.Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, -9, d.Aggregation.KPIs.ShortestDuration)
	assert.Equal(t, []string{"-9", "2"}, d.Table.Col(domain.ColDurationDays).Records())
}

func loaded(t *testing.T) (*DashboardUseCase, *port.Dashboard) {
	t.Helper()
	u := newUseCase(t, frame(
		[]string{"A", "2023-01-05", "2023-01-10", "Alpha", "S"},
		[]string{"B", "2023-01-20", "2023-02-01", "Beta", "F"},
		[]string{"C", "2024-01-15", "2024-01-16", "alpine", "S"},
		[]string{"D", "2024-05-01", "2024-05-04", "Gamma", "F"},
		[]string{"E", "2024-06-01", "2024-06-08", "Delta", "S"},
	), nil)
	d, err := u.Load(context.Background())
	require.NoError(t, err)
	return u, d
}

func column(t *testing.T, page *port.TablePage, name string) []string {
	t.Helper()
	idx := -1
	for i, c := range page.Columns {
		if c == name {
			idx = i
		}
	}
	require.GreaterOrEqual(t, idx, 0, name)
	out := make([]string, 0, len(page.Rows))
	for _, r := range page.Rows {
		out = append(out, r[idx])
	}
	return out
}

func TestQueryTableDefaults(t *testing.T) {
	u, d := loaded(t)

	page, err := u.QueryTable(d, port.TableQuery{})
	require.NoError(t, err)
	assert.Equal(t, 1, page.Page)
	assert.Equal(t, DefaultPageSize, page.PageSize)
	assert.Equal(t, 5, page.TotalRows)
	assert.Equal(t, 1, page.TotalPages)
	assert.Equal(t, []string{"A", "B", "C", "D", "E"}, column(t, page, "Health_Camp_ID"))
}

func TestQueryTableSort(t *testing.T) {
	u, d := loaded(t)

	page, err := u.QueryTable(d, port.TableQuery{SortBy: domain.ColDurationDays, Desc: true})
	require.NoError(t, err)
	assert.Equal(t, []string{"12", "7", "5", "3", "1"}, column(t, page, domain.ColDurationDays))

	page, err = u.QueryTable(d, port.TableQuery{SortBy: domain.ColDurationDays})
	require.NoError(t, err)
	assert.Equal(t, []string{"C", "D", "A", "E", "B"}, column(t, page, "Health_Camp_ID"))
}

func TestQueryTableFilter(t *testing.T) {
	u, d := loaded(t)

	page, err := u.QueryTable(d, port.TableQuery{Filters: map[string]string{"Category1": "ALP"}})
	require.NoError(t, err)
	assert.Equal(t, 2, page.TotalRows)
	assert.Equal(t, []string{"Alpha", "alpine"}, column(t, page, "Category1"))

	page, err = u.QueryTable(d, port.TableQuery{Filters: map[string]string{
		"Category1": "a",
		"Year":      "2024",
		"Category2": "",
	}})
	require.NoError(t, err)
	assert.Equal(t, []string{"C", "D", "E"}, column(t, page, "Health_Camp_ID"))

	page, err = u.QueryTable(d, port.TableQuery{Filters: map[string]string{"Month": "December"}})
	require.NoError(t, err)
	assert.Equal(t, 0, page.TotalRows)
	assert.Empty(t, page.Rows)
}

func TestQueryTablePaging(t *testing.T) {
	u, d := loaded(t)

	page, err := u.QueryTable(d, port.TableQuery{PageSize: 2, Page: 2})
	require.NoError(t, err)
	assert.Equal(t, 3, page.TotalPages)
	assert.Equal(t, []string{"C", "D"}, column(t, page, "Health_Camp_ID"))

	page, err = u.QueryTable(d, port.TableQuery{PageSize: 2, Page: 9})
	require.NoError(t, err)
	assert.Equal(t, 3, page.Page)
	assert.Equal(t, []string{"E"}, column(t, page, "Health_Camp_ID"))
}

func TestQueryTableErrors(t *testing.T) {
	u, d := loaded(t)

	_, err := u.QueryTable(d, port.TableQuery{SortBy: "Budget"})
	assert.ErrorIs(t, err, port.ErrUnknownColumn)

	_, err = u.QueryTable(d, port.TableQuery{Filters: map[string]string{"Budget": "1"}})
	assert.ErrorIs(t, err, port.ErrUnknownColumn)

	_, err = u.QueryTable(d, port.TableQuery{PageSize: MaxPageSize + 1})
	assert.ErrorIs(t, err, port.ErrInvalidQuery)

	_, err = u.QueryTable(d, port.TableQuery{Page: -1})
	assert.ErrorIs(t, err, port.ErrInvalidQuery)
}
