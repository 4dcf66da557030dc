package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"
	"github.com/google/uuid"

	"campdash/internal/core/domain"
	"campdash/internal/core/port"
)

// DashboardUseCase loads campaign tables and computes the dashboard view.
// It implements port.DashboardUseCase and keeps no state between loads.
type DashboardUseCase struct {
	src    port.CampaignSource
	logger *slog.Logger

	// now is overridden in tests.
	now func() time.Time
}

// NewDashboardUseCase creates a use case reading from src.
func NewDashboardUseCase(src port.CampaignSource, logger *slog.Logger) *DashboardUseCase {
	if logger == nil {
		logger = slog.Default()
	}
	return &DashboardUseCase{src: src, logger: logger, now: time.Now}
}

// Load reads the source, validates the schema, parses every record and runs
// the aggregation. The first parse failure aborts the load.
func (u *DashboardUseCase) Load(ctx context.Context) (*port.Dashboard, error) {
	started := u.now()
	name := u.src.Name()
	u.logger.Info("loading campaigns", slog.String("source", name))

	raw, err := u.src.LoadCampaigns(ctx)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", name, err)
	}
	if raw.Err != nil {
		return nil, fmt.Errorf("load %s: %w", name, raw.Err)
	}

	rows := raw.Records()
	if len(rows) == 0 {
		return nil, fmt.Errorf("load %s: %w", name, domain.ErrEmptyDataset)
	}
	header := rows[0]
	if err = domain.CheckSchema(header); err != nil {
		return nil, fmt.Errorf("load %s: %w", name, err)
	}

	records := make([]domain.CampaignRecord, 0, len(rows)-1)
	for i, row := range rows[1:] {
		rec, err := domain.NewCampaignRecord(i+1, header, row)
		if err != nil {
			return nil, fmt.Errorf("load %s: %w", name, err)
		}
		records = append(records, rec)
	}

	agg, err := domain.Aggregate(records)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", name, err)
	}

	table, err := deriveTable(raw, records)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", name, err)
	}

	d := &port.Dashboard{
		LoadID:      uuid.New(),
		Source:      name,
		LoadedAt:    started.UTC(),
		Records:     records,
		Aggregation: agg,
		Table:       table,
	}
	u.logger.Info("campaigns loaded",
		slog.String("source", name),
		slog.String("load_id", d.LoadID.String()),
		slog.Int("records", len(records)),
		slog.Int("years", len(agg.Heatmap.Years)),
		slog.Duration("took", u.now().Sub(started)),
	)
	return d, nil
}

// deriveTable normalises the date columns and appends the derived columns
// to the raw frame.
func deriveTable(raw dataframe.DataFrame, records []domain.CampaignRecord) (dataframe.DataFrame, error) {
	n := len(records)
	var (
		starts    = make([]string, n)
		ends      = make([]string, n)
		durations = make([]int, n)
		years     = make([]int, n)
		months    = make([]string, n)
		yms       = make([]string, n)
	)
	for i, r := range records {
		starts[i] = r.StartDate.Format(time.DateOnly)
		ends[i] = r.EndDate.Format(time.DateOnly)
		durations[i] = r.DurationDays()
		years[i] = r.Year()
		months[i] = r.Month()
		yms[i] = r.YearMonth()
	}

	df := raw.
		Mutate(series.New(starts, series.String, domain.ColStartDate)).
		Mutate(series.New(ends, series.String, domain.ColEndDate)).
		Mutate(series.New(durations, series.Int, domain.ColDurationDays)).
		Mutate(series.New(years, series.Int, domain.ColYear)).
		Mutate(series.New(months, series.String, domain.ColMonth)).
		Mutate(series.New(yms, series.String, domain.ColYearMonth))
	if df.Err != nil {
		return dataframe.DataFrame{}, fmt.Errorf("derive columns: %w", df.Err)
	}
	return df, nil
}
