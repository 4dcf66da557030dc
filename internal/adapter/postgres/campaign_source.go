package postgres

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"
	"github.com/jackc/pgx/v5"

	"campdash/internal/core/domain"
)

// Querier is the subset of pgxpool.Pool used by the source.
type Querier interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
}

// CampaignSource implements port.CampaignSource over the health_camps table.
// It only reads.
type CampaignSource struct {
	db Querier
}

// NewCampaignSource returns a source backed by db, usually a *pgxpool.Pool.
func NewCampaignSource(db Querier) *CampaignSource {
	return &CampaignSource{db: db}
}

// Name identifies the table in logs.
func (s *CampaignSource) Name() string {
	return "postgres:health_camps"
}

// healthCamp is one row of health_camps.
type healthCamp struct {
	ID        int64
	StartDate time.Time
	EndDate   time.Time
	Category1 string
	Category2 string
	Category3 *string
}

// columns mirrors the header of the published CSV so both sources feed the
// use case the same table.
var columns = []string{
	"Health_Camp_ID",
	domain.ColStartDate,
	domain.ColEndDate,
	domain.ColCategory1,
	domain.ColCategory2,
	"Category3",
}

// LoadCampaigns reads every camp ordered by id.
func (s *CampaignSource) LoadCampaigns(ctx context.Context) (dataframe.DataFrame, error) {
	query := `
        SELECT
            health_camp_id,
            camp_start_date,
            camp_end_date,
            category1,
            category2,
            category3
        FROM health_camps
        ORDER BY health_camp_id`
	rows, err := s.db.Query(ctx, query)
	if err != nil {
		return dataframe.DataFrame{}, fmt.Errorf("query health_camps: %w", err)
	}
	camps, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (healthCamp, error) {
		var c healthCamp
		err := row.Scan(
			&c.ID,
			&c.StartDate,
			&c.EndDate,
			&c.Category1,
			&c.Category2,
			&c.Category3,
		)
		return c, err
	})
	if err != nil {
		return dataframe.DataFrame{}, fmt.Errorf("scan health_camps: %w", err)
	}
	return toFrame(camps)
}

func toFrame(camps []healthCamp) (dataframe.DataFrame, error) {
	if len(camps) == 0 {
		return dataframe.DataFrame{}, domain.ErrEmptyDataset
	}
	records := make([][]string, 0, len(camps)+1)
	records = append(records, columns)
	for _, c := range camps {
		var cat3 string
		if c.Category3 != nil {
			cat3 = *c.Category3
		}
		records = append(records, []string{
			strconv.FormatInt(c.ID, 10),
			c.StartDate.Format(time.DateOnly),
			c.EndDate.Format(time.DateOnly),
			c.Category1,
			c.Category2,
			cat3,
		})
	}
	df := dataframe.LoadRecords(records,
		dataframe.HasHeader(true),
		dataframe.DetectTypes(false),
		dataframe.DefaultType(series.String),
		dataframe.NaNValues(nil),
	)
	if df.Err != nil {
		return dataframe.DataFrame{}, fmt.Errorf("build frame: %w", df.Err)
	}
	return df, nil
}
