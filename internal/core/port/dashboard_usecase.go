package port

import (
	"context"
	"errors"
	"time"

	"github.com/go-gota/gota/dataframe"
	"github.com/google/uuid"

	"campdash/internal/core/domain"
)

var (
	// ErrUnknownColumn is returned when a table query sorts or filters on a
	// column the table does not have.
	ErrUnknownColumn = errors.New("unknown column")
	// ErrInvalidQuery is returned for malformed paging parameters.
	ErrInvalidQuery = errors.New("invalid table query")
)

// DashboardUseCase defines the operations behind the dashboard. It is the
// primary port into the application.
type DashboardUseCase interface {
	// Load reads the configured source once and computes every summary
	// structure. Parse, schema and empty-input failures are returned
	// immediately and are fatal to the load.
	Load(ctx context.Context) (*Dashboard, error)

	// QueryTable filters, sorts and pages the derived campaign table of a
	// loaded dashboard.
	QueryTable(d *Dashboard, q TableQuery) (*TablePage, error)
}

// Dashboard is the immutable result of one load. It is safe for concurrent
// readers.
type Dashboard struct {
	LoadID      uuid.UUID
	Source      string
	LoadedAt    time.Time
	Records     []domain.CampaignRecord
	Aggregation domain.Aggregation
	// Table holds every source column followed by the derived columns.
	Table dataframe.DataFrame
}

// Columns returns the table column names in display order.
func (d *Dashboard) Columns() []string {
	return d.Table.Names()
}

// TableQuery describes one view of the campaign table. Filters map a column
// name to a case-insensitive substring; all filters must match. Page is
// 1-based.
type TableQuery struct {
	SortBy   string
	Desc     bool
	Filters  map[string]string
	Page     int
	PageSize int
}

// TablePage is one page of the filtered, sorted table.
type TablePage struct {
	Columns    []string   `json:"columns"`
	Rows       [][]string `json:"rows"`
	Page       int        `json:"page"`
	PageSize   int        `json:"page_size"`
	TotalRows  int        `json:"total_rows"`
	TotalPages int        `json:"total_pages"`
}
