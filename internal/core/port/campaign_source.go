package port

import (
	"context"

	"github.com/go-gota/gota/dataframe"
)

// CampaignSource is the outbound port that supplies the raw campaign table.
// Implementations return every column as strings with the header as column
// names; parsing and validation happen in the use case. A source whose table
// has a header but no rows returns domain.ErrEmptyDataset.
type CampaignSource interface {
	// Name identifies the source in logs, e.g. "csv:/data/camps.csv".
	Name() string
	// LoadCampaigns reads the whole table once.
	LoadCampaigns(ctx context.Context) (dataframe.DataFrame, error)
}
