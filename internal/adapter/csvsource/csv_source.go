package csvsource

import (
	"bytes"
	"context"
	"fmt"
	"os"

	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"

	"campdash/internal/core/domain"
)

// utf8BOM is written by spreadsheet exports ahead of the header.
var utf8BOM = []byte("\xef\xbb\xbf")

// CSVSource implements port.CampaignSource over a single delimited file.
type CSVSource struct {
	path      string
	delimiter rune
}

// NewCSVSource returns a source reading path. A zero delimiter means comma.
func NewCSVSource(path string, delimiter rune) *CSVSource {
	if delimiter == 0 {
		delimiter = ','
	}
	return &CSVSource{path: path, delimiter: delimiter}
}

// Name returns "csv:" followed by the file path.
func (s *CSVSource) Name() string {
	return "csv:" + s.path
}

// LoadCampaigns reads the whole file. Every column is kept as a string and
// no cell is coerced to NaN, so passthrough values survive verbatim.
func (s *CSVSource) LoadCampaigns(ctx context.Context) (dataframe.DataFrame, error) {
	if err := ctx.Err(); err != nil {
		return dataframe.DataFrame{}, err
	}
	data, err := os.ReadFile(s.path)
	if err != nil {
		return dataframe.DataFrame{}, fmt.Errorf("read campaigns file: %w", err)
	}
	data = bytes.TrimPrefix(data, utf8BOM)
	// a header alone, or nothing at all, holds no records
	if bytes.Count(bytes.TrimSpace(data), []byte{'\n'}) == 0 {
		return dataframe.DataFrame{}, domain.ErrEmptyDataset
	}

	df := dataframe.ReadCSV(bytes.NewReader(data),
		dataframe.HasHeader(true),
		dataframe.DetectTypes(false),
		dataframe.DefaultType(series.String),
		dataframe.NaNValues(nil),
		dataframe.WithDelimiter(s.delimiter),
	)
	if df.Err != nil {
		return dataframe.DataFrame{}, fmt.Errorf("parse campaigns file: %w", df.Err)
	}
	return df, nil
}
