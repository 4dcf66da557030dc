package postgres

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"campdash/internal/core/domain"
)

func TestToFrame(t *testing.T) {
	three := "3"
	df, err := toFrame([]healthCamp{
		{ID: 6560, StartDate: time.Date(2003, 8, 16, 0, 0, 0, 0, time.UTC), EndDate: time.Date(2003, 8, 20, 0, 0, 0, 0, time.UTC), Category1: "First", Category2: "B", Category3: &three},
		{ID: 6561, StartDate: time.Date(2004, 1, 2, 0, 0, 0, 0, time.UTC), EndDate: time.Date(2004, 1, 9, 0, 0, 0, 0, time.UTC), Category1: "Second", Category2: "C"},
	})
	require.NoError(t, err)

	assert.Equal(t, columns, df.Names())
	assert.Equal(t, [][]string{
		columns,
		{"6560", "2003-08-16", "2003-08-20", "First", "B", "3"},
		{"6561", "2004-01-02", "2004-01-09", "Second", "C", ""},
	}, df.Records())
	assert.NoError(t, domain.CheckSchema(df.Names()))
}

func TestToFrameEmpty(t *testing.T) {
	_, err := toFrame(nil)
	assert.ErrorIs(t, err, domain.ErrEmptyDataset)
}

type failingQuerier struct{ err error }

func (q failingQuerier) Query(context.Context, string, ...any) (pgx.Rows, error) {
	return nil, q.err
}

func TestLoadCampaignsQueryError(t *testing.T) {
	boom := errors.New("connection refused")
	src := NewCampaignSource(failingQuerier{err: boom})

	_, err := src.LoadCampaigns(context.Background())
	assert.ErrorIs(t, err, boom)
	assert.Equal(t, "postgres:health_camps", src.Name())
}
