package usecase

import (
	"fmt"
	"slices"
	"strings"

	"github.com/go-gota/gota/dataframe"

	"campdash/internal/core/port"
)

const (
	// DefaultPageSize matches the ten-row pages of the details table.
	DefaultPageSize = 10
	// MaxPageSize bounds a single page.
	MaxPageSize = 500
)

// QueryTable filters, sorts and pages the derived table of d. Filters are
// case-insensitive substring matches combined with AND. Pages past the end
// are clamped to the last page.
func (u *DashboardUseCase) QueryTable(d *port.Dashboard, q port.TableQuery) (*port.TablePage, error) {
	if q.PageSize == 0 {
		q.PageSize = DefaultPageSize
	}
	if q.PageSize < 0 || q.PageSize > MaxPageSize {
		return nil, fmt.Errorf("%w: page size %d not in 1..%d", port.ErrInvalidQuery, q.PageSize, MaxPageSize)
	}
	if q.Page < 0 {
		return nil, fmt.Errorf("%w: page %d", port.ErrInvalidQuery, q.Page)
	}
	if q.Page == 0 {
		q.Page = 1
	}

	columns := d.Columns()
	df := d.Table

	filterCols := make([]string, 0, len(q.Filters))
	for col := range q.Filters {
		if !slices.Contains(columns, col) {
			return nil, fmt.Errorf("%w: %q", port.ErrUnknownColumn, col)
		}
		if strings.TrimSpace(q.Filters[col]) != "" {
			filterCols = append(filterCols, col)
		}
	}
	if len(filterCols) > 0 {
		keep := matchingRows(df, filterCols, q.Filters)
		if len(keep) == 0 {
			return emptyPage(columns, q.PageSize), nil
		}
		if len(keep) < df.Nrow() {
			df = df.Subset(keep)
		}
	}

	if q.SortBy != "" {
		if !slices.Contains(columns, q.SortBy) {
			return nil, fmt.Errorf("%w: %q", port.ErrUnknownColumn, q.SortBy)
		}
		order := dataframe.Sort(q.SortBy)
		if q.Desc {
			order = dataframe.RevSort(q.SortBy)
		}
		df = df.Arrange(order)
	}
	if df.Err != nil {
		return nil, fmt.Errorf("query table: %w", df.Err)
	}

	total := df.Nrow()
	pages := (total + q.PageSize - 1) / q.PageSize
	page := q.Page
	if pages > 0 && page > pages {
		page = pages
	}

	out := &port.TablePage{
		Columns:    columns,
		Rows:       [][]string{},
		Page:       page,
		PageSize:   q.PageSize,
		TotalRows:  total,
		TotalPages: pages,
	}
	if total == 0 {
		return out, nil
	}

	start := (page - 1) * q.PageSize
	end := min(start+q.PageSize, total)
	idx := make([]int, 0, end-start)
	for i := start; i < end; i++ {
		idx = append(idx, i)
	}
	sub := df.Subset(idx)
	if sub.Err != nil {
		return nil, fmt.Errorf("query table: %w", sub.Err)
	}
	out.Rows = sub.Records()[1:]
	return out, nil
}

func matchingRows(df dataframe.DataFrame, cols []string, filters map[string]string) []int {
	keep := make([]bool, df.Nrow())
	for i := range keep {
		keep[i] = true
	}
	for _, col := range cols {
		needle := strings.ToLower(strings.TrimSpace(filters[col]))
		for i, v := range df.Col(col).Records() {
			if keep[i] && !strings.Contains(strings.ToLower(v), needle) {
				keep[i] = false
			}
		}
	}
	idx := make([]int, 0, len(keep))
	for i, ok := range keep {
		if ok {
			idx = append(idx, i)
		}
	}
	return idx
}

func emptyPage(columns []string, size int) *port.TablePage {
	return &port.TablePage{
		Columns:  columns,
		Rows:     [][]string{},
		Page:     1,
		PageSize: size,
	}
}
