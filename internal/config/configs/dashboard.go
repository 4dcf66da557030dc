package configs

import "fmt"

// Dashboard tunes the rendered page.
type Dashboard struct {
	Title string `env:"TITLE" envDefault:"Health Campaign Dashboard"`
	// PageSize is the default number of table rows per page.
	PageSize    int `env:"PAGE_SIZE" envDefault:"10"`
	ChartWidth  int `env:"CHART_WIDTH" envDefault:"640"`
	ChartHeight int `env:"CHART_HEIGHT" envDefault:"400"`
}

// Check returns a message per invalid field.
func (c Dashboard) Check() []string {
	var errs []string
	if c.PageSize < 1 || c.PageSize > 500 {
		errs = append(errs, fmt.Sprintf("invalid page size %d: must be between 1 and 500", c.PageSize))
	}
	if c.ChartWidth < 100 || c.ChartHeight < 100 {
		errs = append(errs, fmt.Sprintf("invalid chart size %dx%d: both sides must be at least 100", c.ChartWidth, c.ChartHeight))
	}
	return errs
}
