package configs

import (
	"fmt"
	"unicode/utf8"
)

// Source kinds.
const (
	SourceCSV      = "csv"
	SourcePostgres = "postgres"
)

// Source selects where campaign records are read from.
type Source struct {
	Kind    string `env:"KIND" envDefault:"csv"`
	CSVPath string `env:"CSV_PATH" envDefault:"./data/Health_Camp_Detail.csv"`
	// Delimiter is a single character; empty means comma.
	Delimiter string `env:"CSV_DELIMITER" envDefault:","`
}

// DelimiterRune returns the configured delimiter, defaulting to comma.
func (c Source) DelimiterRune() rune {
	if c.Delimiter == "" {
		return ','
	}
	r, _ := utf8.DecodeRuneInString(c.Delimiter)
	return r
}

// Check returns a message per invalid field.
func (c Source) Check() []string {
	var errs []string
	switch c.Kind {
	case SourceCSV:
		if c.CSVPath == "" {
			errs = append(errs, "csv source requires SOURCE_CSV_PATH")
		}
	case SourcePostgres:
	default:
		errs = append(errs, fmt.Sprintf("invalid source kind %q: must be %q or %q", c.Kind, SourceCSV, SourcePostgres))
	}
	if utf8.RuneCountInString(c.Delimiter) > 1 {
		errs = append(errs, fmt.Sprintf("invalid csv delimiter %q: must be one character", c.Delimiter))
	}
	return errs
}
