// Package source loads the billing history and activation pipeline from CSV
// exports or SQL databases. Every loader is fail-soft: read failures degrade
// to an empty table plus warnings so the projection engine never sees an
// error for data-shape reasons.
package source

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/basetelco/revcast/internal/contract"
	"github.com/basetelco/revcast/schema"
)

// NewDataSource builds the configured DataSource.
func NewDataSource(cfg *contract.Config) (contract.DataSource, error) {
	switch cfg.Source {
	case schema.DatabaseSource:
		return NewSQLSource(cfg.SourceBackend, cfg.SourceConnect)
	default:
		return NewCSVSource(cfg.HistoryFile, cfg.ActivationsFile), nil
	}
}

// dateLayouts are the activation date formats accepted across sources.
var dateLayouts = []string{
	"2006-01-02",
	"02/01/2006",
	"2006-01-02 15:04:05",
	time.RFC3339,
}

// parseDate parses an activation date in any accepted layout.
func parseDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unparseable date %q", s)
}

// parseDecimal parses a decimal that may use either dot or Brazilian comma
// notation ("1234.56", "1.234,56").
func parseDecimal(s string) (float64, error) {
	s = strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(s), "R$"))
	if s == "" {
		return 0, fmt.Errorf("empty amount")
	}
	if strings.Contains(s, ",") {
		s = strings.ReplaceAll(s, ".", "")
		s = strings.ReplaceAll(s, ",", ".")
	}
	return strconv.ParseFloat(s, 64)
}
