package exporter

import (
	"fmt"
	"strconv"

	"asrcli/pkg/contracts/domain"
)

// formatValue formats a record value for CSV output
func formatValue(v interface{}) string {
	switch val := v.(type) {
	case string:
		return val
	case int:
		return strconv.Itoa(val)
	default:
		return fmt.Sprintf("%v", val)
	}
}

// recordRow converts a record to a CSV row in field insertion order
func recordRow(rec *domain.Record) []string {
	values := rec.Values()
	row := make([]string, len(values))
	for i, v := range values {
		row[i] = formatValue(v)
	}
	return row
}
