// Package formats implements the report exporters: a terminal table, CSV,
// JSON and YAML. Each registers itself with the registry in init().
package formats

import (
	"strconv"
)

// num formats a float for machine-readable output.
func num(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// optNum is num for optional values; nil becomes an empty field.
func optNum(v *float64) string {
	if v == nil {
		return ""
	}
	return num(*v)
}
