package model

import (
	"strconv"
	"strings"
)

// Hotel is a flexible map representing one row of a city data file.
// Keys are the trimmed column headers of the file the row came from
// (e.g. "Hotel Name", "Location", "rating"); values are the raw cell
// contents. A Hotel is never mutated after loading.
type Hotel map[string]string

// Field returns the value stored under the given column name, or ""
// if the column is absent. Column names are matched case-insensitively
// because the data files are inconsistent about header casing.
func (h Hotel) Field(name string) string {
	if v, ok := h[name]; ok {
		return v
	}
	for k, v := range h {
		if strings.EqualFold(k, name) {
			return v
		}
	}
	return ""
}

// Rating returns the numeric value of the "rating" column.
// The second return value is false when the column is missing or not
// a valid number.
func (h Hotel) Rating() (float64, bool) {
	raw := h.Field("rating")
	if raw == "" {
		return 0, false
	}
	r, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, false
	}
	return r, true
}
