package models

// HeaderRow is the ordered list of column names taken from grid row 0.
type HeaderRow []string

// RawRow is one data row's values, aligned by index with HeaderRow.
type RawRow []CellValue

// Record is one data row keyed by header name.
type Record map[string]CellValue

// Mapping is the result of mapping a grid into records.
type Mapping struct {
	// Headers holds the trimmed header names in column order.
	Headers HeaderRow `json:"headers"`
	// Rows holds every data row in sheet order.
	Rows []RawRow `json:"rows"`
	// Records holds Rows keyed by Headers.
	Records []Record `json:"records"`
}
