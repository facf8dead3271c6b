// Package models defines data structures for spreadsheet-to-record mapping.
package models

import (
	"encoding/json"
	"fmt"
	"strconv"
	"time"
)

// Kind identifies which variant a CellValue holds.
type Kind uint8

const (
	// KindNull is an absent or empty cell.
	KindNull Kind = iota
	// KindString is a text cell.
	KindString
	// KindNumber is a numeric cell.
	KindNumber
	// KindBool is a boolean cell.
	KindBool
	// KindDate is a date or time cell.
	KindDate
)

func (k Kind) String() string {
	switch k {
	case KindNull:
		return "null"
	case KindString:
		return "string"
	case KindNumber:
		return "number"
	case KindBool:
		return "bool"
	case KindDate:
		return "date"
	default:
		return fmt.Sprintf("kind(%d)", uint8(k))
	}
}

// CellValue is a single cell's scalar content.
// The zero value is Null.
type CellValue struct {
	kind Kind
	str  string
	num  float64
	b    bool
	t    time.Time
}

// Null returns the absent cell value.
func Null() CellValue { return CellValue{} }

// String returns a text cell value.
func String(s string) CellValue { return CellValue{kind: KindString, str: s} }

// Number returns a numeric cell value.
func Number(f float64) CellValue { return CellValue{kind: KindNumber, num: f} }

// Bool returns a boolean cell value.
func Bool(b bool) CellValue { return CellValue{kind: KindBool, b: b} }

// Date returns a date cell value.
func Date(t time.Time) CellValue { return CellValue{kind: KindDate, t: t} }

// Kind reports the variant held by v.
func (v CellValue) Kind() Kind { return v.kind }

// IsNull reports whether v is the absent value.
func (v CellValue) IsNull() bool { return v.kind == KindNull }

// Text returns the string payload and whether v is a string.
func (v CellValue) Text() (string, bool) { return v.str, v.kind == KindString }

// Float returns the numeric payload and whether v is a number.
func (v CellValue) Float() (float64, bool) { return v.num, v.kind == KindNumber }

// Boolean returns the boolean payload and whether v is a bool.
func (v CellValue) Boolean() (bool, bool) { return v.b, v.kind == KindBool }

// Time returns the date payload and whether v is a date.
func (v CellValue) Time() (time.Time, bool) { return v.t, v.kind == KindDate }

// String returns the display form of the value. Null renders as "".
func (v CellValue) String() string {
	switch v.kind {
	case KindString:
		return v.str
	case KindNumber:
		return strconv.FormatFloat(v.num, 'f', -1, 64)
	case KindBool:
		return strconv.FormatBool(v.b)
	case KindDate:
		return v.t.Format(time.RFC3339)
	default:
		return ""
	}
}

// Equal reports whether v and o hold the same variant and payload.
func (v CellValue) Equal(o CellValue) bool {
	if v.kind != o.kind {
		return false
	}
	switch v.kind {
	case KindString:
		return v.str == o.str
	case KindNumber:
		return v.num == o.num
	case KindBool:
		return v.b == o.b
	case KindDate:
		return v.t.Equal(o.t)
	default:
		return true
	}
}

// MarshalJSON encodes the value as its natural JSON scalar.
func (v CellValue) MarshalJSON() ([]byte, error) {
	switch v.kind {
	case KindString:
		return json.Marshal(v.str)
	case KindNumber:
		return json.Marshal(v.num)
	case KindBool:
		return json.Marshal(v.b)
	case KindDate:
		return json.Marshal(v.t.Format(time.RFC3339))
	default:
		return []byte("null"), nil
	}
}
