package parser

import "fmt"

// StructureError is spec.md §7's "invalid structure" kind: a field count,
// decimal, date, or byte sequence that does not fit the record's shape.
// It always aborts the file (spec.md §4.9).
type StructureError struct {
	File  string
	Line  int
	Code  string
	Field string
	Raw   string
	Err   error
}

func (e *StructureError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("%s:%d: record %s: field %s: %v (raw=%q)", e.File, e.Line, e.Code, e.Field, e.Err, e.Raw)
	}
	return fmt.Sprintf("%s:%d: record %s: %v", e.File, e.Line, e.Code, e.Err)
}

func (e *StructureError) Unwrap() error { return e.Err }

// DataError is spec.md §7's "invalid data" kind: a value that tokenizes
// and coerces fine but fails a domain rule (CNPJ length, CST range). No
// code in this repository constructs one: Coerce and ReadFile report only
// StructureError and ErrUnknownRecord.
type DataError struct {
	File  string
	Line  int
	Field string
	Raw   string
	Msg   string
}

func (e *DataError) Error() string {
	return fmt.Sprintf("%s:%d: field %s: %s (raw=%q)", e.File, e.Line, e.Field, e.Msg, e.Raw)
}
