package parser

import (
	"strconv"
	"time"

	"github.com/shopspring/decimal"

	"github.com/efdtools/efd-pis-cofins/registro"
)

// Value is one coerced field of a Record. Exactly one payload is set,
// selected by Type; Null means the field was empty and registro.Field.Optional.
type Value struct {
	Type registro.FieldType
	Null bool

	str string
	i   int64
	dec decimal.Decimal
	dt  time.Time
}

func (v Value) IsNull() bool { return v.Null }

// Str returns the text payload; a non-null Integer field is rendered in
// base 10, so integer codes such as CST and CFOP can be read as strings.
func (v Value) Str() string {
	if v.Type == registro.Integer && !v.Null {
		return strconv.FormatInt(v.i, 10)
	}
	return v.str
}

func (v Value) Int() int64 { return v.i }

func (v Value) Dec() decimal.Decimal { return v.dec }

func (v Value) Date() time.Time { return v.dt }

// Record is a coerced, typed record instance: one tagged variant over the
// record types in package registro (spec.md §3, Record entity).
type Record struct {
	File   string
	Line   int
	Code   string
	Legacy bool
	Order  []string // field names in positional order, for deferred re-emission
	Fields map[string]Value
}

// Get returns the named field and whether it is present at all (a field
// absent from Fields was never declared for this record/layout, which is
// different from being present-but-Null).
func (r *Record) Get(name string) (Value, bool) {
	v, ok := r.Fields[name]
	return v, ok
}

// Str is a convenience accessor returning "" for an absent or null field.
func (r *Record) Str(name string) string {
	v, ok := r.Get(name)
	if !ok || v.Null {
		return ""
	}
	return v.Str()
}
