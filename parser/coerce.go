package parser

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/efdtools/efd-pis-cofins/money"
	"github.com/efdtools/efd-pis-cofins/registro"
)

// ErrUnknownRecord signals a registry miss: spec.md §4.9's "non-fatal
// skip", never wrapped into a StructureError because it must not abort
// the file.
var ErrUnknownRecord = errors.New("unknown record code")

// Coerce types every field of one tokenized line against the registry,
// implementing spec.md §4.3. Errors are always *StructureError except for
// ErrUnknownRecord, which the reader treats as a warn-and-skip.
func Coerce(file string, lineNo int, code string, fields []string) (*Record, error) {
	rt, ok := registro.Lookup(code)
	if !ok {
		return nil, ErrUnknownRecord
	}

	schema, legacy, ok := rt.FieldsFor(len(fields))
	if !ok {
		return nil, &StructureError{
			File: file, Line: lineNo, Code: code,
			Err: fmt.Errorf("invalid field count: got %d, want one of %v", len(fields), rt.FieldCounts()),
		}
	}

	rec := &Record{
		File: file, Line: lineNo, Code: code, Legacy: legacy,
		Order:  make([]string, 0, len(schema)),
		Fields: make(map[string]Value, len(schema)),
	}

	for i, f := range schema {
		raw := fields[i]
		v, err := coerceField(f, raw)
		if err != nil {
			return nil, &StructureError{
				File: file, Line: lineNo, Code: code, Field: f.Name, Raw: raw, Err: err,
			}
		}
		rec.Order = append(rec.Order, f.Name)
		rec.Fields[f.Name] = v
	}
	return rec, nil
}

func coerceField(f registro.Field, raw string) (Value, error) {
	if raw == "" {
		if f.Optional {
			return Value{Type: f.Type, Null: true}, nil
		}
		return Value{}, fmt.Errorf("missing value for mandatory field %s", f.Name)
	}

	switch f.Type {
	case registro.Alphanumeric:
		return Value{Type: f.Type, str: raw}, nil

	case registro.Integer:
		n, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return Value{}, fmt.Errorf("invalid integer %q: %w", raw, err)
		}
		return Value{Type: f.Type, i: n}, nil

	case registro.Value2dec:
		d, err := money.ParseBRL(raw)
		if err != nil {
			return Value{}, err
		}
		return Value{Type: f.Type, dec: d}, nil

	case registro.Rate4dec:
		d, err := money.ParseBRL(raw)
		if err != nil {
			return Value{}, err
		}
		return Value{Type: f.Type, dec: d}, nil

	case registro.DateField:
		t, err := coerceDate(raw)
		if err != nil {
			return Value{}, err
		}
		return Value{Type: f.Type, dt: t}, nil

	default:
		return Value{}, fmt.Errorf("unhandled field type %v", f.Type)
	}
}

// coerceDate implements spec.md §4.3: DDMMYYYY, or a 6-digit MMYYYY (as
// seen in PER_APU_CRED) treated as day 1 of that month.
func coerceDate(raw string) (time.Time, error) {
	switch len(raw) {
	case 8:
		day, err1 := strconv.Atoi(raw[0:2])
		month, err2 := strconv.Atoi(raw[2:4])
		year, err3 := strconv.Atoi(raw[4:8])
		if err1 != nil || err2 != nil || err3 != nil {
			return time.Time{}, fmt.Errorf("invalid DDMMYYYY date %q", raw)
		}
		return time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC), nil
	case 6:
		month, err1 := strconv.Atoi(raw[0:2])
		year, err2 := strconv.Atoi(raw[2:6])
		if err1 != nil || err2 != nil {
			return time.Time{}, fmt.Errorf("invalid MMYYYY date %q", raw)
		}
		return time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC), nil
	default:
		return time.Time{}, fmt.Errorf("date %q is neither DDMMYYYY nor MMYYYY", raw)
	}
}
