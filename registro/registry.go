// Package registro holds the read-once, process-wide table mapping every
// SPED EFD-Contribuições record code to its ordered field list. The table
// is built once at package init and never mutated afterward; it is safe to
// share across goroutines without synchronization (spec.md §4.1, §5).
package registro

// FieldType names the primitive coercion a field undergoes (spec.md §4.3).
type FieldType int

const (
	Alphanumeric FieldType = iota
	Integer
	Value2dec
	Rate4dec
	DateField
)

func (t FieldType) String() string {
	switch t {
	case Alphanumeric:
		return "Alphanumeric"
	case Integer:
		return "Integer"
	case Value2dec:
		return "Value2dec"
	case Rate4dec:
		return "Rate4dec"
	case DateField:
		return "DateField"
	default:
		return "Unknown"
	}
}

// Field describes one positional column of a record type.
type Field struct {
	Name     string
	Type     FieldType
	Optional bool
}

// RecordType is the registry entry for one four-character record code.
type RecordType struct {
	Code   string
	Level  int // block-hierarchy depth, presentation only
	Fields []Field

	// Legacy holds the field list for a shorter, older layout of the same
	// code (e.g. M210 with 12 data fields vs. 15), keyed by field count, per
	// spec.md §4.1's "_antigo" synthesized-suffix rule. Nil when the code
	// has no legacy alternative.
	Legacy map[int][]Field
}

// FieldCounts returns the accepted field counts for rt, the current layout
// first followed by any legacy alternative, for use by the coercer when
// validating InvalidFieldCount.
func (rt *RecordType) FieldCounts() []int {
	counts := []int{len(rt.Fields)}
	for n := range rt.Legacy {
		counts = append(counts, n)
	}
	return counts
}

// FieldsFor returns the field list matching the given observed field count,
// and whether the legacy layout was selected.
func (rt *RecordType) FieldsFor(count int) (fields []Field, legacy bool, ok bool) {
	if count == len(rt.Fields) {
		return rt.Fields, false, true
	}
	if rt.Legacy != nil {
		if f, exists := rt.Legacy[count]; exists {
			return f, true, true
		}
	}
	return nil, false, false
}

// Registry is the immutable code -> RecordType table, built once in init().
var Registry map[string]*RecordType

// Lookup returns the record type for code, or nil with ok=false when the
// code is not present — the caller's non-fatal "unknown record" path
// (spec.md §4.4, §4.9).
func Lookup(code string) (*RecordType, bool) {
	rt, ok := Registry[code]
	return rt, ok
}

func init() {
	Registry = buildRegistry()
}
