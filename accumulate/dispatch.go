package accumulate

import "fmt"

func sprintfLine(file string, line int, format string, args ...any) string {
	return fmt.Sprintf("%s:%d: "+format, append([]any{file, line}, args...)...)
}

// BlockOpeners updates State.CurrentCNPJ (spec.md §4.5).
var BlockOpeners = map[string]bool{
	"A010": true, "C010": true, "D010": true, "F010": true, "I010": true,
}

// HeaderFamilies are the codes the accumulator retains as "most recent
// parent header" registers (spec.md §4.5).
var HeaderFamilies = map[string]bool{
	"C100": true, "C180": true, "C190": true, "C395": true, "C400": true,
	"C405": true, "C490": true, "C500": true, "C600": true, "C860": true,
	"D100": true, "D200": true, "D500": true, "D600": true,
	"M100": true, "M500": true,
}

// ParentOf maps a leaf (or correlation-source) record code to the header
// family it reads context from (spec.md §4.5, §4.6).
var ParentOf = map[string]string{
	"C170": "C100",
	"A170": "A100",
	"C181": "C180",
	"C191": "C190", "C195": "C190", "C198": "C190", "C199": "C190",
	"C381": "C380",
	"C481": "C480",
	"C491": "C490", "C495": "C490", "C499": "C490",
	"C501": "C500",
	"C601": "C600",
	"C870": "C860",
	"D101": "D100",
	"D201": "D200",
	"D501": "D500",
	"D601": "D600", "D609": "D600",
	"M105": "M100",
	"M505": "M500",
}

// CorrelationSources are the record codes that seed the PIS<->COFINS
// correlation map (spec.md §4.5).
var CorrelationSources = map[string]bool{
	"C181": true, "C191": true, "C381": true, "C481": true, "C491": true,
	"C501": true, "C601": true, "D101": true, "D201": true, "D501": true, "D601": true,
}

// DeferredFamilies are the header families whose deferred children (late
// C198/C199/C499/D609 records) retroactively merge into already-emitted
// enriched lines (spec.md §4.5).
var DeferredFamilies = map[string]bool{
	"C190": true, "C490": true, "D600": true,
}
