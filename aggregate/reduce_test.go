package aggregate_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/efdtools/efd-pis-cofins/aggregate"
	"github.com/efdtools/efd-pis-cofins/fiscal"
)

func lineWithValue(cnpj string, month int, value string) *fiscal.Line {
	return &fiscal.Line{
		EstabelecimentoCNPJ: cnpj,
		Year:                2024,
		Month:               month,
		Quarter:             fiscal.QuarterOf(month),
		CST:                 1,
		ValorItem:           mustDec(value),
	}
}

var _ = Describe("Reduce", func() {
	key := func(l *fiscal.Line) (string, bool) { return l.CNPJBase(), true }
	val := func(l *fiscal.Line, k string) aggregate.Value { return aggregate.Value{ValorItem: l.ValorItem} }

	It("collapses equal keys regardless of input order, sequential mode", func() {
		lines := []*fiscal.Line{
			lineWithValue("12345678000190", 1, "10.00"),
			lineWithValue("12345678000190", 2, "5.00"),
		}
		reversed := []*fiscal.Line{lines[1], lines[0]}

		a := aggregate.Reduce(lines, key, val, aggregate.Value.Add)
		b := aggregate.Reduce(reversed, key, val, aggregate.Value.Add)
		Expect(a["12345678"].ValorItem.String()).To(Equal(b["12345678"].ValorItem.String()))
		Expect(a["12345678"].ValorItem.String()).To(Equal("15"))
	})

	It("produces the same totals whether folded sequentially or in parallel", func() {
		var lines []*fiscal.Line
		for i := 0; i < aggregate.LargeModeThreshold+10; i++ {
			lines = append(lines, lineWithValue("12345678000190", (i%12)+1, "1.00"))
		}
		out := aggregate.Reduce(lines, key, val, aggregate.Value.Add)
		Expect(out["12345678"].ValorItem.String()).To(Equal("50010"))
	})
})
