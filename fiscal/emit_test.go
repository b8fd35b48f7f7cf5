package fiscal_test

import (
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/efdtools/efd-pis-cofins/accumulate"
	"github.com/efdtools/efd-pis-cofins/fiscal"
	"github.com/efdtools/efd-pis-cofins/parser"
)

func mustCoerce(code string, fields []string) *parser.Record {
	rec, err := parser.Coerce("f.txt", 1, code, fields)
	if err != nil {
		panic(err)
	}
	return rec
}

var _ = Describe("Emit", func() {
	It("merges header, leaf, and directory lookups into one enriched line", func() {
		s := accumulate.NewState("f.txt")
		s.Feed(mustCoerce("C010", []string{"12345678000190"}))
		s.Feed(mustCoerce("0140", []string{"EST1", "ACME LTDA", "12345678000190", "", "", "", ""}))
		s.Feed(mustCoerce("0200", []string{"ITEM1", "Widget", "", "", "", "0", "", ""}))
		s.Feed(mustCoerce("C100", []string{
			"0", "0", "", "55", "0", "", "123", "", "01012024", "02012024", "1000,00", "", "", "", "",
		}))

		leaf := mustCoerce("C170", []string{
			"1", "ITEM1", "", "1,00000", "UN", "160,00", "", "5656", "",
			"", "", "", "50", "160,00", "1,65", "2,64", "7,60", "12,16", "", "",
		})

		l := fiscal.Emit(s, leaf)
		Expect(l.EstabelecimentoCNPJ).To(Equal("12345678000190"))
		Expect(l.EstabelecimentoNome).To(Equal("ACME LTDA"))
		Expect(l.DescrItem).To(Equal("Widget"))
		Expect(l.NumDoc).To(Equal(123))
		Expect(l.CST).To(Equal(50))
		Expect(l.OperationType).To(Equal(fiscal.OpIn))
		Expect(l.CreditType).To(Equal(1)) // CST 50, basic rates, origin 0
	})

	It("derives operation type from CST when IND_OPER is absent", func() {
		s := accumulate.NewState("f.txt")
		leaf := mustCoerce("C195", []string{"1", "5656", "200,00", "200,00", ""})
		l := fiscal.Emit(s, leaf)
		Expect(l.OperationType).To(Equal(fiscal.OpOut))
	})

	It("repairs a C195 leaf's PIS rate/value from its sibling C191 via the weak correlation key", func() {
		s := accumulate.NewState("f.txt")
		s.Feed(mustCoerce("C191", []string{"56", "1102", "500,00", "500,00", "1,65", "8,25", ""}))

		// Same CST/VL_ITEM as the C191 above, but a disagreeing CFOP — only
		// the weak key ("CST_VL_ITEM") matches.
		leaf := mustCoerce("C195", []string{"56", "9999", "500,00", "500,00", ""})
		l := fiscal.Emit(s, leaf)

		Expect(l.AliqPIS.String()).To(Equal("1.65"))
		Expect(l.ValorPIS.String()).To(Equal("8.25"))
		Expect(s.Messages).To(ContainElement(ContainSubstring("weak correlation key")))
	})
})

var _ = Describe("EmitAdjustmentLines", func() {
	It("emits one line per non-zero M100 adjustment component", func() {
		s := accumulate.NewState("f.txt")
		m100 := mustCoerce("M100", []string{
			"101", "0", "1000,00", "1,65", "16,50", "50,00", "30,00", "", "", "", "", "", "",
		})
		lines := fiscal.EmitAdjustmentLines(s, m100, time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC))
		Expect(lines).To(HaveLen(2))
		Expect(lines[0].OperationType).To(Equal(fiscal.OpAdjustIncrease))
		Expect(lines[0].ValorBC.String()).To(Equal("50"))
		Expect(lines[1].OperationType).To(Equal(fiscal.OpAdjustDecrease))
		Expect(lines[1].ValorBC.String()).To(Equal("-30"))
	})
})

var _ = Describe("EmitPriorPeriodDiscount", func() {
	It("emits sentinel 6 only when the origin period differs and the value is positive", func() {
		s := accumulate.NewState("f.txt")
		rec := mustCoerce("1100", []string{"012024", "", "", "", "", "50,00", "101"})
		l := fiscal.EmitPriorPeriodDiscount(s, rec, time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC))
		Expect(l).NotTo(BeNil())
		Expect(l.OperationType).To(Equal(fiscal.OpDiscountPriorPer))
		Expect(l.ValorBC.String()).To(Equal("-50"))
	})

	It("emits nothing when the origin period matches the report period", func() {
		s := accumulate.NewState("f.txt")
		rec := mustCoerce("1100", []string{"022024", "", "", "", "", "50,00", "101"})
		l := fiscal.EmitPriorPeriodDiscount(s, rec, time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC))
		Expect(l).To(BeNil())
	})
})
