package aggregate_test

import (
	"github.com/shopspring/decimal"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/efdtools/efd-pis-cofins/aggregate"
	"github.com/efdtools/efd-pis-cofins/fiscal"
)

// findRow sums every row matching (cst, nature) — the pipeline may
// legitimately split one conceptual row across several degenerate
// entries differing only in a field the test doesn't care about (e.g.
// operation type), so summing is the order-independent way to assert on
// a total.
func findRow(rows []aggregate.Row, cst int, nature string) (aggregate.Row, bool) {
	var sum aggregate.Row
	found := false
	for _, r := range rows {
		if r.Key.CST != cst || r.Key.Nature != nature {
			continue
		}
		if !found {
			sum = r
		} else {
			sum.Value = sum.Value.Add(r.Value)
		}
		found = true
	}
	return sum, found
}

var _ = Describe("CreditReduction", func() {
	It("apportions a detail line's base into its COD_CRED bucket, then apurates PIS and COFINS credit", func() {
		base := func() *fiscal.Line {
			return &fiscal.Line{
				EstabelecimentoCNPJ: "12345678000190", Year: 2024, Quarter: 1, Month: 1,
				OperationType: fiscal.OpIn, CreditType: 1, CST: 50,
				AliqPIS: mustDec("1.6500"), AliqCOFINS: mustDec("7.6000"),
				ValorBC: mustDec("1000.00"),
			}
		}
		leaf := base()
		detail := base()
		detail.OperationType = fiscal.OpDetailCorrelation
		detail.CreditCode = 101 // hundreds digit 1 -> rbnc_trib
		detail.ValorBC = mustDec("1000.00")

		rows := aggregate.CreditReduction([]*fiscal.Line{leaf, detail}, nil)

		partial, ok := findRow(rows, 910, "101")
		Expect(ok).To(BeTrue())
		Expect(partial.Value.ValorBC.Equal(mustDec("1000.00"))).To(BeTrue())

		pisApurado, ok := findRow(rows, 920, "201")
		Expect(ok).To(BeTrue())
		Expect(pisApurado.Value.ValorBC.Equal(mustDec("1000.00").Mul(mustDec("1.6500")).Div(decimal.NewFromInt(100)))).To(BeTrue())

		cofinsApurado, ok := findRow(rows, 930, "205")
		Expect(ok).To(BeTrue())
		Expect(cofinsApurado.Value.ValorBC.Equal(mustDec("1000.00").Mul(mustDec("7.6000")).Div(decimal.NewFromInt(100)))).To(BeTrue())

		balance, ok := findRow(rows, 920, "301")
		Expect(ok).To(BeTrue())
		Expect(balance.Value.ValorBC.Equal(pisApurado.Value.ValorBC)).To(BeTrue())
	})

	It("folds an increase adjustment into the after-adjustments and balance rows", func() {
		adj := &fiscal.Line{
			EstabelecimentoCNPJ: "12345678000190", Year: 2024, Quarter: 1, Month: 1,
			OperationType: fiscal.OpAdjustIncrease, CreditType: 1, Registro: "M100",
			CreditCode: 101, ValorItem: mustDec("50.00"),
		}
		rows := aggregate.CreditReduction([]*fiscal.Line{adj}, nil)
		row, ok := findRow(rows, 0, "31")
		Expect(ok).To(BeTrue())
		Expect(row.Value.RBNCTrib.Equal(mustDec("50.00"))).To(BeTrue())

		afterAdj, ok := findRow(rows, 920, "211")
		Expect(ok).To(BeTrue())
		Expect(afterAdj.Value.ValorBC.Equal(mustDec("50.00"))).To(BeTrue())

		balance, ok := findRow(rows, 920, "301")
		Expect(ok).To(BeTrue())
		Expect(balance.Value.ValorBC.Equal(mustDec("50.00"))).To(BeTrue())
	})

	It("apportions an inbound line with no COD_CRED sibling by its period's revenue mix", func() {
		cnpj := "12345678000190"
		leaf := &fiscal.Line{
			EstabelecimentoCNPJ: cnpj, Year: 2024, Quarter: 1, Month: 1,
			OperationType: fiscal.OpIn, CreditType: 1, CST: 53, CFOP: 1101,
			ValorBC: mustDec("1000.00"),
		}

		revenue := map[aggregate.PeriodKey]aggregate.RevenueValue{
			{CNPJBase: cnpj, Year: 2024, Quarter: 1, Month: 1, Bucket: aggregate.BucketNonCumTributed}: {Percentage: mustDec("60")},
			{CNPJBase: cnpj, Year: 2024, Quarter: 1, Month: 1, Bucket: aggregate.BucketNonCumExported}: {Percentage: mustDec("30")},
			{CNPJBase: cnpj, Year: 2024, Quarter: 1, Month: 1, Bucket: aggregate.BucketCumulative}:     {Percentage: mustDec("10")},
		}

		rows := aggregate.CreditReduction([]*fiscal.Line{leaf}, revenue)
		row, ok := findRow(rows, 53, "")
		Expect(ok).To(BeTrue())
		Expect(row.Value.RBNCTrib.Equal(mustDec("600.00"))).To(BeTrue())
		Expect(row.Value.RBNCExp.Equal(mustDec("300.00"))).To(BeTrue())
		Expect(row.Value.RBCum.Equal(mustDec("100.00"))).To(BeTrue())
		Expect(row.Value.RBNCNTrib.IsZero()).To(BeTrue())
	})
})

var _ = Describe("Row.SyntheticCST", func() {
	It("flags CST sentinels >= 900 but not real CSTs", func() {
		Expect(aggregate.Row{Key: aggregate.Key{CST: 910}}.SyntheticCST()).To(BeTrue())
		Expect(aggregate.Row{Key: aggregate.Key{CST: 50}}.SyntheticCST()).To(BeFalse())
	})
})
