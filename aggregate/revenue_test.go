package aggregate_test

import (
	"github.com/shopspring/decimal"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/efdtools/efd-pis-cofins/aggregate"
	"github.com/efdtools/efd-pis-cofins/fiscal"
)

var _ = Describe("SegregateRevenue", func() {
	It("buckets a cumulative-regime line into Cumulative and Total", func() {
		l := &fiscal.Line{
			EstabelecimentoCNPJ: "12345678000190", Year: 2024, Month: 1, Quarter: 1,
			CST: 1, ValorItem: mustDec("1000.00"),
			AliqPIS: mustDec("0.65"), AliqCOFINS: mustDec("3.00"),
		}
		out := aggregate.SegregateRevenue([]*fiscal.Line{l})

		cumKey := aggregate.PeriodKey{CNPJBase: "12345678", Year: 2024, Quarter: 1, Month: 1, Bucket: aggregate.BucketCumulative}
		totKey := aggregate.PeriodKey{CNPJBase: "12345678", Year: 2024, Quarter: 1, Month: 1, Bucket: aggregate.BucketTotal}
		Expect(out[cumKey].Value.String()).To(Equal("1000"))
		Expect(out[totKey].Value.String()).To(Equal("1000"))
		Expect(out[cumKey].Percentage.Equal(decimal.NewFromInt(100))).To(BeTrue())
	})

	It("splits non-cumulative tributed and non-tributed CSTs into distinct buckets", func() {
		tributed := &fiscal.Line{
			EstabelecimentoCNPJ: "12345678000190", Year: 2024, Month: 1, Quarter: 1,
			CST: 1, ValorItem: mustDec("600.00"), AliqPIS: mustDec("1.65"), AliqCOFINS: mustDec("7.60"),
		}
		nonTributed := &fiscal.Line{
			EstabelecimentoCNPJ: "12345678000190", Year: 2024, Month: 1, Quarter: 1,
			CST: 4, CFOP: 5101, ValorItem: mustDec("400.00"), AliqPIS: mustDec("1.65"), AliqCOFINS: mustDec("7.60"),
		}
		out := aggregate.SegregateRevenue([]*fiscal.Line{tributed, nonTributed})

		totKey := aggregate.PeriodKey{CNPJBase: "12345678", Year: 2024, Quarter: 1, Month: 1, Bucket: aggregate.BucketTotal}
		tribKey := aggregate.PeriodKey{CNPJBase: "12345678", Year: 2024, Quarter: 1, Month: 1, Bucket: aggregate.BucketNonCumTributed}
		ntribKey := aggregate.PeriodKey{CNPJBase: "12345678", Year: 2024, Quarter: 1, Month: 1, Bucket: aggregate.BucketNonCumNonTributed}

		Expect(out[totKey].Value.String()).To(Equal("1000"))
		Expect(out[tribKey].Percentage.Equal(decimal.NewFromInt(60))).To(BeTrue())
		Expect(out[ntribKey].Percentage.Equal(decimal.NewFromInt(40))).To(BeTrue())
	})

	It("drops zero-value rows from the output", func() {
		zero := &fiscal.Line{
			EstabelecimentoCNPJ: "12345678000190", Year: 2024, Month: 1, Quarter: 1,
			CST: 1, ValorItem: mustDec("0.00"),
		}
		out := aggregate.SegregateRevenue([]*fiscal.Line{zero})
		Expect(out).To(BeEmpty())
	})
})
