package aggregate_test

import (
	"github.com/shopspring/decimal"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/efdtools/efd-pis-cofins/aggregate"
)

func mustDec(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

var _ = Describe("Value", func() {
	It("adds element-wise", func() {
		a := aggregate.Value{ValorItem: mustDec("10.00"), ValorBC: mustDec("10.00"), RBNCTrib: mustDec("1.00")}
		b := aggregate.Value{ValorItem: mustDec("5.00"), ValorBC: mustDec("5.00"), RBCum: mustDec("2.00")}
		sum := a.Add(b)
		Expect(sum.ValorItem.String()).To(Equal("15"))
		Expect(sum.RBNCTrib.String()).To(Equal("1"))
		Expect(sum.RBCum.String()).To(Equal("2"))
	})

	It("scales every field by a factor", func() {
		v := aggregate.Value{ValorBC: mustDec("100.00")}
		scaled := v.Scale(mustDec("0.5"))
		Expect(scaled.ValorBC.String()).To(Equal("50"))
	})

	It("reports IsZero only when every field is zero", func() {
		Expect(aggregate.Value{}.IsZero()).To(BeTrue())
		Expect(aggregate.Value{ValorItem: mustDec("1")}.IsZero()).To(BeFalse())
	})
})
