package money_test

import (
	"testing"

	"github.com/shopspring/decimal"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/efdtools/efd-pis-cofins/money"
)

func TestMoney(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "money suite")
}

var _ = Describe("ParseBRL", func() {
	DescribeTable("Brazilian-locale decimal strings",
		func(raw string, want string) {
			d, err := money.ParseBRL(raw)
			Expect(err).NotTo(HaveOccurred())
			Expect(d.Equal(decimal.RequireFromString(want))).To(BeTrue())
		},
		Entry("thousands and comma", "1.234,56", "1234.56"),
		Entry("plain comma", "160,00", "160.00"),
		Entry("leading sign", "-1,65", "-1.65"),
		Entry("dot only no comma", "500.00", "50000"),
	)

	It("rejects multiple decimal separators", func() {
		_, err := money.ParseBRL("1,234,56")
		Expect(err).To(HaveOccurred())
	})

	It("rejects an embedded sign", func() {
		_, err := money.ParseBRL("1-234,56")
		Expect(err).To(HaveOccurred())
	})
})

var _ = Describe("RoundValue/RoundRate", func() {
	It("rounds monetary values to 2 places half-even", func() {
		Expect(money.RoundValue(decimal.RequireFromString("1.005")).String()).To(Equal("1"))
		Expect(money.RoundValue(decimal.RequireFromString("1.015")).String()).To(Equal("1.02"))
	})

	It("rounds rates to 4 places", func() {
		Expect(money.RoundRate(decimal.RequireFromString("1.65001")).String()).To(Equal("1.65"))
	})
})

var _ = Describe("IsNegligible", func() {
	It("flags values below the small threshold", func() {
		Expect(money.IsNegligible(decimal.RequireFromString("0.004"))).To(BeTrue())
		Expect(money.IsNegligible(decimal.RequireFromString("-0.004"))).To(BeTrue())
		Expect(money.IsNegligible(decimal.RequireFromString("0.005"))).To(BeFalse())
	})
})
