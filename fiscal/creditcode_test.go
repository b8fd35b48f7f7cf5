package fiscal_test

import (
	"testing"

	"github.com/shopspring/decimal"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/efdtools/efd-pis-cofins/fiscal"
)

func TestFiscal(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "fiscal suite")
}

var _ = Describe("DeriveCreditType", func() {
	It("returns 1 for the basic-aliquot domestic credit", func() {
		ct, ok := fiscal.DeriveCreditType(50, fiscal.BasicPIS, fiscal.BasicCOFINS, true, 0, 0, false)
		Expect(ok).To(BeTrue())
		Expect(ct).To(Equal(1))
	})

	It("returns 2 for a differentiated-aliquot domestic credit", func() {
		ct, ok := fiscal.DeriveCreditType(50, decimal.NewFromFloat(2.0), decimal.NewFromFloat(9.0), true, 0, 0, false)
		Expect(ok).To(BeTrue())
		Expect(ct).To(Equal(2))
	})

	It("returns 6 for an agro-presumed rate pair", func() {
		pis := decimal.NewFromFloat(0.20).Mul(fiscal.BasicPIS).Round(4)
		cof := decimal.NewFromFloat(0.20).Mul(fiscal.BasicCOFINS).Round(4)
		ct, ok := fiscal.DeriveCreditType(60, pis, cof, true, 0, 0, false)
		Expect(ok).To(BeTrue())
		Expect(ct).To(Equal(6))
	})

	It("returns 7 for a non-agro presumed credit", func() {
		ct, ok := fiscal.DeriveCreditType(60, decimal.NewFromFloat(0.5), decimal.NewFromFloat(1.0), true, 0, 0, false)
		Expect(ok).To(BeTrue())
		Expect(ct).To(Equal(7))
	})

	It("returns 8 for an import-origin credit regardless of CST", func() {
		ct, ok := fiscal.DeriveCreditType(50, fiscal.BasicPIS, fiscal.BasicCOFINS, true, 1, 0, false)
		Expect(ok).To(BeTrue())
		Expect(ct).To(Equal(8))
	})

	It("overrides with COD_CRED mod 100 when in [101,499]", func() {
		ct, ok := fiscal.DeriveCreditType(50, fiscal.BasicPIS, fiscal.BasicCOFINS, true, 0, 308, true)
		Expect(ok).To(BeTrue())
		Expect(ct).To(Equal(8))
	})

	It("does not override outside [101,499]", func() {
		ct, ok := fiscal.DeriveCreditType(50, fiscal.BasicPIS, fiscal.BasicCOFINS, true, 0, 99, true)
		Expect(ok).To(BeTrue())
		Expect(ct).To(Equal(1))
	})

	It("reports unresolved when rates are absent", func() {
		_, ok := fiscal.DeriveCreditType(50, decimal.Zero, decimal.Zero, false, 0, 0, false)
		Expect(ok).To(BeFalse())
	})
})
