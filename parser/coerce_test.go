package parser_test

import (
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/efdtools/efd-pis-cofins/parser"
)

var _ = Describe("Coerce", func() {
	It("types every field of a well-formed 0000", func() {
		fields := []string{
			"0140", "0", "", "", "01012024", "31012024", "ACME LTDA", "12345678000190", "", "", "", "", "",
		}
		rec, err := parser.Coerce("f.txt", 1, "0000", fields)
		Expect(err).NotTo(HaveOccurred())
		Expect(rec.Code).To(Equal("0000"))
		Expect(rec.Str("NOME")).To(Equal("ACME LTDA"))
		Expect(rec.Str("CNPJ")).To(Equal("12345678000190"))

		dtIni, ok := rec.Get("DT_INI")
		Expect(ok).To(BeTrue())
		Expect(dtIni.Date()).To(Equal(time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)))
	})

	It("selects the legacy M210 layout by field count", func() {
		fields := []string{"01", "10000,00", "10000,00", "1,65", "", "", "165,00", "0", "0", "0", "0", "165,00"}
		rec, err := parser.Coerce("f.txt", 5, "M210", fields)
		Expect(err).NotTo(HaveOccurred())
		Expect(rec.Legacy).To(BeTrue())

		aliq, ok := rec.Get("ALIQ_PIS")
		Expect(ok).To(BeTrue())
		Expect(aliq.Dec().String()).To(Equal("1.65"))
	})

	It("nulls an empty optional field", func() {
		fields := []string{"01", "10000,00", "10000,00", "1,65", "", "", "165,00", "0", "0", "0", "0", "165,00"}
		rec, err := parser.Coerce("f.txt", 5, "M610", fields)
		Expect(err).NotTo(HaveOccurred())

		quant, ok := rec.Get("QUANT_BC_PIS")
		Expect(ok).To(BeFalse(), "12-field legacy layout has no QUANT_BC_PIS at all")
		_ = quant

		acres, ok := rec.Get("VL_AJUS_ACRES")
		Expect(ok).To(BeTrue())
		Expect(acres.IsNull()).To(BeTrue())
	})

	It("rejects an unregistered field count as InvalidFieldCount", func() {
		_, err := parser.Coerce("f.txt", 9, "0001", []string{"0", "extra"})
		Expect(err).To(HaveOccurred())
		var serr *parser.StructureError
		Expect(err).To(BeAssignableToTypeOf(serr))
	})

	It("reports ErrUnknownRecord for a registry miss", func() {
		_, err := parser.Coerce("f.txt", 1, "Z999", []string{"a"})
		Expect(err).To(MatchError(parser.ErrUnknownRecord))
	})

	It("coerces MMYYYY period-of-accrual fields with day set to 1", func() {
		fields := []string{"012024", "", "", "", "", "50,00", "0"}
		rec, err := parser.Coerce("f.txt", 20, "1100", fields)
		Expect(err).NotTo(HaveOccurred())
		per, ok := rec.Get("PER_APU_CRED")
		Expect(ok).To(BeTrue())
		Expect(per.Date()).To(Equal(time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)))
	})

	It("rejects a malformed decimal", func() {
		fields := []string{"01", "10000,00", "10000,00", "1,6,5", "", "", "165,00", "0", "0", "0", "0", "165,00"}
		_, err := parser.Coerce("f.txt", 5, "M210", fields)
		Expect(err).To(HaveOccurred())
	})
})
