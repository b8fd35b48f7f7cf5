package registro_test

import (
	"testing"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/efdtools/efd-pis-cofins/registro"
)

func TestRegistro(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "registro suite")
}

var mustHave = []string{
	"0000", "0001", "0140", "0150", "0200", "0400", "0450", "0500",
	"A010", "A100", "A170",
	"C010", "C100", "C170", "C180", "C181", "C190", "C191", "C195", "C198", "C199",
	"C380", "C381", "C395", "C400", "C405", "C480", "C481", "C490", "C491", "C495", "C499",
	"C500", "C501", "C600", "C601", "C860", "C870",
	"D010", "D100", "D101", "D200", "D201", "D350", "D500", "D501", "D600", "D601", "D609",
	"F010", "F100", "F130", "F200", "F800",
	"I010", "I100",
	"M100", "M105", "M200", "M210", "M500", "M505", "M600", "M610",
	"1010", "1011", "1100", "1500",
	"9900", "9999",
}

var _ = Describe("Registry", func() {
	It("knows every record code the pipeline dispatches on", func() {
		for _, code := range mustHave {
			_, ok := registro.Lookup(code)
			Expect(ok).To(BeTrue(), "missing record type %s", code)
		}
	})

	It("rejects unknown codes without panicking", func() {
		_, ok := registro.Lookup("Z999")
		Expect(ok).To(BeFalse())
	})

	It("exposes FieldCounts including the legacy alternative", func() {
		rt, ok := registro.Lookup("M210")
		Expect(ok).To(BeTrue())
		Expect(rt.FieldCounts()).To(ContainElements(len(rt.Fields), 12))
	})

	It("selects the legacy layout by field count via FieldsFor", func() {
		rt, ok := registro.Lookup("M610")
		Expect(ok).To(BeTrue())

		fields, legacy, ok := rt.FieldsFor(12)
		Expect(ok).To(BeTrue())
		Expect(legacy).To(BeTrue())
		Expect(fields).To(HaveLen(12))

		fields, legacy, ok = rt.FieldsFor(len(rt.Fields))
		Expect(ok).To(BeTrue())
		Expect(legacy).To(BeFalse())
		Expect(fields).To(HaveLen(len(rt.Fields)))

		_, _, ok = rt.FieldsFor(999)
		Expect(ok).To(BeFalse())
	})

	It("gives M500/M600/M505/M610 the same shapes as their PIS counterparts", func() {
		m100, _ := registro.Lookup("M100")
		m500, _ := registro.Lookup("M500")
		Expect(m500.Fields).To(HaveLen(len(m100.Fields)))

		m210, _ := registro.Lookup("M210")
		m610, _ := registro.Lookup("M610")
		Expect(m610.Fields).To(HaveLen(len(m210.Fields)))
		Expect(m610.FieldCounts()).To(ContainElements(12))
	})
})
