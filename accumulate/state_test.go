package accumulate_test

import (
	"testing"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/efdtools/efd-pis-cofins/accumulate"
	"github.com/efdtools/efd-pis-cofins/parser"
)

func TestAccumulate(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "accumulate suite")
}

func mustCoerce(code string, fields []string) *parser.Record {
	rec, err := parser.Coerce("f.txt", 1, code, fields)
	if err != nil {
		panic(err)
	}
	return rec
}

var _ = Describe("State.Feed", func() {
	It("populates the participant directory and its reverse indexes", func() {
		s := accumulate.NewState("f.txt")
		s.Feed(mustCoerce("0150", []string{"001", "ACME LTDA", "", "12345678000190", "", ""}))

		p, ok := s.Participants["001"]
		Expect(ok).To(BeTrue())
		Expect(p.Name).To(Equal("ACME LTDA"))
		Expect(s.ReverseCNPJ["12345678000190"]).To(Equal("ACME LTDA"))
	})

	It("tracks the current establishment CNPJ across block openers", func() {
		s := accumulate.NewState("f.txt")
		s.Feed(mustCoerce("C010", []string{"98765432000111"}))
		Expect(s.CurrentCNPJ).To(Equal("98765432000111"))
	})

	It("replaces the header register in place and clears deferred tracking", func() {
		s := accumulate.NewState("f.txt")
		s.TrackDeferred("C190", 10)
		s.Feed(mustCoerce("C190", []string{"01", "0", "1000,00"}))

		_, ok := s.Headers["C190"]
		Expect(ok).To(BeTrue())
		Expect(s.Deferred["C190"]).To(BeEmpty())
	})

	It("resolves a PIS/COFINS correlation by the weak key", func() {
		s := accumulate.NewState("f.txt")
		s.Feed(mustCoerce("C191", []string{"50", "1000", "500,00", "200,00", "1,65", "8,25", ""}))

		c, ok, weak := s.ResolveCorrelation("50", "500", "", "")
		Expect(ok).To(BeTrue())
		Expect(weak).To(BeTrue())
		Expect(c.AliqPIS).To(Equal("1.65"))
		Expect(c.ValorPIS).To(Equal("8.25"))
	})

	It("does not correlate when ALIQ_PIS or VL_PIS is absent", func() {
		s := accumulate.NewState("f.txt")
		s.Feed(mustCoerce("C191", []string{"50", "1000", "500,00", "", "", "", ""}))
		_, ok, _ := s.ResolveCorrelation("50", "500", "", "")
		Expect(ok).To(BeFalse())
	})

	It("prefers the strong key over the weak key when both match", func() {
		s := accumulate.NewState("f.txt")
		s.Feed(mustCoerce("C191", []string{"50", "1000", "500,00", "200,00", "1,65", "8,25", ""}))

		_, ok, weak := s.ResolveCorrelation("50", "500", "1000", "")
		Expect(ok).To(BeTrue())
		Expect(weak).To(BeFalse())
	})
})
