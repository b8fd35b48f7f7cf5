package parser_test

import (
	"testing"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/efdtools/efd-pis-cofins/parser"
)

func TestParser(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "parser suite")
}

var _ = Describe("Tokenize", func() {
	It("splits a well-shaped line and upper-cases the code", func() {
		code, fields, ok := parser.Tokenize([]byte("|c170|1|ITEM1|  1,00000 |UN|160,00||"))
		Expect(ok).To(BeTrue())
		Expect(code).To(Equal("C170"))
		Expect(fields).To(Equal([]string{"1", "ITEM1", "1,00000", "UN", "160,00", ""}))
	})

	It("collapses internal whitespace in a field", func() {
		_, fields, ok := parser.Tokenize([]byte("|0150|001|ACME   TRADING   CO|"))
		Expect(ok).To(BeTrue())
		Expect(fields).To(Equal([]string{"001", "ACME TRADING CO"}))
	})

	It("strips a trailing CR", func() {
		code, fields, ok := parser.Tokenize([]byte("|0001|0|\r"))
		Expect(ok).To(BeTrue())
		Expect(code).To(Equal("0001"))
		Expect(fields).To(Equal([]string{"0"}))
	})

	DescribeTable("silently rejects ill-shaped lines",
		func(line string) {
			_, _, ok := parser.Tokenize([]byte(line))
			Expect(ok).To(BeFalse())
		},
		Entry("blank line", ""),
		Entry("no leading pipe", "C170|1|ITEM1|"),
		Entry("too short", "|C1"),
		Entry("code not alnum", "|C1-0|1|"),
		Entry("no trailing pipe", "|C170|1|ITEM1"),
	)
})
