package refdata_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/efdtools/efd-pis-cofins/refdata"
)

var _ = Describe("refdata", func() {
	It("formats known CST codes with a zero-padded prefix", func() {
		Expect(refdata.CST(1)).To(Equal("01 - Operação Tributável com Alíquota Básica"))
		Expect(refdata.CST(56)).To(ContainSubstring("Vinculada a Receitas Tributadas e Não-Tributadas"))
	})

	It("returns empty string for unknown codes", func() {
		Expect(refdata.CST(12345)).To(BeEmpty())
		Expect(refdata.CreditType(-1)).To(BeEmpty())
		Expect(refdata.ApportionmentType(0)).To(BeEmpty())
		Expect(refdata.CreditBaseNature(19)).To(BeEmpty())
	})

	It("formats credit types and apportionment types", func() {
		Expect(refdata.CreditType(99)).To(Equal("99 - Outros"))
		Expect(refdata.ApportionmentType(3)).To(Equal("3 - Receita Bruta Não Cumulativa: de Exportação"))
	})

	It("formats both item-level and aggregate-stage base-of-calculation natures", func() {
		Expect(refdata.CreditBaseNature(1)).To(Equal("01 - Aquisição de Bens para Revenda"))
		Expect(refdata.CreditBaseNature(301)).To(ContainSubstring("Passível de Desconto ou Ressarcimento"))
	})

	It("formats CFOP codes with a four-digit zero-padded prefix", func() {
		Expect(refdata.CFOP(1102)).To(Equal("1102 - Compra para comercialização"))
		Expect(refdata.CFOP(9999)).To(BeEmpty())
	})
})
