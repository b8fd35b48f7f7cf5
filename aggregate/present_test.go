package aggregate_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/efdtools/efd-pis-cofins/aggregate"
)

var _ = Describe("Present", func() {
	It("nulls negligible fields and rounds the rest", func() {
		v := aggregate.Value{ValorBC: mustDec("0.001"), ValorItem: mustDec("10.456")}
		p := aggregate.Present(v)
		Expect(p.ValorBC).To(BeNil())
		Expect(p.ValorItem).NotTo(BeNil())
		Expect(p.ValorItem.String()).To(Equal("10.46"))
	})
})
