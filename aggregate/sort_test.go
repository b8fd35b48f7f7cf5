package aggregate_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/efdtools/efd-pis-cofins/aggregate"
)

var _ = Describe("SortRows", func() {
	It("orders by CNPJ-base, period, credit type, operation type, CST, then nature", func() {
		rows := []aggregate.Row{
			{Key: aggregate.Key{CNPJBase: "b", Year: 2024, Month: 2}},
			{Key: aggregate.Key{CNPJBase: "a", Year: 2024, Month: 1}},
			{Key: aggregate.Key{CNPJBase: "a", Year: 2024, Month: 1, CST: 5}},
		}
		aggregate.SortRows(rows)
		Expect(rows[0].Key.CNPJBase).To(Equal("a"))
		Expect(rows[0].Key.CST).To(Equal(0))
		Expect(rows[1].Key.CST).To(Equal(5))
		Expect(rows[2].Key.CNPJBase).To(Equal("b"))
	})
})
