package aggregate_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/efdtools/efd-pis-cofins/aggregate"
	"github.com/efdtools/efd-pis-cofins/fiscal"
)

var _ = Describe("ConsolidateCST", func() {
	It("sums per-CST rows and appends the outbound/inbound sentinel totals", func() {
		out1 := &fiscal.Line{
			EstabelecimentoCNPJ: "12345678000190", Year: 2024, Quarter: 1, Month: 1,
			OperationType: fiscal.OpOut, CST: 1, ValorItem: mustDec("100.00"),
		}
		out2 := &fiscal.Line{
			EstabelecimentoCNPJ: "12345678000190", Year: 2024, Quarter: 1, Month: 1,
			OperationType: fiscal.OpOut, CST: 4, ValorItem: mustDec("50.00"),
		}
		in1 := &fiscal.Line{
			EstabelecimentoCNPJ: "12345678000190", Year: 2024, Quarter: 1, Month: 1,
			OperationType: fiscal.OpIn, CST: 50, ValorItem: mustDec("20.00"),
		}
		ignored := &fiscal.Line{
			EstabelecimentoCNPJ: "12345678000190", Year: 2024, Quarter: 1, Month: 1,
			OperationType: fiscal.OpAdjustIncrease, CST: 1, ValorItem: mustDec("999.00"),
		}

		out := aggregate.ConsolidateCST([]*fiscal.Line{out1, out2, in1, ignored})

		outboundSentinel := aggregate.CSTKey{CNPJBase: "12345678", Year: 2024, Quarter: 1, Month: 1, CST: aggregate.CSTSentinelOutbound}
		inboundSentinel := aggregate.CSTKey{CNPJBase: "12345678", Year: 2024, Quarter: 1, Month: 1, CST: aggregate.CSTSentinelInbound}

		Expect(out[outboundSentinel].ValorItem.Equal(mustDec("150.00"))).To(BeTrue())
		Expect(out[inboundSentinel].ValorItem.Equal(mustDec("20.00"))).To(BeTrue())
	})
})
