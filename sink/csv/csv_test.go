package csv_test

import (
	"os"
	"path/filepath"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/shopspring/decimal"

	csvsink "github.com/efdtools/efd-pis-cofins/sink/csv"

	"github.com/efdtools/efd-pis-cofins/fiscal"
)

var _ = Describe("WriteLines", func() {
	It("writes one CSV row per line with a header", func() {
		dir := GinkgoT().TempDir()
		path := filepath.Join(dir, "lines.csv")

		lines := []*fiscal.Line{{
			File: "efd.txt", FileLine: 10,
			EstabelecimentoCNPJ: "12345678000190",
			Year:                2024, Quarter: 1, Month: 1,
			OperationType: fiscal.OpIn, CST: 50, CFOP: 1101,
			ValorItem: decimal.RequireFromString("100.00"),
			ValorBC:   decimal.RequireFromString("100.00"),
			AliqPIS:   decimal.RequireFromString("1.65"),
		}}

		Expect(csvsink.WriteLines(path, lines)).To(Succeed())

		data, err := os.ReadFile(path)
		Expect(err).NotTo(HaveOccurred())
		Expect(string(data)).To(ContainSubstring("cnpj"))
		Expect(string(data)).To(ContainSubstring("12345678000190"))
		Expect(string(data)).To(ContainSubstring("100"))
	})
})
