package efd_test

import (
	"context"
	"os"
	"path/filepath"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/efdtools/efd-pis-cofins/efd"
)

func writeFixture(lines ...string) string {
	dir := GinkgoT().TempDir()
	path := filepath.Join(dir, "fixture.txt")
	content := ""
	for _, l := range lines {
		content += l + "\n"
	}
	Expect(os.WriteFile(path, []byte(content), 0o644)).To(Succeed())
	return path
}

var _ = Describe("Run", func() {
	It("parses one file into an enriched C170 line and consolidates its CST", func() {
		path := writeFixture(
			"|0000|0013|0|||01012024|31012024|ACME LTDA|12345678000190|SP|||||",
			"|0140|1|ACME FILIAL|12345678000190|SP||||",
			"|C100|1|0||55|0||100||05012024||1000,00|||||",
			"|C170|1|ITEM1||||1000,00||5102|||||1|1000,00|1,65|16,50|7,60|76,00|||",
			"|9999|4|",
		)

		result, err := efd.Run(context.Background(), efd.Options{Files: []string{path}})
		Expect(err).NotTo(HaveOccurred())
		Expect(result.Lines).To(HaveLen(1))

		line := result.Lines[0]
		Expect(line.Registro).To(Equal("C170"))
		Expect(line.CST).To(Equal(1))
		Expect(line.EstabelecimentoCNPJ).To(Equal("12345678000190"))
		Expect(line.ValorItem.String()).To(Equal("1000"))

		outboundSentinel := result.CST
		Expect(outboundSentinel).NotTo(BeEmpty())
	})

	It("joins a deferred C199 adjustment into its earlier C195 line", func() {
		path := writeFixture(
			"|0000|0013|0|||01012024|31012024|ACME LTDA|12345678000190|SP|||||",
			"|0140|1|ACME FILIAL|12345678000190|SP||||",
			"|C190|55|0|2000,00|",
			"|C195|1||1500,00|||",
			"|C198|001/2024|0|",
			"|C199|1|50,00|",
			"|9999|6|",
		)

		result, err := efd.Run(context.Background(), efd.Options{Files: []string{path}})
		Expect(err).NotTo(HaveOccurred())
		Expect(result.Lines).NotTo(BeEmpty())

		var found bool
		for _, l := range result.Lines {
			if l.Registro == "C195" {
				found = true
				Expect(l.Complementar).To(Equal("001/2024"))
				Expect(l.ValorBC.String()).To(Equal("50"))
			}
		}
		Expect(found).To(BeTrue())
	})

	It("reports a per-file error without aborting other files", func() {
		good := writeFixture(
			"|0000|0013|0|||01012024|31012024|ACME LTDA|12345678000190|SP|||||",
			"|9999|1|",
		)
		bad := writeFixture("|0000|only|two|fields|")

		result, err := efd.Run(context.Background(), efd.Options{Files: []string{good, bad}})
		Expect(err).To(HaveOccurred())
		Expect(result.Files).To(HaveLen(2))
		Expect(result.Files[0].Err).NotTo(HaveOccurred())
		Expect(result.Files[1].Err).To(HaveOccurred())
	})
})
