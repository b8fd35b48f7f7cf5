package parser_test

import (
	"context"
	"os"
	"path/filepath"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/efdtools/efd-pis-cofins/parser"
)

var _ = Describe("ReadFile", func() {
	writeFixture := func(lines ...string) string {
		dir := GinkgoT().TempDir()
		path := filepath.Join(dir, "fixture.txt")
		content := ""
		for _, l := range lines {
			content += l + "\n"
		}
		Expect(os.WriteFile(path, []byte(content), 0o644)).To(Succeed())
		return path
	}

	It("streams records in order and stops at 9999", func() {
		path := writeFixture(
			"|0000|0140|0|||01012024|31012024|ACME LTDA|12345678000190||||||",
			"|0001|0|",
			"|ZZZZ|garbage|",
			"|9999|2|",
			"|0001|1|",
		)

		out := make(chan *parser.Record, 10)
		err := parser.ReadFile(context.Background(), path, out, nil)
		Expect(err).NotTo(HaveOccurred())
		close(out)

		var codes []string
		for rec := range out {
			codes = append(codes, rec.Code)
		}
		Expect(codes).To(Equal([]string{"0000", "0001"}))
	})

	It("publishes progress up to the total file size", func() {
		path := writeFixture("|0001|0|", "|9999|1|")

		out := make(chan *parser.Record, 10)
		progress := make(chan parser.Progress, 10)
		err := parser.ReadFile(context.Background(), path, out, progress)
		Expect(err).NotTo(HaveOccurred())
		close(progress)

		var last parser.Progress
		for p := range progress {
			last = p
		}
		Expect(last.BytesRead).To(Equal(last.TotalBytes))
	})

	It("aborts on a structure error", func() {
		path := writeFixture("|0001|notanumber|")

		out := make(chan *parser.Record, 10)
		err := parser.ReadFile(context.Background(), path, out, nil)
		Expect(err).To(HaveOccurred())
	})
})
