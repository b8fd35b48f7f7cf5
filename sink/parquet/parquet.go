// Package parquet writes the enriched-line table of an efd.Result to a
// local Parquet file using xitongsys/parquet-go, grounded in the same
// writer/local-file-source pairing and ZSTD-compression settings the
// teacher uses for its Zacks screener archive.
package parquet

import (
	"fmt"

	"github.com/xitongsys/parquet-go-source/local"
	"github.com/xitongsys/parquet-go/parquet"
	"github.com/xitongsys/parquet-go/writer"

	"github.com/efdtools/efd-pis-cofins/fiscal"
)

// LineRecord is the Parquet-tagged projection of fiscal.Line. Monetary
// fields are kept as their full-precision decimal string rather than
// DOUBLE, matching spec.md §4.3's no-binary-floating-point rule for every
// monetary field, including at rest.
type LineRecord struct {
	File                string `parquet:"name=file, type=BYTE_ARRAY, convertedtype=UTF8, encoding=PLAIN_DICTIONARY"`
	FileLine            int32  `parquet:"name=file_line, type=INT32"`
	EstabelecimentoCNPJ string `parquet:"name=cnpj, type=BYTE_ARRAY, convertedtype=UTF8, encoding=PLAIN_DICTIONARY"`
	Year                int32  `parquet:"name=year, type=INT32"`
	Quarter             int32  `parquet:"name=quarter, type=INT32"`
	Month               int32  `parquet:"name=month, type=INT32"`
	OperationType       int32  `parquet:"name=operation_type, type=INT32"`
	CST                 int32  `parquet:"name=cst, type=INT32"`
	CFOP                int32  `parquet:"name=cfop, type=INT32"`
	Nature              string `parquet:"name=nature, type=BYTE_ARRAY, convertedtype=UTF8, encoding=PLAIN_DICTIONARY"`
	CreditType          int32  `parquet:"name=credit_type, type=INT32"`
	Registro            string `parquet:"name=registro, type=BYTE_ARRAY, convertedtype=UTF8, encoding=PLAIN_DICTIONARY"`
	ValorItem           string `parquet:"name=valor_item, type=BYTE_ARRAY, convertedtype=UTF8, encoding=PLAIN_DICTIONARY"`
	ValorBC             string `parquet:"name=valor_bc, type=BYTE_ARRAY, convertedtype=UTF8, encoding=PLAIN_DICTIONARY"`
	ValorPIS            string `parquet:"name=valor_pis, type=BYTE_ARRAY, convertedtype=UTF8, encoding=PLAIN_DICTIONARY"`
	ValorCOFINS         string `parquet:"name=valor_cofins, type=BYTE_ARRAY, convertedtype=UTF8, encoding=PLAIN_DICTIONARY"`
}

// WriteLines writes one Parquet row per fiscal.Line to fn.
func WriteLines(fn string, lines []*fiscal.Line) error {
	fh, err := local.NewLocalFileWriter(fn)
	if err != nil {
		return fmt.Errorf("creating parquet file %s: %w", fn, err)
	}
	defer fh.Close()

	pw, err := writer.NewParquetWriter(fh, new(LineRecord), 4)
	if err != nil {
		return fmt.Errorf("initializing parquet writer: %w", err)
	}

	pw.RowGroupSize = 128 * 1024 * 1024
	pw.PageSize = 8 * 1024
	pw.CompressionType = parquet.CompressionCodec_ZSTD

	for _, l := range lines {
		rec := &LineRecord{
			File: l.File, FileLine: int32(l.FileLine),
			EstabelecimentoCNPJ: l.EstabelecimentoCNPJ,
			Year:                int32(l.Year), Quarter: int32(l.Quarter), Month: int32(l.Month),
			OperationType: int32(l.OperationType), CST: int32(l.CST), CFOP: int32(l.CFOP),
			Nature: l.Nature, CreditType: int32(l.CreditType), Registro: l.Registro,
			ValorItem: l.ValorItem.String(), ValorBC: l.ValorBC.String(),
			ValorPIS: l.ValorPIS.String(), ValorCOFINS: l.ValorCOFINS.String(),
		}
		if err := pw.Write(rec); err != nil {
			return fmt.Errorf("writing parquet row for %s:%d: %w", l.File, l.FileLine, err)
		}
	}

	if err := pw.WriteStop(); err != nil {
		return fmt.Errorf("finalizing parquet file %s: %w", fn, err)
	}
	return nil
}
