// Package csv writes the three output tables of an efd.Result to
// comma-separated files using gocarina/gocsv, the same marshaller the
// teacher uses (in the opposite direction) for its Zacks screener import.
// This is a reference writer: spec.md leaves the actual persistence format
// to the caller, and a flat CSV export is the simplest collaborator that
// exercises the full Result shape.
package csv

import (
	"fmt"
	"os"

	"github.com/gocarina/gocsv"

	"github.com/efdtools/efd-pis-cofins/aggregate"
	"github.com/efdtools/efd-pis-cofins/efd"
	"github.com/efdtools/efd-pis-cofins/fiscal"
)

// LineRow is the flat, string-encoded projection of fiscal.Line written to
// the "lines" CSV. Monetary fields are kept as decimal strings rather than
// float64 to avoid losing precision on the way out.
type LineRow struct {
	File                string `csv:"file"`
	FileLine            int    `csv:"file_line"`
	EstabelecimentoCNPJ string `csv:"cnpj"`
	Year                int    `csv:"year"`
	Quarter             int    `csv:"quarter"`
	Month               int    `csv:"month"`
	OperationType       int    `csv:"operation_type"`
	CST                 int    `csv:"cst"`
	CFOP                int    `csv:"cfop"`
	Nature              string `csv:"nature"`
	CreditType          int    `csv:"credit_type"`
	Registro            string `csv:"registro"`
	ValorItem           string `csv:"valor_item"`
	ValorBC             string `csv:"valor_bc"`
	AliqPIS             string `csv:"aliq_pis"`
	AliqCOFINS          string `csv:"aliq_cofins"`
	ValorPIS            string `csv:"valor_pis"`
	ValorCOFINS         string `csv:"valor_cofins"`
}

// CreditRow is the flat projection of one aggregate.Row.
type CreditRow struct {
	CNPJBase      string `csv:"cnpj_base"`
	Year          int    `csv:"year"`
	Quarter       int    `csv:"quarter"`
	Month         int    `csv:"month"`
	OperationType int    `csv:"operation_type"`
	CreditType    int    `csv:"credit_type"`
	CST           int    `csv:"cst"`
	CFOP          int    `csv:"cfop"`
	Nature        string `csv:"nature"`
	ValorItem     string `csv:"valor_item"`
	ValorBC       string `csv:"valor_bc"`
	RBNCTrib      string `csv:"rbnc_trib"`
	RBNCNTrib     string `csv:"rbnc_ntrib"`
	RBNCExp       string `csv:"rbnc_exp"`
	RBCum         string `csv:"rb_cum"`
}

// RevenueRow is the flat projection of one aggregate.PeriodKey/RevenueValue pair.
type RevenueRow struct {
	CNPJBase   string `csv:"cnpj_base"`
	Year       int    `csv:"year"`
	Quarter    int    `csv:"quarter"`
	Month      int    `csv:"month"`
	Bucket     string `csv:"bucket"`
	Value      string `csv:"value"`
	Percentage string `csv:"percentage"`
}

// WriteLines writes one row per fiscal.Line to path.
func WriteLines(path string, lines []*fiscal.Line) error {
	rows := make([]*LineRow, 0, len(lines))
	for _, l := range lines {
		rows = append(rows, &LineRow{
			File: l.File, FileLine: l.FileLine,
			EstabelecimentoCNPJ: l.EstabelecimentoCNPJ,
			Year:                l.Year, Quarter: l.Quarter, Month: l.Month,
			OperationType: l.OperationType, CST: l.CST, CFOP: l.CFOP,
			Nature: l.Nature, CreditType: l.CreditType, Registro: l.Registro,
			ValorItem: l.ValorItem.String(), ValorBC: l.ValorBC.String(),
			AliqPIS: l.AliqPIS.String(), AliqCOFINS: l.AliqCOFINS.String(),
			ValorPIS: l.ValorPIS.String(), ValorCOFINS: l.ValorCOFINS.String(),
		})
	}
	return marshalFile(path, &rows)
}

// WriteCredit writes one row per aggregate.Row to path.
func WriteCredit(path string, rows []aggregate.Row) error {
	out := make([]*CreditRow, 0, len(rows))
	for _, r := range rows {
		out = append(out, &CreditRow{
			CNPJBase: r.Key.CNPJBase, Year: r.Key.Year, Quarter: r.Key.Quarter, Month: r.Key.Month,
			OperationType: r.Key.OperationType, CreditType: r.Key.CreditType,
			CST: r.Key.CST, CFOP: r.Key.CFOP, Nature: r.Key.Nature,
			ValorItem: r.Value.ValorItem.String(), ValorBC: r.Value.ValorBC.String(),
			RBNCTrib: r.Value.RBNCTrib.String(), RBNCNTrib: r.Value.RBNCNTrib.String(),
			RBNCExp: r.Value.RBNCExp.String(), RBCum: r.Value.RBCum.String(),
		})
	}
	return marshalFile(path, &out)
}

// WriteRevenue writes one row per revenue bucket to path.
func WriteRevenue(path string, revenue map[aggregate.PeriodKey]aggregate.RevenueValue) error {
	rows := make([]*RevenueRow, 0, len(revenue))
	for k, v := range revenue {
		rows = append(rows, &RevenueRow{
			CNPJBase: k.CNPJBase, Year: k.Year, Quarter: k.Quarter, Month: k.Month,
			Bucket: fmt.Sprintf("%d", k.Bucket), Value: v.Value.String(), Percentage: v.Percentage.String(),
		})
	}
	return marshalFile(path, &rows)
}

// WriteAll writes every table of result into <dir>/lines.csv,
// <dir>/credit.csv and <dir>/revenue.csv.
func WriteAll(dir string, result *efd.Result) error {
	if err := WriteLines(dir+"/lines.csv", result.Lines); err != nil {
		return fmt.Errorf("writing lines.csv: %w", err)
	}
	if err := WriteCredit(dir+"/credit.csv", result.Credit); err != nil {
		return fmt.Errorf("writing credit.csv: %w", err)
	}
	if err := WriteRevenue(dir+"/revenue.csv", result.Revenue); err != nil {
		return fmt.Errorf("writing revenue.csv: %w", err)
	}
	return nil
}

func marshalFile(path string, rows interface{}) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return gocsv.MarshalFile(rows, f)
}
