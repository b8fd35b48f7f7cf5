package fiscal

import "github.com/shopspring/decimal"

// correlacaoCodcred maps a COFINS rate to its correlated PIS rate, used by
// the M105/M505 "detailing" line when the CST-keyed correlation map built
// by package accumulate has no entry for this CST/value pair (spec.md
// §4.6's "correlacao_codcred" rate table).
var correlacaoCodcred = map[string]string{
	"0.0000":  "1.6500",
	"0.7600":  "0.1650",
	"1.5200":  "0.3300",
	"2.6600":  "0.5775",
	"3.8000":  "0.8250",
	"4.5600":  "0.9900",
	"5.7000":  "1.2375",
	"6.0800":  "1.3200",
	"7.0000":  "1.6500",
	"7.6000":  "1.6500",
	"8.5400":  "1.8600",
	"9.6500":  "2.1000",
	"10.6800": "2.3200",
	"10.8000": "2.3000",
	"14.3700": "2.1000",
}

// CorrelatedPISFromCOFINS resolves a PIS rate from a COFINS rate via the
// static correlacao_codcred table. The rate is matched exactly at four
// decimal places; with no match it returns zero and false.
func CorrelatedPISFromCOFINS(aliqCOFINS decimal.Decimal) (decimal.Decimal, bool) {
	raw, ok := correlacaoCodcred[aliqCOFINS.StringFixed(4)]
	if !ok {
		return decimal.Zero, false
	}
	d, err := decimal.NewFromString(raw)
	if err != nil {
		return decimal.Zero, false
	}
	return d, true
}
