package fiscal

import "github.com/shopspring/decimal"

// Basic PIS/COFINS rates (Lei 10.637/2002, Lei 10.833/2003), the pivot
// value spec.md §4.6's credit-type rule 1 compares against.
var (
	BasicPIS    = decimal.NewFromFloat(1.65)
	BasicCOFINS = decimal.NewFromFloat(7.60)
)

// presumedPercentages are the statutory fractions of the basic rates that
// define the "Presumido da Agroindústria" (credit-type 6) rate pairs —
// Lei 12.599 art. 5º/6º and Lei 10.925 art. 8º, each percentage yielding
// one (PIS, COFINS) pair in the agro-presumed set.
var presumedPercentages = []float64{0.10, 0.12, 0.20, 0.35, 0.50, 0.60, 0.80}

var agroPresumedRates map[string]struct{}

func init() {
	agroPresumedRates = make(map[string]struct{}, len(presumedPercentages))
	for _, pct := range presumedPercentages {
		p := decimal.NewFromFloat(pct)
		pis := p.Mul(BasicPIS).Round(4)
		cof := p.Mul(BasicCOFINS).Round(4)
		agroPresumedRates[rateKey(pis, cof)] = struct{}{}
	}
}

func rateKey(pis, cof decimal.Decimal) string {
	return pis.StringFixed(4) + "_" + cof.StringFixed(4)
}

func isAgroPresumed(pis, cof decimal.Decimal) bool {
	_, ok := agroPresumedRates[rateKey(pis.Round(4), cof.Round(4))]
	return ok
}

// DeriveCreditType implements spec.md §4.6's credit-type rule: a value in
// {1..9}, from PIS/COFINS rate bands, CST, and origin, or overridden by
// COD_CRED when it falls in [101, 499].
func DeriveCreditType(cst int, aliqPIS, aliqCOFINS decimal.Decimal, hasRates bool, origin int, codCredito int, hasCodCredito bool) (int, bool) {
	var creditType int
	var ok bool

	if hasRates && (aliqPIS.IsPositive() || aliqCOFINS.IsPositive()) {
		switch origin {
		case 0:
			switch {
			case cst >= 50 && cst <= 56:
				if aliqPIS.Equal(BasicPIS) && aliqCOFINS.Equal(BasicCOFINS) {
					creditType, ok = 1, true
				} else {
					creditType, ok = 2, true
				}
			case cst >= 60 && cst <= 66:
				if isAgroPresumed(aliqPIS, aliqCOFINS) {
					creditType, ok = 6, true
				} else {
					creditType, ok = 7, true
				}
			}
		case 1:
			creditType, ok = 8, true
		}
	}

	if hasCodCredito && codCredito >= 101 && codCredito <= 499 {
		creditType, ok = codCredito%100, true
	}
	return creditType, ok
}
