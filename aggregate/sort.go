package aggregate

import "sort"

// SortRows orders rows by (CNPJ-base, year, quarter, month, credit
// type, operation type, CST, nature, PIS rate, COFINS rate), the final
// presentation order required by spec.md §4.7.
func SortRows(rows []Row) {
	sort.SliceStable(rows, func(i, j int) bool {
		a, b := rows[i].Key, rows[j].Key
		switch {
		case a.CNPJBase != b.CNPJBase:
			return a.CNPJBase < b.CNPJBase
		case a.Year != b.Year:
			return a.Year < b.Year
		case a.Quarter != b.Quarter:
			return a.Quarter < b.Quarter
		case a.Month != b.Month:
			return a.Month < b.Month
		case a.CreditType != b.CreditType:
			return a.CreditType < b.CreditType
		case a.OperationType != b.OperationType:
			return a.OperationType < b.OperationType
		case a.CST != b.CST:
			return a.CST < b.CST
		case a.Nature != b.Nature:
			return a.Nature < b.Nature
		case a.AliqPIS != b.AliqPIS:
			return a.AliqPIS < b.AliqPIS
		default:
			return a.AliqCOFINS < b.AliqCOFINS
		}
	})
}
