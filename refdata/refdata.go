// Package refdata holds the static code-to-description tables published in
// the EFD-Contribuições layout guide (Tabelas 4.3.4, 4.3.6 and 4.3.7). None
// of this feeds the credit-apportionment math in package aggregate — it
// exists purely so a report writer can print a human-readable label next to
// a numeric code. Kept dependency-free on purpose: nothing here has any
// business reasoning about file formats, transport, or storage.
package refdata

import "fmt"

// cst holds Tabela 4.3.4 — Código da Situação Tributária.
var cst = map[int]string{
	1:  "Operação Tributável com Alíquota Básica",
	2:  "Operação Tributável com Alíquota Diferenciada",
	3:  "Operação Tributável com Alíquota por Unidade de Medida de Produto",
	4:  "Operação Tributável Monofásica - Revenda a Alíquota Zero",
	5:  "Operação Tributável por Substituição Tributária",
	6:  "Operação Tributável a Alíquota Zero",
	7:  "Operação Isenta da Contribuição",
	8:  "Operação sem Incidência da Contribuição",
	9:  "Operação com Suspensão da Contribuição",
	49: "Outras Operações de Saída",
	50: "Operação com Direito a Crédito - Vinculada Exclusivamente a Receita Tributada no Mercado Interno",
	51: "Operação com Direito a Crédito - Vinculada Exclusivamente a Receita Não-Tributada no Mercado Interno",
	52: "Operação com Direito a Crédito - Vinculada Exclusivamente a Receita de Exportação",
	53: "Operação com Direito a Crédito - Vinculada a Receitas Tributadas e Não-Tributadas no Mercado Interno",
	54: "Operação com Direito a Crédito - Vinculada a Receitas Tributadas no Mercado Interno e de Exportação",
	55: "Operação com Direito a Crédito - Vinculada a Receitas Não Tributadas no Mercado Interno e de Exportação",
	56: "Operação com Direito a Crédito - Vinculada a Receitas Tributadas e Não-Tributadas no Mercado Interno e de Exportação",
	60: "Crédito Presumido - Operação de Aquisição Vinculada Exclusivamente a Receita Tributada no Mercado Interno",
	61: "Crédito Presumido - Operação de Aquisição Vinculada Exclusivamente a Receita Não-Tributada no Mercado Interno",
	62: "Crédito Presumido - Operação de Aquisição Vinculada Exclusivamente a Receita de Exportação",
	63: "Crédito Presumido - Operação de Aquisição Vinculada a Receitas Tributadas e Não-Tributadas no Mercado Interno",
	64: "Crédito Presumido - Operação de Aquisição Vinculada a Receitas Tributadas no Mercado Interno e de Exportação",
	65: "Crédito Presumido - Operação de Aquisição Vinculada a Receitas Não-Tributadas no Mercado Interno e de Exportação",
	66: "Crédito Presumido - Operação de Aquisição Vinculada a Receitas Tributadas e Não-Tributadas no Mercado Interno e de Exportação",
	67: "Crédito Presumido - Outras Operações",
	70: "Operação de Aquisição sem Direito a Crédito",
	71: "Operação de Aquisição com Isenção",
	72: "Operação de Aquisição com Suspensão",
	73: "Operação de Aquisição a Alíquota Zero",
	74: "Operação de Aquisição sem Incidência da Contribuição",
	75: "Operação de Aquisição por Substituição Tributária",
	98: "Outras Operações de Entrada",
	99: "Outras Operações",
}

// creditType holds Tabela 4.3.6 — Código de Tipo de Crédito.
var creditType = map[int]string{
	1:  "Alíquota Básica",
	2:  "Alíquotas Diferenciadas",
	3:  "Alíquota por Unidade de Produto",
	4:  "Estoque de Abertura",
	5:  "Aquisição Embalagens para Revenda",
	6:  "Presumido da Agroindústria",
	7:  "Outros Créditos Presumidos",
	8:  "Importação",
	9:  "Atividade Imobiliária",
	99: "Outros",
}

// apportionmentType holds the rateio types used by registers M210/M610:
// which revenue bucket (taxed, untaxed, exports, cumulative) a credit
// apportionment percentage was computed against.
var apportionmentType = map[int]string{
	1: "Receita Bruta Não Cumulativa: Tributada no Mercado Interno",
	2: "Receita Bruta Não Cumulativa: Não Tributada no Mercado Interno",
	3: "Receita Bruta Não Cumulativa: de Exportação",
	4: "Receita Bruta Cumulativa",
}

// creditBaseNature holds Tabela 4.3.7 — Base de Cálculo do Crédito, plus
// the aggregate codes (31-305) the stage-by-stage credit reduction in
// package aggregate assigns to its own intermediate totals.
var creditBaseNature = map[int]string{
	1:  "Aquisição de Bens para Revenda",
	2:  "Aquisição de Bens Utilizados como Insumo",
	3:  "Aquisição de Serviços Utilizados como Insumo",
	4:  "Energia Elétrica e Térmica, Inclusive sob a Forma de Vapor",
	5:  "Aluguéis de Prédios",
	6:  "Aluguéis de Máquinas e Equipamentos",
	7:  "Armazenagem de Mercadoria e Frete na Operação de Venda",
	8:  "Contraprestações de Arrendamento Mercantil",
	9:  "Máquinas e Equipamentos - Crédito sobre Encargos de Depreciação",
	10: "Máquinas e Equipamentos - Crédito com Base no Valor de Aquisição",
	11: "Amortização e Depreciação de Edificações e Benfeitorias em Imóveis",
	12: "Devolução de Vendas Sujeitas à Incidência Não-Cumulativa",
	13: "Outras Operações com Direito a Crédito",
	14: "Atividade de Transporte de Cargas - Subcontratação",
	15: "Atividade Imobiliária - Custo Incorrido de Unidade Imobiliária",
	16: "Atividade Imobiliária - Custo Orçado de Unidade não Concluída",
	17: "Atividade de Prestação de Serviços de Limpeza, Conservação e Manutenção",
	18: "Estoque de Abertura de Bens",

	31: "Ajuste de Acréscimo (PIS/PASEP)",
	35: "Ajuste de Acréscimo (COFINS)",
	41: "Ajuste de Redução (PIS/PASEP)",
	45: "Ajuste de Redução (COFINS)",

	51: "Desconto da Contribuição Apurada no Próprio Período (PIS/PASEP)",
	55: "Desconto da Contribuição Apurada no Próprio Período (COFINS)",
	61: "Desconto Efetuado em Período Posterior (PIS/PASEP)",
	65: "Desconto Efetuado em Período Posterior (COFINS)",

	101: "Base de Cálculo dos Créditos - Alíquota Básica (Soma)",
	102: "Base de Cálculo dos Créditos - Alíquotas Diferenciadas (Soma)",
	103: "Base de Cálculo dos Créditos - Alíquota por Unidade de Produto (Soma)",
	104: "Base de Cálculo dos Créditos - Estoque de Abertura (Soma)",
	105: "Base de Cálculo dos Créditos - Aquisição Embalagens para Revenda (Soma)",
	106: "Base de Cálculo dos Créditos - Presumido da Agroindústria (Soma)",
	107: "Base de Cálculo dos Créditos - Outros Créditos Presumidos (Soma)",
	108: "Base de Cálculo dos Créditos - Importação (Soma)",
	109: "Base de Cálculo dos Créditos - Atividade Imobiliária (Soma)",
	199: "Base de Cálculo dos Créditos - Outros (Soma)",

	201: "Crédito Apurado no Período (PIS/PASEP)",
	205: "Crédito Apurado no Período (COFINS)",
	211: "Crédito Disponível após Ajustes (PIS/PASEP)",
	215: "Crédito Disponível após Ajustes (COFINS)",
	221: "Crédito Disponível após Descontos (PIS/PASEP)",
	225: "Crédito Disponível após Descontos (COFINS)",

	300: "Base de Cálculo dos Créditos - Valor Total (Soma)",
	301: "Saldo de Crédito Passível de Desconto ou Ressarcimento (PIS/PASEP)",
	305: "Saldo de Crédito Passível de Desconto ou Ressarcimento (COFINS)",
}

// CST returns the descriptive label for a Código da Situação Tributária,
// formatted "NN - Descrição", or "" when cst is not in Tabela 4.3.4.
func CST(code int) string {
	return lookup(cst, code, "%02d - %s")
}

// CreditType returns the descriptive label for a Código de Tipo de
// Crédito (Tabela 4.3.6).
func CreditType(code int) string {
	return lookup(creditType, code, "%02d - %s")
}

// ApportionmentType returns the descriptive label for an M210/M610 rateio
// type code.
func ApportionmentType(code int) string {
	return lookup(apportionmentType, code, "%d - %s")
}

// CreditBaseNature returns the descriptive label for a Natureza da Base de
// Cálculo dos Créditos code (Tabela 4.3.7). Codes above 18 are the
// aggregate stage totals the original layout guide lists unnumbered; this
// repo keeps the leading code on every entry for traceability back to the
// reduction stage that produced it.
func CreditBaseNature(code int) string {
	return lookup(creditBaseNature, code, "%02d - %s")
}

func lookup(table map[int]string, code int, format string) string {
	desc, ok := table[code]
	if !ok {
		return ""
	}
	return fmt.Sprintf(format, code, desc)
}
