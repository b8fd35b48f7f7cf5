package registro

// buildRegistry constructs the static record-type table. It is a
// representative, block-spanning subset of the ~200 SPED EFD-Contribuições
// record codes: enough to exercise every rule in spec.md §4.1–§4.9 without
// hand-maintaining the full statutory layout catalog, which the registry's
// data-only shape (map[string]*RecordType) makes a data addition, not a
// code change, to extend later.
func buildRegistry() map[string]*RecordType {
	reg := map[string]*RecordType{}

	add := func(rt *RecordType) {
		reg[rt.Code] = rt
	}

	// ---- Block 0: opening, identification and reference tables ----

	add(&RecordType{Code: "0000", Level: 0, Fields: []Field{
		{Name: "COD_VER", Type: Alphanumeric},
		{Name: "TIPO_ESCRIT", Type: Integer},
		{Name: "IND_SIT_ESP", Type: Integer, Optional: true},
		{Name: "NUM_REC_ANTERIOR", Type: Alphanumeric, Optional: true},
		{Name: "DT_INI", Type: DateField},
		{Name: "DT_FIM", Type: DateField},
		{Name: "NOME", Type: Alphanumeric},
		{Name: "CNPJ", Type: Alphanumeric},
		{Name: "UF", Type: Alphanumeric, Optional: true},
		{Name: "COD_MUN", Type: Integer, Optional: true},
		{Name: "SUFRAMA", Type: Alphanumeric, Optional: true},
		{Name: "IND_NAT_PJ", Type: Alphanumeric, Optional: true},
		{Name: "IND_ATIV", Type: Integer, Optional: true},
	}})

	add(&RecordType{Code: "0001", Level: 1, Fields: []Field{
		{Name: "IND_MOV", Type: Integer},
	}})

	add(&RecordType{Code: "0140", Level: 2, Fields: []Field{
		{Name: "COD_EST", Type: Alphanumeric},
		{Name: "NOME", Type: Alphanumeric},
		{Name: "CNPJ", Type: Alphanumeric},
		{Name: "UF", Type: Alphanumeric, Optional: true},
		{Name: "COD_MUN", Type: Integer, Optional: true},
		{Name: "IM", Type: Alphanumeric, Optional: true},
		{Name: "IE", Type: Alphanumeric, Optional: true},
	}})

	add(&RecordType{Code: "0150", Level: 2, Fields: []Field{
		{Name: "COD_PART", Type: Alphanumeric},
		{Name: "NOME", Type: Alphanumeric},
		{Name: "COD_PAIS", Type: Alphanumeric, Optional: true},
		{Name: "CNPJ", Type: Alphanumeric, Optional: true},
		{Name: "CPF", Type: Alphanumeric, Optional: true},
		{Name: "COD_MUN", Type: Integer, Optional: true},
	}})

	add(&RecordType{Code: "0200", Level: 2, Fields: []Field{
		{Name: "COD_ITEM", Type: Alphanumeric},
		{Name: "DESCR_ITEM", Type: Alphanumeric},
		{Name: "COD_BARRA", Type: Alphanumeric, Optional: true},
		{Name: "COD_ANT_ITEM", Type: Alphanumeric, Optional: true},
		{Name: "UNID_INV", Type: Alphanumeric, Optional: true},
		{Name: "TIPO_ITEM", Type: Integer},
		{Name: "COD_NCM", Type: Alphanumeric, Optional: true},
		{Name: "COD_GEN", Type: Integer, Optional: true},
	}})

	add(&RecordType{Code: "0400", Level: 2, Fields: []Field{
		{Name: "COD_NAT", Type: Alphanumeric},
		{Name: "DESCR_NAT", Type: Alphanumeric},
	}})

	add(&RecordType{Code: "0450", Level: 2, Fields: []Field{
		{Name: "COD_INF", Type: Alphanumeric},
		{Name: "TXT", Type: Alphanumeric},
	}})

	add(&RecordType{Code: "0500", Level: 2, Fields: []Field{
		{Name: "COD_NAT_CC", Type: Integer},
		{Name: "COD_CCUS", Type: Alphanumeric, Optional: true},
		{Name: "COD_CTA", Type: Alphanumeric},
		{Name: "NOME_CTA", Type: Alphanumeric},
	}})

	// ---- Block A: services (ISS) ----

	add(&RecordType{Code: "A010", Level: 1, Fields: []Field{
		{Name: "CNPJ", Type: Alphanumeric},
	}})

	add(&RecordType{Code: "A100", Level: 2, Fields: []Field{
		{Name: "IND_OPER", Type: Integer},
		{Name: "COD_PART", Type: Alphanumeric, Optional: true},
		{Name: "COD_SIT", Type: Integer},
		{Name: "NUM_DOC", Type: Alphanumeric, Optional: true},
		{Name: "DT_DOC", Type: DateField},
		{Name: "DT_EXE_SERV", Type: DateField, Optional: true},
		{Name: "VL_DOC", Type: Value2dec},
		{Name: "VL_DESC", Type: Value2dec, Optional: true},
		{Name: "VL_BC_PIS", Type: Value2dec, Optional: true},
		{Name: "VL_BC_COFINS", Type: Value2dec, Optional: true},
	}})

	add(&RecordType{Code: "A170", Level: 3, Fields: []Field{
		{Name: "NUM_ITEM", Type: Integer},
		{Name: "COD_ITEM", Type: Alphanumeric, Optional: true},
		{Name: "DESCR_COMPL", Type: Alphanumeric, Optional: true},
		{Name: "VL_ITEM", Type: Value2dec},
		{Name: "CST", Type: Integer},
		{Name: "NAT_BC_CRED", Type: Alphanumeric, Optional: true},
		{Name: "VL_BC", Type: Value2dec, Optional: true},
		{Name: "ALIQ_PIS", Type: Rate4dec, Optional: true},
		{Name: "VL_PIS", Type: Value2dec, Optional: true},
		{Name: "ALIQ_COFINS", Type: Rate4dec, Optional: true},
		{Name: "VL_COFINS", Type: Value2dec, Optional: true},
		{Name: "COD_CTA", Type: Alphanumeric, Optional: true},
	}})

	// ---- Block C: goods (ICMS/IPI documents) ----

	add(&RecordType{Code: "C010", Level: 1, Fields: []Field{
		{Name: "CNPJ", Type: Alphanumeric},
	}})

	add(&RecordType{Code: "C100", Level: 2, Fields: []Field{
		{Name: "IND_OPER", Type: Integer},
		{Name: "IND_EMIT", Type: Integer, Optional: true},
		{Name: "COD_PART", Type: Alphanumeric, Optional: true},
		{Name: "COD_MOD", Type: Alphanumeric},
		{Name: "COD_SIT", Type: Integer},
		{Name: "SER", Type: Alphanumeric, Optional: true},
		{Name: "NUM_DOC", Type: Integer},
		{Name: "CHV_NFE", Type: Alphanumeric, Optional: true},
		{Name: "DT_DOC", Type: DateField},
		{Name: "DT_ES", Type: DateField, Optional: true},
		{Name: "VL_DOC", Type: Value2dec},
		{Name: "VL_DESC", Type: Value2dec, Optional: true},
		{Name: "VL_MERC", Type: Value2dec, Optional: true},
		{Name: "VL_PIS", Type: Value2dec, Optional: true},
		{Name: "VL_COFINS", Type: Value2dec, Optional: true},
	}})

	add(&RecordType{Code: "C170", Level: 3, Fields: []Field{
		{Name: "NUM_ITEM", Type: Integer},
		{Name: "COD_ITEM", Type: Alphanumeric},
		{Name: "DESCR_COMPL", Type: Alphanumeric, Optional: true},
		{Name: "QTD", Type: Value2dec, Optional: true},
		{Name: "UNID", Type: Alphanumeric, Optional: true},
		{Name: "VL_ITEM", Type: Value2dec},
		{Name: "VL_DESC", Type: Value2dec, Optional: true},
		{Name: "CFOP", Type: Integer},
		{Name: "COD_NAT", Type: Alphanumeric, Optional: true},
		{Name: "VL_BC_ICMS", Type: Value2dec, Optional: true},
		{Name: "ALIQ_ICMS", Type: Rate4dec, Optional: true},
		{Name: "VL_ICMS", Type: Value2dec, Optional: true},
		{Name: "CST", Type: Integer},
		{Name: "VL_BC", Type: Value2dec, Optional: true},
		{Name: "ALIQ_PIS", Type: Rate4dec, Optional: true},
		{Name: "VL_PIS", Type: Value2dec, Optional: true},
		{Name: "ALIQ_COFINS", Type: Rate4dec, Optional: true},
		{Name: "VL_COFINS", Type: Value2dec, Optional: true},
		{Name: "COD_CTA", Type: Alphanumeric, Optional: true},
		{Name: "NAT_BC_CRED", Type: Alphanumeric, Optional: true},
	}})

	add(consolidatedHeader("C180"))
	add(correlationLeaf("C181", "C180"))
	add(consolidatedHeader("C190"))
	add(correlationLeaf("C191", "C190"))
	add(&RecordType{Code: "C195", Level: 4, Fields: []Field{
		{Name: "CST", Type: Integer},
		{Name: "CFOP", Type: Integer, Optional: true},
		{Name: "VL_ITEM", Type: Value2dec},
		{Name: "VL_BC", Type: Value2dec, Optional: true},
		{Name: "DESCR_COMPL", Type: Alphanumeric, Optional: true},
	}})
	add(&RecordType{Code: "C198", Level: 4, Fields: []Field{
		{Name: "NUM_PROC", Type: Alphanumeric, Optional: true},
		{Name: "IND_NAT_FRT", Type: Alphanumeric, Optional: true},
	}})
	add(&RecordType{Code: "C199", Level: 4, Fields: []Field{
		{Name: "CST", Type: Integer},
		{Name: "VL_AJUSTE", Type: Value2dec, Optional: true},
	}})

	add(consolidatedHeader("C380"))
	add(correlationLeaf("C381", "C380"))
	add(consolidatedHeader("C395"))
	add(&RecordType{Code: "C400", Level: 2, Fields: []Field{
		{Name: "COD_MOD", Type: Alphanumeric},
		{Name: "ECF_MOD", Type: Alphanumeric, Optional: true},
		{Name: "ECF_FAB", Type: Alphanumeric, Optional: true},
	}})
	add(&RecordType{Code: "C405", Level: 3, Fields: []Field{
		{Name: "DT_DOC", Type: DateField},
		{Name: "CRO", Type: Alphanumeric, Optional: true},
		{Name: "CRZ", Type: Alphanumeric, Optional: true},
		{Name: "VL_DOC", Type: Value2dec},
	}})
	add(consolidatedHeader("C480"))
	add(correlationLeaf("C481", "C480"))
	add(consolidatedHeader("C490"))
	add(correlationLeaf("C491", "C490"))
	add(&RecordType{Code: "C495", Level: 4, Fields: []Field{
		{Name: "CST", Type: Integer},
		{Name: "VL_ITEM", Type: Value2dec},
	}})
	add(&RecordType{Code: "C499", Level: 4, Fields: []Field{
		{Name: "NUM_PROC", Type: Alphanumeric, Optional: true},
	}})

	add(consolidatedHeader("C500"))
	add(correlationLeaf("C501", "C500"))
	add(consolidatedHeader("C600"))
	add(correlationLeaf("C601", "C600"))
	add(&RecordType{Code: "C860", Level: 2, Fields: []Field{
		{Name: "COD_MOD", Type: Alphanumeric},
		{Name: "NR_SAT", Type: Alphanumeric, Optional: true},
		{Name: "DT_DOC", Type: DateField},
		{Name: "VL_DOC", Type: Value2dec},
	}})
	add(&RecordType{Code: "C870", Level: 3, Fields: []Field{
		{Name: "NUM_ITEM", Type: Integer},
		{Name: "COD_ITEM", Type: Alphanumeric},
		{Name: "VL_ITEM", Type: Value2dec},
		{Name: "CST", Type: Integer},
		{Name: "CFOP", Type: Integer, Optional: true},
		{Name: "VL_BC", Type: Value2dec, Optional: true},
		{Name: "ALIQ_PIS", Type: Rate4dec, Optional: true},
		{Name: "VL_PIS", Type: Value2dec, Optional: true},
		{Name: "ALIQ_COFINS", Type: Rate4dec, Optional: true},
		{Name: "VL_COFINS", Type: Value2dec, Optional: true},
	}})

	// ---- Block D: services (transport, communication, energy...) ----

	add(&RecordType{Code: "D010", Level: 1, Fields: []Field{
		{Name: "CNPJ", Type: Alphanumeric},
	}})

	add(&RecordType{Code: "D100", Level: 2, Fields: []Field{
		{Name: "IND_OPER", Type: Integer},
		{Name: "COD_PART", Type: Alphanumeric, Optional: true},
		{Name: "COD_MOD", Type: Alphanumeric},
		{Name: "COD_SIT", Type: Integer},
		{Name: "NUM_DOC", Type: Alphanumeric, Optional: true},
		{Name: "DT_DOC", Type: DateField},
		{Name: "DT_A_P", Type: DateField, Optional: true},
		{Name: "VL_DOC", Type: Value2dec},
		{Name: "CFOP", Type: Integer, Optional: true},
	}})
	add(&RecordType{Code: "D101", Level: 3, Fields: []Field{
		{Name: "IND_NAT_FRT", Type: Alphanumeric, Optional: true},
		{Name: "VL_ITEM", Type: Value2dec},
		{Name: "CST", Type: Integer},
		{Name: "NAT_BC_CRED", Type: Alphanumeric, Optional: true},
		{Name: "VL_BC", Type: Value2dec, Optional: true},
		{Name: "ALIQ_PIS", Type: Rate4dec, Optional: true},
		{Name: "VL_PIS", Type: Value2dec, Optional: true},
		{Name: "ALIQ_COFINS", Type: Rate4dec, Optional: true},
		{Name: "VL_COFINS", Type: Value2dec, Optional: true},
		{Name: "COD_CTA", Type: Alphanumeric, Optional: true},
	}})

	add(consolidatedHeader("D200"))
	add(&RecordType{Code: "D201", Level: 3, Fields: []Field{
		{Name: "CST", Type: Integer},
		{Name: "VL_ITEM", Type: Value2dec},
		{Name: "VL_BC", Type: Value2dec, Optional: true},
		{Name: "ALIQ_PIS", Type: Rate4dec, Optional: true},
		{Name: "VL_PIS", Type: Value2dec, Optional: true},
	}})
	add(&RecordType{Code: "D350", Level: 2, Fields: []Field{
		{Name: "COD_MOD", Type: Alphanumeric},
		{Name: "DT_DOC", Type: DateField},
		{Name: "VL_DOC", Type: Value2dec},
	}})

	add(consolidatedHeader("D500"))
	add(correlationLeaf("D501", "D500"))
	add(consolidatedHeader("D600"))
	add(correlationLeaf("D601", "D600"))
	add(&RecordType{Code: "D609", Level: 4, Fields: []Field{
		{Name: "NUM_PROC", Type: Alphanumeric, Optional: true},
	}})

	// ---- Block F: common/estimated operations, financial assets ----

	add(&RecordType{Code: "F010", Level: 1, Fields: []Field{
		{Name: "CNPJ", Type: Alphanumeric},
	}})
	add(&RecordType{Code: "F100", Level: 2, Fields: []Field{
		{Name: "IND_OPER", Type: Integer},
		{Name: "COD_PART", Type: Alphanumeric, Optional: true},
		{Name: "CST", Type: Integer},
		{Name: "DT_OPER", Type: DateField},
		{Name: "VL_OPER", Type: Value2dec},
		{Name: "CFOP", Type: Integer, Optional: true},
		{Name: "NAT_BC_CRED", Type: Alphanumeric, Optional: true},
		{Name: "VL_BC", Type: Value2dec, Optional: true},
		{Name: "ALIQ_PIS", Type: Rate4dec, Optional: true},
		{Name: "VL_PIS", Type: Value2dec, Optional: true},
		{Name: "ALIQ_COFINS", Type: Rate4dec, Optional: true},
		{Name: "VL_COFINS", Type: Value2dec, Optional: true},
		{Name: "COD_CTA", Type: Alphanumeric, Optional: true},
		{Name: "DESCR_DOC", Type: Alphanumeric, Optional: true},
	}})
	add(&RecordType{Code: "F130", Level: 2, Fields: []Field{
		{Name: "NAT_BC_CRED", Type: Alphanumeric},
		{Name: "IDENT_BEM_IMOB", Type: Alphanumeric, Optional: true},
		{Name: "VL_OPER", Type: Value2dec},
		{Name: "VL_BC", Type: Value2dec, Optional: true},
	}})
	add(&RecordType{Code: "F200", Level: 2, Fields: []Field{
		{Name: "IND_OPER", Type: Integer},
		{Name: "UNID_IMOB", Type: Alphanumeric, Optional: true},
		{Name: "VL_REC", Type: Value2dec},
		{Name: "VL_BC", Type: Value2dec, Optional: true},
		{Name: "ALIQ_PIS", Type: Rate4dec, Optional: true},
		{Name: "ALIQ_COFINS", Type: Rate4dec, Optional: true},
	}})
	add(&RecordType{Code: "F800", Level: 2, Fields: []Field{
		{Name: "TIPO_OPER", Type: Integer},
		{Name: "DT_OPER", Type: DateField},
		{Name: "VL_OPER", Type: Value2dec},
		{Name: "CST", Type: Integer, Optional: true},
	}})

	// ---- Block I: complementary records ----

	add(&RecordType{Code: "I010", Level: 1, Fields: []Field{
		{Name: "CNPJ", Type: Alphanumeric},
	}})
	add(&RecordType{Code: "I100", Level: 2, Fields: []Field{
		{Name: "VL_REC_COMP", Type: Value2dec},
		{Name: "CST", Type: Integer},
	}})

	// ---- Block M: PIS/COFINS apuration ----

	add(&RecordType{Code: "M100", Level: 2, Fields: []Field{
		{Name: "COD_CRED", Type: Integer},
		{Name: "IND_CRED_ORI", Type: Integer, Optional: true},
		{Name: "VL_BC_CONT", Type: Value2dec},
		{Name: "ALIQ_PIS", Type: Rate4dec, Optional: true},
		{Name: "VL_CRED", Type: Value2dec},
		{Name: "VL_AJUS_ACRES", Type: Value2dec, Optional: true},
		{Name: "VL_AJUS_REDUC", Type: Value2dec, Optional: true},
		{Name: "VL_CRED_DIF", Type: Value2dec, Optional: true},
		{Name: "VL_CRED_DISP", Type: Value2dec, Optional: true},
		{Name: "PER_DESC", Type: Rate4dec, Optional: true},
		{Name: "VL_CRED_DESC", Type: Value2dec, Optional: true},
		{Name: "VL_CRED_DESC_PER", Type: Value2dec, Optional: true},
		{Name: "NAT_BC_CRED", Type: Alphanumeric, Optional: true},
	}})
	add(&RecordType{Code: "M105", Level: 3, Fields: []Field{
		{Name: "NAT_BC_CRED", Type: Alphanumeric},
		{Name: "VL_BC_PIS_TOT", Type: Value2dec, Optional: true},
		{Name: "VL_BC_PIS_CUM", Type: Value2dec, Optional: true},
		{Name: "VL_BC_PIS_NC", Type: Value2dec},
		{Name: "VL_BC_PIS", Type: Value2dec},
		{Name: "CST", Type: Integer, Optional: true},
		{Name: "VL_ITEM", Type: Value2dec, Optional: true},
	}})
	add(&RecordType{Code: "M200", Level: 2, Fields: []Field{
		{Name: "VL_TOT_CONT_NC_PER", Type: Value2dec, Optional: true},
		{Name: "VL_TOT_CRED_DESC", Type: Value2dec, Optional: true},
		{Name: "VL_TOT_CONT_NC_DEV", Type: Value2dec, Optional: true},
	}})
	add(&RecordType{Code: "M210", Level: 2, Fields: []Field{
		{Name: "COD_CONT", Type: Alphanumeric},
		{Name: "VL_REC_BRT", Type: Value2dec},
		{Name: "VL_BC_CONT", Type: Value2dec},
		{Name: "VL_AJUS_ACRES_BC_PIS", Type: Value2dec, Optional: true},
		{Name: "VL_AJUS_REDUC_BC_PIS", Type: Value2dec, Optional: true},
		{Name: "VL_BC_CONT_AJUS", Type: Value2dec},
		{Name: "ALIQ_PIS", Type: Rate4dec},
		{Name: "QUANT_BC_PIS", Type: Value2dec, Optional: true},
		{Name: "ALIQ_PIS_QUANT", Type: Rate4dec, Optional: true},
		{Name: "VL_CONT_APUR", Type: Value2dec},
		{Name: "VL_AJUS_ACRES", Type: Value2dec, Optional: true},
		{Name: "VL_AJUS_REDUC", Type: Value2dec, Optional: true},
		{Name: "VL_CONT_DIFER", Type: Value2dec, Optional: true},
		{Name: "VL_CONT_DIFER_ANT", Type: Value2dec, Optional: true},
		{Name: "VL_CONT_PER", Type: Value2dec},
	}, Legacy: map[int][]Field{
		12: {
			{Name: "COD_CONT", Type: Alphanumeric},
			{Name: "VL_REC_BRT", Type: Value2dec},
			{Name: "VL_BC_CONT", Type: Value2dec},
			{Name: "ALIQ_PIS", Type: Rate4dec},
			{Name: "VL_AJUS_ACRES", Type: Value2dec, Optional: true},
			{Name: "VL_AJUS_REDUC", Type: Value2dec, Optional: true},
			{Name: "VL_CONT_APUR", Type: Value2dec},
			{Name: "VL_CONT_DIFER", Type: Value2dec, Optional: true},
			{Name: "VL_CONT_DIFER_ANT", Type: Value2dec, Optional: true},
			{Name: "ZERO1", Type: Integer, Optional: true},
			{Name: "ZERO2", Type: Integer, Optional: true},
			{Name: "VL_CONT_PER", Type: Value2dec},
		},
	}})

	add(&RecordType{Code: "M500", Level: 2, Fields: cloneFields(reg["M100"].Fields)})
	add(&RecordType{Code: "M505", Level: 3, Fields: cloneFields(reg["M105"].Fields)})
	add(&RecordType{Code: "M600", Level: 2, Fields: cloneFields(reg["M200"].Fields)})
	add(&RecordType{Code: "M610", Level: 2, Fields: cloneFields(reg["M210"].Fields), Legacy: reg["M210"].Legacy})

	// ---- Block 1: other information, control records ----

	add(&RecordType{Code: "1010", Level: 1, Fields: []Field{
		{Name: "IND_EXP", Type: Integer, Optional: true},
		{Name: "IND_CCRF", Type: Integer, Optional: true},
	}})
	add(&RecordType{Code: "1011", Level: 2, Fields: []Field{
		{Name: "COD_INC_TRIB", Type: Integer, Optional: true},
		{Name: "VL_REC_TOT", Type: Value2dec, Optional: true},
	}})
	add(&RecordType{Code: "1100", Level: 1, Fields: []Field{
		{Name: "PER_APU_CRED", Type: DateField},
		{Name: "ORIG_CRED", Type: Integer, Optional: true},
		{Name: "CST_PIS", Type: Integer, Optional: true},
		{Name: "VL_BC_CRED", Type: Value2dec, Optional: true},
		{Name: "ALIQ_PIS_DESC", Type: Rate4dec, Optional: true},
		{Name: "VL_CRED_PIS_DESC", Type: Value2dec},
		{Name: "COD_CRED", Type: Integer, Optional: true},
	}})
	add(&RecordType{Code: "1500", Level: 1, Fields: cloneFields(reg["1100"].Fields)})

	// ---- Block 9: control, closing ----

	add(&RecordType{Code: "9900", Level: 1, Fields: []Field{
		{Name: "REG_BLC", Type: Alphanumeric},
		{Name: "QTD_REG_BLC", Type: Integer},
	}})
	add(&RecordType{Code: "9999", Level: 1, Fields: []Field{
		{Name: "QTD_LIN", Type: Integer},
	}})

	return reg
}

// consolidatedHeader builds the shared shape of a "consolidated goods/
// services document" header record (C180/C190/C380/C395/C480/C490/C500/
// C600/D200/D500/D600): a block/document classifier plus a document total,
// grounded on the repeated header shape spec.md §4.5 lists for these codes.
func consolidatedHeader(code string) *RecordType {
	return &RecordType{Code: code, Level: 3, Fields: []Field{
		{Name: "COD_MOD", Type: Alphanumeric},
		{Name: "COD_SIT", Type: Integer, Optional: true},
		{Name: "VL_DOC", Type: Value2dec},
	}}
}

// correlationLeaf builds the shared shape of a PIS/COFINS "aliquot" leaf
// record (C181/C191/C381/C481/C491/C501/C601/D501/D601): the record that
// seeds the accumulator's PIS<->COFINS correlation map (spec.md §4.5).
func correlationLeaf(code, parent string) *RecordType {
	return &RecordType{Code: code, Level: 4, Fields: []Field{
		{Name: "CST", Type: Integer},
		{Name: "CFOP", Type: Integer, Optional: true},
		{Name: "VL_ITEM", Type: Value2dec},
		{Name: "VL_BC", Type: Value2dec, Optional: true},
		{Name: "ALIQ_PIS", Type: Rate4dec, Optional: true},
		{Name: "VL_PIS", Type: Value2dec, Optional: true},
		{Name: "NAT_BC_CRED", Type: Alphanumeric, Optional: true},
	}}
}

func cloneFields(fields []Field) []Field {
	out := make([]Field, len(fields))
	copy(out, fields)
	return out
}
