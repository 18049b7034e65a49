package export

import (
	"github.com/shopspring/decimal"

	"github.com/luxlux/koinly-csv-exporter/internal/model"
)

// Column pairs a CSV header with the extractor producing its cell value.
// Columns are appended, never reordered, so the schema stays stable as it
// grows.
type Column struct {
	Header string
	Value  func(t model.Transaction, baseCurrency string) string
}

// Columns is the canonical CSV schema. Denomination columns (…Cur next to a
// base-currency amount) emit the portfolio's base currency only when the
// paired amount is present; presence means the field is non-nil, independent
// of its numeric value.
var Columns = []Column{
	{"Date", func(t model.Transaction, _ string) string { return t.Date }},
	{"Transaction Type", func(t model.Transaction, _ string) string { return t.Type }},
	{"Label", func(t model.Transaction, _ string) string { return t.Label }},
	{"Ignored?", func(t model.Transaction, _ string) string { return mark(t.Ignored) }},
	{"Ign. Reason", func(t model.Transaction, _ string) string { return t.IgnoredReason }},
	{"F(From)_Wallet", func(t model.Transaction, _ string) string { return sideWallet(t.From) }},
	{"F_Source", func(t model.Transaction, _ string) string { return sideSource(t.From) }},
	{"T(To)_Wallet", func(t model.Transaction, _ string) string { return sideWallet(t.To) }},
	{"T_Source", func(t model.Transaction, _ string) string { return sideSource(t.To) }},
	{"F_Amount", func(t model.Transaction, _ string) string { return sideAmount(t.From) }},
	{"F_Cur", func(t model.Transaction, _ string) string { return sideCurSymbol(t.From) }},
	{"F_Cur ID", func(t model.Transaction, _ string) string { return sideCurID(t.From) }},
	{"F_Cur Type", func(t model.Transaction, _ string) string { return sideCurType(t.From) }},
	{"F_Cost Basis", func(t model.Transaction, _ string) string { return sideCostBasis(t.From) }},
	{"F_Cost Basis Cur", func(t model.Transaction, bc string) string { return costBasisCur(t.From, bc) }},
	{"T_Amount", func(t model.Transaction, _ string) string { return sideAmount(t.To) }},
	{"T_Cur", func(t model.Transaction, _ string) string { return sideCurSymbol(t.To) }},
	{"T_Cur ID", func(t model.Transaction, _ string) string { return sideCurID(t.To) }},
	{"T_Cur Type", func(t model.Transaction, _ string) string { return sideCurType(t.To) }},
	{"T_Cost Basis", func(t model.Transaction, _ string) string { return sideCostBasis(t.To) }},
	{"T_Cost Basis Cur", func(t model.Transaction, bc string) string { return costBasisCur(t.To, bc) }},
	{"Fee Amount", func(t model.Transaction, _ string) string { return sideAmount(t.Fee) }},
	{"Fee Cur", func(t model.Transaction, _ string) string { return sideCurSymbol(t.Fee) }},
	{"Fee Cur ID", func(t model.Transaction, _ string) string { return sideCurID(t.Fee) }},
	{"Fee Cur Type", func(t model.Transaction, _ string) string { return sideCurType(t.Fee) }},
	{"Fee Value", func(t model.Transaction, _ string) string {
		if t.Fee == nil {
			return ""
		}
		return dec(t.FeeValue)
	}},
	{"Fee Value Cur", func(t model.Transaction, bc string) string {
		if t.Fee == nil || t.FeeValue == nil {
			return ""
		}
		return bc
	}},
	{"Net Worth Amount", func(t model.Transaction, _ string) string { return dec(t.NetValue) }},
	{"Net Worth Cur", func(t model.Transaction, bc string) string { return denominate(t.NetValue, bc) }},
	{"Gain", func(t model.Transaction, _ string) string { return dec(t.Gain) }},
	{"Gain Cur", func(t model.Transaction, bc string) string { return denominate(t.Gain, bc) }},
	{"Cost Basis Method", func(t model.Transaction, _ string) string { return t.CostBasisMethod }},
	{"Manual?", func(t model.Transaction, _ string) string { return mark(t.Manual) }},
	{"Missing Rates?", func(t model.Transaction, _ string) string { return mark(t.MissingRates) }},
	{"Missing Cost Basis?", func(t model.Transaction, _ string) string { return mark(t.MissingCostBasis) }},
	{"Description", func(t model.Transaction, _ string) string { return t.Description }},
	{"TxHash", func(t model.Transaction, _ string) string { return t.TxHash }},
}

func dec(d *decimal.Decimal) string {
	if d == nil {
		return ""
	}
	return d.String()
}

func denominate(d *decimal.Decimal, baseCurrency string) string {
	if d == nil {
		return ""
	}
	return baseCurrency
}

func mark(b bool) string {
	if b {
		return "true"
	}
	return ""
}

func sideWallet(s *model.TransactionSide) string {
	if s == nil || s.Wallet == nil {
		return ""
	}
	return s.Wallet.Name
}

func sideSource(s *model.TransactionSide) string {
	if s == nil {
		return ""
	}
	return s.Source
}

func sideAmount(s *model.TransactionSide) string {
	if s == nil {
		return ""
	}
	return dec(s.Amount)
}

func sideCurSymbol(s *model.TransactionSide) string {
	if s == nil || s.Currency == nil {
		return ""
	}
	return s.Currency.Symbol
}

func sideCurID(s *model.TransactionSide) string {
	if s == nil || s.Currency == nil {
		return ""
	}
	return s.Currency.ID.String()
}

func sideCurType(s *model.TransactionSide) string {
	if s == nil || s.Currency == nil {
		return ""
	}
	return s.Currency.Type
}

func sideCostBasis(s *model.TransactionSide) string {
	if s == nil {
		return ""
	}
	return dec(s.CostBasis)
}

func costBasisCur(s *model.TransactionSide, baseCurrency string) string {
	if s == nil || s.CostBasis == nil {
		return ""
	}
	return baseCurrency
}
