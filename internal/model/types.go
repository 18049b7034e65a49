package model

import (
	"encoding/json"

	"github.com/shopspring/decimal"
)

// Session holds the per-run portfolio settings derived from the first
// authenticated call. Immutable for the duration of a run.
type Session struct {
	// BaseCurrency is the portfolio's reporting currency symbol (e.g., "EUR").
	// It denominates the cost-basis, fee-value, net-worth and gain columns.
	BaseCurrency string
}

// Wallet is a named account container whose transactions can be queried
// independently. The ID is numeric on the wire but treated as an opaque
// identifier here.
type Wallet struct {
	ID   json.Number `json:"id"`
	Name string      `json:"name"`
}

// Currency identifies the asset on one side of a transaction.
type Currency struct {
	ID     json.Number `json:"id"`
	Symbol string      `json:"symbol"`
	Type   string      `json:"type,omitempty"`
}

// WalletRef is the wallet reference embedded in a transaction side.
type WalletRef struct {
	ID   json.Number `json:"id,omitempty"`
	Name string      `json:"name"`
}

// TransactionSide is one leg of a transaction (from, to or fee). Every field
// is independently optional: a deposit has only a To side, a trade has From
// and To, a withdrawal may also carry a Fee.
type TransactionSide struct {
	Wallet    *WalletRef       `json:"wallet,omitempty"`
	Amount    *decimal.Decimal `json:"amount,omitempty"`
	Currency  *Currency        `json:"currency,omitempty"`
	CostBasis *decimal.Decimal `json:"cost_basis,omitempty"`
	Source    string           `json:"source,omitempty"`
}

// Transaction is a single Koinly transaction record. Field order here is the
// canonical order for serialized output.
type Transaction struct {
	Date             string           `json:"date"`
	Type             string           `json:"type"`
	Label            string           `json:"label,omitempty"`
	Ignored          bool             `json:"ignored,omitempty"`
	IgnoredReason    string           `json:"ignored_reason,omitempty"`
	From             *TransactionSide `json:"from,omitempty"`
	To               *TransactionSide `json:"to,omitempty"`
	Fee              *TransactionSide `json:"fee,omitempty"`
	FeeValue         *decimal.Decimal `json:"fee_value,omitempty"`
	NetValue         *decimal.Decimal `json:"net_value,omitempty"`
	Gain             *decimal.Decimal `json:"gain,omitempty"`
	CostBasisMethod  string           `json:"cost_basis_method"`
	Manual           bool             `json:"manual,omitempty"`
	MissingRates     bool             `json:"missing_rates,omitempty"`
	MissingCostBasis bool             `json:"missing_cost_basis,omitempty"`
	Description      string           `json:"description,omitempty"`
	TxHash           string           `json:"txhash,omitempty"`
}
