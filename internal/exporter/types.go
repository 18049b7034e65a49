package exporter

import "github.com/luxlux/koinly-csv-exporter/internal/model"

// AllTransactionsKey is the reserved cache key for the combined view across
// every wallet. Wallet IDs never collide with it.
const AllTransactionsKey = "all-transactions"

// AllTransactionsName labels the combined view in file names and the UI.
const AllTransactionsName = "All Transactions"

// Target is one exportable unit: a single wallet or the combined view.
type Target struct {
	// Key identifies the target's aggregation in the fetch cache; it is the
	// wallet ID, or AllTransactionsKey for the combined view.
	Key  string
	Name string
}

// WalletTarget builds the target for one wallet.
func WalletTarget(w model.Wallet) Target {
	return Target{Key: w.ID.String(), Name: w.Name}
}

// AllTransactionsTarget builds the target for the combined view.
func AllTransactionsTarget() Target {
	return Target{Key: AllTransactionsKey, Name: AllTransactionsName}
}

// IsAll reports whether the target is the combined all-transactions view.
func (t Target) IsAll() bool {
	return t.Key == AllTransactionsKey
}

// FileName returns the delivery file name for the target in the given format.
func (t Target) FileName(f Format) string {
	return t.Name + " - Transactions." + f.Ext()
}

// Format selects the serialization applied to a fetched aggregation.
type Format string

const (
	FormatCSV  Format = "csv"
	FormatJSON Format = "json"
)

// Ext returns the file extension for the format, without the dot.
func (f Format) Ext() string {
	return string(f)
}

// Valid reports whether f is a known format.
func (f Format) Valid() bool {
	return f == FormatCSV || f == FormatJSON
}

// State is the per-target export lifecycle.
type State int

const (
	StateIdle State = iota
	StateFetching
	StateSerializing
	StateDelivering
	StateFailed
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateFetching:
		return "fetching"
	case StateSerializing:
		return "serializing"
	case StateDelivering:
		return "delivering"
	case StateFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// StateFunc observes per-target state transitions, e.g. to disable and
// re-enable UI affordances. Called synchronously from the exporting
// goroutine.
type StateFunc func(target Target, state State)
