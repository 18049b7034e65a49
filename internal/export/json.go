package export

import (
	"encoding/json"

	"github.com/luxlux/koinly-csv-exporter/internal/model"
)

// ToJSON serializes the full transaction sequence as indented JSON, two
// spaces per nesting level. Unlike the CSV schema this is a full-fidelity
// dump: every populated field of every record is preserved, in the field
// order of model.Transaction. A nil or empty input serializes to "[]".
func ToJSON(txs []model.Transaction) ([]byte, error) {
	if txs == nil {
		txs = []model.Transaction{}
	}
	return json.MarshalIndent(txs, "", "  ")
}
