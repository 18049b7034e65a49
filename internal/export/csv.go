package export

import (
	"strings"

	"github.com/luxlux/koinly-csv-exporter/internal/model"
)

// ToCSV serializes transactions into an RFC 4180 document using the fixed
// Columns schema. Rows are separated by "\n" with no trailing separator; an
// empty input yields the header row alone.
func ToCSV(baseCurrency string, txs []model.Transaction) string {
	var b strings.Builder

	for i, col := range Columns {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString(col.Header)
	}

	for _, t := range txs {
		b.WriteByte('\n')
		for i, col := range Columns {
			if i > 0 {
				b.WriteByte(',')
			}
			b.WriteString(escapeField(col.Value(t, baseCurrency)))
		}
	}

	return b.String()
}

// escapeField quotes a field per RFC 4180: fields containing a comma, double
// quote or either newline variant are wrapped in double quotes with embedded
// quotes doubled; all other fields are emitted verbatim.
func escapeField(s string) string {
	if !strings.ContainsAny(s, ",\"\n\r") {
		return s
	}
	return `"` + strings.ReplaceAll(s, `"`, `""`) + `"`
}
