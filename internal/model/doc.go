// Package model defines the domain types shared across the exporter.
//
// All types mirror the Koinly API wire format (snake_case JSON) and are
// immutable once decoded: nothing downstream mutates a record in place.
//
// Conventions:
//   - Money fields: *decimal.Decimal, passed through opaquely (never computed on)
//   - Optional fields: pointers or omitempty, so an absent field stays absent
//   - Timestamps: strings, exactly as returned by the API
package model
