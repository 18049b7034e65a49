// Package exporter orchestrates a full export run: session, wallet discovery,
// cached transaction aggregation, serialization and delivery.
//
// Each export target (a wallet, or the combined all-transactions view) moves
// through Idle -> Fetching -> Serializing -> Delivering -> Idle, or back to
// Idle via Failed. Targets are independent: a failed export leaves every
// other target untouched and the failing one retryable.
package exporter
