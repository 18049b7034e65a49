// Package api provides the authenticated Koinly REST client.
//
// Endpoints:
//   - GET /sessions                       portfolio settings (base currency)
//   - GET /wallets?per_page=N&page=P      wallet list, paginated
//   - GET /transactions?per_page=N&page=P transaction history, paginated,
//     optionally filtered to a single wallet
//
// Every call is exactly one round trip. The client performs no retries and
// no caching; pagination and deduplication live in the paginate and
// fetchcache packages.
package api
