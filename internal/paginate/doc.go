// Package paginate turns an unknown-length paginated resource into a single
// in-memory slice with minimal round trips.
//
// Page 1 is fetched first to learn the total page count; the remaining pages
// are fetched concurrently and the results flattened in page order. Any page
// failure fails the whole aggregation (no partial results).
package paginate
