// Package fetchcache implements a keyed single-flight store for expensive
// fetches.
//
// At most one producer runs per key at any time: concurrent callers for the
// same key share the in-flight result, resolved entries are served without
// refetching, and failed entries are dropped so the next call retries.
package fetchcache
