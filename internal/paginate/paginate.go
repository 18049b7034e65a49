package paginate

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// Page is one page of a paginated resource. TotalPages is the server's
// authoritative page count, read once from page 1.
type Page[T any] struct {
	TotalPages int
	Items      []T
}

// PageFetcher fetches a single 1-based page of a resource.
type PageFetcher[T any] func(ctx context.Context, page int) (Page[T], error)

// FetchAll aggregates every page of a resource into one flat slice.
//
// Page 1 is fetched synchronously to discover the page count; pages 2..N are
// then fetched concurrently, all outstanding at once. The result preserves
// page order and within-page server order. If any page fails, the aggregation
// fails and already-fetched pages are discarded.
//
// The page count is not re-validated during the fan-out: if the underlying
// dataset changes between the page-1 fetch and the remaining fetches, the
// result may straddle the change. Accepted limitation at this scale.
func FetchAll[T any](ctx context.Context, fetch PageFetcher[T]) ([]T, error) {
	first, err := fetch(ctx, 1)
	if err != nil {
		return nil, err
	}

	if first.TotalPages <= 1 {
		return first.Items, nil
	}

	pages := make([][]T, first.TotalPages+1)
	pages[1] = first.Items

	g, gctx := errgroup.WithContext(ctx)
	for p := 2; p <= first.TotalPages; p++ {
		p := p
		g.Go(func() error {
			page, err := fetch(gctx, p)
			if err != nil {
				return err
			}
			pages[p] = page.Items
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	var all []T
	for p := 1; p <= first.TotalPages; p++ {
		all = append(all, pages[p]...)
	}

	return all, nil
}
