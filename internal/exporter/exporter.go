package exporter

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/google/uuid"

	"github.com/luxlux/koinly-csv-exporter/internal/api"
	"github.com/luxlux/koinly-csv-exporter/internal/export"
	"github.com/luxlux/koinly-csv-exporter/internal/fetchcache"
	"github.com/luxlux/koinly-csv-exporter/internal/model"
	"github.com/luxlux/koinly-csv-exporter/internal/paginate"
	"github.com/luxlux/koinly-csv-exporter/internal/writer"
)

// Exporter drives export runs. It owns the fetch cache, so two format
// requests for the same target share one underlying aggregation, and it is
// the only component with externally visible side effects (network calls and
// file saves happen only at its request).
type Exporter struct {
	client  *api.Client
	cache   *fetchcache.Cache[[]model.Transaction]
	saver   writer.Saver
	logger  *slog.Logger
	onState StateFunc

	mu      sync.Mutex
	session *model.Session
}

// Option configures an Exporter.
type Option func(*Exporter)

// WithStateFunc registers an observer for per-target state transitions.
func WithStateFunc(fn StateFunc) Option {
	return func(e *Exporter) {
		e.onState = fn
	}
}

// New creates an Exporter. Each run gets a fresh run ID in its log fields.
func New(client *api.Client, saver writer.Saver, logger *slog.Logger, opts ...Option) *Exporter {
	if logger == nil {
		logger = slog.Default()
	}
	e := &Exporter{
		client: client,
		cache:  fetchcache.New[[]model.Transaction](),
		saver:  saver,
		logger: logger.With("run_id", uuid.New().String()),
	}

	for _, opt := range opts {
		opt(e)
	}

	return e
}

// Session returns the per-run portfolio settings, fetching them on first use.
func (e *Exporter) Session(ctx context.Context) (*model.Session, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.session != nil {
		return e.session, nil
	}

	session, err := e.client.GetSession(ctx)
	if err != nil {
		return nil, err
	}

	e.logger.Debug("session established", "base_currency", session.BaseCurrency)
	e.session = session
	return session, nil
}

// Wallets aggregates the full wallet list in API page order. A zero-wallet
// portfolio is a valid empty result, not an error.
func (e *Exporter) Wallets(ctx context.Context) ([]model.Wallet, error) {
	wallets, err := paginate.FetchAll(ctx, func(ctx context.Context, page int) (paginate.Page[model.Wallet], error) {
		resp, err := e.client.GetWalletsPage(ctx, page)
		if err != nil {
			return paginate.Page[model.Wallet]{}, err
		}
		return paginate.Page[model.Wallet]{
			TotalPages: resp.Meta.Page.TotalPages,
			Items:      resp.Wallets,
		}, nil
	})
	if err != nil {
		return nil, err
	}

	e.logger.Info("wallet list loaded", "wallets", len(wallets))
	return wallets, nil
}

// Targets returns the exportable targets for a wallet list: the combined
// all-transactions view first, then one target per wallet in order.
func Targets(wallets []model.Wallet) []Target {
	targets := make([]Target, 0, len(wallets)+1)
	targets = append(targets, AllTransactionsTarget())
	for _, w := range wallets {
		targets = append(targets, WalletTarget(w))
	}
	return targets
}

// Transactions returns the target's full transaction history, fetching and
// aggregating it on first use. Concurrent calls for the same target share a
// single aggregation; a failed aggregation is evicted so the target stays
// retryable.
func (e *Exporter) Transactions(ctx context.Context, target Target) ([]model.Transaction, error) {
	return e.cache.GetOrFetch(ctx, target.Key, func(ctx context.Context) ([]model.Transaction, error) {
		walletID := target.Key
		if target.IsAll() {
			walletID = ""
		}

		txs, err := paginate.FetchAll(ctx, func(ctx context.Context, page int) (paginate.Page[model.Transaction], error) {
			resp, err := e.client.GetTransactionsPage(ctx, walletID, page)
			if err != nil {
				return paginate.Page[model.Transaction]{}, err
			}
			return paginate.Page[model.Transaction]{
				TotalPages: resp.Meta.Page.TotalPages,
				Items:      resp.Transactions,
			}, nil
		})
		if err != nil {
			return nil, err
		}

		e.logger.Info("transactions aggregated",
			"target", target.Name,
			"transactions", len(txs),
		)
		return txs, nil
	})
}

// Export runs the full pipeline for one target and format and returns the
// path of the saved file.
func (e *Exporter) Export(ctx context.Context, target Target, format Format) (string, error) {
	if !format.Valid() {
		return "", fmt.Errorf("unknown export format %q", format)
	}

	e.setState(target, StateFetching)

	session, err := e.Session(ctx)
	if err != nil {
		return "", e.fail(target, err)
	}

	txs, err := e.Transactions(ctx, target)
	if err != nil {
		return "", e.fail(target, err)
	}

	e.setState(target, StateSerializing)

	var data []byte
	switch format {
	case FormatCSV:
		data = []byte(export.ToCSV(session.BaseCurrency, txs))
	case FormatJSON:
		data, err = export.ToJSON(txs)
		if err != nil {
			return "", e.fail(target, err)
		}
	}

	e.setState(target, StateDelivering)

	path, err := e.saver.Save(target.FileName(format), data)
	if err != nil {
		return "", e.fail(target, err)
	}

	e.setState(target, StateIdle)
	e.logger.Info("export delivered",
		"target", target.Name,
		"format", string(format),
		"transactions", len(txs),
		"path", path,
	)

	return path, nil
}

// Reset clears every cached aggregation. Called when the enclosing session
// is torn down.
func (e *Exporter) Reset() {
	e.cache.Clear()
}

// fail invalidates the target's aggregation, reports the failure and re-arms
// the target. Fetch failures were already evicted by the cache; this also
// covers serialization and delivery failures so a retry starts clean.
func (e *Exporter) fail(target Target, err error) error {
	e.cache.Invalidate(target.Key)
	e.setState(target, StateFailed)
	e.logger.Error("export failed",
		"target", target.Name,
		"error", err,
	)
	e.setState(target, StateIdle)
	return err
}

func (e *Exporter) setState(target Target, state State) {
	if e.onState != nil {
		e.onState(target, state)
	}
}
