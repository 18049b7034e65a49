package api

import (
	"context"
	"errors"

	"github.com/luxlux/koinly-csv-exporter/internal/model"
)

// ErrNoPortfolio is returned when the session response carries no portfolios.
var ErrNoPortfolio = errors.New("session has no portfolios")

// GetSession fetches the current session and derives the portfolio settings.
// The base currency comes from the first portfolio, matching the web app.
func (c *Client) GetSession(ctx context.Context) (*model.Session, error) {
	var resp SessionResponse
	if err := c.get(ctx, "/sessions", nil, &resp); err != nil {
		return nil, &FetchError{Resource: "session", Page: 1, Err: err}
	}

	if len(resp.Portfolios) == 0 {
		return nil, ErrNoPortfolio
	}

	return &model.Session{
		BaseCurrency: resp.Portfolios[0].BaseCurrency.Symbol,
	}, nil
}
