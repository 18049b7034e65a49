package api

import (
	"context"
	"net/url"
	"strconv"
)

// GetTransactionsPage fetches one page of the transaction history, ordered by
// date. An empty walletID means all wallets; otherwise the query is filtered
// to transactions where the wallet appears on either side.
func (c *Client) GetTransactionsPage(ctx context.Context, walletID string, page int) (*TransactionsResponse, error) {
	query := url.Values{}
	query.Set("per_page", strconv.Itoa(c.pageSize))
	query.Set("order", "date")
	query.Set("page", strconv.Itoa(page))

	if walletID != "" {
		// Ransack-style filter grammar, as sent by the Koinly web app.
		query.Set("q[m]", "and")
		query.Set("q[g][0][from_wallet_id_or_to_wallet_id_eq]", walletID)
	}

	var resp TransactionsResponse
	if err := c.get(ctx, "/transactions", query, &resp); err != nil {
		return nil, &FetchError{Resource: "transactions", Page: page, Err: err}
	}

	c.logger.Debug("fetched transactions page",
		"wallet_id", walletID,
		"page", page,
		"total_pages", resp.Meta.Page.TotalPages,
		"transactions", len(resp.Transactions),
	)

	return &resp, nil
}
