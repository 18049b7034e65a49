package api

import (
	"context"
	"net/url"
	"strconv"
)

// GetWalletsPage fetches one page of the wallet list. Page numbers are 1-based.
func (c *Client) GetWalletsPage(ctx context.Context, page int) (*WalletsResponse, error) {
	query := url.Values{}
	query.Set("per_page", strconv.Itoa(c.pageSize))
	query.Set("page", strconv.Itoa(page))

	var resp WalletsResponse
	if err := c.get(ctx, "/wallets", query, &resp); err != nil {
		return nil, &FetchError{Resource: "wallets", Page: page, Err: err}
	}

	c.logger.Debug("fetched wallets page",
		"page", page,
		"total_pages", resp.Meta.Page.TotalPages,
		"wallets", len(resp.Wallets),
	)

	return &resp, nil
}
