package api

import "github.com/luxlux/koinly-csv-exporter/internal/model"

// PageMeta is the pagination metadata wrapper every paginated endpoint returns.
type PageMeta struct {
	Page PageInfo `json:"page"`
}

// PageInfo carries the authoritative page count for a paginated resource.
type PageInfo struct {
	TotalPages int `json:"total_pages"`
}

// SessionResponse from GET /sessions.
type SessionResponse struct {
	Portfolios []Portfolio `json:"portfolios"`
}

// Portfolio is one portfolio entry in the session response.
type Portfolio struct {
	BaseCurrency model.Currency `json:"base_currency"`
}

// WalletsResponse from GET /wallets.
type WalletsResponse struct {
	Meta    PageMeta       `json:"meta"`
	Wallets []model.Wallet `json:"wallets"`
}

// TransactionsResponse from GET /transactions.
type TransactionsResponse struct {
	Meta         PageMeta            `json:"meta"`
	Transactions []model.Transaction `json:"transactions"`
}
