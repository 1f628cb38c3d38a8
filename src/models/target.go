package models

import "github.com/shopspring/decimal"

// MonthlyTarget is the collection target for one calendar month. It is the only
// cross-request mutable state in the system and lives in sqlite.
type MonthlyTarget struct {
	Month        int             `json:"month"` // 1-12
	Year         int             `json:"year"`
	TargetAmount decimal.Decimal `json:"target_amount"`
}
