package services

import (
	"database/sql"
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/Deep6432/Blinkrloan-Dashboard/src/models"
)

// targetServiceImpl stores monthly targets in sqlite, one row per
// (month, year) pair.
type targetServiceImpl struct {
	db *sql.DB
}

func NewTargetService(db *sql.DB) TargetService {
	return &targetServiceImpl{db: db}
}

// GetMonthlyTarget returns the stored target for the given month, or a zero
// target when none has been set yet.
func (s *targetServiceImpl) GetMonthlyTarget(month, year int) (models.MonthlyTarget, error) {
	target := models.MonthlyTarget{Month: month, Year: year, TargetAmount: decimal.Zero}

	var amountStr string
	err := s.db.QueryRow(
		"SELECT target_amount FROM monthly_targets WHERE month = ? AND year = ?",
		month, year,
	).Scan(&amountStr)
	if err == sql.ErrNoRows {
		return target, nil
	}
	if err != nil {
		return target, fmt.Errorf("querying monthly target for %d/%d: %w", month, year, err)
	}

	amount, err := decimal.NewFromString(amountStr)
	if err != nil {
		return target, fmt.Errorf("parsing stored target amount %q: %w", amountStr, err)
	}
	target.TargetAmount = amount
	return target, nil
}

func (s *targetServiceImpl) SetMonthlyTarget(target models.MonthlyTarget) error {
	_, err := s.db.Exec(`
		INSERT INTO monthly_targets (month, year, target_amount)
		VALUES (?, ?, ?)
		ON CONFLICT(month, year) DO UPDATE SET
			target_amount = excluded.target_amount,
			updated_at = CURRENT_TIMESTAMP`,
		target.Month, target.Year, target.TargetAmount.String(),
	)
	if err != nil {
		return fmt.Errorf("storing monthly target for %d/%d: %w", target.Month, target.Year, err)
	}
	return nil
}
