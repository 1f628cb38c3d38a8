package services

import (
	"context"

	"github.com/Deep6432/Blinkrloan-Dashboard/src/models"
)

// SnapshotService exposes the two upstream loan feeds as parsed records.
// Implementations cache the parsed snapshots; callers must not mutate the
// returned slice elements.
type SnapshotService interface {
	PortfolioRecords(ctx context.Context) ([]models.LoanRecord, error)
	CollectionRecords(ctx context.Context) ([]models.LoanRecord, error)
}

// TargetService persists monthly collection targets.
type TargetService interface {
	GetMonthlyTarget(month, year int) (models.MonthlyTarget, error)
	SetMonthlyTarget(target models.MonthlyTarget) error
}
