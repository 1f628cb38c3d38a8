package handlers

import (
	"context"
	"encoding/json"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/Deep6432/Blinkrloan-Dashboard/src/logger"
	"github.com/Deep6432/Blinkrloan-Dashboard/src/models"
)

func TestMain(m *testing.M) {
	logger.InitLogger("error")
	os.Exit(m.Run())
}

// stubSnapshots serves fixed record sets so handler tests never touch the
// upstream feeds.
type stubSnapshots struct {
	portfolio  []models.LoanRecord
	collection []models.LoanRecord
	err        error
	calls      int
}

func (s *stubSnapshots) PortfolioRecords(context.Context) ([]models.LoanRecord, error) {
	s.calls++
	if s.err != nil {
		return nil, s.err
	}
	return s.portfolio, nil
}

func (s *stubSnapshots) CollectionRecords(context.Context) ([]models.LoanRecord, error) {
	s.calls++
	if s.err != nil {
		return nil, s.err
	}
	return s.collection, nil
}

type stubTargets struct {
	targets map[[2]int]decimal.Decimal
	err     error
}

func newStubTargets() *stubTargets {
	return &stubTargets{targets: make(map[[2]int]decimal.Decimal)}
}

func (s *stubTargets) GetMonthlyTarget(month, year int) (models.MonthlyTarget, error) {
	if s.err != nil {
		return models.MonthlyTarget{}, s.err
	}
	amount, ok := s.targets[[2]int{month, year}]
	if !ok {
		amount = decimal.Zero
	}
	return models.MonthlyTarget{Month: month, Year: year, TargetAmount: amount}, nil
}

func (s *stubTargets) SetMonthlyTarget(target models.MonthlyTarget) error {
	if s.err != nil {
		return s.err
	}
	s.targets[[2]int{target.Month, target.Year}] = target.TargetAmount
	return nil
}

func dec(v float64) decimal.Decimal { return decimal.NewFromFloat(v) }

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// loan builds a record with sensible defaults, mutated per test.
func loan(mutate ...func(*models.LoanRecord)) models.LoanRecord {
	rec := models.LoanRecord{
		LoanNo:          "BL-1001",
		PAN:             "abcde1234f",
		ReloanStatus:    "Freash",
		DPDBucket:       "0",
		ClosedStatus:    "Not Closed",
		State:           "Maharashtra",
		City:            "Mumbai",
		SanctionDate:    day(2025, time.June, 1),
		DisbursalDate:   day(2025, time.June, 2),
		RepaymentDate:   day(2025, time.July, 2),
		LoanAmount:      dec(10000),
		RepaymentAmount: dec(12000),
		ProcessingFee:   dec(500),
		NetDisbursal:    dec(9500),
		InterestAmount:  dec(2000),
	}
	for _, fn := range mutate {
		fn(&rec)
	}
	return rec
}

func decodeBody(t *testing.T, rr *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
	return body
}
