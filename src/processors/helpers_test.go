package processors

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/Deep6432/Blinkrloan-Dashboard/src/models"
)

func dec(v int64) decimal.Decimal { return decimal.NewFromInt(v) }

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// loan builds a record with sane defaults for the fields a test does not
// care about.
func loan(mutate ...func(*models.LoanRecord)) models.LoanRecord {
	r := models.LoanRecord{
		LoanNo:          "BL-1001",
		PAN:             "ABCDE1234F",
		SanctionDate:    day(2025, time.June, 1),
		DisbursalDate:   day(2025, time.June, 2),
		RepaymentDate:   day(2025, time.July, 2),
		LoanAmount:      dec(10000),
		RepaymentAmount: dec(12000),
		ProcessingFee:   dec(500),
		NetDisbursal:    dec(9500),
		InterestAmount:  dec(2000),
		TotalReceived:   dec(0),
		ReloanStatus:    "Freash",
		DPDBucket:       "0",
		ClosedStatus:    "Not Closed",
		State:           "Maharashtra",
		City:            "Mumbai",
	}
	for _, m := range mutate {
		m(&r)
	}
	return r
}
