package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// LoanRecord is the fully-typed form of one upstream loan row. It is produced
// exactly once, by parsers.ParseLoanRecords, and is immutable afterwards:
// downstream code never re-coerces fields.
type LoanRecord struct {
	LeadNo string
	LoanNo string
	PAN    string // optional, may be empty

	SanctionDate     time.Time // zero value means absent/unparseable
	DisbursalDate    time.Time
	RepaymentDate    time.Time
	LastReceivedDate time.Time

	LoanAmount      decimal.Decimal // sanctioned amount
	RepaymentAmount decimal.Decimal // amount due
	ProcessingFee   decimal.Decimal
	NetDisbursal    decimal.Decimal // actually disbursed amount
	InterestAmount  decimal.Decimal
	TotalReceived   decimal.Decimal // collected so far
	Outstanding     decimal.Decimal
	OverdueAmount   decimal.Decimal

	Tenure      int // months, 0 means absent
	OverdueDays int

	CollectionActive bool

	FraudStatus  string
	ReloanStatus string // "Reloan", "Freash" (retained upstream misspelling), or other
	DPDBucket    string // raw label, normalize before grouping
	ClosedStatus string // free text: "Active", "Closed", "Not Closed", ...
	State        string
	City         string
}

// HasRepaymentDate reports whether the record carries a usable repayment date.
func (r LoanRecord) HasRepaymentDate() bool { return !r.RepaymentDate.IsZero() }

// HasDisbursalDate reports whether the record carries a usable disbursal date.
func (r LoanRecord) HasDisbursalDate() bool { return !r.DisbursalDate.IsZero() }

// PendingAmount is the raw due-minus-collected figure. It may be negative in
// dirty data; callers clamp where their metric requires it.
func (r LoanRecord) PendingAmount() decimal.Decimal {
	return r.RepaymentAmount.Sub(r.TotalReceived)
}
