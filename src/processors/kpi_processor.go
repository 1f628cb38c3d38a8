package processors

import (
	"github.com/shopspring/decimal"

	"github.com/Deep6432/Blinkrloan-Dashboard/src/models"
	"github.com/Deep6432/Blinkrloan-Dashboard/src/utils"
)

// Two fresh/reloan predicates coexist upstream and are deliberately kept
// separate: the portfolio reports treat everything not marked "Reloan" as
// fresh, while the fraud-summary reports only count the explicit "Freash"
// label (a misspelling retained from the source system). Different metric
// families are wired to different predicates; do not consolidate them.

// IsFreshPortfolio is the inclusive predicate used by the portfolio KPI
// family: any record not explicitly marked as a reloan counts as fresh.
func IsFreshPortfolio(r models.LoanRecord) bool { return r.ReloanStatus != "Reloan" }

// IsFreshFraud is the strict predicate used by the fraud-summary family:
// only the literal "Freash" label counts as fresh, so records with any other
// status land in neither bucket.
func IsFreshFraud(r models.LoanRecord) bool { return r.ReloanStatus == "Freash" }

// IsReloan is shared by both families.
func IsReloan(r models.LoanRecord) bool { return r.ReloanStatus == "Reloan" }

// PortfolioKPI is the KPI block behind the main dashboard. Percentage fields
// are rounded to two decimals, matching the report this family feeds.
type PortfolioKPI struct {
	TotalApplications int     `json:"total_applications"`
	SanctionAmount    float64 `json:"sanction_amount"`
	NetDisbursal      float64 `json:"net_disbursal"`
	RepaymentAmount   float64 `json:"repayment_amount"`
	CollectedAmount   float64 `json:"collected_amount"`
	PendingCollection float64 `json:"pending_collection"`

	// Principal outstanding has two live business definitions; both are
	// always emitted under distinct names. "principal_outstanding" is the
	// no-collection definition, "principal_outstanding_not_closed" is the
	// disbursed-minus-received over not-closed loans definition.
	PrincipalOutstanding          float64 `json:"principal_outstanding"`
	PrincipalOutstandingNotClosed float64 `json:"principal_outstanding_not_closed"`

	CollectionRate      float64 `json:"collection_rate"`
	CollectedPercentage float64 `json:"collected_percentage"`
	PendingPercentage   float64 `json:"pending_percentage"`
	Earning             float64 `json:"earning"`
	Penalty             float64 `json:"penalty"`

	FreshCases       int     `json:"fresh_cases"`
	ReloanCases      int     `json:"reloan_cases"`
	FreshPercentage  float64 `json:"fresh_percentage"`
	ReloanPercentage float64 `json:"reloan_percentage"`

	FreshSanctionAmount        float64 `json:"fresh_sanction_amount"`
	ReloanSanctionAmount       float64 `json:"reloan_sanction_amount"`
	FreshDisbursedAmount       float64 `json:"fresh_disbursed_amount"`
	ReloanDisbursedAmount      float64 `json:"reloan_disbursed_amount"`
	FreshRepaymentAmount       float64 `json:"fresh_repayment_amount"`
	ReloanRepaymentAmount      float64 `json:"reloan_repayment_amount"`
	FreshCollectedAmount       float64 `json:"fresh_collected_amount"`
	ReloanCollectedAmount      float64 `json:"reloan_collected_amount"`
	FreshPendingAmount         float64 `json:"fresh_pending_amount"`
	ReloanPendingAmount        float64 `json:"reloan_pending_amount"`
	FreshPrincipalOutstanding  float64 `json:"fresh_principal_outstanding"`
	ReloanPrincipalOutstanding float64 `json:"reloan_principal_outstanding"`

	RecoveryRate       float64 `json:"recovery_rate"`
	FreshRecoveryRate  float64 `json:"fresh_recovery_rate"`
	ReloanRecoveryRate float64 `json:"reloan_recovery_rate"`
}

// FraudKPI is the KPI block behind the fraud-summary dashboard, computed on
// the without-fraud feed with the strict predicate. Its earning and penalty
// definitions differ historically from the portfolio family and are kept
// as-is.
type FraudKPI struct {
	TotalApplications int     `json:"total_applications"`
	FreshCases        int     `json:"fresh_cases"`
	FreshPercentage   float64 `json:"fresh_percentage"`
	ReloanCases       int     `json:"reloan_cases"`
	ReloanPercentage  float64 `json:"reloan_percentage"`

	FreshSanctionAmount   float64 `json:"fresh_sanction_amount"`
	ReloanSanctionAmount  float64 `json:"reloan_sanction_amount"`
	FreshDisbursedAmount  float64 `json:"fresh_disbursed_amount"`
	ReloanDisbursedAmount float64 `json:"reloan_disbursed_amount"`
	FreshRepaymentAmount  float64 `json:"fresh_repayment_amount"`
	ReloanRepaymentAmount float64 `json:"reloan_repayment_amount"`
	FreshCollectedAmount  float64 `json:"fresh_collected_amount"`
	ReloanCollectedAmount float64 `json:"reloan_collected_amount"`
	FreshPendingAmount    float64 `json:"fresh_pending_amount"`
	ReloanPendingAmount   float64 `json:"reloan_pending_amount"`

	PrincipalOutstanding          float64 `json:"principal_outstanding"`
	FreshPrincipalOutstanding     float64 `json:"fresh_principal_outstanding"`
	ReloanPrincipalOutstanding    float64 `json:"reloan_principal_outstanding"`
	PrincipalOutstandingNotClosed float64 `json:"principal_outstanding_not_closed"`

	SanctionAmount    float64 `json:"sanction_amount"`
	DisbursedAmount   float64 `json:"disbursed_amount"`
	RepaymentAmount   float64 `json:"repayment_amount"`
	Earning           float64 `json:"earning"` // processing fee + interest
	Penalty           float64 `json:"penalty"` // no penalty data in this feed
	CollectedAmount   float64 `json:"collected_amount"`
	PendingCollection float64 `json:"pending_collection"`
	CollectionRate    float64 `json:"collection_rate"`

	RecoveryRate       float64 `json:"recovery_rate"`
	FreshRecoveryRate  float64 `json:"fresh_recovery_rate"`
	ReloanRecoveryRate float64 `json:"reloan_recovery_rate"`
}

type amountSums struct {
	sanction  decimal.Decimal
	disbursed decimal.Decimal
	repayment decimal.Decimal
	collected decimal.Decimal
}

func sumAmounts(records []models.LoanRecord) amountSums {
	var s amountSums
	for _, r := range records {
		s.sanction = s.sanction.Add(r.LoanAmount)
		s.disbursed = s.disbursed.Add(r.NetDisbursal)
		s.repayment = s.repayment.Add(r.RepaymentAmount)
		s.collected = s.collected.Add(r.TotalReceived)
	}
	return s
}

func split(records []models.LoanRecord, fresh func(models.LoanRecord) bool) (freshRecs, reloanRecs []models.LoanRecord) {
	for _, r := range records {
		switch {
		case fresh(r):
			freshRecs = append(freshRecs, r)
		case IsReloan(r):
			reloanRecs = append(reloanRecs, r)
		}
	}
	return freshRecs, reloanRecs
}

// principalOutstandingNoCollection is variant A: disbursed principal on loans
// that have never seen a single rupee collected.
func principalOutstandingNoCollection(records []models.LoanRecord) decimal.Decimal {
	var total decimal.Decimal
	for _, r := range records {
		if r.LastReceivedDate.IsZero() && r.TotalReceived.IsZero() {
			total = total.Add(r.NetDisbursal)
		}
	}
	return total
}

// principalOutstandingNotClosed is variant B: disbursed minus received over
// loans still marked "Not Closed".
func principalOutstandingNotClosed(records []models.LoanRecord) decimal.Decimal {
	var disbursed, received decimal.Decimal
	for _, r := range records {
		if r.ClosedStatus == "Not Closed" {
			disbursed = disbursed.Add(r.NetDisbursal)
			received = received.Add(r.TotalReceived)
		}
	}
	return disbursed.Sub(received)
}

// recoveryRates computes the 90-day-exclusive recovery percentages: loans at
// 90 DPD or less, recoverable = collected minus interest, against sanctioned
// amount. Subsets use the strict fraud predicate the recovery reports shipped
// with.
func recoveryRates(records []models.LoanRecord) (total, fresh, reloan float64) {
	within := keep(records, func(r models.LoanRecord) bool { return r.OverdueDays <= 90 })
	rate := func(recs []models.LoanRecord) float64 {
		var recoverable, sanction decimal.Decimal
		for _, r := range recs {
			recoverable = recoverable.Add(r.TotalReceived.Sub(r.InterestAmount))
			sanction = sanction.Add(r.LoanAmount)
		}
		return Ratio(recoverable, sanction)
	}
	freshRecs, reloanRecs := split(within, IsFreshFraud)
	return rate(within), rate(freshRecs), rate(reloanRecs)
}

// PortfolioKPIs derives the main dashboard KPI block from a filtered record
// set. Empty input yields the all-zero shape.
func PortfolioKPIs(records []models.LoanRecord) PortfolioKPI {
	total := len(records)
	if total == 0 {
		return PortfolioKPI{}
	}

	all := sumAmounts(records)
	freshRecs, reloanRecs := split(records, IsFreshPortfolio)
	fresh := sumAmounts(freshRecs)
	reloan := sumAmounts(reloanRecs)

	collectionRate := utils.RoundFloat(Ratio(all.collected, all.repayment), 2)
	pendingPct := 0.0
	if collectionRate > 0 {
		pendingPct = utils.RoundFloat(100-collectionRate, 2)
	}

	kpi := PortfolioKPI{
		TotalApplications: total,
		SanctionAmount:    Float(all.sanction),
		NetDisbursal:      Float(all.disbursed),
		RepaymentAmount:   Float(all.repayment),
		CollectedAmount:   Float(all.collected),
		PendingCollection: Float(all.repayment.Sub(all.collected)),

		PrincipalOutstanding:          Float(principalOutstandingNoCollection(records)),
		PrincipalOutstandingNotClosed: Float(principalOutstandingNotClosed(records)),

		CollectionRate:      collectionRate,
		CollectedPercentage: collectionRate,
		PendingPercentage:   pendingPct,
		Earning:             Float(all.collected.Sub(all.sanction)),
		Penalty:             Float(all.repayment.Sub(all.sanction)),

		FreshCases:       len(freshRecs),
		ReloanCases:      len(reloanRecs),
		FreshPercentage:  utils.RoundFloat(float64(len(freshRecs))/float64(total)*100, 2),
		ReloanPercentage: utils.RoundFloat(float64(len(reloanRecs))/float64(total)*100, 2),

		FreshSanctionAmount:        Float(fresh.sanction),
		ReloanSanctionAmount:       Float(reloan.sanction),
		FreshDisbursedAmount:       Float(fresh.disbursed),
		ReloanDisbursedAmount:      Float(reloan.disbursed),
		FreshRepaymentAmount:       Float(fresh.repayment),
		ReloanRepaymentAmount:      Float(reloan.repayment),
		FreshCollectedAmount:       Float(fresh.collected),
		ReloanCollectedAmount:      Float(reloan.collected),
		FreshPendingAmount:         Float(fresh.repayment.Sub(fresh.collected)),
		ReloanPendingAmount:        Float(reloan.repayment.Sub(reloan.collected)),
		FreshPrincipalOutstanding:  Float(principalOutstandingNoCollection(freshRecs)),
		ReloanPrincipalOutstanding: Float(principalOutstandingNoCollection(reloanRecs)),
	}
	kpi.RecoveryRate, kpi.FreshRecoveryRate, kpi.ReloanRecoveryRate = recoveryRates(records)
	return kpi
}

// FraudKPIs derives the fraud-summary KPI block. Percentages stay unrounded
// here; this family always reported raw floats.
func FraudKPIs(records []models.LoanRecord) FraudKPI {
	total := len(records)
	if total == 0 {
		return FraudKPI{}
	}

	all := sumAmounts(records)
	freshRecs, reloanRecs := split(records, IsFreshFraud)
	fresh := sumAmounts(freshRecs)
	reloan := sumAmounts(reloanRecs)

	var processingFee, interest decimal.Decimal
	for _, r := range records {
		processingFee = processingFee.Add(r.ProcessingFee)
		interest = interest.Add(r.InterestAmount)
	}

	kpi := FraudKPI{
		TotalApplications: total,
		FreshCases:        len(freshRecs),
		FreshPercentage:   float64(len(freshRecs)) / float64(total) * 100,
		ReloanCases:       len(reloanRecs),
		ReloanPercentage:  float64(len(reloanRecs)) / float64(total) * 100,

		FreshSanctionAmount:   Float(fresh.sanction),
		ReloanSanctionAmount:  Float(reloan.sanction),
		FreshDisbursedAmount:  Float(fresh.disbursed),
		ReloanDisbursedAmount: Float(reloan.disbursed),
		FreshRepaymentAmount:  Float(fresh.repayment),
		ReloanRepaymentAmount: Float(reloan.repayment),
		FreshCollectedAmount:  Float(fresh.collected),
		ReloanCollectedAmount: Float(reloan.collected),
		FreshPendingAmount:    Float(fresh.repayment.Sub(fresh.collected)),
		ReloanPendingAmount:   Float(reloan.repayment.Sub(reloan.collected)),

		PrincipalOutstanding:          Float(principalOutstandingNoCollection(records)),
		FreshPrincipalOutstanding:     Float(principalOutstandingNoCollection(freshRecs)),
		ReloanPrincipalOutstanding:    Float(principalOutstandingNoCollection(reloanRecs)),
		PrincipalOutstandingNotClosed: Float(principalOutstandingNotClosed(records)),

		SanctionAmount:    Float(all.sanction),
		DisbursedAmount:   Float(all.disbursed),
		RepaymentAmount:   Float(all.repayment),
		Earning:           Float(processingFee.Add(interest)),
		Penalty:           0,
		CollectedAmount:   Float(all.collected),
		PendingCollection: Float(all.repayment.Sub(all.collected)),
		CollectionRate:    Ratio(all.collected, all.repayment),
	}
	kpi.RecoveryRate, kpi.FreshRecoveryRate, kpi.ReloanRecoveryRate = recoveryRates(records)
	return kpi
}
