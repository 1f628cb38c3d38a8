package parsers

import (
	"strings"
	"time"

	"github.com/Deep6432/Blinkrloan-Dashboard/src/logger"
	"github.com/Deep6432/Blinkrloan-Dashboard/src/models"
	"github.com/Deep6432/Blinkrloan-Dashboard/src/processors"
)

// ParseLoanRecords is the single strict boundary between the loosely-typed
// upstream payload and the typed core. Field types in the feed are not
// guaranteed: amounts arrive as numbers or strings (sometimes "nan"/"null"),
// dates as ISO-8601 with or without timezone suffix. Everything is coerced
// here, once; a malformed field degrades to its zero value and never fails
// the whole record.
func ParseLoanRecords(raw []map[string]any) []models.LoanRecord {
	records := make([]models.LoanRecord, 0, len(raw))
	for _, m := range raw {
		records = append(records, parseLoanRecord(m))
	}
	return records
}

func parseLoanRecord(m map[string]any) models.LoanRecord {
	return models.LoanRecord{
		LeadNo: getString(m, "lead_no"),
		LoanNo: getString(m, "loan_no"),
		PAN:    getString(m, "pan"),

		SanctionDate:     ParseDateValue(m["sanction_date"]),
		DisbursalDate:    ParseDateValue(m["disbursal_date"]),
		RepaymentDate:    ParseDateValue(m["repayment_date"]),
		LastReceivedDate: ParseDateValue(m["last_received_date"]),

		LoanAmount:      processors.ToDecimal(m["loan_amount"]),
		RepaymentAmount: processors.ToDecimal(m["repayment_amount"]),
		ProcessingFee:   processors.ToDecimal(m["processing_fee"]),
		NetDisbursal:    processors.ToDecimal(m["net_disbursal"]),
		InterestAmount:  processors.ToDecimal(m["interest_amount"]),
		TotalReceived:   processors.ToDecimal(m["total_received"]),
		Outstanding:     processors.ToDecimal(m["outstanding"]),
		OverdueAmount:   processors.ToDecimal(m["overdue_amount"]),

		Tenure:      processors.ToInt(m["tenure"]),
		OverdueDays: processors.ToInt(m["overdue_days"]),

		CollectionActive: parseBoolish(m["collection_active"]),

		FraudStatus:  getString(m, "fraud_status"),
		ReloanStatus: getString(m, "reloan_status"),
		DPDBucket:    getString(m, "dpd_bucket"),
		ClosedStatus: getString(m, "closed_status"),
		State:        getString(m, "state"),
		City:         getString(m, "city"),
	}
}

var dateLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// ParseDateValue parses the date formats the feed is known to emit. Bare
// timestamps are taken as UTC; the IST shift happens later, at comparison
// time. Unparseable input yields the zero time, which downstream code treats
// as "absent".
func ParseDateValue(value any) time.Time {
	s, ok := value.(string)
	if !ok || strings.TrimSpace(s) == "" {
		return time.Time{}
	}
	s = strings.TrimSpace(s)
	for _, layout := range dateLayouts {
		if t, err := time.ParseInLocation(layout, s, time.UTC); err == nil {
			return t.UTC()
		}
	}
	if logger.L != nil {
		logger.L.Debug("unparseable date in feed", "value", s)
	}
	return time.Time{}
}

func getString(m map[string]any, key string) string {
	if s, ok := m[key].(string); ok {
		return strings.TrimSpace(s)
	}
	return ""
}

func parseBoolish(value any) bool {
	switch v := value.(type) {
	case bool:
		return v
	case string:
		switch strings.ToLower(strings.TrimSpace(v)) {
		case "true", "yes", "1":
			return true
		}
	case float64:
		return v != 0
	}
	return false
}
