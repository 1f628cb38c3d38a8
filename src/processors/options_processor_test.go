package processors

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Deep6432/Blinkrloan-Dashboard/src/models"
)

func TestBuildFilterOptions(t *testing.T) {
	records := []models.LoanRecord{
		loan(func(r *models.LoanRecord) {
			r.State = "Maharashtra"
			r.City = "Mumbai"
			r.DPDBucket = "0-30"
			r.ClosedStatus = "Not Closed"
		}),
		loan(func(r *models.LoanRecord) {
			r.State = "Karnataka"
			r.City = "Bengaluru"
			r.DPDBucket = "DPD 1-30"
			r.ClosedStatus = "Part Payment"
		}),
		loan(func(r *models.LoanRecord) {
			r.State = ""
			r.City = ""
			r.DPDBucket = "0"
			r.ClosedStatus = "Closed"
		}),
	}

	opts := BuildFilterOptions(records)
	assert.Equal(t, []string{"Karnataka", "Maharashtra"}, opts.States)
	assert.Equal(t, []string{"Bengaluru", "Mumbai"}, opts.Cities)
	assert.Equal(t, []string{"0 days DPD", "DPD 1-30"}, opts.DPDBuckets,
		"buckets are normalized and kept in canonical order")
	assert.Equal(t, []string{"Not Closed", "Part Payment"}, opts.ClosedStatuses,
		"the Active/Closed pair is not offered as a dropdown choice")
}
