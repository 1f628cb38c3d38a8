package processors

import (
	"sort"

	"github.com/Deep6432/Blinkrloan-Dashboard/src/models"
)

// FilterOptions feeds the dashboard's filter dropdowns.
type FilterOptions struct {
	States         []string `json:"states"`
	Cities         []string `json:"cities"`
	DPDBuckets     []string `json:"dpd_buckets"`     // normalized, canonical order
	ClosedStatuses []string `json:"closed_statuses"` // "Active" and "Closed" are not offered
}

// BuildFilterOptions extracts the distinct filter values present in a
// snapshot.
func BuildFilterOptions(records []models.LoanRecord) FilterOptions {
	states := make(map[string]bool)
	cities := make(map[string]bool)
	buckets := make(map[string]bool)
	statuses := make(map[string]bool)

	for _, r := range records {
		if r.State != "" {
			states[r.State] = true
		}
		if r.City != "" {
			cities[r.City] = true
		}
		if r.DPDBucket != "" {
			buckets[NormalizeDPDBucket(r.DPDBucket)] = true
		}
		if r.ClosedStatus != "" && r.ClosedStatus != "Active" && r.ClosedStatus != "Closed" {
			statuses[r.ClosedStatus] = true
		}
	}

	opts := FilterOptions{
		States:         sortedKeys(states),
		Cities:         sortedKeys(cities),
		ClosedStatuses: sortedKeys(statuses),
	}
	for _, b := range CanonicalDPDOrder {
		if buckets[b] {
			opts.DPDBuckets = append(opts.DPDBuckets, b)
		}
	}
	return opts
}

func sortedKeys(set map[string]bool) []string {
	keys := make([]string, 0, len(set))
	for k := range set {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
