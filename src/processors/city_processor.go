package processors

import (
	"sort"

	"github.com/Deep6432/Blinkrloan-Dashboard/src/models"
)

// Cities with fewer applications than this are statistical noise and are
// excluded from the rankings.
const minCityApplications = 20

const cityRankingLimit = 10

// CityCollectionRow is one city's collection performance.
type CityCollectionRow struct {
	City                 string  `json:"city"`
	CollectedAmount      float64 `json:"collected_amount"`
	RepaymentAmount      float64 `json:"repayment_amount"`
	UncollectedAmount    float64 `json:"uncollected_amount,omitempty"`
	CollectionPercentage float64 `json:"collection_percentage"`
	TotalApplications    int     `json:"total_applications"`
}

// cityCollectionRows groups by normalized city and keeps only cities that
// clear the minimum sample size with a positive repayment base.
func cityCollectionRows(records []models.LoanRecord) []CityCollectionRow {
	groups := GroupAndSum(records,
		func(r models.LoanRecord) (string, bool) { return NormalizeCityName(r.City), true },
		sumReceived, sumRepayment,
	)

	rows := make([]CityCollectionRow, 0, len(groups))
	for city, g := range groups {
		collected, repayment := g.Sums[0], g.Sums[1]
		if g.Count < minCityApplications || repayment.Sign() <= 0 {
			continue
		}
		rows = append(rows, CityCollectionRow{
			City:                 city,
			CollectedAmount:      Float(collected),
			RepaymentAmount:      Float(repayment),
			UncollectedAmount:    Float(repayment.Sub(collected)),
			CollectionPercentage: Ratio(collected, repayment),
			TotalApplications:    g.Count,
		})
	}
	return rows
}

// TopCitiesByCollection ranks the best-performing cities, highest collection
// percentage first, truncated to ten.
func TopCitiesByCollection(records []models.LoanRecord) []CityCollectionRow {
	rows := cityCollectionRows(records)
	sort.SliceStable(rows, func(i, j int) bool {
		return rows[i].CollectionPercentage > rows[j].CollectionPercentage
	})
	if len(rows) > cityRankingLimit {
		rows = rows[:cityRankingLimit]
	}
	return rows
}

// BottomCitiesByCollection ranks the worst performers, lowest collection
// percentage first, truncated to ten.
func BottomCitiesByCollection(records []models.LoanRecord) []CityCollectionRow {
	rows := cityCollectionRows(records)
	sort.SliceStable(rows, func(i, j int) bool {
		return rows[i].CollectionPercentage < rows[j].CollectionPercentage
	})
	if len(rows) > cityRankingLimit {
		rows = rows[:cityRankingLimit]
	}
	return rows
}

// CitiesInState lists the distinct raw city names within a state, sorted.
// City filter dropdowns use raw names because the hierarchical filter matches
// on raw values.
func CitiesInState(records []models.LoanRecord, state string) []string {
	seen := make(map[string]bool)
	for _, r := range records {
		if r.State == state && r.City != "" {
			seen[r.City] = true
		}
	}
	cities := make([]string, 0, len(seen))
	for city := range seen {
		cities = append(cities, city)
	}
	sort.Strings(cities)
	return cities
}
